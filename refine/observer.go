package refine

import "github.com/sirupsen/logrus"

// LoggingObserver reports each refinement round to a logrus.FieldLogger,
// mirroring the Tracer/LoggingTracer split used for the incremental SAT
// session this package's driver is modeled on: an Observer interface with
// a silent default and a logging implementation callers opt into.
type LoggingObserver struct {
	Logger logrus.FieldLogger
}

// NewLoggingObserver wraps logger (or logrus.StandardLogger if nil) as an
// Observer.
func NewLoggingObserver(logger logrus.FieldLogger) *LoggingObserver {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &LoggingObserver{Logger: logger}
}

// Round logs the round number, cumulative repairs, and current clause
// count at debug level.
func (o *LoggingObserver) Round(info RoundInfo) {
	o.Logger.WithFields(logrus.Fields{
		"round":        info.Round,
		"repairs":      info.Repairs,
		"clause_count": info.ClauseCount,
	}).Debug("refine: round complete")
}
