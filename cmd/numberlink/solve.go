package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/flowsat/numberlink/puzzlefile"
	"github.com/flowsat/numberlink/refine"
	"github.com/flowsat/numberlink/render"
)

// runConfig carries the resolved CLI flags into solvePath/solveFile.
type runConfig struct {
	color        bool
	repairBudget int
	log          logrus.FieldLogger
}

// solvePath solves path: every regular file in it, in name order, if path
// is a directory, or path itself otherwise. It returns an error if any
// puzzle failed to parse or was proven unsolvable, so the process exits
// 0 on solved and non-zero otherwise.
func solvePath(w io.Writer, path string, cfg runConfig) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("numberlink: %w", err)
	}

	if !info.IsDir() {
		return solveFile(w, path, cfg)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return fmt.Errorf("numberlink: reading directory %s: %w", path, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var failed int
	for _, name := range names {
		full := filepath.Join(path, name)
		if err := solveFile(w, full, cfg); err != nil {
			cfg.log.WithError(err).WithField("file", full).Error("numberlink: puzzle failed")
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("numberlink: %d of %d puzzles failed", failed, len(names))
	}

	return nil
}

// solveFile parses, solves, and renders a single puzzle file.
func solveFile(w io.Writer, path string, cfg runConfig) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("numberlink: %w", err)
	}
	defer f.Close()

	g, err := puzzlefile.Parse(f)
	if err != nil {
		return fmt.Errorf("numberlink: parsing %s: %w", path, err)
	}

	var opts []refine.Option
	if cfg.repairBudget > 0 {
		opts = append(opts, refine.WithRepairBudget(cfg.repairBudget))
	}
	opts = append(opts, refine.WithObserver(refine.NewLoggingObserver(cfg.log)))

	result, err := refine.Run(context.Background(), g, opts...)
	if err != nil {
		return fmt.Errorf("numberlink: solving %s: %w", path, err)
	}

	cfg.log.WithFields(logrus.Fields{
		"file":    path,
		"outcome": result.Kind.String(),
		"rounds":  result.Stats.Rounds,
		"repairs": result.Stats.Repairs,
	}).Info("numberlink: solve complete")

	switch result.Kind {
	case refine.Solved:
		var renderOpts []render.Option
		if cfg.color {
			renderOpts = append(renderOpts, render.WithColor())
		}

		return render.Grid(w, result.Grid, g.Labels(), renderOpts...)
	case refine.Unsolvable:
		return fmt.Errorf("numberlink: %s has no solution", path)
	case refine.BudgetExceeded:
		return fmt.Errorf("numberlink: %s exceeded the repair budget", path)
	default:
		return fmt.Errorf("numberlink: %s: %s: %w", path, result.Kind, result.Cause)
	}
}
