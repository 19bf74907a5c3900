// Command numberlink solves Numberlink/Flow-Free puzzles from the
// command line: one positional argument names a puzzle file or a
// directory of puzzle files. Flags control colorized output, the
// refinement repair budget, and log verbosity,
// following the flag/PreRunE shape operator-registry's index command uses
// to wire logrus into a cobra.Command.
package main
