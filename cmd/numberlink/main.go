package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var (
		color        bool
		repairBudget int
		debug        bool
	)

	cmd := &cobra.Command{
		Use:   "numberlink <puzzle-file-or-dir>",
		Short: "solve Numberlink/Flow-Free puzzles by reduction to SAT",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			if debug {
				logrus.SetLevel(logrus.DebugLevel)
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := runConfig{
				color:        color,
				repairBudget: repairBudget,
				log:          logrus.StandardLogger(),
			}

			return solvePath(cmd.OutOrStdout(), args[0], cfg)
		},
	}

	cmd.Flags().BoolVar(&color, "color", false, "render solved paths with ANSI background colors")
	cmd.Flags().IntVar(&repairBudget, "repair-budget", 0, "maximum cycle-repair rounds before giving up (0 = unbounded)")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug-level logging of each refinement round")

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
