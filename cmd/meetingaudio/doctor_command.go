package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"meetingaudio/internal/preflight"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that configured directories are usable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			results := preflight.RunAll(cfg)
			for _, r := range results {
				fmt.Fprintf(out, "  %s %s: %s\n", statusMark(r.Passed, colorize), r.Name, r.Detail)
			}
			if preflight.Failed(results) {
				return fmt.Errorf("preflight checks failed")
			}
			return nil
		},
	}
}

func statusMark(passed, colorize bool) string {
	mark, color := "FAIL", ansiRed
	if passed {
		mark, color = "OK", ansiGreen
	}
	if !colorize {
		return "[" + mark + "]"
	}
	return "[" + color + mark + ansiReset + "]"
}
