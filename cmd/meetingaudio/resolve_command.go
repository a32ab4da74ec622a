package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"meetingaudio/internal/api"
)

func newResolveCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var verbose bool

	cmd := &cobra.Command{
		Use:     "resolve <meeting-folder>",
		Aliases: []string{"get-meeting-audio-path"},
		Short:   "Print the recording stored in a meeting folder",
		Long: `Print the absolute path of the recording stored directly inside the meeting
folder. Regular files ending in mp4, wav, mp3, m4a, webm or ogg (any case) are
candidates; when several exist the lexicographically smallest path wins.

Nothing is printed to stdout when the folder holds no recording. The lookup
does not depend on the configuration file: an unreadable config only affects
logging.`,
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := api.NewService(ctx.lookupLogger())

			resp, lookupErr := svc.ResolveAudioPath(cmd.Context(), args[0])
			if jsonOutput {
				if err := writeJSON(cmd, resp); err != nil {
					return err
				}
				return lookupErr
			}
			if lookupErr != nil {
				return lookupErr
			}

			if !resp.Found() {
				fmt.Fprintf(cmd.ErrOrStderr(), "No audio file found in %s\n", resp.Directory)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), *resp.Path)
			if verbose && resp.CandidateCount > 1 {
				fmt.Fprintf(cmd.ErrOrStderr(), "Selected 1 of %d candidates\n", resp.CandidateCount)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit a JSON envelope instead of plain text")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Report how many candidates were considered")
	return cmd
}
