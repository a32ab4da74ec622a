package main

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"meetingaudio/internal/api"
	"meetingaudio/internal/config"
	"meetingaudio/internal/meetings"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var dirFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List meeting folders and the recording each resolves to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			svc, err := ctx.service()
			if err != nil {
				return err
			}

			root := cfg.Paths.MeetingsDir
			if strings.TrimSpace(dirFlag) != "" {
				if root, err = config.ExpandPath(strings.TrimSpace(dirFlag)); err != nil {
					return fmt.Errorf("resolve meetings directory: %w", err)
				}
			}

			scanner := meetings.NewScanner(svc.Resolver(), cfg.Scan.Workers, logger)
			list, err := scanner.Scan(cmd.Context(), root)
			if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, api.FromMeetings(list))
			}

			out := cmd.OutOrStdout()
			if len(list) == 0 {
				fmt.Fprintf(out, "No meetings found in %s\n", root)
				return nil
			}
			fmt.Fprintln(out, renderMeetingTable(list, shouldColorize(out)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of a table")
	cmd.Flags().StringVarP(&dirFlag, "dir", "d", "", "Meetings directory (defaults to paths.meetings_dir)")
	return cmd
}

func renderMeetingTable(list []meetings.Meeting, colorize bool) string {
	headers := []string{"Meeting", "Recording", "Candidates", "Transcript", "Summary"}
	aligns := []columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignLeft}

	rows := make([][]string, 0, len(list))
	for _, m := range list {
		recording := "-"
		switch {
		case m.Err != nil:
			recording = "error: " + api.ErrorKind(m.Err)
			if colorize {
				recording = ansiRed + recording + ansiReset
			}
		case m.Recording != "":
			recording = filepath.Base(m.Recording)
		}
		rows = append(rows, []string{
			m.Name,
			recording,
			strconv.Itoa(m.Candidates),
			yesNo(m.HasTranscript),
			yesNo(m.HasSummary),
		})
	}
	return renderTable(headers, rows, aligns)
}
