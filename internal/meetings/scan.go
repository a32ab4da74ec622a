package meetings

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"meetingaudio/internal/logging"
	"meetingaudio/internal/recording"
)

const (
	transcriptFile = "transcript.md"
	summaryFile    = "summary.md"
)

// Meeting describes one meeting folder and the recording it resolves to.
type Meeting struct {
	Name          string
	Dir           string
	Recording     string
	Candidates    int
	HasTranscript bool
	HasSummary    bool
	Err           error
}

// Scanner resolves every meeting folder under a meetings directory.
type Scanner struct {
	resolver *recording.Resolver
	workers  int
	logger   *slog.Logger
}

// NewScanner builds a Scanner. workers below one is treated as one.
func NewScanner(resolver *recording.Resolver, workers int, logger *slog.Logger) *Scanner {
	if resolver == nil {
		resolver = recording.NewResolver(logger)
	}
	if workers < 1 {
		workers = 1
	}
	return &Scanner{
		resolver: resolver,
		workers:  workers,
		logger:   logging.NewComponentLogger(logger, "meetings"),
	}
}

// Scan lists the meeting folders directly under root, newest name first, and
// resolves each one's recording. The returned error covers root itself and
// cancellation; per-folder failures land in Meeting.Err.
func (s *Scanner) Scan(ctx context.Context, root string) ([]Meeting, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read meetings directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if isDirEntry(root, entry) {
			names = append(names, entry.Name())
		}
	}
	// Folder names are date-prefixed, so reverse order lists newest first.
	slices.Sort(names)
	slices.Reverse(names)

	meetings := make([]Meeting, len(names))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.workers)
	for i, name := range names {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			meetings[i] = s.inspect(groupCtx, root, name)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	logging.WithContext(ctx, s.logger).Debug("meetings scanned",
		logging.String("root", root),
		logging.Int("meeting_count", len(meetings)),
	)
	return meetings, nil
}

func (s *Scanner) inspect(ctx context.Context, root, name string) Meeting {
	dir := filepath.Join(root, name)
	meeting := Meeting{Name: name, Dir: dir}

	result, err := s.resolver.Resolve(ctx, dir)
	if err != nil {
		logging.WithContext(ctx, s.logger).Warn("meeting folder could not be resolved",
			logging.String("folder", dir),
			logging.Error(err),
		)
		meeting.Err = err
		return meeting
	}
	meeting.Dir = result.Dir
	meeting.Recording = result.Path
	meeting.Candidates = len(result.Candidates)
	meeting.HasTranscript = fileExists(filepath.Join(result.Dir, transcriptFile))
	meeting.HasSummary = fileExists(filepath.Join(result.Dir, summaryFile))
	return meeting
}

// isDirEntry reports whether entry is a directory, following symlinks.
func isDirEntry(root string, entry os.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(root, entry.Name()))
	return err == nil && info.IsDir()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
