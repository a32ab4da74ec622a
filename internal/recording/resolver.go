package recording

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"meetingaudio/internal/logging"
)

// readBatch bounds how many directory entries are pulled per ReadDir call.
const readBatch = 256

// Result describes a completed lookup. Path is empty when the folder holds no
// recognized recording.
type Result struct {
	Folder     string   // folder path as supplied by the caller
	Dir        string   // canonical directory that was enumerated
	Path       string   // selected recording, or empty
	Candidates []string // every candidate, ordered; Path is Candidates[0]
}

// Found reports whether a recording was selected.
func (r Result) Found() bool {
	return r.Path != ""
}

// Resolver performs meeting recording lookups. It holds no per-lookup state,
// so one Resolver may serve concurrent calls.
type Resolver struct {
	logger *slog.Logger
}

// NewResolver builds a Resolver that logs through logger (nil discards).
func NewResolver(logger *slog.Logger) *Resolver {
	return &Resolver{logger: logging.NewComponentLogger(logger, "recording")}
}

// Resolve runs a lookup without logging.
func Resolve(folder string) (Result, error) {
	return NewResolver(nil).Resolve(context.Background(), folder)
}

// Resolve locates the canonical recording inside folder. ctx only carries
// logging fields; the lookup itself is not cancellable.
func (r *Resolver) Resolve(ctx context.Context, folder string) (Result, error) {
	logger := logging.WithContext(ctx, r.logger)

	dir, err := resolveDirectory(folder)
	if err != nil {
		logger.Debug("meeting folder rejected",
			logging.String("folder", folder),
			logging.Error(err),
		)
		return Result{}, err
	}

	candidates, err := listCandidates(logger, folder, dir)
	if err != nil {
		logger.Debug("meeting folder unreadable",
			logging.String("folder", folder),
			logging.String("dir", dir),
			logging.Error(err),
		)
		return Result{}, err
	}

	result := Result{Folder: folder, Dir: dir, Candidates: candidates}
	if len(candidates) == 0 {
		attrs := append(logging.DecisionAttrs("recording_selection", "none", "no recognized audio files"),
			logging.String("dir", dir))
		logger.Debug("no meeting recording found", logging.Args(attrs...)...)
		return result, nil
	}

	result.Path = candidates[0]
	attrs := append(logging.DecisionAttrs("recording_selection", result.Path, "lexicographically first candidate"),
		logging.String("dir", dir),
		logging.Int("candidate_count", len(candidates)),
	)
	logger.Debug("meeting recording selected", logging.Args(attrs...)...)
	return result, nil
}

// resolveDirectory canonicalizes folder and confirms it names a directory.
func resolveDirectory(folder string) (string, error) {
	canonical, err := canonicalize(folder)
	if err != nil {
		return "", &PathResolutionError{Input: folder, Err: err}
	}
	info, err := os.Stat(canonical)
	if err != nil {
		return "", &PathResolutionError{Input: folder, Err: err}
	}
	if !info.IsDir() {
		return "", &NotADirectoryError{Input: folder, Resolved: canonical}
	}
	return canonical, nil
}

// canonicalize returns the absolute, symlink-free form of path. Relative paths
// are anchored at the working directory without lexical cleaning so that ".."
// after a symlink climbs from the link target, as the kernel would.
func canonicalize(path string) (string, error) {
	if path == "" {
		return "", &fs.PathError{Op: "canonicalize", Path: path, Err: fs.ErrNotExist}
	}
	if !filepath.IsAbs(path) {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		path = wd + string(filepath.Separator) + path
	}
	return filepath.EvalSymlinks(path)
}

// listCandidates returns the ordered recordings directly inside dir. Entries
// that cannot be inspected are dropped.
func listCandidates(logger *slog.Logger, folder, dir string) ([]string, error) {
	handle, err := os.Open(dir)
	if err != nil {
		return nil, &DirectoryReadError{Input: folder, Dir: dir, Err: err}
	}
	defer handle.Close()

	var candidates []string
	for {
		entries, err := handle.ReadDir(readBatch)
		for _, entry := range entries {
			if path, ok := candidatePath(logger, dir, entry); ok {
				candidates = append(candidates, path)
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				logger.Debug("directory listing ended early",
					logging.String("dir", dir),
					logging.Error(err),
				)
			}
			break
		}
		if len(entries) == 0 {
			break
		}
	}

	slices.Sort(candidates)
	return candidates, nil
}

// candidatePath reports the full path of entry when it is a regular file with
// a recognized extension. Symlinks are judged by their target.
func candidatePath(logger *slog.Logger, dir string, entry fs.DirEntry) (string, bool) {
	name := entry.Name()
	if !HasAudioExtension(name) {
		return "", false
	}
	path := filepath.Join(dir, name)
	info, err := os.Stat(path)
	if err != nil {
		logger.Debug("skipping uninspectable entry",
			logging.String("path", path),
			logging.Error(err),
		)
		return "", false
	}
	if !info.Mode().IsRegular() {
		return "", false
	}
	return path, true
}
