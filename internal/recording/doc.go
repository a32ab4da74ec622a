// Package recording resolves the canonical audio/video recording stored in a
// meeting folder.
//
// A lookup runs three stages in order. The folder path is canonicalized
// (absolute, symlinks followed, dot segments removed) and must name a
// directory. The directory's immediate entries are then filtered down to
// regular files carrying one of the recognized extensions (mp4, wav, mp3, m4a,
// webm, ogg; compared case-insensitively). Finally the candidates are ordered
// byte-wise by full path and the first one wins.
//
// Finding no candidate is a successful lookup with an empty Result.Path.
// Failures are reported as *PathResolutionError, *NotADirectoryError or
// *DirectoryReadError, each matching its sentinel through errors.Is.
//
// Key types:
//   - Resolver: performs lookups, logging decisions through slog
//   - Result: the resolved directory, ordered candidates and selection
//
// Primary entry points:
//   - Resolve: one-shot lookup with a no-op logger
//   - (*Resolver).Resolve: lookup with structured logging
package recording
