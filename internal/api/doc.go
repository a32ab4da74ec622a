// Package api defines the host-facing surface of the recording lookup and the
// wire-format types the CLI emits for host applications.
//
// # Key Types
//
// AudioPathResponse: JSON envelope of one lookup. Path is null when the folder
// holds no recording; Error and Kind are set when the lookup failed.
//
// MeetingView: transport representation of one scanned meeting folder.
//
// # Entry Points
//
// ResolveMeetingAudioPath mirrors the host command contract: one folder path
// in, an optional path or an error out.
//
// Service wraps a recording.Resolver with logging and produces
// AudioPathResponse values for the CLI.
//
// # Design Notes
//
// DTOs use camelCase JSON tags for JavaScript/TypeScript consumers. Error
// kinds are stable lowercase strings so hosts can branch without parsing
// messages.
package api
