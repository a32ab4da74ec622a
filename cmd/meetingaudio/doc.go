// Package main hosts the meetingaudio CLI entrypoint and command graph.
//
// The Cobra-based command tree exposes the meeting recording lookup to
// terminals and host applications: `resolve` prints the recording of one
// meeting folder (or a JSON envelope with --json), `list` resolves every
// folder under the configured meetings directory, `doctor` runs preflight
// checks and `config` scaffolds or validates the TOML configuration.
//
// Keep this package lean: lookup semantics live in internal/recording and
// internal/api; commands only parse flags, call them and render output.
package main
