// Package config loads, normalizes, and validates meetingaudio configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files and honours environment overrides such as
// MEETINGAUDIO_MEETINGS_DIR. The recognized recording extensions are not part
// of the configuration; they are fixed in package recording.
package config
