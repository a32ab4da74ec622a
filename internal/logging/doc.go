// Package logging assembles structured slog loggers and formatting helpers used
// across meetingaudio.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so a lookup can tag its log
// lines with the invocation's correlation ID. A no-op logger is provided for
// tests and library callers that do not want output.
package logging
