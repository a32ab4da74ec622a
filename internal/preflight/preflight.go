package preflight

import (
	"meetingaudio/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes all applicable preflight checks for the given config.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckDirectoryReadable("Meetings directory", cfg.Paths.MeetingsDir),
	}
	if cfg.Paths.LogDir != "" {
		results = append(results, CheckDirectoryWritable("Log directory", cfg.Paths.LogDir))
	}
	return results
}

// Failed reports whether any result did not pass.
func Failed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return true
		}
	}
	return false
}
