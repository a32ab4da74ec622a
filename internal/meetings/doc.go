// Package meetings walks a meetings directory and resolves the recording of
// every meeting folder in it.
//
// Each immediate subdirectory is one meeting. Folders are resolved in
// parallel, bounded by the configured worker count; a folder that fails to
// resolve is reported on its own entry and does not abort the scan.
package meetings
