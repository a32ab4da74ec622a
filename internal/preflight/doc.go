// Package preflight provides readiness checks for the filesystem paths
// meetingaudio depends on.
//
// The CLI "meetingaudio doctor" command runs RunAll and prints each Result.
// The meetings directory only needs to be listable; the log directory, when
// configured, must also be writable.
package preflight
