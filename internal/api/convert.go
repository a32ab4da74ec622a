package api

import (
	"errors"

	"meetingaudio/internal/meetings"
	"meetingaudio/internal/recording"
)

// ErrorKind maps a lookup error to its stable kind string. A nil error maps
// to the empty string.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, recording.ErrPathResolution):
		return KindPathResolution
	case errors.Is(err, recording.ErrNotADirectory):
		return KindNotADirectory
	case errors.Is(err, recording.ErrDirectoryRead):
		return KindDirectoryRead
	default:
		return KindInternal
	}
}

// FromResult converts a lookup outcome into its wire form.
func FromResult(folder string, result recording.Result, err error) AudioPathResponse {
	resp := AudioPathResponse{Folder: folder}
	if err != nil {
		resp.Error = err.Error()
		resp.Kind = ErrorKind(err)
		return resp
	}
	resp.Directory = result.Dir
	resp.CandidateCount = len(result.Candidates)
	resp.Path = optional(result.Path)
	return resp
}

// FromMeetings converts scanned meetings into their wire form, preserving order.
func FromMeetings(list []meetings.Meeting) []MeetingView {
	views := make([]MeetingView, 0, len(list))
	for _, m := range list {
		view := MeetingView{
			Name:           m.Name,
			Directory:      m.Dir,
			Recording:      optional(m.Recording),
			CandidateCount: m.Candidates,
			HasTranscript:  m.HasTranscript,
			HasSummary:     m.HasSummary,
		}
		if m.Err != nil {
			view.Error = m.Err.Error()
			view.ErrorKind = ErrorKind(m.Err)
		}
		views = append(views, view)
	}
	return views
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
