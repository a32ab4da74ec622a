package api

// Error kinds reported in AudioPathResponse.Kind and MeetingView.ErrorKind.
const (
	KindPathResolution = "path_resolution"
	KindNotADirectory  = "not_a_directory"
	KindDirectoryRead  = "directory_read"
	KindInternal       = "internal"
)

// AudioPathResponse describes one lookup in a transport-friendly format.
type AudioPathResponse struct {
	Folder         string  `json:"folder"`
	Directory      string  `json:"directory,omitempty"`
	Path           *string `json:"path"`
	CandidateCount int     `json:"candidateCount"`
	Error          string  `json:"error,omitempty"`
	Kind           string  `json:"kind,omitempty"`
}

// Found reports whether the response carries a recording path.
func (r AudioPathResponse) Found() bool {
	return r.Path != nil
}

// MeetingView describes a scanned meeting folder.
type MeetingView struct {
	Name           string  `json:"name"`
	Directory      string  `json:"directory"`
	Recording      *string `json:"recording"`
	CandidateCount int     `json:"candidateCount"`
	HasTranscript  bool    `json:"hasTranscript"`
	HasSummary     bool    `json:"hasSummary"`
	Error          string  `json:"error,omitempty"`
	ErrorKind      string  `json:"errorKind,omitempty"`
}
