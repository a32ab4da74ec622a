package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"meetingaudio/internal/api"
	"meetingaudio/internal/meetings"
	"meetingaudio/internal/recording"
	"meetingaudio/internal/testsupport"
)

func TestResolveMeetingAudioPath(t *testing.T) {
	root := testsupport.MeetingsRoot(t)
	dir := testsupport.MeetingFolder(t, root, "m", "zebra.mp4", "alpha.mp4", "beta.wav")

	path, err := api.ResolveMeetingAudioPath(dir)
	if err != nil {
		t.Fatalf("ResolveMeetingAudioPath returned error: %v", err)
	}
	if path == nil || *path != filepath.Join(dir, "alpha.mp4") {
		t.Fatalf("unexpected path: %v", path)
	}
}

func TestResolveMeetingAudioPathNone(t *testing.T) {
	root := testsupport.MeetingsRoot(t)
	dir := testsupport.MeetingFolder(t, root, "m", "notes.txt")

	path, err := api.ResolveMeetingAudioPath(dir)
	if err != nil {
		t.Fatalf("ResolveMeetingAudioPath returned error: %v", err)
	}
	if path != nil {
		t.Fatalf("expected nil path, got %q", *path)
	}
}

func TestResolveMeetingAudioPathErrorMessages(t *testing.T) {
	root := testsupport.MeetingsRoot(t)
	file := filepath.Join(root, "recording.mp4")
	testsupport.WriteFile(t, file, 0)

	_, err := api.ResolveMeetingAudioPath("/nonexistent/folder/path")
	if err == nil || !strings.Contains(err.Error(), "/nonexistent/folder/path") || !strings.Contains(err.Error(), "no such file") {
		t.Fatalf("expected message with input and cause, got %v", err)
	}

	_, err = api.ResolveMeetingAudioPath(file)
	if err == nil || !strings.Contains(err.Error(), "not a directory") || !strings.Contains(err.Error(), file) {
		t.Fatalf("expected not-a-directory message, got %v", err)
	}
}

func TestErrorKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{&recording.PathResolutionError{Input: "x", Err: errors.New("boom")}, api.KindPathResolution},
		{&recording.NotADirectoryError{Input: "x"}, api.KindNotADirectory},
		{fmt.Errorf("wrapped: %w", &recording.DirectoryReadError{Dir: "x", Err: errors.New("eio")}), api.KindDirectoryRead},
		{errors.New("other"), api.KindInternal},
	}
	for _, tt := range tests {
		if got := api.ErrorKind(tt.err); got != tt.want {
			t.Errorf("ErrorKind(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestAudioPathResponseJSON(t *testing.T) {
	root := testsupport.MeetingsRoot(t)
	dir := testsupport.MeetingFolder(t, root, "m", "notes.txt")

	resp, err := api.NewService(nil).ResolveAudioPath(context.Background(), dir)
	if err != nil {
		t.Fatalf("ResolveAudioPath returned error: %v", err)
	}
	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"path":null`) {
		t.Fatalf("expected explicit null path, got %s", data)
	}
	if strings.Contains(string(data), `"error"`) {
		t.Fatalf("expected no error field, got %s", data)
	}
}

func TestServiceResolveAudioPathFailure(t *testing.T) {
	resp, err := api.NewService(nil).ResolveAudioPath(context.Background(), "")
	if !errors.Is(err, recording.ErrPathResolution) {
		t.Fatalf("expected ErrPathResolution, got %v", err)
	}
	if resp.Kind != api.KindPathResolution || resp.Error == "" || resp.Path != nil {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestFromMeetings(t *testing.T) {
	rec := "/m/a/alpha.mp4"
	got := api.FromMeetings([]meetings.Meeting{
		{Name: "a", Dir: "/m/a", Recording: rec, Candidates: 2, HasTranscript: true},
		{Name: "b", Dir: "/m/b", Err: &recording.DirectoryReadError{Dir: "/m/b", Err: errors.New("denied")}},
	})
	want := []api.MeetingView{
		{Name: "a", Directory: "/m/a", Recording: &rec, CandidateCount: 2, HasTranscript: true},
		{Name: "b", Directory: "/m/b", Error: `failed to read directory "/m/b": denied`, ErrorKind: api.KindDirectoryRead},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected views (-want +got):\n%s", diff)
	}
}
