package recording

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// IsAudioExtension reports whether ext (without the leading dot) names a
// recognized recording format: mp4, wav, mp3, m4a, webm or ogg. Matching
// ignores case.
func IsAudioExtension(ext string) bool {
	switch cases.Lower(language.Und).String(ext) {
	case "mp4", "wav", "mp3", "m4a", "webm", "ogg":
		return true
	default:
		return false
	}
}

// fileExtension returns the text after the final dot of name. A name whose
// only dot is the leading one (".mp4") has no extension.
func fileExtension(name string) (string, bool) {
	idx := strings.LastIndexByte(name, '.')
	if idx <= 0 {
		return "", false
	}
	return name[idx+1:], true
}

// HasAudioExtension reports whether the file name carries a recognized
// recording extension.
func HasAudioExtension(name string) bool {
	ext, ok := fileExtension(name)
	if !ok {
		return false
	}
	return IsAudioExtension(ext)
}
