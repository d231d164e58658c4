// Package audio holds the types shared by every stage of the summarization
// pipeline: the container format policy, artifacts and per-item results.
package audio

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is a supported audio container.
type Format int

const (
	FormatUnknown Format = iota
	FormatWAV
	FormatMP3
)

// ParseFormat parses a policy name such as "wav", ".MP3" or "mp3".
func ParseFormat(s string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".") {
	case "wav":
		return FormatWAV, nil
	case "mp3":
		return FormatMP3, nil
	}
	return FormatUnknown, fmt.Errorf("unknown audio format %q (want wav or mp3)", s)
}

// FormatFromPath maps a file extension to a Format, case-insensitively.
func FormatFromPath(path string) Format {
	f, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return FormatUnknown
	}
	return f
}

// String returns the format tag sent to the inference endpoint.
func (f Format) String() string {
	switch f {
	case FormatWAV:
		return "wav"
	case FormatMP3:
		return "mp3"
	default:
		return "unknown"
	}
}

// Ext returns the file extension including the leading dot.
func (f Format) Ext() string {
	if f == FormatUnknown {
		return ""
	}
	return "." + f.String()
}

func (f Format) MIMEType() string {
	switch f {
	case FormatWAV:
		return "audio/wav"
	case FormatMP3:
		return "audio/mpeg"
	default:
		return "application/octet-stream"
	}
}

// Matches reports whether path carries this format's extension.
func (f Format) Matches(path string) bool {
	return f != FormatUnknown && strings.EqualFold(filepath.Ext(path), f.Ext())
}
