package audio

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"wav", FormatWAV, false},
		{"WAV", FormatWAV, false},
		{".mp3", FormatMP3, false},
		{" mp3 ", FormatMP3, false},
		{"ogg", FormatUnknown, true},
		{"", FormatUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatMatches(t *testing.T) {
	tests := []struct {
		format Format
		path   string
		want   bool
	}{
		{FormatWAV, "/a/b/clip.wav", true},
		{FormatWAV, "/a/b/CLIP.WAV", true},
		{FormatWAV, "/a/b/clip.Wav", true},
		{FormatWAV, "/a/b/clip.mp3", false},
		{FormatMP3, "clip.mp3", true},
		{FormatMP3, "clip.mp3.wav", false},
		{FormatMP3, "clip", false},
		{FormatUnknown, "clip", false},
	}

	for _, tt := range tests {
		t.Run(tt.format.String()+"_"+tt.path, func(t *testing.T) {
			if got := tt.format.Matches(tt.path); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestErrorIs(t *testing.T) {
	cause := fs.ErrNotExist
	err := IO(cause, "read %s", "x.wav")

	if !errors.Is(err, ErrIO) {
		t.Error("errors.Is(err, ErrIO) = false, want true")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("errors.Is(err, fs.ErrNotExist) = false, want true")
	}
	if errors.Is(err, ErrDownload) {
		t.Error("errors.Is(err, ErrDownload) = true, want false")
	}

	msg := Unsupported(FormatWAV, "a.mp3").Error()
	if want := "unsupported audio format: expected a .wav file, got \"a.mp3\""; msg != want {
		t.Errorf("Error() = %q, want %q", msg, want)
	}
}

func TestArtifactRelease(t *testing.T) {
	dir := t.TempDir()
	tmp := filepath.Join(dir, "dl")
	if err := os.Mkdir(tmp, 0755); err != nil {
		t.Fatal(err)
	}

	local := NewArtifact(filepath.Join(dir, "keep.wav"), OriginUpload)
	if local.Transient() {
		t.Error("local artifact reported transient")
	}
	if err := local.Release(); err != nil {
		t.Errorf("Release() on local artifact = %v", err)
	}

	a := NewTransientArtifact(filepath.Join(tmp, "clip.wav"), tmp, OriginURL)
	if a.Format != FormatWAV {
		t.Errorf("Format = %v, want wav", a.Format)
	}
	if err := a.Release(); err != nil {
		t.Fatalf("Release() = %v", err)
	}
	if _, err := os.Stat(tmp); !os.IsNotExist(err) {
		t.Errorf("temp dir still present after Release: %v", err)
	}
	if err := a.Release(); err != nil {
		t.Errorf("second Release() = %v", err)
	}
}
