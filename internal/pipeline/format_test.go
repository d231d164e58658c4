package pipeline

import (
	"errors"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/audio-summarizer/internal/audio"
)

func TestCheckFormat(t *testing.T) {
	tests := []struct {
		policy  audio.Format
		path    string
		wantErr bool
	}{
		{audio.FormatWAV, "/data/clip.wav", false},
		{audio.FormatWAV, "/data/CLIP.WAV", false},
		{audio.FormatWAV, "/data/clip.mp3", true},
		{audio.FormatWAV, "/data/clip", true},
		{audio.FormatMP3, "/data/clip.Mp3", false},
		{audio.FormatMP3, "/data/clip.wav", true},
		{audio.FormatMP3, "/data/mp3", true},
	}

	for _, tt := range tests {
		t.Run(tt.policy.String()+" "+tt.path, func(t *testing.T) {
			p, _ := newTestPipeline(t, tt.policy)
			err := p.checkFormat(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("checkFormat() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			if !errors.Is(err, audio.ErrUnsupportedFormat) {
				t.Errorf("error = %v, want ErrUnsupportedFormat", err)
			}
			if !strings.Contains(err.Error(), tt.policy.Ext()) {
				t.Errorf("error %q does not name expected extension %s", err, tt.policy.Ext())
			}
		})
	}
}
