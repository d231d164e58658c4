package pipeline

import (
	"encoding/base64"
	"os"

	"github.com/nguyentantai21042004/audio-summarizer/internal/audio"
)

// encodePayload reads the whole file and returns it as standard base64.
func encodePayload(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", audio.IO(err, "read %s", path)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}
