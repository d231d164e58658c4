package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/audio-summarizer/internal/audio"
)

// Write exports batch results to outputPath. The extension picks the
// format: .md for a markdown table, .html for a rendered page, .docx for a
// Word document.
func Write(outputPath, title string, at time.Time, results []audio.Result) error {
	if dir := filepath.Dir(outputPath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}

	switch strings.ToLower(filepath.Ext(outputPath)) {
	case ".md", ".markdown":
		return os.WriteFile(outputPath, []byte(Table(title, at, results)), 0644)
	case ".html", ".htm":
		return WriteHTML(title, at, results, outputPath)
	case ".docx":
		return WriteDocx(title, at, results, outputPath)
	default:
		return fmt.Errorf("unsupported report format %q (use .md, .html or .docx)", filepath.Ext(outputPath))
	}
}
