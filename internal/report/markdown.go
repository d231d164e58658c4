package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/audio-summarizer/internal/audio"
)

const timeLayout = "2006-01-02 15:04"

// Summary renders one summary as a small markdown document.
func Summary(name string, at time.Time, summary string) string {
	return fmt.Sprintf("# %s\n\n_%s_\n\n%s\n",
		name,
		at.Format(timeLayout),
		strings.TrimSpace(summary),
	)
}

// WriteSummary writes <stem>.md for name into dir and returns its path.
func WriteSummary(dir, name string, at time.Time, summary string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	stem := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	mdPath := filepath.Join(dir, stem+".md")
	if err := os.WriteFile(mdPath, []byte(Summary(stem, at, summary)), 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", mdPath, err)
	}
	return mdPath, nil
}

// Table renders batch results as a two column markdown table, in order.
func Table(title string, at time.Time, results []audio.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n_%s_\n\n", title, at.Format(timeLayout))
	b.WriteString("| File | Summary |\n")
	b.WriteString("|------|---------|\n")
	for _, r := range results {
		fmt.Fprintf(&b, "| %s | %s |\n", cell(filepath.Base(r.Source)), cell(resultText(r)))
	}
	return b.String()
}

// resultText is what a report shows for one row.
func resultText(r audio.Result) string {
	if r.Failed() {
		return "Error: " + r.Error
	}
	return r.Summary
}

// cell keeps a value on one table row.
func cell(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", "<br>")
}
