package report

import (
	"bytes"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/nguyentantai21042004/audio-summarizer/internal/audio"
)

const pageTemplate = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s</body>
</html>
`

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "`", "\\`", "*", `\*`, "_", `\_`,
	"[", `\[`, "]", `\]`, "#", `\#`, "<", `\<`, ">", `\>`,
)

// Sections renders batch results as one markdown section per file. Unlike
// Table it keeps each summary's own markdown intact.
func Sections(title string, at time.Time, results []audio.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n_%s_\n", markdownEscaper.Replace(title), at.Format(timeLayout))
	for _, r := range results {
		fmt.Fprintf(&b, "\n## %s\n\n%s\n", markdownEscaper.Replace(filepath.Base(r.Source)), strings.TrimSpace(resultText(r)))
	}
	return b.String()
}

// WriteHTML renders Sections to a standalone HTML page. Raw HTML inside
// summaries is not passed through.
func WriteHTML(title string, at time.Time, results []audio.Result, outputPath string) error {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))

	var body bytes.Buffer
	if err := md.Convert([]byte(Sections(title, at, results)), &body); err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}

	page := fmt.Sprintf(pageTemplate, html.EscapeString(title), body.String())
	if err := os.WriteFile(outputPath, []byte(page), 0644); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}
	return nil
}
