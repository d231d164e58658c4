package report

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/audio-summarizer/internal/audio"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

var (
	reHeading = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBold    = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBullet  = regexp.MustCompile(`^[\-\*]\s+(.+)$`)
)

// WriteDocx writes batch results to a styled docx file: a title, then one
// section per file with its summary. Markdown in summaries is rendered.
func WriteDocx(title string, at time.Time, results []audio.Result, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	addStyledRun(doc.AddParagraph(""), title, true, 16)
	addStyledRun(doc.AddParagraph(""), at.Format(timeLayout), false, fontSize)

	for _, r := range results {
		doc.AddParagraph("")
		addStyledRun(doc.AddParagraph(""), filepath.Base(r.Source), true, 15)
		for _, line := range summaryLines(resultText(r)) {
			renderLine(doc, line)
		}
	}

	if err := doc.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save %s: %w", outputPath, err)
	}
	return nil
}

// summaryLines drops blank lines and horizontal rules.
func summaryLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "---" {
			continue
		}
		lines = append(lines, trimmed)
	}
	return lines
}

func renderLine(doc *docx.RootDoc, line string) {
	if m := reHeading.FindStringSubmatch(line); m != nil {
		addStyledRun(doc.AddParagraph(""), m[2], true, headingSize(len(m[1])))
		return
	}
	if m := reBullet.FindStringSubmatch(line); m != nil {
		addRichText(doc.AddParagraph(""), "• "+m[1])
		return
	}
	addRichText(doc.AddParagraph(""), line)
}

func headingSize(level int) uint64 {
	switch level {
	case 1:
		return 16
	case 2:
		return 15
	case 3:
		return 14
	default:
		return fontSize
	}
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	text = cleanMarkdownInline(text)
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

func addRichText(p *docx.Paragraph, text string) {
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			p.AddText(cleanMarkdownInline(part)).Font(fontName).Size(fontSize).Color("000000")
		}
		if i < len(matches) {
			p.AddText(cleanMarkdownInline(matches[i][1])).Font(fontName).Size(fontSize).Color("000000").Bold(true)
		}
	}
}

func cleanMarkdownInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
