// Package inspect loads a .docx with go-docx and reports what is inside.
// The merge pipeline uses it to validate every docx input before any
// output is composed; the CLI exposes it as the inspect subcommand.
package inspect

import (
	"fmt"
	"os"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/dgallion1/docnav/internal/section"
)

// Report summarizes one document's content.
type Report struct {
	Path         string
	Paragraphs   int
	Headings     int
	Words        int
	FirstHeading string
}

// File parses a .docx and builds its report. Parse failures come back as
// a *section.LoadError naming the file.
func File(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &section.LoadError{Path: path, Err: err}
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, &section.LoadError{Path: path, Err: err}
	}

	doc, err := docx.Parse(f, fi.Size())
	if err != nil {
		return nil, &section.LoadError{Path: path, Err: fmt.Errorf("parse docx: %w", err)}
	}

	rep := &Report{Path: path}
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		text := paragraphText(para)
		if text == "" {
			continue
		}
		rep.Paragraphs++
		rep.Words += len(strings.Fields(text))
		if headingLevel(para) > 0 {
			rep.Headings++
			if rep.FirstHeading == "" {
				rep.FirstHeading = text
			}
		}
	}
	return rep, nil
}

// headingLevel maps a paragraph's style to its heading level, 0 for body text.
func headingLevel(para *docx.Paragraph) int {
	if para.Properties == nil || para.Properties.Style == nil {
		return 0
	}
	style := strings.ToLower(strings.ReplaceAll(para.Properties.Style.Val, " ", ""))
	if !strings.HasPrefix(style, "heading") {
		return 0
	}
	rest := strings.TrimPrefix(style, "heading")
	if len(rest) == 1 && rest[0] >= '1' && rest[0] <= '6' {
		return int(rest[0] - '0')
	}
	return 0
}

func paragraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
