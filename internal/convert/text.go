package convert

import (
	"bufio"
	"io"
	"strings"

	"github.com/dgallion1/docnav/internal/section"
)

// TextConverter handles plain text files. Blank lines separate paragraphs.
type TextConverter struct{}

func (c *TextConverter) Convert(r io.Reader, filename string) ([]section.Section, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var secs []section.Section
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			secs = append(secs, section.Section{
				Text: current.String(),
				Type: "paragraph",
			})
			current.Reset()
		}
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			flush()
		} else {
			if current.Len() > 0 {
				current.WriteString("\n")
			}
			current.WriteString(line)
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return secs, nil
}
