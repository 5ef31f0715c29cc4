// Package convert turns non-docx sources into document sections so they
// can be merged alongside native .docx inputs.
package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgallion1/docnav/internal/section"
)

// Converter flattens one source format into sections.
type Converter interface {
	Convert(r io.Reader, filename string) ([]section.Section, error)
}

// Options configure conversion behavior.
type Options struct {
	// PDFFallbackPdftotext enables shelling out to pdftotext when the Go
	// PDF library cannot extract text.
	PDFFallbackPdftotext bool
}

// ForFile returns the converter for a filename. Native .docx inputs have
// no converter; the composer splices them directly.
func ForFile(filename string, opts Options) (Converter, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".md", ".markdown":
		return &MarkdownConverter{}, nil
	case ".txt":
		return &TextConverter{}, nil
	case ".csv":
		return &CSVConverter{}, nil
	case ".html", ".htm":
		return &HTMLConverter{}, nil
	case ".pdf":
		return &PDFConverter{FallbackPdftotext: opts.PDFFallbackPdftotext}, nil
	default:
		return nil, fmt.Errorf("no converter for extension: %s", filepath.Ext(filename))
	}
}

// File opens and converts a source file. Failures are reported as a
// *section.LoadError naming the path.
func File(path string, opts Options) ([]section.Section, error) {
	conv, err := ForFile(path, opts)
	if err != nil {
		return nil, &section.LoadError{Path: path, Err: err}
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, &section.LoadError{Path: path, Err: err}
	}
	defer f.Close()

	secs, err := conv.Convert(f, filepath.Base(path))
	if err != nil {
		return nil, &section.LoadError{Path: path, Err: err}
	}
	return secs, nil
}
