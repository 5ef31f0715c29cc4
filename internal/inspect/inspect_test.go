package inspect

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dgallion1/docnav/internal/sampledocs"
	"github.com/dgallion1/docnav/internal/section"
)

func TestFile_ReportsSampleDocument(t *testing.T) {
	dir := t.TempDir()
	paths, err := sampledocs.Generate(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Fatal("expected sample documents")
	}

	rep, err := File(paths[0])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.Path != paths[0] {
		t.Errorf("expected path %s, got %s", paths[0], rep.Path)
	}
	if rep.Paragraphs == 0 {
		t.Error("expected paragraphs to be counted")
	}
	if rep.Headings == 0 {
		t.Error("expected headings to be counted")
	}
	if rep.Words == 0 {
		t.Error("expected words to be counted")
	}
	if rep.FirstHeading == "" {
		t.Error("expected first heading to be captured")
	}
	if rep.Headings > rep.Paragraphs {
		t.Errorf("headings (%d) cannot exceed paragraphs (%d)", rep.Headings, rep.Paragraphs)
	}
}

func TestFile_NotADocx(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.docx")
	if err := os.WriteFile(path, []byte("plain text, not a zip"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := File(path)
	var loadErr *section.LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *section.LoadError, got %v", err)
	}
	if loadErr.Path != path {
		t.Errorf("expected error to carry path %q, got %q", path, loadErr.Path)
	}
}

func TestFile_Missing(t *testing.T) {
	_, err := File(filepath.Join(t.TempDir(), "absent.docx"))
	var loadErr *section.LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *section.LoadError, got %v", err)
	}
}
