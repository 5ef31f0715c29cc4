package main

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/dgallion1/docnav/internal/catalog"
	"github.com/dgallion1/docnav/internal/section"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{catalog.ErrNoInputs, 2},
		{fmt.Errorf("resolving inputs: %w", catalog.ErrNoInputs), 2},
		{&section.LoadError{Path: "a.docx", Err: errors.New("bad zip")}, 3},
		{&section.WriteError{Path: "out.docx", Err: errors.New("disk full")}, 4},
		{errors.New("something else"), 1},
	}
	for _, tt := range tests {
		if got := exitCode(tt.err); got != tt.want {
			t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestPrintDryRun(t *testing.T) {
	sources := []catalog.Source{
		{Path: "docs/HR_Handbook.docx", Category: "HR", Title: "Handbook", Bookmark: "doc_1"},
		{Path: "docs/readme.md", Category: "", Title: "readme", Bookmark: "doc_2"},
	}
	menu := catalog.BuildMenu(sources, "Menu")

	var out strings.Builder
	printDryRun(&out, sources, menu, "all_documents.docx")
	got := out.String()

	if !strings.Contains(got, "Would merge 2 files into all_documents.docx") {
		t.Errorf("expected summary line, got %q", got)
	}
	for _, want := range []string{"HR_Handbook.docx", "readme.md", "HR:", "(uncategorized):", "Handbook [doc_1]", "readme [doc_2]"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, got)
		}
	}
}
