package compose

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dgallion1/docnav/internal/catalog"
	"github.com/dgallion1/docnav/internal/opc"
	"github.com/dgallion1/docnav/internal/sampledocs"
	"github.com/dgallion1/docnav/internal/section"
)

func defaultOptions() Options {
	return Options{MenuTitle: "Menu", BackLabel: "Back to menu"}
}

// documentXML unzips a written package and returns word/document.xml.
func documentXML(t *testing.T, pkg []byte) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(pkg), int64(len(pkg)))
	if err != nil {
		t.Fatalf("output is not a zip: %v", err)
	}
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			t.Fatal(err)
		}
		return string(data)
	}
	t.Fatal("output has no word/document.xml")
	return ""
}

func sampleSources(t *testing.T) []catalog.Source {
	t.Helper()
	dir := t.TempDir()
	if _, err := sampledocs.Generate(dir); err != nil {
		t.Fatal(err)
	}
	paths, err := catalog.Discover(dir, nil, "all_documents.docx")
	if err != nil {
		t.Fatal(err)
	}
	return catalog.Resolve(paths, "_")
}

func TestMerge_SampleCorpus(t *testing.T) {
	sources := sampleSources(t)
	if len(sources) == 0 {
		t.Fatal("expected sample documents")
	}

	c, err := Merge(sources, defaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Sections() != len(sources) {
		t.Errorf("expected %d sections, got %d", len(sources), c.Sections())
	}

	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	doc := documentXML(t, buf.Bytes())

	// One bookmark for the menu plus one per source.
	if got := strings.Count(doc, "<w:bookmarkStart"); got != len(sources)+1 {
		t.Errorf("expected %d bookmarks, got %d", len(sources)+1, got)
	}
	if !strings.Contains(doc, `w:name="`+catalog.MenuBookmark+`"`) {
		t.Error("expected menu bookmark anchor")
	}

	for _, src := range sources {
		if !strings.Contains(doc, `w:name="`+src.Bookmark+`"`) {
			t.Errorf("missing bookmark %s for %s", src.Bookmark, src.Path)
		}
		if !strings.Contains(doc, `w:anchor="`+src.Bookmark+`"`) {
			t.Errorf("missing menu link to %s", src.Bookmark)
		}
	}

	// Each section carries a back-to-menu link; the menu itself does not.
	if got := strings.Count(doc, `w:anchor="`+catalog.MenuBookmark+`"`); got != len(sources) {
		t.Errorf("expected %d back links, got %d", len(sources), got)
	}

	// A page break after the menu and after every section.
	if got := strings.Count(doc, `<w:br w:type="page">`); got != len(sources)+1 {
		t.Errorf("expected %d page breaks, got %d", len(sources)+1, got)
	}
}

func TestMerge_ConvertedSources(t *testing.T) {
	dir := t.TempDir()
	md := filepath.Join(dir, "Docs_Release Notes.md")
	if err := os.WriteFile(md, []byte("# Release Notes\n\nShipped the composer.\n\n- faster merges\n- fewer bugs\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	txt := filepath.Join(dir, "Docs_Changelog.txt")
	if err := os.WriteFile(txt, []byte("First entry.\n\nSecond entry.\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	sources := catalog.Resolve([]string{md, txt}, "_")
	c, err := Merge(sources, defaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	doc := documentXML(t, buf.Bytes())

	for _, want := range []string{"Release Notes", "Shipped the composer.", "• faster merges", "First entry.", "Second entry."} {
		if !strings.Contains(doc, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
	if got := strings.Count(doc, "<w:bookmarkStart"); got != 3 {
		t.Errorf("expected 3 bookmarks, got %d", got)
	}
}

func TestMerge_InvalidDocxAborts(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "HR_Broken.docx")
	if err := os.WriteFile(bad, []byte("not a docx"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Merge(catalog.Resolve([]string{bad}, "_"), defaultOptions())
	var loadErr *section.LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *section.LoadError, got %v", err)
	}
}

func TestComposer_SpliceRekeysRelationships(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "Marketing_Logo Sheet.docx")
	writeImageDocx(t, src)

	sources := catalog.Resolve([]string{src}, "_")
	c, err := New(catalog.BuildMenu(sources, "Menu"), defaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if err := c.AppendDocx(sources[0]); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	doc := documentXML(t, buf.Bytes())

	if strings.Contains(doc, `r:embed="rId1"`) {
		t.Error("expected source relationship ID to be re-keyed")
	}
	if !strings.Contains(doc, `r:embed="rId100"`) {
		t.Errorf("expected re-keyed relationship ID in body")
	}

	out, err := reopen(t, buf.Bytes())
	if err != nil {
		t.Fatalf("unexpected error reopening output: %v", err)
	}
	if len(out.Rels) != 1 || out.Rels[0].ID != "rId100" {
		t.Errorf("expected one re-keyed image relationship, got %+v", out.Rels)
	}
	if !strings.HasPrefix(out.Rels[0].Target, "media/nav1_") {
		t.Errorf("expected collision-free media name, got %s", out.Rels[0].Target)
	}
	if _, ok := out.Parts["word/"+out.Rels[0].Target]; !ok {
		t.Errorf("expected media part carried over, got %v", out.Parts)
	}
}

func TestComposer_HyperlinkWithQueryString(t *testing.T) {
	// The reader unescapes &amp; in rel targets; the output must still be a
	// well-formed package docnav can reopen.
	dir := t.TempDir()
	src := filepath.Join(dir, "Docs_Link Sheet.docx")
	writeHyperlinkDocx(t, src, "https://example.com/?a=1&amp;b=2")

	sources := catalog.Resolve([]string{src}, "_")
	c, err := New(catalog.BuildMenu(sources, "Menu"), defaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if err := c.AppendDocx(sources[0]); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}

	out, err := reopen(t, buf.Bytes())
	if err != nil {
		t.Fatalf("expected the output to reopen cleanly, got %v", err)
	}
	if len(out.Rels) != 1 {
		t.Fatalf("expected one hyperlink relationship, got %+v", out.Rels)
	}
	if out.Rels[0].Target != "https://example.com/?a=1&b=2" {
		t.Errorf("expected unescaped target to survive, got %q", out.Rels[0].Target)
	}
	if out.Rels[0].TargetMode != "External" {
		t.Errorf("expected external target mode, got %q", out.Rels[0].TargetMode)
	}
}

func TestWriteTo_Deterministic(t *testing.T) {
	sources := sampleSources(t)
	c, err := Merge(sources, defaultOptions())
	if err != nil {
		t.Fatal(err)
	}

	var first, second bytes.Buffer
	if _, err := c.WriteTo(&first); err != nil {
		t.Fatal(err)
	}
	if _, err := c.WriteTo(&second); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("expected identical output bytes")
	}
}

func TestWriteFile(t *testing.T) {
	sources := sampleSources(t)
	c, err := Merge(sources, defaultOptions())
	if err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(t.TempDir(), "all_documents.docx")
	if err := c.WriteFile(out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := opc.Open(out); err != nil {
		t.Errorf("expected a readable package, got %v", err)
	}

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(out))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the output file, got %d entries", len(entries))
	}
}

func TestWriteFile_BadDirectory(t *testing.T) {
	sources := sampleSources(t)
	c, err := Merge(sources, defaultOptions())
	if err != nil {
		t.Fatal(err)
	}

	err = c.WriteFile(filepath.Join(t.TempDir(), "missing", "out.docx"))
	var writeErr *section.WriteError
	if !errors.As(err, &writeErr) {
		t.Fatalf("expected *section.WriteError, got %v", err)
	}
}

func reopen(t *testing.T, pkg []byte) (*opc.Package, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reopen.docx")
	if err := os.WriteFile(path, pkg, 0o644); err != nil {
		t.Fatal(err)
	}
	return opc.Open(path)
}

// writeHyperlinkDocx builds a minimal source package with one external
// hyperlink. rawTarget is written into the rels XML as-is, so callers can
// exercise escaped entities.
func writeHyperlinkDocx(t *testing.T, path, rawTarget string) {
	t.Helper()
	writeDocxParts(t, path, map[string]string{
		"[Content_Types].xml": `<?xml version="1.0"?>` +
			`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
			`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
			`<Default Extension="xml" ContentType="application/xml"/>` +
			`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
			`</Types>`,
		"_rels/.rels": `<?xml version="1.0"?>` +
			`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
			`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
			`</Relationships>`,
		"word/document.xml": `<?xml version="1.0"?>` +
			`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"` +
			` xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">` +
			`<w:body><w:p><w:hyperlink r:id="rId1"><w:r><w:t>link</w:t></w:r></w:hyperlink></w:p></w:body></w:document>`,
		"word/_rels/document.xml.rels": `<?xml version="1.0"?>` +
			`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
			`<Relationship Id="rId1" Type="` + opc.RelTypeHyperlink + `" Target="` + rawTarget + `" TargetMode="External"/>` +
			`</Relationships>`,
	})
}

// writeImageDocx builds a minimal source package with one embedded image.
func writeImageDocx(t *testing.T, path string) {
	t.Helper()
	writeDocxParts(t, path, map[string]string{
		"[Content_Types].xml": `<?xml version="1.0"?>` +
			`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
			`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
			`<Default Extension="xml" ContentType="application/xml"/>` +
			`<Default Extension="png" ContentType="image/png"/>` +
			`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
			`</Types>`,
		"_rels/.rels": `<?xml version="1.0"?>` +
			`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
			`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
			`</Relationships>`,
		"word/document.xml": `<?xml version="1.0"?>` +
			`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"` +
			` xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">` +
			`<w:body><w:p><w:r><w:drawing r:embed="rId1"/></w:r></w:p></w:body></w:document>`,
		"word/_rels/document.xml.rels": `<?xml version="1.0"?>` +
			`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
			`<Relationship Id="rId1" Type="` + opc.RelTypeImage + `" Target="media/image1.png"/>` +
			`</Relationships>`,
		"word/media/image1.png": "pngbytes",
	})
}

func writeDocxParts(t *testing.T, path string, parts map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	zw := zip.NewWriter(f)
	for name, data := range parts {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(data)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
}
