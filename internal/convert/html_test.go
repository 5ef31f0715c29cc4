package convert

import (
	"strings"
	"testing"
)

func TestHTMLConverter_HeadingsAndParagraphs(t *testing.T) {
	input := `<html><head><title>Ignored</title></head><body>
<h1>Welcome</h1>
<p>Opening paragraph.</p>
<h2>Details</h2>
<p>Detail paragraph.</p>
</body></html>`

	c := &HTMLConverter{}
	secs, err := c.Convert(strings.NewReader(input), "page.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []struct {
		typ   string
		level int
		text  string
	}{
		{"heading", 1, "Welcome"},
		{"paragraph", 0, "Opening paragraph."},
		{"heading", 2, "Details"},
		{"paragraph", 0, "Detail paragraph."},
	}
	if len(secs) != len(want) {
		t.Fatalf("expected %d sections, got %d: %+v", len(want), len(secs), secs)
	}
	for i, w := range want {
		if secs[i].Type != w.typ || secs[i].Text != w.text {
			t.Errorf("section[%d]: expected %s %q, got %s %q", i, w.typ, w.text, secs[i].Type, secs[i].Text)
		}
		if w.typ == "heading" && secs[i].Level != w.level {
			t.Errorf("section[%d]: expected level %d, got %d", i, w.level, secs[i].Level)
		}
	}
}

func TestHTMLConverter_TitleFallback(t *testing.T) {
	// Without an h1, the page title becomes the leading heading.
	input := `<html><head><title>Release Notes</title></head><body>
<h2>Changes</h2>
<p>Shipped the composer.</p>
</body></html>`

	c := &HTMLConverter{}
	secs, err := c.Convert(strings.NewReader(input), "notes.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(secs) != 3 {
		t.Fatalf("expected 3 sections, got %d: %+v", len(secs), secs)
	}
	if secs[0].Type != "heading" || secs[0].Level != 1 || secs[0].Text != "Release Notes" {
		t.Errorf("expected title as leading heading, got %+v", secs[0])
	}
	if secs[1].Text != "Changes" || secs[2].Text != "Shipped the composer." {
		t.Errorf("expected body sections to follow, got %+v", secs[1:])
	}
}

func TestHTMLConverter_ListItems(t *testing.T) {
	input := `<body><ul><li>alpha</li><li>beta</li></ul></body>`
	c := &HTMLConverter{}
	secs, err := c.Convert(strings.NewReader(input), "list.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(secs) != 2 {
		t.Fatalf("expected 2 sections, got %d: %+v", len(secs), secs)
	}
	for i, want := range []string{"alpha", "beta"} {
		if secs[i].Type != "list" || secs[i].Text != want {
			t.Errorf("section[%d]: expected list %q, got %s %q", i, want, secs[i].Type, secs[i].Text)
		}
	}
}

func TestHTMLConverter_SkipsPageChrome(t *testing.T) {
	input := `<body>
<nav><p>navigation links</p></nav>
<script>var x = 1;</script>
<style>.hidden { display: none }</style>
<p>Real content.</p>
<footer><p>copyright</p></footer>
</body>`

	c := &HTMLConverter{}
	secs, err := c.Convert(strings.NewReader(input), "page.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(secs) != 1 {
		t.Fatalf("expected 1 section, got %d: %+v", len(secs), secs)
	}
	if secs[0].Text != "Real content." {
		t.Errorf("expected %q, got %q", "Real content.", secs[0].Text)
	}
}

func TestHTMLConverter_NestedInlineMarkup(t *testing.T) {
	input := `<body><p>Text with <strong>bold</strong> and <a href="#">a link</a>.</p></body>`
	c := &HTMLConverter{}
	secs, err := c.Convert(strings.NewReader(input), "inline.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(secs) != 1 {
		t.Fatalf("expected 1 section, got %d", len(secs))
	}
	if secs[0].Text != "Text with bold and a link." {
		t.Errorf("expected flattened inline text, got %q", secs[0].Text)
	}
}
