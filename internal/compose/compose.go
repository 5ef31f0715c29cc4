// Package compose builds the merged output document: the menu block at the
// head, then one section per source, each anchored by a bookmark, preceded
// by a back-to-menu link, and separated by page breaks.
package compose

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/dgallion1/docnav/internal/catalog"
	"github.com/dgallion1/docnav/internal/convert"
	"github.com/dgallion1/docnav/internal/opc"
	"github.com/dgallion1/docnav/internal/section"
	"github.com/dgallion1/docnav/internal/wml"
)

// Options control the navigation markup around merged sections and how
// non-docx sources are converted.
type Options struct {
	MenuTitle string
	BackLabel string
	Convert   convert.Options
}

// Bookmark numeric IDs authored by the composer start here, clear of any
// IDs that ride along inside spliced source bodies.
const bookmarkIDBase = 9000

// Relationship IDs are re-keyed from this suffix on, clear of the output
// package's own baseline relationships.
const relIDBase = 100

// Composer accumulates the output document body. Sources are appended in
// order; the result is written once at the end, so a failed run leaves no
// partial output behind.
type Composer struct {
	backLabel string
	body      bytes.Buffer
	rels      []opc.Relationship
	parts     map[string][]byte
	defaults  map[string]string
	bookmarks int
	relSeq    int
	mediaSeq  int
	sections  int
}

// New builds a composer with the menu block already rendered from the
// grouped entries. The menu heading carries the anchor every back-link
// targets.
func New(menu catalog.Menu, opts Options) (*Composer, error) {
	c := &Composer{
		backLabel: opts.BackLabel,
		parts:     make(map[string][]byte),
		defaults:  make(map[string]string),
	}

	items := []any{
		wml.Heading(menu.Title, 1, catalog.MenuBookmark, c.nextBookmarkID()),
	}
	for _, g := range menu.Groups {
		if g.Category != "" {
			items = append(items, wml.Heading(g.Category, 2, "", 0))
		}
		for _, e := range g.Entries {
			items = append(items, wml.LinkParagraph(e.Title, e.Bookmark, 360))
		}
	}
	items = append(items, wml.PageBreak())

	if err := c.write(items...); err != nil {
		return nil, err
	}
	return c, nil
}

// Sections reports how many sources have been appended.
func (c *Composer) Sections() int { return c.sections }

// AppendDocx splices a native .docx source into the output: navigation
// markup first, then the source body with its relationships re-keyed and
// its media carried over.
func (c *Composer) AppendDocx(src catalog.Source) error {
	pkg, err := opc.Open(src.Path)
	if err != nil {
		return err
	}
	if err := c.beginSection(src); err != nil {
		return err
	}
	c.body.WriteString(c.splice(pkg))
	c.sections++
	return c.endSection()
}

// AppendSections renders a converted source (markdown, text, html, pdf)
// through the wml builders.
func (c *Composer) AppendSections(src catalog.Source, secs []section.Section) error {
	if err := c.beginSection(src); err != nil {
		return err
	}
	items := make([]any, 0, len(secs))
	for _, s := range secs {
		switch s.Type {
		case "heading":
			// Source headings nest one level under the section heading.
			items = append(items, wml.Heading(s.Title, s.Level+1, "", 0))
		case "list":
			items = append(items, wml.ListParagraph(s.Text))
		default:
			items = append(items, wml.TextParagraph(s.Text))
		}
	}
	if err := c.write(items...); err != nil {
		return err
	}
	c.sections++
	return c.endSection()
}

// beginSection emits the section heading carrying the source's bookmark
// anchor, followed by the back-to-menu link.
func (c *Composer) beginSection(src catalog.Source) error {
	return c.write(
		wml.Heading(src.Title, 1, src.Bookmark, c.nextBookmarkID()),
		wml.LinkParagraph(c.backLabel, catalog.MenuBookmark, 0),
	)
}

func (c *Composer) endSection() error {
	return c.write(wml.PageBreak())
}

func (c *Composer) write(items ...any) error {
	xml, err := wml.Marshal(items...)
	if err != nil {
		return err
	}
	c.body.Write(xml)
	return nil
}

func (c *Composer) nextBookmarkID() int {
	id := bookmarkIDBase + c.bookmarks
	c.bookmarks++
	return id
}

var relAttrRe = regexp.MustCompile(`(r:(?:id|embed|link)=")(rId[^"]*)(")`)

// headerFooterRefRe matches header/footer references inside mid-body
// section breaks; their relationship targets are not carried over.
var headerFooterRefRe = regexp.MustCompile(`<w:(?:header|footer)Reference[^>]*/>`)

// splice prepares one source body for insertion: every image and external
// hyperlink relationship gets a fresh ID in the output package, media
// parts move to collision-free names, and the body's r: attributes are
// rewritten to match.
func (c *Composer) splice(pkg *opc.Package) string {
	idMap := make(map[string]string, len(pkg.Rels))
	for _, rel := range pkg.Rels {
		newID := fmt.Sprintf("rId%d", relIDBase+c.relSeq)
		c.relSeq++
		idMap[rel.ID] = newID

		out := opc.Relationship{ID: newID, Type: rel.Type, Target: rel.Target, TargetMode: rel.TargetMode}
		if rel.TargetMode != "External" {
			data, ok := pkg.Parts[opc.ResolveTarget(rel.Target)]
			if !ok {
				continue
			}
			c.mediaSeq++
			newTarget := fmt.Sprintf("media/nav%d_%s", c.mediaSeq, path.Base(rel.Target))
			out.Target = newTarget
			c.parts["word/"+newTarget] = data

			ext := strings.ToLower(strings.TrimPrefix(path.Ext(rel.Target), "."))
			if ct, ok := pkg.Defaults[ext]; ok && ext != "" {
				c.defaults[ext] = ct
			} else if ct, ok := mediaContentTypes[ext]; ok {
				c.defaults[ext] = ct
			}
		}
		c.rels = append(c.rels, out)
	}

	body := headerFooterRefRe.ReplaceAllString(pkg.Body, "")
	return relAttrRe.ReplaceAllStringFunc(body, func(m string) string {
		sub := relAttrRe.FindStringSubmatch(m)
		if newID, ok := idMap[sub[2]]; ok {
			return sub[1] + newID + sub[3]
		}
		return m
	})
}

var mediaContentTypes = map[string]string{
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"bmp":  "image/bmp",
	"tiff": "image/tiff",
	"emf":  "image/x-emf",
	"wmf":  "image/x-wmf",
	"svg":  "image/svg+xml",
}

// WriteTo writes the complete output package.
func (c *Composer) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := opc.Write(cw, opc.Document{
		BodyXML:  c.body.Bytes(),
		Rels:     c.rels,
		Parts:    c.parts,
		Defaults: c.defaults,
	})
	return cw.n, err
}

// WriteFile writes the output atomically: the package is assembled in a
// temp file next to the destination and renamed into place, so an aborted
// run never leaves a truncated document.
func (c *Composer) WriteFile(outPath string) error {
	dir := filepath.Dir(outPath)
	tmp, err := os.CreateTemp(dir, ".docnav-*.docx")
	if err != nil {
		return &section.WriteError{Path: outPath, Err: err}
	}
	tmpPath := tmp.Name()

	if _, err := c.WriteTo(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return &section.WriteError{Path: outPath, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return &section.WriteError{Path: outPath, Err: err}
	}
	if err := os.Rename(tmpPath, outPath); err != nil {
		os.Remove(tmpPath)
		return &section.WriteError{Path: outPath, Err: err}
	}
	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
