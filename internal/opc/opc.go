// Package opc reads and writes the zip packaging of .docx files: the main
// document part, its relationships, content types, and referenced media.
// Only the parts the merge pipeline needs are modeled; everything else in
// a source package is ignored.
package opc

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/dgallion1/docnav/internal/section"
)

const (
	documentPart     = "word/document.xml"
	documentRelsPart = "word/_rels/document.xml.rels"
	contentTypesPart = "[Content_Types].xml"

	// Relationship types worth carrying across a merge. Styles, numbering,
	// headers and the rest stay with the source package.
	RelTypeImage     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"
	RelTypeHyperlink = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink"
)

// Relationship is one entry of a .rels part.
type Relationship struct {
	XMLName    xml.Name `xml:"Relationship"`
	ID         string   `xml:"Id,attr"`
	Type       string   `xml:"Type,attr"`
	Target     string   `xml:"Target,attr"`
	TargetMode string   `xml:"TargetMode,attr,omitempty"`
}

type relationships struct {
	XMLName xml.Name       `xml:"Relationships"`
	Rels    []Relationship `xml:"Relationship"`
}

// Package holds the dissected pieces of one source .docx.
type Package struct {
	// Body is the inner XML of w:body with the trailing sectPr split off.
	Body string
	// SectPr is the trailing section properties block, possibly empty.
	SectPr string
	// Rels holds the image and external-hyperlink relationships of the
	// main document part.
	Rels []Relationship
	// Parts maps part names (e.g. "word/media/image1.png") to their bytes,
	// for every internal target in Rels.
	Parts map[string][]byte
	// Defaults maps content-type default extensions to MIME types.
	Defaults map[string]string
}

// Open reads and dissects a .docx package. Any structural problem is
// reported as a *section.LoadError naming the file.
func Open(filePath string) (*Package, error) {
	r, err := zip.OpenReader(filePath)
	if err != nil {
		return nil, &section.LoadError{Path: filePath, Err: fmt.Errorf("open zip: %w", err)}
	}
	defer r.Close()

	files := make(map[string]*zip.File, len(r.File))
	for _, f := range r.File {
		files[f.Name] = f
	}

	docXML, err := readPart(files, documentPart)
	if err != nil {
		return nil, &section.LoadError{Path: filePath, Err: err}
	}

	body, sectPr, err := splitBody(string(docXML))
	if err != nil {
		return nil, &section.LoadError{Path: filePath, Err: err}
	}

	pkg := &Package{
		Body:     body,
		SectPr:   sectPr,
		Parts:    make(map[string][]byte),
		Defaults: make(map[string]string),
	}

	if relsXML, err := readPart(files, documentRelsPart); err == nil {
		var rels relationships
		if err := xml.Unmarshal(relsXML, &rels); err != nil {
			return nil, &section.LoadError{Path: filePath, Err: fmt.Errorf("parse relationships: %w", err)}
		}
		for _, rel := range rels.Rels {
			switch rel.Type {
			case RelTypeImage, RelTypeHyperlink:
			default:
				continue
			}
			if rel.TargetMode == "External" {
				pkg.Rels = append(pkg.Rels, rel)
				continue
			}
			partName := ResolveTarget(rel.Target)
			data, err := readPart(files, partName)
			if err != nil {
				// A dangling internal target; dropping the relationship
				// keeps the output package consistent.
				continue
			}
			pkg.Rels = append(pkg.Rels, rel)
			pkg.Parts[partName] = data
		}
	}

	if ctXML, err := readPart(files, contentTypesPart); err == nil {
		var ct contentTypes
		if err := xml.Unmarshal(ctXML, &ct); err == nil {
			for _, d := range ct.Defaults {
				pkg.Defaults[strings.ToLower(d.Extension)] = d.ContentType
			}
		}
	}

	return pkg, nil
}

func readPart(files map[string]*zip.File, name string) ([]byte, error) {
	f, ok := files[name]
	if !ok {
		return nil, fmt.Errorf("%s not found in archive", name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}

// ResolveTarget turns a relationship target relative to word/ into a part name.
func ResolveTarget(target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Clean("word/" + target)
}

// splitBody extracts the inner XML of w:body and separates the trailing
// sectPr block, which belongs to the source's page layout, not its content.
func splitBody(doc string) (body, sectPr string, err error) {
	open := strings.Index(doc, "<w:body")
	if open < 0 {
		return "", "", fmt.Errorf("document has no w:body element")
	}
	start := strings.Index(doc[open:], ">")
	if start < 0 {
		return "", "", fmt.Errorf("malformed w:body element")
	}
	start += open + 1
	end := strings.LastIndex(doc, "</w:body>")
	if end < start {
		return "", "", fmt.Errorf("unterminated w:body element")
	}
	inner := doc[start:end]

	if i := strings.LastIndex(inner, "<w:sectPr"); i >= 0 {
		return inner[:i], inner[i:], nil
	}
	return inner, "", nil
}

type contentTypes struct {
	XMLName  xml.Name             `xml:"Types"`
	Defaults []contentTypeDefault `xml:"Default"`
}

type contentTypeDefault struct {
	XMLName     xml.Name `xml:"Default"`
	Extension   string   `xml:"Extension,attr"`
	ContentType string   `xml:"ContentType,attr"`
}
