package opc

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Document is everything needed to write a complete .docx package: the
// body XML plus whatever relationships, media parts, and content-type
// defaults the body references.
type Document struct {
	BodyXML  []byte
	Rels     []Relationship
	Parts    map[string][]byte
	Defaults map[string]string
}

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// documentOpen declares the namespace set commonly found on document roots,
// so spliced source markup (drawings, math, VML fallbacks) stays well-formed.
const documentOpen = xmlHeader + `<w:document` +
	` xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"` +
	` xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"` +
	` xmlns:wp="http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"` +
	` xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"` +
	` xmlns:pic="http://schemas.openxmlformats.org/drawingml/2006/picture"` +
	` xmlns:m="http://schemas.openxmlformats.org/officeDocument/2006/math"` +
	` xmlns:v="urn:schemas-microsoft-com:vml"` +
	` xmlns:o="urn:schemas-microsoft-com:office:office"` +
	` xmlns:w10="urn:schemas-microsoft-com:office:word"` +
	` xmlns:wps="http://schemas.microsoft.com/office/word/2010/wordprocessingShape"` +
	` xmlns:wpg="http://schemas.microsoft.com/office/word/2010/wordprocessingGroup"` +
	` xmlns:w14="http://schemas.microsoft.com/office/word/2010/wordml"` +
	` xmlns:w15="http://schemas.microsoft.com/office/word/2012/wordml"` +
	` xmlns:mc="http://schemas.openxmlformats.org/markup-compatibility/2006"` +
	` mc:Ignorable="w14 w15"><w:body>`

// defaultSectPr is a US letter page with one inch margins.
const defaultSectPr = `<w:sectPr>` +
	`<w:pgSz w:w="12240" w:h="15840"/>` +
	`<w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440" w:header="720" w:footer="720" w:gutter="0"/>` +
	`</w:sectPr>`

const rootRels = xmlHeader +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

const stylesRelID = "rId1"

// Write assembles doc into a complete .docx package. Part order and zip
// headers are fixed, so the same Document always produces the same bytes.
func Write(w io.Writer, doc Document) error {
	zw := zip.NewWriter(w)

	write := func(name string, data []byte) error {
		f, err := zw.Create(name)
		if err != nil {
			return fmt.Errorf("create %s: %w", name, err)
		}
		if _, err := f.Write(data); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		return nil
	}

	ctXML, err := contentTypesXML(doc.Defaults)
	if err != nil {
		return err
	}
	if err := write(contentTypesPart, ctXML); err != nil {
		return err
	}
	if err := write("_rels/.rels", []byte(rootRels)); err != nil {
		return err
	}

	var docXML strings.Builder
	docXML.WriteString(documentOpen)
	docXML.Write(doc.BodyXML)
	docXML.WriteString(defaultSectPr)
	docXML.WriteString(`</w:body></w:document>`)
	if err := write(documentPart, []byte(docXML.String())); err != nil {
		return err
	}

	relsXML, err := documentRelsXML(doc.Rels)
	if err != nil {
		return err
	}
	if err := write(documentRelsPart, relsXML); err != nil {
		return err
	}
	if err := write("word/styles.xml", []byte(stylesXML)); err != nil {
		return err
	}

	names := make([]string, 0, len(doc.Parts))
	for name := range doc.Parts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := write(name, doc.Parts[name]); err != nil {
			return err
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("close package: %w", err)
	}
	return nil
}

// contentTypesXML and documentRelsXML carry values read from source
// packages (targets, MIME types), so the dynamic entries go through the
// xml encoder rather than raw printf.
func contentTypesXML(extra map[string]string) ([]byte, error) {
	defaults := map[string]string{
		"rels": "application/vnd.openxmlformats-package.relationships+xml",
		"xml":  "application/xml",
	}
	for ext, ct := range extra {
		ext = strings.ToLower(ext)
		if _, ok := defaults[ext]; !ok {
			defaults[ext] = ct
		}
	}

	exts := make([]string, 0, len(defaults))
	for ext := range defaults {
		exts = append(exts, ext)
	}
	sort.Strings(exts)

	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	enc := xml.NewEncoder(&b)
	for _, ext := range exts {
		d := contentTypeDefault{Extension: ext, ContentType: defaults[ext]}
		if err := enc.Encode(d); err != nil {
			return nil, fmt.Errorf("marshal content type default: %w", err)
		}
	}
	if err := enc.Flush(); err != nil {
		return nil, fmt.Errorf("flush content types: %w", err)
	}
	b.WriteString(`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>`)
	b.WriteString(`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>`)
	b.WriteString(`</Types>`)
	return []byte(b.String()), nil
}

func documentRelsXML(extra []Relationship) ([]byte, error) {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	fmt.Fprintf(&b, `<Relationship Id="%s" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>`, stylesRelID)
	enc := xml.NewEncoder(&b)
	for _, rel := range extra {
		if err := enc.Encode(rel); err != nil {
			return nil, fmt.Errorf("marshal relationship %s: %w", rel.ID, err)
		}
	}
	if err := enc.Flush(); err != nil {
		return nil, fmt.Errorf("flush relationships: %w", err)
	}
	b.WriteString(`</Relationships>`)
	return []byte(b.String()), nil
}
