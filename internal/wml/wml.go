// Package wml writes the WordprocessingML elements docnav inserts itself:
// menu paragraphs, bookmarks, internal hyperlinks, and page breaks. Source
// document bodies are spliced as raw XML by the composer; these builders
// only cover the markup this tool authors.
package wml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

// Paragraph is a w:p element. Items holds the paragraph children in
// document order (bookmarks, runs, hyperlinks).
type Paragraph struct {
	XMLName xml.Name `xml:"w:p"`
	Props   *ParaProps
	Items   []any
}

// ParaProps is a w:pPr element.
type ParaProps struct {
	XMLName xml.Name `xml:"w:pPr"`
	Style   *ParaStyle
	Indent  *Indent
}

// ParaStyle is a w:pStyle element.
type ParaStyle struct {
	XMLName xml.Name `xml:"w:pStyle"`
	Val     string   `xml:"w:val,attr"`
}

// Indent is a w:ind element (twentieths of a point).
type Indent struct {
	XMLName xml.Name `xml:"w:ind"`
	Left    int      `xml:"w:left,attr"`
}

// Run is a w:r element.
type Run struct {
	XMLName xml.Name `xml:"w:r"`
	Props   *RunProps
	Break   *Break
	Text    *Text
}

// RunProps is a w:rPr element.
type RunProps struct {
	XMLName   xml.Name `xml:"w:rPr"`
	Color     *Color
	Underline *Underline
}

// Color is a w:color element.
type Color struct {
	XMLName xml.Name `xml:"w:color"`
	Val     string   `xml:"w:val,attr"`
}

// Underline is a w:u element.
type Underline struct {
	XMLName xml.Name `xml:"w:u"`
	Val     string   `xml:"w:val,attr"`
}

// Text is a w:t element.
type Text struct {
	XMLName xml.Name `xml:"w:t"`
	Space   string   `xml:"xml:space,attr,omitempty"`
	Value   string   `xml:",chardata"`
}

// Break is a w:br element.
type Break struct {
	XMLName xml.Name `xml:"w:br"`
	Type    string   `xml:"w:type,attr,omitempty"`
}

// BookmarkStart is a w:bookmarkStart element.
type BookmarkStart struct {
	XMLName xml.Name `xml:"w:bookmarkStart"`
	ID      int      `xml:"w:id,attr"`
	Name    string   `xml:"w:name,attr"`
}

// BookmarkEnd is a w:bookmarkEnd element.
type BookmarkEnd struct {
	XMLName xml.Name `xml:"w:bookmarkEnd"`
	ID      int      `xml:"w:id,attr"`
}

// Hyperlink is a w:hyperlink element targeting an internal bookmark.
type Hyperlink struct {
	XMLName xml.Name `xml:"w:hyperlink"`
	Anchor  string   `xml:"w:anchor,attr"`
	Runs    []Run
}

func textRun(text string) Run {
	return Run{Text: &Text{Space: "preserve", Value: text}}
}

// linkRun renders link text the way Word shows hyperlinks: blue, underlined.
func linkRun(text string) Run {
	return Run{
		Props: &RunProps{
			Color:     &Color{Val: "0000FF"},
			Underline: &Underline{Val: "single"},
		},
		Text: &Text{Space: "preserve", Value: text},
	}
}

// Heading builds a styled heading paragraph. A non-empty bookmark name
// anchors the heading so hyperlinks can target it.
func Heading(text string, level int, bookmark string, bookmarkID int) Paragraph {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	p := Paragraph{
		Props: &ParaProps{Style: &ParaStyle{Val: fmt.Sprintf("Heading%d", level)}},
	}
	if bookmark != "" {
		p.Items = append(p.Items, BookmarkStart{ID: bookmarkID, Name: bookmark})
	}
	p.Items = append(p.Items, textRun(text))
	if bookmark != "" {
		p.Items = append(p.Items, BookmarkEnd{ID: bookmarkID})
	}
	return p
}

// TextParagraph builds a plain body paragraph. Embedded newlines become
// line breaks; WML drops literal whitespace characters.
func TextParagraph(text string) Paragraph {
	var items []any
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			items = append(items, Run{Break: &Break{}})
		}
		items = append(items, textRun(line))
	}
	return Paragraph{Items: items}
}

// ListParagraph builds a list-styled paragraph.
func ListParagraph(text string) Paragraph {
	return Paragraph{
		Props: &ParaProps{Style: &ParaStyle{Val: "ListParagraph"}},
		Items: []any{textRun("• " + text)},
	}
}

// LinkParagraph builds a paragraph holding one hyperlink to an internal
// bookmark, optionally indented (twentieths of a point).
func LinkParagraph(label, anchor string, indent int) Paragraph {
	p := Paragraph{
		Items: []any{Hyperlink{Anchor: anchor, Runs: []Run{linkRun(label)}}},
	}
	if indent > 0 {
		p.Props = &ParaProps{Indent: &Indent{Left: indent}}
	}
	return p
}

// PageBreak builds a paragraph holding a single page break.
func PageBreak() Paragraph {
	return Paragraph{Items: []any{Run{Break: &Break{Type: "page"}}}}
}

// Marshal renders elements as body XML, in order, with no XML header.
func Marshal(items ...any) ([]byte, error) {
	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	for _, item := range items {
		if err := enc.Encode(item); err != nil {
			return nil, fmt.Errorf("marshal wml: %w", err)
		}
	}
	if err := enc.Flush(); err != nil {
		return nil, fmt.Errorf("flush wml: %w", err)
	}
	return buf.Bytes(), nil
}
