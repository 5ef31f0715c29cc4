package section

// Section is one block of a source document: a heading or a body block.
// Converters flatten every supported format into this shape, and the
// composer renders it back into paragraphs of the merged output.
type Section struct {
	Title string // Heading text (empty for body blocks)
	Level int    // Heading level 1-6, 0 for body blocks
	Text  string // Text content
	Type  string // "heading", "paragraph", or "list"
}
