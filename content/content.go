// Package content defines the structured rich-text document model produced
// by the converter and consumed by the document writer.
package content

import "strings"

// Document is the ordered sequence of top-level blocks built by one
// conversion call. It is created once per conversion and handed read-only
// to the writer; nothing in it is shared between conversions.
type Document struct {
	Blocks []Block
}

// Append adds a top-level block to the document.
func (d *Document) Append(b Block) {
	d.Blocks = append(d.Blocks, b)
}

// Block is a single document unit. Exactly one field is non-nil.
type Block struct {
	Paragraph *Paragraph
	Table     *Table
	ListItem  *ListItem
}

// Run is the smallest styled text unit within a paragraph. All characters in
// a run share one resolved style. A run is immutable once created.
type Run struct {
	Text  string
	Break bool // explicit line break, Text is ignored
	Style StyleState
}

// Paragraph is a block of runs with resolved layout attributes. Headings are
// paragraphs with Heading set to their level (1-6).
type Paragraph struct {
	Runs            []Run
	Alignment       Alignment
	Heading         int     // 0 = regular paragraph
	SpacingBefore   float64 // points
	SpacingAfter    float64 // points
	LineSpacing     float64 // multiplier, 0 = document default
	LeftIndent      float64 // points
	FirstLineIndent float64 // points
	Background      *RGB
}

// AddRun appends a text run to the paragraph.
func (p *Paragraph) AddRun(text string, style StyleState) {
	p.Runs = append(p.Runs, Run{Text: text, Style: style})
}

// AddBreak appends an explicit line break to the paragraph.
func (p *Paragraph) AddBreak(style StyleState) {
	p.Runs = append(p.Runs, Run{Break: true, Style: style})
}

// Text returns the concatenated run text, breaks rendered as newlines.
func (p *Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.Runs {
		if r.Break {
			sb.WriteString("\n")
			continue
		}
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// Cell is a single table cell holding its own mini-document.
type Cell struct {
	Blocks []Block
	Header bool
}

// Table is a fixed rows x ColumnCount grid. Rows that had fewer source cells
// than ColumnCount carry empty trailing cells rather than being ragged.
type Table struct {
	Rows        [][]Cell
	ColumnCount int
}

// ListItem is one list entry: its own paragraph plus any nested lists that
// were found directly under it.
type ListItem struct {
	Paragraph Paragraph
	Nested    []Block
	Ordered   bool
	Depth     int // nesting depth, 1 for a top-level list
}
