package content

import (
	"strconv"
	"strings"

	"hdc/utils/debug"
)

// String returns a readable tree of the whole Document.
// It exists solely for manual inspection during debugging.
func (d *Document) String() string {
	if d == nil {
		return "<nil Document>"
	}
	tw := debug.NewTreeWriter()
	tw.Line(0, "Document: %d block(s)", len(d.Blocks))
	dumpBlocks(tw, d.Blocks, 1)
	return tw.String()
}

func dumpBlocks(tw *debug.TreeWriter, blocks []Block, depth int) {
	for _, b := range blocks {
		switch {
		case b.Paragraph != nil:
			dumpParagraph(tw, b.Paragraph, depth)
		case b.Table != nil:
			t := b.Table
			tw.Line(depth, "Table: %d row(s) x %d column(s)", len(t.Rows), t.ColumnCount)
			for _, row := range t.Rows {
				for j := range row {
					header := ""
					if row[j].Header {
						header = " header"
					}
					tw.Line(depth+1, "Cell[%d]%s", j, header)
					dumpBlocks(tw, row[j].Blocks, depth+2)
				}
			}
		case b.ListItem != nil:
			li := b.ListItem
			kind := "bullet"
			if li.Ordered {
				kind = "ordered"
			}
			tw.Line(depth, "ListItem: %s depth=%d", kind, li.Depth)
			dumpParagraph(tw, &li.Paragraph, depth+1)
			dumpBlocks(tw, li.Nested, depth+1)
		}
	}
}

func dumpParagraph(tw *debug.TreeWriter, p *Paragraph, depth int) {
	attrs := []string{"align=" + p.Alignment.String()}
	if p.Heading > 0 {
		attrs = append(attrs, "heading="+strconv.Itoa(p.Heading))
	}
	tw.Line(depth, "Paragraph: %s runs=%d", strings.Join(attrs, " "), len(p.Runs))
	for _, r := range p.Runs {
		if r.Break {
			tw.Line(depth+1, "Break")
			continue
		}
		tw.TextBlock(depth+1, "Run "+describeStyle(r.Style), r.Text)
	}
}

func describeStyle(s StyleState) string {
	var parts []string
	if s.Bold {
		parts = append(parts, "b")
	}
	if s.Italic {
		parts = append(parts, "i")
	}
	if s.Underline {
		parts = append(parts, "u")
	}
	if s.Color != nil {
		parts = append(parts, "color="+s.Color.Hex())
	}
	if s.Background != nil {
		parts = append(parts, "bg="+s.Background.Hex())
	}
	if s.FontSize > 0 {
		parts = append(parts, "size")
	}
	if s.FontFamily != "" {
		parts = append(parts, "font="+s.FontFamily)
	}
	if s.Highlight != HighlightNone {
		parts = append(parts, "hl="+s.Highlight.String())
	}
	if len(parts) == 0 {
		return "[plain]"
	}
	return "[" + strings.Join(parts, ",") + "]"
}
