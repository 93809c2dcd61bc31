package content

import (
	"strings"
	"testing"
)

func TestParagraphText(t *testing.T) {
	var p Paragraph
	p.AddRun("first", StyleState{})
	p.AddBreak(StyleState{})
	p.AddRun("second", StyleState{Bold: true})

	if got := p.Text(); got != "first\nsecond" {
		t.Errorf("Text() = %q", got)
	}
	if len(p.Runs) != 3 || !p.Runs[1].Break {
		t.Errorf("unexpected runs: %+v", p.Runs)
	}
}

func TestRGBHex(t *testing.T) {
	c := RGB{R: 0xFF, G: 0x0A, B: 0x00}
	if got := c.Hex(); got != "FF0A00" {
		t.Errorf("Hex() = %q", got)
	}
	if got := c.String(); got != "#FF0A00" {
		t.Errorf("String() = %q", got)
	}
}

func TestStyleStateCopySemantics(t *testing.T) {
	base := StyleState{Bold: true}
	red := base.WithColor(RGB{R: 255})
	if base.Color != nil {
		t.Error("WithColor mutated the receiver")
	}
	if red.Color == nil || red.Color.R != 255 || !red.Bold {
		t.Errorf("derived state wrong: %+v", red)
	}
}

func TestDocumentString(t *testing.T) {
	var d *Document
	if got := d.String(); got != "<nil Document>" {
		t.Errorf("nil String() = %q", got)
	}

	d = &Document{}
	var p Paragraph
	p.Heading = 2
	p.AddRun("Title", StyleState{Bold: true})
	d.Append(Block{Paragraph: &p})

	item := &ListItem{Ordered: true, Depth: 1}
	item.Paragraph.AddRun("entry", StyleState{Highlight: HighlightYellow})
	d.Append(Block{ListItem: item})

	d.Append(Block{Table: &Table{
		Rows:        [][]Cell{{{Header: true}, {}}},
		ColumnCount: 2,
	}})

	out := d.String()
	for _, want := range []string{
		"Document: 3 block(s)",
		"heading=2",
		"Title",
		"ListItem: ordered depth=1",
		"hl=yellow",
		"Table: 1 row(s) x 2 column(s)",
		"Cell[0] header",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q:\n%s", want, out)
		}
	}
}
