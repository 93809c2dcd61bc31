package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/beevik/etree"
	"go.uber.org/zap/zaptest"

	"hdc/archive"
	"hdc/config"
	"hdc/content"
)

func sampleDocument() *content.Document {
	d := &content.Document{}

	var h content.Paragraph
	h.Heading = 1
	h.SpacingBefore, h.SpacingAfter = 6, 6
	h.AddRun("Quarterly Report", content.StyleState{Bold: true, FontSize: 24})
	d.Append(content.Block{Paragraph: &h})

	var p content.Paragraph
	p.Alignment = content.AlignCenter
	p.SpacingBefore, p.SpacingAfter = 12, 12
	p.LineSpacing = 1.5
	p.AddRun("plain ", content.StyleState{})
	red := content.RGB{R: 255}
	p.AddRun("warning", content.StyleState{Color: &red, Highlight: content.HighlightYellow})
	p.AddBreak(content.StyleState{})
	p.AddRun("second line", content.StyleState{Italic: true, Underline: true})
	d.Append(content.Block{Paragraph: &p})

	item := &content.ListItem{Ordered: true, Depth: 2}
	item.Paragraph.AddRun("nested entry", content.StyleState{})
	d.Append(content.Block{ListItem: item})

	var cellPara content.Paragraph
	cellPara.AddRun("cell", content.StyleState{Bold: true})
	d.Append(content.Block{Table: &content.Table{
		ColumnCount: 2,
		Rows: [][]content.Cell{{
			{Blocks: []content.Block{{Paragraph: &cellPara}}, Header: true},
			{},
		}},
	}})

	return d
}

func writePackage(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := Write(sampleDocument(), &config.Default().Document, &buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	return buf.Bytes()
}

func packagePart(t *testing.T, data []byte, name string) *etree.Document {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("not a zip archive: %v", err)
	}
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		defer rc.Close()
		x := etree.NewDocument()
		if _, err := x.ReadFrom(rc); err != nil {
			t.Fatalf("part %s is not XML: %v", name, err)
		}
		return x
	}
	t.Fatalf("part %s missing from package", name)
	return nil
}

func TestWritePackageParts(t *testing.T) {
	data := writePackage(t)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatal(err)
	}
	have := make(map[string]bool, len(zr.File))
	for _, f := range zr.File {
		have[f.Name] = true
	}
	for _, name := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"word/_rels/document.xml.rels",
		"docProps/core.xml",
		"docProps/app.xml",
		"word/settings.xml",
		"word/styles.xml",
		"word/numbering.xml",
		"word/document.xml",
	} {
		if !have[name] {
			t.Errorf("package is missing %s", name)
		}
	}
}

func TestWriteDocumentBody(t *testing.T) {
	x := packagePart(t, writePackage(t), "word/document.xml")
	body := x.FindElement("//w:body")
	if body == nil {
		t.Fatal("no w:body")
	}

	// heading paragraph
	if el := x.FindElement("//w:pStyle[@w:val='Heading1']"); el == nil {
		t.Error("heading style not applied")
	}

	// centered paragraph with line spacing
	if el := x.FindElement("//w:jc[@w:val='center']"); el == nil {
		t.Error("alignment not written")
	}
	if el := x.FindElement("//w:spacing[@w:line='360']"); el == nil {
		t.Error("1.5 line spacing should serialize as 360")
	}

	// styled runs
	if el := x.FindElement("//w:color[@w:val='FF0000']"); el == nil {
		t.Error("run color not written")
	}
	if el := x.FindElement("//w:highlight[@w:val='yellow']"); el == nil {
		t.Error("run highlight not written")
	}
	if el := x.FindElement("//w:br"); el == nil {
		t.Error("explicit break not written")
	}
	if el := x.FindElement("//w:sz[@w:val='48']"); el == nil {
		t.Error("24pt run should serialize as 48 half-points")
	}

	// list paragraph: style, numbering id and depth 2 -> level 1
	if el := x.FindElement("//w:pStyle[@w:val='ListParagraph']"); el == nil {
		t.Error("list style not applied")
	}
	if el := x.FindElement("//w:numId[@w:val='2']"); el == nil {
		t.Error("ordered item must reference the decimal numbering")
	}
	if el := x.FindElement("//w:ilvl[@w:val='1']"); el == nil {
		t.Error("depth 2 item must sit at numbering level 1")
	}

	// table: grid plus empty-cell placeholder paragraph
	if els := x.FindElements("//w:tblGrid/w:gridCol"); len(els) != 2 {
		t.Errorf("gridCol count = %d, want 2", len(els))
	}
	if els := x.FindElements("//w:tc"); len(els) != 2 {
		t.Errorf("cell count = %d, want 2", len(els))
	}
	if els := x.FindElements("//w:tc/w:p"); len(els) < 2 {
		t.Error("empty cell must still contain a paragraph")
	}

	texts := map[string]bool{}
	for _, el := range x.FindElements("//w:t") {
		texts[el.Text()] = true
	}
	for _, want := range []string{"Quarterly Report", "warning", "second line", "cell", "nested entry"} {
		if !texts[want] {
			t.Errorf("text %q missing from body", want)
		}
	}
}

func TestWriteStylesAndNumbering(t *testing.T) {
	data := writePackage(t)

	styles := packagePart(t, data, "word/styles.xml")
	for _, id := range []string{"Normal", "Heading1", "Heading6", "ListParagraph", "TableGrid"} {
		if el := styles.FindElement("//w:style[@w:styleId='" + id + "']"); el == nil {
			t.Errorf("style %s missing", id)
		}
	}
	// document default font and size come from the configuration
	if el := styles.FindElement("//w:rFonts[@w:ascii='Times New Roman']"); el == nil {
		t.Error("document default font missing")
	}

	numbering := packagePart(t, data, "word/numbering.xml")
	if els := numbering.FindElements("//w:num"); len(els) != 2 {
		t.Errorf("num count = %d, want bullet and decimal", len(els))
	}
	if els := numbering.FindElements("//w:abstractNum"); len(els) != 2 {
		t.Errorf("abstractNum count = %d, want 2", len(els))
	}
	if el := numbering.FindElement("//w:lvl[@w:ilvl='5']"); el == nil {
		t.Error("numbering must define six levels")
	}
}

func TestGenerate(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "report.docx")
	log := zaptest.NewLogger(t)

	err := Generate(context.Background(), sampleDocument(), out, &config.Default().Document, log)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	var parts []string
	err = archive.Walk(out, "word/", func(_ string, f *zip.File) error {
		parts = append(parts, f.Name)
		return nil
	})
	if err != nil {
		t.Fatalf("walking the package: %v", err)
	}
	if len(parts) < 4 {
		t.Errorf("word/ parts = %v", parts)
	}
}

func TestGenerateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := filepath.Join(t.TempDir(), "report.docx")
	if err := Generate(ctx, sampleDocument(), out, &config.Default().Document, zaptest.NewLogger(t)); err == nil {
		t.Fatal("cancelled context accepted")
	}
}
