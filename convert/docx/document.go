package docx

import (
	"archive/zip"
	"math"
	"strconv"

	"github.com/beevik/etree"

	"hdc/config"
	"hdc/content"
	"hdc/css"
)

const (
	wNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	rNS = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

// Numbering definitions registered by writeNumbering.
const (
	bulletNumID  = 1
	decimalNumID = 2
)

const tableWidthTwips = 9360 // 6.5" of usable A4 width

func writeDocument(zw *zip.Writer, doc *content.Document, cfg *config.DocumentConfig) error {
	x := newXML()

	root := x.CreateElement("w:document")
	root.CreateAttr("xmlns:w", wNS)
	root.CreateAttr("xmlns:r", rNS)

	body := root.CreateElement("w:body")
	for _, b := range doc.Blocks {
		renderBlock(body, b, cfg)
	}

	sectPr := body.CreateElement("w:sectPr")
	pgSz := sectPr.CreateElement("w:pgSz")
	pgSz.CreateAttr("w:w", "11906")
	pgSz.CreateAttr("w:h", "16838")
	pgMar := sectPr.CreateElement("w:pgMar")
	for _, side := range []string{"top", "right", "bottom", "left"} {
		pgMar.CreateAttr("w:"+side, "1440")
	}

	return writeXMLToZip(zw, "word/document.xml", x)
}

func renderBlock(parent *etree.Element, b content.Block, cfg *config.DocumentConfig) {
	switch {
	case b.Paragraph != nil:
		renderParagraph(parent, b.Paragraph, cfg, nil)
	case b.Table != nil:
		renderTable(parent, b.Table, cfg)
	case b.ListItem != nil:
		renderListItem(parent, b.ListItem, cfg)
	}
}

// numbering ties a list paragraph to one of the registered numbering
// definitions at a given level.
type numbering struct {
	numID int
	level int
}

func renderParagraph(parent *etree.Element, p *content.Paragraph, cfg *config.DocumentConfig, num *numbering) {
	wp := parent.CreateElement("w:p")
	ppr := wp.CreateElement("w:pPr")

	switch {
	case p.Heading >= 1 && p.Heading <= 6:
		style := ppr.CreateElement("w:pStyle")
		style.CreateAttr("w:val", "Heading"+strconv.Itoa(p.Heading))
	case num != nil:
		style := ppr.CreateElement("w:pStyle")
		style.CreateAttr("w:val", "ListParagraph")
		numPr := ppr.CreateElement("w:numPr")
		ilvl := numPr.CreateElement("w:ilvl")
		ilvl.CreateAttr("w:val", strconv.Itoa(num.level))
		numID := numPr.CreateElement("w:numId")
		numID.CreateAttr("w:val", strconv.Itoa(num.numID))
	}

	spacing := ppr.CreateElement("w:spacing")
	spacing.CreateAttr("w:before", strconv.Itoa(twips(p.SpacingBefore)))
	spacing.CreateAttr("w:after", strconv.Itoa(twips(p.SpacingAfter)))
	if p.LineSpacing > 0 {
		spacing.CreateAttr("w:line", strconv.Itoa(int(math.Round(p.LineSpacing*240))))
		spacing.CreateAttr("w:lineRule", "auto")
	}

	// list paragraphs take their indentation from the numbering definition
	if num == nil && (p.LeftIndent > 0 || p.FirstLineIndent > 0) {
		ind := ppr.CreateElement("w:ind")
		if p.LeftIndent > 0 {
			ind.CreateAttr("w:left", strconv.Itoa(twips(p.LeftIndent)))
		}
		if p.FirstLineIndent > 0 {
			ind.CreateAttr("w:firstLine", strconv.Itoa(twips(p.FirstLineIndent)))
		}
	}

	if jc := alignmentValue(p.Alignment); jc != "" {
		el := ppr.CreateElement("w:jc")
		el.CreateAttr("w:val", jc)
	}

	if p.Background != nil {
		shd := ppr.CreateElement("w:shd")
		shd.CreateAttr("w:val", "clear")
		shd.CreateAttr("w:color", "auto")
		shd.CreateAttr("w:fill", p.Background.Hex())
	}

	for _, r := range p.Runs {
		renderRun(wp, r, cfg)
	}
}

func renderRun(wp *etree.Element, r content.Run, cfg *config.DocumentConfig) {
	wr := wp.CreateElement("w:r")
	rpr := wr.CreateElement("w:rPr")

	s := r.Style
	if s.FontFamily != "" {
		fonts := rpr.CreateElement("w:rFonts")
		fonts.CreateAttr("w:ascii", s.FontFamily)
		fonts.CreateAttr("w:hAnsi", s.FontFamily)
		fonts.CreateAttr("w:eastAsia", cfg.EastAsianFont)
	}
	if s.Bold {
		rpr.CreateElement("w:b")
	}
	if s.Italic {
		rpr.CreateElement("w:i")
	}
	if s.Underline {
		u := rpr.CreateElement("w:u")
		u.CreateAttr("w:val", "single")
	}
	if s.Color != nil {
		color := rpr.CreateElement("w:color")
		color.CreateAttr("w:val", s.Color.Hex())
	}
	if s.FontSize > 0 {
		sz := rpr.CreateElement("w:sz")
		sz.CreateAttr("w:val", strconv.Itoa(halfPoints(s.FontSize)))
		szCs := rpr.CreateElement("w:szCs")
		szCs.CreateAttr("w:val", strconv.Itoa(halfPoints(s.FontSize)))
	}
	if name := highlightValue(runHighlight(s)); name != "" {
		hl := rpr.CreateElement("w:highlight")
		hl.CreateAttr("w:val", name)
	}

	if len(rpr.Child) == 0 {
		wr.RemoveChild(rpr)
	}

	if r.Break {
		wr.CreateElement("w:br")
		return
	}
	t := wr.CreateElement("w:t")
	t.CreateAttr("xml:space", "preserve")
	t.SetText(r.Text)
}

func renderTable(parent *etree.Element, t *content.Table, cfg *config.DocumentConfig) {
	if t.ColumnCount == 0 || len(t.Rows) == 0 {
		return
	}

	tbl := parent.CreateElement("w:tbl")
	tblPr := tbl.CreateElement("w:tblPr")
	tblStyle := tblPr.CreateElement("w:tblStyle")
	tblStyle.CreateAttr("w:val", "TableGrid")
	tblW := tblPr.CreateElement("w:tblW")
	tblW.CreateAttr("w:w", "0")
	tblW.CreateAttr("w:type", "auto")

	grid := tbl.CreateElement("w:tblGrid")
	colWidth := strconv.Itoa(tableWidthTwips / t.ColumnCount)
	for i := 0; i < t.ColumnCount; i++ {
		col := grid.CreateElement("w:gridCol")
		col.CreateAttr("w:w", colWidth)
	}

	for _, row := range t.Rows {
		tr := tbl.CreateElement("w:tr")
		for _, cell := range row {
			tc := tr.CreateElement("w:tc")
			tcPr := tc.CreateElement("w:tcPr")
			tcW := tcPr.CreateElement("w:tcW")
			tcW.CreateAttr("w:w", colWidth)
			tcW.CreateAttr("w:type", "dxa")

			// a cell must contain at least one paragraph
			if len(cell.Blocks) == 0 {
				tc.CreateElement("w:p")
				continue
			}
			for _, b := range cell.Blocks {
				renderBlock(tc, b, cfg)
			}
		}
	}
}

func renderListItem(parent *etree.Element, li *content.ListItem, cfg *config.DocumentConfig) {
	numID := bulletNumID
	if li.Ordered {
		numID = decimalNumID
	}
	level := li.Depth - 1
	if level < 0 {
		level = 0
	}
	if level > maxNumberingLevel {
		level = maxNumberingLevel
	}

	renderParagraph(parent, &li.Paragraph, cfg, &numbering{numID: numID, level: level})
	for _, nested := range li.Nested {
		renderBlock(parent, nested, cfg)
	}
}

// runHighlight prefers an explicit highlight and otherwise approximates
// the run background with the nearest highlighter color.
func runHighlight(s content.StyleState) content.Highlight {
	if s.Highlight != content.HighlightNone {
		return s.Highlight
	}
	if s.Background != nil {
		return css.MapColorToHighlight(*s.Background)
	}
	return content.HighlightNone
}

// highlightValue maps a highlight to its OOXML name. Orange has no direct
// equivalent and degrades to darkYellow.
func highlightValue(h content.Highlight) string {
	switch h {
	case content.HighlightYellow:
		return "yellow"
	case content.HighlightRed:
		return "red"
	case content.HighlightBrightGreen:
		return "green"
	case content.HighlightBlue:
		return "blue"
	case content.HighlightPink:
		return "magenta"
	case content.HighlightTurquoise:
		return "cyan"
	case content.HighlightOrange:
		return "darkYellow"
	}
	return ""
}

func alignmentValue(a content.Alignment) string {
	switch a {
	case content.AlignCenter:
		return "center"
	case content.AlignRight:
		return "right"
	case content.AlignJustify:
		return "both"
	}
	return ""
}

func twips(pt float64) int {
	return int(math.Round(pt * 20))
}

func halfPoints(pt float64) int {
	return int(math.Round(pt * 2))
}
