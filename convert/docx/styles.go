package docx

import (
	"archive/zip"
	"math"
	"strconv"

	"github.com/beevik/etree"

	"hdc/config"
)

// Heading sizes in points, matching the sizes the converter assigns when
// it builds heading paragraphs.
var headingStyleSizes = [6]float64{24, 20, 18, 16, 14, 12}

func writeStyles(zw *zip.Writer, cfg *config.DocumentConfig) error {
	x := newXML()

	styles := x.CreateElement("w:styles")
	styles.CreateAttr("xmlns:w", wNS)
	styles.CreateAttr("xmlns:r", rNS)

	writeDocDefaults(styles, cfg)
	writeNormalStyle(styles, cfg)
	for level := 1; level <= 6; level++ {
		writeHeadingStyle(styles, level)
	}
	writeListParagraphStyle(styles)
	writeTableGridStyle(styles)

	return writeXMLToZip(zw, "word/styles.xml", x)
}

func writeDocDefaults(styles *etree.Element, cfg *config.DocumentConfig) {
	docDefaults := styles.CreateElement("w:docDefaults")
	rprDefault := docDefaults.CreateElement("w:rPrDefault")
	rpr := rprDefault.CreateElement("w:rPr")

	fonts := rpr.CreateElement("w:rFonts")
	fonts.CreateAttr("w:ascii", cfg.BaseFont)
	fonts.CreateAttr("w:hAnsi", cfg.BaseFont)
	fonts.CreateAttr("w:eastAsia", cfg.EastAsianFont)
	fonts.CreateAttr("w:cs", cfg.BaseFont)

	sz := rpr.CreateElement("w:sz")
	sz.CreateAttr("w:val", strconv.Itoa(halfPoints(cfg.BaseFontSize)))
	szCs := rpr.CreateElement("w:szCs")
	szCs.CreateAttr("w:val", strconv.Itoa(halfPoints(cfg.BaseFontSize)))

	lang := rpr.CreateElement("w:lang")
	lang.CreateAttr("w:val", cfg.Language)
	lang.CreateAttr("w:eastAsia", cfg.EastAsianLanguage)

	docDefaults.CreateElement("w:pPrDefault")
}

func writeNormalStyle(styles *etree.Element, cfg *config.DocumentConfig) {
	style := newStyle(styles, "paragraph", "Normal", "Normal")
	style.CreateAttr("w:default", "1")

	ppr := style.CreateElement("w:pPr")
	spacing := ppr.CreateElement("w:spacing")
	spacing.CreateAttr("w:before", strconv.Itoa(twips(cfg.SpacingBefore)))
	spacing.CreateAttr("w:after", strconv.Itoa(twips(cfg.SpacingAfter)))
	spacing.CreateAttr("w:line", strconv.Itoa(int(math.Round(cfg.LineSpacing*240))))
	spacing.CreateAttr("w:lineRule", "auto")
}

func writeHeadingStyle(styles *etree.Element, level int) {
	name := "Heading" + strconv.Itoa(level)
	style := newStyle(styles, "paragraph", name, "heading "+strconv.Itoa(level))
	basedOn(style, "Normal")
	next := style.CreateElement("w:next")
	next.CreateAttr("w:val", "Normal")

	ppr := style.CreateElement("w:pPr")
	ppr.CreateElement("w:keepNext")
	outline := ppr.CreateElement("w:outlineLvl")
	outline.CreateAttr("w:val", strconv.Itoa(level-1))

	rpr := style.CreateElement("w:rPr")
	rpr.CreateElement("w:b")
	size := halfPoints(headingStyleSizes[level-1])
	sz := rpr.CreateElement("w:sz")
	sz.CreateAttr("w:val", strconv.Itoa(size))
	szCs := rpr.CreateElement("w:szCs")
	szCs.CreateAttr("w:val", strconv.Itoa(size))
}

func writeListParagraphStyle(styles *etree.Element) {
	style := newStyle(styles, "paragraph", "ListParagraph", "List Paragraph")
	basedOn(style, "Normal")
	ppr := style.CreateElement("w:pPr")
	ppr.CreateElement("w:contextualSpacing")
}

func writeTableGridStyle(styles *etree.Element) {
	normal := newStyle(styles, "table", "TableNormal", "Normal Table")
	normal.CreateAttr("w:default", "1")

	style := newStyle(styles, "table", "TableGrid", "Table Grid")
	basedOn(style, "TableNormal")

	tblPr := style.CreateElement("w:tblPr")
	borders := tblPr.CreateElement("w:tblBorders")
	for _, side := range []string{"top", "left", "bottom", "right", "insideH", "insideV"} {
		b := borders.CreateElement("w:" + side)
		b.CreateAttr("w:val", "single")
		b.CreateAttr("w:sz", "4")
		b.CreateAttr("w:space", "0")
		b.CreateAttr("w:color", "auto")
	}
}

func newStyle(styles *etree.Element, kind, id, name string) *etree.Element {
	style := styles.CreateElement("w:style")
	style.CreateAttr("w:type", kind)
	style.CreateAttr("w:styleId", id)
	nameEl := style.CreateElement("w:name")
	nameEl.CreateAttr("w:val", name)
	return style
}

func basedOn(style *etree.Element, parent string) {
	el := style.CreateElement("w:basedOn")
	el.CreateAttr("w:val", parent)
}
