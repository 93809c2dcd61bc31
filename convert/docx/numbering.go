package docx

import (
	"archive/zip"
	"strconv"

	"github.com/beevik/etree"
)

const maxNumberingLevel = 5

// bulletGlyphs cycle through the levels the way word processors do:
// disc, circle, square.
var bulletGlyphs = []struct {
	text string
	font string
}{
	{"", "Symbol"},
	{"o", "Courier New"},
	{"", "Wingdings"},
}

func writeNumbering(zw *zip.Writer) error {
	x := newXML()

	numbering := x.CreateElement("w:numbering")
	numbering.CreateAttr("xmlns:w", wNS)

	writeBulletAbstract(numbering, 0)
	writeDecimalAbstract(numbering, 1)

	registerNum(numbering, bulletNumID, 0)
	registerNum(numbering, decimalNumID, 1)

	return writeXMLToZip(zw, "word/numbering.xml", x)
}

func writeBulletAbstract(numbering *etree.Element, abstractID int) {
	abstract := newAbstractNum(numbering, abstractID)
	for level := 0; level <= maxNumberingLevel; level++ {
		glyph := bulletGlyphs[level%len(bulletGlyphs)]
		lvl := newLevel(abstract, level, "bullet", glyph.text)

		rpr := lvl.CreateElement("w:rPr")
		fonts := rpr.CreateElement("w:rFonts")
		fonts.CreateAttr("w:ascii", glyph.font)
		fonts.CreateAttr("w:hAnsi", glyph.font)
		fonts.CreateAttr("w:hint", "default")
	}
}

func writeDecimalAbstract(numbering *etree.Element, abstractID int) {
	abstract := newAbstractNum(numbering, abstractID)
	for level := 0; level <= maxNumberingLevel; level++ {
		newLevel(abstract, level, "decimal", "%"+strconv.Itoa(level+1)+".")
	}
}

func newAbstractNum(numbering *etree.Element, abstractID int) *etree.Element {
	abstract := numbering.CreateElement("w:abstractNum")
	abstract.CreateAttr("w:abstractNumId", strconv.Itoa(abstractID))
	multiLevel := abstract.CreateElement("w:multiLevelType")
	multiLevel.CreateAttr("w:val", "hybridMultilevel")
	return abstract
}

func newLevel(abstract *etree.Element, level int, format, text string) *etree.Element {
	lvl := abstract.CreateElement("w:lvl")
	lvl.CreateAttr("w:ilvl", strconv.Itoa(level))

	start := lvl.CreateElement("w:start")
	start.CreateAttr("w:val", "1")
	fmtEl := lvl.CreateElement("w:numFmt")
	fmtEl.CreateAttr("w:val", format)
	lvlText := lvl.CreateElement("w:lvlText")
	lvlText.CreateAttr("w:val", text)
	jc := lvl.CreateElement("w:lvlJc")
	jc.CreateAttr("w:val", "left")

	ppr := lvl.CreateElement("w:pPr")
	ind := ppr.CreateElement("w:ind")
	ind.CreateAttr("w:left", strconv.Itoa(720*(level+1)))
	ind.CreateAttr("w:hanging", "360")

	return lvl
}

func registerNum(numbering *etree.Element, numID, abstractID int) {
	num := numbering.CreateElement("w:num")
	num.CreateAttr("w:numId", strconv.Itoa(numID))
	ref := num.CreateElement("w:abstractNumId")
	ref.CreateAttr("w:val", strconv.Itoa(abstractID))
}
