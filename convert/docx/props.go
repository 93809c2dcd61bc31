package docx

import (
	"archive/zip"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/google/uuid"
	"golang.org/x/text/language"

	"hdc/config"
	"hdc/misc"
)

const (
	ctNS      = "http://schemas.openxmlformats.org/package/2006/content-types"
	relNS     = "http://schemas.openxmlformats.org/package/2006/relationships"
	cpNS      = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	dcNS      = "http://purl.org/dc/elements/1.1/"
	dcTermsNS = "http://purl.org/dc/terms/"
	xsiNS     = "http://www.w3.org/2001/XMLSchema-instance"
	appNS     = "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"
	w15NS     = "http://schemas.microsoft.com/office/word/2012/wordml"

	relTypeBase = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/"
)

func writeContentTypes(zw *zip.Writer) error {
	x := newXML()

	types := x.CreateElement("Types")
	types.CreateAttr("xmlns", ctNS)

	relsDefault := types.CreateElement("Default")
	relsDefault.CreateAttr("Extension", "rels")
	relsDefault.CreateAttr("ContentType", "application/vnd.openxmlformats-package.relationships+xml")

	xmlDefault := types.CreateElement("Default")
	xmlDefault.CreateAttr("Extension", "xml")
	xmlDefault.CreateAttr("ContentType", "application/xml")

	overrides := []struct {
		part string
		kind string
	}{
		{"/word/document.xml", "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"},
		{"/word/styles.xml", "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"},
		{"/word/numbering.xml", "application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"},
		{"/word/settings.xml", "application/vnd.openxmlformats-officedocument.wordprocessingml.settings+xml"},
		{"/docProps/core.xml", "application/vnd.openxmlformats-package.core-properties+xml"},
		{"/docProps/app.xml", "application/vnd.openxmlformats-officedocument.extended-properties+xml"},
	}
	for _, o := range overrides {
		el := types.CreateElement("Override")
		el.CreateAttr("PartName", o.part)
		el.CreateAttr("ContentType", o.kind)
	}

	return writeXMLToZip(zw, "[Content_Types].xml", x)
}

func writeRootRels(zw *zip.Writer) error {
	x := newXML()

	rels := x.CreateElement("Relationships")
	rels.CreateAttr("xmlns", relNS)

	addRelationship(rels, "rId1", relTypeBase+"officeDocument", "word/document.xml")
	addRelationship(rels, "rId2", "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties", "docProps/core.xml")
	addRelationship(rels, "rId3", relTypeBase+"extended-properties", "docProps/app.xml")

	return writeXMLToZip(zw, "_rels/.rels", x)
}

func writeDocumentRels(zw *zip.Writer) error {
	x := newXML()

	rels := x.CreateElement("Relationships")
	rels.CreateAttr("xmlns", relNS)

	addRelationship(rels, "rId1", relTypeBase+"styles", "styles.xml")
	addRelationship(rels, "rId2", relTypeBase+"numbering", "numbering.xml")
	addRelationship(rels, "rId3", relTypeBase+"settings", "settings.xml")

	return writeXMLToZip(zw, "word/_rels/document.xml.rels", x)
}

func addRelationship(rels *etree.Element, id, kind, target string) {
	rel := rels.CreateElement("Relationship")
	rel.CreateAttr("Id", id)
	rel.CreateAttr("Type", kind)
	rel.CreateAttr("Target", target)
}

func writeCoreProps(zw *zip.Writer, cfg *config.DocumentConfig) error {
	x := newXML()

	props := x.CreateElement("cp:coreProperties")
	props.CreateAttr("xmlns:cp", cpNS)
	props.CreateAttr("xmlns:dc", dcNS)
	props.CreateAttr("xmlns:dcterms", dcTermsNS)
	props.CreateAttr("xmlns:xsi", xsiNS)

	title := props.CreateElement("dc:title")
	title.SetText(cfg.Title)
	creator := props.CreateElement("dc:creator")
	creator.SetText(cfg.Creator)

	now := time.Now().UTC().Format("2006-01-02T15:04:05Z")
	for _, name := range []string{"dcterms:created", "dcterms:modified"} {
		el := props.CreateElement(name)
		el.CreateAttr("xsi:type", "dcterms:W3CDTF")
		el.SetText(now)
	}

	return writeXMLToZip(zw, "docProps/core.xml", x)
}

func writeAppProps(zw *zip.Writer) error {
	x := newXML()

	props := x.CreateElement("Properties")
	props.CreateAttr("xmlns", appNS)

	app := props.CreateElement("Application")
	app.SetText(misc.GetAppName() + "/" + misc.GetVersion())

	return writeXMLToZip(zw, "docProps/app.xml", x)
}

func writeSettings(zw *zip.Writer, cfg *config.DocumentConfig) error {
	x := newXML()

	settings := x.CreateElement("w:settings")
	settings.CreateAttr("xmlns:w", wNS)
	settings.CreateAttr("xmlns:w15", w15NS)

	docID := settings.CreateElement("w15:docId")
	docID.CreateAttr("w15:val", "{"+strings.ToUpper(uuid.New().String())+"}")

	fontLang := settings.CreateElement("w:themeFontLang")
	fontLang.CreateAttr("w:val", canonicalLanguage(cfg.Language))
	fontLang.CreateAttr("w:eastAsia", canonicalLanguage(cfg.EastAsianLanguage))

	return writeXMLToZip(zw, "word/settings.xml", x)
}

// canonicalLanguage normalizes a BCP 47 tag; config validation has already
// rejected malformed tags, so parse failures just pass the value through.
func canonicalLanguage(tag string) string {
	parsed, err := language.Parse(tag)
	if err != nil {
		return tag
	}
	return parsed.String()
}
