package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"hdc/config"
	"hdc/content"
)

// Generate creates the DOCX output file.
func Generate(ctx context.Context, doc *content.Document, outputPath string, cfg *config.DocumentConfig, log *zap.Logger) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	log.Info("Generating DOCX",
		zap.String("output", outputPath),
		zap.Int("blocks", len(doc.Blocks)))

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("unable to create output file: %w", err)
	}
	defer f.Close()

	if err := Write(doc, cfg, f); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("unable to finalize output file: %w", err)
	}
	return nil
}

// Write serializes the document package to w.
func Write(doc *content.Document, cfg *config.DocumentConfig, w io.Writer) error {
	zw := zip.NewWriter(w)

	if err := writeContentTypes(zw); err != nil {
		return fmt.Errorf("unable to write content types: %w", err)
	}
	if err := writeRootRels(zw); err != nil {
		return fmt.Errorf("unable to write package relationships: %w", err)
	}
	if err := writeDocumentRels(zw); err != nil {
		return fmt.Errorf("unable to write document relationships: %w", err)
	}
	if err := writeCoreProps(zw, cfg); err != nil {
		return fmt.Errorf("unable to write core properties: %w", err)
	}
	if err := writeAppProps(zw); err != nil {
		return fmt.Errorf("unable to write application properties: %w", err)
	}
	if err := writeSettings(zw, cfg); err != nil {
		return fmt.Errorf("unable to write settings: %w", err)
	}
	if err := writeStyles(zw, cfg); err != nil {
		return fmt.Errorf("unable to write styles: %w", err)
	}
	if err := writeNumbering(zw); err != nil {
		return fmt.Errorf("unable to write numbering: %w", err)
	}
	if err := writeDocument(zw, doc, cfg); err != nil {
		return fmt.Errorf("unable to write document body: %w", err)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("unable to close output archive: %w", err)
	}
	return nil
}

func writeXMLToZip(zw *zip.Writer, name string, doc *etree.Document) error {
	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return err
	}
	return writeDataToZip(zw, name, buf.Bytes())
}

func writeDataToZip(zw *zip.Writer, name string, data []byte) error {
	w, err := zw.Create(name)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func newXML() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	return doc
}
