package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"hdc/content"
	"hdc/convert/docx"
	"hdc/state"
)

// Run implements the convert subcommand: read the source, build the
// document model and serialize it as DOCX.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("convert")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.Markdown, env.Overwrite = cmd.Bool("markdown"), cmd.Bool("overwrite")

	if title := cmd.String("title"); title != "" {
		env.Cfg.Document.Title = title
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	text, err := readSource(src)
	if err != nil {
		return fmt.Errorf("unable to read source %q: %w", src, err)
	}

	conv := NewConverter(log)

	var doc *content.Document
	if env.Markdown {
		doc, err = conv.ConvertMarkdown(text)
	} else {
		doc, err = conv.Convert(text)
	}
	if err != nil {
		return fmt.Errorf("unable to convert source %q: %w", src, err)
	}
	log.Debug("Document model built", zap.String("tree", doc.String()))

	outputPath := buildOutputPath(src, dst, env)
	if _, err := os.Stat(outputPath); err == nil && !env.Overwrite {
		return fmt.Errorf("destination file already exists: %s", outputPath)
	}

	return docx.Generate(ctx, doc, outputPath, &env.Cfg.Document, log)
}

// readSource reads the input text, "-" meaning standard input.
func readSource(src string) (string, error) {
	if src == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
