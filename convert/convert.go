package convert

import (
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"hdc/content"
)

// Converter turns an HTML fragment or document into a content.Document.
// A single Converter is reusable; every Convert call walks with fresh
// traversal state.
type Converter struct {
	res *resolver
	log *zap.Logger
}

func NewConverter(log *zap.Logger) *Converter {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("convert")
	return &Converter{
		res: newResolver(log),
		log: log,
	}
}

// Convert parses src and builds the document model. The operation is all
// or nothing: on any failure the result is nil and the error wraps the
// cause in a ConversionError, except for empty input which is reported as
// ErrEmptyInput.
func (c *Converter) Convert(src string) (doc *content.Document, err error) {
	src = SanitizeInput(src)
	if src == "" {
		return nil, ErrEmptyInput
	}

	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = &ConversionError{Err: fmt.Errorf("%v", r)}
		}
	}()

	root, perr := html.Parse(strings.NewReader(src))
	if perr != nil {
		return nil, &ConversionError{Err: perr}
	}

	body := findElement(root, "body")
	if body == nil {
		body = root
	}

	doc = &content.Document{}
	ctx := &walkCtx{
		visited: make(map[*html.Node]struct{}),
		sink:    &doc.Blocks,
		scope:   body,
	}
	for child := body.FirstChild; child != nil; child = child.NextSibling {
		c.walkNode(ctx, child)
	}

	c.log.Debug("conversion finished",
		zap.Int("blocks", len(doc.Blocks)))
	return doc, nil
}

var thinkBlockRe = regexp.MustCompile(`(?is)<think>.*?</think>`)

// SanitizeInput prepares raw model or user output for parsing: reasoning
// blocks are dropped, literal two-character "\n" escapes become real
// newlines, and surrounding whitespace is trimmed.
func SanitizeInput(src string) string {
	src = thinkBlockRe.ReplaceAllString(src, "")
	if strings.Contains(src, `\n`) {
		src = strings.ReplaceAll(src, `\n`, "\n")
	}
	return strings.TrimSpace(src)
}

// findElement locates the first element with the given name, depth first.
func findElement(n *html.Node, name string) *html.Node {
	if n.Type == html.ElementNode && n.Data == name {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findElement(child, name); found != nil {
			return found
		}
	}
	return nil
}
