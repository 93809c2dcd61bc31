package convert

import (
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"

	"hdc/content"
)

var codeFenceRe = regexp.MustCompile("(?s)\\A```(?:html|markdown|md)?\\s*\\n(.*?)\\n?```\\z")

// StripCodeFence unwraps content delivered inside a single fenced code
// block, a common artifact of generated output.
func StripCodeFence(src string) string {
	src = strings.TrimSpace(src)
	if m := codeFenceRe.FindStringSubmatch(src); m != nil {
		return m[1]
	}
	return src
}

// MarkdownToHTML renders markdown into the HTML subset the converter
// understands, so markdown sources flow through the same pipeline.
func MarkdownToHTML(src string) string {
	out := blackfriday.Run([]byte(StripCodeFence(src)),
		blackfriday.WithExtensions(blackfriday.CommonExtensions))
	return string(out)
}

// ConvertMarkdown is Convert with a markdown front end.
func (c *Converter) ConvertMarkdown(src string) (*content.Document, error) {
	src = SanitizeInput(src)
	if src == "" {
		return nil, ErrEmptyInput
	}
	return c.Convert(MarkdownToHTML(src))
}
