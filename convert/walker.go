package convert

import (
	"strings"

	"golang.org/x/net/html"

	"hdc/content"
	"hdc/css"
)

// Paragraph spacing applied by the builders, in points. Regular block
// paragraphs get the wider spacing; list items the narrow one; everything
// else the document default.
const (
	blockSpacingPt   = 12.0
	listItemSpacing  = 4.0
	defaultSpacingPt = 6.0
	listIndentStepPt = 18.0
)

// headingSizes maps the heading level to its base font size in points.
var headingSizes = map[int]float64{
	1: 24, 2: 20, 3: 18, 4: 16, 5: 14, 6: 12,
}

// walkCtx is the traversal state of a single conversion. All of it is
// created fresh per call: node identities from one conversion must never
// leak into the next.
type walkCtx struct {
	visited map[*html.Node]struct{} // nodes already converted into output
	sink    *[]content.Block        // where finished blocks are appended
	para    *content.Paragraph      // open paragraph accepting runs, nil when none
	style   content.StyleState      // style in effect for direct text
	scope   *html.Node              // innermost block container, for implicit paragraphs
}

func (ctx *walkCtx) seen(n *html.Node) bool {
	_, ok := ctx.visited[n]
	return ok
}

func (ctx *walkCtx) mark(n *html.Node) {
	ctx.visited[n] = struct{}{}
}

func (ctx *walkCtx) emit(b content.Block) {
	*ctx.sink = append(*ctx.sink, b)
}

// walkNode dispatches a single node at block level.
func (c *Converter) walkNode(ctx *walkCtx, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		c.emitText(ctx, n.Data, ctx.style)
	case html.ElementNode:
		c.walkElement(ctx, n)
	}
}

// walkElement classifies one element and drives the matching builder.
// Re-visiting an already converted node is a no-op.
func (c *Converter) walkElement(ctx *walkCtx, n *html.Node) {
	if skipElement(n.Data) || ctx.seen(n) {
		return
	}

	switch n.Data {
	case "p":
		ctx.mark(n)
		c.buildParagraph(ctx, n)

	case "div":
		ctx.mark(n)
		c.buildDiv(ctx, n)

	case "h1", "h2", "h3", "h4", "h5", "h6":
		ctx.mark(n)
		c.buildHeading(ctx, n, int(n.Data[1]-'0'))

	case "table":
		ctx.mark(n)
		c.buildTable(ctx, n)

	case "ul", "ol":
		ctx.mark(n)
		for _, b := range c.buildList(ctx, n, ctx.style, 0) {
			ctx.emit(b)
		}

	case "li":
		// list items are produced by the list builder only; reaching one
		// through generic dispatch must not emit anything twice
		return

	case "br":
		ctx.mark(n)
		if ctx.para != nil {
			ctx.para.AddBreak(ctx.style)
			return
		}
		ctx.emit(content.Block{Paragraph: &content.Paragraph{
			Alignment:     c.res.resolveAlignment(n),
			SpacingBefore: blockSpacingPt,
			SpacingAfter:  blockSpacingPt,
		}})

	case "span", "font", "b", "strong", "i", "em", "u", "small", "mark", "a", "sub", "sup", "code", "s", "strike":
		// inline mutators never emit a block of their own
		style := applyTagSemantics(ctx.style, n.Data)
		style = c.res.resolve(style, n)
		c.walkInlineChildren(ctx, n, style)

	default:
		if ctx.para != nil {
			c.walkInlineChildren(ctx, n, c.res.resolve(ctx.style, n))
			return
		}
		ctx.mark(n)
		c.buildFallback(ctx, n)
	}
}

// buildParagraph handles an explicit <p>: a fresh paragraph with the block
// spacing defaults, the node's cascade applied to everything inside.
func (c *Converter) buildParagraph(ctx *walkCtx, n *html.Node) {
	style := c.res.resolve(ctx.style, n)

	p := &content.Paragraph{
		Alignment:     c.res.resolveAlignment(n),
		SpacingBefore: blockSpacingPt,
		SpacingAfter:  blockSpacingPt,
		LineSpacing:   style.LineHeight,
		Background:    style.Background,
	}
	c.applyParagraphLayout(p, n)

	ctx.emit(content.Block{Paragraph: p})
	ctx.para = p
	c.walkInlineChildren(ctx, n, style)
}

// buildDiv treats a <div> as a style and paragraph scope: its cascade and
// background apply to everything inside it, and the open paragraph cursor
// is restored once the subtree is done so siblings are unaffected.
func (c *Converter) buildDiv(ctx *walkCtx, n *html.Node) {
	savedPara, savedStyle, savedScope := ctx.para, ctx.style, ctx.scope

	ctx.para = nil
	ctx.style = c.res.resolve(ctx.style, n)
	ctx.scope = n
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.walkNode(ctx, child)
	}

	ctx.para, ctx.style, ctx.scope = savedPara, savedStyle, savedScope
}

// buildHeading maps <h1>..<h6> to a paragraph with forced bold and the
// level size; explicit style on the tag still overrides both.
func (c *Converter) buildHeading(ctx *walkCtx, n *html.Node, level int) {
	style := ctx.style
	style.Bold = true
	style.FontSize = headingSizes[level]
	style = c.res.resolve(style, n)

	p := &content.Paragraph{
		Alignment:     c.res.resolveAlignment(n),
		Heading:       level,
		SpacingBefore: defaultSpacingPt,
		SpacingAfter:  defaultSpacingPt,
		LineSpacing:   style.LineHeight,
		Background:    style.Background,
	}
	c.applyParagraphLayout(p, n)

	ctx.emit(content.Block{Paragraph: p})
	ctx.para = p
	c.walkInlineChildren(ctx, n, style)
}

// buildFallback handles an unclassified element reached with no open
// paragraph: a single paragraph with the element's flattened text, aligned
// by the element itself, with no cascade into children.
func (c *Converter) buildFallback(ctx *walkCtx, n *html.Node) {
	text := strings.TrimSpace(flattenText(n))
	if text == "" {
		return
	}
	p := &content.Paragraph{
		Alignment:     c.res.resolveAlignment(n),
		SpacingBefore: blockSpacingPt,
		SpacingAfter:  blockSpacingPt,
	}
	p.AddRun(text, ctx.style)
	ctx.emit(content.Block{Paragraph: p})
	ctx.para = p
}

// walkInlineChildren recurses over inline content against the currently
// open paragraph, carrying the resolved style explicitly. Block-producing
// children fall back to regular element dispatch.
func (c *Converter) walkInlineChildren(ctx *walkCtx, n *html.Node, style content.StyleState) {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		switch child.Type {
		case html.TextNode:
			c.emitText(ctx, child.Data, style)

		case html.ElementNode:
			name := child.Data
			switch {
			case skipElement(name):
				continue

			case name == "li":
				continue

			case name == "br":
				c.ensureParagraph(ctx).AddBreak(style)

			case isBlockTag(name):
				saved := ctx.style
				ctx.style = style
				c.walkElement(ctx, child)
				ctx.style = saved

			default:
				s := applyTagSemantics(style, name)
				s = c.res.resolve(s, child)
				c.walkInlineChildren(ctx, child, s)
			}
		}
	}
}

// emitText turns a text node into a run. Non-breaking spaces become plain
// spaces; a lone newline is preserved as an explicit line break; any other
// pure-whitespace text contributes nothing.
func (c *Converter) emitText(ctx *walkCtx, text string, style content.StyleState) {
	if text == "\n" {
		c.ensureParagraph(ctx).AddBreak(style)
		return
	}
	text = strings.ReplaceAll(text, " ", " ")
	if strings.TrimSpace(text) == "" {
		return
	}
	c.ensureParagraph(ctx).AddRun(text, style)
}

// ensureParagraph returns the open paragraph, creating an implicit one
// scoped to the current block container when none is open.
func (c *Converter) ensureParagraph(ctx *walkCtx) *content.Paragraph {
	if ctx.para != nil {
		return ctx.para
	}
	p := &content.Paragraph{
		Alignment:     c.res.resolveAlignment(ctx.scope),
		SpacingBefore: blockSpacingPt,
		SpacingAfter:  blockSpacingPt,
		LineSpacing:   ctx.style.LineHeight,
		Background:    ctx.style.Background,
	}
	ctx.emit(content.Block{Paragraph: p})
	ctx.para = p
	return p
}

// applyParagraphLayout picks paragraph-level lengths from the node's own
// style declarations. Only point values are honored; anything else keeps
// the defaults.
func (c *Converter) applyParagraphLayout(p *content.Paragraph, n *html.Node) {
	style := attrValue(n, "style")
	if style == "" {
		return
	}
	decls := c.res.parser.ParseDeclarations(style)
	for _, d := range decls {
		switch d.Property {
		case "margin-top":
			if pt, ok := css.ParsePoints(d.Value); ok {
				p.SpacingBefore = pt
			}
		case "margin-bottom":
			if pt, ok := css.ParsePoints(d.Value); ok {
				p.SpacingAfter = pt
			}
		case "margin-left":
			if pt, ok := css.ParsePoints(d.Value); ok {
				p.LeftIndent = pt
			}
		case "text-indent":
			if pt, ok := css.ParsePoints(d.Value); ok {
				p.FirstLineIndent = pt
			}
		}
	}
}

// isBlockTag reports whether the element starts its own block sub-context.
func isBlockTag(name string) bool {
	switch name {
	case "p", "div", "table", "ul", "ol",
		"h1", "h2", "h3", "h4", "h5", "h6":
		return true
	}
	return false
}

// skipElement filters elements that never contribute document content.
func skipElement(name string) bool {
	switch name {
	case "script", "style", "noscript", "template", "svg", "math",
		"iframe", "object", "embed", "head", "title", "meta", "link", "base":
		return true
	}
	return false
}

// flattenText collects all descendant text, with <br> as newline.
func flattenText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		switch node.Type {
		case html.TextNode:
			sb.WriteString(node.Data)
		case html.ElementNode:
			if skipElement(node.Data) {
				return
			}
			if node.Data == "br" {
				sb.WriteString("\n")
			}
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return strings.ReplaceAll(sb.String(), " ", " ")
}
