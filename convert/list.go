package convert

import (
	"golang.org/x/net/html"

	"hdc/content"
)

const maxListDepth = 5

// buildList converts a <ul>/<ol> into list item blocks. depth is the
// nesting level of the enclosing list (0 at top level); it is incremented
// on entry and drives indentation, capped so runaway nesting stays
// readable.
func (c *Converter) buildList(ctx *walkCtx, n *html.Node, inherited content.StyleState, depth int) []content.Block {
	depth++
	ordered := n.Data == "ol"
	listHasStyle := attrValue(n, "style") != ""

	var blocks []content.Block
	for li := n.FirstChild; li != nil; li = li.NextSibling {
		if li.Type != html.ElementNode || li.Data != "li" {
			continue
		}
		ctx.mark(li)

		// the item's own style wins; a bare item inherits whatever the
		// list element itself declares
		src := li
		if attrValue(li, "style") == "" && listHasStyle {
			src = n
		}
		style := c.res.resolve(inherited, src)

		item := &content.ListItem{Ordered: ordered, Depth: depth}
		item.Paragraph = content.Paragraph{
			Alignment:     c.res.resolveAlignment(li),
			SpacingBefore: listItemSpacing,
			SpacingAfter:  listItemSpacing,
			LineSpacing:   style.LineHeight,
			Background:    style.Background,
			LeftIndent:    indentForDepth(depth),
		}

		sub := &walkCtx{
			visited: ctx.visited,
			sink:    &item.Nested,
			para:    &item.Paragraph,
			style:   style,
			scope:   li,
		}

		// direct sublists are collected first and built after the item's
		// own content, so their items follow the parent item in order
		var sublists []*html.Node
		for child := li.FirstChild; child != nil; child = child.NextSibling {
			if child.Type == html.ElementNode && (child.Data == "ul" || child.Data == "ol") {
				sublists = append(sublists, child)
				continue
			}
			c.walkNode(sub, child)
		}
		for _, sl := range sublists {
			ctx.mark(sl)
			item.Nested = append(item.Nested, c.buildList(sub, sl, style, depth)...)
		}

		blocks = append(blocks, content.Block{ListItem: item})
	}
	return blocks
}

// indentForDepth spreads nested items to the right, one step per level
// past the first.
func indentForDepth(depth int) float64 {
	if depth <= 1 {
		return 0
	}
	if depth > maxListDepth {
		depth = maxListDepth
	}
	return float64(depth-1) * listIndentStepPt
}
