package convert

import (
	"golang.org/x/net/html"

	"hdc/content"
	"hdc/css"
)

// resolveAlignment determines a block's alignment: a legacy align attribute
// on the element itself wins, then a text-align property in its own style,
// then the same two checks on each ancestor walking outward. The first hit
// stops the walk; no hit means left. Invoked once per emitted block.
func (r *resolver) resolveAlignment(n *html.Node) content.Alignment {
	for node := n; node != nil; node = node.Parent {
		if node.Type != html.ElementNode {
			continue
		}
		if v := attrValue(node, "align"); v != "" {
			return css.ParseAlignment(v)
		}
		if style := attrValue(node, "style"); style != "" {
			if v, ok := css.Lookup(r.parser.ParseDeclarations(style), "text-align"); ok {
				return css.ParseAlignment(v)
			}
		}
	}
	return content.AlignLeft
}
