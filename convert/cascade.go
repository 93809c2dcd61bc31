package convert

import (
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"hdc/content"
	"hdc/css"
)

// boldWeights are the font-weight values that switch bold on.
var boldWeights = map[string]bool{
	"bold": true, "bolder": true, "700": true, "800": true, "900": true,
}

// resolver derives a child style state from a node's attributes layered on
// top of the parent state. It owns no per-conversion state, only the
// declaration parser and a logger.
type resolver struct {
	parser *css.Parser
	log    *zap.Logger
}

func newResolver(log *zap.Logger) *resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &resolver{
		parser: css.NewParser(log),
		log:    log.Named("cascade"),
	}
}

// resolve returns the style state for a node: the parent state with every
// field the node declares overridden. Properties are applied in a fixed
// order; the style attribute is processed first so that explicit legacy
// attributes (color=, face=, size= on font tags) layer on top of it.
// Unparseable tokens keep the inherited value.
func (r *resolver) resolve(parent content.StyleState, n *html.Node) content.StyleState {
	s := parent

	if style := attrValue(n, "style"); style != "" {
		s = r.applyDeclarations(s, r.parser.ParseDeclarations(style))
	}

	if v := attrValue(n, "color"); v != "" {
		if c, ok := css.ParseColor(v); ok {
			s.Color = &c
		} else {
			r.log.Debug("ignoring unparseable color attribute", zap.String("value", v))
		}
	}
	if v := attrValue(n, "face"); v != "" {
		if family, ok := css.FirstFontFamily(v); ok {
			s.FontFamily = family
		}
	}
	if v := attrValue(n, "size"); v != "" {
		if pt, ok := css.ParseFontSize(v, s.FontSize); ok {
			s.FontSize = pt
		} else {
			r.log.Debug("ignoring unparseable size attribute", zap.String("value", v))
		}
	}

	return s
}

func (r *resolver) applyDeclarations(s content.StyleState, decls []css.Declaration) content.StyleState {
	if v, ok := css.Lookup(decls, "color"); ok {
		if c, parsed := css.ParseColor(v); parsed {
			s.Color = &c
		} else {
			r.log.Debug("ignoring unparseable color", zap.String("value", v))
		}
	}
	if v, ok := css.Lookup(decls, "background-color"); ok {
		if c, parsed := css.ParseColor(v); parsed {
			s.Background = &c
		} else {
			r.log.Debug("ignoring unparseable background-color", zap.String("value", v))
		}
	}
	if v, ok := css.Lookup(decls, "font-weight"); ok {
		s.Bold = boldWeights[strings.ToLower(v)]
	}
	if v, ok := css.Lookup(decls, "font-style"); ok {
		s.Italic = strings.EqualFold(v, "italic")
	}
	if v, ok := css.Lookup(decls, "text-decoration"); ok {
		s.Underline = strings.Contains(strings.ToLower(v), "underline")
	}
	if v, ok := css.Lookup(decls, "font-size"); ok {
		if pt, parsed := css.ParseFontSize(v, s.FontSize); parsed {
			s.FontSize = pt
		} else {
			r.log.Debug("ignoring unparseable font-size", zap.String("value", v))
		}
	}
	if v, ok := css.Lookup(decls, "font-family"); ok {
		if family, parsed := css.FirstFontFamily(v); parsed {
			s.FontFamily = family
		}
	}
	if v, ok := css.Lookup(decls, "line-height"); ok {
		if lh, parsed := css.ParseLineHeight(v); parsed {
			s.LineHeight = lh
		}
	}
	return s
}

// applyTagSemantics mutates the style for semantic inline tags. This runs
// before the attribute cascade so that a tag's own declarations can still
// override the implied style (e.g. <mark style="background-color:red">).
func applyTagSemantics(s content.StyleState, tag string) content.StyleState {
	switch tag {
	case "b", "strong":
		s.Bold = true
	case "i", "em":
		s.Italic = true
	case "u":
		s.Underline = true
	case "small":
		if s.FontSize <= 0 {
			s.FontSize = css.BaseFontSize
		}
		s.FontSize -= 2
	case "mark":
		s.Highlight = content.HighlightYellow
	}
	return s
}

// attrValue returns the value of the named attribute, or "".
func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}
