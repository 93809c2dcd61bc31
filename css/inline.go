// Package css parses the style tokens the converter cares about: inline
// style declarations, colors, font sizes and alignment keywords.
//
// Every function here is total. Unparseable input yields ok=false and the
// caller keeps whatever value it already had - bad style tokens must never
// fail a conversion.
package css

import (
	"bytes"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Declaration is a single property from an inline style string.
type Declaration struct {
	Property string // lower-cased
	Value    string // trimmed raw value
}

// Parser parses inline style declaration strings.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new inline style parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// ParseDeclarations parses an inline style attribute value ("a: b; c: d")
// into an ordered list of declarations. Entries that do not parse are
// dropped without affecting the rest. The parser has no state, so parsing
// the same input twice always yields the same result.
func (p *Parser) ParseDeclarations(style string) []Declaration {
	var decls []Declaration
	for _, chunk := range strings.Split(style, ";") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		d, ok := p.parseDeclaration(chunk)
		if !ok {
			p.log.Debug("dropping unparseable style declaration", zap.String("declaration", chunk))
			continue
		}
		decls = append(decls, d)
	}
	return decls
}

func (p *Parser) parseDeclaration(chunk string) (Declaration, bool) {
	input := parse.NewInput(bytes.NewReader([]byte(chunk)))
	parser := css.NewParser(input, true)

	for {
		switch gt, _, data := parser.Next(); gt {
		case css.ErrorGrammar:
			return Declaration{}, false

		case css.DeclarationGrammar:
			value := tokensToValue(parser.Values())
			if value == "" {
				return Declaration{}, false
			}
			return Declaration{Property: strings.ToLower(string(data)), Value: value}, true

		case css.CustomPropertyGrammar:
			// custom properties (--var) carry nothing we can resolve
			return Declaration{}, false
		}
	}
}

// Lookup returns the last value declared for the given property.
func Lookup(decls []Declaration, property string) (string, bool) {
	value, found := "", false
	for _, d := range decls {
		if d.Property == property {
			value, found = d.Value, true
		}
	}
	return value, found
}

// tokensToValue rebuilds a trimmed value string from declaration tokens,
// collapsing runs of whitespace to a single space.
func tokensToValue(tokens []css.Token) string {
	var parts []string
	for _, t := range tokens {
		if t.TokenType != css.WhitespaceToken {
			parts = append(parts, string(t.Data))
		} else if len(parts) > 0 && parts[len(parts)-1] != " " {
			parts = append(parts, " ")
		}
	}
	return strings.TrimSpace(strings.Join(parts, ""))
}
