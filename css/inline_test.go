package css

import (
	"testing"

	"go.uber.org/zap/zaptest"
)

func TestParseDeclarations(t *testing.T) {
	p := NewParser(zaptest.NewLogger(t))

	tests := []struct {
		name  string
		style string
		want  []Declaration
	}{
		{
			"simple",
			"color: red; font-weight: bold",
			[]Declaration{{"color", "red"}, {"font-weight", "bold"}},
		},
		{
			"case folding and spacing",
			"  COLOR :  #FF0000 ;;  ",
			[]Declaration{{"color", "#FF0000"}},
		},
		{
			"functional value survives",
			"background-color: rgb(1, 2, 3)",
			[]Declaration{{"background-color", "rgb(1, 2, 3)"}},
		},
		{
			"font list keeps commas",
			`font-family: "Times New Roman", serif`,
			[]Declaration{{"font-family", `"Times New Roman", serif`}},
		},
		{
			"entries without colon are dropped",
			"color red; font-style: italic",
			[]Declaration{{"font-style", "italic"}},
		},
		{
			"empty", "", nil,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := p.ParseDeclarations(tc.style)
			if len(got) != len(tc.want) {
				t.Fatalf("ParseDeclarations(%q) = %v, want %v", tc.style, got, tc.want)
			}
			for i := range got {
				if got[i].Property != tc.want[i].Property || got[i].Value != tc.want[i].Value {
					t.Errorf("declaration %d = %+v, want %+v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestParseDeclarationsIdempotent(t *testing.T) {
	p := NewParser(zaptest.NewLogger(t))
	const style = "color: red; font-size: 14pt; text-decoration: underline"

	first := p.ParseDeclarations(style)
	second := p.ParseDeclarations(style)
	if len(first) != len(second) {
		t.Fatalf("repeated parse differs: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("declaration %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestLookup(t *testing.T) {
	p := NewParser(nil)
	decls := p.ParseDeclarations("color: red; font-size: 14pt; color: blue")

	if v, ok := Lookup(decls, "color"); !ok || v != "blue" {
		t.Errorf("Lookup(color) = %q, %v; want blue (last declaration wins)", v, ok)
	}
	if v, ok := Lookup(decls, "font-size"); !ok || v != "14pt" {
		t.Errorf("Lookup(font-size) = %q, %v", v, ok)
	}
	if _, ok := Lookup(decls, "margin-top"); ok {
		t.Error("Lookup(margin-top) found a value in a style that has none")
	}
}
