package css

import (
	"testing"

	"hdc/content"
)

func TestParseColorEquivalence(t *testing.T) {
	forms := []string{"#fff", "#ffffff", "rgb(255,255,255)", "white", "WHITE"}

	want, ok := ParseColor(forms[0])
	if !ok {
		t.Fatalf("ParseColor(%q) failed", forms[0])
	}
	for _, form := range forms[1:] {
		got, ok := ParseColor(form)
		if !ok {
			t.Fatalf("ParseColor(%q) failed", form)
		}
		if got != want {
			t.Errorf("ParseColor(%q) = %v, want %v", form, got, want)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		token string
		want  content.RGB
		ok    bool
	}{
		{"red", content.RGB{R: 255}, true},
		{"rebeccapurple", content.RGB{R: 0x66, G: 0x33, B: 0x99}, true},
		{"#1a2b3c", content.RGB{R: 0x1a, G: 0x2b, B: 0x3c}, true},
		{"#abc", content.RGB{R: 0xaa, G: 0xbb, B: 0xcc}, true},
		{"rgb(12, 34, 56)", content.RGB{R: 12, G: 34, B: 56}, true},
		{"rgba(255, 0, 0, 0.5)", content.RGB{R: 255}, true},
		{"rgb(300, 0, 0)", content.RGB{}, false},
		{"rgb(-1, 0, 0)", content.RGB{}, false},
		{"rgb(1, 2)", content.RGB{}, false},
		{"#ggg", content.RGB{}, false},
		{"#12345", content.RGB{}, false},
		{"chucknorris", content.RGB{}, false},
		{"", content.RGB{}, false},
	}
	for _, tc := range tests {
		got, ok := ParseColor(tc.token)
		if ok != tc.ok {
			t.Errorf("ParseColor(%q) ok = %v, want %v", tc.token, ok, tc.ok)
			continue
		}
		if ok && got != tc.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tc.token, got, tc.want)
		}
	}
}

func TestMapColorToHighlight(t *testing.T) {
	tests := []struct {
		name string
		c    content.RGB
		want content.Highlight
	}{
		{"exact yellow", content.RGB{R: 255, G: 255}, content.HighlightYellow},
		{"near yellow", content.RGB{R: 250, G: 240, B: 10}, content.HighlightYellow},
		{"dark red", content.RGB{R: 200}, content.HighlightRed},
		{"green", content.RGB{G: 250, B: 5}, content.HighlightBrightGreen},
		{"navy", content.RGB{B: 180}, content.HighlightBlue},
		{"orange", content.RGB{R: 255, G: 160}, content.HighlightOrange},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := MapColorToHighlight(tc.c); got != tc.want {
				t.Errorf("MapColorToHighlight(%v) = %v, want %v", tc.c, got, tc.want)
			}
		})
	}
}

func TestRGBHex(t *testing.T) {
	c := content.RGB{R: 0x0a, G: 0xff, B: 0x01}
	if got := c.Hex(); got != "0AFF01" {
		t.Errorf("Hex() = %q, want 0AFF01", got)
	}
}
