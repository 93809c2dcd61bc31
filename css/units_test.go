package css

import (
	"math"
	"testing"

	"hdc/content"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestParseFontSize(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		current float64
		want    float64
		ok      bool
	}{
		{"points", "14pt", 0, 14, true},
		{"points with spaces", " 14pt ", 0, 14, true},
		{"pixels", "16px", 0, 16 / 1.33, true},
		{"em against base", "1.5em", 0, 18, true},
		{"em ignores current", "2em", 20, 24, true},
		{"legacy 1", "1", 0, 8, true},
		{"legacy 4", "4", 0, 14, true},
		{"legacy 7", "7", 0, 36, true},
		{"legacy out of range", "8", 0, 0, false},
		{"relative up", "+2", 12, 16.8, true},
		{"relative down", "-1", 12, 9.6, true},
		{"relative from base", "+1", 0, 14.4, true},
		{"relative junk", "+x", 12, 0, false},
		{"negative points", "-5pt", 0, 0, false},
		{"empty", "", 12, 0, false},
		{"garbage", "biggish", 12, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseFontSize(tc.token, tc.current)
			if ok != tc.ok {
				t.Fatalf("ParseFontSize(%q, %v) ok = %v, want %v", tc.token, tc.current, ok, tc.ok)
			}
			if ok && !almostEqual(got, tc.want) {
				t.Errorf("ParseFontSize(%q, %v) = %v, want %v", tc.token, tc.current, got, tc.want)
			}
		})
	}
}

func TestParseFontSizeIdempotent(t *testing.T) {
	// absolute sizes resolve to the same value regardless of what was
	// already resolved
	first, ok := ParseFontSize("14pt", 0)
	if !ok {
		t.Fatal("ParseFontSize failed")
	}
	second, ok := ParseFontSize("14pt", first)
	if !ok || !almostEqual(first, second) {
		t.Errorf("second resolution = %v, want %v", second, first)
	}
}

func TestParsePoints(t *testing.T) {
	tests := []struct {
		token string
		want  float64
		ok    bool
	}{
		{"6pt", 6, true},
		{"0pt", 0, true},
		{"12.5pt", 12.5, true},
		{"-3pt", 0, false},
		{"10px", 0, false},
		{"pt", 0, false},
	}
	for _, tc := range tests {
		got, ok := ParsePoints(tc.token)
		if ok != tc.ok || (ok && !almostEqual(got, tc.want)) {
			t.Errorf("ParsePoints(%q) = %v, %v; want %v, %v", tc.token, got, ok, tc.want, tc.ok)
		}
	}
}

func TestParseLineHeight(t *testing.T) {
	if v, ok := ParseLineHeight("1.5"); !ok || !almostEqual(v, 1.5) {
		t.Errorf("ParseLineHeight(1.5) = %v, %v", v, ok)
	}
	for _, bad := range []string{"0", "-1", "150%", "normal", ""} {
		if _, ok := ParseLineHeight(bad); ok {
			t.Errorf("ParseLineHeight(%q) accepted", bad)
		}
	}
}

func TestParseAlignment(t *testing.T) {
	tests := []struct {
		token string
		want  content.Alignment
	}{
		{"center", content.AlignCenter},
		{"RIGHT", content.AlignRight},
		{"justify", content.AlignJustify},
		{"left", content.AlignLeft},
		{"middle", content.AlignLeft},
		{"", content.AlignLeft},
	}
	for _, tc := range tests {
		if got := ParseAlignment(tc.token); got != tc.want {
			t.Errorf("ParseAlignment(%q) = %v, want %v", tc.token, got, tc.want)
		}
	}
}

func TestFirstFontFamily(t *testing.T) {
	tests := []struct {
		token string
		want  string
		ok    bool
	}{
		{"Arial, sans-serif", "Arial", true},
		{`"Times New Roman", serif`, "Times New Roman", true},
		{"'Courier New'", "Courier New", true},
		{"  Georgia  ", "Georgia", true},
		{"", "", false},
		{" , serif", "", false},
	}
	for _, tc := range tests {
		got, ok := FirstFontFamily(tc.token)
		if got != tc.want || ok != tc.ok {
			t.Errorf("FirstFontFamily(%q) = %q, %v; want %q, %v", tc.token, got, ok, tc.want, tc.ok)
		}
	}
}
