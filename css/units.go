package css

import (
	"strconv"
	"strings"

	"hdc/content"
)

// BaseFontSize is the default document font size in points. Relative units
// (em, legacy +N/-N steps) resolve against it when no size is set yet.
const BaseFontSize = 12.0

// pxPerPoint is the conversion ratio used for px sizes (points = px / 1.33).
const pxPerPoint = 1.33

// legacySizeTable maps the legacy size="1".."7" attribute values to points.
var legacySizeTable = map[int]float64{
	1: 8, 2: 10, 3: 12, 4: 14, 5: 18, 6: 24, 7: 36,
}

// ParseFontSize parses a font size token into points.
//
// Accepted forms: "<N>pt", "<N>px" (divided by 1.33), "<N>em" (multiplied by
// the 12pt base), bare "1".."7" from the legacy size attribute, and relative
// "+N"/"-N" steps computed as current*(1+0.2*N). current is the size already
// resolved at this point of the cascade; pass 0 when none is set, the 12pt
// base is used instead.
func ParseFontSize(token string, current float64) (float64, bool) {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return 0, false
	}
	if current <= 0 {
		current = BaseFontSize
	}

	switch {
	case strings.HasSuffix(token, "pt"):
		if v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(token, "pt")), 64); err == nil && v > 0 {
			return v, true
		}
		return 0, false

	case strings.HasSuffix(token, "px"):
		if v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(token, "px")), 64); err == nil && v > 0 {
			return v / pxPerPoint, true
		}
		return 0, false

	case strings.HasSuffix(token, "em"):
		if v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(token, "em")), 64); err == nil && v > 0 {
			return BaseFontSize * v, true
		}
		return 0, false

	case token[0] == '+' || token[0] == '-':
		n, err := strconv.Atoi(token[1:])
		if err != nil {
			return 0, false
		}
		if token[0] == '-' {
			n = -n
		}
		size := current * (1 + 0.2*float64(n))
		if size <= 0 {
			return 0, false
		}
		return size, true

	default:
		if n, err := strconv.Atoi(token); err == nil {
			if pt, ok := legacySizeTable[n]; ok {
				return pt, true
			}
		}
		return 0, false
	}
}

// ParsePoints parses a simple "<N>pt" length (margins, indents).
func ParsePoints(token string) (float64, bool) {
	token = strings.ToLower(strings.TrimSpace(token))
	if !strings.HasSuffix(token, "pt") {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(token, "pt")), 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// ParseLineHeight accepts only a bare numeric multiplier.
func ParseLineHeight(token string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(token), 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// ParseAlignment maps an alignment keyword to the model value. Unknown or
// empty input is left.
func ParseAlignment(token string) content.Alignment {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "center":
		return content.AlignCenter
	case "right":
		return content.AlignRight
	case "justify":
		return content.AlignJustify
	default:
		return content.AlignLeft
	}
}

// FirstFontFamily extracts the first family from a font-family list,
// stripping quotes and whitespace.
func FirstFontFamily(token string) (string, bool) {
	first, _, _ := strings.Cut(token, ",")
	first = strings.TrimSpace(first)
	first = strings.Trim(first, `"'`)
	first = strings.TrimSpace(first)
	if first == "" {
		return "", false
	}
	return first, true
}
