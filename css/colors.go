package css

import (
	"strconv"
	"strings"

	"hdc/content"
)

// namedColors holds the CSS named colors (case-insensitive lookup).
var namedColors = map[string]content.RGB{
	"aliceblue":            {R: 0xF0, G: 0xF8, B: 0xFF},
	"antiquewhite":         {R: 0xFA, G: 0xEB, B: 0xD7},
	"aqua":                 {R: 0x00, G: 0xFF, B: 0xFF},
	"aquamarine":           {R: 0x7F, G: 0xFF, B: 0xD4},
	"azure":                {R: 0xF0, G: 0xFF, B: 0xFF},
	"beige":                {R: 0xF5, G: 0xF5, B: 0xDC},
	"bisque":               {R: 0xFF, G: 0xE4, B: 0xC4},
	"black":                {R: 0x00, G: 0x00, B: 0x00},
	"blanchedalmond":       {R: 0xFF, G: 0xEB, B: 0xCD},
	"blue":                 {R: 0x00, G: 0x00, B: 0xFF},
	"blueviolet":           {R: 0x8A, G: 0x2B, B: 0xE2},
	"brown":                {R: 0xA5, G: 0x2A, B: 0x2A},
	"burlywood":            {R: 0xDE, G: 0xB8, B: 0x87},
	"cadetblue":            {R: 0x5F, G: 0x9E, B: 0xA0},
	"chartreuse":           {R: 0x7F, G: 0xFF, B: 0x00},
	"chocolate":            {R: 0xD2, G: 0x69, B: 0x1E},
	"coral":                {R: 0xFF, G: 0x7F, B: 0x50},
	"cornflowerblue":       {R: 0x64, G: 0x95, B: 0xED},
	"cornsilk":             {R: 0xFF, G: 0xF8, B: 0xDC},
	"crimson":              {R: 0xDC, G: 0x14, B: 0x3C},
	"cyan":                 {R: 0x00, G: 0xFF, B: 0xFF},
	"darkblue":             {R: 0x00, G: 0x00, B: 0x8B},
	"darkcyan":             {R: 0x00, G: 0x8B, B: 0x8B},
	"darkgoldenrod":        {R: 0xB8, G: 0x86, B: 0x0B},
	"darkgray":             {R: 0xA9, G: 0xA9, B: 0xA9},
	"darkgreen":            {R: 0x00, G: 0x64, B: 0x00},
	"darkgrey":             {R: 0xA9, G: 0xA9, B: 0xA9},
	"darkkhaki":            {R: 0xBD, G: 0xB7, B: 0x6B},
	"darkmagenta":          {R: 0x8B, G: 0x00, B: 0x8B},
	"darkolivegreen":       {R: 0x55, G: 0x6B, B: 0x2F},
	"darkorange":           {R: 0xFF, G: 0x8C, B: 0x00},
	"darkorchid":           {R: 0x99, G: 0x32, B: 0xCC},
	"darkred":              {R: 0x8B, G: 0x00, B: 0x00},
	"darksalmon":           {R: 0xE9, G: 0x96, B: 0x7A},
	"darkseagreen":         {R: 0x8F, G: 0xBC, B: 0x8F},
	"darkslateblue":        {R: 0x48, G: 0x3D, B: 0x8B},
	"darkslategray":        {R: 0x2F, G: 0x4F, B: 0x4F},
	"darkslategrey":        {R: 0x2F, G: 0x4F, B: 0x4F},
	"darkturquoise":        {R: 0x00, G: 0xCE, B: 0xD1},
	"darkviolet":           {R: 0x94, G: 0x00, B: 0xD3},
	"deeppink":             {R: 0xFF, G: 0x14, B: 0x93},
	"deepskyblue":          {R: 0x00, G: 0xBF, B: 0xFF},
	"dimgray":              {R: 0x69, G: 0x69, B: 0x69},
	"dimgrey":              {R: 0x69, G: 0x69, B: 0x69},
	"dodgerblue":           {R: 0x1E, G: 0x90, B: 0xFF},
	"firebrick":            {R: 0xB2, G: 0x22, B: 0x22},
	"floralwhite":          {R: 0xFF, G: 0xFA, B: 0xF0},
	"forestgreen":          {R: 0x22, G: 0x8B, B: 0x22},
	"fuchsia":              {R: 0xFF, G: 0x00, B: 0xFF},
	"gainsboro":            {R: 0xDC, G: 0xDC, B: 0xDC},
	"ghostwhite":           {R: 0xF8, G: 0xF8, B: 0xFF},
	"gold":                 {R: 0xFF, G: 0xD7, B: 0x00},
	"goldenrod":            {R: 0xDA, G: 0xA5, B: 0x20},
	"gray":                 {R: 0x80, G: 0x80, B: 0x80},
	"green":                {R: 0x00, G: 0x80, B: 0x00},
	"greenyellow":          {R: 0xAD, G: 0xFF, B: 0x2F},
	"grey":                 {R: 0x80, G: 0x80, B: 0x80},
	"honeydew":             {R: 0xF0, G: 0xFF, B: 0xF0},
	"hotpink":              {R: 0xFF, G: 0x69, B: 0xB4},
	"indianred":            {R: 0xCD, G: 0x5C, B: 0x5C},
	"indigo":               {R: 0x4B, G: 0x00, B: 0x82},
	"ivory":                {R: 0xFF, G: 0xFF, B: 0xF0},
	"khaki":                {R: 0xF0, G: 0xE6, B: 0x8C},
	"lavender":             {R: 0xE6, G: 0xE6, B: 0xFA},
	"lavenderblush":        {R: 0xFF, G: 0xF0, B: 0xF5},
	"lawngreen":            {R: 0x7C, G: 0xFC, B: 0x00},
	"lemonchiffon":         {R: 0xFF, G: 0xFA, B: 0xCD},
	"lightblue":            {R: 0xAD, G: 0xD8, B: 0xE6},
	"lightcoral":           {R: 0xF0, G: 0x80, B: 0x80},
	"lightcyan":            {R: 0xE0, G: 0xFF, B: 0xFF},
	"lightgoldenrodyellow": {R: 0xFA, G: 0xFA, B: 0xD2},
	"lightgray":            {R: 0xD3, G: 0xD3, B: 0xD3},
	"lightgreen":           {R: 0x90, G: 0xEE, B: 0x90},
	"lightgrey":            {R: 0xD3, G: 0xD3, B: 0xD3},
	"lightpink":            {R: 0xFF, G: 0xB6, B: 0xC1},
	"lightsalmon":          {R: 0xFF, G: 0xA0, B: 0x7A},
	"lightseagreen":        {R: 0x20, G: 0xB2, B: 0xAA},
	"lightskyblue":         {R: 0x87, G: 0xCE, B: 0xFA},
	"lightslategray":       {R: 0x77, G: 0x88, B: 0x99},
	"lightslategrey":       {R: 0x77, G: 0x88, B: 0x99},
	"lightsteelblue":       {R: 0xB0, G: 0xC4, B: 0xDE},
	"lightyellow":          {R: 0xFF, G: 0xFF, B: 0xE0},
	"lime":                 {R: 0x00, G: 0xFF, B: 0x00},
	"limegreen":            {R: 0x32, G: 0xCD, B: 0x32},
	"linen":                {R: 0xFA, G: 0xF0, B: 0xE6},
	"magenta":              {R: 0xFF, G: 0x00, B: 0xFF},
	"maroon":               {R: 0x80, G: 0x00, B: 0x00},
	"mediumaquamarine":     {R: 0x66, G: 0xCD, B: 0xAA},
	"mediumblue":           {R: 0x00, G: 0x00, B: 0xCD},
	"mediumorchid":         {R: 0xBA, G: 0x55, B: 0xD3},
	"mediumpurple":         {R: 0x93, G: 0x70, B: 0xDB},
	"mediumseagreen":       {R: 0x3C, G: 0xB3, B: 0x71},
	"mediumslateblue":      {R: 0x7B, G: 0x68, B: 0xEE},
	"mediumspringgreen":    {R: 0x00, G: 0xFA, B: 0x9A},
	"mediumturquoise":      {R: 0x48, G: 0xD1, B: 0xCC},
	"mediumvioletred":      {R: 0xC7, G: 0x15, B: 0x85},
	"midnightblue":         {R: 0x19, G: 0x19, B: 0x70},
	"mintcream":            {R: 0xF5, G: 0xFF, B: 0xFA},
	"mistyrose":            {R: 0xFF, G: 0xE4, B: 0xE1},
	"moccasin":             {R: 0xFF, G: 0xE4, B: 0xB5},
	"navajowhite":          {R: 0xFF, G: 0xDE, B: 0xAD},
	"navy":                 {R: 0x00, G: 0x00, B: 0x80},
	"oldlace":              {R: 0xFD, G: 0xF5, B: 0xE6},
	"olive":                {R: 0x80, G: 0x80, B: 0x00},
	"olivedrab":            {R: 0x6B, G: 0x8E, B: 0x23},
	"orange":               {R: 0xFF, G: 0xA5, B: 0x00},
	"orangered":            {R: 0xFF, G: 0x45, B: 0x00},
	"orchid":               {R: 0xDA, G: 0x70, B: 0xD6},
	"palegoldenrod":        {R: 0xEE, G: 0xE8, B: 0xAA},
	"palegreen":            {R: 0x98, G: 0xFB, B: 0x98},
	"paleturquoise":        {R: 0xAF, G: 0xEE, B: 0xEE},
	"palevioletred":        {R: 0xDB, G: 0x70, B: 0x93},
	"papayawhip":           {R: 0xFF, G: 0xEF, B: 0xD5},
	"peachpuff":            {R: 0xFF, G: 0xDA, B: 0xB9},
	"peru":                 {R: 0xCD, G: 0x85, B: 0x3F},
	"pink":                 {R: 0xFF, G: 0xC0, B: 0xCB},
	"plum":                 {R: 0xDD, G: 0xA0, B: 0xDD},
	"powderblue":           {R: 0xB0, G: 0xE0, B: 0xE6},
	"purple":               {R: 0x80, G: 0x00, B: 0x80},
	"rebeccapurple":        {R: 0x66, G: 0x33, B: 0x99},
	"red":                  {R: 0xFF, G: 0x00, B: 0x00},
	"rosybrown":            {R: 0xBC, G: 0x8F, B: 0x8F},
	"royalblue":            {R: 0x41, G: 0x69, B: 0xE1},
	"saddlebrown":          {R: 0x8B, G: 0x45, B: 0x13},
	"salmon":               {R: 0xFA, G: 0x80, B: 0x72},
	"sandybrown":           {R: 0xF4, G: 0xA4, B: 0x60},
	"seagreen":             {R: 0x2E, G: 0x8B, B: 0x57},
	"seashell":             {R: 0xFF, G: 0xF5, B: 0xEE},
	"sienna":               {R: 0xA0, G: 0x52, B: 0x2D},
	"silver":               {R: 0xC0, G: 0xC0, B: 0xC0},
	"skyblue":              {R: 0x87, G: 0xCE, B: 0xEB},
	"slateblue":            {R: 0x6A, G: 0x5A, B: 0xCD},
	"slategray":            {R: 0x70, G: 0x80, B: 0x90},
	"slategrey":            {R: 0x70, G: 0x80, B: 0x90},
	"snow":                 {R: 0xFF, G: 0xFA, B: 0xFA},
	"springgreen":          {R: 0x00, G: 0xFF, B: 0x7F},
	"steelblue":            {R: 0x46, G: 0x82, B: 0xB4},
	"tan":                  {R: 0xD2, G: 0xB4, B: 0x8C},
	"teal":                 {R: 0x00, G: 0x80, B: 0x80},
	"thistle":              {R: 0xD8, G: 0xBF, B: 0xD8},
	"tomato":               {R: 0xFF, G: 0x63, B: 0x47},
	"turquoise":            {R: 0x40, G: 0xE0, B: 0xD0},
	"violet":               {R: 0xEE, G: 0x82, B: 0xEE},
	"wheat":                {R: 0xF5, G: 0xDE, B: 0xB3},
	"white":                {R: 0xFF, G: 0xFF, B: 0xFF},
	"whitesmoke":           {R: 0xF5, G: 0xF5, B: 0xF5},
	"yellow":               {R: 0xFF, G: 0xFF, B: 0x00},
	"yellowgreen":          {R: 0x9A, G: 0xCD, B: 0x32},
}

// ParseColor parses a color token: a named color, #rgb/#rrggbb hex, or
// rgb(r,g,b)/rgba(r,g,b,a) with the alpha channel ignored. Malformed or
// out-of-range input yields ok=false.
func ParseColor(token string) (content.RGB, bool) {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return content.RGB{}, false
	}

	if c, ok := namedColors[token]; ok {
		return c, true
	}

	if strings.HasPrefix(token, "#") {
		return parseHexColor(token[1:])
	}

	if strings.HasPrefix(token, "rgb(") || strings.HasPrefix(token, "rgba(") {
		return parseFunctionalColor(token)
	}

	return content.RGB{}, false
}

func parseHexColor(hex string) (content.RGB, bool) {
	// #rgb expands by doubling each nibble
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return content.RGB{}, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return content.RGB{}, false
	}
	return content.RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, true
}

func parseFunctionalColor(token string) (content.RGB, bool) {
	open := strings.IndexByte(token, '(')
	if open < 0 || !strings.HasSuffix(token, ")") {
		return content.RGB{}, false
	}
	parts := strings.Split(token[open+1:len(token)-1], ",")

	wantAlpha := strings.HasPrefix(token, "rgba(")
	if (wantAlpha && len(parts) != 4) || (!wantAlpha && len(parts) != 3) {
		return content.RGB{}, false
	}

	var ch [3]uint8
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 || n > 255 {
			return content.RGB{}, false
		}
		ch[i] = uint8(n)
	}
	// alpha is parsed for validity only
	if wantAlpha {
		if _, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64); err != nil {
			return content.RGB{}, false
		}
	}
	return content.RGB{R: ch[0], G: ch[1], B: ch[2]}, true
}

// highlightPalette is the fixed set of marker colors word processors offer.
var highlightPalette = []struct {
	value content.Highlight
	color content.RGB
}{
	{content.HighlightYellow, content.RGB{R: 0xFF, G: 0xFF, B: 0x00}},
	{content.HighlightRed, content.RGB{R: 0xFF, G: 0x00, B: 0x00}},
	{content.HighlightBrightGreen, content.RGB{R: 0x00, G: 0xFF, B: 0x00}},
	{content.HighlightBlue, content.RGB{R: 0x00, G: 0x00, B: 0xFF}},
	{content.HighlightPink, content.RGB{R: 0xFF, G: 0xC0, B: 0xCB}},
	{content.HighlightTurquoise, content.RGB{R: 0x40, G: 0xE0, B: 0xD0}},
	{content.HighlightOrange, content.RGB{R: 0xFF, G: 0xA5, B: 0x00}},
}

// MapColorToHighlight picks the palette marker closest to c by Euclidean
// RGB distance. Yellow wins ties, including the exact-yellow input.
func MapColorToHighlight(c content.RGB) content.Highlight {
	best := content.HighlightYellow
	bestDist := -1
	for _, entry := range highlightPalette {
		d := sqDist(c, entry.color)
		if bestDist < 0 || d < bestDist {
			best, bestDist = entry.value, d
		}
	}
	return best
}

func sqDist(a, b content.RGB) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}
