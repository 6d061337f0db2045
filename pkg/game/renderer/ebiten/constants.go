package ebiten

import (
	"image/color"
	"strconv"
	"strings"
)

// Color palette for the window
var (
	colorBackground      = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorMapBackground   = color.RGBA{15, 15, 26, 255}    // Darker for map area
	colorGridLine        = color.RGBA{40, 40, 60, 255}    // Faint cell borders
	colorPlayer          = color.RGBA{255, 220, 80, 255}  // Warm yellow
	colorRoomFallback    = color.RGBA{100, 100, 120, 255} // Rooms without a usable color field
	colorText            = color.RGBA{200, 210, 245, 255} // Soft off-white with blue tint
	colorSubtle          = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorItem            = color.RGBA{120, 255, 150, 255} // Bright green
	colorAction          = color.RGBA{180, 150, 250, 255} // Blue-purple
	colorMessage         = color.RGBA{255, 255, 255, 255} // White
	colorPanelBackground = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark
)

// namedColors maps the color names content files may use to RGB values.
var namedColors = map[string]color.RGBA{
	"black":   {20, 20, 20, 255},
	"white":   {235, 235, 235, 255},
	"gray":    {128, 128, 128, 255},
	"grey":    {128, 128, 128, 255},
	"red":     {220, 60, 60, 255},
	"green":   {60, 200, 90, 255},
	"blue":    {80, 120, 230, 255},
	"yellow":  {230, 210, 70, 255},
	"gold":    {240, 190, 50, 255},
	"orange":  {240, 150, 50, 255},
	"purple":  {170, 90, 220, 255},
	"magenta": {220, 80, 200, 255},
	"cyan":    {80, 210, 220, 255},
	"brown":   {150, 100, 60, 255},
	"pink":    {240, 150, 190, 255},
	"teal":    {60, 160, 160, 255},
}

// ParseColor turns a content file's color field into a drawable color.
// Accepts a known color name, "#RRGGBB" or "#RGB" hex, or "r,g,b" decimal
// with components clamped to [0,255]. Anything else falls back to the
// neutral room color.
func ParseColor(s string) color.RGBA {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return colorRoomFallback
	}

	if c, ok := namedColors[s]; ok {
		return c
	}

	if strings.HasPrefix(s, "#") {
		if c, ok := parseHexColor(s[1:]); ok {
			return c
		}
		return colorRoomFallback
	}

	if strings.Contains(s, ",") {
		if c, ok := parseDecimalColor(s); ok {
			return c
		}
	}

	return colorRoomFallback
}

func parseHexColor(hex string) (color.RGBA, bool) {
	switch len(hex) {
	case 6:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, false
		}
		return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}, true
	case 3:
		v, err := strconv.ParseUint(hex, 16, 16)
		if err != nil {
			return color.RGBA{}, false
		}
		r := uint8(v >> 8 & 0xf)
		g := uint8(v >> 4 & 0xf)
		b := uint8(v & 0xf)
		return color.RGBA{r*16 + r, g*16 + g, b*16 + b, 255}, true
	default:
		return color.RGBA{}, false
	}
}

func parseDecimalColor(s string) (color.RGBA, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return color.RGBA{}, false
	}

	var comps [3]uint8
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return color.RGBA{}, false
		}
		if n < 0 {
			n = 0
		}
		if n > 255 {
			n = 255
		}
		comps[i] = uint8(n)
	}
	return color.RGBA{comps[0], comps[1], comps[2], 255}, true
}
