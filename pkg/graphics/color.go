package graphics

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA8 constructs a Color from red, green, blue, alpha bytes.
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// Alpha returns the alpha byte.
func (c Color) Alpha() uint8 {
	return uint8(c >> 24)
}

// String formats the color as #aarrggbb.
func (c Color) String() string {
	return fmt.Sprintf("#%08x", uint32(c))
}

// Common colors.
var (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
)

// ParseColor parses a style color value.
//
// Accepted forms are CSS color names, "transparent", "#rgb", "#rrggbb",
// "#rrggbbaa", "rgb(r, g, b)" and "rgba(r, g, b, a)" with a in [0, 1].
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("graphics: empty color")
	}
	if s == "transparent" {
		return ColorTransparent, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return RGBA8(c.R, c.G, c.B, c.A), nil
	}
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s)
	}
	if strings.HasPrefix(s, "rgb") {
		return parseFunctionalColor(s)
	}
	return 0, fmt.Errorf("graphics: unknown color %q", s)
}

func parseHexColor(s string) (Color, error) {
	alpha := uint8(0xFF)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return 0, fmt.Errorf("graphics: bad color %q: %w", s, err)
		}
		alpha = uint8(a)
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("graphics: bad color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGBA8(r, g, b, alpha), nil
}

func parseFunctionalColor(s string) (Color, error) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return 0, fmt.Errorf("graphics: bad color %q", s)
	}
	parts := strings.Split(s[open+1:len(s)-1], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return 0, fmt.Errorf("graphics: bad color %q", s)
	}
	var ch [3]float64
	for i := range ch {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil {
			return 0, fmt.Errorf("graphics: bad color %q: %w", s, err)
		}
		ch[i] = v / 255
	}
	alpha := 1.0
	if len(parts) == 4 {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return 0, fmt.Errorf("graphics: bad color %q: %w", s, err)
		}
		alpha = v
	}
	r, g, b := colorful.Color{R: ch[0], G: ch[1], B: ch[2]}.Clamped().RGB255()
	return RGBA8(r, g, b, uint8(clamp01(alpha)*255+0.5)), nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
