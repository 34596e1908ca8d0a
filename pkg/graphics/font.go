package graphics

import (
	"fmt"
	"strings"

	"golang.org/x/image/font"
)

// DefaultFontHeight is the height of a font nobody configured.
const DefaultFontHeight = 15

// Font describes how a widget renders text.
type Font struct {
	Family       string
	Height       float64
	Weight       font.Weight
	Style        font.Style
	Underline    bool
	ExtraKerning float64
}

// DefaultFont returns a regular font of DefaultFontHeight in the toolkit's
// default family.
func DefaultFont() Font {
	return Font{Height: DefaultFontHeight, Weight: font.WeightNormal, Style: font.StyleNormal}
}

// Bold reports whether the weight is bold or heavier.
func (f Font) Bold() bool {
	return f.Weight >= font.WeightBold
}

// Italic reports whether the style is slanted.
func (f Font) Italic() bool {
	return f.Style != font.StyleNormal
}

// SetBold switches between bold and normal weight.
func (f *Font) SetBold(bold bool) {
	if bold {
		f.Weight = font.WeightBold
	} else {
		f.Weight = font.WeightNormal
	}
}

// SetItalic switches between italic and normal style.
func (f *Font) SetItalic(italic bool) {
	if italic {
		f.Style = font.StyleItalic
	} else {
		f.Style = font.StyleNormal
	}
}

// String formats the font as "family height" followed by its flags.
func (f Font) String() string {
	var b strings.Builder
	family := f.Family
	if family == "" {
		family = "default"
	}
	fmt.Fprintf(&b, "%s %g", family, f.Height)
	if f.Bold() {
		b.WriteString(" bold")
	}
	if f.Italic() {
		b.WriteString(" italic")
	}
	if f.Underline {
		b.WriteString(" underline")
	}
	if f.ExtraKerning != 0 {
		fmt.Fprintf(&b, " kerning=%g", f.ExtraKerning)
	}
	return b.String()
}
