package graphics

import "math"

// Offset is a position or displacement in pixels.
type Offset struct {
	X float64
	Y float64
}

// Size is a pixel extent.
type Size struct {
	Width  float64
	Height float64
}

// Rect is an axis-aligned rectangle stored by its edges. Widget bounds,
// layout boxes and script geometry all use it.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH builds the rectangle with origin (left, top) and the given
// extent.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{Left: left, Top: top, Right: left + width, Bottom: top + height}
}

func (r Rect) Width() float64 {
	return r.Right - r.Left
}

func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// TopLeft is the origin.
func (r Rect) TopLeft() Offset {
	return Offset{X: r.Left, Y: r.Top}
}

// IsEmpty reports whether r covers no pixels.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Translate moves r by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{r.Left + dx, r.Top + dy, r.Right + dx, r.Bottom + dy}
}

// WithOrigin returns a rect of the same size positioned at o.
func (r Rect) WithOrigin(o Offset) Rect {
	return RectFromLTWH(o.X, o.Y, r.Width(), r.Height())
}

// Round snaps origin and size to the nearest whole pixel.
func (r Rect) Round() Rect {
	return RectFromLTWH(math.Round(r.Left), math.Round(r.Top), math.Round(r.Width()), math.Round(r.Height()))
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Offset) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// Map returns the rectangle as the x, y, width, height map exposed to scripts.
func (r Rect) Map() map[string]float64 {
	return map[string]float64{
		"x":      r.Left,
		"y":      r.Top,
		"width":  r.Width(),
		"height": r.Height(),
	}
}
