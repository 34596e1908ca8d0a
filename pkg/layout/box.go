package layout

import (
	"slices"

	"github.com/go-drift/vitro/pkg/graphics"
)

// Box is a node of the layout tree.
type Box struct {
	parent   *Box
	children []*Box
	style    Style
	rect     graphics.Rect
	dirty    bool
}

// NewBox creates a detached box that needs layout.
func NewBox() *Box {
	return &Box{dirty: true}
}

// Parent returns the parent box or nil.
func (b *Box) Parent() *Box {
	return b.parent
}

// Children returns a copy of the child list.
func (b *Box) Children() []*Box {
	return slices.Clone(b.children)
}

// Style returns the layout inputs.
func (b *Box) Style() Style {
	return b.style
}

// SetStyle replaces the layout inputs, marking the box dirty when they
// differ.
func (b *Box) SetStyle(s Style) {
	if b.style == s {
		return
	}
	b.style = s
	b.MarkNeedsLayout()
}

// Append adds child as the last child, detaching it from any old parent.
func (b *Box) Append(child *Box) {
	if child.parent != nil {
		child.parent.Remove(child)
	}
	child.parent = b
	b.children = append(b.children, child)
	b.MarkNeedsLayout()
}

// Remove detaches child; it is a no-op if child is not a child of b.
func (b *Box) Remove(child *Box) {
	i := slices.Index(b.children, child)
	if i < 0 {
		return
	}
	b.children = slices.Delete(b.children, i, i+1)
	child.parent = nil
	b.MarkNeedsLayout()
}

// MarkNeedsLayout flags the box and its ancestors as dirty.
func (b *Box) MarkNeedsLayout() {
	for cur := b; cur != nil; cur = cur.parent {
		cur.dirty = true
	}
}

// NeedsLayout reports whether the box or a descendant changed since the
// last Calculate.
func (b *Box) NeedsLayout() bool {
	return b.dirty
}

// Rect returns the computed rectangle relative to the parent box.
func (b *Box) Rect() graphics.Rect {
	return b.rect
}

// Calculate lays out the tree rooted at b into a width by height area.
func (b *Box) Calculate(width, height float64) {
	b.rect = graphics.RectFromLTWH(0, 0, width, height)
	b.layoutChildren()
}

func (b *Box) layoutChildren() {
	b.dirty = false
	pad := b.style.Padding
	cw := max(b.rect.Width()-2*pad, 0)
	ch := max(b.rect.Height()-2*pad, 0)

	var flow []*Box
	for _, c := range b.children {
		if c.style.Absolute() {
			x := c.style.Left.Resolve(cw)
			y := c.style.Top.Resolve(ch)
			w := sizeOr(c.style.Width, cw, cw-x)
			h := sizeOr(c.style.Height, ch, ch-y)
			c.rect = graphics.RectFromLTWH(pad+x, pad+y, w, h)
			c.layoutChildren()
			continue
		}
		flow = append(flow, c)
	}

	mainTotal, crossTotal := ch, cw
	if b.style.Direction == Row {
		mainTotal, crossTotal = cw, ch
	}

	fixed, autos := 0.0, 0
	for _, c := range flow {
		if m := c.mainDimension(b.style.Direction); m.IsAuto() {
			autos++
		} else {
			fixed += m.Resolve(mainTotal)
		}
	}
	share := 0.0
	if autos > 0 {
		share = max(mainTotal-fixed, 0) / float64(autos)
	}

	pos := pad
	for _, c := range flow {
		main := sizeOr(c.mainDimension(b.style.Direction), mainTotal, share)
		cross := sizeOr(c.crossDimension(b.style.Direction), crossTotal, crossTotal)
		if b.style.Direction == Row {
			c.rect = graphics.RectFromLTWH(pos, pad, main, cross)
		} else {
			c.rect = graphics.RectFromLTWH(pad, pos, cross, main)
		}
		pos += main
		c.layoutChildren()
	}
}

func (b *Box) mainDimension(d Direction) Dimension {
	if d == Row {
		return b.style.Width
	}
	return b.style.Height
}

func (b *Box) crossDimension(d Direction) Dimension {
	if d == Row {
		return b.style.Height
	}
	return b.style.Width
}

func sizeOr(d Dimension, reference, fallback float64) float64 {
	if d.IsAuto() {
		return max(fallback, 0)
	}
	return d.Resolve(reference)
}
