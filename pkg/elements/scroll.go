package elements

import (
	"github.com/go-drift/vitro/pkg/core"
	"github.com/go-drift/vitro/pkg/graphics"
	"github.com/go-drift/vitro/pkg/native"
)

// ScrollView hosts its children in a scrollable content area. The scroll
// position follows the scroll-x and scroll-y attributes.
type ScrollView struct {
	core.Component
	pane native.Viewport
}

func NewScrollView(ctx *core.Context) *ScrollView {
	s := &ScrollView{pane: ctx.Toolkit().NewScrollPane(ScrollViewTag)}
	s.InitComponent(s, ScrollViewTag, ctx)
	s.RegisterStyleProperty(StyleBackgroundColor)
	return s
}

func (s *ScrollView) Widget() native.Widget {
	return s.pane
}

// ContainerWidget returns the content widget of the scroll pane.
func (s *ScrollView) ContainerWidget() native.Widget {
	return s.pane.Content()
}

func (s *ScrollView) Update() {
	s.Component.Update()
	s.SetColorFromStyleProperty(s.pane, native.ColorBackground, StyleBackgroundColor)

	changedX, x := s.AttributeChanged(AttrScrollX)
	changedY, y := s.AttributeChanged(AttrScrollY)
	if changedX || changedY {
		s.pane.SetScrollOffset(graphics.Offset{X: x.Float(), Y: y.Float()})
	}
}

// UpdateComponentBoundsToLayout also grows the content area to enclose the
// layout of every child.
func (s *ScrollView) UpdateComponentBoundsToLayout() {
	s.Component.UpdateComponentBoundsToLayout()

	size := s.LayoutBounds().Size()
	w, h := size.Width, size.Height
	for _, child := range s.Children() {
		r := child.LayoutBounds()
		w = max(w, r.Right)
		h = max(h, r.Bottom)
	}
	s.pane.Content().SetBounds(graphics.RectFromLTWH(0, 0, w, h).Round())
}
