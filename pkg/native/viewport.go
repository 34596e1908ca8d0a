package native

import "github.com/go-drift/vitro/pkg/graphics"

// ScrollPane is a headless Viewport. Children are hosted by a separate
// content widget that scrolls inside the pane.
type ScrollPane struct {
	Component
	content *Component
	scroll  graphics.Offset
}

// NewScrollPane creates a detached headless viewport with an empty content
// widget.
func NewScrollPane(name string) *ScrollPane {
	s := &ScrollPane{}
	s.init(s, name)
	s.content = NewComponent(name + ".content")
	s.AddAndMakeVisible(s.content)
	return s
}

func (s *ScrollPane) Content() Widget {
	return s.content
}

func (s *ScrollPane) ScrollOffset() graphics.Offset {
	return s.scroll
}

func (s *ScrollPane) SetScrollOffset(offset graphics.Offset) {
	s.scroll = offset
	s.Repaint()
}

// SetBounds resizes the content widget along with the pane.
func (s *ScrollPane) SetBounds(bounds graphics.Rect) {
	s.Component.SetBounds(bounds)
	cb := s.content.Bounds()
	w := max(cb.Width(), bounds.Width())
	h := max(cb.Height(), bounds.Height())
	s.content.SetBounds(graphics.RectFromLTWH(0, 0, w, h))
}
