package elements

import (
	"github.com/go-drift/vitro/pkg/core"
	"github.com/go-drift/vitro/pkg/graphics"
	"github.com/go-drift/vitro/pkg/native"
)

// Button is a label that runs its onclick script when the mouse is
// released over it.
type Button struct {
	Label
}

func NewButton(ctx *core.Context) *Button {
	b := &Button{}
	b.initLabel(b, ButtonTag, ctx)
	b.widget.SetInterceptsMouseClicks(true, false)
	return b
}

// HandleMouseUp runs onmouseup and, for a release inside the enabled
// button, onclick.
func (b *Button) HandleMouseUp(e native.MouseEvent) {
	b.Label.HandleMouseUp(e)

	if !b.widget.Enabled() || e.Source != native.Widget(b.widget) {
		return
	}
	s := b.widget.Bounds().Size()
	if graphics.RectFromLTWH(0, 0, s.Width, s.Height).Contains(e.Position) {
		b.EvaluateAttributeScript(AttrOnClick)
	}
}
