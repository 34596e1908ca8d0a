package elements

import (
	"github.com/go-drift/vitro/pkg/core"
	"github.com/go-drift/vitro/pkg/native"
)

// Panel is a plain component that groups other elements and paints a
// background.
type Panel struct {
	core.Component
	widget native.Widget
}

func NewPanel(ctx *core.Context) *Panel {
	p := &Panel{widget: ctx.Toolkit().NewComponent(PanelTag)}
	p.InitComponent(p, PanelTag, ctx)
	p.RegisterStyleProperty(StyleBackgroundColor)
	p.RegisterStyleProperty(StyleOutlineColor)
	return p
}

func (p *Panel) Widget() native.Widget {
	return p.widget
}

func (p *Panel) Update() {
	p.Component.Update()
	p.SetColorFromStyleProperty(p.widget, native.ColorBackground, StyleBackgroundColor)
	p.SetColorFromStyleProperty(p.widget, native.ColorOutline, StyleOutlineColor)
}
