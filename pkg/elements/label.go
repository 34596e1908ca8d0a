package elements

import (
	"github.com/go-drift/vitro/pkg/core"
	"github.com/go-drift/vitro/pkg/graphics"
	"github.com/go-drift/vitro/pkg/native"
)

// Label renders the text attribute with the font and color from its style.
type Label struct {
	core.Component
	widget native.TextWidget
	font   graphics.Font
}

func NewLabel(ctx *core.Context) *Label {
	l := &Label{}
	l.initLabel(l, LabelTag, ctx)
	return l
}

func (l *Label) initLabel(self core.ComponentElement, tag string, ctx *core.Context) {
	l.widget = ctx.Toolkit().NewLabel(tag)
	l.font = l.widget.Font()
	l.InitComponent(self, tag, ctx)
	l.RegisterFontStyleProperties()
	l.RegisterStyleProperty(StyleColor)
	l.RegisterStyleProperty(StyleBackgroundColor)
}

func (l *Label) Widget() native.Widget {
	return l.widget
}

// Text returns the text currently shown.
func (l *Label) Text() string {
	return l.widget.Text()
}

func (l *Label) Update() {
	l.Component.Update()

	if changed, v := l.AttributeChanged(AttrText); changed {
		l.widget.SetText(v.String())
	}
	if l.PopulateFont(&l.font) {
		l.widget.SetFont(l.font)
	}
	l.SetColorFromStyleProperty(l.widget, native.ColorText, StyleColor)
	l.SetColorFromStyleProperty(l.widget, native.ColorBackground, StyleBackgroundColor)
}
