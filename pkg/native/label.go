package native

import "github.com/go-drift/vitro/pkg/graphics"

// Label is a headless TextWidget.
type Label struct {
	Component
	text string
	font graphics.Font
}

// NewLabel creates a detached headless text widget using the default font.
func NewLabel(name string) *Label {
	l := &Label{font: graphics.DefaultFont()}
	l.init(l, name)
	return l
}

func (l *Label) Text() string {
	return l.text
}

func (l *Label) SetText(text string) {
	if l.text == text {
		return
	}
	l.text = text
	l.Repaint()
}

func (l *Label) Font() graphics.Font {
	return l.font
}

func (l *Label) SetFont(font graphics.Font) {
	l.font = font
	l.Repaint()
}
