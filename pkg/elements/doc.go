// Package elements provides the stock component elements: Panel, Label,
// ScrollView and Button.
//
// RegisterAll makes their tags known to a factory:
//
//	ctx := core.NewContext(core.Options{Styles: sheet, Scripts: registry})
//	elements.RegisterAll(ctx.Factory())
//	view := core.NewView(ctx)
//	view.PopulateFromXMLResource("main.xml")
package elements

import "github.com/go-drift/vitro/pkg/core"

// Tags of the stock elements.
const (
	PanelTag      = "Panel"
	LabelTag      = "Label"
	ScrollViewTag = "ScrollView"
	ButtonTag     = "Button"
)

// Style properties read by the stock elements.
const (
	StyleBackgroundColor = "background-color"
	StyleColor           = "color"
	StyleOutlineColor    = "outline-color"
)

// Attributes read by the stock elements.
const (
	AttrText    = "text"
	AttrOnClick = "onclick"
	AttrScrollX = "scroll-x"
	AttrScrollY = "scroll-y"
)

// RegisterAll registers the stock elements with f.
func RegisterAll(f *core.ElementsFactory) {
	core.RegisterElement(f, PanelTag, NewPanel)
	core.RegisterElement(f, LabelTag, NewLabel)
	core.RegisterElement(f, ScrollViewTag, NewScrollView)
	core.RegisterElement(f, ButtonTag, NewButton)
}
