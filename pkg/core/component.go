package core

import (
	"strings"

	"github.com/go-drift/vitro/pkg/errors"
	"github.com/go-drift/vitro/pkg/graphics"
	"github.com/go-drift/vitro/pkg/native"
)

// Style properties applied by every component.
const (
	StyleAlpha         = "alpha"
	StyleClickThrough  = "click-through"
	StyleCursor        = "cursor"
	StyleShadowColor   = "shadow-color"
	StyleShadowRadius  = "shadow-radius"
	StyleShadowOffsetX = "shadow-offset-x"
	StyleShadowOffsetY = "shadow-offset-y"
)

// Style properties read by PopulateFont.
const (
	StyleFontFamily  = "font-family"
	StyleFontStyle   = "font-style"
	StyleFontSize    = "font-size"
	StyleFontKerning = "font-kerning"
)

// Script properties exposed by components.
const (
	PropViewBounds   = "viewBounds"
	PropScreenBounds = "screenBounds"
)

// ComponentElement is an element that owns exactly one native widget.
type ComponentElement interface {
	Element
	// Widget returns the widget owned by the element.
	Widget() native.Widget
	// ContainerWidget returns the widget hosting the widgets of child
	// elements. It is Widget unless the widget hosts children in a
	// sub-area, like a scroll pane's content.
	ContainerWidget() native.Widget
}

// MouseHandler receives the mouse input forwarded from the native widget.
// Component implements it by running the matching attribute scripts;
// elements override single methods to add behavior.
type MouseHandler interface {
	HandleMouseMove(e native.MouseEvent)
	HandleMouseEnter(e native.MouseEvent)
	HandleMouseExit(e native.MouseEvent)
	HandleMouseDown(e native.MouseEvent)
	HandleMouseUp(e native.MouseEvent)
}

var cursorTypes = map[string]native.Cursor{
	"none":      native.CursorNone,
	"auto":      native.CursorNormal,
	"wait":      native.CursorWait,
	"pointer":   native.CursorPointingHand,
	"hand":      native.CursorPointingHand,
	"crosshair": native.CursorCrosshair,
	"copy":      native.CursorCopying,
	"drag":      native.CursorDraggingHand,
}

// ParseCursor maps a cursor style keyword to a cursor. Matching ignores
// case and surrounding space; unknown keywords map to the normal cursor.
func ParseCursor(s string) native.Cursor {
	if c, ok := cursorTypes[strings.ToLower(strings.TrimSpace(s))]; ok {
		return c
	}
	return native.CursorNormal
}

// Component is the base of elements backed by a native widget. Embedders
// implement Widget and call InitComponent from their constructor.
type Component struct {
	Node
	comp ComponentElement

	shadow     graphics.Shadow
	shadower   *native.DropShadower
	mouseProxy *mouseEventsProxy
}

// InitComponent prepares an embedded Component. self must be the outermost
// element value.
func (c *Component) InitComponent(self ComponentElement, tag string, ctx *Context) {
	c.InitNode(self, tag, ctx)
	c.comp = self
	c.shadow = graphics.DefaultShadow()

	c.RegisterStyleProperty(StyleAlpha)
	c.RegisterStyleProperty(StyleClickThrough)
	c.RegisterStyleProperty(StyleCursor)
	c.RegisterStyleProperty(StyleShadowColor)
	c.RegisterStyleProperty(StyleShadowRadius)
	c.RegisterStyleProperty(StyleShadowOffsetX)
	c.RegisterStyleProperty(StyleShadowOffsetY)
}

// ContainerWidget returns the element's own widget.
func (c *Component) ContainerWidget() native.Widget {
	return c.comp.Widget()
}

// ParentComponent returns the nearest ancestor that is a component, or nil.
func (c *Component) ParentComponent() ComponentElement {
	for p := c.parent; p != nil; p = p.Parent() {
		if ce, ok := p.(ComponentElement); ok {
			return ce
		}
	}
	return nil
}

// Initialize installs the mouse proxy and the bounds listener on the
// widget.
func (c *Component) Initialize() {
	c.Node.Initialize()
	if c.mouseProxy != nil {
		return
	}
	w := c.comp.Widget()
	if w == nil {
		return
	}
	c.mouseProxy = &mouseEventsProxy{element: c}
	w.AddMouseListener(c.mouseProxy, true)
	if l, ok := c.comp.(native.BoundsListener); ok {
		w.AddBoundsListener(l)
	}
}

// Update applies the changed attributes and style properties to the widget.
func (c *Component) Update() {
	c.Node.Update()

	if w := c.comp.Widget(); w != nil {
		if changed, v := c.AttributeChanged(AttrEnabled); changed && !v.IsVoid() {
			w.SetEnabled(v.Bool())
		}
		if changed, v := c.AttributeChanged(AttrVisible); changed && !v.IsVoid() {
			w.SetVisible(v.Bool())
		}
		if changed, v := c.StylePropertyChanged(StyleAlpha); changed {
			if v.IsVoid() {
				w.SetAlpha(1)
			} else {
				w.SetAlpha(v.Float())
			}
		}
		if changed, v := c.StylePropertyChanged(StyleClickThrough); changed {
			w.SetInterceptsMouseClicks(v.IsVoid() || v.Bool(), false)
		}
	}

	c.setMouseCursorFromStyleProperties()
	c.updateShadow()
}

func (c *Component) setMouseCursorFromStyleProperties() {
	w := c.comp.Widget()
	if w == nil {
		return
	}
	if changed, v := c.StylePropertyChanged(StyleCursor); changed && !v.IsVoid() {
		w.SetCursor(ParseCursor(v.String()))
	}
}

func (c *Component) updateShadow() {
	createShadow := false
	paramsChanged := false

	if changed, v := c.StylePropertyChanged(StyleShadowColor); changed {
		if v.IsVoid() {
			if c.shadower != nil {
				c.shadower.Close()
				c.shadower = nil
			}
		} else if col, err := graphics.ParseColor(v.String()); err != nil {
			errors.Report(&errors.VitroError{Op: "core.Component.Update", Kind: errors.KindStyle, Tag: c.tag, Err: err})
		} else {
			createShadow = true
			paramsChanged = c.shadow.Color != col
			c.shadow.Color = col
		}
	}

	if changed, v := c.StylePropertyChanged(StyleShadowRadius); changed {
		paramsChanged = true
		c.shadow.Radius = graphics.DefaultShadowRadius
		if !v.IsVoid() {
			c.shadow.Radius = v.Int()
		}
	}
	if changed, v := c.StylePropertyChanged(StyleShadowOffsetX); changed {
		paramsChanged = true
		c.shadow.OffsetX = v.Int()
	}
	if changed, v := c.StylePropertyChanged(StyleShadowOffsetY); changed {
		paramsChanged = true
		c.shadow.OffsetY = v.Int()
	}

	if c.shadower != nil {
		if paramsChanged {
			c.shadower.SetShadow(c.shadow)
		}
		return
	}
	if createShadow {
		c.shadower = native.NewDropShadower(c.shadow)
		c.shadower.SetOwner(c.comp.Widget())
	}
}

// DropShadower returns the shadow effect, or nil when no shadow color is
// set.
func (c *Component) DropShadower() *native.DropShadower {
	return c.shadower
}

// SetColorFromStyleProperty sets color slot id of w from the named style
// property. A void property removes the color.
func (c *Component) SetColorFromStyleProperty(w native.Widget, id native.ColorID, name string) {
	changed, v := c.StylePropertyChanged(name)
	switch {
	case changed && !v.IsVoid():
		col, err := graphics.ParseColor(v.String())
		if err != nil {
			errors.Report(&errors.VitroError{Op: "core.Component.SetColorFromStyleProperty", Kind: errors.KindStyle, Tag: c.tag, Err: err})
			return
		}
		w.SetColor(id, col)
	case v.IsVoid():
		w.RemoveColor(id)
	}
}

// PopulateFont applies the changed font style properties to f and reports
// whether f was modified. Elements rendering text register the font
// properties and call it from Update.
func (c *Component) PopulateFont(f *graphics.Font) bool {
	modified := false

	if changed, v := c.StylePropertyChanged(StyleFontFamily); changed && !v.IsVoid() {
		f.Family = v.String()
		modified = true
	}

	if changed, v := c.StylePropertyChanged(StyleFontStyle); changed {
		bold, italic, underline := false, false, false
		if !v.IsVoid() {
			for _, token := range strings.Fields(v.String()) {
				switch strings.ToLower(token) {
				case "bold":
					bold = true
				case "italic":
					italic = true
				case "underline":
					underline = true
				}
			}
		}
		f.SetBold(bold)
		f.SetItalic(italic)
		f.Underline = underline
		modified = true
	}

	if changed, v := c.StylePropertyChanged(StyleFontSize); changed && !v.IsVoid() {
		f.Height = v.Float()
		modified = true
	}

	if changed, v := c.StylePropertyChanged(StyleFontKerning); changed && !v.IsVoid() {
		f.ExtraKerning = v.Float()
		modified = true
	}

	return modified
}

// RegisterFontStyleProperties registers the properties read by PopulateFont.
func (c *Component) RegisterFontStyleProperties() {
	c.RegisterStyleProperty(StyleFontFamily)
	c.RegisterStyleProperty(StyleFontStyle)
	c.RegisterStyleProperty(StyleFontSize)
	c.RegisterStyleProperty(StyleFontKerning)
}

// UpdateComponentBoundsToLayout moves the widget to the computed layout
// rectangle, rounded to whole pixels. Offsets of intermediate elements
// without a widget are folded in, so the bounds are relative to the
// container the widget is hosted in.
func (c *Component) UpdateComponentBoundsToLayout() {
	w := c.comp.Widget()
	if w == nil {
		return
	}
	r := c.LayoutBounds()
	for p := c.parent; p != nil; p = p.Parent() {
		if _, ok := p.(ComponentElement); ok {
			break
		}
		o := p.LayoutBounds().TopLeft()
		r = r.Translate(o.X, o.Y)
	}
	w.SetBounds(r.Round())
}

// Reconcile keeps the widget hosted by the container of the nearest
// component ancestor. A detached element takes its widget out of any
// native parent. Without a component ancestor the widget stays unparented
// and the root is expected to place it.
func (c *Component) Reconcile() {
	c.Node.Reconcile()

	w := c.comp.Widget()
	if w == nil {
		return
	}

	if c.parent == nil {
		if owner := w.Parent(); owner != nil {
			owner.RemoveChild(w)
		}
		return
	}

	if w.Parent() == nil {
		if pc := c.ParentComponent(); pc != nil {
			if container := pc.ContainerWidget(); container != nil {
				container.AddAndMakeVisible(w)
				if v := c.Attribute(AttrVisible); !v.IsVoid() {
					w.SetVisible(v.Bool())
				}
			}
		}
	}
}

// Dispose removes the listeners, the shadow and the widget.
func (c *Component) Dispose() {
	if c.Disposed() {
		return
	}
	c.Node.Dispose()

	w := c.comp.Widget()
	if c.shadower != nil {
		c.shadower.Close()
		c.shadower = nil
	}
	if w == nil {
		return
	}
	if c.mouseProxy != nil {
		w.RemoveMouseListener(c.mouseProxy)
		c.mouseProxy = nil
	}
	if l, ok := c.comp.(native.BoundsListener); ok {
		w.RemoveBoundsListener(l)
	}
	w.Dispose()
}

// ViewBounds returns the element's layout rectangle in the coordinates of
// the widget of the tree's root. The result is empty when the root is not
// a component or a widget is missing.
func (c *Component) ViewBounds() graphics.Rect {
	root, ok := c.TopLevel().(ComponentElement)
	if !ok {
		return graphics.Rect{}
	}
	rootWidget := root.Widget()
	w := c.comp.Widget()
	if rootWidget == nil || w == nil {
		return graphics.Rect{}
	}
	return rootWidget.LocalAreaFrom(w, c.localLayoutArea())
}

// ScreenBounds returns the element's layout rectangle in screen
// coordinates.
func (c *Component) ScreenBounds() graphics.Rect {
	w := c.comp.Widget()
	if w == nil {
		return graphics.Rect{}
	}
	return w.LocalAreaToGlobal(c.localLayoutArea())
}

// localLayoutArea is the layout rectangle expressed in the widget's own
// coordinates.
func (c *Component) localLayoutArea() graphics.Rect {
	s := c.LayoutBounds().Size()
	return graphics.RectFromLTWH(0, 0, s.Width, s.Height)
}

func (c *Component) registerScriptProperties(s *ScriptValue) {
	s.DefineProperty(PropViewBounds, func() any { return c.ViewBounds().Map() })
	s.DefineProperty(PropScreenBounds, func() any { return c.ScreenBounds().Map() })
}

func (c *Component) HandleMouseMove(native.MouseEvent) {
	c.comp.EvaluateAttributeScript(AttrOnMouseMove)
}

func (c *Component) HandleMouseEnter(native.MouseEvent) {
	c.comp.EvaluateAttributeScript(AttrOnMouseEnter)
}

func (c *Component) HandleMouseExit(native.MouseEvent) {
	c.comp.EvaluateAttributeScript(AttrOnMouseExit)
}

func (c *Component) HandleMouseDown(native.MouseEvent) {
	c.comp.EvaluateAttributeScript(AttrOnMouseDown)
}

func (c *Component) HandleMouseUp(native.MouseEvent) {
	c.comp.EvaluateAttributeScript(AttrOnMouseUp)
}

// WidgetMovedOrResized runs the onmove and onresize scripts.
func (c *Component) WidgetMovedOrResized(_ native.Widget, moved, resized bool) {
	if moved {
		c.comp.EvaluateAttributeScript(AttrOnMove)
	}
	if resized {
		c.comp.EvaluateAttributeScript(AttrOnResize)
	}
}

func (c *Component) mouseHandler() MouseHandler {
	if h, ok := c.comp.(MouseHandler); ok {
		return h
	}
	return c
}

// mouseEventsProxy forwards native mouse callbacks to the element and
// keeps the hover and active attributes in sync.
type mouseEventsProxy struct {
	element *Component
}

func (p *mouseEventsProxy) MouseMove(e native.MouseEvent) {
	p.element.mouseHandler().HandleMouseMove(e)
}

func (p *mouseEventsProxy) MouseEnter(e native.MouseEvent) {
	p.element.comp.SetAttribute(AttrHover, true)
	p.element.mouseHandler().HandleMouseEnter(e)
}

func (p *mouseEventsProxy) MouseExit(e native.MouseEvent) {
	p.element.comp.SetAttribute(AttrHover, false)
	p.element.mouseHandler().HandleMouseExit(e)
}

func (p *mouseEventsProxy) MouseDown(e native.MouseEvent) {
	p.element.comp.SetAttribute(AttrActive, true)
	p.element.mouseHandler().HandleMouseDown(e)
}

func (p *mouseEventsProxy) MouseUp(e native.MouseEvent) {
	p.element.comp.SetAttribute(AttrActive, false)
	p.element.mouseHandler().HandleMouseUp(e)
}
