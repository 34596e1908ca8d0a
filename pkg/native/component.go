package native

import (
	"slices"

	"github.com/go-drift/vitro/pkg/graphics"
)

// MouseEventKind selects the listener callback used by Component.SimulateMouse.
type MouseEventKind int

const (
	MouseMove MouseEventKind = iota
	MouseEnter
	MouseExit
	MouseDown
	MouseUp
)

type mouseListenerEntry struct {
	listener MouseListener
	nested   bool
}

// Component is the headless Widget implementation. It records every state
// change so callers can inspect what a real toolkit would have been told.
type Component struct {
	self     Widget
	name     string
	parent   Widget
	children []Widget

	bounds      graphics.Rect
	enabled     bool
	visible     bool
	alpha       float64
	interceptsS bool
	interceptsC bool
	cursor      Cursor
	colors      map[ColorID]graphics.Color
	shadow      *graphics.Shadow

	mouseListeners  []mouseListenerEntry
	boundsListeners []BoundsListener

	repaints      int
	shadowChanges int
	disposed      bool
}

// NewComponent creates a detached, hidden headless widget.
func NewComponent(name string) *Component {
	c := &Component{}
	c.init(c, name)
	return c
}

func (c *Component) init(self Widget, name string) {
	c.self = self
	c.name = name
	c.enabled = true
	c.alpha = 1
	c.interceptsS = true
	c.interceptsC = true
}

func (c *Component) Name() string {
	return c.name
}

func (c *Component) Parent() Widget {
	return c.parent
}

// Children returns a copy of the child list.
func (c *Component) Children() []Widget {
	return slices.Clone(c.children)
}

func (c *Component) setParent(p Widget) {
	c.parent = p
}

func (c *Component) AddAndMakeVisible(child Widget) {
	if child == nil || child == c.self {
		return
	}
	if old := child.Parent(); old != nil {
		old.RemoveChild(child)
	}
	c.children = append(c.children, child)
	if setter, ok := child.(interface{ setParent(Widget) }); ok {
		setter.setParent(c.self)
	}
	child.SetVisible(true)
}

func (c *Component) RemoveChild(child Widget) {
	i := slices.Index(c.children, child)
	if i < 0 {
		return
	}
	c.children = slices.Delete(c.children, i, i+1)
	if setter, ok := child.(interface{ setParent(Widget) }); ok {
		setter.setParent(nil)
	}
}

func (c *Component) Bounds() graphics.Rect {
	return c.bounds
}

// SetBounds notifies bounds listeners when the origin or size changes.
func (c *Component) SetBounds(bounds graphics.Rect) {
	old := c.bounds
	c.bounds = bounds
	moved := old.Left != bounds.Left || old.Top != bounds.Top
	resized := old.Width() != bounds.Width() || old.Height() != bounds.Height()
	if !moved && !resized {
		return
	}
	for _, l := range slices.Clone(c.boundsListeners) {
		l.WidgetMovedOrResized(c.self, moved, resized)
	}
}

func (c *Component) Enabled() bool {
	return c.enabled
}

func (c *Component) SetEnabled(enabled bool) {
	c.enabled = enabled
}

func (c *Component) Visible() bool {
	return c.visible
}

func (c *Component) SetVisible(visible bool) {
	c.visible = visible
}

func (c *Component) Alpha() float64 {
	return c.alpha
}

func (c *Component) SetAlpha(alpha float64) {
	c.alpha = alpha
}

func (c *Component) InterceptsMouseClicks() (self, children bool) {
	return c.interceptsS, c.interceptsC
}

func (c *Component) SetInterceptsMouseClicks(self, children bool) {
	c.interceptsS = self
	c.interceptsC = children
}

func (c *Component) Cursor() Cursor {
	return c.cursor
}

func (c *Component) SetCursor(cursor Cursor) {
	c.cursor = cursor
}

func (c *Component) Color(id ColorID) (graphics.Color, bool) {
	col, ok := c.colors[id]
	return col, ok
}

func (c *Component) SetColor(id ColorID, color graphics.Color) {
	if c.colors == nil {
		c.colors = make(map[ColorID]graphics.Color)
	}
	c.colors[id] = color
}

func (c *Component) RemoveColor(id ColorID) {
	delete(c.colors, id)
}

func (c *Component) DropShadow() *graphics.Shadow {
	return c.shadow
}

func (c *Component) SetDropShadow(shadow *graphics.Shadow) {
	c.shadow = shadow
	c.shadowChanges++
}

// ShadowChanges counts SetDropShadow calls.
func (c *Component) ShadowChanges() int {
	return c.shadowChanges
}

func (c *Component) AddMouseListener(l MouseListener, nestedChildren bool) {
	for _, e := range c.mouseListeners {
		if e.listener == l {
			return
		}
	}
	c.mouseListeners = append(c.mouseListeners, mouseListenerEntry{listener: l, nested: nestedChildren})
}

func (c *Component) RemoveMouseListener(l MouseListener) {
	c.mouseListeners = slices.DeleteFunc(c.mouseListeners, func(e mouseListenerEntry) bool {
		return e.listener == l
	})
}

// MouseListenerCount returns the number of registered mouse listeners.
func (c *Component) MouseListenerCount() int {
	return len(c.mouseListeners)
}

func (c *Component) AddBoundsListener(l BoundsListener) {
	if slices.Contains(c.boundsListeners, l) {
		return
	}
	c.boundsListeners = append(c.boundsListeners, l)
}

func (c *Component) RemoveBoundsListener(l BoundsListener) {
	if i := slices.Index(c.boundsListeners, l); i >= 0 {
		c.boundsListeners = slices.Delete(c.boundsListeners, i, i+1)
	}
}

func (c *Component) LocalAreaToGlobal(area graphics.Rect) graphics.Rect {
	o := globalOrigin(c.self)
	return area.Translate(o.X, o.Y)
}

func (c *Component) LocalAreaFrom(source Widget, area graphics.Rect) graphics.Rect {
	if source == nil {
		return area
	}
	global := source.LocalAreaToGlobal(area)
	o := globalOrigin(c.self)
	return global.Translate(-o.X, -o.Y)
}

// globalOrigin sums the origins of w and its ancestors.
func globalOrigin(w Widget) graphics.Offset {
	var o graphics.Offset
	for cur := w; cur != nil; cur = cur.Parent() {
		b := cur.Bounds()
		o.X += b.Left
		o.Y += b.Top
		if vp, ok := cur.Parent().(Viewport); ok && vp.Content() == cur {
			s := vp.ScrollOffset()
			o.X -= s.X
			o.Y -= s.Y
		}
	}
	return o
}

func (c *Component) Repaint() {
	c.repaints++
}

// Repaints counts Repaint calls.
func (c *Component) Repaints() int {
	return c.repaints
}

// Dispose detaches the widget from its parent and drops all listeners.
func (c *Component) Dispose() {
	if c.parent != nil {
		c.parent.RemoveChild(c.self)
	}
	c.mouseListeners = nil
	c.boundsListeners = nil
	c.disposed = true
}

// Disposed reports whether Dispose has been called.
func (c *Component) Disposed() bool {
	return c.disposed
}

// SimulateMouse delivers a mouse event to the widget's listeners and to
// ancestor listeners registered for nested children, the way a toolkit
// delivers real input.
func (c *Component) SimulateMouse(kind MouseEventKind, pos graphics.Offset) {
	e := MouseEvent{Source: c.self, Position: pos}
	deliverMouse(c.mouseListeners, kind, e, false)
	for p := c.parent; p != nil; p = p.Parent() {
		if pc, ok := p.(interface{ base() *Component }); ok {
			deliverMouse(pc.base().mouseListeners, kind, e, true)
		}
	}
}

func (c *Component) base() *Component {
	return c
}

func deliverMouse(entries []mouseListenerEntry, kind MouseEventKind, e MouseEvent, nestedOnly bool) {
	for _, entry := range slices.Clone(entries) {
		if nestedOnly && !entry.nested {
			continue
		}
		l := entry.listener
		switch kind {
		case MouseMove:
			l.MouseMove(e)
		case MouseEnter:
			l.MouseEnter(e)
		case MouseExit:
			l.MouseExit(e)
		case MouseDown:
			l.MouseDown(e)
		case MouseUp:
			l.MouseUp(e)
		}
	}
}
