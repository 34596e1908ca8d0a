package testing

import (
	"fmt"
	"slices"

	"github.com/go-drift/vitro/pkg/graphics"
	"github.com/go-drift/vitro/pkg/native"
)

// mouseSimulator is implemented by the headless widgets.
type mouseSimulator interface {
	SimulateMouse(kind native.MouseEventKind, pos graphics.Offset)
}

// Tap simulates a click at the center of the widget of the first element
// matched by finder: the pointer enters, presses and releases. Call Pump
// afterwards to apply the resulting attribute changes.
func (t *Tester) Tap(finder Finder) error {
	w, err := t.findWidget("Tap", finder)
	if err != nil {
		return err
	}
	center := localCenter(w)
	return simulate(w, center, native.MouseEnter, native.MouseDown, native.MouseUp)
}

// TapAt simulates a click at a position in window coordinates on the
// topmost widget that accepts clicks there.
func (t *Tester) TapAt(pos graphics.Offset) error {
	w := HitTest(t.view.Widget(), pos)
	if w == nil {
		return fmt.Errorf("TapAt: no widget accepts clicks at %v", pos)
	}
	origin := w.LocalAreaToGlobal(graphics.Rect{}).TopLeft()
	windowOrigin := t.view.Widget().LocalAreaToGlobal(graphics.Rect{}).TopLeft()
	local := graphics.Offset{X: pos.X + windowOrigin.X - origin.X, Y: pos.Y + windowOrigin.Y - origin.Y}
	return simulate(w, local, native.MouseEnter, native.MouseDown, native.MouseUp)
}

// Hover moves the pointer into the widget of the first element matched by
// finder.
func (t *Tester) Hover(finder Finder) error {
	w, err := t.findWidget("Hover", finder)
	if err != nil {
		return err
	}
	center := localCenter(w)
	return simulate(w, center, native.MouseEnter, native.MouseMove)
}

// Unhover moves the pointer out of the widget of the first element matched
// by finder.
func (t *Tester) Unhover(finder Finder) error {
	w, err := t.findWidget("Unhover", finder)
	if err != nil {
		return err
	}
	return simulate(w, graphics.Offset{X: -1, Y: -1}, native.MouseExit)
}

// Press holds the mouse button down over the widget of the first element
// matched by finder without releasing it.
func (t *Tester) Press(finder Finder) error {
	w, err := t.findWidget("Press", finder)
	if err != nil {
		return err
	}
	return simulate(w, localCenter(w), native.MouseDown)
}

// Release releases the mouse button at pos, relative to the widget of the
// first element matched by finder.
func (t *Tester) Release(finder Finder, pos graphics.Offset) error {
	w, err := t.findWidget("Release", finder)
	if err != nil {
		return err
	}
	return simulate(w, pos, native.MouseUp)
}

func (t *Tester) findWidget(op string, finder Finder) (native.Widget, error) {
	result := t.Find(finder)
	if !result.Exists() {
		return nil, fmt.Errorf("%s: finder matched no elements: %s", op, finder.Description())
	}
	w := widgetOf(result.First())
	if w == nil {
		return nil, fmt.Errorf("%s: element has no widget: %s", op, finder.Description())
	}
	return w, nil
}

func simulate(w native.Widget, pos graphics.Offset, kinds ...native.MouseEventKind) error {
	sim, ok := w.(mouseSimulator)
	if !ok {
		return fmt.Errorf("widget %s cannot simulate mouse input", w.Name())
	}
	for _, kind := range kinds {
		sim.SimulateMouse(kind, pos)
	}
	return nil
}

func localCenter(w native.Widget) graphics.Offset {
	s := w.Bounds().Size()
	return graphics.Offset{X: s.Width / 2, Y: s.Height / 2}
}

// HitTest returns the topmost visible widget under root that accepts clicks
// at pos, given in root coordinates. Widgets that do not intercept clicks
// for their children hide those children from the test.
func HitTest(root native.Widget, pos graphics.Offset) native.Widget {
	origin := root.LocalAreaToGlobal(graphics.Rect{}).TopLeft()
	global := graphics.Offset{X: pos.X + origin.X, Y: pos.Y + origin.Y}
	return hitTest(root, global)
}

func hitTest(w native.Widget, global graphics.Offset) native.Widget {
	s := w.Bounds().Size()
	if !w.LocalAreaToGlobal(graphics.RectFromLTWH(0, 0, s.Width, s.Height)).Contains(global) {
		return nil
	}
	self, children := w.InterceptsMouseClicks()
	if children {
		kids := w.Children()
		for _, child := range slices.Backward(kids) {
			if !child.Visible() {
				continue
			}
			if hit := hitTest(child, global); hit != nil {
				return hit
			}
		}
	}
	if self {
		return w
	}
	return nil
}
