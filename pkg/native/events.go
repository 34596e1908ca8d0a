package native

import "github.com/go-drift/vitro/pkg/graphics"

// MouseEvent describes pointer input delivered by the toolkit.
type MouseEvent struct {
	// Source is the widget the event was originally delivered to.
	Source Widget
	// Position is relative to Source.
	Position graphics.Offset
	Button   int
}

// MouseListener receives pointer input for a widget.
type MouseListener interface {
	MouseMove(e MouseEvent)
	MouseEnter(e MouseEvent)
	MouseExit(e MouseEvent)
	MouseDown(e MouseEvent)
	MouseUp(e MouseEvent)
}

// BoundsListener is notified when a widget moves or changes size.
type BoundsListener interface {
	WidgetMovedOrResized(w Widget, moved, resized bool)
}
