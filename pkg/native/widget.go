package native

import "github.com/go-drift/vitro/pkg/graphics"

// ColorID identifies a themable color slot of a widget.
type ColorID int

const (
	ColorBackground ColorID = iota + 1
	ColorText
	ColorOutline
)

func (id ColorID) String() string {
	switch id {
	case ColorBackground:
		return "background"
	case ColorText:
		return "text"
	case ColorOutline:
		return "outline"
	default:
		return "color"
	}
}

// Widget is a native widget handle.
type Widget interface {
	// Name is a debugging label.
	Name() string

	Parent() Widget
	Children() []Widget
	// AddAndMakeVisible appends child, makes it visible and removes it from
	// any previous parent.
	AddAndMakeVisible(child Widget)
	// RemoveChild detaches child; it is a no-op if child is not a child.
	RemoveChild(child Widget)

	// Bounds are relative to the parent widget, or to the screen for
	// widgets without a parent.
	Bounds() graphics.Rect
	SetBounds(bounds graphics.Rect)

	Enabled() bool
	SetEnabled(enabled bool)
	Visible() bool
	SetVisible(visible bool)
	Alpha() float64
	SetAlpha(alpha float64)
	InterceptsMouseClicks() (self, children bool)
	SetInterceptsMouseClicks(self, children bool)
	Cursor() Cursor
	SetCursor(cursor Cursor)

	Color(id ColorID) (graphics.Color, bool)
	SetColor(id ColorID, color graphics.Color)
	RemoveColor(id ColorID)

	// DropShadow returns the shadow currently attached, or nil.
	DropShadow() *graphics.Shadow
	SetDropShadow(shadow *graphics.Shadow)

	AddMouseListener(l MouseListener, nestedChildren bool)
	RemoveMouseListener(l MouseListener)
	AddBoundsListener(l BoundsListener)
	RemoveBoundsListener(l BoundsListener)

	// LocalAreaToGlobal maps a rectangle in this widget's coordinates to
	// screen coordinates.
	LocalAreaToGlobal(area graphics.Rect) graphics.Rect
	// LocalAreaFrom maps a rectangle in source's coordinates into this
	// widget's coordinates.
	LocalAreaFrom(source Widget, area graphics.Rect) graphics.Rect

	Repaint()
	// Dispose releases the native resources; the widget must not be used
	// afterwards.
	Dispose()
}

// TextWidget is implemented by widgets that render a single run of text.
type TextWidget interface {
	Widget
	Text() string
	SetText(text string)
	Font() graphics.Font
	SetFont(font graphics.Font)
}

// Viewport is implemented by scrollable widgets whose children live in a
// content widget distinct from the viewport itself.
type Viewport interface {
	Widget
	Content() Widget
	ScrollOffset() graphics.Offset
	SetScrollOffset(offset graphics.Offset)
}
