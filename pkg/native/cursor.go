package native

// Cursor is a standard mouse cursor shape.
type Cursor int

const (
	CursorNormal Cursor = iota
	CursorNone
	CursorWait
	CursorPointingHand
	CursorCrosshair
	CursorCopying
	CursorDraggingHand
)

func (c Cursor) String() string {
	switch c {
	case CursorNone:
		return "none"
	case CursorWait:
		return "wait"
	case CursorPointingHand:
		return "pointing-hand"
	case CursorCrosshair:
		return "crosshair"
	case CursorCopying:
		return "copying"
	case CursorDraggingHand:
		return "dragging-hand"
	default:
		return "normal"
	}
}
