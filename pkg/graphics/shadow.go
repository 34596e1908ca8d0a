package graphics

// DefaultShadowRadius is the blur radius used when none is declared.
const DefaultShadowRadius = 4

// Shadow describes a drop shadow cast by a widget.
type Shadow struct {
	Color   Color
	Radius  int
	OffsetX int
	OffsetY int
}

// DefaultShadow returns a black shadow with the default radius and no offset.
func DefaultShadow() Shadow {
	return Shadow{Color: ColorBlack, Radius: DefaultShadowRadius}
}
