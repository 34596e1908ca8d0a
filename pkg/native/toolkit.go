package native

// Toolkit creates native widgets.
type Toolkit interface {
	// NewWindow creates a top-level widget.
	NewWindow(name string) Widget
	NewComponent(name string) Widget
	NewLabel(name string) TextWidget
	NewScrollPane(name string) Viewport
}

// Headless is the Toolkit of the in-memory widgets.
type Headless struct{}

func (Headless) NewWindow(name string) Widget {
	return NewComponent(name)
}

func (Headless) NewComponent(name string) Widget {
	return NewComponent(name)
}

func (Headless) NewLabel(name string) TextWidget {
	return NewLabel(name)
}

func (Headless) NewScrollPane(name string) Viewport {
	return NewScrollPane(name)
}
