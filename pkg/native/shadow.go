package native

import "github.com/go-drift/vitro/pkg/graphics"

// DropShadower draws a shadow behind its owner widget. It stays attached
// until Close or SetOwner(nil).
type DropShadower struct {
	shadow graphics.Shadow
	owner  Widget
}

// NewDropShadower creates a shadower with no owner.
func NewDropShadower(shadow graphics.Shadow) *DropShadower {
	return &DropShadower{shadow: shadow}
}

// Shadow returns the shadow description.
func (d *DropShadower) Shadow() graphics.Shadow {
	return d.shadow
}

// SetShadow replaces the shadow description and refreshes the owner.
func (d *DropShadower) SetShadow(shadow graphics.Shadow) {
	if d.shadow == shadow {
		return
	}
	d.shadow = shadow
	if d.owner != nil {
		s := d.shadow
		d.owner.SetDropShadow(&s)
	}
}

// Owner returns the widget casting the shadow.
func (d *DropShadower) Owner() Widget {
	return d.owner
}

// SetOwner moves the shadow to w. A nil w detaches it.
func (d *DropShadower) SetOwner(w Widget) {
	if d.owner == w {
		return
	}
	if d.owner != nil {
		d.owner.SetDropShadow(nil)
	}
	d.owner = w
	if w != nil {
		s := d.shadow
		w.SetDropShadow(&s)
	}
}

// Close detaches the shadow from its owner.
func (d *DropShadower) Close() {
	d.SetOwner(nil)
}
