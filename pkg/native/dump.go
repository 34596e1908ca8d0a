package native

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes an indented description of the widget tree rooted at w, one
// widget per line.
func Dump(out io.Writer, w Widget) error {
	return dump(out, w, 0)
}

func dump(out io.Writer, w Widget, depth int) error {
	if _, err := fmt.Fprintf(out, "%s%s\n", strings.Repeat("  ", depth), Describe(w)); err != nil {
		return err
	}
	for _, child := range w.Children() {
		if err := dump(out, child, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// Describe returns a one-line summary of the state of w.
func Describe(w Widget) string {
	var b strings.Builder
	r := w.Bounds()
	fmt.Fprintf(&b, "%s [%g,%g %gx%g]", w.Name(), r.Left, r.Top, r.Width(), r.Height())
	if !w.Visible() {
		b.WriteString(" hidden")
	}
	if !w.Enabled() {
		b.WriteString(" disabled")
	}
	if a := w.Alpha(); a != 1 {
		fmt.Fprintf(&b, " alpha=%g", a)
	}
	if c := w.Cursor(); c != CursorNormal {
		fmt.Fprintf(&b, " cursor=%s", c)
	}
	if t, ok := w.(TextWidget); ok && t.Text() != "" {
		fmt.Fprintf(&b, " text=%q", t.Text())
	}
	for _, id := range []ColorID{ColorBackground, ColorText, ColorOutline} {
		if c, ok := w.Color(id); ok {
			fmt.Fprintf(&b, " %s=%s", id, c)
		}
	}
	if s := w.DropShadow(); s != nil {
		fmt.Fprintf(&b, " shadow=%s/%d/%d,%d", s.Color, s.Radius, s.OffsetX, s.OffsetY)
	}
	return b.String()
}
