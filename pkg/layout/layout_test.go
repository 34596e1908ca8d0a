package layout

import (
	"testing"

	"github.com/go-drift/vitro/pkg/graphics"
)

func TestParseDimension(t *testing.T) {
	tests := []struct {
		in   string
		want Dimension
	}{
		{"", Auto},
		{"auto", Auto},
		{"12", Px(12)},
		{" 12px ", Px(12)},
		{"50%", Percent(50)},
	}
	for _, tt := range tests {
		got, err := ParseDimension(tt.in)
		if err != nil {
			t.Errorf("ParseDimension(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDimension(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := ParseDimension("wide"); err == nil {
		t.Error("expected error for non-numeric dimension")
	}
}

func TestColumnFlowSharesRemainingSpace(t *testing.T) {
	root := NewBox()
	header, body, footer := NewBox(), NewBox(), NewBox()
	header.SetStyle(Style{Height: Px(20)})
	footer.SetStyle(Style{Height: Percent(10)})
	root.Append(header)
	root.Append(body)
	root.Append(footer)

	root.Calculate(100, 200)

	want := map[*Box]graphics.Rect{
		header: graphics.RectFromLTWH(0, 0, 100, 20),
		body:   graphics.RectFromLTWH(0, 20, 100, 160),
		footer: graphics.RectFromLTWH(0, 180, 100, 20),
	}
	for box, rect := range want {
		if box.Rect() != rect {
			t.Errorf("rect = %+v, want %+v", box.Rect(), rect)
		}
	}
	if root.NeedsLayout() || body.NeedsLayout() {
		t.Error("Calculate should clear dirty flags")
	}
}

func TestRowFlowAndPadding(t *testing.T) {
	root := NewBox()
	root.SetStyle(Style{Direction: Row, Padding: 10})
	a, b := NewBox(), NewBox()
	a.SetStyle(Style{Width: Px(30), Height: Px(5)})
	root.Append(a)
	root.Append(b)

	root.Calculate(100, 50)

	if got, want := a.Rect(), graphics.RectFromLTWH(10, 10, 30, 5); got != want {
		t.Errorf("a = %+v, want %+v", got, want)
	}
	if got, want := b.Rect(), graphics.RectFromLTWH(40, 10, 50, 30); got != want {
		t.Errorf("b = %+v, want %+v", got, want)
	}
}

func TestAbsoluteChildLeavesFlow(t *testing.T) {
	root := NewBox()
	overlay, flow := NewBox(), NewBox()
	overlay.SetStyle(Style{Left: Px(10), Top: Percent(50), Width: Px(20)})
	root.Append(overlay)
	root.Append(flow)

	root.Calculate(100, 100)

	if got, want := overlay.Rect(), graphics.RectFromLTWH(10, 50, 20, 50); got != want {
		t.Errorf("overlay = %+v, want %+v", got, want)
	}
	if got, want := flow.Rect(), graphics.RectFromLTWH(0, 0, 100, 100); got != want {
		t.Errorf("flow = %+v, want %+v", got, want)
	}
}

func TestDirtyPropagation(t *testing.T) {
	root, child, grandchild := NewBox(), NewBox(), NewBox()
	root.Append(child)
	child.Append(grandchild)
	root.Calculate(10, 10)

	grandchild.SetStyle(grandchild.Style())
	if root.NeedsLayout() {
		t.Error("identical style should not dirty the tree")
	}

	grandchild.SetStyle(Style{Width: Px(3)})
	if !root.NeedsLayout() || !child.NeedsLayout() {
		t.Error("style change should dirty all ancestors")
	}

	root.Calculate(10, 10)
	child.Remove(grandchild)
	if !root.NeedsLayout() {
		t.Error("removing a child should dirty the tree")
	}
	if grandchild.Parent() != nil {
		t.Error("removed box should have no parent")
	}
}
