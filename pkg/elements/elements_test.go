package elements

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/vitro/pkg/core"
	"github.com/go-drift/vitro/pkg/graphics"
	"github.com/go-drift/vitro/pkg/native"
	"github.com/go-drift/vitro/pkg/platform"
	"github.com/go-drift/vitro/pkg/script"
	"github.com/go-drift/vitro/pkg/style"
)

const sheet = `
Panel:
  background-color: "#102030"
Label:
  color: white
  font-style: bold
  font-size: 18
Button:
  cursor: pointer
"Button:hover":
  background-color: gray
`

type harness struct {
	view    *core.View
	loop    *platform.Loop
	scripts *script.Registry
}

func newHarness(t *testing.T, markup string) *harness {
	t.Helper()
	s, err := style.Parse([]byte(sheet))
	if err != nil {
		t.Fatal(err)
	}
	loop := platform.NewLoop()
	scripts := script.NewRegistry()
	ctx := core.NewContext(core.Options{Styles: s, Scripts: scripts, Dispatcher: loop})
	RegisterAll(ctx.Factory())

	v := core.NewView(ctx)
	v.Widget().SetBounds(graphics.RectFromLTWH(0, 0, 400, 300))
	if !v.PopulateFromXMLString(markup) {
		t.Fatalf("PopulateFromXMLString(%q) failed", markup)
	}
	loop.RunPending()

	t.Cleanup(func() {
		v.Close()
		ctx.Close()
		loop.Close()
	})
	return &harness{view: v, loop: loop, scripts: scripts}
}

func (h *harness) child(path ...int) core.Element {
	var e core.Element = h.view
	for _, i := range path {
		e = e.Children()[i]
	}
	return e
}

func TestRegisterAll(t *testing.T) {
	ctx := core.NewContext(core.Options{})
	defer ctx.Close()
	RegisterAll(ctx.Factory())

	want := []string{ButtonTag, LabelTag, PanelTag, ScrollViewTag, core.ViewTag}
	if diff := cmp.Diff(want, ctx.Factory().Tags()); diff != "" {
		t.Errorf("Tags() mismatch (-want +got):\n%s", diff)
	}
}

func TestPanelBackground(t *testing.T) {
	h := newHarness(t, `<View><Panel/></View>`)
	p := h.child(0).(*Panel)

	got, ok := p.Widget().Color(native.ColorBackground)
	if !ok || got != graphics.RGB(0x10, 0x20, 0x30) {
		t.Errorf("background = %v, %v, want #ff102030", got, ok)
	}
	if p.Widget().Parent() != h.view.Widget() {
		t.Error("panel widget not hosted by the window")
	}
}

func TestLabelTextAndFont(t *testing.T) {
	h := newHarness(t, `<View><Panel><Label text="Hello">Hello</Label></Panel></View>`)
	l := h.child(0, 0).(*Label)
	w := l.Widget().(native.TextWidget)

	if l.Text() != "Hello" {
		t.Errorf("Text() = %q, want %q", l.Text(), "Hello")
	}
	if f := w.Font(); !f.Bold() || f.Height != 18 {
		t.Errorf("font = %+v, want bold 18", f)
	}
	if c, _ := w.Color(native.ColorText); c != graphics.ColorWhite {
		t.Errorf("text color = %v, want white", c)
	}

	l.SetAttribute(AttrText, "Bye")
	if !h.view.UpdatePending() {
		t.Fatal("attribute change did not schedule an update")
	}
	h.loop.RunPending()
	if l.Text() != "Bye" {
		t.Errorf("Text() = %q, want %q", l.Text(), "Bye")
	}
}

func TestLabelLeafWithoutContentHasNoMarkupAttributes(t *testing.T) {
	h := newHarness(t, `<View><Label text="Hello"/></View>`)
	if got := h.child(0).(*Label).Text(); got != "" {
		t.Errorf("Text() = %q, want empty", got)
	}
}

func TestLabelIgnoresTextContent(t *testing.T) {
	h := newHarness(t, `<View><Label>Hello</Label></View>`)
	if got := h.child(0).(*Label).Text(); got != "" {
		t.Errorf("Text() = %q, want empty: content is not label text", got)
	}
}

func TestButtonClick(t *testing.T) {
	h := newHarness(t, `<View><Button text="Save" onclick="set(text, Saved)">Save</Button></View>`)
	b := h.child(0).(*Button)
	w := b.Widget().(*native.Label)

	if w.Cursor() != native.CursorPointingHand {
		t.Errorf("Cursor() = %v, want pointing hand", w.Cursor())
	}

	w.SimulateMouse(native.MouseEnter, graphics.Offset{X: 10, Y: 10})
	w.SimulateMouse(native.MouseDown, graphics.Offset{X: 10, Y: 10})
	w.SimulateMouse(native.MouseUp, graphics.Offset{X: 10, Y: 10})
	h.loop.RunPending()

	if b.Text() != "Saved" {
		t.Errorf("Text() = %q, want %q", b.Text(), "Saved")
	}
	if c, _ := w.Color(native.ColorBackground); c != graphics.RGB(0x80, 0x80, 0x80) {
		t.Errorf("hover background = %v, want gray", c)
	}
}

func TestButtonIgnoresReleaseOutside(t *testing.T) {
	h := newHarness(t, `<View><Button text="Save" onclick="set(text, Saved)">Save</Button></View>`)
	b := h.child(0).(*Button)
	w := b.Widget().(*native.Label)

	w.SimulateMouse(native.MouseUp, graphics.Offset{X: -5, Y: 10})
	h.loop.RunPending()
	if b.Text() != "Save" {
		t.Errorf("Text() = %q, want %q", b.Text(), "Save")
	}

	b.SetAttribute(core.AttrEnabled, false)
	h.loop.RunPending()
	w.SimulateMouse(native.MouseUp, graphics.Offset{X: 10, Y: 10})
	h.loop.RunPending()
	if b.Text() != "Save" {
		t.Errorf("disabled button ran onclick: Text() = %q", b.Text())
	}
}

func TestScrollViewHostsChildrenInContent(t *testing.T) {
	h := newHarness(t, `<View><ScrollView><Panel/><Panel/></ScrollView></View>`)
	sv := h.child(0).(*ScrollView)
	pane := sv.Widget().(native.Viewport)

	for i, c := range sv.Children() {
		p := c.(*Panel)
		if p.Widget().Parent() != pane.Content() {
			t.Errorf("child %d hosted by %v, want content", i, p.Widget().Parent())
		}
	}
	if got, want := pane.Content().Bounds(), graphics.RectFromLTWH(0, 0, 400, 300); got != want {
		t.Errorf("content bounds = %v, want %v", got, want)
	}
}

func TestScrollViewContentGrowsWithChildren(t *testing.T) {
	h := newHarness(t, `<View><ScrollView><Panel style="height: 500px">x</Panel></ScrollView></View>`)
	sv := h.child(0).(*ScrollView)
	pane := sv.Widget().(native.Viewport)

	if got := pane.Content().Bounds().Height(); got != 500 {
		t.Errorf("content height = %v, want 500", got)
	}
}

func TestScrollOffsetFollowsAttributes(t *testing.T) {
	h := newHarness(t, `<View><ScrollView/></View>`)
	sv := h.child(0).(*ScrollView)

	sv.SetAttribute(AttrScrollY, "120")
	h.loop.RunPending()

	if got := sv.Widget().(native.Viewport).ScrollOffset(); got != (graphics.Offset{Y: 120}) {
		t.Errorf("ScrollOffset() = %v, want {0 120}", got)
	}
}
