package testing

import (
	"testing"

	"github.com/go-drift/vitro/pkg/core"
	"github.com/go-drift/vitro/pkg/elements"
	"github.com/go-drift/vitro/pkg/native"
)

const finderMarkup = `<View>
  <Panel id="top" class="card main">
    <Label class="title" text="Hello">Hello</Label>
    <Button text="Save">Save</Button>
  </Panel>
  <Panel class="card">
    <Label text="Hello world">Hello world</Label>
  </Panel>
</View>`

func loadFinderTree(t *testing.T) *Tester {
	t.Helper()
	tester := NewTesterWithT(t)
	if err := tester.Load(finderMarkup); err != nil {
		t.Fatal(err)
	}
	return tester
}

func TestFinderCounts(t *testing.T) {
	tester := loadFinderTree(t)

	tests := []struct {
		finder Finder
		want   int
	}{
		{ByTag(elements.PanelTag), 2},
		{ByTag(elements.LabelTag), 2},
		{ByTag("Missing"), 0},
		{ByID("top"), 1},
		{ByID("bottom"), 0},
		{ByClass("card"), 2},
		{ByClass("main"), 1},
		{ByClass("ca"), 0},
		{ByText("Hello"), 1},
		{ByText("Save"), 1},
		{ByTextContaining("Hello"), 2},
		{ByAttribute(elements.AttrText, "Save"), 1},
		{ByType[*elements.Label](), 2},
		{ByType[*elements.Button](), 1},
		{ByType[*core.View](), 1},
		{Descendant(ByID("top"), ByTag(elements.LabelTag)), 1},
		{Descendant(ByClass("card"), ByTag(elements.LabelTag)), 2},
		{Descendant(ByTag(elements.LabelTag), ByTag(elements.LabelTag)), 0},
		{Ancestor(ByText("Hello world"), ByTag(elements.PanelTag)), 1},
		{Ancestor(ByText("Hello world"), ByClass("card")), 1},
		{Ancestor(ByTag("Missing"), ByTag(elements.PanelTag)), 0},
		{ByPredicate(func(e core.Element) bool { return len(e.Children()) == 2 }), 2},
	}
	for _, tt := range tests {
		t.Run(tt.finder.Description(), func(t *testing.T) {
			if got := tester.Find(tt.finder).Count(); got != tt.want {
				t.Errorf("Count() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFinderOrderAndIdentity(t *testing.T) {
	tester := loadFinderTree(t)

	panels := tester.Find(ByTag(elements.PanelTag))
	if tester.Find(ByID("top")).First() != panels.At(0) {
		t.Error("ByID(top) is not the first panel")
	}
	if got := tester.Find(Ancestor(ByText("Hello world"), ByTag(elements.PanelTag))).First(); got != panels.At(1) {
		t.Errorf("Ancestor() = %v, want the second panel", got)
	}
	if len(panels.All()) != 2 || !panels.Exists() {
		t.Errorf("All() = %v", panels.All())
	}
}

func TestFinderResultWidget(t *testing.T) {
	tester := loadFinderTree(t)

	w := tester.Find(ByText("Save")).Widget()
	if tw, ok := w.(native.TextWidget); !ok || tw.Text() != "Save" {
		t.Errorf("Widget() = %v, want the Save label widget", w)
	}
}

func TestFinderResultEmpty(t *testing.T) {
	tester := loadFinderTree(t)
	r := tester.Find(ByTag("Missing"))

	if r.Exists() || r.FirstOrNil() != nil {
		t.Error("empty result reports a match")
	}
	assertPanics(t, "First", func() { r.First() })
	assertPanics(t, "At", func() { r.At(0) })
	assertPanics(t, "Widget", func() { r.Widget() })
}

func assertPanics(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	fn()
}
