package markup

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func TestParseKeepsOrder(t *testing.T) {
	root, err := Parse(`<View a="1" b="2"><Panel id="p"/>hello<Label text="x"></Label></View>`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := &Node{
		Tag:   "View",
		Attrs: []Attr{{"a", "1"}, {"b", "2"}},
		Children: []*Node{
			{Tag: "Panel", Attrs: []Attr{{"id", "p"}}},
			{Text: "hello"},
			{Tag: "Label", Attrs: []Attr{{"text", "x"}}},
		},
	}
	if diff := cmp.Diff(want, root); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
	if !root.Children[1].IsText() {
		t.Error("expected text node")
	}
	if v, ok := root.Attr("b"); !ok || v != "2" {
		t.Errorf("Attr(b) = %q, %v", v, ok)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"<View>",
		"<View></Panel>",
		"<View/><View/>",
	}
	for _, in := range tests {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) expected error", in)
		}
	}
	if _, err := Parse(""); !errors.Is(err, ErrEmptyDocument) {
		t.Errorf("Parse(\"\") error = %v, want ErrEmptyDocument", err)
	}
}

func TestFSLoader(t *testing.T) {
	loader := FSLoader{FS: fstest.MapFS{
		"ui/main.xml": {Data: []byte(`<View><Panel/></View>`)},
		"ui/bad.xml":  {Data: []byte(`<View>`)},
	}}

	root, err := loader.LoadXML("/ui/main.xml")
	if err != nil {
		t.Fatalf("LoadXML: %v", err)
	}
	if root.Tag != "View" || len(root.Children) != 1 {
		t.Errorf("unexpected document: %+v", root)
	}

	if _, err := loader.LoadXML("ui/missing.xml"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing resource error = %v, want ErrNotFound", err)
	}
	if _, err := loader.LoadXML("ui/bad.xml"); err == nil {
		t.Error("expected parse error")
	}
}
