package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/vitro/pkg/markup"
)

func tags(elements []Element) []string {
	out := make([]string, len(elements))
	for i, e := range elements {
		out[i] = e.Tag()
	}
	return out
}

func TestPopulateFromXMLDocumentOrder(t *testing.T) {
	ctx, _ := newTestContext(t, Options{})
	v := NewView(ctx)

	ok := v.PopulateFromXMLString(`<View><Panel/><Scroll><Panel/></Scroll>text<Custom/></View>`)
	if !ok {
		t.Fatal("PopulateFromXMLString returned false")
	}

	want := []string{"Panel", "Scroll", "Custom"}
	if diff := cmp.Diff(want, tags(v.Children())); diff != "" {
		t.Errorf("children mismatch (-want +got):\n%s", diff)
	}
	scroll := v.Children()[1]
	if diff := cmp.Diff([]string{"Panel"}, tags(scroll.Children())); diff != "" {
		t.Errorf("scroll children mismatch (-want +got):\n%s", diff)
	}
	if _, ok := v.Children()[2].(*Node); !ok {
		t.Errorf("unknown tag built %T, want *Node", v.Children()[2])
	}
}

func TestPopulateFromXMLRejectsForeignRoot(t *testing.T) {
	ctx, _ := newTestContext(t, Options{})
	v := NewView(ctx)
	v.PopulateFromXMLString(`<View><Panel/></View>`)
	old := v.Children()[0].(*testPanel)

	if v.PopulateFromXMLString(`<Window><Panel/></Window>`) {
		t.Error("foreign root accepted")
	}
	if n := len(v.Children()); n != 0 {
		t.Errorf("len(Children()) = %d, want 0", n)
	}
	if !old.Disposed() {
		t.Error("previous children not disposed")
	}
}

func TestPopulateFromMalformedXML(t *testing.T) {
	errs := recordErrors(t)
	ctx, _ := newTestContext(t, Options{})
	v := NewView(ctx)
	v.PopulateFromXMLString(`<View><Panel/></View>`)

	if v.PopulateFromXMLString(`<View><Panel></View>`) {
		t.Error("malformed markup accepted")
	}
	if n := len(v.Children()); n != 0 {
		t.Errorf("len(Children()) = %d, want 0", n)
	}
	if len(errs.errs) != 1 {
		t.Fatalf("reported %d errors, want 1", len(errs.errs))
	}
}

func TestPopulateFromXMLResource(t *testing.T) {
	errs := recordErrors(t)
	docs := map[string]string{
		"main.xml": `<View><Panel/><Panel/></View>`,
	}
	loader := markup.LoaderFunc(func(location string) (*markup.Node, error) {
		s, ok := docs[location]
		if !ok {
			return nil, markup.ErrNotFound
		}
		return markup.Parse(s)
	})
	ctx, _ := newTestContext(t, Options{Loader: loader})
	v := NewView(ctx)

	if !v.PopulateFromXMLResource("main.xml") {
		t.Fatal("PopulateFromXMLResource returned false")
	}
	if n := len(v.Children()); n != 2 {
		t.Errorf("len(Children()) = %d, want 2", n)
	}

	if v.PopulateFromXMLResource("missing.xml") {
		t.Error("missing resource accepted")
	}
	if n := len(v.Children()); n != 0 {
		t.Errorf("len(Children()) = %d, want 0", n)
	}
	if len(errs.errs) != 1 {
		t.Fatalf("reported %d errors, want 1", len(errs.errs))
	}
}

func TestCreateElementFromXMLCopiesOwnAttributesPerChild(t *testing.T) {
	ctx, _ := newTestContext(t, Options{})
	doc, err := markup.Parse(`<Panel id="outer" class="box"><Panel id="inner"/>text</Panel>`)
	if err != nil {
		t.Fatal(err)
	}

	e := ctx.Factory().CreateElementFromXML(doc)
	if got := e.Attribute(AttrID).String(); got != "outer" {
		t.Errorf("outer id = %q, want %q", got, "outer")
	}
	if got := e.Attribute(AttrClass).String(); got != "box" {
		t.Errorf("outer class = %q, want %q", got, "box")
	}

	// Leaves have no markup children, so none of their attributes are
	// copied.
	inner := e.Children()[0]
	if !inner.Attribute(AttrID).IsVoid() {
		t.Errorf("leaf id = %q, want void", inner.Attribute(AttrID).String())
	}
}

func TestCreateElementFromXMLTextNode(t *testing.T) {
	ctx, _ := newTestContext(t, Options{})
	if e := ctx.Factory().CreateElementFromXML(&markup.Node{Text: "hello"}); e != nil {
		t.Errorf("text node built %v, want nil", e)
	}
}
