package script

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/vitro/pkg/core"
)

func newElement(t *testing.T, r *Registry) core.Element {
	t.Helper()
	ctx := core.NewContext(core.Options{Scripts: r})
	t.Cleanup(ctx.Close)
	return ctx.Factory().CreateElement("Panel")
}

func TestParse(t *testing.T) {
	tests := []struct {
		src  string
		want []Call
	}{
		{"", nil},
		{"refresh", []Call{{Name: "refresh"}}},
		{"go()", []Call{{Name: "go"}}},
		{"set(text, 'a; b, c'); toggle(open) ;", []Call{
			{Name: "set", Args: []string{"text", "a; b, c"}},
			{Name: "toggle", Args: []string{"open"}},
		}},
		{`app.notify("saved", 2)`, []Call{{Name: "app.notify", Args: []string{"saved", "2"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, err := Parse(tt.src)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseSyntaxErrors(t *testing.T) {
	for _, src := range []string{"go(", "1go()", "a b", "(x)"} {
		if _, err := Parse(src); !errors.Is(err, ErrSyntax) {
			t.Errorf("Parse(%q) err = %v, want ErrSyntax", src, err)
		}
	}
}

func TestBuiltins(t *testing.T) {
	r := NewRegistry()
	e := newElement(t, r)

	if err := r.Evaluate(e, "onclick", "set(text, hello); toggle(open)"); err != nil {
		t.Fatal(err)
	}
	if got := e.Attribute("text").String(); got != "hello" {
		t.Errorf("text = %q, want %q", got, "hello")
	}
	if !e.Attribute("open").Bool() {
		t.Error("open not toggled on")
	}

	if err := r.Evaluate(e, "onclick", "toggle(open); clear(text)"); err != nil {
		t.Fatal(err)
	}
	if e.Attribute("open").Bool() {
		t.Error("open not toggled off")
	}
	if !e.Attribute("text").IsVoid() {
		t.Error("text not cleared")
	}
}

func TestEvaluateErrors(t *testing.T) {
	r := NewRegistry()
	e := newElement(t, r)

	if err := r.Evaluate(e, "onclick", "missing()"); !errors.Is(err, ErrUnknownFunction) {
		t.Errorf("err = %v, want ErrUnknownFunction", err)
	}
	if err := r.Evaluate(e, "onclick", "set(onlyone)"); err == nil {
		t.Error("wrong argument count accepted")
	}
}

func TestEvaluateStopsAtFirstError(t *testing.T) {
	r := NewRegistry()
	boom := errors.New("boom")
	var ran []string
	r.Register("fail", func(core.Element, []string) error { return boom })
	r.Register("mark", func(_ core.Element, args []string) error {
		ran = append(ran, args...)
		return nil
	})
	e := newElement(t, r)

	err := r.Evaluate(e, "onmouseup", "mark(a); fail(); mark(b)")
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
	if diff := cmp.Diff([]string{"a"}, ran); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryNames(t *testing.T) {
	r := NewRegistry()
	r.Register("zoom", func(core.Element, []string) error { return nil })
	r.Unregister("clear")

	want := []string{"set", "toggle", "zoom"}
	if diff := cmp.Diff(want, r.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}

func TestAttributeScriptsRunThroughElements(t *testing.T) {
	r := NewRegistry()
	e := newElement(t, r)
	e.SetAttribute(core.AttrOnMouseDown, "set(pressed, yes)")

	e.EvaluateAttributeScript(core.AttrOnMouseDown)

	if got := e.Attribute("pressed").String(); got != "yes" {
		t.Errorf("pressed = %q, want %q", got, "yes")
	}
}
