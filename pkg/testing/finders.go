package testing

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-drift/vitro/pkg/core"
	"github.com/go-drift/vitro/pkg/native"
)

// Finder selects elements of a tree.
type Finder interface {
	// Evaluate returns the matches below and including root, in document
	// order.
	Evaluate(root core.Element) []core.Element
	// Description names the finder in failure messages.
	Description() string
}

// FinderResult holds the elements a finder matched.
type FinderResult struct {
	elements []core.Element
	finder   Finder
}

func (r FinderResult) fail(format string, args ...any) {
	name := "<nil finder>"
	if r.finder != nil {
		name = r.finder.Description()
	}
	panic(fmt.Sprintf("%s: %s", name, fmt.Sprintf(format, args...)))
}

// First returns the first match and panics when nothing matched.
func (r FinderResult) First() core.Element {
	return r.At(0)
}

// FirstOrNil is First without the panic.
func (r FinderResult) FirstOrNil() core.Element {
	if len(r.elements) == 0 {
		return nil
	}
	return r.elements[0]
}

// At returns match i and panics when there are not that many.
func (r FinderResult) At(i int) core.Element {
	if len(r.elements) == 0 {
		r.fail("no elements found")
	}
	if i < 0 || i >= len(r.elements) {
		r.fail("index %d out of range, %d found", i, len(r.elements))
	}
	return r.elements[i]
}

// All returns the matches in document order.
func (r FinderResult) All() []core.Element {
	return r.elements
}

func (r FinderResult) Count() int {
	return len(r.elements)
}

func (r FinderResult) Exists() bool {
	return len(r.elements) != 0
}

// Widget returns the native widget of the first match. It panics when the
// first match does not own a widget.
func (r FinderResult) Widget() native.Widget {
	w := widgetOf(r.First())
	if w == nil {
		r.fail("first match has no widget")
	}
	return w
}

func widgetOf(e core.Element) native.Widget {
	if c, ok := e.(core.ComponentElement); ok {
		return c.Widget()
	}
	return nil
}

func textOf(e core.Element) (string, bool) {
	if t, ok := widgetOf(e).(native.TextWidget); ok {
		return t.Text(), true
	}
	return "", false
}

// match is a finder testing every element on its own.
type match struct {
	desc string
	test func(core.Element) bool
}

func (m match) Evaluate(root core.Element) []core.Element {
	var found []core.Element
	core.Walk(root, func(e core.Element) bool {
		if m.test(e) {
			found = append(found, e)
		}
		return true
	})
	return found
}

func (m match) Description() string { return m.desc }

// ByType matches elements whose dynamic type is T.
func ByType[T core.Element]() Finder {
	typ := reflect.TypeFor[T]()
	return match{
		desc: fmt.Sprintf("ByType(%s)", typ),
		test: func(e core.Element) bool { return reflect.TypeOf(e) == typ },
	}
}

// ByTag matches elements built for the markup tag.
func ByTag(tag string) Finder {
	return match{
		desc: fmt.Sprintf("ByTag(%q)", tag),
		test: func(e core.Element) bool { return e.Tag() == tag },
	}
}

func attributeIs(name, value string) func(core.Element) bool {
	return func(e core.Element) bool {
		v := e.Attribute(name)
		return !v.IsVoid() && v.String() == value
	}
}

// ByAttribute matches elements whose attribute name reads as value.
func ByAttribute(name, value string) Finder {
	return match{desc: fmt.Sprintf("ByAttribute(%s=%q)", name, value), test: attributeIs(name, value)}
}

// ByID matches the id attribute.
func ByID(id string) Finder {
	return match{desc: fmt.Sprintf("ByID(%q)", id), test: attributeIs(core.AttrID, id)}
}

// ByClass matches elements listing class in their class attribute.
func ByClass(class string) Finder {
	return match{
		desc: fmt.Sprintf("ByClass(%q)", class),
		test: func(e core.Element) bool {
			return slices.Contains(strings.Fields(e.Attribute(core.AttrClass).String()), class)
		},
	}
}

// ByText matches elements whose text widget shows exactly text. Text
// reaches widgets during an update pass, so pump first.
func ByText(text string) Finder {
	return match{
		desc: fmt.Sprintf("ByText(%q)", text),
		test: func(e core.Element) bool {
			s, ok := textOf(e)
			return ok && s == text
		},
	}
}

// ByTextContaining matches elements whose text widget contains substr.
func ByTextContaining(substr string) Finder {
	return match{
		desc: fmt.Sprintf("ByTextContaining(%q)", substr),
		test: func(e core.Element) bool {
			s, ok := textOf(e)
			return ok && strings.Contains(s, substr)
		},
	}
}

// ByPredicate matches elements for which fn returns true.
func ByPredicate(fn func(core.Element) bool) Finder {
	return match{desc: "ByPredicate", test: fn}
}

// relation combines two finders by tree position.
type relation struct {
	kind     string
	of       Finder
	matching Finder
	eval     func(root core.Element, anchors []core.Element, matching Finder) []core.Element
}

func (r relation) Evaluate(root core.Element) []core.Element {
	anchors := r.of.Evaluate(root)
	if len(anchors) == 0 {
		return nil
	}
	return r.eval(root, anchors, r.matching)
}

func (r relation) Description() string {
	return fmt.Sprintf("%s(of: %s, matching: %s)", r.kind, r.of.Description(), r.matching.Description())
}

// Descendant matches elements selected by matching that lie strictly below
// an element selected by of. Each match is reported once.
func Descendant(of, matching Finder) Finder {
	return relation{kind: "Descendant", of: of, matching: matching, eval: below}
}

// Ancestor matches elements selected by matching that lie strictly above
// an element selected by of.
func Ancestor(of, matching Finder) Finder {
	return relation{kind: "Ancestor", of: of, matching: matching, eval: above}
}

func below(root core.Element, anchors []core.Element, matching Finder) []core.Element {
	var found []core.Element
	for _, e := range matching.Evaluate(root) {
		if slices.ContainsFunc(anchors, func(a core.Element) bool { return encloses(a, e) }) {
			found = append(found, e)
		}
	}
	return found
}

func above(root core.Element, anchors []core.Element, matching Finder) []core.Element {
	var found []core.Element
	for _, e := range matching.Evaluate(root) {
		if slices.ContainsFunc(anchors, func(a core.Element) bool { return encloses(e, a) }) {
			found = append(found, e)
		}
	}
	return found
}

// encloses reports whether inner lies strictly below outer.
func encloses(outer, inner core.Element) bool {
	for p := inner.Parent(); p != nil; p = p.Parent() {
		if p == outer {
			return true
		}
	}
	return false
}
