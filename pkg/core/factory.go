package core

import (
	"reflect"
	"slices"
)

// ElementsFactory creates elements by tag and keeps the stash of elements
// that must outlive their removal from the tree.
type ElementsFactory struct {
	ctx      *Context
	creators map[string]func() Element
	stashed  []Element
}

func newElementsFactory(ctx *Context) *ElementsFactory {
	return &ElementsFactory{
		ctx:      ctx,
		creators: make(map[string]func() Element),
	}
}

// Register associates tag with a constructor. Registering a tag again
// replaces the previous constructor.
func (f *ElementsFactory) Register(tag string, create func(ctx *Context) Element) {
	f.creators[tag] = func() Element { return create(f.ctx) }
}

// RegisterElement is the typed form of Register.
func RegisterElement[T Element](f *ElementsFactory, tag string, create func(ctx *Context) T) {
	f.Register(tag, func(ctx *Context) Element { return create(ctx) })
}

// RegisterDefaultElements registers the elements every tree needs.
func (f *ElementsFactory) RegisterDefaultElements() {
	RegisterElement(f, ViewTag, NewView)
}

// Reset forgets every registered tag.
func (f *ElementsFactory) Reset() {
	clear(f.creators)
}

// IsRegistered reports whether tag has a constructor.
func (f *ElementsFactory) IsRegistered(tag string) bool {
	_, ok := f.creators[tag]
	return ok
}

// Tags returns the registered tags, sorted.
func (f *ElementsFactory) Tags() []string {
	tags := make([]string, 0, len(f.creators))
	for tag := range f.creators {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return tags
}

// CreateElement builds an element for tag. Unknown tags, and constructors
// returning nil, yield a generic Node carrying the tag. The result is never
// nil and its script value is initialized.
func (f *ElementsFactory) CreateElement(tag string) Element {
	var e Element
	if create, ok := f.creators[tag]; ok {
		e = create()
	}
	if isNil(e) {
		e = NewNode(tag, f.ctx)
	}
	e.InitScriptValue()
	return e
}

func isNil(e Element) bool {
	if e == nil {
		return true
	}
	rv := reflect.ValueOf(e)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// StashElement keeps e alive until RemoveStashedElement.
func (f *ElementsFactory) StashElement(e Element) {
	f.stashed = append(f.stashed, e)
}

// RemoveStashedElement drops every stash entry for e. A stashed element
// that is no longer part of a tree is disposed. Removing an element that is
// not stashed does nothing.
func (f *ElementsFactory) RemoveStashedElement(e Element) {
	n := len(f.stashed)
	f.stashed = slices.DeleteFunc(f.stashed, func(s Element) bool { return s == e })
	if len(f.stashed) != n && e.Parent() == nil {
		e.Dispose()
	}
}

// IsStashed reports whether e is in the stash.
func (f *ElementsFactory) IsStashed(e Element) bool {
	return slices.Contains(f.stashed, e)
}

// StashedElements returns a copy of the stash.
func (f *ElementsFactory) StashedElements() []Element {
	return slices.Clone(f.stashed)
}

func (f *ElementsFactory) disposeStash() {
	stashed := f.stashed
	f.stashed = nil
	for _, e := range stashed {
		if e.Parent() == nil {
			e.Dispose()
		}
	}
}
