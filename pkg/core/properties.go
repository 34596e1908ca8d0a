package core

import "slices"

type property struct {
	value   Var
	changed bool
}

// PropertySet is a named value store that remembers which entries changed
// since they were last read with Changed.
type PropertySet struct {
	entries map[string]*property
	order   []string
}

// Set stores v under name and reports whether the stored value changed.
// Storing Void removes the value.
func (p *PropertySet) Set(name string, v Var) bool {
	e, ok := p.entries[name]
	if !ok {
		if v.IsVoid() {
			return false
		}
		if p.entries == nil {
			p.entries = make(map[string]*property)
		}
		e = &property{}
		p.entries[name] = e
		p.order = append(p.order, name)
	}
	if e.value.Equal(v) {
		return false
	}
	e.value = v
	e.changed = true
	return true
}

// Get returns the value stored under name, or Void.
func (p *PropertySet) Get(name string) Var {
	if e, ok := p.entries[name]; ok {
		return e.value
	}
	return Void
}

// Has reports whether name holds a non-void value.
func (p *PropertySet) Has(name string) bool {
	return !p.Get(name).IsVoid()
}

// Changed returns whether name changed since the previous Changed call,
// together with its current value. The changed flag is cleared.
func (p *PropertySet) Changed(name string) (bool, Var) {
	e, ok := p.entries[name]
	if !ok {
		return false, Void
	}
	changed := e.changed
	e.changed = false
	return changed, e.value
}

// Names returns the names ever stored, in insertion order, that still hold
// a value.
func (p *PropertySet) Names() []string {
	return slices.DeleteFunc(slices.Clone(p.order), func(name string) bool {
		return p.entries[name].value.IsVoid()
	})
}
