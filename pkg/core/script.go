package core

import "slices"

// ScriptEngine evaluates attribute scripts. source is the attribute value;
// name is the attribute it came from (e.g. "onmousedown").
type ScriptEngine interface {
	Evaluate(e Element, name, source string) error
}

// ScriptEngineFunc adapts a function to the ScriptEngine interface.
type ScriptEngineFunc func(e Element, name, source string) error

// Evaluate calls f(e, name, source).
func (f ScriptEngineFunc) Evaluate(e Element, name, source string) error {
	return f(e, name, source)
}

// ScriptValue is the handle through which scripts see an element. Besides
// the element's attributes it exposes read-only computed properties.
type ScriptValue struct {
	element Element
	getters map[string]func() any
	order   []string
}

// Element returns the element behind the handle.
func (s *ScriptValue) Element() Element {
	return s.element
}

// DefineProperty registers a read-only computed property.
func (s *ScriptValue) DefineProperty(name string, get func() any) {
	if s.getters == nil {
		s.getters = make(map[string]func() any)
	}
	if _, ok := s.getters[name]; !ok {
		s.order = append(s.order, name)
	}
	s.getters[name] = get
}

// Property evaluates a computed property, falling back to the element
// attribute of the same name.
func (s *ScriptValue) Property(name string) (any, bool) {
	if get, ok := s.getters[name]; ok {
		return get(), true
	}
	if v := s.element.Attribute(name); !v.IsVoid() {
		return v.Value(), true
	}
	return nil, false
}

// PropertyNames returns the computed property names in definition order.
func (s *ScriptValue) PropertyNames() []string {
	return slices.Clone(s.order)
}
