// Package core binds a declarative element tree to native widgets.
//
// An element tree is built from markup by an ElementsFactory and rooted in
// a View. Elements carry attributes and style properties; component
// elements own exactly one native widget and push only the values that
// changed since the previous pass into it.
//
// # Update cycle
//
// Changing an attribute or the tree structure asks the View for an update.
// The View coalesces any number of requests into one deferred pass, run on
// the Context's dispatcher:
//
//  1. layout is recomputed if any layout input changed
//  2. every descendant runs Update and then Reconcile
//  3. the root widget is repainted
//
// Reconcile keeps native parenting in sync with the element tree: a
// component's widget is always hosted by the container widget of its
// nearest component ancestor.
//
// # Writing elements
//
// Concrete elements embed Component and supply their widget:
//
//	type Panel struct {
//	    core.Component
//	    widget native.Widget
//	}
//
//	func NewPanel(ctx *core.Context) *Panel {
//	    p := &Panel{widget: ctx.Toolkit().NewComponent("Panel")}
//	    p.InitComponent(p, "Panel", ctx)
//	    return p
//	}
//
//	func (p *Panel) Widget() native.Widget { return p.widget }
//
// Everything runs on the UI thread; no type in this package is safe for
// concurrent use.
package core
