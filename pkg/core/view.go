package core

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/go-drift/vitro/pkg/errors"
	"github.com/go-drift/vitro/pkg/markup"
	"github.com/go-drift/vitro/pkg/native"
)

// ViewTag is the tag of the root element of every document.
const ViewTag = "View"

const tracerName = "github.com/go-drift/vitro/pkg/core"

// View is the root of an element tree. It owns the top-level widget and
// runs the deferred update pass: any number of update requests between two
// dispatcher turns result in one pass.
type View struct {
	Component

	window  native.Widget
	updater *AsyncUpdater
	tracer  trace.Tracer
}

// NewView creates an empty View with a new top-level widget.
func NewView(ctx *Context) *View {
	v := &View{
		window: ctx.Toolkit().NewWindow(ViewTag),
		tracer: ctx.TracerProvider().Tracer(tracerName),
	}
	v.InitComponent(v, ViewTag, ctx)
	v.updater = NewAsyncUpdater(ctx.Dispatcher(), v.updateEverything)
	v.initialized = true
	v.Initialize()
	return v
}

// Widget returns the top-level widget.
func (v *View) Widget() native.Widget {
	return v.window
}

// Update schedules the deferred update pass. A View nested in another tree
// is updated by the enclosing pass like any other component.
func (v *View) Update() {
	if v.parent != nil {
		v.Component.Update()
		return
	}
	v.ScheduleUpdate()
}

// ScheduleUpdate schedules the deferred update pass unless one is pending.
// A nested View asks the root of its tree instead.
func (v *View) ScheduleUpdate() {
	if v.Disposed() {
		return
	}
	if v.parent != nil {
		v.requestUpdate()
		return
	}
	v.updater.Trigger()
}

// UpdatePending reports whether a deferred pass is scheduled.
func (v *View) UpdatePending() bool {
	return v.updater.IsPending()
}

// UpdateNow runs the update pass synchronously and drops any pending one.
func (v *View) UpdateNow() {
	if v.Disposed() {
		return
	}
	v.updater.Cancel()
	v.updateEverything()
}

// WidgetMovedOrResized recomputes layout synchronously when the window of
// the root is resized. A nested View is laid out by the enclosing tree.
func (v *View) WidgetMovedOrResized(w native.Widget, moved, resized bool) {
	if resized && v.parent == nil {
		v.UpdateLayout()
		v.recalculateLayout()
	}
	v.Component.WidgetMovedOrResized(w, moved, resized)
}

func (v *View) recalculateLayout() {
	b := v.window.Bounds()
	v.RecalculateLayout(b.Width(), b.Height())
}

func (v *View) updateEverything() {
	if v.parent != nil {
		// Nested since the pass was scheduled.
		v.requestUpdate()
		return
	}
	_, span := v.tracer.Start(context.Background(), "View.updateEverything")
	defer span.End()
	defer errors.Recover("core.View.updateEverything")

	dirty := v.UpdateLayout()
	span.SetAttributes(attribute.Bool("vitro.layout.dirty", dirty))
	if dirty {
		v.recalculateLayout()
	}

	v.UpdateChildren()
	v.window.Repaint()
}

// PopulateFromXML replaces the children of the View with the elements
// built from doc. Documents whose root is not a View leave the View empty
// and return false.
func (v *View) PopulateFromXML(doc *markup.Node) bool {
	_, span := v.tracer.Start(context.Background(), "View.PopulateFromXML")
	defer span.End()

	v.RemoveAllChildren()
	if doc == nil || doc.Tag != ViewTag {
		if doc != nil {
			span.SetAttributes(attribute.String("vitro.markup.root", doc.Tag))
		}
		return false
	}

	v.ctx.Factory().populateElement(v, doc)
	span.SetAttributes(attribute.Int("vitro.markup.children", len(v.children)))
	v.ScheduleUpdate()
	return true
}

// PopulateFromXMLString parses s and populates the View from it. Parse
// errors are reported and leave the View empty.
func (v *View) PopulateFromXMLString(s string) bool {
	doc, err := markup.Parse(s)
	if err != nil {
		v.RemoveAllChildren()
		errors.Report(&errors.VitroError{Op: "core.View.PopulateFromXMLString", Kind: errors.KindMarkup, Tag: ViewTag, Err: err})
		return false
	}
	return v.PopulateFromXML(doc)
}

// PopulateFromXMLResource loads location through the context's loader and
// populates the View from it. Load errors are reported and leave the View
// empty.
func (v *View) PopulateFromXMLResource(location string) bool {
	doc, err := v.ctx.Loader().LoadXML(location)
	if err != nil {
		v.RemoveAllChildren()
		errors.Report(&errors.VitroError{Op: "core.View.PopulateFromXMLResource", Kind: errors.KindResource, Tag: ViewTag, Err: err})
		return false
	}
	return v.PopulateFromXML(doc)
}

// Dispose drops the pending update pass and releases the window.
func (v *View) Dispose() {
	v.updater.Cancel()
	v.Component.Dispose()
}

// Close drops the pending update pass, disposes the children that are not
// stashed and releases the top-level widget.
func (v *View) Close() {
	if v.Disposed() {
		return
	}
	v.RemoveAllChildren()
	v.updater.Cancel()
	v.Dispose()
}
