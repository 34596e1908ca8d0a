package core

import (
	"testing"

	"github.com/go-drift/vitro/pkg/errors"
	"github.com/go-drift/vitro/pkg/native"
	"github.com/go-drift/vitro/pkg/platform"
)

// testPanel is a minimal component element used across the package tests.
type testPanel struct {
	Component
	widget  native.Widget
	updates int
	log     *[]string
}

func newTestPanel(ctx *Context) *testPanel {
	p := &testPanel{widget: ctx.Toolkit().NewComponent("Panel")}
	p.InitComponent(p, "Panel", ctx)
	return p
}

func (p *testPanel) Widget() native.Widget {
	return p.widget
}

func (p *testPanel) Update() {
	p.Component.Update()
	p.updates++
	if p.log != nil {
		*p.log = append(*p.log, "update")
	}
}

// testScroll hosts its children in the content widget of a scroll pane.
type testScroll struct {
	Component
	pane native.Viewport
}

func newTestScroll(ctx *Context) *testScroll {
	s := &testScroll{pane: ctx.Toolkit().NewScrollPane("Scroll")}
	s.InitComponent(s, "Scroll", ctx)
	return s
}

func (s *testScroll) Widget() native.Widget {
	return s.pane
}

func (s *testScroll) ContainerWidget() native.Widget {
	return s.pane.Content()
}

// recordingWindow logs repaints of the top-level widget.
type recordingWindow struct {
	*native.Component
	log *[]string
}

func (w *recordingWindow) Repaint() {
	*w.log = append(*w.log, "repaint")
	w.Component.Repaint()
}

type recordingToolkit struct {
	native.Headless
	window *recordingWindow
}

func (t recordingToolkit) NewWindow(string) native.Widget {
	return t.window
}

// boundsRecorder logs bounds notifications.
type boundsRecorder struct {
	log *[]string
}

func (r *boundsRecorder) WidgetMovedOrResized(native.Widget, bool, bool) {
	*r.log = append(*r.log, "bounds")
}

// errorRecorder collects reported errors.
type errorRecorder struct {
	errs   []*errors.VitroError
	panics []*errors.PanicError
}

func (r *errorRecorder) HandleError(err *errors.VitroError) {
	r.errs = append(r.errs, err)
}

func (r *errorRecorder) HandlePanic(err *errors.PanicError) {
	r.panics = append(r.panics, err)
}

func recordErrors(t *testing.T) *errorRecorder {
	t.Helper()
	r := &errorRecorder{}
	errors.SetHandler(r)
	t.Cleanup(func() { errors.SetHandler(nil) })
	return r
}

// newTestContext returns a context with the test elements registered and a
// loop the test pumps by hand.
func newTestContext(t *testing.T, opts Options) (*Context, *platform.Loop) {
	t.Helper()
	loop := platform.NewLoop()
	t.Cleanup(loop.Close)
	opts.Dispatcher = loop
	ctx := NewContext(opts)
	RegisterElement(ctx.Factory(), "Panel", newTestPanel)
	RegisterElement(ctx.Factory(), "Scroll", newTestScroll)
	t.Cleanup(ctx.Close)
	return ctx, loop
}

// styles maps tag to style properties.
type styles map[string]map[string]any

func (s styles) StyleProperty(e Element, name string) Var {
	if props, ok := s[e.Tag()]; ok {
		if v, ok := props[name]; ok {
			return VarOf(v)
		}
	}
	return Void
}
