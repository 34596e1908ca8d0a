package testing

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"
	"testing"

	"github.com/go-drift/vitro/pkg/core"
	"github.com/go-drift/vitro/pkg/elements"
	vitroerrors "github.com/go-drift/vitro/pkg/errors"
	"github.com/go-drift/vitro/pkg/graphics"
	"github.com/go-drift/vitro/pkg/markup"
	"github.com/go-drift/vitro/pkg/platform"
	"github.com/go-drift/vitro/pkg/script"
	"github.com/go-drift/vitro/pkg/style"
)

const (
	// DefaultTestWidth is the default width of the test window.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default height of the test window.
	DefaultTestHeight = 600
	// DefaultSettlePasses bounds PumpAndSettle when no limit is given.
	DefaultSettlePasses = 100
)

// ErrSettleTimeout is returned when PumpAndSettle exceeds its pass limit.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: loop did not settle")

// Tester hosts a View on the headless toolkit with the stock elements, a
// style sheet and a script registry. The update loop only runs when the
// test pumps it.
type Tester struct {
	ctx       *core.Context
	loop      *platform.Loop
	view      *core.View
	scripts   *script.Registry
	sheet     *style.Sheet
	resources fs.FS
	size      graphics.Size

	log         *ErrorLog
	prevHandler vitroerrors.ErrorHandler
	closed      bool
}

// NewTester creates a tester with an empty view at the default size.
// Call Cleanup() when done, or use NewTesterWithT() instead.
func NewTester() *Tester {
	t := &Tester{
		loop:    platform.NewLoop(),
		scripts: script.NewRegistry(),
		sheet:   &style.Sheet{},
		size:    graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight},
		log:     &ErrorLog{},
	}
	t.prevHandler = vitroerrors.Handler()
	vitroerrors.SetHandler(t.log)

	t.ctx = core.NewContext(core.Options{
		Loader:     markup.LoaderFunc(t.loadResource),
		Scripts:    t.scripts,
		Styles:     t.sheet,
		Dispatcher: t.loop,
	})
	elements.RegisterAll(t.ctx.Factory())

	t.view = core.NewView(t.ctx)
	t.view.Widget().SetBounds(graphics.RectFromLTWH(0, 0, t.size.Width, t.size.Height))
	t.loop.RunPending()
	return t
}

// NewTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewTesterWithT(t testing.TB) *Tester {
	tester := NewTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup closes the view and the loop and restores the previous global
// error handler. Must be called if not using NewTesterWithT.
func (t *Tester) Cleanup() {
	if t.closed {
		return
	}
	t.closed = true
	t.view.Close()
	t.ctx.Close()
	t.loop.Close()
	vitroerrors.SetHandler(t.prevHandler)
}

// Context returns the context shared by every element of the tester.
func (t *Tester) Context() *core.Context {
	return t.ctx
}

// Loop returns the loop running the deferred update passes.
func (t *Tester) Loop() *platform.Loop {
	return t.loop
}

// View returns the root element.
func (t *Tester) View() *core.View {
	return t.view
}

// Scripts returns the registry evaluating attribute scripts, so tests can
// register their own functions.
func (t *Tester) Scripts() *script.Registry {
	return t.scripts
}

// Errors returns the errors reported since the tester was created.
func (t *Tester) Errors() *ErrorLog {
	return t.log
}

// Size returns the size of the test window.
func (t *Tester) Size() graphics.Size {
	return t.size
}

// SetSize resizes the test window and runs the resulting layout pass.
func (t *Tester) SetSize(size graphics.Size) {
	t.size = size
	t.view.Widget().SetBounds(graphics.RectFromLTWH(0, 0, size.Width, size.Height))
	t.Pump()
}

// SetStyles replaces the style sheet with the parsed YAML source and
// schedules an update pass.
func (t *Tester) SetStyles(src string) error {
	sheet, err := style.Parse([]byte(src))
	if err != nil {
		return err
	}
	*t.sheet = *sheet
	t.view.ScheduleUpdate()
	return nil
}

// SetResources sets the file system LoadResource reads documents from.
func (t *Tester) SetResources(fsys fs.FS) {
	t.resources = fsys
}

func (t *Tester) loadResource(location string) (*markup.Node, error) {
	return markup.FSLoader{FS: t.resources}.LoadXML(location)
}

// Load replaces the content of the view with the markup document src and
// pumps the first update pass.
func (t *Tester) Load(src string) error {
	mark := t.log.Len()
	if !t.view.PopulateFromXMLString(src) {
		return t.log.since(mark, "Load")
	}
	t.Pump()
	return nil
}

// LoadResource replaces the content of the view with the document at
// location in the resource file system.
func (t *Tester) LoadResource(location string) error {
	mark := t.log.Len()
	if !t.view.PopulateFromXMLResource(location) {
		return t.log.since(mark, "LoadResource")
	}
	t.Pump()
	return nil
}

// Pump runs the tasks queued on the loop, including a pending update pass,
// and returns how many ran.
func (t *Tester) Pump() int {
	return t.loop.RunPending()
}

// PumpAndSettle pumps until nothing is queued or maxPasses pumps have run.
// A maxPasses of zero or less uses DefaultSettlePasses.
func (t *Tester) PumpAndSettle(maxPasses int) error {
	if maxPasses <= 0 {
		maxPasses = DefaultSettlePasses
	}
	for range maxPasses {
		t.Pump()
		if t.loop.Pending() == 0 {
			return nil
		}
	}
	return ErrSettleTimeout
}

// Find evaluates a finder against the current element tree.
func (t *Tester) Find(finder Finder) FinderResult {
	return FinderResult{
		elements: finder.Evaluate(t.view),
		finder:   finder,
	}
}

// ErrorLog is an error handler that keeps what was reported.
type ErrorLog struct {
	mu     sync.Mutex
	errs   []*vitroerrors.VitroError
	panics []*vitroerrors.PanicError
}

func (l *ErrorLog) HandleError(err *vitroerrors.VitroError) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errs = append(l.errs, err)
}

func (l *ErrorLog) HandlePanic(err *vitroerrors.PanicError) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.panics = append(l.panics, err)
}

// Errors returns a copy of the reported errors.
func (l *ErrorLog) Errors() []*vitroerrors.VitroError {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]*vitroerrors.VitroError(nil), l.errs...)
}

// Panics returns a copy of the recovered panics.
func (l *ErrorLog) Panics() []*vitroerrors.PanicError {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]*vitroerrors.PanicError(nil), l.panics...)
}

// Len returns the number of reported errors.
func (l *ErrorLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.errs)
}

// Reset forgets everything reported so far.
func (l *ErrorLog) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errs = nil
	l.panics = nil
}

// since returns the errors reported after mark joined into one error.
func (l *ErrorLog) since(mark int, op string) error {
	errs := l.Errors()
	if mark >= len(errs) {
		return fmt.Errorf("%s: view rejected the document", op)
	}
	joined := make([]error, 0, len(errs)-mark)
	for _, err := range errs[mark:] {
		joined = append(joined, err)
	}
	return errors.Join(joined...)
}
