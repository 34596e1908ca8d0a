package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/go-drift/vitro/cmd/vitro/internal/config"
	"github.com/go-drift/vitro/pkg/core"
	"github.com/go-drift/vitro/pkg/elements"
	"github.com/go-drift/vitro/pkg/errors"
	"github.com/go-drift/vitro/pkg/graphics"
	"github.com/go-drift/vitro/pkg/markup"
	"github.com/go-drift/vitro/pkg/platform"
	"github.com/go-drift/vitro/pkg/script"
	"github.com/go-drift/vitro/pkg/style"
)

// session hosts a View on the headless toolkit for one command.
type session struct {
	cfg  *config.Resolved
	loop *platform.Loop
	ctx  *core.Context
	view *core.View
	log  *reportLog
	prev errors.ErrorHandler

	tracer *sdktrace.TracerProvider
}

func openProject() (*config.Resolved, error) {
	root, err := config.FindProjectRoot()
	if err != nil {
		return nil, err
	}
	return config.Resolve(root)
}

// openSession hosts a view for cfg. With trace set, the view's spans are
// printed to stderr.
func openSession(cfg *config.Resolved, trace bool) (*session, error) {
	sheet := &style.Sheet{}
	for _, path := range cfg.Styles {
		s, err := style.LoadFile(path)
		if err != nil {
			return nil, err
		}
		sheet.Append(s)
	}

	s := &session{
		cfg:  cfg,
		loop: platform.NewLoop(),
		log:  &reportLog{next: &errors.LogHandler{Out: stderr}},
		prev: errors.Handler(),
	}
	errors.SetHandler(s.log)

	opts := core.Options{
		Loader:     markup.FSLoader{FS: os.DirFS(cfg.ResourceRoot)},
		Scripts:    script.NewRegistry(),
		Styles:     sheet,
		Dispatcher: s.loop,
	}
	if trace {
		s.tracer = newTraceProvider(cfg.AppName, stderr)
		opts.TracerProvider = s.tracer
	}
	s.ctx = core.NewContext(opts)
	elements.RegisterAll(s.ctx.Factory())

	s.view = core.NewView(s.ctx)
	s.view.Widget().SetBounds(graphics.RectFromLTWH(0, 0, cfg.Width, cfg.Height))
	s.view.Widget().SetVisible(true)
	s.loop.RunPending()
	return s, nil
}

// load populates the view from the resource at location and runs the
// first update pass.
func (s *session) load(location string) error {
	if !s.view.PopulateFromXMLResource(location) {
		return fmt.Errorf("%s: document rejected", location)
	}
	s.loop.RunPending()
	return nil
}

func (s *session) close() {
	s.view.Close()
	s.ctx.Close()
	s.loop.Close()
	errors.SetHandler(s.prev)
	if s.tracer != nil {
		s.tracer.Shutdown(context.Background())
	}
}

// reportLog counts what was reported and forwards it.
type reportLog struct {
	mu     sync.Mutex
	errors int
	panics int
	next   errors.ErrorHandler
}

func (l *reportLog) HandleError(err *errors.VitroError) {
	l.mu.Lock()
	l.errors++
	l.mu.Unlock()
	l.next.HandleError(err)
}

func (l *reportLog) HandlePanic(err *errors.PanicError) {
	l.mu.Lock()
	l.panics++
	l.mu.Unlock()
	l.next.HandlePanic(err)
}

// count returns the number of errors and panics reported so far.
func (l *reportLog) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.errors + l.panics
}

// dumpElements writes the element tree rooted at e, one element per line.
func dumpElements(w io.Writer, e core.Element, depth int) {
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString("<" + e.Tag())
	names := e.AttributeNames()
	slices.Sort(names)
	for _, name := range names {
		fmt.Fprintf(&b, " %s=%q", name, e.Attribute(name).String())
	}
	b.WriteString(">")
	fmt.Fprintln(w, b.String())
	for _, child := range e.Children() {
		dumpElements(w, child, depth+1)
	}
}
