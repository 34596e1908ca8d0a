package core

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/go-drift/vitro/pkg/markup"
	"github.com/go-drift/vitro/pkg/native"
	"github.com/go-drift/vitro/pkg/platform"
)

// StyleResolver answers "what is the value of style property name for
// element e". It is consulted on every update pass.
type StyleResolver interface {
	StyleProperty(e Element, name string) Var
}

// StyleResolverFunc adapts a function to the StyleResolver interface.
type StyleResolverFunc func(e Element, name string) Var

// StyleProperty calls f(e, name).
func (f StyleResolverFunc) StyleProperty(e Element, name string) Var {
	return f(e, name)
}

// Dispatcher runs callbacks later on the UI thread.
type Dispatcher interface {
	Dispatch(callback func()) bool
}

// Options configures a Context. Nil fields take defaults.
type Options struct {
	// Loader resolves markup resources. Defaults to a loader that finds
	// nothing.
	Loader markup.Loader
	// Scripts evaluates attribute scripts. Nil disables scripts.
	Scripts ScriptEngine
	// Styles resolves style properties. Nil leaves every property void.
	Styles StyleResolver
	// Dispatcher runs deferred updates. Defaults to a new platform.Loop.
	Dispatcher Dispatcher
	// Toolkit creates native widgets. Defaults to the headless toolkit.
	Toolkit native.Toolkit
	// TracerProvider traces update passes. Defaults to the global provider.
	TracerProvider trace.TracerProvider
}

// Context is the scope shared by every element of an application: the
// elements factory and its stash, and the external collaborators.
type Context struct {
	factory    *ElementsFactory
	loader     markup.Loader
	scripts    ScriptEngine
	styles     StyleResolver
	dispatcher Dispatcher
	toolkit    native.Toolkit
	tracers    trace.TracerProvider
}

// NewContext creates a Context whose factory knows the default elements.
func NewContext(opts Options) *Context {
	ctx := &Context{
		loader:     opts.Loader,
		scripts:    opts.Scripts,
		styles:     opts.Styles,
		dispatcher: opts.Dispatcher,
		toolkit:    opts.Toolkit,
		tracers:    opts.TracerProvider,
	}
	if ctx.loader == nil {
		ctx.loader = markup.FSLoader{}
	}
	if ctx.dispatcher == nil {
		ctx.dispatcher = platform.NewLoop()
	}
	if ctx.toolkit == nil {
		ctx.toolkit = native.Headless{}
	}
	if ctx.tracers == nil {
		ctx.tracers = otel.GetTracerProvider()
	}
	ctx.factory = newElementsFactory(ctx)
	ctx.factory.RegisterDefaultElements()
	return ctx
}

func (c *Context) Factory() *ElementsFactory {
	return c.factory
}

func (c *Context) Loader() markup.Loader {
	return c.loader
}

func (c *Context) Scripts() ScriptEngine {
	return c.scripts
}

func (c *Context) Styles() StyleResolver {
	return c.styles
}

// SetStyles replaces the style resolver, e.g. after a style sheet reload.
func (c *Context) SetStyles(styles StyleResolver) {
	c.styles = styles
}

func (c *Context) Dispatcher() Dispatcher {
	return c.dispatcher
}

func (c *Context) Toolkit() native.Toolkit {
	return c.toolkit
}

func (c *Context) TracerProvider() trace.TracerProvider {
	return c.tracers
}

// Close disposes the stashed elements and forgets the registered tags.
func (c *Context) Close() {
	c.factory.disposeStash()
	c.factory.Reset()
}
