package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

// spanPrinter is a SpanExporter that writes one line per ended span.
type spanPrinter struct {
	mu  sync.Mutex
	out io.Writer
}

func (p *spanPrinter) ExportSpans(_ context.Context, spans []sdktrace.ReadOnlySpan) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, s := range spans {
		var b strings.Builder
		fmt.Fprintf(&b, "trace: %s %s", s.Name(), s.EndTime().Sub(s.StartTime()))
		for _, kv := range s.Attributes() {
			fmt.Fprintf(&b, " %s=%s", kv.Key, kv.Value.Emit())
		}
		if _, err := fmt.Fprintln(p.out, b.String()); err != nil {
			return err
		}
	}
	return nil
}

func (p *spanPrinter) Shutdown(context.Context) error { return nil }

// newTraceProvider returns a provider that prints spans of the app to out
// as soon as they end.
func newTraceProvider(appName string, out io.Writer) *sdktrace.TracerProvider {
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(appName),
	)
	return sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(&spanPrinter{out: out}),
		sdktrace.WithResource(res),
	)
}
