package core

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/go-drift/vitro/pkg/graphics"
)

func TestViewTracesPopulateAndUpdate(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { provider.Shutdown(context.Background()) })

	ctx, loop := newTestContext(t, Options{TracerProvider: provider})
	v := NewView(ctx)
	v.Widget().SetBounds(graphics.RectFromLTWH(0, 0, 100, 100))
	v.PopulateFromXMLString(`<View><Panel/><Panel/></View>`)
	loop.RunPending()
	v.Update()
	loop.RunPending()

	type span struct {
		Name  string
		Attrs map[attribute.Key]attribute.Value
	}
	var got []span
	for _, s := range recorder.Ended() {
		attrs := make(map[attribute.Key]attribute.Value)
		for _, kv := range s.Attributes() {
			attrs[kv.Key] = kv.Value
		}
		got = append(got, span{Name: s.Name(), Attrs: attrs})
	}

	want := []span{
		{"View.PopulateFromXML", map[attribute.Key]attribute.Value{"vitro.markup.children": attribute.IntValue(2)}},
		{"View.updateEverything", map[attribute.Key]attribute.Value{"vitro.layout.dirty": attribute.BoolValue(true)}},
		{"View.updateEverything", map[attribute.Key]attribute.Value{"vitro.layout.dirty": attribute.BoolValue(false)}},
	}
	if diff := cmp.Diff(want, got, cmp.Comparer(func(a, b attribute.Value) bool { return a == b })); diff != "" {
		t.Errorf("spans mismatch (-want +got):\n%s", diff)
	}
}

func TestRejectedDocumentRecordsRoot(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { provider.Shutdown(context.Background()) })

	ctx, _ := newTestContext(t, Options{TracerProvider: provider})
	v := NewView(ctx)
	if v.PopulateFromXMLString(`<Panel/>`) {
		t.Fatal("foreign root accepted")
	}

	ended := recorder.Ended()
	if len(ended) != 1 {
		t.Fatalf("ended spans = %d, want 1", len(ended))
	}
	for _, kv := range ended[0].Attributes() {
		if kv.Key == "vitro.markup.root" && kv.Value.AsString() == "Panel" {
			return
		}
	}
	t.Errorf("attributes = %v, want vitro.markup.root=Panel", ended[0].Attributes())
}
