package testing

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/vitro/pkg/native"
)

// TB is the part of testing.TB that MatchesFile reports through.
type TB interface {
	Helper()
	Name() string
	Errorf(format string, args ...any)
	Fatalf(format string, args ...any)
}

// UpdateSnapshotsEnv names the environment variable that makes MatchesFile
// rewrite golden files instead of comparing against them.
const UpdateSnapshotsEnv = "VITRO_UPDATE_SNAPSHOTS"

// Snapshot captures the native widget tree hosted by the view.
type Snapshot struct {
	Widgets *WidgetNode `json:"widgets"`
}

// WidgetNode represents a node in the serialized widget tree.
type WidgetNode struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Bounds     [4]float64     `json:"bounds"`
	Properties map[string]any `json:"props,omitempty"`
	Children   []*WidgetNode  `json:"children,omitempty"`
}

// CaptureSnapshot captures the current widget tree of the view.
func (t *Tester) CaptureSnapshot() *Snapshot {
	return CaptureWidgets(t.view.Widget())
}

// CaptureWidgets captures the widget tree rooted at root.
func CaptureWidgets(root native.Widget) *Snapshot {
	return &Snapshot{Widgets: captureWidget(root, &nameCounter{})}
}

// MatchesFile fails t unless the snapshot equals the golden file at path.
// With VITRO_UPDATE_SNAPSHOTS=1 in the environment the file is rewritten
// and nothing is compared.
func (s *Snapshot) MatchesFile(t TB, path string) {
	t.Helper()
	hint := fmt.Sprintf("%s=1 go test -run '%s'", UpdateSnapshotsEnv, t.Name())

	if os.Getenv(UpdateSnapshotsEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("writing snapshot: %v", err)
		}
		return
	}

	golden, err := readSnapshot(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		t.Fatalf("no snapshot at %s; record it with\n\t%s", path, hint)
		return
	case err != nil:
		t.Fatalf("reading snapshot: %v", err)
		return
	}
	if diff := s.Diff(golden); diff != "" {
		t.Errorf("widget tree differs from %s:\n%s\naccept the change with\n\t%s", path, diff, hint)
	}
}

// UpdateFile writes the snapshot as indented JSON to path.
func (s *Snapshot) UpdateFile(path string) error {
	data, err := s.encode()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff compares s against the expected snapshot line by line. It returns
// "" when both encode identically.
func (s *Snapshot) Diff(expected *Snapshot) string {
	got, _ := s.encode()
	want, _ := expected.encode()
	if string(got) == string(want) {
		return ""
	}
	return unifiedDiff(string(want), string(got))
}

func (s *Snapshot) encode() ([]byte, error) {
	var b strings.Builder
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}

func readSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	snap := new(Snapshot)
	if err := json.Unmarshal(data, snap); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return snap, nil
}

// nameCounter assigns stable IDs like "Panel#0", "Panel#1".
type nameCounter struct {
	counts map[string]int
}

func (c *nameCounter) next(name string) string {
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	n := c.counts[name]
	c.counts[name] = n + 1
	return fmt.Sprintf("%s#%d", name, n)
}

func captureWidget(w native.Widget, counter *nameCounter) *WidgetNode {
	r := w.Bounds()
	node := &WidgetNode{
		ID:     counter.next(w.Name()),
		Name:   w.Name(),
		Bounds: [4]float64{round2(r.Left), round2(r.Top), round2(r.Width()), round2(r.Height())},
	}
	if props := captureProperties(w); len(props) > 0 {
		node.Properties = props
	}
	for _, child := range w.Children() {
		node.Children = append(node.Children, captureWidget(child, counter))
	}
	return node
}

// captureProperties records the widget state that differs from the
// defaults of a fresh widget.
func captureProperties(w native.Widget) map[string]any {
	props := make(map[string]any)
	if !w.Visible() {
		props["visible"] = false
	}
	if !w.Enabled() {
		props["enabled"] = false
	}
	if a := w.Alpha(); a != 1 {
		props["alpha"] = round2(a)
	}
	if self, children := w.InterceptsMouseClicks(); !self || !children {
		props["intercepts"] = [2]bool{self, children}
	}
	if c := w.Cursor(); c != native.CursorNormal {
		props["cursor"] = c.String()
	}
	for _, id := range []native.ColorID{native.ColorBackground, native.ColorText, native.ColorOutline} {
		if c, ok := w.Color(id); ok {
			props[id.String()+"Color"] = c.String()
		}
	}
	if s := w.DropShadow(); s != nil {
		props["shadow"] = map[string]any{
			"color":   s.Color.String(),
			"radius":  s.Radius,
			"offsetX": s.OffsetX,
			"offsetY": s.OffsetY,
		}
	}
	if t, ok := w.(native.TextWidget); ok {
		props["text"] = t.Text()
		props["font"] = t.Font().String()
	}
	if vp, ok := w.(native.Viewport); ok {
		if o := vp.ScrollOffset(); o.X != 0 || o.Y != 0 {
			props["scroll"] = [2]float64{round2(o.X), round2(o.Y)}
		}
	}
	return props
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// unifiedDiff lists, per line number, the expected line prefixed with "-"
// and the actual one with "+" wherever they differ.
func unifiedDiff(expected, actual string) string {
	want := strings.Split(expected, "\n")
	got := strings.Split(actual, "\n")

	var b strings.Builder
	b.WriteString("--- expected\n+++ actual\n")
	for i := range max(len(want), len(got)) {
		w, hasW := line(want, i)
		g, hasG := line(got, i)
		if hasW && hasG && w == g {
			continue
		}
		if hasW {
			fmt.Fprintf(&b, "-%s\n", w)
		}
		if hasG {
			fmt.Fprintf(&b, "+%s\n", g)
		}
	}
	return b.String()
}

func line(lines []string, i int) (string, bool) {
	if i < len(lines) {
		return lines[i], true
	}
	return "", false
}
