package testing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/vitro/pkg/graphics"
)

func TestCaptureSnapshot_WidgetTree(t *testing.T) {
	tester := NewTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 100, Height: 40})
	tester.SetStyles("Label:\n  color: white\n")
	tester.Load(`<View><Label text="Hi">Hi</Label></View>`)

	root := tester.CaptureSnapshot().Widgets
	if root == nil {
		t.Fatal("expected a widget tree")
	}
	if root.ID != "View#0" || len(root.Children) != 1 {
		t.Fatalf("root = %s with %d children", root.ID, len(root.Children))
	}

	label := root.Children[0]
	if label.ID != "Label#0" {
		t.Errorf("ID = %q, want Label#0", label.ID)
	}
	if label.Bounds != [4]float64{0, 0, 100, 40} {
		t.Errorf("Bounds = %v", label.Bounds)
	}
	want := map[string]any{
		"text":      "Hi",
		"font":      "default 15",
		"textColor": "#ffffffff",
	}
	if diff := cmp.Diff(want, label.Properties); diff != "" {
		t.Errorf("props mismatch (-want +got):\n%s", diff)
	}
}

func TestSnapshotDiff(t *testing.T) {
	tester := NewTesterWithT(t)

	tester.Load(`<View><Panel/></View>`)
	one, again := tester.CaptureSnapshot(), tester.CaptureSnapshot()
	if diff := one.Diff(again); diff != "" {
		t.Errorf("identical trees differ:\n%s", diff)
	}

	tester.Load(`<View><Panel/><Panel/></View>`)
	two := tester.CaptureSnapshot()
	diff := two.Diff(one)
	if !strings.HasPrefix(diff, "--- expected\n+++ actual\n") || !strings.Contains(diff, `+        "id": "Panel#1",`) {
		t.Errorf("diff =\n%s", diff)
	}
}

func TestSnapshotUpdateFileRoundTrips(t *testing.T) {
	t.Setenv(UpdateSnapshotsEnv, "")
	tester := NewTesterWithT(t)
	tester.Load(`<View><Button text="Ok">Ok</Button></View>`)
	snap := tester.CaptureSnapshot()

	path := filepath.Join(t.TempDir(), "testdata", "button.snapshot.json")
	if err := snap.UpdateFile(path); err != nil {
		t.Fatal(err)
	}
	snap.MatchesFile(t, path)
}

func TestSnapshotMatchesFile(t *testing.T) {
	tester := NewTesterWithT(t)
	tester.Load(`<View><Label text="one">one</Label></View>`)
	recorded := tester.CaptureSnapshot()
	tester.Load(`<View><Label text="two">two</Label></View>`)
	changed := tester.CaptureSnapshot()

	tests := []struct {
		name       string
		update     string
		file       bool
		snap       *Snapshot
		wantFatal  int
		wantErrors int
		wantFile   bool
	}{
		{name: "equal", file: true, snap: recorded, wantFile: true},
		{name: "changed", file: true, snap: changed, wantErrors: 1, wantFile: true},
		{name: "missing", snap: recorded, wantFatal: 1},
		{name: "update mode writes", update: "1", snap: changed, wantFile: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(UpdateSnapshotsEnv, tt.update)
			path := filepath.Join(t.TempDir(), "snap.json")
			if tt.file {
				if err := recorded.UpdateFile(path); err != nil {
					t.Fatal(err)
				}
			}

			rec := &recorder{name: t.Name()}
			tt.snap.MatchesFile(rec, path)
			if rec.fatals != tt.wantFatal || rec.errors != tt.wantErrors {
				t.Errorf("fatals, errors = %d, %d; want %d, %d", rec.fatals, rec.errors, tt.wantFatal, tt.wantErrors)
			}
			if _, err := os.Stat(path); (err == nil) != tt.wantFile {
				t.Errorf("file exists = %v, want %v", err == nil, tt.wantFile)
			}
		})
	}
}

func TestUnifiedDiff(t *testing.T) {
	tests := []struct {
		expected, actual, want string
	}{
		{"a\nb", "a\nb", "--- expected\n+++ actual\n"},
		{"a\nb\nc", "a\nx\nc\nd", "--- expected\n+++ actual\n-b\n+x\n+d\n"},
		{"a\n", "a", "--- expected\n+++ actual\n-\n"},
	}
	for _, tt := range tests {
		if got := unifiedDiff(tt.expected, tt.actual); got != tt.want {
			t.Errorf("unifiedDiff(%q, %q) = %q, want %q", tt.expected, tt.actual, got, tt.want)
		}
	}
}

// recorder counts the failures MatchesFile reports.
type recorder struct {
	name   string
	fatals int
	errors int
}

func (r *recorder) Helper()               {}
func (r *recorder) Name() string          { return r.name }
func (r *recorder) Errorf(string, ...any) { r.errors++ }
func (r *recorder) Fatalf(string, ...any) { r.fatals++ }
