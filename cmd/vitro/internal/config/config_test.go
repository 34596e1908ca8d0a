package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "go.mod"), "module example.com/acme/dashboard/v2\n\ngo 1.25\n")

	got, err := Resolve(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := &Resolved{
		Root:         dir,
		ModulePath:   "example.com/acme/dashboard/v2",
		AppName:      "dashboard",
		Width:        defaultWidth,
		Height:       defaultHeight,
		ResourceRoot: dir,
		Main:         defaultMain,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveWithoutModule(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "kiosk")
	writeFile(t, filepath.Join(dir, FileName), "window: {width: 320}\n")

	got, err := Resolve(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got.ModulePath != "" || got.AppName != "kiosk" {
		t.Errorf("ModulePath, AppName = %q, %q, want \"\", kiosk", got.ModulePath, got.AppName)
	}
	if got.Width != 320 || got.Height != defaultHeight {
		t.Errorf("size = %vx%v, want 320x%d", got.Width, got.Height, defaultHeight)
	}
}

func TestResolveFromFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "go.mod"), "module example.com/demo\n")
	writeFile(t, filepath.Join(dir, FileName), `app:
  name: Demo
window:
  width: 1024
  height: 768
resources: ui
styles:
  - styles/base.yaml
  - ""
  - styles/dark.yaml
main: home.xml
`)

	got, err := Resolve(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := &Resolved{
		Root:         dir,
		ModulePath:   "example.com/demo",
		AppName:      "Demo",
		Width:        1024,
		Height:       768,
		ResourceRoot: filepath.Join(dir, "ui"),
		Styles: []string{
			filepath.Join(dir, "styles", "base.yaml"),
			filepath.Join(dir, "styles", "dark.yaml"),
		},
		Main: "home.xml",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name    string
		files   map[string]string
		wantErr string
	}{
		{"bad yaml", map[string]string{FileName: "window: [1, 2"}, "failed to parse"},
		{"negative size", map[string]string{FileName: "window: {width: -1}"}, "negative"},
		{"empty go.mod", map[string]string{"go.mod": "go 1.25\n"}, "module path"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, data := range tt.files {
				writeFile(t, filepath.Join(dir, name), data)
			}
			_, err := Resolve(dir)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Resolve() error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, FileName), "")
	nested := filepath.Join(root, "ui", "screens")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := findProjectRoot(nested)
	if err != nil {
		t.Fatal(err)
	}
	if got != root {
		t.Errorf("findProjectRoot() = %q, want %q", got, root)
	}
}

func TestDefaultAppName(t *testing.T) {
	tests := []struct {
		modulePath string
		dir        string
		want       string
	}{
		{"example.com/acme/shop", "/src/x", "shop"},
		{"example.com/acme/shop/v3", "/src/x", "shop"},
		{"", "/src/kiosk", "kiosk"},
		{"", "/", "vitro_app"},
	}
	for _, tt := range tests {
		if got := defaultAppName(tt.modulePath, filepath.FromSlash(tt.dir)); got != tt.want {
			t.Errorf("defaultAppName(%q, %q) = %q, want %q", tt.modulePath, tt.dir, got, tt.want)
		}
	}
}
