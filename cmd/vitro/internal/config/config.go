package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// FileName is the optional project configuration file.
const FileName = "vitro.yaml"

const (
	defaultWidth  = 800
	defaultHeight = 600
	defaultMain   = "main.xml"
)

// Config represents the optional vitro.yaml configuration.
type Config struct {
	App       AppConfig    `yaml:"app"`
	Window    WindowConfig `yaml:"window"`
	Resources string       `yaml:"resources,omitempty"`
	Styles    []string     `yaml:"styles,omitempty"`
	Main      string       `yaml:"main,omitempty"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
}

// WindowConfig sizes the top-level window.
type WindowConfig struct {
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
}

// Resolved contains resolved configuration values. Paths are absolute.
type Resolved struct {
	Root         string
	ModulePath   string
	AppName      string
	Width        float64
	Height       float64
	ResourceRoot string
	Styles       []string
	Main         string
}

// LoadOptional reads vitro.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads vitro.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modulePath, dir)
	}

	if cfg.Window.Width < 0 || cfg.Window.Height < 0 {
		return nil, fmt.Errorf("window size cannot be negative (got %gx%g)", cfg.Window.Width, cfg.Window.Height)
	}
	width, height := cfg.Window.Width, cfg.Window.Height
	if width == 0 {
		width = defaultWidth
	}
	if height == 0 {
		height = defaultHeight
	}

	resources := filepath.Join(dir, filepath.FromSlash(strings.TrimSpace(cfg.Resources)))

	var styles []string
	for _, s := range cfg.Styles {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		styles = append(styles, filepath.Join(dir, filepath.FromSlash(s)))
	}

	mainDoc := strings.TrimSpace(cfg.Main)
	if mainDoc == "" {
		mainDoc = defaultMain
	}

	return &Resolved{
		Root:         dir,
		ModulePath:   modulePath,
		AppName:      appName,
		Width:        width,
		Height:       height,
		ResourceRoot: resources,
		Styles:       styles,
		Main:         mainDoc,
	}, nil
}

// FindProjectRoot walks up from the current directory to the first
// directory holding vitro.yaml or go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return findProjectRoot(dir)
}

func findProjectRoot(dir string) (string, error) {
	for {
		for _, marker := range []string{FileName, "go.mod"} {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a vitro project (no %s or go.mod found)", FileName)
		}
		dir = parent
	}
}

// modulePath returns the module path declared in dir/go.mod, or "" when
// the project is not a Go module.
func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modulePath != "" {
		if modName, _, ok := module.SplitPathVersion(modulePath); ok {
			parts := strings.Split(modName, "/")
			base = parts[len(parts)-1]
		}
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "vitro_app"
	}
	return base
}
