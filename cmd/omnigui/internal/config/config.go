// Package config loads the optional omnigui.yaml or omnigui.toml project
// file and resolves defaults.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/omnigui/omnigui/pkg/graphics"
)

// File names searched in order.
const (
	YAMLFile = "omnigui.yaml"
	TOMLFile = "omnigui.toml"
)

// Backends accepted by render.backend.
const (
	BackendRaster   = "raster"
	BackendTerminal = "terminal"
	BackendDesktop  = "desktop"
)

// Defaults applied by Resolve.
const (
	DefaultWidth      = 320
	DefaultHeight     = 200
	DefaultOutput     = "omnigui.png"
	DefaultBackground = "white"
)

// Config represents the optional project file.
type Config struct {
	App    AppConfig                    `yaml:"app" toml:"app"`
	Window WindowConfig                 `yaml:"window" toml:"window"`
	Render RenderConfig                 `yaml:"render" toml:"render"`
	Log    LogConfig                    `yaml:"log" toml:"log"`
	States map[string]map[string]string `yaml:"states,omitempty" toml:"states,omitempty"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty" toml:"name,omitempty"`
}

// WindowConfig sizes the viewport in layout units.
type WindowConfig struct {
	Width  int    `yaml:"width,omitempty" toml:"width,omitempty"`
	Height int    `yaml:"height,omitempty" toml:"height,omitempty"`
	Title  string `yaml:"title,omitempty" toml:"title,omitempty"`
}

// RenderConfig selects how frames are produced.
type RenderConfig struct {
	Backend    string  `yaml:"backend,omitempty" toml:"backend,omitempty"`
	Output     string  `yaml:"output,omitempty" toml:"output,omitempty"`
	Scale      float64 `yaml:"scale,omitempty" toml:"scale,omitempty"`
	Background string  `yaml:"background,omitempty" toml:"background,omitempty"`
}

// LogConfig controls the error log.
type LogConfig struct {
	Verbose bool   `yaml:"verbose,omitempty" toml:"verbose,omitempty"`
	Level   string `yaml:"level,omitempty" toml:"level,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string                       `yaml:"root"`
	Source     string                       `yaml:"source,omitempty"`
	ModulePath string                       `yaml:"modulePath,omitempty"`
	AppName    string                       `yaml:"appName"`
	Title      string                       `yaml:"title"`
	Width      int                          `yaml:"width"`
	Height     int                          `yaml:"height"`
	Backend    string                       `yaml:"backend"`
	Output     string                       `yaml:"output"`
	Scale      float64                      `yaml:"scale"`
	Background graphics.Color               `yaml:"-"`
	Verbose    bool                         `yaml:"verbose"`
	Level      slog.Level                   `yaml:"-"`
	States     map[string]map[string]string `yaml:"states,omitempty"`
}

// LoadOptional reads omnigui.yaml or, failing that, omnigui.toml from
// dir. It returns the path read, or "" when neither exists.
func LoadOptional(dir string) (*Config, string, error) {
	for _, name := range []string{YAMLFile, TOMLFile} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, "", fmt.Errorf("failed to read %s: %w", name, err)
		}

		var cfg Config
		if name == YAMLFile {
			err = yaml.Unmarshal(data, &cfg)
		} else {
			err = toml.Unmarshal(data, &cfg)
		}
		if err != nil {
			return nil, "", fmt.Errorf("failed to parse %s: %w", name, err)
		}
		return &cfg, path, nil
	}
	return &Config{}, "", nil
}

// Resolve loads the project file (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, source, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	r := &Resolved{
		Root:       dir,
		Source:     source,
		ModulePath: modulePath,
		AppName:    strings.TrimSpace(cfg.App.Name),
		Title:      strings.TrimSpace(cfg.Window.Title),
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Backend:    strings.ToLower(strings.TrimSpace(cfg.Render.Backend)),
		Output:     strings.TrimSpace(cfg.Render.Output),
		Scale:      cfg.Render.Scale,
		Verbose:    cfg.Log.Verbose,
		States:     cfg.States,
	}
	if r.AppName == "" {
		r.AppName = defaultAppName(modulePath, dir)
	}
	if r.Title == "" {
		r.Title = r.AppName
	}
	if r.Width == 0 {
		r.Width = DefaultWidth
	}
	if r.Height == 0 {
		r.Height = DefaultHeight
	}
	if r.Backend == "" {
		r.Backend = BackendRaster
	}
	if r.Output == "" {
		r.Output = DefaultOutput
	}
	if r.Scale == 0 {
		r.Scale = 1
	}

	background := strings.TrimSpace(cfg.Render.Background)
	if background == "" {
		background = DefaultBackground
	}
	if r.Background, err = graphics.ParseColor(background); err != nil {
		return nil, fmt.Errorf("render.background: %w", err)
	}

	if level := strings.TrimSpace(cfg.Log.Level); level != "" {
		if err := r.Level.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("log.level: %w", err)
		}
	}

	if err := r.validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Resolved) validate() error {
	if r.Width < 0 || r.Height < 0 {
		return fmt.Errorf("window size must be positive (got %dx%d)", r.Width, r.Height)
	}
	if r.Scale < 0 {
		return fmt.Errorf("render.scale must be positive (got %g)", r.Scale)
	}
	switch r.Backend {
	case BackendRaster, BackendTerminal, BackendDesktop:
	default:
		return fmt.Errorf("render.backend must be %s, %s or %s (got %q)", BackendRaster, BackendTerminal, BackendDesktop, r.Backend)
	}
	for name, values := range r.States {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("states contains an empty state name")
		}
		if len(values) == 0 {
			return fmt.Errorf("state %s has no properties", name)
		}
	}
	return nil
}

// FindProjectRoot walks up from the current directory to find go.mod,
// falling back to the current directory.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for dir := cwd; ; {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

// modulePath returns the go.mod module path, or "" when dir has no go.mod.
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
		return "omnigui_app"
	}
	return base
}
