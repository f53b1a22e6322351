package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omnigui/omnigui/pkg/graphics"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestResolveDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/tools/greeter/v2\n\ngo 1.24\n")

	r, err := Resolve(dir)
	require.NoError(t, err)
	assert.Equal(t, "example.com/tools/greeter/v2", r.ModulePath)
	assert.Equal(t, "greeter", r.AppName)
	assert.Equal(t, "greeter", r.Title)
	assert.Equal(t, DefaultWidth, r.Width)
	assert.Equal(t, DefaultHeight, r.Height)
	assert.Equal(t, BackendRaster, r.Backend)
	assert.Equal(t, DefaultOutput, r.Output)
	assert.Equal(t, 1.0, r.Scale)
	assert.Equal(t, graphics.ColorWhite, r.Background)
	assert.Equal(t, slog.LevelInfo, r.Level)
	assert.Empty(t, r.Source)
}

func TestResolveWithoutGoMod(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sketch")
	require.NoError(t, os.Mkdir(dir, 0o755))

	r, err := Resolve(dir)
	require.NoError(t, err)
	assert.Empty(t, r.ModulePath)
	assert.Equal(t, "sketch", r.AppName)
}

func TestResolveYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, YAMLFile, `
app:
  name: demo
window:
  width: 640
  height: 480
  title: Hello
render:
  backend: Terminal
  scale: 2
  background: "#102030"
log:
  verbose: true
  level: debug
states:
  focused:
    Background: "#ff0000"
`)

	r, err := Resolve(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, YAMLFile), r.Source)
	assert.Equal(t, "demo", r.AppName)
	assert.Equal(t, "Hello", r.Title)
	assert.Equal(t, 640, r.Width)
	assert.Equal(t, 480, r.Height)
	assert.Equal(t, BackendTerminal, r.Backend)
	assert.Equal(t, 2.0, r.Scale)
	assert.Equal(t, graphics.RGB(0x10, 0x20, 0x30), r.Background)
	assert.True(t, r.Verbose)
	assert.Equal(t, slog.LevelDebug, r.Level)
	assert.Equal(t, map[string]map[string]string{"focused": {"Background": "#ff0000"}}, r.States)
}

func TestResolveTOML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, TOMLFile, `
[app]
name = "tomlapp"

[render]
backend = "desktop"
output = "frame.png"

[states.normal]
"Layout.Background" = "white"
`)

	r, err := Resolve(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, TOMLFile), r.Source)
	assert.Equal(t, "tomlapp", r.AppName)
	assert.Equal(t, BackendDesktop, r.Backend)
	assert.Equal(t, "frame.png", r.Output)
	assert.Equal(t, "white", r.States["normal"]["Layout.Background"])
}

func TestYAMLWinsOverTOML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, YAMLFile, "app:\n  name: fromyaml\n")
	writeFile(t, dir, TOMLFile, "[app]\nname = \"fromtoml\"\n")

	r, err := Resolve(dir)
	require.NoError(t, err)
	assert.Equal(t, "fromyaml", r.AppName)
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
	}{
		{"bad yaml", YAMLFile, "app: [unclosed"},
		{"bad toml", TOMLFile, "[app\nname="},
		{"negative width", YAMLFile, "window:\n  width: -1\n"},
		{"negative scale", YAMLFile, "render:\n  scale: -2\n"},
		{"unknown backend", YAMLFile, "render:\n  backend: vulkan\n"},
		{"bad background", YAMLFile, "render:\n  background: mauve-ish\n"},
		{"bad level", YAMLFile, "log:\n  level: loud\n"},
		{"empty state", YAMLFile, "states:\n  focused: {}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, tt.file, tt.body)
			_, err := Resolve(dir)
			assert.Error(t, err)
		})
	}
}

func TestResolveBadGoMod(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "go 1.24\n")
	_, err := Resolve(dir)
	assert.Error(t, err)
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "go.mod", "module example.com/x\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	t.Chdir(nested)

	got, err := FindProjectRoot()
	require.NoError(t, err)
	want, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	gotResolved, err := filepath.EvalSymlinks(got)
	require.NoError(t, err)
	assert.Equal(t, want, gotResolved)
}
