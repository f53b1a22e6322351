package cmd

import (
	"bytes"
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/omnigui/omnigui/pkg/errors"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var out bytes.Buffer
	prevOut, prevErr := stdout, stderr
	stdout, stderr = &out, &bytes.Buffer{}
	t.Cleanup(func() {
		stdout, stderr = prevOut, prevErr
		errors.SetHandler(nil)
		errors.SetLogger(nil)
	})
	return &out
}

func project(t *testing.T, yamlBody string) string {
	t.Helper()
	dir := t.TempDir()
	if yamlBody != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "omnigui.yaml"), []byte(yamlBody), 0o644))
	}
	return dir
}

func pngSize(t *testing.T, path string) (int, int) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	return cfg.Width, cfg.Height
}

func TestHelpAndVersion(t *testing.T) {
	out := capture(t)

	require.NoError(t, execute(nil))
	assert.Contains(t, out.String(), "render")
	assert.Contains(t, out.String(), "desktop")

	out.Reset()
	require.NoError(t, execute([]string{"--version"}))
	assert.Contains(t, out.String(), Version)

	out.Reset()
	require.NoError(t, execute([]string{"render", "--help"}))
	assert.Contains(t, out.String(), "omnigui render")
}

func TestUnknownCommand(t *testing.T) {
	capture(t)
	assert.Error(t, execute([]string{"paint"}))
}

func TestDirFlagRequiresValue(t *testing.T) {
	capture(t)
	assert.Error(t, execute([]string{"--dir"}))
}

func TestRender(t *testing.T) {
	out := capture(t)
	dir := project(t, "app:\n  name: demo\nwindow:\n  width: 80\n  height: 40\n")

	require.NoError(t, execute([]string{"--dir", dir, "render", "--out", "frame.png"}))
	path := filepath.Join(dir, "frame.png")
	w, h := pngSize(t, path)
	assert.Equal(t, 80, w)
	assert.Equal(t, 40, h)
	assert.Contains(t, out.String(), "Wrote "+path)
}

func TestRenderScaleAndJSON(t *testing.T) {
	out := capture(t)
	dir := project(t, "")

	require.NoError(t, execute([]string{"--dir=" + dir, "render", "--width", "50", "--height", "30", "--scale", "2", "--json"}))
	w, h := pngSize(t, filepath.Join(dir, "omnigui.png"))
	assert.Equal(t, 100, w)
	assert.Equal(t, 60, h)

	var snap struct {
		FrameID uint64 `json:"frameId"`
		Nodes   int    `json:"nodes"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &snap))
	assert.Equal(t, uint64(1), snap.FrameID)
	assert.Equal(t, 5, snap.Nodes)
}

func TestRenderState(t *testing.T) {
	capture(t)
	dir := project(t, "")
	assert.NoError(t, execute([]string{"--dir", dir, "render", "--state", "focused"}))
	assert.Error(t, execute([]string{"--dir", dir, "render", "--state", "bogus"}))
}

func TestRenderRejectsBadFlags(t *testing.T) {
	capture(t)
	dir := project(t, "")
	assert.Error(t, execute([]string{"--dir", dir, "render", "--width", "-3"}))
	assert.Error(t, execute([]string{"--dir", dir, "render", "--scale", "-1"}))
	assert.Error(t, execute([]string{"--dir", dir, "render", "--frobnicate"}))
}

func TestRenderBadConfig(t *testing.T) {
	capture(t)
	dir := project(t, "render:\n  backend: vulkan\n")
	assert.Error(t, execute([]string{"--dir", dir, "render"}))
}

func TestConfig(t *testing.T) {
	out := capture(t)
	dir := project(t, "app:\n  name: printed\nrender:\n  background: black\nlog:\n  level: warn\n")

	require.NoError(t, execute([]string{"--dir", dir, "config"}))

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "printed", got["appName"])
	assert.Equal(t, "raster", got["backend"])
	assert.Equal(t, "#ff000000", got["background"])
	assert.Equal(t, "WARN", got["level"])
	assert.Equal(t, 320, got["width"])

	assert.Error(t, execute([]string{"--dir", dir, "config", "extra"}))
}
