package config

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dxfrender "github.com/wieslawsoltes/DxfParser-sub001"
	"github.com/wieslawsoltes/DxfParser-sub001/geom"
	"github.com/wieslawsoltes/DxfParser-sub001/scene"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "render.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, dxfrender.DefaultWidth, cfg.Width)
	assert.Equal(t, dxfrender.DefaultHeight, cfg.Height)
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, `
width: 640
height: 480
margin: 0.1
layout: Layout1
visual_style: x-ray
highlight: "#ff0000"
selection: [1A, 2B]
view:
  center_x: 10
  center_y: 20
  height: 50
  rotation: 90
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 480, cfg.Height)
	assert.InDelta(t, 0.1, cfg.Margin, 1e-12)
	assert.Equal(t, "Layout1", cfg.Layout)
	assert.Equal(t, "x-ray", cfg.VisualStyle)
	assert.Equal(t, []string{"1A", "2B"}, cfg.Selection)
	assert.Equal(t, ViewConfig{CenterX: 10, CenterY: 20, Height: 50, Rotation: 90}, cfg.View)
	assert.Equal(t, "info", cfg.LogLevel, "unset keys keep defaults")
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "width: 640\nworkers: 2\n")
	t.Setenv("DXFRENDER_WIDTH", "320")
	t.Setenv("DXFRENDER_SELECTION", "AA,BB")
	t.Setenv("DXFRENDER_VIEW_HEIGHT", "12.5")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 320, cfg.Width)
	assert.Equal(t, 2, cfg.Workers, "file value survives when env is unset")
	assert.Equal(t, []string{"AA", "BB"}, cfg.Selection)
	assert.InDelta(t, 12.5, cfg.View.Height, 1e-12)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown key", "colour: red\n"},
		{"bad type", "width: wide\n"},
		{"zero width", "width: 0\n"},
		{"margin too large", "margin: 0.5\n"},
		{"negative workers", "workers: -1\n"},
		{"bad highlight", "highlight: nope\n"},
		{"bad log level", "log_level: loud\n"},
		{"negative view height", "view: {height: -1}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidateWrapsErrInvalid(t *testing.T) {
	cfg := Default()
	cfg.Height = -3
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := RenderConfig{LogLevel: tt.in}.Level()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoggerHonorsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := RenderConfig{LogLevel: "warn"}.Logger(&buf)
	assert.False(t, l.Enabled(context.Background(), slog.LevelInfo))
	l.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestOptionsDriveRender(t *testing.T) {
	cfg := Default()
	cfg.Width, cfg.Height = 200, 100
	cfg.Highlight = "#00ff00"
	cfg.Selection = []string{"L1"}
	cfg.View = ViewConfig{CenterX: 0, CenterY: 0, Height: 10}

	opts, err := cfg.Options()
	require.NoError(t, err)

	s := &scene.Scene{
		Entities: []scene.Entity{
			&scene.Line{Common: scene.Common{Handle: "L1", Layer: "0"}, Start: geom.V3(-1, 0, 0), End: geom.V3(1, 0, 0)},
		},
	}
	f, err := dxfrender.Render(s, opts...)
	require.NoError(t, err)
	require.Len(t, f.Polylines, 1)
	assert.Equal(t, 200, f.View.Width)
	assert.Equal(t, 100, f.View.Height)
	assert.True(t, f.Polylines[0].Highlighted)
	assert.Equal(t, uint8(255), f.Polylines[0].Color.G)
	assert.InDelta(t, 10.0, f.View.Scale, 1e-9)
}

func TestOptionsShaping(t *testing.T) {
	cfg := Default()
	cfg.Shaping = true
	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.NotEmpty(t, opts)

	cfg.Font = filepath.Join(t.TempDir(), "missing.ttf")
	_, err = cfg.Options()
	assert.ErrorIs(t, err, os.ErrNotExist)
}
