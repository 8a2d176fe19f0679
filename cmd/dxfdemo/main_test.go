package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wieslawsoltes/DxfParser-sub001/config"
	"github.com/wieslawsoltes/DxfParser-sub001/recording"
)

func TestRunWritesRecordingAndImage(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Width, cfg.Height = 320, 240
	cfg.Output = filepath.Join(dir, "demo.dxfr")
	pngPath := filepath.Join(dir, "demo.png")

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, run(cfg, pngPath, "raster", log))

	data, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	rec, err := recording.Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, 320, rec.Width)
	assert.Positive(t, rec.Count(recording.CmdStroke))
	assert.Positive(t, rec.Count(recording.CmdFill))
	assert.Equal(t, 1, rec.Count(recording.CmdPoint))
	assert.Positive(t, rec.Count(recording.CmdText))
	assert.GreaterOrEqual(t, rec.Stats.Inserts, 7, "one array of three windows, two panes each")

	img, err := os.ReadFile(pngPath)
	require.NoError(t, err)
	assert.Equal(t, "\x89PNG", string(img[:4]))
}

func TestRunUnknownBackend(t *testing.T) {
	cfg := config.Default()
	cfg.Output = filepath.Join(t.TempDir(), "demo.dxfr")
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	err := run(cfg, filepath.Join(t.TempDir(), "x.png"), "nope", log)
	assert.ErrorIs(t, err, recording.ErrUnknownBackend)
}
