package dxfrender

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNopHandler(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		assert.False(t, h.Enabled(context.Background(), level))
	}
	assert.NoError(t, h.Handle(context.Background(), slog.Record{}))
	assert.IsType(t, nopHandler{}, h.WithAttrs([]slog.Attr{slog.String("k", "v")}))
	assert.IsType(t, nopHandler{}, h.WithGroup("g"))
}

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	require.NotNil(t, l)
	assert.False(t, l.Enabled(context.Background(), slog.LevelWarn))
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	SetLogger(custom)
	assert.Same(t, custom, Logger())
	Logger().Info("hello", "key", "value")
	assert.Contains(t, buf.String(), "hello")

	SetLogger(nil)
	require.NotNil(t, Logger())
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}

func TestLoggerConcurrentAccess(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			Logger().Debug("read")
		}()
		go func() {
			defer wg.Done()
			SetLogger(slog.Default())
			SetLogger(nil)
		}()
	}
	wg.Wait()
}
