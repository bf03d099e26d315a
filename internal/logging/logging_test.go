package logging

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetup(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	t.Setenv("LOG_LEVEL", "WARN")
	t.Setenv("LOG_FORMAT", "json")
	l := Setup()
	assert.Same(t, l, slog.Default())
	assert.IsType(t, &slog.JSONHandler{}, l.Handler())
	assert.False(t, l.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, l.Enabled(context.Background(), slog.LevelWarn))

	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
	l = Setup()
	assert.IsType(t, &slog.TextHandler{}, l.Handler())
	assert.True(t, l.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, l.Enabled(context.Background(), slog.LevelDebug))
}

func TestSetupFrom(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	env := map[string]string{"LOG_LEVEL": "debug", "LOG_FORMAT": "JSON"}
	l := SetupFrom(func(k string) string { return env[k] })
	assert.IsType(t, &slog.JSONHandler{}, l.Handler())
	assert.True(t, l.Enabled(context.Background(), slog.LevelDebug))

	l = SetupFrom(func(string) string { return "" })
	assert.IsType(t, &slog.TextHandler{}, l.Handler())
	assert.False(t, l.Enabled(context.Background(), slog.LevelDebug))
}
