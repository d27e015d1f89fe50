package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_Modes(t *testing.T) {
	for _, mode := range []string{"dev", "prod", "production", ""} {
		l, err := New(Options{Mode: mode, Level: "info"})
		require.NoError(t, err, mode)
		require.NotNil(t, l.SugaredLogger)
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(Options{Mode: "dev", Level: "loud"})

	assert.Error(t, err)
}

func TestLogger_With_AddsFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := &Logger{SugaredLogger: zap.New(core).Sugar()}

	l.With("component", "mediator").Warn("publish failed", "event_id", "e-1")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "publish failed", entries[0].Message)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "mediator", ctx["component"])
	assert.Equal(t, "e-1", ctx["event_id"])
}

func TestLogger_Component_AddsComponentField(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := &Logger{SugaredLogger: zap.New(core).Sugar()}

	l.Component("outbox_relay").Info("batch processed")

	require.Len(t, logs.All(), 1)
	assert.Equal(t, "outbox_relay", logs.All()[0].ContextMap()["component"])
}

func TestParseLevel(t *testing.T) {
	lvl, err := parseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, lvl)

	lvl, err = parseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, zapcore.WarnLevel, lvl)
}

func TestNewNop_DoesNotPanic(t *testing.T) {
	l := NewNop()

	assert.NotPanics(t, func() {
		l.Info("hello", "k", "v")
		l.Sync()
	})
}
