package telemetry_test

import (
	"bytes"
	"testing"

	"github.com/coil-lang/coilcc/internal/telemetry"
	"github.com/stretchr/testify/assert"
)

func TestNewWritesAtOrAboveConfiguredLevel(t *testing.T) {
	var buf bytes.Buffer
	l := telemetry.New(&buf, "warn")
	l.Info("should be filtered")
	assert.Empty(t, buf.String())

	l.Warn("should appear")
	assert.Contains(t, buf.String(), "should appear")
}

func TestNewDefaultsToInfoOnUnparseableLevel(t *testing.T) {
	var buf bytes.Buffer
	l := telemetry.New(&buf, "not-a-level")
	l.Info("visible at info")
	assert.Contains(t, buf.String(), "visible at info")
}

func TestDiscardDropsEverything(t *testing.T) {
	l := telemetry.Discard()
	assert.NotPanics(t, func() {
		l.Debug("x")
		l.Info("y")
		l.Warn("z")
	})
}

func TestNilLoggerIsSafeToCall(t *testing.T) {
	var l *telemetry.Logger
	assert.NotPanics(t, func() {
		l.Debug("x")
		l.Info("y")
		l.Warn("z")
	})
}
