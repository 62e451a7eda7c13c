package env

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "grid", cfg.Name)
	assert.False(t, cfg.Checks)
	assert.Nil(t, cfg.Logger)
}

func TestNewAppliesOptions(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	e := New(WithName("model"), WithChecks(true), WithLogger(logger))
	assert.Equal(t, "model", e.Name())
	assert.True(t, e.Checks())
	assert.NotEqual(t, uuid.Nil, e.ID())

	e.Logger().Debug("hello")
	assert.Contains(t, buf.String(), "env=model")
	assert.Contains(t, buf.String(), e.ID().String())
}

func TestDistinctIdentities(t *testing.T) {
	a, b := New(), New()
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Contains(t, a.String(), a.ID().String())
}

func TestNilEnv(t *testing.T) {
	var e *Env
	assert.False(t, e.Checks())
	assert.Equal(t, uuid.Nil, e.ID())
	assert.Equal(t, "grid", e.Name())
	assert.NotNil(t, e.Logger())
	e.Logger().Info("discarded")
}
