package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_WritesRoleAndComponent(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger("client", &buf).WithComponent("sync")

	log.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "client", entry["role"])
	assert.Equal(t, "sync", entry["component"])
	assert.Equal(t, "hello", entry["message"])
	assert.Contains(t, entry, "func")
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger("ctx", &buf)

	ctx := log.WithContext(context.Background())
	FromContext(ctx).Info().Msg("from ctx")

	assert.Contains(t, buf.String(), `"role":"ctx"`)
}

func TestFromContext_NoLoggerDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		FromContext(context.Background()).Debug().Msg("noop")
	})
}

func TestNewClientLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")
	log := NewClientLogger("client", path)
	require.NotNil(t, log)

	log.Info().Msg("to file")
	assert.FileExists(t, path)
}

func TestNop_DiscardsOutput(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().Error().Msg("discarded")
		Nop().GetChildLogger().Info().Msg("discarded")
	})
}
