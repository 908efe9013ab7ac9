package slot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/on-the-ground/safe_uninit_go/slot"
)

func TestMarshalLogObject(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)

	port := slot.New[int, slot.ReadWrite](8080)
	var host slot.NoAccessOf[string]
	logger.Info("listening", zap.Object("port", port), zap.Object("host", host))

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()

	assert.Equal(t, map[string]any{
		"initialized": true,
		"capability":  "read_write",
		"value":       8080,
	}, fields["port"])
	assert.Equal(t, map[string]any{
		"initialized": false,
		"capability":  "no_access",
	}, fields["host"])

	assert.True(t, port.Initialized(), "logging must not move the payload out")
}
