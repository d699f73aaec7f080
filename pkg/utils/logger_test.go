package utils

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLogger_WritesFileAndEcho(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	var echo bytes.Buffer

	logger, err := NewLogger(LoggerOptions{Path: dir, Name: "test", Echo: &echo})
	require.NoError(t, err)

	logger.Info("allocation finished", zap.Int("assigned", 3))
	logger.Debug("hidden at info level")
	require.NoError(t, logger.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(echo.Bytes()), &entry))
	assert.Equal(t, "allocation finished", entry["msg"])
	assert.Equal(t, float64(3), entry["assigned"])
	assert.Contains(t, entry, "timestamp")
	assert.NotContains(t, echo.String(), "hidden at info level")

	data, err := os.ReadFile(filepath.Join(dir, "test.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "allocation finished")
}

func TestNewLogger_Debug(t *testing.T) {
	var echo bytes.Buffer

	logger, err := NewLogger(LoggerOptions{Debug: true, Echo: &echo})
	require.NoError(t, err)

	logger.Debug("PNR assigned")
	require.NoError(t, logger.Sync())

	assert.Contains(t, echo.String(), "PNR assigned")
	assert.Contains(t, echo.String(), "DEBUG")
}
