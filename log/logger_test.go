package log

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLogger(t *testing.T) {
	t.Run("writes json to a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sim.log")
		logger, closeLog, err := New(Config{Level: "debug", Format: "json", OutputFile: path})
		require.NoError(t, err)

		logger.Debug("reference processed", zap.Int("page", 4))
		require.NoError(t, closeLog())

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(string(data))), &entry))
		assert.Equal(t, "DEBUG", entry["level"])
		assert.Equal(t, "reference processed", entry["msg"])
		assert.Equal(t, "pagesim", entry["service"])
		assert.EqualValues(t, 4, entry["page"])
	})

	t.Run("level filters entries", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sim.log")
		logger, closeLog, err := New(Config{Level: "warn", Format: "console", OutputFile: path})
		require.NoError(t, err)

		logger.Info("hidden")
		logger.Warn("shown")
		require.NoError(t, closeLog())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "hidden")
		assert.Contains(t, string(data), "shown")
	})

	t.Run("invalid level falls back to info", func(t *testing.T) {
		logger, closeLog, err := New(Config{Level: "loud", OutputFile: filepath.Join(t.TempDir(), "sim.log")})
		require.NoError(t, err)
		defer closeLog()
		assert.True(t, logger.Core().Enabled(zap.InfoLevel))
		assert.False(t, logger.Core().Enabled(zap.DebugLevel))
	})

	t.Run("unwritable output", func(t *testing.T) {
		_, _, err := New(Config{OutputFile: filepath.Join(t.TempDir(), "missing", "sim.log")})
		assert.ErrorContains(t, err, "failed to open log file")
	})

	t.Run("default config", func(t *testing.T) {
		logger, closeLog, err := New(DefaultConfig())
		require.NoError(t, err)
		assert.False(t, logger.Core().Enabled(zap.InfoLevel))
		assert.NoError(t, closeLog(), "console output is never closed")
		assert.NoError(t, closeLog())
	})

	t.Run("close releases the output file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sim.log")
		logger, closeLog, err := New(Config{Level: "info", Format: "console", OutputFile: path})
		require.NoError(t, err)

		logger.Info("before close")
		require.NoError(t, closeLog())
		assert.ErrorIs(t, closeLog(), os.ErrClosed, "the file must already be closed")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "before close")
	})
}
