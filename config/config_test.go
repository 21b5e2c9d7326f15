package config

import (
	"os"
	"pagesim/file"
	"pagesim/frame"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pagesim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestDefault(t *testing.T) {
	config := Default()
	require.NoError(t, config.Validate())
	assert.Equal(t, frame.FIFO, config.ParsedPolicy())
	assert.Equal(t, file.DefaultMaxReferences, config.MaxReferences)
	assert.Equal(t, "warn", config.Log.Level)
}

func TestLoad(t *testing.T) {
	t.Run("overrides defaults", func(t *testing.T) {
		path := writeConfig(t, `
frames: 4
policy: CLOCK
trace_file: refs.txt
metrics_file: /tmp/pagesim.prom
log:
  level: debug
  format: json
`)
		config, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, 4, config.Frames)
		assert.Equal(t, frame.Clock, config.ParsedPolicy())
		assert.Equal(t, "refs.txt", config.TraceFile)
		assert.Equal(t, "/tmp/pagesim.prom", config.MetricsFile)
		assert.Equal(t, file.DefaultMaxReferences, config.MaxReferences, "unset keys keep their default")
		assert.Equal(t, "debug", config.Log.Level)
		assert.Equal(t, "json", config.Log.Format)
		assert.Equal(t, "stderr", config.Log.OutputFile)

		source, ok := config.Source().(*file.TraceFile)
		require.True(t, ok)
		assert.Equal(t, "refs.txt", source.Path())
	})

	t.Run("rejects invalid frame count", func(t *testing.T) {
		_, err := Load(writeConfig(t, "frames: 0\n"))
		assert.ErrorIs(t, err, frame.ErrInvalidFrameCount)
	})

	t.Run("rejects unknown policy", func(t *testing.T) {
		for _, policy := range []string{"MRU", "clock"} {
			_, err := Load(writeConfig(t, "policy: "+policy+"\n"))
			assert.ErrorIs(t, err, frame.ErrUnknownPolicy, policy)
		}
	})

	t.Run("rejects non-positive bound", func(t *testing.T) {
		_, err := Load(writeConfig(t, "max_references: -5\n"))
		assert.ErrorContains(t, err, "max_references must be positive")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "frames: [3\n"))
		assert.ErrorContains(t, err, "failed to parse config file")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
