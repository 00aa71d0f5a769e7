package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/R-Gerard/Roguelike-sub001/internal/config"
)

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	for i := range 5 {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2026-01-0%d_00-00-00", i+1))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0644))

	cleanupLogs(dir, 2)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{
		"notes.txt",
		"session_2026-01-04_00-00-00.log",
		"session_2026-01-05_00-00-00.log",
	}, names)
}

func TestCleanupLogs_MissingDir(t *testing.T) {
	assert.NotPanics(t, func() { cleanupLogs(filepath.Join(t.TempDir(), "missing"), 1) })
}

func TestSetupLogger(t *testing.T) {
	t.Run("stdout only", func(t *testing.T) {
		f, err := SetupLogger(&config.Config{LogLevel: "info", LogFormat: "text"})
		require.NoError(t, err)
		assert.Nil(t, f)
	})

	t.Run("session file", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "logs")
		f, err := SetupLogger(&config.Config{LogLevel: "debug", LogFormat: "json", LogDir: dir})
		require.NoError(t, err)
		require.NotNil(t, f)
		t.Cleanup(func() { _ = f.Close() })

		info, err := f.Stat()
		require.NoError(t, err)
		assert.Positive(t, info.Size(), "startup lines go to the session file")
	})
}
