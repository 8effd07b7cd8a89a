package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func withEnvFile(t *testing.T, content string) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "")
	require.NoError(t, os.Unsetenv("LOG_LEVEL"))

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	prev, prevVerbose := envFile, verbose
	envFile, verbose = path, false
	t.Cleanup(func() { envFile, verbose = prev, prevVerbose })
}

func TestNewLogger_LevelFromEnvFile(t *testing.T) {
	withEnvFile(t, "LOG_LEVEL=debug\n")

	l, err := newLogger()
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestNewLogger_DefaultsToInfo(t *testing.T) {
	withEnvFile(t, "# no overrides\n")

	l, err := newLogger()
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
}

func TestNewLogger_BadLevel(t *testing.T) {
	withEnvFile(t, "LOG_LEVEL=loud\n")

	_, err := newLogger()
	assert.Error(t, err)
}
