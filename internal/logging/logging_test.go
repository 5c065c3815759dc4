package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	logger, err := New(false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))

	verbose, err := New(true)
	require.NoError(t, err)
	assert.True(t, verbose.Core().Enabled(zapcore.DebugLevel))
}

func TestNewFile(t *testing.T) {
	nop, err := NewFile("", true)
	require.NoError(t, err)
	assert.False(t, nop.Core().Enabled(zapcore.ErrorLevel), "empty path discards everything")

	path := filepath.Join(t.TempDir(), "take.log")
	logger, err := NewFile(path, false)
	require.NoError(t, err)
	logger.Info("Response recorded")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"Response recorded"`)
}
