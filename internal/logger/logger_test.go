package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.uber.org/zap/zapcore"
)

func TestNew_DefaultsToInfoLevel(t *testing.T) {
	log, err := New(false, false)

	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
}

func TestNew_DebugLowersLevel(t *testing.T) {
	log, err := New(false, true)

	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_JSONEncoding(t *testing.T) {
	log, err := New(true, false)

	require.NoError(t, err)
	assert.NotNil(t, log)
}
