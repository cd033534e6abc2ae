package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNamed(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := &Logger{zap.New(core).Sugar()}

	log.Named("gateway").Infow("Data service client ready", "baseURL", "http://localhost:3001")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "gateway", entries[0].LoggerName)
	assert.Equal(t, "Data service client ready", entries[0].Message)
}

func TestNewNop(t *testing.T) {
	log := NewNop()

	// Must be safe to call at every level without output or panic.
	log.Debugw("debug")
	log.Infow("info")
	log.Warnw("warn")
	log.Errorw("error", "key", "value")
	assert.NotNil(t, log.Named("sub"))
}
