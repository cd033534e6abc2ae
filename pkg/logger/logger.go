package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the application logger. It embeds a zap SugaredLogger so call
// sites use the Infow/Warnw/Errorw style with key-value pairs.
type Logger struct {
	*zap.SugaredLogger
}

// New creates a new Logger instance. In production the logger emits JSON,
// otherwise a colored console format for local development.
func New(env string) *Logger {
	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zl := zap.Must(cfg.Build(zap.AddCallerSkip(1)))
	return &Logger{zl.Sugar()}
}

// NewNop returns a logger that discards everything. Used in tests.
func NewNop() *Logger {
	return &Logger{zap.NewNop().Sugar()}
}

// Named adds a sub-scope to the logger's name.
func (l *Logger) Named(name string) *Logger {
	return &Logger{l.SugaredLogger.Named(name)}
}
