package config

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// MaxVerbosity is the most detailed log level.
const MaxVerbosity = 2

// LogConfig holds logging settings.
type LogConfig struct {
	// Verbosity: 0=nothing, 1=game events, 2=every move
	Verbosity int

	// File receives log output; empty means stderr
	File string
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() *LogConfig {
	return &LogConfig{}
}

// Level maps the verbosity to a zap level.
func (c LogConfig) Level() zapcore.Level {
	if c.Verbosity >= MaxVerbosity {
		return zapcore.DebugLevel
	}
	return zapcore.InfoLevel
}

// NewLogger builds the logger described by c. Verbosity 0 yields a no-op
// logger.
func NewLogger(c LogConfig) (*zap.Logger, error) {
	if c.Verbosity <= 0 {
		return zap.NewNop(), nil
	}

	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(c.Level())
	zc.DisableStacktrace = true
	zc.OutputPaths = []string{"stderr"}
	if c.File != "" {
		zc.OutputPaths = []string{c.File}
		zc.Encoding = "json"
		zc.EncoderConfig = zap.NewProductionEncoderConfig()
	}
	return zc.Build()
}
