package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a new zap logger based on the configuration.
func New(cfg *Config) (*zap.Logger, error) {
	var logger *zap.Logger
	var err error

	var config zap.Config

	if cfg.Level == "debug" {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
		if lvl, lvlErr := zapcore.ParseLevel(cfg.Level); lvlErr == nil {
			config.Level = zap.NewAtomicLevelAt(lvl)
		}
	}

	// Set format based on configuration
	if cfg.Format == "console" {
		config.Encoding = "console"
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.DisableStacktrace = true
	} else {
		config.Encoding = "json"
	}

	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.MessageKey = "message"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err = config.Build()
	if err != nil {
		return nil, err
	}

	return logger, nil
}

// NewChangeLog creates the logger that records merge decisions.
// Entries are appended to cfg.ChangeLog with ISO-8601 timestamps and, when
// cfg.Mirror is set, copied to the cfg.MirrorTo stream. Sampling is disabled
// so no merge decision is dropped.
func NewChangeLog(cfg *Config) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.Sampling = nil
	config.DisableCaller = true
	config.DisableStacktrace = true
	config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)

	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.MessageKey = "message"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	config.OutputPaths = []string{cfg.ChangeLog}
	if cfg.Mirror {
		stream, err := mirrorStream(cfg.MirrorTo)
		if err != nil {
			return nil, err
		}
		config.OutputPaths = append(config.OutputPaths, stream)
	}
	config.ErrorOutputPaths = []string{"stderr"}

	return config.Build()
}

func mirrorStream(name string) (string, error) {
	switch name {
	case "", "stdout":
		return "stdout", nil
	case "stderr":
		return "stderr", nil
	default:
		return "", fmt.Errorf("invalid change log mirror %q: must be stdout or stderr", name)
	}
}
