package zap

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/snaglog"
)

// Config is an explicit, code-first configuration for zap + snaglog.
// No envs, no hidden init, one call to Use.
type Config struct {
	Writer             io.Writer // default: os.Stdout
	Level              snaglog.Level
	Silent             bool
	Console            bool                  // console-like output via zapcore.NewConsoleEncoder
	EncoderConfig      zapcore.EncoderConfig // if zero, a sensible default is used
	Caller             bool                  // include caller in logs
	CallerSkip         int                   // frames to skip when resolving caller; default 3
	TimestampFieldName string                // default "ts" (the record's authoritative timestamp)
}

// NewTransport builds a zap core from cfg and wraps it.
func NewTransport(cfg Config) *Transport {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	if cfg.TimestampFieldName == "" {
		cfg.TimestampFieldName = "ts"
	}
	if cfg.Caller && cfg.CallerSkip <= 0 {
		cfg.CallerSkip = 3
	}

	// Encoder config defaults: do not let zap inject its own time (records carry "ts")
	encCfg := cfg.EncoderConfig
	if encCfg.LevelKey == "" && encCfg.MessageKey == "" && encCfg.EncodeTime == nil {
		encCfg = zapcore.EncoderConfig{
			LevelKey:       "level",
			MessageKey:     "message",
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.RFC3339NanoTimeEncoder, // used for time.Time meta values
			EncodeDuration: zapcore.StringDurationEncoder,
			CallerKey:      "caller",
			EncodeCaller:   zapcore.ShortCallerEncoder,
		}
	}
	encCfg.TimeKey = ""

	var enc zapcore.Encoder
	if cfg.Console {
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	// The transport filters on cfg.Level itself; zap lets everything through.
	core := zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.DebugLevel)

	opts := []zap.Option{
		zap.AddStacktrace(zapcore.FatalLevel + 1), // effectively off for normal levels
	}
	if cfg.Caller {
		opts = append(opts, zap.AddCaller(), zap.AddCallerSkip(cfg.CallerSkip))
	}

	return New(zap.New(core, opts...), Options{
		Silent: cfg.Silent,
		Level:  cfg.Level,
		TSKey:  cfg.TimestampFieldName,
	})
}

// Use builds a zap-backed logger from Config, wires it as the global
// snaglog logger, and returns it.
func Use(cfg Config) *snaglog.Logger {
	return snaglog.UseTransports(cfg.Level, NewTransport(cfg))
}
