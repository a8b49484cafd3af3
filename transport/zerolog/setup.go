package zerolog

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/snaglog"
)

// Config is an explicit, code-first configuration for zerolog + snaglog.
// No envs, no hidden init, one call to Use.
type Config struct {
	Writer            io.Writer // default: os.Stdout
	Level             snaglog.Level
	Silent            bool
	Console           bool   // pretty console output instead of JSON
	ConsoleTimeFormat string // only used if Console==true; default time.RFC3339Nano
	Caller            bool   // include caller in logs
	CallerSkip        int    // frames to skip when resolving caller; default 5
}

// NewTransport builds a zerolog logger from cfg and wraps it.
func NewTransport(cfg Config) *Transport {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	if cfg.Caller && cfg.CallerSkip <= 0 {
		cfg.CallerSkip = 5
	}

	var zl zerolog.Logger
	if cfg.Console {
		// Make ConsoleWriter use the "ts" field as the timestamp column.
		zerolog.TimestampFieldName = "ts"
		cw := zerolog.ConsoleWriter{Out: w}
		if cfg.ConsoleTimeFormat == "" {
			cw.TimeFormat = time.RFC3339Nano
		} else {
			cw.TimeFormat = cfg.ConsoleTimeFormat
		}
		if !cfg.Caller {
			cw.PartsExclude = append(cw.PartsExclude, zerolog.CallerFieldName)
		}
		zl = zerolog.New(cw)
	} else {
		zl = zerolog.New(w)
	}

	// The transport filters on cfg.Level itself; zerolog lets everything through.
	zl = zl.Level(zerolog.TraceLevel)

	if cfg.Caller {
		zerolog.CallerSkipFrameCount = cfg.CallerSkip
		zl = zl.With().Caller().Logger()
	}

	return New(zl, Options{Silent: cfg.Silent, Level: cfg.Level})
}

// Use builds a zerolog-backed logger from Config, wires it as the global
// snaglog logger, and returns it.
func Use(cfg Config) *snaglog.Logger {
	return snaglog.UseTransports(cfg.Level, NewTransport(cfg))
}
