package slog

import (
	"io"
	"log/slog"
	"os"

	"github.com/trickstertwo/snaglog"
)

// Format selects the slog handler format.
type Format uint8

const (
	FormatJSON Format = iota + 1
	FormatText
)

// Config is an explicit, code-first configuration for slog + snaglog.
// One call to Use wires a slog-backed logger and sets it global.
type Config struct {
	Writer             io.Writer // default: os.Stdout
	Level              snaglog.Level
	Silent             bool
	Format             Format               // JSON (default) or Text
	HandlerOptions     *slog.HandlerOptions // optional; Level is managed by NewTransport
	TimestampFieldName string               // default "ts" (the record's authoritative timestamp)
}

// NewTransport builds a slog handler from cfg and wraps it. slog's own time
// attribute is dropped unless HandlerOptions.ReplaceAttr is set.
func NewTransport(cfg Config) *Transport {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	opts := slog.HandlerOptions{}
	if cfg.HandlerOptions != nil {
		opts = *cfg.HandlerOptions
	}
	// The transport filters on cfg.Level itself; slog lets everything through.
	opts.Level = LevelSilly
	if opts.ReplaceAttr == nil {
		opts.ReplaceAttr = dropTime
	}

	var h slog.Handler
	if cfg.Format == FormatText {
		h = slog.NewTextHandler(w, &opts)
	} else {
		h = slog.NewJSONHandler(w, &opts)
	}
	return New(slog.New(h), Options{
		Silent: cfg.Silent,
		Level:  cfg.Level,
		TSKey:  cfg.TimestampFieldName,
	})
}

func dropTime(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.TimeKey {
		return slog.Attr{}
	}
	return a
}

// Use builds a slog-backed logger from Config, wires it as the global
// snaglog logger, and returns it.
func Use(cfg Config) *snaglog.Logger {
	return snaglog.UseTransports(cfg.Level, NewTransport(cfg))
}
