package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/trickstertwo/snaglog"
)

// LevelSilly sits below slog.LevelDebug so silly stays distinguishable.
const LevelSilly = slog.LevelDebug - 4

// Options are the transport's own switches.
type Options struct {
	Silent    bool
	Level     snaglog.Level // "" writes every level
	TSKey     string        // default "ts"
	Observers []snaglog.Observer
}

// Transport writes records through log/slog.
// It builds slog.Attrs directly and uses LogAttrs.
type Transport struct {
	l    *slog.Logger
	opts Options
}

var _ snaglog.Transport = (*Transport)(nil)

func New(l *slog.Logger, opts Options) *Transport {
	if l == nil {
		l = slog.Default()
	}
	if opts.TSKey == "" {
		opts.TSKey = "ts"
	}
	return &Transport{l: l, opts: opts}
}

// Silent reports whether every record is dropped.
func (t *Transport) Silent() bool { return t.opts.Silent }

// Level returns the floor; "" writes every level.
func (t *Transport) Level() snaglog.Level { return t.opts.Level }

// Log emits a single entry and calls done once.
func (t *Transport) Log(rec snaglog.Record, done func()) {
	snaglog.NotifyLogged(t.opts.Observers, rec)
	if done != nil {
		defer done()
	}
	if t.opts.Silent || !snaglog.Allows(t.opts.Level, rec.Level) {
		return
	}

	ctx := context.Background()
	lvl := toSlog(rec.Level)
	if !t.l.Enabled(ctx, lvl) {
		return
	}

	keys := snaglog.SortedKeys(rec.Meta)
	attrs := make([]slog.Attr, 0, len(keys)+2)
	// Single authoritative timestamp provided by the Logger
	attrs = append(attrs, slog.String(t.opts.TSKey, rec.At.UTC().Format(time.RFC3339Nano)))
	if rec.IsError() {
		attrs = append(attrs, slog.String(snaglog.ErrorKey, rec.Err.Error()))
	}
	for _, k := range keys {
		attrs = append(attrs, toAttr(k, rec.Meta[k]))
	}
	t.l.LogAttrs(ctx, lvl, rec.Message, attrs...)
}

// toSlog maps snaglog levels onto slog's. Unknown levels are written at info
// so they stay visible.
func toSlog(l snaglog.Level) slog.Level {
	switch l {
	case snaglog.LevelError:
		return slog.LevelError
	case snaglog.LevelWarn:
		return slog.LevelWarn
	case snaglog.LevelInfo:
		return slog.LevelInfo
	case snaglog.LevelVerbose, snaglog.LevelDebug:
		return slog.LevelDebug
	case snaglog.LevelSilly:
		return LevelSilly
	default:
		return slog.LevelInfo
	}
}

func toAttr(k string, v any) slog.Attr {
	switch x := v.(type) {
	case string:
		return slog.String(k, x)
	case int:
		return slog.Int(k, x)
	case int64:
		return slog.Int64(k, x)
	case uint64:
		return slog.Uint64(k, x)
	case float64:
		return slog.Float64(k, x)
	case bool:
		return slog.Bool(k, x)
	case time.Duration:
		return slog.Duration(k, x)
	case time.Time:
		return slog.Time(k, x)
	case error:
		return slog.String(k, x.Error())
	default:
		return slog.Any(k, v)
	}
}
