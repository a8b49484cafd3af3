package zerolog

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/snaglog"
)

// Options are the transport's own switches.
type Options struct {
	Silent    bool
	Level     snaglog.Level // "" writes every level
	Observers []snaglog.Observer
}

// Transport writes records through rs/zerolog.
//
//   - Fast pre-check using GetLevel() to avoid allocating zerolog.Event when
//     the level is disabled.
//   - Uses Logger.WithLevel(...) to avoid a level switch at call sites.
type Transport struct {
	l    zerolog.Logger
	opts Options
}

var _ snaglog.Transport = (*Transport)(nil)

func New(l zerolog.Logger, opts Options) *Transport {
	return &Transport{l: l, opts: opts}
}

// Silent reports whether every record is dropped.
func (t *Transport) Silent() bool { return t.opts.Silent }

// Level returns the floor; "" writes every level.
func (t *Transport) Level() snaglog.Level { return t.opts.Level }

// Log emits a single entry and calls done once.
// The record timestamp is written as "ts" with RFC3339Nano precision.
func (t *Transport) Log(rec snaglog.Record, done func()) {
	snaglog.NotifyLogged(t.opts.Observers, rec)
	if done != nil {
		defer done()
	}
	if t.opts.Silent || !snaglog.Allows(t.opts.Level, rec.Level) {
		return
	}

	zlvl := mapLevel(rec.Level)
	// Fast path: drop early if below logger's min level (no Event allocation).
	if zlvl < t.l.GetLevel() {
		return
	}

	ev := t.l.WithLevel(zlvl)
	// Using a string avoids global config changes and keeps output deterministic.
	ev.Str("ts", rec.At.UTC().Format(time.RFC3339Nano))
	if rec.IsError() {
		ev.Err(rec.Err)
	}
	for _, k := range snaglog.SortedKeys(rec.Meta) {
		appendEventField(ev, k, rec.Meta[k])
	}
	ev.Msg(rec.Message)
}

// mapLevel converts snaglog.Level to zerolog.Level. Unknown levels are written
// at info so they stay visible.
func mapLevel(l snaglog.Level) zerolog.Level {
	switch l {
	case snaglog.LevelError:
		return zerolog.ErrorLevel
	case snaglog.LevelWarn:
		return zerolog.WarnLevel
	case snaglog.LevelInfo:
		return zerolog.InfoLevel
	case snaglog.LevelVerbose, snaglog.LevelDebug:
		return zerolog.DebugLevel
	case snaglog.LevelSilly:
		return zerolog.TraceLevel
	default:
		return zerolog.InfoLevel
	}
}

// appendEventField writes one meta entry to a zerolog.Event.
func appendEventField(e *zerolog.Event, k string, v any) {
	switch x := v.(type) {
	case string:
		e.Str(k, x)
	case int:
		e.Int(k, x)
	case int64:
		e.Int64(k, x)
	case uint64:
		e.Uint64(k, x)
	case float64:
		e.Float64(k, x)
	case bool:
		e.Bool(k, x)
	case time.Duration:
		e.Dur(k, x)
	case time.Time:
		e.Time(k, x)
	case error:
		if k == snaglog.ErrorKey {
			e.Err(x)
		} else {
			e.AnErr(k, x)
		}
	case []byte:
		e.Bytes(k, x)
	default:
		e.Interface(k, v)
	}
}
