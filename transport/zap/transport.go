package zap

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/snaglog"
)

// Options are the transport's own switches.
type Options struct {
	Silent    bool
	Level     snaglog.Level // "" writes every level
	TSKey     string        // timestamp field key; default "ts"
	Observers []snaglog.Observer
}

// Transport writes records through go.uber.org/zap.
//
//   - Uses Logger.Check(level, msg) to avoid building fields when disabled.
//   - Guarantees RFC3339Nano "ts" precision by writing it as a string field.
//   - Bookkeeping keys are skipped; meta is written in key order.
type Transport struct {
	l    *zap.Logger
	opts Options
}

var _ snaglog.Transport = (*Transport)(nil)

// New creates a transport for the provided zap logger.
func New(l *zap.Logger, opts Options) *Transport {
	if l == nil {
		l = zap.NewNop()
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

// Log writes a single entry and calls done once.
func (t *Transport) Log(rec snaglog.Record, done func()) {
	snaglog.NotifyLogged(t.opts.Observers, rec)
	if done != nil {
		defer done()
	}
	if t.opts.Silent || !snaglog.Allows(t.opts.Level, rec.Level) {
		return
	}

	// Fast path: skip if disabled. Avoids building fields.
	ce := t.l.Check(toZapLevel(rec.Level), rec.Message)
	if ce == nil {
		return
	}

	keys := snaglog.SortedKeys(rec.Meta)
	zfs := make([]zap.Field, 0, 2+len(keys))
	zfs = append(zfs, zap.String(t.opts.TSKey, rec.At.UTC().Format(time.RFC3339Nano)))
	if rec.IsError() {
		zfs = append(zfs, zap.Error(rec.Err))
	}
	for _, k := range keys {
		zfs = append(zfs, toZapField(k, rec.Meta[k]))
	}
	ce.Write(zfs...)
}

// toZapLevel maps pipeline levels onto zap's smaller set. Unknown levels are
// written at info so they stay visible.
func toZapLevel(l snaglog.Level) zapcore.Level {
	switch l {
	case snaglog.LevelError:
		return zapcore.ErrorLevel
	case snaglog.LevelWarn:
		return zapcore.WarnLevel
	case snaglog.LevelInfo:
		return zapcore.InfoLevel
	case snaglog.LevelVerbose, snaglog.LevelDebug, snaglog.LevelSilly:
		return zapcore.DebugLevel
	default:
		return zapcore.InfoLevel
	}
}

func toZapField(k string, v any) zap.Field {
	switch x := v.(type) {
	case error:
		if k == snaglog.ErrorKey {
			return zap.Error(x)
		}
		return zap.NamedError(k, x)
	case time.Duration:
		return zap.Duration(k, x) // encoder decides string vs numeric
	case []byte:
		return zap.ByteString(k, x)
	default:
		return zap.Any(k, v)
	}
}
