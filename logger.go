package snaglog

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/trickstertwo/xclock"
)

type Logger struct {
	transports []Transport
	level      Level
	silent     bool
	clock      xclock.Clock
	recordIDs  bool
	baseFields []Field

	// Observers: lock-free reads via atomic.Value; synchronized updates via obsMu.
	// Stored value is []Observer and MUST be treated as immutable by readers.
	observers atomic.Value // holds []Observer
	obsMu     sync.Mutex

	// shared with children created by With
	st *stats
}

// Factory: internal constructor.
func newLogger(cfg Config) *Logger {
	l := &Logger{
		transports: append([]Transport(nil), cfg.Transports...),
		level:      cfg.Level,
		silent:     cfg.Silent,
		clock:      cfg.Clock,
		recordIDs:  cfg.RecordIDs,
		st:         &stats{},
	}
	if len(cfg.Observers) > 0 {
		obs := make([]Observer, len(cfg.Observers))
		copy(obs, cfg.Observers)
		l.observers.Store(obs)
	} else {
		l.observers.Store(([]Observer)(nil))
	}
	return l
}

// Facade: global access (Singleton + Facade).
var global atomic.Pointer[Logger]

// SetGlobal sets the global Logger (Singleton setter).
func SetGlobal(l *Logger) { global.Store(l) }

// L returns the global Logger; panic if unset to surface misconfig early.
func L() *Logger {
	l := global.Load()
	if l == nil {
		panic("snaglog: global logger not set. Build one and call snaglog.SetGlobal(...)")
	}
	return l
}

// Enabled reports whether records at 'level' would reach the transports.
// Use to avoid building fields in hot paths when disabled.
func (l *Logger) Enabled(level Level) bool {
	return !l.silent && Allows(l.level, level)
}

// Level entry points returning fluent builders.

func (l *Logger) Error() *Event   { return getEvent(l, LevelError) }
func (l *Logger) Warn() *Event    { return getEvent(l, LevelWarn) }
func (l *Logger) Info() *Event    { return getEvent(l, LevelInfo) }
func (l *Logger) Verbose() *Event { return getEvent(l, LevelVerbose) }
func (l *Logger) Debug() *Event   { return getEvent(l, LevelDebug) }
func (l *Logger) Silly() *Event   { return getEvent(l, LevelSilly) }

// Log starts an event at an arbitrary level, including unrecognized ones.
func (l *Logger) Log(level Level) *Event { return getEvent(l, level) }

// With returns a child logger with bound fields. Event fields win over
// bound fields with the same key.
func (l *Logger) With(fs ...Field) *Logger {
	child := &Logger{
		transports: l.transports,
		level:      l.level,
		silent:     l.silent,
		clock:      l.clock,
		recordIDs:  l.recordIDs,
		baseFields: append(copyFields(nil, l.baseFields), fs...),
		st:         l.st,
	}
	// Inherit a snapshot of observers.
	child.observers.Store(l.snapshotObservers())
	return child
}

func (l *Logger) snapshotObservers() []Observer {
	v := l.observers.Load()
	if v == nil {
		return nil
	}
	cur := v.([]Observer)
	if len(cur) == 0 {
		return nil
	}
	out := make([]Observer, len(cur))
	copy(out, cur)
	return out
}

func (l *Logger) AddObserver(o Observer) {
	l.obsMu.Lock()
	defer l.obsMu.Unlock()
	cur := l.snapshotObservers()
	cur = append(cur, o)
	l.observers.Store(cur)
}

// Stats returns a snapshot of the logger's counters (shared with children).
func (l *Logger) Stats() StatsSnapshot { return l.st.snapshot() }

// ResetStats resets the counters.
func (l *Logger) ResetStats() { l.st.reset() }

func (l *Logger) now() time.Time {
	if l.clock != nil {
		return l.clock.Now()
	}
	return xclock.Now()
}

// emit builds the record and hands it to every transport. The Meta map is
// shared between transports and observers; they must not mutate it.
func (l *Logger) emit(level Level, msg string, meta map[string]any, splat []any, err error) {
	if !l.Enabled(level) {
		l.st.dropped.Add(1)
		return
	}

	rec := Record{
		At:      l.now(),
		Level:   level,
		Message: msg,
		Err:     err,
	}
	if l.recordIDs {
		rec.ID = uuid.NewString()
	}

	m := make(map[string]any, len(l.baseFields)+len(meta)+3)
	for _, f := range l.baseFields {
		m[f.K] = f.V
	}
	for k, v := range meta {
		m[k] = v
	}
	m[KeyLevel] = string(level)
	if len(splat) > 0 {
		m[KeySplat] = append([]any(nil), splat...)
	}
	rec.Meta = m
	m[KeyMessage] = render(rec)

	if v := l.observers.Load(); v != nil {
		for _, o := range v.([]Observer) {
			o.OnLog(rec)
		}
	}

	for _, t := range l.transports {
		l.st.dispatched.Add(1)
		t.Log(rec, l.st.ack)
	}
}

func copyFields(dst, src []Field) []Field {
	if len(src) == 0 {
		return dst
	}
	return append(dst, src...)
}
