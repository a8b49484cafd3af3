package snaglog

import (
	"fmt"
	"reflect"
	"strconv"
	"sync"
	"time"
)

// Event is a fluent builder (Builder pattern) for a single log record.
// API: Logger().Info().Str("from", ...).Dur("took", dur).Int("n", v).Msg("state changed")
//
// An Event must be finished with exactly one of Msg, Msgf or Send and not
// used afterwards.
type Event struct {
	l     *Logger
	level Level
	meta  map[string]any // ownership moves to the record on emit
	splat []any
}

var eventPool = sync.Pool{
	New: func() any { return &Event{} },
}

func getEvent(l *Logger, level Level) *Event {
	ev := eventPool.Get().(*Event)
	ev.l = l
	ev.level = level
	ev.meta = nil
	ev.splat = ev.splat[:0]
	return ev
}

func (e *Event) putBack() {
	// allow GC of large backing arrays by capping
	if cap(e.splat) > 32 {
		e.splat = nil
	}
	e.l = nil
	e.level = ""
	e.meta = nil
	eventPool.Put(e)
}

func (e *Event) set(k string, v any) *Event {
	if e.meta == nil {
		e.meta = make(map[string]any, 8)
	}
	e.meta[k] = v
	return e
}

// Field builders (zerolog-style)

func (e *Event) Str(k, v string) *Event             { return e.set(k, v) }
func (e *Event) Int(k string, v int) *Event         { return e.set(k, v) }
func (e *Event) Int64(k string, v int64) *Event     { return e.set(k, v) }
func (e *Event) Uint64(k string, v uint64) *Event   { return e.set(k, v) }
func (e *Event) Float64(k string, v float64) *Event { return e.set(k, v) }
func (e *Event) Bool(k string, v bool) *Event       { return e.set(k, v) }
func (e *Event) Dur(k string, v time.Duration) *Event {
	return e.set(k, v)
}
func (e *Event) Time(k string, v time.Time) *Event { return e.set(k, v) }
func (e *Event) Bytes(k string, v []byte) *Event   { return e.set(k, v) }
func (e *Event) Any(k string, v any) *Event        { return e.set(k, v) }

// Err attaches err under the "error" key. A nil error is ignored.
func (e *Event) Err(err error) *Event {
	if err == nil {
		return e
	}
	return e.set(ErrorKey, err)
}

// Meta merges a loosely typed metadata value into the record:
//   - maps with string keys merge key by key
//   - slices and arrays merge by stringified index ("0", "1", ...)
//   - an error is attached under "error"
//   - anything else is appended to the splat arguments
func (e *Event) Meta(v any) *Event {
	switch m := v.(type) {
	case nil:
		return e
	case map[string]any:
		for k, x := range m {
			e.set(k, x)
		}
		return e
	case []any:
		for i, x := range m {
			e.set(strconv.Itoa(i), x)
		}
		return e
	case []byte:
		e.splat = append(e.splat, m)
		return e
	case error:
		return e.set(ErrorKey, m)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			it := rv.MapRange()
			for it.Next() {
				e.set(it.Key().String(), it.Value().Interface())
			}
			return e
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			e.set(strconv.Itoa(i), rv.Index(i).Interface())
		}
		return e
	}
	e.splat = append(e.splat, v)
	return e
}

// Msg terminates the builder and emits the record.
func (e *Event) Msg(msg string) {
	e.l.emit(e.level, msg, e.meta, e.splat, nil)
	e.putBack()
}

// Msgf formats the message and records args as the splat.
func (e *Event) Msgf(format string, args ...any) {
	e.splat = append(e.splat, args...)
	e.l.emit(e.level, fmt.Sprintf(format, args...), e.meta, e.splat, nil)
	e.putBack()
}

// Send emits err itself as the record; the message mirrors err.Error().
// A nil err emits nothing.
func (e *Event) Send(err error) {
	if err != nil {
		e.l.emit(e.level, err.Error(), e.meta, e.splat, err)
	}
	e.putBack()
}
