package snaglog

import "time"

// Reserved bookkeeping keys stamped into Record.Meta by the Logger.
// Transports that forward metadata to external systems should drop them.
const (
	// KeyLevel carries the original level tag of the record.
	KeyLevel = "snaglog.level"
	// KeySplat carries the printf arguments passed to Event.Msgf.
	KeySplat = "snaglog.splat"
	// KeyMessage carries the fully rendered line (see Logger render).
	KeyMessage = "snaglog.message"
)

// MessageKey and ErrorKey are the conventional metadata keys for the message
// text and an attached error value.
const (
	MessageKey = "message"
	ErrorKey   = "error"
)

// Reserved reports whether key is one of the bookkeeping keys.
func Reserved(key string) bool {
	switch key {
	case KeyLevel, KeySplat, KeyMessage:
		return true
	}
	return false
}

// Record is a single log entry as handed to transports.
//
// A record is either structured (Message plus Meta) or is itself an error
// value, in which case Err is set and Message mirrors Err.Error().
type Record struct {
	ID      string // empty unless the Logger was built WithRecordIDs
	At      time.Time
	Level   Level
	Message string
	Meta    map[string]any
	Err     error
}

// IsError reports whether the record is an error value logged as a whole.
func (r Record) IsError() bool { return r.Err != nil }

// Clone returns a copy of r with its own Meta map (values are shared).
func (r Record) Clone() Record {
	c := r
	if r.Meta != nil {
		c.Meta = make(map[string]any, len(r.Meta))
		for k, v := range r.Meta {
			c.Meta[k] = v
		}
	}
	return c
}
