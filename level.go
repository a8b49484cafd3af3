package snaglog

import "strings"

// Level is a named severity. The recognized set follows the npm ordering,
// most to least severe: error, warn, info, verbose, debug, silly.
// Unrecognized names are legal values; filtering treats them as fail-open.
type Level string

const (
	LevelError   Level = "error"
	LevelWarn    Level = "warn"
	LevelInfo    Level = "info"
	LevelVerbose Level = "verbose"
	LevelDebug   Level = "debug"
	LevelSilly   Level = "silly"
)

// priorities: lower number = more severe.
var priorities = map[Level]int{
	LevelError:   0,
	LevelWarn:    1,
	LevelInfo:    2,
	LevelVerbose: 3,
	LevelDebug:   4,
	LevelSilly:   5,
}

// Priority returns the numeric rank of l (0 = most severe).
// ok is false for unrecognized levels.
func (l Level) Priority() (p int, ok bool) {
	p, ok = priorities[l]
	return p, ok
}

// Known reports whether l is one of the recognized levels.
func (l Level) Known() bool {
	_, ok := priorities[l]
	return ok
}

func (l Level) String() string { return string(l) }

// Allows reports whether a record at level passes a floor.
// An empty floor allows everything. If either priority cannot be resolved
// the record is allowed (fail open).
func Allows(floor, level Level) bool {
	if floor == "" {
		return true
	}
	fp, ok := floor.Priority()
	if !ok {
		return true
	}
	lp, ok := level.Priority()
	if !ok {
		return true
	}
	return lp <= fp
}

// ParseLevel normalizes a user-supplied level name. The aliases "warning"
// and "err" are accepted for warn and error; anything else unrecognized is
// returned lowercased as-is.
func ParseLevel(s string) Level {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "warning":
		return LevelWarn
	case "err":
		return LevelError
	}
	return Level(s)
}
