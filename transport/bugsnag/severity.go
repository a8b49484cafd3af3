package bugsnag

import "github.com/trickstertwo/snaglog"

// Levels below info have no counterpart and map to "".
var levelToSeverity = map[snaglog.Level]Severity{
	snaglog.LevelError: SeverityError,
	snaglog.LevelWarn:  SeverityWarning,
	snaglog.LevelInfo:  SeverityInfo,
}

func severityFor(l snaglog.Level) Severity {
	return levelToSeverity[l]
}

// shouldLog decides whether a record at level passes the floor, using the
// pipeline's priority order. It passes when:
//   - no floor is configured
//   - either priority is unknown (should not happen, so fail open)
//   - the record is at least as severe as the floor
//
// e.g. floor "warn" (1) lets "error" (0) through since 0 <= 1.
func shouldLog(floor, level snaglog.Level) bool {
	return snaglog.Allows(floor, level)
}
