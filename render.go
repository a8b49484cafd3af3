package snaglog

import (
	"github.com/segmentio/encoding/json"
)

// render produces the value stored under KeyMessage: a JSON object with the
// level, the message and every non-reserved meta entry. Errors are rendered
// as their text. If meta cannot be encoded the plain message is used.
func render(rec Record) string {
	out := make(map[string]any, len(rec.Meta)+2)
	for k, v := range rec.Meta {
		if Reserved(k) {
			continue
		}
		if err, ok := v.(error); ok && err != nil {
			v = err.Error()
		}
		out[k] = v
	}
	out["level"] = string(rec.Level)
	out[MessageKey] = rec.Message

	b, err := json.Marshal(out)
	if err != nil {
		return rec.Message
	}
	return string(b)
}
