package bugsnag

import "github.com/trickstertwo/snaglog"

// omitted lists the keys never forwarded as metadata: the message itself and
// the pipeline's bookkeeping keys.
var omitted = [...]string{
	snaglog.MessageKey,
	snaglog.KeyLevel,
	snaglog.KeySplat,
	snaglog.KeyMessage,
}

// filterMeta returns a new map holding meta minus the omitted keys.
// Values are passed through as-is. The result is never nil.
func filterMeta(meta map[string]any) map[string]any {
	out := make(map[string]any, len(meta))
	for k, v := range meta {
		out[k] = v
	}
	for _, k := range omitted {
		delete(out, k)
	}
	return out
}
