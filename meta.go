package snaglog

import "sort"

// SortedKeys returns the non-reserved keys of meta in lexical order, for
// transports that want deterministic output.
func SortedKeys(meta map[string]any) []string {
	keys := make([]string, 0, len(meta))
	for k := range meta {
		if Reserved(k) {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
