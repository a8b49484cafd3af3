package snaglog

import (
	"time"
)

// Field is a key/value pair bound onto a Logger via With.
type Field struct {
	K string
	V any
}

// Helpers for ergonomics.

func Str(k, v string) Field             { return Field{K: k, V: v} }
func Int(k string, v int) Field         { return Field{K: k, V: v} }
func Int64(k string, v int64) Field     { return Field{K: k, V: v} }
func Uint64(k string, v uint64) Field   { return Field{K: k, V: v} }
func Float64(k string, v float64) Field { return Field{K: k, V: v} }
func Bool(k string, v bool) Field       { return Field{K: k, V: v} }
func Dur(k string, v time.Duration) Field {
	return Field{K: k, V: v}
}
func Time(k string, v time.Time) Field { return Field{K: k, V: v} }
func Err(e error) Field                { return Field{K: ErrorKey, V: e} }
func Any(k string, v any) Field        { return Field{K: k, V: v} }
