package snaglog

import "errors"

// ErrNoTransport is returned by Builder.Build when no transport was added.
var ErrNoTransport = errors.New("snaglog: no transport configured")
