package snaglog

import (
	"io"
	"os"
)

// defaultTransportFactory is set by a transport package (e.g., transport/zerolog)
// in its init() to avoid import cycles. Default() uses this to build a logger.
var defaultTransportFactory func(w io.Writer) Transport

// RegisterDefaultTransportFactory registers the constructor used by snaglog.Default().
// Transports should call this from init() to avoid import cycles.
// Example (in transport/zerolog):
//
//	func init() {
//	  snaglog.RegisterDefaultTransportFactory(func(w io.Writer) snaglog.Transport {
//	    return zerolog.New(zl, zerolog.Options{})
//	  })
//	}
func RegisterDefaultTransportFactory(f func(io.Writer) Transport) {
	defaultTransportFactory = f
}

// Default creates a logger using the registered transport factory.
// It writes to os.Stdout and lets every level through; the transport applies
// its own floor. E.g. side import github.com/trickstertwo/snaglog/transport/zerolog
// to auto-register it. Panics if no factory is registered.
func Default() *Logger {
	if defaultTransportFactory == nil {
		panic("snaglog: no default transport registered. Import transport/zerolog or call snaglog.RegisterDefaultTransportFactory")
	}
	return newLogger(Config{
		Transports: []Transport{defaultTransportFactory(os.Stdout)},
		Level:      LevelSilly,
	})
}

// New creates a default logger (via Default()) and sets it as global.
// It returns the global logger for convenience.
func New() *Logger {
	l := Default()
	SetGlobal(l)
	return l
}

// UseTransports builds a logger over ts with the given floor, sets it as
// the global logger and returns it. Panics when ts is empty.
func UseTransports(level Level, ts ...Transport) *Logger {
	b := NewBuilder().WithLevel(level)
	for _, t := range ts {
		b.AddTransport(t)
	}
	l, err := b.Build()
	if err != nil {
		panic(err)
	}
	SetGlobal(l)
	return l
}
