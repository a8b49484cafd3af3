package bugsnag

import (
	"github.com/trickstertwo/snaglog"
)

// Use builds a Transport from cfg, wires it (plus any extra transports,
// typically a console one) into a logger, sets that logger as global and
// returns it. The logger itself applies no floor; every transport filters
// on its own Level.
func Use(cfg Config, extra ...snaglog.Transport) (*snaglog.Logger, error) {
	t, err := New(cfg)
	if err != nil {
		return nil, err
	}
	b := snaglog.NewBuilder().
		WithLevel("").
		AddTransport(t)
	for _, e := range extra {
		b.AddTransport(e)
	}
	l, err := b.Build()
	if err != nil {
		return nil, err
	}
	snaglog.SetGlobal(l)
	return l, nil
}
