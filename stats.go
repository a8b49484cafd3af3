package snaglog

import "sync/atomic"

type stats struct {
	dispatched atomic.Uint64
	dropped    atomic.Uint64
	acked      atomic.Uint64
}

// StatsSnapshot is a point-in-time counters snapshot.
//
// Dispatched counts record deliveries (one per transport), Dropped counts
// records filtered by the logger itself, Acked counts done callbacks.
type StatsSnapshot struct {
	Dispatched uint64
	Dropped    uint64
	Acked      uint64
}

func (s *stats) snapshot() StatsSnapshot {
	return StatsSnapshot{
		Dispatched: s.dispatched.Load(),
		Dropped:    s.dropped.Load(),
		Acked:      s.acked.Load(),
	}
}

func (s *stats) reset() {
	s.dispatched.Store(0)
	s.dropped.Store(0)
	s.acked.Store(0)
}

func (s *stats) ack() { s.acked.Add(1) }
