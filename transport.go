package snaglog

// Transport is a logging backend Strategy. The Logger fans every accepted
// record out to each of its transports.
//
// Log must call done exactly once, synchronously, whatever it decides to do
// with the record. Silent and Level expose the transport's own switches;
// each transport applies them itself.
type Transport interface {
	Log(rec Record, done func())
	Silent() bool
	Level() Level // "" means no floor
}

// Observer is notified with accepted records (Observer pattern).
// Implementations MUST be concurrency-safe.
type Observer interface {
	OnLog(rec Record)
}

// ObserverFunc adapter.
type ObserverFunc func(Record)

func (f ObserverFunc) OnLog(r Record) { f(r) }

// NotifyLogged fans rec out to obs on a new goroutine. Transports use it for
// their "logged" hook so listeners never run on the caller's stack.
func NotifyLogged(obs []Observer, rec Record) {
	if len(obs) == 0 {
		return
	}
	c := rec.Clone()
	go func() {
		for _, o := range obs {
			o.OnLog(c)
		}
	}()
}
