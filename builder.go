package snaglog

import "github.com/trickstertwo/xclock"

// Config for constructing a Logger (Factory data structure).
type Config struct {
	Transports []Transport
	Level      Level // logger-wide floor; "" lets everything through
	Silent     bool  // drop every record before it reaches a transport
	Observers  []Observer
	Clock      xclock.Clock // optional; defaults to xclock.Default()
	RecordIDs  bool         // stamp a uuid on every record
}

// Builder separates construction from representation (Builder pattern).
type Builder struct {
	cfg Config
}

func NewBuilder() *Builder {
	return &Builder{cfg: Config{Level: LevelInfo}}
}

func (b *Builder) AddTransport(t Transport) *Builder {
	if t != nil {
		b.cfg.Transports = append(b.cfg.Transports, t)
	}
	return b
}

func (b *Builder) WithLevel(l Level) *Builder {
	b.cfg.Level = l
	return b
}

func (b *Builder) WithSilent(s bool) *Builder {
	b.cfg.Silent = s
	return b
}

func (b *Builder) WithClock(c xclock.Clock) *Builder {
	b.cfg.Clock = c
	return b
}

func (b *Builder) WithRecordIDs(on bool) *Builder {
	b.cfg.RecordIDs = on
	return b
}

func (b *Builder) AddObserver(o Observer) *Builder {
	b.cfg.Observers = append(b.cfg.Observers, o)
	return b
}

// Build constructs the Logger (Factory + Builder).
func (b *Builder) Build() (*Logger, error) {
	if len(b.cfg.Transports) == 0 {
		return nil, ErrNoTransport
	}
	return newLogger(b.cfg), nil
}
