package bugsnag

import (
	"errors"
	"fmt"

	"github.com/trickstertwo/snaglog"
)

// ErrNilClient is returned by New when the client factory yields no client.
var ErrNilClient = errors.New("bugsnag: client factory returned nil client")

// Transport forwards log records to Bugsnag.
//
// Records are dropped when the transport is silent or less severe than its
// floor. Pipeline levels are translated to Bugsnag severities and the
// pipeline's bookkeeping keys are stripped from the forwarded metadata.
// Manual reporting: https://docs.bugsnag.com/platform/go/reporting-handled-errors/
//
// A Transport is immutable after New and safe for concurrent use when its
// client is.
type Transport struct {
	silent    bool
	level     snaglog.Level
	client    Client
	observers []snaglog.Observer
}

var _ snaglog.Transport = (*Transport)(nil)

// New builds the client from cfg.Bugsnag and returns the transport.
// Client construction errors are returned wrapped.
func New(cfg Config) (*Transport, error) {
	factory := cfg.NewClient
	if factory == nil {
		factory = defaultClientFactory
	}
	c, err := factory(cfg.Bugsnag)
	if err != nil {
		return nil, fmt.Errorf("bugsnag: create client: %w", err)
	}
	if c == nil {
		return nil, ErrNilClient
	}
	return &Transport{
		silent:    cfg.Silent,
		level:     cfg.Level,
		client:    c,
		observers: append([]snaglog.Observer(nil), cfg.Observers...),
	}, nil
}

// Client returns the client built at construction, for manual reporting.
func (t *Transport) Client() Client { return t.client }

// Silent reports whether every record is dropped.
func (t *Transport) Silent() bool { return t.silent }

// Level returns the floor; "" forwards every level.
func (t *Transport) Level() snaglog.Level { return t.level }

// Log forwards rec to the client unless it is filtered out. done is called
// exactly once before Log returns, on every path. The client's result is not
// inspected: delivery is the client's concern.
func (t *Transport) Log(rec snaglog.Record, done func()) {
	snaglog.NotifyLogged(t.observers, rec)
	if done != nil {
		defer done()
	}

	if t.silent || !shouldLog(t.level, rec.Level) {
		return
	}

	opts := NotifyOptions{Severity: severityFor(rec.Level)}

	// The record is an error value logged on its own: report the error as-is.
	if rec.IsError() {
		if msg := rec.Err.Error(); msg != "" {
			opts.MetaData = map[string]any{snaglog.MessageKey: msg}
		}
		_ = t.client.Notify(rec.Err, opts)
		return
	}

	opts.MetaData = filterMeta(rec.Meta)
	_ = t.client.Notify(Message(rec.Message), opts)
}
