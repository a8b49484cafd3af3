package bugsnag

// Severity is the error-reporting service's severity vocabulary.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// NotifyOptions carries the per-report data that accompanies a subject.
// An empty Severity leaves the choice to the client.
type NotifyOptions struct {
	Severity Severity
	MetaData map[string]any
}

// Message is a plain text report subject. It implements error so both
// subject shapes travel through the same Notify signature.
type Message string

func (m Message) Error() string { return string(m) }

// Client is the error-reporting surface the transport drives.
// subject is either an error value or a Message.
type Client interface {
	Notify(subject error, opts NotifyOptions) error
}

// ClientFactory builds a Client from opaque options. The transport calls it
// once, passing Config.Bugsnag through unmodified.
type ClientFactory func(opts Options) (Client, error)

func defaultClientFactory(opts Options) (Client, error) {
	n, err := NewNotifier(opts)
	if err != nil {
		return nil, err
	}
	return n, nil
}
