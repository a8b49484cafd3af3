package bugsnag

import (
	"errors"
	"regexp"

	bsg "github.com/bugsnag/bugsnag-go/v2"
)

var (
	ErrMissingAPIKey = errors.New("bugsnag: api key is required")
	ErrInvalidAPIKey = errors.New("bugsnag: api key must be 32 hexadecimal characters")
)

// customTab receives metadata entries that are not themselves maps.
const customTab = "custom"

// messageClass is the error class reported for Message subjects.
const messageClass = "Error"

var apiKeyRE = regexp.MustCompile(`^[0-9a-fA-F]{32}$`)

// Notifier is a Client backed by github.com/bugsnag/bugsnag-go/v2.
type Notifier struct {
	n *bsg.Notifier
}

var _ Client = (*Notifier)(nil)

// NewNotifier validates opts and builds a bugsnag-go notifier from them.
func NewNotifier(opts Options) (*Notifier, error) {
	if opts.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if !apiKeyRE.MatchString(opts.APIKey) {
		return nil, ErrInvalidAPIKey
	}
	return &Notifier{n: bsg.New(opts.configuration())}, nil
}

// Bugsnag exposes the underlying bugsnag-go notifier.
func (n *Notifier) Bugsnag() *bsg.Notifier { return n.n }

// Notify reports subject. Map-valued metadata entries become their own tab,
// everything else lands in the "custom" tab.
func (n *Notifier) Notify(subject error, opts NotifyOptions) error {
	raw := make([]interface{}, 0, 3)
	if s, ok := toBugsnagSeverity(opts.Severity); ok {
		raw = append(raw, s)
	}
	if md := toMetaData(opts.MetaData); len(md) > 0 {
		raw = append(raw, md)
	}
	if _, ok := subject.(Message); ok {
		raw = append(raw, bsg.ErrorClass{Name: messageClass})
	}
	return n.n.Notify(subject, raw...)
}

func (o Options) configuration() bsg.Configuration {
	cfg := bsg.Configuration{
		APIKey:              o.APIKey,
		AppVersion:          o.AppVersion,
		AppType:             o.AppType,
		ReleaseStage:        o.ReleaseStage,
		Hostname:            o.Hostname,
		NotifyReleaseStages: o.NotifyReleaseStages,
		ProjectPackages:     o.ProjectPackages,
		Synchronous:         o.Synchronous,
		Transport:           o.Transport,
		Endpoints: bsg.Endpoints{
			Notify:   o.Endpoints.Notify,
			Sessions: o.Endpoints.Sessions,
		},
	}
	if o.Logger != nil {
		cfg.Logger = o.Logger
	}
	return cfg
}

// toBugsnagSeverity returns bugsnag-go's severity value (an unexported type).
func toBugsnagSeverity(s Severity) (interface{}, bool) {
	switch s {
	case SeverityError:
		return bsg.SeverityError, true
	case SeverityWarning:
		return bsg.SeverityWarning, true
	case SeverityInfo:
		return bsg.SeverityInfo, true
	}
	return nil, false
}

func toMetaData(meta map[string]any) bsg.MetaData {
	if len(meta) == 0 {
		return nil
	}
	md := make(bsg.MetaData, len(meta))
	add := func(tab, k string, v any) {
		if md[tab] == nil {
			md[tab] = make(map[string]interface{})
		}
		md[tab][k] = plain(v)
	}
	for k, v := range meta {
		if tab, ok := v.(map[string]any); ok {
			for tk, tv := range tab {
				add(k, tk, tv)
			}
			continue
		}
		add(customTab, k, v)
	}
	return md
}

// plain turns errors into their text; bugsnag-go would encode them as {}.
func plain(v any) any {
	if err, ok := v.(error); ok && err != nil {
		return err.Error()
	}
	return v
}
