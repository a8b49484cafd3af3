package bugsnag

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/trickstertwo/snaglog"
)

// Config configures a Transport. It is read once by New.
type Config struct {
	Silent  bool          `yaml:"silent"`
	Level   snaglog.Level `yaml:"level"` // "" forwards every level
	Bugsnag Options       `yaml:"bugsnag"`

	// NewClient builds the client from Bugsnag. Defaults to a bugsnag-go
	// backed Notifier.
	NewClient ClientFactory `yaml:"-"`

	// Observers are told about every record Log receives, including dropped
	// ones. They run on a separate goroutine.
	Observers []snaglog.Observer `yaml:"-"`
}

// Options are the Bugsnag client settings. The transport never reads them;
// they go to the ClientFactory untouched.
type Options struct {
	APIKey              string    `yaml:"apiKey"`
	AppVersion          string    `yaml:"appVersion"`
	AppType             string    `yaml:"appType"`
	ReleaseStage        string    `yaml:"releaseStage"`
	Hostname            string    `yaml:"hostname"`
	NotifyReleaseStages []string  `yaml:"notifyReleaseStages"`
	ProjectPackages     []string  `yaml:"projectPackages"`
	Endpoints           Endpoints `yaml:"endpoints"`
	Synchronous         bool      `yaml:"synchronous"` // block Notify until delivered

	Transport http.RoundTripper `yaml:"-"`
	Logger    Printfer          `yaml:"-"` // bugsnag-go's own diagnostics
}

// Endpoints override the notify and session URLs (e.g. on-premise installs).
type Endpoints struct {
	Notify   string `yaml:"notify"`
	Sessions string `yaml:"sessions"`
}

// Printfer is the logger shape bugsnag-go reports its diagnostics to.
type Printfer interface {
	Printf(format string, v ...interface{})
}

// LoadConfig reads a YAML config file. See ParseConfig.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("bugsnag: open config: %w", err)
	}
	defer f.Close()
	return ParseConfig(f)
}

// envRef matches ${VAR} references. Bare $ text is left alone.
var envRef = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// expandEnv replaces ${VAR} references with their environment value; an
// unset variable expands to "".
func expandEnv(s string) string {
	return envRef.ReplaceAllStringFunc(s, func(ref string) string {
		return os.Getenv(ref[2 : len(ref)-1])
	})
}

// ParseConfig decodes a YAML config. ${VAR} references are expanded from the
// environment first, so secrets like the API key can stay out of the file.
// Any other "$" is kept literally. Unknown keys are rejected.
func ParseConfig(r io.Reader) (Config, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("bugsnag: read config: %w", err)
	}

	var cfg Config
	dec := yaml.NewDecoder(strings.NewReader(expandEnv(string(raw))))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("bugsnag: parse config: %w", err)
	}
	if cfg.Level != "" {
		cfg.Level = snaglog.ParseLevel(string(cfg.Level))
	}
	return cfg, nil
}
