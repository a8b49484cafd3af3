package bugsnag

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/trickstertwo/snaglog"
)

func TestParseConfig_FullDocument(t *testing.T) {
	t.Setenv("SNAGLOG_TEST_BUGSNAG_KEY", testAPIKey)

	doc := `
silent: false
level: Warning
bugsnag:
  apiKey: ${SNAGLOG_TEST_BUGSNAG_KEY}
  appVersion: 1.2.3
  appType: worker
  releaseStage: staging
  hostname: box-1
  notifyReleaseStages: [staging, production]
  projectPackages: [main, github.com/acme/*]
  endpoints:
    notify: https://notify.example.com
    sessions: https://sessions.example.com
  synchronous: true
`
	cfg, err := ParseConfig(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Level != snaglog.LevelWarn {
		t.Fatalf("level: got %q", cfg.Level)
	}
	want := Options{
		APIKey:              testAPIKey,
		AppVersion:          "1.2.3",
		AppType:             "worker",
		ReleaseStage:        "staging",
		Hostname:            "box-1",
		NotifyReleaseStages: []string{"staging", "production"},
		ProjectPackages:     []string{"main", "github.com/acme/*"},
		Endpoints:           Endpoints{Notify: "https://notify.example.com", Sessions: "https://sessions.example.com"},
		Synchronous:         true,
	}
	if !reflect.DeepEqual(cfg.Bugsnag, want) {
		t.Fatalf("options mismatch:\n got %+v\nwant %+v", cfg.Bugsnag, want)
	}
}

func TestParseConfig_EmptyAndUnknown(t *testing.T) {
	t.Parallel()

	cfg, err := ParseConfig(strings.NewReader(""))
	if err != nil {
		t.Fatalf("empty document: %v", err)
	}
	if cfg.Level != "" || cfg.Silent {
		t.Fatalf("expected zero config, got %+v", cfg)
	}

	if _, err := ParseConfig(strings.NewReader("levle: info\n")); err == nil {
		t.Fatal("expected unknown key to be rejected")
	}
}

func TestParseConfig_KeepsLiteralDollar(t *testing.T) {
	t.Setenv("SNAGLOG_TEST_STAGE", "prod")
	t.Setenv("HOST", "should-not-appear")

	doc := `
bugsnag:
  hostname: box-$HOST
  appVersion: v$1.0
  releaseStage: ${SNAGLOG_TEST_STAGE}
  appType: ${SNAGLOG_TEST_UNSET_VAR}worker
`
	cfg, err := ParseConfig(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Bugsnag.Hostname != "box-$HOST" || cfg.Bugsnag.AppVersion != "v$1.0" {
		t.Fatalf("literal $ rewritten: %+v", cfg.Bugsnag)
	}
	if cfg.Bugsnag.ReleaseStage != "prod" || cfg.Bugsnag.AppType != "worker" {
		t.Fatalf("${VAR} not expanded: %+v", cfg.Bugsnag)
	}
}

func TestLoadConfig_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bugsnag.yaml")
	if err := os.WriteFile(path, []byte("silent: true\nlevel: error\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.Silent || cfg.Level != snaglog.LevelError {
		t.Fatalf("config mismatch: %+v", cfg)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
