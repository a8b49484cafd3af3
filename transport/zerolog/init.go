package zerolog

import (
	"io"
	"os"
	"strconv"

	"github.com/trickstertwo/snaglog"
)

// Env:
//
//	SNAGLOG_LEVEL                  : error|warn|info|verbose|debug|silly (default info)
//	SNAGLOG_SILENT=1               : drop everything
//	SNAGLOG_CONSOLE=1              : enable ConsoleWriter (pretty output)
//	SNAGLOG_CALLER=1               : include caller
//	SNAGLOG_CALLER_SKIP=<int>      : frames to skip (default 5)
//	SNAGLOG_CONSOLE_TIMEFORMAT=... : optional console time layout (default RFC3339Nano)
func init() {
	snaglog.RegisterDefaultTransportFactory(func(w io.Writer) snaglog.Transport {
		return NewTransport(configFromEnv(w))
	})
}

func configFromEnv(w io.Writer) Config {
	level := snaglog.LevelInfo
	if s := os.Getenv("SNAGLOG_LEVEL"); s != "" {
		level = snaglog.ParseLevel(s)
	}
	return Config{
		Writer:            w,
		Level:             level,
		Silent:            os.Getenv("SNAGLOG_SILENT") == "1",
		Console:           os.Getenv("SNAGLOG_CONSOLE") == "1",
		ConsoleTimeFormat: os.Getenv("SNAGLOG_CONSOLE_TIMEFORMAT"),
		Caller:            os.Getenv("SNAGLOG_CALLER") == "1",
		CallerSkip:        parseInt(os.Getenv("SNAGLOG_CALLER_SKIP"), 5),
	}
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}
