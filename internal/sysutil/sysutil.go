// Package sysutil holds process-level helpers used by cmd/server: global
// zerolog configuration and build version resolution.
package sysutil

import (
	"io"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogOptions configures the process logger.
type LogOptions struct {
	// Level is a zerolog level name; "warning" is accepted for "warn".
	// Unknown or empty values mean info.
	Level string
	// Pretty selects the console writer instead of JSON lines.
	Pretty bool
	// Service and Version are attached to every line when set.
	Service string
	Version string
}

// SetupLogger installs the global zerolog logger on stdout and makes it the
// fallback for zerolog.Ctx, so code running outside a request still logs.
func SetupLogger(opts LogOptions) zerolog.Logger {
	return setupLogger(os.Stdout, opts)
}

func setupLogger(w io.Writer, opts LogOptions) zerolog.Logger {
	zerolog.SetGlobalLevel(ParseLevel(opts.Level))
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }

	out := w
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	lc := zerolog.New(out).With().Timestamp()
	if opts.Service != "" {
		lc = lc.Str("service", opts.Service)
	}
	if opts.Version != "" {
		lc = lc.Str("version", opts.Version)
	}
	log.Logger = lc.Logger()
	zerolog.DefaultContextLogger = &log.Logger
	return log.Logger
}

// ParseLevel maps a level name to a zerolog level, falling back to info.
// Disabled levels ("disabled", "nolevel") are not honored: the API always
// logs errors.
func ParseLevel(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || lvl == zerolog.NoLevel || lvl == zerolog.Disabled {
		return zerolog.InfoLevel
	}
	return lvl
}

// Version resolves the version reported by the process: APP_VERSION wins,
// then the value stamped with -ldflags, then the main module version from
// the build info. It returns "dev" when nothing is known.
func Version(stamped string) string {
	if v := strings.TrimSpace(os.Getenv("APP_VERSION")); v != "" {
		return v
	}
	if stamped != "" && stamped != "dev" {
		return stamped
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return "dev"
}
