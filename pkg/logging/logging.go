// Package logging configures the global zerolog logger for configdiff.
//
// All log output goes to stderr so that machine-readable diff output on
// stdout stays clean and byte-stable across runs.
package logging

import (
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global logger.
//
// verbose and quiet come from the command line and win over level, which
// comes from the configuration file ("debug", "info", "warn" or "error").
// Every invocation gets a fresh run ID so interleaved runs can be told
// apart in shared log streams.
func Setup(verbose, quiet bool, level string) {
	switch {
	case quiet:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(parseLevel(level))
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
	}

	log.Logger = zerolog.New(consoleWriter).With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger()

	log.Debug().Str("level", zerolog.GlobalLevel().String()).Msg("logger initialized")
}

// GetLogger returns a logger tagged with the given component name
func GetLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}
