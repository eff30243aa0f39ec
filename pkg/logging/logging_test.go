package logging

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		quiet     bool
		level     string
		wantLevel zerolog.Level
	}{
		{"defaults to warn", false, false, "", zerolog.WarnLevel},
		{"config level info", false, false, "info", zerolog.InfoLevel},
		{"config level debug", false, false, "debug", zerolog.DebugLevel},
		{"config level error", false, false, "error", zerolog.ErrorLevel},
		{"unknown level falls back to warn", false, false, "loud", zerolog.WarnLevel},
		{"verbose wins over config", true, false, "error", zerolog.DebugLevel},
		{"quiet wins over everything", true, true, "debug", zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Setup(tt.verbose, tt.quiet, tt.level)

			if zerolog.GlobalLevel() != tt.wantLevel {
				t.Errorf("Setup(%v, %v, %q) set level %v, want %v",
					tt.verbose, tt.quiet, tt.level, zerolog.GlobalLevel(), tt.wantLevel)
			}
		})
	}
}

func TestGetLogger(t *testing.T) {
	Setup(false, false, "debug")

	logger := GetLogger("test")

	// Must be usable without panicking; the component field is attached
	// to every event it emits.
	logger.Debug().Msg("component logger works")
}
