package logging

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetupLoggerLevels(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default_warn", 0, zerolog.WarnLevel},
		{"info", 1, zerolog.InfoLevel},
		{"debug", 2, zerolog.DebugLevel},
		{"trace", 3, zerolog.TraceLevel},
		{"trace_above", 10, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetupLogger(tt.verbosity)
			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
		})
	}
}

func TestGetLogger(t *testing.T) {
	SetupLogger(0)
	logger := GetLogger("pipeline")
	// The component logger must be usable without panicking.
	logger.Debug().Msg("component logger smoke test")
}

func TestGetLogFilePath(t *testing.T) {
	path := getLogFilePath()
	assert.True(t, strings.HasSuffix(path, "snipforge.log"))
	assert.Contains(t, path, "snipforge")
}
