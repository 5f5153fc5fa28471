package logging_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/apportion/logging"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.want, logging.ParseLevel(tc.input))
		})
	}
}

// TestNewText_RespectsLevel checks that messages below the level are dropped
// and structured fields are rendered.
func TestNewText_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logging.NewText(&buf, slog.LevelInfo)

	log.Debug("hidden")
	log.Info("majority correction", "party", 2)
	log.Warn("skipped")
	log.Error("failed")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "majority correction")
	assert.Contains(t, out, "party=2")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "level=ERROR")
}

func TestNop(t *testing.T) {
	var log logging.Logger = logging.NewNop()
	assert.NotPanics(t, func() {
		log.Debug("x", "k", 1)
		log.Info("x")
		log.Warn("x")
		log.Error("x")
	})
}
