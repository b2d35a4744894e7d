package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestSetup(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	tests := []struct {
		name      string
		level     string
		wantErr   bool
		wantLevel zerolog.Level
	}{
		{name: "debug", level: "debug", wantLevel: zerolog.DebugLevel},
		{name: "warn", level: "warn", wantLevel: zerolog.WarnLevel},
		{name: "empty defaults to info", level: "", wantLevel: zerolog.InfoLevel},
		{name: "invalid", level: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := Setup(tt.level, &buf)

			if tt.wantErr {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if zerolog.GlobalLevel() != tt.wantLevel {
				t.Errorf("expected level %v, got %v", tt.wantLevel, zerolog.GlobalLevel())
			}
		})
	}
}

func TestSetup_WritesStructuredFields(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var buf bytes.Buffer
	if err := Setup("info", &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	log.Info().Str("screen", "inventory").Msg("verified")

	out := buf.String()
	if !strings.Contains(out, "verified") || !strings.Contains(out, "screen=") {
		t.Errorf("expected message and field in output, got %q", out)
	}
}
