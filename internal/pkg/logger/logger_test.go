package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]LogLevel{
		"debug":   DebugLevel,
		" WARN ":  WarnLevel,
		"error":   ErrorLevel,
		"":        InfoLevel,
		"verbose": InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestConfigure_JSONOutput(t *testing.T) {
	defer Configure(Config{Level: InfoLevel, Pretty: true, Output: os.Stdout})

	var buf bytes.Buffer
	Configure(Config{Level: WarnLevel, Output: &buf})

	Info().Msg("dropped")
	Warn().Str("collection", "students").Msg("kept")

	var entry map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("expected exactly one JSON line, got %q: %v", buf.String(), err)
	}
	if entry["message"] != "kept" || entry["collection"] != "students" {
		t.Errorf("unexpected log entry: %v", entry)
	}
}
