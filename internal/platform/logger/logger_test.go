package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestJSONLogger_MergesBaseAndFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Debug, Format: FormatJSON, App: "pawfect-match", Output: &buf})

	l.With(map[string]any{"module": "pets"}).Info("pet created", map[string]any{
		"pet_id": 7,
		"err":    errors.New("boom"),
		" ":      "ignored",
	})

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("invalid json log line %q: %v", buf.String(), err)
	}
	if entry["msg"] != "pet created" || entry["level"] != "info" {
		t.Fatalf("unexpected entry %#v", entry)
	}
	if entry["app"] != "pawfect-match" || entry["module"] != "pets" {
		t.Fatalf("missing base fields %#v", entry)
	}
	if entry["err"] != "boom" {
		t.Fatalf("expected error rendered as string, got %#v", entry["err"])
	}
	if _, ok := entry[" "]; ok {
		t.Fatalf("blank key should be dropped")
	}
}

func TestLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Format: FormatText, Output: &buf})

	l.Info("hidden", nil)
	l.Warn("shown", nil)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Fatalf("warn should be logged: %q", out)
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	if ParseLevel("WARNING") != Warn || ParseLevel("nope") != Info {
		t.Fatalf("unexpected level parsing")
	}
	if ParseFormat(" JSON ") != FormatJSON || ParseFormat("") != FormatText {
		t.Fatalf("unexpected format parsing")
	}
}
