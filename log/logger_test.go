package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLogger_EmitsComponentContext(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("stream.fd").WithOutput(&buf)

	logger.Warn("very large transfer", map[string]any{"bytes": 300})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not one JSON object: %v (%q)", err, buf.String())
	}
	if entry["component"] != "stream.fd" {
		t.Errorf("component = %v, want stream.fd", entry["component"])
	}
	if entry["level"] != "warn" {
		t.Errorf("level = %v, want warn", entry["level"])
	}
	if !strings.Contains(buf.String(), "very large transfer") {
		t.Error("message missing from output")
	}
}

func TestSugaredLogger_Printf(t *testing.T) {
	var buf bytes.Buffer
	sugar := NewLogger("cli").WithOutput(&buf).Sugar()

	sugar.Infof("decoded %d fields", 3)

	if !strings.Contains(buf.String(), "decoded 3 fields") {
		t.Errorf("formatted message missing: %q", buf.String())
	}
}

func TestNewLoggerAt_DropsEntriesBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerAt("cli", "warn").WithOutput(&buf)

	logger.Info("quiet", nil)
	if buf.Len() != 0 {
		t.Fatalf("info entry leaked through a warn floor: %q", buf.String())
	}

	logger.Warn("loud", nil)
	if !strings.Contains(buf.String(), "loud") {
		t.Errorf("warn entry missing: %q", buf.String())
	}
}

func TestNewLoggerAt_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerAt("cli", "loud").WithOutput(&buf)

	logger.Debug("quiet", nil)
	if buf.Len() != 0 {
		t.Fatalf("debug entry leaked through the info fallback: %q", buf.String())
	}

	logger.Info("visible", nil)
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("info entry missing: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	if _, err := ParseLevel("debug"); err != nil {
		t.Errorf("ParseLevel(debug): %v", err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("ParseLevel accepted an unknown level")
	}
}

func TestNop_DiscardsEverything(t *testing.T) {
	// Must not panic and must not write anywhere.
	Nop().Error("ignored", nil)
}
