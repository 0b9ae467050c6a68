package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalize_FillsDefaults(t *testing.T) {
	var cfg Config
	cfg.Normalize()

	if cfg.BufferSize != DefaultBufferSize {
		t.Errorf("BufferSize = %d, want %d", cfg.BufferSize, DefaultBufferSize)
	}
	if cfg.MaxStringLen != DefaultMaxStringLen {
		t.Errorf("MaxStringLen = %d, want %d", cfg.MaxStringLen, DefaultMaxStringLen)
	}
	if cfg.WarnThresholdBytes != DefaultWarnBytes {
		t.Errorf("WarnThresholdBytes = %d, want %d", cfg.WarnThresholdBytes, DefaultWarnBytes)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, DefaultLogLevel)
	}
}

func TestNormalize_KeepsExplicitValues(t *testing.T) {
	cfg := Config{BufferSize: 64, MaxStringLen: 128, WarnThresholdBytes: 1024}
	cfg.Normalize()

	if cfg.BufferSize != 64 || cfg.MaxStringLen != 128 || cfg.WarnThresholdBytes != 1024 {
		t.Errorf("Normalize overwrote explicit values: %+v", cfg)
	}
}

func TestValidate_RejectsNegatives(t *testing.T) {
	cases := []Config{
		{BufferSize: -1},
		{MaxStringLen: -1},
		{WarnThresholdBytes: -1},
	}
	for _, cfg := range cases {
		if err := cfg.Validate(); err == nil {
			t.Errorf("Validate(%+v) = nil, want error", cfg)
		}
	}
}

func TestValidate_LogLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		cfg := Config{LogLevel: level}
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate rejected log_level %q: %v", level, err)
		}
	}
	cfg := Config{LogLevel: "loud"}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate accepted log_level \"loud\"")
	}
}

func TestLoad_ExpandsEnvAndNormalizes(t *testing.T) {
	t.Setenv("SLUICE_TEST_MAXLEN", "4096")

	path := filepath.Join(t.TempDir(), "sluice.yaml")
	body := "max_string_len: ${SLUICE_TEST_MAXLEN}\nwarn_threshold_bytes: ${SLUICE_TEST_WARN:-2048}\nstats: true\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxStringLen != 4096 {
		t.Errorf("MaxStringLen = %d, want env value 4096", cfg.MaxStringLen)
	}
	if cfg.WarnThresholdBytes != 2048 {
		t.Errorf("WarnThresholdBytes = %d, want default-expanded 2048", cfg.WarnThresholdBytes)
	}
	if cfg.BufferSize != DefaultBufferSize {
		t.Errorf("BufferSize = %d, want normalized default", cfg.BufferSize)
	}
	if !cfg.Stats {
		t.Error("Stats = false, want true")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("Load of missing file succeeded")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sluice.yaml")
	if err := os.WriteFile(path, []byte("buffer_size: [oops"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load of invalid YAML succeeded")
	}
}
