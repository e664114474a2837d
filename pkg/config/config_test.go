package config

import "testing"

func TestDefaultEngineConfigValidates(t *testing.T) {
	cfg := DefaultEngineConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected default config to validate, got %v", err)
	}
}

func TestValidateRejectsZeroCapacity(t *testing.T) {
	cfg := DefaultEngineConfig()
	cfg.InitialVertexCapacity = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for zero initial vertex capacity")
	}
}

func TestValidateRejectsUnknownLogLevel(t *testing.T) {
	cfg := DefaultEngineConfig()
	cfg.LogLevel = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for unknown log level")
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	if _, err := Load("/nonexistent/path/engine.yaml"); err == nil {
		t.Fatal("expected error loading a nonexistent config file")
	}
}
