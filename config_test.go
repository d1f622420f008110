package casetrail

import (
	"errors"
	"testing"
)

func TestDefaultConfig_SourceIDDefaultsToHostname(t *testing.T) {
	cfg := DefaultConfig()
	// Hostname may legitimately be empty in odd environments; only assert
	// that WithDefaults is consistent with it.
	if got := (Config{}).WithDefaults(); got.SourceID != cfg.SourceID {
		t.Errorf("WithDefaults SourceID = %q, want %q", got.SourceID, cfg.SourceID)
	}
}

func TestConfig_WithDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := Config{SourceID: "qa-laptop", Debug: true, DebugLogPath: "/tmp/x.log"}
	got := cfg.WithDefaults()

	if got.SourceID != "qa-laptop" {
		t.Errorf("SourceID = %q, want explicit value kept", got.SourceID)
	}
	if !got.Debug || got.DebugLogPath != "/tmp/x.log" {
		t.Errorf("debug settings altered: %+v", got)
	}
}

func TestConfig_Validate_RejectsLogPathWithoutDebug(t *testing.T) {
	cfg := Config{DebugLogPath: "/tmp/x.log"}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error for DebugLogPath without Debug")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "DebugLogPath" {
		t.Errorf("expected ValidationError on DebugLogPath, got %v", err)
	}

	cfg.Debug = true
	if err := cfg.Validate(); err != nil {
		t.Errorf("Debug + DebugLogPath should be valid, got %v", err)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("CASETRAIL_SOURCE_ID", "ci-runner")
	t.Setenv("CASETRAIL_DEBUG", "1")
	t.Setenv("CASETRAIL_DEBUG_LOG", "/tmp/casetrail.log")

	cfg := ConfigFromEnv()
	if cfg.SourceID != "ci-runner" {
		t.Errorf("SourceID = %q, want ci-runner", cfg.SourceID)
	}
	if !cfg.Debug {
		t.Error("Debug = false, want true")
	}
	if cfg.DebugLogPath != "/tmp/casetrail.log" {
		t.Errorf("DebugLogPath = %q", cfg.DebugLogPath)
	}
}

func TestConfigFromEnv_Unset(t *testing.T) {
	t.Setenv("CASETRAIL_SOURCE_ID", "")
	t.Setenv("CASETRAIL_DEBUG", "")
	t.Setenv("CASETRAIL_DEBUG_LOG", "")

	cfg := ConfigFromEnv()
	if cfg.Debug {
		t.Error("Debug = true with empty env var")
	}
	if cfg.SourceID != "" {
		t.Errorf("SourceID = %q, want empty", cfg.SourceID)
	}
}
