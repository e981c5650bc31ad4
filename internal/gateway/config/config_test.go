package config

import "testing"

func TestNormalizePort(t *testing.T) {
	if got := normalizePort("8080"); got != ":8080" {
		t.Fatalf("normalizePort(8080) = %q", got)
	}
	if got := normalizePort(":9000"); got != ":9000" {
		t.Fatalf("normalizePort(:9000) = %q", got)
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := firstNonEmpty("", "  ", "x", "y"); got != "x" {
		t.Fatalf("firstNonEmpty = %q", got)
	}
	if got := firstNonEmpty("", "  "); got != "" {
		t.Fatalf("firstNonEmpty on blanks = %q", got)
	}
}

func TestEnvFloatPriorityOrder(t *testing.T) {
	t.Setenv("LLM_RPS", "2.5")
	t.Setenv("GEMINI_RPS", "9")
	if got := envFloat("LLM_RPS", "GEMINI_RPS"); got != 2.5 {
		t.Fatalf("envFloat = %v", got)
	}
}

func TestEnvFloatFallsThroughUnparseable(t *testing.T) {
	t.Setenv("LLM_RPS", "not a number")
	t.Setenv("GEMINI_RPS", "3")
	if got := envFloat("LLM_RPS", "GEMINI_RPS"); got != 3 {
		t.Fatalf("envFloat = %v", got)
	}
}

func TestLoadModelConfigDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GEMINI_MODEL", "")
	mc := loadModelConfig()
	if mc.Name != defaultModel {
		t.Fatalf("model = %q, want %q", mc.Name, defaultModel)
	}
	if mc.APIKey != "" {
		t.Fatalf("api key = %q", mc.APIKey)
	}
}

func TestLoadUploadConfig(t *testing.T) {
	t.Setenv("MAX_UPLOAD_BYTES", "")
	if got := loadUploadConfig().MaxBytes; got != 1<<20 {
		t.Fatalf("default max = %d", got)
	}
	t.Setenv("MAX_UPLOAD_BYTES", "2048")
	if got := loadUploadConfig().MaxBytes; got != 2048 {
		t.Fatalf("max = %d", got)
	}
	t.Setenv("MAX_UPLOAD_BYTES", "-5")
	if got := loadUploadConfig().MaxBytes; got != 1<<20 {
		t.Fatalf("negative max should fall back, got %d", got)
	}
}
