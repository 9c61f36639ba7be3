package config

import (
	"strings"
	"testing"
)

func minimalConfig(runners ...Runner) *Config {
	return &Config{Runners: runners}
}

func shRunner() Runner {
	return Runner{Lang: "sh", Run: "sh"}
}

func TestValidate_Defaults(t *testing.T) {
	cfg := minimalConfig(shRunner())
	if err := Validate(cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Output != "output" {
		t.Fatalf("Output = %q, want %q", cfg.Output, "output")
	}
	if cfg.Shell != "bash" {
		t.Fatalf("Shell = %q, want %q", cfg.Shell, "bash")
	}
	if cfg.Runners[0].Timeout != 10 {
		t.Fatalf("Timeout = %d, want 10", cfg.Runners[0].Timeout)
	}
}

func TestValidate_NoRunnersError(t *testing.T) {
	if err := Validate(&Config{}); err == nil || !strings.Contains(err.Error(), "at least one runner") {
		t.Fatalf("expected runners error, got %v", err)
	}
}

func TestValidate_LangRequired(t *testing.T) {
	cfg := minimalConfig(Runner{Run: "sh"})
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "'lang' is required") {
		t.Fatalf("got %v", err)
	}
}

func TestValidate_LangSingleWord(t *testing.T) {
	cfg := minimalConfig(Runner{Lang: "shell script", Run: "sh"})
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "single word") {
		t.Fatalf("got %v", err)
	}
}

func TestValidate_RunRequired(t *testing.T) {
	cfg := minimalConfig(Runner{Lang: "sh", Run: "  "})
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "'run' is required") {
		t.Fatalf("got %v", err)
	}
}

func TestValidate_DuplicateLang(t *testing.T) {
	cfg := minimalConfig(shRunner(), shRunner())
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("got %v", err)
	}
}

func TestValidate_LangCollidesWithOutput(t *testing.T) {
	cfg := minimalConfig(Runner{Lang: "output", Run: "cat"})
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "output lang") {
		t.Fatalf("got %v", err)
	}
}

func TestValidate_NegativeTimeout(t *testing.T) {
	cfg := minimalConfig(Runner{Lang: "sh", Run: "sh", Timeout: -1})
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "timeout") {
		t.Fatalf("got %v", err)
	}
}

func TestValidate_ExplicitTimeoutKept(t *testing.T) {
	cfg := minimalConfig(Runner{Lang: "sh", Run: "sh", Timeout: 3})
	if err := Validate(cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Runners[0].Timeout != 3 {
		t.Fatalf("Timeout = %d, want 3", cfg.Runners[0].Timeout)
	}
}

func TestValidate_InvalidEnvName(t *testing.T) {
	cfg := minimalConfig(Runner{Lang: "sh", Run: "sh", Env: map[string]string{"1BAD": "x"}})
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "not a valid variable name") {
		t.Fatalf("got %v", err)
	}
}

func TestValidate_InvalidIncludePattern(t *testing.T) {
	cfg := minimalConfig(shRunner())
	cfg.Include = []string{"docs/[*.md"}
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "invalid pattern") {
		t.Fatalf("got %v", err)
	}
}

func TestValidate_CustomOutput(t *testing.T) {
	cfg := minimalConfig(shRunner())
	cfg.Output = "console"
	if err := Validate(cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Output != "console" {
		t.Fatalf("Output = %q", cfg.Output)
	}
}
