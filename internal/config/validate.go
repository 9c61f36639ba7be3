package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

const (
	defaultOutput  = "output"
	defaultShell   = "bash"
	defaultTimeout = 10
)

var varNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate checks the config for errors and sets defaults.
func Validate(cfg *Config) error {
	if cfg.Output == "" {
		cfg.Output = defaultOutput
	}
	if cfg.Shell == "" {
		cfg.Shell = defaultShell
	}
	if strings.ContainsAny(cfg.Output, " \t\n") {
		return fmt.Errorf("config: 'output' %q must be a single word", cfg.Output)
	}
	if len(cfg.Runners) == 0 {
		return fmt.Errorf("config: at least one runner is required")
	}

	for _, pattern := range cfg.Include {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("config: include: invalid pattern %q", pattern)
		}
	}

	seen := make(map[string]bool)
	for i := range cfg.Runners {
		r := &cfg.Runners[i]

		if r.Lang == "" {
			return fmt.Errorf("config: runner %d: 'lang' is required", i+1)
		}
		if strings.ContainsAny(r.Lang, " \t\n") {
			return fmt.Errorf("config: runner %d: 'lang' %q must be a single word", i+1, r.Lang)
		}
		if r.Lang == cfg.Output {
			return fmt.Errorf("config: runner %q: lang is the output lang", r.Lang)
		}
		if seen[r.Lang] {
			return fmt.Errorf("config: duplicate runner for lang %q", r.Lang)
		}
		seen[r.Lang] = true

		if strings.TrimSpace(r.Run) == "" {
			return fmt.Errorf("config: runner %q: 'run' is required", r.Lang)
		}
		if r.Timeout < 0 {
			return fmt.Errorf("config: runner %q: timeout must be >= 0", r.Lang)
		}
		if r.Timeout == 0 {
			r.Timeout = defaultTimeout
		}
		for k := range r.Env {
			if !varNameRe.MatchString(k) {
				return fmt.Errorf("config: runner %q: env: %q is not a valid variable name (must match [A-Za-z_][A-Za-z0-9_]*)", r.Lang, k)
			}
		}
	}

	return nil
}
