package main

// Notes:
// - loadEnvConfig: we test all four environment variables. Invalid and
//   out-of-range AUTONBSP_WORKERS values are tested specifically to verify
//   graceful handling (ignored, not errors).
// - warnUnknownEnvVars: we test typo detection and that known vars don't warn.
// - Tests use t.Setenv() which prevents t.Parallel() at parent level.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Environment variable loading
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Run("all variables", func(t *testing.T) {
		t.Setenv("AUTONBSP_LANG", "cs")
		t.Setenv("AUTONBSP_MARKER", " ")
		t.Setenv("AUTONBSP_RULES", "corporate")
		t.Setenv("AUTONBSP_WORKERS", "4")

		cfg := loadEnvConfig()

		if cfg.Lang != "cs" {
			t.Errorf("Lang = %q, want cs", cfg.Lang)
		}
		if cfg.Marker != " " {
			t.Errorf("Marker = %q, want NBSP", cfg.Marker)
		}
		if cfg.Rules != "corporate" {
			t.Errorf("Rules = %q, want corporate", cfg.Rules)
		}
		if cfg.Workers != 4 {
			t.Errorf("Workers = %d, want 4", cfg.Workers)
		}
	})

	t.Run("unset variables stay zero", func(t *testing.T) {
		t.Setenv("AUTONBSP_LANG", "")
		t.Setenv("AUTONBSP_WORKERS", "")

		cfg := loadEnvConfig()

		if cfg.Lang != "" || cfg.Marker != "" || cfg.Rules != "" || cfg.Workers != 0 {
			t.Errorf("expected zero config, got %+v", cfg)
		}
	})

	t.Run("invalid workers ignored", func(t *testing.T) {
		t.Setenv("AUTONBSP_WORKERS", "many")

		if cfg := loadEnvConfig(); cfg.Workers != 0 {
			t.Errorf("Workers = %d, want 0 (invalid value ignored)", cfg.Workers)
		}
	})

	t.Run("negative workers ignored", func(t *testing.T) {
		t.Setenv("AUTONBSP_WORKERS", "-2")

		if cfg := loadEnvConfig(); cfg.Workers != 0 {
			t.Errorf("Workers = %d, want 0 (negative value ignored)", cfg.Workers)
		}
	})

	t.Run("oversized workers ignored", func(t *testing.T) {
		t.Setenv("AUTONBSP_WORKERS", "10000")

		if cfg := loadEnvConfig(); cfg.Workers != 0 {
			t.Errorf("Workers = %d, want 0 (out-of-range value ignored)", cfg.Workers)
		}
	})
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Run("unknown variable warns", func(t *testing.T) {
		t.Setenv("AUTONBSP_LANGUGE", "cs")

		var buf bytes.Buffer
		warnUnknownEnvVars(&buf)

		if !strings.Contains(buf.String(), "AUTONBSP_LANGUGE") {
			t.Errorf("expected warning for AUTONBSP_LANGUGE, got %q", buf.String())
		}
		if !strings.Contains(buf.String(), "typo") {
			t.Errorf("warning should mention typo, got %q", buf.String())
		}
	})

	t.Run("known variables don't warn", func(t *testing.T) {
		t.Setenv("AUTONBSP_LANG", "cs")
		t.Setenv("AUTONBSP_MARKER", "x")
		t.Setenv("AUTONBSP_RULES", "r")
		t.Setenv("AUTONBSP_WORKERS", "2")

		var buf bytes.Buffer
		warnUnknownEnvVars(&buf)

		for _, name := range []string{"AUTONBSP_LANG", "AUTONBSP_MARKER", "AUTONBSP_RULES", "AUTONBSP_WORKERS"} {
			if strings.Contains(buf.String(), name+" ") {
				t.Errorf("unexpected warning for %s: %q", name, buf.String())
			}
		}
	})

	t.Run("unrelated variables ignored", func(t *testing.T) {
		t.Setenv("AUTONBSPX_LANG", "cs")

		var buf bytes.Buffer
		warnUnknownEnvVars(&buf)

		if strings.Contains(buf.String(), "AUTONBSPX_LANG") {
			t.Errorf("prefix match too loose: %q", buf.String())
		}
	})
}
