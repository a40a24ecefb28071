package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// envConfig holds configuration from environment variables.
// Provides pipeline-friendly defaults without repeating flags on every call.
type envConfig struct {
	Lang    string // AUTONBSP_LANG: language code
	Marker  string // AUTONBSP_MARKER: replacement marker
	Rules   string // AUTONBSP_RULES: rule file name or path
	Workers int    // AUTONBSP_WORKERS: parallel workers
}

// knownEnvVars lists valid AUTONBSP_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"AUTONBSP_LANG":    true,
	"AUTONBSP_MARKER":  true,
	"AUTONBSP_RULES":   true,
	"AUTONBSP_WORKERS": true,
}

// loadEnvConfig reads configuration from environment variables.
// Invalid values are ignored, not errors: a bad AUTONBSP_WORKERS falls
// back to auto-sizing instead of failing a batch in a pipeline.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		Lang:   os.Getenv("AUTONBSP_LANG"),
		Marker: os.Getenv("AUTONBSP_MARKER"),
		Rules:  os.Getenv("AUTONBSP_RULES"),
	}

	if workers := os.Getenv("AUTONBSP_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 && w <= maxWorkers {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized AUTONBSP_* variables.
// Helps catch typos like AUTONBSP_LANGUAGE instead of AUTONBSP_LANG.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "AUTONBSP_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}
