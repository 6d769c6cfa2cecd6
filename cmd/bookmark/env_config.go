package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-bookmark/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without editing book.yaml.
type envConfig struct {
	ConfigPath string // BOOKMARK_CONFIG: config file path
	OutputDir  string // BOOKMARK_OUT: output directory
	Engine     string // BOOKMARK_ENGINE: native or commonmark
	Highlight  string // BOOKMARK_HIGHLIGHT: chroma style name
	Style      string // BOOKMARK_STYLE: CSS style name or path
	Workers    int    // BOOKMARK_WORKERS: pages converted at once
}

// envPrefix is shared by every variable bookmark reads.
const envPrefix = "BOOKMARK_"

// knownEnvVars lists valid BOOKMARK_* environment variables.
var knownEnvVars = map[string]bool{
	"BOOKMARK_CONFIG":    true,
	"BOOKMARK_OUT":       true,
	"BOOKMARK_ENGINE":    true,
	"BOOKMARK_HIGHLIGHT": true,
	"BOOKMARK_STYLE":     true,
	"BOOKMARK_WORKERS":   true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("BOOKMARK_CONFIG"),
		OutputDir:  os.Getenv("BOOKMARK_OUT"),
		Engine:     os.Getenv("BOOKMARK_ENGINE"),
		Highlight:  os.Getenv("BOOKMARK_HIGHLIGHT"),
		Style:      os.Getenv("BOOKMARK_STYLE"),
	}

	if workers := os.Getenv("BOOKMARK_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars warns about unrecognized BOOKMARK_* variables.
// Helps catch typos like BOOKMARK_WORKER.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name, _, _ := strings.Cut(env, "=")
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig overrides config file values with the variables that are set.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied afterwards by mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Engine != "" {
		cfg.Engine = env.Engine
	}
	if env.Highlight != "" {
		cfg.Highlight = env.Highlight
	}
	if env.Style != "" {
		cfg.Style = env.Style
	}
	if env.Workers > 0 {
		cfg.Workers = env.Workers
	}
}
