package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-bookmark/internal/config"
)

// Notes:
// - t.Setenv forbids t.Parallel in the test and its parents, so every test
//   in this file runs sequentially.

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Environment Variables
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want envConfig
	}{
		{
			name: "unset",
		},
		{
			name: "all set",
			env: map[string]string{
				"BOOKMARK_CONFIG":    "docs/book.yaml",
				"BOOKMARK_OUT":       "public",
				"BOOKMARK_ENGINE":    "commonmark",
				"BOOKMARK_HIGHLIGHT": "github",
				"BOOKMARK_STYLE":     "night",
				"BOOKMARK_WORKERS":   "4",
			},
			want: envConfig{
				ConfigPath: "docs/book.yaml",
				OutputDir:  "public",
				Engine:     "commonmark",
				Highlight:  "github",
				Style:      "night",
				Workers:    4,
			},
		},
		{
			name: "non-numeric workers ignored",
			env:  map[string]string{"BOOKMARK_WORKERS": "many"},
		},
		{
			name: "zero workers ignored",
			env:  map[string]string{"BOOKMARK_WORKERS": "0"},
		},
		{
			name: "negative workers ignored",
			env:  map[string]string{"BOOKMARK_WORKERS": "-2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for name := range knownEnvVars {
				t.Setenv(name, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			if got := loadEnvConfig(); *got != tt.want {
				t.Errorf("loadEnvConfig() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo Detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Setenv("BOOKMARK_WORKER", "2")
	t.Setenv("BOOKMARK_STYLE", "night")

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf)

	if !strings.Contains(buf.String(), "unknown environment variable BOOKMARK_WORKER (typo?)") {
		t.Errorf("output = %q, want warning for BOOKMARK_WORKER", buf.String())
	}
	if strings.Contains(buf.String(), "BOOKMARK_STYLE") {
		t.Errorf("output = %q, known variable reported", buf.String())
	}
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - Precedence
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	cfg := &config.Config{Engine: "native", Highlight: "monokai", Style: "default", Workers: 2}
	applyEnvConfig(&envConfig{Engine: "commonmark", Workers: 6}, cfg)

	if cfg.Engine != "commonmark" || cfg.Workers != 6 {
		t.Errorf("set values not applied: %+v", cfg)
	}
	if cfg.Highlight != "monokai" || cfg.Style != "default" {
		t.Errorf("unset values changed: %+v", cfg)
	}
}

func TestRunBuild_EnvOverrides(t *testing.T) {
	for name := range knownEnvVars {
		t.Setenv(name, "")
	}

	dir := sampleBook(t)
	if err := os.Rename(filepath.Join(dir, "book.yaml"), filepath.Join(dir, "notes.yaml")); err != nil {
		t.Fatal(err)
	}
	t.Setenv("BOOKMARK_CONFIG", "notes.yaml")
	t.Setenv("BOOKMARK_OUT", "public")
	t.Setenv("BOOKMARK_ENGINE", "commonmark")

	env, _, stderr := testEnv(dir)
	if err := runBuild(context.Background(), nil, env); err != nil {
		t.Fatalf("runBuild() error = %v, stderr: %s", err, stderr.String())
	}
	if _, err := os.Stat(filepath.Join(dir, "public", "README.html")); err != nil {
		t.Errorf("BOOKMARK_OUT ignored: %v", err)
	}

	t.Run("flag beats env", func(t *testing.T) {
		env, _, stderr := testEnv(dir)
		if err := runBuild(context.Background(), []string{"--out", "site"}, env); err != nil {
			t.Fatalf("runBuild() error = %v, stderr: %s", err, stderr.String())
		}
		if _, err := os.Stat(filepath.Join(dir, "site", "README.html")); err != nil {
			t.Errorf("--out ignored: %v", err)
		}
	})
}
