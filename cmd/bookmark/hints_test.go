package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	bookmark "github.com/alnah/go-bookmark"
	"github.com/alnah/go-bookmark/internal/config"
)

// ---------------------------------------------------------------------------
// TestHintFor - Error Hints
// ---------------------------------------------------------------------------

func TestHintFor(t *testing.T) {
	t.Parallel()

	env := &Environment{WorkDir: "books"}

	tests := []struct {
		name string
		err  error
		want string // substring; empty means no hint
	}{
		{"nil", nil, ""},
		{"unrelated", errors.New("boom"), ""},
		{"config not found", config.ErrConfigNotFound, filepath.Join("books", "book.yml")},
		{"book exists", bookmark.ErrBookExists, "--force"},
		{"unsafe dist", config.ErrUnsafeDistDir, "outside rootDir"},
		{"prepare output", bookmark.ErrPrepareOutput, "writable"},
		{"highlight", bookmark.ErrUnknownHighlightStyle, "bookmark styles"},
		{"style", bookmark.ErrStyleNotFound, bookmark.DefaultStyle},
		{"engine", config.ErrInvalidEngine, "native, commonmark"},
		{
			"missing sidebar slot",
			fmt.Errorf("%w: %q", bookmark.ErrMissingTemplateRegion, "sidebar"),
			"<!-- bookmark:sidebar -->",
		},
		{
			"ambiguous slot defaults to content",
			bookmark.ErrAmbiguousTemplateRegion,
			"<!-- bookmark:content -->",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := hintFor(tt.err, env)
			if tt.want == "" {
				if got != "" {
					t.Errorf("hintFor() = %q, want none", got)
				}
				return
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("hintFor() = %q, want to contain %q", got, tt.want)
			}
		})
	}
}

func TestPageHint(t *testing.T) {
	t.Parallel()

	env := &Environment{WorkDir: "."}

	missing := fmt.Errorf("%w: %w", bookmark.ErrReadMarkdown, os.ErrNotExist)
	if got := pageHint(missing, "docs/src", env); !strings.Contains(got, "docs/src") {
		t.Errorf("pageHint(missing) = %q, want rootDir named", got)
	}

	unreadable := fmt.Errorf("%w: %w", bookmark.ErrReadMarkdown, os.ErrPermission)
	if got := pageHint(unreadable, "docs/src", env); got != "" {
		t.Errorf("pageHint(permission) = %q, want none", got)
	}
}
