package assets

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewAssetResolver(t *testing.T) {
	t.Parallel()

	t.Run("empty path uses embedded only", func(t *testing.T) {
		t.Parallel()

		resolver, err := NewAssetResolver("")
		if err != nil {
			t.Fatalf("NewAssetResolver(\"\") error = %v", err)
		}
		if resolver.custom != nil {
			t.Error("expected no custom loader for empty path")
		}
	})

	t.Run("valid custom path", func(t *testing.T) {
		t.Parallel()

		resolver, err := NewAssetResolver(t.TempDir())
		if err != nil {
			t.Fatalf("NewAssetResolver() error = %v", err)
		}
		if resolver.custom == nil {
			t.Error("expected custom loader for valid path")
		}
	})

	t.Run("invalid custom path returns error", func(t *testing.T) {
		t.Parallel()

		_, err := NewAssetResolver(filepath.Join(t.TempDir(), "missing"))
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewAssetResolver() error = %v, want ErrInvalidBasePath", err)
		}
	})
}

func TestAssetResolver_CustomWithFallback(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeAsset(t, tmpDir, "styles/mystyle.css", "/* custom style */")
	writeAsset(t, tmpDir, "styles/night.css", "/* night override */")
	writeAsset(t, tmpDir, "templates/plain/page.html", "P")
	writeAsset(t, tmpDir, "templates/plain/chapter.html", "C")
	writeAsset(t, tmpDir, "templates/plain/sidebar.html", "S")
	writeAsset(t, tmpDir, "templates/broken/page.html", "P")

	resolver, err := NewAssetResolver(tmpDir)
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}

	tests := []struct {
		name      string
		load      func() (string, error)
		want      string
		wantMatch func(string) bool
		wantErr   error
	}{
		{
			name: "custom style",
			load: func() (string, error) { return resolver.LoadStyle("mystyle") },
			want: "/* custom style */",
		},
		{
			name: "custom overrides embedded",
			load: func() (string, error) { return resolver.LoadStyle("night") },
			want: "/* night override */",
		},
		{
			name:      "falls back to embedded style",
			load:      func() (string, error) { return resolver.LoadStyle("default") },
			wantMatch: func(s string) bool { return strings.Contains(s, ".sidebar") },
		},
		{
			name:    "style missing everywhere",
			load:    func() (string, error) { return resolver.LoadStyle("nonexistent-xyz") },
			wantErr: ErrStyleNotFound,
		},
		{
			name: "custom template set",
			load: func() (string, error) {
				ts, err := resolver.LoadTemplateSet("plain")
				if err != nil {
					return "", err
				}
				return ts.Page + ts.Chapter + ts.Sidebar, nil
			},
			want: "PCS",
		},
		{
			name: "falls back to embedded template set",
			load: func() (string, error) {
				ts, err := resolver.LoadTemplateSet(DefaultTemplateSetName)
				if err != nil {
					return "", err
				}
				return ts.Page, nil
			},
			wantMatch: func(s string) bool { return strings.Contains(s, "<!-- bookmark:content -->") },
		},
		{
			name: "incomplete custom set does not fall back",
			load: func() (string, error) {
				_, err := resolver.LoadTemplateSet("broken")
				return "", err
			},
			wantErr: ErrIncompleteTemplateSet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.load()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantMatch != nil {
				if !tt.wantMatch(got) {
					t.Errorf("unexpected content %q", got)
				}
				return
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveStyle(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeAsset(t, tmpDir, "book.css", "/* from path */")

	resolver, err := NewAssetResolver("")
	if err != nil {
		t.Fatal(err)
	}

	t.Run("empty selects default", func(t *testing.T) {
		t.Parallel()

		got, err := ResolveStyle(resolver, "")
		if err != nil {
			t.Fatalf("ResolveStyle() error = %v", err)
		}
		want, _ := LoadStyle(DefaultStyleName)
		if got != want {
			t.Error("ResolveStyle(\"\") should return the default style")
		}
	})

	t.Run("name", func(t *testing.T) {
		t.Parallel()

		got, err := ResolveStyle(resolver, "night")
		if err != nil || !strings.Contains(got, "#0d1117") {
			t.Errorf("ResolveStyle(night) = %q, %v", got, err)
		}
	})

	t.Run("path", func(t *testing.T) {
		t.Parallel()

		got, err := ResolveStyle(resolver, filepath.Join(tmpDir, "book.css"))
		if err != nil {
			t.Fatalf("ResolveStyle() error = %v", err)
		}
		if got != "/* from path */" {
			t.Errorf("ResolveStyle() = %q", got)
		}
	})

	t.Run("missing path", func(t *testing.T) {
		t.Parallel()

		_, err := ResolveStyle(resolver, filepath.Join(tmpDir, "nope.css"))
		if !errors.Is(err, ErrStyleNotFound) {
			t.Errorf("ResolveStyle() error = %v, want ErrStyleNotFound", err)
		}
	})
}
