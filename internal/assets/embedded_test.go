package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestEmbeddedLoader_LoadStyle(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	tests := []struct {
		name        string
		styleName   string
		wantErr     error
		wantContain string
	}{
		{
			name:        "loads default style",
			styleName:   "default",
			wantContain: ".inline-code",
		},
		{
			name:        "loads night style",
			styleName:   "night",
			wantContain: "--bg: #0d1117",
		},
		{
			name:      "returns ErrStyleNotFound for nonexistent",
			styleName: "nonexistent-style-xyz",
			wantErr:   ErrStyleNotFound,
		},
		{
			name:      "returns ErrInvalidAssetName for empty name",
			styleName: "",
			wantErr:   ErrInvalidAssetName,
		},
		{
			name:      "returns ErrInvalidAssetName for path traversal",
			styleName: "../secret",
			wantErr:   ErrInvalidAssetName,
		},
		{
			name:      "returns ErrInvalidAssetName for name with dot",
			styleName: "style.name",
			wantErr:   ErrInvalidAssetName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := loader.LoadStyle(tt.styleName)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadStyle(%q) error = %v, want %v", tt.styleName, err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("LoadStyle(%q) unexpected error: %v", tt.styleName, err)
			}

			if !strings.Contains(got, tt.wantContain) {
				t.Errorf("LoadStyle(%q) content should contain %q", tt.styleName, tt.wantContain)
			}
		})
	}
}

func TestEmbeddedLoader_LoadTemplateSet(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	t.Run("default set has every slot", func(t *testing.T) {
		t.Parallel()

		ts, err := loader.LoadTemplateSet(DefaultTemplateSetName)
		if err != nil {
			t.Fatalf("LoadTemplateSet() error = %v", err)
		}
		if ts.Name != DefaultTemplateSetName {
			t.Errorf("Name = %q, want %q", ts.Name, DefaultTemplateSetName)
		}
		for _, slot := range []string{"title", "sidebar", "content", "base"} {
			marker := "<!-- bookmark:" + slot + " -->"
			if strings.Count(ts.Page, marker) != 1 {
				t.Errorf("page template should define %q exactly once", slot)
			}
		}
		for _, field := range []string{"{{.Href}}", "{{.Title}}"} {
			if !strings.Contains(ts.Chapter, field) {
				t.Errorf("chapter template missing %s", field)
			}
		}
		for _, field := range []string{"{{.Title}}", "{{.Chapters}}"} {
			if !strings.Contains(ts.Sidebar, field) {
				t.Errorf("sidebar template missing %s", field)
			}
		}
	})

	t.Run("unknown set", func(t *testing.T) {
		t.Parallel()

		_, err := loader.LoadTemplateSet("nonexistent-xyz")
		if !errors.Is(err, ErrTemplateSetNotFound) {
			t.Errorf("LoadTemplateSet() error = %v, want ErrTemplateSetNotFound", err)
		}
	})

	t.Run("invalid name", func(t *testing.T) {
		t.Parallel()

		_, err := loader.LoadTemplateSet("../default")
		if !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("LoadTemplateSet() error = %v, want ErrInvalidAssetName", err)
		}
	})
}

func TestEmbeddedLoader_StyleNames(t *testing.T) {
	t.Parallel()

	got := NewEmbeddedLoader().StyleNames()
	want := []string{"default", "night"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("StyleNames() = %v, want %v", got, want)
	}
}
