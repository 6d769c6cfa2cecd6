package pipeline

import (
	"errors"
	"strings"
	"testing"

	"github.com/alecthomas/chroma/v2"
)

func TestChromaHighlighter_Highlight(t *testing.T) {
	t.Parallel()

	h := NewChromaHighlighter()

	t.Run("known language", func(t *testing.T) {
		t.Parallel()

		got, ok := h.Highlight("go", []string{"package main", "", "func main() {}"})
		if !ok {
			t.Fatal("Highlight() declined a known language")
		}
		if !strings.HasPrefix(got, `<span class="chroma">`) || !strings.HasSuffix(got, "</span>") {
			t.Errorf("Highlight() = %q, want chroma wrapper", got)
		}
		if !strings.Contains(got, `<span class="kn">package</span>`) {
			t.Errorf("Highlight() = %q, want keyword span", got)
		}
		if n := strings.Count(got, "<br>"); n != 2 {
			t.Errorf("Highlight() has %d separators, want 2: %q", n, got)
		}
	})

	t.Run("content is escaped", func(t *testing.T) {
		t.Parallel()

		got, ok := h.Highlight("html", []string{"<b>&</b>"})
		if !ok {
			t.Fatal("Highlight() declined html")
		}
		if strings.Contains(got, "<b>") {
			t.Errorf("Highlight() = %q, contains unescaped markup", got)
		}
	})

	t.Run("unknown language declines", func(t *testing.T) {
		t.Parallel()

		if _, ok := h.Highlight("no-such-language-xyz", []string{"x"}); ok {
			t.Error("Highlight() accepted an unknown language")
		}
	})

	t.Run("empty language declines", func(t *testing.T) {
		t.Parallel()

		if _, ok := h.Highlight("", []string{"x"}); ok {
			t.Error("Highlight() accepted an empty language")
		}
	})
}

func TestTokenClass(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tt   chroma.TokenType
		want string
	}{
		{tt: chroma.Keyword, want: "k"},
		{tt: chroma.KeywordNamespace, want: "kn"},
		{tt: chroma.LiteralStringDouble, want: "s2"},
		{tt: chroma.Comment, want: "c"},
	}

	for _, tt := range tests {
		t.Run(tt.tt.String(), func(t *testing.T) {
			t.Parallel()

			if got := tokenClass(tt.tt); got != tt.want {
				t.Errorf("tokenClass(%v) = %q, want %q", tt.tt, got, tt.want)
			}
		})
	}
}

func TestHighlightCSS(t *testing.T) {
	t.Parallel()

	css, err := HighlightCSS("monokai")
	if err != nil {
		t.Fatalf("HighlightCSS() error = %v", err)
	}
	if !strings.Contains(css, ".chroma") {
		t.Errorf("HighlightCSS() = %q, want rules scoped to .chroma", css)
	}

	if _, err := HighlightCSS("no-such-style"); !errors.Is(err, ErrUnknownHighlightStyle) {
		t.Errorf("HighlightCSS(unknown) error = %v, want ErrUnknownHighlightStyle", err)
	}
}

func TestHighlightStyles(t *testing.T) {
	t.Parallel()

	names := HighlightStyles()
	found := false
	for i, name := range names {
		if i > 0 && names[i-1] > name {
			t.Fatalf("HighlightStyles() not sorted at %d: %q > %q", i, names[i-1], name)
		}
		if name == "monokai" {
			found = true
		}
	}
	if !found {
		t.Error("HighlightStyles() does not include monokai")
	}
}
