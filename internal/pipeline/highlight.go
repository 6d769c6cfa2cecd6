package pipeline

import (
	"errors"
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/alnah/go-bookmark/internal/markdown"
)

// ErrUnknownHighlightStyle indicates a chroma style name that is not registered.
var ErrUnknownHighlightStyle = errors.New("unknown highlight style")

// highlightWrapperClass is the class chroma's stylesheet scopes its rules under.
const highlightWrapperClass = "chroma"

var _ markdown.CodeHighlighter = (*ChromaHighlighter)(nil)

// ChromaHighlighter highlights code blocks with chroma lexers.
// Output uses CSS classes; colors come from the stylesheet of HighlightCSS.
type ChromaHighlighter struct{}

// NewChromaHighlighter creates a ChromaHighlighter.
func NewChromaHighlighter() *ChromaHighlighter {
	return &ChromaHighlighter{}
}

// Highlight tokenizes lines with the lexer for language. It declines
// (ok=false) when no lexer is registered for the language.
// Lines are joined with the same separator as unhighlighted code.
func (h *ChromaHighlighter) Highlight(language string, lines []string) (string, bool) {
	if language == "" {
		return "", false
	}
	lexer := lexers.Get(language)
	if lexer == nil {
		return "", false
	}
	lexer = chroma.Coalesce(lexer)

	source := strings.Join(lines, "\n")
	iter, err := lexer.Tokenise(nil, source)
	if err != nil {
		return "", false
	}

	sep := markdown.CodeLineSeparator()
	var b strings.Builder
	b.WriteString(`<span class="` + highlightWrapperClass + `">`)
	for tok := iter(); tok != chroma.EOF; tok = iter() {
		class := tokenClass(tok.Type)
		for i, part := range strings.Split(tok.Value, "\n") {
			if i > 0 {
				b.WriteString(sep)
			}
			if part == "" {
				continue
			}
			if class == "" {
				b.WriteString(html.EscapeString(part))
				continue
			}
			fmt.Fprintf(&b, `<span class="%s">%s</span>`, class, html.EscapeString(part))
		}
	}

	// Lexers that ensure a trailing newline add one separator too many.
	out := b.String()
	if !strings.HasSuffix(source, "\n") {
		out = strings.TrimSuffix(out, sep)
	}
	return out + "</span>", true
}

// tokenClass returns the short CSS class for t, walking up to the nearest
// token type with a registered class.
func tokenClass(t chroma.TokenType) string {
	for ; t != 0; t = t.Parent() {
		if class, ok := chroma.StandardTypes[t]; ok {
			return class
		}
	}
	return ""
}

// HighlightCSS returns the chroma stylesheet for the named style.
func HighlightCSS(style string) (string, error) {
	s, ok := styles.Registry[style]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownHighlightStyle, style)
	}

	var b strings.Builder
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&b, s); err != nil {
		return "", fmt.Errorf("writing highlight stylesheet: %w", err)
	}
	return b.String(), nil
}

// HighlightStyles returns the registered chroma style names, sorted.
func HighlightStyles() []string {
	names := make([]string, 0, len(styles.Registry))
	for name := range styles.Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
