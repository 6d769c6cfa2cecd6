package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/alnah/go-bookmark/internal/markdown"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// Engine names accepted by NewHTMLConverter.
const (
	EngineNative     = "native"
	EngineCommonMark = "commonmark"
)

// ErrUnknownEngine indicates an engine name that NewHTMLConverter does not know.
var ErrUnknownEngine = errors.New("unknown markdown engine")

// HTMLConverter abstracts Markdown to HTML conversion.
// Implementations return an HTML fragment suitable for a content slot.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// Compile-time interface checks.
var (
	_ HTMLConverter = (*NativeConverter)(nil)
	_ HTMLConverter = (*GoldmarkConverter)(nil)
)

// Engines returns the engine names in display order.
func Engines() []string {
	return []string{EngineNative, EngineCommonMark}
}

// NewHTMLConverter returns the converter for engine. An empty engine selects
// the native compiler. A non-empty highlightStyle enables chroma highlighting
// of code blocks with that style.
func NewHTMLConverter(engine, highlightStyle string) (HTMLConverter, error) {
	switch engine {
	case "", EngineNative:
		var h markdown.CodeHighlighter
		if highlightStyle != "" {
			h = NewChromaHighlighter()
		}
		return NewNativeConverter(h), nil
	case EngineCommonMark:
		return NewGoldmarkConverter(highlightStyle), nil
	default:
		return nil, fmt.Errorf("%w: %q (available: native, commonmark)", ErrUnknownEngine, engine)
	}
}

// NativeConverter converts Markdown with the built-in compiler.
type NativeConverter struct {
	renderer *markdown.Renderer
}

// NewNativeConverter creates a NativeConverter. A nil highlighter leaves code
// blocks as escaped text.
func NewNativeConverter(h markdown.CodeHighlighter) *NativeConverter {
	var opts []markdown.RenderOption
	if h != nil {
		opts = append(opts, markdown.WithHighlighter(h))
	}
	return &NativeConverter{renderer: markdown.NewRenderer(opts...)}
}

// ToHTML parses content and renders it. Parsing never fails; only a
// cancelled context returns an error.
func (c *NativeConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return c.renderer.Render(markdown.Parse(content)), nil
}

// GoldmarkConverter converts Markdown to HTML using goldmark (CommonMark with GFM).
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions.
// A non-empty highlightStyle enables syntax highlighting with CSS classes.
func NewGoldmarkConverter(highlightStyle string) *GoldmarkConverter {
	extensions := []goldmark.Extender{
		extension.GFM,      // Tables, strikethrough, autolinks, task lists
		extension.Footnote, // [^1] footnotes
	}
	if highlightStyle != "" {
		extensions = append(extensions, highlighting.NewHighlighting(
			highlighting.WithStyle(highlightStyle),
			highlighting.WithFormatOptions(
				chromahtml.WithClasses(true), // matches the stylesheet written by HighlightCSS
			),
		))
	}

	md := goldmark.New(
		goldmark.WithExtensions(extensions...),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
			// WithUnsafe is not set: raw HTML in chapters is dropped.
		),
	)
	return &GoldmarkConverter{md: md}
}

// ToHTML converts Markdown content to an HTML fragment.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(preprocessCommonMark(content)), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: convertMarkPlaceholders(buf.String())}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
