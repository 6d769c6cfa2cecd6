package markdown

import (
	"html"
	"strconv"
	"strings"
)

// codeLineSeparator joins the lines of a code block.
const codeLineSeparator = "<br>"

// CodeHighlighter turns the lines of a code block into highlighted HTML.
// Implementations return ok=false to fall back to plain escaped output,
// for example when the language is unknown.
type CodeHighlighter interface {
	Highlight(language string, lines []string) (htmlContent string, ok bool)
}

// Renderer turns a Document into an HTML fragment.
// The zero value renders code blocks without highlighting.
type Renderer struct {
	highlighter CodeHighlighter
}

// RenderOption configures a Renderer.
type RenderOption func(*Renderer)

// WithHighlighter sets the highlighter used for code blocks.
func WithHighlighter(h CodeHighlighter) RenderOption {
	return func(r *Renderer) {
		r.highlighter = h
	}
}

// NewRenderer creates a Renderer.
func NewRenderer(opts ...RenderOption) *Renderer {
	r := &Renderer{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render returns the HTML for every node, one top-level element per line.
// LineBreak nodes contribute nothing.
func (r *Renderer) Render(doc *Document) string {
	parts := make([]string, 0, len(doc.nodes))
	for _, n := range doc.nodes {
		if s := r.renderNode(n); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n")
}

func (r *Renderer) renderNode(n Node) string {
	switch n := n.(type) {
	case Heading:
		level := strconv.Itoa(n.Level)
		return "<h" + level + ">" + n.HTML() + "</h" + level + ">"
	case Paragraph:
		return "<p>" + n.HTML() + "</p>"
	case List:
		var b strings.Builder
		renderList(&b, &n)
		return b.String()
	case CodeBlock:
		return r.renderCode(n)
	case Quote:
		var b strings.Builder
		b.WriteString("<quote>")
		for _, line := range n.Lines {
			b.WriteString("<p>")
			b.WriteString(line.HTML())
			b.WriteString("</p>")
		}
		b.WriteString("</quote>")
		return b.String()
	}
	return ""
}

func renderList(b *strings.Builder, l *List) {
	tag := "ul"
	if l.Kind == Ordered {
		tag = "ol"
	}

	b.WriteString("<" + tag + ">")
	for i := range l.Items {
		item := &l.Items[i]
		b.WriteString("<li>")
		b.WriteString(item.HTML())
		if item.Sublist != nil {
			renderList(b, item.Sublist)
		}
		b.WriteString("</li>")
	}
	b.WriteString("</" + tag + ">")
}

func (r *Renderer) renderCode(c CodeBlock) string {
	var b strings.Builder
	b.WriteString("<code")
	if c.Language != "" {
		b.WriteString(` class="`)
		b.WriteString(html.EscapeString(c.Language))
		b.WriteString(`"`)
	}
	b.WriteString(">")

	highlighted := false
	if r.highlighter != nil && len(c.Lines) > 0 {
		var content string
		if content, highlighted = r.highlighter.Highlight(c.Language, c.Lines); highlighted {
			b.WriteString(content)
		}
	}
	if !highlighted {
		for i, line := range c.Lines {
			if i > 0 {
				b.WriteString(codeLineSeparator)
			}
			b.WriteString(html.EscapeString(line))
		}
	}

	b.WriteString("</code>")
	return b.String()
}

// CodeLineSeparator returns the separator placed between code lines, for
// highlighters that must match the plain output.
func CodeLineSeparator() string {
	return codeLineSeparator
}
