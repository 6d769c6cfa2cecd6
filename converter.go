package bookmark

import (
	"context"
	"fmt"
	"html"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/alnah/go-bookmark/internal/assets"
	"github.com/alnah/go-bookmark/internal/fileutil"
	"github.com/alnah/go-bookmark/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.HTMLConverter = (*pipeline.NativeConverter)(nil)
	_ pipeline.HTMLConverter = (*pipeline.GoldmarkConverter)(nil)
	_ assets.AssetLoader     = (*publicToInternalAdapter)(nil)
	_ AssetLoader            = (*assetLoaderAdapter)(nil)
)

// Converter turns one markdown page into a complete HTML document.
// It holds only read-only state after construction and is safe for
// concurrent use by multiple goroutines.
type Converter struct {
	opts          options
	assetLoader   assets.AssetLoader
	htmlConverter pipeline.HTMLConverter
	templates     *assets.TemplateSet
	sidebar       *pipeline.SidebarBuilder
	baseSlot      bool   // page template defines the optional base slot
	authorSlot    bool   // page template defines the optional author slot
	highlightCSS  string // chroma classes for the selected highlight style
}

// NewConverter creates a Converter with the given options.
// Returns an error if the engine or highlight style is unknown, or if the
// template set cannot be loaded or lacks a required slot.
func NewConverter(opts ...Option) (*Converter, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return newConverter(o)
}

func newConverter(o options) (*Converter, error) {
	c := &Converter{opts: o}

	loader, err := resolveAssetLoader(o)
	if err != nil {
		return nil, err
	}
	c.assetLoader = loader

	if o.highlight != "" {
		if c.highlightCSS, err = pipeline.HighlightCSS(o.highlight); err != nil {
			return nil, err
		}
	}

	if c.htmlConverter, err = pipeline.NewHTMLConverter(o.engine, o.highlight); err != nil {
		return nil, err
	}

	if c.templates, err = loader.LoadTemplateSet(o.templateSet); err != nil {
		return nil, fmt.Errorf("loading template set %q: %w", o.templateSet, convertAssetError(err))
	}
	if err := pipeline.ValidateTemplate(c.templates.Page, pipeline.RequiredSlots()...); err != nil {
		return nil, fmt.Errorf("template set %q: page.html: %w", o.templateSet, err)
	}
	c.baseSlot = pipeline.HasSlot(c.templates.Page, pipeline.SlotBase)
	c.authorSlot = pipeline.HasSlot(c.templates.Page, pipeline.SlotAuthor)

	if c.sidebar, err = pipeline.NewSidebarBuilder(c.templates.Chapter, c.templates.Sidebar); err != nil {
		return nil, fmt.Errorf("template set %q: %w", o.templateSet, err)
	}

	return c, nil
}

// resolveAssetLoader picks the asset backend: a custom loader, a directory
// with embedded fallback, or the embedded assets alone.
func resolveAssetLoader(o options) (assets.AssetLoader, error) {
	if o.assetLoader != nil {
		return &publicToInternalAdapter{pub: o.assetLoader}, nil
	}
	if o.assetPath != "" {
		resolver, err := assets.NewAssetResolver(o.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		return resolver, nil
	}
	return assets.NewEmbeddedLoader(), nil
}

// Convert renders input into a page document: markdown to HTML, chapter
// links rewritten to .html, then the title, sidebar and content spliced into
// the page template. Pages below the book root also get a <base> pointing at
// the root when the template has a base slot, so shared links keep working.
// Recovers from internal panics so one page cannot crash a build.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	var outPath string
	if input.Path != "" {
		if outPath, err = pageHref(input.Path); err != nil {
			return nil, err
		}
	}

	content, err := c.htmlConverter.ToHTML(ctx, input.Markdown)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	if content, err = pipeline.RewriteChapterLinks(content); err != nil {
		return nil, fmt.Errorf("rewriting chapter links: %w", err)
	}

	fragments := map[string]string{
		pipeline.SlotTitle:   html.EscapeString(pageTitle(input.Title, input.BookName)),
		pipeline.SlotSidebar: input.Sidebar,
	}
	slots := pipeline.RequiredSlots()

	if base := rootHref(outPath); c.baseSlot && base != "" {
		if content, err = pipeline.RebaseLinks(content, outPath); err != nil {
			return nil, fmt.Errorf("rebasing links: %w", err)
		}
		fragments[pipeline.SlotBase] = `<base href="` + base + `">`
		slots = append(slots, pipeline.SlotBase)
	}
	if c.authorSlot && input.Author != "" {
		fragments[pipeline.SlotAuthor] = `<meta name="author" content="` + html.EscapeString(input.Author) + `">`
		slots = append(slots, pipeline.SlotAuthor)
	}
	fragments[pipeline.SlotContent] = content

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	page, err := pipeline.SpliceAll(c.templates.Page, fragments, slots...)
	if err != nil {
		return nil, err
	}

	return &ConvertResult{HTML: []byte(page), Path: outPath}, nil
}

// Sidebar renders the navigation shared by every page of the book: one
// chapter entry per page, in order, linking to the page's .html output.
// The date set by WithUpdated is passed to the sidebar template as .Updated.
func (c *Converter) Sidebar(bookName string, pages []Page) (string, error) {
	chapters := make([]pipeline.Chapter, 0, len(pages))
	for _, p := range pages {
		href, err := pageHref(p.Path)
		if err != nil {
			return "", fmt.Errorf("page %q: %w", p.Title, err)
		}
		chapters = append(chapters, pipeline.Chapter{Title: p.Title, Href: href})
	}
	return c.sidebar.Build(bookName, c.opts.updated, chapters)
}

// Stylesheet returns the content of style.css: the selected style followed by
// the highlight style's classes when highlighting is enabled.
func (c *Converter) Stylesheet() (string, error) {
	css, err := c.resolveStyle()
	if err != nil {
		return "", err
	}
	if c.highlightCSS == "" {
		return css, nil
	}
	return css + "\n" + c.highlightCSS, nil
}

// resolveStyle resolves the style input (name or path) to CSS content.
func (c *Converter) resolveStyle() (string, error) {
	input := c.opts.style
	if input == "" {
		input = DefaultStyle
	}
	css, err := assets.ResolveStyle(c.assetLoader, input)
	if err != nil {
		return "", fmt.Errorf("loading style %q: %w", input, convertAssetError(err))
	}
	return css, nil
}

// pageHref returns the output path of a page source relative to the book
// root, in slash form: "./guide/intro.md" becomes "guide/intro.html".
// Sources outside the root are rejected.
func pageHref(source string) (string, error) {
	clean := path.Clean(filepath.ToSlash(source))
	if !fs.ValidPath(clean) || clean == "." {
		return "", fmt.Errorf("%w: %q", ErrInvalidPagePath, source)
	}
	return fileutil.MarkdownToHTMLPath(clean)
}

// rootHref returns the relative path from a page back to the book root
// ("../" per directory level), or "" for pages at the root.
func rootHref(outPath string) string {
	return strings.Repeat("../", strings.Count(outPath, "/"))
}

// pageTitle joins the page and book titles as "Page - Book".
func pageTitle(title, bookName string) string {
	switch {
	case title == "":
		return bookName
	case bookName == "":
		return title
	default:
		return title + " - " + bookName
	}
}
