package bookmark

import (
	"io"
	"log/slog"
	"time"
)

// Engine names accepted by WithEngine.
const (
	EngineNative     = "native"
	EngineCommonMark = "commonmark"
)

// Page is one chapter of a book, in sidebar order.
type Page struct {
	Title string // Sidebar label and first half of the <title>
	Path  string // Markdown file relative to the book's root, e.g. "guide/install.md"
}

// Book describes what Build compiles. Directories are used as given; callers
// loading a config file resolve them against its location first.
type Book struct {
	Name      string // Sidebar heading and second half of every <title>
	Author    string // Written to the author <meta> of every page
	RootDir   string // Directory Page paths are relative to
	DistDir   string // Output directory, removed and recreated on every build
	AssetsDir string // Copied to <DistDir>/assets; skipped when it does not exist
	Pages     []Page
}

// Input is one page conversion request.
type Input struct {
	Markdown string // Page source
	Title    string // Page title (used in the <title> element)
	BookName string // Book name appended to the <title>
	Author   string // Fills the optional author slot; empty leaves it untouched
	Path     string // Source path relative to the book root; must end in ".md"
	Sidebar  string // Pre-rendered sidebar fragment (see Converter.Sidebar)
}

// ConvertResult holds the output of a page conversion.
type ConvertResult struct {
	HTML []byte // Complete page document
	Path string // Output path relative to the book root, e.g. "guide/install.html"
}

// PageResult reports the outcome of one page of a build.
// Exactly one of Err and Output is meaningful.
type PageResult struct {
	Page     Page
	Output   string        // Written file path (empty on failure)
	Bytes    int           // Written size
	Duration time.Duration // Read, convert and write time
	Err      error
}

// Report summarizes a build.
type Report struct {
	Pages       []PageResult // In completion order
	AssetFiles  int          // Files copied from AssetsDir
	AssetBytes  int64
	StyleBytes  int // Size of style.css
	Duration    time.Duration
	Concurrency int // Pages converted at once
}

// Failed returns the results of pages that did not build.
func (r *Report) Failed() []PageResult {
	var failed []PageResult
	for _, p := range r.Pages {
		if p.Err != nil {
			failed = append(failed, p)
		}
	}
	return failed
}

// Option configures a Converter or Builder.
type Option func(*options)

// options holds settings shared by Converter and Builder.
type options struct {
	engine      string
	highlight   string
	style       string
	templateSet string
	updated     string
	assetPath   string
	assetLoader AssetLoader
	workers     int
	logger      *slog.Logger
	onPage      func(PageResult)
}

func defaultOptions() options {
	return options{
		engine:      EngineNative,
		templateSet: DefaultTemplateSet,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithEngine selects the markdown engine: EngineNative (default) or
// EngineCommonMark.
func WithEngine(name string) Option {
	return func(o *options) {
		o.engine = name
	}
}

// WithHighlight enables syntax highlighting of fenced code with the named
// chroma style. The style's CSS is appended to style.css by Build.
func WithHighlight(style string) Option {
	return func(o *options) {
		o.highlight = style
	}
}

// WithStyle sets the CSS written to style.css: a built-in style name or a
// path to a CSS file. Empty selects DefaultStyle.
func WithStyle(nameOrPath string) Option {
	return func(o *options) {
		o.style = nameOrPath
	}
}

// WithTemplateSet selects the template set by name (default DefaultTemplateSet).
func WithTemplateSet(name string) Option {
	return func(o *options) {
		o.templateSet = name
	}
}

// WithUpdated sets the text the sidebar template receives as {{.Updated}},
// typically the build date. Empty hides it in the default templates.
func WithUpdated(text string) Option {
	return func(o *options) {
		o.updated = text
	}
}

// WithAssetPath loads styles and templates from dir, falling back to the
// embedded assets for anything not found there.
func WithAssetPath(dir string) Option {
	return func(o *options) {
		o.assetPath = dir
	}
}

// WithAssetLoader uses a custom asset backend. Takes precedence over WithAssetPath.
func WithAssetLoader(loader AssetLoader) Option {
	return func(o *options) {
		o.assetLoader = loader
	}
}

// WithWorkers sets how many pages Build converts at once.
// Zero or negative selects ResolveWorkers(0).
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithLogger sets the logger Build reports progress to (default: discard).
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// OnPageDone registers a callback invoked once per page as soon as it
// finishes, successfully or not. Calls may come from several goroutines but
// never concurrently.
func OnPageDone(fn func(PageResult)) Option {
	return func(o *options) {
		o.onPage = fn
	}
}
