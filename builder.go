package bookmark

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/alnah/go-bookmark/internal/config"
	"github.com/alnah/go-bookmark/internal/fileutil"
)

// Output layout under Book.DistDir.
const (
	StylesheetName = "style.css"
	AssetsDirName  = "assets"
)

// Builder compiles every page of a book into its output directory.
// A Builder holds one Converter and may run several builds, sequentially or
// concurrently, as long as their output directories differ.
type Builder struct {
	conv *Converter
	opts options
}

// NewBuilder creates a Builder. Options are the Converter options plus
// WithWorkers, WithLogger and OnPageDone.
func NewBuilder(opts ...Option) (*Builder, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	conv, err := newConverter(o)
	if err != nil {
		return nil, err
	}
	return &Builder{conv: conv, opts: o}, nil
}

// Build creates a Builder with opts and runs it once.
func Build(ctx context.Context, book Book, opts ...Option) (*Report, error) {
	b, err := NewBuilder(opts...)
	if err != nil {
		return nil, err
	}
	return b.Build(ctx, book)
}

// Build prepares book.DistDir (reset, assets copy, style.css), renders the
// shared sidebar once, then converts pages concurrently. A failing page never
// stops its siblings: every page is attempted and reported, and the returned
// error wraps ErrPagesFailed when any of them failed. Errors before the first
// page starts are returned with a nil Report and no OnPageDone calls; this
// includes a page path the sidebar cannot link to, which fails the whole
// build rather than that page alone.
//
// book.DistDir is deleted and recreated, so it may not be the working
// directory, the filesystem root, or a directory containing book.RootDir
// (ErrUnsafeDistDir).
func (b *Builder) Build(ctx context.Context, book Book) (*Report, error) {
	start := time.Now()

	if len(book.Pages) == 0 {
		return nil, ErrEmptyBook
	}
	if book.DistDir == "" {
		return nil, fmt.Errorf("%w: empty output directory", ErrPrepareOutput)
	}
	if err := checkDistDir(book); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPrepareOutput, err)
	}

	sidebar, err := b.conv.Sidebar(book.Name, book.Pages)
	if err != nil {
		return nil, fmt.Errorf("building sidebar: %w", err)
	}
	css, err := b.conv.Stylesheet()
	if err != nil {
		return nil, err
	}

	report := &Report{Concurrency: ResolveWorkers(b.opts.workers)}
	if err := b.prepareOutput(book, css, report); err != nil {
		return nil, err
	}

	b.opts.logger.Info("building book",
		"book", book.Name,
		"pages", len(book.Pages),
		"workers", report.Concurrency,
	)

	b.convertPages(ctx, book, sidebar, report)
	report.Duration = time.Since(start)

	failed := len(report.Failed())
	b.opts.logger.Info("build complete",
		"book", book.Name,
		"pages", len(book.Pages),
		"failed", failed,
		"elapsed", report.Duration,
	)

	if failed > 0 {
		return report, fmt.Errorf("%w: %d of %d", ErrPagesFailed, failed, len(book.Pages))
	}
	return report, nil
}

// checkDistDir compares absolute paths so that relative and absolute
// spellings of the same directory are caught alike.
func checkDistDir(book Book) error {
	root, err := filepath.Abs(book.RootDir)
	if err != nil {
		return err
	}
	dist, err := filepath.Abs(book.DistDir)
	if err != nil {
		return err
	}
	if wd, err := os.Getwd(); err == nil && dist == wd {
		return fmt.Errorf("%w: %q is the working directory", ErrUnsafeDistDir, book.DistDir)
	}
	return config.ValidateDistDir(root, dist)
}

// prepareOutput resets the output directory, copies the assets directory
// into it and writes the stylesheet.
func (b *Builder) prepareOutput(book Book, css string, report *Report) error {
	if err := fileutil.ResetDir(book.DistDir); err != nil {
		return fmt.Errorf("%w: %v", ErrPrepareOutput, err)
	}

	if book.AssetsDir != "" && fileutil.DirExists(book.AssetsDir) {
		files, n, err := fileutil.CopyDir(book.AssetsDir, filepath.Join(book.DistDir, AssetsDirName))
		if err != nil {
			return fmt.Errorf("%w: %v", ErrPrepareOutput, err)
		}
		report.AssetFiles, report.AssetBytes = files, n
		b.opts.logger.Debug("copied assets", "dir", book.AssetsDir, "files", files, "bytes", n)
	} else if book.AssetsDir != "" {
		b.opts.logger.Debug("no assets directory", "dir", book.AssetsDir)
	}

	if err := fileutil.WriteFile(filepath.Join(book.DistDir, StylesheetName), []byte(css)); err != nil {
		return fmt.Errorf("%w: %v", ErrPrepareOutput, err)
	}
	report.StyleBytes = len(css)
	return nil
}

// convertPages runs one goroutine per page, at most report.Concurrency at a
// time, and waits for all of them. The sidebar and template are shared
// read-only; results are appended in completion order.
func (b *Builder) convertPages(ctx context.Context, book Book, sidebar string, report *Report) {
	var (
		g  errgroup.Group
		mu sync.Mutex
	)
	g.SetLimit(report.Concurrency)

	for _, page := range book.Pages {
		g.Go(func() error {
			res := b.buildPage(ctx, book, page, sidebar)

			mu.Lock()
			defer mu.Unlock()
			report.Pages = append(report.Pages, res)
			if b.opts.onPage != nil {
				b.opts.onPage(res)
			}

			// Never fail the group: siblings keep running.
			return nil
		})
	}

	_ = g.Wait()
}

// buildPage reads, converts and writes one page.
func (b *Builder) buildPage(ctx context.Context, book Book, page Page, sidebar string) PageResult {
	start := time.Now()
	res := PageResult{Page: page}
	logger := b.opts.logger.With("page", page.Title, "path", page.Path)

	fail := func(err error) PageResult {
		res.Err = err
		res.Duration = time.Since(start)
		logger.Warn("page failed", "error", err)
		return res
	}

	if err := ctx.Err(); err != nil {
		return fail(err)
	}
	logger.Debug("converting page")

	src := filepath.Join(book.RootDir, filepath.FromSlash(page.Path))
	data, err := os.ReadFile(src) // #nosec G304 -- page paths come from the book config
	if err != nil {
		return fail(fmt.Errorf("%w: %w", ErrReadMarkdown, err))
	}

	result, err := b.conv.Convert(ctx, Input{
		Markdown: string(data),
		Title:    page.Title,
		BookName: book.Name,
		Author:   book.Author,
		Path:     page.Path,
		Sidebar:  sidebar,
	})
	if err != nil {
		return fail(err)
	}

	out := filepath.Join(book.DistDir, filepath.FromSlash(result.Path))
	if err := fileutil.WriteFile(out, result.HTML); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrWriteHTML, err))
	}

	res.Output = out
	res.Bytes = len(result.HTML)
	res.Duration = time.Since(start)
	logger.Debug("page written", "output", out, "bytes", res.Bytes, "elapsed", res.Duration)
	return res
}

// IsPageFailure reports whether err came from individual pages failing
// rather than from preparing the build.
func IsPageFailure(err error) bool {
	return errors.Is(err, ErrPagesFailed)
}
