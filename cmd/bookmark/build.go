package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	flag "github.com/spf13/pflag"

	bookmark "github.com/alnah/go-bookmark"
	"github.com/alnah/go-bookmark/internal/config"
	"github.com/alnah/go-bookmark/internal/dateutil"
	"github.com/alnah/go-bookmark/internal/fileutil"
)

// runBuild loads the book config, applies env vars and flags, and builds the
// book. Each page prints one status line as soon as it finishes.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseBuildFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: unexpected argument %q", ErrUsage, positional[0])
	}
	if flags.workers < 0 || flags.workers > config.MaxWorkers {
		return fmt.Errorf("%w: %d (must be between 0 and %d)", config.ErrInvalidWorkers, flags.workers, config.MaxWorkers)
	}

	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	cfg, err := loadBookConfig(flags.common.config, envCfg, env)
	if err != nil {
		return err
	}
	resolveConfigPaths(cfg)
	resolveWorkPaths(env, envCfg, flags)
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	book, err := bookFromConfig(cfg, workPath(env, outputOverride(flags.output, envCfg)))
	if err != nil {
		return err
	}

	updated, err := dateutil.Resolve(cfg.Updated, env.Now())
	if err != nil {
		return fmt.Errorf("updated: %w", err)
	}

	logger := newLogger(env.Stderr, flags.common.verbose)
	logger.Debug("loaded config", "dir", cfg.Dir(), "pages", len(book.Pages))

	report, err := bookmark.Build(ctx, book,
		bookmark.WithEngine(cfg.Engine),
		bookmark.WithHighlight(cfg.Highlight),
		bookmark.WithStyle(cfg.Style),
		bookmark.WithTemplateSet(templateSet(cfg.Templates)),
		bookmark.WithUpdated(updated),
		bookmark.WithAssetPath(cfg.AssetPath),
		bookmark.WithWorkers(cfg.Workers),
		bookmark.WithLogger(logger),
		bookmark.OnPageDone(pagePrinter(env, book.RootDir, flags.common.quiet, flags.common.verbose)),
	)
	if report != nil && !flags.common.quiet {
		printSummary(env.Stdout, book, report, flags.common.verbose)
	}
	return err
}

// loadBookConfig loads the config named by --config or BOOKMARK_CONFIG, or
// the first of book.yaml, book.yml, book.json found in the working directory.
func loadBookConfig(flagPath string, envCfg *envConfig, env *Environment) (*config.Config, error) {
	path := flagPath
	if path == "" {
		path = envCfg.ConfigPath
	}
	if path != "" {
		return config.LoadConfig(workPath(env, path))
	}

	found, err := config.FindConfig(env.WorkDir)
	if err != nil {
		return nil, err
	}
	return config.LoadConfig(found)
}

// mergeFlags applies explicitly set CLI flags over config values.
func mergeFlags(flags *buildFlags, cfg *config.Config) {
	if flags.engine != "" {
		cfg.Engine = flags.engine
	}
	if flags.highlight != "" {
		cfg.Highlight = flags.highlight
	}
	if flags.style != "" {
		cfg.Style = flags.style
	}
	if flags.assetPath != "" {
		cfg.AssetPath = flags.assetPath
	}
	if flags.templates != "" {
		cfg.Templates = flags.templates
	}
	if flags.workers > 0 {
		cfg.Workers = flags.workers
	}
}

// outputOverride returns --out, else BOOKMARK_OUT, else "".
func outputOverride(flagOut string, envCfg *envConfig) string {
	if flagOut != "" {
		return flagOut
	}
	return envCfg.OutputDir
}

// bookFromConfig resolves the config's directories against its location.
// An output override is relative to the working directory instead and gets
// the same safety check as distDir.
func bookFromConfig(cfg *config.Config, out string) (bookmark.Book, error) {
	book := bookmark.Book{
		Name:      cfg.BookName,
		Author:    cfg.Author,
		RootDir:   cfg.ResolvePath(cfg.RootDir),
		DistDir:   cfg.ResolvePath(cfg.DistDir),
		AssetsDir: cfg.ResolvePath(cfg.AssetsDir),
		Pages:     make([]bookmark.Page, 0, len(cfg.Pages)),
	}
	for _, p := range cfg.Pages {
		book.Pages = append(book.Pages, bookmark.Page{Title: p.Title, Path: p.Path})
	}

	if out == "" {
		return book, nil
	}
	root, err := filepath.Abs(book.RootDir)
	if err != nil {
		return book, fmt.Errorf("resolving rootDir: %w", err)
	}
	dist, err := filepath.Abs(out)
	if err != nil {
		return book, fmt.Errorf("resolving output directory: %w", err)
	}
	if err := config.ValidateDistDir(root, dist); err != nil {
		return book, err
	}
	book.DistDir = dist
	return book, nil
}

// resolveConfigPaths makes the style file and asset directory named in the
// config file relative to the config's location. Style names are kept.
func resolveConfigPaths(cfg *config.Config) {
	if fileutil.IsFilePath(cfg.Style) {
		cfg.Style = cfg.ResolvePath(cfg.Style)
	}
	cfg.AssetPath = cfg.ResolvePath(cfg.AssetPath)
}

// resolveWorkPaths makes the style file and asset directory given on the
// command line or in the environment relative to the working directory.
func resolveWorkPaths(env *Environment, envCfg *envConfig, flags *buildFlags) {
	if fileutil.IsFilePath(envCfg.Style) {
		envCfg.Style = workPath(env, envCfg.Style)
	}
	if fileutil.IsFilePath(flags.style) {
		flags.style = workPath(env, flags.style)
	}
	flags.assetPath = workPath(env, flags.assetPath)
}

// workPath joins a relative p to the working directory.
func workPath(env *Environment, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(env.WorkDir, p)
}

// templateSet returns name, or the built-in set when empty.
func templateSet(name string) string {
	if name == "" {
		return bookmark.DefaultTemplateSet
	}
	return name
}

// newLogger returns a debug text logger on w when verbose, else a discard
// logger. Page failures are printed by pagePrinter either way.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// pagePrinter returns the OnPageDone callback printing one status line per
// page: "[Done] <title>" on stdout and "[Failed] <title>: <reason>" on stderr.
func pagePrinter(env *Environment, rootDir string, quiet, verbose bool) func(bookmark.PageResult) {
	return func(r bookmark.PageResult) {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "[Failed] %s: %v%s\n", r.Page.Title, r.Err, pageHint(r.Err, rootDir, env))
			return
		}
		if quiet {
			return
		}
		if verbose {
			fmt.Fprintf(env.Stdout, "[Done] %s -> %s (%s, %v)\n",
				r.Page.Title, r.Output, humanize.Bytes(uint64(r.Bytes)), r.Duration.Round(time.Millisecond)) // #nosec G115 -- sizes are non-negative
			return
		}
		fmt.Fprintf(env.Stdout, "[Done] %s\n", r.Page.Title)
	}
}

// printSummary prints the closing line of a build.
func printSummary(w io.Writer, book bookmark.Book, r *bookmark.Report, verbose bool) {
	failed := len(r.Failed())
	fmt.Fprintf(w, "\nBuilt %s: %d of %d pages to %s\n", book.Name, len(r.Pages)-failed, len(book.Pages), book.DistDir)
	if !verbose {
		return
	}

	var total uint64
	for _, p := range r.Pages {
		total += uint64(p.Bytes) // #nosec G115 -- sizes are non-negative
	}
	style := uint64(r.StyleBytes)  // #nosec G115 -- sizes are non-negative
	assets := uint64(r.AssetBytes) // #nosec G115 -- sizes are non-negative

	fmt.Fprintf(w, "  pages:  %s\n", humanize.Bytes(total))
	fmt.Fprintf(w, "  style:  %s\n", humanize.Bytes(style))
	fmt.Fprintf(w, "  assets: %s in %s files\n", humanize.Bytes(assets), humanize.Comma(int64(r.AssetFiles)))
	fmt.Fprintf(w, "  took:   %v with %d workers\n", r.Duration.Round(time.Millisecond), r.Concurrency)
}
