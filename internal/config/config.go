package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-bookmark/internal/dateutil"
	"github.com/alnah/go-bookmark/internal/fileutil"
	"github.com/alnah/go-bookmark/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound    = errors.New("config file not found")
	ErrConfigParse       = errors.New("failed to parse config")
	ErrFieldTooLong      = errors.New("field exceeds maximum length")
	ErrMissingField      = errors.New("required field missing")
	ErrNoPages           = errors.New("book has no pages")
	ErrInvalidPagePath   = errors.New("invalid page path")
	ErrDuplicatePage     = errors.New("page listed more than once")
	ErrUnsafeDistDir     = errors.New("unsafe output directory")
	ErrInvalidEngine     = errors.New("invalid engine")
	ErrInvalidWorkers    = errors.New("invalid worker count")
	ErrUnsupportedFormat = errors.New("unsupported config format")
)

// Field length limits.
const (
	MaxBookNameLength  = 200
	MaxAuthorLength    = 100
	MaxPageTitleLength = 200
	MaxPathLength      = 4096
	MaxStyleLength     = 64
	MaxWorkers         = 64
)

// Default directory layout of a book.
const (
	DefaultRootDir   = "src"
	DefaultDistDir   = "dist"
	DefaultAssetsDir = "src/assets"
)

// FileNames are the config file names searched by FindConfig, in order.
var FileNames = []string{"book.yaml", "book.yml", "book.json"}

// engines lists the accepted engine values; empty means native.
var engines = []string{"", "native", "commonmark"}

// Config is the content of a book.yaml or book.json file.
type Config struct {
	BookName  string `yaml:"bookname"`
	Author    string `yaml:"author"`
	Updated   string `yaml:"updated,omitempty"` // Sidebar date: text, "auto" or "auto:LAYOUT"
	RootDir   string `yaml:"rootDir"`           // Directory page paths are relative to
	DistDir   string `yaml:"distDir"`           // Output directory, removed on every build
	AssetsDir string `yaml:"assetsDir"`         // Copied to <distDir>/assets (missing = skipped)
	Pages     []Page `yaml:"pages"`

	Engine    string `yaml:"engine,omitempty"`    // "native" (default) or "commonmark"
	Highlight string `yaml:"highlight,omitempty"` // Chroma style name (empty = no highlighting)
	Style     string `yaml:"style,omitempty"`     // Style name or CSS file path (empty = default)
	Templates string `yaml:"templates,omitempty"` // Template set name (empty = default)
	AssetPath string `yaml:"assetPath,omitempty"` // Directory with custom styles/ and templates/
	Workers   int    `yaml:"workers,omitempty"`   // Concurrent pages (0 = auto)

	// dir is the directory of the loaded file; relative paths resolve against it.
	dir string
}

// Page is one chapter of the book, in sidebar order.
type Page struct {
	Title string `yaml:"title"`
	Path  string `yaml:"path"` // Markdown file relative to RootDir
}

// DefaultConfig returns the configuration written for a new book.
func DefaultConfig() *Config {
	return &Config{
		RootDir:   DefaultRootDir,
		DistDir:   DefaultDistDir,
		AssetsDir: DefaultAssetsDir,
		Pages:     []Page{{Title: "Introduction", Path: "README.md"}},
	}
}

// ApplyDefaults fills empty directory fields with the default layout.
func (c *Config) ApplyDefaults() {
	if c.RootDir == "" {
		c.RootDir = DefaultRootDir
	}
	if c.DistDir == "" {
		c.DistDir = DefaultDistDir
	}
	if c.AssetsDir == "" {
		c.AssetsDir = DefaultAssetsDir
	}
}

// Validate checks required fields, lengths, page paths and the output directory.
// Called automatically by LoadConfig after defaults are applied, but available
// for callers who construct Config manually.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.BookName) == "" {
		return fmt.Errorf("%w: bookname", ErrMissingField)
	}

	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"bookname", c.BookName, MaxBookNameLength},
		{"author", c.Author, MaxAuthorLength},
		{"updated", c.Updated, MaxAuthorLength},
		{"rootDir", c.RootDir, MaxPathLength},
		{"distDir", c.DistDir, MaxPathLength},
		{"assetsDir", c.AssetsDir, MaxPathLength},
		{"assetPath", c.AssetPath, MaxPathLength},
		{"highlight", c.Highlight, MaxStyleLength},
		{"style", c.Style, MaxPathLength},
		{"templates", c.Templates, MaxStyleLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	// The date itself is resolved at build time; only the layout is checked here.
	if _, err := dateutil.Resolve(c.Updated, time.Time{}); err != nil {
		return fmt.Errorf("updated: %w", err)
	}

	if !contains(engines, c.Engine) {
		return fmt.Errorf("%w: %q (must be native or commonmark)", ErrInvalidEngine, c.Engine)
	}
	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: %d (must be between 0 and %d)", ErrInvalidWorkers, c.Workers, MaxWorkers)
	}

	if err := ValidateDistDir(c.RootDir, c.DistDir); err != nil {
		return err
	}

	return c.validatePages()
}

func (c *Config) validatePages() error {
	if len(c.Pages) == 0 {
		return ErrNoPages
	}

	seen := make(map[string]int, len(c.Pages))
	for i, p := range c.Pages {
		field := fmt.Sprintf("pages[%d]", i)

		if strings.TrimSpace(p.Title) == "" {
			return fmt.Errorf("%w: %s.title", ErrMissingField, field)
		}
		if err := validateFieldLength(field+".title", p.Title, MaxPageTitleLength); err != nil {
			return err
		}
		if err := validateFieldLength(field+".path", p.Path, MaxPathLength); err != nil {
			return err
		}
		if !fileutil.IsMarkdownPath(p.Path) {
			return fmt.Errorf("%w: %s.path %q must end with .md", ErrInvalidPagePath, field, p.Path)
		}
		if !filepath.IsLocal(filepath.FromSlash(p.Path)) {
			return fmt.Errorf("%w: %s.path %q must stay inside rootDir", ErrInvalidPagePath, field, p.Path)
		}

		key := filepath.Clean(filepath.FromSlash(p.Path))
		if j, ok := seen[key]; ok {
			return fmt.Errorf("%w: %q (pages[%d] and pages[%d])", ErrDuplicatePage, p.Path, j, i)
		}
		seen[key] = i
	}
	return nil
}

// ValidateDistDir rejects output directories whose reset would delete the
// sources: the working directory itself, or any parent of rootDir.
func ValidateDistDir(rootDir, distDir string) error {
	dist := filepath.Clean(filepath.FromSlash(distDir))
	if distDir == "" || dist == "." || dist == string(filepath.Separator) {
		return fmt.Errorf("%w: %q", ErrUnsafeDistDir, distDir)
	}

	root := filepath.Clean(filepath.FromSlash(rootDir))
	if rel, err := filepath.Rel(dist, root); err == nil && filepath.IsLocal(rel) {
		return fmt.Errorf("%w: %q contains rootDir %q", ErrUnsafeDistDir, distDir, rootDir)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

// Dir returns the directory the config was loaded from ("" if not loaded).
func (c *Config) Dir() string {
	return c.dir
}

// ResolvePath resolves p against the config file's directory.
// Absolute paths and configs that were not loaded from disk are unchanged.
func (c *Config) ResolvePath(p string) string {
	if p == "" || filepath.IsAbs(p) || c.dir == "" {
		return p
	}
	return filepath.Join(c.dir, filepath.FromSlash(p))
}

// LoadConfig loads, defaults and validates the config file at path.
// Both YAML and JSON files are accepted.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.Decode(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
	}

	cfg.dir = filepath.Dir(path)
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// FindConfig returns the first of FileNames present in dir.
// The error lists every path tried.
func FindConfig(dir string) (string, error) {
	tried := make([]string, 0, len(FileNames))
	for _, name := range FileNames {
		p := filepath.Join(dir, name)
		if fileutil.FileExists(p) {
			return p, nil
		}
		tried = append(tried, p)
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}

// Save writes the config to path. A ".json" extension selects JSON;
// ".yaml" and ".yml" select YAML.
func (c *Config) Save(path string) error {
	format, err := yamlutil.FormatOf(path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	data, err := yamlutil.Encode(c, format)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	return fileutil.WriteFile(path, data)
}
