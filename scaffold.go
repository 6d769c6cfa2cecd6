package bookmark

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nao1215/markdown"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alnah/go-bookmark/internal/config"
	"github.com/alnah/go-bookmark/internal/fileutil"
)

// Config file names written by NewBook.
const (
	ConfigFileYAML = "book.yaml"
	ConfigFileJSON = "book.json"
)

// NewBookOptions configures NewBook.
type NewBookOptions struct {
	Title  string // Book name (default: directory name in title case)
	Author string
	JSON   bool // Write book.json instead of book.yaml
	Force  bool // Replace an existing directory
}

// Scaffold lists what NewBook created.
type Scaffold struct {
	Dir    string
	Title  string
	Config string   // Config file path
	Files  []string // Every file written, config first
}

// NewBook creates a book skeleton in dir:
//
//	dir/
//	├── book.yaml
//	└── src/
//	    ├── README.md
//	    └── assets/
//
// An existing dir is an ErrBookExists error unless opts.Force is set, in
// which case it is removed first.
func NewBook(dir string, opts NewBookOptions) (*Scaffold, error) {
	clean := filepath.Clean(dir)
	if strings.TrimSpace(dir) == "" || clean == "." || clean == string(filepath.Separator) {
		return nil, fmt.Errorf("%w: %q", ErrEmptyName, dir)
	}

	title := opts.Title
	if title == "" {
		title = titleFromDir(clean)
	}

	cfg := config.DefaultConfig()
	cfg.BookName = title
	cfg.Author = opts.Author
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(clean); err == nil {
		if !opts.Force {
			return nil, fmt.Errorf("%w: %s", ErrBookExists, clean)
		}
		if err := os.RemoveAll(clean); err != nil {
			return nil, fmt.Errorf("removing %s: %w", clean, err)
		}
	}

	s := &Scaffold{Dir: clean, Title: title}

	if err := os.MkdirAll(filepath.Join(clean, filepath.FromSlash(cfg.AssetsDir)), fileutil.DirPermissions); err != nil {
		return nil, fmt.Errorf("creating book directories: %w", err)
	}

	name := ConfigFileYAML
	if opts.JSON {
		name = ConfigFileJSON
	}
	s.Config = filepath.Join(clean, name)
	if err := cfg.Save(s.Config); err != nil {
		return nil, fmt.Errorf("writing %s: %w", name, err)
	}
	s.Files = append(s.Files, s.Config)

	readme, err := starterChapter(title, name)
	if err != nil {
		return nil, err
	}
	readmePath := filepath.Join(clean, filepath.FromSlash(cfg.RootDir), filepath.FromSlash(cfg.Pages[0].Path))
	if err := fileutil.WriteFile(readmePath, readme); err != nil {
		return nil, err
	}
	s.Files = append(s.Files, readmePath)

	return s, nil
}

// titleFromDir turns "my-rust_book" into "My Rust Book".
func titleFromDir(dir string) string {
	base := strings.NewReplacer("-", " ", "_", " ").Replace(filepath.Base(dir))
	return cases.Title(language.English).String(strings.Join(strings.Fields(base), " "))
}

// starterChapter renders the first page of a new book. It exercises every
// construct the native engine understands so a fresh build shows them all.
func starterChapter(title, configName string) ([]byte, error) {
	var buf bytes.Buffer
	md := markdown.NewMarkdown(&buf)

	md.H1(title)
	md.PlainText("")
	md.PlainTextf("Welcome to **%s**. This page was created by `bookmark new`.", title)
	md.PlainText("")

	md.H2("Writing chapters")
	md.PlainText("")
	md.BulletList(
		"Add a markdown file under `src/`.",
		fmt.Sprintf("List it under `pages` in `%s` with a title.", configName),
		"Run `bookmark build`; pages are written to `dist/`.",
	)
	md.PlainText("")
	md.Blockquote("Links to chapters such as [this page](README.md) point at the generated HTML.")
	md.PlainText("")

	md.H2("Code")
	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlight("sh"), "bookmark build --highlight github")

	if err := md.Build(); err != nil {
		return nil, fmt.Errorf("rendering starter chapter: %w", err)
	}
	return buf.Bytes(), nil
}
