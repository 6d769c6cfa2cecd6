package main

import (
	"errors"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage marks invalid command-line input.
var ErrUsage = errors.New("invalid usage")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common    commonFlags
	output    string
	workers   int
	engine    string
	highlight string
	style     string
	assetPath string
	templates string
}

// newFlags holds flags for the new command.
type newFlags struct {
	title  string
	author string
	json   bool
	force  bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file path (default: book.yaml, book.yml or book.json)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs, sizes and timing")
}

// registerBuildFlags registers the build flags on fs.
// Shared by parseBuildFlags and shell completion.
func registerBuildFlags(fs *flag.FlagSet, f *buildFlags) {
	fs.StringVarP(&f.output, "out", "o", "", "output directory (overrides distDir)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "pages converted at once (0 = auto)")
	fs.StringVarP(&f.engine, "engine", "e", "", "markdown engine: native, commonmark")
	fs.StringVar(&f.highlight, "highlight", "", "chroma style for code blocks (empty = off)")
	fs.StringVar(&f.style, "style", "", "CSS style name or file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory with custom styles/ and templates/")
	fs.StringVar(&f.templates, "template", "", "template set name")
	addCommonFlags(fs, &f.common)
}

// registerNewFlags registers the new flags on fs.
func registerNewFlags(fs *flag.FlagSet, f *newFlags) {
	fs.StringVarP(&f.title, "title", "t", "", "book name (default: directory name)")
	fs.StringVarP(&f.author, "author", "a", "", "author name")
	fs.BoolVar(&f.json, "json", false, "write book.json instead of book.yaml")
	fs.BoolVarP(&f.force, "force", "f", false, "replace an existing directory")
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string, stderr io.Writer) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	f := &buildFlags{}
	registerBuildFlags(fs, f)

	fs.SetOutput(stderr)
	fs.Usage = func() { printBuildUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseNewFlags parses new command flags and returns positional args.
func parseNewFlags(args []string, stderr io.Writer) (*newFlags, []string, error) {
	fs := flag.NewFlagSet("new", flag.ContinueOnError)
	f := &newFlags{}
	registerNewFlags(fs, f)

	fs.SetOutput(stderr)
	fs.Usage = func() { printNewUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
