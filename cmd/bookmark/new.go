package main

import (
	"errors"
	"fmt"
	"path/filepath"

	flag "github.com/spf13/pflag"

	bookmark "github.com/alnah/go-bookmark"
)

// runNew scaffolds a book in the directory named by the single argument.
func runNew(args []string, env *Environment) error {
	flags, positional, err := parseNewFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if len(positional) != 1 {
		printNewUsage(env.Stderr)
		return fmt.Errorf("%w: expected one book name, got %d", ErrUsage, len(positional))
	}

	dir := positional[0]
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(env.WorkDir, dir)
	}

	s, err := bookmark.NewBook(dir, bookmark.NewBookOptions{
		Title:  flags.title,
		Author: flags.author,
		JSON:   flags.json,
		Force:  flags.force,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(env.Stdout, "Created %q in %s\n", s.Title, s.Dir)
	for _, f := range s.Files {
		if rel, err := filepath.Rel(s.Dir, f); err == nil {
			f = rel
		}
		fmt.Fprintf(env.Stdout, "  %s\n", filepath.ToSlash(f))
	}
	fmt.Fprintf(env.Stdout, "\nNext: cd %s && bookmark build\n", positional[0])
	return nil
}
