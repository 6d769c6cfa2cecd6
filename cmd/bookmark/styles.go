package main

import (
	"fmt"

	bookmark "github.com/alnah/go-bookmark"
	"github.com/alnah/go-bookmark/internal/pipeline"
)

// runStyles lists the built-in page styles and the code highlighting styles.
func runStyles(args []string, env *Environment) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: styles takes no arguments", ErrUsage)
	}

	fmt.Fprintln(env.Stdout, "Page styles (--style):")
	for _, name := range bookmark.StyleNames() {
		fmt.Fprintf(env.Stdout, "  %s\n", name)
	}

	fmt.Fprintln(env.Stdout)
	fmt.Fprintln(env.Stdout, "Highlight styles (--highlight):")
	for _, name := range pipeline.HighlightStyles() {
		fmt.Fprintf(env.Stdout, "  %s\n", name)
	}
	return nil
}
