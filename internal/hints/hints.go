// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"fmt"
	"strings"
)

// maxListed caps how many names a hint enumerates.
const maxListed = 8

// ForConfigNotFound returns hints for a missing book config.
// Suggests creating a book or pointing --config at an existing file.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "run 'bookmark new <name>' to create a book, or use --config /path/to/book.yaml"
	if len(searchedPaths) > 0 {
		hint = "searched " + strings.Join(searchedPaths, ", ") + "; " + hint
	}
	return format(hint)
}

// ForBookExists returns a hint for scaffolding into an existing directory.
func ForBookExists() string {
	return format("use --force to overwrite the existing book")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForUnsafeOutput returns a hint for a distDir that would delete sources on reset.
func ForUnsafeOutput() string {
	return format("distDir is deleted before every build; choose a directory outside rootDir such as 'dist'")
}

// ForMissingPage returns a hint for a page listed in the config but absent on disk.
func ForMissingPage(rootDir string) string {
	return format(fmt.Sprintf("page paths are relative to rootDir (%s)", rootDir))
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + joinNames(available))
}

// ForHighlightStyle returns hints for an unknown syntax highlighting style.
func ForHighlightStyle(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + joinNames(available) + "; use 'bookmark styles' for the full list")
}

// ForTemplateRegion returns hints for a page template missing a slot.
func ForTemplateRegion(slot string) string {
	return format(fmt.Sprintf("page.html must contain <!-- bookmark:%s --> and <!-- /bookmark:%s --> exactly once", slot, slot))
}

// ForEngine returns a hint listing the accepted engine names.
func ForEngine(engines []string) string {
	return format("valid engines: " + strings.Join(engines, ", "))
}

// joinNames lists at most maxListed names, summarizing the rest.
func joinNames(names []string) string {
	if len(names) <= maxListed {
		return strings.Join(names, ", ")
	}
	return fmt.Sprintf("%s and %d more", strings.Join(names[:maxListed], ", "), len(names)-maxListed)
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
