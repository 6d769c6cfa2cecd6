package main

import (
	"errors"
	"os"

	bookmark "github.com/alnah/go-bookmark"
	"github.com/alnah/go-bookmark/internal/config"
	"github.com/alnah/go-bookmark/internal/dateutil"
)

// Exit codes for the bookmark CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Every page built
	ExitGeneral = 1 // Some page failed, or unexpected error
	ExitUsage   = 2 // Invalid flags, config, or assets
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Page failures are reported per page; the build itself ran.
	if bookmark.IsPageFailure(err) {
		return ExitGeneral
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrMissingField) ||
		errors.Is(err, config.ErrNoPages) ||
		errors.Is(err, config.ErrInvalidPagePath) ||
		errors.Is(err, config.ErrDuplicatePage) ||
		errors.Is(err, config.ErrUnsafeDistDir) ||
		errors.Is(err, config.ErrInvalidEngine) ||
		errors.Is(err, config.ErrInvalidWorkers) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, bookmark.ErrEmptyName) ||
		errors.Is(err, bookmark.ErrBookExists) ||
		errors.Is(err, bookmark.ErrEmptyBook) ||
		errors.Is(err, bookmark.ErrUnknownEngine) ||
		errors.Is(err, bookmark.ErrUnknownHighlightStyle) ||
		errors.Is(err, bookmark.ErrStyleNotFound) ||
		errors.Is(err, bookmark.ErrTemplateSetNotFound) ||
		errors.Is(err, bookmark.ErrIncompleteTemplateSet) ||
		errors.Is(err, bookmark.ErrMissingTemplateRegion) ||
		errors.Is(err, bookmark.ErrAmbiguousTemplateRegion) ||
		errors.Is(err, bookmark.ErrInvalidAssetPath) ||
		errors.Is(err, bookmark.ErrInvalidPagePath) ||
		errors.Is(err, bookmark.ErrInvalidExtension) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, bookmark.ErrPrepareOutput) ||
		errors.Is(err, bookmark.ErrReadMarkdown) ||
		errors.Is(err, bookmark.ErrWriteHTML) {
		return ExitIO
	}

	return ExitGeneral
}
