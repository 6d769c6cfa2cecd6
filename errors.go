package bookmark

import (
	"errors"

	"github.com/alnah/go-bookmark/internal/assets"
	"github.com/alnah/go-bookmark/internal/config"
	"github.com/alnah/go-bookmark/internal/fileutil"
	"github.com/alnah/go-bookmark/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrReadMarkdown    = errors.New("failed to read markdown")
	ErrWriteHTML       = errors.New("failed to write HTML")
	ErrPrepareOutput   = errors.New("failed to prepare output directory")
	ErrEmptyBook       = errors.New("book has no pages")
	ErrInvalidPagePath = errors.New("page path must be relative to the book root")
	ErrEmptyName       = errors.New("book name cannot be empty")
	ErrBookExists      = errors.New("book directory already exists")
	ErrPagesFailed     = errors.New("one or more pages failed")

	// Conversion errors, re-exported from the pipeline.
	ErrHTMLConversion          = pipeline.ErrHTMLConversion
	ErrUnknownEngine           = pipeline.ErrUnknownEngine
	ErrUnknownHighlightStyle   = pipeline.ErrUnknownHighlightStyle
	ErrMissingTemplateRegion   = pipeline.ErrMissingTemplateRegion
	ErrAmbiguousTemplateRegion = pipeline.ErrAmbiguousTemplateRegion

	// ErrUnsafeDistDir is returned when resetting the output directory would
	// delete the working directory or the sources.
	ErrUnsafeDistDir = config.ErrUnsafeDistDir

	// ErrInvalidExtension is returned for page paths not ending in ".md".
	ErrInvalidExtension = fileutil.ErrInvalidExtension

	// Asset loading errors.
	ErrStyleNotFound         = assets.ErrStyleNotFound
	ErrTemplateSetNotFound   = assets.ErrTemplateSetNotFound
	ErrIncompleteTemplateSet = assets.ErrIncompleteTemplateSet
	ErrInvalidAssetPath      = errors.New("invalid asset path")
)
