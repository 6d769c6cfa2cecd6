package assets

import "errors"

// Lookup failures. Resolver falls back to the embedded assets only for the
// two not-found errors.
var (
	ErrStyleNotFound         = errors.New("style not found")
	ErrTemplateSetNotFound   = errors.New("template set not found")
	ErrIncompleteTemplateSet = errors.New("template set missing required template")
)

// Input and I/O failures.
var (
	ErrInvalidAssetName = errors.New("invalid asset name") // separators, dots or spaces in a name
	ErrInvalidBasePath  = errors.New("invalid base path")
	ErrAssetRead        = errors.New("failed to read asset")
	ErrPathTraversal    = errors.New("path traversal detected")
)
