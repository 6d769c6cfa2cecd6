// Package yamlutil reads and writes book configs through goccy/go-yaml.
// book.yaml and book.json share one decoder, since JSON is valid YAML, and
// one set of yaml struct tags for both encodings.
package yamlutil

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// MaxInputSize bounds the config size Decode accepts.
var MaxInputSize = 1 << 20

var (
	ErrEmptyInput     = errors.New("yamlutil: empty input")
	ErrNilDestination = errors.New("yamlutil: nil destination")
	ErrInputTooLarge  = errors.New("yamlutil: input too large")
	ErrUnknownFormat  = errors.New("yamlutil: unknown format")
)

// Format is a config encoding.
type Format string

const (
	YAML Format = "yaml"
	JSON Format = "json"
)

// FormatOf picks the format from a file extension: .yaml and .yml are YAML,
// .json is JSON.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// Decode parses YAML or JSON into v. Fields v does not declare are an error,
// so a misspelled config key is reported instead of silently ignored.
func Decode(data []byte, v any) error {
	switch {
	case len(data) == 0:
		return ErrEmptyInput
	case len(data) > MaxInputSize:
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	case v == nil:
		return ErrNilDestination
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// Encode writes v as block-style YAML or as JSON.
func Encode(v any, f Format) ([]byte, error) {
	var opts []yaml.EncodeOption
	switch f {
	case YAML:
	case JSON:
		opts = append(opts, yaml.JSON())
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}

	data, err := yaml.MarshalWithOptions(v, opts...)
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return data, nil
}
