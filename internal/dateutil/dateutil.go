// Package dateutil resolves the "updated" date shown in the book sidebar.
//
// A value is either literal text ("Spring 2026"), kept as is, or "auto" with
// an optional layout ("auto:DD/MM/YYYY", "auto:long") formatted from the
// build time.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat marks an unusable "auto:" layout.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxLayoutLength bounds a user layout.
const MaxLayoutLength = 50

// DefaultLayout is used by a bare "auto".
const DefaultLayout = "YYYY-MM-DD"

const autoPrefix = "auto"

// tokens maps layout tokens to Go reference-time fragments, longest first so
// "MMMM" wins over "MM".
var tokens = []struct {
	token string
	ref   string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// Presets are named layouts accepted after "auto:".
var Presets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// GoLayout translates a layout such as "DD MMM YYYY" into a time.Format
// layout. Text in brackets is copied verbatim: "[Week of] D MMM".
func GoLayout(layout string) (string, error) {
	switch {
	case layout == "":
		return "", fmt.Errorf("%w: empty layout", ErrInvalidDateFormat)
	case len(layout) > MaxLayoutLength:
		return "", fmt.Errorf("%w: layout longer than %d characters", ErrInvalidDateFormat, MaxLayoutLength)
	}

	var b strings.Builder
	rest := layout
	for rest != "" {
		if rest[0] == '[' {
			literal, after, ok := strings.Cut(rest[1:], "]")
			if !ok {
				return "", fmt.Errorf("%w: unclosed bracket in %q", ErrInvalidDateFormat, layout)
			}
			b.WriteString(literal)
			rest = after
			continue
		}
		n := 1
		fragment := rest[:1]
		for _, t := range tokens {
			if strings.HasPrefix(rest, t.token) {
				n, fragment = len(t.token), t.ref
				break
			}
		}
		b.WriteString(fragment)
		rest = rest[n:]
	}
	return b.String(), nil
}

// Resolve returns value with "auto" forms replaced by now in the requested
// layout. Other values, including "", are returned unchanged.
func Resolve(value string, now time.Time) (string, error) {
	if !strings.HasPrefix(strings.ToLower(value), autoPrefix) {
		return value, nil
	}

	layout := DefaultLayout
	if rest := value[len(autoPrefix):]; rest != "" {
		spec, ok := strings.CutPrefix(rest, ":")
		if !ok || spec == "" {
			return "", fmt.Errorf("%w: %q (use \"auto\" or \"auto:LAYOUT\")", ErrInvalidDateFormat, value)
		}
		layout = spec
		if preset, ok := Presets[strings.ToLower(spec)]; ok {
			layout = preset
		}
	}

	goLayout, err := GoLayout(layout)
	if err != nil {
		return "", err
	}
	return now.Format(goLayout), nil
}
