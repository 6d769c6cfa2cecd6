package pipeline

import (
	"regexp"
	"strings"
)

// Highlight placeholders use Unicode Private Use Area characters.
// They pass through goldmark unchanged (no WithUnsafe needed) and are
// turned into <mark> tags after HTML generation.
const (
	markStartPlaceholder = "\uE000" // U+E000: Private Use Area start
	markEndPlaceholder   = "\uE001" // U+E001: Private Use Area end
)

var (
	crlfOrCR           = regexp.MustCompile(`\r\n?`)
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
	highlightPattern   = regexp.MustCompile(`==(.*?)==`)
)

// preprocessCommonMark prepares chapter text for the goldmark engine:
// line endings are normalized, ==text== becomes a highlight placeholder and
// runs of blank lines are compressed.
func preprocessCommonMark(content string) string {
	content = crlfOrCR.ReplaceAllString(content, "\n")
	content = highlightPattern.ReplaceAllString(content, markStartPlaceholder+"$1"+markEndPlaceholder)
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}

// convertMarkPlaceholders turns highlight placeholders into <mark> tags.
func convertMarkPlaceholders(content string) string {
	return strings.NewReplacer(
		markStartPlaceholder, "<mark>",
		markEndPlaceholder, "</mark>",
	).Replace(content)
}
