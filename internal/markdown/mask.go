package markdown

import (
	"html"
	"sort"
	"strconv"
	"strings"
)

// Placeholder delimiters. A masked span is written as "<$i>" where i is the
// 1-based position of the token in its token list.
const (
	placeholderOpen  = "<$"
	placeholderClose = ">"
)

// Placeholder returns the placeholder text for the i-th token (1-based).
func Placeholder(i int) string {
	return placeholderOpen + strconv.Itoa(i) + placeholderClose
}

// span is a claimed byte range of the unmasked text.
type span struct {
	start, end int
	index      int // 1-based token position
}

// Mask replaces each token's source span with its positional placeholder.
//
// Spans are located by the token's byte range. A token whose range does not
// address its Raw text (for example one built by hand) falls back to the
// first unclaimed occurrence of Raw. Text outside the spans is HTML-escaped,
// so the result is safe markup apart from the placeholders themselves.
func Mask(text string, tokens []InlineToken) string {
	if len(tokens) == 0 {
		return html.EscapeString(text)
	}

	spans := locateSpans(text, tokens)

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, sp := range spans {
		b.WriteString(html.EscapeString(text[last:sp.start]))
		b.WriteString(Placeholder(sp.index))
		last = sp.end
	}
	b.WriteString(html.EscapeString(text[last:]))

	return b.String()
}

// locateSpans resolves every token to a non-overlapping byte range, sorted
// by start offset. Tokens that cannot be located are skipped.
func locateSpans(text string, tokens []InlineToken) []span {
	spans := make([]span, 0, len(tokens))

	claimed := func(start, end int) bool {
		for _, sp := range spans {
			if start < sp.end && sp.start < end {
				return true
			}
		}
		return false
	}

	for i, tok := range tokens {
		if tok.Raw == "" {
			continue
		}

		// Preferred: the captured byte range.
		if tok.Start >= 0 && tok.End <= len(text) && tok.End-tok.Start == len(tok.Raw) &&
			text[tok.Start:tok.End] == tok.Raw && !claimed(tok.Start, tok.End) {
			spans = append(spans, span{start: tok.Start, end: tok.End, index: i + 1})
			continue
		}

		// Fallback: first occurrence not already claimed by another token.
		for from := 0; from <= len(text)-len(tok.Raw); {
			idx := strings.Index(text[from:], tok.Raw)
			if idx == -1 {
				break
			}
			start := from + idx
			end := start + len(tok.Raw)
			if !claimed(start, end) {
				spans = append(spans, span{start: start, end: end, index: i + 1})
				break
			}
			from = start + 1
		}
	}

	sort.Slice(spans, func(a, b int) bool { return spans[a].start < spans[b].start })
	return spans
}

// Unmask substitutes the HTML rendering of tokens[i-1] for every "<$i>"
// placeholder in text. Placeholders whose index does not address a token
// are left untouched. The substitution is a single left-to-right pass, so
// HTML produced for one token is never rescanned.
func Unmask(text string, tokens []InlineToken) string {
	return substitute(text, tokens, InlineToken.HTML)
}

// substitute replaces valid placeholders with render(token).
func substitute(text string, tokens []InlineToken, render func(InlineToken) string) string {
	if !strings.Contains(text, placeholderOpen) {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))

	for {
		open := strings.Index(text, placeholderOpen)
		if open == -1 {
			b.WriteString(text)
			break
		}

		digits := open + len(placeholderOpen)
		n := 0
		for digits+n < len(text) && text[digits+n] >= '0' && text[digits+n] <= '9' {
			n++
		}
		closeAt := digits + n

		if n == 0 || closeAt >= len(text) || !strings.HasPrefix(text[closeAt:], placeholderClose) {
			b.WriteString(text[:digits])
			text = text[digits:]
			continue
		}

		idx, err := strconv.Atoi(text[digits:closeAt])
		end := closeAt + len(placeholderClose)
		b.WriteString(text[:open])
		if err != nil || idx < 1 || idx > len(tokens) {
			b.WriteString(text[open:end])
		} else {
			b.WriteString(render(tokens[idx-1]))
		}
		text = text[end:]
	}

	return b.String()
}
