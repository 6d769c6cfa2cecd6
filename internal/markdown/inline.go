package markdown

import (
	"fmt"
	"html"
	"strings"
)

// InlineKind identifies the span-level construct an InlineToken represents.
type InlineKind uint8

// Inline kinds, listed in match priority order.
const (
	InlineLink InlineKind = iota + 1
	InlineBold
	InlineItalic
	InlineCode
	InlineImage
)

// String returns the lowercase name of the kind.
func (k InlineKind) String() string {
	switch k {
	case InlineLink:
		return "link"
	case InlineBold:
		return "bold"
	case InlineItalic:
		return "italic"
	case InlineCode:
		return "code"
	case InlineImage:
		return "image"
	}
	return fmt.Sprintf("InlineKind(%d)", uint8(k))
}

// InlineToken is a span extracted from a line of text.
//
// Raw is the exact source substring and Start/End its byte range in the
// text the token was lexed from. Text carries the link text or image alt;
// Target carries the link href or image src; Value carries the inner
// content of bold, italic and code spans.
type InlineToken struct {
	Kind   InlineKind
	Raw    string
	Start  int
	End    int
	Text   string
	Target string
	Value  string
}

// HTML renders the token. All text and attribute values are escaped.
func (t InlineToken) HTML() string {
	switch t.Kind {
	case InlineLink:
		return `<a href="` + html.EscapeString(t.Target) + `">` + html.EscapeString(t.Text) + `</a>`
	case InlineImage:
		return `<img src="` + html.EscapeString(t.Target) + `" alt="` + html.EscapeString(t.Text) + `" />`
	case InlineBold:
		return "<strong>" + html.EscapeString(t.Value) + "</strong>"
	case InlineItalic:
		return "<i>" + html.EscapeString(t.Value) + "</i>"
	case InlineCode:
		return `<span class="inline-code">` + html.EscapeString(t.Value) + "</span>"
	}
	return html.EscapeString(t.Raw)
}

// matcher tries to recognize one inline construct starting exactly at pos.
type matcher func(s string, pos int) (InlineToken, bool)

// matchers is the fixed priority order tried at every candidate position.
// The first matcher that succeeds wins the position.
var matchers = []matcher{
	matchLink,
	matchBold,
	matchItalic,
	matchCode,
	matchImage,
}

// Lex extracts inline tokens from text in left-to-right order of appearance.
// Matching is non-overlapping and non-recursive: once a span is matched the
// scan resumes after it, so nothing inside a span is lexed again.
func Lex(text string) []InlineToken {
	var tokens []InlineToken

	for pos := 0; pos < len(text); {
		tok, ok := matchAt(text, pos)
		if !ok {
			pos++
			continue
		}
		tokens = append(tokens, tok)
		pos = tok.End
	}

	return tokens
}

// matchAt runs the matchers in priority order at pos.
func matchAt(text string, pos int) (InlineToken, bool) {
	// Fast reject: every construct opens with one of these bytes.
	switch text[pos] {
	case '[', '*', '`', '!':
	default:
		return InlineToken{}, false
	}

	for _, m := range matchers {
		if tok, ok := m(text, pos); ok {
			return tok, true
		}
	}
	return InlineToken{}, false
}

// matchLink recognizes [text](href).
func matchLink(s string, pos int) (InlineToken, bool) {
	text, target, end, ok := scanBracketPair(s, pos)
	if !ok {
		return InlineToken{}, false
	}
	return InlineToken{
		Kind:   InlineLink,
		Raw:    s[pos:end],
		Start:  pos,
		End:    end,
		Text:   text,
		Target: target,
	}, true
}

// matchImage recognizes ![alt](src).
func matchImage(s string, pos int) (InlineToken, bool) {
	if s[pos] != '!' || pos+1 >= len(s) {
		return InlineToken{}, false
	}
	alt, src, end, ok := scanBracketPair(s, pos+1)
	if !ok {
		return InlineToken{}, false
	}
	return InlineToken{
		Kind:   InlineImage,
		Raw:    s[pos:end],
		Start:  pos,
		End:    end,
		Text:   alt,
		Target: src,
	}, true
}

// scanBracketPair scans "[label](target)" starting at pos.
// The label may be empty; the target must be non-empty and contain no spaces.
func scanBracketPair(s string, pos int) (label, target string, end int, ok bool) {
	if s[pos] != '[' {
		return "", "", 0, false
	}

	closeLabel := strings.IndexByte(s[pos+1:], ']')
	if closeLabel == -1 {
		return "", "", 0, false
	}
	closeLabel += pos + 1
	label = s[pos+1 : closeLabel]
	if strings.ContainsAny(label, "[\n") {
		return "", "", 0, false
	}

	if closeLabel+1 >= len(s) || s[closeLabel+1] != '(' {
		return "", "", 0, false
	}

	openTarget := closeLabel + 2
	closeTarget := strings.IndexByte(s[openTarget:], ')')
	if closeTarget == -1 {
		return "", "", 0, false
	}
	closeTarget += openTarget
	target = s[openTarget:closeTarget]
	if target == "" || strings.ContainsAny(target, " \t\n(") {
		return "", "", 0, false
	}

	return label, target, closeTarget + 1, true
}

// matchBold recognizes **value**.
func matchBold(s string, pos int) (InlineToken, bool) {
	return matchDelimited(s, pos, "**", InlineBold)
}

// matchItalic recognizes *value*.
func matchItalic(s string, pos int) (InlineToken, bool) {
	return matchDelimited(s, pos, "*", InlineItalic)
}

// matchCode recognizes `value`.
func matchCode(s string, pos int) (InlineToken, bool) {
	return matchDelimited(s, pos, "`", InlineCode)
}

// matchDelimited recognizes delim value delim where value is non-empty,
// does not start with whitespace and does not contain the delimiter's
// first byte.
func matchDelimited(s string, pos int, delim string, kind InlineKind) (InlineToken, bool) {
	if !strings.HasPrefix(s[pos:], delim) {
		return InlineToken{}, false
	}

	open := pos + len(delim)
	if open >= len(s) {
		return InlineToken{}, false
	}

	stop := strings.IndexByte(s[open:], delim[0])
	if stop <= 0 {
		return InlineToken{}, false
	}
	closeAt := open + stop
	if !strings.HasPrefix(s[closeAt:], delim) {
		return InlineToken{}, false
	}

	value := s[open:closeAt]
	if kind != InlineCode && isSpace(value[0]) {
		return InlineToken{}, false
	}

	end := closeAt + len(delim)
	return InlineToken{
		Kind:  kind,
		Raw:   s[pos:end],
		Start: pos,
		End:   end,
		Value: value,
	}, true
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t'
}
