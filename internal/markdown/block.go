package markdown

import (
	"strings"
)

// tabWidth is the indentation width of a tab when measuring list nesting.
const tabWidth = 4

// fence opens and closes a code block.
const fence = "```"

// recognizer tries to recognize a block starting at lines[i].
// On success it returns the node and the index just past the consumed lines.
// A nil node with ok=true means the lines were consumed without output.
type recognizer func(lines []string, i int) (n Node, next int, ok bool)

// recognizers are tried in order at each cursor position; the first match
// wins. recognizeParagraph accepts any line, so the scan always advances.
var recognizers = []recognizer{
	recognizeLineBreak,
	recognizeHeading,
	recognizeList,
	recognizeCodeBlock,
	recognizeQuote,
	recognizeParagraph,
}

// splitLines splits src on line boundaries. "\r\n" and lone "\r" count as
// line endings so carriage returns never leak into block text. A final line
// ending terminates the last line instead of starting an empty one.
func splitLines(src string) []string {
	src = strings.NewReplacer("\r\n", "\n", "\r", "\n").Replace(src)
	lines := strings.Split(src, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// tokenize scans lines top to bottom and returns the block nodes in
// document order. It never fails: unrecognized lines become paragraphs.
func tokenize(lines []string) []Node {
	var nodes []Node

	for i := 0; i < len(lines); {
		for _, recognize := range recognizers {
			n, next, ok := recognize(lines, i)
			if !ok {
				continue
			}
			if n != nil {
				nodes = append(nodes, n)
			}
			i = next
			break
		}
	}

	return nodes
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

func recognizeLineBreak(lines []string, i int) (Node, int, bool) {
	if !isBlank(lines[i]) {
		return nil, i, false
	}
	return nil, i + 1, true
}

// recognizeHeading accepts one or more '#' followed by whitespace.
// Levels beyond 6 are clamped to 6.
func recognizeHeading(lines []string, i int) (Node, int, bool) {
	line := strings.TrimSpace(lines[i])

	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	if n == 0 || n >= len(line) || !isSpace(line[n]) {
		return nil, i, false
	}

	return Heading{
		Level:  min(n, 6),
		Inline: newInline(strings.TrimSpace(line[n:])),
	}, i + 1, true
}

// listMarker describes a line that has list-item syntax.
type listMarker struct {
	indent int
	kind   ListKind
	text   string
}

// parseListMarker reports whether line is a list item: optional indentation,
// then "-", "*" or digits followed by ".", then whitespace or end of line.
func parseListMarker(line string) (listMarker, bool) {
	line = strings.TrimRight(line, " \t")

	indent, pos := 0, 0
	for pos < len(line) && isSpace(line[pos]) {
		if line[pos] == '\t' {
			indent += tabWidth
		} else {
			indent++
		}
		pos++
	}
	if pos == len(line) {
		return listMarker{}, false
	}

	var kind ListKind
	switch c := line[pos]; {
	case c == '-' || c == '*':
		kind = Unordered
		pos++
	case c >= '0' && c <= '9':
		digits := pos
		for pos < len(line) && line[pos] >= '0' && line[pos] <= '9' {
			pos++
		}
		if pos-digits > 9 || pos == len(line) || line[pos] != '.' {
			return listMarker{}, false
		}
		kind = Ordered
		pos++
	default:
		return listMarker{}, false
	}

	if pos < len(line) && !isSpace(line[pos]) {
		return listMarker{}, false
	}

	return listMarker{
		indent: indent,
		kind:   kind,
		text:   strings.TrimSpace(line[pos:]),
	}, true
}

func recognizeList(lines []string, i int) (Node, int, bool) {
	if _, ok := parseListMarker(lines[i]); !ok {
		return nil, i, false
	}
	list, next := parseList(lines, i)
	return *list, next, true
}

// parseList consumes list items whose indentation equals that of lines[i].
// Deeper items become a sublist of the preceding item; shallower items,
// non-list lines and end of input terminate the list. Blank lines between
// items are skipped.
func parseList(lines []string, i int) (*List, int) {
	first, _ := parseListMarker(lines[i])
	list := &List{Kind: first.kind}
	base := first.indent

	for i < len(lines) {
		if isBlank(lines[i]) {
			j := i
			for j < len(lines) && isBlank(lines[j]) {
				j++
			}
			if j == len(lines) {
				return list, j
			}
			if m, ok := parseListMarker(lines[j]); !ok || m.indent < base {
				return list, j
			}
			i = j
			continue
		}

		m, ok := parseListMarker(lines[i])
		if !ok || m.indent < base {
			return list, i
		}

		if m.indent > base {
			sub, next := parseList(lines, i)
			last := &list.Items[len(list.Items)-1]
			if last.Sublist == nil {
				last.Sublist = sub
			} else {
				last.Sublist.Items = append(last.Sublist.Items, sub.Items...)
			}
			i = next
			continue
		}

		list.Items = append(list.Items, ListItem{Inline: newInline(m.text)})
		i++
	}

	return list, i
}

// recognizeCodeBlock accepts a fence optionally followed by a language label.
// Everything up to a closing fence line is kept verbatim; without a closing
// fence the block runs to end of input.
func recognizeCodeBlock(lines []string, i int) (Node, int, bool) {
	line := strings.TrimSpace(lines[i])
	if !strings.HasPrefix(line, fence) {
		return nil, i, false
	}

	lang := strings.TrimSpace(line[len(fence):])
	if strings.ContainsAny(lang, "` \t") {
		return nil, i, false
	}

	block := CodeBlock{Language: lang}
	j := i + 1
	for ; j < len(lines); j++ {
		if strings.TrimSpace(lines[j]) == fence {
			return block, j + 1, true
		}
		block.Lines = append(block.Lines, lines[j])
	}

	return block, j, true
}

// recognizeQuote consumes consecutive lines starting with '>'.
func recognizeQuote(lines []string, i int) (Node, int, bool) {
	if !strings.HasPrefix(strings.TrimSpace(lines[i]), ">") {
		return nil, i, false
	}

	var quote Quote
	j := i
	for ; j < len(lines); j++ {
		line := strings.TrimSpace(lines[j])
		if !strings.HasPrefix(line, ">") {
			break
		}
		text := strings.TrimPrefix(line[1:], " ")
		quote.Lines = append(quote.Lines, QuoteLine{Inline: newInline(text)})
	}

	return quote, j, true
}

func recognizeParagraph(lines []string, i int) (Node, int, bool) {
	return Paragraph{Inline: newInline(strings.TrimSpace(lines[i]))}, i + 1, true
}
