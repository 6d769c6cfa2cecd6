package markdown

// Node is a block-level element of a Document.
// The concrete types are Heading, Paragraph, List, CodeBlock, Quote and
// LineBreak.
type Node interface {
	node()
}

// Inline is masked text plus the tokens its placeholders refer to.
// Text never contains raw span syntax: every span was replaced by "<$i>".
type Inline struct {
	Text   string
	Tokens []InlineToken
}

// newInline lexes raw and masks it.
func newInline(raw string) Inline {
	tokens := Lex(raw)
	return Inline{Text: Mask(raw, tokens), Tokens: tokens}
}

// HTML restores the spans as HTML.
func (in Inline) HTML() string {
	return Unmask(in.Text, in.Tokens)
}

// Heading is an ATX heading of level 1 to 6.
type Heading struct {
	Level int
	Inline
}

// Paragraph is a single line of body text.
type Paragraph struct {
	Inline
}

// ListKind distinguishes ordered from unordered lists.
type ListKind uint8

// List kinds.
const (
	Unordered ListKind = iota
	Ordered
)

// List is a run of list items. Each item exclusively owns its optional
// nested list.
type List struct {
	Kind  ListKind
	Items []ListItem
}

// ListItem is one entry of a List.
type ListItem struct {
	Inline
	Sublist *List
}

// CodeBlock is a fenced block. Lines are kept verbatim.
type CodeBlock struct {
	Language string
	Lines    []string
}

// Quote is a run of consecutive ">" lines.
type Quote struct {
	Lines []QuoteLine
}

// QuoteLine is one line of a Quote.
type QuoteLine struct {
	Inline
}

// LineBreak marks a blank line. It separates blocks while scanning and
// renders as nothing.
type LineBreak struct{}

func (Heading) node()   {}
func (Paragraph) node() {}
func (List) node()      {}
func (CodeBlock) node() {}
func (Quote) node()     {}
func (LineBreak) node() {}
