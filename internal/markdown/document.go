package markdown

// Document is the parsed form of one markdown file: its block nodes in
// document order. A Document is not modified after Parse returns, so it may
// be rendered from several goroutines.
type Document struct {
	nodes []Node
}

// Parse tokenizes src into a Document. Parsing is total: every input,
// however malformed, yields a Document.
func Parse(src string) *Document {
	return &Document{nodes: tokenize(splitLines(src))}
}

// Nodes returns the block nodes in document order.
// The returned slice is a copy; the nodes themselves are values.
func (d *Document) Nodes() []Node {
	nodes := make([]Node, len(d.nodes))
	copy(nodes, d.nodes)
	return nodes
}
