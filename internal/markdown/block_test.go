package markdown

import (
	"reflect"
	"strings"
	"testing"
)

func TestSplitLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "unix", input: "a\nb", want: []string{"a", "b"}},
		{name: "windows", input: "a\r\nb", want: []string{"a", "b"}},
		{name: "old mac", input: "a\rb", want: []string{"a", "b"}},
		{name: "trailing newline", input: "a\n", want: []string{"a"}},
		{name: "trailing crlf", input: "a\r\n", want: []string{"a"}},
		{name: "blank line before end", input: "a\n\n", want: []string{"a", ""}},
		{name: "empty", input: "", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := splitLines(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitLines(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse_Headings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input     string
		wantLevel int
		wantText  string
	}{
		{input: "# A", wantLevel: 1, wantText: "A"},
		{input: "### Three", wantLevel: 3, wantText: "Three"},
		{input: "###### Six", wantLevel: 6, wantText: "Six"},
		{input: "####### A", wantLevel: 6, wantText: "A"},
		{input: "   ## indented  ", wantLevel: 2, wantText: "indented"},
		{input: "#\tTab", wantLevel: 1, wantText: "Tab"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			nodes := Parse(tt.input).Nodes()
			if len(nodes) != 1 {
				t.Fatalf("got %d nodes, want 1", len(nodes))
			}
			h, ok := nodes[0].(Heading)
			if !ok {
				t.Fatalf("node is %T, want Heading", nodes[0])
			}
			if h.Level != tt.wantLevel {
				t.Errorf("Level = %d, want %d", h.Level, tt.wantLevel)
			}
			if h.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", h.Text, tt.wantText)
			}
		})
	}
}

func TestParse_HeadingMasksInlineTokens(t *testing.T) {
	t.Parallel()

	nodes := Parse("# Read [the guide](guide.md) **now**").Nodes()
	h := nodes[0].(Heading)

	if h.Text != "Read <$1> <$2>" {
		t.Errorf("Text = %q, want %q", h.Text, "Read <$1> <$2>")
	}
	if len(h.Tokens) != 2 || h.Tokens[0].Kind != InlineLink || h.Tokens[1].Kind != InlineBold {
		t.Errorf("Tokens = %+v, want link then bold", h.Tokens)
	}
}

func TestParse_ParagraphFallback(t *testing.T) {
	t.Parallel()

	// Each line looks like the start of another block but fails recognition.
	inputs := []string{
		"#hashtag",
		"#",
		"-dash",
		"*emphasis* first",
		"**bold** first",
		"1.5 is a number",
		"12) paren",
		"```two words",
		"```a`b",
		"``",
		"***",
		"plain text",
		"\x00\x01 control bytes",
		"<div>html</div>",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			nodes := Parse(input).Nodes()
			if len(nodes) != 1 {
				t.Fatalf("Parse(%q) produced %d nodes, want 1", input, len(nodes))
			}
			if _, ok := nodes[0].(Paragraph); !ok {
				t.Errorf("Parse(%q) node is %T, want Paragraph", input, nodes[0])
			}
		})
	}
}

func TestParse_BlankLinesProduceNothing(t *testing.T) {
	t.Parallel()

	doc := Parse("\n   \n\t\n")
	if n := len(doc.Nodes()); n != 0 {
		t.Errorf("Nodes() = %d nodes, want 0", n)
	}
}

func TestParse_CarriageReturnsDoNotCreateBlocks(t *testing.T) {
	t.Parallel()

	doc := Parse("# Title\r\n\r\nBody\r\n")
	nodes := doc.Nodes()
	if len(nodes) != 2 {
		t.Fatalf("got %d nodes, want 2: %#v", len(nodes), nodes)
	}
	if p := nodes[1].(Paragraph); p.Text != "Body" {
		t.Errorf("paragraph text = %q, want %q", p.Text, "Body")
	}
}

func TestParse_Lists(t *testing.T) {
	t.Parallel()

	t.Run("unordered", func(t *testing.T) {
		t.Parallel()

		l := parseSingleList(t, "- one\n- two\n* three")
		if l.Kind != Unordered {
			t.Errorf("Kind = %v, want Unordered", l.Kind)
		}
		assertItems(t, l, "one", "two", "three")
	})

	t.Run("ordered", func(t *testing.T) {
		t.Parallel()

		l := parseSingleList(t, "1. one\n2. two\n10. ten")
		if l.Kind != Ordered {
			t.Errorf("Kind = %v, want Ordered", l.Kind)
		}
		assertItems(t, l, "one", "two", "ten")
	})

	t.Run("first marker decides the kind", func(t *testing.T) {
		t.Parallel()

		l := parseSingleList(t, "1. one\n- two")
		if l.Kind != Ordered {
			t.Errorf("Kind = %v, want Ordered", l.Kind)
		}
		assertItems(t, l, "one", "two")
	})

	t.Run("blank line does not end the list", func(t *testing.T) {
		t.Parallel()

		l := parseSingleList(t, "- one\n\n- two")
		assertItems(t, l, "one", "two")
	})

	t.Run("nested list is owned by the preceding item", func(t *testing.T) {
		t.Parallel()

		l := parseSingleList(t, "- top\n  - nested")
		assertItems(t, l, "top")
		if l.Items[0].Sublist == nil {
			t.Fatal("Sublist = nil, want nested list")
		}
		assertItems(t, *l.Items[0].Sublist, "nested")
	})

	t.Run("returns to the outer list after nesting", func(t *testing.T) {
		t.Parallel()

		l := parseSingleList(t, "- a\n  1. a1\n  2. a2\n    - deep\n- b")
		assertItems(t, l, "a", "b")
		sub := l.Items[0].Sublist
		if sub == nil || sub.Kind != Ordered {
			t.Fatalf("Sublist = %+v, want ordered list", sub)
		}
		assertItems(t, *sub, "a1", "a2")
		if sub.Items[1].Sublist == nil {
			t.Fatal("a2 has no sublist")
		}
		assertItems(t, *sub.Items[1].Sublist, "deep")
		if l.Items[1].Sublist != nil {
			t.Error("b should have no sublist")
		}
	})

	t.Run("tab indentation nests", func(t *testing.T) {
		t.Parallel()

		l := parseSingleList(t, "- a\n\t- b")
		if l.Items[0].Sublist == nil {
			t.Fatal("tab-indented item was not nested")
		}
	})

	t.Run("item text is masked", func(t *testing.T) {
		t.Parallel()

		l := parseSingleList(t, "- see `code`")
		if got := l.Items[0].Text; got != "see <$1>" {
			t.Errorf("Text = %q, want %q", got, "see <$1>")
		}
	})
}

func TestParse_ListTermination(t *testing.T) {
	t.Parallel()

	nodes := Parse("- one\n- two\n\nAfter the list").Nodes()
	if len(nodes) != 2 {
		t.Fatalf("got %d nodes, want 2", len(nodes))
	}
	if _, ok := nodes[0].(List); !ok {
		t.Errorf("first node is %T, want List", nodes[0])
	}
	if p, ok := nodes[1].(Paragraph); !ok || p.Text != "After the list" {
		t.Errorf("second node = %#v, want paragraph", nodes[1])
	}
}

func TestParse_CodeBlocks(t *testing.T) {
	t.Parallel()

	t.Run("terminated", func(t *testing.T) {
		t.Parallel()

		nodes := Parse("```go\nx := *p\n  y := **q**\n```\nafter").Nodes()
		if len(nodes) != 2 {
			t.Fatalf("got %d nodes, want 2", len(nodes))
		}
		cb := nodes[0].(CodeBlock)
		if cb.Language != "go" {
			t.Errorf("Language = %q, want %q", cb.Language, "go")
		}
		want := []string{"x := *p", "  y := **q**"}
		if !reflect.DeepEqual(cb.Lines, want) {
			t.Errorf("Lines = %q, want %q", cb.Lines, want)
		}
	})

	t.Run("unterminated runs to end of input", func(t *testing.T) {
		t.Parallel()

		nodes := Parse("intro\n```rust\nfn main() {}\n# not a heading\n- not a list").Nodes()
		if len(nodes) != 2 {
			t.Fatalf("got %d nodes, want 2", len(nodes))
		}
		cb := nodes[1].(CodeBlock)
		if len(cb.Lines) != 3 {
			t.Errorf("Lines = %q, want 3 lines", cb.Lines)
		}
	})

	t.Run("unterminated ends at final newline", func(t *testing.T) {
		t.Parallel()

		cb := Parse("```go\nx := *a*\n").Nodes()[0].(CodeBlock)
		if !reflect.DeepEqual(cb.Lines, []string{"x := *a*"}) {
			t.Errorf("Lines = %q, want one line", cb.Lines)
		}
	})

	t.Run("bare fence has no language", func(t *testing.T) {
		t.Parallel()

		cb := Parse("```\nplain\n```").Nodes()[0].(CodeBlock)
		if cb.Language != "" {
			t.Errorf("Language = %q, want empty", cb.Language)
		}
	})

	t.Run("blank lines kept inside block", func(t *testing.T) {
		t.Parallel()

		cb := Parse("```txt\na\n\nb\n```").Nodes()[0].(CodeBlock)
		if !reflect.DeepEqual(cb.Lines, []string{"a", "", "b"}) {
			t.Errorf("Lines = %q", cb.Lines)
		}
	})
}

func TestParse_Quotes(t *testing.T) {
	t.Parallel()

	nodes := Parse("> first *line*\n>second\n> \nnot quoted").Nodes()
	if len(nodes) != 2 {
		t.Fatalf("got %d nodes, want 2", len(nodes))
	}
	q := nodes[0].(Quote)
	if len(q.Lines) != 3 {
		t.Fatalf("quote has %d lines, want 3", len(q.Lines))
	}
	if q.Lines[0].Text != "first <$1>" || q.Lines[0].Tokens[0].Kind != InlineItalic {
		t.Errorf("line 0 = %+v", q.Lines[0])
	}
	if q.Lines[1].Text != "second" {
		t.Errorf("line 1 text = %q, want %q", q.Lines[1].Text, "second")
	}

	// A blank line ends the quote.
	nodes = Parse("> a\n\n> b").Nodes()
	if len(nodes) != 2 {
		t.Errorf("got %d nodes, want 2 separate quotes", len(nodes))
	}
}

func TestParse_NoRawSpanSyntaxInText(t *testing.T) {
	t.Parallel()

	src := strings.Join([]string{
		"# **Title** with [link](a.md)",
		"Paragraph with *italic* and `code` and ![img](i.png)",
		"- item **bold**",
		"  - nested [x](y)",
		"> quoted `code`",
	}, "\n")

	var texts []Inline
	for _, n := range Parse(src).Nodes() {
		switch n := n.(type) {
		case Heading:
			texts = append(texts, n.Inline)
		case Paragraph:
			texts = append(texts, n.Inline)
		case Quote:
			for _, l := range n.Lines {
				texts = append(texts, l.Inline)
			}
		case List:
			texts = append(texts, n.Items[0].Inline, n.Items[0].Sublist.Items[0].Inline)
		}
	}

	if len(texts) != 5 {
		t.Fatalf("collected %d texts, want 5", len(texts))
	}
	for _, in := range texts {
		for _, tok := range in.Tokens {
			if strings.Contains(in.Text, tok.Raw) {
				t.Errorf("text %q still contains %q", in.Text, tok.Raw)
			}
		}
		if len(in.Tokens) == 0 {
			t.Errorf("text %q has no tokens", in.Text)
		}
	}
}

func parseSingleList(t *testing.T, src string) List {
	t.Helper()

	nodes := Parse(src).Nodes()
	if len(nodes) != 1 {
		t.Fatalf("Parse(%q) produced %d nodes, want 1", src, len(nodes))
	}
	l, ok := nodes[0].(List)
	if !ok {
		t.Fatalf("node is %T, want List", nodes[0])
	}
	return l
}

func assertItems(t *testing.T, l List, want ...string) {
	t.Helper()

	if len(l.Items) != len(want) {
		t.Fatalf("list has %d items, want %d", len(l.Items), len(want))
	}
	for i, w := range want {
		if l.Items[i].Text != w {
			t.Errorf("item %d text = %q, want %q", i, l.Items[i].Text, w)
		}
	}
}
