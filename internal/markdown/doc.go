// Package markdown compiles a small markdown dialect to HTML.
//
// Compilation runs in three steps:
//
//  1. Lex extracts inline spans (links, bold, italic, inline code, images)
//     from a line. At each position the alternatives are tried in that
//     fixed order and the first match wins; span contents are not rescanned.
//  2. Parse scans a document line by line and classifies runs of lines as
//     headings, lists (with nesting), fenced code blocks, quotes or
//     paragraphs. Text-bearing lines are lexed and masked: every span is
//     replaced by a "<$i>" placeholder pointing at its token.
//  3. Renderer.Render walks the nodes and unmasks each line, substituting
//     the token HTML for its placeholder.
//
// Parsing never fails. A line that matches no other block becomes a
// paragraph, and unterminated code blocks run to the end of the input.
//
// Tables, footnotes, nested emphasis and CommonMark edge cases are out of
// scope; use the goldmark engine in the pipeline package for those.
package markdown
