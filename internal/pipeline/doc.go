// Package pipeline implements the per-page stages that surround the
// markdown compiler.
//
// A page goes through these stages:
//   - Markdown to HTML fragment, via the native compiler or goldmark
//     (HTMLConverter), with optional chroma code highlighting
//   - Chapter link rewriting (.md hrefs point at the generated .html)
//   - Splicing the title, the shared sidebar and the content into the
//     page template's marker regions
//
// The sidebar is rendered once per build by SidebarBuilder and shared by
// every page. File I/O and concurrency belong to the root bookmark package.
package pipeline
