// Package bookmark compiles a directory of markdown chapters into a static
// HTML book: one page per chapter, a shared sidebar and one stylesheet.
//
// # Quick Start
//
// Describe the book and build it:
//
//	report, err := bookmark.Build(ctx, bookmark.Book{
//	    Name:    "Guide",
//	    RootDir: "src",
//	    DistDir: "dist",
//	    Pages: []bookmark.Page{
//	        {Title: "Introduction", Path: "README.md"},
//	        {Title: "Install", Path: "guide/install.md"},
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Build resets dist/, copies the assets directory to dist/assets, writes
// dist/style.css and then dist/README.html and dist/guide/install.html.
// Pages are converted concurrently; a failing page is reported in the
// Report and does not stop the others.
//
// # Conversion Pipeline
//
// Each page goes through these stages:
//
//  1. Markdown to HTML, by the native compiler (headings, paragraphs,
//     nested lists, fenced code, quotes, links, images, bold, italic and
//     inline code) or by Goldmark with WithEngine(EngineCommonMark)
//  2. Relative links to .md chapters rewritten to .html
//  3. Title, sidebar and content spliced into the page template
//
// # Converting One Page
//
//	conv, err := bookmark.NewConverter(bookmark.WithHighlight("github"))
//	sidebar, err := conv.Sidebar("Guide", pages)
//	result, err := conv.Convert(ctx, bookmark.Input{
//	    Markdown: "# Hello\n\nWorld",
//	    Title:    "Hello",
//	    BookName: "Guide",
//	    Path:     "hello.md",
//	    Sidebar:  sidebar,
//	})
//
// # Custom Assets
//
// Override built-in styles and templates with WithAssetPath or a custom
// AssetLoader. Asset directory structure:
//
//	assets/
//	├── styles/
//	│   └── custom.css
//	└── templates/
//	    └── custom/
//	        ├── page.html
//	        ├── chapter.html
//	        └── sidebar.html
//
// page.html must contain each of these regions exactly once:
//
//	<!-- bookmark:title --><!-- /bookmark:title -->
//	<!-- bookmark:sidebar --><!-- /bookmark:sidebar -->
//	<!-- bookmark:content --><!-- /bookmark:content -->
//
// An optional <!-- bookmark:base --> region in <head> receives a <base>
// element on pages nested in subdirectories.
package bookmark
