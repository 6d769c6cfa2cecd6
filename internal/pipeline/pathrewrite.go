package pipeline

import (
	"net/url"
	"path"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alnah/go-bookmark/internal/fileutil"
)

// RewriteChapterLinks points relative links to markdown chapters at the
// generated HTML pages: <a href="ch2.md#setup"> becomes
// <a href="ch2.html#setup">. Fragments without any ".md" href are returned
// unchanged.
//
// Does NOT rewrite:
//   - absolute URLs and protocol-relative links
//   - anchors within the page
//   - img[src] and other attributes (assets keep their names)
func RewriteChapterLinks(htmlContent string) (string, error) {
	if !strings.Contains(htmlContent, ".md") {
		return htmlContent, nil
	}

	doc, isFragment, err := parseHTML(htmlContent)
	if err != nil {
		return "", err
	}

	if !rewriteAttrs(doc, anchorHref, chapterHref) {
		return htmlContent, nil
	}

	return renderHTML(doc, isFragment)
}

// RebaseLinks prefixes the relative links of a page nested below the book
// root with the page's directory, so they still resolve once the page carries
// <base href> pointing at the root. pageHref is the page's slash-separated
// path from the root, e.g. "guide/install.html". In-page anchors become
// "guide/install.html#anchor". Pages at the root are returned unchanged.
//
// Rewrites a[href] and img[src]; absolute and root-relative URLs are kept.
func RebaseLinks(htmlContent, pageHref string) (string, error) {
	dir := path.Dir(pageHref)
	if dir == "." || dir == "/" {
		return htmlContent, nil
	}

	doc, isFragment, err := parseHTML(htmlContent)
	if err != nil {
		return "", err
	}

	rebase := func(ref string) (string, bool) {
		u, ok := relativeURL(ref)
		if !ok {
			if ref == "" || !strings.HasPrefix(ref, "#") {
				return "", false
			}
			return pageHref + ref, true
		}
		if u.Path == "" {
			u.Path = pageHref
		} else {
			u.Path = path.Join(dir, u.Path)
		}
		return u.String(), true
	}

	if !rewriteAttrs(doc, linkAttr, rebase) {
		return htmlContent, nil
	}

	return renderHTML(doc, isFragment)
}

// parseHTML parses HTML content, handling both full documents and fragments.
// Returns the parsed node, whether it was a fragment, and any error.
func parseHTML(content string) (*html.Node, bool, error) {
	trimmed := strings.ToLower(strings.TrimSpace(content))

	if strings.HasPrefix(trimmed, "<!doctype") || strings.HasPrefix(trimmed, "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		return doc, false, err
	}

	// Fragment: parse with body context to avoid wrapping
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, true, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}

	return container, true, nil
}

// renderHTML renders the document back to string.
// For fragments, only renders the children (avoids adding <html><body> wrapper).
func renderHTML(doc *html.Node, isFragment bool) (string, error) {
	var buf strings.Builder

	if isFragment {
		for c := doc.FirstChild; c != nil; c = c.NextSibling {
			if err := html.Render(&buf, c); err != nil {
				return "", err
			}
		}
		return buf.String(), nil
	}

	if err := html.Render(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// anchorHref selects a[href].
func anchorHref(n *html.Node) string {
	if n.DataAtom == atom.A {
		return "href"
	}
	return ""
}

// linkAttr selects a[href] and img[src].
func linkAttr(n *html.Node) string {
	switch n.DataAtom {
	case atom.A:
		return "href"
	case atom.Img:
		return "src"
	}
	return ""
}

// rewriteAttrs applies rewrite to the attribute keyFor selects on every
// element under n and reports whether any value changed.
func rewriteAttrs(n *html.Node, keyFor func(*html.Node) string, rewrite func(string) (string, bool)) bool {
	changed := false
	if n.Type == html.ElementNode {
		if key := keyFor(n); key != "" {
			for i, attr := range n.Attr {
				if attr.Key != key {
					continue
				}
				if rewritten, ok := rewrite(attr.Val); ok {
					n.Attr[i].Val = rewritten
					changed = true
				}
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if rewriteAttrs(c, keyFor, rewrite) {
			changed = true
		}
	}
	return changed
}

// chapterHref returns href with its ".md" path rewritten to ".html".
// Only relative links without a scheme or host qualify.
func chapterHref(href string) (string, bool) {
	u, ok := relativeURL(href)
	if !ok {
		return "", false
	}

	htmlPath, err := fileutil.MarkdownToHTMLPath(u.Path)
	if err != nil {
		return "", false
	}
	u.Path = htmlPath
	return u.String(), true
}

// relativeURL parses ref if it is a document-relative reference:
// no scheme, no host, not rooted, not a bare fragment.
func relativeURL(ref string) (*url.URL, bool) {
	if ref == "" || strings.HasPrefix(ref, "#") || strings.HasPrefix(ref, "//") {
		return nil, false
	}

	u, err := url.Parse(ref)
	if err != nil || u.Scheme != "" || u.Host != "" || strings.HasPrefix(u.Path, "/") {
		return nil, false
	}
	return u, true
}
