package pipeline

import (
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RewriteSitePaths resolves the page's local image and link paths against
// siteRoot and turns them into file:// URLs, so a page loaded from a
// temporary file still finds its portrait and preview images.
// If siteRoot is empty, returns the HTML unchanged.
//
// Paths are resolved the way a web server rooted at siteRoot would serve
// them: "/assets/img/x.png" and "assets/img/x.png" both map to
// siteRoot/assets/img/x.png. Only img[src] and a[href] are rewritten; URLs,
// anchors and paths escaping siteRoot are left alone.
func RewriteSitePaths(htmlContent, siteRoot string) (string, error) {
	if siteRoot == "" {
		return htmlContent, nil
	}

	absRoot, err := filepath.Abs(siteRoot)
	if err != nil {
		return "", err
	}

	doc, isFragment, err := parseHTML(htmlContent)
	if err != nil {
		return "", err
	}

	rewriteNode(doc, absRoot)

	return renderHTML(doc, isFragment)
}

// parseHTML parses a full document or, failing a doctype/<html> prefix, a
// body fragment.
func parseHTML(content string) (*html.Node, bool, error) {
	trimmed := strings.TrimSpace(content)

	if strings.HasPrefix(strings.ToLower(trimmed), "<!doctype") ||
		strings.HasPrefix(strings.ToLower(trimmed), "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		return doc, false, err
	}

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

// renderHTML renders the tree back; fragments render their children only.
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

func rewriteNode(n *html.Node, siteRoot string) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "img":
			rewriteAttr(n, "src", siteRoot)
		case "a":
			rewriteAttr(n, "href", siteRoot)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteNode(c, siteRoot)
	}
}

func rewriteAttr(n *html.Node, attrName, siteRoot string) {
	for i, attr := range n.Attr {
		if attr.Key != attrName || !isSitePath(attr.Val) {
			continue
		}

		// Drop any query or fragment; the file on disk has neither.
		p := attr.Val
		if j := strings.IndexAny(p, "?#"); j >= 0 {
			p = p[:j]
		}
		absPath := filepath.Join(siteRoot, filepath.FromSlash(strings.TrimPrefix(p, "/")))

		if !isPathUnderDir(absPath, siteRoot) {
			continue
		}

		n.Attr[i].Val = pathToFileURL(absPath)
	}
}

// isSitePath reports whether path names a file served by the site itself.
func isSitePath(path string) bool {
	if path == "" || strings.HasPrefix(path, "#") || strings.HasPrefix(path, "//") {
		return false
	}
	if u, err := url.Parse(path); err != nil || u.Scheme != "" {
		return false
	}
	return true
}

// isPathUnderDir reports whether absPath is dir or lies below it.
func isPathUnderDir(absPath, dir string) bool {
	cleanPath := filepath.Clean(absPath)
	cleanDir := filepath.Clean(dir)

	if !strings.HasSuffix(cleanDir, string(filepath.Separator)) {
		cleanDir += string(filepath.Separator)
	}

	return strings.HasPrefix(cleanPath+string(filepath.Separator), cleanDir)
}

// pathToFileURL converts an absolute path to a file:// URL.
func pathToFileURL(absPath string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(absPath),
	}
	return u.String()
}
