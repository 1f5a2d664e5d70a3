package pipeline

// Notes:
// - Tests RewriteSitePaths through its public API only
// - Root-relative paths are the common case: the default preview directory
//   is /assets/img/publication_preview/
// - Traversal tests check the observable behavior (path left unchanged)

import (
	"runtime"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRewriteSitePaths
// ---------------------------------------------------------------------------

func TestRewriteSitePaths(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("expected URLs are written for POSIX paths")
	}

	siteRoot := "/srv/site"
	wantPrefix := "file:///srv/site/"

	tests := []struct {
		name         string
		html         string
		siteRoot     string
		wantContains []string
		wantExcludes []string
	}{
		{
			name:         "root-relative preview image",
			html:         `<img src="/assets/img/publication_preview/bit.png">`,
			siteRoot:     siteRoot,
			wantContains: []string{`src="` + wantPrefix + `assets/img/publication_preview/bit.png"`},
		},
		{
			name:         "relative image",
			html:         `<img src="img/me.jpg">`,
			siteRoot:     siteRoot,
			wantContains: []string{`src="` + wantPrefix + `img/me.jpg"`},
		},
		{
			name:         "relative PDF link",
			html:         `<a href="papers/bit.pdf?v=2">PDF</a>`,
			siteRoot:     siteRoot,
			wantContains: []string{`href="` + wantPrefix + `papers/bit.pdf"`},
		},
		{
			name:         "https URL unchanged",
			html:         `<a href="https://arxiv.org/abs/1912.11370">arXiv</a>`,
			siteRoot:     siteRoot,
			wantContains: []string{`href="https://arxiv.org/abs/1912.11370"`},
		},
		{
			name:         "mailto unchanged",
			html:         `<a href="mailto:a@example.org">mail</a>`,
			siteRoot:     siteRoot,
			wantContains: []string{`href="mailto:a@example.org"`},
		},
		{
			name:         "anchor unchanged",
			html:         `<a href="#bib">jump</a>`,
			siteRoot:     siteRoot,
			wantContains: []string{`href="#bib"`},
		},
		{
			name:         "protocol-relative unchanged",
			html:         `<img src="//cdn.example.org/x.png">`,
			siteRoot:     siteRoot,
			wantContains: []string{`src="//cdn.example.org/x.png"`},
		},
		{
			name:         "traversal left alone",
			html:         `<img src="../../etc/passwd">`,
			siteRoot:     siteRoot,
			wantContains: []string{`src="../../etc/passwd"`},
			wantExcludes: []string{"file://"},
		},
		{
			name:         "empty site root returns input",
			html:         `<img src="/assets/img/me.jpg">`,
			siteRoot:     "",
			wantContains: []string{`src="/assets/img/me.jpg"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RewriteSitePaths(tt.html, tt.siteRoot)
			if err != nil {
				t.Fatalf("RewriteSitePaths() unexpected error: %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("result should contain %q, got:\n%s", want, got)
				}
			}
			for _, exclude := range tt.wantExcludes {
				if strings.Contains(got, exclude) {
					t.Errorf("result should not contain %q, got:\n%s", exclude, got)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRewriteSitePaths_Document - full documents keep their structure
// ---------------------------------------------------------------------------

func TestRewriteSitePaths_Document(t *testing.T) {
	t.Parallel()

	doc := "<!DOCTYPE html><html><head><title>t</title></head><body><img src=\"a.png\"></body></html>"
	got, err := RewriteSitePaths(doc, t.TempDir())
	if err != nil {
		t.Fatalf("RewriteSitePaths() unexpected error: %v", err)
	}
	if !strings.HasPrefix(got, "<!DOCTYPE html>") {
		t.Errorf("doctype lost: %s", got)
	}
	if !strings.Contains(got, "<title>t</title>") {
		t.Errorf("head lost: %s", got)
	}
	if strings.Contains(got, `src="a.png"`) {
		t.Errorf("image not rewritten: %s", got)
	}
}
