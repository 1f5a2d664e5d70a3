package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestNewAssetResolver(t *testing.T) {
	t.Parallel()

	t.Run("empty path uses embedded only", func(t *testing.T) {
		t.Parallel()

		resolver, err := NewAssetResolver("")
		if err != nil {
			t.Fatalf("NewAssetResolver(\"\") error = %v", err)
		}
		if resolver.HasCustomLoader() {
			t.Error("expected no custom loader for empty path")
		}
	})

	t.Run("valid custom path", func(t *testing.T) {
		t.Parallel()

		resolver, err := NewAssetResolver(t.TempDir())
		if err != nil {
			t.Fatalf("NewAssetResolver() error = %v", err)
		}
		if !resolver.HasCustomLoader() {
			t.Error("expected custom loader for valid path")
		}
	})

	t.Run("invalid custom path", func(t *testing.T) {
		t.Parallel()

		_, err := NewAssetResolver("/nonexistent/path/abc123xyz")
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewAssetResolver() error = %v, want ErrInvalidBasePath", err)
		}
	})
}

func TestAssetResolver_CustomFirst(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeAsset(t, dir, "styles/default.css", "/* overridden */")
	writeAsset(t, dir, "templates/lab/page.html", "<html><head></head><body>lab</body></html>")
	writeAsset(t, dir, "templates/lab/entry.html", "<p>{{.Title}}</p>")
	writeAsset(t, dir, "templates/broken/page.html", "<html></html>")

	resolver, err := NewAssetResolver(dir)
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}

	t.Run("custom style overrides embedded", func(t *testing.T) {
		t.Parallel()

		got, err := resolver.LoadStyle("default")
		if err != nil {
			t.Fatalf("LoadStyle() error = %v", err)
		}
		if got != "/* overridden */" {
			t.Errorf("LoadStyle(default) = %q, want custom content", got)
		}
	})

	t.Run("falls back to embedded style", func(t *testing.T) {
		t.Parallel()

		got, err := resolver.LoadStyle("minimal")
		if err != nil {
			t.Fatalf("LoadStyle() error = %v", err)
		}
		if !strings.Contains(got, "serif") {
			t.Error("expected embedded minimal style")
		}
	})

	t.Run("custom template set", func(t *testing.T) {
		t.Parallel()

		ts, err := resolver.LoadTemplateSet("lab")
		if err != nil {
			t.Fatalf("LoadTemplateSet() error = %v", err)
		}
		if !strings.Contains(ts.Page, "lab") {
			t.Errorf("Page = %q", ts.Page)
		}
	})

	t.Run("falls back to embedded template set", func(t *testing.T) {
		t.Parallel()

		ts, err := resolver.LoadTemplateSet("default")
		if err != nil {
			t.Fatalf("LoadTemplateSet() error = %v", err)
		}
		if ts.Entry == "" {
			t.Error("expected embedded default entry template")
		}
	})

	t.Run("incomplete custom set does not fall back", func(t *testing.T) {
		t.Parallel()

		_, err := resolver.LoadTemplateSet("broken")
		if !errors.Is(err, ErrIncompleteTemplateSet) {
			t.Errorf("LoadTemplateSet(broken) error = %v, want ErrIncompleteTemplateSet", err)
		}
	})

	t.Run("missing everywhere", func(t *testing.T) {
		t.Parallel()

		_, err := resolver.LoadStyle("nowhere")
		if !errors.Is(err, ErrStyleNotFound) {
			t.Errorf("LoadStyle(nowhere) error = %v, want ErrStyleNotFound", err)
		}
	})
}
