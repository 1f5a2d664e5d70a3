package bibpage

import "github.com/alnah/go-bibpage/internal/pipeline"

// DefaultPreviewDir is the site path preview images are served from.
const DefaultPreviewDir = "/assets/img/publication_preview/"

// Option configures a Renderer.
type Option func(*Renderer)

// rendererConfig holds the settings options write to.
type rendererConfig struct {
	style       string // Style name or CSS file path
	templateSet string // Template set name
	codeStyle   string // Chroma style for code blocks in the about text
	previewDir  string
	assetPath   string
}

func defaultRendererConfig() rendererConfig {
	return rendererConfig{
		style:       DefaultStyle,
		templateSet: DefaultTemplateSet,
		codeStyle:   pipeline.DefaultHighlightStyle,
		previewDir:  DefaultPreviewDir,
	}
}

// WithStyle selects a CSS style by name, or by file path when the value
// contains a path separator.
func WithStyle(nameOrPath string) Option {
	return func(r *Renderer) {
		if nameOrPath != "" {
			r.cfg.style = nameOrPath
		}
	}
}

// WithTemplate selects the template set by name.
func WithTemplate(name string) Option {
	return func(r *Renderer) {
		if name != "" {
			r.cfg.templateSet = name
		}
	}
}

// WithCodeStyle selects the chroma style used for code blocks in the about
// text, e.g. "github" or "monokai".
func WithCodeStyle(name string) Option {
	return func(r *Renderer) {
		if name != "" {
			r.cfg.codeStyle = name
		}
	}
}

// WithPreviewDir sets the site path prefixed to preview file names.
func WithPreviewDir(dir string) Option {
	return func(r *Renderer) {
		if dir != "" {
			r.cfg.previewDir = dir
		}
	}
}

// WithAssetPath loads styles and templates from dir, falling back to the
// embedded assets. Ignored when WithAssetLoader is also given.
func WithAssetPath(dir string) Option {
	return func(r *Renderer) {
		r.cfg.assetPath = dir
	}
}

// WithAssetLoader sets a custom asset loader.
func WithAssetLoader(loader AssetLoader) Option {
	return func(r *Renderer) {
		r.assetLoader = loader
	}
}
