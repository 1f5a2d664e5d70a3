// Package assets provides CSS styles and HTML page templates for the
// publications page.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in assets)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// EmbeddedLoader provides the built-in styles (default, minimal) and
// template sets (default, compact) compiled into the binary.
//
// FilesystemLoader lets users supply their own assets from a directory,
// with path traversal protection and symlink resolution.
//
// AssetResolver is the loader used by the renderer. It tries the custom
// FilesystemLoader first and falls back to EmbeddedLoader when the asset is
// not found, so a directory may override a single style and keep the rest.
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css           # page stylesheet
//	└── templates/
//	    └── {name}/
//	        ├── page.html        # document skeleton, invokes "entry"
//	        └── entry.html       # one publication block
//
// Templates use html/template syntax. The renderer parses page.html as the
// root template and entry.html as the named template "entry".
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
