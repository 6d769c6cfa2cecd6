// Package assets provides CSS styles and HTML page templates for books.
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
// AssetResolver is the loader used by the builder. It tries the custom
// FilesystemLoader first and falls back to EmbeddedLoader when the asset is
// not found, so a book can override the page template and keep the default
// style, or the other way round.
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css           # written to <dist>/style.css
//	└── templates/
//	    └── {name}/
//	        ├── page.html        # page skeleton with marker regions
//	        ├── chapter.html     # one sidebar entry
//	        └── sidebar.html     # sidebar wrapper
//
// page.html delimits its title, sidebar and content regions with
// <!-- bookmark:NAME --> and <!-- /bookmark:NAME --> comments.
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
