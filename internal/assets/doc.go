// Package assets provides the page templates and stylesheets used when a
// site does not bring its own.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in assets)
//	    ├── FilesystemLoader  - loads from a directory on an afero.Fs
//	    └── AssetResolver     - combines both with custom-first fallback
//
// A custom directory overrides individual assets: a site may replace the
// default template and keep the built-in styles.
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css      # stylesheet injected into every page
//	└── templates/
//	    └── {name}.html     # page template with {{ Title }} and {{ Content }}
//
// # Security
//
// Asset names are validated to prevent path traversal, and FilesystemLoader
// verifies that every resolved path stays within its base directory.
package assets
