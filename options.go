package sitegen

import (
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	engine        string
	pretty        bool
	baseDepth     int
	basePath      string
	styleInput    string
	resolvedStyle string
	template      string
	assetPath     string
}

// WithEngine selects the Markdown engine by name (EngineNative or EngineGoldmark).
// NewConverter returns ErrUnknownEngine for other names.
func WithEngine(name string) Option {
	return func(c *Converter) {
		c.cfg.engine = name
	}
}

// WithPretty indents the generated HTML. Only the native engine honors it.
func WithPretty(pretty bool) Option {
	return func(c *Converter) {
		c.cfg.pretty = pretty
	}
}

// WithBaseDepth shifts the indentation of pretty output, for content placed
// inside an already indented template.
// Panics if depth is negative.
func WithBaseDepth(depth int) Option {
	if depth < 0 {
		panic("sitegen: WithBaseDepth depth must not be negative")
	}
	return func(c *Converter) {
		c.cfg.baseDepth = depth
	}
}

// WithBasePath prefixes root-relative href and src values, for sites served
// below the domain root (e.g. "/my-repo/").
func WithBasePath(basePath string) Option {
	return func(c *Converter) {
		c.cfg.basePath = basePath
	}
}

// WithStyle sets the stylesheet injected into every page.
// Accepts a style name ("default", "dark"), a file path ("./site.css")
// or CSS content ("body { ... }").
func WithStyle(style string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = style
	}
}

// WithTemplate sets the template content used when Input.Template is empty.
// Without it, the embedded default template is used.
func WithTemplate(tmpl string) Option {
	return func(c *Converter) {
		c.cfg.template = tmpl
	}
}

// WithAssetPath sets a directory whose styles/ and templates/ override the
// embedded assets.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithFs sets the filesystem used to read style files and custom assets.
// Defaults to the OS filesystem.
func WithFs(fsys afero.Fs) Option {
	return func(c *Converter) {
		c.fs = fsys
	}
}

// SiteOption configures a Site.
type SiteOption func(*Site)

// WithLogger sets the logger for build progress. Defaults to zerolog.Nop().
func WithLogger(logger zerolog.Logger) SiteOption {
	return func(s *Site) {
		s.log = logger
	}
}

// WithFilesystem sets the filesystem the site is read from and written to.
// Defaults to the OS filesystem.
func WithFilesystem(fsys afero.Fs) SiteOption {
	return func(s *Site) {
		s.fs = fsys
	}
}
