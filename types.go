package sitegen

import (
	"errors"
	"fmt"
	"time"

	"github.com/alnah/go-sitegen/internal/pipeline"
)

// Engine names accepted by WithEngine and SiteConfig.Engine.
const (
	EngineNative   = pipeline.EngineNative
	EngineGoldmark = pipeline.EngineGoldmark
)

// Input is a single page to convert.
type Input struct {
	Markdown string // Page source; the first line must be "# Title"
	Template string // Page template (empty = converter template)
	CSS      string // Extra CSS appended after the converter style
	BasePath string // Overrides the converter base path when not empty
}

// Result holds a converted page.
type Result struct {
	Title   string // Text of the leading heading
	Content string // HTML fragment built from the Markdown
	HTML    []byte // Template with title and content substituted
}

// SiteConfig describes the directories and rendering settings of a site.
type SiteConfig struct {
	ContentDir string // Markdown tree searched for index.md files
	StaticDir  string // Copied verbatim to OutputDir (empty = none)
	OutputDir  string // Generated site
	Template   string // Site template file (missing = embedded default)
	BasePath   string // URL prefix for root-relative links (empty = "/")
	Pretty     bool   // Indent generated HTML (native engine)
	Engine     string // EngineNative or EngineGoldmark (empty = native)
	Workers    int    // Parallel page conversions (0 = auto)
	NoClean    bool   // Keep existing files in OutputDir
	Style      string // Style name, .css path or CSS content (empty = none)
	AssetPath  string // Directory overriding embedded styles and templates
}

// Validate checks that the required directories are set.
func (c SiteConfig) Validate() error {
	if c.ContentDir == "" {
		return fmt.Errorf("%w: content directory not set", ErrContentNotFound)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output directory not set", ErrOutputDir)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	return nil
}

// PageResult holds the outcome of a single page build.
type PageResult struct {
	Source   string // index.md path
	Output   string // index.html path
	Template string // Template file used (empty = embedded default)
	Title    string
	Bytes    int64
	Err      error
	Duration time.Duration
}

// BuildReport summarizes a site build.
type BuildReport struct {
	Pages       []PageResult
	StaticFiles int
	StaticBytes int64
	Duration    time.Duration
}

// Succeeded returns the number of pages written.
func (r *BuildReport) Succeeded() int {
	n := 0
	for _, p := range r.Pages {
		if p.Err == nil {
			n++
		}
	}
	return n
}

// Failed returns the number of pages that could not be built.
func (r *BuildReport) Failed() int {
	return len(r.Pages) - r.Succeeded()
}

// PageBytes returns the total size of the pages written.
func (r *BuildReport) PageBytes() int64 {
	var n int64
	for _, p := range r.Pages {
		if p.Err == nil {
			n += p.Bytes
		}
	}
	return n
}

// Err joins the errors of all failed pages, or returns nil.
func (r *BuildReport) Err() error {
	var errs []error
	for _, p := range r.Pages {
		if p.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", p.Source, p.Err))
		}
	}
	return errors.Join(errs...)
}
