package sitegen

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/alnah/go-sitegen/internal/fileutil"
)

// File names the site walker looks for.
const (
	PageSource   = "index.md"
	PageOutput   = "index.html"
	PageTemplate = "template.html"
)

// Site builds a static site from a content tree.
// Create with NewSite, then call Build.
type Site struct {
	cfg  SiteConfig
	fs   afero.Fs
	log  zerolog.Logger
	conv *Converter
}

// pageJob is a discovered page waiting for conversion.
type pageJob struct {
	source   string
	output   string
	template string
}

// NewSite creates a Site for cfg.
// Returns error if cfg is incomplete or the converter cannot be created.
func NewSite(cfg SiteConfig, opts ...SiteOption) (*Site, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Site{
		cfg: cfg,
		fs:  afero.NewOsFs(),
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	convOpts := []Option{
		WithFs(s.fs),
		WithEngine(cfg.Engine),
		WithPretty(cfg.Pretty),
		WithBasePath(cfg.BasePath),
		WithStyle(cfg.Style),
		WithAssetPath(cfg.AssetPath),
	}
	if cfg.Template != "" && fileutil.FileExists(s.fs, cfg.Template) {
		tmpl, err := afero.ReadFile(s.fs, cfg.Template)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrTemplateRead, cfg.Template, err)
		}
		convOpts = append(convOpts, WithTemplate(string(tmpl)))
	}

	conv, err := NewConverter(convOpts...)
	if err != nil {
		return nil, err
	}
	s.conv = conv
	return s, nil
}

// Build prepares the output directory, copies static files and converts
// every index.md under the content directory.
//
// A page that fails does not stop the others: its error is recorded in the
// report. Build itself returns an error only when the site cannot be built
// at all (missing content, output or static failures, cancellation).
func (s *Site) Build(ctx context.Context) (*BuildReport, error) {
	start := time.Now()
	report := &BuildReport{}

	if !fileutil.DirExists(s.fs, s.cfg.ContentDir) {
		return nil, fmt.Errorf("%w: %s", ErrContentNotFound, s.cfg.ContentDir)
	}

	if err := s.prepareOutput(); err != nil {
		return nil, err
	}

	if s.cfg.StaticDir != "" {
		s.log.Info().Str("from", s.cfg.StaticDir).Str("to", s.cfg.OutputDir).Msg("copying static files")
		stats, err := fileutil.CopyDir(s.fs, s.cfg.StaticDir, s.cfg.OutputDir, func(path string, size int64) {
			s.log.Debug().Str("path", path).Str("size", humanize.Bytes(uint64(size))).Msg("copied")
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrStaticCopy, err)
		}
		report.StaticFiles = stats.Files
		report.StaticBytes = stats.Bytes
	}

	jobs, err := s.discoverPages()
	if err != nil {
		return nil, err
	}
	s.log.Debug().Int("pages", len(jobs)).Msg("discovered pages")

	report.Pages = s.buildPages(ctx, jobs)
	report.Duration = time.Since(start)

	s.log.Info().
		Int("pages", report.Succeeded()).
		Int("failed", report.Failed()).
		Int("static", report.StaticFiles).
		Str("written", humanize.Bytes(uint64(report.PageBytes()+report.StaticBytes))).
		Dur("duration", report.Duration).
		Msg("site built")

	if err := ctx.Err(); err != nil {
		return report, err
	}
	return report, nil
}

// prepareOutput empties the output directory unless NoClean is set.
func (s *Site) prepareOutput() error {
	if s.cfg.NoClean {
		if err := s.fs.MkdirAll(s.cfg.OutputDir, fileutil.DirPerm); err != nil {
			return fmt.Errorf("%w: %w", ErrOutputDir, err)
		}
		return nil
	}

	s.log.Debug().Str("dir", s.cfg.OutputDir).Msg("cleaning output directory")
	if err := fileutil.CleanDir(s.fs, s.cfg.OutputDir); err != nil {
		return fmt.Errorf("%w: %w", ErrOutputDir, err)
	}
	return nil
}

// discoverPages walks the content directory for index.md files and maps
// each to its output path and template.
func (s *Site) discoverPages() ([]pageJob, error) {
	var jobs []pageJob

	err := afero.Walk(s.fs, s.cfg.ContentDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || info.Name() != PageSource {
			return nil
		}

		dir := filepath.Dir(path)
		rel, err := filepath.Rel(s.cfg.ContentDir, dir)
		if err != nil {
			return err
		}

		job := pageJob{
			source: path,
			output: filepath.Join(s.cfg.OutputDir, rel, PageOutput),
		}
		if local := filepath.Join(dir, PageTemplate); fileutil.FileExists(s.fs, local) {
			job.template = local
		} else if fileutil.FileExists(s.fs, s.cfg.Template) {
			job.template = s.cfg.Template
		}
		jobs = append(jobs, job)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", s.cfg.ContentDir, err)
	}
	return jobs, nil
}

// buildPages converts jobs concurrently. Results keep the order of jobs.
func (s *Site) buildPages(ctx context.Context, jobs []pageJob) []PageResult {
	if len(jobs) == 0 {
		return nil
	}

	concurrency := ResolveWorkers(s.cfg.Workers)
	if concurrency > len(jobs) {
		concurrency = len(jobs)
	}

	results := make([]PageResult, len(jobs))
	var wg sync.WaitGroup
	queue := make(chan int, len(jobs))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range queue {
				if ctx.Err() != nil {
					results[idx] = PageResult{
						Source: jobs[idx].source,
						Output: jobs[idx].output,
						Err:    ctx.Err(),
					}
					continue
				}
				results[idx] = s.buildPage(ctx, jobs[idx])
			}
		}()
	}

	for i := range jobs {
		queue <- i
	}
	close(queue)

	wg.Wait()
	return results
}

// buildPage converts and writes a single page.
func (s *Site) buildPage(ctx context.Context, job pageJob) PageResult {
	start := time.Now()
	result := PageResult{
		Source:   job.source,
		Output:   job.output,
		Template: job.template,
	}
	finish := func(err error) PageResult {
		result.Err = err
		result.Duration = time.Since(start)
		if err != nil {
			s.log.Error().Err(err).Str("source", job.source).Msg("page failed")
		}
		return result
	}

	templateName := job.template
	if templateName == "" {
		templateName = "embedded default"
	}
	s.log.Info().
		Str("source", job.source).
		Str("output", job.output).
		Str("template", templateName).
		Msg("generating page")

	md, err := afero.ReadFile(s.fs, job.source)
	if err != nil {
		return finish(fmt.Errorf("%w: %w", ErrPageRead, err))
	}

	var tmpl string
	if job.template != "" && job.template != s.cfg.Template {
		raw, err := afero.ReadFile(s.fs, job.template)
		if err != nil {
			return finish(fmt.Errorf("%w: %s: %w", ErrTemplateRead, job.template, err))
		}
		tmpl = string(raw)
	}

	res, err := s.conv.Convert(ctx, Input{Markdown: string(md), Template: tmpl})
	if err != nil {
		if errors.Is(err, ErrMissingPlaceholder) && job.template != "" {
			err = fmt.Errorf("%s: %w", job.template, err)
		}
		return finish(err)
	}
	result.Title = res.Title

	if err := fileutil.WriteFile(s.fs, job.output, res.HTML); err != nil {
		return finish(fmt.Errorf("%w: %w", ErrPageWrite, err))
	}
	result.Bytes = int64(len(res.HTML))
	return finish(nil)
}
