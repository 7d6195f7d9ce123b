package main

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"

	"github.com/alnah/go-sitegen"
	"github.com/alnah/go-sitegen/internal/assets"
	"github.com/alnah/go-sitegen/internal/config"
	"github.com/alnah/go-sitegen/internal/hints"
	"github.com/alnah/go-sitegen/internal/pipeline"
)

// runBuild loads the configuration, builds the site and prints a summary.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseBuildFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if len(positional) > 0 {
		printBuildUsage(env.Stderr)
		return fmt.Errorf("%w: unexpected argument %q", ErrInvalidFlag, positional[0])
	}

	log := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)
	warnUnknownEnvVars(log, env.Environ())

	envCfg := loadEnvConfig(env.Getenv)
	cfg, err := loadConfig(env.Fs, flags.common.config, envCfg.ConfigPath)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return withHint(fmt.Errorf("invalid configuration: %w", err))
	}

	log.Debug().
		Int("workers", sitegen.ResolveWorkers(cfg.Workers)).
		Int("gomaxprocs", runtime.GOMAXPROCS(0)).
		Str("engine", cfg.Engine).
		Msg("resolved settings")

	site, err := sitegen.NewSite(toSiteConfig(cfg),
		sitegen.WithFilesystem(env.Fs),
		sitegen.WithLogger(log),
	)
	if err != nil {
		return withHint(err)
	}

	start := env.Now()
	report, err := site.Build(ctx)
	if err != nil {
		return withHint(err)
	}

	printReport(env, report, flags.common.quiet, env.Now().Sub(start))
	if n := report.Failed(); n > 0 {
		return fmt.Errorf("%d of %d pages failed: %w", n, len(report.Pages), report.Err())
	}
	return nil
}

// loadConfig loads the config named by the flag, else by SITEGEN_CONFIG,
// else returns the defaults.
func loadConfig(fsys afero.Fs, flagName, envName string) (*config.Config, error) {
	name := flagName
	if name == "" {
		name = envName
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfigFs(fsys, name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, withHint(fmt.Errorf("loading config: %w", err))
	}
	return cfg, nil
}

// mergeFlags applies explicitly set CLI flags to config (CLI wins).
func mergeFlags(f *buildFlags, cfg *config.Config) {
	fields := []struct {
		name  string
		value string
		field *string
	}{
		{"content", f.paths.content, &cfg.Content},
		{"static", f.paths.static, &cfg.Static},
		{"output", f.paths.output, &cfg.Output},
		{"template", f.paths.template, &cfg.Template},
		{"basepath", f.render.basePath, &cfg.BasePath},
		{"engine", f.render.engine, &cfg.Engine},
		{"style", f.render.style, &cfg.Style},
		{"asset-path", f.render.assetPath, &cfg.Assets},
	}
	for _, s := range fields {
		if f.changed(s.name) {
			*s.field = s.value
		}
	}

	if f.changed("pretty") {
		cfg.Pretty = f.render.pretty
	}
	if f.changed("workers") {
		cfg.Workers = f.workers
	}
	if f.changed("no-clean") {
		cfg.NoClean = f.noClean
	}
}

// toSiteConfig converts the file configuration to the library configuration.
func toSiteConfig(cfg *config.Config) sitegen.SiteConfig {
	return sitegen.SiteConfig{
		ContentDir: cfg.Content,
		StaticDir:  cfg.Static,
		OutputDir:  cfg.Output,
		Template:   cfg.Template,
		BasePath:   cfg.BasePath,
		Pretty:     cfg.Pretty,
		Engine:     cfg.Engine,
		Workers:    cfg.Workers,
		NoClean:    cfg.NoClean,
		Style:      cfg.Style,
		AssetPath:  cfg.Assets,
	}
}

// printReport prints failed pages to stderr and, unless quiet, a summary to stdout.
func printReport(env *Environment, report *sitegen.BuildReport, quiet bool, elapsed time.Duration) {
	for _, p := range report.Pages {
		if p.Err != nil {
			fmt.Fprintf(env.Stderr, "FAIL %s: %v%s\n", p.Source, p.Err, hintFor(p.Err))
		}
	}

	if quiet {
		return
	}
	fmt.Fprintf(env.Stdout, "Built %d %s (%s), copied %d static %s in %s\n",
		report.Succeeded(), plural(report.Succeeded(), "page", "pages"),
		humanize.Bytes(uint64(report.PageBytes())),
		report.StaticFiles, plural(report.StaticFiles, "file", "files"),
		elapsed.Round(time.Millisecond),
	)
}

// withHint appends an actionable hint to err when one applies.
func withHint(err error) error {
	if hint := hintFor(err); hint != "" {
		return fmt.Errorf("%w%s", err, hint)
	}
	return err
}

// hintFor returns the hint matching err, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, sitegen.ErrUnmatchedDelimiter):
		return hints.ForUnmatchedDelimiter()
	case errors.Is(err, sitegen.ErrMissingTitle):
		return hints.ForMissingTitle()
	case errors.Is(err, sitegen.ErrEmptyMarkdown), errors.Is(err, sitegen.ErrEmptyDocument):
		return hints.ForEmptyPage()
	case errors.Is(err, sitegen.ErrMissingPlaceholder):
		return hints.ForMissingPlaceholder()
	case errors.Is(err, sitegen.ErrContentNotFound):
		return hints.ForContentDirectory()
	case errors.Is(err, sitegen.ErrOutputDir):
		return hints.ForOutputDirectory()
	case errors.Is(err, sitegen.ErrStyleNotFound):
		return hints.ForStyleNotFound(assets.StyleNames())
	case errors.Is(err, sitegen.ErrUnknownEngine):
		return hints.ForUnknownEngine(pipeline.Engines)
	default:
		return ""
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
