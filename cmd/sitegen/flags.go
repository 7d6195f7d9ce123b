package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrInvalidFlag wraps flag parsing failures.
var ErrInvalidFlag = errors.New("invalid flag")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// pathFlags holds the site directories.
type pathFlags struct {
	content  string
	static   string
	output   string
	template string
}

// renderFlags holds page rendering flags.
type renderFlags struct {
	basePath  string
	pretty    bool
	engine    string
	style     string
	assetPath string
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common  commonFlags
	paths   pathFlags
	render  renderFlags
	workers int
	noClean bool

	// changed reports whether a flag was set on the command line.
	changed func(name string) bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show every file and timing")
}

// addPathFlags adds directory flags to a FlagSet.
func addPathFlags(fs *flag.FlagSet, f *pathFlags) {
	fs.StringVar(&f.content, "content", "", "markdown source directory (default: content)")
	fs.StringVar(&f.static, "static", "", "static files directory (default: static)")
	fs.StringVarP(&f.output, "output", "o", "", "generated site directory (default: public)")
	fs.StringVar(&f.template, "template", "", "site template file (default: template.html)")
}

// addRenderFlags adds rendering flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.StringVarP(&f.basePath, "basepath", "b", "", "URL prefix for root-relative links (default: /)")
	fs.BoolVarP(&f.pretty, "pretty", "p", false, "indent generated HTML")
	fs.StringVar(&f.engine, "engine", "", "markdown engine: native, goldmark (CommonMark + GFM, wider dialect)")
	fs.StringVar(&f.style, "style", "", "CSS style name or file path injected into pages")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
}

// newBuildFlagSet registers every build flag on a new FlagSet bound to f.
// Shared by parseBuildFlags and completion generation.
func newBuildFlagSet(f *buildFlags) *flag.FlagSet {
	fs := flag.NewFlagSet(cmdBuild, flag.ContinueOnError)

	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel page conversions (0 = auto)")
	fs.BoolVar(&f.noClean, "no-clean", false, "keep existing files in the output directory")

	addCommonFlags(fs, &f.common)
	addPathFlags(fs, &f.paths)
	addRenderFlags(fs, &f.render)

	f.changed = fs.Changed
	return fs
}

// parseBuildFlags parses build command flags and returns positional args.
// Returns flag.ErrHelp unwrapped for -h/--help.
func parseBuildFlags(args []string, stderr io.Writer) (*buildFlags, []string, error) {
	f := &buildFlags{}
	fs := newBuildFlagSet(f)
	fs.SetOutput(io.Discard)
	fs.Usage = func() { printBuildUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil, err
		}
		printBuildUsage(stderr)
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidFlag, err)
	}

	return f, fs.Args(), nil
}
