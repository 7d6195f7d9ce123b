package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sitegen [command] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build       Build the site (default)")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'sitegen help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sitegen [build] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build a static site: copy static files to the output directory, then")
	fmt.Fprintln(w, "convert every index.md under the content directory to index.html.")
	fmt.Fprintln(w, "A template.html next to an index.md overrides the site template.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Directories:")
	fmt.Fprintln(w, "      --content <dir>       Markdown sources (default: content)")
	fmt.Fprintln(w, "      --static <dir>        Static files (default: static)")
	fmt.Fprintln(w, "  -o, --output <dir>        Generated site (default: public)")
	fmt.Fprintln(w, "      --template <file>     Site template (default: template.html)")
	fmt.Fprintln(w, "      --no-clean            Keep existing files in the output directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "  -b, --basepath <path>     URL prefix for root-relative links (default: /)")
	fmt.Fprintln(w, "  -p, --pretty              Indent generated HTML")
	fmt.Fprintln(w, "      --engine <name>       Markdown engine: native, goldmark")
	fmt.Fprintln(w, "                            goldmark reads CommonMark with tables, footnotes,")
	fmt.Fprintln(w, "                            nested lists and lenient emphasis; output differs")
	fmt.Fprintln(w, "      --style <name|path>   CSS injected into every page")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom styles/ and templates/ directory")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel page conversions (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Configuration:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show every file and timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  SITEGEN_CONFIG, SITEGEN_CONTENT_DIR, SITEGEN_STATIC_DIR, SITEGEN_OUTPUT_DIR,")
	fmt.Fprintln(w, "  SITEGEN_TEMPLATE, SITEGEN_BASEPATH, SITEGEN_ENGINE, SITEGEN_STYLE,")
	fmt.Fprintln(w, "  SITEGEN_WORKERS, SITEGEN_PRETTY")
	fmt.Fprintln(w, "  Precedence: flags > environment > config file > defaults")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case cmdBuild:
		printBuildUsage(env.Stdout)
	case cmdVersion:
		fmt.Fprintln(env.Stdout, "Usage: sitegen version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case cmdHelp:
		fmt.Fprintln(env.Stdout, "Usage: sitegen help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	case cmdCompletion:
		printCompletionUsage(env.Stdout)
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	return nil
}
