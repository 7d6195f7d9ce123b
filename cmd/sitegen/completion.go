package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-sitegen/internal/pipeline"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// programName is the command completed by the generated scripts.
const programName = "sitegen"

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob string   // for file flags
}

// commandDef describes a command for completion.
type commandDef struct {
	Name  string
	Desc  string
	Flags []flagDef
	Args  []string // fixed positional values (e.g. shell names)
}

// completionMeta holds completion-specific metadata for flags.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values   []string // enum values
	FileGlob string   // file glob pattern
	IsDir    bool     // directory completion
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	// Enum flags
	"engine": {Values: pipeline.Engines},

	// File flags with glob patterns
	"config":   {FileGlob: "*.yaml,*.yml"},
	"style":    {FileGlob: "*.css"},
	"template": {FileGlob: "*.html"},

	// Directory flags
	"content":    {IsDir: true},
	"static":     {IsDir: true},
	"output":     {IsDir: true},
	"asset-path": {IsDir: true},
}

// shells lists the completion targets, in help order.
var shells = []string{string(ShellBash), string(ShellZsh), string(ShellFish), string(ShellPowerShell)}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64":
			fd.Type = flagInt
		default:
			fd.Type = flagString
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			switch {
			case len(meta.Values) > 0:
				fd.Type = flagEnum
				fd.Values = meta.Values
			case meta.FileGlob != "":
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			case meta.IsDir:
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Flags are extracted from the build FlagSet.
func getCommands() []commandDef {
	flags := extractFlagsFromFlagSet(newBuildFlagSet(&buildFlags{}))

	return []commandDef{
		{Name: cmdBuild, Desc: "Build the site", Flags: flags},
		{Name: cmdVersion, Desc: "Show version information"},
		{Name: cmdHelp, Desc: "Show help for a command", Args: []string{cmdBuild, cmdVersion, cmdHelp, cmdCompletion}},
		{Name: cmdCompletion, Desc: "Generate shell completion script", Args: shells},
	}
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	var script string
	switch shell {
	case ShellBash:
		script = generateBash(getCommands())
	case ShellZsh:
		script = generateZsh(getCommands())
	case ShellFish:
		script = generateFish(getCommands())
	case ShellPowerShell:
		script = generatePowerShell(getCommands())
	default:
		return fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedShell, shell, strings.Join(shells, ", "))
	}
	_, err := io.WriteString(w, script)
	return err
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sitegen completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w, "  powershell  PowerShell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(sitegen completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (before compinit):")
	fmt.Fprintln(w, "    eval \"$(sitegen completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    sitegen completion fish > ~/.config/fish/completions/sitegen.fish")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  PowerShell:")
	fmt.Fprintln(w, "    # Add to $PROFILE:")
	fmt.Fprintln(w, "    sitegen completion powershell | Out-String | Invoke-Expression")
}

// ---------------------------------------------------------------------------
// Script generators
// ---------------------------------------------------------------------------

func commandNames(cmds []commandDef) string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return strings.Join(names, " ")
}

func flagWords(flags []flagDef) string {
	var words []string
	for _, f := range flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return strings.Join(words, " ")
}

// globExtensions turns "*.yaml,*.yml" into []string{"yaml", "yml"}.
func globExtensions(glob string) []string {
	parts := strings.Split(glob, ",")
	exts := make([]string, 0, len(parts))
	for _, p := range parts {
		exts = append(exts, strings.TrimPrefix(strings.TrimSpace(p), "*."))
	}
	return exts
}

func generateBash(cmds []commandDef) string {
	var b strings.Builder
	fn := "_" + programName + "_completions"

	fmt.Fprintf(&b, "# bash completion for %s\n", programName)
	fmt.Fprintf(&b, "%s() {\n", fn)
	b.WriteString("    local cur prev cmd\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    cmd=\"${COMP_WORDS[1]}\"\n\n")

	for _, c := range cmds {
		for _, f := range c.Flags {
			pattern := "--" + f.Long
			if f.Short != "" {
				pattern += "|-" + f.Short
			}
			switch f.Type {
			case flagEnum:
				fmt.Fprintf(&b, "    if [[ \"$prev\" == @(%s) ]]; then\n", pattern)
				fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n        return\n    fi\n", strings.Join(f.Values, " "))
			case flagFile:
				fmt.Fprintf(&b, "    if [[ \"$prev\" == @(%s) ]]; then\n", pattern)
				fmt.Fprintf(&b, "        COMPREPLY=($(compgen -f -X '!*.@(%s)' -- \"$cur\") $(compgen -d -- \"$cur\"))\n        return\n    fi\n",
					strings.Join(globExtensions(f.FileGlob), "|"))
			case flagDir:
				fmt.Fprintf(&b, "    if [[ \"$prev\" == @(%s) ]]; then\n", pattern)
				b.WriteString("        COMPREPLY=($(compgen -d -- \"$cur\"))\n        return\n    fi\n")
			}
		}
	}

	b.WriteString("\n    case \"$cmd\" in\n")
	for _, c := range cmds {
		switch {
		case len(c.Flags) > 0:
			fmt.Fprintf(&b, "        %s)\n            COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n            return\n            ;;\n",
				c.Name, flagWords(c.Flags))
		case len(c.Args) > 0:
			fmt.Fprintf(&b, "        %s)\n            COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n            return\n            ;;\n",
				c.Name, strings.Join(c.Args, " "))
		}
	}
	b.WriteString("    esac\n\n")

	// Flags are accepted without a command, since build is the default.
	var build []flagDef
	for _, c := range cmds {
		if c.Name == cmdBuild {
			build = c.Flags
		}
	}
	fmt.Fprintf(&b, "    COMPREPLY=($(compgen -W \"%s %s\" -- \"$cur\"))\n", commandNames(cmds), flagWords(build))
	b.WriteString("}\n")
	fmt.Fprintf(&b, "complete -F %s %s\n", fn, programName)
	return b.String()
}

func zshFlagSpec(f flagDef) string {
	desc := strings.ReplaceAll(f.Desc, "'", "'\\''")
	desc = strings.NewReplacer("[", "\\[", "]", "\\]", ":", "\\:").Replace(desc)

	var action string
	switch f.Type {
	case flagBool:
		action = ""
	case flagEnum:
		action = ":" + f.Long + ":(" + strings.Join(f.Values, " ") + ")"
	case flagFile:
		action = ":file:_files -g '*.(" + strings.Join(globExtensions(f.FileGlob), "|") + ")'"
	case flagDir:
		action = ":directory:_files -/"
	default:
		action = ":" + f.Long + ":"
	}

	if f.Short != "" {
		return fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'[%s]%s'", f.Short, f.Long, f.Short, f.Long, desc, action)
	}
	return fmt.Sprintf("'--%s[%s]%s'", f.Long, desc, action)
}

func generateZsh(cmds []commandDef) string {
	var b strings.Builder
	fn := "_" + programName

	fmt.Fprintf(&b, "#compdef %s\n\n", programName)
	fmt.Fprintf(&b, "%s() {\n", fn)
	b.WriteString("    local -a commands\n    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        '%s:%s'\n", c.Name, c.Desc)
	}
	b.WriteString("    )\n\n")

	b.WriteString("    if (( CURRENT == 2 )) && [[ \"${words[2]}\" != -* ]]; then\n")
	b.WriteString("        _describe 'command' commands\n        return\n    fi\n\n")

	b.WriteString("    case \"${words[2]}\" in\n")
	for _, c := range cmds {
		if len(c.Args) > 0 {
			fmt.Fprintf(&b, "        %s)\n            _values '%s' %s\n            ;;\n", c.Name, c.Name, strings.Join(c.Args, " "))
		}
	}
	b.WriteString("        *)\n            _arguments \\\n")
	for _, c := range cmds {
		if c.Name != cmdBuild {
			continue
		}
		for _, f := range c.Flags {
			fmt.Fprintf(&b, "                %s \\\n", zshFlagSpec(f))
		}
	}
	b.WriteString("                '*::'\n            ;;\n    esac\n}\n\n")
	fmt.Fprintf(&b, "compdef %s %s\n", fn, programName)
	return b.String()
}

func generateFish(cmds []commandDef) string {
	var b strings.Builder
	needs := "__fish_" + programName + "_needs_command"
	using := "__fish_" + programName + "_using_command"

	fmt.Fprintf(&b, "# fish completion for %s\n\n", programName)
	fmt.Fprintf(&b, "function %s\n", needs)
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -eq 1\nend\n\n")
	fmt.Fprintf(&b, "function %s\n", using)
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -gt 1; and test $argv[1] = $cmd[2]\nend\n\n")

	fmt.Fprintf(&b, "complete -c %s -f\n", programName)
	for _, c := range cmds {
		fmt.Fprintf(&b, "complete -c %s -n '%s' -a %s -d '%s'\n", programName, needs, c.Name, c.Desc)
	}
	b.WriteString("\n")

	for _, c := range cmds {
		for _, a := range c.Args {
			fmt.Fprintf(&b, "complete -c %s -n '%s %s' -a %s\n", programName, using, c.Name, a)
		}
		for _, f := range c.Flags {
			// Build is the default command: its flags also apply without one.
			cond := fmt.Sprintf("%s; or %s %s", needs, using, c.Name)
			line := fmt.Sprintf("complete -c %s -n '%s' -l %s", programName, cond, f.Long)
			if f.Short != "" {
				line += " -s " + f.Short
			}
			switch f.Type {
			case flagEnum:
				line += " -x -a '" + strings.Join(f.Values, " ") + "'"
			case flagFile:
				line += " -r -F"
			case flagDir:
				line += " -x -a '(__fish_complete_directories)'"
			case flagString, flagInt:
				line += " -x"
			}
			line += " -d '" + strings.ReplaceAll(f.Desc, "'", "\\'") + "'"
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}

func generatePowerShell(cmds []commandDef) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# PowerShell completion for %s\n", programName)
	fmt.Fprintf(&b, "Register-ArgumentCompleter -Native -CommandName %s -ScriptBlock {\n", programName)
	b.WriteString("    param($wordToComplete, $commandAst, $cursorPosition)\n\n")
	b.WriteString("    $commands = @{\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        '%s' = '%s'\n", c.Name, c.Desc)
	}
	b.WriteString("    }\n    $flags = @(\n")
	for _, c := range cmds {
		for _, f := range c.Flags {
			desc := strings.ReplaceAll(f.Desc, "'", "''")
			fmt.Fprintf(&b, "        @('--%s', '%s')\n", f.Long, desc)
			if f.Short != "" {
				fmt.Fprintf(&b, "        @('-%s', '%s')\n", f.Short, desc)
			}
		}
	}
	b.WriteString("    )\n    $arguments = @{\n")
	for _, c := range cmds {
		if len(c.Args) > 0 {
			fmt.Fprintf(&b, "        '%s' = @('%s')\n", c.Name, strings.Join(c.Args, "', '"))
		}
	}
	b.WriteString("    }\n\n")

	b.WriteString("    $elements = $commandAst.CommandElements\n")
	b.WriteString("    if ($elements.Count -gt 1 -and $arguments.ContainsKey($elements[1].Value)) {\n")
	b.WriteString("        $arguments[$elements[1].Value] | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)\n")
	b.WriteString("        }\n        return\n    }\n\n")

	b.WriteString("    if ($wordToComplete -like '-*') {\n")
	b.WriteString("        $flags | Where-Object { $_[0] -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("            [System.Management.Automation.CompletionResult]::new($_[0], $_[0], 'ParameterName', $_[1])\n")
	b.WriteString("        }\n        return\n    }\n\n")

	b.WriteString("    $commands.GetEnumerator() | Where-Object { $_.Key -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("        [System.Management.Automation.CompletionResult]::new($_.Key, $_.Key, 'ParameterValue', $_.Value)\n")
	b.WriteString("    }\n}\n")
	return b.String()
}
