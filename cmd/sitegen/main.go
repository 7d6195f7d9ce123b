package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// ErrUnknownCommand is returned for a command name runMain does not know.
var ErrUnknownCommand = errors.New("unknown command")

// Command names.
const (
	cmdBuild      = "build"
	cmdVersion    = "version"
	cmdHelp       = "help"
	cmdCompletion = "completion"
)

var commands = map[string]bool{
	cmdBuild:      true,
	cmdVersion:    true,
	cmdHelp:       true,
	cmdCompletion: true,
}

func main() {
	// maxprocs.Set only fails if GOMAXPROCS is invalid, in which case the
	// runtime default applies.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := runMain(ctx, os.Args, DefaultEnv())
	stop()
	os.Exit(code)
}

// runMain dispatches to a command and returns the process exit code.
// Without a command name, build runs with all arguments as its flags.
func runMain(ctx context.Context, args []string, env *Environment) int {
	cmd, rest := splitCommand(args)

	var err error
	switch cmd {
	case cmdBuild:
		err = runBuild(ctx, rest, env)
	case cmdVersion:
		fmt.Fprintf(env.Stdout, "go-sitegen %s\n", Version)
	case cmdHelp:
		err = runHelp(rest, env)
	case cmdCompletion:
		err = runCompletion(rest, env)
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
		printUsage(env.Stderr)
	}

	if err != nil {
		fmt.Fprintln(env.Stderr, err)
	}
	return exitCodeFor(err)
}

// splitCommand separates the command name from its arguments.
// args[0] is the program name.
func splitCommand(args []string) (string, []string) {
	if len(args) < 2 {
		return cmdBuild, nil
	}
	first := args[1]
	if commands[first] {
		return first, args[2:]
	}
	if len(first) > 0 && first[0] == '-' {
		return cmdBuild, args[1:]
	}
	return first, args[2:]
}
