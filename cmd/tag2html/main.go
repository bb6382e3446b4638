package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Command names.
const (
	cmdBuild   = "build"
	cmdVersion = "version"
	cmdHelp    = "help"
)

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches args to a command and returns the process exit code.
func runMain(args []string, env *Environment) int {
	cmd, cmdArgs := splitCommand(args[1:])

	var err error
	switch cmd {
	case cmdVersion:
		fmt.Fprintf(env.Stdout, "go-tag2html %s\n", Version)
	case cmdHelp:
		err = runHelp(cmdArgs, env)
	default:
		ctx, stop := buildContext(context.Background())
		defer stop()
		err = runBuild(ctx, cmdArgs, env)
	}

	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
	}
	return exitCodeFor(err)
}

// splitCommand separates the command name from its arguments.
// Without a known command name, args belong to build.
func splitCommand(args []string) (string, []string) {
	if len(args) > 0 && isCommand(args[0]) {
		return args[0], args[1:]
	}
	return cmdBuild, args
}

// isCommand reports whether name is a command name.
func isCommand(name string) bool {
	switch name {
	case cmdBuild, cmdVersion, cmdHelp:
		return true
	}
	return false
}

// verboseLogger returns a printf-style logger writing to env.Stderr when
// verbose is set, and a no-op otherwise.
func verboseLogger(env *Environment, verbose bool) func(format string, args ...any) {
	if !verbose {
		return func(string, ...any) {}
	}
	return func(format string, args ...any) {
		fmt.Fprintf(env.Stderr, strings.TrimSuffix(format, "\n")+"\n", args...)
	}
}
