package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage          = errors.New("invalid usage")
	ErrUnknownCommand = errors.New("unknown command")
	ErrUnknownKey     = errors.New("unknown citation key")
	ErrReadAbout      = errors.New("failed to read about file")
	ErrReadCSS        = errors.New("failed to read CSS file")
	ErrWriteOutput    = errors.New("failed to write output file")
	ErrConfigExists   = errors.New("config file already exists")
)

// commands maps command names to their handlers.
var commands = map[string]func(ctx context.Context, args []string, env *Environment) error{
	"build": runBuild,
	"cite":  runCite,
	"list":  runList,
	"init":  runInit,
}

// run dispatches args to a command and returns the process exit code.
// Without a known command name, args are handed to build, so
// "bibpage refs.bib" and "bibpage" both build the page.
func run(ctx context.Context, args []string, env *Environment) int {
	if len(args) > 0 {
		switch args[0] {
		case "help", "-h", "--help":
			return runHelp(args[1:], env)
		case "version", "--version":
			fmt.Fprintf(env.Stdout, "bibpage %s\n", Version)
			return ExitSuccess
		case "doctor":
			return runDoctorCmd(args[1:], env)
		case "completion":
			if err := runCompletion(args[1:], env); err != nil {
				fmt.Fprintln(env.Stderr, "error:", err)
				return exitCodeFor(err)
			}
			return ExitSuccess
		}
	}

	name, rest := "build", args
	if len(args) > 0 {
		if _, ok := commands[args[0]]; ok {
			name, rest = args[0], args[1:]
		} else if looksLikeCommand(args[0]) {
			err := fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
			fmt.Fprintln(env.Stderr, "error:", err)
			printUsage(env.Stderr)
			return exitCodeFor(err)
		}
	}

	err := commands[name](ctx, rest, env)
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, flag.ErrHelp):
		return ExitSuccess
	}

	fmt.Fprintln(env.Stderr, "error:", err)
	return exitCodeFor(err)
}

// looksLikeCommand reports whether arg is a bare word rather than a file
// or flag, e.g. "biuld" but not "refs.bib".
func looksLikeCommand(arg string) bool {
	return arg != "" && !strings.HasPrefix(arg, "-") && !strings.ContainsAny(arg, "./\\")
}
