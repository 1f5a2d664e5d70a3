package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-bibpage/internal/config"
	"github.com/alnah/go-bibpage/internal/fileutil"
)

// defaultConfigFile is the file init writes without an argument.
const defaultConfigFile = "bibpage.yaml"

// starterConfig returns the configuration written by init: the defaults
// plus placeholder profile values to edit.
func starterConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Profile = config.ProfileConfig{
		Name:      "Your Name",
		Title:     "Your Position",
		Image:     "/assets/img/prof_pic.jpg",
		About:     "A short introduction in **Markdown**.",
		Highlight: []string{"Your Name"},
	}
	return cfg
}

// runInit writes a starter config file. An existing file is kept unless
// --force is given.
func runInit(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseInitFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: init takes at most one file name", ErrUsage)
	}

	path := defaultConfigFile
	if len(positional) == 1 {
		path = positional[0]
	}

	if fileutil.FileExists(path) && !flags.force {
		return fmt.Errorf("%w: %s (use --force to overwrite)", ErrConfigExists, path)
	}

	data, err := config.Marshal(starterConfig())
	if err != nil {
		return err
	}
	if err := writeOutput(path, data); err != nil {
		return err
	}

	fmt.Fprintf(env.Stdout, "Created %s\n", path)
	fmt.Fprintf(env.Stdout, "Edit the profile section, then run: bibpage build -c %s\n", configArg(path))
	return nil
}

// configArg returns the --config value that finds path: a bare name for
// a YAML file in the current directory, the path itself otherwise.
func configArg(path string) string {
	if fileutil.IsFilePath(path) {
		return path
	}
	for _, ext := range []string{".yaml", ".yml"} {
		if name, ok := strings.CutSuffix(path, ext); ok {
			return name
		}
	}
	return "./" + path
}
