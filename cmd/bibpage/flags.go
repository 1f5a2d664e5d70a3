package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	input   string
	quiet   bool
	verbose bool
}

// pageFlags holds flags that shape the rendered page.
type pageFlags struct {
	style     string
	template  string
	assetPath string
	css       string
	codeStyle string
	date      string
	highlight []string
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common  commonFlags
	output  string
	pdf     string
	paper   string
	timeout string
	page    pageFlags
}

// citeFlags holds flags for the cite command.
type citeFlags struct {
	common commonFlags
	copy   bool
}

// listFlags holds flags for the list command.
type listFlags struct {
	common   commonFlags
	selected bool
	json     bool
}

// initFlags holds flags for the init command.
type initFlags struct {
	force bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.input, "input", "i", "", "BibTeX file (default: bibtex.bib)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs and timings")
}

// addPageFlags adds page rendering flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVar(&f.style, "style", "", "CSS style name or file path")
	fs.StringVar(&f.template, "template", "", "template set name: default, compact")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.StringVar(&f.css, "css", "", "extra CSS file appended to the style")
	fs.StringVar(&f.codeStyle, "code-style", "", "chroma style for code in the about text")
	fs.StringVar(&f.date, "date", "", "footer date: \"auto\", \"auto:FORMAT\", or literal")
	fs.StringArrayVar(&f.highlight, "highlight", nil, "name to emphasize in author lists (repeatable)")
}

// addBuildFlags registers the build command flags.
// Shared by parseBuildFlags and shell completion.
func addBuildFlags(fs *flag.FlagSet, f *buildFlags) {
	fs.StringVarP(&f.output, "output", "o", "", "HTML output path (default: index.html)")
	fs.StringVar(&f.pdf, "pdf", "", "also print the page to this PDF file")
	fs.StringVar(&f.paper, "paper", "", "PDF paper size: a4, letter")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")
	addCommonFlags(fs, &f.common)
	addPageFlags(fs, &f.page)
}

// addCiteFlags registers the cite command flags.
func addCiteFlags(fs *flag.FlagSet, f *citeFlags) {
	fs.BoolVar(&f.copy, "copy", false, "copy the citation to the clipboard")
	addCommonFlags(fs, &f.common)
}

// addListFlags registers the list command flags.
func addListFlags(fs *flag.FlagSet, f *listFlags) {
	fs.BoolVarP(&f.selected, "selected", "s", false, "only list selected records")
	fs.BoolVar(&f.json, "json", false, "output JSON")
	addCommonFlags(fs, &f.common)
}

// addInitFlags registers the init command flags.
func addInitFlags(fs *flag.FlagSet, f *initFlags) {
	fs.BoolVarP(&f.force, "force", "f", false, "overwrite an existing file")
}

// addDoctorFlags registers the doctor command flags.
func addDoctorFlags(fs *flag.FlagSet, common *commonFlags, jsonOutput *bool) {
	fs.BoolVar(jsonOutput, "json", false, "output JSON")
	addCommonFlags(fs, common)
}

// newFlagSet creates a FlagSet that reports errors instead of exiting and
// prints usage to w.
func newFlagSet(name string, w io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }
	return fs
}

// parseFlagSet parses args, wrapping flag errors in ErrUsage.
// flag.ErrHelp is returned as is.
func parseFlagSet(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return nil
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string, w io.Writer) (*buildFlags, []string, error) {
	f := &buildFlags{}
	fs := newFlagSet("build", w, printBuildUsage)
	addBuildFlags(fs, f)

	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseCiteFlags parses cite command flags and returns positional args.
func parseCiteFlags(args []string, w io.Writer) (*citeFlags, []string, error) {
	f := &citeFlags{}
	fs := newFlagSet("cite", w, printCiteUsage)
	addCiteFlags(fs, f)

	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseListFlags parses list command flags and returns positional args.
func parseListFlags(args []string, w io.Writer) (*listFlags, []string, error) {
	f := &listFlags{}
	fs := newFlagSet("list", w, printListUsage)
	addListFlags(fs, f)

	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseInitFlags parses init command flags and returns positional args.
func parseInitFlags(args []string, w io.Writer) (*initFlags, []string, error) {
	f := &initFlags{}
	fs := newFlagSet("init", w, printInitUsage)
	addInitFlags(fs, f)

	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
