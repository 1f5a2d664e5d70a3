package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/alnah/go-bibpage"
	"github.com/alnah/go-bibpage/internal/assets"
	"github.com/alnah/go-bibpage/internal/config"
	"github.com/alnah/go-bibpage/internal/fileutil"
	"github.com/alnah/go-bibpage/internal/hints"
	"github.com/alnah/go-bibpage/internal/printer"
)

// runBuild renders the publications page and, when a PDF path is set,
// prints it to PDF. Nothing is written if loading or rendering fails.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseBuildFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: expected at most one BibTeX file, got %d", ErrUsage, len(positional))
	}

	logger := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)
	start := env.Now()

	cfg, err := loadSettings(flags.common, env, logger)
	if err != nil {
		return err
	}
	if len(positional) == 1 {
		cfg.Input.Path = positional[0]
	}
	mergeBuildFlags(flags, cfg)
	cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}

	about := cfg.Profile.About
	if cfg.Profile.AboutFile != "" {
		if about, err = readOptionalFile(cfg.Profile.AboutFile, ErrReadAbout); err != nil {
			return err
		}
	}
	css, err := readOptionalFile(cfg.Page.CSS, ErrReadCSS)
	if err != nil {
		return err
	}

	records, err := loadRecords(cfg)
	if err != nil {
		return err
	}
	logger.Debug("loaded bibliography", "path", cfg.Input.Path, "records", len(records), "elapsed", since(env, start))

	renderer, err := bibpage.NewRenderer(
		bibpage.WithAssetPath(cfg.Assets.BasePath),
		bibpage.WithStyle(cfg.Page.Style),
		bibpage.WithTemplate(cfg.Page.Template),
		bibpage.WithCodeStyle(cfg.Page.CodeStyle),
		bibpage.WithPreviewDir(cfg.Page.PreviewDir),
	)
	if err != nil {
		return assetError(err)
	}

	page, err := renderer.Render(ctx, bibpage.Input{
		Records: records,
		Profile: bibpage.Profile{
			Name:     cfg.Profile.Name,
			Headline: cfg.Profile.Title,
			Image:    cfg.Profile.Image,
		},
		About: about,
		Title: cfg.Page.Title,
		CSS:   css,
		Lang:  cfg.Page.Lang,
		Date:  cfg.Page.Date,
		Now:   env.Now(),
	})
	if err != nil {
		return err
	}

	if err := writeOutput(cfg.Output.Path, page.HTML); err != nil {
		return err
	}
	logger.Debug("wrote page", "path", cfg.Output.Path, "size", humanize.Bytes(uint64(len(page.HTML))), "elapsed", since(env, start))

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Created %s (%s, %d selected)\n",
			cfg.Output.Path, pluralize(len(page.Records), "publication"), len(page.Selected))
	}

	if cfg.Output.PDF == "" {
		return nil
	}
	return buildPDF(ctx, cfg, page, env, logger, flags.common.quiet)
}

// buildPDF prints the rendered page. Site paths resolve against the
// directory of the HTML output.
func buildPDF(ctx context.Context, cfg *config.Config, page *bibpage.Page, env *Environment, logger *log.Logger, quiet bool) error {
	paper, err := printer.ParsePaper(cfg.PDF.Paper)
	if err != nil {
		return err
	}

	siteRoot, err := filepath.Abs(filepath.Dir(cfg.Output.Path))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	start := env.Now()
	p := env.NewPrinter(printer.Options{
		Paper:    paper,
		Timeout:  cfg.PDF.TimeoutDuration(),
		SiteRoot: siteRoot,
	})
	defer func() {
		if err := p.Close(); err != nil {
			logger.Warn("closing browser", "err", err)
		}
	}()

	pdf, err := p.Print(ctx, string(page.HTML))
	if err != nil {
		return printError(err)
	}

	if err := writeOutput(cfg.Output.PDF, pdf); err != nil {
		return err
	}
	logger.Debug("printed PDF", "path", cfg.Output.PDF, "paper", paper.Name, "elapsed", since(env, start))

	if !quiet {
		fmt.Fprintf(env.Stdout, "Created %s (%s)\n", cfg.Output.PDF, humanize.Bytes(uint64(len(pdf))))
	}
	return nil
}

// mergeBuildFlags merges CLI flags into config. CLI values override config values.
func mergeBuildFlags(f *buildFlags, cfg *config.Config) {
	if f.output != "" {
		cfg.Output.Path = f.output
	}
	if f.pdf != "" {
		cfg.Output.PDF = f.pdf
	}
	if f.paper != "" {
		cfg.PDF.Paper = f.paper
	}
	if f.timeout != "" {
		cfg.PDF.Timeout = f.timeout
	}
	if f.page.style != "" {
		cfg.Page.Style = f.page.style
	}
	if f.page.template != "" {
		cfg.Page.Template = f.page.template
	}
	if f.page.assetPath != "" {
		cfg.Assets.BasePath = f.page.assetPath
	}
	if f.page.css != "" {
		cfg.Page.CSS = f.page.css
	}
	if f.page.codeStyle != "" {
		cfg.Page.CodeStyle = f.page.codeStyle
	}
	if f.page.date != "" {
		cfg.Page.Date = f.page.date
	}
	if len(f.page.highlight) > 0 {
		cfg.Profile.Highlight = f.page.highlight
	}
}

// writeOutput overwrites path, creating parent directories.
func writeOutput(path string, data []byte) error {
	if err := fileutil.WriteFile(path, data); err != nil {
		return fmt.Errorf("%w: %s: %v%s", ErrWriteOutput, path, err, hints.ForOutputDirectory())
	}
	return nil
}

// assetError adds the built-in names to style and template lookup failures.
func assetError(err error) error {
	switch {
	case errors.Is(err, bibpage.ErrStyleNotFound):
		return fmt.Errorf("%w%s", err, hints.ForStyleNotFound(assets.StyleNames()))
	case errors.Is(err, bibpage.ErrTemplateSetNotFound):
		return fmt.Errorf("%w%s", err, hints.ForTemplateSetNotFound(assets.TemplateSetNames()))
	}
	return err
}

// printError adds hints to PDF printing failures.
func printError(err error) error {
	switch {
	case errors.Is(err, printer.ErrBrowserConnect):
		return fmt.Errorf("%w%s", err, hints.ForBrowserConnect())
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w%s", printer.ErrPDFGeneration, err, hints.ForTimeout())
	}
	return err
}

func since(env *Environment, start time.Time) time.Duration {
	return env.Now().Sub(start).Round(time.Millisecond)
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
