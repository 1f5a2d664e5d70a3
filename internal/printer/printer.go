// Package printer renders finished HTML pages to PDF with headless Chrome.
package printer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alnah/go-bibpage/internal/fileutil"
	"github.com/alnah/go-bibpage/internal/pipeline"
)

// Sentinel errors for PDF printing.
var (
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrInvalidPaper   = errors.New("invalid paper size")
)

// DefaultTimeout bounds page load and printing.
const DefaultTimeout = 30 * time.Second

// Paper is a page size in inches.
type Paper struct {
	Name          string
	Width, Height float64
}

// Supported paper sizes.
var (
	PaperA4     = Paper{Name: "a4", Width: 8.27, Height: 11.69}
	PaperLetter = Paper{Name: "letter", Width: 8.5, Height: 11}
)

// ParsePaper returns the paper size for a case-insensitive name.
// An empty name selects A4.
func ParsePaper(name string) (Paper, error) {
	switch strings.ToLower(name) {
	case "", PaperA4.Name:
		return PaperA4, nil
	case PaperLetter.Name:
		return PaperLetter, nil
	}
	return Paper{}, fmt.Errorf("%w: %q (use a4 or letter)", ErrInvalidPaper, name)
}

// Renderer prints a local HTML file. The rod implementation drives Chrome;
// tests substitute a fake.
type Renderer interface {
	RenderFromFile(ctx context.Context, filePath string, paper Paper) ([]byte, error)
	Close() error
}

// Options configures a ChromePrinter.
type Options struct {
	Paper    Paper
	Timeout  time.Duration
	SiteRoot string // Directory the page's root-relative paths resolve against
}

// ChromePrinter turns an HTML document into PDF bytes.
type ChromePrinter struct {
	renderer Renderer
	opts     Options
}

// New creates a ChromePrinter backed by go-rod. The browser starts on the
// first Print call.
func New(opts Options) *ChromePrinter {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	return NewWithRenderer(newRodRenderer(opts.Timeout), opts)
}

// NewWithRenderer creates a ChromePrinter using r.
func NewWithRenderer(r Renderer, opts Options) *ChromePrinter {
	if r == nil {
		panic("nil Renderer in NewWithRenderer")
	}
	if opts.Paper.Name == "" {
		opts.Paper = PaperA4
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	return &ChromePrinter{renderer: r, opts: opts}
}

// Print renders htmlContent to PDF. Site paths are rewritten to file://
// URLs first, because the page is loaded from a temporary file.
func (p *ChromePrinter) Print(ctx context.Context, htmlContent string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, p.opts.Timeout)
	defer cancel()

	rewritten, err := pipeline.RewriteSitePaths(htmlContent, p.opts.SiteRoot)
	if err != nil {
		return nil, fmt.Errorf("%w: rewriting paths: %v", ErrPDFGeneration, err)
	}

	tmpPath, cleanup, err := fileutil.WriteTempFile(rewritten, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return p.renderer.RenderFromFile(ctx, tmpPath, p.opts.Paper)
}

// Close releases the browser.
func (p *ChromePrinter) Close() error {
	return p.renderer.Close()
}
