package main

import (
	"errors"
	"os"

	"github.com/alnah/go-bibpage"
	"github.com/alnah/go-bibpage/internal/config"
	"github.com/alnah/go-bibpage/internal/printer"
)

// Exit codes for the bibpage CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Page built
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, bibliography syntax or assets
	ExitIO      = 3 // Missing input, unreadable or unwritable files
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the exit code for an error.
// It uses errors.Is, so callers must wrap with %w.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, printer.ErrBrowserConnect) ||
		errors.Is(err, printer.ErrPageCreate) ||
		errors.Is(err, printer.ErrPageLoad) ||
		errors.Is(err, printer.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, bibpage.ErrReadBibliography) ||
		errors.Is(err, ErrReadAbout) ||
		errors.Is(err, ErrReadCSS) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, ErrUnknownKey) ||
		errors.Is(err, ErrConfigExists) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, bibpage.ErrParseBibliography) ||
		errors.Is(err, bibpage.ErrStyleNotFound) ||
		errors.Is(err, bibpage.ErrTemplateSetNotFound) ||
		errors.Is(err, bibpage.ErrIncompleteTemplateSet) ||
		errors.Is(err, bibpage.ErrInvalidAssetPath) ||
		errors.Is(err, bibpage.ErrUnknownCodeStyle) ||
		errors.Is(err, bibpage.ErrTemplate) ||
		errors.Is(err, bibpage.ErrInvalidDate) ||
		errors.Is(err, printer.ErrInvalidPaper) {
		return ExitUsage
	}

	return ExitGeneral
}
