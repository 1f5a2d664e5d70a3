package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/atotto/clipboard"

	"github.com/alnah/go-bibpage/internal/printer"
)

// pagePrinter renders a finished page to PDF.
type pagePrinter interface {
	Print(ctx context.Context, html string) ([]byte, error)
	Close() error
}

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now        func() time.Time
	Stdout     io.Writer
	Stderr     io.Writer
	Getenv     func(string) string
	Environ    func() []string
	Clipboard  func(text string) error
	NewPrinter func(opts printer.Options) pagePrinter
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:       time.Now,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Getenv:    os.Getenv,
		Environ:   os.Environ,
		Clipboard: clipboard.WriteAll,
		NewPrinter: func(opts printer.Options) pagePrinter {
			return printer.New(opts)
		},
	}
}
