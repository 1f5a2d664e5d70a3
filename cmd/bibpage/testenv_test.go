package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alnah/go-bibpage/internal/printer"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Environment, printer and fixtures
// ---------------------------------------------------------------------------

const testBib = `@article{kolesnikov2020bit,
  title = {Big Transfer ({BiT}): General Visual Representation Learning},
  author = {Kolesnikov, Alexander and Beyer, Lucas},
  journal = {ECCV},
  year = {2020},
  selected = {true},
  preview = {bit.png}
}

@misc{plato,
  title = {Republic},
  author = {Plato}
}
`

var testNow = time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)

// testEnv is an Environment writing to buffers, with a fixed clock and a
// controllable set of environment variables.
type testEnv struct {
	*Environment
	stdout  *bytes.Buffer
	stderr  *bytes.Buffer
	vars    map[string]string
	copied  []string
	printer *fakePrinter
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	te := &testEnv{
		stdout:  &bytes.Buffer{},
		stderr:  &bytes.Buffer{},
		vars:    map[string]string{},
		printer: &fakePrinter{pdf: []byte("%PDF-1.7 fake")},
	}
	te.Environment = &Environment{
		Now:    func() time.Time { return testNow },
		Stdout: te.stdout,
		Stderr: te.stderr,
		Getenv: func(key string) string { return te.vars[key] },
		Environ: func() []string {
			out := make([]string, 0, len(te.vars))
			for k, v := range te.vars {
				out = append(out, k+"="+v)
			}
			return out
		},
		Clipboard: func(text string) error {
			te.copied = append(te.copied, text)
			return nil
		},
		NewPrinter: func(opts printer.Options) pagePrinter {
			te.printer.opts = opts
			return te.printer
		},
	}
	return te
}

// fakePrinter records what it was asked to print.
type fakePrinter struct {
	pdf    []byte
	err    error
	opts   printer.Options
	html   string
	closed bool
}

func (p *fakePrinter) Print(_ context.Context, html string) ([]byte, error) {
	p.html = html
	if p.err != nil {
		return nil, p.err
	}
	return p.pdf, nil
}

func (p *fakePrinter) Close() error {
	p.closed = true
	return nil
}

// writeFile writes content to name inside dir and returns the path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

func assertContains(t *testing.T, label, got, want string) {
	t.Helper()

	if !strings.Contains(got, want) {
		t.Errorf("%s should contain %q, got:\n%s", label, want, got)
	}
}
