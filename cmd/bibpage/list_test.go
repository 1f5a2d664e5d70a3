package main

// Notes:
// - runList: we test text and JSON output and the --selected filter.
// - lipgloss styles render without escape codes when writing to a buffer,
//   so text output is compared as plain text.

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestList_Text(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeFile(t, dir, "refs.bib", testBib)

	te := newTestEnv(t)
	code := run(context.Background(), []string{"list", input}, te.Environment)
	if code != ExitSuccess {
		t.Fatalf("exit code = %d; stderr: %s", code, te.stderr.String())
	}

	lines := strings.Split(strings.TrimRight(te.stdout.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), te.stdout.String())
	}
	if !strings.HasPrefix(lines[0], "* kolesnikov2020bit  2020  Big Transfer") {
		t.Errorf("line 1 = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "  plato") || !strings.Contains(lines[1], "----  Republic") {
		t.Errorf("line 2 = %q", lines[1])
	}
}

func TestList_Selected(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeFile(t, dir, "refs.bib", testBib)

	te := newTestEnv(t)
	code := run(context.Background(), []string{"list", "-s", "-i", input}, te.Environment)
	if code != ExitSuccess {
		t.Fatalf("exit code = %d; stderr: %s", code, te.stderr.String())
	}

	out := te.stdout.String()
	assertContains(t, "stdout", out, "kolesnikov2020bit")
	if strings.Contains(out, "plato") {
		t.Errorf("--selected should hide unselected records, got:\n%s", out)
	}
}

func TestList_JSON(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeFile(t, dir, "refs.bib", testBib)

	te := newTestEnv(t)
	code := run(context.Background(), []string{"list", "--json", "-i", input}, te.Environment)
	if code != ExitSuccess {
		t.Fatalf("exit code = %d; stderr: %s", code, te.stderr.String())
	}

	var items []listItem
	if err := json.Unmarshal(te.stdout.Bytes(), &items); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, te.stdout.String())
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}

	first := items[0]
	if first.ID != "kolesnikov2020bit" || first.Type != "article" || !first.Selected {
		t.Errorf("first item = %+v", first)
	}
	if first.Authors != "Kolesnikov, Alexander and Beyer, Lucas" {
		t.Errorf("authors = %q, want the original field", first.Authors)
	}
	if items[1].Selected || items[1].Year != "" {
		t.Errorf("second item = %+v", items[1])
	}
}

func TestList_Empty(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeFile(t, dir, "refs.bib", "")

	te := newTestEnv(t)
	if code := run(context.Background(), []string{"list", input}, te.Environment); code != ExitSuccess {
		t.Fatalf("exit code = %d; stderr: %s", code, te.stderr.String())
	}
	if got := te.stdout.String(); got != "No publications\n" {
		t.Errorf("stdout = %q", got)
	}

	te = newTestEnv(t)
	if code := run(context.Background(), []string{"list", "--json", input}, te.Environment); code != ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	if got := strings.TrimSpace(te.stdout.String()); got != "[]" {
		t.Errorf("JSON for no records = %q, want []", got)
	}
}
