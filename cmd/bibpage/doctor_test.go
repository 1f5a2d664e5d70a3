package main

// Notes:
// - Tests use a black-box approach through runDoctorCmd() output.
// - Chrome detection depends on system state; only its JSON shape is checked.
// - Project checks are deterministic: they read files from t.TempDir().

import (
	"encoding/json"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRunDoctorCmd_JSONOutput - JSON structure and project checks
// ---------------------------------------------------------------------------

func TestRunDoctorCmd_JSONOutput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeFile(t, dir, "refs.bib", testBib)

	te := newTestEnv(t)
	te.vars["BIBPAGE_OUTPUT"] = filepath.Join(dir, "index.html")
	exitCode := runDoctorCmd([]string{"--json", "-i", input}, te.Environment)

	var result doctorResult
	if err := json.Unmarshal(te.stdout.Bytes(), &result); err != nil {
		t.Fatalf("Invalid JSON output: %v\nOutput was: %s", err, te.stdout.String())
	}

	validStatuses := map[string]bool{statusReady: true, statusWarnings: true, statusErrors: true}
	if !validStatuses[result.Status] {
		t.Errorf("Invalid status %q", result.Status)
	}
	if result.Status == statusErrors && exitCode != ExitGeneral {
		t.Errorf("exit code = %d for errors status, want %d", exitCode, ExitGeneral)
	}
	if result.Status != statusErrors && exitCode != ExitSuccess {
		t.Errorf("exit code = %d for %s status, want %d", exitCode, result.Status, ExitSuccess)
	}

	if result.Env.OS != runtime.GOOS || result.Env.Arch != runtime.GOARCH {
		t.Errorf("platform = %s/%s, want %s/%s", result.Env.OS, result.Env.Arch, runtime.GOOS, runtime.GOARCH)
	}

	p := result.Project
	if !p.BibliographyOK || p.Records != 2 || p.Selected != 1 {
		t.Errorf("project = %+v, want bibliography ok with 2 records, 1 selected", p)
	}
	if !p.OutputWritable {
		t.Error("output directory should be writable")
	}
	if p.Input != input {
		t.Errorf("input = %q, want %q", p.Input, input)
	}
}

func TestRunDoctorCmd_MissingBibliography(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	te := newTestEnv(t)
	te.vars["BIBPAGE_OUTPUT"] = filepath.Join(dir, "index.html")
	exitCode := runDoctorCmd([]string{"--json", "-i", filepath.Join(dir, "missing.bib")}, te.Environment)

	if exitCode != ExitGeneral {
		t.Errorf("exit code = %d, want %d", exitCode, ExitGeneral)
	}

	var result doctorResult
	if err := json.Unmarshal(te.stdout.Bytes(), &result); err != nil {
		t.Fatalf("Invalid JSON output: %v", err)
	}
	if result.Status != statusErrors {
		t.Errorf("status = %q, want %q", result.Status, statusErrors)
	}
	if result.Project.BibliographyOK {
		t.Error("bibliography should not be ok")
	}
	found := false
	for _, e := range result.Errors {
		if strings.Contains(e, "failed to read bibliography") {
			found = true
		}
		if strings.Contains(e, "\n") {
			t.Errorf("error %q should be a single line", e)
		}
	}
	if !found {
		t.Errorf("errors = %q, want a bibliography read error", result.Errors)
	}
}

func TestRunDoctorCmd_EmptyBibliographyWarns(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeFile(t, dir, "refs.bib", "")

	te := newTestEnv(t)
	te.vars["BIBPAGE_OUTPUT"] = filepath.Join(dir, "index.html")
	runDoctorCmd([]string{"--json", "-i", input}, te.Environment)

	var result doctorResult
	if err := json.Unmarshal(te.stdout.Bytes(), &result); err != nil {
		t.Fatalf("Invalid JSON output: %v", err)
	}
	if !strings.Contains(strings.Join(result.Warnings, "\n"), "contains no entries") {
		t.Errorf("warnings = %q, want an empty bibliography warning", result.Warnings)
	}
}

// ---------------------------------------------------------------------------
// TestRunDoctorCmd_HumanOutput - Human-readable report
// ---------------------------------------------------------------------------

func TestRunDoctorCmd_HumanOutput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeFile(t, dir, "refs.bib", testBib)

	te := newTestEnv(t)
	te.vars["BIBPAGE_OUTPUT"] = filepath.Join(dir, "index.html")
	runDoctorCmd([]string{"-i", input}, te.Environment)

	out := te.stdout.String()
	for _, want := range []string{
		"bibpage doctor",
		"Project",
		"Bibliography: " + input + " (2 publications, 1 selected)",
		"Chrome/Chromium",
		"Environment",
		"Platform: " + runtime.GOOS + "/" + runtime.GOARCH,
		"Status:",
	} {
		assertContains(t, "report", out, want)
	}
}

func TestRunDoctorCmd_ContainerEnv(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeFile(t, dir, "refs.bib", testBib)

	te := newTestEnv(t)
	te.vars["BIBPAGE_OUTPUT"] = filepath.Join(dir, "index.html")
	te.vars["BIBPAGE_CONTAINER"] = "1"
	runDoctorCmd([]string{"--json", "-i", input}, te.Environment)

	var result doctorResult
	if err := json.Unmarshal(te.stdout.Bytes(), &result); err != nil {
		t.Fatalf("Invalid JSON output: %v", err)
	}
	if !result.Env.Container || result.Env.ContainerHint != "BIBPAGE_CONTAINER=1" {
		t.Errorf("container = %v (%q), want detected via BIBPAGE_CONTAINER", result.Env.Container, result.Env.ContainerHint)
	}
	if !strings.Contains(strings.Join(result.Warnings, "\n"), "ROD_NO_SANDBOX") {
		t.Errorf("warnings = %q, want sandbox advice", result.Warnings)
	}
}

func TestRunDoctorCmd_BadFlag(t *testing.T) {
	t.Parallel()

	te := newTestEnv(t)
	if code := runDoctorCmd([]string{"--nope"}, te.Environment); code != ExitUsage {
		t.Errorf("exit code = %d, want %d", code, ExitUsage)
	}
}

func TestFirstLine(t *testing.T) {
	t.Parallel()

	if got := firstLine("error\n  hint: do this"); got != "error" {
		t.Errorf("firstLine() = %q, want %q", got, "error")
	}
	if got := firstLine("single"); got != "single" {
		t.Errorf("firstLine() = %q, want %q", got, "single")
	}
}
