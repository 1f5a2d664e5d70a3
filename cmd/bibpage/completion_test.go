package main

// Notes:
// - GenerateCompletion: we test that shell scripts are generated with expected
//   content markers. We do not test that the scripts actually work in the
//   target shell (that would require integration tests with actual shells).
// - getCommands: we test that every completed flag is accepted by the
//   command parser. Enum values are not checked against validation.

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestGenerateCompletion_SupportedShells - Shell completion script generation
// ---------------------------------------------------------------------------

func TestGenerateCompletion_SupportedShells(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		shell        Shell
		wantContains []string
	}{
		{
			name:  "bash generates valid script",
			shell: ShellBash,
			wantContains: []string{
				"_bibpage_completions",
				"complete -o filenames -F _bibpage_completions bibpage",
				"compgen",
				"build|cite|list|init|doctor|version|help|completion)",
				"--output|-o)",
				"--highlight",
				"compgen -f -X '!*.bib'",
			},
		},
		{
			name:  "zsh generates valid script",
			shell: ShellZsh,
			wantContains: []string{
				"#compdef bibpage",
				"_bibpage",
				"_arguments",
				"_describe",
				"compdef _bibpage bibpage",
				"'(-o --output)'{-o,--output}",
				"'*--highlight[",
				`_files -g "(*.yaml|*.yml)"`,
			},
		},
		{
			name:  "fish generates valid script",
			shell: ShellFish,
			wantContains: []string{
				"complete -c bibpage",
				"__fish_bibpage_needs_command",
				"__fish_bibpage_using_command",
				"'__fish_bibpage_using_command cite'",
				"-l copy",
				"-s o -l output",
				"(__fish_complete_suffix .bib)",
			},
		},
		{
			name:  "powershell generates valid script",
			shell: ShellPowerShell,
			wantContains: []string{
				"Register-ArgumentCompleter",
				"-CommandName bibpage",
				"CompletionResult",
				"'list' = @(",
				"'--selected'",
				"'completion' = @('bash', 'zsh', 'fish', 'powershell')",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell); err != nil {
				t.Fatalf("GenerateCompletion(%q) returned error: %v", tt.shell, err)
			}

			output := buf.String()
			if output == "" {
				t.Fatalf("GenerateCompletion(%q) produced empty output", tt.shell)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(output, want) {
					t.Errorf("output missing expected content %q", want)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestGenerateCompletion_UnsupportedShell - Error handling for unknown shells
// ---------------------------------------------------------------------------

func TestGenerateCompletion_UnsupportedShell(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		shell Shell
	}{
		{name: "empty shell", shell: ""},
		{name: "unknown shell", shell: "unknown"},
		{name: "sh is not supported", shell: "sh"},
		{name: "ksh is not supported", shell: "ksh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			err := GenerateCompletion(&buf, tt.shell)

			if !errors.Is(err, ErrUnsupportedShell) {
				t.Fatalf("error should wrap ErrUnsupportedShell, got: %v", err)
			}
			if !strings.Contains(err.Error(), string(tt.shell)) {
				t.Errorf("error message should contain shell name %q, got: %v", tt.shell, err)
			}
			if buf.Len() != 0 {
				t.Errorf("nothing should be written, got %q", buf.String())
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunCompletion - The completion command
// ---------------------------------------------------------------------------

func TestRunCompletion_NoArgs(t *testing.T) {
	t.Parallel()

	te := newTestEnv(t)
	if err := runCompletion(nil, te.Environment); err != nil {
		t.Fatalf("runCompletion with no args returned error: %v", err)
	}

	for _, want := range []string{"Usage: bibpage completion", "bash", "zsh", "fish", "powershell"} {
		assertContains(t, "usage", te.stdout.String(), want)
	}
}

func TestRunCompletion_TooManyArgs(t *testing.T) {
	t.Parallel()

	te := newTestEnv(t)
	err := runCompletion([]string{"bash", "zsh"}, te.Environment)
	if !errors.Is(err, ErrUsage) {
		t.Fatalf("err = %v, want ErrUsage", err)
	}
}

func TestRun_Completion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		shell    string
		wantCode int
		wantOut  string
		wantErr  string
	}{
		{"bash", ExitSuccess, "_bibpage_completions", ""},
		{"zsh", ExitSuccess, "#compdef bibpage", ""},
		{"fish", ExitSuccess, "complete -c bibpage", ""},
		{"powershell", ExitSuccess, "Register-ArgumentCompleter", ""},
		{"tcsh", ExitUsage, "", "unsupported shell"},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			t.Parallel()

			te := newTestEnv(t)
			code := run(context.Background(), []string{"completion", tt.shell}, te.Environment)
			if code != tt.wantCode {
				t.Fatalf("exit code = %d, want %d (stderr: %s)", code, tt.wantCode, te.stderr.String())
			}
			if tt.wantOut != "" {
				assertContains(t, "stdout", te.stdout.String(), tt.wantOut)
			}
			if tt.wantErr != "" {
				assertContains(t, "stderr", te.stderr.String(), tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestGetCommands - Command registry
// ---------------------------------------------------------------------------

func TestGetCommands_ReturnsExpectedCommands(t *testing.T) {
	t.Parallel()

	var names []string
	for _, c := range getCommands() {
		names = append(names, c.Name)
		if c.Desc == "" {
			t.Errorf("command %q has no description", c.Name)
		}
	}

	want := "build cite list init doctor version help completion"
	if got := strings.Join(names, " "); got != want {
		t.Errorf("commands = %q, want %q", got, want)
	}
}

func TestGetCommands_FlagsAcceptedByParsers(t *testing.T) {
	t.Parallel()

	parsers := map[string]func([]string, io.Writer) error{
		"build": func(args []string, w io.Writer) error { _, _, err := parseBuildFlags(args, w); return err },
		"cite":  func(args []string, w io.Writer) error { _, _, err := parseCiteFlags(args, w); return err },
		"list":  func(args []string, w io.Writer) error { _, _, err := parseListFlags(args, w); return err },
		"init":  func(args []string, w io.Writer) error { _, _, err := parseInitFlags(args, w); return err },
	}

	for _, c := range getCommands() {
		parse, ok := parsers[c.Name]
		if !ok {
			continue
		}
		for _, f := range c.Flags {
			args := []string{"--" + f.Long}
			if f.Type != flagBool {
				args = append(args, "value")
			}
			if err := parse(args, io.Discard); err != nil {
				t.Errorf("%s rejects completed flag --%s: %v", c.Name, f.Long, err)
			}
			if f.Short == "" {
				continue
			}
			args[0] = "-" + f.Short
			if err := parse(args, io.Discard); err != nil {
				t.Errorf("%s rejects completed flag -%s: %v", c.Name, f.Short, err)
			}
		}
	}
}

func TestGetCommands_DoctorFlags(t *testing.T) {
	t.Parallel()

	var got []string
	for _, f := range findCommand(t, "doctor").Flags {
		got = append(got, f.Long)
	}
	// pflag visits flags in lexical order.
	if want := "config,input,json,quiet,verbose"; strings.Join(got, ",") != want {
		t.Errorf("doctor flags = %v, want %s", got, want)
	}
}

func TestGetCommands_FlagTypes(t *testing.T) {
	t.Parallel()

	build := findCommand(t, "build")
	tests := []struct {
		name       string
		wantShort  string
		wantType   flagType
		wantGlob   string
		wantValues string
		repeatable bool
	}{
		{name: "output", wantShort: "o", wantType: flagFile, wantGlob: "*.html,*.htm"},
		{name: "input", wantShort: "i", wantType: flagFile, wantGlob: "*.bib"},
		{name: "config", wantShort: "c", wantType: flagFile, wantGlob: "*.yaml,*.yml"},
		{name: "css", wantType: flagFile, wantGlob: "*.css"},
		{name: "pdf", wantType: flagFile, wantGlob: "*.pdf"},
		{name: "paper", wantType: flagEnum, wantValues: "a4,letter"},
		{name: "style", wantType: flagEnum, wantValues: "default,minimal"},
		{name: "template", wantType: flagEnum, wantValues: "compact,default"},
		{name: "asset-path", wantType: flagDir},
		{name: "quiet", wantShort: "q", wantType: flagBool},
		{name: "timeout", wantShort: "t", wantType: flagString},
		{name: "highlight", wantType: flagString, repeatable: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := findFlag(t, build, tt.name)
			if f.Short != tt.wantShort {
				t.Errorf("short = %q, want %q", f.Short, tt.wantShort)
			}
			if f.Type != tt.wantType {
				t.Errorf("type = %v, want %v", f.Type, tt.wantType)
			}
			if f.FileGlob != tt.wantGlob {
				t.Errorf("glob = %q, want %q", f.FileGlob, tt.wantGlob)
			}
			if got := strings.Join(f.Values, ","); got != tt.wantValues {
				t.Errorf("values = %q, want %q", got, tt.wantValues)
			}
			if f.Repeatable != tt.repeatable {
				t.Errorf("repeatable = %v, want %v", f.Repeatable, tt.repeatable)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestGenerateCompletion_ContainsAllCommands - Script completeness
// ---------------------------------------------------------------------------

func TestGenerateCompletion_ContainsAllCommands(t *testing.T) {
	t.Parallel()

	for _, shell := range []Shell{ShellBash, ShellZsh, ShellFish, ShellPowerShell} {
		t.Run(string(shell), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, shell); err != nil {
				t.Fatalf("GenerateCompletion(%q) returned error: %v", shell, err)
			}

			output := buf.String()
			for _, cmd := range getCommands() {
				if !strings.Contains(output, cmd.Name) {
					t.Errorf("%s script missing command %q", shell, cmd.Name)
				}
				for _, f := range cmd.Flags {
					if !strings.Contains(output, f.Long) {
						t.Errorf("%s script missing flag --%s of %s", shell, f.Long, cmd.Name)
					}
				}
			}
		})
	}
}

func TestGenerateCompletion_QuotesDescriptions(t *testing.T) {
	t.Parallel()

	// The --date usage holds double quotes and a colon.
	var buf bytes.Buffer
	if err := GenerateCompletion(&buf, ShellZsh); err != nil {
		t.Fatal(err)
	}
	assertContains(t, "zsh", buf.String(), `"auto\:FORMAT"`)

	if got := zshEscape("it's [x]"); got != `it'\''s \[x\]` {
		t.Errorf("zshEscape = %q", got)
	}
	if got := fishEscape(`a'b\c`); got != `a\'b\\c` {
		t.Errorf("fishEscape = %q", got)
	}
	if got := psEscape("it's"); got != "it''s" {
		t.Errorf("psEscape = %q", got)
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func findCommand(t *testing.T, name string) commandDef {
	t.Helper()
	for _, c := range getCommands() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("command %q not found", name)
	return commandDef{}
}

func findFlag(t *testing.T, c commandDef, name string) flagDef {
	t.Helper()
	for _, f := range c.Flags {
		if f.Long == name {
			return f
		}
	}
	t.Fatalf("flag --%s not found in %s", name, c.Name)
	return flagDef{}
}
