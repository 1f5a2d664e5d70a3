package hints

// Notes:
// - ForBrowserConnect tests cannot use t.Parallel(): they call t.Setenv and
//   swap the package-level IsInContainer variable.

import (
	"strings"
	"testing"
)

func TestForBrowserConnect_InCI(t *testing.T) {
	orig := IsInContainer
	defer func() { IsInContainer = orig }()
	IsInContainer = func() bool { return false }

	t.Setenv("CI", "true")
	t.Setenv("ROD_NO_SANDBOX", "")
	t.Setenv("ROD_BROWSER_BIN", "")

	hint := ForBrowserConnect()

	for _, want := range []string{"hint:", "ROD_NO_SANDBOX", "ROD_BROWSER_BIN", "--pdf"} {
		if !strings.Contains(hint, want) {
			t.Errorf("ForBrowserConnect() = %q, want it to mention %q", hint, want)
		}
	}
}

func TestForBrowserConnect_SandboxAlreadySet(t *testing.T) {
	orig := IsInContainer
	defer func() { IsInContainer = orig }()
	IsInContainer = func() bool { return true }

	t.Setenv("CI", "")
	t.Setenv("GITHUB_ACTIONS", "")
	t.Setenv("ROD_NO_SANDBOX", "1")
	t.Setenv("ROD_BROWSER_BIN", "/usr/bin/chromium")

	hint := ForBrowserConnect()

	if strings.Contains(hint, "ROD_NO_SANDBOX") {
		t.Errorf("should not suggest ROD_NO_SANDBOX when already set: %q", hint)
	}
	if strings.Contains(hint, "ROD_BROWSER_BIN") {
		t.Errorf("should not suggest ROD_BROWSER_BIN when already set: %q", hint)
	}
}

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	userPath := "/home/jane/.config/go-bibpage/site.yaml"
	hint := ForConfigNotFound([]string{"site.yaml", "site.yml", userPath})

	if !strings.Contains(hint, "--config") {
		t.Errorf("hint = %q, want --config suggestion", hint)
	}
	if !strings.Contains(hint, "create "+userPath) {
		t.Errorf("hint = %q, want user config path suggestion", hint)
	}

	if hint := ForConfigNotFound(nil); strings.Contains(hint, "create") {
		t.Errorf("hint = %q, want no create suggestion without paths", hint)
	}
}

func TestStaticHints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		hint string
		want string
	}{
		{name: "timeout", hint: ForTimeout(), want: "--timeout"},
		{name: "missing input", hint: ForMissingInput("bibtex.bib"), want: "create bibtex.bib"},
		{name: "parse error", hint: ForParseError(), want: "unbalanced braces"},
		{name: "unknown key", hint: ForUnknownKey(), want: "bibpage list"},
		{name: "output directory", hint: ForOutputDirectory(), want: "writable"},
		{name: "styles", hint: ForStyleNotFound([]string{"default", "minimal"}), want: "available: default, minimal"},
		{name: "template sets", hint: ForTemplateSetNotFound([]string{"compact", "default"}), want: "available: compact, default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if !strings.HasPrefix(tt.hint, "\n  hint: ") {
				t.Errorf("hint %q lacks the standard prefix", tt.hint)
			}
			if !strings.Contains(tt.hint, tt.want) {
				t.Errorf("hint %q should contain %q", tt.hint, tt.want)
			}
		})
	}
}

func TestForStyleNotFound_Empty(t *testing.T) {
	t.Parallel()

	if got := ForStyleNotFound(nil); got != "" {
		t.Errorf("ForStyleNotFound(nil) = %q, want empty", got)
	}
}
