// Package hints provides actionable hints for common failures.
// Every hint is formatted as "\n  hint: <text>" so it can be appended to an
// error message.
package hints

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-bibpage/internal/fileutil"
)

// IsInContainer reports whether the process runs inside a container.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForBrowserConnect returns hints for headless Chrome launch failures.
func ForBrowserConnect() string {
	var hints []string

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""

	if (inCI || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use custom Chrome")
	}
	hints = append(hints, "or drop --pdf to build the HTML page only")

	return formatHints(hints)
}

// ForTimeout returns a hint about raising the PDF timeout.
func ForTimeout() string {
	return format("raise the limit with --timeout or pdf.timeout")
}

// ForConfigNotFound suggests --config or a file in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	marker := "go-bibpage" + string(filepath.Separator)
	for _, p := range searchedPaths {
		if strings.Contains(p, marker) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForMissingInput explains how to point the tool at a bibliography.
func ForMissingInput(path string) string {
	return format("create " + path + " or pass the file: bibpage build refs.bib")
}

// ForParseError points at the usual causes of BibTeX syntax errors.
func ForParseError() string {
	return format("check for unbalanced braces, missing commas between fields, or a missing citation key")
}

// ForUnknownKey suggests listing the available citation keys.
func ForUnknownKey() string {
	return format("run 'bibpage list' to see citation keys")
}

// ForOutputDirectory returns hints for output write failures.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound lists the available style names.
func ForStyleNotFound(available []string) string {
	return forAvailable(available)
}

// ForTemplateSetNotFound lists the available template set names.
func ForTemplateSetNotFound(available []string) string {
	return forAvailable(available)
}

func forAvailable(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return format("available: " + strings.Join(names, ", "))
}

func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
