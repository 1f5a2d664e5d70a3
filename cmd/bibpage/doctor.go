package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-rod/rod/lib/launcher"
	flag "github.com/spf13/pflag"

	"github.com/alnah/go-bibpage"
	"github.com/alnah/go-bibpage/internal/fileutil"
)

// Doctor statuses.
const (
	statusReady    = "ready"
	statusWarnings = "warnings"
	statusErrors   = "errors"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string      `json:"status"`
	Project  projectInfo `json:"project"`
	Chrome   chromeInfo  `json:"chrome"`
	Env      envInfo     `json:"environment"`
	System   systemInfo  `json:"system"`
	Warnings []string    `json:"warnings,omitempty"`
	Errors   []string    `json:"errors,omitempty"`
}

// projectInfo holds the checks of the page build inputs and outputs.
type projectInfo struct {
	Config         string `json:"config,omitempty"`
	Input          string `json:"input"`
	Records        int    `json:"records"`
	Selected       int    `json:"selected"`
	Output         string `json:"output"`
	OutputWritable bool   `json:"output_writable"`
	BibliographyOK bool   `json:"bibliography_ok"`
}

// chromeInfo holds Chrome/Chromium detection results.
type chromeInfo struct {
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
	Sandbox bool   `json:"sandbox"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	Container     bool   `json:"container"`
	ContainerHint string `json:"container_hint,omitempty"`
	CI            bool   `json:"ci"`
	NoSandbox     string `json:"rod_no_sandbox"`
	BrowserBin    string `json:"rod_browser_bin"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable bool `json:"temp_writable"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found, 2 = bad flags.
func runDoctorCmd(args []string, env *Environment) int {
	common := commonFlags{}
	jsonOutput := false

	fs := newFlagSet("doctor", env.Stderr, printDoctorUsage)
	addDoctorFlags(fs, &common, &jsonOutput)
	if err := parseFlagSet(fs, args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, "error:", err)
		return ExitUsage
	}

	result := runDoctor(common, env)

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == statusErrors {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(common commonFlags, env *Environment) *doctorResult {
	result := &doctorResult{
		Status: statusReady,
		Env: envInfo{
			OS:         runtime.GOOS,
			Arch:       runtime.GOARCH,
			NoSandbox:  env.Getenv("ROD_NO_SANDBOX"),
			BrowserBin: env.Getenv("ROD_BROWSER_BIN"),
		},
	}

	checkProject(result, common, env)
	checkChrome(result)
	checkEnvironment(result, env)
	checkSystem(result)

	if len(result.Errors) > 0 {
		result.Status = statusErrors
	} else if len(result.Warnings) > 0 {
		result.Status = statusWarnings
	}

	return result
}

// checkProject verifies the config, the bibliography and the output
// directory. Chrome problems are warnings only, since it is needed for
// --pdf alone; project problems are errors.
func checkProject(result *doctorResult, common commonFlags, env *Environment) {
	// Warnings about unknown variables would interleave with the report.
	quiet := newLogger(io.Discard, true, false)

	cfg, err := loadSettings(common, env, quiet)
	if err != nil {
		result.Errors = append(result.Errors, firstLine(err.Error()))
		return
	}
	cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		result.Errors = append(result.Errors, err.Error())
	}

	result.Project.Config = common.config
	if result.Project.Config == "" {
		result.Project.Config = env.Getenv("BIBPAGE_CONFIG")
	}
	result.Project.Input = cfg.Input.Path
	result.Project.Output = cfg.Output.Path

	records, err := loadRecords(cfg)
	if err != nil {
		result.Errors = append(result.Errors, firstLine(err.Error()))
	} else {
		result.Project.BibliographyOK = true
		result.Project.Records = len(records)
		result.Project.Selected = len(bibpage.Selected(records))
		if len(records) == 0 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s contains no entries", cfg.Input.Path))
		}
	}

	outDir := filepath.Dir(cfg.Output.Path)
	if fileutil.DirWritable(outDir) {
		result.Project.OutputWritable = true
	} else {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Output directory not writable: %s", outDir))
	}
}

// checkChrome detects Chrome/Chromium installation.
func checkChrome(result *doctorResult) {
	chromePath := result.Env.BrowserBin

	if chromePath == "" {
		var found bool
		chromePath, found = launcher.LookPath()
		if !found {
			result.Warnings = append(result.Warnings,
				"Chrome/Chromium not found; --pdf will download Chromium or set ROD_BROWSER_BIN")
			return
		}
	}

	if _, err := os.Stat(chromePath); err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Chrome not found at %s", chromePath))
		return
	}

	result.Chrome.Found = true
	result.Chrome.Path = chromePath

	out, err := exec.Command(chromePath, "--version").Output() // #nosec G204 -- path from launcher or user env
	if err == nil {
		result.Chrome.Version = strings.TrimSpace(string(out))
	} else {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Could not get Chrome version: %v", err))
	}

	result.Chrome.Sandbox = result.Env.NoSandbox != "1"
}

// checkEnvironment detects container and CI environments.
func checkEnvironment(result *doctorResult, env *Environment) {
	result.Env.Container, result.Env.ContainerHint = isContainer(env.Getenv)

	for _, v := range []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"} {
		if env.Getenv(v) != "" {
			result.Env.CI = true
			break
		}
	}

	if (result.Env.Container || result.Env.CI) && result.Env.NoSandbox != "1" {
		result.Warnings = append(result.Warnings,
			"Container/CI detected but ROD_NO_SANDBOX not set. Set ROD_NO_SANDBOX=1 for --pdf")
	}
}

// isContainer detects if running in a container environment.
// Returns (isContainer, hint) where hint names the detected signal.
func isContainer(getenv func(string) string) (bool, string) {
	if getenv("BIBPAGE_CONTAINER") == "1" {
		return true, "BIBPAGE_CONTAINER=1"
	}
	if fileutil.FileExists("/.dockerenv") {
		return true, "/.dockerenv"
	}
	if v := getenv("container"); v != "" {
		return true, "container=" + v
	}
	if getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true, "KUBERNETES_SERVICE_HOST"
	}
	return false, ""
}

// checkSystem verifies the temp directory used for PDF printing.
func checkSystem(result *doctorResult) {
	tmpDir := os.TempDir()
	if fileutil.DirWritable(tmpDir) {
		result.System.TempWritable = true
		return
	}
	result.Errors = append(result.Errors,
		fmt.Sprintf("Temp directory not writable: %s", tmpDir))
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	re := lipgloss.NewRenderer(w)
	ok := re.NewStyle().Foreground(lipgloss.Color("2")).Render("[OK]")
	warn := re.NewStyle().Foreground(lipgloss.Color("3")).Render("[WARN]")
	fail := re.NewStyle().Foreground(lipgloss.Color("1")).Render("[ERROR]")
	heading := re.NewStyle().Bold(true)

	fmt.Fprintln(w, heading.Render("bibpage doctor"))
	fmt.Fprintln(w)

	fmt.Fprintln(w, heading.Render("Project"))
	if r.Project.Config != "" {
		fmt.Fprintf(w, "  %s Config: %s\n", ok, r.Project.Config)
	}
	if r.Project.BibliographyOK {
		fmt.Fprintf(w, "  %s Bibliography: %s (%d publications, %d selected)\n",
			ok, r.Project.Input, r.Project.Records, r.Project.Selected)
	} else if r.Project.Input != "" {
		fmt.Fprintf(w, "  %s Bibliography: %s\n", fail, r.Project.Input)
	}
	if r.Project.OutputWritable {
		fmt.Fprintf(w, "  %s Output: %s\n", ok, r.Project.Output)
	} else if r.Project.Output != "" {
		fmt.Fprintf(w, "  %s Output: %s\n", fail, r.Project.Output)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, heading.Render("Chrome/Chromium (for --pdf)"))
	if r.Chrome.Found {
		fmt.Fprintf(w, "  %s Found at %s\n", ok, r.Chrome.Path)
		if r.Chrome.Version != "" {
			fmt.Fprintf(w, "  %s Version: %s\n", ok, r.Chrome.Version)
		}
		if r.Chrome.Sandbox {
			fmt.Fprintf(w, "  %s Sandbox: enabled\n", ok)
		} else {
			fmt.Fprintf(w, "  %s Sandbox: disabled (ROD_NO_SANDBOX=1)\n", ok)
		}
	} else {
		fmt.Fprintf(w, "  %s Not found\n", warn)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, heading.Render("Environment"))
	fmt.Fprintf(w, "  %s Platform: %s/%s\n", ok, r.Env.OS, r.Env.Arch)
	if r.Env.Container {
		fmt.Fprintf(w, "  %s Container: detected (%s)\n", ok, r.Env.ContainerHint)
	}
	if r.Env.CI {
		fmt.Fprintf(w, "  %s CI: detected\n", ok)
	}
	if r.System.TempWritable {
		fmt.Fprintf(w, "  %s Temp directory: writable\n", ok)
	} else {
		fmt.Fprintf(w, "  %s Temp directory: not writable\n", fail)
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, msg := range r.Warnings {
			fmt.Fprintf(w, "  %s %s\n", warn, msg)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, msg := range r.Errors {
			fmt.Fprintf(w, "  %s %s\n", fail, msg)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case statusReady:
		fmt.Fprintln(w, "Status: Ready to build")
	case statusWarnings:
		fmt.Fprintln(w, "Status: Ready with warnings")
	case statusErrors:
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}

// firstLine drops the hint lines appended to an error message.
func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
