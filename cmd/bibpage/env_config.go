package main

import (
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/alnah/go-bibpage/internal/config"
)

// envConfig holds configuration from BIBPAGE_* environment variables.
type envConfig struct {
	ConfigPath string        // BIBPAGE_CONFIG: config file name or path
	Input      string        // BIBPAGE_INPUT: BibTeX file
	Output     string        // BIBPAGE_OUTPUT: HTML output path
	Style      string        // BIBPAGE_STYLE: CSS style name or path
	PDF        string        // BIBPAGE_PDF: PDF output path
	Timeout    time.Duration // BIBPAGE_TIMEOUT: PDF generation timeout
}

// knownEnvVars lists valid BIBPAGE_* environment variables.
var knownEnvVars = map[string]bool{
	"BIBPAGE_CONFIG":    true,
	"BIBPAGE_INPUT":     true,
	"BIBPAGE_OUTPUT":    true,
	"BIBPAGE_STYLE":     true,
	"BIBPAGE_PDF":       true,
	"BIBPAGE_TIMEOUT":   true,
	"BIBPAGE_CONTAINER": true, // read by doctor
}

// loadEnvConfig reads the recognized BIBPAGE_* variables.
// An unparsable or non-positive timeout is ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("BIBPAGE_CONFIG"),
		Input:      getenv("BIBPAGE_INPUT"),
		Output:     getenv("BIBPAGE_OUTPUT"),
		Style:      getenv("BIBPAGE_STYLE"),
		PDF:        getenv("BIBPAGE_PDF"),
	}

	if timeout := getenv("BIBPAGE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	return cfg
}

// warnUnknownEnvVars logs a warning for each unrecognized BIBPAGE_*
// variable, catching typos like BIBPAGE_OUPUT.
func warnUnknownEnvVars(environ []string, logger *log.Logger) {
	for _, env := range environ {
		if !strings.HasPrefix(env, "BIBPAGE_") {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			logger.Warn("unknown environment variable (typo?)", "name", name)
		}
	}
}

// applyEnvConfig overrides config values with set environment variables.
// CLI flags are merged afterwards, giving:
// CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Input != "" {
		cfg.Input.Path = env.Input
	}
	if env.Output != "" {
		cfg.Output.Path = env.Output
	}
	if env.Style != "" {
		cfg.Page.Style = env.Style
	}
	if env.PDF != "" {
		cfg.Output.PDF = env.PDF
	}
	if env.Timeout > 0 {
		cfg.PDF.Timeout = env.Timeout.String()
	}
}
