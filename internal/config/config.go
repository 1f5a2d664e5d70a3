// Package config loads and validates the YAML configuration of a page build.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-bibpage/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength      = 4096
	MaxNameLength      = 100
	MaxTitleLength     = 200
	MaxURLLength       = 2048
	MaxAboutLength     = 20000
	MaxDateLength      = 30
	MaxLangLength      = 35 // BCP 47 tags rarely exceed this
	MaxAssetNameLength = 64
	MaxHighlightNames  = 20
)

// Defaults applied by WithDefaults.
const (
	DefaultInputPath   = "bibtex.bib"
	DefaultOutputPath  = "index.html"
	DefaultStyle       = "default"
	DefaultTemplate    = "default"
	DefaultPreviewDir  = "/assets/img/publication_preview/"
	DefaultDateFormat  = "auto"
	DefaultLang        = "en"
	DefaultPaper       = "a4"
	DefaultPDFTimeout  = 30 * time.Second
	defaultTimeoutText = "30s"
)

// Config holds all configuration for a page build.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Profile ProfileConfig `yaml:"profile"`
	Page    PageConfig    `yaml:"page"`
	Assets  AssetsConfig  `yaml:"assets"`
	PDF     PDFConfig     `yaml:"pdf"`
}

// InputConfig defines the bibliography source.
type InputConfig struct {
	Path string `yaml:"path"` // BibTeX file (default: bibtex.bib)
}

// OutputConfig defines the generated files.
type OutputConfig struct {
	Path string `yaml:"path"` // HTML page (default: index.html)
	PDF  string `yaml:"pdf"`  // Optional PDF export path
}

// ProfileConfig describes the page owner.
type ProfileConfig struct {
	Name      string   `yaml:"name"`
	Title     string   `yaml:"title"`     // Headline under the name
	Image     string   `yaml:"image"`     // Portrait URL or site path
	About     string   `yaml:"about"`     // Markdown
	AboutFile string   `yaml:"aboutFile"` // Markdown file, exclusive with about
	Highlight []string `yaml:"highlight"` // Names emphasized in author lists
}

// PageConfig defines the rendered document.
type PageConfig struct {
	Title      string `yaml:"title"`      // <title>, defaults to profile name
	Style      string `yaml:"style"`      // Built-in or custom style name
	Template   string `yaml:"template"`   // Template set name
	CSS        string `yaml:"css"`        // Extra CSS file appended to the style
	CodeStyle  string `yaml:"codeStyle"`  // Chroma style for code in the about text
	PreviewDir string `yaml:"previewDir"` // URL prefix of preview images
	Date       string `yaml:"date"`       // Footer date: "auto", "auto:FORMAT" or literal
	Lang       string `yaml:"lang"`       // <html lang>
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = embedded assets only
}

// PDFConfig defines the optional PDF export.
type PDFConfig struct {
	Timeout string `yaml:"timeout"` // Go duration, e.g. "45s"
	Paper   string `yaml:"paper"`   // "a4" or "letter"
}

// TimeoutDuration parses Timeout, falling back to DefaultPDFTimeout when
// it is empty. Validate rejects values this cannot parse.
func (p PDFConfig) TimeoutDuration() time.Duration {
	if p.Timeout == "" {
		return DefaultPDFTimeout
	}
	d, err := time.ParseDuration(p.Timeout)
	if err != nil || d <= 0 {
		return DefaultPDFTimeout
	}
	return d
}

// Validate checks field lengths and enumerations.
// Called by LoadConfig; library users building a Config by hand should
// call it themselves.
func (c *Config) Validate() error {
	lengths := []struct {
		field string
		value string
		max   int
	}{
		{"input.path", c.Input.Path, MaxPathLength},
		{"output.path", c.Output.Path, MaxPathLength},
		{"output.pdf", c.Output.PDF, MaxPathLength},
		{"profile.name", c.Profile.Name, MaxNameLength},
		{"profile.title", c.Profile.Title, MaxTitleLength},
		{"profile.image", c.Profile.Image, MaxURLLength},
		{"profile.about", c.Profile.About, MaxAboutLength},
		{"profile.aboutFile", c.Profile.AboutFile, MaxPathLength},
		{"page.title", c.Page.Title, MaxTitleLength},
		{"page.style", c.Page.Style, MaxAssetNameLength},
		{"page.template", c.Page.Template, MaxAssetNameLength},
		{"page.css", c.Page.CSS, MaxPathLength},
		{"page.codeStyle", c.Page.CodeStyle, MaxAssetNameLength},
		{"page.previewDir", c.Page.PreviewDir, MaxURLLength},
		{"page.date", c.Page.Date, MaxDateLength},
		{"page.lang", c.Page.Lang, MaxLangLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
	}
	for _, l := range lengths {
		if err := validateFieldLength(l.field, l.value, l.max); err != nil {
			return err
		}
	}

	if len(c.Profile.Highlight) > MaxHighlightNames {
		return fmt.Errorf("%w: profile.highlight has %d names (max %d)", ErrInvalidValue, len(c.Profile.Highlight), MaxHighlightNames)
	}
	for i, name := range c.Profile.Highlight {
		if err := validateFieldLength(fmt.Sprintf("profile.highlight[%d]", i), name, MaxNameLength); err != nil {
			return err
		}
	}

	if c.Profile.About != "" && c.Profile.AboutFile != "" {
		return fmt.Errorf("%w: profile.about and profile.aboutFile are mutually exclusive", ErrInvalidValue)
	}

	if c.PDF.Paper != "" {
		switch strings.ToLower(c.PDF.Paper) {
		case "a4", "letter":
		default:
			return fmt.Errorf("%w: pdf.paper %q (must be a4 or letter)", ErrInvalidValue, c.PDF.Paper)
		}
	}

	if c.PDF.Timeout != "" {
		d, err := time.ParseDuration(c.PDF.Timeout)
		if err != nil {
			return fmt.Errorf("%w: pdf.timeout %q: %v", ErrInvalidValue, c.PDF.Timeout, err)
		}
		if d <= 0 {
			return fmt.Errorf("%w: pdf.timeout must be positive, got %s", ErrInvalidValue, c.PDF.Timeout)
		}
	}

	return nil
}

func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Input:  InputConfig{Path: DefaultInputPath},
		Output: OutputConfig{Path: DefaultOutputPath},
		Page: PageConfig{
			Style:      DefaultStyle,
			Template:   DefaultTemplate,
			PreviewDir: DefaultPreviewDir,
			Date:       DefaultDateFormat,
			Lang:       DefaultLang,
		},
		PDF: PDFConfig{Timeout: defaultTimeoutText, Paper: DefaultPaper},
	}
}

// WithDefaults fills every empty setting that has a default and returns c.
func (c *Config) WithDefaults() *Config {
	d := DefaultConfig()
	setDefault(&c.Input.Path, d.Input.Path)
	setDefault(&c.Output.Path, d.Output.Path)
	setDefault(&c.Page.Style, d.Page.Style)
	setDefault(&c.Page.Template, d.Page.Template)
	setDefault(&c.Page.PreviewDir, d.Page.PreviewDir)
	setDefault(&c.Page.Date, d.Page.Date)
	setDefault(&c.Page.Lang, d.Page.Lang)
	setDefault(&c.PDF.Timeout, d.PDF.Timeout)
	setDefault(&c.PDF.Paper, d.PDF.Paper)
	setDefault(&c.Page.Title, c.Profile.Name)
	return c
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

// LoadConfig loads configuration from a file path or config name.
// A value containing a path separator is a file path; anything else is a
// name searched in standard locations. A missing file is an error.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !isFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Marshal renders c as YAML, e.g. for a starter config file.
func Marshal(c *Config) ([]byte, error) {
	return yamlutil.Marshal(c)
}

func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath looks for name.yaml then name.yml, first in the current
// directory and then in the user config directory under go-bibpage/.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	tried := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		tried = append(tried, localPath)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-bibpage", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			tried = append(tried, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
