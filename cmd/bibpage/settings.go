package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/alnah/go-bibpage"
	"github.com/alnah/go-bibpage/internal/config"
	"github.com/alnah/go-bibpage/internal/hints"
)

// loadSettings builds the effective configuration: the config file (from
// --config or BIBPAGE_CONFIG) or defaults, then environment overrides.
// Flags are merged by the caller.
func loadSettings(common commonFlags, env *Environment, logger *log.Logger) (*config.Config, error) {
	warnUnknownEnvVars(env.Environ(), logger)
	envCfg := loadEnvConfig(env.Getenv)

	name := common.config
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		var err error
		cfg, err = config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(triedPaths(err)))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
		logger.Debug("loaded config", "name", name)
	}

	applyEnvConfig(envCfg, cfg)

	if common.input != "" {
		cfg.Input.Path = common.input
	}
	return cfg, nil
}

// triedPaths extracts the searched locations from a config-not-found error.
func triedPaths(err error) []string {
	_, list, ok := strings.Cut(err.Error(), "tried ")
	if !ok {
		return nil
	}
	return strings.Split(list, ", ")
}

// loadRecords loads the configured bibliography, adding hints to errors.
func loadRecords(cfg *config.Config) ([]bibpage.Record, error) {
	records, err := bibpage.LoadFile(cfg.Input.Path, bibpage.LoadOptions{
		Emphasize: cfg.Profile.Highlight,
	})
	switch {
	case errors.Is(err, bibpage.ErrReadBibliography):
		return nil, fmt.Errorf("%w%s", err, hints.ForMissingInput(cfg.Input.Path))
	case errors.Is(err, bibpage.ErrParseBibliography):
		return nil, fmt.Errorf("%s: %w%s", cfg.Input.Path, err, hints.ForParseError())
	case err != nil:
		return nil, err
	}
	return records, nil
}

// readOptionalFile returns the content of path, or "" when path is empty.
// Read failures are wrapped in sentinel.
func readOptionalFile(path string, sentinel error) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return "", fmt.Errorf("%w: %v", sentinel, err)
	}
	return string(data), nil
}
