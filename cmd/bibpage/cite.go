package main

import (
	"context"
	"fmt"

	"github.com/alnah/go-bibpage"
	"github.com/alnah/go-bibpage/internal/hints"
)

// runCite prints the citation text of one record, the same text the page
// shows behind its Cite button.
func runCite(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseCiteFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return fmt.Errorf("%w: cite takes exactly one citation key", ErrUsage)
	}
	key := positional[0]

	logger := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)
	cfg, err := loadSettings(flags.common, env, logger)
	if err != nil {
		return err
	}
	cfg.WithDefaults()

	records, err := loadRecords(cfg)
	if err != nil {
		return err
	}

	record, ok := bibpage.Find(records, key)
	if !ok {
		return fmt.Errorf("%w: %q in %s%s", ErrUnknownKey, key, cfg.Input.Path, hints.ForUnknownKey())
	}

	citation := bibpage.Citation(record)
	fmt.Fprintln(env.Stdout, citation)

	if flags.copy {
		if err := env.Clipboard(citation); err != nil {
			return fmt.Errorf("copying to clipboard: %w", err)
		}
		if !flags.common.quiet {
			fmt.Fprintf(env.Stderr, "Copied citation for %s to clipboard\n", key)
		}
	}
	return nil
}
