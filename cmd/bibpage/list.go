package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alnah/go-bibpage"
)

// listItem is the JSON form of a record in list output.
type listItem struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Title    string `json:"title,omitempty"`
	Authors  string `json:"authors,omitempty"`
	Year     string `json:"year,omitempty"`
	Journal  string `json:"journal,omitempty"`
	Selected bool   `json:"selected"`
}

// runList prints the records of the bibliography, selected ones marked
// with "*".
func runList(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseListFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: expected at most one BibTeX file, got %d", ErrUsage, len(positional))
	}

	logger := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)
	cfg, err := loadSettings(flags.common, env, logger)
	if err != nil {
		return err
	}
	if len(positional) == 1 {
		cfg.Input.Path = positional[0]
	}
	cfg.WithDefaults()

	records, err := loadRecords(cfg)
	if err != nil {
		return err
	}
	if flags.selected {
		records = bibpage.Selected(records)
	}

	items := make([]listItem, 0, len(records))
	for _, r := range records {
		items = append(items, listItem{
			ID:       r.ID,
			Type:     r.Type,
			Title:    r.Get(bibpage.FieldTitle),
			Authors:  r.OriginalAuthor,
			Year:     r.Get(bibpage.FieldYear),
			Journal:  r.Get(bibpage.FieldJournal),
			Selected: r.IsSelected(),
		})
	}

	if flags.json {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}

	printList(env.Stdout, items)
	return nil
}

// printList writes one aligned line per record: marker, key, year, title.
func printList(w io.Writer, items []listItem) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No publications")
		return
	}

	r := lipgloss.NewRenderer(w)
	keyStyle := r.NewStyle().Bold(true)
	mutedStyle := r.NewStyle().Faint(true)

	width := 0
	for _, it := range items {
		width = max(width, len(it.ID))
	}

	for _, it := range items {
		marker := " "
		if it.Selected {
			marker = "*"
		}
		year := it.Year
		if year == "" {
			year = "----"
		}
		pad := strings.Repeat(" ", width-len(it.ID))
		fmt.Fprintf(w, "%s %s%s  %s  %s\n", marker, keyStyle.Render(it.ID), pad, mutedStyle.Render(year), it.Title)
	}
}
