package bibpage

import (
	"fmt"
	"html"
	"html/template"
	"strings"
)

// Citation placeholders for missing fields.
const (
	NoTitle   = "No Title"
	NoAuthor  = "No Author"
	NoJournal = "No Journal"
	NoYear    = "No Year"
)

// Citation returns the record as a copy-pasteable BibTeX entry. The author
// line uses the original author string, never the display form.
func Citation(r Record) string {
	entryType := r.Type
	if entryType == "" {
		entryType = DefaultEntryType
	}

	author := r.OriginalAuthor
	if author == "" {
		author = NoAuthor
	}

	return fmt.Sprintf("@%s{%s,\n  title = {%s},\n  author = {%s},\n  journal = {%s},\n  year = {%s}\n}",
		entryType,
		r.ID,
		fieldOr(r, FieldTitle, NoTitle),
		author,
		fieldOr(r, FieldJournal, NoJournal),
		fieldOr(r, FieldYear, NoYear),
	)
}

// citationHTML escapes the citation text and turns newlines into <br>.
func citationHTML(citation string) template.HTML {
	escaped := html.EscapeString(citation)
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>")) // #nosec G203 -- escaped above
}

// fieldOr returns the field with grouping braces removed, or fallback when
// the field is absent or empty.
func fieldOr(r Record, name, fallback string) string {
	v := stripBraces(r.Get(name))
	if v == "" {
		return fallback
	}
	return v
}

var braceStripper = strings.NewReplacer("{", "", "}", "")

func stripBraces(s string) string {
	return braceStripper.Replace(s)
}
