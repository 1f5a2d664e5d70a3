package bibpage

import "strings"

// Field names recognized on a record.
const (
	FieldTitle    = "title"
	FieldYear     = "year"
	FieldJournal  = "journal"
	FieldAuthor   = "author"
	FieldArxiv    = "arxiv"
	FieldPDF      = "pdf"
	FieldCode     = "code"
	FieldPreview  = "preview"
	FieldSelected = "selected"
)

// DefaultEntryType is used when a record has no entry type.
const DefaultEntryType = "article"

// Record is one bibliographic entry.
//
// Records are created by LoadRecords in source order. DisplayAuthor and
// OriginalAuthor are set at load time; Citation is set by Render on the
// copies it returns in Page.Records.
type Record struct {
	ID     string            // Citation key
	Type   string            // Entry kind, lowercased
	Fields map[string]string // Lowercased field name -> value

	DisplayAuthor  string // "Given Family" list, highlighted names in <b>
	OriginalAuthor string // Author field as written in the source
	Citation       string // BibTeX-style citation text
}

// Get returns a field value, or "" when absent. Names are case-insensitive.
func (r Record) Get(name string) string {
	return r.Fields[strings.ToLower(name)]
}

// Has reports whether the record has a field.
func (r Record) Has(name string) bool {
	_, ok := r.Fields[strings.ToLower(name)]
	return ok
}

// IsSelected reports whether the selected field equals "true", ignoring case.
func (r Record) IsSelected() bool {
	return strings.EqualFold(r.Get(FieldSelected), "true")
}

// Selected returns the selected records in their original order.
func Selected(records []Record) []Record {
	var selected []Record
	for _, r := range records {
		if r.IsSelected() {
			selected = append(selected, r)
		}
	}
	return selected
}

// Find returns the record with the given citation key.
func Find(records []Record, id string) (Record, bool) {
	for _, r := range records {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}
