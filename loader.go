package bibpage

import (
	"fmt"
	"os"

	"github.com/alnah/go-bibpage/internal/authors"
	"github.com/alnah/go-bibpage/internal/bibparse"
)

// LoadOptions controls how records are annotated.
type LoadOptions struct {
	// Emphasize lists names wrapped in <b> in display authors. A reordered
	// name is emphasized when it contains one of these.
	Emphasize []string
}

// LoadRecords parses a BibTeX source into records.
// Empty or whitespace-only input yields no records and no error.
func LoadRecords(src string, opts LoadOptions) ([]Record, error) {
	entries, err := bibparse.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseBibliography, err)
	}

	records := make([]Record, 0, len(entries))
	for _, e := range entries {
		records = append(records, newRecord(e, opts))
	}
	return records, nil
}

// LoadFile reads and parses a BibTeX file.
func LoadFile(path string, opts LoadOptions) ([]Record, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadBibliography, err)
	}
	return LoadRecords(string(data), opts)
}

func newRecord(e bibparse.Entry, opts LoadOptions) Record {
	r := Record{
		ID:     e.Key,
		Type:   e.Type,
		Fields: e.Fields,
	}
	if r.Fields == nil {
		r.Fields = map[string]string{}
	}

	// Some sources carry the key as a field as well.
	if r.ID == "" {
		if id, ok := e.Get("id"); ok {
			r.ID = id
		}
	}

	if author, ok := e.Get(FieldAuthor); ok {
		r.OriginalAuthor = author
		r.DisplayAuthor = authors.FormatDisplay(author, opts.Emphasize)
	}
	return r
}
