// Package bibparse reads BibTeX sources into flat, ordered entries.
//
// Tokenizing and grammar are delegated to github.com/nickng/bibtex. This
// package only normalizes what comes out of it: entry types and field names
// are lowercased, whitespace runs are collapsed, and LaTeX escapes are
// decoded to Unicode.
package bibparse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nickng/bibtex"
)

// ErrSyntax indicates the source is not valid BibTeX.
var ErrSyntax = errors.New("invalid BibTeX syntax")

// Entry is one parsed BibTeX entry.
type Entry struct {
	Type   string            // lowercased entry kind, e.g. "article"
	Key    string            // citation key
	Fields map[string]string // lowercased field name -> decoded value
}

// Get returns the value of a field and whether it was present.
func (e Entry) Get(name string) (string, bool) {
	v, ok := e.Fields[strings.ToLower(name)]
	return v, ok
}

// Parse parses a BibTeX source. Entries are returned in source order.
// Text outside entries is ignored, as BibTeX does. A source without
// entries yields no entries and no error.
func Parse(src string) (entries []Entry, err error) {
	src = entriesOnly(src)
	if strings.TrimSpace(src) == "" {
		return nil, nil
	}

	// The generated parser panics on a few malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			entries = nil
			err = fmt.Errorf("%w: %v", ErrSyntax, r)
		}
	}()

	bib, err := bibtex.Parse(strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	entries = make([]Entry, 0, len(bib.Entries))
	for _, be := range bib.Entries {
		if be == nil {
			continue
		}
		entries = append(entries, convertEntry(be))
	}
	return entries, nil
}

func convertEntry(be *bibtex.BibEntry) Entry {
	e := Entry{
		Type:   strings.ToLower(strings.TrimSpace(be.Type)),
		Key:    strings.TrimSpace(be.CiteName),
		Fields: make(map[string]string, len(be.Fields)),
	}
	for name, value := range be.Fields {
		if value == nil {
			continue
		}
		e.Fields[strings.ToLower(strings.TrimSpace(name))] = DecodeLaTeX(collapseSpace(value.String()))
	}
	return e
}

// collapseSpace folds newlines and runs of blanks into single spaces,
// which is how BibTeX itself treats whitespace inside field values.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// entriesOnly drops the text between entries, which BibTeX ignores but the
// generated parser does not: a % line there hides every following entry
// and free text is a syntax error. Entries delimited by parentheses are
// rewritten with braces, the only form the parser accepts. Newlines are
// kept so parse errors still point at the right line.
func entriesOnly(src string) string {
	var b strings.Builder
	b.Grow(len(src))

	for i := 0; i < len(src); {
		if src[i] != '@' {
			if src[i] == '\n' {
				b.WriteByte('\n')
			}
			i++
			continue
		}

		open, end, ok := entryBounds(src, i)
		if !ok {
			// Not an entry header, e.g. an address in a comment.
			i++
			continue
		}
		if src[open] == '(' && src[end-1] == ')' {
			b.WriteString(src[i:open])
			b.WriteByte('{')
			b.WriteString(src[open+1 : end-1])
			b.WriteByte('}')
		} else {
			b.WriteString(src[i:end])
		}
		i = end
	}
	return b.String()
}

// entryBounds locates the entry starting at the '@' at start: open is the
// index of its opening delimiter and end the index just past the closing
// one. ok is false when no "@type{" or "@type(" header follows. An
// unterminated entry runs to the end of src so the parser reports it.
func entryBounds(src string, start int) (open, end int, ok bool) {
	i := start + 1
	for i < len(src) && isLetter(src[i]) {
		i++
	}
	if i == start+1 {
		return 0, 0, false
	}
	for i < len(src) && (src[i] == ' ' || src[i] == '\t') {
		i++
	}
	if i >= len(src) || (src[i] != '{' && src[i] != '(') {
		return 0, 0, false
	}
	open = i
	parens := src[open] == '('

	depth := 0
	for ; i < len(src); i++ {
		switch src[i] {
		case '{':
			depth++
		case '}':
			depth--
			if !parens && depth == 0 {
				return open, i + 1, true
			}
		case ')':
			if parens && depth == 0 {
				return open, i + 1, true
			}
		}
	}
	return open, len(src), true
}
