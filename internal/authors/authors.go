// Package authors rewrites BibTeX author lists for display.
package authors

import "strings"

// Separators used by BibTeX author fields.
const (
	nameSeparator = " and "
	partSeparator = ", "
	listSeparator = ", "
)

// Emphasis markup wrapped around highlighted names.
const (
	emphasisOpen  = "<b>"
	emphasisClose = "</b>"
)

// Split returns the individual names of a BibTeX author field, in order.
func Split(field string) []string {
	if field == "" {
		return nil
	}
	return strings.Split(field, nameSeparator)
}

// Reorder turns "Family, Given" into "Given Family".
// Anything that does not split into exactly two parts is returned unchanged
// and ok is false.
func Reorder(name string) (reordered string, ok bool) {
	parts := strings.Split(name, partSeparator)
	if len(parts) != 2 {
		return name, false
	}
	return parts[1] + " " + parts[0], true
}

// FormatDisplay renders a BibTeX author field for display: names are put in
// first-name-first order, joined by ", ", and reordered names containing one
// of the highlight names are wrapped in <b>. Names that cannot be reordered
// pass through verbatim and are never highlighted.
func FormatDisplay(field string, highlight []string) string {
	names := Split(field)
	formatted := make([]string, 0, len(names))

	for _, name := range names {
		display, ok := Reorder(name)
		if ok && containsAny(display, highlight) {
			display = emphasisOpen + display + emphasisClose
		}
		formatted = append(formatted, display)
	}

	return strings.Join(formatted, listSeparator)
}

func containsAny(s string, names []string) bool {
	for _, n := range names {
		if n != "" && strings.Contains(s, n) {
			return true
		}
	}
	return false
}
