package bibparse

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// accentMarks maps LaTeX accent commands to Unicode combining marks.
var accentMarks = map[string]rune{
	"`":  '\u0300',
	"'":  '\u0301',
	"^":  '\u0302',
	"~":  '\u0303',
	"=":  '\u0304',
	"u":  '\u0306',
	".":  '\u0307',
	"\"": '\u0308',
	"r":  '\u030A',
	"H":  '\u030B',
	"v":  '\u030C',
	"d":  '\u0323',
	"c":  '\u0327',
	"k":  '\u0328',
	"b":  '\u0331',
}

// symbols maps argument-less LaTeX commands to their characters.
var symbols = map[string]string{
	"ss": "ß",
	"o":  "ø",
	"O":  "Ø",
	"aa": "å",
	"AA": "Å",
	"ae": "æ",
	"AE": "Æ",
	"oe": "œ",
	"OE": "Œ",
	"l":  "ł",
	"L":  "Ł",
	"i":  "ı",
	"j":  "ȷ",
}

// escapedChars are characters LaTeX requires a backslash for.
const escapedChars = `&%$#_{}`

// DecodeLaTeX converts LaTeX accent and symbol escapes to Unicode and
// returns the NFC-normalized result. Unknown commands are left untouched.
// A brace group wrapping a single decoded command, as in {\"o}, is removed.
func DecodeLaTeX(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		if s[i] == '{' && i+1 < len(s) && s[i+1] == '\\' {
			if out, n, ok := decodeCommand(s[i+1:]); ok && i+1+n < len(s) && s[i+1+n] == '}' {
				b.WriteString(out)
				i += n + 2
				continue
			}
		}
		if s[i] == '\\' {
			if out, n, ok := decodeCommand(s[i:]); ok {
				b.WriteString(out)
				i += n
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}

	return norm.NFC.String(b.String())
}

// decodeCommand decodes one command at the start of s (which begins with a
// backslash). It returns the replacement, the number of bytes consumed and
// whether s started with a known command.
func decodeCommand(s string) (string, int, bool) {
	if len(s) < 2 || s[0] != '\\' {
		return "", 0, false
	}

	// \& \% \$ \# \_ \{ \}
	if strings.IndexByte(escapedChars, s[1]) >= 0 {
		return s[1:2], 2, true
	}

	// Punctuation accents take their argument immediately: \"o, \'{e}
	if mark, ok := accentMarks[s[1:2]]; ok && !isLetter(s[1]) {
		base, n, ok := accentArgument(s[2:], false)
		if !ok {
			return "", 0, false
		}
		return base + string(mark), 2 + n, true
	}

	name := commandName(s[1:])
	if name == "" {
		return "", 0, false
	}
	rest := s[1+len(name):]

	// Letter accents need a separator: \c{c}, \c c, \v{s}
	if mark, ok := accentMarks[name]; ok && rest != "" && (rest[0] == '{' || rest[0] == ' ') {
		base, n, ok := accentArgument(rest, true)
		if ok {
			return base + string(mark), 1 + len(name) + n, true
		}
	}

	if sym, ok := symbols[name]; ok {
		n := 1 + len(name)
		switch {
		case strings.HasPrefix(rest, "{}"):
			n += 2
		case strings.HasPrefix(rest, " "):
			n++
		}
		return sym, n, true
	}

	return "", 0, false
}

// accentArgument reads the character an accent applies to: a braced group
// ({o}, {\i}) or a single character. Letter accents allow one leading space.
func accentArgument(s string, allowSpace bool) (string, int, bool) {
	skip := 0
	if allowSpace && strings.HasPrefix(s, " ") {
		skip = 1
		s = s[1:]
	}
	if s == "" {
		return "", 0, false
	}

	if s[0] == '{' {
		end := strings.IndexByte(s, '}')
		if end < 0 {
			return "", 0, false
		}
		inner := s[1:end]
		if inner == "" {
			return "", 0, false
		}
		return dotlessBase(inner), skip + end + 1, true
	}

	if s[0] == '\\' {
		name := commandName(s[1:])
		if name == "i" || name == "j" {
			n := skip + 1 + len(name)
			if strings.HasPrefix(s[1+len(name):], " ") {
				n++
			}
			return name, n, true
		}
		return "", 0, false
	}

	r := []rune(s)[0]
	return string(r), skip + len(string(r)), true
}

// dotlessBase maps \i and \j to plain i and j so that NFC can compose the
// accented letter.
func dotlessBase(s string) string {
	switch s {
	case `\i`:
		return "i"
	case `\j`:
		return "j"
	}
	return s
}

func commandName(s string) string {
	n := 0
	for n < len(s) && isLetter(s[n]) {
		n++
	}
	return s[:n]
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}
