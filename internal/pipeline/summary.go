package pipeline

import (
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// DescriptionLength is the rune limit search engines display for
// <meta name="description">.
const DescriptionLength = 160

// ellipsis ends a truncated summary.
const ellipsis = "…"

// Summary returns the visible text of an HTML fragment with whitespace
// collapsed, cut to at most maxRunes runes on a word boundary when possible.
// Text inside <script>, <style> and <pre> is skipped. A maxRunes of zero or
// less means no limit.
func Summary(fragment string, maxRunes int) string {
	z := html.NewTokenizer(strings.NewReader(fragment))

	var text strings.Builder
	skipDepth := 0

	for {
		switch z.Next() {
		case html.ErrorToken:
			if z.Err() != io.EOF {
				return ""
			}
			return truncate(strings.Join(strings.Fields(text.String()), " "), maxRunes)
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if skippedTags[string(name)] {
				skipDepth++
			}
			if !inlineTags[string(name)] {
				text.WriteByte(' ')
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if skippedTags[string(name)] && skipDepth > 0 {
				skipDepth--
			}
			if !inlineTags[string(name)] {
				text.WriteByte(' ')
			}
		case html.TextToken:
			if skipDepth == 0 {
				text.Write(z.Text())
			}
		}
	}
}

// skippedTags hold no visible prose.
var skippedTags = map[string]bool{"script": true, "style": true, "pre": true}

// inlineTags do not separate words. Any other tag does.
var inlineTags = map[string]bool{
	"a": true, "abbr": true, "b": true, "code": true, "del": true, "em": true,
	"i": true, "mark": true, "s": true, "small": true, "span": true,
	"strong": true, "sub": true, "sup": true, "u": true,
}

func truncate(s string, maxRunes int) string {
	if maxRunes <= 0 || utf8.RuneCountInString(s) <= maxRunes {
		return s
	}

	runes := []rune(s)
	cut := string(runes[:maxRunes-1])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,;:.") + ellipsis
}
