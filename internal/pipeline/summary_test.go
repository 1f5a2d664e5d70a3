package pipeline

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSummary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fragment string
		max      int
		want     string
	}{
		{
			name:     "tags stripped and whitespace collapsed",
			fragment: "<p>I am an <a href=\"#\">ML</a>\n   research <em>scientist</em>.</p>",
			max:      0,
			want:     "I am an ML research scientist.",
		},
		{
			name:     "entities decoded",
			fragment: "<p>Z&uuml;rich &amp; Vienna</p>",
			max:      0,
			want:     "Zürich & Vienna",
		},
		{
			name:     "paragraphs joined with a space",
			fragment: "<p>one</p><p>two</p>",
			max:      0,
			want:     "one two",
		},
		{
			name:     "code blocks and scripts skipped",
			fragment: "<p>intro</p><pre><code>x := 1</code></pre><script>var a</script><p>outro</p>",
			max:      0,
			want:     "intro outro",
		},
		{
			name:     "inline markup keeps punctuation attached",
			fragment: "<p>I work on <strong>vision</strong>, <mark>mostly</mark>.</p>",
			max:      0,
			want:     "I work on vision, mostly.",
		},
		{
			name:     "line break separates words",
			fragment: "<p>one<br>two</p>",
			max:      0,
			want:     "one two",
		},
		{
			name:     "short text untouched",
			fragment: "<p>short</p>",
			max:      160,
			want:     "short",
		},
		{
			name:     "truncated on word boundary",
			fragment: "<p>alpha beta gamma delta</p>",
			max:      14,
			want:     "alpha beta…",
		},
		{
			name:     "empty fragment",
			fragment: "",
			max:      160,
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Summary(tt.fragment, tt.max); got != tt.want {
				t.Errorf("Summary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSummary_RespectsRuneLimit(t *testing.T) {
	t.Parallel()

	fragment := "<p>" + strings.Repeat("Zürich ", 60) + "</p>"
	got := Summary(fragment, DescriptionLength)

	if n := utf8.RuneCountInString(got); n > DescriptionLength {
		t.Errorf("Summary() has %d runes, want at most %d", n, DescriptionLength)
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("Summary() = %q, want trailing ellipsis", got)
	}
}
