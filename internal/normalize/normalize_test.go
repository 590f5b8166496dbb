package normalize

import (
	"testing"
)

func TestExpected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text is only trimmed",
			input: "  print(x)  ",
			want:  "print(x)",
		},
		{
			name:  "sound references are removed",
			input: "hola[sound:hola.mp3]",
			want:  "hola",
		},
		{
			name:  "several sound references are removed independently",
			input: "[sound:a.mp3]x[sound:b.mp3]y",
			want:  "xy",
		},
		{
			name:  "br variants collapse to a space",
			input: "a<br>b<br/>c<br />d<BR>e",
			want:  "a b c d e",
		},
		{
			name:  "a run of breaks collapses to a single space",
			input: "a<br><br><div>b</div>",
			want:  "a b",
		},
		{
			name:  "escaped newline markers collapse",
			input: `x = 1\ny = 2`,
			want:  "x = 1 y = 2",
		},
		{
			name:  "double backslash newline is kept",
			input: `print("\\n")`,
			want:  `print("\\n")`,
		},
		{
			name:  "remaining tags are stripped",
			input: "<b>bold</b> and <i>italic</i>",
			want:  "bold and italic",
		},
		{
			name:  "entities are decoded",
			input: "a &lt; b &amp;&amp; c&nbsp;&gt; d",
			want:  "a < b && c > d",
		},
		{
			name:  "comparison operators without markup survive",
			input: "if a < b:",
			want:  "if a < b:",
		},
		{
			name:  "unterminated less-than keeps the rest of the answer",
			input: "for (i=0;i<n;i++) {}",
			want:  "for (i=0;i<n;i++) {}",
		},
		{
			name:  "less-than before a letter is not a tag",
			input: "if a<b: return a",
			want:  "if a<b: return a",
		},
		{
			name:  "empty input stays empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Expected(tt.input); got != tt.want {
				t.Errorf("Expected(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExpectedNeverPanicsOnMalformedMarkup(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"<",
		"<<>>",
		"<div",
		"</",
		"<b>unclosed",
		"&",
		"&#xZZ;",
		"[sound:",
		`\`,
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			_ = Expected(input)
		})
	}
}

func TestUnicode(t *testing.T) {
	t.Parallel()

	t.Run("composes base and combining mark", func(t *testing.T) {
		t.Parallel()
		if got := Unicode("e\u0301"); got != "\u00e9" {
			t.Errorf("Unicode(e+acute) = %q, want %q", got, "\u00e9")
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()
		inputs := []string{
			"",
			"ascii",
			"e\u0301",
			"\u00e9",
			"a\u0308\u0301",
			"\u0301leading mark",
			"\ufb01 ligature",
			"\ud55c\uad6d\uc5b4",
			"\u1100\u1161",
		}
		for _, s := range inputs {
			once := Unicode(s)
			if twice := Unicode(once); twice != once {
				t.Errorf("Unicode not idempotent for %q: %q != %q", s, twice, once)
			}
		}
	})
}

func FuzzUnicodeIdempotent(f *testing.F) {
	f.Add("e\u0301")
	f.Add("plain")
	f.Add("\u0301\u0301")
	f.Fuzz(func(t *testing.T, s string) {
		once := Unicode(s)
		if twice := Unicode(once); twice != once {
			t.Errorf("Unicode not idempotent for %q", s)
		}
	})
}

func TestDecompose(t *testing.T) {
	t.Parallel()

	got := []rune(Decompose("\u00e9"))
	if len(got) != 2 || got[0] != 'e' || got[1] != '\u0301' {
		t.Errorf("Decompose(\u00e9) = %q, want e + U+0301", string(got))
	}
}

func TestIsCombiningMark(t *testing.T) {
	t.Parallel()

	tests := []struct {
		r    rune
		want bool
	}{
		{'\u0301', true}, // combining acute accent (Mn)
		{'\u0903', true}, // devanagari visarga (Mc)
		{'\u20dd', true}, // combining enclosing circle (Me)
		{'e', false},
		{'\u00e9', false},
		{' ', false},
		{'-', false},
	}

	for _, tt := range tests {
		if got := IsCombiningMark(tt.r); got != tt.want {
			t.Errorf("IsCombiningMark(%U) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestIsNewlineMarker(t *testing.T) {
	t.Parallel()

	text := `a\nb\\nc`
	if !IsNewlineMarker(text, 1) {
		t.Error("expected marker at index 1")
	}
	if IsNewlineMarker(text, 5) {
		t.Error("expected escaped marker at index 5 to be rejected")
	}
	if IsNewlineMarker(text, 0) {
		t.Error("expected no marker at index 0")
	}
}

func TestStripHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"no markup", "no markup"},
		{"<pre>code</pre>", "code"},
		{"a<!-- note -->b", "ab"},
		{"<span class=\"x\">&lt;tag&gt;</span>", "&lt;tag&gt;"},
		{"x < y", "x < y"},
		{"for (i=0;i<n;i++) {}", "for (i=0;i<n;i++) {}"},
		{"if a<b: return a", "if a<b: return a"},
		{"<b>x</b> if a<b", "x if a<b"},
	}

	for _, tt := range tests {
		if got := StripHTML(tt.input); got != tt.want {
			t.Errorf("StripHTML(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
