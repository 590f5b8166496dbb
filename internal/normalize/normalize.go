package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// avTagPattern matches audio/video references such as [sound:clip.mp3].
var avTagPattern = regexp.MustCompile(`\[sound:.*?\]`)

// lineBreakPattern matches a run of line-break encodings: the two-character
// escaped newline marker, <br> variants and <div> boundaries.
var lineBreakPattern = regexp.MustCompile(`(?is)(?:\\n|<br\s?/?>|</?div>)+`)

// nbsp is U+00A0 NO-BREAK SPACE.
const nbsp = "\u00a0"

// Expected prepares a reference answer taken from a card field: media
// references are removed, line-break encodings collapse to one space, markup
// tags are stripped, entities are decoded and surrounding whitespace is
// trimmed.
func Expected(text string) string {
	text = StripAVTags(text)
	text = CollapseLineBreaks(text)
	text = StripHTML(text)
	text = DecodeEntities(text)
	return strings.TrimSpace(text)
}

// Unicode returns text in NFC. It is idempotent.
func Unicode(text string) string {
	return norm.NFC.String(text)
}

// Decompose returns text in NFD, separating combining marks from their base.
func Decompose(text string) string {
	return norm.NFD.String(text)
}

// IsCombiningMark reports whether r is in Unicode category M (Mn, Mc or Me).
func IsCombiningMark(r rune) bool {
	return unicode.Is(unicode.M, r)
}

// StripAVTags removes [sound:...] references.
func StripAVTags(text string) string {
	return avTagPattern.ReplaceAllString(text, "")
}

// CollapseLineBreaks replaces each run of line-break encodings with a single
// space. A \n marker whose backslash is itself escaped (\\n) is not a line
// break and is kept verbatim.
func CollapseLineBreaks(text string) string {
	var sb strings.Builder
	pos := 0
	for pos < len(text) {
		loc := lineBreakPattern.FindStringIndex(text[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		if IsEscapedMarker(text, start) {
			sb.WriteString(text[pos : start+2])
			pos = start + 2
			continue
		}
		sb.WriteString(text[pos:start])
		sb.WriteByte(' ')
		pos = end
	}
	sb.WriteString(text[pos:])
	return sb.String()
}

// IsEscapedMarker reports whether text[i:] starts with a \n marker that is
// preceded by another backslash.
func IsEscapedMarker(text string, i int) bool {
	return strings.HasPrefix(text[i:], `\n`) && i > 0 && text[i-1] == '\\'
}

// IsNewlineMarker reports whether text[i:] starts with an unescaped \n marker.
func IsNewlineMarker(text string, i int) bool {
	return strings.HasPrefix(text[i:], `\n`) && !IsEscapedMarker(text, i)
}

// StripHTML removes markup tags and comments while keeping text content
// byte-for-byte, entities included. A '<' that never closes, such as the
// one in "i<n", is not a tag: the rest of the input is kept as text.
func StripHTML(text string) string {
	if !strings.Contains(text, "<") {
		return text
	}

	var sb strings.Builder
	consumed := 0
	z := html.NewTokenizer(strings.NewReader(text))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if consumed < len(text) {
				sb.WriteString(text[consumed:])
			}
			return sb.String()
		}
		raw := z.Raw()
		consumed += len(raw)
		if tt == html.TextToken {
			sb.Write(raw)
		}
	}
}

// DecodeEntities turns HTML entities into the characters they stand for.
// Non-breaking spaces become plain spaces.
func DecodeEntities(text string) string {
	if strings.Contains(text, "&") {
		text = html.UnescapeString(text)
	}
	return strings.ReplaceAll(text, nbsp, " ")
}
