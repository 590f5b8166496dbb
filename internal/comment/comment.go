package comment

import (
	"regexp"
	"strings"

	"github.com/nao1215/typediff/internal/language"
	"github.com/nao1215/typediff/internal/normalize"
)

// preCloseTag ends a line comment when answers are embedded in <pre> blocks.
const preCloseTag = "</pre>"

// patternSet describes the comment syntax of one language family.
type patternSet struct {
	// lineMarker starts a comment that runs to the end of the line.
	lineMarker string
	// block matches block comments. It is greedy and spans newlines.
	block *regexp.Regexp
}

var (
	pythonPatterns = patternSet{
		lineMarker: "#",
		block:      regexp.MustCompile(`(?s)'''.*'''|""".*"""`),
	}
	cFamilyPatterns = patternSet{
		lineMarker: "//",
		block:      regexp.MustCompile(`(?s)/\*.*\*/`),
	}
)

// patterns is keyed by language. Tags missing here fall back to python.
var patterns = map[language.Tag]patternSet{
	language.Python:     pythonPatterns,
	language.JavaScript: cFamilyPatterns,
	language.TypeScript: cFamilyPatterns,
	language.Java:       cFamilyPatterns,
	language.Cpp:        cFamilyPatterns,
	language.CSharp:     cFamilyPatterns,
}

// Strip removes line comments and then block comments from text according to
// tag. language.None returns text unchanged. Any other tag without a table of
// its own, language.Invalid included, is stripped with the python table.
func Strip(text string, tag language.Tag) string {
	if tag == language.None {
		return text
	}

	set, ok := patterns[tag]
	if !ok {
		set = pythonPatterns
	}

	text = stripLineComments(text, set.lineMarker)
	return set.block.ReplaceAllString(text, "")
}

// stripLineComments removes every marker-to-end-of-line span. The line
// terminator itself is kept.
func stripLineComments(text, marker string) string {
	if !strings.Contains(text, marker) {
		return text
	}

	var sb strings.Builder
	pos := 0
	for {
		i := strings.Index(text[pos:], marker)
		if i < 0 {
			break
		}
		start := pos + i
		sb.WriteString(text[pos:start])
		pos = lineEnd(text, start+len(marker))
	}
	sb.WriteString(text[pos:])
	return sb.String()
}

// lineEnd returns the index of the first line terminator at or after from:
// a newline, an unescaped \n marker or a closing </pre> tag. It returns
// len(text) when none is found.
func lineEnd(text string, from int) int {
	for i := from; i < len(text); i++ {
		switch {
		case text[i] == '\n':
			return i
		case normalize.IsNewlineMarker(text, i):
			return i
		case strings.HasPrefix(text[i:], preCloseTag):
			return i
		}
	}
	return len(text)
}
