package language

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// Tag identifies a supported language.
type Tag string

// Supported language tags.
const (
	Python     Tag = "python"
	JavaScript Tag = "javascript"
	TypeScript Tag = "typescript"
	Java       Tag = "java"
	Cpp        Tag = "cpp"
	CSharp     Tag = "csharp"
	// None disables comment stripping.
	None Tag = "none"
	// Invalid is returned by Resolve for input that matches no alias.
	// It is never a valid setting on its own.
	Invalid Tag = "invalid"
)

// aliases maps lower-cased user input to a tag.
var aliases = map[string]Tag{
	"py":         Python,
	"python":     Python,
	"js":         JavaScript,
	"javascript": JavaScript,
	"ts":         TypeScript,
	"typescript": TypeScript,
	"java":       Java,
	"cpp":        Cpp,
	"c++":        Cpp,
	"c#":         CSharp,
	"csharp":     CSharp,
	"none":       None,
}

// Resolve maps free-form input to a Tag. Surrounding whitespace and letter
// case are ignored. Unknown input returns Invalid.
func Resolve(input string) Tag {
	key := cases.Fold().String(strings.TrimSpace(input))
	if tag, ok := aliases[key]; ok {
		return tag
	}
	return Invalid
}

// String returns the tag name.
func (t Tag) String() string {
	return string(t)
}

// IsValid reports whether t is one of the supported tags (None included).
func (t Tag) IsValid() bool {
	switch t {
	case Python, JavaScript, TypeScript, Java, Cpp, CSharp, None:
		return true
	default:
		return false
	}
}

// Supported returns every valid tag, None last.
func Supported() []Tag {
	return []Tag{Python, JavaScript, TypeScript, Java, Cpp, CSharp, None}
}

// Aliases returns the sorted inputs that resolve to t.
func Aliases(t Tag) []string {
	var out []string
	for alias, tag := range aliases {
		if tag == t {
			out = append(out, alias)
		}
	}
	sort.Strings(out)
	return out
}
