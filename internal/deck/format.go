package deck

import "strings"

// languageLabels maps codeLanguage values to display names. Unknown values
// fall back to the uppercased identifier rather than an error; a deck author
// typo should never break rendering.
var languageLabels = map[string]string{
	"go":         "Go",
	"csharp":     "C#",
	"c":          "C",
	"cpp":        "C++",
	"java":       "Java",
	"javascript": "JavaScript",
	"typescript": "TypeScript",
	"python":     "Python",
	"rust":       "Rust",
	"sql":        "SQL",
	"bash":       "Shell",
	"shell":      "Shell",
	"json":       "JSON",
	"yaml":       "YAML",
}

// LanguageLabel returns the human label for a codeLanguage value.
// Empty input yields the generic "Code".
func LanguageLabel(lang string) string {
	if lang == "" {
		return "Code"
	}
	if label, ok := languageLabels[strings.ToLower(lang)]; ok {
		return label
	}
	return strings.ToUpper(lang)
}

// Segment is a run of question text that is either plain prose or an inline
// code span.
type Segment struct {
	Text string
	Code bool
}

// SplitInline splits question text on backtick pairs into prose and inline
// code segments, in source order. An unbalanced trailing backtick run is
// treated as prose. Empty runs, such as between adjacent backticks, are
// dropped.
func SplitInline(s string) []Segment {
	parts := strings.Split(s, "`")
	segs := make([]Segment, 0, len(parts))
	for i, p := range parts {
		if p == "" {
			continue
		}
		code := i%2 == 1
		if code && i == len(parts)-1 {
			// Odd part count means the final backtick was never closed.
			code = false
		}
		segs = append(segs, Segment{Text: p, Code: code})
	}
	return segs
}
