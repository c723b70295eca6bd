package kwgen

import (
	"strings"
	"unicode"
)

// knownAbbreviations maps lowercase abbreviations to their Go-conventional
// uppercase forms.
var knownAbbreviations = map[string]string{
	"sql": "SQL",
	"fb":  "FB",
	"id":  "ID",
	"api": "API",
}

// ToGoName converts a name such as "firebird_4.0_keywords" into an exported
// Go identifier such as "Firebird40Keywords". Separators are '_', '-', '.'
// and spaces; known abbreviations are uppercased.
func ToGoName(name string) string {
	var b strings.Builder
	for _, w := range splitWords(name) {
		if upper, ok := knownAbbreviations[strings.ToLower(w)]; ok {
			b.WriteString(upper)
		} else {
			b.WriteString(capitalize(w))
		}
	}
	return b.String()
}

// DefaultVarName returns the variable name used for the keywords of a
// family and version when none is given.
func DefaultVarName(family Family, version string) string {
	return ToGoName(string(family) + "_" + version + "_keywords")
}

func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || r == '.' || unicode.IsSpace(r)
	})
}

// capitalize returns s with its first rune uppercased and the rest lowercased.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
