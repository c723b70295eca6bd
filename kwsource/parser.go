package kwsource

import (
	"regexp"
	"strings"

	"github.com/fbkeywords/reservedwords/kwspec"
)

// Entry is a keyword as it appears in a source line.
type Entry struct {
	Word     string
	Reserved bool
}

// Parser extracts at most one keyword from a line of source text.
// Implementations are stateless.
type Parser interface {
	Parse(line string) (Entry, bool)
}

// Grammar identifies the layout of the keyword table in keywords.cpp.
type Grammar uint8

// Enum values for Grammar.
const (
	// GrammarFirebird15 is used up to Firebird 1.5:
	//	{BASENAME, "BASE_NAME", 1},
	GrammarFirebird15 Grammar = iota + 1
	// GrammarFirebird20 is used from Firebird 2.0 up to 3.0. The last
	// column flags non-reserved words:
	//	{ABS, "ABS", 2, false},
	GrammarFirebird20
	// GrammarFirebird40 is used from Firebird 4.0:
	//	{TOK_ABS, "ABS", true},
	GrammarFirebird40
)

var (
	firebird15 = kwspec.MustParseFirebirdVersion("1.5")
	firebird40 = kwspec.MustParseFirebirdVersion("4.0")
)

// GrammarFor returns the keyword table layout of a Firebird release.
func GrammarFor(version kwspec.FirebirdVersion) Grammar {
	switch {
	case version <= firebird15:
		return GrammarFirebird15
	case version >= firebird40:
		return GrammarFirebird40
	default:
		return GrammarFirebird20
	}
}

func (g Grammar) String() string {
	switch g {
	case GrammarFirebird15:
		return "firebird-1.5"
	case GrammarFirebird20:
		return "firebird-2.0"
	case GrammarFirebird40:
		return "firebird-4.0"
	default:
		return "unknown"
	}
}

// Parser returns the line parser for the grammar.
func (g Grammar) Parser() Parser {
	switch g {
	case GrammarFirebird15:
		return reservedOnlyParser{}
	case GrammarFirebird20:
		return flaggedParser{pattern: firebird20Pattern}
	default:
		return flaggedParser{pattern: firebird40Pattern}
	}
}

// Whitespace before the closing brace is accepted in every layout.
var (
	firebird15Pattern = regexp.MustCompile(`\{[^,]+,\s*"([^"]+)",\s*[12]\s*\}`)
	firebird20Pattern = regexp.MustCompile(`\{[^,]+,\s*"([^"]+)",\s*[12],\s*(\w+)\s*\}`)
	firebird40Pattern = regexp.MustCompile(`\{[^,]+,\s*"([^"]+)",\s*(true|false)\s*\}`)
)

// reservedOnlyParser matches tables without a reservation column; every
// listed word is reserved.
type reservedOnlyParser struct{}

func (reservedOnlyParser) Parse(line string) (Entry, bool) {
	m := firebird15Pattern.FindStringSubmatch(line)
	if m == nil {
		return Entry{}, false
	}
	return Entry{Word: m[1], Reserved: true}, true
}

// flaggedParser matches tables whose second group is a "non-reserved" flag.
type flaggedParser struct {
	pattern *regexp.Regexp
}

func (p flaggedParser) Parse(line string) (Entry, bool) {
	m := p.pattern.FindStringSubmatch(line)
	if m == nil {
		return Entry{}, false
	}
	nonReserved := strings.EqualFold(m[2], "true")
	return Entry{Word: m[1], Reserved: !nonReserved}, true
}
