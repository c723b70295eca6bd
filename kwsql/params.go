package kwsql

import (
	"regexp"
	"strconv"
	"strings"
)

// ParamKind is the declared SQL type of a statement parameter.
type ParamKind uint8

// Enum values for ParamKind.
const (
	ParamUnknown ParamKind = iota
	ParamVarchar
	ParamChar
	ParamSmallint
	ParamInteger
	ParamBigint
	ParamNumeric
	ParamBoolean
)

var paramKinds = map[string]ParamKind{
	"VARCHAR":   ParamVarchar,
	"CHAR":      ParamChar,
	"CHARACTER": ParamChar,
	"SMALLINT":  ParamSmallint,
	"INT":       ParamInteger,
	"INTEGER":   ParamInteger,
	"BIGINT":    ParamBigint,
	"NUMERIC":   ParamNumeric,
	"DECIMAL":   ParamNumeric,
	"BOOLEAN":   ParamBoolean,
}

var paramKindNames = [...]string{
	ParamUnknown:  "UNKNOWN",
	ParamVarchar:  "VARCHAR",
	ParamChar:     "CHAR",
	ParamSmallint: "SMALLINT",
	ParamInteger:  "INTEGER",
	ParamBigint:   "BIGINT",
	ParamNumeric:  "NUMERIC",
	ParamBoolean:  "BOOLEAN",
}

func (k ParamKind) String() string {
	if int(k) < len(paramKindNames) {
		return paramKindNames[k]
	}
	return "UNKNOWN"
}

// Param describes one positional parameter of a statement.
type Param struct {
	Kind      ParamKind
	Precision int // length of character types, digits of numeric types
	Scale     int
}

// castPattern matches a placeholder with a declared type, e.g.
// CAST(? AS NUMERIC(2,1)).
var castPattern = regexp.MustCompile(`(?i)\bCAST\(\s*\?\s+AS\s+([A-Z]+)\s*(?:\(\s*(\d+)\s*(?:,\s*(\d+)\s*)?\))?\s*\)`)

// DescribeParams returns the parameters of query in positional order. SQLite
// reports no parameter types, so the type of a placeholder is taken from the
// CAST that encloses it; placeholders without one are ParamUnknown.
// Placeholders inside string literals, quoted identifiers and comments are
// ignored.
func DescribeParams(query string) []Param {
	casts := castPattern.FindAllStringSubmatchIndex(query, -1)

	var params []Param
	for _, pos := range placeholders(query) {
		p := Param{}
		for _, m := range casts {
			if pos < m[0] || pos >= m[1] {
				continue
			}
			p.Kind = paramKinds[strings.ToUpper(query[m[2]:m[3]])]
			if m[4] >= 0 {
				p.Precision, _ = strconv.Atoi(query[m[4]:m[5]])
			}
			if m[6] >= 0 {
				p.Scale, _ = strconv.Atoi(query[m[6]:m[7]])
			}
			break
		}
		params = append(params, p)
	}
	return params
}

// placeholders returns the byte offsets of the '?' placeholders in query,
// skipping string literals, quoted identifiers and comments.
func placeholders(query string) []int {
	var out []int
	var quote byte
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case strings.HasPrefix(query[i:], "--"):
			nl := strings.IndexByte(query[i:], '\n')
			if nl < 0 {
				return out
			}
			i += nl
		case strings.HasPrefix(query[i:], "/*"):
			end := strings.Index(query[i+2:], "*/")
			if end < 0 {
				return out
			}
			i += end + 3
		case c == '?':
			out = append(out, i)
		}
	}
	return out
}
