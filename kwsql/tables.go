package kwsql

import (
	"fmt"

	"github.com/fbkeywords/reservedwords/kwspec"
)

// table describes one of the keyword tables. Both share the columns WORD and
// RESERVED and differ in the type of their version column.
type table struct {
	name          string
	versionColumn string
	versionType   string
	versionParam  func(Param) bool
}

var sqlKeywordTable = table{
	name:          "SQL_KEYWORD",
	versionColumn: "SQL_VERSION",
	versionType:   "SMALLINT",
	versionParam: func(p Param) bool {
		return p.Kind == ParamSmallint
	},
}

var fbKeywordTable = table{
	name:          "FB_KEYWORD",
	versionColumn: "FB_VERSION",
	versionType:   "NUMERIC(2,1)",
	versionParam: func(p Param) bool {
		return p.Kind == ParamNumeric && p.Scale == 1
	},
}

// mergeQuery inserts a keyword or updates its RESERVED flag when it differs.
// Identical rows are left untouched and report no affected rows.
func (t table) mergeQuery() string {
	return fmt.Sprintf(`INSERT INTO %[1]s (WORD, %[2]s, RESERVED)
VALUES (CAST(? AS VARCHAR(%[4]d)), CAST(? AS %[3]s), CAST(? AS BOOLEAN))
ON CONFLICT (WORD, %[2]s) DO UPDATE SET RESERVED = excluded.RESERVED
WHERE %[1]s.RESERVED IS NOT excluded.RESERVED`,
		t.name, t.versionColumn, t.versionType, kwspec.MaxWordLength)
}

func (t table) deleteQuery() string {
	return fmt.Sprintf("DELETE FROM %s WHERE WORD = ? AND %s = CAST(? AS %s)",
		t.name, t.versionColumn, t.versionType)
}

func (t table) clearQuery() string {
	return fmt.Sprintf("DELETE FROM %s WHERE %s = CAST(? AS %s)",
		t.name, t.versionColumn, t.versionType)
}

func (t table) selectQuery() string {
	return fmt.Sprintf("SELECT WORD, %[2]s, RESERVED FROM %[1]s WHERE %[2]s = CAST(? AS %[3]s) ORDER BY WORD",
		t.name, t.versionColumn, t.versionType)
}

// checkMergeShape verifies that query binds a word of at least
// kwspec.MaxWordLength characters, a version of the table's version type and
// a boolean, in that order.
func (t table) checkMergeShape(query string) error {
	params := DescribeParams(query)
	if len(params) != 3 {
		return &StatementShapeError{
			Query:  query,
			Reason: fmt.Sprintf("expected 3 parameters, found %d", len(params)),
		}
	}
	if w := params[0]; (w.Kind != ParamVarchar && w.Kind != ParamChar) || w.Precision < kwspec.MaxWordLength {
		return &StatementShapeError{
			Query:  query,
			Param:  1,
			Reason: fmt.Sprintf("expected VARCHAR(%d) or larger, found %s(%d)", kwspec.MaxWordLength, w.Kind, w.Precision),
		}
	}
	if !t.versionParam(params[1]) {
		return &StatementShapeError{
			Query:  query,
			Param:  2,
			Reason: fmt.Sprintf("expected %s, found %s", t.versionType, params[1].Kind),
		}
	}
	if params[2].Kind != ParamBoolean {
		return &StatementShapeError{
			Query:  query,
			Param:  3,
			Reason: fmt.Sprintf("expected BOOLEAN, found %s", params[2].Kind),
		}
	}
	return nil
}
