package kwsql

import "strconv"

// Step is a migration step: the statements that advance the schema to
// Version. The statements of a step run in one transaction. A statement that
// is exactly "commit" commits the work so far and continues in a new
// transaction.
type Step struct {
	Version    int
	Statements []string
}

// LatestVersion is the schema version reached by Steps.
const LatestVersion = 3

// Steps are the migration steps of the keyword schema in ascending order.
var Steps = []Step{
	{
		Version: 1,
		Statements: []string{
			`CREATE TABLE DBVERSION (
  -- schema version reached by a completed migration step
  VERSION integer CONSTRAINT PK_DBVERSION PRIMARY KEY,
  -- time the step completed
  MIGRATION_DATE timestamp DEFAULT CURRENT_TIMESTAMP NOT NULL
)`,
			// DBVERSION must be visible before the version row is written.
			"commit",
		},
	},
	{
		Version: 2,
		Statements: []string{
			createSQLKeyword(30),
			createSQLKeywordIndex,
			createFBKeyword(30),
			createFBKeywordIndex,
		},
	},
	{
		// Widens WORD to 50 characters. SQLite cannot change a column type,
		// so both tables are rebuilt.
		Version: 3,
		Statements: []string{
			"ALTER TABLE SQL_KEYWORD RENAME TO SQL_KEYWORD_V2",
			createSQLKeyword(50),
			"INSERT INTO SQL_KEYWORD (WORD, SQL_VERSION, RESERVED) SELECT WORD, SQL_VERSION, RESERVED FROM SQL_KEYWORD_V2",
			"DROP TABLE SQL_KEYWORD_V2",
			createSQLKeywordIndex,
			"ALTER TABLE FB_KEYWORD RENAME TO FB_KEYWORD_V2",
			createFBKeyword(50),
			"INSERT INTO FB_KEYWORD (WORD, FB_VERSION, RESERVED) SELECT WORD, FB_VERSION, RESERVED FROM FB_KEYWORD_V2",
			"DROP TABLE FB_KEYWORD_V2",
			createFBKeywordIndex,
		},
	},
}

func createSQLKeyword(wordLength int) string {
	return `CREATE TABLE SQL_KEYWORD (
  -- keyword as listed in the SQL standard
  WORD varchar(` + strconv.Itoa(wordLength) + `) NOT NULL,
  -- year of the SQL standard revision, e.g. 2003
  SQL_VERSION smallint NOT NULL,
  -- true: reserved keyword, false: non-reserved keyword
  RESERVED boolean NOT NULL,
  CONSTRAINT PK_SQL_KEYWORD PRIMARY KEY (WORD, SQL_VERSION)
)`
}

const createSQLKeywordIndex = "CREATE INDEX IDX_SQL_KEYWORD_VERSION_WORD ON SQL_KEYWORD (SQL_VERSION, WORD)"

func createFBKeyword(wordLength int) string {
	return `CREATE TABLE FB_KEYWORD (
  -- keyword as listed in the Firebird sources
  WORD varchar(` + strconv.Itoa(wordLength) + `) NOT NULL,
  -- Firebird release, e.g. 2.5
  FB_VERSION numeric(2,1) NOT NULL,
  -- true: reserved keyword, false: non-reserved keyword
  RESERVED boolean,
  CONSTRAINT PK_FB_KEYWORD PRIMARY KEY (WORD, FB_VERSION)
)`
}

const createFBKeywordIndex = "CREATE INDEX IDX_FB_KEYWORD_VERSION_WORD ON FB_KEYWORD (FB_VERSION, WORD)"
