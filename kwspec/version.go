package kwspec

import (
	"database/sql/driver"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// SQLVersion identifies a SQL standard revision by year (e.g. 1992, 2003).
// It is stored in a smallint column.
type SQLVersion int16

// ParseSQLVersion parses a positive integer SQL standard version.
func ParseSQLVersion(s string) (SQLVersion, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid SQL version %q: expected an integer such as 2003", s)
	}
	if n <= 0 {
		return 0, fmt.Errorf("invalid SQL version %q: must be positive", s)
	}
	return SQLVersion(n), nil
}

func (v SQLVersion) String() string {
	return strconv.Itoa(int(v))
}

// Value implements [driver.Valuer].
func (v SQLVersion) Value() (driver.Value, error) {
	return int64(v), nil
}

// Scan implements [database/sql.Scanner].
func (v *SQLVersion) Scan(src any) error {
	var n int64
	switch src := src.(type) {
	case int64:
		n = src
	case float64:
		n = int64(src)
	case []byte:
		return v.scanString(string(src))
	case string:
		return v.scanString(src)
	default:
		return fmt.Errorf("cannot scan %T into SQLVersion", src)
	}
	if n < math.MinInt16 || n > math.MaxInt16 {
		return fmt.Errorf("version %d out of range for SQL", n)
	}
	*v = SQLVersion(n)
	return nil
}

func (v *SQLVersion) scanString(s string) error {
	parsed, err := ParseSQLVersion(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// FirebirdVersion is a Firebird release with exactly one fractional digit,
// the shape of a numeric(2,1) column. The value counts tenths, so 4.0 is 40.
// Valid versions range from 0.1 to 9.9.
type FirebirdVersion uint8

// MaxFirebirdVersion is the largest version a numeric(2,1) column holds.
const MaxFirebirdVersion FirebirdVersion = 99

// NewFirebirdVersion returns the version major.minor. Minor must be a
// single digit.
func NewFirebirdVersion(major, minor int) (FirebirdVersion, error) {
	if major < 0 || major > 9 || minor < 0 || minor > 9 {
		return 0, fmt.Errorf("invalid Firebird version %d.%d: expected x.y with single-digit parts", major, minor)
	}
	v := FirebirdVersion(major*10 + minor)
	if v == 0 {
		return 0, fmt.Errorf("invalid Firebird version 0.0")
	}
	return v, nil
}

// ParseFirebirdVersion parses a version written as "x.y" (e.g. "2.5") or "x".
func ParseFirebirdVersion(s string) (FirebirdVersion, error) {
	s = strings.TrimSpace(s)
	majorStr, minorStr, hasMinor := strings.Cut(s, ".")
	if !hasMinor {
		minorStr = "0"
	}
	if len(majorStr) != 1 || len(minorStr) != 1 {
		return 0, fmt.Errorf("invalid Firebird version %q: expected x.y, eg 2.5", s)
	}
	major, err := strconv.Atoi(majorStr)
	if err != nil {
		return 0, fmt.Errorf("invalid Firebird version %q: expected x.y, eg 2.5", s)
	}
	minor, err := strconv.Atoi(minorStr)
	if err != nil {
		return 0, fmt.Errorf("invalid Firebird version %q: expected x.y, eg 2.5", s)
	}
	return NewFirebirdVersion(major, minor)
}

// MustParseFirebirdVersion is like ParseFirebirdVersion but panics on error.
// It is meant for constants.
func MustParseFirebirdVersion(s string) FirebirdVersion {
	v, err := ParseFirebirdVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Major returns the part before the decimal point.
func (v FirebirdVersion) Major() int { return int(v) / 10 }

// Minor returns the fractional digit.
func (v FirebirdVersion) Minor() int { return int(v) % 10 }

func (v FirebirdVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major(), v.Minor())
}

// Value implements [driver.Valuer]. The version binds as a float so the
// store keeps its numeric value.
func (v FirebirdVersion) Value() (driver.Value, error) {
	return float64(v) / 10, nil
}

// Scan implements [database/sql.Scanner]. Stores with numeric affinity may
// return whole versions as integers.
func (v *FirebirdVersion) Scan(src any) error {
	var tenths float64
	switch src := src.(type) {
	case int64:
		tenths = float64(src) * 10
	case float64:
		tenths = math.Round(src * 10)
	case []byte:
		return v.scanString(string(src))
	case string:
		return v.scanString(src)
	default:
		return fmt.Errorf("cannot scan %T into FirebirdVersion", src)
	}
	if tenths < 1 || tenths > float64(MaxFirebirdVersion) {
		return fmt.Errorf("version %.1f out of range for Firebird", tenths/10)
	}
	*v = FirebirdVersion(tenths)
	return nil
}

func (v *FirebirdVersion) scanString(s string) error {
	parsed, err := ParseFirebirdVersion(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
