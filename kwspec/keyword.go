// Package kwspec defines the keyword records stored in the reserved-word
// reference tables and the two version types they are tagged with.
//
// A [SQLKeyword] is tagged with the year of a SQL standard revision (e.g.
// 2003), a [FirebirdKeyword] with a Firebird release (e.g. 4.0). Both are
// plain values: they are built once per source line and consumed by a single
// merge.
package kwspec

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"unicode/utf8"
)

// MaxWordLength is the width of the WORD column of both keyword tables.
const MaxWordLength = 50

// Version is the constraint satisfied by the version types a keyword can be
// tagged with. Versions bind directly as statement arguments.
type Version interface {
	comparable
	fmt.Stringer
	driver.Valuer
}

// Keyword is a single keyword of a language version.
type Keyword[V Version] struct {
	Word     string
	Version  V
	Reserved bool
}

// SQLKeyword is a keyword of a SQL standard revision.
type SQLKeyword = Keyword[SQLVersion]

// FirebirdKeyword is a keyword of a Firebird release.
type FirebirdKeyword = Keyword[FirebirdVersion]

func (k Keyword[V]) String() string {
	kind := "non-reserved"
	if k.Reserved {
		kind = "reserved"
	}
	return fmt.Sprintf("%s (%s, %s)", k.Word, k.Version, kind)
}

// Of pairs a word with a version and reservation flag.
func Of[V Version](word string, version V, reserved bool) Keyword[V] {
	return Keyword[V]{Word: word, Version: version, Reserved: reserved}
}

// CheckWord returns an error if word cannot be stored in a keyword table.
func CheckWord(word string) error {
	if word == "" {
		return errors.New("empty keyword")
	}
	if n := utf8.RuneCountInString(word); n > MaxWordLength {
		return fmt.Errorf("keyword %q has %d characters, maximum is %d", word, n, MaxWordLength)
	}
	return nil
}
