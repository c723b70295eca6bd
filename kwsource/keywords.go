package kwsource

import (
	"iter"

	"github.com/fbkeywords/reservedwords/kwspec"
)

// WordList yields the words of a word list as keywords of version, each
// marked with the given reservation flag.
func WordList[V kwspec.Version](path string, version V, reserved bool) iter.Seq2[kwspec.Keyword[V], error] {
	return func(yield func(kwspec.Keyword[V], error) bool) {
		for word, err := range Words(path) {
			if err != nil {
				yield(kwspec.Keyword[V]{}, err)
				return
			}
			if !yield(kwspec.Of(word, version, reserved), nil) {
				return
			}
		}
	}
}

// FirebirdSource yields the keywords listed in a Firebird keywords.cpp file,
// parsed with the grammar of the given release.
func FirebirdSource(path string, version kwspec.FirebirdVersion) iter.Seq2[kwspec.FirebirdKeyword, error] {
	return Parse(path, version, GrammarFor(version).Parser())
}

// Parse yields one keyword of version for every line of the file at path
// that p recognizes.
func Parse[V kwspec.Version](path string, version V, p Parser) iter.Seq2[kwspec.Keyword[V], error] {
	return func(yield func(kwspec.Keyword[V], error) bool) {
		for line, err := range Lines(path) {
			if err != nil {
				yield(kwspec.Keyword[V]{}, err)
				return
			}
			e, ok := p.Parse(line)
			if !ok {
				continue
			}
			if !yield(kwspec.Of(e.Word, version, e.Reserved), nil) {
				return
			}
		}
	}
}
