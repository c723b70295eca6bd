package kwsource

import (
	"bufio"
	"fmt"
	"iter"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

const maxLineLength = 1 << 20

// Lines yields the lines of the file at path without line terminators.
func Lines(path string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		f, err := os.Open(path)
		if err != nil {
			yield("", fmt.Errorf("opening keywords file: %w", err))
			return
		}
		defer f.Close()

		s := bufio.NewScanner(charmap.ISO8859_1.NewDecoder().Reader(f))
		s.Buffer(make([]byte, 0, 4096), maxLineLength)
		for s.Scan() {
			if !yield(s.Text(), nil) {
				return
			}
		}
		if err := s.Err(); err != nil {
			yield("", fmt.Errorf("reading keywords file %s: %w", path, err))
		}
	}
}

// Words yields the keywords of a word list: one keyword per line, surrounding
// whitespace removed, blank lines and lines starting with '#' ignored.
func Words(path string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for line, err := range Lines(path) {
			if err != nil {
				yield("", err)
				return
			}
			word, ok := wordOf(line)
			if !ok {
				continue
			}
			if !yield(word, nil) {
				return
			}
		}
	}
}

func wordOf(line string) (string, bool) {
	word := strings.TrimSpace(line)
	if word == "" || strings.HasPrefix(word, "#") {
		return "", false
	}
	return word, true
}
