package kwsource

import (
	"errors"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/fbkeywords/reservedwords/kwspec"
)

func collect[T any](t *testing.T, seq iter.Seq2[T, error]) []T {
	t.Helper()
	var out []T
	for v, err := range seq {
		if err != nil {
			t.Fatal(err)
		}
		out = append(out, v)
	}
	return out
}

func TestWords(t *testing.T) {
	got := collect(t, Words("testdata/words.txt"))
	want := []string{"A", "ABSOLUTE", "ACTION", "ADA"}
	if !slices.Equal(got, want) {
		t.Errorf("Words() = %q, want %q", got, want)
	}
}

func TestWordList(t *testing.T) {
	got := collect(t, WordList("testdata/words.txt", kwspec.SQLVersion(2003), false))
	if len(got) != 4 {
		t.Fatalf("got %d keywords, want 4", len(got))
	}
	for _, kw := range got {
		if kw.Version != 2003 || kw.Reserved {
			t.Errorf("unexpected keyword %v", kw)
		}
	}
	if got[1].Word != "ABSOLUTE" {
		t.Errorf("second word = %q, want ABSOLUTE", got[1].Word)
	}
}

func TestFirebirdSource(t *testing.T) {
	tests := []struct {
		file    string
		version string
		want    []kwspec.FirebirdKeyword
	}{
		{
			file:    "testdata/keywords15.cpp",
			version: "1.5",
			want: []kwspec.FirebirdKeyword{
				{Word: "!<", Reserved: true},
				{Word: "ACTION", Reserved: true},
				{Word: "ACTIVE", Reserved: true},
				{Word: "BASE_NAME", Reserved: true},
				{Word: "BREAK", Reserved: true},
			},
		},
		{
			file:    "testdata/keywords20.cpp",
			version: "2.5",
			want: []kwspec.FirebirdKeyword{
				{Word: "!<", Reserved: true},
				{Word: "ABS", Reserved: true},
				{Word: "ACCENT", Reserved: false},
				{Word: "ACTION", Reserved: false},
				{Word: "ADD", Reserved: true},
			},
		},
		{
			file:    "testdata/keywords40.cpp",
			version: "4.0",
			want: []kwspec.FirebirdKeyword{
				{Word: "!<", Reserved: true},
				{Word: "ABS", Reserved: false},
				{Word: "ADD", Reserved: true},
				{Word: "ADMIN", Reserved: true},
				{Word: "TIMEZONE_HOUR", Reserved: false},
			},
		},
		{
			// A 2.0 table read with the 1.5 grammar matches nothing.
			file:    "testdata/keywords20.cpp",
			version: "1.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.file+"@"+tt.version, func(t *testing.T) {
			version := kwspec.MustParseFirebirdVersion(tt.version)
			got := collect(t, FirebirdSource(tt.file, version))
			for i := range tt.want {
				tt.want[i].Version = version
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("FirebirdSource() =\n%v\nwant\n%v", got, tt.want)
			}
		})
	}
}

func TestLinesMissingFile(t *testing.T) {
	var calls int
	for _, err := range Lines(filepath.Join(t.TempDir(), "missing.txt")) {
		calls++
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("expected fs.ErrNotExist, got %v", err)
		}
	}
	if calls != 1 {
		t.Errorf("expected a single error, got %d elements", calls)
	}
}

func TestLinesEarlyBreak(t *testing.T) {
	var got []string
	for line, err := range Lines("testdata/words.txt") {
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, line)
		if len(got) == 2 {
			break
		}
	}
	if len(got) != 2 {
		t.Fatalf("got %d lines, want 2", len(got))
	}
}

func TestLinesLatin1(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latin1.txt")
	// "CAFÉ" and "NAÏVE" in ISO-8859-1.
	data := []byte{'C', 'A', 'F', 0xC9, '\n', 'N', 'A', 0xCF, 'V', 'E', '\r', '\n'}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	got := collect(t, Words(path))
	want := []string{"CAFÉ", "NAÏVE"}
	if !slices.Equal(got, want) {
		t.Errorf("Words() = %q, want %q", got, want)
	}
}
