// Package importer runs the keyword operations requested on the command line
// against a keyword repository.
package importer

import (
	"context"
	"fmt"
	"iter"
	"log/slog"

	"github.com/fbkeywords/reservedwords/kwsource"
	"github.com/fbkeywords/reservedwords/kwspec"
	"github.com/fbkeywords/reservedwords/kwsql"
)

// Plan lists the operations of one import. Run executes them in the order of
// the fields: clear, source file, non-reserved file, reserved files and
// finally delete files.
type Plan struct {
	// ClearAll deletes every keyword of the version first.
	ClearAll bool
	// SourceFile is a C source file with keyword literals.
	SourceFile string
	// NonReservedFile is a word list merged as non-reserved.
	NonReservedFile string
	// ReservedFiles are word lists merged as reserved.
	ReservedFiles []string
	// DeleteFiles are word lists whose words are deleted.
	DeleteFiles []string
}

// Empty reports whether the plan requests no operation.
func (p Plan) Empty() bool {
	return !p.ClearAll && p.SourceFile == "" && p.NonReservedFile == "" &&
		len(p.ReservedFiles) == 0 && len(p.DeleteFiles) == 0
}

// Store is the part of a keyword repository used by a Loader.
type Store[V kwspec.Version] interface {
	Merge(ctx context.Context, keywords iter.Seq2[kwspec.Keyword[V], error]) (kwsql.MergeResult, error)
	DeleteWords(ctx context.Context, words iter.Seq2[string, error], version V) (int64, error)
	DeleteAll(ctx context.Context, version V) (int64, error)
}

// SourceFunc reads the keywords of version from a source file.
type SourceFunc[V kwspec.Version] func(path string, version V) iter.Seq2[kwspec.Keyword[V], error]

// Loader applies a Plan to the keywords of one version.
type Loader[V kwspec.Version] struct {
	Store   Store[V]
	Version V
	// Family names the keyword family in log messages, e.g. "SQL".
	Family string
	// Source reads SourceFile. A nil Source rejects plans with a source file.
	Source SourceFunc[V]
	Logger *slog.Logger
}

// NewSQL returns a Loader for SQL keywords of version.
func NewSQL(store Store[kwspec.SQLVersion], version kwspec.SQLVersion, logger *slog.Logger) *Loader[kwspec.SQLVersion] {
	return &Loader[kwspec.SQLVersion]{
		Store:   store,
		Version: version,
		Family:  "SQL",
		Logger:  logger,
	}
}

// NewFirebird returns a Loader for Firebird keywords of version that reads
// source files with the grammar of that release.
func NewFirebird(store Store[kwspec.FirebirdVersion], version kwspec.FirebirdVersion, logger *slog.Logger) *Loader[kwspec.FirebirdVersion] {
	return &Loader[kwspec.FirebirdVersion]{
		Store:   store,
		Version: version,
		Family:  "Firebird",
		Source:  kwsource.FirebirdSource,
		Logger:  logger,
	}
}

// Op identifies a single operation of a plan.
type Op string

// Operations in execution order.
const (
	OpClear       Op = "clear"
	OpSource      Op = "source"
	OpNonReserved Op = "non-reserved"
	OpReserved    Op = "reserved"
	OpDelete      Op = "delete"
)

// Outcome is the result of one executed operation.
type Outcome struct {
	Op   Op
	File string // empty for OpClear
	// Read is the number of keywords read from File.
	Read int
	// Rows is the number of rows inserted, updated or deleted.
	Rows int64
}

// Report lists the outcomes of the operations executed by Run.
type Report struct {
	Outcomes []Outcome
}

// Rows returns the number of rows changed by all operations.
func (r Report) Rows() int64 {
	var n int64
	for _, o := range r.Outcomes {
		n += o.Rows
	}
	return n
}

// Run executes plan and stops at the first failing operation. Operations
// completed before the failure stay committed and are listed in the report.
func (l *Loader[V]) Run(ctx context.Context, plan Plan) (Report, error) {
	var report Report
	if plan.SourceFile != "" && l.Source == nil {
		return report, fmt.Errorf("%s keywords cannot be loaded from a source file", l.Family)
	}

	if plan.ClearAll {
		l.logger().Info("Deleting all keywords for version", "version", l.Version.String())
		n, err := l.Store.DeleteAll(ctx, l.Version)
		if err != nil {
			return report, err
		}
		report.Outcomes = append(report.Outcomes, Outcome{Op: OpClear, Rows: n})
	}

	if plan.SourceFile != "" {
		l.logger().Info(fmt.Sprintf("Merging keywords from %s source file", l.Family),
			"version", l.Version.String(), "file", plan.SourceFile)
		if err := l.merge(ctx, &report, OpSource, plan.SourceFile, l.Source(plan.SourceFile, l.Version)); err != nil {
			return report, err
		}
	}

	if plan.NonReservedFile != "" {
		if err := l.mergeWordList(ctx, &report, plan.NonReservedFile, false); err != nil {
			return report, err
		}
	}

	for _, path := range plan.ReservedFiles {
		if err := l.mergeWordList(ctx, &report, path, true); err != nil {
			return report, err
		}
	}

	for _, path := range plan.DeleteFiles {
		l.logger().Info("Deleting keywords for version from file", "version", l.Version.String(), "file", path)
		n, err := l.Store.DeleteWords(ctx, kwsource.Words(path), l.Version)
		if err != nil {
			return report, fmt.Errorf("deleting keywords listed in %s: %w", path, err)
		}
		report.Outcomes = append(report.Outcomes, Outcome{Op: OpDelete, File: path, Rows: n})
	}

	return report, nil
}

func (l *Loader[V]) mergeWordList(ctx context.Context, report *Report, path string, reserved bool) error {
	op := OpNonReserved
	if reserved {
		op = OpReserved
	}
	l.logger().Info(fmt.Sprintf("Merging keywords for %s from file", l.Family),
		"version", l.Version.String(), "file", path, "as", string(op))
	return l.merge(ctx, report, op, path, kwsource.WordList(path, l.Version, reserved))
}

func (l *Loader[V]) merge(ctx context.Context, report *Report, op Op, path string, keywords iter.Seq2[kwspec.Keyword[V], error]) error {
	res, err := l.Store.Merge(ctx, keywords)
	if err != nil {
		return fmt.Errorf("merging keywords from %s: %w", path, err)
	}
	report.Outcomes = append(report.Outcomes, Outcome{Op: op, File: path, Read: res.Read, Rows: res.Changed})
	return nil
}

func (l *Loader[V]) logger() *slog.Logger {
	if l.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return l.Logger
}
