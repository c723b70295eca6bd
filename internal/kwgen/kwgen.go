// Package kwgen writes the keywords of one version stored in the keyword
// database as a Go source file declaring a map from word to reserved flag.
package kwgen

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/dave/jennifer/jen"

	"github.com/fbkeywords/reservedwords/kwspec"
	"github.com/fbkeywords/reservedwords/kwsql"
)

// Family selects the keyword table.
type Family string

// Keyword families.
const (
	FamilySQL      Family = "sql"
	FamilyFirebird Family = "firebird"
)

// Config controls a generator run.
type Config struct {
	Family      Family
	Version     string
	OutputFile  string
	PackageName string // default "keywords"
	VarName     string // default derived from Family and Version
	Logger      *slog.Logger
}

// Run reads the keywords of cfg.Version from db and writes them to
// cfg.OutputFile.
func Run(ctx context.Context, db *sql.DB, cfg Config) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("no output file")
	}
	if cfg.PackageName == "" {
		cfg.PackageName = "keywords"
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var (
		f   *jen.File
		n   int
		err error
	)
	switch cfg.Family {
	case FamilySQL:
		f, n, err = generate(ctx, cfg, kwspec.ParseSQLVersion, kwsql.NewSQLKeywords(db))
	case FamilyFirebird:
		f, n, err = generate(ctx, cfg, kwspec.ParseFirebirdVersion, kwsql.NewFirebirdKeywords(db))
	default:
		return fmt.Errorf("unknown keyword family %q: must be sql or firebird", cfg.Family)
	}
	if err != nil {
		return err
	}

	if err := f.Save(cfg.OutputFile); err != nil {
		return fmt.Errorf("writing %s: %w", cfg.OutputFile, err)
	}
	logger.Info("Generated keyword table", "family", string(cfg.Family), "version", cfg.Version,
		"keywords", n, "file", cfg.OutputFile)
	return nil
}

func generate[V kwspec.Version](ctx context.Context, cfg Config, parse func(string) (V, error), repo *kwsql.Repository[V]) (*jen.File, int, error) {
	version, err := parse(cfg.Version)
	if err != nil {
		return nil, 0, err
	}
	keywords, err := repo.Keywords(ctx, version)
	if err != nil {
		return nil, 0, err
	}
	if len(keywords) == 0 {
		return nil, 0, fmt.Errorf("no %s keywords stored for version %s", cfg.Family, version)
	}

	varName := cfg.VarName
	if varName == "" {
		varName = DefaultVarName(cfg.Family, version.String())
	}
	return File(cfg.PackageName, varName, repo.Table(), keywords), len(keywords), nil
}

// File returns a Go file in package pkg declaring varName as a map from
// every keyword to its reserved flag.
func File[V kwspec.Version](pkg, varName, table string, keywords []kwspec.Keyword[V]) *jen.File {
	f := jen.NewFile(pkg)
	f.HeaderComment("Code generated by genkeywords. DO NOT EDIT.")

	var version string
	if len(keywords) > 0 {
		version = keywords[0].Version.String()
	}
	f.Commentf("%s maps the keywords of version %s in %s to true when", varName, version, table)
	f.Comment("they are reserved.")
	f.Var().Id(varName).Op("=").Map(jen.String()).Bool().Values(jen.DictFunc(func(d jen.Dict) {
		for _, kw := range keywords {
			d[jen.Lit(kw.Word)] = jen.Lit(kw.Reserved)
		}
	}))
	return f
}
