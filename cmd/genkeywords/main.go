// Command genkeywords writes the keywords of one version stored in the
// keyword database to a Go source file.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fbkeywords/reservedwords/internal/config"
	"github.com/fbkeywords/reservedwords/internal/database"
	"github.com/fbkeywords/reservedwords/internal/kwgen"
	"github.com/fbkeywords/reservedwords/internal/logging"
	"github.com/fbkeywords/reservedwords/kwsql"
)

func main() {
	var (
		cfg        kwgen.Config
		family     string
		configFile string
		dbPath     string
	)

	flag.StringVar(&configFile, "config", "", "Configuration file (default "+config.DefaultFile+" when present)")
	flag.StringVar(&dbPath, "database", "", "Keyword database file, overrides the configuration")
	flag.StringVar(&family, "family", "sql", "Keyword family: sql or firebird")
	flag.StringVar(&cfg.Version, "version", "", "Version to export (eg 2003 or 4.0)")
	flag.StringVar(&cfg.OutputFile, "output", "", "Output Go file")
	flag.StringVar(&cfg.PackageName, "package", "keywords", "Go package name for the generated file")
	flag.StringVar(&cfg.VarName, "var", "", "Name of the generated map variable (default derived from family and version)")
	flag.Parse()
	cfg.Family = kwgen.Family(family)

	if err := run(context.Background(), configFile, dbPath, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configFile, dbPath string, cfg kwgen.Config) error {
	if cfg.Version == "" {
		return fmt.Errorf("-version is required")
	}

	conf, err := config.Resolve(configFile)
	if err != nil {
		return err
	}
	if dbPath != "" {
		conf.Database.Path = dbPath
	}
	logger, err := logging.New(os.Stderr, logging.Options{Level: conf.Log.Level, Format: conf.Log.Format})
	if err != nil {
		return err
	}
	cfg.Logger = logger

	db, err := database.Open(ctx, conf.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := kwsql.NewMigrator(kwsql.WithMigratorLogger(logger)).EnsureLatest(ctx, db); err != nil {
		return err
	}
	return kwgen.Run(ctx, db, cfg)
}
