// Package cli holds the command line plumbing shared by the keyword
// commands: common flags, process setup and exit handling.
package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/fbkeywords/reservedwords/internal/config"
	"github.com/fbkeywords/reservedwords/internal/database"
	"github.com/fbkeywords/reservedwords/internal/importer"
	"github.com/fbkeywords/reservedwords/internal/logging"
	"github.com/fbkeywords/reservedwords/internal/style"
	"github.com/fbkeywords/reservedwords/kwsql"
)

// ErrExit is returned by cobra RunE functions to signal a non-zero exit.
// The command has already written its own error to stderr.
var ErrExit = errors.New("exit")

// Run executes root with args and returns the process exit status.
func Run(root *cobra.Command, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		if !errors.Is(err, ErrExit) {
			fmt.Fprintf(stderr, "%s: %v\n", root.Name(), err)
		}
		return 1
	}
	return 0
}

// Common holds the flags shared by the keyword commands.
type Common struct {
	ConfigFile string
	Database   string
	LogLevel   string
	LogFormat  string
	Color      string
	InitOnly   bool
}

// AddFlags registers the common flags on cmd.
func (c *Common) AddFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&c.ConfigFile, "config", "", "Configuration file (default "+config.DefaultFile+" when present)")
	f.StringVar(&c.Database, "database", "", "Keyword database file, overrides the configuration")
	f.StringVar(&c.LogLevel, "log-level", "", "Log level: debug, info, warn or error")
	f.StringVar(&c.LogFormat, "log-format", "", "Log format: auto, text or json")
	f.StringVar(&c.Color, "color", "auto", "Color output: always, auto, never")
	f.BoolVar(&c.InitOnly, "init-only", false, "Initialize database only and exit")
}

// Env is the state of a command after Setup.
type Env struct {
	Config *config.Config
	Logger *slog.Logger
	DB     *sql.DB
}

// Close releases the database.
func (e *Env) Close() error {
	return e.DB.Close()
}

// Setup resolves the configuration, builds the logger, opens the database
// and brings its schema to the latest version. Log output goes to stderr.
func (c *Common) Setup(ctx context.Context, stderr io.Writer) (*Env, error) {
	if err := style.SetColorMode(c.Color); err != nil {
		return nil, err
	}

	cfg, err := config.Resolve(c.ConfigFile)
	if err != nil {
		return nil, err
	}
	if c.Database != "" {
		cfg.Database.Path = c.Database
	}
	if c.LogLevel != "" {
		cfg.Log.Level = c.LogLevel
	}
	if c.LogFormat != "" {
		cfg.Log.Format = c.LogFormat
	}

	logger, err := logging.New(stderr, logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return nil, err
	}

	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := kwsql.NewMigrator(kwsql.WithMigratorLogger(logger)).EnsureLatest(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return &Env{Config: cfg, Logger: logger, DB: db}, nil
}

// InitOnlyMessage is printed when a command only initializes the database.
const InitOnlyMessage = "Initialization only requested, exiting..."

// MissingVersion reports a missing -v/--version option with the usage of
// cmd on stderr.
func MissingVersion(cmd *cobra.Command, stderr io.Writer) error {
	fmt.Fprintln(stderr, "Invalid command line: option -v or --version is required")
	fmt.Fprint(stderr, cmd.UsageString())
	return ErrExit
}

// PrintNothingToDo tells the user that no operation was requested.
func PrintNothingToDo(w io.Writer) {
	fmt.Fprintf(w, "%s nothing to do\n", style.Mark(style.Unchanged))
}

// PrintReport writes one line per executed operation to w.
func PrintReport(w io.Writer, report importer.Report) {
	for _, o := range report.Outcomes {
		mark := style.Mark(style.StatusOf(o.Rows))
		switch o.Op {
		case importer.OpClear:
			fmt.Fprintf(w, "%s %s: %d deleted\n", mark, o.Op, o.Rows)
		case importer.OpDelete:
			fmt.Fprintf(w, "%s %s %s: %d deleted\n", mark, o.Op, style.Path(o.File), o.Rows)
		default:
			fmt.Fprintf(w, "%s %s %s: %d read, %d changed\n", mark, o.Op, style.Path(o.File), o.Read, o.Rows)
		}
	}
}

// PrintError writes err to w as a failure line.
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", style.Mark(style.Failed), err)
}
