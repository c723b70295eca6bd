// populate-sql-keywords loads the reserved words of a SQL standard revision
// into the keyword database.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/fbkeywords/reservedwords/internal/cli"
	"github.com/fbkeywords/reservedwords/internal/importer"
	"github.com/fbkeywords/reservedwords/kwspec"
	"github.com/fbkeywords/reservedwords/kwsql"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	return cli.Run(newRootCmd(stdout, stderr), args, stdout, stderr)
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		common  cli.Common
		version string
		plan    importer.Plan
	)

	cmd := &cobra.Command{
		Use:           "populate-sql-keywords",
		Short:         "Load SQL standard keywords into the keyword database",
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := common.Setup(cmd.Context(), stderr)
			if err != nil {
				return err
			}
			defer env.Close()

			if common.InitOnly {
				env.Logger.Info(cli.InitOnlyMessage)
				fmt.Fprintln(stdout, cli.InitOnlyMessage)
				return nil
			}
			if version == "" {
				return cli.MissingVersion(cmd, stderr)
			}
			v, err := kwspec.ParseSQLVersion(version)
			if err != nil {
				return err
			}

			if plan.Empty() {
				cli.PrintNothingToDo(stdout)
				return nil
			}

			repo := kwsql.NewSQLKeywords(env.DB, kwsql.WithLogger(env.Logger))
			report, err := importer.NewSQL(repo, v, env.Logger).Run(cmd.Context(), plan)
			cli.PrintReport(stdout, report)
			if err != nil {
				cli.PrintError(stderr, err)
				return cli.ErrExit
			}
			return nil
		},
	}

	common.AddFlags(cmd)
	f := cmd.Flags()
	f.StringVarP(&version, "version", "v", "", "SQL version (eg 2003); required")
	f.BoolVar(&plan.ClearAll, "delete-all", false, "Deletes all existing keywords for version")
	f.StringVar(&plan.NonReservedFile, "non-reserved", "", "File with keyword per line to be marked as non-reserved for this version")
	f.StringArrayVar(&plan.ReservedFiles, "reserved", nil, "File with keyword per line to be marked as reserved for this version")
	f.StringArrayVar(&plan.DeleteFiles, "delete-keywords", nil, "File with keyword per line that need to be removed for this version")
	return cmd
}
