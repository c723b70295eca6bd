// populate-fb-keywords loads the keywords of a Firebird release into the
// keyword database.
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
		Use:           "populate-fb-keywords",
		Short:         "Load Firebird keywords into the keyword database",
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
			v, err := kwspec.ParseFirebirdVersion(version)
			if err != nil {
				return err
			}

			if plan.Empty() {
				cli.PrintNothingToDo(stdout)
				return nil
			}

			repo := kwsql.NewFirebirdKeywords(env.DB, kwsql.WithLogger(env.Logger))
			report, err := importer.NewFirebird(repo, v, env.Logger).Run(cmd.Context(), plan)
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
	f.StringVarP(&version, "version", "v", "", "Firebird version (x.y, eg 2.5); required")
	f.BoolVar(&plan.ClearAll, "delete-all", false, "Deletes all existing keywords for version")
	f.StringVar(&plan.SourceFile, "keywords-source-file", "",
		"Firebird keywords.cpp source file (common/keywords.cpp, yvalve/keywords.cpp or dsql/keywords.cpp)")
	f.StringVar(&plan.NonReservedFile, "override-non-reserved", "",
		"File with keyword per line that needs to be marked as non-reserved for this version (eg based on dsql/parse.y non_reserved_word)")
	f.StringArrayVar(&plan.ReservedFiles, "override-reserved", nil, "File with keyword per line that needs to be marked as reserved for this version")
	f.StringArrayVar(&plan.DeleteFiles, "delete-keywords", nil, "File with keyword per line that need to be removed for this version")
	return cmd
}
