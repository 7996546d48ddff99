package cmd

import (
	"fmt"

	"github.com/sestinj/crho/pkg"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file...]",
	Short: "Parse source files and print the functions they define",
	Long: `Parse reads crho source files and prints every function it could
parse, one per line. Bare top-level expressions are shown as anonymous
functions. Syntax errors go to stderr with file, line and column;
parsing continues after each one.

With no arguments, parse reads from stdin; - names stdin explicitly.

Examples:
  crho parse program.crho
  crho parse a.crho b.crho
  echo "1 + 2 * 3" | crho parse
  crho parse --config ops.toml program.crho`,
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	table, err := loadTable()
	if err != nil {
		return err
	}

	front := &crho.Frontend{
		Table:     table,
		Collector: crho.NewCollector(cmd.ErrOrStderr()),
		Log:       newLogger(),
	}

	if len(args) == 0 {
		args = []string{"-"}
	}

	failed := 0
	for _, path := range args {
		var ast *crho.AST
		if path == "-" {
			ast = front.ParseReader("stdin", cmd.InOrStdin())
		} else {
			var err error
			ast, err = front.ParseFile(path)
			if err != nil {
				return err
			}
		}
		printFuncs(cmd, ast)
		failed += len(ast.Errors)
	}

	if failed > 0 {
		return fmt.Errorf("%d parse error(s)", failed)
	}
	return nil
}

func printFuncs(cmd *cobra.Command, ast *crho.AST) {
	for _, fn := range ast.Funcs {
		fmt.Fprintln(cmd.OutOrStdout(), fn)
	}
}
