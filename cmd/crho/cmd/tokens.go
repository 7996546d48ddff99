package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sestinj/crho/pkg"
	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Dump the token stream of a source file",
	Long: `Tokens runs only the lexer and prints one token per line with its
position, kind and text. Useful for checking how an input splits before
involving the parser.

With no argument, tokens reads from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	name := "stdin"
	var reader io.Reader = cmd.InOrStdin()

	if len(args) > 0 {
		file, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer file.Close()
		name = args[0]
		reader = file
	}

	lexer := crho.NewLexer(name, reader)
	toks, err := lexer.Tokenize()
	if err != nil {
		return err
	}

	for _, tok := range toks {
		fmt.Fprintf(cmd.OutOrStdout(), "%d:%d\t%s %s\n", tok.Loc.Line, tok.Loc.Col, tok.Typ, tok.Lexeme)
	}
	return nil
}
