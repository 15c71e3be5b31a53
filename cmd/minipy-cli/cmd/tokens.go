package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"minipy/internal/errors"
	"minipy/internal/parser"
	"minipy/token"
)

var tokensRaw bool

var tokensCmd = &cobra.Command{
	Use:   "tokens FILE",
	Short: "Print the token stream of a file",
	Long: `Print the tokens the parser consumes, one per line, with INDENT and
DEDENT tokens derived from the indentation. With --raw the layout tokens
are left out.`,
	Args: cobra.ExactArgs(1),
	RunE: runTokens,
}

func init() {
	tokensCmd.Flags().BoolVar(&tokensRaw, "raw", false, "omit INDENT and DEDENT tokens")
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	path := args[0]
	source, err := readSource(cmd, path)
	if err != nil {
		return err
	}

	var (
		tokens     []token.Token
		scanErrors []parser.ScanError
		diags      []errors.CompilerError
	)
	if tokensRaw {
		tokens, scanErrors = parser.Tokenize(source)
		diags = errors.Collect(scanErrors, nil)
	} else {
		var indentErrors []parser.IndentError
		tokens, scanErrors, indentErrors = parser.TokenizeIndented(source)
		diags = errors.Collect(scanErrors, nil)
		for _, ie := range indentErrors {
			diags = append(diags, errors.FromIndentError(ie))
		}
	}

	writeTokens(cmd.OutOrStdout(), tokens)

	if len(diags) > 0 {
		reporter := errors.NewErrorReporter(path, source)
		fmt.Fprint(cmd.ErrOrStderr(), reporter.FormatAll(diags))
		return errRejected
	}
	return nil
}

// writeTokens prints one token per line as LINE:COL KIND VALUE.
func writeTokens(w io.Writer, tokens []token.Token) {
	for _, tok := range tokens {
		fmt.Fprintf(w, "%4d:%-3d %-8s %s\n", tok.Pos.Line, tok.Pos.Column, tok.Kind, tok.Display())
	}
}
