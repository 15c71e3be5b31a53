package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"minipy/grammar"
	"minipy/internal/ast"
	"minipy/internal/parser"
)

var exprVerify bool

var exprCmd = &cobra.Command{
	Use:   "expr EXPRESSION",
	Short: "Show how an expression groups",
	Long: `Parse a single expression with the declarative expression grammar and print
it with every operation parenthesized, for example

  minipy-cli expr "not a or b * -c"
  ((not a) or (b * (-c)))

With --verify the expression is also parsed as a statement by the full parser
and the two groupings are compared.`,
	Args: cobra.ExactArgs(1),
	RunE: runExpr,
}

func init() {
	exprCmd.Flags().BoolVar(&exprVerify, "verify", false, "compare with the statement parser")
	rootCmd.AddCommand(exprCmd)
}

func runExpr(cmd *cobra.Command, args []string) error {
	src := args[0]
	out := cmd.OutOrStdout()

	expr, err := grammar.ParseExpr(src)
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), grammar.FormatError(src, err))
		return errRejected
	}
	grouped := expr.String()
	fmt.Fprintln(out, grouped)

	if !exprVerify {
		return nil
	}

	result := parser.Parse("<expr>", strings.TrimRight(src, "\r\n")+"\n")
	if !result.Accepted() {
		return fmt.Errorf("statement parser rejected %q: %s", src, result.FirstError().Message)
	}
	stmt, ok := result.Program.Statements[0].(*ast.ExprStmt)
	if !ok || len(result.Program.Statements) != 1 {
		return fmt.Errorf("statement parser did not read %q as one expression", src)
	}
	if got := stmt.Value.String(); got != grouped {
		return fmt.Errorf("groupings differ: grammar %s, parser %s", grouped, got)
	}
	log.Debugf("expr %q verified", src)
	return nil
}
