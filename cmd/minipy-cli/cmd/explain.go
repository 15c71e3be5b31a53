package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"minipy/internal/errors"
)

var explainCmd = &cobra.Command{
	Use:   "explain [CODE]",
	Short: "Describe an error code",
	Long: `Describe one error code, such as E0102, or list all of them when no
code is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		for _, code := range errors.Codes() {
			d, _ := errors.Describe(code)
			fmt.Fprintf(out, "%s  %s\n", code, d)
		}
		return nil
	}

	code := strings.ToUpper(args[0])
	d, ok := errors.Describe(code)
	if !ok {
		return fmt.Errorf("unknown error code %q", args[0])
	}
	fmt.Fprintf(out, "%s: %s\n", code, d)
	return nil
}
