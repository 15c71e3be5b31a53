package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"minipy/internal/errors"
	"minipy/internal/parser"
)

var checkCmd = &cobra.Command{
	Use:   "check FILE",
	Short: "Tokenize and parse a file and report diagnostics",
	Long: `Tokenize and parse a minipy file.

Lexical errors are reported first and stop the check. A file that tokenizes
cleanly is then parsed; on success the tree is printed in the configured
output format. Use "-" to read standard input.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	startTime := time.Now()
	path := args[0]
	out := cmd.OutOrStdout()

	source, err := readSource(cmd, path)
	if err != nil {
		return err
	}
	reporter := errors.NewErrorReporter(path, source)

	// Phase 1: tokens, with INDENT/DEDENT as the parser sees them
	tokens, scanErrors, indentErrors := parser.TokenizeIndented(source)
	if cfg.Output.ShowTokens {
		writeTokens(out, tokens)
	}
	if len(scanErrors) > 0 || len(indentErrors) > 0 {
		diags := errors.Collect(scanErrors, nil)
		for _, ie := range indentErrors {
			diags = append(diags, errors.FromIndentError(ie))
		}
		fmt.Fprint(cmd.ErrOrStderr(), reporter.FormatAll(diags))
		color.New(color.FgRed).Fprintf(out, "Lexical analysis failed after %s\n", formatDuration(time.Since(startTime)))
		return errRejected
	}
	log.Debugf("%s: %d tokens", path, len(tokens))

	// Phase 2: syntax
	result := parser.Parse(path, source)
	if !result.Accepted() {
		fmt.Fprint(cmd.ErrOrStderr(), reporter.FormatAll(errors.Collect(result.ScanErrors, result.ParseErrors)))
		color.New(color.FgRed).Fprintf(out, "Parsing failed after %s\n", formatDuration(time.Since(startTime)))
		return errRejected
	}

	rendered, err := render(result.Program, cfg.Output.Format)
	if err != nil {
		return err
	}
	fmt.Fprint(out, rendered)
	color.New(color.FgGreen).Fprintf(out, "Successfully processed %s in %s\n", path, formatDuration(time.Since(startTime)))
	return nil
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
