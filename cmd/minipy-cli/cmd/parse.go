package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"minipy/internal/ast"
	"minipy/internal/errors"
	"minipy/internal/parser"
)

var parseFormat string

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Print the syntax tree of a file",
	Long: `Parse a minipy file and print its syntax tree.

Formats:
  tree    - nested tagged tuples
  source  - normalized source with explicit parentheses
  yaml    - YAML document`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "", "output format: tree, source or yaml (default from config)")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]
	source, err := readSource(cmd, path)
	if err != nil {
		return err
	}

	format := cfg.Output.Format
	if parseFormat != "" {
		format = parseFormat
	}

	result := parser.Parse(path, source)
	if !result.Accepted() {
		reporter := errors.NewErrorReporter(path, source)
		fmt.Fprint(cmd.ErrOrStderr(), reporter.FormatAll(errors.Collect(result.ScanErrors, result.ParseErrors)))
		return errRejected
	}

	rendered, err := render(result.Program, format)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}

// render formats a program for output, always ending in a newline.
func render(program *ast.Program, format string) (string, error) {
	var out string
	switch format {
	case "tree":
		out = ast.Dump(program)
	case "source":
		out = program.String()
	case "yaml":
		data, err := ast.MarshalYAML(program)
		if err != nil {
			return "", fmt.Errorf("failed to encode yaml: %w", err)
		}
		out = string(data)
	default:
		return "", fmt.Errorf("unknown output format %q", format)
	}

	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out, nil
}
