// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"minipy/internal/ast"
	"minipy/internal/errors"
	"minipy/internal/parser"
)

const (
	PROMPT      = ">> "
	CONT_PROMPT = ".. "
)

// Start reads statements from in and prints the tree of each one. A line
// ending in ':' opens a block that continues until an empty line.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return
		}

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		unit := []string{line}
		if strings.HasSuffix(strings.TrimRight(line, " \t"), ":") {
			for {
				fmt.Fprint(out, CONT_PROMPT)
				if !scanner.Scan() {
					break
				}
				next := scanner.Text()
				if strings.TrimSpace(next) == "" {
					break
				}
				unit = append(unit, next)
			}
		}

		eval(out, strings.Join(unit, "\n")+"\n")
	}
}

func eval(out io.Writer, source string) {
	result := parser.Parse("<stdin>", source)
	if !result.Accepted() {
		reporter := errors.NewErrorReporter("<stdin>", source)
		fmt.Fprint(out, reporter.FormatAll(errors.Collect(result.ScanErrors, result.ParseErrors)))
		return
	}

	fmt.Fprintf(out, "AST:\n%s\n", ast.Dump(result.Program))
}
