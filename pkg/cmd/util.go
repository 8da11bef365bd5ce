// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/consensys/go-symple/pkg/expr"
	"github.com/consensys/go-symple/pkg/util/source"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetStringArray gets an expected string array, or exits if an error arises.
func GetStringArray(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringArray(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Item is a term read from some source, along with a label identifying where
// it came from (e.g. "eqs.lisp:3").
type Item struct {
	Label string
	Term  expr.Term
}

// ReadItems reads all terms from the given files, followed by those given
// directly as strings.  Syntax errors are collected rather than reported.
func ReadItems(filenames []string, inputs []string) ([]Item, []source.SyntaxError, error) {
	var (
		items  []Item
		errors []source.SyntaxError
	)
	//
	srcfiles, err := source.ReadFiles(filenames...)
	if err != nil {
		return nil, nil, err
	}
	//
	for i, input := range inputs {
		name := fmt.Sprintf("<expr %d>", i+1)
		srcfiles = append(srcfiles, *source.NewSourceFile(name, []byte(input)))
	}
	//
	for i := range srcfiles {
		srcfile := &srcfiles[i]
		terms, errs := expr.ReadTerms(srcfile)
		//
		for _, term := range terms {
			line := srcfile.FindFirstEnclosingLine(term.Span)
			label := fmt.Sprintf("%s:%d", srcfile.Filename(), line.Number())
			items = append(items, Item{label, term})
		}
		//
		errors = append(errors, errs...)
	}
	//
	return items, errors, nil
}

// Read the inputs for a command, exiting when the inputs cannot be read or
// contain syntax errors.
func readItemsOrExit(cmd *cobra.Command, args []string) []Item {
	var inputs []string
	//
	if cmd.Flags().Lookup("expr") != nil {
		inputs = GetStringArray(cmd, "expr")
	}
	//
	if len(args) == 0 && len(inputs) == 0 {
		fmt.Println(cmd.UsageString())
		os.Exit(1)
	}
	//
	items, errs, err := ReadItems(args, inputs)
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	} else if len(errs) > 0 {
		for _, e := range errs {
			printSyntaxError(&e)
		}
		//
		os.Exit(2)
	}
	//
	return items
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(err *source.SyntaxError) {
	span := err.Span()
	line := err.FirstEnclosingLine()
	// Print error + line number
	fmt.Printf("%s:%d: %s\n", err.SourceFile().Filename(), line.Number(), err.Message())
	// Print line
	fmt.Println(line.String())
	// Print indent (todo: account for tabs)
	fmt.Print(strings.Repeat(" ", max(0, span.Start()-line.Start())))
	// Print highlight, ensuring at least one character is highlighted.
	length := min(max(1, span.Length()), max(1, line.Length()-span.Start()+line.Start()))
	fmt.Println(strings.Repeat("^", length))
}

// Exit with a non-zero status if a command failed: 2 when an error arose
// (which is reported first), or 1 when some item was rejected.
func exitOnFailure(ok bool, err error) {
	if code := exitCode(os.Stderr, ok, err); code != 0 {
		os.Exit(code)
	}
}

func exitCode(w io.Writer, ok bool, err error) int {
	switch {
	case err != nil:
		fmt.Fprintln(w, err)
		return 2
	case !ok:
		return 1
	}
	//
	return 0
}
