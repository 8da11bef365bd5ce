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
	"io"
	"os"

	"github.com/consensys/go-symple/pkg/expr"
	"github.com/consensys/go-symple/pkg/solver"
	"github.com/consensys/go-symple/pkg/util/termio"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [flags] [file...]",
	Short: "Check whether expressions are simple.",
	Long: `Check whether each expression (or the left-hand side of each equation) in
	the given files is simple.  That is, whether every operator has exactly one
	operand containing the variable, and whether its constant subexpressions
	can be evaluated exactly.`,
	Run: func(cmd *cobra.Command, args []string) {
		items := readItemsOrExit(cmd, args)
		//
		ok, err := runCheck(config, items, os.Stdout)
		//
		exitOnFailure(ok, err)
	},
}

// Check each item is simple, writing a report to a given writer.  This returns
// false if any item is not simple.
func runCheck(cfg *Config, items []Item, w io.Writer) (bool, error) {
	var (
		ok    = true
		table = termio.NewTablePrinter(3, uint(len(items)))
		red   = termio.NewAnsiEscape().FgColour(termio.TERM_RED)
	)
	//
	table.SetLeftAligned(1, true)
	table.SetLeftAligned(2, true)
	table.AnsiEscapes(cfg.ColourEnabled())
	//
	for i, item := range items {
		status := "simple"
		//
		if _, err := expr.Normalise(item.Term.Expr); err != nil {
			ok = false
			status = solver.Wrap(err, item.Term.Expr.String()).Error()
			//
			table.SetEscape(2, uint(i), red)
		}
		//
		table.SetRow(uint(i), item.Label, item.Term.Expr.String(), status)
	}
	//
	return ok, table.Fprint(w)
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringArrayP("expr", "e", nil, "expression to check (may be given multiple times)")
}
