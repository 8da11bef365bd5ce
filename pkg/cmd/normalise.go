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

	"github.com/consensys/go-symple/pkg/expr"
	"github.com/consensys/go-symple/pkg/solver"
	"github.com/spf13/cobra"
)

// normaliseCmd represents the normalise command
var normaliseCmd = &cobra.Command{
	Use:     "normalise [flags] [file...]",
	Aliases: []string{"normalize"},
	Short:   "Print the normal form of simple expressions.",
	Long: `Fold the constant subexpressions of each expression (or left-hand side of
	each equation), and print the resulting chain of steps from the outermost
	operator down to the variable.`,
	Run: func(cmd *cobra.Command, args []string) {
		items := readItemsOrExit(cmd, args)
		//
		ok, err := runNormalise(items, os.Stdout)
		//
		exitOnFailure(ok, err)
	},
}

// Print the normal form of each item to a given writer.  This returns false if
// any item has no normal form.
func runNormalise(items []Item, w io.Writer) (bool, error) {
	ok := true
	//
	for _, item := range items {
		var err error
		//
		nf, nerr := expr.Normalise(item.Term.Expr)
		//
		switch {
		case nerr != nil:
			ok = false
			_, err = fmt.Fprintf(w, "%s: %s\n", item.Label, solver.Wrap(nerr, item.Term.Expr.String()))
		case item.Term.IsEquation():
			_, err = fmt.Fprintf(w, "%s: %s == %s\n", item.Label, nf.Expr(), item.Term.Rhs)
		default:
			_, err = fmt.Fprintf(w, "%s: %s\n", item.Label, nf.Expr())
		}
		//
		if err != nil {
			return false, err
		}
		//
		for i, step := range nf.Steps {
			if _, err := fmt.Fprintf(w, "    %d: %s\n", i+1, step); err != nil {
				return false, err
			}
		}
	}
	//
	return ok, nil
}

func init() {
	rootCmd.AddCommand(normaliseCmd)
	normaliseCmd.Flags().StringArrayP("expr", "e", nil, "expression to normalise (may be given multiple times)")
}
