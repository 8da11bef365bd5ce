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
	"context"
	"fmt"
	"io"
	"os"

	"github.com/consensys/go-symple/pkg/expr"
	"github.com/consensys/go-symple/pkg/solver"
	"github.com/consensys/go-symple/pkg/solver/field"
	"github.com/consensys/go-symple/pkg/util"
	"github.com/consensys/go-symple/pkg/util/termio"
	"github.com/spf13/cobra"
)

// solveCmd represents the solve command
var solveCmd = &cobra.Command{
	Use:   "solve [flags] [file...]",
	Short: "Solve one or more equations exactly.",
	Long: `Solve every equation "(== lhs rhs)" in the given files, or given directly
	using --expr.  The left-hand side of each equation must be a simple expression,
	and the right-hand side must be constant.`,
	Run: func(cmd *cobra.Command, args []string) {
		items := readItemsOrExit(cmd, args)
		stats := util.NewPerfStats()
		//
		ok, err := runSolve(context.Background(), config, items, os.Stdout)
		//
		stats.Log("Solving equations")
		//
		exitOnFailure(ok, err)
	},
}

// Solve all equations within a given set of items, writing a report to a given
// writer.  This returns false if any item could not be solved.
func runSolve(ctx context.Context, cfg *Config, items []Item, w io.Writer) (bool, error) {
	eqs := make([]expr.Equation, 0, len(items))
	//
	for _, item := range items {
		if item.Term.IsEquation() {
			eqs = append(eqs, item.Term.Equation())
		}
	}
	//
	switch cfg.Domain {
	case DomainBls12_377:
		results, err := solver.SolveAllWith[field.Element](ctx, field.SolveTrace, eqs, cfg.Jobs)
		if err != nil {
			return false, err
		}
		//
		return reportSolutions(cfg, items, results, w)
	default:
		results, err := solver.SolveAll(ctx, eqs, cfg.Jobs)
		if err != nil {
			return false, err
		}
		//
		return reportSolutions(cfg, items, results, w)
	}
}

// Report the outcome of solving a set of equations.  Items which are not
// equations are reported as failures.
func reportSolutions[T fmt.Stringer](cfg *Config, items []Item, results []solver.Result[T], w io.Writer) (bool, error) {
	var (
		ok    = true
		table = termio.NewTablePrinter(3, uint(len(items)))
		red   = termio.NewAnsiEscape().FgColour(termio.TERM_RED)
		green = termio.NewAnsiEscape().FgColour(termio.TERM_GREEN)
		index = 0
	)
	//
	table.SetLeftAligned(1, true)
	table.SetLeftAligned(2, true)
	table.AnsiEscapes(cfg.ColourEnabled())
	//
	for row, item := range items {
		var status string
		//
		if !item.Term.IsEquation() {
			ok = false
			status = "expected an equation"
			//
			table.SetRow(uint(row), item.Label, item.Term.Expr.String(), status)
			table.SetEscape(2, uint(row), red)
			//
			continue
		}
		//
		result := results[index]
		index++
		//
		if result.Err != nil {
			ok = false
			status = result.Err.Error()
			//
			table.SetEscape(2, uint(row), red)
		} else {
			status = fmt.Sprintf("%s = %s", expr.VariableName, result.Value)
			//
			table.SetEscape(2, uint(row), green)
		}
		//
		table.SetRow(uint(row), item.Label, result.Equation.String(), status)
	}
	//
	if err := table.Fprint(w); err != nil {
		return false, err
	}
	//
	if cfg.Trace {
		return ok, reportTraces(items, results, w)
	}
	//
	return ok, nil
}

func reportTraces[T fmt.Stringer](items []Item, results []solver.Result[T], w io.Writer) error {
	index := 0
	//
	for _, item := range items {
		if !item.Term.IsEquation() {
			continue
		}
		//
		result := results[index]
		index++
		//
		if _, err := fmt.Fprintf(w, "%s:\n", item.Label); err != nil {
			return err
		}
		//
		for _, inv := range result.Trace {
			if _, err := fmt.Fprintf(w, "    %s\n", inv.String()); err != nil {
				return err
			}
		}
	}
	//
	return nil
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringArrayP("expr", "e", nil, "equation to solve (may be given multiple times)")
}
