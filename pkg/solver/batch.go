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
package solver

import (
	"context"
	"fmt"

	"github.com/consensys/go-symple/pkg/expr"
	"github.com/consensys/go-symple/pkg/util/math"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Result captures the outcome of solving a single equation as part of a batch.
type Result[T fmt.Stringer] struct {
	Equation expr.Equation
	// Solution, when Err is nil.
	Value T
	// Inversions applied whilst solving.
	Trace []Inversion[T]
	// Reason for failure, or nil.
	Err error
}

// Solver solves a given equation over some domain T, returning the solution,
// the inversions applied and any error.  SolveTrace is the canonical instance
// over the rationals.
type Solver[T fmt.Stringer] func(expr.Equation) (T, []Inversion[T], error)

// SolveAll solves a given set of equations concurrently, using at most a given
// number of workers.  Results are returned in the same order as the equations
// given.  Equations which are structurally identical and are being solved at
// the same time are only solved once.
// An error is returned only if the context is cancelled.
func SolveAll(ctx context.Context, eqs []expr.Equation, jobs int) ([]Result[math.Rational], error) {
	return SolveAllWith[math.Rational](ctx, SolveTrace, eqs, jobs)
}

// SolveAllWith is as for SolveAll, but uses a given solver for each equation.
func SolveAllWith[T fmt.Stringer](ctx context.Context, solver Solver[T], eqs []expr.Equation, jobs int) ([]Result[T], error) {
	var (
		results = make([]Result[T], len(eqs))
		group   singleflight.Group
	)
	//
	if jobs < 1 {
		return nil, fmt.Errorf("invalid number of jobs (%d)", jobs)
	}
	//
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	//
	for i, eq := range eqs {
		// Stop scheduling once cancelled
		if err := gctx.Err(); err != nil {
			break
		}
		//
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			//
			key := fmt.Sprintf("%016x", eq.Fingerprint())
			//
			res, _, shared := group.Do(flightKey(eq), func() (any, error) {
				val, trace, err := solver(eq)
				return Result[T]{eq, val, trace, err}, nil
			})
			//
			results[i] = res.(Result[T])
			results[i].Equation = eq
			//
			if err := results[i].Err; err != nil {
				log.Debugf("equation %d (%s) failed: %v", i, key, err)
			} else {
				log.Debugf("equation %d (%s) solved (shared=%t): x = %s", i, key, shared, results[i].Value)
			}
			//
			return nil
		})
	}
	//
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// Catch cancellation during scheduling
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	//
	return results, nil
}

// Key identifying an equation for in-flight deduplication.  This is the full
// rendering of the equation, rather than its fingerprint, as distinct equations
// may share a fingerprint.
func flightKey(eq expr.Equation) string {
	return eq.Lisp().String()
}
