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
	"errors"
	"sync/atomic"
	"testing"

	"github.com/consensys/go-symple/pkg/expr"
	"github.com/consensys/go-symple/pkg/util/math"
)

func Test_SolveAll_01(t *testing.T) {
	eqs := []expr.Equation{
		parseEquation(t, "(== (* x 3) 10)"),
		parseEquation(t, "(== (+ x x) 1)"),
		parseEquation(t, "(== (^ x 3) 27)"),
		parseEquation(t, "(== (* x 0) 0)"),
		parseEquation(t, "(== (* x 3) 10)"),
	}
	//
	for _, jobs := range []int{1, 2, 8} {
		results, err := SolveAll(context.Background(), eqs, jobs)
		//
		if err != nil {
			t.Fatal(err)
		} else if len(results) != len(eqs) {
			t.Fatalf("expected %d results, got %d", len(eqs), len(results))
		}
		//
		checkResult(t, results[0], "10/3", nil)
		checkResult(t, results[1], "", ErrNotSimple)
		checkResult(t, results[2], "3", nil)
		checkResult(t, results[3], "", ErrNotUnique)
		checkResult(t, results[4], "10/3", nil)
		//
		for i, r := range results {
			if r.Equation.Fingerprint() != eqs[i].Fingerprint() {
				t.Errorf("result %d out of order", i)
			}
		}
	}
}

func Test_SolveAll_02(t *testing.T) {
	var (
		calls atomic.Int32
		eqs   = make([]expr.Equation, 32)
	)
	//
	for i := range eqs {
		eqs[i] = expr.EqualsInt(expr.Add(expr.Var(), expr.Num(int64(i%4))), 10)
	}
	//
	counter := func(eq expr.Equation) (math.Rational, []Inversion[math.Rational], error) {
		calls.Add(1)
		return SolveTrace(eq)
	}
	//
	results, err := SolveAllWith[math.Rational](context.Background(), counter, eqs, 4)
	//
	if err != nil {
		t.Fatal(err)
	} else if n := calls.Load(); n < 4 || n > 32 {
		t.Errorf("unexpected number of solver calls (%d)", n)
	}
	//
	for i, r := range results {
		checkResult(t, r, math.Int64(int64(10-i%4)).String(), nil)
	}
}

func Test_SolveAll_03(t *testing.T) {
	// Deduplication keys distinguish every pair of distinct equations, and
	// coincide for independently constructed identical ones.
	inputs := []string{
		"(== (* x 3) 10)", "(== (* 3 x) 10)", "(== (* x 3) 11)",
		"(== (* x 3/2) 10)", "(== (/ x 3) 10)", "(== x 10)",
	}
	keys := make(map[string]string)
	//
	for _, input := range inputs {
		key := flightKey(parseEquation(t, input))
		//
		if other, ok := keys[key]; ok {
			t.Errorf("equations %s and %s share key %s", input, other, key)
		} else if key != flightKey(parseEquation(t, input)) {
			t.Errorf("equation %s has unstable key", input)
		}
		//
		keys[key] = input
	}
}

func Test_SolveAll_Err_01(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	//
	if _, err := SolveAll(ctx, []expr.Equation{parseEquation(t, "(== x 1)")}, 1); !errors.Is(err, context.Canceled) {
		t.Errorf("expected cancellation, got %v", err)
	}
}

func Test_SolveAll_Err_02(t *testing.T) {
	if _, err := SolveAll(context.Background(), nil, 0); err == nil {
		t.Errorf("expected error for zero jobs")
	}
}

func checkResult(t *testing.T, r Result[math.Rational], expected string, expectedErr error) {
	switch {
	case expectedErr != nil && !errors.Is(r.Err, expectedErr):
		t.Errorf("%s: expected %v, got %v", r.Equation, expectedErr, r.Err)
	case expectedErr == nil && r.Err != nil:
		t.Errorf("%s: unexpected error %v", r.Equation, r.Err)
	case expectedErr == nil && r.Value.String() != expected:
		t.Errorf("%s: expected %s, got %s", r.Equation, expected, r.Value)
	}
}
