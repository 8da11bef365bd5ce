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
	"fmt"

	"github.com/consensys/go-symple/pkg/expr"
	"github.com/consensys/go-symple/pkg/util/math"
)

// Inversion records a single step taken by the solver, which peels one
// operator off the left-hand side of an equation.  Before is the value of the
// equation's right-hand side before inverting the step, and After is its value
// afterwards.
type Inversion[T fmt.Stringer] struct {
	Step   expr.Step
	Before T
	After  T
}

func (p Inversion[T]) String() string {
	return fmt.Sprintf("%s == %s => _ == %s", p.Step, p.Before, p.After)
}

// Solve determines the unique value of the variable which satisfies a given
// equation.  The left-hand side must be a simple expression, in which case its
// normal form is inverted step-by-step against the right-hand side, starting
// from the outermost step.  All arithmetic is exact and, hence, solving fails
// (with an *Error) rather than approximating.
func Solve(eq expr.Equation) (math.Rational, error) {
	val, _, err := SolveTrace(eq)
	//
	return val, err
}

// SolveTrace is as for Solve, except that it additionally returns the sequence
// of inversions applied.  On failure, the inversions applied before the failing
// step are returned.
func SolveTrace(eq expr.Equation) (math.Rational, []Inversion[math.Rational], error) {
	nf, err := expr.Normalise(eq.Lhs)
	if err != nil {
		return math.Zero, nil, Wrap(err, eq.Lhs.String())
	}
	//
	var (
		target = eq.Rhs
		trace  = make([]Inversion[math.Rational], 0, nf.Len())
	)
	//
	for _, step := range nf.Steps {
		next, err := Invert(step, target)
		if err != nil {
			return math.Zero, trace, err
		}
		//
		trace = append(trace, Inversion[math.Rational]{step, target, next})
		target = next
	}
	//
	return target, trace, nil
}

// Invert a single step.  That is, given a step "_ op c" (or "c op _") and a
// target t, determine the unique value v such that "v op c == t" (resp. "c op v
// == t").
func Invert(step expr.Step, target math.Rational) (math.Rational, error) {
	var c = step.Literal
	//
	switch step.Op {
	case expr.ADD:
		return target.Sub(c), nil
	case expr.SUB:
		if step.LiteralLeft {
			return c.Sub(target), nil
		}
		//
		return target.Add(c), nil
	case expr.MUL:
		return invertMul(step, target)
	case expr.DIV:
		if step.LiteralLeft {
			return invertDivLeft(step, target)
		}
		//
		return invertDivRight(step, target)
	case expr.POW:
		if step.LiteralLeft {
			return math.Zero, NewError(UnsupportedInversion, "cannot invert %s == %s", step, target)
		}
		//
		return invertPow(step, target)
	}
	//
	panic(fmt.Sprintf("unknown operator (%d)", step.Op))
}

// v * c == t
func invertMul(step expr.Step, target math.Rational) (math.Rational, error) {
	if !step.Literal.IsZero() {
		// Cannot fail
		return target.Div(step.Literal)
	} else if target.IsZero() {
		return math.Zero, NewError(NotUnique, "every value satisfies %s == 0", step)
	}
	//
	return math.Zero, NewError(DivisionByZero, "no value satisfies %s == %s", step, target)
}

// v / c == t
func invertDivRight(step expr.Step, target math.Rational) (math.Rational, error) {
	if step.Literal.IsZero() {
		return math.Zero, NewError(DivisionByZero, "division by zero in %s", step)
	}
	//
	return target.Mul(step.Literal), nil
}

// c / v == t
func invertDivLeft(step expr.Step, target math.Rational) (math.Rational, error) {
	switch {
	case target.IsZero() && step.Literal.IsZero():
		return math.Zero, NewError(NotUnique, "every non-zero value satisfies %s == 0", step)
	case target.IsZero() || step.Literal.IsZero():
		return math.Zero, NewError(DivisionByZero, "no value satisfies %s == %s", step, target)
	}
	//
	return step.Literal.Div(target)
}

// v ^ e == t
func invertPow(step expr.Step, target math.Rational) (math.Rational, error) {
	var exponent = step.Literal
	//
	if exponent.IsZero() {
		if target.IsOne() {
			return math.Zero, NewError(NotUnique, "every value satisfies %s == 1", step)
		}
		//
		return math.Zero, NewError(NoExactRoot, "no value satisfies %s == %s", step, target)
	}
	// Cannot fail, since exponent is non-zero
	inverse, _ := exponent.Inv()
	//
	candidate, err := target.PowRat(inverse)
	if err != nil {
		return math.Zero, Wrap(err, fmt.Sprintf("cannot invert %s == %s", step, target))
	}
	// Check candidate is a solution.  For example, with "v ^ 1/2 == -3" the
	// candidate 9 does not satisfy the equation.
	check, err := candidate.PowRat(exponent)
	//
	if err != nil || !check.Equal(target) {
		return math.Zero, NewError(NoExactRoot, "no value satisfies %s == %s", step, target)
	}
	//
	return candidate, nil
}
