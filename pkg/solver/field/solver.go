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
package field

import (
	"fmt"
	"math/big"

	"github.com/consensys/go-symple/pkg/expr"
	"github.com/consensys/go-symple/pkg/solver"
	"github.com/consensys/go-symple/pkg/util/math"
)

var bigOne = big.NewInt(1)

// FromRational maps a rational p/q into the field as p * q⁻¹.  This fails if q
// is a multiple of the field order.
func FromRational(r math.Rational) (Element, error) {
	den := FromBigInt(r.Den())
	//
	if den.IsZero() {
		return Zero(), solver.NewError(solver.DivisionByZero, "%s has no field representation", r)
	}
	//
	return FromBigInt(r.Num()).Mul(den.Inverse()), nil
}

// Solve determines the unique field element which satisfies a given equation.
// The left-hand side is first normalised over the rationals (i.e. constants are
// folded exactly), after which each step is inverted using field arithmetic.
func Solve(eq expr.Equation) (Element, error) {
	val, _, err := SolveTrace(eq)
	//
	return val, err
}

// SolveTrace is as for Solve, except that it additionally returns the sequence
// of inversions applied.
func SolveTrace(eq expr.Equation) (Element, []solver.Inversion[Element], error) {
	nf, err := expr.Normalise(eq.Lhs)
	if err != nil {
		return Zero(), nil, solver.Wrap(err, eq.Lhs.String())
	}
	//
	target, err := FromRational(eq.Rhs)
	if err != nil {
		return Zero(), nil, err
	}
	//
	trace := make([]solver.Inversion[Element], 0, nf.Len())
	//
	for _, step := range nf.Steps {
		next, err := Invert(step, target)
		if err != nil {
			return Zero(), trace, err
		}
		//
		trace = append(trace, solver.Inversion[Element]{Step: step, Before: target, After: next})
		target = next
	}
	//
	return target, trace, nil
}

// Invert a single step over the field.
func Invert(step expr.Step, target Element) (Element, error) {
	if step.Op == expr.POW {
		if step.LiteralLeft {
			return Zero(), solver.NewError(solver.UnsupportedInversion, "cannot invert %s", step)
		}
		//
		return invertPow(step, target)
	}
	//
	c, err := FromRational(step.Literal)
	if err != nil {
		return Zero(), err
	}
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
		if !c.IsZero() {
			return target.Mul(c.Inverse()), nil
		} else if target.IsZero() {
			return Zero(), solver.NewError(solver.NotUnique, "every value satisfies %s == 0", step)
		}
		//
		return Zero(), solver.NewError(solver.DivisionByZero, "no value satisfies %s == %s", step, target)
	case expr.DIV:
		switch {
		case !step.LiteralLeft && c.IsZero():
			return Zero(), solver.NewError(solver.DivisionByZero, "division by zero in %s", step)
		case !step.LiteralLeft:
			return target.Mul(c), nil
		case target.IsZero() && c.IsZero():
			return Zero(), solver.NewError(solver.NotUnique, "every non-zero value satisfies %s == 0", step)
		case target.IsZero() || c.IsZero():
			return Zero(), solver.NewError(solver.DivisionByZero, "no value satisfies %s == %s", step, target)
		}
		//
		return c.Mul(target.Inverse()), nil
	}
	//
	panic(fmt.Sprintf("unknown operator (%d)", step.Op))
}

// v ^ n == t
func invertPow(step expr.Step, target Element) (Element, error) {
	if !step.Literal.IsInt() {
		return Zero(), solver.NewError(solver.UnsupportedInversion, "non-integer exponent in %s", step)
	}
	//
	n := step.Literal.Num()
	//
	switch {
	case n.Sign() == 0 && target.IsOne():
		return Zero(), solver.NewError(solver.NotUnique, "every value satisfies %s == 1", step)
	case n.Sign() == 0:
		return Zero(), solver.NewError(solver.NoExactRoot, "no value satisfies %s == %s", step, target)
	case n.Sign() < 0 && target.IsZero():
		return Zero(), solver.NewError(solver.DivisionByZero, "no value satisfies %s == 0", step)
	case n.Sign() < 0:
		// v^-n == t <==> v^n == t⁻¹
		target = target.Inverse()
		n.Neg(n)
	}
	// Exponent is invertible modulo the order of the multiplicative group
	order := new(big.Int).Sub(Modulus(), bigOne)
	//
	if d := new(big.Int).ModInverse(n, order); d != nil {
		return target.Exp(d), nil
	} else if n.Cmp(big.NewInt(2)) == 0 {
		root, ok := target.Sqrt()
		//
		if !ok {
			return Zero(), solver.NewError(solver.NoExactRoot, "%s is not a quadratic residue", target)
		}
		// Choose the smaller of the two roots
		if neg := root.Neg(); neg.Cmp(root) < 0 {
			return neg, nil
		}
		//
		return root, nil
	}
	//
	return Zero(), solver.NewError(solver.UnsupportedInversion, "exponent %s shares a factor with the group order", n)
}

// Evaluate a given expression over the field, with the variable assigned a
// given value.  Powers must have integer exponents.
func Evaluate(e expr.Expr, value Element) (Element, error) {
	switch e := e.(type) {
	case *expr.Literal:
		return FromRational(e.Value)
	case *expr.Variable:
		return value, nil
	case *expr.BinaryOp:
		lhs, err := Evaluate(e.Lhs, value)
		if err != nil {
			return Zero(), err
		}
		//
		if e.Op == expr.POW {
			return evaluatePow(lhs, e.Rhs)
		}
		//
		rhs, err := Evaluate(e.Rhs, value)
		if err != nil {
			return Zero(), err
		}
		//
		switch e.Op {
		case expr.ADD:
			return lhs.Add(rhs), nil
		case expr.SUB:
			return lhs.Sub(rhs), nil
		case expr.MUL:
			return lhs.Mul(rhs), nil
		case expr.DIV:
			if rhs.IsZero() {
				return Zero(), solver.ErrDivisionByZero
			}
			//
			return lhs.Mul(rhs.Inverse()), nil
		}
	}
	//
	panic(fmt.Sprintf("unknown expression encountered (%T)", e))
}

// Exponents are interpreted as integers, rather than field elements.
func evaluatePow(base Element, exponent expr.Expr) (Element, error) {
	if exponent.ContainsVariable() {
		return Zero(), solver.NewError(solver.UnsupportedInversion, "variable exponent %s", exponent)
	}
	//
	folded, err := expr.FoldConstants(exponent)
	if err != nil {
		return Zero(), solver.Wrap(err, exponent.String())
	}
	//
	lit := folded.(*expr.Literal)
	//
	if !lit.Value.IsInt() {
		return Zero(), solver.NewError(solver.UnsupportedInversion, "non-integer exponent %s", lit)
	}
	//
	n := lit.Value.Num()
	//
	if n.Sign() < 0 {
		if base.IsZero() {
			return Zero(), solver.ErrDivisionByZero
		}
		//
		return base.Inverse().Exp(n.Neg(n)), nil
	}
	//
	return base.Exp(n), nil
}
