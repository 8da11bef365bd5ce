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
package expr

import (
	"github.com/consensys/go-symple/pkg/util/math"
	"github.com/consensys/go-symple/pkg/util/source/sexp"
)

// Var returns the (unique) variable.
func Var() Expr {
	return variable
}

// Lit constructs a literal expression from a given rational value.
func Lit(value math.Rational) Expr {
	return &Literal{value}
}

// Num constructs a literal expression from a given machine integer.
func Num(value int64) Expr {
	return &Literal{math.Int64(value)}
}

// Add constructs the expression "lhs + rhs".
func Add(lhs Expr, rhs Expr) Expr {
	return &BinaryOp{ADD, lhs, rhs}
}

// Sub constructs the expression "lhs - rhs".
func Sub(lhs Expr, rhs Expr) Expr {
	return &BinaryOp{SUB, lhs, rhs}
}

// Mul constructs the expression "lhs * rhs".
func Mul(lhs Expr, rhs Expr) Expr {
	return &BinaryOp{MUL, lhs, rhs}
}

// Div constructs the expression "lhs / rhs".
func Div(lhs Expr, rhs Expr) Expr {
	return &BinaryOp{DIV, lhs, rhs}
}

// Pow constructs the expression "lhs ^ rhs".
func Pow(lhs Expr, rhs Expr) Expr {
	return &BinaryOp{POW, lhs, rhs}
}

// Neg constructs the expression "0 - arg".
func Neg(arg Expr) Expr {
	return &BinaryOp{SUB, Num(0), arg}
}

// Apply constructs a binary expression for a given operator.
func Apply(op Operator, lhs Expr, rhs Expr) Expr {
	return &BinaryOp{op, lhs, rhs}
}

// ============================================================================
// Equation
// ============================================================================

// Equation represents an equation "lhs == rhs", where the right-hand side is a
// constant.
type Equation struct {
	Lhs Expr
	Rhs math.Rational
}

// Equals constructs the equation "lhs == rhs".
func Equals(lhs Expr, rhs math.Rational) Equation {
	return Equation{lhs, rhs}
}

// EqualsInt constructs the equation "lhs == rhs" for a machine integer rhs.
func EqualsInt(lhs Expr, rhs int64) Equation {
	return Equation{lhs, math.Int64(rhs)}
}

// Apply a binary operator with a given constant operand to both sides of this
// equation.  The constant is the left operand when left holds (e.g. "c - lhs ==
// c - rhs"), and the right operand otherwise.  The right-hand side is folded
// exactly, hence this fails if it cannot be evaluated (e.g. division by zero).
// Observe the result need not have the same solutions (e.g. when multiplying
// by zero).
func (p Equation) Apply(op Operator, c math.Rational, left bool) (Equation, error) {
	var (
		lhs Expr
		rhs math.Rational
		err error
	)
	//
	if left {
		lhs = Apply(op, Lit(c), p.Lhs)
		rhs, err = EvaluateOp(op, c, p.Rhs)
	} else {
		lhs = Apply(op, p.Lhs, Lit(c))
		rhs, err = EvaluateOp(op, p.Rhs, c)
	}
	//
	if err != nil {
		return Equation{}, err
	}
	//
	return Equation{lhs, rhs}, nil
}

// Neg negates both sides of this equation.
func (p Equation) Neg() Equation {
	return Equation{Neg(p.Lhs), p.Rhs.Neg()}
}

// Lisp returns a lisp representation of this equation.
func (p Equation) Lisp() sexp.SExp {
	return sexp.NewList([]sexp.SExp{
		sexp.NewSymbol("=="), p.Lhs.Lisp(), sexp.NewSymbol(p.Rhs.String())})
}

func (p Equation) String() string {
	return p.Lhs.String() + " == " + p.Rhs.String()
}
