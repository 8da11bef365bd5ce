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
	"errors"
	"fmt"

	"github.com/consensys/go-symple/pkg/util/math"
)

// ErrNotSimple is returned when an expression is not simple.  That is, it
// contains some operator where the variable occurs in both operands, or in
// neither.
var ErrNotSimple = errors.New("expression is not simple")

// IsSimple determines whether a given expression is simple.  The variable and
// literals are simple, whilst a binary operator is simple only when exactly one
// of its operands contains the variable and that operand is itself simple.  The
// other operand is an arbitrary constant subtree.
func IsSimple(e Expr) bool {
	simple, _ := analyse(e)
	return simple
}

// Determine, in a single pass, whether an expression is simple and whether it
// contains the variable.
func analyse(e Expr) (simple bool, variable bool) {
	switch e := e.(type) {
	case *Literal:
		return true, false
	case *Variable:
		return true, true
	case *BinaryOp:
		ls, lv := analyse(e.Lhs)
		rs, rv := analyse(e.Rhs)
		//
		if lv && !rv {
			return ls, true
		} else if rv && !lv {
			return rs, true
		}
		// Either both contain the variable, or neither do.
		return false, lv
	}
	//
	panic(fmt.Sprintf("unknown expression encountered (%T)", e))
}

// FoldConstants rewrites a given expression such that every subtree which does
// not contain the variable is replaced by a single literal.  This fails if
// evaluating some constant subtree fails (e.g. due to division by zero).
func FoldConstants(e Expr) (Expr, error) {
	folded, _, err := fold(e)
	return folded, err
}

// Fold an expression bottom up, additionally returning whether the result
// contains the variable.  Constant operands are always folded to literals
// before their parent is visited.
func fold(e Expr) (Expr, bool, error) {
	switch e := e.(type) {
	case *Literal:
		return e, false, nil
	case *Variable:
		return e, true, nil
	case *BinaryOp:
		lhs, lv, err := fold(e.Lhs)
		if err != nil {
			return nil, false, err
		}
		//
		rhs, rv, err := fold(e.Rhs)
		if err != nil {
			return nil, false, err
		} else if lv || rv {
			return &BinaryOp{e.Op, lhs, rhs}, true, nil
		}
		//
		val, err := EvaluateOp(e.Op, lhs.(*Literal).Value, rhs.(*Literal).Value)
		if err != nil {
			return nil, false, err
		}
		//
		return &Literal{val}, false, nil
	}
	//
	panic(fmt.Sprintf("unknown expression encountered (%T)", e))
}

// Evaluate a given expression with the variable assigned a given value.
func Evaluate(e Expr, value math.Rational) (math.Rational, error) {
	return evaluate(e, &value)
}

// EvaluateOp applies a given operator to two rational operands.  Powers accept
// rational exponents, but fail if the result is not itself rational.
func EvaluateOp(op Operator, lhs math.Rational, rhs math.Rational) (math.Rational, error) {
	switch op {
	case ADD:
		return lhs.Add(rhs), nil
	case SUB:
		return lhs.Sub(rhs), nil
	case MUL:
		return lhs.Mul(rhs), nil
	case DIV:
		return lhs.Div(rhs)
	case POW:
		return lhs.PowRat(rhs)
	}
	//
	panic(fmt.Sprintf("unknown operator (%d)", op))
}

// Evaluate an expression where the variable is either assigned a given value,
// or is unassigned (nil).  The latter case is only safe on constant
// expressions.
func evaluate(e Expr, value *math.Rational) (math.Rational, error) {
	switch e := e.(type) {
	case *Literal:
		return e.Value, nil
	case *Variable:
		if value == nil {
			panic("variable encountered in constant expression")
		}
		//
		return *value, nil
	case *BinaryOp:
		lhs, err := evaluate(e.Lhs, value)
		if err != nil {
			return math.Zero, err
		}
		//
		rhs, err := evaluate(e.Rhs, value)
		if err != nil {
			return math.Zero, err
		}
		//
		return EvaluateOp(e.Op, lhs, rhs)
	}
	//
	panic(fmt.Sprintf("unknown expression encountered (%T)", e))
}
