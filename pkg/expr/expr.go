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
	"fmt"
	"strings"

	"github.com/consensys/go-symple/pkg/util/math"
	"github.com/consensys/go-symple/pkg/util/source/sexp"
)

// Operator identifies one of the binary arithmetic operators supported within
// an expression.
type Operator uint8

const (
	// ADD represents addition (e.g. "x + 1").
	ADD Operator = iota
	// SUB represents subtraction (e.g. "x - 1" or "1 - x").
	SUB
	// MUL represents multiplication (e.g. "2 * x").
	MUL
	// DIV represents division (e.g. "x / 2" or "2 / x").
	DIV
	// POW represents exponentiation (e.g. "x ^ 2" or "2 ^ x").
	POW
)

func (op Operator) String() string {
	switch op {
	case ADD:
		return "+"
	case SUB:
		return "-"
	case MUL:
		return "*"
	case DIV:
		return "/"
	case POW:
		return "^"
	}
	//
	panic(fmt.Sprintf("unknown operator (%d)", op))
}

// Commutative indicates whether or not the operands of this operator can be
// swapped without affecting its result.
func (op Operator) Commutative() bool {
	return op == ADD || op == MUL
}

func (op Operator) precedence() int {
	switch op {
	case ADD, SUB:
		return 1
	case MUL, DIV:
		return 2
	default:
		return 3
	}
}

// Expr represents an arithmetic expression over a single (unnamed) variable.
// Expressions are immutable trees: once constructed they are never modified,
// hence subtrees (and, in particular, the variable) can be safely shared.
type Expr interface {
	// ContainsVariable determines whether or not the variable occurs anywhere
	// within this expression.
	ContainsVariable() bool
	// Lisp returns a lisp representation of this expression, which is useful
	// for debugging and is understood by the reader.
	Lisp() sexp.SExp
	// String returns an infix representation of this expression.
	String() string
}

// ============================================================================
// Literal
// ============================================================================

// Literal represents a constant rational value.
type Literal struct {
	Value math.Rational
}

// ContainsVariable implementation for Expr interface.
func (p *Literal) ContainsVariable() bool { return false }

// Lisp implementation for Expr interface.
func (p *Literal) Lisp() sexp.SExp {
	return sexp.NewSymbol(p.Value.String())
}

func (p *Literal) String() string {
	return p.Value.String()
}

// ============================================================================
// Variable
// ============================================================================

// VariableName is the name under which the variable is rendered.
const VariableName = "x"

// Variable represents the single free variable in an expression.  There is
// exactly one instance of this type, obtained via Var().
type Variable struct{}

var variable = &Variable{}

// ContainsVariable implementation for Expr interface.
func (p *Variable) ContainsVariable() bool { return true }

// Lisp implementation for Expr interface.
func (p *Variable) Lisp() sexp.SExp {
	return sexp.NewSymbol(VariableName)
}

func (p *Variable) String() string {
	return VariableName
}

// ============================================================================
// Binary Operators
// ============================================================================

// BinaryOp represents the application of an arithmetic operator to two
// operands.
type BinaryOp struct {
	Op  Operator
	Lhs Expr
	Rhs Expr
}

// ContainsVariable implementation for Expr interface.
func (p *BinaryOp) ContainsVariable() bool {
	return p.Lhs.ContainsVariable() || p.Rhs.ContainsVariable()
}

// Lisp implementation for Expr interface.
func (p *BinaryOp) Lisp() sexp.SExp {
	return sexp.NewList([]sexp.SExp{
		sexp.NewSymbol(p.Op.String()), p.Lhs.Lisp(), p.Rhs.Lisp()})
}

func (p *BinaryOp) String() string {
	var builder strings.Builder
	//
	writeOperand(&builder, p.Op, p.Lhs, false)
	builder.WriteString(" ")
	builder.WriteString(p.Op.String())
	builder.WriteString(" ")
	writeOperand(&builder, p.Op, p.Rhs, true)
	//
	return builder.String()
}

// Write an operand of a given (enclosing) operator, adding brackets only where
// they are needed to preserve the structure of the tree.
func writeOperand(builder *strings.Builder, op Operator, arg Expr, right bool) {
	var brackets bool
	//
	switch e := arg.(type) {
	case *Literal:
		// Negative numbers and fractions are always bracketed to avoid
		// confusion with the enclosing operator.
		brackets = e.Value.Sign() < 0 || !e.Value.IsInt()
	case *BinaryOp:
		p, q := op.precedence(), e.Op.precedence()
		// Exponentiation is right associative, whilst subtraction and division
		// are left associative.
		switch {
		case q < p:
			brackets = true
		case q == p && op == POW:
			brackets = !right
		case q == p:
			brackets = right && !op.Commutative()
		}
	}
	//
	if brackets {
		builder.WriteString("(")
		builder.WriteString(arg.String())
		builder.WriteString(")")
	} else {
		builder.WriteString(arg.String())
	}
}
