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
)

// Step represents a single operator along the path from the root of a simple
// expression to its variable.  Every step has one literal operand, whilst the
// other operand is the remainder of the chain.
type Step struct {
	Op Operator
	// Literal operand of this step.
	Literal math.Rational
	// LiteralLeft indicates the literal is the left operand (e.g. "c - x"),
	// rather than the right operand (e.g. "x - c").
	LiteralLeft bool
}

// Apply this step to a given inner expression.
func (p Step) Apply(inner Expr) Expr {
	if p.LiteralLeft {
		return Apply(p.Op, Lit(p.Literal), inner)
	}
	//
	return Apply(p.Op, inner, Lit(p.Literal))
}

func (p Step) String() string {
	if p.LiteralLeft {
		return fmt.Sprintf("%s %s _", p.Literal.String(), p.Op.String())
	}
	//
	return fmt.Sprintf("_ %s %s", p.Op.String(), p.Literal.String())
}

// NormalForm is a flattened representation of a simple expression as the
// sequence of steps from its root (outermost) down to the variable.
type NormalForm struct {
	Steps []Step
}

// Len returns the number of steps in this normal form.
func (p NormalForm) Len() int {
	return len(p.Steps)
}

// Expr reconstructs the (folded) expression represented by this normal form.
func (p NormalForm) Expr() Expr {
	e := Var()
	//
	for i := len(p.Steps) - 1; i >= 0; i-- {
		e = p.Steps[i].Apply(e)
	}
	//
	return e
}

func (p NormalForm) String() string {
	var builder strings.Builder
	//
	builder.WriteString("[")
	//
	for i, step := range p.Steps {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(step.String())
	}
	//
	builder.WriteString("]")
	//
	return builder.String()
}

// Linearize flattens a simple, folded expression into its normal form.  This
// fails with ErrNotSimple if some operator on the path to the variable does not
// have exactly one literal operand, or the path does not end in the variable.
func Linearize(e Expr) (NormalForm, error) {
	var steps []Step
	//
	for {
		switch node := e.(type) {
		case *Variable:
			return NormalForm{steps}, nil
		case *Literal:
			return NormalForm{}, ErrNotSimple
		case *BinaryOp:
			l, lok := node.Lhs.(*Literal)
			r, rok := node.Rhs.(*Literal)
			//
			switch {
			case lok && !rok:
				steps = append(steps, Step{node.Op, l.Value, true})
				e = node.Rhs
			case rok && !lok:
				steps = append(steps, Step{node.Op, r.Value, false})
				e = node.Lhs
			default:
				return NormalForm{}, ErrNotSimple
			}
		default:
			panic(fmt.Sprintf("unknown expression encountered (%T)", e))
		}
	}
}

// Normalise validates, folds and then linearizes a given expression.  An
// expression which does not contain the variable at all is rejected as not
// simple, since it has no normal form.
func Normalise(e Expr) (NormalForm, error) {
	if simple, variable := analyse(e); !variable || !simple {
		return NormalForm{}, ErrNotSimple
	}
	//
	folded, err := FoldConstants(e)
	if err != nil {
		return NormalForm{}, err
	}
	//
	return Linearize(folded)
}
