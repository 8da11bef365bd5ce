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
	"errors"
	"fmt"

	"github.com/consensys/go-symple/pkg/expr"
	"github.com/consensys/go-symple/pkg/util/math"
)

// Kind identifies the reason why an equation could not be solved.
type Kind uint8

const (
	// NotSimple indicates the left-hand side is not a simple expression.
	NotSimple Kind = iota
	// DivisionByZero indicates a constant divisor folded to zero, or some
	// inversion would divide by zero.
	DivisionByZero
	// NoExactRoot indicates the inversion of a power has no exact rational
	// solution.
	NoExactRoot
	// NegativeEvenRoot indicates an even root of a negative value was
	// required.
	NegativeEvenRoot
	// UnsupportedInversion indicates an operator cannot be inverted exactly
	// (e.g. "c ^ x").
	UnsupportedInversion
	// NotUnique indicates the equation has infinitely many solutions (e.g.
	// "x * 0 == 0").
	NotUnique
	// ExponentTooLarge indicates a power whose exponent exceeds
	// math.MaxExponent.
	ExponentTooLarge
)

func (k Kind) String() string {
	switch k {
	case NotSimple:
		return "NotSimple"
	case DivisionByZero:
		return "DivisionByZero"
	case NoExactRoot:
		return "NoExactRoot"
	case NegativeEvenRoot:
		return "NegativeEvenRoot"
	case UnsupportedInversion:
		return "UnsupportedInversion"
	case NotUnique:
		return "NotUnique"
	case ExponentTooLarge:
		return "ExponentTooLarge"
	}
	//
	return fmt.Sprintf("Kind(%d)", k)
}

// Error reports that an equation could not be solved.  Errors match (via
// errors.Is) any other error of the same kind, such that callers can test
// against the sentinels below.
type Error struct {
	Kind Kind
	// Message providing further detail, which may be empty.
	Msg string
}

// Sentinel errors, one per kind.
var (
	ErrNotSimple            = &Error{Kind: NotSimple}
	ErrDivisionByZero       = &Error{Kind: DivisionByZero}
	ErrNoExactRoot          = &Error{Kind: NoExactRoot}
	ErrNegativeEvenRoot     = &Error{Kind: NegativeEvenRoot}
	ErrUnsupportedInversion = &Error{Kind: UnsupportedInversion}
	ErrNotUnique            = &Error{Kind: NotUnique}
	ErrExponentTooLarge     = &Error{Kind: ExponentTooLarge}
)

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	//
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Is matches any error of the same kind.
func (e *Error) Is(target error) bool {
	var t *Error
	//
	return errors.As(target, &t) && t.Kind == e.Kind
}

// NewError constructs an error of a given kind with a formatted message.
func NewError(kind Kind, format string, args ...any) *Error {
	return &Error{kind, fmt.Sprintf(format, args...)}
}

// KindOf determines the kind of a given solver error, returning false if it is
// not a solver error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	//
	if errors.As(err, &e) {
		return e.Kind, true
	}
	//
	return 0, false
}

// Wrap translates an error arising from folding, normalisation or arithmetic
// into a solver error, decorating it with a given context.  Errors which are
// not recognised are returned as is.
func Wrap(err error, context string) error {
	var kind Kind
	//
	switch {
	case errors.Is(err, expr.ErrNotSimple):
		kind = NotSimple
	case errors.Is(err, math.ErrDivisionByZero):
		kind = DivisionByZero
	case errors.Is(err, math.ErrNoExactRoot):
		kind = NoExactRoot
	case errors.Is(err, math.ErrNegativeEvenRoot):
		kind = NegativeEvenRoot
	case errors.Is(err, math.ErrExponentTooLarge):
		kind = ExponentTooLarge
	default:
		return err
	}
	//
	return NewError(kind, "%s", context)
}
