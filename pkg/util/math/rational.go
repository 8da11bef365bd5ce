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
package math

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrDivisionByZero is returned when dividing by (or inverting) zero.
var ErrDivisionByZero = errors.New("division by zero")

// ErrExponentTooLarge is returned when a power would require an exponent
// larger than MaxExponent on a base other than 0, 1 or -1.  Roots are not
// bounded.
var ErrExponentTooLarge = errors.New("exponent too large")

// MaxExponent bounds the magnitude of exponents accepted for bases other than
// 0, 1 and -1.
const MaxExponent = 1 << 16

var (
	bigOne      = big.NewInt(1)
	maxExponent = big.NewInt(MaxExponent)
)

// Rational represents an exact fraction of two unbounded integers.  Rationals
// are always held in lowest terms with a positive denominator, such that zero
// has the unique representation 0/1.  A rational is immutable: every operation
// returns a fresh value and the underlying integers are never modified after
// construction.  The zero value of Rational is the number zero.
type Rational struct {
	// numerator, or nil for zero.
	num *big.Int
	// denominator, or nil for one.
	den *big.Int
}

// Zero is the rational 0/1.
var Zero = Rational{}

// One is the rational 1/1.
var One = Int64(1)

// Int64 constructs a rational from a given (machine) integer.
func Int64(n int64) Rational {
	return normalise(big.NewInt(n), big.NewInt(1))
}

// FromInt constructs a rational from a given big integer.  The integer is
// cloned.
func FromInt(n *big.Int) Rational {
	return normalise(new(big.Int).Set(n), big.NewInt(1))
}

// Frac64 constructs the rational p/q from two machine integers, or fails if q
// is zero.
func Frac64(p int64, q int64) (Rational, error) {
	return NewRational(big.NewInt(p), big.NewInt(q))
}

// NewRational constructs the rational num/den, reducing it to lowest terms.
// Both integers are cloned.  This fails if the denominator is zero.
func NewRational(num *big.Int, den *big.Int) (Rational, error) {
	if den.Sign() == 0 {
		return Zero, ErrDivisionByZero
	}
	//
	return normalise(new(big.Int).Set(num), new(big.Int).Set(den)), nil
}

// ParseRational parses a rational from a string of the form "n" or "n/d",
// where n and d are (optionally signed) decimal integers.
func ParseRational(s string) (Rational, error) {
	var (
		num, den big.Int
		ok       bool
	)
	//
	if i := strings.IndexByte(s, '/'); i >= 0 {
		if _, ok = num.SetString(s[:i], 10); !ok {
			return Zero, fmt.Errorf("invalid numerator \"%s\"", s[:i])
		} else if _, ok = den.SetString(s[i+1:], 10); !ok {
			return Zero, fmt.Errorf("invalid denominator \"%s\"", s[i+1:])
		}
		//
		return NewRational(&num, &den)
	} else if _, ok = num.SetString(s, 10); !ok {
		return Zero, fmt.Errorf("invalid rational \"%s\"", s)
	}
	//
	return normalise(&num, big.NewInt(1)), nil
}

// normalise takes ownership of the given integers and reduces them to lowest
// terms with a positive denominator.
func normalise(num *big.Int, den *big.Int) Rational {
	var gcd big.Int
	//
	if num.Sign() == 0 {
		return Zero
	} else if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	// Euclid on magnitudes
	gcd.GCD(nil, nil, new(big.Int).Abs(num), den)
	//
	if gcd.Cmp(bigOne) != 0 {
		num.Quo(num, &gcd)
		den.Quo(den, &gcd)
	}
	//
	if den.Cmp(bigOne) == 0 {
		return Rational{num, nil}
	}
	//
	return Rational{num, den}
}

// Num returns (a copy of) the numerator of this rational.
func (r Rational) Num() *big.Int {
	if r.num == nil {
		return new(big.Int)
	}
	//
	return new(big.Int).Set(r.num)
}

// Den returns (a copy of) the denominator of this rational, which is always
// positive.
func (r Rational) Den() *big.Int {
	if r.den == nil {
		return big.NewInt(1)
	}
	//
	return new(big.Int).Set(r.den)
}

// numerator and denominator without copying, for internal read-only use.
func (r Rational) parts() (*big.Int, *big.Int) {
	var (
		num = r.num
		den = r.den
	)
	//
	if num == nil {
		num = new(big.Int)
	}
	//
	if den == nil {
		den = bigOne
	}
	//
	return num, den
}

// Sign returns -1, 0 or +1 depending on whether this rational is negative, zero
// or positive.
func (r Rational) Sign() int {
	if r.num == nil {
		return 0
	}
	//
	return r.num.Sign()
}

// IsZero checks whether this rational is zero.
func (r Rational) IsZero() bool { return r.Sign() == 0 }

// IsOne checks whether this rational is one.
func (r Rational) IsOne() bool {
	return r.den == nil && r.num != nil && r.num.Cmp(bigOne) == 0
}

// IsInt checks whether this rational is an integer (i.e. has denominator 1).
func (r Rational) IsInt() bool { return r.den == nil }

// Add returns r + s.
func (r Rational) Add(s Rational) Rational {
	a, b := r.parts()
	c, d := s.parts()
	// a/b + c/d = (ad + cb) / bd
	num := new(big.Int).Mul(a, d)
	num.Add(num, new(big.Int).Mul(c, b))
	//
	return normalise(num, new(big.Int).Mul(b, d))
}

// Sub returns r - s.
func (r Rational) Sub(s Rational) Rational {
	return r.Add(s.Neg())
}

// Mul returns r * s.
func (r Rational) Mul(s Rational) Rational {
	a, b := r.parts()
	c, d := s.parts()
	//
	return normalise(new(big.Int).Mul(a, c), new(big.Int).Mul(b, d))
}

// Div returns r / s, or fails if s is zero.
func (r Rational) Div(s Rational) (Rational, error) {
	inv, err := s.Inv()
	if err != nil {
		return Zero, err
	}
	//
	return r.Mul(inv), nil
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	if r.num == nil {
		return Zero
	}
	//
	return Rational{new(big.Int).Neg(r.num), r.den}
}

// Abs returns |r|.
func (r Rational) Abs() Rational {
	if r.Sign() < 0 {
		return r.Neg()
	}
	//
	return r
}

// Inv returns 1/r, or fails if r is zero.
func (r Rational) Inv() (Rational, error) {
	if r.IsZero() {
		return Zero, ErrDivisionByZero
	}
	//
	num, den := r.parts()
	//
	return normalise(new(big.Int).Set(den), new(big.Int).Set(num)), nil
}

// Pow returns r raised to a given integer power.  Negative exponents yield the
// reciprocal of the positive power, and therefore fail when r is zero.  Any
// exponent is accepted for the bases 0, 1 and -1; otherwise, the exponent's
// magnitude cannot exceed MaxExponent.
func (r Rational) Pow(exp *big.Int) (Rational, error) {
	switch {
	case exp.Sign() == 0:
		return One, nil
	case r.IsZero() && exp.Sign() < 0:
		return Zero, ErrDivisionByZero
	case r.IsZero() || r.IsOne():
		return r, nil
	case r.IsInt() && r.num.CmpAbs(bigOne) == 0:
		// -1 raised to some power
		if exp.Bit(0) == 0 {
			return One, nil
		}
		//
		return r, nil
	case exp.CmpAbs(maxExponent) > 0:
		return Zero, ErrExponentTooLarge
	}
	//
	n := exp.Int64()
	num, den := r.parts()
	// Raise both halves separately, since powers of coprime integers remain
	// coprime.
	p := PowInt(num, uint64(abs64(n)))
	q := PowInt(den, uint64(abs64(n)))
	//
	if n < 0 {
		p, q = q, p
	}
	//
	return normalise(p, q), nil
}

// Pow64 returns r raised to a given machine integer power.
func (r Rational) Pow64(exp int64) (Rational, error) {
	return r.Pow(big.NewInt(exp))
}

// PowRat returns r raised to a rational power p/q, defined as the q-th root of
// r raised to the power p.  This is only defined when the root is itself
// rational, and fails with ErrNoExactRoot (or ErrNegativeEvenRoot) otherwise.
func (r Rational) PowRat(exp Rational) (Rational, error) {
	p, q := exp.parts()
	//
	if exp.IsInt() {
		return r.Pow(p)
	}
	//
	root, err := r.root(q)
	if err != nil {
		return Zero, err
	}
	//
	return root.Pow(p)
}

// Cmp compares r and s, returning -1 if r < s, 0 if r == s and +1 if r > s.
// This is computed by cross-multiplication since denominators are positive.
func (r Rational) Cmp(s Rational) int {
	a, b := r.parts()
	c, d := s.parts()
	//
	return new(big.Int).Mul(a, d).Cmp(new(big.Int).Mul(c, b))
}

// Equal checks whether r and s denote the same number.
func (r Rational) Equal(s Rational) bool {
	return r.Cmp(s) == 0
}

func (r Rational) String() string {
	num, den := r.parts()
	//
	if r.IsInt() {
		return num.String()
	}
	//
	return fmt.Sprintf("%s/%s", num.String(), den.String())
}

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	//
	return n
}
