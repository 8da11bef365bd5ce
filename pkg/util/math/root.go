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
	"math/big"
)

// ErrNoExactRoot is returned when a root has no rational value.
var ErrNoExactRoot = errors.New("no exact root")

// ErrNegativeEvenRoot is returned when taking an even root of a negative value.
var ErrNegativeEvenRoot = errors.New("even root of negative value")

// ErrZeroDegree is returned when taking the zeroth root of a value.
var ErrZeroDegree = errors.New("zeroth root")

// IntRoot computes the integer n-th root of a non-negative integer a, that is
// the largest r such that r^n <= a.  The second return indicates whether the
// root is exact (i.e. r^n == a).  The search is a bisection over [0, 2^k] where
// k = bitlen(a)/n + 1, hence it takes at most k+1 iterations.  Degrees of at
// least bitlen(a) return immediately.  This panics if a is negative or n is
// zero.
func IntRoot(a *big.Int, n uint64) (*big.Int, bool) {
	if a.Sign() < 0 {
		panic("root of negative integer")
	} else if n == 0 {
		panic("zeroth root")
	} else if a.Sign() == 0 || a.Cmp(bigOne) == 0 || n == 1 {
		return new(big.Int).Set(a), true
	} else if uint64(a.BitLen()) <= n {
		// 1 <= a < 2^n
		return big.NewInt(1), false
	}
	//
	var (
		lo  = big.NewInt(1)
		hi  = new(big.Int).Lsh(bigOne, uint(uint64(a.BitLen())/n+1))
		mid big.Int
	)
	// Invariant: lo^n <= a < (hi+1)^n
	for lo.Cmp(hi) < 0 {
		// mid = (lo + hi + 1) / 2
		mid.Add(lo, hi)
		mid.Add(&mid, bigOne)
		mid.Rsh(&mid, 1)
		//
		if PowInt(&mid, n).Cmp(a) <= 0 {
			lo.Set(&mid)
		} else {
			hi.Sub(&mid, bigOne)
		}
	}
	//
	return lo, PowInt(lo, n).Cmp(a) == 0
}

// Root returns the exact n-th root of this rational, if one exists.  For odd n
// the root of a negative value is negative; for even n the principal (i.e.
// non-negative) root is returned, and a negative value fails with
// ErrNegativeEvenRoot.  Negative degrees return the reciprocal of the root,
// hence fail for zero.  A degree of zero fails with ErrZeroDegree.  There is no
// bound on the degree.
func (r Rational) Root(n int64) (Rational, error) {
	switch {
	case n == 0:
		return Zero, ErrZeroDegree
	case n < 0:
		root, err := r.root(new(big.Int).Neg(big.NewInt(n)))
		if err != nil {
			return Zero, err
		}
		//
		return root.Inv()
	}
	//
	return r.root(big.NewInt(n))
}

// root computes the n-th root for a positive degree n.
func (r Rational) root(n *big.Int) (Rational, error) {
	num, den := r.parts()
	//
	switch {
	case n.Bit(0) == 0 && num.Sign() < 0:
		return Zero, ErrNegativeEvenRoot
	case r.IsZero() || r.IsOne():
		return r, nil
	case r.IsInt() && num.CmpAbs(bigOne) == 0:
		// -1 with an odd degree
		return r, nil
	case !n.IsUint64():
		return Zero, ErrNoExactRoot
	}
	// Since r is not 0, 1 or -1, an exact root requires a numerator or
	// denominator of at least 2^n.
	degree := n.Uint64()
	if uint64(num.BitLen()) <= degree && uint64(den.BitLen()) <= degree {
		return Zero, ErrNoExactRoot
	}
	// Numerator and denominator are coprime, hence so are their roots.
	p, pExact := IntRoot(new(big.Int).Abs(num), degree)
	q, qExact := IntRoot(den, degree)
	//
	if !pExact || !qExact {
		return Zero, ErrNoExactRoot
	} else if num.Sign() < 0 {
		p.Neg(p)
	}
	//
	return normalise(p, q), nil
}
