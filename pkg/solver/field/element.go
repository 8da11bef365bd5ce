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
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Element wraps fr.Element, providing an immutable value-oriented interface
// over the BLS12-377 scalar field.
type Element struct {
	*fr.Element
}

// Zero returns the additive identity.
func Zero() Element {
	return Element{new(fr.Element)}
}

// One returns the multiplicative identity.
func One() Element {
	return Element{new(fr.Element).SetOne()}
}

// NewElement constructs an element from a (possibly negative) machine
// integer.
func NewElement(n int64) Element {
	return Element{new(fr.Element).SetInt64(n)}
}

// FromBigInt constructs an element from an arbitrary integer, reduced modulo
// the field order.
func FromBigInt(n *big.Int) Element {
	return Element{new(fr.Element).SetBigInt(n)}
}

// Modulus returns the order of the field.
func Modulus() *big.Int {
	return fr.Modulus()
}

// Add x + y
func (x Element) Add(y Element) Element {
	return Element{new(fr.Element).Add(x.Element, y.Element)}
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	return Element{new(fr.Element).Sub(x.Element, y.Element)}
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	return Element{new(fr.Element).Mul(x.Element, y.Element)}
}

// Neg -x
func (x Element) Neg() Element {
	return Element{new(fr.Element).Neg(x.Element)}
}

// Inverse x⁻¹, or 0 if x = 0.
func (x Element) Inverse() Element {
	return Element{new(fr.Element).Inverse(x.Element)}
}

// Exp x^k for a non-negative exponent k.
func (x Element) Exp(k *big.Int) Element {
	if k.Sign() < 0 {
		panic("negative exponent")
	}
	//
	return Element{new(fr.Element).Exp(*x.Element, k)}
}

// Sqrt returns a square root of x, or false if x is not a quadratic residue.
func (x Element) Sqrt() (Element, bool) {
	root := new(fr.Element).Sqrt(x.Element)
	//
	if root == nil {
		return Zero(), false
	}
	//
	return Element{root}, true
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y, with respect to the
// canonical (i.e. smallest non-negative) representation of each element.
func (x Element) Cmp(y Element) int {
	return x.Element.Cmp(y.Element)
}

// Equal checks whether x = y.
func (x Element) Equal(y Element) bool {
	return x.Element.Equal(y.Element)
}

// BigInt returns the canonical representation of x as an integer.
func (x Element) BigInt() *big.Int {
	return x.Element.BigInt(new(big.Int))
}
