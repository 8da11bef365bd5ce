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

	"github.com/cespare/xxhash/v2"
)

// Tags distinguishing node kinds within a fingerprint.
const (
	literalTag  = byte(0xf0)
	variableTag = byte(0xf1)
	equationTag = byte(0xf2)
)

// Fingerprint computes a structural hash of a given expression.  Structurally
// identical expressions always have the same fingerprint.
func Fingerprint(e Expr) uint64 {
	h := xxhash.New()
	writeFingerprint(h, e)
	//
	return h.Sum64()
}

// Fingerprint computes a structural hash of this equation.
func (p Equation) Fingerprint() uint64 {
	h := xxhash.New()
	writeFingerprint(h, p.Lhs)
	mustWrite(h, []byte{equationTag})
	mustWriteString(h, p.Rhs.String())
	//
	return h.Sum64()
}

// Write a pre-order encoding of an expression into the digest.  Literals are
// written as their canonical string, which is unique since rationals are held
// in lowest terms.
func writeFingerprint(h *xxhash.Digest, e Expr) {
	switch e := e.(type) {
	case *Literal:
		mustWrite(h, []byte{literalTag})
		mustWriteString(h, e.Value.String())
		// Terminate so adjacent literals cannot run together.
		mustWrite(h, []byte{0})
	case *Variable:
		mustWrite(h, []byte{variableTag})
	case *BinaryOp:
		mustWrite(h, []byte{byte(e.Op)})
		writeFingerprint(h, e.Lhs)
		writeFingerprint(h, e.Rhs)
	default:
		panic(fmt.Sprintf("unknown expression encountered (%T)", e))
	}
}

func mustWrite(h *xxhash.Digest, bytes []byte) {
	if n, err := h.Write(bytes); err != nil || n != len(bytes) {
		panic(err)
	}
}

func mustWriteString(h *xxhash.Digest, s string) {
	if n, err := h.WriteString(s); err != nil || n != len(s) {
		panic(err)
	}
}
