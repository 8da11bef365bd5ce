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
	"testing"
)

func Test_Rational_Normalise(t *testing.T) {
	checkParse(t, "6/8", "3/4")
	checkParse(t, "-6/8", "-3/4")
	checkParse(t, "6/-8", "-3/4")
	checkParse(t, "-6/-8", "3/4")
	checkParse(t, "0/5", "0")
	checkParse(t, "10/5", "2")
	checkParse(t, "91894585615351", "91894585615351")
}

func Test_Rational_ZeroUnique(t *testing.T) {
	values := []Rational{Zero, Int64(0), FromInt(big.NewInt(0)), parse(t, "0/7"), Int64(3).Sub(Int64(3))}
	//
	for i, v := range values {
		if v.Num().Sign() != 0 || v.Den().Cmp(big.NewInt(1)) != 0 {
			t.Errorf("zero #%d represented as %s/%s", i, v.Num(), v.Den())
		} else if !v.IsZero() || !v.IsInt() || !v.Equal(Zero) {
			t.Errorf("zero #%d not recognised", i)
		}
	}
}

func Test_Rational_Arithmetic(t *testing.T) {
	a := parse(t, "1/2")
	b := parse(t, "1/3")
	//
	checkValue(t, a.Add(b), "5/6")
	checkValue(t, a.Sub(b), "1/6")
	checkValue(t, b.Sub(a), "-1/6")
	checkValue(t, a.Mul(b), "1/6")
	checkValue(t, a.Neg(), "-1/2")
	checkValue(t, a.Neg().Abs(), "1/2")
	//
	q, err := a.Div(b)
	if err != nil {
		t.Fatal(err)
	}
	//
	checkValue(t, q, "3/2")
	//
	inv, err := parse(t, "-2/7").Inv()
	if err != nil {
		t.Fatal(err)
	}
	//
	checkValue(t, inv, "-7/2")
}

func Test_Rational_Immutable(t *testing.T) {
	a := parse(t, "3/4")
	num := a.Num()
	num.SetInt64(99)
	// Arithmetic must not change operands
	_ = a.Add(a)
	_ = a.Mul(a)
	_, _ = a.Pow64(5)
	//
	checkValue(t, a, "3/4")
}

func Test_Rational_DivisionByZero(t *testing.T) {
	if _, err := One.Div(Zero); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("expected division by zero, got %v", err)
	}
	//
	if _, err := Zero.Inv(); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("expected division by zero, got %v", err)
	}
	//
	if _, err := Frac64(1, 0); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("expected division by zero, got %v", err)
	}
	//
	if _, err := Zero.Pow64(-1); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("expected division by zero, got %v", err)
	}
}

func Test_Rational_Pow(t *testing.T) {
	checkPow(t, "2/3", 3, "8/27")
	checkPow(t, "2/3", -2, "9/4")
	checkPow(t, "-2", 3, "-8")
	checkPow(t, "-1", 1<<40, "1")
	checkPow(t, "-1", 1<<40+1, "-1")
	checkPow(t, "0", 1<<40, "0")
	checkPow(t, "5", 0, "1")
	checkPow(t, "0", 0, "1")
	//
	if _, err := Int64(2).Pow64(MaxExponent + 1); !errors.Is(err, ErrExponentTooLarge) {
		t.Errorf("expected exponent too large, got %v", err)
	}
}

func Test_Rational_PowRat(t *testing.T) {
	checkPowRat(t, "4", "1/2", "2")
	checkPowRat(t, "8", "2/3", "4")
	checkPowRat(t, "-8", "1/3", "-2")
	checkPowRat(t, "9/4", "-1/2", "2/3")
	//
	if _, err := Int64(2).PowRat(parse(t, "1/2")); !errors.Is(err, ErrNoExactRoot) {
		t.Errorf("expected no exact root, got %v", err)
	}
	//
	if _, err := Int64(-4).PowRat(parse(t, "1/2")); !errors.Is(err, ErrNegativeEvenRoot) {
		t.Errorf("expected negative even root, got %v", err)
	}
}

func Test_Rational_Cmp(t *testing.T) {
	values := []string{"-91894585615351", "-3/2", "-1", "-1/3", "0", "1/1000000000000", "1/3", "1/2", "2", "91894585615351"}
	//
	for i := range values {
		for j := range values {
			expected := 0
			if i < j {
				expected = -1
			} else if i > j {
				expected = 1
			}
			//
			if c := parse(t, values[i]).Cmp(parse(t, values[j])); c != expected {
				t.Errorf("cmp(%s,%s) == %d != %d", values[i], values[j], c, expected)
			}
		}
	}
}

func Test_Rational_ParseErr(t *testing.T) {
	for _, s := range []string{"", "x", "1/", "/2", "1.5", "1/0"} {
		if v, err := ParseRational(s); err == nil {
			t.Errorf("parsing \"%s\" should have failed (got %s)", s, v)
		}
	}
}

func checkParse(t *testing.T, input string, expected string) {
	checkValue(t, parse(t, input), expected)
}

func checkPow(t *testing.T, input string, exp int64, expected string) {
	if val, err := parse(t, input).Pow64(exp); err != nil {
		t.Errorf("(%s)^%d failed: %s", input, exp, err)
	} else {
		checkValue(t, val, expected)
	}
}

func checkPowRat(t *testing.T, input string, exp string, expected string) {
	if val, err := parse(t, input).PowRat(parse(t, exp)); err != nil {
		t.Errorf("(%s)^(%s) failed: %s", input, exp, err)
	} else {
		checkValue(t, val, expected)
	}
}

func checkValue(t *testing.T, actual Rational, expected string) {
	t.Helper()
	//
	if actual.String() != expected {
		t.Errorf("expected %s, got %s", expected, actual)
	}
}

func parse(t *testing.T, input string) Rational {
	t.Helper()
	//
	val, err := ParseRational(input)
	if err != nil {
		t.Fatalf("invalid rational \"%s\": %s", input, err)
	}
	//
	return val
}
