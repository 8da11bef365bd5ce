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
package cmd

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDir = "../../testdata/solve"

func testConfig(domain string, trace bool) *Config {
	return &Config{Domain: domain, Jobs: 2, Colour: "never", Trace: trace}
}

func TestReadItems(t *testing.T) {
	items, errs, err := ReadItems([]string{filepath.Join(testDir, "not_unique.lisp")}, []string{"(== (* x 3) 10)", "(+ x 1)"})
	require.NoError(t, err)
	require.Empty(t, errs)
	require.Len(t, items, 6)
	//
	assert.Equal(t, filepath.Join(testDir, "not_unique.lisp")+":2", items[0].Label)
	assert.Equal(t, "<expr 1>:1", items[4].Label)
	assert.True(t, items[4].Term.IsEquation())
	assert.False(t, items[5].Term.IsEquation())
}

func TestReadItems_Errors(t *testing.T) {
	_, errs, err := ReadItems(nil, []string{"(== (+ x y) 1)", "(+ x"})
	require.NoError(t, err)
	require.Len(t, errs, 2)
	assert.Equal(t, "unknown symbol \"y\"", errs[0].Message())
	//
	_, _, err = ReadItems([]string{filepath.Join(testDir, "missing.lisp")}, nil)
	require.Error(t, err)
}

func TestRunSolve(t *testing.T) {
	tests := []struct {
		name     string
		domain   string
		inputs   []string
		ok       bool
		expected []string
	}{
		{
			name:     "rational",
			domain:   DomainRational,
			inputs:   []string{"(== (* x 3) 10)", "(== (^ x 3) 27)"},
			ok:       true,
			expected: []string{"x = 10/3", "x = 3"},
		},
		{
			name:     "rational failures",
			domain:   DomainRational,
			inputs:   []string{"(== (* x 0) 5)", "(== (+ x x) 1)", "(+ x 1)"},
			ok:       false,
			expected: []string{"DivisionByZero", "NotSimple", "expected an equation"},
		},
		{
			name:     "field",
			domain:   DomainBls12_377,
			inputs:   []string{"(== (* x 2) 4)", "(== (- x 1) -3)"},
			ok:       true,
			expected: []string{"x = 2", "x = -2"},
		},
		{
			name:     "field failures",
			domain:   DomainBls12_377,
			inputs:   []string{"(== (^ x 3) 27)"},
			ok:       false,
			expected: []string{"UnsupportedInversion"},
		},
	}
	//
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			//
			items, errs, err := ReadItems(nil, tt.inputs)
			require.NoError(t, err)
			require.Empty(t, errs)
			//
			ok, err := runSolve(context.Background(), testConfig(tt.domain, false), items, &out)
			require.NoError(t, err)
			assert.Equal(t, tt.ok, ok)
			//
			lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
			require.Len(t, lines, len(tt.expected))
			//
			for i, expected := range tt.expected {
				assert.Contains(t, lines[i], expected)
			}
		})
	}
}

func TestRunSolve_Trace(t *testing.T) {
	var out strings.Builder
	//
	items, _, err := ReadItems(nil, []string{"(== (- (/ 12 (+ x 1)) 2) 1)"})
	require.NoError(t, err)
	//
	ok, err := runSolve(context.Background(), testConfig(DomainRational, true), items, &out)
	require.NoError(t, err)
	assert.True(t, ok)
	//
	assert.Contains(t, out.String(), "<expr 1>:1:\n")
	assert.Contains(t, out.String(), "    12 / _ == 3 => _ == 4\n")
	assert.Contains(t, out.String(), "    _ + 1 == 4 => _ == 3\n")
}

func TestRunSolve_Fixture(t *testing.T) {
	var out strings.Builder
	//
	items, errs, err := ReadItems([]string{filepath.Join(testDir, "valid.lisp")}, nil)
	require.NoError(t, err)
	require.Empty(t, errs)
	//
	ok, err := runSolve(context.Background(), testConfig(DomainRational, false), items, &out)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Contains(t, out.String(), "x = 3375719472770")
}

func TestRunCheck(t *testing.T) {
	var out strings.Builder
	//
	items, _, err := ReadItems(nil, []string{"(+ x 1)", "(== (* x x) 1)", "(+ x (/ 1 0))"})
	require.NoError(t, err)
	//
	ok, err := runCheck(testConfig(DomainRational, false), items, &out)
	require.NoError(t, err)
	assert.False(t, ok)
	//
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "simple")
	assert.Contains(t, lines[1], "NotSimple")
	assert.Contains(t, lines[2], "DivisionByZero")
}

func TestRunNormalise(t *testing.T) {
	var out strings.Builder
	//
	items, _, err := ReadItems(nil, []string{"(== (* (+ 1 1) (- x 3)) 4)", "(+ x x)"})
	require.NoError(t, err)
	//
	ok, err := runNormalise(items, &out)
	require.NoError(t, err)
	assert.False(t, ok)
	//
	expected := "<expr 1>:1: 2 * (x - 3) == 4\n" +
		"    1: 2 * _\n" +
		"    2: _ - 3\n" +
		"<expr 2>:1: NotSimple: x + x\n"
	assert.Equal(t, expected, out.String())
}

func TestExitCode(t *testing.T) {
	var buf strings.Builder
	//
	assert.Equal(t, 0, exitCode(&buf, true, nil))
	assert.Equal(t, 1, exitCode(&buf, false, nil))
	assert.Empty(t, buf.String())
	// Errors are always reported
	assert.Equal(t, 2, exitCode(&buf, true, errors.New("write failed")))
	assert.Equal(t, "write failed\n", buf.String())
}
