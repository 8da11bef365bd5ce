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
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	// Avoid picking up a config file from the working directory
	t.Chdir(t.TempDir())
	//
	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	//
	assert.False(t, cfg.Verbose)
	assert.Equal(t, DomainRational, cfg.Domain)
	assert.Equal(t, 4, cfg.Jobs)
	assert.Equal(t, "auto", cfg.Colour)
	assert.False(t, cfg.Trace)
}

func TestLoadConfig_Precedence(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	// Default config file is picked up
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultConfigFile),
		[]byte("jobs: 2\ndomain: bls12-377\ncolour: never\ntrace: true\n"), 0o600))
	//
	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Jobs)
	assert.Equal(t, DomainBls12_377, cfg.Domain)
	assert.Equal(t, "never", cfg.Colour)
	assert.True(t, cfg.Trace)
	// Environment overrides file
	t.Setenv("SYMPLE_JOBS", "8")
	t.Setenv("SYMPLE_DOMAIN", "rational")
	//
	cfg, err = LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Jobs)
	assert.Equal(t, DomainRational, cfg.Domain)
	// Explicitly set flags override environment
	flags := testFlags()
	require.NoError(t, flags.Parse([]string{"--jobs", "3", "--colour", "always"}))
	//
	cfg, err = LoadConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Jobs)
	assert.Equal(t, "always", cfg.Colour)
	// Unchanged flags do not override
	assert.Equal(t, DomainRational, cfg.Domain)
	assert.True(t, cfg.Trace)
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	t.Chdir(t.TempDir())
	//
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("verbose: true\n"), 0o600))
	//
	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
	//
	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.Error(t, err)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		errSubstr string
	}{
		{name: "unknown domain", args: []string{"--domain", "complex"}, errSubstr: "invalid domain"},
		{name: "zero jobs", args: []string{"--jobs", "0"}, errSubstr: "invalid number of jobs"},
		{name: "negative jobs", args: []string{"--jobs=-1"}, errSubstr: "invalid number of jobs"},
		{name: "unknown colour", args: []string{"--colour", "sometimes"}, errSubstr: "invalid colour mode"},
	}
	//
	t.Chdir(t.TempDir())
	//
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := testFlags()
			require.NoError(t, flags.Parse(tt.args))
			//
			_, err := LoadConfig("", flags)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

// Construct a fresh flag set mirroring the persistent flags of the root command.
func testFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	addConfigFlags(flags)
	//
	return flags
}
