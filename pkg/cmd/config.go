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
	"fmt"
	"os"
	"strings"

	"github.com/consensys/go-symple/pkg/util/termio"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const (
	// DefaultConfigFile is loaded (when present) if no config file is given
	// explicitly.
	DefaultConfigFile = "symple.yaml"
	// EnvPrefix is the prefix for environment variables overriding the
	// configuration (e.g. SYMPLE_JOBS=8).
	EnvPrefix = "SYMPLE_"
	// DomainRational solves equations over the rationals.
	DomainRational = "rational"
	// DomainBls12_377 solves equations over the BLS12-377 scalar field.
	DomainBls12_377 = "bls12-377"
)

// Config determines how equations are solved and reported.
type Config struct {
	// Verbose enables debug logging.
	Verbose bool `koanf:"verbose"`
	// Domain over which equations are solved.
	Domain string `koanf:"domain"`
	// Jobs is the maximum number of equations solved concurrently.
	Jobs int `koanf:"jobs"`
	// Colour is one of "auto", "always" or "never".
	Colour string `koanf:"colour"`
	// Trace enables reporting of the inversions applied.
	Trace bool `koanf:"trace"`
}

// Flags which are not configuration keys.
var nonConfigFlags = map[string]bool{"config": true, "version": true, "expr": true, "help": true}

// LoadConfig loads configuration from defaults, an (optional) config file,
// environment variables and finally flags.  Later sources take precedence
// over earlier ones, and only flags which were explicitly set are considered.
// If cfgFile is empty then DefaultConfigFile is loaded if it exists.
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")
	// 1. Load defaults
	if err := k.Load(confmap.Provider(map[string]any{
		"verbose": false,
		"domain":  DomainRational,
		"jobs":    4,
		"colour":  termio.COLOUR_AUTO.String(),
		"trace":   false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}
	// 2. Load config file
	if cfgFile == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			cfgFile = DefaultConfigFile
		}
	}
	//
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}
	// 3. Load environment variables (e.g. SYMPLE_JOBS -> jobs)
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}
	// 4. Load flags
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed || nonConfigFlags[f.Name] {
				return "", nil
			}
			//
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}
	// 5. Decode and validate
	var cfg Config
	//
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	} else if err := cfg.Validate(); err != nil {
		return nil, err
	}
	//
	return &cfg, nil
}

// Validate checks that every configuration value is permitted.
func (c *Config) Validate() error {
	switch {
	case c.Domain != DomainRational && c.Domain != DomainBls12_377:
		return fmt.Errorf("invalid domain \"%s\" (expected %s or %s)", c.Domain, DomainRational, DomainBls12_377)
	case c.Jobs < 1:
		return fmt.Errorf("invalid number of jobs (%d)", c.Jobs)
	}
	//
	_, err := termio.ParseColourMode(c.Colour)
	//
	return err
}

// ColourEnabled determines whether ANSI escapes should be used on stdout.
func (c *Config) ColourEnabled() bool {
	// Validated already
	mode, _ := termio.ParseColourMode(c.Colour)
	//
	return mode.Enabled(os.Stdout)
}
