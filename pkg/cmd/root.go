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
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// Configuration loaded before any subcommand runs.
var config *Config

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "symple",
	Short: "An exact solver for simple equations.",
	Long: `An exact solver for equations over a single variable, where every operator
has exactly one operand containing the variable (e.g. "(== (+ (* 2 x) 1) 7)").`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		//
		if config, err = LoadConfig(GetString(cmd, "config"), cmd.Flags()); err != nil {
			return err
		}
		//
		if config.Verbose {
			log.SetLevel(log.DebugLevel)
		}
		//
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			fmt.Printf("symple %s\n", versionString())
		} else {
			fmt.Println(cmd.UsageString())
		}
	},
}

func versionString() string {
	if Version != "" {
		// Built via "make"
		return Version
	} else if info, ok := debug.ReadBuildInfo(); ok {
		// Built via "go install"
		return info.Main.Version
	}
	// Unknown, perhaps "go run"
	return "(unknown version)"
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// Register the flags corresponding to configuration keys.
func addConfigFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "configuration file (default is ./symple.yaml, if present)")
	flags.BoolP("verbose", "v", false, "increase logging verbosity")
	flags.String("domain", DomainRational, "solve over the rationals, or the bls12-377 scalar field")
	flags.IntP("jobs", "j", 4, "maximum number of equations to solve concurrently")
	flags.String("colour", "auto", "use colour in output (auto, always or never)")
	flags.Bool("trace", false, "report the inversions applied when solving")
}

func init() {
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	addConfigFlags(rootCmd.PersistentFlags())
}
