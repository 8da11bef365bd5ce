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
package termio

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// ColourMode determines when ANSI escapes should be used.
type ColourMode uint8

const (
	// COLOUR_AUTO enables colour only when writing to a terminal.
	COLOUR_AUTO ColourMode = iota
	// COLOUR_ALWAYS enables colour unconditionally.
	COLOUR_ALWAYS
	// COLOUR_NEVER disables colour unconditionally.
	COLOUR_NEVER
)

// ParseColourMode parses one of "auto", "always" or "never".
func ParseColourMode(mode string) (ColourMode, error) {
	switch mode {
	case "auto":
		return COLOUR_AUTO, nil
	case "always":
		return COLOUR_ALWAYS, nil
	case "never":
		return COLOUR_NEVER, nil
	}
	//
	return COLOUR_AUTO, fmt.Errorf("invalid colour mode \"%s\" (expected auto, always or never)", mode)
}

func (p ColourMode) String() string {
	switch p {
	case COLOUR_ALWAYS:
		return "always"
	case COLOUR_NEVER:
		return "never"
	default:
		return "auto"
	}
}

// Enabled determines whether colour should be used for a given output file.
func (p ColourMode) Enabled(file *os.File) bool {
	switch p {
	case COLOUR_ALWAYS:
		return true
	case COLOUR_NEVER:
		return false
	default:
		return IsTerminal(file)
	}
}

// IsTerminal determines whether a given file is attached to a terminal.
func IsTerminal(file *os.File) bool {
	return term.IsTerminal(int(file.Fd()))
}
