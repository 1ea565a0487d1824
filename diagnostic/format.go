//  Copyright (c) 2023 Uber Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package diagnostic renders a checker verdict into the exact stdout
// strings §6.1 fixes, colored the way the teacher's golden-test tool
// colors diff output.
package diagnostic

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/crillab/mdk-verifier/check"
)

var (
	okColor      = color.New(color.FgGreen)
	errColor     = color.New(color.FgRed)
	unknownColor = color.New(color.FgYellow)
)

// PrintVerdict writes the §6.1 stdout line(s) for a completed verdict
// (never called for a timeout; see PrintTimeout).
func PrintVerdict(w io.Writer, verdict check.Verdict, numWorlds int, reason check.Reason) {
	switch verdict {
	case check.OK:
		okColor.Fprintf(w, "OK %d\n", numWorlds)
	case check.KO:
		errColor.Fprintln(w, "ERROR: model is incorrect")
		fmt.Fprintln(w, reason.Message())
	default:
		unknownColor.Fprintf(w, "UNKNOWN: %s\n", reason.Message())
	}
}

// PrintTimeout writes the fixed time-limit-exceeded message (§6.1).
func PrintTimeout(w io.Writer, seconds float64) {
	unknownColor.Fprintf(w, "UNKNOWN: VERIFIER EXCEEDED TIME LIMIT (%g s)\n", seconds)
}

// PrintUnsatisfiable writes the fixed message for a witness that declares
// its formula unsatisfiable (§6.1).
func PrintUnsatisfiable(w io.Writer) {
	errColor.Fprintln(w, "ERROR: UNSATISFIABLE formulae are not checkable yet.")
}

// PrintNotKripkeCNF writes the fixed message for a witness missing its
// "s SATISFIABLE" status line (§6.1).
func PrintNotKripkeCNF(w io.Writer) {
	errColor.Fprintln(w, "ERROR: solution not in Kripke-CNF.")
}
