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

package kripke

import (
	"fmt"
	"io"
)

// Encode writes k back out in Kripke-CNF form: a status line, the header
// line, one valuation line per world, then one line per edge. It is the
// inverse of Decode, built solely to make the round-trip property (§8)
// testable; only that test calls it, and nothing in the checker's own
// evaluation path or in tools/cmd/goldentest does.
func Encode(w io.Writer, k *Kripke) error {
	if _, err := fmt.Fprintln(w, "s SATISFIABLE"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "v %d %d 0 0\n", k.NumVars, k.NumWorlds); err != nil {
		return err
	}

	for world := 0; world < k.NumWorlds; world++ {
		if _, err := io.WriteString(w, "v"); err != nil {
			return err
		}
		for atom := 1; atom <= k.NumVars; atom++ {
			switch k.ValueOf(world, atom) {
			case Holds:
				if _, err := fmt.Fprintf(w, " %d", atom); err != nil {
					return err
				}
			case Refuted:
				if _, err := fmt.Fprintf(w, " -%d", atom); err != nil {
					return err
				}
			}
		}
		if _, err := io.WriteString(w, " 0\n"); err != nil {
			return err
		}
	}

	for world, succs := range k.edges {
		for _, target := range succs {
			if _, err := fmt.Fprintf(w, "v 0 w%d w%d 0\n", world, target); err != nil {
				return err
			}
		}
	}
	return nil
}
