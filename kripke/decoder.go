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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/crillab/mdk-verifier/config"
)

// ErrUnsatisfiable is returned when the witness text declares its formula
// unsatisfiable ("s UNSATISFIABLE"): this checker only validates positive
// witnesses.
var ErrUnsatisfiable = errors.New("kripke: UNSATISFIABLE formulae are not checkable yet")

// ErrNotKripkeCNF is returned when the input never carries an
// "s SATISFIABLE" status line.
var ErrNotKripkeCNF = errors.New("kripke: solution not in Kripke-CNF")

// ErrNoModel is returned when the header declares zero propositional
// variables.
var ErrNoModel = errors.New("kripke: no model was provided")

// Decode reads a Kripke-CNF witness from r (§4.3): c-comment lines are
// skipped, a single s-status line is required, and v-lines carry, in
// order, a four-integer header (numVars, numWorlds, two reserved slots),
// one valuation line per world, then edge lines.
func Decode(r io.Reader) (*Kripke, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), config.MaxLineLength)

	var (
		k          *Kripke
		satFound   bool
		haveHeader bool
		numWorlds  int
		worldsRead int
	)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		switch line[0] {
		case 'c':
			continue
		case 's':
			if strings.Contains(line, "UNSATISFIABLE") {
				return nil, ErrUnsatisfiable
			}
			if strings.Contains(line, "SATISFIABLE") {
				satFound = true
			}
			continue
		case 'v':
			fields := strings.Fields(line[1:])

			if !haveHeader {
				numVars, err := parseHeader(fields)
				if err != nil {
					return nil, err
				}
				if numVars == 0 {
					return nil, ErrNoModel
				}
				numWorlds = mustInt(fields[1])
				k = New(numWorlds, numVars)
				haveHeader = true
				continue
			}

			if worldsRead < numWorlds {
				decodeValuation(k, worldsRead, fields)
				worldsRead++
				continue
			}

			w1, w2, err := decodeEdge(fields)
			if err != nil {
				return nil, err
			}
			k.AddEdge(w1, w2)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("kripke: reading witness: %w", err)
	}

	if !satFound {
		return nil, ErrNotKripkeCNF
	}
	if k == nil {
		return nil, ErrNoModel
	}
	return k, nil
}

// parseHeader validates and parses the four-integer "v" header line,
// returning numVars.
func parseHeader(fields []string) (int, error) {
	if len(fields) < 2 {
		return 0, fmt.Errorf("kripke: malformed header line %q", strings.Join(fields, " "))
	}
	numVars, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("kripke: malformed header line: %w", err)
	}
	return numVars, nil
}

// decodeValuation applies every nonzero signed literal in a world's
// valuation line (the trailing "0" terminator is ignored, like every other
// token that parses to 0).
func decodeValuation(k *Kripke, world int, fields []string) {
	for _, f := range fields {
		v := mustInt(f)
		if v != 0 {
			k.Assign(world, v)
		}
	}
}

// decodeEdge reads the world-source and world-target tokens of an edge
// line. Per §4.3, positions 2 and 3 (1-indexed after the leading "v") each
// carry a token whose first byte is a tag and whose decimal suffix is the
// world id.
func decodeEdge(fields []string) (w1, w2 int, err error) {
	if len(fields) < 3 {
		return 0, 0, fmt.Errorf("kripke: malformed edge line %q", strings.Join(fields, " "))
	}
	w1, err = strconv.Atoi(fields[1][1:])
	if err != nil {
		return 0, 0, fmt.Errorf("kripke: malformed edge source: %w", err)
	}
	w2, err = strconv.Atoi(fields[2][1:])
	if err != nil {
		return 0, 0, fmt.Errorf("kripke: malformed edge target: %w", err)
	}
	return w1, w2, nil
}

// mustInt parses a decimal field known by its caller to have been
// produced by strings.Fields over a line we already own; a non-numeric
// literal is treated as 0, matching atoi's C semantics in the original
// decoder.
func mustInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}
