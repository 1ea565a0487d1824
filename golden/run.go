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

package golden

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/crillab/mdk-verifier/check"
	"github.com/crillab/mdk-verifier/diagnostic"
	"github.com/crillab/mdk-verifier/kripke"
	"github.com/crillab/mdk-verifier/normalize"
	"github.com/crillab/mdk-verifier/parser"
)

// Evaluate runs the checker's library API (no subprocess) against a
// fixture's formula and witness and renders the same line(s)
// cmd/modalcheck would print for it.
func Evaluate(f Fixture) (string, error) {
	root, err := parser.Parse(strings.NewReader(f.Formula))
	if err != nil {
		return "", fmt.Errorf("golden: %s: parsing formula: %w", f.Name, err)
	}
	root = normalize.Run(root)

	k, err := kripke.Decode(strings.NewReader(f.Witness))
	if err != nil {
		switch err {
		case kripke.ErrUnsatisfiable:
			var buf bytes.Buffer
			diagnostic.PrintUnsatisfiable(&buf)
			return strings.TrimSpace(buf.String()), nil
		case kripke.ErrNotKripkeCNF:
			var buf bytes.Buffer
			diagnostic.PrintNotKripkeCNF(&buf)
			return strings.TrimSpace(buf.String()), nil
		default:
			return "", fmt.Errorf("golden: %s: decoding witness: %w", f.Name, err)
		}
	}

	e := check.NewEvaluator(k)
	verdict := e.Check(root)

	var buf bytes.Buffer
	diagnostic.PrintVerdict(&buf, verdict, k.NumWorlds, e.Reason)
	return strings.TrimSpace(buf.String()), nil
}
