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

package normalize

import "github.com/crillab/mdk-verifier/term"

// flatten absorbs a boolean operation's same-operator boolean children into
// itself: (A ∧ (B ∧ C)) becomes (A ∧ B ∧ C). Post-condition: no boolean
// operation has a child with the same operator.
//
// The source this is ported from mutates its child list while ranging over
// it and relies on swap-pop semantics to make that safe, which in practice
// skips the element swapped into the just-vacated slot. Rather than port
// that hazard, every absorption here restarts the scan from the top until
// a fixed point is reached, exactly as the spec's design notes recommend.
func flatten(t *term.Term) *term.Term {
	if t.Kind == term.Modal {
		t.Children[0] = flatten(t.Children[0])
		return t
	}
	if t.Kind != term.Bool {
		return t
	}

	for i, c := range t.Children {
		t.Children[i] = flatten(c)
	}

	for {
		absorbed := false
		for i := 0; i < len(t.Children); i++ {
			c := t.Children[i]
			if c.Kind == term.Bool && c.BoolOp == t.BoolOp {
				t.DeleteChild(i)
				t.Children = append(t.Children, c.Children...)
				absorbed = true
				break
			}
		}
		if !absorbed {
			break
		}
	}
	return t
}
