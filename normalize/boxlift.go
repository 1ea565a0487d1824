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

// boxLift applies the K-valid distributive equivalences
//
//	□a ∧ □b ≡ □(a ∧ b)
//	◇a ∨ ◇b ≡ ◇(a ∨ b)
//
// (the dual distributions do not hold in K) to every boolean operation,
// after recursing into children. Merging 3+ matching modal children
// collapses them all into the first one found. If the merge leaves this
// boolean operation with a single surviving child, that child is returned
// in its place (invariant I3: a boolean operation never has fewer than 2
// children).
//
// The freshly built inner child of the surviving modal term is not itself
// box-lifted again; a single post-order sweep is all §4.2.3 requires.
func boxLift(t *term.Term) *term.Term {
	if t.Kind == term.Modal {
		t.Children[0] = boxLift(t.Children[0])
		return t
	}
	if t.Kind != term.Bool {
		return t
	}

	for i, c := range t.Children {
		t.Children[i] = boxLift(c)
	}

	wantOp := term.Box
	if t.BoolOp == term.Or {
		wantOp = term.Diamond
	}

	target := -1
	remove := make(map[int]bool)
	for i, c := range t.Children {
		if c.Kind != term.Modal || c.ModalOp != wantOp {
			continue
		}
		if target == -1 {
			target = i
			continue
		}
		merged := t.Children[target]
		merged.Children[0] = term.NewBoolOp(t.BoolOp, merged.Children[0], c.Children[0])
		remove[i] = true
	}

	if len(remove) > 0 {
		kept := make([]*term.Term, 0, len(t.Children)-len(remove))
		for i, c := range t.Children {
			if !remove[i] {
				kept = append(kept, c)
			}
		}
		t.Children = kept
	}

	if len(t.Children) == 1 {
		return t.Children[0]
	}
	return t
}
