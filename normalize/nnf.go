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

// nnf pushes negation inward so that, post-condition, Negated is only ever
// true on a Prop term. Boolean and modal operators swap
// (∧↔∨, □↔◇) and hand their own Negated flag down to their children before
// recursing.
func nnf(t *term.Term) *term.Term {
	switch t.Kind {
	case term.Prop:
		// Negation is legal at the leaves; nothing to push further.
	case term.Const:
		if t.Negated {
			t.Negated = false
			t.Value = !t.Value
		}
	case term.Bool:
		if t.Negated {
			if t.BoolOp == term.And {
				t.BoolOp = term.Or
			} else {
				t.BoolOp = term.And
			}
			for _, c := range t.Children {
				c.Negate()
			}
			t.Negated = false
		}
		for i, c := range t.Children {
			t.Children[i] = nnf(c)
		}
	case term.Modal:
		if t.Negated {
			if t.ModalOp == term.Box {
				t.ModalOp = term.Diamond
			} else {
				t.ModalOp = term.Box
			}
			t.Children[0].Negate()
			t.Negated = false
		}
		t.Children[0] = nnf(t.Children[0])
	}
	return t
}
