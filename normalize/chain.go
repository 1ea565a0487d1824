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

// annotateChains computes ChainSize for every term: 0 for non-modal terms,
// which also reset the running counter; for a modal
// term, 1 plus its child's ChainSize if the child is a modal term of the
// same operator, otherwise 1.
func annotateChains(t *term.Term) {
	if t.Kind != term.Modal {
		t.ChainSize = 0
		for _, c := range t.Children {
			annotateChains(c)
		}
		return
	}

	child := t.Children[0]
	annotateChains(child)

	if child.Kind == term.Modal && child.ModalOp == t.ModalOp {
		t.ChainSize = child.ChainSize + 1
	} else {
		t.ChainSize = 1
	}
}
