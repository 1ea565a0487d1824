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

import (
	"sort"

	"github.com/crillab/mdk-verifier/term"
)

// order recursively sorts the children of every boolean operation by
// term.Less (§4.2.5): leaves first, then boolean operations with more
// children first, then modal operations last. Cheap-to-evaluate subterms
// go first to maximise short-circuit success in the evaluator.
func order(t *term.Term) {
	if len(t.Children) == 0 {
		return
	}
	sort.SliceStable(t.Children, func(i, j int) bool {
		return term.Less(t.Children[i], t.Children[j])
	})
	for _, c := range t.Children {
		order(c)
	}
}
