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

package term

// class ranks a term's Kind into the three evaluation-order buckets of
// §4.2.5: leaves first, then boolean operations, then modal operations
// last.
func class(t *Term) int {
	switch t.Kind {
	case Prop, Const:
		return 0
	case Bool:
		return 1
	default:
		return 2
	}
}

// Less reports whether a should be evaluated before b as a child of the
// same boolean operation: leaves first, then boolean operations ordered by
// more children first, then modal operations last. It is the comparator
// behind the normalize package's order pass (§4.2.5); cheap-to-evaluate subterms going first
// maximises short-circuit success in the evaluator.
//
// Less is a strict weak ordering: two terms of the same class other than
// Bool (i.e. two leaves, or two modal terms) are never Less of each other
// in either direction, so sort.SliceStable leaves their relative order
// untouched — which is what makes normalize.Run idempotent (P4).
func Less(a, b *Term) bool {
	ca, cb := class(a), class(b)
	if ca != cb {
		return ca < cb
	}
	if ca != 1 {
		return false
	}
	return len(a.Children) > len(b.Children)
}
