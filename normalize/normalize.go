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

// Package normalize rewrites a parsed term tree into the shape the
// evaluator expects: negation-normal form, flattened n-ary boolean
// operations, box/diamond-lifted modal distributions, modal-chain-size
// annotations, and a fixed child order. Each rewrite is a full traversal,
// applied in that order; see the package-level Run.
package normalize

import "github.com/crillab/mdk-verifier/term"

// Run applies the full normalisation pipeline to root and returns the new
// root (which may differ from the argument if box-lifting collapsed the
// top-level term down to a single surviving child). It mutates the tree in
// place; callers should not continue to use the original root value.
func Run(root *term.Term) *term.Term {
	root = nnf(root)
	root = flatten(root)
	root = boxLift(root)
	annotateChains(root)
	order(root)
	return root
}
