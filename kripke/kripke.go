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

// Package kripke models the candidate witness structure against which a
// formula is checked: a dense, world-indexed three-valued valuation plus a
// per-world accessibility relation, together with its Kripke-CNF text
// codec.
package kripke

// Value is a three-valued atom assignment in a single world.
type Value int8

const (
	// Unspecified means neither the atom nor its negation is asserted in a
	// world; this is the source of UNKNOWN verdicts.
	Unspecified Value = 0
	// Holds means the atom is asserted true in a world.
	Holds Value = 1
	// Refuted means the atom's negation is asserted in a world.
	Refuted Value = -1
)

// Kripke is a witness structure: NumWorlds worlds, NumVars propositional
// variables, a dense world-major valuation, and an edges relation.
//
// World 0 is always the designated evaluation world. valuation is indexed
// [world][atomID-1] since atoms are 1-based; edges[w] is the ordered
// (duplicates-permitted) sequence of w's successors.
type Kripke struct {
	NumWorlds int
	NumVars   int

	valuation [][]Value
	edges     [][]int
}

// New allocates an empty Kripke structure of the given size, every atom
// Unspecified and every world with no outgoing edges.
func New(numWorlds, numVars int) *Kripke {
	k := &Kripke{
		NumWorlds: numWorlds,
		NumVars:   numVars,
		valuation: make([][]Value, numWorlds),
		edges:     make([][]int, numWorlds),
	}
	for w := range k.valuation {
		k.valuation[w] = make([]Value, numVars)
	}
	return k
}

// Assign sets the valuation of atom id (1-based) in world w. A positive id
// asserts the atom; a negative id asserts its negation — mirroring the
// signed-literal convention of assignValue in the original Kripke model.
func (k *Kripke) Assign(world int, id int) {
	atom := id
	if atom < 0 {
		atom = -atom
	}
	if id > 0 {
		k.valuation[world][atom-1] = Holds
	} else if id < 0 {
		k.valuation[world][atom-1] = Refuted
	}
}

// ValueOf returns the valuation of atom id (1-based) in world w.
func (k *Kripke) ValueOf(world, id int) Value {
	return k.valuation[world][id-1]
}

// AddEdge records a w1 -> w2 accessibility edge.
func (k *Kripke) AddEdge(w1, w2 int) {
	k.edges[w1] = append(k.edges[w1], w2)
}

// Successors returns the worlds accessible from w, in the order they were
// added.
func (k *Kripke) Successors(w int) []int {
	return k.edges[w]
}

// NextWorld returns the sole successor of w. Callers must only use it when
// Successors(w) has exactly one element (the chain-shrinking precondition).
func (k *Kripke) NextWorld(w int) int {
	return k.edges[w][0]
}
