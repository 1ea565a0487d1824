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

package check

import (
	"fmt"

	"github.com/crillab/mdk-verifier/term"
)

// Code identifies the terminal demotion point that most recently produced
// a non-OK verdict (§4.5).
type Code int

const (
	// NoReasonFound is the zero value: no demotion has occurred yet.
	NoReasonFound Code = iota
	// NotVarFoundButOpposite is a KO reason: the proposition's negation
	// holds where the proposition itself was required.
	NotVarFoundButOpposite
	// NotVarFoundNeitherOpposite is an UNKNOWN reason: neither the
	// proposition nor its negation is specified in the world.
	NotVarFoundNeitherOpposite
	// NoEdgeIsGivingWhatWeSearch is an UNKNOWN reason: a diamond exhausted
	// every successor without finding one that satisfied its child.
	NoEdgeIsGivingWhatWeSearch
	// UnknownOrKO is an UNKNOWN reason: a disjunction had at least one KO
	// branch and the rest UNKNOWN.
	UnknownOrKO
	// UnknownOrUnknown is an UNKNOWN reason: every branch of a disjunction
	// was UNKNOWN.
	UnknownOrUnknown
	// UnknownAndUnknown is an UNKNOWN reason: a conjunction had no KO
	// branch but at least one UNKNOWN.
	UnknownAndUnknown
)

// Reason is the innermost cause of the most recently demoted (non-OK)
// verdict: which term, which code, and which world. It replaces the
// original's process-wide static triple with an explicit field on
// Evaluator (see the Open Questions disposition); semantics are otherwise
// identical — unconditional overwrite from every terminal demotion point,
// so the final state after the top-level Check call reflects whichever
// demotion happened last in evaluation order ("innermost writer wins").
//
// Its value is well-defined only when the accompanying verdict is KO or
// UNKNOWN (§7); reading it after an OK verdict is meaningless.
type Reason struct {
	Code  Code
	Term  *term.Term
	World int
}

func (r *Reason) set(t *term.Term, code Code, world int) {
	r.Code = code
	r.Term = t
	r.World = world
}

// Message renders the reason the way the original's getReasonUnchecked
// does, one human-readable sentence per code.
func (r Reason) Message() string {
	switch r.Code {
	case NotVarFoundButOpposite:
		return fmt.Sprintf("%s is not in w_%d but its negation is!", r.Term.String(), r.World)
	case NotVarFoundNeitherOpposite:
		return fmt.Sprintf("%s is not in w_%d (nor its negation)", r.Term.String(), r.World)
	case NoEdgeIsGivingWhatWeSearch:
		return fmt.Sprintf("no world accessible by w_%d contains what we want", r.World)
	case UnknownOrKO:
		return fmt.Sprintf("at least one part of an OR is wrong in w_%d and the rest is UNKNOWN", r.World)
	case UnknownOrUnknown:
		return fmt.Sprintf("all the branches of an OR are UNKNOWN in w_%d", r.World)
	case UnknownAndUnknown:
		return fmt.Sprintf("all the branches of an AND are UNKNOWN in w_%d", r.World)
	default:
		return ""
	}
}
