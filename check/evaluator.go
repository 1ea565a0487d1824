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

// Package check implements the three-valued recursive model checker: it
// walks a normalised term tree against a Kripke witness and decides OK, KO,
// or UNKNOWN, recording the innermost cause of any non-OK verdict along
// the way.
package check

import (
	"github.com/crillab/mdk-verifier/kripke"
	"github.com/crillab/mdk-verifier/term"
)

// Verdict is the checker's three-valued output.
type Verdict int

const (
	// OK means the witness verifies the formula.
	OK Verdict = iota
	// KO means the witness is refuted by a concrete violation.
	KO
	// Unknown means the witness is incomplete with respect to the formula.
	Unknown
)

func (v Verdict) String() string {
	switch v {
	case OK:
		return "OK"
	case KO:
		return "KO"
	default:
		return "UNKNOWN"
	}
}

// Evaluator carries everything a Check call needs: the witness to check
// against, the chain-shrinking toggle, and the reason channel that
// accumulates across the whole recursive walk. Unlike the original's
// process-wide formula singleton and static reason triple, every field
// here is owned by one Evaluator value — see SPEC_FULL.md's Open
// Questions disposition.
type Evaluator struct {
	Kripke *kripke.Kripke

	// ChainShrink gates the §4.4.1 optimisation. Correctness does not
	// depend on it; it exists purely to keep deep linear chains from
	// recursing one stack frame per world.
	ChainShrink bool

	// Reason holds the innermost cause of the last non-OK verdict
	// produced anywhere in the walk.
	Reason Reason
}

// NewEvaluator builds an Evaluator with chain-shrinking enabled, the
// default matching the original's SHRINK_CHAIN_OF_WORLDS compile-time
// flag.
func NewEvaluator(k *kripke.Kripke) *Evaluator {
	return &Evaluator{Kripke: k, ChainShrink: true}
}

// Check decides the verdict of root against e's witness, starting
// evaluation at world 0, the designated evaluation world.
func (e *Evaluator) Check(root *term.Term) Verdict {
	return e.checkBranch(root, 0)
}

func (e *Evaluator) checkBranch(t *term.Term, w int) Verdict {
	switch t.Kind {
	case term.Prop:
		return e.checkProp(t, w)
	case term.Const:
		if t.Value {
			return OK
		}
		return KO
	case term.Bool:
		if t.BoolOp == term.Or {
			return e.checkOr(t, w)
		}
		return e.checkAnd(t, w)
	case term.Modal:
		return e.checkModal(t, w)
	}
	return Unknown
}

func (e *Evaluator) checkProp(t *term.Term, w int) Verdict {
	sigma := kripke.Holds
	if t.Negated {
		sigma = kripke.Refuted
	}

	v := e.Kripke.ValueOf(w, t.AtomID)
	switch v {
	case sigma:
		return OK
	case kripke.Unspecified:
		e.Reason.set(t, NotVarFoundNeitherOpposite, w)
		return Unknown
	default:
		e.Reason.set(t, NotVarFoundButOpposite, w)
		return KO
	}
}

func (e *Evaluator) checkOr(t *term.Term, w int) Verdict {
	sawKO := false
	sawUnknown := false
	for _, c := range t.Children {
		switch e.checkBranch(c, w) {
		case OK:
			return OK
		case KO:
			sawKO = true
		case Unknown:
			sawUnknown = true
		}
	}
	if !sawUnknown {
		return KO
	}
	if sawKO {
		e.Reason.set(t, UnknownOrKO, w)
	} else {
		e.Reason.set(t, UnknownOrUnknown, w)
	}
	return Unknown
}

func (e *Evaluator) checkAnd(t *term.Term, w int) Verdict {
	sawUnknown := false
	for _, c := range t.Children {
		switch e.checkBranch(c, w) {
		case KO:
			return KO
		case Unknown:
			sawUnknown = true
		}
	}
	if sawUnknown {
		e.Reason.set(t, UnknownAndUnknown, w)
		return Unknown
	}
	return OK
}

// checkModal evaluates a box or diamond term, applying chain-shrinking
// (§4.4.1) first: while the chain of same-operator modals is longer than
// one and the current world has exactly one successor, jump straight to
// the far end of the chain instead of recursing one modal per world.
//
// The diamond-exhaustion reason is recorded against t, the term as it
// entered this call — not the shrunk term walked down to — matching
// ModalOperation::checkBranch's setReason(this, ...) in the original,
// which references the outer modal regardless of how far chain-shrinking
// advanced internally.
func (e *Evaluator) checkModal(t *term.Term, w int) Verdict {
	check := t
	chainSize := t.ChainSize
	successors := e.Kripke.Successors(w)

	if e.ChainShrink {
		for chainSize > 1 && len(successors) == 1 {
			w = e.Kripke.NextWorld(w)
			successors = e.Kripke.Successors(w)
			chainSize--
			check = check.Children[0]
		}
	}

	child := check.Children[0]

	if t.ModalOp == term.Diamond {
		for _, w2 := range successors {
			if e.checkBranch(child, w2) == OK {
				return OK
			}
		}
		e.Reason.set(t, NoEdgeIsGivingWhatWeSearch, w)
		return Unknown
	}

	// Box: vacuously OK with no successors (boundary behaviour, §8).
	for _, w2 := range successors {
		switch e.checkBranch(child, w2) {
		case KO:
			return KO
		case Unknown:
			return Unknown
		}
	}
	return OK
}
