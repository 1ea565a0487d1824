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

package normalize_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/crillab/mdk-verifier/normalize"
	"github.com/crillab/mdk-verifier/term"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// allNegationsOnAtoms walks the tree and asserts invariant I4/P1: Negated
// is true only on Prop terms.
func allNegationsOnAtoms(t *testing.T, n *term.Term) {
	t.Helper()
	if n.Negated {
		require.Equal(t, term.Prop, n.Kind, "negated term must be a proposition")
	}
	for _, c := range n.Children {
		allNegationsOnAtoms(t, c)
	}
}

// noSameOpChild walks the tree and asserts invariant P2: no boolean
// operation has a child with the same operator.
func noSameOpChild(t *testing.T, n *term.Term) {
	t.Helper()
	if n.Kind == term.Bool {
		for _, c := range n.Children {
			if c.Kind == term.Bool {
				require.NotEqual(t, n.BoolOp, c.BoolOp)
			}
		}
	}
	for _, c := range n.Children {
		noSameOpChild(t, c)
	}
}

func TestNNFPushesNegationToLeaves(t *testing.T) {
	t.Parallel()

	// ~( [r1]p1 & <r1>p2 )
	root := term.NewBoolOp(term.And,
		term.NewModalOp(term.Box, 1, term.NewProp(1)),
		term.NewModalOp(term.Diamond, 1, term.NewProp(2)),
	)
	root.Negate()

	got := normalize.Run(root)
	allNegationsOnAtoms(t, got)

	// De Morgan + modal duality: ~([]p1 & <>p2) == (<>~p1 | []~p2)
	require.Equal(t, "(<r1>~p1 | [r1]~p2)", got.String())
}

func TestFlattenRemovesSameOpNesting(t *testing.T) {
	t.Parallel()

	// (p1 & (p2 & (p3 & p4)))
	root := term.NewBoolOp(term.And,
		term.NewProp(1),
		term.NewBoolOp(term.And,
			term.NewProp(2),
			term.NewBoolOp(term.And, term.NewProp(3), term.NewProp(4)),
		),
	)

	got := normalize.Run(root)
	noSameOpChild(t, got)
	require.Len(t, got.Children, 4)
}

func TestBoxLiftingMergesPairwise(t *testing.T) {
	t.Parallel()

	// [r1]p1 & [r1]p2  ==>  [r1](p1 & p2)
	root := term.NewBoolOp(term.And,
		term.NewModalOp(term.Box, 1, term.NewProp(1)),
		term.NewModalOp(term.Box, 1, term.NewProp(2)),
	)

	got := normalize.Run(root)
	require.Equal(t, term.Modal, got.Kind)
	require.Equal(t, term.Box, got.ModalOp)
	require.Equal(t, "[r1](p1 & p2)", got.String())
}

func TestBoxLiftingMergesMultiple(t *testing.T) {
	t.Parallel()

	// [r1]p1 & [r1]p2 & [r1]p3 collapses all three boxes into one.
	root := term.NewBoolOp(term.And,
		term.NewModalOp(term.Box, 1, term.NewProp(1)),
		term.NewModalOp(term.Box, 1, term.NewProp(2)),
		term.NewModalOp(term.Box, 1, term.NewProp(3)),
	)

	got := normalize.Run(root)
	require.Equal(t, term.Modal, got.Kind)
	require.Equal(t, 1, len(got.Children))
}

func TestDiamondLiftingOnOr(t *testing.T) {
	t.Parallel()

	// <r1>p1 | <r1>p2  ==>  <r1>(p1 | p2)
	root := term.NewBoolOp(term.Or,
		term.NewModalOp(term.Diamond, 1, term.NewProp(1)),
		term.NewModalOp(term.Diamond, 1, term.NewProp(2)),
	)

	got := normalize.Run(root)
	require.Equal(t, "<r1>(p1 | p2)", got.String())
}

func TestModalChainAnnotation(t *testing.T) {
	t.Parallel()

	// [r1][r1][r1]p1 has chain size 3 at the outermost box.
	root := term.NewModalOp(term.Box, 1,
		term.NewModalOp(term.Box, 1,
			term.NewModalOp(term.Box, 1, term.NewProp(1)),
		),
	)

	got := normalize.Run(root)
	require.Equal(t, 3, got.ChainSize)
	require.Equal(t, 2, got.Children[0].ChainSize)
	require.Equal(t, 1, got.Children[0].Children[0].ChainSize)
	require.Equal(t, 0, got.Children[0].Children[0].Children[0].ChainSize)
}

func TestChainBreaksAcrossOperators(t *testing.T) {
	t.Parallel()

	// [r1]<r1>p1: the diamond breaks the box chain, so each has size 1.
	root := term.NewModalOp(term.Box, 1,
		term.NewModalOp(term.Diamond, 1, term.NewProp(1)),
	)

	got := normalize.Run(root)
	require.Equal(t, 1, got.ChainSize)
	require.Equal(t, 1, got.Children[0].ChainSize)
}

func TestChildOrdering(t *testing.T) {
	t.Parallel()

	// A boolean op with a leaf, a small AND, a bigger AND, and a modal
	// child should come out leaf, bigger-AND, smaller-AND, modal.
	root := term.NewBoolOp(term.Or,
		term.NewModalOp(term.Box, 1, term.NewProp(5)),
		term.NewProp(1),
		term.NewBoolOp(term.And, term.NewProp(2), term.NewProp(3)),
		term.NewBoolOp(term.And, term.NewProp(2), term.NewProp(3), term.NewProp(4)),
	)

	got := normalize.Run(root)
	require.Equal(t, term.Prop, got.Children[0].Kind)
	require.Equal(t, 3, len(got.Children[1].Children))
	require.Equal(t, 2, len(got.Children[2].Children))
	require.Equal(t, term.Modal, got.Children[3].Kind)
}

// TestIdempotence is property P4: applying the full pipeline a second time
// produces a structurally identical tree.
func TestIdempotence(t *testing.T) {
	t.Parallel()

	root := term.NewBoolOp(term.And,
		term.NewModalOp(term.Box, 1, term.NewProp(1)),
		term.NewModalOp(term.Box, 1, term.NewProp(2)),
		term.NewBoolOp(term.Or, term.NewProp(3), term.NewProp(4)),
	)
	root.Children[2].Negate()

	once := normalize.Run(root.Clone())
	twice := normalize.Run(once.Clone())

	require.Empty(t, cmp.Diff(once, twice))
}
