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

package kripke_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/crillab/mdk-verifier/kripke"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestDecodeSingleWorldValuation(t *testing.T) {
	t.Parallel()

	in := "c a comment line\n" +
		"s SATISFIABLE\n" +
		"v 1 1 0 0\n" +
		"v 1 0\n"

	k, err := kripke.Decode(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 1, k.NumWorlds)
	require.Equal(t, 1, k.NumVars)
	require.Equal(t, kripke.Holds, k.ValueOf(0, 1))
}

func TestDecodeUnspecifiedAtom(t *testing.T) {
	t.Parallel()

	in := "s SATISFIABLE\n" +
		"v 1 1 0 0\n" +
		"v 0\n"

	k, err := kripke.Decode(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, kripke.Unspecified, k.ValueOf(0, 1))
}

func TestDecodeNegatedAtom(t *testing.T) {
	t.Parallel()

	in := "s SATISFIABLE\nv 1 1 0 0\nv -1 0\n"

	k, err := kripke.Decode(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, kripke.Refuted, k.ValueOf(0, 1))
}

func TestDecodeEdges(t *testing.T) {
	t.Parallel()

	// 2 worlds, w0 -> w1, w1 has p1.
	in := "s SATISFIABLE\n" +
		"v 1 2 0 0\n" +
		"v 0\n" +
		"v 1 0\n" +
		"v 0 w0 w1 0\n"

	k, err := kripke.Decode(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, []int{1}, k.Successors(0))
	require.Empty(t, k.Successors(1))
	require.Equal(t, kripke.Holds, k.ValueOf(1, 1))
}

func TestDecodeUnsatisfiable(t *testing.T) {
	t.Parallel()

	_, err := kripke.Decode(strings.NewReader("s UNSATISFIABLE\n"))
	require.ErrorIs(t, err, kripke.ErrUnsatisfiable)
}

func TestDecodeMissingSatLine(t *testing.T) {
	t.Parallel()

	_, err := kripke.Decode(strings.NewReader("c no status line here\nv 1 1 0 0\nv 1 0\n"))
	require.ErrorIs(t, err, kripke.ErrNotKripkeCNF)
}

func TestDecodeZeroVars(t *testing.T) {
	t.Parallel()

	_, err := kripke.Decode(strings.NewReader("s SATISFIABLE\nv 0 1 0 0\n"))
	require.ErrorIs(t, err, kripke.ErrNoModel)
}

// TestRoundTrip is the §8 round-trip property: decode, encode, decode
// again, and the two decoded structures must agree on every field.
func TestRoundTrip(t *testing.T) {
	t.Parallel()

	in := "s SATISFIABLE\n" +
		"v 2 3 0 0\n" +
		"v 1 -2 0\n" +
		"v 0\n" +
		"v 2 0\n" +
		"v 0 w0 w1 0\n" +
		"v 0 w0 w2 0\n" +
		"v 0 w1 w2 0\n"

	first, err := kripke.Decode(strings.NewReader(in))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, kripke.Encode(&buf, first))

	second, err := kripke.Decode(&buf)
	require.NoError(t, err)

	require.Equal(t, first.NumWorlds, second.NumWorlds)
	require.Equal(t, first.NumVars, second.NumVars)
	for w := 0; w < first.NumWorlds; w++ {
		for a := 1; a <= first.NumVars; a++ {
			require.Equal(t, first.ValueOf(w, a), second.ValueOf(w, a), "world %d atom %d", w, a)
		}
		require.ElementsMatch(t, first.Successors(w), second.Successors(w), "world %d edges", w)
	}
}
