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

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRunAgainstRealFixtures(t *testing.T) {
	t.Parallel()

	mismatches, fixtures, err := Run("../../../golden/testdata")
	require.NoError(t, err)
	require.NotEmpty(t, fixtures)
	require.Empty(t, mismatches)
}

func TestWriteDiffFormatsEachMismatch(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	WriteDiff(&buf, []Mismatch{{Name: "scenario", Expected: "OK 1", Actual: "UNKNOWN: x"}})

	out := buf.String()
	require.Contains(t, out, "scenario:")
	require.Contains(t, out, "OK 1")
	require.Contains(t, out, "UNKNOWN: x")
}
