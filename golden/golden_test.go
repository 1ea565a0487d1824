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

package golden_test

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/crillab/mdk-verifier/golden"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestFixtures(t *testing.T) {
	color.NoColor = true

	fixtures, err := golden.Load("testdata")
	require.NoError(t, err)
	require.NotEmpty(t, fixtures)

	for _, f := range fixtures {
		f := f
		t.Run(f.Name, func(t *testing.T) {
			got, err := golden.Evaluate(f)
			require.NoError(t, err)
			require.Equal(t, f.Expected, got)
		})
	}
}
