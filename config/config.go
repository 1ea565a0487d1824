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

// Package config holds the verifier's user-tunable settings, populated
// from CLI flags and threaded explicitly through the pipeline rather than
// read from package-level globals.
package config

import "time"

// Config is the full set of settings a single verification run is
// parameterized by.
type Config struct {
	// TimeLimit is the wall-clock bound enforced around the evaluator
	// (§5). Zero disables the bound.
	TimeLimit time.Duration

	// ChainShrink gates the §4.4.1 optimisation. Default true; disabling
	// it is a debugging aid only, since correctness never depends on it.
	ChainShrink bool

	// Verbose turns on structured tracing: one debug line per pipeline
	// step (formula opened, parsed, normalised, witness decoded, check
	// finished). The decoder and the individual normalisation passes log
	// nothing themselves.
	Verbose bool

	// JSON switches the CLI's verdict output to a single JSON object
	// instead of the §6.1 plain-text lines.
	JSON bool

	// DumpAST prints the parsed, pre-normalisation formula before
	// checking (supplemental debug flag, see SPEC_FULL.md).
	DumpAST bool

	// DumpNormalized prints the normalised formula before checking
	// (supplemental debug flag, see SPEC_FULL.md).
	DumpNormalized bool
}

// Default returns the configuration the CLI starts from before flags are
// applied.
func Default() Config {
	return Config{
		TimeLimit:   DefaultTimeLimit,
		ChainShrink: true,
	}
}
