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

// Package logging wraps go.uber.org/zap for the verifier's diagnostic
// output: stage-by-stage tracing of parsing, normalisation, witness
// decoding, and checking, active only under --verbose.
package logging

import "go.uber.org/zap"

// New builds a console logger at debug level when verbose is true, or a
// no-op logger otherwise so call sites never need to guard every call
// with an if.
func New(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	logger, err := cfg.Build()
	if err != nil {
		// Development config only fails to build on a bad encoder name,
		// which this package never changes; falling back to a no-op
		// logger is safer than failing the whole run over diagnostics.
		return zap.NewNop()
	}
	return logger
}
