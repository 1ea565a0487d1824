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

package config

import "time"

// This file hosts non-user-configurable parameters.

// DefaultTimeLimit is the wall-clock bound the CLI enforces when the user
// does not pass --time-limit (§5).
const DefaultTimeLimit = 300 * time.Second

// MaxLineLength bounds a single Kripke-CNF line (§6.3).
const MaxLineLength = 100_000
