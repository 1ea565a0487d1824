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

// Package golden loads the checker's test corpus from txtar fixtures: one
// archive per scenario, bundling a formula, a Kripke-CNF witness, and the
// expected verdict line into a single file. This repurposes
// golang.org/x/tools/txtar, a direct dependency the teacher otherwise
// pulls in only for its go/analysis-based checker plumbing, which has no
// use here (see SPEC_FULL.md's DOMAIN STACK).
package golden

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/txtar"
)

// Fixture is one golden scenario: a formula, a witness, and the verdict
// line the checker is expected to print for them.
type Fixture struct {
	// Name is the fixture's file name, minus extension.
	Name string
	// Formula is the InToHyLo-syntax formula text.
	Formula string
	// Witness is the Kripke-CNF witness text.
	Witness string
	// Expected is the expected §6.1 stdout line(s), trimmed.
	Expected string
}

// Load reads every *.txtar file under dir as a Fixture.
func Load(dir string) ([]Fixture, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.txtar"))
	if err != nil {
		return nil, fmt.Errorf("golden: listing fixtures: %w", err)
	}

	fixtures := make([]Fixture, 0, len(paths))
	for _, p := range paths {
		f, err := LoadFile(p)
		if err != nil {
			return nil, err
		}
		fixtures = append(fixtures, f)
	}
	return fixtures, nil
}

// LoadFile reads a single fixture file.
func LoadFile(path string) (Fixture, error) {
	archive, err := txtar.ParseFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("golden: parsing %s: %w", path, err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	f := Fixture{Name: name}
	for _, section := range archive.Files {
		switch section.Name {
		case "formula":
			f.Formula = string(section.Data)
		case "witness":
			f.Witness = string(section.Data)
		case "expected":
			f.Expected = strings.TrimSpace(string(section.Data))
		default:
			return Fixture{}, fmt.Errorf("golden: %s: unknown section %q", path, section.Name)
		}
	}
	if f.Formula == "" || f.Witness == "" || f.Expected == "" {
		return Fixture{}, fmt.Errorf("golden: %s: missing formula, witness, or expected section", path)
	}
	return f, nil
}

// WriteFile serializes a fixture back to disk in the canonical three-
// section layout, for -update regeneration.
func WriteFile(path string, f Fixture) error {
	archive := &txtar.Archive{
		Files: []txtar.File{
			{Name: "formula", Data: []byte(f.Formula)},
			{Name: "witness", Data: []byte(f.Witness)},
			{Name: "expected", Data: []byte(f.Expected + "\n")},
		},
	}
	return os.WriteFile(path, txtar.Format(archive), 0o644)
}
