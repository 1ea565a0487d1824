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

// Package main implements the golden tests for the checker: every
// testdata/*.txtar fixture's formula and witness are run through the
// checker's library API (no subprocess, no branch-switching — we aren't
// diffing two compiler versions, just current behavior against a
// recorded expectation) and compared against its recorded expected
// verdict line. Adapted from the teacher's tools/cmd/golden-test, which
// diffs NilAway's stdlib diagnostics between a base and a test git
// branch; -update here rewrites a fixture's expected section in place,
// the same role that tool's base/test diff output plays.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"

	"github.com/crillab/mdk-verifier/golden"
)

// Mismatch is one fixture whose actual output disagreed with its recorded
// expectation.
type Mismatch struct {
	Name     string
	Expected string
	Actual   string
}

// Run evaluates every fixture in dir and returns the mismatches, in
// fixture order.
func Run(dir string) ([]Mismatch, []golden.Fixture, error) {
	fixtures, err := golden.Load(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("loading fixtures: %w", err)
	}

	var mismatches []Mismatch
	for _, f := range fixtures {
		got, err := golden.Evaluate(f)
		if err != nil {
			return nil, nil, fmt.Errorf("evaluating %s: %w", f.Name, err)
		}
		if got != f.Expected {
			mismatches = append(mismatches, Mismatch{Name: f.Name, Expected: f.Expected, Actual: got})
		}
	}
	return mismatches, fixtures, nil
}

// WriteDiff prints each mismatch as a colored +/- diff, the same
// convention the teacher's golden-test tool uses for its diagnostic diffs.
func WriteDiff(w io.Writer, mismatches []Mismatch) {
	plus := color.New(color.FgGreen)
	minus := color.New(color.FgRed)

	for _, m := range mismatches {
		fmt.Fprintf(w, "%s:\n", m.Name)
		minus.Fprintf(w, "- %s\n", m.Expected)
		plus.Fprintf(w, "+ %s\n", m.Actual)
	}
}

func update(dir string, fixtures []golden.Fixture, mismatches []Mismatch) error {
	byName := make(map[string]Mismatch, len(mismatches))
	for _, m := range mismatches {
		byName[m.Name] = m
	}

	for _, f := range fixtures {
		m, stale := byName[f.Name]
		if !stale {
			continue
		}
		f.Expected = m.Actual
		if err := golden.WriteFile(dir+"/"+f.Name+".txtar", f); err != nil {
			return fmt.Errorf("updating %s: %w", f.Name, err)
		}
	}
	return nil
}

func main() {
	fset := flag.NewFlagSet("goldentest", flag.ExitOnError)
	dir := fset.String("dir", "golden/testdata", "directory of *.txtar fixtures")
	doUpdate := fset.Bool("update", false, "rewrite mismatching fixtures' expected section in place")
	if err := fset.Parse(os.Args[1:]); err != nil {
		log.Fatalf("failed to parse flags: %v", err)
	}

	mismatches, fixtures, err := Run(*dir)
	if err != nil {
		log.Fatalf("failed to run golden tests: %v", err)
	}

	if len(mismatches) == 0 {
		fmt.Println("all fixtures match")
		return
	}

	WriteDiff(os.Stdout, mismatches)

	if *doUpdate {
		if err := update(*dir, fixtures, mismatches); err != nil {
			log.Fatalf("failed to update fixtures: %v", err)
		}
		fmt.Printf("updated %d fixture(s)\n", len(mismatches))
		return
	}

	os.Exit(1)
}
