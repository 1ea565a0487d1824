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

// Package main builds modalcheck, the command-line entry point for the
// proof checker: read a formula file and a Kripke-CNF witness on stdin,
// and print the §6.1 verdict.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/crillab/mdk-verifier/check"
	"github.com/crillab/mdk-verifier/config"
	"github.com/crillab/mdk-verifier/diagnostic"
	"github.com/crillab/mdk-verifier/kripke"
	"github.com/crillab/mdk-verifier/logging"
	"github.com/crillab/mdk-verifier/normalize"
	"github.com/crillab/mdk-verifier/parser"
	"github.com/crillab/mdk-verifier/term"
)

func main() {
	cfg := config.Default()

	root := &cobra.Command{
		Use:   "modalcheck <formula-path>",
		Short: "Verify a candidate Kripke witness against a modal logic K formula.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], cfg)
		},
	}

	flags := root.Flags()
	flags.DurationVar(&cfg.TimeLimit, "time-limit", config.DefaultTimeLimit, "wall-clock bound on verification; 0 disables it")
	flags.BoolVar(&cfg.ChainShrink, "no-chain-shrink", false, "disable the modal-chain-shrinking optimisation (inverted at use: true here means 'disable')")
	flags.BoolVar(&cfg.Verbose, "verbose", false, "emit structured tracing of decoder and normalisation steps")
	flags.BoolVar(&cfg.JSON, "json", false, "print the verdict as a single JSON object instead of plain text")
	flags.BoolVar(&cfg.DumpAST, "dump-ast", false, "print the parsed formula before checking")
	flags.BoolVar(&cfg.DumpNormalized, "dump-normalized", false, "print the normalised formula before checking")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// verdictJSON is the --json output shape.
type verdictJSON struct {
	Verdict   string `json:"verdict"`
	NumWorlds int    `json:"numWorlds,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

func run(cmd *cobra.Command, formulaPath string, cfg config.Config) error {
	// --no-chain-shrink is the only flag we invert at the use site: the
	// flag name reads naturally to a user, the field reads naturally in
	// code.
	cfg.ChainShrink = !cfg.ChainShrink

	logger := logging.New(cfg.Verbose)
	defer func() { _ = logger.Sync() }()

	logger.Debug("opening formula file", zap.String("path", formulaPath))
	formulaFile, err := os.Open(formulaPath)
	if err != nil {
		return fmt.Errorf("modalcheck: opening formula file: %w", err)
	}
	defer formulaFile.Close()

	f, err := parser.Parse(formulaFile)
	if err != nil {
		return fmt.Errorf("modalcheck: parsing formula: %w", err)
	}
	logger.Debug("parsed formula", zap.String("formula", f.String()))
	if cfg.DumpAST {
		fmt.Fprintln(cmd.OutOrStdout(), f.String())
	}

	f = normalize.Run(f)
	logger.Debug("normalised formula", zap.String("formula", f.String()))
	if cfg.DumpNormalized {
		fmt.Fprintln(cmd.OutOrStdout(), f.String())
	}

	k, err := kripke.Decode(cmd.InOrStdin())
	if err != nil {
		return reportDecodeFault(cmd, cfg, err)
	}
	logger.Debug("decoded Kripke witness", zap.Int("numWorlds", k.NumWorlds), zap.Int("numVars", k.NumVars))

	return reportVerdict(cmd, cfg, f, k, logger)
}

func reportDecodeFault(cmd *cobra.Command, cfg config.Config, err error) error {
	out := cmd.OutOrStdout()
	switch {
	case errors.Is(err, kripke.ErrUnsatisfiable):
		if cfg.JSON {
			return emitJSON(out, verdictJSON{Verdict: "ERROR", Reason: "UNSATISFIABLE formulae are not checkable yet."})
		}
		diagnostic.PrintUnsatisfiable(out)
		return nil
	case errors.Is(err, kripke.ErrNotKripkeCNF):
		if cfg.JSON {
			return emitJSON(out, verdictJSON{Verdict: "ERROR", Reason: "solution not in Kripke-CNF."})
		}
		diagnostic.PrintNotKripkeCNF(out)
		return nil
	default:
		return fmt.Errorf("modalcheck: decoding witness: %w", err)
	}
}

func reportVerdict(cmd *cobra.Command, cfg config.Config, f *term.Term, k *kripke.Kripke, logger *zap.Logger) error {
	out := cmd.OutOrStdout()
	e := check.NewEvaluator(k)
	e.ChainShrink = cfg.ChainShrink

	verdict, timedOut := checkWithTimeLimit(cmd.Context(), e, f, cfg.TimeLimit)
	if timedOut {
		logger.Debug("check timed out", zap.Duration("limit", cfg.TimeLimit))
		if cfg.JSON {
			return emitJSON(out, verdictJSON{Verdict: "UNKNOWN", Reason: fmt.Sprintf("VERIFIER EXCEEDED TIME LIMIT (%g s)", cfg.TimeLimit.Seconds())})
		}
		diagnostic.PrintTimeout(out, cfg.TimeLimit.Seconds())
		return nil
	}
	logger.Debug("check complete", zap.Stringer("verdict", verdict))

	if cfg.JSON {
		return emitJSON(out, verdictJSON{Verdict: verdict.String(), NumWorlds: k.NumWorlds, Reason: e.Reason.Message()})
	}
	diagnostic.PrintVerdict(out, verdict, k.NumWorlds, e.Reason)
	return nil
}

// checkWithTimeLimit runs the single-threaded evaluator on its own
// goroutine and races it against the wall-clock bound (§5): the original
// enforces this with SIGALRM and process termination, which a library
// function cannot do to its own caller's process, so this uses
// context.WithTimeout and abandons the goroutine on expiry instead,
// matching the original's "mid-evaluation state is abandoned" semantics.
func checkWithTimeLimit(ctx context.Context, e *check.Evaluator, f *term.Term, limit time.Duration) (check.Verdict, bool) {
	if limit <= 0 {
		return e.Check(f), false
	}

	ctx, cancel := context.WithTimeout(ctx, limit)
	defer cancel()

	done := make(chan check.Verdict, 1)
	go func() { done <- e.Check(f) }()

	select {
	case v := <-done:
		return v, false
	case <-ctx.Done():
		return 0, true
	}
}

func emitJSON(out io.Writer, v verdictJSON) error {
	enc := json.NewEncoder(out)
	return enc.Encode(v)
}
