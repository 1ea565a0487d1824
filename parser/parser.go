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

// Package parser reads the InToHyLo surface syntax into a term.Term tree.
// spec.md treats this syntax parser as an external collaborator whose only
// fixed contract is the shape it must produce; this package is the
// supplemental, owned implementation a runnable repository needs, built
// over exactly the concrete grammar term.Term.Display emits: atoms
// "p<N>", constants "true"/"false", unary "~", infix "&"/"|", modal
// prefixes "[r<N>]"/"<r<N>>", and parenthesized subexpressions.
package parser

import (
	"fmt"
	"io"

	"github.com/crillab/mdk-verifier/term"
)

// parser is a hand-written recursive-descent / precedence-climbing reader:
// "|" binds loosest, then "&", then the unary prefixes ("~", "[r<N>]",
// "<r<N>>"), then primaries (atoms, constants, parenthesized
// subexpressions).
type parser struct {
	lex *lexer
	tok token
}

// Parse reads a single formula from r. Trailing input after a complete
// formula is a syntax error.
func Parse(r io.Reader) (*term.Term, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("parser: reading formula: %w", err)
	}

	p := &parser{lex: newLexer(string(data))}
	if err := p.advance(); err != nil {
		return nil, err
	}

	t, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokEOF {
		return nil, fmt.Errorf("parser: unexpected trailing input")
	}
	return t, nil
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) parseOr() (*term.Term, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokOr {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = term.NewBoolOp(term.Or, left, right)
	}
	return left, nil
}

func (p *parser) parseAnd() (*term.Term, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokAnd {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = term.NewBoolOp(term.And, left, right)
	}
	return left, nil
}

func (p *parser) parseUnary() (*term.Term, error) {
	switch p.tok.kind {
	case tokNot:
		if err := p.advance(); err != nil {
			return nil, err
		}
		t, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		t.Negate()
		return t, nil
	case tokBox:
		agent := p.tok.agent
		if err := p.advance(); err != nil {
			return nil, err
		}
		child, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return term.NewModalOp(term.Box, agent, child), nil
	case tokDiamond:
		agent := p.tok.agent
		if err := p.advance(); err != nil {
			return nil, err
		}
		child, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return term.NewModalOp(term.Diamond, agent, child), nil
	default:
		return p.parsePrimary()
	}
}

func (p *parser) parsePrimary() (*term.Term, error) {
	switch p.tok.kind {
	case tokProp:
		id := p.tok.id
		if err := p.advance(); err != nil {
			return nil, err
		}
		return term.NewProp(id), nil
	case tokTrue:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return term.NewConst(true), nil
	case tokFalse:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return term.NewConst(false), nil
	case tokLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		t, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if p.tok.kind != tokRParen {
			return nil, fmt.Errorf("parser: expected ')'")
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return t, nil
	case tokEOF:
		return nil, fmt.Errorf("parser: unexpected end of formula")
	default:
		return nil, fmt.Errorf("parser: unexpected token")
	}
}
