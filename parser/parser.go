// Copyright (c) 2026, The Converge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parser is a recursive-descent parser that turns a token
// stream from the lexer package into an ast.Program. It stops at the
// first malformed construct; there is no error recovery.
package parser

import (
	"strconv"

	"github.com/etherealcomputing/converge/ast"
	"github.com/etherealcomputing/converge/diagnostic"
	"github.com/etherealcomputing/converge/lexer"
)

// ParseProgram lexes and parses src in one call.
func ParseProgram(src string) (ast.Program, error) {
	toks, err := lexer.Lex(src)
	if err != nil {
		return ast.Program{}, err
	}
	p := &parser{toks: toks}
	var items []ast.Item
	for !p.isEOF() {
		item, err := p.parseItem()
		if err != nil {
			return ast.Program{}, err
		}
		items = append(items, item)
	}
	return ast.Program{Items: items}, nil
}

type parser struct {
	toks []lexer.Token
	i    int
}

func (p *parser) isEOF() bool {
	return p.i >= len(p.toks)
}

func (p *parser) peek() (lexer.Token, bool) {
	if p.isEOF() {
		return lexer.Token{}, false
	}
	return p.toks[p.i], true
}

func (p *parser) bump() (lexer.Token, bool) {
	t, ok := p.peek()
	if ok {
		p.i++
	}
	return t, ok
}

func (p *parser) expect(kind lexer.Kind, what string) (lexer.Token, error) {
	t, ok := p.peek()
	if !ok {
		return lexer.Token{}, diagnostic.Newf("expected %s, found end of input", what)
	}
	if t.Kind != kind {
		return lexer.Token{}, diagnostic.Newf("expected %s", what).WithSpan(t.Span)
	}
	p.i++
	return t, nil
}

func (p *parser) parseItem() (ast.Item, error) {
	t, ok := p.peek()
	if !ok {
		return nil, diagnostic.New("unexpected end of input")
	}
	switch t.Kind {
	case lexer.KwNeuron:
		return p.parseNeuronDef()
	case lexer.KwLayer:
		return p.parseLayerDef()
	case lexer.KwConnect:
		return p.parseConnectDef()
	case lexer.KwStimulus:
		return p.parseStimulusDef()
	case lexer.KwRun:
		return p.parseRunStmt()
	case lexer.KwSeed:
		return p.parseSeedStmt()
	default:
		p.bump()
		return nil, diagnostic.New("unexpected token at top-level").WithSpan(t.Span)
	}
}

func (p *parser) parseNeuronDef() (ast.NeuronDef, error) {
	if _, err := p.expect(lexer.KwNeuron, "`neuron`"); err != nil {
		return ast.NeuronDef{}, err
	}
	name, err := p.parseIdent("neuron name")
	if err != nil {
		return ast.NeuronDef{}, err
	}
	if _, err := p.expect(lexer.LBrace, "`{`"); err != nil {
		return ast.NeuronDef{}, err
	}
	body, err := p.parseAssignBlock()
	if err != nil {
		return ast.NeuronDef{}, err
	}
	return ast.NeuronDef{Name: name, Body: body}, nil
}

func (p *parser) parseLayerDef() (ast.LayerDef, error) {
	if _, err := p.expect(lexer.KwLayer, "`layer`"); err != nil {
		return ast.LayerDef{}, err
	}
	name, err := p.parseIdent("layer name")
	if err != nil {
		return ast.LayerDef{}, err
	}
	if _, err := p.expect(lexer.LBracket, "`[`"); err != nil {
		return ast.LayerDef{}, err
	}
	size, err := p.parseU64("layer size")
	if err != nil {
		return ast.LayerDef{}, err
	}
	if _, err := p.expect(lexer.RBracket, "`]`"); err != nil {
		return ast.LayerDef{}, err
	}
	if _, err := p.expect(lexer.Colon, "`:`"); err != nil {
		return ast.LayerDef{}, err
	}
	neuron, err := p.parseIdent("neuron type")
	if err != nil {
		return ast.LayerDef{}, err
	}
	return ast.LayerDef{Name: name, Size: size, Neuron: neuron}, nil
}

func (p *parser) parseConnectDef() (ast.ConnectDef, error) {
	if _, err := p.expect(lexer.KwConnect, "`connect`"); err != nil {
		return ast.ConnectDef{}, err
	}
	src, err := p.parseIdent("source layer")
	if err != nil {
		return ast.ConnectDef{}, err
	}
	if _, err := p.expect(lexer.Arrow, "`->`"); err != nil {
		return ast.ConnectDef{}, err
	}
	dst, err := p.parseIdent("destination layer")
	if err != nil {
		return ast.ConnectDef{}, err
	}
	if _, err := p.expect(lexer.LBrace, "`{`"); err != nil {
		return ast.ConnectDef{}, err
	}
	body, err := p.parseAssignBlock()
	if err != nil {
		return ast.ConnectDef{}, err
	}
	return ast.ConnectDef{Src: src, Dst: dst, Body: body}, nil
}

func (p *parser) parseRunStmt() (ast.RunStmt, error) {
	if _, err := p.expect(lexer.KwRun, "`run`"); err != nil {
		return ast.RunStmt{}, err
	}
	if _, err := p.expect(lexer.KwFor, "`for`"); err != nil {
		return ast.RunStmt{}, err
	}
	duration, err := p.parseQuantity("duration")
	if err != nil {
		return ast.RunStmt{}, err
	}
	var step *ast.Quantity
	if t, ok := p.peek(); ok && t.Kind == lexer.KwStep {
		p.bump()
		q, err := p.parseQuantity("step")
		if err != nil {
			return ast.RunStmt{}, err
		}
		step = &q
	}
	return ast.RunStmt{Duration: duration, Step: step}, nil
}

func (p *parser) parseSeedStmt() (ast.SeedStmt, error) {
	kw, err := p.expect(lexer.KwSeed, "`seed`")
	if err != nil {
		return ast.SeedStmt{}, err
	}
	value, err := p.parseU64("seed value")
	if err != nil {
		return ast.SeedStmt{}, err
	}
	return ast.SeedStmt{Value: value, Span: kw.Span}, nil
}

func (p *parser) parseStimulusDef() (ast.StimulusDef, error) {
	if _, err := p.expect(lexer.KwStimulus, "`stimulus`"); err != nil {
		return ast.StimulusDef{}, err
	}
	layer, err := p.parseIdent("layer name")
	if err != nil {
		return ast.StimulusDef{}, err
	}
	if _, err := p.expect(lexer.Eq, "`=`"); err != nil {
		return ast.StimulusDef{}, err
	}
	expr, err := p.parseExpr()
	if err != nil {
		return ast.StimulusDef{}, err
	}
	callExpr, ok := expr.(ast.CallExpr)
	if !ok {
		return ast.StimulusDef{}, diagnostic.New("expected stimulus model call").WithSpan(layer.Span)
	}
	model, err := p.buildStimulusModel(callExpr.Call, layer)
	if err != nil {
		return ast.StimulusDef{}, err
	}
	return ast.StimulusDef{Layer: layer, Model: model}, nil
}

func (p *parser) buildStimulusModel(call ast.Call, layer ast.Ident) (ast.StimulusModel, error) {
	switch call.Name.Name {
	case "Poisson":
		var rate *ast.Quantity
		for _, arg := range call.Args {
			if arg.IsNamed() && arg.Name.Name == "rate" {
				numExpr, ok := arg.Value.(ast.NumberExpr)
				if !ok {
					return nil, diagnostic.New("rate must be a quantity").WithSpan(arg.Name.Span)
				}
				q := numExpr.Quantity
				rate = &q
			}
		}
		if rate == nil {
			return nil, diagnostic.New("Poisson stimulus requires rate").WithSpan(layer.Span)
		}
		return ast.PoissonModel{Rate: *rate}, nil
	default:
		return nil, diagnostic.New("unknown stimulus model").WithSpan(call.Name.Span)
	}
}

func (p *parser) parseAssignBlock() ([]ast.Assign, error) {
	var assigns []ast.Assign
	for {
		t, ok := p.peek()
		if !ok {
			return nil, diagnostic.New("expected `}`, found end of input")
		}
		if t.Kind == lexer.RBrace {
			p.bump()
			return assigns, nil
		}
		if t.Kind != lexer.Ident && t.Kind != lexer.KwRate {
			p.bump()
			return nil, diagnostic.New("unexpected token in block").WithSpan(t.Span)
		}
		key, err := p.parseIdent("field name")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.Eq, "`=`"); err != nil {
			return nil, err
		}
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if t, ok := p.peek(); ok && t.Kind == lexer.Comma {
			p.bump()
		}
		assigns = append(assigns, ast.Assign{Key: key, Value: value})
	}
}

func (p *parser) parseExpr() (ast.Expr, error) {
	t, ok := p.peek()
	if !ok {
		return nil, diagnostic.New("expected expression, found end of input")
	}
	switch t.Kind {
	case lexer.Number:
		q, err := p.parseQuantity("number")
		if err != nil {
			return nil, err
		}
		return ast.NumberExpr{Quantity: q}, nil
	case lexer.String:
		p.bump()
		return ast.StringExpr{Value: t.Text}, nil
	case lexer.Ident, lexer.KwRate:
		ident, err := p.parseIdent("identifier")
		if err != nil {
			return nil, err
		}
		if nt, ok := p.peek(); ok && nt.Kind == lexer.LParen {
			call, err := p.parseCallAfterName(ident)
			if err != nil {
				return nil, err
			}
			return ast.CallExpr{Call: call}, nil
		}
		return ast.IdentExpr{Ident: ident}, nil
	default:
		return nil, diagnostic.New("unexpected token in expression").WithSpan(t.Span)
	}
}

func (p *parser) parseCallAfterName(name ast.Ident) (ast.Call, error) {
	if _, err := p.expect(lexer.LParen, "`(`"); err != nil {
		return ast.Call{}, err
	}
	var args []ast.CallArg
	for {
		t, ok := p.peek()
		if !ok {
			return ast.Call{}, diagnostic.New("expected `)`, found end of input")
		}
		switch t.Kind {
		case lexer.RParen:
			p.bump()
			return ast.Call{Name: name, Args: args}, nil
		case lexer.Comma:
			p.bump()
		case lexer.Ident, lexer.KwRate:
			save := p.i
			nameTok, _ := p.bump()
			if nt, ok := p.peek(); ok && nt.Kind == lexer.Eq {
				p.bump()
				value, err := p.parseExpr()
				if err != nil {
					return ast.Call{}, err
				}
				argName := nameTok.Text
				if nameTok.Kind == lexer.KwRate {
					argName = "rate"
				}
				args = append(args, ast.CallArg{
					Name:  ast.NewIdent(argName, nameTok.Span),
					Value: value,
				})
			} else {
				p.i = save
				value, err := p.parseExpr()
				if err != nil {
					return ast.Call{}, err
				}
				args = append(args, ast.CallArg{Value: value})
			}
		default:
			value, err := p.parseExpr()
			if err != nil {
				return ast.Call{}, err
			}
			args = append(args, ast.CallArg{Value: value})
		}
	}
}

func (p *parser) parseIdent(what string) (ast.Ident, error) {
	t, ok := p.peek()
	if !ok {
		return ast.Ident{}, diagnostic.Newf("expected %s, found end of input", what)
	}
	switch t.Kind {
	case lexer.Ident:
		p.bump()
		return ast.NewIdent(t.Text, t.Span), nil
	case lexer.KwRate:
		p.bump()
		return ast.NewIdent("rate", t.Span), nil
	default:
		return ast.Ident{}, diagnostic.Newf("expected %s", what).WithSpan(t.Span)
	}
}

func (p *parser) parseU64(what string) (uint64, error) {
	t, err := p.expect(lexer.Number, what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(t.Text, 10, 64)
	if err != nil {
		return 0, diagnostic.Newf("invalid integer for %s", what).WithSpan(t.Span)
	}
	return v, nil
}

func (p *parser) parseQuantity(what string) (ast.Quantity, error) {
	t, err := p.expect(lexer.Number, what)
	if err != nil {
		return ast.Quantity{}, err
	}
	value, err := strconv.ParseFloat(t.Text, 64)
	if err != nil {
		return ast.Quantity{}, diagnostic.Newf("invalid number for %s", what).WithSpan(t.Span)
	}

	var unit *ast.Ident
	end := t.Span.End
	// An identifier followed by `=` starts the next assignment in a
	// comma-less block, so it is not taken as this quantity's unit.
	if nt, ok := p.peek(); ok && nt.Kind == lexer.Ident &&
		!(p.i+1 < len(p.toks) && p.toks[p.i+1].Kind == lexer.Eq) {
		u, err := p.parseIdent("unit")
		if err != nil {
			return ast.Quantity{}, err
		}
		unit = &u
		end = u.Span.End
	}

	return ast.Quantity{Value: value, Unit: unit, Span: diagnostic.NewSpan(t.Span.Start, end)}, nil
}
