// Copyright (c) 2026, The Converge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lexer turns Converge source text into a stream of spanned
// tokens. It skips whitespace and `//` line comments, recognizes the
// language's keywords and punctuation, and fails on the first
// malformed token it meets — later stages never see a partial token
// stream.
package lexer

import (
	"unicode/utf8"

	"github.com/etherealcomputing/converge/diagnostic"
)

// Kind identifies the lexical class of a Token.
type Kind int

const (
	Ident Kind = iota
	Number
	String

	KwNeuron
	KwLayer
	KwConnect
	KwStimulus
	KwRun
	KwFor
	KwStep
	KwSeed
	KwRate

	LBrace
	RBrace
	LBracket
	RBracket
	LParen
	RParen
	Colon
	Comma
	Eq
	Arrow
)

var kindNames = map[Kind]string{
	Ident: "identifier", Number: "number", String: "string",
	KwNeuron: "`neuron`", KwLayer: "`layer`", KwConnect: "`connect`",
	KwStimulus: "`stimulus`", KwRun: "`run`", KwFor: "`for`",
	KwStep: "`step`", KwSeed: "`seed`", KwRate: "`rate`",
	LBrace: "`{`", RBrace: "`}`", LBracket: "`[`", RBracket: "`]`",
	LParen: "`(`", RParen: "`)`", Colon: "`:`", Comma: "`,`",
	Eq: "`=`", Arrow: "`->`",
}

// String renders a human-readable name for k, used in parser
// diagnostics ("expected `{`").
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "token"
}

// Token is one lexical unit together with its source Span. Text holds
// the decoded literal for Ident, Number, and String tokens; it is
// empty for punctuation and keywords.
type Token struct {
	Kind Kind
	Text string
	Span diagnostic.Span
}

var keywords = map[string]Kind{
	"neuron":   KwNeuron,
	"layer":    KwLayer,
	"connect":  KwConnect,
	"stimulus": KwStimulus,
	"run":      KwRun,
	"for":      KwFor,
	"step":     KwStep,
	"seed":     KwSeed,
	"rate":     KwRate,
}

// Lex tokenizes the entirety of src, or returns the first lexical
// error it meets.
func Lex(src string) ([]Token, error) {
	l := &lexer{src: src}
	var toks []Token
	for {
		tok, ok, err := l.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		toks = append(toks, tok)
	}
	return toks, nil
}

type lexer struct {
	src string
	pos int
}

func (l *lexer) next() (Token, bool, error) {
	l.skipWSAndComments()
	if l.pos >= len(l.src) {
		return Token{}, false, nil
	}

	start := l.pos
	b := l.src[l.pos]

	var kind Kind
	switch {
	case b == '{':
		l.pos++
		kind = LBrace
	case b == '}':
		l.pos++
		kind = RBrace
	case b == '[':
		l.pos++
		kind = LBracket
	case b == ']':
		l.pos++
		kind = RBracket
	case b == '(':
		l.pos++
		kind = LParen
	case b == ')':
		l.pos++
		kind = RParen
	case b == ':':
		l.pos++
		kind = Colon
	case b == ',':
		l.pos++
		kind = Comma
	case b == '=':
		l.pos++
		kind = Eq
	case b == '-' && l.peekIs('>'):
		l.pos += 2
		kind = Arrow
	case b == '"':
		return l.lexString(start)
	case isDigit(b) || b == '-':
		return l.lexNumber(start)
	case isIdentStart(b):
		return l.lexIdent(start), true, nil
	default:
		r, _ := utf8.DecodeRuneInString(l.src[l.pos:])
		return Token{}, false, diagnostic.Newf("unexpected character '%c'", r).
			WithSpan(diagnostic.NewSpan(l.pos, l.pos+1))
	}

	return Token{Kind: kind, Span: diagnostic.NewSpan(start, l.pos)}, true, nil
}

func (l *lexer) skipWSAndComments() {
	for {
		for l.pos < len(l.src) {
			b := l.src[l.pos]
			if b == ' ' || b == '\n' || b == '\r' || b == '\t' {
				l.pos++
				continue
			}
			break
		}
		if l.pos+1 < len(l.src) && l.src[l.pos] == '/' && l.src[l.pos+1] == '/' {
			l.pos += 2
			for l.pos < len(l.src) && l.src[l.pos] != '\n' {
				l.pos++
			}
			continue
		}
		break
	}
}

func (l *lexer) peekIs(b byte) bool {
	return l.pos+1 < len(l.src) && l.src[l.pos+1] == b
}

func (l *lexer) lexString(start int) (Token, bool, error) {
	l.pos++ // opening quote
	var sb []byte
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case '"':
			l.pos++
			return Token{Kind: String, Text: string(sb), Span: diagnostic.NewSpan(start, l.pos)}, true, nil
		case '\\':
			l.pos++
			if l.pos >= len(l.src) {
				break
			}
			esc := l.src[l.pos]
			l.pos++
			switch esc {
			case '"':
				sb = append(sb, '"')
			case '\\':
				sb = append(sb, '\\')
			case 'n':
				sb = append(sb, '\n')
			case 'r':
				sb = append(sb, '\r')
			case 't':
				sb = append(sb, '\t')
			default:
				from := l.pos - 2
				if from < 0 {
					from = 0
				}
				return Token{}, false, diagnostic.New("invalid string escape").
					WithSpan(diagnostic.NewSpan(from, l.pos))
			}
		default:
			r, size := utf8.DecodeRuneInString(l.src[l.pos:])
			l.pos += size
			sb = append(sb, string(r)...)
		}
	}
	return Token{}, false, diagnostic.New("unterminated string").
		WithSpan(diagnostic.NewSpan(start, l.pos))
}

func (l *lexer) lexIdent(start int) Token {
	l.pos++
	for l.pos < len(l.src) && isIdentContinue(l.src[l.pos]) {
		l.pos++
	}
	text := l.src[start:l.pos]
	if kw, ok := keywords[text]; ok {
		return Token{Kind: kw, Span: diagnostic.NewSpan(start, l.pos)}
	}
	return Token{Kind: Ident, Text: text, Span: diagnostic.NewSpan(start, l.pos)}
}

func (l *lexer) lexNumber(start int) (Token, bool, error) {
	if l.src[l.pos] == '-' {
		l.pos++
		if l.pos >= len(l.src) || !isDigit(l.src[l.pos]) {
			return Token{}, false, diagnostic.New("unexpected '-'").
				WithSpan(diagnostic.NewSpan(start, l.pos))
		}
	}
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.pos++
	}
	if l.pos < len(l.src) && l.src[l.pos] == '.' {
		l.pos++
		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			l.pos++
		}
	}
	return Token{Kind: Number, Text: l.src[start:l.pos], Span: diagnostic.NewSpan(start, l.pos)}, true, nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isIdentStart(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}

func isIdentContinue(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}
