/*
File    : glint/parser/parser.go
*/

package parser

import (
	"github.com/akashmaji946/glint/errs"
	"github.com/akashmaji946/glint/lexer"
	"github.com/akashmaji946/glint/position"
)

// Parser is a pure recursive-descent parser with single-token lookahead.
// inFunc/inLoop track whether `return`/`break`/`continue` are currently
// legal, resetting on exit from the construct that opened them.
type Parser struct {
	tokens  []lexer.Token
	pos     int
	cur     lexer.Token
	inFunc  bool
	inLoop  bool
}

// New builds a Parser over an already-lexed token stream.
func New(tokens []lexer.Token) *Parser {
	p := &Parser{tokens: tokens}
	if len(tokens) > 0 {
		p.cur = tokens[0]
	}
	return p
}

// Parse lexes and parses source into the program's root block node. The
// parser must succeed exactly to EOF; any leftover token is a syntax
// error located at that token.
func Parse(file, source string) (*ListNode, *errs.Error) {
	toks, err := lexer.New(file, source).Tokenize()
	if err != nil {
		return nil, err
	}
	p := New(toks)
	return p.ParseProgram()
}

func (p *Parser) advance() lexer.Token {
	tok := p.cur
	if p.pos+1 < len(p.tokens) {
		p.pos++
		p.cur = p.tokens[p.pos]
	}
	return tok
}

func (p *Parser) check(kind lexer.Kind) bool { return p.cur.Kind == kind }

func (p *Parser) checkKeyword(word string) bool { return p.cur.IsKeyword(word) }

func (p *Parser) match(kind lexer.Kind) (lexer.Token, bool) {
	if p.check(kind) {
		return p.advance(), true
	}
	return lexer.Token{}, false
}

func (p *Parser) matchKeyword(word string) (lexer.Token, bool) {
	if p.checkKeyword(word) {
		return p.advance(), true
	}
	return lexer.Token{}, false
}

func (p *Parser) expect(kind lexer.Kind, what string) (lexer.Token, *errs.Error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return lexer.Token{}, errs.Newf(errs.InvalidSyntaxError, p.cur.Span, "expected %s, found '%s'", what, p.cur.Value)
}

func (p *Parser) expectKeyword(word string) (lexer.Token, *errs.Error) {
	if p.checkKeyword(word) {
		return p.advance(), nil
	}
	return lexer.Token{}, errs.Newf(errs.InvalidSyntaxError, p.cur.Span, "expected '%s', found '%s'", word, p.cur.Value)
}

// skipNewlines consumes zero or more NEWLINE tokens (the `blanks()`
// helper for statement separators and bracketed literals alike).
func (p *Parser) skipNewlines() {
	for p.check(lexer.NEWLINE) {
		p.advance()
	}
}

// ParseProgram parses a possibly-empty NEWLINE-separated sequence of
// statements into a block ListNode, the program's root.
func (p *Parser) ParseProgram() (*ListNode, *errs.Error) {
	start := p.cur.Span
	var stmts []Node
	p.skipNewlines()
	for !p.check(lexer.EOF) {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		if p.check(lexer.EOF) {
			break
		}
		if !p.check(lexer.NEWLINE) {
			return nil, errs.Newf(errs.InvalidSyntaxError, p.cur.Span, "unexpected token '%s'", p.cur.Value)
		}
		p.skipNewlines()
	}
	if !p.check(lexer.EOF) {
		return nil, errs.Newf(errs.InvalidSyntaxError, p.cur.Span, "unexpected token '%s' after program", p.cur.Value)
	}
	end := p.cur.Span
	return &ListNode{base: base{span: position.Merge(start, end)}, Items: stmts, IsBlock: true}, nil
}
