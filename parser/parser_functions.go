/*
File    : glint/parser/parser_functions.go
*/

package parser

import (
	"github.com/akashmaji946/glint/errs"
	"github.com/akashmaji946/glint/lexer"
	"github.com/akashmaji946/glint/position"
)

// functionExpr parses `function NAME?(params) do BODY end`. Name is
// optional: an anonymous function is a first-class value.
func (p *Parser) functionExpr() (Node, *errs.Error) {
	start := p.advance() // 'function'
	var name string
	if p.check(lexer.IDENTIFIER) {
		tok := p.advance()
		name = tok.Value
	}
	return p.functionBody(start.Span, name)
}

// lambdaExpr parses the anonymous-only shorthand `lambda(params) do BODY
// end`, sharing the rest of functionExpr's grammar.
func (p *Parser) lambdaExpr() (Node, *errs.Error) {
	start := p.advance() // 'lambda'
	return p.functionBody(start.Span, "")
}

func (p *Parser) functionBody(start position.Span, name string) (Node, *errs.Error) {
	if _, err := p.expect(lexer.LPAREN, "'('"); err != nil {
		return nil, err
	}
	var params []string
	if !p.check(lexer.RPAREN) {
		for {
			param, err := p.expect(lexer.IDENTIFIER, "parameter name")
			if err != nil {
				return nil, err
			}
			params = append(params, param.Value)
			if _, ok := p.match(lexer.COMMA); ok {
				continue
			}
			break
		}
	}
	if _, err := p.expect(lexer.RPAREN, "')'"); err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("do"); err != nil {
		return nil, err
	}

	oldFunc, oldLoop := p.inFunc, p.inLoop
	p.inFunc, p.inLoop = true, false
	body, isBlock, err := p.parseBody("end")
	p.inFunc, p.inLoop = oldFunc, oldLoop
	if err != nil {
		return nil, err
	}

	finalSpan := p.cur.Span
	if isBlock {
		endTok, err := p.expectKeyword("end")
		if err != nil {
			return nil, err
		}
		finalSpan = endTok.Span
	}
	return &FunctionNode{
		base:       base{span: position.Merge(start, finalSpan)},
		Name:       name,
		ParamNames: params,
		Body:       body,
		AutoReturn: !isBlock,
	}, nil
}
