/*
File    : glint/parser/parser_conditionals.go
*/

package parser

import (
	"github.com/akashmaji946/glint/errs"
	"github.com/akashmaji946/glint/position"
)

// ifExpr parses `if COND then BODY (elif COND then BODY)* (else BODY)?`,
// closed by `end` only when any branch took block form.
func (p *Parser) ifExpr() (Node, *errs.Error) {
	start := p.advance() // 'if'
	node := &IfNode{base: base{span: start.Span}}
	anyBlock := false

	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("then"); err != nil {
		return nil, err
	}
	body, isBlock, err := p.parseBody("elif", "else", "end")
	if err != nil {
		return nil, err
	}
	anyBlock = anyBlock || isBlock
	node.Cases = append(node.Cases, IfCase{Cond: cond, Body: body, IsBlock: isBlock})

	for p.checkKeyword("elif") {
		p.advance()
		cond, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectKeyword("then"); err != nil {
			return nil, err
		}
		body, isBlock, err := p.parseBody("elif", "else", "end")
		if err != nil {
			return nil, err
		}
		anyBlock = anyBlock || isBlock
		node.Cases = append(node.Cases, IfCase{Cond: cond, Body: body, IsBlock: isBlock})
	}

	if p.checkKeyword("else") {
		p.advance()
		body, isBlock, err := p.parseBody("end")
		if err != nil {
			return nil, err
		}
		anyBlock = anyBlock || isBlock
		node.Else = &ElseCase{Body: body, IsBlock: isBlock}
	}

	end := p.cur.Span
	if anyBlock {
		endTok, err := p.expectKeyword("end")
		if err != nil {
			return nil, err
		}
		end = endTok.Span
	}
	node.base.span = position.Merge(start.Span, end)
	return node, nil
}
