/*
File    : glint/parser/parser_switch.go
*/

package parser

import (
	"github.com/akashmaji946/glint/errs"
	"github.com/akashmaji946/glint/position"
)

// switchExpr parses:
//
//	switch COND
//	case MATCH (unless GUARD)? then BODY
//	...
//	default BODY?
//	end
//
// The scrutinee is evaluated once; cases are tried top to bottom.
func (p *Parser) switchExpr() (Node, *errs.Error) {
	start := p.advance() // 'switch'
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	node := &SwitchNode{base: base{span: start.Span}, Cond: cond}
	p.skipNewlines()

	anyBlock := false
	for p.checkKeyword("case") {
		p.advance()
		match, err := p.expression()
		if err != nil {
			return nil, err
		}
		sc := SwitchCase{Match: match}
		if p.checkKeyword("unless") {
			p.advance()
			guard, err := p.expression()
			if err != nil {
				return nil, err
			}
			sc.Guard = guard
		}
		if _, err := p.expectKeyword("then"); err != nil {
			return nil, err
		}
		body, isBlock, err := p.parseBody("case", "default", "end")
		if err != nil {
			return nil, err
		}
		anyBlock = anyBlock || isBlock
		sc.Body = body
		node.Cases = append(node.Cases, sc)
		p.skipNewlines()
	}

	if p.checkKeyword("default") {
		p.advance()
		body, isBlock, err := p.parseBody("end")
		if err != nil {
			return nil, err
		}
		anyBlock = anyBlock || isBlock
		node.Default = body
	}

	node.AutoReturn = !anyBlock
	finalSpan := p.cur.Span
	if anyBlock {
		endTok, err := p.expectKeyword("end")
		if err != nil {
			return nil, err
		}
		finalSpan = endTok.Span
	}
	node.base.span = position.Merge(start.Span, finalSpan)
	return node, nil
}
