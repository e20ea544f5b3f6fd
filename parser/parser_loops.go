/*
File    : glint/parser/parser_loops.go
*/

package parser

import (
	"github.com/akashmaji946/glint/errs"
	"github.com/akashmaji946/glint/lexer"
	"github.com/akashmaji946/glint/position"
)

// forExpr parses `for NAME (= START)? to END (step STEP)? then BODY
// (else BODY)?`. START defaults to 0 and STEP to 1 in the evaluator when
// omitted here.
func (p *Parser) forExpr() (Node, *errs.Error) {
	start := p.advance() // 'for'
	oldLoop := p.inLoop
	p.inLoop = true
	defer func() { p.inLoop = oldLoop }()

	name, err := p.expect(lexer.IDENTIFIER, "loop variable")
	if err != nil {
		return nil, err
	}
	node := &ForNode{base: base{span: start.Span}, VarName: name.Value}

	if _, ok := p.match(lexer.EQ); ok {
		startExpr, err := p.expression()
		if err != nil {
			return nil, err
		}
		node.Start = startExpr
	}
	if _, err := p.expectKeyword("to"); err != nil {
		return nil, err
	}
	end, err := p.expression()
	if err != nil {
		return nil, err
	}
	node.End = end

	if p.checkKeyword("step") {
		p.advance()
		step, err := p.expression()
		if err != nil {
			return nil, err
		}
		node.Step = step
	}

	if _, err := p.expectKeyword("then"); err != nil {
		return nil, err
	}
	body, isBlock, err := p.parseBody("else", "end")
	if err != nil {
		return nil, err
	}
	node.Body = body
	node.IsBlock = isBlock

	if p.checkKeyword("else") {
		p.advance()
		elseBody, _, err := p.parseBody("end")
		if err != nil {
			return nil, err
		}
		node.ElseBody = elseBody
	}

	finalSpan := p.cur.Span
	if isBlock {
		endTok, err := p.expectKeyword("end")
		if err != nil {
			return nil, err
		}
		finalSpan = endTok.Span
	}
	node.base.span = position.Merge(start.Span, finalSpan)
	return node, nil
}

// whileExpr parses `while COND then BODY (else BODY)?`.
func (p *Parser) whileExpr() (Node, *errs.Error) {
	start := p.advance() // 'while'
	oldLoop := p.inLoop
	p.inLoop = true
	defer func() { p.inLoop = oldLoop }()

	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("then"); err != nil {
		return nil, err
	}
	body, isBlock, err := p.parseBody("else", "end")
	if err != nil {
		return nil, err
	}
	node := &WhileNode{base: base{span: start.Span}, Cond: cond, Body: body, IsBlock: isBlock}

	if p.checkKeyword("else") {
		p.advance()
		elseBody, _, err := p.parseBody("end")
		if err != nil {
			return nil, err
		}
		node.ElseBody = elseBody
	}

	finalSpan := p.cur.Span
	if isBlock {
		endTok, err := p.expectKeyword("end")
		if err != nil {
			return nil, err
		}
		finalSpan = endTok.Span
	}
	node.base.span = position.Merge(start.Span, finalSpan)
	return node, nil
}
