/*
File    : glint/parser/parser_controls.go
*/

package parser

import (
	"github.com/akashmaji946/glint/errs"
	"github.com/akashmaji946/glint/lexer"
	"github.com/akashmaji946/glint/position"
)

// tryExpr parses `try then BODY (catch NAME (, NAME)? then BODY)? (else BODY)?
// (finally BODY)? end` (or the single-statement equivalent, in which case
// no `end` is consumed).
func (p *Parser) tryExpr() (Node, *errs.Error) {
	start := p.advance() // 'try'
	if _, err := p.expectKeyword("then"); err != nil {
		return nil, err
	}
	tryBody, isBlock, err := p.parseBody("catch", "else", "finally", "end")
	if err != nil {
		return nil, err
	}
	node := &TryNode{base: base{span: start.Span}, TryBody: tryBody, IsBlock: isBlock}

	if p.checkKeyword("catch") {
		p.advance()
		name1, err := p.expect(lexer.IDENTIFIER, "error-kind name")
		if err != nil {
			return nil, err
		}
		node.CatchName = name1.Value
		if _, ok := p.match(lexer.COMMA); ok {
			name2, err := p.expect(lexer.IDENTIFIER, "error-details name")
			if err != nil {
				return nil, err
			}
			node.CatchDetails = name2.Value
		}
		if _, err := p.expectKeyword("then"); err != nil {
			return nil, err
		}
		catchBody, _, err := p.parseBody("else", "finally", "end")
		if err != nil {
			return nil, err
		}
		node.CatchBody = catchBody
	}

	if p.checkKeyword("else") {
		p.advance()
		elseBody, _, err := p.parseBody("finally", "end")
		if err != nil {
			return nil, err
		}
		node.ElseBody = elseBody
	}

	if p.checkKeyword("finally") {
		p.advance()
		finallyBody, _, err := p.parseBody("end")
		if err != nil {
			return nil, err
		}
		node.FinallyBody = finallyBody
	}

	end := p.cur.Span
	if isBlock {
		endTok, err := p.expectKeyword("end")
		if err != nil {
			return nil, err
		}
		end = endTok.Span
	}
	node.base.span = position.Merge(start.Span, end)
	return node, nil
}
