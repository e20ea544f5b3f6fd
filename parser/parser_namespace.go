/*
File    : glint/parser/parser_namespace.go
*/

package parser

import (
	"github.com/akashmaji946/glint/errs"
	"github.com/akashmaji946/glint/lexer"
	"github.com/akashmaji946/glint/position"
)

// namespaceExpr parses `namespace NAME do BODY end`: the body evaluates
// in a fresh scope whose final bindings become the namespace's attrs.
func (p *Parser) namespaceExpr() (Node, *errs.Error) {
	start := p.advance() // 'namespace'
	name, err := p.expect(lexer.IDENTIFIER, "namespace name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("do"); err != nil {
		return nil, err
	}
	body, isBlock, err := p.parseBody("end")
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
	return &NamespaceNode{base: base{span: position.Merge(start.Span, finalSpan)}, Name: name.Value, Body: body}, nil
}
