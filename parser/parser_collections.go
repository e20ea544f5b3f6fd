/*
File    : glint/parser/parser_collections.go
*/

package parser

import (
	"github.com/akashmaji946/glint/errs"
	"github.com/akashmaji946/glint/lexer"
	"github.com/akashmaji946/glint/position"
)

// listLiteral parses `[expr, expr, ...]`. Interior NEWLINEs are tolerated
// anywhere; trailing commas are not permitted.
func (p *Parser) listLiteral() (Node, *errs.Error) {
	start := p.advance() // '['
	p.skipNewlines()
	var items []Node
	if !p.check(lexer.RBRACKET) {
		for {
			p.skipNewlines()
			item, err := p.expression()
			if err != nil {
				return nil, err
			}
			items = append(items, item)
			p.skipNewlines()
			if _, ok := p.match(lexer.COMMA); ok {
				p.skipNewlines()
				if p.check(lexer.RBRACKET) {
					return nil, errs.New(errs.InvalidSyntaxError, p.cur.Span, "trailing comma not permitted")
				}
				continue
			}
			break
		}
	}
	p.skipNewlines()
	end, err := p.expect(lexer.RBRACKET, "']'")
	if err != nil {
		return nil, err
	}
	return &ListNode{base: base{span: position.Merge(start.Span, end.Span)}, Items: items}, nil
}

// dictLiteral parses `{key: value, key: value, ...}`. Interior NEWLINEs
// are tolerated anywhere; trailing commas are not permitted.
func (p *Parser) dictLiteral() (Node, *errs.Error) {
	start := p.advance() // '{'
	p.skipNewlines()
	var keys, values []Node
	if !p.check(lexer.RBRACE) {
		for {
			p.skipNewlines()
			key, err := p.expression()
			if err != nil {
				return nil, err
			}
			p.skipNewlines()
			if _, err := p.expect(lexer.COLON, "':'"); err != nil {
				return nil, err
			}
			p.skipNewlines()
			value, err := p.expression()
			if err != nil {
				return nil, err
			}
			keys = append(keys, key)
			values = append(values, value)
			p.skipNewlines()
			if _, ok := p.match(lexer.COMMA); ok {
				p.skipNewlines()
				if p.check(lexer.RBRACE) {
					return nil, errs.New(errs.InvalidSyntaxError, p.cur.Span, "trailing comma not permitted")
				}
				continue
			}
			break
		}
	}
	p.skipNewlines()
	end, err := p.expect(lexer.RBRACE, "'}'")
	if err != nil {
		return nil, err
	}
	return &DictNode{base: base{span: position.Merge(start.Span, end.Span)}, Keys: keys, Values: values}, nil
}
