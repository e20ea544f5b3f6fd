/*
File    : glint/parser/parser_expressions.go
*/

package parser

import (
	"strconv"

	"github.com/akashmaji946/glint/errs"
	"github.com/akashmaji946/glint/lexer"
	"github.com/akashmaji946/glint/position"
)

// expression is the entry point for any value-producing construct,
// including the statement-form control constructs (if/for/while/try/...)
// which are themselves expressions when not in block form.
func (p *Parser) expression() (Node, *errs.Error) {
	return p.orExpr()
}

// --- precedence level 1: and / or (short-circuit) ---

func (p *Parser) orExpr() (Node, *errs.Error) {
	left, err := p.andExpr()
	if err != nil {
		return nil, err
	}
	for p.checkKeyword("or") {
		p.advance()
		right, err := p.andExpr()
		if err != nil {
			return nil, err
		}
		left = &OrNode{base: base{span: position.Merge(left.Span(), right.Span())}, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) andExpr() (Node, *errs.Error) {
	left, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.checkKeyword("and") {
		p.advance()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		left = &AndNode{base: base{span: position.Merge(left.Span(), right.Span())}, Left: left, Right: right}
	}
	return left, nil
}

var comparisonOps = map[lexer.Kind]bool{
	lexer.LT: true, lexer.LTE: true, lexer.EE: true, lexer.NE: true, lexer.GT: true, lexer.GTE: true,
}

// --- precedence level 2: comparison, with `not` as a prefix at this level ---

func (p *Parser) comparison() (Node, *errs.Error) {
	if p.checkKeyword("not") {
		tok := p.advance()
		operand, err := p.comparison()
		if err != nil {
			return nil, err
		}
		return &UnaryNode{base: base{span: position.Merge(tok.Span, operand.Span())}, Op: lexer.NOT, Operand: operand}, nil
	}
	left, err := p.additive()
	if err != nil {
		return nil, err
	}
	for comparisonOps[p.cur.Kind] {
		op := p.advance()
		right, err := p.additive()
		if err != nil {
			return nil, err
		}
		left = &BinaryNode{base: base{span: position.Merge(left.Span(), right.Span())}, Left: left, Op: op.Kind, Right: right}
	}
	return left, nil
}

var additiveOps = map[lexer.Kind]bool{
	lexer.PLUS: true, lexer.MINUS: true, lexer.BITAND: true, lexer.BITOR: true,
	lexer.BITXOR: true, lexer.LSHIFT: true, lexer.RSHIFT: true,
}

// --- precedence level 3: additive / bitwise wide ---

func (p *Parser) additive() (Node, *errs.Error) {
	left, err := p.multiplicative()
	if err != nil {
		return nil, err
	}
	for additiveOps[p.cur.Kind] {
		op := p.advance()
		right, err := p.multiplicative()
		if err != nil {
			return nil, err
		}
		left = &BinaryNode{base: base{span: position.Merge(left.Span(), right.Span())}, Left: left, Op: op.Kind, Right: right}
	}
	return left, nil
}

var multiplicativeOps = map[lexer.Kind]bool{
	lexer.MUL: true, lexer.DIV: true, lexer.FLOOR: true, lexer.MOD: true,
	lexer.ARROW: true, lexer.QUESTION: true, lexer.AT: true,
}

// --- precedence level 4: multiplicative, feeding into unary ---

func (p *Parser) multiplicative() (Node, *errs.Error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for multiplicativeOps[p.cur.Kind] {
		op := p.advance()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		left = &BinaryNode{base: base{span: position.Merge(left.Span(), right.Span())}, Left: left, Op: op.Kind, Right: right}
	}
	return left, nil
}

var unaryOps = map[lexer.Kind]bool{
	lexer.PLUS: true, lexer.MINUS: true, lexer.XAT: true, lexer.INVERT: true,
}

// unary parses the prefix operators (+ - not *@ ~), which bind tighter
// than multiplicative but looser than power/postfix.
func (p *Parser) unary() (Node, *errs.Error) {
	if p.checkKeyword("not") {
		tok := p.advance()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &UnaryNode{base: base{span: position.Merge(tok.Span, operand.Span())}, Op: lexer.NOT, Operand: operand}, nil
	}
	if unaryOps[p.cur.Kind] {
		tok := p.advance()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &UnaryNode{base: base{span: position.Merge(tok.Span, operand.Span())}, Op: tok.Kind, Operand: operand}, nil
	}
	return p.power()
}

// power is the highest binary precedence level: ** and :: (membership),
// left-associative like every other level.
func (p *Parser) power() (Node, *errs.Error) {
	left, err := p.postfix()
	if err != nil {
		return nil, err
	}
	for p.check(lexer.POW) || p.check(lexer.DOUBLE) {
		op := p.advance()
		right, err := p.postfix()
		if err != nil {
			return nil, err
		}
		left = &BinaryNode{base: base{span: position.Merge(left.Span(), right.Span())}, Left: left, Op: op.Kind, Right: right}
	}
	return left, nil
}

// postfix greedily consumes attribute access, calls and indexing after
// an atom, e.g. `foo.bar(1)[2].baz`.
func (p *Parser) postfix() (Node, *errs.Error) {
	node, err := p.atom()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.check(lexer.POINT_TOK):
			p.advance()
			name, err := p.expect(lexer.IDENTIFIER, "attribute name")
			if err != nil {
				return nil, err
			}
			node = &AttrAccessNode{base: base{span: position.Merge(node.Span(), name.Span)}, Target: node, Name: name.Value}
		case p.check(lexer.LPAREN):
			p.advance()
			args, endSpan, err := p.argList()
			if err != nil {
				return nil, err
			}
			node = &CallNode{base: base{span: position.Merge(node.Span(), endSpan)}, Callee: node, Args: args}
		case p.check(lexer.LBRACKET):
			p.advance()
			p.skipNewlines()
			idx, err := p.expression()
			if err != nil {
				return nil, err
			}
			p.skipNewlines()
			closeTok, err := p.expect(lexer.RBRACKET, "']'")
			if err != nil {
				return nil, err
			}
			node = &IndexNode{base: base{span: position.Merge(node.Span(), closeTok.Span)}, Target: node, Index: idx}
		default:
			return node, nil
		}
	}
}

func (p *Parser) argList() ([]Node, position.Span, *errs.Error) {
	p.skipNewlines()
	var args []Node
	if p.check(lexer.RPAREN) {
		tok := p.advance()
		return args, tok.Span, nil
	}
	for {
		p.skipNewlines()
		arg, err := p.expression()
		if err != nil {
			return nil, position.Span{}, err
		}
		args = append(args, arg)
		p.skipNewlines()
		if _, ok := p.match(lexer.COMMA); ok {
			continue
		}
		break
	}
	p.skipNewlines()
	closeTok, err := p.expect(lexer.RPAREN, "')'")
	if err != nil {
		return nil, position.Span{}, err
	}
	return args, closeTok.Span, nil
}

// atom parses the smallest value-producing unit: literals, identifiers,
// parenthesised expressions, list/dict literals and the control
// constructs that double as expressions.
func (p *Parser) atom() (Node, *errs.Error) {
	tok := p.cur
	switch tok.Kind {
	case lexer.INT:
		p.advance()
		v, _ := strconv.ParseInt(tok.Value, 10, 64)
		return &NumberNode{base: base{span: tok.Span}, Int: v}, nil
	case lexer.FLOAT:
		p.advance()
		v, _ := strconv.ParseFloat(tok.Value, 64)
		return &NumberNode{base: base{span: tok.Span}, IsFloat: true, Float: v}, nil
	case lexer.STRING:
		p.advance()
		return &StringNode{base: base{span: tok.Span}, Value: tok.Value}, nil
	case lexer.BOOL:
		p.advance()
		return &BoolNode{base: base{span: tok.Span}, Value: tok.Value == "true"}, nil
	case lexer.NULL:
		p.advance()
		return &NullNode{base: base{span: tok.Span}}, nil
	case lexer.IDENTIFIER:
		name := p.advance()
		return &VarAccessNode{base: base{span: name.Span}, Name: name.Value}, nil
	case lexer.LPAREN:
		p.advance()
		p.skipNewlines()
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		p.skipNewlines()
		if _, err := p.expect(lexer.RPAREN, "')'"); err != nil {
			return nil, err
		}
		return expr, nil
	case lexer.LBRACKET:
		return p.listLiteral()
	case lexer.LBRACE:
		return p.dictLiteral()
	case lexer.KEYWORD:
		switch tok.Value {
		case "if":
			return p.ifExpr()
		case "for":
			return p.forExpr()
		case "while":
			return p.whileExpr()
		case "function":
			return p.functionExpr()
		case "try":
			return p.tryExpr()
		case "switch":
			return p.switchExpr()
		case "namespace":
			return p.namespaceExpr()
		case "pass":
			p.advance()
			return &NullNode{base: base{span: tok.Span}}, nil
		}
	}
	return nil, errs.Newf(errs.InvalidSyntaxError, tok.Span, "unexpected token '%s'", tok.Value)
}

// compoundAssignOps maps a compound-assignment token to the binary
// operator it expands to: `var x OP= e` parses as
// `VarAssign(x, Binary(VarAccess(x), OP, e))`.
var compoundAssignOps = map[lexer.Kind]lexer.Kind{
	lexer.PLUS_ASSIGN:  lexer.PLUS,
	lexer.MINUS_ASSIGN: lexer.MINUS,
	lexer.MUL_ASSIGN:   lexer.MUL,
	lexer.DIV_ASSIGN:   lexer.DIV,
	lexer.FLOOR_ASSIGN: lexer.FLOOR,
	lexer.MOD_ASSIGN:   lexer.MOD,
	lexer.POW_ASSIGN:   lexer.POW,
}
