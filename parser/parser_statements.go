/*
File    : glint/parser/parser_statements.go
*/

package parser

import (
	"github.com/akashmaji946/glint/errs"
	"github.com/akashmaji946/glint/lexer"
	"github.com/akashmaji946/glint/position"
)

// blockEnders names the keywords that may legally close a block-form
// body; a matching keyword is left unconsumed for the caller to inspect.
var blockEnders = map[string]bool{
	"end": true, "elif": true, "else": true, "catch": true, "finally": true, "case": true, "default": true,
}

// parseBody implements the statement-vs-block duality shared by if, for,
// while, function, try, switch and namespace: if the token immediately
// after the construct's opener (`then`/`do`) is NEWLINE, the body is a
// NEWLINE-separated statement list closed by one of `enders`; otherwise
// the body is a single statement and no `end` is consumed.
func (p *Parser) parseBody(enders ...string) (Node, bool, *errs.Error) {
	if !p.check(lexer.NEWLINE) {
		stmt, err := p.statement()
		if err != nil {
			return nil, false, err
		}
		return stmt, false, nil
	}
	start := p.cur.Span
	p.skipNewlines()
	var stmts []Node
	for {
		if p.check(lexer.EOF) {
			return nil, false, errs.New(errs.InvalidSyntaxError, p.cur.Span, "unexpected end of input, expected 'end'")
		}
		if isEnder(p.cur, enders) {
			break
		}
		stmt, err := p.statement()
		if err != nil {
			return nil, false, err
		}
		stmts = append(stmts, stmt)
		if isEnder(p.cur, enders) || p.check(lexer.EOF) {
			break
		}
		if !p.check(lexer.NEWLINE) {
			return nil, false, errs.Newf(errs.InvalidSyntaxError, p.cur.Span, "unexpected token '%s'", p.cur.Value)
		}
		p.skipNewlines()
	}
	end := p.cur.Span
	return &ListNode{base: base{span: position.Merge(start, end)}, Items: stmts, IsBlock: true}, true, nil
}

func isEnder(tok lexer.Token, enders []string) bool {
	if tok.Kind != lexer.KEYWORD {
		return false
	}
	for _, w := range enders {
		if tok.Value == w {
			return true
		}
	}
	return false
}

// statement parses one statement: the keyword-led forms that only make
// sense at statement position, or a bare expression (whose dedicated
// control-construct keywords are handled by atom() since they double as
// expressions).
func (p *Parser) statement() (Node, *errs.Error) {
	if p.cur.Kind == lexer.KEYWORD {
		switch p.cur.Value {
		case "var":
			return p.varStatement()
		case "attr":
			return p.attrStatement()
		case "delete":
			return p.deleteStatement()
		case "assert":
			return p.assertStatement()
		case "throw":
			return p.throwStatement()
		case "exit":
			return p.exitStatement()
		case "return":
			return p.returnStatement()
		case "break":
			return p.breakStatement()
		case "continue":
			return p.continueStatement()
		case "include":
			return p.includeStatement()
		case "using":
			return p.usingStatement()
		}
	}
	return p.expression()
}

// varStatement parses `var NAME = expr` and the compound-assignment form
// `var NAME OP= expr`, the latter rewriting into
// `VarAssign(NAME, Binary(VarAccess(NAME), OP, expr))`.
func (p *Parser) varStatement() (Node, *errs.Error) {
	start := p.advance() // 'var'
	name, err := p.expect(lexer.IDENTIFIER, "variable name")
	if err != nil {
		return nil, err
	}
	if op, isCompound := compoundAssignOps[p.cur.Kind]; isCompound {
		p.advance()
		rhs, err := p.expression()
		if err != nil {
			return nil, err
		}
		access := Node(&VarAccessNode{base: base{span: name.Span}, Name: name.Value})
		bin := &BinaryNode{base: base{span: position.Merge(access.Span(), rhs.Span())}, Left: access, Op: op, Right: rhs}
		return &VarAssignNode{base: base{span: position.Merge(start.Span, bin.Span())}, Name: name.Value, Expr: bin}, nil
	}
	if _, err := p.expect(lexer.EQ, "'='"); err != nil {
		return nil, err
	}
	rhs, err := p.expression()
	if err != nil {
		return nil, err
	}
	return &VarAssignNode{base: base{span: position.Merge(start.Span, rhs.Span())}, Name: name.Value, Expr: rhs}, nil
}

// attrStatement parses `attr TARGET.NAME = expr` and its compound form,
// the explicit statement used to mutate an attribute (plain `.name`
// postfix access is always a read).
func (p *Parser) attrStatement() (Node, *errs.Error) {
	start := p.advance() // 'attr'
	target, err := p.postfix()
	if err != nil {
		return nil, err
	}
	attrNode, ok := target.(*AttrAccessNode)
	if !ok {
		return nil, errs.New(errs.InvalidSyntaxError, target.Span(), "expected an attribute access after 'attr'")
	}
	if op, isCompound := compoundAssignOps[p.cur.Kind]; isCompound {
		p.advance()
		rhs, err := p.expression()
		if err != nil {
			return nil, err
		}
		bin := &BinaryNode{base: base{span: position.Merge(attrNode.Span(), rhs.Span())}, Left: attrNode, Op: op, Right: rhs}
		return &AttrAssignNode{base: base{span: position.Merge(start.Span, bin.Span())}, Receiver: attrNode.Target, Attr: attrNode.Name, Expr: bin}, nil
	}
	if _, err := p.expect(lexer.EQ, "'='"); err != nil {
		return nil, err
	}
	rhs, err := p.expression()
	if err != nil {
		return nil, err
	}
	return &AttrAssignNode{base: base{span: position.Merge(start.Span, rhs.Span())}, Receiver: attrNode.Target, Attr: attrNode.Name, Expr: rhs}, nil
}

func (p *Parser) deleteStatement() (Node, *errs.Error) {
	start := p.advance() // 'delete'
	name, err := p.expect(lexer.IDENTIFIER, "variable name")
	if err != nil {
		return nil, err
	}
	return &DeleteNode{base: base{span: position.Merge(start.Span, name.Span)}, Name: name.Value}, nil
}

func (p *Parser) assertStatement() (Node, *errs.Error) {
	start := p.advance() // 'assert'
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	node := &AssertNode{base: base{span: position.Merge(start.Span, cond.Span())}, Cond: cond}
	if _, ok := p.match(lexer.COMMA); ok {
		details, err := p.expression()
		if err != nil {
			return nil, err
		}
		node.Details = details
		node.base.span = position.Merge(start.Span, details.Span())
	}
	return node, nil
}

func (p *Parser) throwStatement() (Node, *errs.Error) {
	start := p.advance() // 'throw'
	name, err := p.expression()
	if err != nil {
		return nil, err
	}
	node := &ThrowNode{base: base{span: position.Merge(start.Span, name.Span())}, ErrorName: name}
	if _, ok := p.match(lexer.COMMA); ok {
		details, err := p.expression()
		if err != nil {
			return nil, err
		}
		node.Details = details
		node.base.span = position.Merge(start.Span, details.Span())
	}
	return node, nil
}

func (p *Parser) exitStatement() (Node, *errs.Error) {
	start := p.advance() // 'exit'
	node := &ExitNode{base: base{span: start.Span}}
	if p.canStartExpression() {
		status, err := p.expression()
		if err != nil {
			return nil, err
		}
		node.Status = status
		node.base.span = position.Merge(start.Span, status.Span())
	}
	return node, nil
}

func (p *Parser) returnStatement() (Node, *errs.Error) {
	start := p.advance() // 'return'
	if !p.inFunc {
		return nil, errs.New(errs.OutsideError, start.Span, "'return' outside a function")
	}
	node := &ReturnNode{base: base{span: start.Span}}
	if p.canStartExpression() {
		val, err := p.expression()
		if err != nil {
			return nil, err
		}
		node.Value = val
		node.base.span = position.Merge(start.Span, val.Span())
	}
	return node, nil
}

func (p *Parser) breakStatement() (Node, *errs.Error) {
	start := p.advance() // 'break'
	if !p.inLoop {
		return nil, errs.New(errs.OutsideError, start.Span, "'break' outside a loop")
	}
	return &BreakNode{base: base{span: start.Span}}, nil
}

func (p *Parser) continueStatement() (Node, *errs.Error) {
	start := p.advance() // 'continue'
	if !p.inLoop {
		return nil, errs.New(errs.OutsideError, start.Span, "'continue' outside a loop")
	}
	return &ContinueNode{base: base{span: start.Span}}, nil
}

func (p *Parser) includeStatement() (Node, *errs.Error) {
	start := p.advance() // 'include'
	module, err := p.expression()
	if err != nil {
		return nil, err
	}
	return &IncludeNode{base: base{span: position.Merge(start.Span, module.Span())}, Module: module}, nil
}

// usingStatement parses `using NAME.*` (merge all attributes) and
// `using NAME.member` (bind a single attribute).
func (p *Parser) usingStatement() (Node, *errs.Error) {
	start := p.advance() // 'using'
	name, err := p.expect(lexer.IDENTIFIER, "namespace name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.POINT_TOK, "'.'"); err != nil {
		return nil, err
	}
	if p.check(lexer.MUL) {
		star := p.advance()
		return &UsingNode{base: base{span: position.Merge(start.Span, star.Span)}, NamespaceName: name.Value, Member: "*"}, nil
	}
	member, err := p.expect(lexer.IDENTIFIER, "member name")
	if err != nil {
		return nil, err
	}
	return &UsingNode{base: base{span: position.Merge(start.Span, member.Span)}, NamespaceName: name.Value, Member: member.Value}, nil
}

// canStartExpression reports whether the current token can begin an
// expression, used to distinguish bare `return`/`exit` from their
// value-carrying forms.
func (p *Parser) canStartExpression() bool {
	switch p.cur.Kind {
	case lexer.NEWLINE, lexer.EOF:
		return false
	case lexer.KEYWORD:
		return !blockEnders[p.cur.Value]
	default:
		return true
	}
}
