package parser

import (
	"strconv"

	"github.com/hyperaprog/hio/internal/ast"
	"github.com/hyperaprog/hio/internal/token"
)

// LOWEST is the entry precedence for parseExpression; every chain level below
// binds tighter than the one above it, mirroring the original's
// parse_logical_or -> ... -> parse_primary descent.
const LOWEST = 0

func (p *Parser) parseExpression(_ int) ast.Expression {
	return p.parseLogicalOr()
}

func (p *Parser) parseLogicalOr() ast.Expression {
	left := p.parseLogicalAnd()
	for !p.failed() && p.cur.Type == token.OR {
		tok := p.cur
		p.next()
		right := p.parseLogicalAnd()
		if p.failed() {
			return nil
		}
		left = &ast.Binary{Token: tok, Left: left, Op: token.OR, Right: right}
	}
	return left
}

func (p *Parser) parseLogicalAnd() ast.Expression {
	left := p.parseEquality()
	for !p.failed() && p.cur.Type == token.AND {
		tok := p.cur
		p.next()
		right := p.parseEquality()
		if p.failed() {
			return nil
		}
		left = &ast.Binary{Token: tok, Left: left, Op: token.AND, Right: right}
	}
	return left
}

func (p *Parser) parseEquality() ast.Expression {
	left := p.parseComparison()
	for !p.failed() && (p.cur.Type == token.EQ || p.cur.Type == token.NOT_EQ) {
		tok := p.cur
		op := p.cur.Type
		p.next()
		right := p.parseComparison()
		if p.failed() {
			return nil
		}
		left = &ast.Binary{Token: tok, Left: left, Op: op, Right: right}
	}
	return left
}

func (p *Parser) parseComparison() ast.Expression {
	left := p.parseAdditive()
	for !p.failed() && isComparisonOp(p.cur.Type) {
		tok := p.cur
		op := p.cur.Type
		p.next()
		right := p.parseAdditive()
		if p.failed() {
			return nil
		}
		left = &ast.Binary{Token: tok, Left: left, Op: op, Right: right}
	}
	return left
}

func isComparisonOp(t token.Type) bool {
	switch t {
	case token.LT, token.LT_EQ, token.GT, token.GT_EQ:
		return true
	}
	return false
}

func (p *Parser) parseAdditive() ast.Expression {
	left := p.parseMultiplicative()
	for !p.failed() && (p.cur.Type == token.PLUS || p.cur.Type == token.MINUS) {
		tok := p.cur
		op := p.cur.Type
		p.next()
		right := p.parseMultiplicative()
		if p.failed() {
			return nil
		}
		left = &ast.Binary{Token: tok, Left: left, Op: op, Right: right}
	}
	return left
}

func (p *Parser) parseMultiplicative() ast.Expression {
	left := p.parseUnary()
	for !p.failed() && (p.cur.Type == token.STAR || p.cur.Type == token.SLASH || p.cur.Type == token.PERCENT) {
		tok := p.cur
		op := p.cur.Type
		p.next()
		right := p.parseUnary()
		if p.failed() {
			return nil
		}
		left = &ast.Binary{Token: tok, Left: left, Op: op, Right: right}
	}
	return left
}

func (p *Parser) parseUnary() ast.Expression {
	if p.cur.Type == token.NOT || p.cur.Type == token.MINUS {
		tok := p.cur
		op := p.cur.Type
		p.next()
		operand := p.parseUnary()
		if p.failed() {
			return nil
		}
		return &ast.Unary{Token: tok, Op: op, Operand: operand}
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() ast.Expression {
	expr := p.parsePrimary()
	for !p.failed() {
		switch p.cur.Type {
		case token.LPAREN:
			tok := p.cur
			p.next()
			args := p.parseArgList()
			if p.failed() {
				return nil
			}
			if !p.expect(token.RPAREN) {
				return nil
			}
			expr = &ast.Call{Token: tok, Callee: expr, Args: args}
		case token.LBRACKET:
			tok := p.cur
			p.next()
			idx := p.parseExpression(LOWEST)
			if p.failed() {
				return nil
			}
			if !p.expect(token.RBRACKET) {
				return nil
			}
			expr = &ast.Index{Token: tok, Collection: expr, IndexExpr: idx}
		case token.DOT:
			tok := p.cur
			p.next()
			// The keyword "text" is accepted as a member name so that the
			// writeutil.text(...) builtin parses.
			if p.cur.Type != token.IDENT && p.cur.Type != token.TEXT {
				p.errorf("Expected %s, got %s", token.IDENT, p.cur)
				return nil
			}
			name := p.cur.Literal
			p.next()
			expr = &ast.Member{Token: tok, Object: expr, Name: name}
		default:
			return expr
		}
	}
	return nil
}

func (p *Parser) parseArgList() []ast.Expression {
	var args []ast.Expression
	for p.cur.Type != token.RPAREN && p.cur.Type != token.EOF {
		arg := p.parseExpression(LOWEST)
		if p.failed() {
			return nil
		}
		args = append(args, arg)
		if p.cur.Type == token.COMMA {
			p.next()
		}
	}
	return args
}

func (p *Parser) parsePrimary() ast.Expression {
	switch p.cur.Type {
	case token.INT:
		tok := p.cur
		v, _ := strconv.ParseInt(tok.Literal, 10, 64)
		p.next()
		return &ast.IntegerLiteral{Token: tok, Value: v}
	case token.FLOAT:
		tok := p.cur
		v, _ := strconv.ParseFloat(tok.Literal, 64)
		p.next()
		return &ast.FloatLiteral{Token: tok, Value: v}
	case token.STRING:
		tok := p.cur
		p.next()
		return &ast.StringLiteral{Token: tok, Value: tok.Literal}
	case token.IDENT:
		tok := p.cur
		p.next()
		return &ast.Identifier{Token: tok, Value: tok.Literal}
	case token.LPAREN:
		p.next()
		expr := p.parseExpression(LOWEST)
		if p.failed() {
			return nil
		}
		if !p.expect(token.RPAREN) {
			return nil
		}
		return expr
	case token.LBRACKET:
		return p.parseArrayLit()
	case token.LBRACE:
		return p.parseObjectLit()
	case token.CALL:
		return p.parseCallDotSyntax()
	default:
		p.errorf("Unexpected token %s", p.cur)
		return nil
	}
}

func (p *Parser) parseArrayLit() ast.Expression {
	tok := p.cur
	p.next() // consume '['
	var elems []ast.Expression
	for p.cur.Type != token.RBRACKET && p.cur.Type != token.EOF {
		e := p.parseExpression(LOWEST)
		if p.failed() {
			return nil
		}
		elems = append(elems, e)
		if p.cur.Type == token.COMMA {
			p.next()
		}
	}
	if !p.expect(token.RBRACKET) {
		return nil
	}
	return &ast.ArrayLit{Token: tok, Elements: elems}
}

// parseObjectLit parses `{ key: expr, key: expr, ... }`. Object literals are
// not part of the original grammar; they are added here because the external
// interface requires `let o = {x: 1, y: 2}; print(o.x + o.y);` to parse.
func (p *Parser) parseObjectLit() ast.Expression {
	tok := p.cur
	p.next() // consume '{'
	var fields []ast.ObjectField
	for p.cur.Type != token.RBRACE && p.cur.Type != token.EOF {
		if p.cur.Type != token.IDENT {
			p.errorf("Expected %s, got %s", token.IDENT, p.cur)
			return nil
		}
		key := p.cur.Literal
		p.next()
		if !p.expect(token.COLON) {
			return nil
		}
		val := p.parseExpression(LOWEST)
		if p.failed() {
			return nil
		}
		fields = append(fields, ast.ObjectField{Key: key, Value: val})
		if p.cur.Type == token.COMMA {
			p.next()
		}
	}
	if !p.expect(token.RBRACE) {
		return nil
	}
	return &ast.ObjectLit{Token: tok, Fields: fields}
}

// parseCallDotSyntax desugars `call.NAME(args)` into a plain Call node whose
// callee is an Identifier named NAME, matching the original parser's
// handling of the dotted call form.
func (p *Parser) parseCallDotSyntax() ast.Expression {
	tok := p.cur
	p.next() // consume 'call'
	if !p.expect(token.DOT) {
		return nil
	}
	if p.cur.Type != token.IDENT {
		p.errorf("Expected %s, got %s", token.IDENT, p.cur)
		return nil
	}
	nameTok := p.cur
	p.next()
	if !p.expect(token.LPAREN) {
		return nil
	}
	args := p.parseArgList()
	if p.failed() {
		return nil
	}
	if !p.expect(token.RPAREN) {
		return nil
	}
	callee := &ast.Identifier{Token: nameTok, Value: nameTok.Literal}
	return &ast.Call{Token: tok, Callee: callee, Args: args}
}
