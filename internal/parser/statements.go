package parser

import (
	"github.com/hyperaprog/hio/internal/ast"
	"github.com/hyperaprog/hio/internal/token"
)

func (p *Parser) parseStatement() ast.Statement {
	switch p.cur.Type {
	case token.SPACE:
		return p.parseSpace()
	case token.PUB:
		return p.parsePub()
	case token.SUBPUB:
		return p.parseSubpub()
	case token.LET:
		return p.parseLet()
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.FOR:
		return p.parseFor()
	case token.RETURN:
		return p.parseReturn()
	case token.BREAK:
		tok := p.cur
		p.next()
		if !p.expect(token.SEMICOLON) {
			return nil
		}
		return &ast.Break{Token: tok}
	case token.CONTINUE:
		tok := p.cur
		p.next()
		if !p.expect(token.SEMICOLON) {
			return nil
		}
		return &ast.Continue{Token: tok}
	case token.LBRACE:
		return p.parseBlock()
	case token.FUNCTION:
		return p.parseFunctionDef()
	case token.IDENT:
		if p.peek.Type == token.ASSIGN {
			return p.parseAssign()
		}
		return p.parseExprStatement()
	default:
		return p.parseExprStatement()
	}
}

func (p *Parser) parseBlockBody() []ast.Statement {
	var stmts []ast.Statement
	for p.cur.Type != token.RBRACE && p.cur.Type != token.EOF && !p.failed() {
		s := p.parseStatement()
		if p.failed() {
			return stmts
		}
		stmts = append(stmts, s)
	}
	return stmts
}

func (p *Parser) parseBlock() *ast.Block {
	tok := p.cur
	if !p.expect(token.LBRACE) {
		return nil
	}
	stmts := p.parseBlockBody()
	if p.failed() {
		return nil
	}
	if !p.expect(token.RBRACE) {
		return nil
	}
	return &ast.Block{Token: tok, Statements: stmts}
}

// parseSpace parses `space IDENT name { BODY } end make ;`. The token after
// the space's own name must be an identifier, but (matching the original's
// discriminant-only equality check) its literal text is never verified to
// be "name"; any identifier is accepted there.
func (p *Parser) parseSpace() ast.Statement {
	tok := p.cur
	if !p.expect(token.SPACE) {
		return nil
	}
	if p.cur.Type != token.IDENT {
		p.errorf("Expected %s, got %s", token.IDENT, p.cur)
		return nil
	}
	name := p.cur.Literal
	p.next()
	if p.cur.Type != token.IDENT { // the "name" keyword slot; content unchecked
		p.errorf("Expected %s, got %s", token.IDENT, p.cur)
		return nil
	}
	p.next()
	body := p.parseBlock()
	if p.failed() {
		return nil
	}
	if !p.expect(token.END) || !p.expect(token.MAKE) || !p.expect(token.SEMICOLON) {
		return nil
	}
	return &ast.Space{Token: tok, Name: name, Body: body}
}

// parsePub parses `pub ; { ; com STRING { BODY } —>`.
func (p *Parser) parsePub() ast.Statement {
	tok := p.cur
	if !p.expect(token.PUB) || !p.expect(token.SEMICOLON) || !p.expect(token.LBRACE) {
		return nil
	}
	if p.cur.Type == token.SEMICOLON {
		p.next()
	}
	if p.cur.Type != token.IDENT { // the "com" keyword slot; content unchecked
		p.errorf("Expected %s, got %s", token.IDENT, p.cur)
		return nil
	}
	p.next()
	if p.cur.Type != token.STRING {
		p.errorf("Expected %s, got %s", token.STRING, p.cur)
		return nil
	}
	name := p.cur.Literal
	p.next()
	if !p.expect(token.LBRACE) {
		return nil
	}
	body := p.parseBlockBody()
	if p.failed() {
		return nil
	}
	if !p.expect(token.RBRACE) || !p.expect(token.DASH_ARROW) {
		return nil
	}
	return &ast.Pub{Token: tok, Name: name, Kind: "interpretation", Body: &ast.Block{Token: tok, Statements: body}}
}

// parseSubpub parses `subpub ; { BODY }`.
func (p *Parser) parseSubpub() ast.Statement {
	tok := p.cur
	if !p.expect(token.SUBPUB) || !p.expect(token.SEMICOLON) || !p.expect(token.LBRACE) {
		return nil
	}
	body := p.parseBlockBody()
	if p.failed() {
		return nil
	}
	if !p.expect(token.RBRACE) {
		return nil
	}
	return &ast.Subpub{Token: tok, Name: "subpub_block", Kind: "compilation", Body: &ast.Block{Token: tok, Statements: body}}
}

func (p *Parser) parseLet() ast.Statement {
	tok := p.cur
	if !p.expect(token.LET) {
		return nil
	}
	if p.cur.Type != token.IDENT {
		p.errorf("Expected %s, got %s", token.IDENT, p.cur)
		return nil
	}
	name := p.cur.Literal
	p.next()
	if !p.expect(token.ASSIGN) {
		return nil
	}
	value := p.parseExpression(LOWEST)
	if p.failed() {
		return nil
	}
	if !p.expect(token.SEMICOLON) {
		return nil
	}
	return &ast.Let{Token: tok, Name: name, Value: value}
}

func (p *Parser) parseAssign() ast.Statement {
	tok := p.cur
	target := p.cur.Literal
	p.next()
	if !p.expect(token.ASSIGN) {
		return nil
	}
	value := p.parseExpression(LOWEST)
	if p.failed() {
		return nil
	}
	if !p.expect(token.SEMICOLON) {
		return nil
	}
	return &ast.Assign{Token: tok, Target: target, Value: value}
}

func (p *Parser) parseIf() ast.Statement {
	tok := p.cur
	if !p.expect(token.IF) || !p.expect(token.LPAREN) {
		return nil
	}
	cond := p.parseExpression(LOWEST)
	if p.failed() {
		return nil
	}
	if !p.expect(token.RPAREN) {
		return nil
	}
	then := p.parseBlock()
	if p.failed() {
		return nil
	}
	var elseBlock *ast.Block
	if p.cur.Type == token.ELSE {
		p.next()
		elseBlock = p.parseBlock()
		if p.failed() {
			return nil
		}
	}
	return &ast.If{Token: tok, Cond: cond, Then: then, ElseBlock: elseBlock}
}

func (p *Parser) parseWhile() ast.Statement {
	tok := p.cur
	if !p.expect(token.WHILE) || !p.expect(token.LPAREN) {
		return nil
	}
	cond := p.parseExpression(LOWEST)
	if p.failed() {
		return nil
	}
	if !p.expect(token.RPAREN) {
		return nil
	}
	body := p.parseBlock()
	if p.failed() {
		return nil
	}
	return &ast.While{Token: tok, Cond: cond, Body: body}
}

func (p *Parser) parseFor() ast.Statement {
	tok := p.cur
	if !p.expect(token.FOR) || !p.expect(token.LPAREN) {
		return nil
	}

	var init ast.Statement
	if p.cur.Type != token.SEMICOLON {
		init = p.parseStatement() // consumes its own trailing ';' (Let/Assign/ExprStmt)
		if p.failed() {
			return nil
		}
	} else {
		p.next()
	}

	var cond ast.Expression
	if p.cur.Type != token.SEMICOLON {
		cond = p.parseExpression(LOWEST)
		if p.failed() {
			return nil
		}
	}
	if !p.expect(token.SEMICOLON) {
		return nil
	}

	var incr ast.Expression
	if p.cur.Type != token.RPAREN {
		incr = p.parseExpression(LOWEST)
		if p.failed() {
			return nil
		}
	}
	if !p.expect(token.RPAREN) {
		return nil
	}

	body := p.parseBlock()
	if p.failed() {
		return nil
	}
	return &ast.For{Token: tok, Init: init, Cond: cond, Increment: incr, Body: body}
}

func (p *Parser) parseReturn() ast.Statement {
	tok := p.cur
	if !p.expect(token.RETURN) {
		return nil
	}
	var val ast.Expression
	if p.cur.Type != token.SEMICOLON {
		val = p.parseExpression(LOWEST)
		if p.failed() {
			return nil
		}
	}
	if !p.expect(token.SEMICOLON) {
		return nil
	}
	return &ast.Return{Token: tok, Value: val}
}

func (p *Parser) parseFunctionDef() ast.Statement {
	tok := p.cur
	if !p.expect(token.FUNCTION) {
		return nil
	}
	if p.cur.Type != token.IDENT {
		p.errorf("Expected %s, got %s", token.IDENT, p.cur)
		return nil
	}
	name := p.cur.Literal
	p.next()
	if !p.expect(token.LPAREN) {
		return nil
	}
	var params []string
	for p.cur.Type != token.RPAREN && p.cur.Type != token.EOF {
		if p.cur.Type != token.IDENT {
			p.errorf("Expected %s, got %s", token.IDENT, p.cur)
			return nil
		}
		params = append(params, p.cur.Literal)
		p.next()
		if p.cur.Type == token.COMMA {
			p.next()
		}
	}
	if !p.expect(token.RPAREN) {
		return nil
	}
	body := p.parseBlock()
	if p.failed() {
		return nil
	}
	return &ast.FunctionDef{Token: tok, Name: name, Params: params, Body: body}
}

func (p *Parser) parseExprStatement() ast.Statement {
	tok := p.cur
	expr := p.parseExpression(LOWEST)
	if p.failed() {
		return nil
	}
	if !p.expect(token.SEMICOLON) {
		return nil
	}
	return &ast.ExprStmt{Token: tok, Expr: expr}
}
