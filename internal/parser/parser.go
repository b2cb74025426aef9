// Package parser implements hio's recursive-descent, precedence-climbing
// parser: a token stream in, a *ast.Program out.
package parser

import (
	"fmt"

	"github.com/hyperaprog/hio/internal/ast"
	"github.com/hyperaprog/hio/internal/lexer"
	"github.com/hyperaprog/hio/internal/token"
)

// Parser consumes tokens from a Lexer and builds a Program. Parsing stops at
// the first syntax error; Errors returns at most one diagnostic.
type Parser struct {
	l *lexer.Lexer

	cur  token.Token
	peek token.Token

	errors []string
}

// New creates a Parser reading from l and primes the first two tokens.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.next()
	p.next()
	return p
}

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

// Errors returns the diagnostics collected during parsing (at most one: the
// first mismatch aborts parsing, per spec).
func (p *Parser) Errors() []string {
	return p.errors
}

// errorf records the first diagnostic only; a trailing " at LINE:COL" lets
// the CLI boundary recover position information (see internal/errors).
func (p *Parser) errorf(format string, args ...any) {
	if len(p.errors) == 0 {
		msg := fmt.Sprintf(format, args...)
		p.errors = append(p.errors, fmt.Sprintf("%s at %s", msg, p.cur.Pos))
	}
}

func (p *Parser) expect(t token.Type) bool {
	if p.cur.Type == t {
		p.next()
		return true
	}
	p.errorf("Expected %s, got %s", t, p.cur)
	return false
}

func (p *Parser) failed() bool {
	return len(p.errors) > 0
}

// ParseProgram parses the whole token stream. On the first syntax error it
// stops and returns whatever statements were already collected; callers
// must check Errors() before trusting the result.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{}
	for p.cur.Type != token.EOF && !p.failed() {
		stmt := p.parseStatement()
		if p.failed() {
			return prog
		}
		prog.Statements = append(prog.Statements, stmt)
	}
	return prog
}
