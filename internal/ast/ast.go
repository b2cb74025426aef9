// Package ast defines the syntax tree node types shared by the evaluator and
// the emitter.
package ast

import (
	"bytes"
	"strings"

	"github.com/hyperaprog/hio/internal/token"
)

// Node is the base interface implemented by every syntax tree node.
type Node interface {
	TokenLiteral() string
	String() string
	Pos() token.Position
}

// Expression is a node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is a node that performs an action.
type Statement interface {
	Node
	statementNode()
}

// Program is the root node: an ordered sequence of top-level statements.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Statements {
		out.WriteString(s.String())
	}
	return out.String()
}

func (p *Program) Pos() token.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return token.Position{Line: 1, Column: 1}
}

// ---- Expressions ----

type IntegerLiteral struct {
	Token token.Token
	Value int64
}

func (n *IntegerLiteral) expressionNode()      {}
func (n *IntegerLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *IntegerLiteral) String() string       { return n.Token.Literal }
func (n *IntegerLiteral) Pos() token.Position   { return n.Token.Pos }

type FloatLiteral struct {
	Token token.Token
	Value float64
}

func (n *FloatLiteral) expressionNode()      {}
func (n *FloatLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *FloatLiteral) String() string       { return n.Token.Literal }
func (n *FloatLiteral) Pos() token.Position   { return n.Token.Pos }

type StringLiteral struct {
	Token token.Token
	Value string
}

func (n *StringLiteral) expressionNode()      {}
func (n *StringLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *StringLiteral) String() string       { return "\"" + n.Value + "\"" }
func (n *StringLiteral) Pos() token.Position   { return n.Token.Pos }

// BoolLit exists for completeness of the value/expression model (see
// spec's Expression variant list) but the grammar never produces one
// directly; boolean values only arise from comparisons and logical
// operators at runtime.
type BoolLit struct {
	Token token.Token
	Value bool
}

func (n *BoolLit) expressionNode()      {}
func (n *BoolLit) TokenLiteral() string { return n.Token.Literal }
func (n *BoolLit) String() string       { return n.Token.Literal }
func (n *BoolLit) Pos() token.Position   { return n.Token.Pos }

type Identifier struct {
	Token token.Token
	Value string
}

func (n *Identifier) expressionNode()      {}
func (n *Identifier) TokenLiteral() string { return n.Token.Literal }
func (n *Identifier) String() string       { return n.Value }
func (n *Identifier) Pos() token.Position   { return n.Token.Pos }

type ArrayLit struct {
	Token    token.Token // the '[' token
	Elements []Expression
}

func (n *ArrayLit) expressionNode()      {}
func (n *ArrayLit) TokenLiteral() string { return n.Token.Literal }
func (n *ArrayLit) String() string {
	parts := make([]string, len(n.Elements))
	for i, e := range n.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
func (n *ArrayLit) Pos() token.Position { return n.Token.Pos }

// ObjectField is one key/value pair of an ObjectLit, kept in source order.
type ObjectField struct {
	Key   string
	Value Expression
}

type ObjectLit struct {
	Token  token.Token // the '{' token
	Fields []ObjectField
}

func (n *ObjectLit) expressionNode()      {}
func (n *ObjectLit) TokenLiteral() string { return n.Token.Literal }
func (n *ObjectLit) String() string {
	parts := make([]string, len(n.Fields))
	for i, f := range n.Fields {
		parts[i] = f.Key + ": " + f.Value.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
func (n *ObjectLit) Pos() token.Position { return n.Token.Pos }

type Binary struct {
	Token token.Token // the operator token
	Left  Expression
	Op    token.Type
	Right Expression
}

func (n *Binary) expressionNode()      {}
func (n *Binary) TokenLiteral() string { return n.Token.Literal }
func (n *Binary) String() string {
	return "(" + n.Left.String() + " " + n.Token.Literal + " " + n.Right.String() + ")"
}
func (n *Binary) Pos() token.Position { return n.Token.Pos }

type Unary struct {
	Token   token.Token // the operator token
	Op      token.Type
	Operand Expression
}

func (n *Unary) expressionNode()      {}
func (n *Unary) TokenLiteral() string { return n.Token.Literal }
func (n *Unary) String() string       { return "(" + n.Token.Literal + n.Operand.String() + ")" }
func (n *Unary) Pos() token.Position   { return n.Token.Pos }

type Call struct {
	Token  token.Token // the '(' token
	Callee Expression
	Args   []Expression
}

func (n *Call) expressionNode()      {}
func (n *Call) TokenLiteral() string { return n.Token.Literal }
func (n *Call) String() string {
	parts := make([]string, len(n.Args))
	for i, a := range n.Args {
		parts[i] = a.String()
	}
	return n.Callee.String() + "(" + strings.Join(parts, ", ") + ")"
}
func (n *Call) Pos() token.Position { return n.Token.Pos }

type Index struct {
	Token      token.Token // the '[' token
	Collection Expression
	IndexExpr  Expression
}

func (n *Index) expressionNode()      {}
func (n *Index) TokenLiteral() string { return n.Token.Literal }
func (n *Index) String() string {
	return n.Collection.String() + "[" + n.IndexExpr.String() + "]"
}
func (n *Index) Pos() token.Position { return n.Token.Pos }

type Member struct {
	Token  token.Token // the '.' token
	Object Expression
	Name   string
}

func (n *Member) expressionNode()      {}
func (n *Member) TokenLiteral() string { return n.Token.Literal }
func (n *Member) String() string       { return n.Object.String() + "." + n.Name }
func (n *Member) Pos() token.Position   { return n.Token.Pos }
