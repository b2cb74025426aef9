package parser

import (
	"fmt"
	"testing"

	"github.com/hyperaprog/hio/internal/ast"
	"github.com/hyperaprog/hio/internal/lexer"
)

func parseProgram(t *testing.T, input string) *ast.Program {
	t.Helper()
	p := New(lexer.New(input))
	prog := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("unexpected parse errors for %q: %v", input, errs)
	}
	return prog
}

func TestParseLetAndExprStatement(t *testing.T) {
	prog := parseProgram(t, `let x = 1 + 2 * 3; print(x);`)
	if len(prog.Statements) != 2 {
		t.Fatalf("got %d statements, want 2", len(prog.Statements))
	}
	let, ok := prog.Statements[0].(*ast.Let)
	if !ok {
		t.Fatalf("first statement is %T, want *ast.Let", prog.Statements[0])
	}
	if let.Name != "x" {
		t.Errorf("Let.Name = %q, want %q", let.Name, "x")
	}
	bin, ok := let.Value.(*ast.Binary)
	if !ok {
		t.Fatalf("Let.Value is %T, want *ast.Binary", let.Value)
	}
	if got, want := bin.String(), "(1 + (2 * 3))"; got != want {
		t.Errorf("precedence mismatch: got %q, want %q", got, want)
	}
}

func TestParseAssign(t *testing.T) {
	prog := parseProgram(t, `x = 5;`)
	assign, ok := prog.Statements[0].(*ast.Assign)
	if !ok {
		t.Fatalf("statement is %T, want *ast.Assign", prog.Statements[0])
	}
	if assign.Target != "x" {
		t.Errorf("Assign.Target = %q, want x", assign.Target)
	}
}

func TestParseIfElse(t *testing.T) {
	prog := parseProgram(t, `if (0) { print("a"); } else { print("b"); }`)
	ifStmt, ok := prog.Statements[0].(*ast.If)
	if !ok {
		t.Fatalf("statement is %T, want *ast.If", prog.Statements[0])
	}
	if ifStmt.ElseBlock == nil {
		t.Fatal("expected an else block")
	}
}

func TestParseWhile(t *testing.T) {
	prog := parseProgram(t, `while (i < 3) { i = i + 1; }`)
	if _, ok := prog.Statements[0].(*ast.While); !ok {
		t.Fatalf("statement is %T, want *ast.While", prog.Statements[0])
	}
}

func TestParseForAllPartsOptional(t *testing.T) {
	prog := parseProgram(t, `for (;;) { break; }`)
	forStmt, ok := prog.Statements[0].(*ast.For)
	if !ok {
		t.Fatalf("statement is %T, want *ast.For", prog.Statements[0])
	}
	if forStmt.Init != nil || forStmt.Cond != nil || forStmt.Increment != nil {
		t.Errorf("expected all For parts nil, got %+v", forStmt)
	}
}

func TestParseForFullHeader(t *testing.T) {
	prog := parseProgram(t, `for (let i = 0; i < 3; i = i + 1) { print(i); }`)
	forStmt, ok := prog.Statements[0].(*ast.For)
	if !ok {
		t.Fatalf("statement is %T, want *ast.For", prog.Statements[0])
	}
	if forStmt.Init == nil || forStmt.Cond == nil || forStmt.Increment == nil {
		t.Errorf("expected all For parts set, got %+v", forStmt)
	}
}

func TestParseFunctionDef(t *testing.T) {
	prog := parseProgram(t, `function add(a, b) { return a + b; }`)
	fn, ok := prog.Statements[0].(*ast.FunctionDef)
	if !ok {
		t.Fatalf("statement is %T, want *ast.FunctionDef", prog.Statements[0])
	}
	if fn.Name != "add" || len(fn.Params) != 2 || fn.Params[0] != "a" || fn.Params[1] != "b" {
		t.Errorf("unexpected FunctionDef: %+v", fn)
	}
}

func TestParseArrayAndIndex(t *testing.T) {
	prog := parseProgram(t, `let a = [10, 20, 30]; print(a[1]);`)
	let := prog.Statements[0].(*ast.Let)
	if _, ok := let.Value.(*ast.ArrayLit); !ok {
		t.Fatalf("Let.Value is %T, want *ast.ArrayLit", let.Value)
	}
	exprStmt := prog.Statements[1].(*ast.ExprStmt)
	call := exprStmt.Expr.(*ast.Call)
	if _, ok := call.Args[0].(*ast.Index); !ok {
		t.Fatalf("call arg is %T, want *ast.Index", call.Args[0])
	}
}

func TestParseObjectLitAndMember(t *testing.T) {
	prog := parseProgram(t, `let o = {x: 1, y: 2}; print(o.x + o.y);`)
	let := prog.Statements[0].(*ast.Let)
	obj, ok := let.Value.(*ast.ObjectLit)
	if !ok {
		t.Fatalf("Let.Value is %T, want *ast.ObjectLit", let.Value)
	}
	if len(obj.Fields) != 2 || obj.Fields[0].Key != "x" || obj.Fields[1].Key != "y" {
		t.Errorf("unexpected object fields: %+v", obj.Fields)
	}
}

func TestParseCallDotSyntaxDesugarsToCall(t *testing.T) {
	prog := parseProgram(t, `call.foo(1, 2);`)
	stmt := prog.Statements[0].(*ast.ExprStmt)
	call, ok := stmt.Expr.(*ast.Call)
	if !ok {
		t.Fatalf("expr is %T, want *ast.Call", stmt.Expr)
	}
	ident, ok := call.Callee.(*ast.Identifier)
	if !ok || ident.Value != "foo" {
		t.Fatalf("callee = %+v, want Identifier(foo)", call.Callee)
	}
	if len(call.Args) != 2 {
		t.Errorf("got %d args, want 2", len(call.Args))
	}
}

func TestParseSpaceGrammar(t *testing.T) {
	prog := parseProgram(t, `space mySpace name { let x = 1; } end make;`)
	space, ok := prog.Statements[0].(*ast.Space)
	if !ok {
		t.Fatalf("statement is %T, want *ast.Space", prog.Statements[0])
	}
	if space.Name != "mySpace" {
		t.Errorf("Space.Name = %q, want mySpace", space.Name)
	}
	if len(space.Body.Statements) != 1 {
		t.Errorf("Space.Body has %d statements, want 1", len(space.Body.Statements))
	}
}

func TestParseSpaceNameSlotContentUnchecked(t *testing.T) {
	// The token after the space identifier only needs to be an IDENT; its
	// literal text is never checked against "name".
	prog := parseProgram(t, `space mySpace whatever { } end make;`)
	if _, ok := prog.Statements[0].(*ast.Space); !ok {
		t.Fatalf("statement is %T, want *ast.Space", prog.Statements[0])
	}
}

func TestParsePubGrammar(t *testing.T) {
	prog := parseProgram(t, `pub; { ; com "hello" { let x = 1; } —>`)
	pub, ok := prog.Statements[0].(*ast.Pub)
	if !ok {
		t.Fatalf("statement is %T, want *ast.Pub", prog.Statements[0])
	}
	if pub.Name != "hello" {
		t.Errorf("Pub.Name = %q, want hello", pub.Name)
	}
	if pub.Kind != "interpretation" {
		t.Errorf("Pub.Kind = %q, want interpretation", pub.Kind)
	}
}

func TestParseSubpubGrammar(t *testing.T) {
	prog := parseProgram(t, `subpub; { let x = 1; }`)
	sub, ok := prog.Statements[0].(*ast.Subpub)
	if !ok {
		t.Fatalf("statement is %T, want *ast.Subpub", prog.Statements[0])
	}
	if sub.Name != "subpub_block" || sub.Kind != "compilation" {
		t.Errorf("unexpected Subpub: %+v", sub)
	}
}

func TestParseErrorStopsAtFirstMismatch(t *testing.T) {
	p := New(lexer.New(`let x = ;`))
	p.ParseProgram()
	errs := p.Errors()
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want exactly 1 (first mismatch aborts parsing): %v", len(errs), errs)
	}
}

func TestParseErrorIncludesPosition(t *testing.T) {
	p := New(lexer.New("let x = ;"))
	p.ParseProgram()
	errs := p.Errors()
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}
	want := fmt.Sprintf(" at %d:", 1)
	if !containsSubstring(errs[0], want) {
		t.Errorf("error %q does not contain position suffix %q", errs[0], want)
	}
}

func containsSubstring(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
