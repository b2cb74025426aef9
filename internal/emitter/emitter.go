package emitter

import (
	"github.com/hyperaprog/hio/internal/ast"
	"github.com/hyperaprog/hio/internal/token"
)

// Emitter compiles a Program into a top-level Chunk plus one Chunk per
// function defined with FunctionDef. Nothing here executes the result,
// execution of compiled chunks is out of scope (see Non-goals).
type Emitter struct {
	chunk     *Chunk
	functions map[string]*Chunk
}

// New creates an Emitter with an empty top-level chunk.
func New() *Emitter {
	return &Emitter{
		chunk:     &Chunk{},
		functions: make(map[string]*Chunk),
	}
}

// Compile emits program into the Emitter's chunk and returns it.
func (e *Emitter) Compile(program *ast.Program) *Chunk {
	for _, stmt := range program.Statements {
		e.compileStmt(stmt)
	}
	return e.chunk
}

// Functions returns the chunk compiled for each FunctionDef seen so far.
func (e *Emitter) Functions() map[string]*Chunk {
	return e.functions
}

func (e *Emitter) compileStmt(stmt ast.Statement) {
	switch n := stmt.(type) {
	case *ast.ExprStmt:
		e.compileExpr(n.Expr)
		e.chunk.Emit(OpPop, nil)

	case *ast.Let:
		e.compileExpr(n.Value)
		e.chunk.Emit(OpSetLocal, n.Name)

	case *ast.Assign:
		e.compileExpr(n.Value)
		// Always SetGlobal, even though the evaluator writes into the
		// innermost local frame when one exists. The two subsystems
		// diverge here exactly as the source compiler/interpreter pair does.
		e.chunk.Emit(OpSetGlobal, n.Target)

	case *ast.If:
		e.compileExpr(n.Cond)
		jumpIfFalse := e.chunk.EmitJump(OpJumpIfFalse)
		for _, s := range n.Then.Statements {
			e.compileStmt(s)
		}
		jumpToEnd := e.chunk.EmitJump(OpJump)
		e.chunk.PatchJump(jumpIfFalse)
		if n.ElseBlock != nil {
			for _, s := range n.ElseBlock.Statements {
				e.compileStmt(s)
			}
		}
		e.chunk.PatchJump(jumpToEnd)

	case *ast.While:
		loopStart := e.chunk.Len()
		e.compileExpr(n.Cond)
		jumpIfFalse := e.chunk.EmitJump(OpJumpIfFalse)
		for _, s := range n.Body.Statements {
			e.compileStmt(s)
		}
		idx := e.chunk.EmitJump(OpJump)
		e.chunk.PatchJumpTo(idx, loopStart)
		e.chunk.PatchJump(jumpIfFalse)

	case *ast.For:
		if n.Init != nil {
			e.compileStmt(n.Init)
		}
		loopStart := e.chunk.Len()
		if n.Cond != nil {
			e.compileExpr(n.Cond)
		} else {
			e.chunk.Emit(OpPushBool, true)
		}
		jumpIfFalse := e.chunk.EmitJump(OpJumpIfFalse)
		for _, s := range n.Body.Statements {
			e.compileStmt(s)
		}
		if n.Increment != nil {
			e.compileExpr(n.Increment)
			e.chunk.Emit(OpPop, nil)
		}
		idx := e.chunk.EmitJump(OpJump)
		e.chunk.PatchJumpTo(idx, loopStart)
		e.chunk.PatchJump(jumpIfFalse)

	case *ast.FunctionDef:
		saved := e.chunk
		e.chunk = &Chunk{}
		for _, s := range n.Body.Statements {
			e.compileStmt(s)
		}
		e.chunk.Emit(OpReturn, nil)
		e.functions[n.Name] = e.chunk
		e.chunk = saved

	case *ast.Return:
		if n.Value != nil {
			e.compileExpr(n.Value)
		}
		e.chunk.Emit(OpReturn, nil)

	case *ast.Break, *ast.Continue:
		// Handled in the runtime, not compiled; the original compiler
		// leaves these as a no-op too.

	case *ast.Space:
		for _, s := range n.Body.Statements {
			e.compileStmt(s)
		}

	case *ast.Pub:
		for _, s := range n.Body.Statements {
			e.compileStmt(s)
		}

	case *ast.Subpub:
		for _, s := range n.Body.Statements {
			e.compileStmt(s)
		}

	case *ast.Block:
		for _, s := range n.Statements {
			e.compileStmt(s)
		}
	}
}

func (e *Emitter) compileExpr(expr ast.Expression) {
	switch n := expr.(type) {
	case *ast.IntegerLiteral:
		e.chunk.Emit(OpPushInt, n.Value)
	case *ast.FloatLiteral:
		e.chunk.Emit(OpPushFloat, n.Value)
	case *ast.StringLiteral:
		e.chunk.Emit(OpPushString, n.Value)
	case *ast.BoolLit:
		e.chunk.Emit(OpPushBool, n.Value)

	case *ast.Identifier:
		// Always GetGlobal. Let compiles to SetLocal, so a local written by
		// Let is never readable through this opcode. Reproduced verbatim
		// from the original compiler; see DESIGN.md.
		e.chunk.Emit(OpGetGlobal, n.Value)

	case *ast.Binary:
		e.compileExpr(n.Left)
		e.compileExpr(n.Right)
		e.chunk.Emit(binaryOp(n.Op), nil)

	case *ast.Unary:
		e.compileExpr(n.Operand)
		if n.Op == token.MINUS {
			e.chunk.Emit(OpNegate, nil)
		} else {
			e.chunk.Emit(OpNot, nil)
		}

	case *ast.Call:
		for _, a := range n.Args {
			e.compileExpr(a)
		}
		// Only a bare identifier callee compiles to a Call instruction; any
		// other callee shape (e.g. a member call) silently emits nothing
		// beyond its evaluated arguments, matching the source compiler's
		// unconditional `if let Expr::Identifier` with no else arm.
		if ident, ok := n.Callee.(*ast.Identifier); ok {
			e.chunk.Emit(OpCall, callOperand{Name: ident.Value, Argc: len(n.Args)})
		}

	case *ast.ArrayLit:
		for _, el := range n.Elements {
			e.compileExpr(el)
		}
		e.chunk.Emit(OpArrayCreate, len(n.Elements))

	case *ast.ObjectLit:
		for _, f := range n.Fields {
			e.compileExpr(f.Value)
		}
		e.chunk.Emit(OpObjectCreate, len(n.Fields))

	case *ast.Index:
		e.compileExpr(n.Collection)
		e.compileExpr(n.IndexExpr)
		e.chunk.Emit(OpIndex, nil)

	case *ast.Member:
		e.compileExpr(n.Object)
		e.chunk.Emit(OpMember, n.Name)
	}
}

// callOperand is the Call instruction's operand: the callee name and the
// number of arguments already pushed.
type callOperand struct {
	Name string
	Argc int
}

func binaryOp(op token.Type) OpCode {
	switch op {
	case token.PLUS:
		return OpAdd
	case token.MINUS:
		return OpSub
	case token.STAR:
		return OpMul
	case token.SLASH:
		return OpDiv
	case token.PERCENT:
		return OpMod
	case token.EQ:
		return OpEqual
	case token.NOT_EQ:
		return OpNotEqual
	case token.LT:
		return OpLess
	case token.LT_EQ:
		return OpLessEqual
	case token.GT:
		return OpGreater
	case token.GT_EQ:
		return OpGreaterEqual
	case token.AND:
		return OpAnd
	case token.OR:
		return OpOr
	}
	return OpAdd
}
