// Package interp implements hio's tree-walking evaluator.
package interp

import (
	"fmt"
	"io"
	"os"

	"github.com/hyperaprog/hio/internal/ast"
	"github.com/hyperaprog/hio/internal/value"
)

// Interpreter walks a parsed Program and evaluates it directly, without an
// intermediate bytecode form. One Interpreter executes one Program.
type Interpreter struct {
	globals map[string]value.Value
	locals  []map[string]value.Value

	returnValue    value.Value
	returnSignal   bool
	breakSignal    bool
	continueSignal bool

	out io.Writer
}

// New creates an Interpreter with its builtin function table bound in
// globals and output directed at stdout.
func New() *Interpreter {
	i := &Interpreter{
		globals: make(map[string]value.Value),
		out:     os.Stdout,
	}
	// These entries are placeholders, never consulted by the call dispatcher
	// (evalCall matches builtin names directly), kept only so that an
	// Identifier expression referencing "print"/"len"/"type" resolves to
	// something instead of "Undefined variable".
	i.globals["print"] = value.String{Value: "builtin:print"}
	i.globals["len"] = value.String{Value: "builtin:len"}
	i.globals["type"] = value.String{Value: "builtin:type"}
	return i
}

// SetOutput redirects print/writeutil.text output, used by the REPL and by
// tests that capture program output.
func (i *Interpreter) SetOutput(w io.Writer) {
	i.out = w
}

// Run interprets program and returns the value of the last top-level
// statement, or the value passed to the first top-level return.
func (i *Interpreter) Run(program *ast.Program) (value.Value, error) {
	var last value.Value = value.Void{}
	for _, stmt := range program.Statements {
		v, err := i.execStatement(stmt)
		if err != nil {
			return nil, err
		}
		last = v
		if i.returnSignal {
			i.returnSignal = false
			return i.returnValue, nil
		}
	}
	return last, nil
}

func (i *Interpreter) pushScope() {
	i.locals = append(i.locals, make(map[string]value.Value))
}

func (i *Interpreter) popScope() {
	i.locals = i.locals[:len(i.locals)-1]
}

// getVariable searches local scope frames innermost-first, then falls back
// to globals.
func (i *Interpreter) getVariable(name string) (value.Value, bool) {
	for idx := len(i.locals) - 1; idx >= 0; idx-- {
		if v, ok := i.locals[idx][name]; ok {
			return v, true
		}
	}
	v, ok := i.globals[name]
	return v, ok
}

// setVariable writes into the innermost local frame if one exists, falling
// back to globals otherwise, matching the source interpreter's
// set_variable, which always targets self.locals.last().
func (i *Interpreter) setVariable(name string, v value.Value) {
	if len(i.locals) > 0 {
		i.locals[len(i.locals)-1][name] = v
		return
	}
	i.globals[name] = v
}

func (i *Interpreter) execBlock(stmts []ast.Statement) (value.Value, error) {
	var result value.Value = value.Void{}
	for _, s := range stmts {
		v, err := i.execStatement(s)
		if err != nil {
			return nil, err
		}
		result = v
		if i.returnSignal || i.breakSignal || i.continueSignal {
			break
		}
	}
	return result, nil
}

func (i *Interpreter) execStatement(stmt ast.Statement) (value.Value, error) {
	switch n := stmt.(type) {
	case *ast.ExprStmt:
		return i.evalExpr(n.Expr)

	case *ast.Let:
		v, err := i.evalExpr(n.Value)
		if err != nil {
			return nil, err
		}
		i.setVariable(n.Name, value.Clone(v))
		return value.Void{}, nil

	case *ast.Assign:
		v, err := i.evalExpr(n.Value)
		if err != nil {
			return nil, err
		}
		i.setVariable(n.Target, value.Clone(v))
		return v, nil

	case *ast.If:
		cond, err := i.evalExpr(n.Cond)
		if err != nil {
			return nil, err
		}
		if cond.Truthy() {
			return i.execBlock(n.Then.Statements)
		}
		if n.ElseBlock != nil {
			return i.execBlock(n.ElseBlock.Statements)
		}
		return value.Void{}, nil

	case *ast.While:
		var result value.Value = value.Void{}
		for {
			cond, err := i.evalExpr(n.Cond)
			if err != nil {
				return nil, err
			}
			if !cond.Truthy() {
				break
			}
			result, err = i.execBlock(n.Body.Statements)
			if err != nil {
				return nil, err
			}
			if i.breakSignal {
				i.breakSignal = false
				break
			}
			if i.continueSignal {
				i.continueSignal = false
				continue
			}
			if i.returnSignal {
				break
			}
		}
		return result, nil

	case *ast.For:
		if n.Init != nil {
			if _, err := i.execStatement(n.Init); err != nil {
				return nil, err
			}
		}
		var result value.Value = value.Void{}
		for {
			if n.Cond != nil {
				cond, err := i.evalExpr(n.Cond)
				if err != nil {
					return nil, err
				}
				if !cond.Truthy() {
					break
				}
			}
			var err error
			result, err = i.execBlock(n.Body.Statements)
			if err != nil {
				return nil, err
			}
			if i.breakSignal {
				i.breakSignal = false
				break
			}
			if i.continueSignal {
				i.continueSignal = false
			} else if i.returnSignal {
				break
			}
			if n.Increment != nil {
				if _, err := i.evalExpr(n.Increment); err != nil {
					return nil, err
				}
			}
		}
		return result, nil

	case *ast.FunctionDef:
		// A FunctionDef only binds a sentinel descriptor string; there is no
		// invocation path for user-defined functions (mirrors the source
		// interpreter exactly, see DESIGN.md).
		sentinel := fmt.Sprintf("function:%s:%s", n.Name, joinParams(n.Params))
		i.setVariable(n.Name, value.String{Value: sentinel})
		return value.Void{}, nil

	case *ast.Return:
		var v value.Value = value.Void{}
		if n.Value != nil {
			var err error
			v, err = i.evalExpr(n.Value)
			if err != nil {
				return nil, err
			}
		}
		i.returnValue = v
		i.returnSignal = true
		return v, nil

	case *ast.Break:
		i.breakSignal = true
		return value.Void{}, nil

	case *ast.Continue:
		i.continueSignal = true
		return value.Void{}, nil

	case *ast.Block:
		return i.execBlock(n.Statements)

	case *ast.Space:
		i.pushScope()
		v, err := i.execUnguardedBlock(n.Body.Statements)
		i.popScope()
		return v, err

	case *ast.Pub:
		return i.execUnguardedBlock(n.Body.Statements)

	case *ast.Subpub:
		return i.execUnguardedBlock(n.Body.Statements)

	default:
		return nil, fmt.Errorf("unsupported statement type %T", stmt)
	}
}

// execUnguardedBlock runs statements without checking control-flow signals
// between them, matching Space/Pub/Subpub in the source interpreter (their
// loops never test break/continue/return before continuing).
func (i *Interpreter) execUnguardedBlock(stmts []ast.Statement) (value.Value, error) {
	var result value.Value = value.Void{}
	for _, s := range stmts {
		v, err := i.execStatement(s)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

func joinParams(params []string) string {
	out := ""
	for idx, p := range params {
		if idx > 0 {
			out += ","
		}
		out += p
	}
	return out
}
