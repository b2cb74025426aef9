package interp

import (
	"fmt"
	"strings"

	"github.com/hyperaprog/hio/internal/ast"
	"github.com/hyperaprog/hio/internal/value"
)

// evalCall dispatches a call expression. Only two callee shapes are
// recognized: a bare identifier naming a builtin, and the
// writeutil.text(...) member call. Anything else, including a call to a
// user-defined function registered by FunctionDef, is an error, matching
// the source interpreter's evaluate_call exactly (user functions are never
// actually invocable).
func (i *Interpreter) evalCall(call *ast.Call) (value.Value, error) {
	switch callee := call.Callee.(type) {
	case *ast.Identifier:
		args, err := i.evalArgs(call.Args)
		if err != nil {
			return nil, err
		}
		return i.callBuiltin(callee.Value, args)

	case *ast.Member:
		obj, ok := callee.Object.(*ast.Identifier)
		if ok && obj.Value == "writeutil" && callee.Name == "text" && len(call.Args) == 1 {
			v, err := i.evalExpr(call.Args[0])
			if err != nil {
				return nil, err
			}
			fmt.Fprint(i.out, v.String())
			return value.Void{}, nil
		}
		return nil, fmt.Errorf("Unknown method call")

	default:
		return nil, fmt.Errorf("Invalid function call")
	}
}

func (i *Interpreter) evalArgs(exprs []ast.Expression) ([]value.Value, error) {
	args := make([]value.Value, len(exprs))
	for idx, e := range exprs {
		v, err := i.evalExpr(e)
		if err != nil {
			return nil, err
		}
		args[idx] = v
	}
	return args, nil
}

func (i *Interpreter) callBuiltin(name string, args []value.Value) (value.Value, error) {
	switch name {
	case "print":
		parts := make([]string, len(args))
		for idx, a := range args {
			parts[idx] = a.String()
		}
		fmt.Fprintln(i.out, strings.Join(parts, " "))
		return value.Void{}, nil

	case "len":
		if len(args) == 0 {
			return nil, fmt.Errorf("len() requires 1 argument")
		}
		switch a := args[0].(type) {
		case value.String:
			return value.Integer{Value: int64(len(a.Value))}, nil
		case value.Array:
			return value.Integer{Value: int64(len(a.Elements))}, nil
		default:
			return nil, fmt.Errorf("len() requires string or array")
		}

	case "type":
		if len(args) == 0 {
			return nil, fmt.Errorf("type() requires 1 argument")
		}
		return value.String{Value: args[0].Type()}, nil

	default:
		return nil, fmt.Errorf("Unknown function: %s", name)
	}
}
