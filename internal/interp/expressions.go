package interp

import (
	"fmt"

	"github.com/hyperaprog/hio/internal/ast"
	"github.com/hyperaprog/hio/internal/token"
	"github.com/hyperaprog/hio/internal/value"
)

func (i *Interpreter) evalExpr(expr ast.Expression) (value.Value, error) {
	switch n := expr.(type) {
	case *ast.IntegerLiteral:
		return value.Integer{Value: n.Value}, nil
	case *ast.FloatLiteral:
		return value.Float{Value: n.Value}, nil
	case *ast.StringLiteral:
		return value.String{Value: n.Value}, nil
	case *ast.BoolLit:
		return value.Boolean{Value: n.Value}, nil

	case *ast.ArrayLit:
		elems := make([]value.Value, len(n.Elements))
		for idx, e := range n.Elements {
			v, err := i.evalExpr(e)
			if err != nil {
				return nil, err
			}
			elems[idx] = v
		}
		return value.Array{Elements: elems}, nil

	case *ast.ObjectLit:
		obj := value.NewObject()
		for _, f := range n.Fields {
			v, err := i.evalExpr(f.Value)
			if err != nil {
				return nil, err
			}
			obj.Set(f.Key, v)
		}
		return obj, nil

	case *ast.Identifier:
		v, ok := i.getVariable(n.Value)
		if !ok {
			return nil, fmt.Errorf("Undefined variable: %s", n.Value)
		}
		return v, nil

	case *ast.Binary:
		left, err := i.evalExpr(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := i.evalExpr(n.Right)
		if err != nil {
			return nil, err
		}
		return applyBinaryOp(left, n.Op, right)

	case *ast.Unary:
		v, err := i.evalExpr(n.Operand)
		if err != nil {
			return nil, err
		}
		return applyUnaryOp(n.Op, v)

	case *ast.Call:
		return i.evalCall(n)

	case *ast.Index:
		obj, err := i.evalExpr(n.Collection)
		if err != nil {
			return nil, err
		}
		idx, err := i.evalExpr(n.IndexExpr)
		if err != nil {
			return nil, err
		}
		return evalIndex(obj, idx)

	case *ast.Member:
		obj, err := i.evalExpr(n.Object)
		if err != nil {
			return nil, err
		}
		o, ok := obj.(value.Object)
		if !ok {
			return nil, fmt.Errorf("Cannot access member on non-object")
		}
		v, ok := o.Get(n.Name)
		if !ok {
			return nil, fmt.Errorf("Member not found: %s", n.Name)
		}
		return v, nil

	default:
		return nil, fmt.Errorf("unsupported expression type %T", expr)
	}
}

// applyBinaryOp evaluates both operands unconditionally for && and ||,
// there is no short-circuit, matching apply_binary_op's (l, And, r) arm,
// which always has both sides already evaluated by the time it runs.
func applyBinaryOp(left value.Value, op token.Type, right value.Value) (value.Value, error) {
	switch op {
	case token.AND:
		return value.Boolean{Value: left.Truthy() && right.Truthy()}, nil
	case token.OR:
		return value.Boolean{Value: left.Truthy() || right.Truthy()}, nil
	}

	li, lok := left.(value.Integer)
	ri, rok := right.(value.Integer)
	if lok && rok {
		switch op {
		case token.PLUS:
			return value.Integer{Value: li.Value + ri.Value}, nil
		case token.MINUS:
			return value.Integer{Value: li.Value - ri.Value}, nil
		case token.STAR:
			return value.Integer{Value: li.Value * ri.Value}, nil
		case token.SLASH:
			if ri.Value == 0 {
				return nil, fmt.Errorf("Division by zero")
			}
			return value.Integer{Value: li.Value / ri.Value}, nil
		case token.PERCENT:
			if ri.Value == 0 {
				return nil, fmt.Errorf("Modulo by zero")
			}
			return value.Integer{Value: li.Value % ri.Value}, nil
		case token.EQ:
			return value.Boolean{Value: li.Value == ri.Value}, nil
		case token.NOT_EQ:
			return value.Boolean{Value: li.Value != ri.Value}, nil
		case token.LT:
			return value.Boolean{Value: li.Value < ri.Value}, nil
		case token.LT_EQ:
			return value.Boolean{Value: li.Value <= ri.Value}, nil
		case token.GT:
			return value.Boolean{Value: li.Value > ri.Value}, nil
		case token.GT_EQ:
			return value.Boolean{Value: li.Value >= ri.Value}, nil
		}
	}

	ls, lsok := left.(value.String)
	rs, rsok := right.(value.String)
	if lsok && rsok && op == token.PLUS {
		return value.String{Value: ls.Value + rs.Value}, nil
	}

	return nil, fmt.Errorf("Invalid binary operation: %s %s %s", left.Type(), op, right.Type())
}

func applyUnaryOp(op token.Type, v value.Value) (value.Value, error) {
	switch op {
	case token.MINUS:
		switch n := v.(type) {
		case value.Integer:
			return value.Integer{Value: -n.Value}, nil
		case value.Float:
			return value.Float{Value: -n.Value}, nil
		}
		return nil, fmt.Errorf("Invalid unary operation: - %s", v.Type())
	case token.NOT:
		return value.Boolean{Value: !v.Truthy()}, nil
	}
	return nil, fmt.Errorf("Invalid unary operation: %s %s", op, v.Type())
}

// evalIndex indexes an array by integer or a string by rune position. The
// original checks string bounds against byte length but then indexes by
// rune; here the bound is checked against the rune count directly, which
// avoids that inconsistency while keeping the same externally observable
// behavior for ASCII input.
func evalIndex(collection, idxVal value.Value) (value.Value, error) {
	idx, ok := idxVal.(value.Integer)
	if !ok {
		return nil, fmt.Errorf("Invalid index operation")
	}
	switch c := collection.(type) {
	case value.Array:
		if idx.Value < 0 || int(idx.Value) >= len(c.Elements) {
			return nil, fmt.Errorf("Index out of bounds")
		}
		return c.Elements[idx.Value], nil
	case value.String:
		runes := []rune(c.Value)
		if idx.Value < 0 || int(idx.Value) >= len(runes) {
			return nil, fmt.Errorf("Index out of bounds")
		}
		return value.String{Value: string(runes[idx.Value])}, nil
	default:
		return nil, fmt.Errorf("Invalid index operation")
	}
}
