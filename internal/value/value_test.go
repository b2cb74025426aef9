package value

import "testing"

func TestTruthiness(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want bool
	}{
		{"Integer(0)", Integer{Value: 0}, false},
		{"Integer(1)", Integer{Value: 1}, true},
		{"Integer(-1)", Integer{Value: -1}, true},
		{"Float(0.0)", Float{Value: 0}, true}, // always truthy: no Float arm in the original's is_truthy
		{"Float(1.5)", Float{Value: 1.5}, true},
		{"String(\"\")", String{Value: ""}, false},
		{"String(\"x\")", String{Value: "x"}, true},
		{"Boolean(false)", Boolean{Value: false}, false},
		{"Boolean(true)", Boolean{Value: true}, true},
		{"Array([])", Array{}, false},
		{"Array([1])", Array{Elements: []Value{Integer{Value: 1}}}, true},
		{"Object({})", NewObject(), false},
		{"Void", Void{}, false},
	}
	for _, c := range cases {
		if got := c.v.Truthy(); got != c.want {
			t.Errorf("%s.Truthy() = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestPrintableForm(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Integer{Value: 42}, "42"},
		{Boolean{Value: true}, "true"},
		{Boolean{Value: false}, "false"},
		{String{Value: "hi"}, "hi"},
		{Void{}, "void"},
		{Array{Elements: []Value{Integer{Value: 1}, Integer{Value: 2}}}, "[1, 2]"},
	}
	for _, c := range cases {
		if got := c.v.String(); got != c.want {
			t.Errorf("%v.String() = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestObjectInsertionOrderPreservedOnPrint(t *testing.T) {
	o := NewObject()
	o.Set("y", Integer{Value: 2})
	o.Set("x", Integer{Value: 1})
	if got, want := o.String(), "{y: 2, x: 1}"; got != want {
		t.Errorf("Object.String() = %q, want %q", got, want)
	}
}

func TestObjectSetOverwritesWithoutReordering(t *testing.T) {
	o := NewObject()
	o.Set("a", Integer{Value: 1})
	o.Set("b", Integer{Value: 2})
	o.Set("a", Integer{Value: 99})
	if got, want := o.String(), "{a: 99, b: 2}"; got != want {
		t.Errorf("Object.String() after overwrite = %q, want %q", got, want)
	}
}

func TestCloneArrayIsDeep(t *testing.T) {
	inner := Array{Elements: []Value{Integer{Value: 1}}}
	outer := Array{Elements: []Value{inner}}
	cloned := Clone(outer).(Array)
	cloned.Elements[0] = Integer{Value: 999}
	if _, ok := outer.Elements[0].(Array); !ok {
		t.Fatalf("original outer element mutated unexpectedly")
	}
}

func TestCloneObjectIsDeep(t *testing.T) {
	o := NewObject()
	o.Set("k", Integer{Value: 1})
	cloned := Clone(o).(Object)
	cloned.Set("k", Integer{Value: 2})
	v, _ := o.Get("k")
	if v.(Integer).Value != 1 {
		t.Errorf("original object mutated by clone: got %v", v)
	}
}

func TestCloneScalarReturnsSameValue(t *testing.T) {
	i := Integer{Value: 5}
	if got := Clone(i); got != Value(i) {
		t.Errorf("Clone(scalar) = %v, want %v", got, i)
	}
}
