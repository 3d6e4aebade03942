package interpreter

import (
	"pseudo/interpreter-go/pkg/runtime"
)

// builtinTable constructs the fixed builtin map. `leaf` is a plain value
// rather than a function; everything else is a native function with an
// exact arity.
func builtinTable() map[string]runtime.Value {
	table := map[string]runtime.Value{
		"leaf": runtime.LeafTree,
	}
	native := func(name string, arity int, impl runtime.NativeFunc) {
		table[name] = runtime.NativeFunctionValue{Name: name, Arity: arity, Impl: impl}
	}

	native("Nil", 0, func(args []runtime.Value) (runtime.Value, error) {
		return runtime.EmptyList, nil
	})
	native("cons", 2, func(args []runtime.Value) (runtime.Value, error) {
		list, ok := args[1].(*runtime.ListValue)
		if !ok {
			return nil, &runtime.StructuralTypeError{Message: "cons expects a list"}
		}
		return runtime.Cons(args[0], list), nil
	})
	native("isEmpty", 1, func(args []runtime.Value) (runtime.Value, error) {
		list, ok := args[0].(*runtime.ListValue)
		return runtime.BoolValue{Val: ok && list.IsEmpty()}, nil
	})
	native("value", 1, func(args []runtime.Value) (runtime.Value, error) {
		list, ok := args[0].(*runtime.ListValue)
		if !ok {
			return nil, &runtime.StructuralTypeError{Message: "value expects a list"}
		}
		return list.Head()
	})
	native("tail", 1, func(args []runtime.Value) (runtime.Value, error) {
		list, ok := args[0].(*runtime.ListValue)
		if !ok {
			return nil, &runtime.StructuralTypeError{Message: "tail expects a list"}
		}
		rest, err := list.Tail()
		if err != nil {
			return nil, err
		}
		return rest, nil
	})
	native("merge", 2, func(args []runtime.Value) (runtime.Value, error) {
		a, ok := args[0].(*runtime.ListValue)
		if !ok {
			return nil, &runtime.StructuralTypeError{Message: "merge expects lists"}
		}
		b, ok := args[1].(*runtime.ListValue)
		if !ok {
			return nil, &runtime.StructuralTypeError{Message: "merge expects lists"}
		}
		return runtime.Merge(a, b), nil
	})
	native("node", 3, func(args []runtime.Value) (runtime.Value, error) {
		left, err := childTree(args[0])
		if err != nil {
			return nil, err
		}
		right, err := childTree(args[2])
		if err != nil {
			return nil, err
		}
		return runtime.Node(left, args[1], right), nil
	})
	native("isLeaf", 1, func(args []runtime.Value) (runtime.Value, error) {
		tree, ok := args[0].(*runtime.TreeValue)
		return runtime.BoolValue{Val: ok && tree.IsLeaf()}, nil
	})
	native("root", 1, func(args []runtime.Value) (runtime.Value, error) {
		tree, ok := args[0].(*runtime.TreeValue)
		if !ok {
			return nil, &runtime.StructuralTypeError{Message: "root expects a tree"}
		}
		return tree.Root()
	})
	native("left", 1, func(args []runtime.Value) (runtime.Value, error) {
		tree, ok := args[0].(*runtime.TreeValue)
		if !ok {
			return nil, &runtime.StructuralTypeError{Message: "left expects a tree"}
		}
		child, err := tree.Left()
		if err != nil {
			return nil, err
		}
		return child, nil
	})
	native("right", 1, func(args []runtime.Value) (runtime.Value, error) {
		tree, ok := args[0].(*runtime.TreeValue)
		if !ok {
			return nil, &runtime.StructuralTypeError{Message: "right expects a tree"}
		}
		child, err := tree.Right()
		if err != nil {
			return nil, err
		}
		return child, nil
	})
	native("size", 1, func(args []runtime.Value) (runtime.Value, error) {
		tree, ok := args[0].(*runtime.TreeValue)
		if !ok {
			return nil, &runtime.StructuralTypeError{Message: "size expects a tree"}
		}
		return runtime.IntegerValue{Val: int64(tree.Size())}, nil
	})

	return table
}

// childTree accepts a tree (a Leaf included) or no-value as a child
// position of node().
func childTree(val runtime.Value) (*runtime.TreeValue, error) {
	switch v := val.(type) {
	case *runtime.TreeValue:
		return v, nil
	case runtime.NilValue:
		return runtime.LeafTree, nil
	}
	return nil, &runtime.StructuralTypeError{Message: "node expects tree children"}
}
