package interpreter

import (
	"fmt"
	"strconv"
	"strings"

	"pseudo/interpreter-go/pkg/runtime"
)

// FormatValue renders a value in surface syntax: lists in bracket form,
// trees in node(...) form, sentinels by their literal names.
func FormatValue(val runtime.Value) string {
	switch v := val.(type) {
	case nil:
		return "nil"
	case runtime.NilValue:
		return "nil"
	case runtime.BoolValue:
		return strconv.FormatBool(v.Val)
	case runtime.IntegerValue:
		return strconv.FormatInt(v.Val, 10)
	case runtime.FloatValue:
		return strconv.FormatFloat(v.Val, 'g', -1, 64)
	case runtime.StringValue:
		return "'" + v.Val + "'"
	case *runtime.ListValue:
		if v.IsEmpty() {
			return "Nil"
		}
		parts := make([]string, 0, v.Len())
		for _, el := range v.Elements() {
			parts = append(parts, FormatValue(el))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *runtime.TreeValue:
		if v.IsLeaf() {
			return "leaf"
		}
		left, _ := v.Left()
		root, _ := v.Root()
		right, _ := v.Right()
		return fmt.Sprintf("node(%s, %s, %s)", FormatValue(left), FormatValue(root), FormatValue(right))
	case runtime.NativeFunctionValue:
		return fmt.Sprintf("<builtin %s>", v.Name)
	default:
		return fmt.Sprintf("<%s>", val.Kind())
	}
}
