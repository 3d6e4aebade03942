package interpreter

import (
	"fmt"
	"math"

	"pseudo/interpreter-go/pkg/runtime"
)

// isTruthy follows the surface language's conventions: zero, the empty
// string, both empty sentinels, and no-value are false.
func isTruthy(val runtime.Value) bool {
	switch v := val.(type) {
	case runtime.BoolValue:
		return v.Val
	case runtime.IntegerValue:
		return v.Val != 0
	case runtime.FloatValue:
		return v.Val != 0
	case runtime.StringValue:
		return v.Val != ""
	case *runtime.ListValue:
		return !v.IsEmpty()
	case *runtime.TreeValue:
		return !v.IsLeaf()
	case runtime.NilValue:
		return false
	default:
		return true
	}
}

func numericOperands(left, right runtime.Value) (float64, float64, bool) {
	lf, lok := asFloat(left)
	rf, rok := asFloat(right)
	return lf, rf, lok && rok
}

func asFloat(val runtime.Value) (float64, bool) {
	switch v := val.(type) {
	case runtime.IntegerValue:
		return float64(v.Val), true
	case runtime.FloatValue:
		return v.Val, true
	}
	return 0, false
}

func bothIntegers(left, right runtime.Value) (int64, int64, bool) {
	li, lok := left.(runtime.IntegerValue)
	ri, rok := right.(runtime.IntegerValue)
	return li.Val, ri.Val, lok && rok
}

// applyArithmetic keeps integer arithmetic exact for +, -, * and %;
// division always yields a float. Modulo follows the floored convention,
// so the result carries the sign of the divisor.
func applyArithmetic(op string, left, right runtime.Value) (runtime.Value, error) {
	if op == "+" {
		if ls, ok := left.(runtime.StringValue); ok {
			if rs, ok := right.(runtime.StringValue); ok {
				return runtime.StringValue{Val: ls.Val + rs.Val}, nil
			}
		}
	}
	if li, ri, ok := bothIntegers(left, right); ok {
		switch op {
		case "+":
			return runtime.IntegerValue{Val: li + ri}, nil
		case "-":
			return runtime.IntegerValue{Val: li - ri}, nil
		case "*":
			return runtime.IntegerValue{Val: li * ri}, nil
		case "%":
			if ri == 0 {
				return nil, &runtime.StructuralTypeError{Message: "modulo by zero"}
			}
			m := li % ri
			if m != 0 && (m < 0) != (ri < 0) {
				m += ri
			}
			return runtime.IntegerValue{Val: m}, nil
		case "/":
			if ri == 0 {
				return nil, &runtime.StructuralTypeError{Message: "division by zero"}
			}
			return runtime.FloatValue{Val: float64(li) / float64(ri)}, nil
		}
	}
	if lf, rf, ok := numericOperands(left, right); ok {
		switch op {
		case "+":
			return runtime.FloatValue{Val: lf + rf}, nil
		case "-":
			return runtime.FloatValue{Val: lf - rf}, nil
		case "*":
			return runtime.FloatValue{Val: lf * rf}, nil
		case "/":
			if rf == 0 {
				return nil, &runtime.StructuralTypeError{Message: "division by zero"}
			}
			return runtime.FloatValue{Val: lf / rf}, nil
		case "%":
			if rf == 0 {
				return nil, &runtime.StructuralTypeError{Message: "modulo by zero"}
			}
			m := math.Mod(lf, rf)
			if m != 0 && (m < 0) != (rf < 0) {
				m += rf
			}
			return runtime.FloatValue{Val: m}, nil
		}
	}
	return nil, &runtime.StructuralTypeError{
		Message: fmt.Sprintf("cannot apply '%s' to %s and %s", op, left.Kind(), right.Kind()),
	}
}

func applyOrdering(op string, left, right runtime.Value) (runtime.Value, error) {
	if lf, rf, ok := numericOperands(left, right); ok {
		return runtime.BoolValue{Val: compareOrdered(op, lf, rf)}, nil
	}
	if ls, ok := left.(runtime.StringValue); ok {
		if rs, ok := right.(runtime.StringValue); ok {
			switch op {
			case "<":
				return runtime.BoolValue{Val: ls.Val < rs.Val}, nil
			case "<=":
				return runtime.BoolValue{Val: ls.Val <= rs.Val}, nil
			case ">":
				return runtime.BoolValue{Val: ls.Val > rs.Val}, nil
			case ">=":
				return runtime.BoolValue{Val: ls.Val >= rs.Val}, nil
			}
		}
	}
	return nil, &runtime.StructuralTypeError{
		Message: fmt.Sprintf("cannot order %s and %s", left.Kind(), right.Kind()),
	}
}

func compareOrdered(op string, a, b float64) bool {
	switch op {
	case "<":
		return a < b
	case "<=":
		return a <= b
	case ">":
		return a > b
	case ">=":
		return a >= b
	}
	return false
}

// valuesEqual is deep structural equality. Mixed integer/float operands
// compare numerically; otherwise differing kinds are unequal.
func valuesEqual(left, right runtime.Value) bool {
	switch lv := left.(type) {
	case runtime.IntegerValue, runtime.FloatValue:
		lf, _ := asFloat(left)
		rf, ok := asFloat(right)
		return ok && lf == rf
	case runtime.StringValue:
		rv, ok := right.(runtime.StringValue)
		return ok && lv.Val == rv.Val
	case runtime.BoolValue:
		rv, ok := right.(runtime.BoolValue)
		return ok && lv.Val == rv.Val
	case runtime.NilValue:
		_, ok := right.(runtime.NilValue)
		return ok
	case *runtime.ListValue:
		rv, ok := right.(*runtime.ListValue)
		return ok && listsEqual(lv, rv)
	case *runtime.TreeValue:
		rv, ok := right.(*runtime.TreeValue)
		return ok && treesEqual(lv, rv)
	}
	return false
}

func listsEqual(a, b *runtime.ListValue) bool {
	for !a.IsEmpty() && !b.IsEmpty() {
		ah, _ := a.Head()
		bh, _ := b.Head()
		if !valuesEqual(ah, bh) {
			return false
		}
		a, _ = a.Tail()
		b, _ = b.Tail()
	}
	return a.IsEmpty() && b.IsEmpty()
}

func treesEqual(a, b *runtime.TreeValue) bool {
	if a.IsLeaf() || b.IsLeaf() {
		return a.IsLeaf() && b.IsLeaf()
	}
	av, _ := a.Root()
	bv, _ := b.Root()
	if !valuesEqual(av, bv) {
		return false
	}
	al, _ := a.Left()
	bl, _ := b.Left()
	if !treesEqual(al, bl) {
		return false
	}
	ar, _ := a.Right()
	br, _ := b.Right()
	return treesEqual(ar, br)
}
