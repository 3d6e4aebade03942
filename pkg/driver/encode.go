package driver

import (
	"encoding/json"
	"fmt"

	"pseudo/interpreter-go/pkg/runtime"
)

// EncodeValue converts a runtime value into its JSON interchange form:
// the empty list and no-value both encode as null, lists as arrays in
// natural order with null elements filtered out, trees as `_type`
// objects, scalars as themselves.
func EncodeValue(val runtime.Value) any {
	switch v := val.(type) {
	case nil:
		return nil
	case runtime.NilValue:
		return nil
	case runtime.BoolValue:
		return v.Val
	case runtime.IntegerValue:
		return v.Val
	case runtime.FloatValue:
		return v.Val
	case runtime.StringValue:
		return v.Val
	case *runtime.ListValue:
		if v.IsEmpty() {
			return nil
		}
		out := make([]any, 0, v.Len())
		for _, el := range v.Elements() {
			encoded := EncodeValue(el)
			if encoded == nil {
				continue
			}
			out = append(out, encoded)
		}
		return out
	case *runtime.TreeValue:
		if v.IsLeaf() {
			return map[string]any{"_type": "leaf"}
		}
		left, _ := v.Left()
		root, _ := v.Root()
		right, _ := v.Right()
		return map[string]any{
			"_type": "node",
			"left":  EncodeValue(left),
			"value": EncodeValue(root),
			"right": EncodeValue(right),
		}
	default:
		return fmt.Sprintf("<%s>", val.Kind())
	}
}

// DecodeValue converts a decoded JSON value (null, bool, json.Number,
// string, array, `_type` object) into a runtime value. null decodes to
// the empty list.
func DecodeValue(data any) (runtime.Value, error) {
	switch v := data.(type) {
	case nil:
		return runtime.EmptyList, nil
	case bool:
		return runtime.BoolValue{Val: v}, nil
	case string:
		return runtime.StringValue{Val: v}, nil
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return runtime.IntegerValue{Val: i}, nil
		}
		f, err := v.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", v.String())
		}
		return runtime.FloatValue{Val: f}, nil
	case float64:
		if v == float64(int64(v)) {
			return runtime.IntegerValue{Val: int64(v)}, nil
		}
		return runtime.FloatValue{Val: v}, nil
	case int:
		return runtime.IntegerValue{Val: int64(v)}, nil
	case int64:
		return runtime.IntegerValue{Val: v}, nil
	case []any:
		elements := make([]runtime.Value, 0, len(v))
		for _, item := range v {
			decoded, err := DecodeValue(item)
			if err != nil {
				return nil, err
			}
			elements = append(elements, decoded)
		}
		return runtime.ListOf(elements...), nil
	case map[string]any:
		return decodeTree(v)
	case map[any]any:
		normalized := make(map[string]any, len(v))
		for key, item := range v {
			normalized[fmt.Sprintf("%v", key)] = item
		}
		return decodeTree(normalized)
	default:
		return nil, fmt.Errorf("cannot decode value of type %T", data)
	}
}

func decodeTree(obj map[string]any) (runtime.Value, error) {
	switch obj["_type"] {
	case "leaf":
		return runtime.LeafTree, nil
	case "node":
		left, err := decodeChild(obj["left"])
		if err != nil {
			return nil, err
		}
		value, err := DecodeValue(obj["value"])
		if err != nil {
			return nil, err
		}
		right, err := decodeChild(obj["right"])
		if err != nil {
			return nil, err
		}
		return runtime.Node(left, value, right), nil
	}
	return nil, fmt.Errorf("object is not a tree")
}

// decodeChild treats a null child slot as a leaf.
func decodeChild(data any) (*runtime.TreeValue, error) {
	if data == nil {
		return runtime.LeafTree, nil
	}
	decoded, err := DecodeValue(data)
	if err != nil {
		return nil, err
	}
	tree, ok := decoded.(*runtime.TreeValue)
	if !ok {
		return nil, fmt.Errorf("tree child must be a tree or null")
	}
	return tree, nil
}
