package driver

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"pseudo/interpreter-go/pkg/runtime"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestParseTextColonForm(t *testing.T) {
	path := writeTemp(t, "input.in", `# comment line

Sum: 1, 2
`)
	cases, err := ParseInputFile(path)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(cases) != 1 {
		t.Fatalf("expected 1 case, got %d", len(cases))
	}
	c := cases[0]
	if c.Kind != CaseCall || c.Algo != "Sum" || len(c.Args) != 2 {
		t.Fatalf("unexpected case %#v", c)
	}
	if n, ok := c.Args[0].(json.Number); !ok || n.String() != "1" {
		t.Fatalf("expected numeric arg, got %#v", c.Args[0])
	}
}

func TestParseTextCallForm(t *testing.T) {
	path := writeTemp(t, "input.in", "Insert([3, 1], 2)\n")
	cases, err := ParseInputFile(path)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(cases) != 1 || cases[0].Algo != "Insert" || len(cases[0].Args) != 2 {
		t.Fatalf("unexpected cases %#v", cases)
	}
	if _, ok := cases[0].Args[0].([]any); !ok {
		t.Fatalf("expected array arg, got %#v", cases[0].Args[0])
	}
}

func TestParseTextMultiLineContinuation(t *testing.T) {
	path := writeTemp(t, "input.in", `Build: node(
node(leaf, 1, leaf),
2,
leaf)
`)
	cases, err := ParseInputFile(path)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(cases) != 1 || cases[0].Algo != "Build" {
		t.Fatalf("unexpected cases %#v", cases)
	}
	if len(cases[0].Args) != 1 {
		t.Fatalf("a parenthesized argument must not split on inner commas: %#v", cases[0].Args)
	}
}

func TestParseTextVarAssign(t *testing.T) {
	path := writeTemp(t, "input.in", "T = node(leaf, 5, leaf)\nSize: T\n")
	cases, err := ParseInputFile(path)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(cases) != 2 {
		t.Fatalf("expected 2 cases, got %d", len(cases))
	}
	if cases[0].Kind != CaseVarAssign || cases[0].Var != "T" || cases[0].Value != "node(leaf, 5, leaf)" {
		t.Fatalf("unexpected assign case %#v", cases[0])
	}
	if cases[1].Kind != CaseCall || cases[1].Args[0] != "T" {
		t.Fatalf("unexpected call case %#v", cases[1])
	}
}

func TestParseWholeFileJSON(t *testing.T) {
	path := writeTemp(t, "input.in", `{"cases": [{"algo": "Sum", "args": [1, 2], "store": "s"}]}`)
	cases, err := ParseInputFile(path)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(cases) != 1 || cases[0].Algo != "Sum" || cases[0].Store != "s" {
		t.Fatalf("unexpected cases %#v", cases)
	}
}

func TestParseYAMLCases(t *testing.T) {
	path := writeTemp(t, "cases.yml", `cases:
  - algo: Sum
    args: [1, 2]
  - type: var_assign
    var: T
    value: node(leaf, 5, leaf)
`)
	cases, err := ParseInputFile(path)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(cases) != 2 || cases[0].Algo != "Sum" || cases[1].Kind != CaseVarAssign {
		t.Fatalf("unexpected cases %#v", cases)
	}
}

func TestParseFileInclude(t *testing.T) {
	dir := t.TempDir()
	include := filepath.Join(dir, "case.json")
	if err := os.WriteFile(include, []byte(`{"algo": "Sum", "args": [4, 5]}`), 0o644); err != nil {
		t.Fatalf("write include: %v", err)
	}
	input := filepath.Join(dir, "input.in")
	if err := os.WriteFile(input, []byte("@case.json\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	cases, err := ParseInputFile(input)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(cases) != 1 || cases[0].Algo != "Sum" {
		t.Fatalf("unexpected cases %#v", cases)
	}
}

func TestEncodeListFiltersNoValue(t *testing.T) {
	list := runtime.ListOf(
		runtime.IntegerValue{Val: 1},
		runtime.NilValue{},
		runtime.IntegerValue{Val: 2},
	)
	encoded := EncodeValue(list)
	arr, ok := encoded.([]any)
	if !ok || len(arr) != 2 {
		t.Fatalf("null elements should be filtered, got %#v", encoded)
	}
}

func TestEncodeSentinels(t *testing.T) {
	if EncodeValue(runtime.EmptyList) != nil {
		t.Fatalf("empty list should encode as null")
	}
	leaf, ok := EncodeValue(runtime.LeafTree).(map[string]any)
	if !ok || leaf["_type"] != "leaf" {
		t.Fatalf("leaf should encode as _type object")
	}
}

func TestEncodeTreeShape(t *testing.T) {
	tree := runtime.Node(
		runtime.Node(runtime.LeafTree, runtime.IntegerValue{Val: 1}, runtime.LeafTree),
		runtime.IntegerValue{Val: 2},
		runtime.LeafTree,
	)
	obj, ok := EncodeValue(tree).(map[string]any)
	if !ok || obj["_type"] != "node" {
		t.Fatalf("expected node object, got %#v", obj)
	}
	left, ok := obj["left"].(map[string]any)
	if !ok || left["_type"] != "node" {
		t.Fatalf("expected nested node, got %#v", obj["left"])
	}
	if right, ok := obj["right"].(map[string]any); !ok || right["_type"] != "leaf" {
		t.Fatalf("expected leaf right child, got %#v", obj["right"])
	}
}

func TestDecodeNullIsEmptyList(t *testing.T) {
	val, err := DecodeValue(nil)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	list, ok := val.(*runtime.ListValue)
	if !ok || !list.IsEmpty() {
		t.Fatalf("null should decode to the empty list, got %#v", val)
	}
}

func TestDecodeTreeWithNullChildren(t *testing.T) {
	val, err := DecodeValue(map[string]any{
		"_type": "node",
		"left":  nil,
		"value": json.Number("7"),
		"right": map[string]any{"_type": "leaf"},
	})
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	tree, ok := val.(*runtime.TreeValue)
	if !ok || tree.Size() != 1 {
		t.Fatalf("expected singleton tree, got %#v", val)
	}
	root, _ := tree.Root()
	if iv, ok := root.(runtime.IntegerValue); !ok || iv.Val != 7 {
		t.Fatalf("unexpected root %#v", root)
	}
}

func TestRenderTreeLayout(t *testing.T) {
	tree := runtime.Node(
		runtime.Node(runtime.LeafTree, runtime.IntegerValue{Val: 1}, runtime.LeafTree),
		runtime.IntegerValue{Val: 2},
		runtime.Node(runtime.LeafTree, runtime.IntegerValue{Val: 3}, runtime.LeafTree),
	)
	got := RenderTree(tree)
	want := "2\n    |-- 1\n    `-- 3"
	if got != want {
		t.Fatalf("unexpected layout:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderLeafIsEmpty(t *testing.T) {
	if RenderTree(runtime.LeafTree) != "" {
		t.Fatalf("leaf should render as empty string")
	}
}
