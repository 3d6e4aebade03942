package driver

import (
	"strconv"
	"strings"

	"pseudo/interpreter-go/pkg/runtime"
)

// RenderTree draws a tree with ASCII connectors, one node per line. The
// root prints bare; each child prints behind a `|-- ` or (for the last
// child) `` `-- `` connector. Leaves draw nothing.
func RenderTree(tree *runtime.TreeValue) string {
	if tree.IsLeaf() {
		return ""
	}
	var lines []string
	renderNode(tree, "", true, true, &lines)
	return strings.Join(lines, "\n")
}

func renderNode(node *runtime.TreeValue, prefix string, isTail, isRoot bool, lines *[]string) {
	if node.IsLeaf() {
		return
	}
	left, _ := node.Left()
	root, _ := node.Root()
	right, _ := node.Right()

	label := nodeLabel(root)
	if isRoot {
		*lines = append(*lines, label)
	} else {
		connector := "|-- "
		if isTail {
			connector = "`-- "
		}
		*lines = append(*lines, prefix+connector+label)
	}

	extension := "|   "
	if isTail || isRoot {
		extension = "    "
	}
	hasLeft := !left.IsLeaf()
	hasRight := !right.IsLeaf()
	switch {
	case hasLeft && hasRight:
		renderNode(left, prefix+extension, false, false, lines)
		renderNode(right, prefix+extension, true, false, lines)
	case hasLeft:
		renderNode(left, prefix+extension, true, false, lines)
	case hasRight:
		renderNode(right, prefix+extension, true, false, lines)
	}
}

func nodeLabel(val runtime.Value) string {
	switch v := val.(type) {
	case runtime.StringValue:
		return v.Val
	case runtime.IntegerValue:
		return strconv.FormatInt(v.Val, 10)
	case runtime.FloatValue:
		return strconv.FormatFloat(v.Val, 'g', -1, 64)
	case runtime.BoolValue:
		return strconv.FormatBool(v.Val)
	case runtime.NilValue:
		return ""
	case nil:
		return ""
	default:
		return ""
	}
}
