package runtime

import "fmt"

// Kind identifies the runtime value category.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindInteger
	KindFloat
	KindNil
	KindList
	KindTree
	KindNativeFunction
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindNil:
		return "nil"
	case KindList:
		return "list"
	case KindTree:
		return "tree"
	case KindNativeFunction:
		return "native_function"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values.
type Value interface {
	Kind() Kind
}

//-----------------------------------------------------------------------------
// Scalars
//-----------------------------------------------------------------------------

type StringValue struct {
	Val string
}

func (v StringValue) Kind() Kind { return KindString }

type BoolValue struct {
	Val bool
}

func (v BoolValue) Kind() Kind { return KindBool }

type IntegerValue struct {
	Val int64
}

func (v IntegerValue) Kind() Kind { return KindInteger }

type FloatValue struct {
	Val float64
}

func (v FloatValue) Kind() Kind { return KindFloat }

// NilValue is "no value": the result of a statement or of an algorithm
// that falls off the end without a return. It is distinct from the empty
// list sentinel.
type NilValue struct{}

func (NilValue) Kind() Kind { return KindNil }

//-----------------------------------------------------------------------------
// Persistent lists
//-----------------------------------------------------------------------------

// ListValue is a persistent singly-linked list. The nil *ListValue is the
// Empty sentinel (surface `Nil`). Cons cells are immutable; Cons shares
// the existing tail and never copies a suffix.
type ListValue struct {
	head Value
	tail *ListValue
}

// EmptyList is the Empty sentinel.
var EmptyList *ListValue

func Cons(head Value, tail *ListValue) *ListValue {
	return &ListValue{head: head, tail: tail}
}

func (l *ListValue) Kind() Kind { return KindList }

func (l *ListValue) IsEmpty() bool { return l == nil }

// Head fails on the empty list.
func (l *ListValue) Head() (Value, error) {
	if l == nil {
		return nil, &StructuralTypeError{Message: "value on empty list"}
	}
	return l.head, nil
}

// Tail fails on the empty list.
func (l *ListValue) Tail() (*ListValue, error) {
	if l == nil {
		return nil, &StructuralTypeError{Message: "tail on empty list"}
	}
	return l.tail, nil
}

// Len walks the list; the empty list has length 0.
func (l *ListValue) Len() int {
	n := 0
	for cur := l; cur != nil; cur = cur.tail {
		n++
	}
	return n
}

// Elements returns the list contents front to back.
func (l *ListValue) Elements() []Value {
	out := make([]Value, 0, l.Len())
	for cur := l; cur != nil; cur = cur.tail {
		out = append(out, cur.head)
	}
	return out
}

// ListOf builds a list from elements in natural order.
func ListOf(elements ...Value) *ListValue {
	out := EmptyList
	for i := len(elements) - 1; i >= 0; i-- {
		out = Cons(elements[i], out)
	}
	return out
}

// Merge is order-preserving concatenation by recursion: the elements of
// a followed by the elements of b, sharing b's cells. It is not a sorted
// merge; ordering policy belongs to algorithm bodies.
func Merge(a, b *ListValue) *ListValue {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return Cons(a.head, Merge(a.tail, b))
}

//-----------------------------------------------------------------------------
// Persistent trees
//-----------------------------------------------------------------------------

// TreeValue is a persistent binary tree node. The nil *TreeValue is the
// Leaf sentinel (surface `leaf`). Node never mutates its children.
type TreeValue struct {
	left  *TreeValue
	val   Value
	right *TreeValue
}

// LeafTree is the Leaf sentinel.
var LeafTree *TreeValue

func Node(left *TreeValue, val Value, right *TreeValue) *TreeValue {
	return &TreeValue{left: left, val: val, right: right}
}

func (t *TreeValue) Kind() Kind { return KindTree }

func (t *TreeValue) IsLeaf() bool { return t == nil }

// Root fails on a leaf.
func (t *TreeValue) Root() (Value, error) {
	if t == nil {
		return nil, &StructuralTypeError{Message: "root on leaf"}
	}
	return t.val, nil
}

// Left fails on a leaf.
func (t *TreeValue) Left() (*TreeValue, error) {
	if t == nil {
		return nil, &StructuralTypeError{Message: "left on leaf"}
	}
	return t.left, nil
}

// Right fails on a leaf.
func (t *TreeValue) Right() (*TreeValue, error) {
	if t == nil {
		return nil, &StructuralTypeError{Message: "right on leaf"}
	}
	return t.right, nil
}

// Size counts Nodes recursively; a leaf has size 0.
func (t *TreeValue) Size() int {
	if t == nil {
		return 0
	}
	return 1 + t.left.Size() + t.right.Size()
}

//-----------------------------------------------------------------------------
// Native functions
//-----------------------------------------------------------------------------

type NativeFunc func(args []Value) (Value, error)

type NativeFunctionValue struct {
	Name  string
	Arity int
	Impl  NativeFunc
}

func (v NativeFunctionValue) Kind() Kind { return KindNativeFunction }
