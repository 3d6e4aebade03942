package runtime

import (
	"errors"
	"testing"
)

func TestEnvironmentLookupWalksChain(t *testing.T) {
	globals := NewEnvironment(nil)
	globals.Define("x", IntegerValue{Val: 1})
	frame := globals.Extend()

	val, err := frame.Get("x")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if iv, ok := val.(IntegerValue); !ok || iv.Val != 1 {
		t.Fatalf("unexpected value %#v", val)
	}
}

func TestEnvironmentUnknownName(t *testing.T) {
	env := NewEnvironment(nil)
	_, err := env.Get("missing")
	var nameErr *NameResolutionError
	if !errors.As(err, &nameErr) {
		t.Fatalf("expected NameResolutionError, got %v", err)
	}
	if nameErr.Name != "missing" {
		t.Fatalf("error should name the identifier, got %q", nameErr.Name)
	}
}

func TestDefineShadowsWithoutTouchingParent(t *testing.T) {
	parent := NewEnvironment(nil)
	parent.Define("x", IntegerValue{Val: 1})
	child := parent.Extend()
	child.Define("x", IntegerValue{Val: 2})

	fromChild, _ := child.Get("x")
	if iv := fromChild.(IntegerValue); iv.Val != 2 {
		t.Fatalf("child should see its own binding, got %#v", fromChild)
	}
	fromParent, _ := parent.Get("x")
	if iv := fromParent.(IntegerValue); iv.Val != 1 {
		t.Fatalf("parent binding must be untouched, got %#v", fromParent)
	}
}

func TestSnapshotAndKeysCoverOwnFrameOnly(t *testing.T) {
	parent := NewEnvironment(nil)
	parent.Define("inherited", IntegerValue{Val: 1})
	child := parent.Extend()
	child.Define("b", IntegerValue{Val: 2})
	child.Define("a", IntegerValue{Val: 3})

	snap := child.Snapshot()
	if len(snap) != 2 {
		t.Fatalf("snapshot should cover the frame's own bindings, got %v", snap)
	}
	keys := child.Keys()
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Fatalf("expected sorted keys [a b], got %v", keys)
	}
}
