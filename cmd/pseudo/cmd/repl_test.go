package cmd

import "testing"

func TestSplitAssignment(t *testing.T) {
	cases := []struct {
		input string
		name  string
		expr  string
		ok    bool
	}{
		{"x = 1 + 2", "x", "1 + 2", true},
		{"tree = node(leaf, 5, leaf)", "tree", "node(leaf, 5, leaf)", true},
		{"a == b", "", "", false},
		{"a <= b", "", "", false},
		{"1 + 2", "", "", false},
		{"x + y = 3", "", "", false},
	}
	for _, c := range cases {
		name, expr, ok := splitAssignment(c.input)
		if ok != c.ok || name != c.name || expr != c.expr {
			t.Fatalf("%q: got (%q, %q, %v), want (%q, %q, %v)",
				c.input, name, expr, ok, c.name, c.expr, c.ok)
		}
	}
}
