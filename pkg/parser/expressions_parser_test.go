package parser

import (
	"testing"

	"pseudo/interpreter-go/pkg/ast"
)

func parseOK(t *testing.T, text string) ast.Expression {
	t.Helper()
	expr, err := ParseExpression(text)
	if err != nil {
		t.Fatalf("parse of %q failed: %v", text, err)
	}
	return expr
}

func TestNormalizeOperators(t *testing.T) {
	cases := map[string]string{
		"a mod b":      "a % b",
		"a AND b":      "a && b",
		"a and b":      "a && b",
		"a OR b":       "a || b",
		"NOT a":        "! a",
		"a × b":        "a * b",
		"a X b":        "a * b",
		"a ≤ b":        "a <= b",
		"a ≥ b":        "a >= b",
		"a + b;":       "a + b",
		"'mod X AND'":  "'mod X AND'",
		"modulo + Xray": "modulo + Xray",
		"x * 2":        "x * 2",
	}
	for in, want := range cases {
		if got := NormalizeExpression(in); got != want {
			t.Fatalf("normalize %q: expected %q, got %q", in, want, got)
		}
	}
}

func TestArithmeticPrecedence(t *testing.T) {
	expr := parseOK(t, "1 + 2 * 3")
	bin, ok := expr.(*ast.BinaryExpression)
	if !ok || bin.Operator != "+" {
		t.Fatalf("expected top-level +, got %#v", expr)
	}
	right, ok := bin.Right.(*ast.BinaryExpression)
	if !ok || right.Operator != "*" {
		t.Fatalf("multiplication should bind tighter, got %#v", bin.Right)
	}
}

func TestLogicalPrecedence(t *testing.T) {
	expr := parseOK(t, "a OR b AND NOT c")
	or, ok := expr.(*ast.BinaryExpression)
	if !ok || or.Operator != "||" {
		t.Fatalf("expected top-level ||, got %#v", expr)
	}
	and, ok := or.Right.(*ast.BinaryExpression)
	if !ok || and.Operator != "&&" {
		t.Fatalf("expected && under ||, got %#v", or.Right)
	}
	if not, ok := and.Right.(*ast.UnaryExpression); !ok || not.Operator != "!" {
		t.Fatalf("expected ! under &&, got %#v", and.Right)
	}
}

func TestComparisonBindsLooserThanArithmetic(t *testing.T) {
	expr := parseOK(t, "x + 1 ≤ y * 2")
	cmp, ok := expr.(*ast.BinaryExpression)
	if !ok || cmp.Operator != "<=" {
		t.Fatalf("expected top-level <=, got %#v", expr)
	}
}

func TestParenthesesOverridePrecedence(t *testing.T) {
	expr := parseOK(t, "(1 + 2) * 3")
	bin := expr.(*ast.BinaryExpression)
	if bin.Operator != "*" {
		t.Fatalf("expected top-level *, got %q", bin.Operator)
	}
	if inner, ok := bin.Left.(*ast.BinaryExpression); !ok || inner.Operator != "+" {
		t.Fatalf("expected parenthesized + on the left, got %#v", bin.Left)
	}
}

func TestLiterals(t *testing.T) {
	if _, ok := parseOK(t, "42").(*ast.IntegerLiteral); !ok {
		t.Fatalf("42 should be an integer literal")
	}
	if _, ok := parseOK(t, "3.14").(*ast.FloatLiteral); !ok {
		t.Fatalf("3.14 should be a float literal")
	}
	if neg, ok := parseOK(t, "-7").(*ast.UnaryExpression); !ok || neg.Operator != "-" {
		t.Fatalf("-7 should be unary minus")
	}
	if s, ok := parseOK(t, `'hello'`).(*ast.StringLiteral); !ok || s.Value != "hello" {
		t.Fatalf("single-quoted string literal failed")
	}
	if s, ok := parseOK(t, `"world"`).(*ast.StringLiteral); !ok || s.Value != "world" {
		t.Fatalf("double-quoted string literal failed")
	}
	if _, ok := parseOK(t, "Nil").(*ast.EmptyListLiteral); !ok {
		t.Fatalf("Nil should be the empty-list literal")
	}
	if _, ok := parseOK(t, "leaf").(*ast.LeafLiteral); !ok {
		t.Fatalf("leaf should be the empty-tree literal")
	}
}

func TestCallArgumentsSplitOnTopLevelCommasOnly(t *testing.T) {
	expr := parseOK(t, "merge(cons(1, Nil), cons(2, Nil))")
	call, ok := expr.(*ast.CallExpression)
	if !ok || call.Callee.Name != "merge" {
		t.Fatalf("expected merge call, got %#v", expr)
	}
	if len(call.Arguments) != 2 {
		t.Fatalf("nested commas must not split outer arguments, got %d args", len(call.Arguments))
	}
	inner, ok := call.Arguments[0].(*ast.CallExpression)
	if !ok || inner.Callee.Name != "cons" || len(inner.Arguments) != 2 {
		t.Fatalf("unexpected inner call %#v", call.Arguments[0])
	}
}

func TestEmptyArgumentList(t *testing.T) {
	call := parseOK(t, "Nil()").(*ast.CallExpression)
	if call.Callee.Name != "Nil" || len(call.Arguments) != 0 {
		t.Fatalf("unexpected call %#v", call)
	}
}

func TestParseFailureCarriesTexts(t *testing.T) {
	_, err := ParseExpression("1 + ")
	if err == nil {
		t.Fatalf("expected parse error")
	}
	expr := LenientExpression("a ≤")
	invalid, ok := expr.(*ast.InvalidExpression)
	if !ok {
		t.Fatalf("expected InvalidExpression, got %#v", expr)
	}
	if invalid.Text != "a ≤" || invalid.Normalized != "a <=" {
		t.Fatalf("invalid expression should keep original and normalized text, got %#v", invalid)
	}
}
