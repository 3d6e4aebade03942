package parser

import (
	"errors"
	"testing"

	"pseudo/interpreter-go/pkg/ast"
	"pseudo/interpreter-go/pkg/runtime"
)

func compileOne(t *testing.T, source string) *ast.AlgorithmDefinition {
	t.Helper()
	defs, err := Compile(source)
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	if len(defs) != 1 {
		t.Fatalf("expected one definition, got %d", len(defs))
	}
	return defs[0]
}

func TestHeaderForms(t *testing.T) {
	for _, src := range []string{
		"Algorithm Sum(a, b)\nreturn a + b",
		"Algorithm: Sum(a, b)\nreturn a + b",
		"  Algorithm :  Sum( a , b )\nreturn a + b",
	} {
		def := compileOne(t, src)
		if def.Name != "Sum" {
			t.Fatalf("unexpected name %q for %q", def.Name, src)
		}
		if len(def.Params) != 2 || def.Params[0] != "a" || def.Params[1] != "b" {
			t.Fatalf("unexpected params %v for %q", def.Params, src)
		}
	}
}

func TestHeaderWithoutParameters(t *testing.T) {
	def := compileOne(t, "Algorithm Answer()\nreturn 42")
	if len(def.Params) != 0 {
		t.Fatalf("expected no parameters, got %v", def.Params)
	}
}

func TestMalformedHeader(t *testing.T) {
	_, err := Compile("Algorithm 123bad(a)\nreturn a")
	var compErr *runtime.CompilationError
	if !errors.As(err, &compErr) {
		t.Fatalf("expected CompilationError, got %v", err)
	}
}

func TestLeadingJunkBeforeFirstHeader(t *testing.T) {
	_, err := Compile("this is not a header\nAlgorithm Id(x)\nreturn x")
	var compErr *runtime.CompilationError
	if !errors.As(err, &compErr) {
		t.Fatalf("expected CompilationError for leading junk, got %v", err)
	}
}

func TestDuplicateParameterRejected(t *testing.T) {
	_, err := Compile("Algorithm Twice(a, a)\nreturn a")
	var compErr *runtime.CompilationError
	if !errors.As(err, &compErr) {
		t.Fatalf("expected CompilationError, got %v", err)
	}
}

func TestStepLabelsAndSpecCommentsStripped(t *testing.T) {
	src := `Algorithm Describe(x)
Requires x to be an integer
Returns the sign description
Step 1: let s = 0
2: s = s + x
return s`
	def := compileOne(t, src)
	if len(def.Body) != 3 {
		t.Fatalf("expected 3 statements after stripping, got %d", len(def.Body))
	}
	if def.Body[0].NodeType() != ast.NodeAssignmentStatement {
		t.Fatalf("step label not stripped: %#v", def.Body[0])
	}
}

func TestMultipleDefinitions(t *testing.T) {
	src := `Algorithm First(x)
return x

Algorithm Second(y)
return y`
	defs, err := Compile(src)
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	if len(defs) != 2 || defs[0].Name != "First" || defs[1].Name != "Second" {
		t.Fatalf("unexpected definitions %v", defs)
	}
}

func TestIfElseifElseStructure(t *testing.T) {
	src := `Algorithm Sign(x)
if x > 0 then
return 1
elseif x < 0 then
return -1
else
return 0
endif`
	def := compileOne(t, src)
	if len(def.Body) != 1 {
		t.Fatalf("expected a single if statement, got %d statements", len(def.Body))
	}
	ifStmt, ok := def.Body[0].(*ast.IfStatement)
	if !ok {
		t.Fatalf("expected IfStatement, got %#v", def.Body[0])
	}
	if len(ifStmt.Branches) != 3 {
		t.Fatalf("expected 3 branches, got %d", len(ifStmt.Branches))
	}
	if ifStmt.Branches[0].Condition == nil || ifStmt.Branches[1].Condition == nil {
		t.Fatalf("if and elseif branches need conditions")
	}
	if ifStmt.Branches[2].Condition != nil {
		t.Fatalf("else branch must have nil condition")
	}
}

func TestNestedSameKindIf(t *testing.T) {
	src := `Algorithm Grade(x)
if x > 0 then
if x > 10 then
return 2
endif
return 1
endif
return 0`
	def := compileOne(t, src)
	if len(def.Body) != 2 {
		t.Fatalf("expected outer if plus trailing return, got %d statements", len(def.Body))
	}
	outer := def.Body[0].(*ast.IfStatement)
	if len(outer.Branches) != 1 {
		t.Fatalf("expected one branch on the outer if")
	}
	branch := outer.Branches[0]
	if len(branch.Body) != 2 {
		t.Fatalf("outer branch should hold the inner if and a return, got %d", len(branch.Body))
	}
	if _, ok := branch.Body[0].(*ast.IfStatement); !ok {
		t.Fatalf("inner statement should be an IfStatement, got %#v", branch.Body[0])
	}
}

func TestNestedSameKindWhileAndFor(t *testing.T) {
	src := `Algorithm Pairs(n)
for i from 1 to n do
for j from 1 to n do
let k = i * j
endfor
endfor
while n > 0 do
while n > 1 do
let n = n - 1
endwhile
let n = n - 1
endwhile
return n`
	def := compileOne(t, src)
	if len(def.Body) != 3 {
		t.Fatalf("expected for, while, return; got %d statements", len(def.Body))
	}
	outerFor := def.Body[0].(*ast.ForRangeStatement)
	if len(outerFor.Body) != 1 {
		t.Fatalf("outer for should contain exactly the inner for, got %d", len(outerFor.Body))
	}
	if _, ok := outerFor.Body[0].(*ast.ForRangeStatement); !ok {
		t.Fatalf("expected nested ForRangeStatement, got %#v", outerFor.Body[0])
	}
	outerWhile := def.Body[1].(*ast.WhileStatement)
	if len(outerWhile.Body) != 2 {
		t.Fatalf("outer while should contain inner while plus assignment, got %d", len(outerWhile.Body))
	}
	if _, ok := outerWhile.Body[0].(*ast.WhileStatement); !ok {
		t.Fatalf("expected nested WhileStatement, got %#v", outerWhile.Body[0])
	}
}

func TestForEachForm(t *testing.T) {
	src := `Algorithm Walk(L)
for item in L do
let last = item
endfor
return last`
	def := compileOne(t, src)
	each, ok := def.Body[0].(*ast.ForEachStatement)
	if !ok {
		t.Fatalf("expected ForEachStatement, got %#v", def.Body[0])
	}
	if each.Variable.Name != "item" {
		t.Fatalf("unexpected loop variable %q", each.Variable.Name)
	}
}

func TestMalformedForLoop(t *testing.T) {
	_, err := Compile("Algorithm Bad(n)\nfor over the hills\nendfor")
	var compErr *runtime.CompilationError
	if !errors.As(err, &compErr) {
		t.Fatalf("expected CompilationError, got %v", err)
	}
}

func TestAssignmentForms(t *testing.T) {
	src := `Algorithm Assigns(x)
let a = 1
b ← 2
c = 3
return a + b + c`
	def := compileOne(t, src)
	for i, name := range []string{"a", "b", "c"} {
		assign, ok := def.Body[i].(*ast.AssignmentStatement)
		if !ok {
			t.Fatalf("statement %d should be an assignment, got %#v", i, def.Body[i])
		}
		if assign.Target.Name != name {
			t.Fatalf("expected target %q, got %q", name, assign.Target.Name)
		}
	}
}

func TestBareComparisonIsNotAssignment(t *testing.T) {
	def := compileOne(t, "Algorithm Cmp(a, b)\na == b\nreturn 0")
	if _, ok := def.Body[0].(*ast.ExpressionStatement); !ok {
		t.Fatalf("comparison should stay an expression statement, got %#v", def.Body[0])
	}
}

func TestReturnWithoutArgument(t *testing.T) {
	def := compileOne(t, "Algorithm Stop()\nreturn")
	ret := def.Body[0].(*ast.ReturnStatement)
	if ret.Argument != nil {
		t.Fatalf("expected bare return, got %#v", ret.Argument)
	}
}

func TestUnparseableBareLineIsPreserved(t *testing.T) {
	def := compileOne(t, "Algorithm Noisy(x)\n??? mystery line\nreturn x")
	stmt, ok := def.Body[0].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("expected ExpressionStatement, got %#v", def.Body[0])
	}
	if _, ok := stmt.Expression.(*ast.InvalidExpression); !ok {
		t.Fatalf("expected InvalidExpression payload, got %#v", stmt.Expression)
	}
}
