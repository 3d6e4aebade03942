// Package check statically inspects compiled algorithm definitions
// before execution. The language is dynamically typed, so the checks
// are structural: call targets must exist, builtin calls must carry
// their exact arity, and unparseable lines are reported up front
// instead of at first execution.
package check

import (
	"fmt"
	"sort"

	"pseudo/interpreter-go/pkg/ast"
)

// Diagnostic is one finding, attached to the definition it came from.
type Diagnostic struct {
	Algorithm string
	Message   string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Algorithm, d.Message)
}

// builtinArity mirrors the interpreter's builtin table. -1 marks a
// name that exists but is not callable.
var builtinArity = map[string]int{
	"Nil":     0,
	"leaf":    -1,
	"cons":    2,
	"isEmpty": 1,
	"value":   1,
	"tail":    1,
	"merge":   2,
	"node":    3,
	"isLeaf":  1,
	"root":    1,
	"left":    1,
	"right":   1,
	"size":    1,
}

// Check inspects every definition against the full registry, so mutual
// recursion and forward references are fine. Diagnostics come back in
// definition order.
func Check(defs []*ast.AlgorithmDefinition) []Diagnostic {
	registry := make(map[string]int, len(defs))
	for _, def := range defs {
		registry[def.Name] = len(def.Params)
	}
	c := &checker{registry: registry}
	for _, def := range defs {
		c.current = def.Name
		c.checkBody(def.Body)
	}
	return c.diags
}

type checker struct {
	registry map[string]int
	current  string
	diags    []Diagnostic
}

func (c *checker) report(format string, args ...any) {
	c.diags = append(c.diags, Diagnostic{
		Algorithm: c.current,
		Message:   fmt.Sprintf(format, args...),
	})
}

func (c *checker) checkBody(body []ast.Statement) {
	for _, stmt := range body {
		c.checkStatement(stmt)
	}
}

func (c *checker) checkStatement(stmt ast.Statement) {
	switch n := stmt.(type) {
	case *ast.AssignmentStatement:
		c.checkExpression(n.Value, false)
	case *ast.ReturnStatement:
		if n.Argument != nil {
			c.checkExpression(n.Argument, false)
		}
	case *ast.IfStatement:
		for _, branch := range n.Branches {
			if branch.Condition != nil {
				c.checkExpression(branch.Condition, false)
			}
			c.checkBody(branch.Body)
		}
	case *ast.WhileStatement:
		c.checkExpression(n.Condition, false)
		c.checkBody(n.Body)
	case *ast.ForRangeStatement:
		c.checkExpression(n.From, false)
		c.checkExpression(n.To, false)
		c.checkBody(n.Body)
	case *ast.ForEachStatement:
		c.checkExpression(n.Iterable, false)
		c.checkBody(n.Body)
	case *ast.ExpressionStatement:
		// Bare lines are best-effort at runtime; still surface what
		// will silently never work.
		c.checkExpression(n.Expression, true)
	}
}

func (c *checker) checkExpression(expr ast.Expression, bare bool) {
	switch n := expr.(type) {
	case *ast.UnaryExpression:
		c.checkExpression(n.Operand, false)
	case *ast.BinaryExpression:
		c.checkExpression(n.Left, false)
		c.checkExpression(n.Right, false)
	case *ast.CallExpression:
		c.checkCall(n)
	case *ast.InvalidExpression:
		if bare {
			c.report("line %q never evaluates: %s", n.Text, n.Message)
		} else {
			c.report("expression %q does not parse: %s", n.Text, n.Message)
		}
	}
}

func (c *checker) checkCall(call *ast.CallExpression) {
	for _, arg := range call.Arguments {
		c.checkExpression(arg, false)
	}
	name := call.Callee.Name
	if arity, ok := builtinArity[name]; ok {
		if arity < 0 {
			c.report("'%s' is not callable", name)
		} else if len(call.Arguments) != arity {
			c.report("%s expects %d argument(s), got %d", name, arity, len(call.Arguments))
		}
		return
	}
	if want, ok := c.registry[name]; ok {
		if len(call.Arguments) != want {
			c.report("%s expects %d argument(s), got %d", name, want, len(call.Arguments))
		}
		return
	}
	c.report("call to unknown name '%s'", name)
}

// Names returns the distinct algorithm names mentioned in diagnostics,
// sorted, for compact summaries.
func Names(diags []Diagnostic) []string {
	seen := make(map[string]bool)
	var names []string
	for _, d := range diags {
		if !seen[d.Algorithm] {
			seen[d.Algorithm] = true
			names = append(names, d.Algorithm)
		}
	}
	sort.Strings(names)
	return names
}
