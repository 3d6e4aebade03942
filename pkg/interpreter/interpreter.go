// Package interpreter walks compiled algorithm bodies. Evaluation is
// synchronous and recursive; non-local exits (return) travel as typed
// error signals the way block evaluation unwinds elsewhere in the tree.
package interpreter

import (
	"fmt"

	"pseudo/interpreter-go/pkg/ast"
	"pseudo/interpreter-go/pkg/parser"
	"pseudo/interpreter-go/pkg/runtime"
)

// Interpreter holds the algorithm registry, the process-scoped globals,
// and the fixed builtin table.
type Interpreter struct {
	algorithms map[string]*ast.AlgorithmDefinition
	globals    *runtime.Environment
	builtins   map[string]runtime.Value
}

// New returns an interpreter with an empty registry and fresh globals.
func New() *Interpreter {
	return &Interpreter{
		algorithms: make(map[string]*ast.AlgorithmDefinition),
		globals:    runtime.NewEnvironment(nil),
		builtins:   builtinTable(),
	}
}

// Globals returns the interpreter's global environment. Top-level case
// assignments mutate it between executions.
func (i *Interpreter) Globals() *runtime.Environment {
	return i.globals
}

// Register adds a definition to the registry. A later definition with
// the same name overwrites the earlier one.
func (i *Interpreter) Register(def *ast.AlgorithmDefinition) {
	i.algorithms[def.Name] = def
}

// LoadSource compiles raw pseudocode and registers every definition.
func (i *Interpreter) LoadSource(source string) error {
	defs, err := parser.Compile(source)
	if err != nil {
		return err
	}
	for _, def := range defs {
		i.Register(def)
	}
	return nil
}

// Lookup returns the registered definition for name, if any.
func (i *Interpreter) Lookup(name string) (*ast.AlgorithmDefinition, bool) {
	def, ok := i.algorithms[name]
	return def, ok
}

// AlgorithmNames returns the registered names in map order.
func (i *Interpreter) AlgorithmNames() []string {
	names := make([]string, 0, len(i.algorithms))
	for name := range i.algorithms {
		names = append(names, name)
	}
	return names
}

// returnSignal unwinds a return statement out of nested blocks up to the
// enclosing algorithm invocation.
type returnSignal struct {
	value runtime.Value
}

func (returnSignal) Error() string { return "return outside algorithm" }

// CallAlgorithm executes a registered algorithm. The callee frame binds
// parameters positionally and chains to the caller's scope for reads;
// writes stay in the callee frame, so caller bindings are inherited but
// never mutated.
func (i *Interpreter) CallAlgorithm(name string, args []runtime.Value, caller *runtime.Environment) (runtime.Value, error) {
	def, ok := i.algorithms[name]
	if !ok {
		return nil, &runtime.NameResolutionError{What: "algorithm", Name: name}
	}
	if len(args) != len(def.Params) {
		return nil, &runtime.ArityError{Algorithm: name, Want: len(def.Params), Got: len(args)}
	}
	parent := caller
	if parent == nil {
		parent = i.globals
	}
	frame := runtime.NewEnvironment(parent)
	for idx, param := range def.Params {
		frame.Define(param, args[idx])
	}
	result, err := i.executeBody(def.Body, frame)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// EvalExpression parses and evaluates one expression text against the
// given scope (the globals when env is nil).
func (i *Interpreter) EvalExpression(text string, env *runtime.Environment) (runtime.Value, error) {
	expr, err := parser.ParseExpression(text)
	if err != nil {
		return nil, err
	}
	if env == nil {
		env = i.globals
	}
	return i.evaluateExpression(expr, env)
}

// executeBody runs a statement sequence, converting a return signal into
// the invocation result. Falling off the end yields no value.
func (i *Interpreter) executeBody(body []ast.Statement, env *runtime.Environment) (runtime.Value, error) {
	for _, stmt := range body {
		if err := i.evaluateStatement(stmt, env); err != nil {
			if sig, ok := err.(returnSignal); ok {
				return sig.value, nil
			}
			return nil, err
		}
	}
	return runtime.NilValue{}, nil
}

// runBlock runs a nested statement sequence in the current scope.
// Loop and branch bodies do not open a new frame; the surface language
// has one flat scope per invocation.
func (i *Interpreter) runBlock(body []ast.Statement, env *runtime.Environment) error {
	for _, stmt := range body {
		if err := i.evaluateStatement(stmt, env); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) evaluateStatement(node ast.Statement, env *runtime.Environment) error {
	switch n := node.(type) {
	case *ast.AssignmentStatement:
		val, err := i.evaluateExpression(n.Value, env)
		if err != nil {
			return err
		}
		env.Define(n.Target.Name, val)
		return nil
	case *ast.ReturnStatement:
		if n.Argument == nil {
			return returnSignal{value: runtime.NilValue{}}
		}
		val, err := i.evaluateExpression(n.Argument, env)
		if err != nil {
			return err
		}
		return returnSignal{value: val}
	case *ast.IfStatement:
		return i.evaluateIf(n, env)
	case *ast.WhileStatement:
		return i.evaluateWhile(n, env)
	case *ast.ForRangeStatement:
		return i.evaluateForRange(n, env)
	case *ast.ForEachStatement:
		return i.evaluateForEach(n, env)
	case *ast.ExpressionStatement:
		// Bare lines run best-effort: a failed evaluation skips the
		// statement instead of aborting the invocation.
		if _, err := i.evaluateExpression(n.Expression, env); err != nil {
			if _, ok := err.(returnSignal); ok {
				return err
			}
			return nil
		}
		return nil
	default:
		return fmt.Errorf("unsupported statement type: %s", n.NodeType())
	}
}

func (i *Interpreter) evaluateIf(stmt *ast.IfStatement, env *runtime.Environment) error {
	for _, branch := range stmt.Branches {
		if branch.Condition == nil {
			return i.runBlock(branch.Body, env)
		}
		cond, err := i.evaluateExpression(branch.Condition, env)
		if err != nil {
			return err
		}
		if isTruthy(cond) {
			return i.runBlock(branch.Body, env)
		}
	}
	return nil
}

func (i *Interpreter) evaluateWhile(stmt *ast.WhileStatement, env *runtime.Environment) error {
	for {
		cond, err := i.evaluateExpression(stmt.Condition, env)
		if err != nil {
			return err
		}
		if !isTruthy(cond) {
			return nil
		}
		if err := i.runBlock(stmt.Body, env); err != nil {
			return err
		}
	}
}

func (i *Interpreter) evaluateForRange(stmt *ast.ForRangeStatement, env *runtime.Environment) error {
	from, err := i.evaluateExpression(stmt.From, env)
	if err != nil {
		return err
	}
	to, err := i.evaluateExpression(stmt.To, env)
	if err != nil {
		return err
	}
	start, err := rangeBound("start", from)
	if err != nil {
		return err
	}
	end, err := rangeBound("end", to)
	if err != nil {
		return err
	}
	for v := start; v <= end; v++ {
		env.Define(stmt.Variable.Name, runtime.IntegerValue{Val: v})
		if err := i.runBlock(stmt.Body, env); err != nil {
			return err
		}
	}
	return nil
}

// rangeBound accepts integer bounds directly and truncates float bounds
// toward zero, so `for i from 1.0 to 3` iterates like `from 1 to 3`.
func rangeBound(side string, val runtime.Value) (int64, error) {
	switch v := val.(type) {
	case runtime.IntegerValue:
		return v.Val, nil
	case runtime.FloatValue:
		return int64(v.Val), nil
	}
	return 0, &runtime.StructuralTypeError{
		Message: fmt.Sprintf("for range %s must be a number, got %s", side, val.Kind()),
	}
}

func (i *Interpreter) evaluateForEach(stmt *ast.ForEachStatement, env *runtime.Environment) error {
	iterable, err := i.evaluateExpression(stmt.Iterable, env)
	if err != nil {
		return err
	}
	var items []runtime.Value
	if list, ok := iterable.(*runtime.ListValue); ok {
		items = list.Elements()
	} else {
		// A non-list iterates once over itself.
		items = []runtime.Value{iterable}
	}
	for _, item := range items {
		env.Define(stmt.Variable.Name, item)
		if err := i.runBlock(stmt.Body, env); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) evaluateExpression(node ast.Expression, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.IntegerLiteral:
		return runtime.IntegerValue{Val: n.Value}, nil
	case *ast.FloatLiteral:
		return runtime.FloatValue{Val: n.Value}, nil
	case *ast.StringLiteral:
		return runtime.StringValue{Val: n.Value}, nil
	case *ast.BooleanLiteral:
		return runtime.BoolValue{Val: n.Value}, nil
	case *ast.EmptyListLiteral:
		return runtime.EmptyList, nil
	case *ast.LeafLiteral:
		return runtime.LeafTree, nil
	case *ast.Identifier:
		return i.resolveName(n.Name, env)
	case *ast.UnaryExpression:
		return i.evaluateUnary(n, env)
	case *ast.BinaryExpression:
		return i.evaluateBinary(n, env)
	case *ast.CallExpression:
		return i.evaluateCall(n, env)
	case *ast.InvalidExpression:
		return nil, &runtime.EvaluationError{
			Text:       n.Text,
			Normalized: n.Normalized,
			Err:        fmt.Errorf("%s", n.Message),
		}
	default:
		return nil, fmt.Errorf("unsupported expression type: %s", n.NodeType())
	}
}

// resolveName looks through the scope chain first, then the builtin
// table. Algorithm names are not values; they resolve only in call form.
func (i *Interpreter) resolveName(name string, env *runtime.Environment) (runtime.Value, error) {
	if val, err := env.Get(name); err == nil {
		return val, nil
	}
	if val, ok := i.builtins[name]; ok {
		return val, nil
	}
	return nil, &runtime.NameResolutionError{What: "variable", Name: name}
}

// evaluateCall dispatches name(args): builtins first, then registered
// algorithms invoked with the current scope as caller scope.
func (i *Interpreter) evaluateCall(call *ast.CallExpression, env *runtime.Environment) (runtime.Value, error) {
	name := call.Callee.Name
	args := make([]runtime.Value, len(call.Arguments))
	for idx, argExpr := range call.Arguments {
		val, err := i.evaluateExpression(argExpr, env)
		if err != nil {
			return nil, err
		}
		args[idx] = val
	}
	if builtin, ok := i.builtins[name]; ok {
		native, ok := builtin.(runtime.NativeFunctionValue)
		if !ok {
			return nil, &runtime.StructuralTypeError{Message: fmt.Sprintf("'%s' is not callable", name)}
		}
		if native.Arity >= 0 && len(args) != native.Arity {
			return nil, &runtime.ArityError{Algorithm: name, Want: native.Arity, Got: len(args)}
		}
		return native.Impl(args)
	}
	if _, ok := i.algorithms[name]; ok {
		return i.CallAlgorithm(name, args, env)
	}
	return nil, &runtime.NameResolutionError{What: "function", Name: name}
}

func (i *Interpreter) evaluateUnary(node *ast.UnaryExpression, env *runtime.Environment) (runtime.Value, error) {
	operand, err := i.evaluateExpression(node.Operand, env)
	if err != nil {
		return nil, err
	}
	switch node.Operator {
	case "-":
		switch v := operand.(type) {
		case runtime.IntegerValue:
			return runtime.IntegerValue{Val: -v.Val}, nil
		case runtime.FloatValue:
			return runtime.FloatValue{Val: -v.Val}, nil
		}
		return nil, &runtime.StructuralTypeError{Message: fmt.Sprintf("cannot negate %s", operand.Kind())}
	case "!":
		return runtime.BoolValue{Val: !isTruthy(operand)}, nil
	}
	return nil, fmt.Errorf("unsupported unary operator '%s'", node.Operator)
}

func (i *Interpreter) evaluateBinary(node *ast.BinaryExpression, env *runtime.Environment) (runtime.Value, error) {
	// Logical operators short-circuit and yield the deciding operand
	// itself, so `a OR b` serves as a default-fallback idiom.
	if node.Operator == "&&" || node.Operator == "||" {
		left, err := i.evaluateExpression(node.Left, env)
		if err != nil {
			return nil, err
		}
		lt := isTruthy(left)
		if (node.Operator == "&&" && !lt) || (node.Operator == "||" && lt) {
			return left, nil
		}
		return i.evaluateExpression(node.Right, env)
	}
	left, err := i.evaluateExpression(node.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluateExpression(node.Right, env)
	if err != nil {
		return nil, err
	}
	switch node.Operator {
	case "+", "-", "*", "/", "%":
		return applyArithmetic(node.Operator, left, right)
	case "<", "<=", ">", ">=":
		return applyOrdering(node.Operator, left, right)
	case "==":
		return runtime.BoolValue{Val: valuesEqual(left, right)}, nil
	case "!=":
		return runtime.BoolValue{Val: !valuesEqual(left, right)}, nil
	}
	return nil, fmt.Errorf("unsupported binary operator '%s'", node.Operator)
}
