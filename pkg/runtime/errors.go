package runtime

import "fmt"

// CompilationError reports a malformed algorithm header or block construct.
type CompilationError struct {
	Message string
	Line    string
}

func (e *CompilationError) Error() string {
	if e.Line != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Line)
	}
	return e.Message
}

// NameResolutionError reports an unknown function, algorithm, or variable.
// What is one of "function", "algorithm", "variable".
type NameResolutionError struct {
	What string
	Name string
}

func (e *NameResolutionError) Error() string {
	return fmt.Sprintf("unknown %s '%s'", e.What, e.Name)
}

// ArityError reports an argument-count mismatch on a call.
type ArityError struct {
	Algorithm string
	Want      int
	Got       int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("argument mismatch for %s: expected %d, got %d", e.Algorithm, e.Want, e.Got)
}

// StructuralTypeError reports a value of the wrong kind reaching an
// operation: a list or tree accessor on the wrong variant, an operator
// over incompatible operands (including division and modulo by zero),
// or a non-number bounding a counted loop.
type StructuralTypeError struct {
	Message string
}

func (e *StructuralTypeError) Error() string { return e.Message }

// EvaluationError reports a failed expression evaluation. It carries the
// original surface text and the operator-normalized text alongside the
// underlying cause.
type EvaluationError struct {
	Text       string
	Normalized string
	Err        error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("could not evaluate expression '%s' (normalized: %s): %v", e.Text, e.Normalized, e.Err)
}

func (e *EvaluationError) Unwrap() error { return e.Err }
