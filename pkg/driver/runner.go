package driver

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"pseudo/interpreter-go/pkg/interpreter"
	"pseudo/interpreter-go/pkg/runtime"
)

// Runner executes a batch of cases against one compiled source. Cases
// run in order and share the interpreter's globals; a failed case fills
// its output slot with an error object and never aborts the batch.
type Runner struct {
	interp *interpreter.Interpreter
	errOut io.Writer
}

func NewRunner(interp *interpreter.Interpreter) *Runner {
	return &Runner{interp: interp, errOut: os.Stderr}
}

// SetErrorOutput redirects per-case diagnostics (default stderr).
func (r *Runner) SetErrorOutput(w io.Writer) { r.errOut = w }

// RunCases executes the batch and returns one output slot per case,
// except variable assignments, which only mutate the globals.
func (r *Runner) RunCases(cases []Case) []any {
	var outputs []any
	for _, c := range cases {
		out, emit := r.runCase(c)
		if emit {
			outputs = append(outputs, out)
		}
	}
	return outputs
}

func (r *Runner) runCase(c Case) (any, bool) {
	switch c.Kind {
	case CaseVarAssign:
		val, err := r.interp.EvalExpression(c.Value, nil)
		if err != nil {
			return r.caseError(err), true
		}
		r.interp.Globals().Define(c.Var, val)
		return nil, false
	case CaseExpr:
		val, err := r.interp.EvalExpression(c.Expr, nil)
		if err != nil {
			return r.caseError(err), true
		}
		return EncodeValue(val), true
	default:
		args, err := r.convertArgs(c.Args)
		if err != nil {
			return r.caseError(err), true
		}
		result, err := r.interp.CallAlgorithm(c.Algo, args, nil)
		if err != nil {
			return r.caseError(err), true
		}
		if c.Store != "" {
			r.interp.Globals().Define(c.Store, result)
		}
		return EncodeValue(result), true
	}
}

// convertArgs turns raw case arguments into runtime values. String
// arguments are tried as expressions first (so variable references and
// `node(...)` texts work); a failed evaluation keeps the literal string.
func (r *Runner) convertArgs(args []any) ([]runtime.Value, error) {
	out := make([]runtime.Value, 0, len(args))
	for _, arg := range args {
		if text, ok := arg.(string); ok {
			if val, err := r.interp.EvalExpression(text, nil); err == nil {
				out = append(out, val)
			} else {
				out = append(out, runtime.StringValue{Val: text})
			}
			continue
		}
		val, err := DecodeValue(arg)
		if err != nil {
			return nil, err
		}
		out = append(out, val)
	}
	return out, nil
}

func (r *Runner) caseError(err error) map[string]any {
	msg := strings.ReplaceAll(err.Error(), "\n", " ")
	if r.errOut != nil {
		fmt.Fprintf(r.errOut, "exec error: %s\n", msg)
	}
	return map[string]any{"error": msg}
}

// RenderOutputs formats the output slots: a single non-array slot is a
// bare JSON value, several slots go one per line, anything else (none,
// or a lone array) is wrapped in a JSON array. Tree outputs get an
// ASCII visualization appendix.
func RenderOutputs(outputs []any) (string, error) {
	var b strings.Builder
	switch {
	case len(outputs) == 1 && !isArray(outputs[0]):
		if err := writeJSON(&b, outputs[0]); err != nil {
			return "", err
		}
	case len(outputs) > 1:
		for idx, out := range outputs {
			if idx > 0 {
				b.WriteString("\n")
			}
			if err := writeJSON(&b, out); err != nil {
				return "", err
			}
		}
	default:
		if outputs == nil {
			outputs = []any{}
		}
		if err := writeJSON(&b, outputs); err != nil {
			return "", err
		}
	}

	if hasTreeOutput(outputs) {
		b.WriteString("\n\n--- Tree Visualization ---\n\n")
		for idx, out := range outputs {
			if !isTreeOutput(out) {
				continue
			}
			decoded, err := DecodeValue(out)
			if err != nil {
				continue
			}
			tree, ok := decoded.(*runtime.TreeValue)
			if !ok {
				continue
			}
			b.WriteString(fmt.Sprintf("Case %d:\n", idx+1))
			b.WriteString(RenderTree(tree))
			b.WriteString("\n\n")
		}
	}
	return b.String(), nil
}

// WriteOutputs renders the batch results into the output file.
func WriteOutputs(outputs []any, path string) error {
	text, err := RenderOutputs(outputs)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(text), 0o644)
}

func writeJSON(b *strings.Builder, val any) error {
	enc := json.NewEncoder(b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(val); err != nil {
		return err
	}
	// Encode appends a newline; the layout manages its own separators.
	text := b.String()
	if strings.HasSuffix(text, "\n") {
		b.Reset()
		b.WriteString(text[:len(text)-1])
	}
	return nil
}

func isArray(val any) bool {
	_, ok := val.([]any)
	return ok
}

func isTreeOutput(val any) bool {
	obj, ok := val.(map[string]any)
	return ok && obj["_type"] == "node"
}

func hasTreeOutput(outputs []any) bool {
	for _, out := range outputs {
		if isTreeOutput(out) {
			return true
		}
	}
	return false
}

// ShowList renders the global `dsl_result` as a row-sorted table: each
// list element is a row, rows sort ascending by their first element with
// empty rows last. Returns false when the global is absent or is not a
// list of lists.
func ShowList(interp *interpreter.Interpreter) (string, bool) {
	val, err := interp.Globals().Get("dsl_result")
	if err != nil {
		return "", false
	}
	outer, ok := val.(*runtime.ListValue)
	if !ok || outer.IsEmpty() {
		return "", false
	}
	var rows [][]runtime.Value
	for _, el := range outer.Elements() {
		inner, ok := el.(*runtime.ListValue)
		if !ok {
			return "", false
		}
		if inner.IsEmpty() {
			continue
		}
		rows = append(rows, inner.Elements())
	}
	sort.SliceStable(rows, func(a, b int) bool {
		return rowKey(rows[a]) < rowKey(rows[b])
	})
	parts := make([]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, scalarRepr(cell))
		}
		parts = append(parts, "["+strings.Join(cells, ", ")+"]")
	}
	return "[" + strings.Join(parts, ", ") + "]", true
}

func rowKey(row []runtime.Value) float64 {
	if len(row) == 0 {
		return math.Inf(1)
	}
	switch v := row[0].(type) {
	case runtime.IntegerValue:
		return float64(v.Val)
	case runtime.FloatValue:
		return v.Val
	}
	return math.Inf(1)
}

func scalarRepr(val runtime.Value) string {
	switch v := val.(type) {
	case runtime.IntegerValue:
		return strconv.FormatInt(v.Val, 10)
	case runtime.FloatValue:
		return strconv.FormatFloat(v.Val, 'g', -1, 64)
	case runtime.StringValue:
		return "'" + v.Val + "'"
	default:
		return interpreter.FormatValue(val)
	}
}
