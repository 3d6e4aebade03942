// Package driver runs batches of algorithm invocations: it parses case
// files (text or JSON or YAML), executes each case against a compiled
// source, and writes the JSON results plus an optional tree appendix.
package driver

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// CaseKind discriminates the three case shapes a batch can contain.
type CaseKind int

const (
	// CaseCall invokes a named algorithm with arguments.
	CaseCall CaseKind = iota
	// CaseVarAssign evaluates an expression and binds a global variable;
	// it produces no output slot.
	CaseVarAssign
	// CaseExpr evaluates a bare expression and outputs its value.
	CaseExpr
)

// Case is one entry of a batch. Args elements are either decoded JSON
// values (numbers arrive as json.Number) or raw expression strings.
type Case struct {
	Kind  CaseKind
	Algo  string
	Args  []any
	Store string
	Var   string
	Value string
	Expr  string
}

// jsonCase is the wire shape of a case object.
type jsonCase struct {
	Type  string `json:"type,omitempty" yaml:"type,omitempty"`
	Algo  string `json:"algo,omitempty" yaml:"algo,omitempty"`
	Args  []any  `json:"args,omitempty" yaml:"args,omitempty"`
	Store string `json:"store,omitempty" yaml:"store,omitempty"`
	Var   string `json:"var,omitempty" yaml:"var,omitempty"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
	Expr  string `json:"expr,omitempty" yaml:"expr,omitempty"`
}

func (jc jsonCase) toCase() Case {
	switch jc.Type {
	case "var_assign":
		return Case{Kind: CaseVarAssign, Var: jc.Var, Value: jc.Value}
	case "dsl_expr":
		return Case{Kind: CaseExpr, Expr: jc.Expr}
	default:
		return Case{Kind: CaseCall, Algo: jc.Algo, Args: jc.Args, Store: jc.Store}
	}
}

var reCallOpen = regexp.MustCompile(`^([A-Za-z_]\w*)\s*\((.*)`)

// ParseInputFile reads a batch of cases. A `.yml`/`.yaml` file is a YAML
// case list; otherwise the whole file is tried as JSON (either a
// `{"cases": [...]}` object or a bare array) before falling back to the
// line-oriented text format.
func ParseInputFile(path string) ([]Case, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text := strings.TrimPrefix(string(raw), "\ufeff")

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return parseYAMLCases(text)
	}
	if cases, ok := parseJSONCases(text); ok {
		return cases, nil
	}
	return parseTextCases(text, filepath.Dir(path))
}

func parseJSONCases(text string) ([]Case, bool) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	var wrapper struct {
		Cases []json.RawMessage `json:"cases"`
	}
	if err := dec.Decode(&wrapper); err == nil && wrapper.Cases != nil {
		return decodeRawCases(wrapper.Cases), true
	}
	dec = json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	var array []json.RawMessage
	if err := dec.Decode(&array); err == nil {
		return decodeRawCases(array), true
	}
	return nil, false
}

func decodeRawCases(raws []json.RawMessage) []Case {
	cases := make([]Case, 0, len(raws))
	for _, raw := range raws {
		if c, err := decodeJSONCase(raw); err == nil {
			cases = append(cases, c)
		}
	}
	return cases
}

func decodeJSONCase(raw []byte) (Case, error) {
	dec := json.NewDecoder(strings.NewReader(string(raw)))
	dec.UseNumber()
	var jc jsonCase
	if err := dec.Decode(&jc); err != nil {
		return Case{}, err
	}
	if jc.Type == "" && jc.Algo == "" && jc.Expr == "" {
		return Case{}, fmt.Errorf("case object missing algo")
	}
	return jc.toCase(), nil
}

func parseYAMLCases(text string) ([]Case, error) {
	var wrapper struct {
		Cases []jsonCase `yaml:"cases"`
	}
	if err := yaml.Unmarshal([]byte(text), &wrapper); err == nil && wrapper.Cases != nil {
		cases := make([]Case, 0, len(wrapper.Cases))
		for _, jc := range wrapper.Cases {
			cases = append(cases, jc.toCase())
		}
		return cases, nil
	}
	var list []jsonCase
	if err := yaml.Unmarshal([]byte(text), &list); err != nil {
		return nil, fmt.Errorf("cases: parse yaml: %w", err)
	}
	cases := make([]Case, 0, len(list))
	for _, jc := range list {
		cases = append(cases, jc.toCase())
	}
	return cases, nil
}

// ParseExecCase parses one command-line invocation: an `@file` JSON
// include, an inline JSON case object, or the `Name: args` form.
func ParseExecCase(text string) (Case, error) {
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "@") {
		raw, err := os.ReadFile(strings.TrimSpace(trimmed[1:]))
		if err != nil {
			return Case{}, err
		}
		return decodeJSONCase(raw)
	}
	if c, err := decodeJSONCase([]byte(trimmed)); err == nil {
		return c, nil
	}
	if idx := strings.Index(trimmed, ":"); idx >= 0 {
		return Case{
			Kind: CaseCall,
			Algo: strings.TrimSpace(trimmed[:idx]),
			Args: splitArgTokens(trimmed[idx+1:]),
		}, nil
	}
	return Case{}, fmt.Errorf("cannot parse case %q", text)
}

// parseTextCases handles the line-oriented format: comments, @file
// includes, `Name: args` and `Name(args)` invocations with balanced
// multi-line continuation, variable assignments, and bare expressions.
func parseTextCases(text, baseDir string) ([]Case, error) {
	var cases []Case
	lines := strings.Split(text, "\n")
	i := 0
	for i < len(lines) {
		ln := strings.TrimSpace(lines[i])
		i++
		if ln == "" || strings.HasPrefix(ln, "#") {
			continue
		}

		if strings.HasPrefix(ln, "@") {
			fn := strings.TrimSpace(ln[1:])
			if !filepath.IsAbs(fn) {
				fn = filepath.Join(baseDir, fn)
			}
			if raw, err := os.ReadFile(fn); err == nil {
				if c, err := decodeJSONCase(raw); err == nil {
					cases = append(cases, c)
					continue
				}
			}
			continue
		}

		// `Name: args` has priority; the prefix must look like a bare
		// algorithm name, and `node(...)` expressions are excluded.
		if idx := strings.Index(ln, ":"); idx >= 0 {
			head := strings.TrimSpace(ln[:idx])
			if !strings.ContainsAny(head, "()") && !strings.HasPrefix(head, "node") {
				argsText := ln[idx+1:]
				argsText, i = continueBalanced(argsText, lines, i)
				cases = append(cases, Case{Kind: CaseCall, Algo: head, Args: splitArgTokens(argsText)})
				continue
			}
		}

		if m := reCallOpen.FindStringSubmatch(ln); m != nil {
			argsText := m[2]
			argsText, i = continueBalanced(argsText, lines, i)
			trimmed := strings.TrimRight(argsText, " \t")
			if strings.HasSuffix(trimmed, ")") {
				argsText = trimmed[:len(trimmed)-1]
			}
			cases = append(cases, Case{Kind: CaseCall, Algo: m[1], Args: splitArgTokens(argsText)})
			continue
		}

		if strings.Contains(ln, "node(") || strings.Contains(ln, "leaf") || strings.Contains(ln, "=") {
			stmt := ln
			stmt, i = continueBalanced(stmt, lines, i)
			if idx := strings.Index(stmt, "="); idx >= 0 {
				cases = append(cases, Case{
					Kind:  CaseVarAssign,
					Var:   strings.TrimSpace(stmt[:idx]),
					Value: strings.TrimSpace(stmt[idx+1:]),
				})
			} else if c, err := decodeJSONCase([]byte(stmt)); err == nil {
				cases = append(cases, c)
			} else {
				cases = append(cases, Case{Kind: CaseExpr, Expr: stmt})
			}
			continue
		}

		if c, err := decodeJSONCase([]byte(ln)); err == nil {
			cases = append(cases, c)
		}
	}
	return cases, nil
}

// continueBalanced appends further lines while the bracket depth of the
// accumulated text stays positive. It returns the text and the next
// line index.
func continueBalanced(text string, lines []string, next int) (string, int) {
	for bracketDepth(text) > 0 && next < len(lines) {
		text += "\n" + lines[next]
		next++
	}
	return text, next
}

func bracketDepth(s string) int {
	depth := 0
	for _, r := range s {
		switch r {
		case '[', '(', '{':
			depth++
		case ']', ')', '}':
			depth--
		}
	}
	return depth
}

// splitArgTokens splits an argument text on top-level commas. Each token
// is decoded as JSON when possible; otherwise it stays a raw string for
// the runner to evaluate as an expression.
func splitArgTokens(text string) []any {
	var args []any
	var cur strings.Builder
	depth := 0
	flush := func() {
		token := strings.TrimSpace(cur.String())
		cur.Reset()
		if token == "" {
			return
		}
		dec := json.NewDecoder(strings.NewReader(token))
		dec.UseNumber()
		var val any
		if err := dec.Decode(&val); err == nil && !dec.More() {
			args = append(args, val)
			return
		}
		args = append(args, token)
	}
	for _, r := range text {
		switch r {
		case '[', '(', '{':
			depth++
			cur.WriteRune(r)
		case ']', ')', '}':
			depth--
			cur.WriteRune(r)
		case ',':
			if depth == 0 {
				flush()
			} else {
				cur.WriteRune(r)
			}
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return args
}
