// Package parser compiles line-oriented pseudocode into algorithm
// definitions: it splits the source at `Algorithm` headers, strips step
// labels and specification comments, and parses each body once into a
// statement tree.
package parser

import (
	"regexp"
	"strings"

	"pseudo/interpreter-go/pkg/ast"
	"pseudo/interpreter-go/pkg/runtime"
)

var (
	reAlgorithmLine = regexp.MustCompile(`^\s*Algorithm\b`)
	reHeader        = regexp.MustCompile(`^\s*Algorithm\s*:?\s*([A-Za-z_]\w*)\s*\((.*?)\)\s*$`)
	reStepLabel     = regexp.MustCompile(`^(?i)(?:step\s*\d+\s*:|\d+\s*:)\s*`)
	reSpecComment   = regexp.MustCompile(`^(?i)(?:requires|returns)\b`)
)

// Compile splits raw pseudocode into algorithm definitions. Definitions
// are returned in source order; a later definition with the same name is
// meant to overwrite an earlier one at registration time.
func Compile(source string) ([]*ast.AlgorithmDefinition, error) {
	var defs []*ast.AlgorithmDefinition
	for _, block := range splitBlocks(source) {
		def, err := compileBlock(block)
		if err != nil {
			return nil, err
		}
		if def != nil {
			defs = append(defs, def)
		}
	}
	return defs, nil
}

// splitBlocks groups source lines into blocks, each starting at an
// `Algorithm` header line. Leading lines before the first header form
// their own block and fail header parsing.
func splitBlocks(source string) [][]string {
	var blocks [][]string
	var current []string
	for _, line := range strings.Split(source, "\n") {
		if reAlgorithmLine.MatchString(line) && len(current) > 0 {
			blocks = append(blocks, current)
			current = nil
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}
	return blocks
}

func compileBlock(block []string) (*ast.AlgorithmDefinition, error) {
	var lines []string
	for _, ln := range block {
		if strings.TrimSpace(ln) != "" {
			lines = append(lines, ln)
		}
	}
	if len(lines) == 0 {
		return nil, nil
	}
	name, params, err := parseHeader(lines[0])
	if err != nil {
		return nil, err
	}
	var body []string
	for _, ln := range lines[1:] {
		stripped := strings.TrimSpace(ln)
		stripped = reStepLabel.ReplaceAllString(stripped, "")
		if reSpecComment.MatchString(stripped) {
			continue
		}
		if stripped == "" {
			continue
		}
		body = append(body, stripped)
	}
	stmts, err := ParseStatements(body)
	if err != nil {
		return nil, err
	}
	return ast.NewAlgorithmDefinition(name, params, stmts), nil
}

func parseHeader(line string) (string, []string, error) {
	m := reHeader.FindStringSubmatch(line)
	if m == nil {
		return "", nil, &runtime.CompilationError{Message: "invalid algorithm header", Line: strings.TrimSpace(line)}
	}
	name := m[1]
	var params []string
	if strings.TrimSpace(m[2]) != "" {
		seen := make(map[string]bool)
		for _, p := range strings.Split(m[2], ",") {
			p = strings.TrimSpace(p)
			if !reIdent.MatchString(p) {
				return "", nil, &runtime.CompilationError{Message: "invalid parameter name", Line: strings.TrimSpace(line)}
			}
			if seen[p] {
				return "", nil, &runtime.CompilationError{Message: "duplicate parameter name", Line: strings.TrimSpace(line)}
			}
			seen[p] = true
			params = append(params, p)
		}
	}
	return name, params, nil
}
