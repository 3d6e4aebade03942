package parser

import (
	"regexp"
	"strings"

	"pseudo/interpreter-go/pkg/ast"
	"pseudo/interpreter-go/pkg/runtime"
)

var (
	reIf       = regexp.MustCompile(`^(?i)if\s+(.*?)\s*(?:\bthen\b)?\s*$`)
	reElseIf   = regexp.MustCompile(`^(?i)elseif\s+(.*?)\s*(?:\bthen\b)?\s*$`)
	reElse     = regexp.MustCompile(`^(?i)else\s*$`)
	reEndIf    = regexp.MustCompile(`^(?i)endif\s*$`)
	reWhile    = regexp.MustCompile(`^(?i)while\s+(.*?)\s*(?:\bdo\b)?\s*$`)
	reEndWhile = regexp.MustCompile(`^(?i)endwhile\s*$`)
	reFor      = regexp.MustCompile(`^(?i)for\s+`)
	reForRange = regexp.MustCompile(`^(?i)for\s+(\w+)\s+from\s+(.*?)\s+to\s+(.*?)\s*(?:\bdo\b)?\s*$`)
	reForEach  = regexp.MustCompile(`^(?i)for\s+(\w+)\s+in\s+(.*?)\s*(?:\bdo\b)?\s*$`)
	reEndFor   = regexp.MustCompile(`^(?i)endfor\s*$`)
	reReturn   = regexp.MustCompile(`^(?i)return\b\s*(.*)$`)
	reLet      = regexp.MustCompile(`^(?i)let\s+(.*)$`)
	reIdent    = regexp.MustCompile(`^[A-Za-z_]\w*$`)
)

// ParseStatements turns an ordered sequence of statement lines into a
// statement tree. Block terminators are matched by recursion, so a
// same-kind construct nested inside another (if-in-if, while-in-while,
// for-in-for) pairs with its own terminator.
func ParseStatements(lines []string) ([]ast.Statement, error) {
	p := &statementParser{lines: lines}
	return p.parseSequence(nil)
}

type statementParser struct {
	lines []string
	pos   int
}

// parseSequence consumes statements until a line matching one of the
// stops (left unconsumed) or the end of input.
func (p *statementParser) parseSequence(stops []*regexp.Regexp) ([]ast.Statement, error) {
	var out []ast.Statement
	for p.pos < len(p.lines) {
		line := strings.TrimSpace(p.lines[p.pos])
		if line == "" {
			p.pos++
			continue
		}
		if matchesAny(line, stops) {
			return out, nil
		}
		stmt, err := p.parseStatement(line)
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			out = append(out, stmt)
		}
	}
	return out, nil
}

func (p *statementParser) parseStatement(line string) (ast.Statement, error) {
	switch {
	case reIf.MatchString(line) && hasKeyword(line, "if"):
		return p.parseIf(line)
	case reWhile.MatchString(line) && hasKeyword(line, "while"):
		return p.parseWhile(line)
	case reFor.MatchString(line):
		return p.parseFor(line)
	case reLet.MatchString(line):
		return p.parseLet(line)
	case strings.Contains(line, "←"):
		parts := strings.SplitN(line, "←", 2)
		p.pos++
		return ast.NewAssignmentStatement(ast.NewIdentifier(strings.TrimSpace(parts[0])), LenientExpression(parts[1])), nil
	case reReturn.MatchString(line) && hasKeyword(line, "return"):
		m := reReturn.FindStringSubmatch(line)
		arg := strings.TrimSpace(m[1])
		if arg == "" {
			p.pos++
			return ast.NewReturnStatement(nil), nil
		}
		p.pos++
		return ast.NewReturnStatement(LenientExpression(arg)), nil
	default:
		if idx := findAssignEq(line); idx >= 0 {
			target := strings.TrimSpace(line[:idx])
			if reIdent.MatchString(target) {
				p.pos++
				return ast.NewAssignmentStatement(ast.NewIdentifier(target), LenientExpression(line[idx+1:])), nil
			}
		}
		p.pos++
		return ast.NewExpressionStatement(LenientExpression(line)), nil
	}
}

func (p *statementParser) parseIf(line string) (ast.Statement, error) {
	m := reIf.FindStringSubmatch(line)
	if m == nil || strings.TrimSpace(m[1]) == "" {
		return nil, &runtime.CompilationError{Message: "malformed if", Line: line}
	}
	p.pos++
	branchStops := []*regexp.Regexp{reElseIf, reElse, reEndIf}
	body, err := p.parseSequence(branchStops)
	if err != nil {
		return nil, err
	}
	branches := []*ast.ConditionalBranch{ast.NewConditionalBranch(LenientExpression(m[1]), body)}
	sawElse := false
	for p.pos < len(p.lines) {
		current := strings.TrimSpace(p.lines[p.pos])
		if em := reElseIf.FindStringSubmatch(current); em != nil && !sawElse {
			if strings.TrimSpace(em[1]) == "" {
				return nil, &runtime.CompilationError{Message: "malformed elseif", Line: current}
			}
			p.pos++
			body, err := p.parseSequence(branchStops)
			if err != nil {
				return nil, err
			}
			branches = append(branches, ast.NewConditionalBranch(LenientExpression(em[1]), body))
			continue
		}
		if reElse.MatchString(current) && !sawElse {
			sawElse = true
			p.pos++
			body, err := p.parseSequence([]*regexp.Regexp{reEndIf})
			if err != nil {
				return nil, err
			}
			branches = append(branches, ast.NewConditionalBranch(nil, body))
			continue
		}
		break
	}
	if p.pos < len(p.lines) && reEndIf.MatchString(strings.TrimSpace(p.lines[p.pos])) {
		p.pos++
	}
	return ast.NewIfStatement(branches), nil
}

func (p *statementParser) parseWhile(line string) (ast.Statement, error) {
	m := reWhile.FindStringSubmatch(line)
	if m == nil || strings.TrimSpace(m[1]) == "" {
		return nil, &runtime.CompilationError{Message: "malformed while", Line: line}
	}
	p.pos++
	body, err := p.parseSequence([]*regexp.Regexp{reEndWhile})
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.lines) && reEndWhile.MatchString(strings.TrimSpace(p.lines[p.pos])) {
		p.pos++
	}
	return ast.NewWhileStatement(LenientExpression(m[1]), body), nil
}

func (p *statementParser) parseFor(line string) (ast.Statement, error) {
	if m := reForRange.FindStringSubmatch(line); m != nil {
		p.pos++
		body, err := p.parseSequence([]*regexp.Regexp{reEndFor})
		if err != nil {
			return nil, err
		}
		if p.pos < len(p.lines) && reEndFor.MatchString(strings.TrimSpace(p.lines[p.pos])) {
			p.pos++
		}
		return ast.NewForRangeStatement(ast.NewIdentifier(m[1]), LenientExpression(m[2]), LenientExpression(m[3]), body), nil
	}
	if m := reForEach.FindStringSubmatch(line); m != nil {
		p.pos++
		body, err := p.parseSequence([]*regexp.Regexp{reEndFor})
		if err != nil {
			return nil, err
		}
		if p.pos < len(p.lines) && reEndFor.MatchString(strings.TrimSpace(p.lines[p.pos])) {
			p.pos++
		}
		return ast.NewForEachStatement(ast.NewIdentifier(m[1]), LenientExpression(m[2]), body), nil
	}
	return nil, &runtime.CompilationError{Message: "malformed for loop", Line: line}
}

func (p *statementParser) parseLet(line string) (ast.Statement, error) {
	m := reLet.FindStringSubmatch(line)
	rest := strings.TrimSpace(m[1])
	idx := findAssignEq(rest)
	if idx < 0 {
		return nil, &runtime.CompilationError{Message: "malformed let", Line: line}
	}
	target := strings.TrimSpace(rest[:idx])
	if !reIdent.MatchString(target) {
		return nil, &runtime.CompilationError{Message: "malformed let", Line: line}
	}
	p.pos++
	return ast.NewAssignmentStatement(ast.NewIdentifier(target), LenientExpression(rest[idx+1:])), nil
}

func matchesAny(line string, stops []*regexp.Regexp) bool {
	for _, stop := range stops {
		if stop.MatchString(line) {
			return true
		}
	}
	return false
}

// hasKeyword guards regexp dispatch against identifiers that merely
// start with a keyword (`iffy = 1` is an assignment, not an if).
func hasKeyword(line, keyword string) bool {
	if len(line) < len(keyword) {
		return false
	}
	head := strings.ToLower(line[:len(keyword)])
	if head != keyword {
		return false
	}
	if len(line) == len(keyword) {
		return true
	}
	rest := rune(line[len(keyword)])
	return rest == ' ' || rest == '\t'
}

// findAssignEq locates a bare assignment '=' in a statement line,
// skipping the two-character operators ==, <=, >=, !=.
func findAssignEq(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] != '=' {
			continue
		}
		if i+1 < len(s) && s[i+1] == '=' {
			i++
			continue
		}
		if i > 0 {
			switch s[i-1] {
			case '=', '<', '>', '!':
				continue
			}
		}
		return i
	}
	return -1
}
