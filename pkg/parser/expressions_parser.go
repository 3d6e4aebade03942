package parser

import (
	"fmt"
	"strconv"
	"strings"

	"pseudo/interpreter-go/pkg/ast"
	"pseudo/interpreter-go/pkg/runtime"
)

// ParseExpression compiles one expression text into an AST. The text is
// operator-normalized first; failures are reported as an EvaluationError
// carrying both the original and the normalized form.
func ParseExpression(text string) (ast.Expression, error) {
	expr, normalized, err := parseExpressionText(text)
	if err != nil {
		return nil, &runtime.EvaluationError{Text: strings.TrimSpace(text), Normalized: normalized, Err: err}
	}
	return expr, nil
}

// LenientExpression compiles one expression text, degrading a parse
// failure into an InvalidExpression node. Evaluating that node raises the
// corresponding EvaluationError, which preserves the runtime error
// timing of the line-oriented language: a malformed line only fails when
// (and if) control reaches it.
func LenientExpression(text string) ast.Expression {
	expr, normalized, err := parseExpressionText(text)
	if err != nil {
		return ast.NewInvalidExpression(strings.TrimSpace(text), normalized, err.Error())
	}
	return expr
}

func parseExpressionText(text string) (ast.Expression, string, error) {
	trimmed := strings.TrimSpace(text)
	normalized := NormalizeExpression(trimmed)
	toks, err := tokenize(normalized)
	if err != nil {
		return nil, normalized, err
	}
	p := &exprParser{toks: toks}
	expr, err := p.parseOr()
	if err != nil {
		return nil, normalized, err
	}
	if p.peek().kind != tokEOF {
		return nil, normalized, fmt.Errorf("unexpected token '%s'", p.peek().text)
	}
	return expr, normalized, nil
}

//-----------------------------------------------------------------------------
// Tokenizer
//-----------------------------------------------------------------------------

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokInt
	tokFloat
	tokString
	tokIdent
	tokOp
	tokLParen
	tokRParen
	tokComma
)

type token struct {
	kind tokenKind
	text string
}

func tokenize(input string) ([]token, error) {
	var toks []token
	runes := []rune(input)
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case r == ' ' || r == '\t':
			i++
		case r >= '0' && r <= '9':
			start := i
			kind := tokInt
			for i < len(runes) && runes[i] >= '0' && runes[i] <= '9' {
				i++
			}
			if i+1 < len(runes) && runes[i] == '.' && runes[i+1] >= '0' && runes[i+1] <= '9' {
				kind = tokFloat
				i++
				for i < len(runes) && runes[i] >= '0' && runes[i] <= '9' {
					i++
				}
			}
			toks = append(toks, token{kind: kind, text: string(runes[start:i])})
		case r == '\'' || r == '"':
			quote := r
			i++
			start := i
			for i < len(runes) && runes[i] != quote {
				i++
			}
			if i >= len(runes) {
				return nil, fmt.Errorf("unterminated string literal")
			}
			toks = append(toks, token{kind: tokString, text: string(runes[start:i])})
			i++
		case isIdentStart(r):
			start := i
			for i < len(runes) && isIdentPart(runes[i]) {
				i++
			}
			toks = append(toks, token{kind: tokIdent, text: string(runes[start:i])})
		case r == '(':
			toks = append(toks, token{kind: tokLParen, text: "("})
			i++
		case r == ')':
			toks = append(toks, token{kind: tokRParen, text: ")"})
			i++
		case r == ',':
			toks = append(toks, token{kind: tokComma, text: ","})
			i++
		default:
			if op, width := matchOperator(runes[i:]); op != "" {
				toks = append(toks, token{kind: tokOp, text: op})
				i += width
			} else {
				return nil, fmt.Errorf("unexpected character '%c'", r)
			}
		}
	}
	toks = append(toks, token{kind: tokEOF})
	return toks, nil
}

var twoCharOps = []string{"&&", "||", "<=", ">=", "==", "!="}

func matchOperator(runes []rune) (string, int) {
	if len(runes) >= 2 {
		pair := string(runes[:2])
		for _, op := range twoCharOps {
			if pair == op {
				return op, 2
			}
		}
	}
	switch runes[0] {
	case '+', '-', '*', '/', '%', '<', '>', '!':
		return string(runes[0]), 1
	}
	return "", 0
}

//-----------------------------------------------------------------------------
// Precedence climbing: or < and < not < comparison < additive < multiplicative
//-----------------------------------------------------------------------------

type exprParser struct {
	toks []token
	pos  int
}

func (p *exprParser) peek() token { return p.toks[p.pos] }

func (p *exprParser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *exprParser) acceptOp(ops ...string) (string, bool) {
	t := p.peek()
	if t.kind != tokOp {
		return "", false
	}
	for _, op := range ops {
		if t.text == op {
			p.next()
			return op, true
		}
	}
	return "", false
}

func (p *exprParser) parseOr() (ast.Expression, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for {
		if _, ok := p.acceptOp("||"); !ok {
			return left, nil
		}
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression("||", left, right)
	}
}

func (p *exprParser) parseAnd() (ast.Expression, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for {
		if _, ok := p.acceptOp("&&"); !ok {
			return left, nil
		}
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression("&&", left, right)
	}
}

func (p *exprParser) parseNot() (ast.Expression, error) {
	if _, ok := p.acceptOp("!"); ok {
		operand, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExpression("!", operand), nil
	}
	return p.parseComparison()
}

func (p *exprParser) parseComparison() (ast.Expression, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.acceptOp("<", "<=", ">", ">=", "==", "!=")
		if !ok {
			return left, nil
		}
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression(op, left, right)
	}
}

func (p *exprParser) parseAdditive() (ast.Expression, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.acceptOp("+", "-")
		if !ok {
			return left, nil
		}
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression(op, left, right)
	}
}

func (p *exprParser) parseMultiplicative() (ast.Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.acceptOp("*", "/", "%")
		if !ok {
			return left, nil
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression(op, left, right)
	}
}

func (p *exprParser) parseUnary() (ast.Expression, error) {
	if _, ok := p.acceptOp("-"); ok {
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExpression("-", operand), nil
	}
	return p.parsePrimary()
}

func (p *exprParser) parsePrimary() (ast.Expression, error) {
	t := p.next()
	switch t.kind {
	case tokInt:
		v, err := strconv.ParseInt(t.text, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid integer literal '%s'", t.text)
		}
		return ast.NewIntegerLiteral(v), nil
	case tokFloat:
		v, err := strconv.ParseFloat(t.text, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid float literal '%s'", t.text)
		}
		return ast.NewFloatLiteral(v), nil
	case tokString:
		return ast.NewStringLiteral(t.text), nil
	case tokIdent:
		if p.peek().kind == tokLParen {
			return p.parseCall(t.text)
		}
		switch t.text {
		case "Nil":
			return ast.NewEmptyListLiteral(), nil
		case "leaf":
			return ast.NewLeafLiteral(), nil
		case "true":
			return ast.NewBooleanLiteral(true), nil
		case "false":
			return ast.NewBooleanLiteral(false), nil
		}
		return ast.NewIdentifier(t.text), nil
	case tokLParen:
		expr, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if p.next().kind != tokRParen {
			return nil, fmt.Errorf("expected ')'")
		}
		return expr, nil
	case tokEOF:
		return nil, fmt.Errorf("unexpected end of expression")
	default:
		return nil, fmt.Errorf("unexpected token '%s'", t.text)
	}
}

// parseCall parses `name(arg, ...)`; the opening paren is the current
// token. Commas nested in parenthesized arguments bind to the inner call.
func (p *exprParser) parseCall(name string) (ast.Expression, error) {
	p.next() // consume '('
	var args []ast.Expression
	if p.peek().kind == tokRParen {
		p.next()
		return ast.NewCallExpression(ast.NewIdentifier(name), args), nil
	}
	for {
		arg, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		switch p.next().kind {
		case tokComma:
			continue
		case tokRParen:
			return ast.NewCallExpression(ast.NewIdentifier(name), args), nil
		default:
			return nil, fmt.Errorf("expected ',' or ')' in call to %s", name)
		}
	}
}
