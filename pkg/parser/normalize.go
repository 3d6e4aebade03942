package parser

import (
	"strings"
	"unicode"
)

// NormalizeExpression rewrites surface operator spellings to their
// canonical form: `mod` to `%`, `AND`/`&&` to `&&`, `OR`/`||` to `||`,
// `NOT` to `!`, `×` and the standalone token `X` to `*`, `≤`/`≥` to
// `<=`/`>=`. Semicolons are stripped. Rewriting is token-aware: nothing
// inside a string literal or inside a longer identifier is touched, so
// `modulo` and `Xray` survive intact.
func NormalizeExpression(expr string) string {
	var out strings.Builder
	runes := []rune(expr)
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case r == '\'' || r == '"':
			quote := r
			out.WriteRune(r)
			i++
			for i < len(runes) {
				out.WriteRune(runes[i])
				if runes[i] == quote {
					i++
					break
				}
				i++
			}
		case isIdentStart(r):
			start := i
			for i < len(runes) && isIdentPart(runes[i]) {
				i++
			}
			out.WriteString(normalizeWord(string(runes[start:i])))
		case r == '×':
			out.WriteRune('*')
			i++
		case r == '≤':
			out.WriteString("<=")
			i++
		case r == '≥':
			out.WriteString(">=")
			i++
		case r == ';':
			i++
		default:
			out.WriteRune(r)
			i++
		}
	}
	return out.String()
}

func normalizeWord(word string) string {
	switch strings.ToLower(word) {
	case "mod":
		return "%"
	case "and":
		return "&&"
	case "or":
		return "||"
	case "not":
		return "!"
	}
	// Only the capital letter reads as a multiplication sign; lowercase
	// x is an ordinary variable name.
	if word == "X" {
		return "*"
	}
	return word
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
