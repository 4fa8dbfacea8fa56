package eval

import (
	"fmt"
	"strings"
)

// TokenType identifies the kind of a lexical token
type TokenType int

const (
	TokenNumber TokenType = iota
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenEOF
)

var tokenNames = map[TokenType]string{
	TokenNumber: "number",
	TokenPlus:   "+",
	TokenMinus:  "-",
	TokenStar:   "*",
	TokenSlash:  "/",
	TokenEOF:    "end of input",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token is a single lexical token with its byte offset in the input
type Token struct {
	Type    TokenType
	Literal string
	Pos     int
}

func (t Token) String() string {
	return fmt.Sprintf("Token(%s, %q, %d)", t.Type, t.Literal, t.Pos)
}

// Words accepted in number position; these are what FormatNumber renders for
// non-finite values.
const (
	wordInfinity = "Infinity"
	wordNaN      = "NaN"
)

// Tokenize splits an arithmetic expression into tokens.
// The returned slice always ends with a TokenEOF token.
func Tokenize(input string) ([]Token, error) {
	var tokens []Token
	pos := 0
	for pos < len(input) {
		c := input[pos]
		switch {
		case c == '+':
			tokens = append(tokens, Token{Type: TokenPlus, Literal: "+", Pos: pos})
			pos++
		case c == '-':
			tokens = append(tokens, Token{Type: TokenMinus, Literal: "-", Pos: pos})
			pos++
		case c == '*':
			tokens = append(tokens, Token{Type: TokenStar, Literal: "*", Pos: pos})
			pos++
		case c == '/':
			tokens = append(tokens, Token{Type: TokenSlash, Literal: "/", Pos: pos})
			pos++
		case isDigit(c) || c == '.':
			end, err := scanNumber(input, pos)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, Token{Type: TokenNumber, Literal: input[pos:end], Pos: pos})
			pos = end
		case strings.HasPrefix(input[pos:], wordInfinity):
			tokens = append(tokens, Token{Type: TokenNumber, Literal: wordInfinity, Pos: pos})
			pos += len(wordInfinity)
		case strings.HasPrefix(input[pos:], wordNaN):
			tokens = append(tokens, Token{Type: TokenNumber, Literal: wordNaN, Pos: pos})
			pos += len(wordNaN)
		default:
			return nil, fmt.Errorf("%w: unexpected character %q at %d", ErrMalformedExpression, rune(c), pos)
		}
	}
	tokens = append(tokens, Token{Type: TokenEOF, Pos: len(input)})
	return tokens, nil
}

// scanNumber returns the end offset of the number literal starting at start:
// digits, an optional fraction, and an optional exponent.
func scanNumber(input string, start int) (int, error) {
	pos := start
	intDigits := 0
	for pos < len(input) && isDigit(input[pos]) {
		pos++
		intDigits++
	}

	fracDigits := 0
	if pos < len(input) && input[pos] == '.' {
		pos++
		for pos < len(input) && isDigit(input[pos]) {
			pos++
			fracDigits++
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return 0, fmt.Errorf("%w: lone decimal point at %d", ErrMalformedExpression, start)
	}

	if pos < len(input) && (input[pos] == 'e' || input[pos] == 'E') {
		pos++
		if pos < len(input) && (input[pos] == '+' || input[pos] == '-') {
			pos++
		}
		expDigits := 0
		for pos < len(input) && isDigit(input[pos]) {
			pos++
			expDigits++
		}
		if expDigits == 0 {
			return 0, fmt.Errorf("%w: missing exponent digits at %d", ErrMalformedExpression, pos)
		}
	}
	return pos, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
