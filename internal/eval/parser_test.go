package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tokens, err := Tokenize("12.5*-3e+2")
	require.NoError(t, err)

	expected := []Token{
		{Type: TokenNumber, Literal: "12.5", Pos: 0},
		{Type: TokenStar, Literal: "*", Pos: 4},
		{Type: TokenMinus, Literal: "-", Pos: 5},
		{Type: TokenNumber, Literal: "3e+2", Pos: 6},
		{Type: TokenEOF, Pos: 10},
	}
	assert.Equal(t, expected, tokens)
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "Letter", input: "3+x"},
		{name: "Lone point", input: "3+."},
		{name: "Missing exponent digits", input: "1e+"},
		{name: "Display glyph", input: "3×2"},
		{name: "Parenthesis", input: "(1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(tt.input)
			assert.ErrorIs(t, err, ErrMalformedExpression)
		})
	}
}

func TestParseTree(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Single number", input: "42", expected: "42"},
		{name: "Multiplication binds tighter", input: "1+2*3", expected: "(1 + (2 * 3))"},
		{name: "Left associative", input: "1-2-3", expected: "((1 - 2) - 3)"},
		{name: "Division chain", input: "8/4/2", expected: "((8 / 4) / 2)"},
		{name: "Unary minus", input: "-2*3", expected: "((-2) * 3)"},
		{name: "Unary after operator", input: "2--3", expected: "(2 - (-3))"},
		{name: "Leading point literal", input: ".5+1", expected: "(0.5 + 1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tree.String())
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "Empty", input: ""},
		{name: "Only operator", input: "*"},
		{name: "Dangling operator", input: "1+"},
		{name: "Adjacent numbers", input: "1.2.3"},
		{name: "Double star", input: "**"},
		{name: "Double unary", input: "--1"},
		{name: "Leading star", input: "*2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			assert.ErrorIs(t, err, ErrMalformedExpression)
		})
	}
}
