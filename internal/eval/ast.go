package eval

import (
	"fmt"
	"math"
	"strconv"
)

// Expr is a node of a parsed arithmetic expression
type Expr interface {
	Eval() float64
	String() string
}

// Number is a numeric literal
type Number float64

func (n Number) Eval() float64 {
	return float64(n)
}

func (n Number) String() string {
	return FormatNumber(float64(n))
}

// Negate is a unary minus
type Negate struct {
	Operand Expr
}

func (e *Negate) Eval() float64 {
	return -e.Operand.Eval()
}

func (e *Negate) String() string {
	return fmt.Sprintf("(-%s)", e.Operand)
}

// Binary is one of the four arithmetic operators applied to two operands
type Binary struct {
	Op          byte
	Left, Right Expr
}

func (e *Binary) Eval() float64 {
	x := e.Left.Eval()
	y := e.Right.Eval()
	switch e.Op {
	case '+':
		return x + y
	case '-':
		return x - y
	case '*':
		return x * y
	case '/':
		return x / y
	default:
		panic(fmt.Sprintf("eval: unknown operator %q", e.Op))
	}
}

func (e *Binary) String() string {
	return fmt.Sprintf("(%s %c %s)", e.Left, e.Op, e.Right)
}

func parseLiteral(literal string) (Number, error) {
	switch literal {
	case wordInfinity:
		return Number(math.Inf(1)), nil
	case wordNaN:
		return Number(math.NaN()), nil
	}
	v, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		// Overflowing literals still parse to ±Inf; anything else is malformed
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return Number(v), nil
		}
		return 0, fmt.Errorf("%w: bad number %q", ErrMalformedExpression, literal)
	}
	return Number(v), nil
}
