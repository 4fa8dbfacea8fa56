package calc

// Operator glyphs as they appear in the buffer and on the keypad
const (
	Add      = '+'
	Subtract = '-'
	Multiply = '×'
	Divide   = '÷'
	Point    = '.'
)

// IsOperator reports whether r is one of the four operator glyphs
func IsOperator(r rune) bool {
	switch r {
	case Add, Subtract, Multiply, Divide:
		return true
	default:
		return false
	}
}

// IsDigit reports whether r is an ASCII decimal digit
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsToken reports whether r may be appended to a buffer
func IsToken(r rune) bool {
	return IsDigit(r) || IsOperator(r) || r == Point
}
