package calc

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var lastNumberPattern = regexp.MustCompile(`\d+\.?\d*$`)

// LastNumber returns the trailing number token of s, or "" if s does not end in one
func LastNumber(s string) string {
	return lastNumberPattern.FindString(s)
}

// Buffer holds the expression as typed.
//
// A buffer never holds two operators in a row and never holds a second
// decimal point inside its trailing number token. Replace bypasses both
// rules; it installs evaluation results and the error marker.
type Buffer struct {
	text strings.Builder
}

// NewBuffer creates an empty buffer
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Append adds a token to the buffer and reports whether the contents changed.
// Runes that are not digits, the decimal point, or an operator glyph are ignored.
func (b *Buffer) Append(token rune) bool {
	switch {
	case token == Point:
		return b.appendPoint()
	case IsOperator(token):
		return b.appendOperator(token)
	case IsDigit(token):
		b.text.WriteRune(token)
		return true
	default:
		return false
	}
}

func (b *Buffer) appendPoint() bool {
	current := b.text.String()
	if strings.ContainsRune(LastNumber(current), Point) {
		return false
	}
	if last, ok := b.last(); !ok || IsOperator(last) {
		b.text.WriteRune('0')
	}
	b.text.WriteRune(Point)
	return true
}

func (b *Buffer) appendOperator(op rune) bool {
	last, ok := b.last()
	if !ok {
		if op != Subtract {
			return false
		}
		b.text.WriteRune(op)
		return true
	}
	if IsOperator(last) {
		if last == op {
			return false
		}
		b.trimLast()
	}
	b.text.WriteRune(op)
	return true
}

// DeleteLast removes the final rune and reports whether anything was removed
func (b *Buffer) DeleteLast() bool {
	if b.text.Len() == 0 {
		return false
	}
	b.trimLast()
	return true
}

// Clear empties the buffer
func (b *Buffer) Clear() {
	b.text.Reset()
}

// Replace overwrites the buffer with text
func (b *Buffer) Replace(text string) {
	b.text.Reset()
	b.text.WriteString(text)
}

// Contents returns the current text
func (b *Buffer) Contents() string {
	return b.text.String()
}

// Len returns the number of runes in the buffer
func (b *Buffer) Len() int {
	return utf8.RuneCountInString(b.text.String())
}

// IsEmpty reports whether the buffer holds no text
func (b *Buffer) IsEmpty() bool {
	return b.text.Len() == 0
}

func (b *Buffer) last() (rune, bool) {
	if b.text.Len() == 0 {
		return 0, false
	}
	r, _ := utf8.DecodeLastRuneInString(b.text.String())
	return r, true
}

func (b *Buffer) trimLast() {
	current := b.text.String()
	_, size := utf8.DecodeLastRuneInString(current)
	b.Replace(current[:len(current)-size])
}
