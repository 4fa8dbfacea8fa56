package keypad

import (
	"fmt"
	"strings"

	"github.com/averycrespi/calc-mcp/internal/calc"
)

// Category groups keys by how the calculator handles them
type Category int

const (
	CategoryNone Category = iota
	CategoryDigit
	CategoryOperator
	CategoryDecimal
	CategoryClear
	CategoryDelete
	CategoryEvaluate
)

var categoryNames = map[Category]string{
	CategoryNone:     "none",
	CategoryDigit:    "digit",
	CategoryOperator: "operator",
	CategoryDecimal:  "decimal",
	CategoryClear:    "clear",
	CategoryDelete:   "delete",
	CategoryEvaluate: "evaluate",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Button labels for the non-character keys
const (
	LabelClear    = "AC"
	LabelDelete   = "⌫"
	LabelEvaluate = "="
)

// Key is a logical calculator key.
// Symbol is the rune appended to the buffer; zero for control keys.
type Key struct {
	Label    string
	Category Category
	Symbol   rune
}

// Hidden reports whether the key is an empty layout cell
func (k Key) Hidden() bool {
	return k.Category == CategoryNone
}

// Layout is the keypad grid, row by row. Empty labels are hidden cells.
var Layout = [][]string{
	{LabelClear, "", "", LabelDelete},
	{"7", "8", "9", "÷"},
	{"4", "5", "6", "×"},
	{"1", "2", "3", "-"},
	{"0", ".", LabelEvaluate, "+"},
}

// Rows returns the layout resolved to keys
func Rows() [][]Key {
	rows := make([][]Key, len(Layout))
	for i, labels := range Layout {
		rows[i] = make([]Key, len(labels))
		for j, label := range labels {
			key, _ := Lookup(label)
			rows[i][j] = key
		}
	}
	return rows
}

// Keyboard names for control keys, matched case-insensitively
var namedKeys = map[string]Key{
	"enter":     {Label: LabelEvaluate, Category: CategoryEvaluate},
	"return":    {Label: LabelEvaluate, Category: CategoryEvaluate},
	"backspace": {Label: LabelDelete, Category: CategoryDelete},
	"escape":    {Label: LabelClear, Category: CategoryClear},
	"esc":       {Label: LabelClear, Category: CategoryClear},
	"ac":        {Label: LabelClear, Category: CategoryClear},
}

// Lookup maps a button label or keyboard key name to a Key.
// The ASCII operators "*" and "/" resolve to the "×" and "÷" keys.
func Lookup(name string) (Key, bool) {
	switch name {
	case "":
		return Key{}, false
	case LabelEvaluate:
		return Key{Label: LabelEvaluate, Category: CategoryEvaluate}, true
	case LabelDelete:
		return Key{Label: LabelDelete, Category: CategoryDelete}, true
	case "*":
		name = string(calc.Multiply)
	case "/":
		name = string(calc.Divide)
	}

	if r, ok := singleRune(name); ok {
		switch {
		case calc.IsDigit(r):
			return Key{Label: name, Category: CategoryDigit, Symbol: r}, true
		case calc.IsOperator(r):
			return Key{Label: name, Category: CategoryOperator, Symbol: r}, true
		case r == calc.Point:
			return Key{Label: name, Category: CategoryDecimal, Symbol: r}, true
		}
	}

	key, ok := namedKeys[strings.ToLower(name)]
	return key, ok
}

func singleRune(s string) (rune, bool) {
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, false
	}
	return runes[0], true
}
