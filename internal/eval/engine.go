package eval

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Knetic/govaluate"
)

// Engine names accepted by NewEngine
const (
	EngineBuiltin   = "builtin"
	EngineGovaluate = "govaluate"
)

var (
	ErrUnknownEngine = errors.New("unknown evaluation engine")

	// errNoValue marks an evaluation that completed without producing a value
	errNoValue = errors.New("expression produced no value")
)

// Engine computes the value of a prepared arithmetic expression
type Engine interface {
	Name() string
	Eval(expr string) (float64, error)
}

// NewEngine returns the engine registered under name
func NewEngine(name string) (Engine, error) {
	switch name {
	case "", EngineBuiltin:
		return BuiltinEngine{}, nil
	case EngineGovaluate:
		return GovaluateEngine{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}
}

// EngineNames lists the names accepted by NewEngine
func EngineNames() []string {
	return []string{EngineBuiltin, EngineGovaluate}
}

// BuiltinEngine evaluates expressions with the package's own parser
type BuiltinEngine struct{}

func (BuiltinEngine) Name() string {
	return EngineBuiltin
}

func (BuiltinEngine) Eval(expr string) (float64, error) {
	tree, err := Parse(expr)
	if err != nil {
		return 0, err
	}
	return tree.Eval(), nil
}

// GovaluateEngine hands arithmetic to govaluate.
//
// The expression is first checked by Parse, so it accepts exactly the same
// language as BuiltinEngine. Number literals are passed to govaluate as
// parameters, which keeps literal syntax (exponents, Infinity, NaN) out of
// govaluate's lexer.
type GovaluateEngine struct{}

func (GovaluateEngine) Name() string {
	return EngineGovaluate
}

func (GovaluateEngine) Eval(expr string) (float64, error) {
	if _, err := Parse(expr); err != nil {
		return 0, err
	}
	tokens, err := Tokenize(expr)
	if err != nil {
		return 0, err
	}

	var rewritten strings.Builder
	params := make(map[string]interface{})
	for _, tok := range tokens {
		switch tok.Type {
		case TokenEOF:
		case TokenNumber:
			value, err := parseLiteral(tok.Literal)
			if err != nil {
				return 0, err
			}
			name := "n" + strconv.Itoa(len(params))
			params[name] = float64(value)
			rewritten.WriteString(name)
		default:
			rewritten.WriteString(" " + tok.Literal + " ")
		}
	}

	expression, err := govaluate.NewEvaluableExpression(rewritten.String())
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedExpression, err)
	}
	result, err := expression.Evaluate(params)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedExpression, err)
	}
	switch v := result.(type) {
	case nil:
		return 0, errNoValue
	case float64:
		return v, nil
	default:
		return 0, fmt.Errorf("%w: non-numeric result %T", ErrMalformedExpression, result)
	}
}
