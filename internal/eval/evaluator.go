package eval

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrorMarker is the display text for an expression that failed to evaluate
const ErrorMarker = "Error"

// ErrMalformedExpression is wrapped by every lexing, parsing and engine failure
var ErrMalformedExpression = errors.New("malformed expression")

// Kind classifies an evaluation result
type Kind int

const (
	// KindNone means there was nothing to evaluate; the caller keeps its state
	KindNone Kind = iota
	// KindEmpty means evaluation completed without a value; the display becomes empty
	KindEmpty
	KindNumber
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindEmpty:
		return "empty"
	case KindNumber:
		return "number"
	case KindError:
		return "error"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Result is the outcome of a single evaluation
type Result struct {
	Kind  Kind
	Value float64
	// Text is what replaces the buffer; unused for KindNone
	Text string
	// Err holds the cause for KindError
	Err error
}

// Replaces reports whether the result should overwrite the caller's buffer
func (r Result) Replaces() bool {
	return r.Kind != KindNone
}

var glyphReplacer = strings.NewReplacer("×", "*", "÷", "/")

// Prepare translates display glyphs to arithmetic symbols and drops a
// single trailing operator.
func Prepare(text string) string {
	expr := glyphReplacer.Replace(text)
	if n := len(expr); n > 0 && strings.ContainsRune("+-*/", rune(expr[n-1])) {
		expr = expr[:n-1]
	}
	return expr
}

// Evaluator turns buffer text into a Result
type Evaluator struct {
	engine Engine
	logger *slog.Logger
}

// Option configures an Evaluator
type Option func(*Evaluator)

// WithEngine sets the arithmetic engine
func WithEngine(engine Engine) Option {
	return func(e *Evaluator) {
		e.engine = engine
	}
}

// WithLogger sets the logger used for evaluation diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(e *Evaluator) {
		e.logger = logger
	}
}

// New creates an Evaluator; the builtin engine is used unless WithEngine is given
func New(opts ...Option) *Evaluator {
	e := &Evaluator{
		engine: BuiltinEngine{},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Engine returns the engine in use
func (e *Evaluator) Engine() Engine {
	return e.engine
}

// Evaluate computes the result for the given buffer text. Failures never
// escape; they become a KindError result carrying ErrorMarker.
func (e *Evaluator) Evaluate(text string) Result {
	if text == "" {
		return Result{Kind: KindNone}
	}

	expr := Prepare(text)
	if expr == "" {
		e.logger.Debug("Expression empty after dropping trailing operator", "input", text)
		return Result{Kind: KindEmpty}
	}

	value, err := e.run(expr)
	switch {
	case errors.Is(err, errNoValue):
		return Result{Kind: KindEmpty}
	case err != nil:
		e.logger.Debug("Expression evaluation failed",
			"input", text,
			"expression", expr,
			"engine", e.engine.Name(),
			"error", err)
		return Result{Kind: KindError, Text: ErrorMarker, Err: err}
	}

	result := Result{Kind: KindNumber, Value: value, Text: FormatNumber(value)}
	e.logger.Debug("Expression evaluated",
		"input", text,
		"engine", e.engine.Name(),
		"result", result.Text)
	return result
}

func (e *Evaluator) run(expr string) (value float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: engine panic: %v", ErrMalformedExpression, r)
		}
	}()
	return e.engine.Eval(expr)
}
