package eval

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		kind     Kind
		expected string
	}{
		{name: "Addition", input: "3+4", kind: KindNumber, expected: "7"},
		{name: "Precedence", input: "3+4×2", kind: KindNumber, expected: "11"},
		{name: "Left associative subtraction", input: "10-4-3", kind: KindNumber, expected: "3"},
		{name: "Left associative division", input: "8÷4÷2", kind: KindNumber, expected: "1"},
		{name: "Mixed precedence", input: "2×3+4×5", kind: KindNumber, expected: "26"},
		{name: "Leading minus", input: "-5+2", kind: KindNumber, expected: "-3"},
		{name: "Minus after operator", input: "3×-2", kind: KindNumber, expected: "-6"},
		{name: "Decimal result", input: "7÷2", kind: KindNumber, expected: "3.5"},
		{name: "Float rounding shown", input: "0.1+0.2", kind: KindNumber, expected: "0.30000000000000004"},
		{name: "Trailing point number", input: "5.+1", kind: KindNumber, expected: "6"},
		{name: "Trailing operator dropped", input: "3+", kind: KindNumber, expected: "3"},
		{name: "Trailing multiply dropped", input: "3×", kind: KindNumber, expected: "3"},
		{name: "Division by zero", input: "6÷0", kind: KindNumber, expected: "Infinity"},
		{name: "Negative division by zero", input: "-6÷0", kind: KindNumber, expected: "-Infinity"},
		{name: "Zero over zero", input: "0÷0", kind: KindNumber, expected: "NaN"},
		{name: "Infinity extended", input: "Infinity+1", kind: KindNumber, expected: "Infinity"},
		{name: "Exponent result extended", input: "1e+21×2", kind: KindNumber, expected: "2e+21"},
		{name: "Leading zeros are decimal", input: "007+1", kind: KindNumber, expected: "8"},
		{name: "Only an operator", input: "+", kind: KindEmpty, expected: ""},
		{name: "Only a minus", input: "-", kind: KindEmpty, expected: ""},
		{name: "Double star", input: "**", kind: KindError, expected: ErrorMarker},
		{name: "Consecutive operators", input: "3×÷2", kind: KindError, expected: ErrorMarker},
		{name: "Error marker", input: "Error", kind: KindError, expected: ErrorMarker},
		{name: "Extended error marker", input: "Error5", kind: KindError, expected: ErrorMarker},
		{name: "Double unary minus", input: "--3", kind: KindError, expected: ErrorMarker},
		{name: "Two decimal points", input: "1.2.3", kind: KindError, expected: ErrorMarker},
	}

	e := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := e.Evaluate(tt.input)
			assert.Equal(t, tt.kind, result.Kind, "kind for %q", tt.input)
			assert.Equal(t, tt.expected, result.Text, "text for %q", tt.input)
		})
	}
}

func TestEvaluateEmptyIsNoop(t *testing.T) {
	result := New().Evaluate("")
	assert.Equal(t, KindNone, result.Kind)
	assert.False(t, result.Replaces())
}

func TestEvaluateErrorWrapsMalformedExpression(t *testing.T) {
	result := New().Evaluate("3×÷2")
	require.Equal(t, KindError, result.Kind)
	assert.ErrorIs(t, result.Err, ErrMalformedExpression)
	assert.True(t, result.Replaces())
}

func TestEvaluateNumberValue(t *testing.T) {
	result := New().Evaluate("1÷4")
	require.Equal(t, KindNumber, result.Kind)
	assert.InDelta(t, 0.25, result.Value, 1e-12)
	assert.NoError(t, result.Err)
}

type panickingEngine struct{}

func (panickingEngine) Name() string { return "panicking" }

func (panickingEngine) Eval(string) (float64, error) {
	panic("boom")
}

func TestEvaluateRecoversEnginePanic(t *testing.T) {
	result := New(WithEngine(panickingEngine{})).Evaluate("1+1")
	assert.Equal(t, KindError, result.Kind)
	assert.Equal(t, ErrorMarker, result.Text)
	assert.ErrorIs(t, result.Err, ErrMalformedExpression)
}

func TestPrepare(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Glyphs translated", input: "6×3÷2", expected: "6*3/2"},
		{name: "Trailing plus dropped", input: "3+", expected: "3"},
		{name: "Trailing divide dropped", input: "3÷", expected: "3"},
		{name: "Only one operator dropped", input: "3+-", expected: "3+"},
		{name: "Nothing to drop", input: "3+4", expected: "3+4"},
		{name: "Lone minus", input: "-", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Prepare(tt.input))
		})
	}
}

func TestEnginesAgree(t *testing.T) {
	corpus := []string{
		"3+4",
		"3+4*2",
		"10-4-3",
		"8/4/2",
		"-5+2",
		"3*-2",
		"7/2",
		"0.1+0.2",
		"6/0",
		"-6/0",
		"1e+21*2",
		"Infinity-1",
		"2.5*4-1/8",
	}

	builtin := BuiltinEngine{}
	gv := GovaluateEngine{}
	for _, expr := range corpus {
		t.Run(expr, func(t *testing.T) {
			want, err := builtin.Eval(expr)
			require.NoError(t, err)
			got, err := gv.Eval(expr)
			require.NoError(t, err)
			assert.Equal(t, FormatNumber(want), FormatNumber(got))
		})
	}
}

func TestGovaluateEngineRejectsWhatParserRejects(t *testing.T) {
	for _, expr := range []string{"**", "3*/2", "2**3", "Error", "1.2.3"} {
		_, err := GovaluateEngine{}.Eval(expr)
		assert.ErrorIs(t, err, ErrMalformedExpression, "expression %q", expr)
	}
}

func TestEvaluateWithGovaluate(t *testing.T) {
	engine, err := NewEngine(EngineGovaluate)
	require.NoError(t, err)

	e := New(WithEngine(engine))
	assert.Equal(t, "11", e.Evaluate("3+4×2").Text)
	assert.Equal(t, "Infinity", e.Evaluate("6÷0").Text)
	assert.Equal(t, ErrorMarker, e.Evaluate("**").Text)
}

func TestGovaluateEngineEval(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{name: "Single literal", input: "5", expected: 5},
		{name: "Addition", input: "3+4", expected: 7},
		{name: "Leading minus", input: "-5+2", expected: -3},
		{name: "Divide by zero", input: "6/0", expected: math.Inf(1)},
		{name: "Exponent literal", input: "1e+21*2", expected: 2e21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := GovaluateEngine{}.Eval(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestNewEngine(t *testing.T) {
	for _, name := range EngineNames() {
		engine, err := NewEngine(name)
		require.NoError(t, err)
		assert.Equal(t, name, engine.Name())
	}

	engine, err := NewEngine("")
	require.NoError(t, err)
	assert.Equal(t, EngineBuiltin, engine.Name())

	_, err = NewEngine("javascript")
	assert.ErrorIs(t, err, ErrUnknownEngine)
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{name: "Integer", input: 7, expected: "7"},
		{name: "Negative integer", input: -42, expected: "-42"},
		{name: "Fraction", input: 3.5, expected: "3.5"},
		{name: "Float noise", input: sum(0.1, 0.2), expected: "0.30000000000000004"},
		{name: "Negative zero", input: math.Copysign(0, -1), expected: "0"},
		{name: "Large integer", input: 1e20, expected: "100000000000000000000"},
		{name: "Exponent threshold", input: 1e21, expected: "1e+21"},
		{name: "Large mantissa", input: 1.5e22, expected: "1.5e+22"},
		{name: "Small", input: 0.000001, expected: "0.000001"},
		{name: "Small exponent", input: 1e-7, expected: "1e-7"},
		{name: "Small mantissa", input: 1.5e-7, expected: "1.5e-7"},
		{name: "Infinity", input: math.Inf(1), expected: "Infinity"},
		{name: "Negative infinity", input: math.Inf(-1), expected: "-Infinity"},
		{name: "NaN", input: math.NaN(), expected: "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatNumber(tt.input))
		})
	}
}

func sum(a, b float64) float64 {
	return a + b
}
