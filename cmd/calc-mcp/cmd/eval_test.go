package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/averycrespi/calc-mcp/internal/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		display string
		typed   string
	}{
		{name: "Spaces skipped", expr: "3 + 4 * 2", display: "11", typed: "3+4×2"},
		{name: "Operator replaced", expr: "8+/2", display: "4", typed: "8÷2"},
		{name: "Empty after rules", expr: "*", display: "", typed: ""},
		{name: "Divide by zero", expr: "1/0", display: "Infinity", typed: "1÷0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			display, typed := evaluate(eval.New(), tt.expr)
			assert.Equal(t, tt.display, display)
			assert.Equal(t, tt.typed, typed)
		})
	}
}

func TestEvalCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"eval", "--log-level", "error", "--show-typed", "7", "/", "2"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		showTyped = false
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "7÷2\n3.5\n", out.String())
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "calc-mcp")
}

func TestEvalCommandLeadingMinus(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"eval", "--log-level", "error", "--", "-5+3"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "-2\n", out.String())
}

func TestEvalCommandErrorPrintedOnce(t *testing.T) {
	var errOut bytes.Buffer
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"eval", "--engine", "javascript", "1"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		require.NoError(t, rootCmd.PersistentFlags().Set("engine", "builtin"))
	})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
	assert.Equal(t, 1, strings.Count(errOut.String(), "failed to load config"))
}
