package results

// EvaluateExpressionToolArgs represents the arguments for the evaluate_expression tool
type EvaluateExpressionToolArgs struct {
	Expression string `json:"expression"`
}

// EvaluateExpressionToolResult represents the result of the evaluate_expression tool
type EvaluateExpressionToolResult struct {
	Arguments EvaluateExpressionToolArgs `json:"arguments"`
	Message   string                     `json:"message"`
	// Typed is the buffer after sanitization, before evaluation
	Typed  string     `json:"typed"`
	Result EvalResult `json:"result"`
}
