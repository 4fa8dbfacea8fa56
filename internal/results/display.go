package results

// DisplayToolResult represents the result of the get_display and clear_display tools
type DisplayToolResult struct {
	Message string `json:"message"`
	Display string `json:"display"`
}
