package results

import "github.com/averycrespi/calc-mcp/internal/keypad"

// KeyInfo describes one keypad key
type KeyInfo struct {
	Label    string `json:"label"`
	Category string `json:"category"`
	Hidden   bool   `json:"hidden,omitempty"`
}

// GetKeypadToolResult represents the result of the get_keypad tool
type GetKeypadToolResult struct {
	Message string      `json:"message"`
	Rows    [][]KeyInfo `json:"rows"`
}

// NewKeypadRows converts the keypad layout into its JSON form
func NewKeypadRows(rows [][]keypad.Key) [][]KeyInfo {
	converted := make([][]KeyInfo, len(rows))
	for i, row := range rows {
		converted[i] = make([]KeyInfo, len(row))
		for j, key := range row {
			converted[i][j] = KeyInfo{
				Label:    key.Label,
				Category: key.Category.String(),
				Hidden:   key.Hidden(),
			}
		}
	}
	return converted
}
