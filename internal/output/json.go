package output

import (
	"encoding/json"
	"fmt"
	"os"
)

// JSONResult is the standard envelope for machine-readable command output.
type JSONResult struct {
	Status string      `json:"status"`          // "ok" or "error"
	Data   interface{} `json:"data,omitempty"`  // command-specific payload
	Error  string      `json:"error,omitempty"` // error message, if any
}

// JSON writes a structured JSON result to stdout. Use when --json is set.
func JSON(data interface{}) {
	writeJSON(JSONResult{Status: "ok", Data: data})
}

// JSONError writes an error result as JSON to stdout.
func JSONError(err error) {
	writeJSON(JSONResult{Status: "error", Error: err.Error()})
}

func writeJSON(result JSONResult) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		fmt.Fprintf(os.Stderr, "error encoding JSON output: %v\n", err)
	}
}
