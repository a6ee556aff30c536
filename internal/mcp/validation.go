package mcp

import (
	"fmt"
	"strings"
)

var knownTools = []string{
	"analyze_system",
	"validate_model",
	"list_patterns",
	"elicitation_questions",
}

// validateToolName validates the tool name against the exposed set
func validateToolName(name string) error {
	for _, tool := range knownTools {
		if name == tool {
			return nil
		}
	}
	return fmt.Errorf("unknown tool: %s (supported: %s)", name, strings.Join(knownTools, ", "))
}
