// Package report renders analysis results for display: JSON for
// machine consumers and a text layout for humans. It also exposes a
// token counter so agent-facing output can be budgeted.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/AgileCatalystDV/ai-threat-model/internal/model"
	"github.com/AgileCatalystDV/ai-threat-model/internal/plugin"
)

// OutputFormat specifies the output format.
type OutputFormat string

// Output format constants.
const (
	FormatJSON OutputFormat = "json"
	FormatText OutputFormat = "text"
)

// Result is the displayable outcome of an analysis run.
type Result struct {
	System             string         `json:"system"`
	SystemType         string         `json:"system_type"`
	Framework          string         `json:"framework"`
	ThreatCount        int            `json:"threat_count"`
	TokenCount         int            `json:"token_count,omitempty"`
	ComponentsAnalyzed int            `json:"components_analyzed"`
	DataFlowsAnalyzed  int            `json:"data_flows_analyzed"`
	Threats            []model.Threat `json:"threats"`
}

// NewResult builds a displayable result from an analysis summary.
func NewResult(system *model.SystemModel, summary plugin.AnalysisSummary) Result {
	return Result{
		System:             system.Name,
		SystemType:         string(system.Type),
		Framework:          string(system.Framework),
		ThreatCount:        summary.ThreatCount,
		ComponentsAnalyzed: summary.ComponentsAnalyzed,
		DataFlowsAnalyzed:  summary.DataFlowsAnalyzed,
		Threats:            summary.Threats,
	}
}

// FormatResult renders a result for display.
func FormatResult(result Result, format OutputFormat) (string, error) {
	switch format {
	case FormatText:
		return formatText(result), nil
	default:
		return formatJSON(result)
	}
}

func formatJSON(result Result) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}

func formatText(result Result) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Threat analysis: %s (%s, %s)\n", result.System, result.SystemType, result.Framework))
	sb.WriteString(fmt.Sprintf("Found %d threat(s) across %d component(s) and %d data flow(s)\n",
		result.ThreatCount, result.ComponentsAnalyzed, result.DataFlowsAnalyzed))
	sb.WriteString(strings.Repeat("=", 50) + "\n\n")

	for i, t := range result.Threats {
		severity := string(t.Severity)
		if severity == "" {
			severity = "unassessed"
		}
		sb.WriteString(fmt.Sprintf("[%d] %s: %s (Severity: %s)\n", i+1, t.Category, t.Title, severity))
		sb.WriteString(strings.Repeat("-", 40) + "\n")

		if t.Description != "" {
			sb.WriteString(t.Description + "\n")
		}
		if len(t.AffectedComponents) > 0 {
			sb.WriteString(fmt.Sprintf("Components: %s\n", strings.Join(t.AffectedComponents, ", ")))
		}
		if len(t.AffectedDataFlows) > 0 {
			sb.WriteString(fmt.Sprintf("Data flows: %s\n", strings.Join(t.AffectedDataFlows, ", ")))
		}
		if t.ElicitationQuestion != "" {
			sb.WriteString(fmt.Sprintf("Question:   %s\n", t.ElicitationQuestion))
		}
		for _, m := range t.Mitigations {
			sb.WriteString(fmt.Sprintf("  - [%s] %s\n", m.ID, m.Description))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatValidation renders a component validation result.
func FormatValidation(componentID string, result plugin.ValidationResult) string {
	var sb strings.Builder

	status := "✓"
	if !result.Valid {
		status = "✗"
	}
	sb.WriteString(fmt.Sprintf("%s %s\n", status, componentID))

	for _, e := range result.Errors {
		sb.WriteString(fmt.Sprintf("  ERROR: %s\n", e))
	}
	for _, w := range result.Warnings {
		sb.WriteString(fmt.Sprintf("  WARN:  %s\n", w))
	}

	return sb.String()
}
