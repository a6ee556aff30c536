package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/AgileCatalystDV/ai-threat-model/internal/model"
	"github.com/AgileCatalystDV/ai-threat-model/internal/plugin"
)

func sampleResult() Result {
	return Result{
		System:             "Chat App",
		SystemType:         "llm-app",
		Framework:          "owasp-llm-top10-2025",
		ThreatCount:        2,
		ComponentsAnalyzed: 3,
		DataFlowsAnalyzed:  1,
		Threats: []model.Threat{
			{
				ID:                 "t-1",
				Category:           "LLM01",
				Title:              "Prompt Injection",
				Severity:           model.SeverityCritical,
				Description:        "Untrusted input reaches the prompt.",
				AffectedComponents: []string{"llm-1"},
				Mitigations: []model.Mitigation{
					{ID: "m-1", Description: "Validate inputs", Status: model.StatusProposed},
				},
			},
			{
				ID:                "t-2",
				Category:          "LLM06",
				Title:             "Sensitive Information Disclosure",
				AffectedDataFlows: []string{"app-1->db-1"},
			},
		},
	}
}

func TestFormatResult_JSON(t *testing.T) {
	out, err := FormatResult(sampleResult(), FormatJSON)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	var parsed Result
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if parsed.ThreatCount != 2 || len(parsed.Threats) != 2 {
		t.Errorf("unexpected parsed result: %+v", parsed)
	}
}

func TestFormatResult_Text(t *testing.T) {
	out, err := FormatResult(sampleResult(), FormatText)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	for _, want := range []string{
		"Chat App",
		"Found 2 threat(s)",
		"LLM01: Prompt Injection (Severity: critical)",
		"Components: llm-1",
		"Data flows: app-1->db-1",
		"[m-1] Validate inputs",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}

	// Threats without severity are shown as unassessed.
	if !strings.Contains(out, "(Severity: unassessed)") {
		t.Error("expected unassessed severity marker")
	}
}

func TestNewResult(t *testing.T) {
	system := &model.SystemModel{
		Name:      "Sys",
		Type:      model.SystemAgentic,
		Framework: model.FrameworkOWASPAgenticTop10,
		Components: []model.Component{
			{ID: "a", Name: "A", Type: model.TypeAgent},
		},
	}
	summary := plugin.AnalysisSummary{
		Threats:            []model.Threat{{ID: "t-1"}},
		ThreatCount:        1,
		ComponentsAnalyzed: 1,
	}

	r := NewResult(system, summary)
	if r.System != "Sys" || r.SystemType != "agentic-system" || r.ThreatCount != 1 {
		t.Errorf("unexpected result: %+v", r)
	}
}

func TestFormatValidation(t *testing.T) {
	ok := FormatValidation("llm-1", plugin.ValidationResult{Valid: true})
	if !strings.HasPrefix(ok, "✓ llm-1") {
		t.Errorf("unexpected valid output: %q", ok)
	}

	bad := FormatValidation("x-1", plugin.ValidationResult{
		Valid:    false,
		Errors:   []string{"component name is required"},
		Warnings: []string{"odd type"},
	})
	if !strings.HasPrefix(bad, "✗ x-1") {
		t.Errorf("unexpected invalid output: %q", bad)
	}
	if !strings.Contains(bad, "ERROR: component name is required") || !strings.Contains(bad, "WARN:  odd type") {
		t.Errorf("expected errors and warnings in output: %q", bad)
	}
}
