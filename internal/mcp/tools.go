package mcp

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/AgileCatalystDV/ai-threat-model/internal/model"
	"github.com/AgileCatalystDV/ai-threat-model/internal/plugin"
	"github.com/AgileCatalystDV/ai-threat-model/internal/report"
)

// toolsCallParams represents the tools/call request parameters
type toolsCallParams struct {
	Name      string                 `json:"name"`
	Arguments map[string]interface{} `json:"arguments"`
}

// toolDefinitions returns the MCP tool definitions exposed by the server.
func toolDefinitions() []map[string]interface{} {
	modelSchema := map[string]interface{}{
		"type":        "object",
		"description": "A threat model document: system (name, type, components, data_flows), metadata, threats",
	}

	return []map[string]interface{}{
		{
			"name":        "analyze_system",
			"description": "Analyze a threat model against the catalogs for its system type (OWASP LLM Top 10, OWASP Agentic Top 10, multi-agent) or walk the PLOT4AI deck. Returns detected threats with severity, attack vectors, and mitigations.",
			"inputSchema": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"model": modelSchema,
					"framework": map[string]interface{}{
						"type":        "string",
						"description": "Framework override; use 'plot4ai' for the deck walk",
					},
					"phase": map[string]interface{}{
						"type":        "string",
						"description": "PLOT4AI lifecycle phase filter (e.g. Design)",
					},
					"category": map[string]interface{}{
						"type":        "string",
						"description": "PLOT4AI category filter",
					},
					"aitype": map[string]interface{}{
						"type":        "string",
						"description": "PLOT4AI AI-type filter",
					},
					"answers": map[string]interface{}{
						"type":        "object",
						"description": "Elicitation answers keyed by PLOT4AI card ID (yes/no/maybe)",
					},
				},
				"required":             []string{"model"},
				"additionalProperties": false,
			},
		},
		{
			"name":        "validate_model",
			"description": "Validate a threat model: referential integrity plus per-component checks for the system's plugin.",
			"inputSchema": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"model": modelSchema,
				},
				"required":             []string{"model"},
				"additionalProperties": false,
			},
		},
		{
			"name":        "list_patterns",
			"description": "List the threat patterns a plugin applies for a system type, optionally filtered to one framework.",
			"inputSchema": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"system_type": map[string]interface{}{
						"type":        "string",
						"description": "System type (e.g. llm-app, agentic-system, multi-agent)",
					},
					"framework": map[string]interface{}{
						"type":        "string",
						"description": "Framework filter (empty lists the whole catalog)",
					},
				},
				"required":             []string{"system_type"},
				"additionalProperties": false,
			},
		},
		{
			"name":        "elicitation_questions",
			"description": "List PLOT4AI elicitation questions, optionally filtered by lifecycle phase, category, or AI type.",
			"inputSchema": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"phase":    map[string]interface{}{"type": "string"},
					"category": map[string]interface{}{"type": "string"},
					"aitype":   map[string]interface{}{"type": "string"},
				},
				"additionalProperties": false,
			},
		},
	}
}

// handleToolsList handles the tools/list request
func handleToolsList(s *Server, params json.RawMessage) (interface{}, error) {
	// Check if initialized
	if s.getState() != stateInitialized {
		return nil, fmt.Errorf("server not initialized")
	}

	tools := make([]interface{}, 0, 4)
	for _, tool := range toolDefinitions() {
		tools = append(tools, tool)
	}

	return map[string]interface{}{"tools": tools}, nil
}

// handleToolsCall handles the tools/call request
func handleToolsCall(s *Server, params json.RawMessage) (interface{}, error) {
	// Check if initialized
	if s.getState() != stateInitialized {
		return nil, fmt.Errorf("server not initialized")
	}

	// Parse parameters
	var p toolsCallParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("invalid tools/call params: %w", err)
	}

	// Validate tool name (protocol error)
	if err := validateToolName(p.Name); err != nil {
		return nil, err
	}

	var out interface{}
	var err error
	switch p.Name {
	case "analyze_system":
		out, err = s.runAnalyze(p.Arguments)
	case "validate_model":
		out, err = s.runValidate(p.Arguments)
	case "list_patterns":
		out, err = s.runListPatterns(p.Arguments)
	case "elicitation_questions":
		out, err = s.runQuestions(p.Arguments)
	}
	if err != nil {
		return createToolExecutionErrorResult(err.Error()), nil
	}

	rendered, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return createToolExecutionErrorResult(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}

	result := map[string]interface{}{
		"content": []interface{}{
			map[string]interface{}{
				"type": "text",
				"text": string(rendered),
			},
		},
		"isError": false,
	}

	return result, nil
}

// runAnalyze executes the analyze_system tool.
func (s *Server) runAnalyze(args map[string]interface{}) (interface{}, error) {
	tm, err := decodeModel(args)
	if err != nil {
		return nil, err
	}

	framework := tm.System.Framework
	if raw, _ := args["framework"].(string); raw != "" {
		framework, err = model.ParseFramework(raw)
		if err != nil {
			return nil, err
		}
	}

	var summary plugin.AnalysisSummary
	if framework == model.FrameworkPLOT4AI {
		p, ok := s.registry.GetByFramework(model.FrameworkPLOT4AI).(*plugin.Plot4AIPlugin)
		if !ok || p == nil {
			return nil, fmt.Errorf("PLOT4AI plugin is not registered")
		}

		filter := plugin.Plot4AIFilter{}
		filter.LifecyclePhase, _ = args["phase"].(string)
		filter.Category, _ = args["category"].(string)
		filter.AIType, _ = args["aitype"].(string)
		if rawAnswers, ok := args["answers"].(map[string]interface{}); ok {
			filter.Answers = make(map[string]string, len(rawAnswers))
			for id, v := range rawAnswers {
				if answer, ok := v.(string); ok {
					filter.Answers[id] = answer
				}
			}
		}

		threats := p.DetectThreatsFiltered(&tm.System, filter)
		summary = plugin.AnalysisSummary{
			Threats:            threats,
			ThreatCount:        len(threats),
			ComponentsAnalyzed: len(tm.System.Components),
			DataFlowsAnalyzed:  len(tm.System.DataFlows),
		}
	} else {
		p := s.registry.Get(tm.System.Type)
		if p == nil {
			log.Printf("warning: no plugin registered for system type %q", tm.System.Type)
			summary = plugin.AnalysisSummary{
				Threats:            []model.Threat{},
				ComponentsAnalyzed: len(tm.System.Components),
				DataFlowsAnalyzed:  len(tm.System.DataFlows),
			}
		} else {
			summary = plugin.AnalyzeSystem(p, &tm.System)
		}
	}

	result := report.NewResult(&tm.System, summary)
	if counter, err := report.NewTokenCounter(); err == nil {
		counter.Stamp(&result)
	}
	return result, nil
}

// componentValidation pairs a component with its validation outcome.
type componentValidation struct {
	ComponentID string                  `json:"component_id"`
	Result      plugin.ValidationResult `json:"result"`
}

// runValidate executes the validate_model tool.
func (s *Server) runValidate(args map[string]interface{}) (interface{}, error) {
	tm, err := decodeModel(args)
	if err != nil {
		return nil, err
	}

	out := map[string]interface{}{
		"reference_errors": tm.Validate(),
	}

	if p := s.registry.Get(tm.System.Type); p != nil {
		var components []componentValidation
		for _, c := range tm.System.Components {
			components = append(components, componentValidation{
				ComponentID: c.ID,
				Result:      p.ValidateComponent(c),
			})
		}
		out["components"] = components
	}

	return out, nil
}

// runListPatterns executes the list_patterns tool.
func (s *Server) runListPatterns(args map[string]interface{}) (interface{}, error) {
	rawType, _ := args["system_type"].(string)
	systemType, err := model.ParseSystemType(rawType)
	if err != nil {
		return nil, err
	}

	var framework model.Framework
	if raw, _ := args["framework"].(string); raw != "" {
		framework, err = model.ParseFramework(raw)
		if err != nil {
			return nil, err
		}
	}

	p := s.registry.Get(systemType)
	if framework == model.FrameworkPLOT4AI {
		p = s.registry.GetByFramework(framework)
	}
	if p == nil {
		return nil, fmt.Errorf("no plugin registered for system type %q", systemType)
	}

	return p.ThreatPatterns(framework), nil
}

// runQuestions executes the elicitation_questions tool.
func (s *Server) runQuestions(args map[string]interface{}) (interface{}, error) {
	p, ok := s.registry.GetByFramework(model.FrameworkPLOT4AI).(*plugin.Plot4AIPlugin)
	if !ok || p == nil {
		return nil, fmt.Errorf("PLOT4AI plugin is not registered")
	}

	filter := plugin.Plot4AIFilter{}
	filter.LifecyclePhase, _ = args["phase"].(string)
	filter.Category, _ = args["category"].(string)
	filter.AIType, _ = args["aitype"].(string)

	return p.ElicitationQuestions(filter), nil
}

// decodeModel re-marshals the model argument into a typed document.
func decodeModel(args map[string]interface{}) (*model.ThreatModel, error) {
	raw, ok := args["model"]
	if !ok {
		return nil, fmt.Errorf("model is required")
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid model: %w", err)
	}

	var tm model.ThreatModel
	if err := json.Unmarshal(data, &tm); err != nil {
		return nil, fmt.Errorf("invalid model: %w", err)
	}
	return &tm, nil
}

// createToolExecutionErrorResult creates a tool execution error result
func createToolExecutionErrorResult(message string) interface{} {
	return map[string]interface{}{
		"content": []interface{}{
			map[string]interface{}{
				"type": "text",
				"text": message,
			},
		},
		"isError": true,
	}
}
