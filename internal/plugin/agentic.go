package plugin

import (
	"fmt"

	"github.com/AgileCatalystDV/ai-threat-model/internal/catalog"
	"github.com/AgileCatalystDV/ai-threat-model/internal/matcher"
	"github.com/AgileCatalystDV/ai-threat-model/internal/model"
)

// agenticTriggerTypes forces a match for the patterns tied to agent
// and tool components. AGENTIC02 triggering on any tool component is
// what guarantees tool-misuse findings whenever a tool is present.
var agenticTriggerTypes = map[string][]model.ComponentType{
	"AGENTIC01": {model.TypeAgent},
	"AGENTIC02": {model.TypeAgent, model.TypeTool},
	"AGENTIC05": {model.TypeAgent},
	"AGENTIC06": {model.TypeAgent},
}

var agenticSeverities = map[string]model.Severity{
	"AGENTIC01": model.SeverityCritical,
	"AGENTIC02": model.SeverityHigh,
	"AGENTIC03": model.SeverityHigh,
	"AGENTIC04": model.SeverityHigh,
	"AGENTIC05": model.SeverityHigh,
	"AGENTIC06": model.SeverityMedium,
	"AGENTIC07": model.SeverityHigh,
	"AGENTIC08": model.SeverityMedium,
	"AGENTIC09": model.SeverityHigh,
	"AGENTIC10": model.SeverityMedium,
}

// AgenticPlugin analyzes agentic systems against the OWASP Agentic
// Top 10 2026 catalog. Unlike the LLM plugin it hands the matcher the
// whole system, enabling the trust-level and data-flow context checks.
type AgenticPlugin struct {
	patterns *catalog.Set
}

// NewAgenticPlugin builds the plugin with built-ins plus overrides.
func NewAgenticPlugin(patternsDir string) *AgenticPlugin {
	return &AgenticPlugin{
		patterns: loadCatalog(catalog.DefaultAgenticPatterns(), overrideDir(patternsDir, "agentic-top10")),
	}
}

// SystemType returns the system type this plugin handles.
func (p *AgenticPlugin) SystemType() model.SystemType {
	return model.SystemAgentic
}

// SupportedFrameworks returns the frameworks this plugin supports.
func (p *AgenticPlugin) SupportedFrameworks() []model.Framework {
	return []model.Framework{model.FrameworkOWASPAgenticTop10}
}

// DetectThreats runs pattern matching per component, the agent
// communication check per flow, and the isolation check across agents.
func (p *AgenticPlugin) DetectThreats(system *model.SystemModel) []model.Threat {
	var threats []model.Threat

	patterns := p.ThreatPatterns(system.Framework)

	for _, component := range system.Components {
		for _, pattern := range patterns {
			if matcher.Match(pattern, component, agenticTriggerTypes[pattern.ID], system) {
				threats = append(threats, threatFromPattern(pattern, component, agenticSeverities))
			}
		}
	}

	// Any unencrypted agent-to-agent flow is flagged regardless of
	// data classification; agent trust is treated as fragile.
	for _, flow := range system.DataFlows {
		if flow.Encrypted || !agentToAgent(flow, system) {
			continue
		}
		threat := model.NewThreat("AGENTIC07", model.FrameworkOWASPAgenticTop10, "Insecure Communication")
		threat.Description = fmt.Sprintf("Agent communication between %s and %s is not encrypted",
			componentName(system, flow.From), componentName(system, flow.To))
		threat.Severity = model.SeverityHigh
		threat.AffectedDataFlows = []string{flow.Ref()}
		threats = append(threats, threat)
	}

	if t := p.isolationThreat(system); t != nil {
		threats = append(threats, *t)
	}

	return threats
}

// isolationThreat emits one finding naming every agent when two or
// more agents coexist.
func (p *AgenticPlugin) isolationThreat(system *model.SystemModel) *model.Threat {
	agents := system.ComponentsOfType(model.TypeAgent)
	if len(agents) < 2 {
		return nil
	}

	ids := make([]string, 0, len(agents))
	for _, a := range agents {
		ids = append(ids, a.ID)
	}

	threat := model.NewThreat("AGENTIC06", model.FrameworkOWASPAgenticTop10, "Insufficient Agent Isolation")
	threat.Description = fmt.Sprintf("Multiple agents (%d) detected. Ensure proper isolation between agents.", len(agents))
	threat.Severity = model.SeverityMedium
	threat.AffectedComponents = ids
	return &threat
}

// ComponentTypes returns the component types typical for agentic systems.
func (p *AgenticPlugin) ComponentTypes() []model.ComponentType {
	return []model.ComponentType{
		model.TypeAgent,
		model.TypeLLM,
		model.TypeTool,
		model.TypeMemory,
		model.TypeMCPServer,
		model.TypeDatabase,
		model.TypeAPIEndpoint,
		model.TypeAuthenticationService,
	}
}

// ValidateComponent checks a component against agentic-system expectations.
func (p *AgenticPlugin) ValidateComponent(component model.Component) ValidationResult {
	return validateComponentFor(p, component, model.TypeAgent, "agentic systems")
}

// ThreatPatterns returns the catalog, optionally framework-filtered.
func (p *AgenticPlugin) ThreatPatterns(framework model.Framework) []catalog.ThreatPattern {
	if framework == "" {
		return p.patterns.All()
	}
	return p.patterns.ByFramework(framework)
}
