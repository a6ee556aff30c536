package plugin

import (
	"fmt"
	"strings"

	"github.com/AgileCatalystDV/ai-threat-model/internal/catalog"
	"github.com/AgileCatalystDV/ai-threat-model/internal/model"
)

// MultiAgentPlugin analyzes systems of cooperating agents. Its checks
// are structural, over agent pairs and shared resources, rather than
// per-component text matching.
type MultiAgentPlugin struct {
	patterns *catalog.Set
}

// NewMultiAgentPlugin builds the plugin with built-ins plus overrides.
func NewMultiAgentPlugin(patternsDir string) *MultiAgentPlugin {
	return &MultiAgentPlugin{
		patterns: loadCatalog(catalog.DefaultMultiAgentPatterns(), overrideDir(patternsDir, "multi-agent")),
	}
}

// SystemType returns the system type this plugin handles.
func (p *MultiAgentPlugin) SystemType() model.SystemType {
	return model.SystemMultiAgent
}

// SupportedFrameworks returns the frameworks this plugin supports.
func (p *MultiAgentPlugin) SupportedFrameworks() []model.Framework {
	return []model.Framework{
		model.FrameworkOWASPAgenticTop10,
		model.FrameworkCustom,
	}
}

// DetectThreats requires at least two agent components; anything less
// is not a multi-agent system and yields no findings. It then checks
// isolation, orchestration, per-pair communication encryption, and
// shared-resource fan-in.
func (p *MultiAgentPlugin) DetectThreats(system *model.SystemModel) []model.Threat {
	agents := system.ComponentsOfType(model.TypeAgent)
	if len(agents) < 2 {
		return nil
	}

	var threats []model.Threat
	threats = append(threats, p.interactionThreats(agents, system)...)

	for _, flow := range system.DataFlows {
		if flow.Encrypted || !agentToAgent(flow, system) {
			continue
		}
		threat := model.NewThreat("MULTI-AGENT-01", model.FrameworkCustom, "Agent-to-Agent Communication Vulnerabilities")
		threat.Description = fmt.Sprintf("Agent communication between %s and %s is not encrypted", flow.From, flow.To)
		threat.Severity = model.SeverityHigh
		threat.AffectedDataFlows = []string{flow.Ref()}
		threats = append(threats, threat)
	}

	threats = append(threats, p.sharedResourceThreats(system)...)

	return threats
}

// interactionThreats covers the agent-population checks: isolation
// across all agents and orchestrator presence by name.
func (p *MultiAgentPlugin) interactionThreats(agents []model.Component, system *model.SystemModel) []model.Threat {
	var threats []model.Threat

	ids := make([]string, 0, len(agents))
	for _, a := range agents {
		ids = append(ids, a.ID)
	}

	isolation := model.NewThreat("MULTI-AGENT-04", model.FrameworkCustom, "Agent Isolation Failures")
	isolation.Description = fmt.Sprintf("Multiple agents (%d) detected. Ensure proper isolation between agents.", len(agents))
	isolation.Severity = model.SeverityMedium
	isolation.AffectedComponents = ids
	threats = append(threats, isolation)

	var orchestrators []string
	for _, c := range system.Components {
		name := strings.ToLower(c.Name)
		if strings.Contains(name, "orchestrat") || strings.Contains(name, "coordinator") {
			orchestrators = append(orchestrators, c.ID)
		}
	}
	if len(orchestrators) > 0 {
		orchestration := model.NewThreat("MULTI-AGENT-02", model.FrameworkCustom, "Orchestration Layer Vulnerabilities")
		orchestration.Description = "Orchestration layer detected. Ensure proper access controls and validation."
		orchestration.Severity = model.SeverityHigh
		orchestration.AffectedComponents = orchestrators
		threats = append(threats, orchestration)
	}

	return threats
}

// sharedResourceThreats flags shared-state fan-in: a memory-typed or
// shared/state-named component receiving flows from two or more
// distinct agents, encrypted or not.
func (p *MultiAgentPlugin) sharedResourceThreats(system *model.SystemModel) []model.Threat {
	sharedIDs := make(map[string]bool)
	for _, c := range system.Components {
		name := strings.ToLower(c.Name)
		if c.Type == model.TypeMemory || strings.Contains(name, "shared") || strings.Contains(name, "state") {
			sharedIDs[c.ID] = true
		}
	}
	if len(sharedIDs) == 0 {
		return nil
	}

	agentIDs := make(map[string]bool)
	for _, a := range system.ComponentsOfType(model.TypeAgent) {
		agentIDs[a.ID] = true
	}

	// resource ID -> contributing agent IDs, first-seen order
	contributors := make(map[string][]string)
	var resourceOrder []string
	for _, flow := range system.DataFlows {
		if !sharedIDs[flow.To] || !agentIDs[flow.From] {
			continue
		}
		if _, seen := contributors[flow.To]; !seen {
			resourceOrder = append(resourceOrder, flow.To)
		}
		if !containsString(contributors[flow.To], flow.From) {
			contributors[flow.To] = append(contributors[flow.To], flow.From)
		}
	}

	var threats []model.Threat
	for _, resourceID := range resourceOrder {
		agents := contributors[resourceID]
		if len(agents) < 2 {
			continue
		}
		threat := model.NewThreat("MULTI-AGENT-03", model.FrameworkCustom, "Shared State Vulnerabilities")
		threat.Description = fmt.Sprintf("Multiple agents (%d) access shared resource %s. Ensure proper synchronization.", len(agents), resourceID)
		threat.Severity = model.SeverityMedium
		threat.AffectedComponents = append([]string{resourceID}, agents...)
		threats = append(threats, threat)
	}

	return threats
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// ComponentTypes returns the component types typical for multi-agent systems.
func (p *MultiAgentPlugin) ComponentTypes() []model.ComponentType {
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

// ValidateComponent checks a component against multi-agent expectations.
func (p *MultiAgentPlugin) ValidateComponent(component model.Component) ValidationResult {
	return validateComponentFor(p, component, model.TypeAgent, "multi-agent systems")
}

// ThreatPatterns returns the catalog, optionally framework-filtered.
func (p *MultiAgentPlugin) ThreatPatterns(framework model.Framework) []catalog.ThreatPattern {
	if framework == "" {
		return p.patterns.All()
	}
	return p.patterns.ByFramework(framework)
}
