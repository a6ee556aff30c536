package plugin

import (
	"github.com/AgileCatalystDV/ai-threat-model/internal/catalog"
	"github.com/AgileCatalystDV/ai-threat-model/internal/matcher"
	"github.com/AgileCatalystDV/ai-threat-model/internal/model"
)

// llmTriggerTypes lists, per pattern, the component types that trigger
// it outright regardless of text heuristics.
var llmTriggerTypes = map[string][]model.ComponentType{
	"LLM01": {model.TypeLLM},
	"LLM02": {model.TypeLLM},
	"LLM06": {model.TypeLLM},
	"LLM09": {model.TypeLLM},
}

// llmSeverities assigns per-pattern severity for this framework.
var llmSeverities = map[string]model.Severity{
	"LLM01": model.SeverityCritical,
	"LLM02": model.SeverityHigh,
	"LLM03": model.SeverityMedium,
	"LLM04": model.SeverityHigh,
	"LLM05": model.SeverityMedium,
	"LLM06": model.SeverityCritical,
	"LLM07": model.SeverityHigh,
	"LLM08": model.SeverityHigh,
	"LLM09": model.SeverityMedium,
	"LLM10": model.SeverityHigh,
}

// LLMPlugin analyzes LLM applications against the OWASP LLM Top 10
// 2025 catalog.
type LLMPlugin struct {
	patterns *catalog.Set
}

// NewLLMPlugin builds the plugin, loading built-in patterns and any
// overrides under patternsDir.
func NewLLMPlugin(patternsDir string) *LLMPlugin {
	return &LLMPlugin{
		patterns: loadCatalog(catalog.DefaultLLMPatterns(), overrideDir(patternsDir, "llm-top10")),
	}
}

// SystemType returns the system type this plugin handles.
func (p *LLMPlugin) SystemType() model.SystemType {
	return model.SystemLLMApp
}

// SupportedFrameworks returns the frameworks this plugin supports.
func (p *LLMPlugin) SupportedFrameworks() []model.Framework {
	return []model.Framework{model.FrameworkOWASPLLMTop10}
}

// DetectThreats matches every catalog pattern against every component
// and flags unencrypted sensitive data flows.
func (p *LLMPlugin) DetectThreats(system *model.SystemModel) []model.Threat {
	var threats []model.Threat

	patterns := p.ThreatPatterns(system.Framework)

	for _, component := range system.Components {
		for _, pattern := range patterns {
			if matcher.Match(pattern, component, llmTriggerTypes[pattern.ID], nil) {
				threats = append(threats, threatFromPattern(pattern, component, llmSeverities))
			}
		}
	}

	for _, flow := range system.DataFlows {
		if t := sensitiveFlowThreat(flow, system, "LLM06", model.FrameworkOWASPLLMTop10, "Sensitive Information Disclosure"); t != nil {
			threats = append(threats, *t)
		}
	}

	return threats
}

// ComponentTypes returns the component types typical for LLM applications.
func (p *LLMPlugin) ComponentTypes() []model.ComponentType {
	return []model.ComponentType{
		model.TypeLLM,
		model.TypeAgent,
		model.TypeTool,
		model.TypeMemory,
		model.TypeDatabase,
		model.TypeAPIEndpoint,
		model.TypeAuthenticationService,
	}
}

// ValidateComponent checks a component against LLM-application expectations.
func (p *LLMPlugin) ValidateComponent(component model.Component) ValidationResult {
	return validateComponentFor(p, component, model.TypeLLM, "LLM applications")
}

// ThreatPatterns returns the catalog, optionally framework-filtered.
func (p *LLMPlugin) ThreatPatterns(framework model.Framework) []catalog.ThreatPattern {
	if framework == "" {
		return p.patterns.All()
	}
	return p.patterns.ByFramework(framework)
}
