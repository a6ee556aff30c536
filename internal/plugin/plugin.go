// Package plugin contains the per-system-type analysis plugins, the
// plugin registry used for dispatch, and the versioned pattern
// registry.
package plugin

import (
	"github.com/AgileCatalystDV/ai-threat-model/internal/catalog"
	"github.com/AgileCatalystDV/ai-threat-model/internal/model"
)

// Plugin analyzes one kind of system. The variant set is closed: LLM
// applications, agentic systems, multi-agent systems, and the
// PLOT4AI deck walker.
type Plugin interface {
	// SystemType returns the system type this plugin handles.
	SystemType() model.SystemType

	// SupportedFrameworks returns the frameworks this plugin can apply.
	SupportedFrameworks() []model.Framework

	// DetectThreats analyzes the system and returns all findings.
	// Each call is a full recompute over the model.
	DetectThreats(system *model.SystemModel) []model.Threat

	// ComponentTypes returns the component types typical for this
	// system kind, used for validation warnings.
	ComponentTypes() []model.ComponentType

	// ValidateComponent checks a component against this system kind.
	ValidateComponent(component model.Component) ValidationResult

	// ThreatPatterns returns the plugin's catalog, filtered to one
	// framework when given, or the whole catalog for "".
	ThreatPatterns(framework model.Framework) []catalog.ThreatPattern
}

// ValidationResult is the outcome of component validation. Errors make
// the component invalid; warnings are advisory.
type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// AnalysisSummary is the convenience bundle returned by AnalyzeSystem.
type AnalysisSummary struct {
	Threats            []model.Threat `json:"threats"`
	ThreatCount        int            `json:"threat_count"`
	ComponentsAnalyzed int            `json:"components_analyzed"`
	DataFlowsAnalyzed  int            `json:"data_flows_analyzed"`
}

// AnalyzeSystem runs detection and wraps the result with counts.
func AnalyzeSystem(p Plugin, system *model.SystemModel) AnalysisSummary {
	threats := p.DetectThreats(system)
	return AnalysisSummary{
		Threats:            threats,
		ThreatCount:        len(threats),
		ComponentsAnalyzed: len(system.Components),
		DataFlowsAnalyzed:  len(system.DataFlows),
	}
}

// validateComponentFor applies the checks shared by the system-kind
// plugins: name required, unusual component type warned, and a
// missing-capabilities warning for the kind's focal type.
func validateComponentFor(p Plugin, component model.Component, focalType model.ComponentType, kind string) ValidationResult {
	errors := []string{}
	warnings := []string{}

	typical := false
	for _, t := range p.ComponentTypes() {
		if component.Type == t {
			typical = true
			break
		}
	}
	if !typical {
		warnings = append(warnings, "component type "+string(component.Type)+" may not be typical for "+kind)
	}

	if component.Name == "" {
		errors = append(errors, "component name is required")
	}

	if component.Type == focalType && len(component.Capabilities) == 0 {
		warnings = append(warnings, string(focalType)+" component should specify capabilities")
	}

	return ValidationResult{Valid: len(errors) == 0, Errors: errors, Warnings: warnings}
}
