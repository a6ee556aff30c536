package plugin

import (
	"fmt"
	"path/filepath"

	"github.com/AgileCatalystDV/ai-threat-model/internal/catalog"
	"github.com/AgileCatalystDV/ai-threat-model/internal/model"
)

// threatFromPattern materializes a finding from a matched pattern.
// Severity comes from the plugin's static table, defaulting to medium
// for unmapped pattern IDs.
func threatFromPattern(pattern catalog.ThreatPattern, component model.Component, severities map[string]model.Severity) model.Threat {
	severity, ok := severities[pattern.ID]
	if !ok {
		severity = model.SeverityMedium
	}

	threat := model.NewThreat(pattern.Category, pattern.Framework, pattern.Title)
	threat.Description = pattern.Description
	threat.Severity = severity
	threat.AffectedComponents = []string{component.ID}
	threat.AttackVectors = pattern.AttackVectors
	threat.DetectionPatterns = pattern.DetectionPatterns
	threat.Mitigations = pattern.Materialize()
	return threat
}

// componentName resolves an endpoint ID to its component name, falling
// back to the raw ID when the component does not exist.
func componentName(system *model.SystemModel, id string) string {
	if c := system.GetComponent(id); c != nil {
		return c.Name
	}
	return id
}

// sensitiveFlowThreat flags a flow carrying confidential or restricted
// data without encryption. Returns nil when the flow is fine.
func sensitiveFlowThreat(flow model.DataFlow, system *model.SystemModel, category string, framework model.Framework, title string) *model.Threat {
	if flow.Encrypted || !flow.Sensitive() {
		return nil
	}

	threat := model.NewThreat(category, framework, title)
	threat.Description = fmt.Sprintf("Sensitive data (%s) is transmitted unencrypted between %s and %s",
		flow.EffectiveClassification(), componentName(system, flow.From), componentName(system, flow.To))
	threat.Severity = model.SeverityHigh
	threat.AffectedDataFlows = []string{flow.Ref()}
	return &threat
}

// agentToAgent reports whether both flow endpoints resolve to
// agent-typed components.
func agentToAgent(flow model.DataFlow, system *model.SystemModel) bool {
	from := system.GetComponent(flow.From)
	to := system.GetComponent(flow.To)
	return from != nil && to != nil && from.Type == model.TypeAgent && to.Type == model.TypeAgent
}

// overrideDir resolves a plugin's pattern override subdirectory under
// the configured root.
func overrideDir(patternsDir, subdir string) string {
	if patternsDir == "" {
		return ""
	}
	return filepath.Join(patternsDir, "ai", subdir)
}

// loadCatalog builds a pattern set from defaults plus any overrides
// found in the directory. Defaults are inserted first so an override
// with a matching ID replaces them in place.
func loadCatalog(defaults []catalog.ThreatPattern, dir string) *catalog.Set {
	set := catalog.NewSet(defaults...)
	if dir != "" {
		catalog.NewLoader(dir).LoadInto(set)
	}
	return set
}
