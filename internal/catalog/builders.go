package catalog

import (
	"github.com/AgileCatalystDV/ai-threat-model/internal/model"
)

// Builder helpers keep the default catalog data terse. Each framework
// gets its own constructor so the category always mirrors the ID.

func llmPattern(id, title, description string, detection, vectors []string, mitigations []PatternMitigation) ThreatPattern {
	return ThreatPattern{
		ID:                id,
		Category:          id,
		Framework:         model.FrameworkOWASPLLMTop10,
		Title:             title,
		Description:       description,
		DetectionPatterns: detection,
		AttackVectors:     vectors,
		Mitigations:       mitigations,
	}
}

func agenticPattern(id, title, description string, detection, vectors []string, mitigations []PatternMitigation) ThreatPattern {
	return ThreatPattern{
		ID:                id,
		Category:          id,
		Framework:         model.FrameworkOWASPAgenticTop10,
		Title:             title,
		Description:       description,
		DetectionPatterns: detection,
		AttackVectors:     vectors,
		Mitigations:       mitigations,
	}
}

func multiAgentPattern(id, title, description string, detection, vectors []string, mitigations []PatternMitigation) ThreatPattern {
	return ThreatPattern{
		ID:                id,
		Category:          id,
		Framework:         model.FrameworkCustom,
		Title:             title,
		Description:       description,
		DetectionPatterns: detection,
		AttackVectors:     vectors,
		Mitigations:       mitigations,
	}
}

func mitigation(id, description, implementation, priority string) PatternMitigation {
	return PatternMitigation{
		ID:             id,
		Description:    description,
		Implementation: implementation,
		Priority:       priority,
	}
}
