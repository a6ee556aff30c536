package model

import (
	"github.com/google/uuid"
)

// RiskScore holds the five DREAD factors, each 0-10. Unset factors are
// nil and are excluded from the calculated average.
type RiskScore struct {
	Damage          *float64 `json:"damage,omitempty" yaml:"damage,omitempty"`
	Reproducibility *float64 `json:"reproducibility,omitempty" yaml:"reproducibility,omitempty"`
	Exploitability  *float64 `json:"exploitability,omitempty" yaml:"exploitability,omitempty"`
	AffectedUsers   *float64 `json:"affected_users,omitempty" yaml:"affected_users,omitempty"`
	Discoverability *float64 `json:"discoverability,omitempty" yaml:"discoverability,omitempty"`
	Calculated      *float64 `json:"calculated,omitempty" yaml:"calculated,omitempty"`
}

// Calculate averages the factors that are set. With no factors set the
// score is 0.0.
func (r RiskScore) Calculate() float64 {
	factors := []*float64{
		r.Damage,
		r.Reproducibility,
		r.Exploitability,
		r.AffectedUsers,
		r.Discoverability,
	}

	sum := 0.0
	count := 0
	for _, f := range factors {
		if f != nil {
			sum += *f
			count++
		}
	}
	if count == 0 {
		return 0.0
	}
	return sum / float64(count)
}

// Factor is a convenience for building optional RiskScore fields.
func Factor(v float64) *float64 {
	return &v
}

// Mitigation is a materialized mitigation strategy attached to a threat.
type Mitigation struct {
	ID             string           `json:"id" yaml:"id"`
	Description    string           `json:"description" yaml:"description"`
	Implementation string           `json:"implementation,omitempty" yaml:"implementation,omitempty"`
	Status         MitigationStatus `json:"status" yaml:"status"`
	Priority       string           `json:"priority,omitempty" yaml:"priority,omitempty"`
}

// NewMitigation creates a proposed mitigation with a generated ID.
func NewMitigation(description string) Mitigation {
	return Mitigation{
		ID:          uuid.NewString(),
		Description: description,
		Status:      StatusProposed,
	}
}

// Reference points to an external resource describing a threat.
type Reference struct {
	Title string `json:"title" yaml:"title"`
	URL   string `json:"url,omitempty" yaml:"url,omitempty"`
}

// Threat is a materialized finding produced by a plugin's analysis.
type Threat struct {
	ID                 string       `json:"id" yaml:"id"`
	Category           string       `json:"category" yaml:"category"`
	Framework          Framework    `json:"framework" yaml:"framework"`
	Title              string       `json:"title" yaml:"title"`
	Description        string       `json:"description,omitempty" yaml:"description,omitempty"`
	Severity           Severity     `json:"severity,omitempty" yaml:"severity,omitempty"`
	AffectedComponents []string     `json:"affected_components,omitempty" yaml:"affected_components,omitempty"`
	AffectedDataFlows  []string     `json:"affected_data_flows,omitempty" yaml:"affected_data_flows,omitempty"`
	AttackVectors      []string     `json:"attack_vectors,omitempty" yaml:"attack_vectors,omitempty"`
	DetectionPatterns  []string     `json:"detection_patterns,omitempty" yaml:"detection_patterns,omitempty"`
	Mitigations        []Mitigation `json:"mitigations,omitempty" yaml:"mitigations,omitempty"`
	RiskScore          *RiskScore   `json:"risk_score,omitempty" yaml:"risk_score,omitempty"`
	References         []Reference  `json:"references,omitempty" yaml:"references,omitempty"`

	// PLOT4AI specific fields
	LifecyclePhase      string `json:"lifecycle_phase,omitempty" yaml:"lifecycle_phase,omitempty"`
	ElicitationQuestion string `json:"elicitation_question,omitempty" yaml:"elicitation_question,omitempty"`
	Plot4AICardID       string `json:"plot4ai_card_id,omitempty" yaml:"plot4ai_card_id,omitempty"`
}

// NewThreat creates a threat with a generated unique ID.
func NewThreat(category string, framework Framework, title string) Threat {
	return Threat{
		ID:        uuid.NewString(),
		Category:  category,
		Framework: framework,
		Title:     title,
	}
}
