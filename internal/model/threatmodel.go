package model

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Metadata describes a threat model document.
type Metadata struct {
	Version     string     `json:"version" yaml:"version"`
	Created     *time.Time `json:"created,omitempty" yaml:"created,omitempty"`
	Updated     *time.Time `json:"updated,omitempty" yaml:"updated,omitempty"`
	Author      string     `json:"author,omitempty" yaml:"author,omitempty"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
}

// VisualizationNode is node placement data for UI rendering.
type VisualizationNode struct {
	ID        string   `json:"id" yaml:"id"`
	X         *float64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y         *float64 `json:"y,omitempty" yaml:"y,omitempty"`
	Type      string   `json:"type,omitempty" yaml:"type,omitempty"`
	Label     string   `json:"label,omitempty" yaml:"label,omitempty"`
	Threats   []string `json:"threats,omitempty" yaml:"threats,omitempty"`
	RiskLevel string   `json:"risk_level,omitempty" yaml:"risk_level,omitempty"`
}

// VisualizationEdge is edge display data for UI rendering.
type VisualizationEdge struct {
	From               string             `json:"from" yaml:"from"`
	To                 string             `json:"to" yaml:"to"`
	Label              string             `json:"label,omitempty" yaml:"label,omitempty"`
	Threats            []string           `json:"threats,omitempty" yaml:"threats,omitempty"`
	DataClassification DataClassification `json:"data_classification,omitempty" yaml:"data_classification,omitempty"`
}

// Visualization carries layout data on the document. The core never
// renders it; it only round-trips.
type Visualization struct {
	Layout string              `json:"layout" yaml:"layout"`
	Nodes  []VisualizationNode `json:"nodes,omitempty" yaml:"nodes,omitempty"`
	Edges  []VisualizationEdge `json:"edges,omitempty" yaml:"edges,omitempty"`
}

// ThreatModel is the aggregate root: one system, its identified
// threats, and document metadata. A model can exist in an invalid
// state; Validate reports problems and callers decide how to react.
type ThreatModel struct {
	Metadata      Metadata       `json:"metadata" yaml:"metadata"`
	System        SystemModel    `json:"system" yaml:"system"`
	Threats       []Threat       `json:"threats" yaml:"threats"`
	Visualization *Visualization `json:"visualization,omitempty" yaml:"visualization,omitempty"`
}

// Load reads a threat model from a JSON file.
func Load(path string) (*ThreatModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read threat model: %w", err)
	}

	var tm ThreatModel
	if err := json.Unmarshal(data, &tm); err != nil {
		return nil, fmt.Errorf("failed to parse threat model: %w", err)
	}
	return &tm, nil
}

// Save writes the threat model to a JSON file, stamping the updated
// timestamp first.
func (tm *ThreatModel) Save(path string) error {
	now := time.Now().UTC()
	tm.Metadata.Updated = &now

	data, err := json.MarshalIndent(tm, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal threat model: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write threat model: %w", err)
	}
	return nil
}

// Validate checks referential integrity: every data flow endpoint and
// every threat's affected component must resolve to a real component
// ID. Violations come back as human-readable strings, never errors.
func (tm *ThreatModel) Validate() []string {
	var errs []string

	componentIDs := make(map[string]bool, len(tm.System.Components))
	for _, c := range tm.System.Components {
		componentIDs[c.ID] = true
	}

	for _, f := range tm.System.DataFlows {
		if !componentIDs[f.From] {
			errs = append(errs, fmt.Sprintf("data flow references unknown component: %s", f.From))
		}
		if !componentIDs[f.To] {
			errs = append(errs, fmt.Sprintf("data flow references unknown component: %s", f.To))
		}
	}

	for _, t := range tm.Threats {
		for _, id := range t.AffectedComponents {
			if !componentIDs[id] {
				errs = append(errs, fmt.Sprintf("threat %s references unknown component: %s", t.ID, id))
			}
		}
	}

	return errs
}
