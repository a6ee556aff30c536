package model

import (
	"fmt"
	"strings"
)

// Component represents a single part of the system under review.
// Identity is the ID, which must be unique within a system.
type Component struct {
	ID           string        `json:"id" yaml:"id"`
	Name         string        `json:"name" yaml:"name"`
	Type         ComponentType `json:"type" yaml:"type"`
	Capabilities []string      `json:"capabilities,omitempty" yaml:"capabilities,omitempty"`
	TrustLevel   TrustLevel    `json:"trust_level,omitempty" yaml:"trust_level,omitempty"`
	Description  string        `json:"description,omitempty" yaml:"description,omitempty"`
}

// NewComponent builds a component, failing fast on an empty ID or an
// unknown component type. The ID is stored trimmed.
func NewComponent(id, name string, componentType ComponentType) (Component, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Component{}, fmt.Errorf("component ID cannot be empty")
	}
	if !componentTypes[componentType] {
		return Component{}, fmt.Errorf("invalid component type: %q", componentType)
	}
	return Component{
		ID:         id,
		Name:       name,
		Type:       componentType,
		TrustLevel: TrustUntrusted,
	}, nil
}

// Untrusted reports whether the component sits at the untrusted trust
// level. An unset level counts as untrusted.
func (c Component) Untrusted() bool {
	return c.TrustLevel == TrustUntrusted || c.TrustLevel == ""
}

// DataFlow is a directed edge between two components. Endpoints are
// component IDs and are not required to resolve at construction time;
// referential validity is checked by ThreatModel.Validate.
type DataFlow struct {
	From           string             `json:"from" yaml:"from"`
	To             string             `json:"to" yaml:"to"`
	DataType       string             `json:"data_type,omitempty" yaml:"data_type,omitempty"`
	Classification DataClassification `json:"classification,omitempty" yaml:"classification,omitempty"`
	Protocol       string             `json:"protocol,omitempty" yaml:"protocol,omitempty"`
	Encrypted      bool               `json:"encrypted" yaml:"encrypted"`
}

// Ref renders the flow's identity as "from->to". Flows carry no ID
// field of their own and are referenced elsewhere by this string.
func (f DataFlow) Ref() string {
	return f.From + "->" + f.To
}

// EffectiveClassification returns the flow's classification, defaulting
// an unset value to internal.
func (f DataFlow) EffectiveClassification() DataClassification {
	if f.Classification == "" {
		return ClassificationInternal
	}
	return f.Classification
}

// Sensitive reports whether the flow carries confidential or restricted data.
func (f DataFlow) Sensitive() bool {
	return f.EffectiveClassification().Sensitive()
}

// SystemModel describes the system being threat modeled: its
// components and the data flows between them. Lookups are O(n) scans,
// which is fine at the expected scale of tens of components.
type SystemModel struct {
	Name      string      `json:"name" yaml:"name"`
	Type      SystemType  `json:"type" yaml:"type"`
	Framework Framework   `json:"threat_modeling_framework" yaml:"threat_modeling_framework"`
	Components []Component `json:"components" yaml:"components"`
	DataFlows  []DataFlow  `json:"data_flows,omitempty" yaml:"data_flows,omitempty"`
}

// GetComponent returns the component with the given ID, or nil.
func (s *SystemModel) GetComponent(id string) *Component {
	for i := range s.Components {
		if s.Components[i].ID == id {
			return &s.Components[i]
		}
	}
	return nil
}

// DataFlowsFrom returns all flows originating from a component.
func (s *SystemModel) DataFlowsFrom(componentID string) []DataFlow {
	var flows []DataFlow
	for _, f := range s.DataFlows {
		if f.From == componentID {
			flows = append(flows, f)
		}
	}
	return flows
}

// DataFlowsTo returns all flows arriving at a component.
func (s *SystemModel) DataFlowsTo(componentID string) []DataFlow {
	var flows []DataFlow
	for _, f := range s.DataFlows {
		if f.To == componentID {
			flows = append(flows, f)
		}
	}
	return flows
}

// ComponentsOfType returns all components with the given type,
// preserving declaration order.
func (s *SystemModel) ComponentsOfType(t ComponentType) []Component {
	var out []Component
	for _, c := range s.Components {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}
