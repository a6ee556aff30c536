// Package catalog holds the threat pattern type, the built-in default
// catalogs, and the override loader that merges externally supplied
// pattern definition files over the defaults by ID.
package catalog

import (
	"github.com/AgileCatalystDV/ai-threat-model/internal/model"
)

// PatternMitigation is the mitigation template carried by a pattern.
// It is materialized into a model.Mitigation when a threat is emitted.
type PatternMitigation struct {
	ID             string `json:"id" yaml:"id"`
	Description    string `json:"description" yaml:"description"`
	Implementation string `json:"implementation,omitempty" yaml:"implementation,omitempty"`
	Priority       string `json:"priority,omitempty" yaml:"priority,omitempty"`
}

// ThreatPattern is a reusable template describing a known threat
// class. Patterns are immutable once loaded; a later-loaded pattern
// with the same ID replaces the earlier one wholesale.
type ThreatPattern struct {
	ID                string              `json:"id" yaml:"id"`
	Category          string              `json:"category" yaml:"category"`
	Framework         model.Framework     `json:"framework" yaml:"framework"`
	Title             string              `json:"title" yaml:"title"`
	Description       string              `json:"description" yaml:"description"`
	DetectionPatterns []string            `json:"detection_patterns" yaml:"detection_patterns"`
	AttackVectors     []string            `json:"attack_vectors" yaml:"attack_vectors"`
	Mitigations       []PatternMitigation `json:"mitigations" yaml:"mitigations"`
	References        []model.Reference   `json:"references,omitempty" yaml:"references,omitempty"`
}

// Materialize copies the pattern's mitigation templates into proposed
// model.Mitigation values.
func (p ThreatPattern) Materialize() []model.Mitigation {
	mitigations := make([]model.Mitigation, 0, len(p.Mitigations))
	for _, m := range p.Mitigations {
		mitigations = append(mitigations, model.Mitigation{
			ID:             m.ID,
			Description:    m.Description,
			Implementation: m.Implementation,
			Status:         model.StatusProposed,
			Priority:       m.Priority,
		})
	}
	return mitigations
}

// Set is an ordered pattern collection keyed by ID. Insertion of an
// existing ID replaces the pattern in place, preserving its position;
// a new ID appends. This gives "later insert wins" override semantics
// without a separate merge step.
type Set struct {
	order []string
	byID  map[string]ThreatPattern
}

// NewSet builds a set from the given patterns, applying override
// semantics in order.
func NewSet(patterns ...ThreatPattern) *Set {
	s := &Set{byID: make(map[string]ThreatPattern)}
	for _, p := range patterns {
		s.Put(p)
	}
	return s
}

// Put inserts or replaces a pattern by ID.
func (s *Set) Put(p ThreatPattern) {
	if _, ok := s.byID[p.ID]; !ok {
		s.order = append(s.order, p.ID)
	}
	s.byID[p.ID] = p
}

// Get returns the pattern with the given ID, or nil.
func (s *Set) Get(id string) *ThreatPattern {
	p, ok := s.byID[id]
	if !ok {
		return nil
	}
	return &p
}

// All returns the patterns in insertion order.
func (s *Set) All() []ThreatPattern {
	out := make([]ThreatPattern, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// ByFramework returns the patterns belonging to one framework,
// preserving order.
func (s *Set) ByFramework(framework model.Framework) []ThreatPattern {
	var out []ThreatPattern
	for _, id := range s.order {
		if p := s.byID[id]; p.Framework == framework {
			out = append(out, p)
		}
	}
	return out
}

// Len returns the number of distinct pattern IDs in the set.
func (s *Set) Len() int {
	return len(s.order)
}
