package plugin

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/AgileCatalystDV/ai-threat-model/internal/catalog"
	"github.com/AgileCatalystDV/ai-threat-model/internal/model"
)

// PatternMetadata carries versioning and lifecycle information for a
// registered pattern.
type PatternMetadata struct {
	Version          string     `json:"version"`
	Created          *time.Time `json:"created,omitempty"`
	Updated          *time.Time `json:"updated,omitempty"`
	Author           string     `json:"author,omitempty"`
	Dependencies     []string   `json:"dependencies,omitempty"`
	Deprecated       bool       `json:"deprecated,omitempty"`
	DeprecatedReason string     `json:"deprecated_reason,omitempty"`
	ReplacedBy       string     `json:"replaced_by,omitempty"`
}

// Conflict describes a problem found by the registry's conflict scan.
type Conflict struct {
	Type       string `json:"type"`
	PatternID  string `json:"pattern_id"`
	Message    string `json:"message"`
	ReplacedBy string `json:"replaced_by,omitempty"`
}

// PatternRegistry is a versioned pattern store independent of the
// plugin catalogs. It validates patterns at registration, tracks
// metadata and dependencies, and detects conflicts and deprecations.
type PatternRegistry struct {
	patterns    map[string]catalog.ThreatPattern
	metadata    map[string]PatternMetadata
	byFramework map[model.Framework]map[string]bool
	order       []string
}

// NewPatternRegistry creates an empty pattern registry.
func NewPatternRegistry() *PatternRegistry {
	return &PatternRegistry{
		patterns:    make(map[string]catalog.ThreatPattern),
		metadata:    make(map[string]PatternMetadata),
		byFramework: make(map[model.Framework]map[string]bool),
	}
}

// Register adds a pattern. Re-registering an ID under the same
// framework overwrites it; reusing an ID under a different framework
// is rejected. A nil metadata gets a 1.0.0 default.
func (r *PatternRegistry) Register(pattern catalog.ThreatPattern, metadata *PatternMetadata) error {
	if err := validatePattern(pattern); err != nil {
		return err
	}

	if existing, ok := r.patterns[pattern.ID]; ok && existing.Framework != pattern.Framework {
		return fmt.Errorf("pattern %s already exists with different framework: %s vs %s",
			pattern.ID, existing.Framework, pattern.Framework)
	}

	if _, ok := r.patterns[pattern.ID]; !ok {
		r.order = append(r.order, pattern.ID)
	}
	r.patterns[pattern.ID] = pattern

	if metadata != nil {
		r.metadata[pattern.ID] = *metadata
	} else {
		now := time.Now().UTC()
		r.metadata[pattern.ID] = PatternMetadata{Version: "1.0.0", Created: &now}
	}

	if r.byFramework[pattern.Framework] == nil {
		r.byFramework[pattern.Framework] = make(map[string]bool)
	}
	r.byFramework[pattern.Framework][pattern.ID] = true

	return nil
}

// Get returns a pattern by ID, or nil.
func (r *PatternRegistry) Get(patternID string) *catalog.ThreatPattern {
	p, ok := r.patterns[patternID]
	if !ok {
		return nil
	}
	return &p
}

// Metadata returns a pattern's metadata, or nil.
func (r *PatternRegistry) Metadata(patternID string) *PatternMetadata {
	m, ok := r.metadata[patternID]
	if !ok {
		return nil
	}
	return &m
}

// IsDeprecated reports whether a pattern is marked deprecated.
func (r *PatternRegistry) IsDeprecated(patternID string) bool {
	m, ok := r.metadata[patternID]
	return ok && m.Deprecated
}

// All returns every registered pattern in registration order.
func (r *PatternRegistry) All() []catalog.ThreatPattern {
	out := make([]catalog.ThreatPattern, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.patterns[id])
	}
	return out
}

// ByFramework returns the patterns registered under one framework, in
// registration order.
func (r *PatternRegistry) ByFramework(framework model.Framework) []catalog.ThreatPattern {
	ids := r.byFramework[framework]
	var out []catalog.ThreatPattern
	for _, id := range r.order {
		if ids[id] {
			out = append(out, r.patterns[id])
		}
	}
	return out
}

// ValidateDependencies returns the declared dependency IDs that are
// absent from the registry. An unknown pattern has no dependencies.
func (r *PatternRegistry) ValidateDependencies(patternID string) []string {
	m, ok := r.metadata[patternID]
	if !ok {
		return nil
	}

	var missing []string
	for _, dep := range m.Dependencies {
		if _, ok := r.patterns[dep]; !ok {
			missing = append(missing, dep)
		}
	}
	return missing
}

// CheckConflicts scans for IDs indexed under more than one framework
// and for deprecated patterns still registered.
func (r *PatternRegistry) CheckConflicts() []Conflict {
	var conflicts []Conflict

	frameworksByID := make(map[string][]model.Framework)
	for framework, ids := range r.byFramework {
		for id := range ids {
			frameworksByID[id] = append(frameworksByID[id], framework)
		}
	}
	for _, id := range r.order {
		if fws := frameworksByID[id]; len(fws) > 1 {
			conflicts = append(conflicts, Conflict{
				Type:      "duplicate_id",
				PatternID: id,
				Message:   fmt.Sprintf("pattern %s is registered under %d frameworks", id, len(fws)),
			})
		}
	}

	for _, id := range r.order {
		m, ok := r.metadata[id]
		if !ok || !m.Deprecated {
			continue
		}
		reason := m.DeprecatedReason
		if reason == "" {
			reason = "no reason provided"
		}
		conflicts = append(conflicts, Conflict{
			Type:       "deprecated",
			PatternID:  id,
			Message:    fmt.Sprintf("pattern %s is deprecated: %s", id, reason),
			ReplacedBy: m.ReplacedBy,
		})
	}

	return conflicts
}

// patternFile is the on-disk shape for registry loads: a pattern with
// an optional embedded metadata object.
type patternFile struct {
	catalog.ThreatPattern
	Metadata *PatternMetadata `json:"metadata,omitempty"`
}

// LoadDirectory bulk-loads pattern definition files. Per-file failures
// are collected and skipped; the load never aborts as a whole. Returns
// the number of patterns registered plus the collected failures.
func (r *PatternRegistry) LoadDirectory(dir string) (int, []error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, []error{fmt.Errorf("failed to read pattern directory: %w", err)}
	}

	count := 0
	var failures []error
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		path := filepath.Join(dir, entry.Name())

		data, err := os.ReadFile(path)
		if err != nil {
			failures = append(failures, fmt.Errorf("%s: %w", path, err))
			continue
		}

		var pf patternFile
		if err := json.Unmarshal(data, &pf); err != nil {
			failures = append(failures, fmt.Errorf("%s: %w", path, err))
			continue
		}

		if err := r.Register(pf.ThreatPattern, pf.Metadata); err != nil {
			failures = append(failures, fmt.Errorf("%s: %w", path, err))
			continue
		}
		count++
	}

	return count, failures
}

// validatePattern enforces the required fields for registration.
func validatePattern(p catalog.ThreatPattern) error {
	if p.ID == "" {
		return fmt.Errorf("pattern ID is required")
	}
	if p.Title == "" {
		return fmt.Errorf("pattern title is required")
	}
	if p.Description == "" {
		return fmt.Errorf("pattern description is required")
	}
	if len(p.DetectionPatterns) == 0 {
		return fmt.Errorf("pattern must have at least one detection pattern")
	}
	if len(p.AttackVectors) == 0 {
		return fmt.Errorf("pattern must have at least one attack vector")
	}
	if _, err := model.ParseFramework(string(p.Framework)); err != nil {
		return err
	}
	return nil
}
