package plugin

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/AgileCatalystDV/ai-threat-model/internal/catalog"
	"github.com/AgileCatalystDV/ai-threat-model/internal/model"
)

func validTestPattern(id string, framework model.Framework) catalog.ThreatPattern {
	return catalog.ThreatPattern{
		ID:                id,
		Category:          id,
		Framework:         framework,
		Title:             "Test Pattern",
		Description:       "A test pattern",
		DetectionPatterns: []string{"something risky"},
		AttackVectors:     []string{"an attack"},
	}
}

func TestPatternRegistryRegister(t *testing.T) {
	r := NewPatternRegistry()

	if err := r.Register(validTestPattern("P-1", model.FrameworkCustom), nil); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if p := r.Get("P-1"); p == nil || p.Title != "Test Pattern" {
		t.Errorf("expected pattern back, got %+v", p)
	}

	// Nil metadata gets a 1.0.0 default with a creation stamp.
	m := r.Metadata("P-1")
	if m == nil || m.Version != "1.0.0" || m.Created == nil {
		t.Errorf("unexpected default metadata: %+v", m)
	}
}

func TestPatternRegistryRegister_Validation(t *testing.T) {
	r := NewPatternRegistry()

	tests := []struct {
		name   string
		mutate func(*catalog.ThreatPattern)
	}{
		{"missing id", func(p *catalog.ThreatPattern) { p.ID = "" }},
		{"missing title", func(p *catalog.ThreatPattern) { p.Title = "" }},
		{"missing description", func(p *catalog.ThreatPattern) { p.Description = "" }},
		{"no detection patterns", func(p *catalog.ThreatPattern) { p.DetectionPatterns = nil }},
		{"no attack vectors", func(p *catalog.ThreatPattern) { p.AttackVectors = nil }},
		{"bad framework", func(p *catalog.ThreatPattern) { p.Framework = "octave" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validTestPattern("P-X", model.FrameworkCustom)
			tt.mutate(&p)
			if err := r.Register(p, nil); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestPatternRegistryRegister_FrameworkClash(t *testing.T) {
	r := NewPatternRegistry()

	if err := r.Register(validTestPattern("P-1", model.FrameworkCustom), nil); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// Same ID, same framework: overwrite is fine.
	if err := r.Register(validTestPattern("P-1", model.FrameworkCustom), nil); err != nil {
		t.Errorf("expected overwrite to succeed, got %v", err)
	}

	// Same ID, different framework: rejected.
	if err := r.Register(validTestPattern("P-1", model.FrameworkOWASPLLMTop10), nil); err == nil {
		t.Error("expected framework clash to be rejected")
	}
}

func TestPatternRegistryDependencies(t *testing.T) {
	r := NewPatternRegistry()

	r.Register(validTestPattern("P-1", model.FrameworkCustom), &PatternMetadata{
		Version:      "1.0.0",
		Dependencies: []string{"P-2", "P-404"},
	})
	r.Register(validTestPattern("P-2", model.FrameworkCustom), nil)

	missing := r.ValidateDependencies("P-1")
	if len(missing) != 1 || missing[0] != "P-404" {
		t.Errorf("expected [P-404], got %v", missing)
	}

	if missing := r.ValidateDependencies("unknown"); missing != nil {
		t.Errorf("expected nil for unknown pattern, got %v", missing)
	}
}

func TestPatternRegistryCheckConflicts_Deprecated(t *testing.T) {
	r := NewPatternRegistry()

	r.Register(validTestPattern("P-1", model.FrameworkCustom), &PatternMetadata{
		Version:    "1.0.0",
		Deprecated: true,
		ReplacedBy: "P-2",
	})
	r.Register(validTestPattern("P-2", model.FrameworkCustom), nil)

	conflicts := r.CheckConflicts()
	if len(conflicts) != 1 {
		t.Fatalf("expected 1 conflict, got %d", len(conflicts))
	}
	if conflicts[0].Type != "deprecated" || conflicts[0].PatternID != "P-1" || conflicts[0].ReplacedBy != "P-2" {
		t.Errorf("unexpected conflict: %+v", conflicts[0])
	}

	if !r.IsDeprecated("P-1") {
		t.Error("expected P-1 to be deprecated")
	}
	if r.IsDeprecated("P-2") {
		t.Error("expected P-2 not to be deprecated")
	}
}

func TestPatternRegistryByFramework(t *testing.T) {
	r := NewPatternRegistry()
	r.Register(validTestPattern("A", model.FrameworkCustom), nil)
	r.Register(validTestPattern("B", model.FrameworkOWASPLLMTop10), nil)
	r.Register(validTestPattern("C", model.FrameworkCustom), nil)

	custom := r.ByFramework(model.FrameworkCustom)
	if len(custom) != 2 || custom[0].ID != "A" || custom[1].ID != "C" {
		t.Errorf("unexpected framework filter result: %+v", custom)
	}

	if all := r.All(); len(all) != 3 {
		t.Errorf("expected 3 patterns, got %d", len(all))
	}
}

func TestPatternRegistryLoadDirectory(t *testing.T) {
	dir := t.TempDir()

	good := `{
		"id": "CUSTOM-01",
		"category": "CUSTOM-01",
		"framework": "custom",
		"title": "Loaded",
		"description": "Loaded from disk",
		"detection_patterns": ["x"],
		"attack_vectors": ["y"],
		"metadata": {"version": "2.1.0", "author": "tester"}
	}`
	bad := `{"id": "CUSTOM-02"`

	if err := os.WriteFile(filepath.Join(dir, "good.json"), []byte(good), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("not a pattern"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewPatternRegistry()
	count, failures := r.LoadDirectory(dir)

	if count != 1 {
		t.Errorf("expected 1 loaded pattern, got %d", count)
	}
	if len(failures) != 1 {
		t.Errorf("expected 1 failure, got %d: %v", len(failures), failures)
	}

	if m := r.Metadata("CUSTOM-01"); m == nil || m.Version != "2.1.0" || m.Author != "tester" {
		t.Errorf("unexpected metadata: %+v", m)
	}
}

func TestPatternRegistryLoadDirectory_Missing(t *testing.T) {
	r := NewPatternRegistry()
	count, failures := r.LoadDirectory(filepath.Join(t.TempDir(), "absent"))

	if count != 0 || failures != nil {
		t.Errorf("expected silent no-op for missing directory, got count=%d failures=%v", count, failures)
	}
}
