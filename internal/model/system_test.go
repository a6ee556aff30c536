package model

import "testing"

func TestNewComponent(t *testing.T) {
	c, err := NewComponent("  llm-1  ", "Main LLM", TypeLLM)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if c.ID != "llm-1" {
		t.Errorf("expected trimmed ID llm-1, got %q", c.ID)
	}
	if c.TrustLevel != TrustUntrusted {
		t.Errorf("expected default trust level untrusted, got %q", c.TrustLevel)
	}
}

func TestNewComponent_EmptyID(t *testing.T) {
	if _, err := NewComponent("   ", "Main LLM", TypeLLM); err == nil {
		t.Error("expected error for empty ID")
	}
}

func TestNewComponent_InvalidType(t *testing.T) {
	if _, err := NewComponent("c1", "Thing", ComponentType("mainframe")); err == nil {
		t.Error("expected error for invalid component type")
	}
}

func TestComponentUntrusted(t *testing.T) {
	tests := []struct {
		level TrustLevel
		want  bool
	}{
		{TrustUntrusted, true},
		{TrustLevel(""), true},
		{TrustInternal, false},
		{TrustSystem, false},
	}

	for _, tt := range tests {
		c := Component{ID: "c1", TrustLevel: tt.level}
		if got := c.Untrusted(); got != tt.want {
			t.Errorf("Untrusted(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestDataFlowRef(t *testing.T) {
	f := DataFlow{From: "agent-1", To: "memory-1"}
	if got := f.Ref(); got != "agent-1->memory-1" {
		t.Errorf("expected agent-1->memory-1, got %q", got)
	}
}

func TestDataFlowEffectiveClassification(t *testing.T) {
	f := DataFlow{From: "a", To: "b"}
	if got := f.EffectiveClassification(); got != ClassificationInternal {
		t.Errorf("expected unset classification to default to internal, got %q", got)
	}

	f.Classification = ClassificationRestricted
	if got := f.EffectiveClassification(); got != ClassificationRestricted {
		t.Errorf("expected restricted, got %q", got)
	}
}

func TestDataFlowSensitive(t *testing.T) {
	if (DataFlow{Classification: ClassificationPublic}).Sensitive() {
		t.Error("public flow should not be sensitive")
	}
	if (DataFlow{}).Sensitive() {
		t.Error("default (internal) flow should not be sensitive")
	}
	if !(DataFlow{Classification: ClassificationConfidential}).Sensitive() {
		t.Error("confidential flow should be sensitive")
	}
}

func testSystem() *SystemModel {
	return &SystemModel{
		Name: "Test System",
		Type: SystemAgentic,
		Components: []Component{
			{ID: "agent-1", Name: "Planner", Type: TypeAgent},
			{ID: "agent-2", Name: "Executor", Type: TypeAgent},
			{ID: "db-1", Name: "Store", Type: TypeDatabase},
		},
		DataFlows: []DataFlow{
			{From: "agent-1", To: "agent-2"},
			{From: "agent-2", To: "db-1"},
		},
	}
}

func TestSystemModelGetComponent(t *testing.T) {
	s := testSystem()

	c := s.GetComponent("db-1")
	if c == nil || c.Name != "Store" {
		t.Errorf("expected Store, got %+v", c)
	}

	if s.GetComponent("missing") != nil {
		t.Error("expected nil for unknown component")
	}
}

func TestSystemModelDataFlows(t *testing.T) {
	s := testSystem()

	from := s.DataFlowsFrom("agent-2")
	if len(from) != 1 || from[0].To != "db-1" {
		t.Errorf("unexpected flows from agent-2: %+v", from)
	}

	to := s.DataFlowsTo("agent-2")
	if len(to) != 1 || to[0].From != "agent-1" {
		t.Errorf("unexpected flows to agent-2: %+v", to)
	}
}

func TestSystemModelComponentsOfType(t *testing.T) {
	s := testSystem()

	agents := s.ComponentsOfType(TypeAgent)
	if len(agents) != 2 {
		t.Fatalf("expected 2 agents, got %d", len(agents))
	}
	if agents[0].ID != "agent-1" || agents[1].ID != "agent-2" {
		t.Error("expected declaration order to be preserved")
	}
}
