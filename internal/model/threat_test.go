package model

import "testing"

func TestRiskScoreCalculate(t *testing.T) {
	tests := []struct {
		name  string
		score RiskScore
		want  float64
	}{
		{
			name:  "no factors",
			score: RiskScore{},
			want:  0.0,
		},
		{
			name:  "two factors averaged",
			score: RiskScore{Damage: Factor(8), Exploitability: Factor(6)},
			want:  7.0,
		},
		{
			name: "all factors",
			score: RiskScore{
				Damage:          Factor(10),
				Reproducibility: Factor(5),
				Exploitability:  Factor(5),
				AffectedUsers:   Factor(10),
				Discoverability: Factor(0),
			},
			want: 6.0,
		},
		{
			name:  "single factor",
			score: RiskScore{AffectedUsers: Factor(3)},
			want:  3.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.score.Calculate(); got != tt.want {
				t.Errorf("Calculate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewThreat(t *testing.T) {
	t1 := NewThreat("LLM01", FrameworkOWASPLLMTop10, "Prompt Injection")
	t2 := NewThreat("LLM01", FrameworkOWASPLLMTop10, "Prompt Injection")

	if t1.ID == "" || t2.ID == "" {
		t.Fatal("expected generated IDs")
	}
	if t1.ID == t2.ID {
		t.Error("expected unique IDs for separate threats")
	}
	if t1.Category != "LLM01" || t1.Framework != FrameworkOWASPLLMTop10 || t1.Title != "Prompt Injection" {
		t.Errorf("unexpected threat fields: %+v", t1)
	}
}

func TestNewMitigation(t *testing.T) {
	m := NewMitigation("Validate all inputs")
	if m.ID == "" {
		t.Error("expected generated ID")
	}
	if m.Status != StatusProposed {
		t.Errorf("expected proposed status, got %q", m.Status)
	}
}
