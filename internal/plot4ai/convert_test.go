package plot4ai

import (
	"testing"

	"github.com/AgileCatalystDV/ai-threat-model/internal/model"
)

func TestCardID(t *testing.T) {
	if got := CardID(3, 7); got != "3-7" {
		t.Errorf("expected 3-7, got %q", got)
	}
	if got := PatternID(3, 7); got != "PLOT4AI-3-7" {
		t.Errorf("expected PLOT4AI-3-7, got %q", got)
	}
}

func TestConvertCard(t *testing.T) {
	card := Card{
		Question:       "Is the training data audited?",
		ThreatIf:       "No",
		Label:          "Data Provenance",
		Explanation:    "Unaudited data may carry poisoned samples.",
		Recommendation: "* Audit sources\n* Track lineage",
		Categories:     []string{"Security"},
		Phases:         []string{PhaseModel},
	}

	p := ConvertCard(card, 2, 4)

	if p.ID != "PLOT4AI-2-4" {
		t.Errorf("unexpected ID: %s", p.ID)
	}
	if p.Framework != model.FrameworkPLOT4AI {
		t.Errorf("unexpected framework: %s", p.Framework)
	}
	if p.Title != "Data Provenance" || p.Category != "Data Provenance" {
		t.Errorf("expected label as title and category, got %q / %q", p.Title, p.Category)
	}

	if len(p.DetectionPatterns) != 2 {
		t.Fatalf("expected 2 detection entries, got %d", len(p.DetectionPatterns))
	}
	if p.DetectionPatterns[1] != "Elicitation question: Is the training data audited?" {
		t.Errorf("unexpected elicitation entry: %q", p.DetectionPatterns[1])
	}

	wantVectors := []string{"Category: Security", "Lifecycle phase: Model"}
	if len(p.AttackVectors) != len(wantVectors) {
		t.Fatalf("expected %v, got %v", wantVectors, p.AttackVectors)
	}
	for i, v := range wantVectors {
		if p.AttackVectors[i] != v {
			t.Errorf("vector %d: expected %q, got %q", i, v, p.AttackVectors[i])
		}
	}

	if len(p.Mitigations) != 2 || p.Mitigations[0].ID != "PLOT4AI-2-4-mit-0" {
		t.Errorf("unexpected mitigations: %+v", p.Mitigations)
	}
}

func TestRecommendations(t *testing.T) {
	bullets := Card{Recommendation: "* First step\n\n*  Second step \nnot a bullet"}
	recs := Recommendations(bullets)
	if len(recs) != 2 || recs[0] != "First step" || recs[1] != "Second step" {
		t.Errorf("unexpected bullet recommendations: %v", recs)
	}

	plain := Card{Recommendation: "  Just do the one thing.  "}
	recs = Recommendations(plain)
	if len(recs) != 1 || recs[0] != "Just do the one thing." {
		t.Errorf("unexpected plain recommendation: %v", recs)
	}

	if recs := Recommendations(Card{Recommendation: "   "}); recs != nil {
		t.Errorf("expected nil for blank recommendation, got %v", recs)
	}
}

func TestParseReferences(t *testing.T) {
	card := Card{Sources: "OWASP LLM Top 10 https://owasp.org/llm\nhttps://plot4.ai/library\nPlain citation"}

	refs := ParseReferences(card)
	if len(refs) != 3 {
		t.Fatalf("expected 3 references, got %d", len(refs))
	}
	if refs[0].Title != "OWASP LLM Top 10" || refs[0].URL != "https://owasp.org/llm" {
		t.Errorf("unexpected first reference: %+v", refs[0])
	}
	if refs[1].Title != "Reference" || refs[1].URL != "https://plot4.ai/library" {
		t.Errorf("expected fallback title for bare URL, got %+v", refs[1])
	}
	if refs[2].Title != "Plain citation" || refs[2].URL != "" {
		t.Errorf("unexpected third reference: %+v", refs[2])
	}

	if refs := ParseReferences(Card{}); refs != nil {
		t.Errorf("expected nil for empty sources, got %v", refs)
	}
}

func TestConvertDeck(t *testing.T) {
	deck := &Deck{
		Categories: []CategoryGroup{
			{Category: "A", ID: 1, Cards: []Card{{Label: "one"}, {Label: "two"}}},
			{Category: "B", ID: 2, Cards: []Card{{Label: "three"}}},
		},
	}

	patterns := ConvertDeck(deck)
	if len(patterns) != 3 {
		t.Fatalf("expected 3 patterns, got %d", len(patterns))
	}
	if patterns[2].ID != "PLOT4AI-2-0" {
		t.Errorf("unexpected last pattern ID: %s", patterns[2].ID)
	}
}
