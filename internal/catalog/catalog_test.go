package catalog

import (
	"fmt"
	"testing"

	"github.com/AgileCatalystDV/ai-threat-model/internal/model"
)

func TestDefaultLLMPatterns(t *testing.T) {
	patterns := DefaultLLMPatterns()
	if len(patterns) != 10 {
		t.Fatalf("expected 10 patterns, got %d", len(patterns))
	}

	for i, p := range patterns {
		wantID := fmt.Sprintf("LLM%02d", i+1)
		if p.ID != wantID {
			t.Errorf("pattern %d: expected ID %s, got %s", i, wantID, p.ID)
		}
		if p.Framework != model.FrameworkOWASPLLMTop10 {
			t.Errorf("pattern %s: unexpected framework %s", p.ID, p.Framework)
		}
		if p.Title == "" || p.Description == "" {
			t.Errorf("pattern %s: missing title or description", p.ID)
		}
		if len(p.DetectionPatterns) == 0 {
			t.Errorf("pattern %s: no detection patterns", p.ID)
		}
		if len(p.Mitigations) == 0 {
			t.Errorf("pattern %s: no mitigations", p.ID)
		}
	}

	if patterns[0].Title != "Prompt Injection" {
		t.Errorf("expected LLM01 to be Prompt Injection, got %q", patterns[0].Title)
	}
}

func TestDefaultAgenticPatterns(t *testing.T) {
	patterns := DefaultAgenticPatterns()
	if len(patterns) != 10 {
		t.Fatalf("expected 10 patterns, got %d", len(patterns))
	}

	for i, p := range patterns {
		wantID := fmt.Sprintf("AGENTIC%02d", i+1)
		if p.ID != wantID {
			t.Errorf("pattern %d: expected ID %s, got %s", i, wantID, p.ID)
		}
		if p.Framework != model.FrameworkOWASPAgenticTop10 {
			t.Errorf("pattern %s: unexpected framework %s", p.ID, p.Framework)
		}
	}
}

func TestDefaultMultiAgentPatterns(t *testing.T) {
	patterns := DefaultMultiAgentPatterns()
	if len(patterns) != 5 {
		t.Fatalf("expected 5 patterns, got %d", len(patterns))
	}

	for i, p := range patterns {
		wantID := fmt.Sprintf("MULTI-AGENT-%02d", i+1)
		if p.ID != wantID {
			t.Errorf("pattern %d: expected ID %s, got %s", i, wantID, p.ID)
		}
		if p.Framework != model.FrameworkCustom {
			t.Errorf("pattern %s: unexpected framework %s", p.ID, p.Framework)
		}
	}
}
