package plugin

import (
	"testing"

	"github.com/AgileCatalystDV/ai-threat-model/internal/model"
)

func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewRegistry()
	llm := NewLLMPlugin("")

	r.Register(llm)

	if got := r.Get(model.SystemLLMApp); got != Plugin(llm) {
		t.Error("expected registered plugin back")
	}
	if !r.IsRegistered(model.SystemLLMApp) {
		t.Error("expected llm-app to be registered")
	}
	if r.Get(model.SystemWebApp) != nil {
		t.Error("expected nil for unregistered system type")
	}
}

func TestRegistryLastWins(t *testing.T) {
	r := NewRegistry()
	first := NewPlot4AIPlugin(nil)
	second := NewLLMPlugin("")

	// Both plugins claim llm-app; the later registration owns the slot.
	r.Register(first)
	r.Register(second)

	if _, ok := r.Get(model.SystemLLMApp).(*LLMPlugin); !ok {
		t.Error("expected the later registration to own the system type")
	}
	// The earlier plugin stays reachable through its framework.
	if _, ok := r.GetByFramework(model.FrameworkPLOT4AI).(*Plot4AIPlugin); !ok {
		t.Error("expected PLOT4AI plugin via framework lookup")
	}
}

func TestRegistryClear(t *testing.T) {
	r := NewRegistry()
	r.Register(NewLLMPlugin(""))
	r.Clear()

	if r.Get(model.SystemLLMApp) != nil {
		t.Error("expected empty registry after Clear")
	}
	if r.GetByFramework(model.FrameworkOWASPLLMTop10) != nil {
		t.Error("expected empty framework index after Clear")
	}
	if len(r.List()) != 0 {
		t.Error("expected empty listing after Clear")
	}
}

func TestRegisterDefaults(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r, Options{})

	if _, ok := r.Get(model.SystemLLMApp).(*LLMPlugin); !ok {
		t.Error("expected LLM plugin to own llm-app")
	}
	if _, ok := r.Get(model.SystemAgentic).(*AgenticPlugin); !ok {
		t.Error("expected agentic plugin for agentic-system")
	}
	if _, ok := r.Get(model.SystemMultiAgent).(*MultiAgentPlugin); !ok {
		t.Error("expected multi-agent plugin for multi-agent")
	}
	if _, ok := r.GetByFramework(model.FrameworkPLOT4AI).(*Plot4AIPlugin); !ok {
		t.Error("expected PLOT4AI plugin via framework lookup")
	}

	if len(r.List()) != 3 {
		t.Errorf("expected 3 distinct system types, got %d", len(r.List()))
	}
}

func TestAnalyzeSystem(t *testing.T) {
	system := &model.SystemModel{
		Name: "Counts",
		Type: model.SystemLLMApp,
		Components: []model.Component{
			{ID: "llm-1", Name: "LLM", Type: model.TypeLLM},
			{ID: "db-1", Name: "Store", Type: model.TypeDatabase},
		},
		DataFlows: []model.DataFlow{{From: "llm-1", To: "db-1", Encrypted: true}},
	}

	summary := AnalyzeSystem(NewLLMPlugin(""), system)

	if summary.ComponentsAnalyzed != 2 {
		t.Errorf("expected 2 components analyzed, got %d", summary.ComponentsAnalyzed)
	}
	if summary.DataFlowsAnalyzed != 1 {
		t.Errorf("expected 1 data flow analyzed, got %d", summary.DataFlowsAnalyzed)
	}
	if summary.ThreatCount != len(summary.Threats) {
		t.Errorf("threat count %d does not match %d threats", summary.ThreatCount, len(summary.Threats))
	}
}
