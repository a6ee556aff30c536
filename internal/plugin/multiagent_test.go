package plugin

import (
	"testing"

	"github.com/AgileCatalystDV/ai-threat-model/internal/model"
)

func multiAgentSystem() *model.SystemModel {
	return &model.SystemModel{
		Name:      "Crew",
		Type:      model.SystemMultiAgent,
		Framework: model.FrameworkCustom,
		Components: []model.Component{
			{ID: "agent-1", Name: "Researcher", Type: model.TypeAgent, TrustLevel: model.TrustInternal},
			{ID: "agent-2", Name: "Writer", Type: model.TypeAgent, TrustLevel: model.TrustInternal},
		},
	}
}

func TestMultiAgentDetectThreats_RequiresTwoAgents(t *testing.T) {
	system := &model.SystemModel{
		Type: model.SystemMultiAgent,
		Components: []model.Component{
			{ID: "agent-1", Name: "Solo", Type: model.TypeAgent},
			{ID: "db-1", Name: "Store", Type: model.TypeDatabase},
		},
	}

	if threats := NewMultiAgentPlugin("").DetectThreats(system); len(threats) != 0 {
		t.Errorf("expected no findings below two agents, got %d", len(threats))
	}
}

func TestMultiAgentDetectThreats_Isolation(t *testing.T) {
	threats := NewMultiAgentPlugin("").DetectThreats(multiAgentSystem())
	got := categories(threats)

	if got["MULTI-AGENT-04"] != 1 {
		t.Fatalf("expected one isolation finding, got %d", got["MULTI-AGENT-04"])
	}
	for _, threat := range threats {
		if threat.Category == "MULTI-AGENT-04" {
			if len(threat.AffectedComponents) != 2 {
				t.Errorf("expected both agents named, got %v", threat.AffectedComponents)
			}
			if threat.Severity != model.SeverityMedium {
				t.Errorf("expected medium severity, got %s", threat.Severity)
			}
		}
	}
	// No orchestrator, no flows: nothing else fires.
	if len(threats) != 1 {
		t.Errorf("expected exactly 1 finding, got %d: %v", len(threats), got)
	}
}

func TestMultiAgentDetectThreats_Orchestrator(t *testing.T) {
	system := multiAgentSystem()
	system.Components = append(system.Components,
		model.Component{ID: "orch-1", Name: "Task Orchestrator", Type: model.TypeAPIEndpoint, TrustLevel: model.TrustInternal})

	threats := NewMultiAgentPlugin("").DetectThreats(system)
	got := categories(threats)

	if got["MULTI-AGENT-02"] != 1 {
		t.Fatalf("expected one orchestration finding, got %d", got["MULTI-AGENT-02"])
	}
	for _, threat := range threats {
		if threat.Category == "MULTI-AGENT-02" {
			if len(threat.AffectedComponents) != 1 || threat.AffectedComponents[0] != "orch-1" {
				t.Errorf("expected the orchestrator named, got %v", threat.AffectedComponents)
			}
			if threat.Severity != model.SeverityHigh {
				t.Errorf("expected high severity, got %s", threat.Severity)
			}
		}
	}
}

func TestMultiAgentDetectThreats_UnencryptedAgentFlow(t *testing.T) {
	system := multiAgentSystem()
	system.Components = append(system.Components,
		model.Component{ID: "db-1", Name: "Results", Type: model.TypeDatabase, TrustLevel: model.TrustInternal})
	system.DataFlows = []model.DataFlow{
		{From: "agent-1", To: "agent-2", Encrypted: false},
		{From: "agent-1", To: "db-1", Encrypted: false},
		{From: "agent-2", To: "agent-1", Encrypted: true},
	}

	threats := NewMultiAgentPlugin("").DetectThreats(system)

	var comms []model.Threat
	for _, threat := range threats {
		if threat.Category == "MULTI-AGENT-01" {
			comms = append(comms, threat)
		}
	}
	if len(comms) != 1 {
		t.Fatalf("expected 1 communication finding, got %d", len(comms))
	}
	if comms[0].AffectedDataFlows[0] != "agent-1->agent-2" {
		t.Errorf("unexpected flow: %v", comms[0].AffectedDataFlows)
	}
}

func TestMultiAgentDetectThreats_SharedResource(t *testing.T) {
	system := multiAgentSystem()
	system.Components = append(system.Components,
		model.Component{ID: "mem-1", Name: "Scratchpad", Type: model.TypeMemory, TrustLevel: model.TrustInternal})
	system.DataFlows = []model.DataFlow{
		{From: "agent-1", To: "mem-1", Encrypted: true},
		{From: "agent-2", To: "mem-1", Encrypted: true},
		{From: "agent-1", To: "mem-1", Encrypted: true}, // duplicate contributor
	}

	threats := NewMultiAgentPlugin("").DetectThreats(system)

	var shared *model.Threat
	for i := range threats {
		if threats[i].Category == "MULTI-AGENT-03" {
			shared = &threats[i]
		}
	}
	if shared == nil {
		t.Fatal("expected a shared-resource finding")
	}

	want := []string{"mem-1", "agent-1", "agent-2"}
	if len(shared.AffectedComponents) != len(want) {
		t.Fatalf("expected %v, got %v", want, shared.AffectedComponents)
	}
	for i, id := range want {
		if shared.AffectedComponents[i] != id {
			t.Errorf("position %d: expected %s, got %s", i, id, shared.AffectedComponents[i])
		}
	}
}

func TestMultiAgentDetectThreats_SharedResourceSingleContributor(t *testing.T) {
	system := multiAgentSystem()
	system.Components = append(system.Components,
		model.Component{ID: "mem-1", Name: "Scratchpad", Type: model.TypeMemory, TrustLevel: model.TrustInternal})
	system.DataFlows = []model.DataFlow{
		{From: "agent-1", To: "mem-1", Encrypted: true},
	}

	for _, threat := range NewMultiAgentPlugin("").DetectThreats(system) {
		if threat.Category == "MULTI-AGENT-03" {
			t.Errorf("expected no shared-resource finding for one contributor, got %+v", threat)
		}
	}
}

func TestMultiAgentSupportedFrameworks(t *testing.T) {
	frameworks := NewMultiAgentPlugin("").SupportedFrameworks()
	if len(frameworks) != 2 {
		t.Fatalf("expected 2 frameworks, got %d", len(frameworks))
	}
	if frameworks[0] != model.FrameworkOWASPAgenticTop10 || frameworks[1] != model.FrameworkCustom {
		t.Errorf("unexpected frameworks: %v", frameworks)
	}
}
