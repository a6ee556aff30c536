package model

import "testing"

func TestParseSystemType(t *testing.T) {
	st, err := ParseSystemType("llm-app")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if st != SystemLLMApp {
		t.Errorf("expected %s, got %s", SystemLLMApp, st)
	}

	if _, err := ParseSystemType("mainframe"); err == nil {
		t.Error("expected error for unknown system type")
	}
}

func TestParseFramework(t *testing.T) {
	f, err := ParseFramework("plot4ai")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if f != FrameworkPLOT4AI {
		t.Errorf("expected %s, got %s", FrameworkPLOT4AI, f)
	}

	if _, err := ParseFramework("octave"); err == nil {
		t.Error("expected error for unknown framework")
	}
}

func TestParseComponentType(t *testing.T) {
	ct, err := ParseComponentType("mcp-server")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if ct != TypeMCPServer {
		t.Errorf("expected %s, got %s", TypeMCPServer, ct)
	}

	if _, err := ParseComponentType("mainframe"); err == nil {
		t.Error("expected error for unknown component type")
	}
}

func TestTrustLevelOrdinal(t *testing.T) {
	tests := []struct {
		level TrustLevel
		want  int
	}{
		{TrustUntrusted, 0},
		{TrustInternal, 1},
		{TrustPrivileged, 2},
		{TrustSystem, 3},
		{TrustLevel(""), 0},
	}

	for _, tt := range tests {
		if got := tt.level.Ordinal(); got != tt.want {
			t.Errorf("Ordinal(%q) = %d, want %d", tt.level, got, tt.want)
		}
	}

	if !(TrustUntrusted.Ordinal() < TrustInternal.Ordinal() &&
		TrustInternal.Ordinal() < TrustPrivileged.Ordinal() &&
		TrustPrivileged.Ordinal() < TrustSystem.Ordinal()) {
		t.Error("trust levels are not strictly ordered")
	}
}

func TestDataClassificationSensitive(t *testing.T) {
	if ClassificationPublic.Sensitive() {
		t.Error("public should not be sensitive")
	}
	if ClassificationInternal.Sensitive() {
		t.Error("internal should not be sensitive")
	}
	if !ClassificationConfidential.Sensitive() {
		t.Error("confidential should be sensitive")
	}
	if !ClassificationRestricted.Sensitive() {
		t.Error("restricted should be sensitive")
	}
}

func TestParseSeverity(t *testing.T) {
	if _, err := ParseSeverity("critical"); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if _, err := ParseSeverity("catastrophic"); err == nil {
		t.Error("expected error for unknown severity")
	}
}
