package model

import "fmt"

// SystemType identifies the category of system being modeled and
// selects which plugin analyzes it.
type SystemType string

// Supported system types.
const (
	SystemLLMApp              SystemType = "llm-app"
	SystemAgentic             SystemType = "agentic-system"
	SystemMultiAgent          SystemType = "multi-agent"
	SystemMCPServer           SystemType = "mcp-server"
	SystemWebApp              SystemType = "web-app"
	SystemMobileApp           SystemType = "mobile-app"
	SystemAPI                 SystemType = "api"
	SystemMicroservices       SystemType = "microservices"
	SystemCloudInfrastructure SystemType = "cloud-infrastructure"
)

var systemTypes = map[SystemType]bool{
	SystemLLMApp:              true,
	SystemAgentic:             true,
	SystemMultiAgent:          true,
	SystemMCPServer:           true,
	SystemWebApp:              true,
	SystemMobileApp:           true,
	SystemAPI:                 true,
	SystemMicroservices:       true,
	SystemCloudInfrastructure: true,
}

// ParseSystemType converts a string into a SystemType.
func ParseSystemType(s string) (SystemType, error) {
	st := SystemType(s)
	if !systemTypes[st] {
		return "", fmt.Errorf("invalid system type: %q", s)
	}
	return st, nil
}

// Framework names a threat modeling methodology whose catalog is applied.
type Framework string

// Supported threat modeling frameworks.
const (
	FrameworkOWASPLLMTop10     Framework = "owasp-llm-top10-2025"
	FrameworkOWASPAgenticTop10 Framework = "owasp-agentic-top10-2026"
	FrameworkOWASPTop10        Framework = "owasp-top10-2021"
	FrameworkOWASPMobileTop10  Framework = "owasp-mobile-top10"
	FrameworkOWASPAPITop10     Framework = "owasp-api-top10"
	FrameworkSTRIDE            Framework = "stride"
	FrameworkDREAD             Framework = "dread"
	FrameworkPASTA             Framework = "pasta"
	FrameworkTRIKE             Framework = "trike"
	FrameworkPLOT4AI           Framework = "plot4ai"
	FrameworkCustom            Framework = "custom"
)

var frameworks = map[Framework]bool{
	FrameworkOWASPLLMTop10:     true,
	FrameworkOWASPAgenticTop10: true,
	FrameworkOWASPTop10:        true,
	FrameworkOWASPMobileTop10:  true,
	FrameworkOWASPAPITop10:     true,
	FrameworkSTRIDE:            true,
	FrameworkDREAD:             true,
	FrameworkPASTA:             true,
	FrameworkTRIKE:             true,
	FrameworkPLOT4AI:           true,
	FrameworkCustom:            true,
}

// ParseFramework converts a string into a Framework.
func ParseFramework(s string) (Framework, error) {
	f := Framework(s)
	if !frameworks[f] {
		return "", fmt.Errorf("invalid threat modeling framework: %q", s)
	}
	return f, nil
}

// ComponentType categorizes a system component.
type ComponentType string

// Component types across all system types.
const (
	// AI-specific
	TypeLLM       ComponentType = "llm"
	TypeAgent     ComponentType = "agent"
	TypeTool      ComponentType = "tool"
	TypeMemory    ComponentType = "memory"
	TypeMCPServer ComponentType = "mcp-server"

	// Web/Mobile/API
	TypeWebServer   ComponentType = "web-server"
	TypeAPIEndpoint ComponentType = "api-endpoint"
	TypeMobileApp   ComponentType = "mobile-app"
	TypeBrowser     ComponentType = "browser"

	// Services
	TypeAuthenticationService ComponentType = "authentication-service"
	TypeAuthorizationService  ComponentType = "authorization-service"

	// Infrastructure
	TypeDatabase     ComponentType = "database"
	TypeCache        ComponentType = "cache"
	TypeMessageQueue ComponentType = "message-queue"
	TypeLoadBalancer ComponentType = "load-balancer"
	TypeCDN          ComponentType = "cdn"
	TypeFirewall     ComponentType = "firewall"
)

var componentTypes = map[ComponentType]bool{
	TypeLLM:                   true,
	TypeAgent:                 true,
	TypeTool:                  true,
	TypeMemory:                true,
	TypeMCPServer:             true,
	TypeWebServer:             true,
	TypeAPIEndpoint:           true,
	TypeMobileApp:             true,
	TypeBrowser:               true,
	TypeAuthenticationService: true,
	TypeAuthorizationService:  true,
	TypeDatabase:              true,
	TypeCache:                 true,
	TypeMessageQueue:          true,
	TypeLoadBalancer:          true,
	TypeCDN:                   true,
	TypeFirewall:              true,
}

// ParseComponentType converts a string into a ComponentType.
func ParseComponentType(s string) (ComponentType, error) {
	ct := ComponentType(s)
	if !componentTypes[ct] {
		return "", fmt.Errorf("invalid component type: %q", s)
	}
	return ct, nil
}

// TrustLevel is an ordinal classification of how much a component is
// trusted: Untrusted < Internal < Privileged < System.
type TrustLevel string

// Trust levels, least trusted first.
const (
	TrustUntrusted  TrustLevel = "untrusted"
	TrustInternal   TrustLevel = "internal"
	TrustPrivileged TrustLevel = "privileged"
	TrustSystem     TrustLevel = "system"
)

// Ordinal returns the position of the trust level in the ordering.
// An unset level is treated as untrusted.
func (t TrustLevel) Ordinal() int {
	switch t {
	case TrustInternal:
		return 1
	case TrustPrivileged:
		return 2
	case TrustSystem:
		return 3
	default:
		return 0
	}
}

// DataClassification is the sensitivity tier of data carried by a flow:
// Public < Internal < Confidential < Restricted.
type DataClassification string

// Data classification levels.
const (
	ClassificationPublic       DataClassification = "public"
	ClassificationInternal     DataClassification = "internal"
	ClassificationConfidential DataClassification = "confidential"
	ClassificationRestricted   DataClassification = "restricted"
)

// Sensitive reports whether the classification is confidential or restricted.
func (c DataClassification) Sensitive() bool {
	return c == ClassificationConfidential || c == ClassificationRestricted
}

// Severity ranks how serious a threat is: Critical > High > Medium > Low.
type Severity string

// Threat severity levels.
const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// ParseSeverity converts a string into a Severity.
func ParseSeverity(s string) (Severity, error) {
	switch Severity(s) {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return Severity(s), nil
	}
	return "", fmt.Errorf("invalid severity: %q", s)
}

// MitigationStatus tracks mitigation implementation progress.
type MitigationStatus string

// Mitigation statuses.
const (
	StatusProposed    MitigationStatus = "proposed"
	StatusImplemented MitigationStatus = "implemented"
	StatusVerified    MitigationStatus = "verified"
)
