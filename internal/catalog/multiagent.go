package catalog

// DefaultMultiAgentPatterns returns the built-in multi-agent catalog.
// These carry the custom framework tag; no published OWASP numbering
// covers agent-pair relationships yet.
func DefaultMultiAgentPatterns() []ThreatPattern {
	return []ThreatPattern{
		multiAgentPattern(
			"MULTI-AGENT-01",
			"Agent-to-Agent Communication Vulnerabilities",
			"Vulnerabilities in communication between agents, including message tampering, replay attacks, and unauthorized access to inter-agent messages.",
			[]string{
				"Agents communicate without encryption",
				"No authentication between agents",
				"Message integrity not verified",
				"No replay attack protection",
			},
			[]string{
				"Man-in-the-middle attacks on agent communication",
				"Message replay attacks",
				"Message tampering",
				"Unauthorized message interception",
			},
			[]PatternMitigation{
				mitigation("secure-communication", "Encrypt and authenticate all agent-to-agent communication",
					"Use TLS with mutual authentication", "high"),
				mitigation("message-integrity", "Verify message integrity",
					"Use message authentication codes (MACs)", "high"),
			},
		),
		multiAgentPattern(
			"MULTI-AGENT-02",
			"Orchestration Layer Vulnerabilities",
			"Vulnerabilities in the orchestration layer that coordinates multiple agents, including unauthorized agent spawning and coordination manipulation.",
			[]string{
				"Orchestrator has no access controls",
				"Agents can be spawned without limits",
				"Orchestration commands not validated",
				"No monitoring of orchestration activities",
			},
			[]string{
				"Orchestrator compromise",
				"Unauthorized agent spawning",
				"Coordination manipulation",
				"Resource exhaustion via agent spawning",
			},
			[]PatternMitigation{
				mitigation("orchestrator-security", "Secure the orchestration layer",
					"Implement access controls and validation", "high"),
				mitigation("spawn-limits", "Implement limits on agent spawning",
					"Set quotas and limits", "high"),
			},
		),
		multiAgentPattern(
			"MULTI-AGENT-03",
			"Shared State Vulnerabilities",
			"Vulnerabilities in shared state or memory between agents, including race conditions, state corruption, and unauthorized state access.",
			[]string{
				"Agents share state without synchronization",
				"No locking mechanisms for shared resources",
				"State can be corrupted by concurrent access",
				"No access controls on shared state",
			},
			[]string{
				"Race conditions",
				"State corruption",
				"Unauthorized state access",
				"Concurrent modification attacks",
			},
			[]PatternMitigation{
				mitigation("state-synchronization", "Implement proper state synchronization",
					"Use locks, transactions, or immutable state", "high"),
				mitigation("state-isolation", "Isolate agent state where possible",
					"Use separate state stores per agent", "medium"),
			},
		),
		multiAgentPattern(
			"MULTI-AGENT-04",
			"Agent Isolation Failures",
			"Failures in isolating agents from each other, allowing unauthorized access to agent resources or data.",
			[]string{
				"Agents share resources without isolation",
				"No sandboxing between agents",
				"Agents can access other agents' data",
				"Resource limits not enforced per agent",
			},
			[]string{
				"Cross-agent attacks",
				"Resource interference",
				"Data leakage between agents",
				"Privilege escalation",
			},
			[]PatternMitigation{
				mitigation("agent-isolation", "Isolate agents from each other",
					"Use sandboxing and resource isolation", "high"),
				mitigation("resource-quotas", "Enforce resource quotas per agent",
					"Set CPU, memory, and network limits", "medium"),
			},
		),
		multiAgentPattern(
			"MULTI-AGENT-05",
			"Distributed Decision Making Vulnerabilities",
			"Vulnerabilities in distributed decision-making processes, including consensus manipulation and voting attacks.",
			[]string{
				"No consensus mechanism",
				"Voting can be manipulated",
				"Decisions not verified",
				"No quorum requirements",
			},
			[]string{
				"Consensus manipulation",
				"Voting attacks",
				"Sybil attacks",
				"Decision corruption",
			},
			[]PatternMitigation{
				mitigation("consensus-mechanism", "Implement robust consensus mechanism",
					"Use Byzantine fault tolerance", "high"),
				mitigation("decision-verification", "Verify distributed decisions",
					"Require quorum and verification", "high"),
			},
		),
	}
}
