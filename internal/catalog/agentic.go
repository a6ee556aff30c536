package catalog

// DefaultAgenticPatterns returns the built-in OWASP Agentic Top 10
// 2026 catalog.
func DefaultAgenticPatterns() []ThreatPattern {
	return []ThreatPattern{
		agenticPattern(
			"AGENTIC01",
			"Agent Goal Hijack",
			"Goal hijacking targets the core of an agent: its ability to plan and act autonomously. If an attacker can redirect the goal itself, the entire chain of actions becomes compromised.",
			[]string{
				"Agent receives untrusted input without validation",
				"No input sanitization for agent prompts",
				"Agent state can be manipulated externally",
			},
			[]string{
				"Prompt injection to manipulate agent behavior",
				"Environment manipulation",
				"State corruption attacks",
			},
			[]PatternMitigation{
				mitigation("input-validation", "Validate and sanitize all agent inputs",
					"Implement input validation and sanitization", "high"),
				mitigation("state-protection", "Protect agent state from unauthorized modification",
					"Implement state validation and integrity checks", "high"),
			},
		),
		agenticPattern(
			"AGENTIC02",
			"Tool Misuse and Exploitation",
			"Agents gain real-world power through the tools they can access. When misled through prompt injection, misalignment, or unsafe design, an agent may use legitimate tools in unsafe ways.",
			[]string{
				"Agent can execute arbitrary tools",
				"No authorization checks before tool execution",
				"Tools have excessive permissions",
			},
			[]string{
				"Unauthorized tool execution",
				"Privilege escalation via tools",
				"Malicious tool invocation",
			},
			[]PatternMitigation{
				mitigation("tool-authorization", "Implement authorization for tool execution",
					"Use least privilege and authorization checks", "high"),
				mitigation("tool-sandboxing", "Sandbox tool execution",
					"Isolate tool execution environments", "high"),
			},
		),
		agenticPattern(
			"AGENTIC03",
			"Identity and Privilege Abuse",
			"Most agentic systems lack real, governable identities. Instead, agents inherit context, credentials, or privileges in ways traditional IAM systems were never designed for.",
			[]string{
				"Agents can spawn other agents",
				"No limits on resource creation",
				"No monitoring of agent proliferation",
			},
			[]string{
				"Resource exhaustion via agent spawning",
				"Denial of service",
			},
			[]PatternMitigation{
				mitigation("spawn-limits", "Implement limits on agent spawning",
					"Set quotas and limits on agent creation", "high"),
			},
		),
		agenticPattern(
			"AGENTIC04",
			"Agentic Supply Chain Vulnerabilities",
			"Agentic systems don't run in isolation, they assemble models, tools, templates, plugins, and third-party agents at runtime. This creates a live, constantly shifting supply chain.",
			[]string{
				"Orchestrator has no access controls",
				"Agent coordination can be manipulated",
				"No validation of orchestration commands",
			},
			[]string{
				"Orchestrator compromise",
				"Agent coordination attacks",
			},
			[]PatternMitigation{
				mitigation("orchestrator-security", "Secure the orchestration layer",
					"Implement access controls and validation", "high"),
			},
		),
		agenticPattern(
			"AGENTIC05",
			"Unexpected Code Execution (RCE)",
			"Agents often call code execution tools—shells, runtimes, notebooks, scripts—to complete tasks. When an attacker manipulates those inputs, the agent can unintentionally execute arbitrary or malicious code.",
			[]string{
				"Memory accessible without authorization",
				"No memory validation",
				"Memory can be corrupted",
			},
			[]string{
				"Memory corruption attacks",
				"Unauthorized memory access",
			},
			[]PatternMitigation{
				mitigation("memory-protection", "Protect agent memory",
					"Implement memory access controls and validation", "high"),
			},
		),
		agenticPattern(
			"AGENTIC06",
			"Memory and Context Poisoning",
			"Agents use memory to store context, preferences, tasks, and past actions. If attackers can insert malicious content into that memory, the agent becomes permanently biased or compromised.",
			[]string{
				"Agents share resources without isolation",
				"No sandboxing between agents",
				"Agents can access other agents' data",
			},
			[]string{
				"Cross-agent attacks",
				"Resource interference",
			},
			[]PatternMitigation{
				mitigation("agent-isolation", "Isolate agents from each other",
					"Implement sandboxing and resource isolation", "high"),
			},
		),
		agenticPattern(
			"AGENTIC07",
			"Insecure Inter-Agent Communication",
			"Multi-agent systems rely entirely on messages to coordinate. If those messages aren't authenticated, encrypted, or validated, a single spoofed or tampered instruction can mislead multiple agents.",
			[]string{
				"Agent communication not encrypted",
				"No authentication between agents",
				"Communication channels unprotected",
			},
			[]string{
				"Man-in-the-middle attacks",
				"Communication interception",
			},
			[]PatternMitigation{
				mitigation("secure-communication", "Encrypt and authenticate agent communication",
					"Use TLS and mutual authentication", "high"),
			},
		),
		agenticPattern(
			"AGENTIC08",
			"Cascading Failures",
			"Agentic systems are deeply interconnected. One bad output, whether a hallucination, malicious input, or poisoned memory, can ripple across multiple agents and workflows.",
			[]string{
				"No logging of agent actions",
				"No monitoring of agent behavior",
				"No audit trail",
			},
			[]string{
				"Undetected malicious behavior",
				"Lack of accountability",
			},
			[]PatternMitigation{
				mitigation("observability", "Implement comprehensive logging and monitoring",
					"Log all agent actions and decisions", "medium"),
			},
		),
		agenticPattern(
			"AGENTIC09",
			"Human-Agent Trust Exploitation",
			"Agents generate polished, authoritative-sounding explanations. Humans tend to trust them—even when they're compromised or manipulated.",
			[]string{
				"Agents deployed without authentication",
				"No secure deployment process",
				"Agents accessible without authorization",
			},
			[]string{
				"Unauthorized agent access",
				"Deployment compromise",
			},
			[]PatternMitigation{
				mitigation("secure-deployment", "Implement secure deployment practices",
					"Use authentication and secure deployment pipelines", "high"),
			},
		),
		agenticPattern(
			"AGENTIC10",
			"Rogue Agents",
			"A Rogue Agent is an AI that drifts from its intended behavior and acts with harmful autonomy. It becomes the ultimate insider threat: authorized, trusted, but misaligned.",
			[]string{
				"Third-party agents used without verification",
				"External models or tools integrated",
				"No security review of dependencies",
			},
			[]string{
				"Malicious third-party agents",
				"Compromised dependencies",
			},
			[]PatternMitigation{
				mitigation("supply-chain-review", "Review and verify all dependencies",
					"Implement dependency scanning and verification", "medium"),
			},
		),
	}
}
