package catalog

// DefaultLLMPatterns returns the built-in OWASP LLM Top 10 2025
// catalog. These defaults are always loaded first and survive even if
// every override file fails to parse.
func DefaultLLMPatterns() []ThreatPattern {
	return []ThreatPattern{
		llmPattern(
			"LLM01",
			"Prompt Injection",
			"Prompt injection occurs when untrusted input is embedded in a prompt, causing the LLM to execute unintended instructions or expose data.",
			[]string{
				"User input directly concatenated to system prompts",
				"No input sanitization or validation",
				"External data sources used in prompts without validation",
			},
			[]string{
				"Direct injection via user input",
				"Indirect injection via external data sources",
				"Second-order injection through stored data",
			},
			[]PatternMitigation{
				mitigation("input-validation", "Validate and sanitize all user inputs",
					"Use input validation libraries and sanitize special characters", "high"),
				mitigation("prompt-separation", "Separate user input from system prompts",
					"Use structured prompts with clear boundaries", "high"),
			},
		),
		llmPattern(
			"LLM02",
			"Insecure Output Handling",
			"Insecure output handling occurs when LLM outputs are not validated or sanitized before being used, leading to XSS, CSRF, or other attacks.",
			[]string{
				"LLM output used directly in HTML/JavaScript",
				"No output validation or sanitization",
				"LLM output used in security-sensitive contexts",
			},
			[]string{
				"XSS via malicious LLM output",
				"CSRF via LLM-generated URLs",
				"Code injection via LLM output",
			},
			[]PatternMitigation{
				mitigation("output-validation", "Validate and sanitize all LLM outputs",
					"Use output encoding and validation libraries", "high"),
			},
		),
		llmPattern(
			"LLM03",
			"Training Data Poisoning",
			"Training data poisoning occurs when malicious data is introduced into the training dataset, causing the model to produce biased or malicious outputs.",
			[]string{
				"Training data from untrusted sources",
				"No data validation or filtering",
				"Public datasets used without verification",
			},
			[]string{
				"Injection of malicious examples",
				"Bias introduction through data manipulation",
			},
			[]PatternMitigation{
				mitigation("data-validation", "Validate and filter training data",
					"Implement data validation pipelines", "medium"),
			},
		),
		llmPattern(
			"LLM04",
			"Model Denial of Service",
			"Model DoS occurs when resource-intensive operations cause the system to become unavailable or degrade performance.",
			[]string{
				"No rate limiting on LLM requests",
				"No timeout mechanisms",
				"No resource quotas",
			},
			[]string{
				"Resource exhaustion via large prompts",
				"Rapid request flooding",
			},
			[]PatternMitigation{
				mitigation("rate-limiting", "Implement rate limiting",
					"Use rate limiting middleware", "high"),
			},
		),
		llmPattern(
			"LLM05",
			"Supply Chain Vulnerabilities",
			"Supply chain vulnerabilities occur when third-party models, datasets, or plugins contain security flaws.",
			[]string{
				"Third-party models used without verification",
				"External plugins or tools integrated",
				"No security review of dependencies",
			},
			[]string{
				"Malicious third-party models",
				"Compromised dependencies",
			},
			[]PatternMitigation{
				mitigation("supply-chain-review", "Review and verify all dependencies",
					"Implement dependency scanning", "medium"),
			},
		),
		llmPattern(
			"LLM06",
			"Sensitive Information Disclosure",
			"Sensitive information disclosure occurs when the LLM reveals confidential data in its outputs.",
			[]string{
				"Training data contains sensitive information",
				"No data filtering or redaction",
				"LLM has access to sensitive data sources",
			},
			[]string{
				"Prompting for sensitive data",
				"Inference attacks",
			},
			[]PatternMitigation{
				mitigation("data-filtering", "Filter sensitive data from training and inference",
					"Implement data redaction and filtering", "high"),
			},
		),
		llmPattern(
			"LLM07",
			"Insecure Plugin Design",
			"Insecure plugin design occurs when plugins or tools integrated with the LLM have security vulnerabilities.",
			[]string{
				"Plugins execute arbitrary code",
				"No input validation in plugins",
				"Plugins have excessive permissions",
			},
			[]string{
				"Malicious plugin execution",
				"Privilege escalation via plugins",
			},
			[]PatternMitigation{
				mitigation("plugin-security", "Implement secure plugin architecture",
					"Use sandboxing and least privilege", "high"),
			},
		),
		llmPattern(
			"LLM08",
			"Excessive Agency",
			"Excessive agency occurs when the LLM has too much autonomy and can perform actions without proper authorization.",
			[]string{
				"LLM can perform critical actions autonomously",
				"No human oversight or approval",
				"Broad permissions granted to LLM",
			},
			[]string{
				"Unauthorized actions via LLM",
				"Privilege escalation",
			},
			[]PatternMitigation{
				mitigation("human-oversight", "Implement human oversight for critical actions",
					"Require approval for sensitive operations", "high"),
			},
		),
		llmPattern(
			"LLM09",
			"Overreliance",
			"Overreliance occurs when users or systems trust LLM outputs too much without verification.",
			[]string{
				"LLM outputs used without verification",
				"No fact-checking or validation",
				"Critical decisions based solely on LLM output",
			},
			[]string{
				"Misinformation propagation",
				"Decision manipulation",
			},
			[]PatternMitigation{
				mitigation("output-verification", "Verify LLM outputs before use",
					"Implement fact-checking and validation", "medium"),
			},
		),
		llmPattern(
			"LLM10",
			"Model Theft",
			"Model theft occurs when proprietary models are copied, reverse-engineered, or extracted without authorization.",
			[]string{
				"Model exposed via API without protection",
				"No access controls on model endpoints",
				"Model weights accessible",
			},
			[]string{
				"Model extraction attacks",
				"Unauthorized model access",
			},
			[]PatternMitigation{
				mitigation("access-controls", "Implement access controls and monitoring",
					"Use authentication and rate limiting", "high"),
			},
		),
	}
}
