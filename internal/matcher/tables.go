package matcher

import (
	"github.com/dlclark/regexp2"
)

// riskPhraseCheck pairs a trigger key with the regex applied to the
// component's searchable text. The trigger must appear verbatim in a
// pattern's detection phrase before the regex is applied; the keys are
// the regex source strings themselves.
type riskPhraseCheck struct {
	trigger string
	re      *regexp2.Regexp
}

// riskPhraseChecks is the fixed table of canonical risk phrasings.
var riskPhraseChecks = []riskPhraseCheck{
	{
		trigger: `no\s+\w+\s+(validation|sanitization|filtering|protection)`,
		re:      regexp2.MustCompile(`no\s+\w+\s+(validation|sanitization|filtering|protection)`, regexp2.IgnoreCase),
	},
	{
		trigger: `untrusted\s+\w+`,
		re:      regexp2.MustCompile(`untrusted\s+\w+`, regexp2.IgnoreCase),
	},
	{
		trigger: `excessive\s+\w+`,
		re:      regexp2.MustCompile(`excessive\s+\w+`, regexp2.IgnoreCase),
	},
	{
		trigger: `arbitrary\s+\w+`,
		re:      regexp2.MustCompile(`arbitrary\s+\w+`, regexp2.IgnoreCase),
	},
}

// capabilityKeywords are matched in both a detection phrase and the
// component's joined capability string.
var capabilityKeywords = []string{
	"execute",
	"access",
	"modify",
	"delete",
	"create",
	"authentication",
	"authorization",
	"permission",
	"plugin",
	"tool",
	"api",
	"database",
	"file",
}

// Context keyword sets. Each set gates one of the system-context
// checks: the structural condition must hold AND a detection phrase
// must mention the matching vocabulary.
var (
	untrustedKeywords = []string{
		"untrusted",
		"external",
		"third-party",
		"public",
		"user input",
	}

	sensitiveKeywords = []string{
		"sensitive",
		"confidential",
		"restricted",
		"pii",
		"personal data",
	}

	unencryptedKeywords = []string{
		"unencrypted",
		"no encryption",
		"plaintext",
		"insecure",
	}
)
