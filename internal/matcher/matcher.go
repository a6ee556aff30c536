// Package matcher decides whether a threat pattern applies to a
// component. Matching layers progressively looser heuristics, trading
// precision for recall: a best-effort advisory verdict, not a
// certifying one. Severity is never decided here; plugins assign it
// from their own static tables.
package matcher

import (
	"strings"

	"github.com/AgileCatalystDV/ai-threat-model/internal/catalog"
	"github.com/AgileCatalystDV/ai-threat-model/internal/model"
)

// Match reports whether the pattern applies to the component. The
// decision layers are evaluated in order, short-circuiting on the
// first hit:
//
//  1. component type is in the caller-supplied trigger list
//  2. a detection phrase appears verbatim in the searchable text
//  3. all significant words of a multi-word phrase appear in the text
//  4. a canonical risk-phrasing regex matches the text
//  5. a capability keyword appears in both a phrase and a capability
//  6. system-context checks (trust level, sensitive flows, encryption)
//
// The system may be nil, which disables layer 6. Match is pure and
// deterministic for identical inputs.
func Match(pattern catalog.ThreatPattern, component model.Component, triggerTypes []model.ComponentType, system *model.SystemModel) bool {
	for _, t := range triggerTypes {
		if component.Type == t {
			return true
		}
	}

	searchable := searchableText(component)

	for _, phrase := range pattern.DetectionPatterns {
		phrase = strings.ToLower(phrase)

		if strings.Contains(searchable, phrase) {
			return true
		}

		if significantWordsMatch(phrase, searchable) {
			return true
		}

		if riskPhraseMatch(phrase, searchable) {
			return true
		}

		if capabilityOverlap(phrase, component) {
			return true
		}
	}

	if system != nil && contextMatch(pattern, component, system) {
		return true
	}

	return false
}

// searchableText builds the lower-cased haystack for text heuristics:
// name, type, description, and joined capabilities.
func searchableText(c model.Component) string {
	parts := []string{c.Name, string(c.Type), c.Description, strings.Join(c.Capabilities, " ")}
	return strings.ToLower(strings.Join(parts, " "))
}

// significantWordsMatch checks a multi-word phrase word by word,
// keeping only words longer than 3 characters. All of them must
// appear somewhere in the text, in any order.
func significantWordsMatch(phrase, searchable string) bool {
	words := strings.Fields(phrase)
	if len(words) < 2 {
		return false
	}

	matched := 0
	for _, w := range words {
		if len(w) <= 3 {
			continue
		}
		if !strings.Contains(searchable, w) {
			return false
		}
		matched++
	}
	return matched > 0
}

// riskPhraseMatch walks the risk-phrasing table. A table entry fires
// only when its trigger key appears verbatim in the detection phrase;
// the entry's regex is then tested against the component text.
func riskPhraseMatch(phrase, searchable string) bool {
	for _, check := range riskPhraseChecks {
		if !strings.Contains(phrase, check.trigger) {
			continue
		}
		if ok, err := check.re.MatchString(searchable); err == nil && ok {
			return true
		}
	}
	return false
}

// capabilityOverlap looks for a capability keyword present in both the
// detection phrase and the component's declared capabilities.
func capabilityOverlap(phrase string, c model.Component) bool {
	if len(c.Capabilities) == 0 {
		return false
	}

	caps := strings.ToLower(strings.Join(c.Capabilities, " "))
	for _, kw := range capabilityKeywords {
		if strings.Contains(phrase, kw) && strings.Contains(caps, kw) {
			return true
		}
	}
	return false
}

// contextMatch runs the three independent system-context checks; any
// hit is a match.
func contextMatch(pattern catalog.ThreatPattern, c model.Component, system *model.SystemModel) bool {
	if c.Untrusted() && anyPhraseMentions(pattern, untrustedKeywords) {
		return true
	}

	inSensitiveFlow := false
	inUnencryptedSensitiveFlow := false
	for _, f := range system.DataFlows {
		if f.From != c.ID && f.To != c.ID {
			continue
		}
		if f.Sensitive() {
			inSensitiveFlow = true
			if !f.Encrypted {
				inUnencryptedSensitiveFlow = true
			}
		}
	}

	if inSensitiveFlow && anyPhraseMentions(pattern, sensitiveKeywords) {
		return true
	}
	if inUnencryptedSensitiveFlow && anyPhraseMentions(pattern, unencryptedKeywords) {
		return true
	}

	return false
}

func anyPhraseMentions(pattern catalog.ThreatPattern, keywords []string) bool {
	for _, phrase := range pattern.DetectionPatterns {
		phrase = strings.ToLower(phrase)
		for _, kw := range keywords {
			if strings.Contains(phrase, kw) {
				return true
			}
		}
	}
	return false
}
