package plot4ai

import (
	"fmt"
	"strings"

	"github.com/AgileCatalystDV/ai-threat-model/internal/catalog"
	"github.com/AgileCatalystDV/ai-threat-model/internal/model"
)

// CardID renders a card's synthetic identity within the deck.
func CardID(categoryID, cardIndex int) string {
	return fmt.Sprintf("%d-%d", categoryID, cardIndex)
}

// PatternID renders the pattern identity derived from a card.
func PatternID(categoryID, cardIndex int) string {
	return fmt.Sprintf("PLOT4AI-%d-%d", categoryID, cardIndex)
}

// ConvertCard maps a deck card onto the internal threat pattern shape.
func ConvertCard(card Card, categoryID, cardIndex int) catalog.ThreatPattern {
	patternID := PatternID(categoryID, cardIndex)

	var detection []string
	if card.Explanation != "" {
		detection = append(detection, card.Explanation)
	}
	if card.Question != "" {
		detection = append(detection, "Elicitation question: "+card.Question)
	}

	var vectors []string
	for _, cat := range card.Categories {
		vectors = append(vectors, "Category: "+cat)
	}
	for _, phase := range card.Phases {
		vectors = append(vectors, "Lifecycle phase: "+phase)
	}

	var mitigations []catalog.PatternMitigation
	for i, rec := range Recommendations(card) {
		mitigations = append(mitigations, catalog.PatternMitigation{
			ID:          fmt.Sprintf("%s-mit-%d", patternID, i),
			Description: rec,
			Priority:    "medium",
		})
	}

	return catalog.ThreatPattern{
		ID:                patternID,
		Category:          card.Label,
		Framework:         model.FrameworkPLOT4AI,
		Title:             card.Label,
		Description:       card.Explanation,
		DetectionPatterns: detection,
		AttackVectors:     vectors,
		Mitigations:       mitigations,
		References:        ParseReferences(card),
	}
}

// ConvertDeck converts every card in the deck.
func ConvertDeck(deck *Deck) []catalog.ThreatPattern {
	var patterns []catalog.ThreatPattern
	for _, group := range deck.Categories {
		for i, card := range group.Cards {
			patterns = append(patterns, ConvertCard(card, group.ID, i))
		}
	}
	return patterns
}

// Recommendations splits a card's recommendation text into individual
// mitigation descriptions. Bullet lines (starting with *) become
// separate entries; without bullets the whole text is one entry.
func Recommendations(card Card) []string {
	if strings.TrimSpace(card.Recommendation) == "" {
		return nil
	}

	var recs []string
	for _, line := range strings.Split(card.Recommendation, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !strings.HasPrefix(line, "*") {
			continue
		}
		rec := strings.TrimSpace(strings.TrimLeft(line, "*"))
		if rec != "" {
			recs = append(recs, rec)
		}
	}

	if len(recs) == 0 {
		recs = []string{strings.TrimSpace(card.Recommendation)}
	}
	return recs
}

// ParseReferences extracts reference entries from a card's free-text
// sources block, one per line, splitting out a URL when present.
func ParseReferences(card Card) []model.Reference {
	if strings.TrimSpace(card.Sources) == "" {
		return nil
	}

	var refs []model.Reference
	for _, line := range strings.Split(card.Sources, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if idx := strings.Index(line, "http"); idx >= 0 {
			title := strings.TrimSpace(line[:idx])
			if title == "" {
				title = "Reference"
			}
			refs = append(refs, model.Reference{Title: title, URL: strings.TrimSpace(line[idx:])})
		} else {
			refs = append(refs, model.Reference{Title: line})
		}
	}
	return refs
}
