package plugin

import (
	"fmt"
	"strings"

	"github.com/AgileCatalystDV/ai-threat-model/internal/catalog"
	"github.com/AgileCatalystDV/ai-threat-model/internal/model"
	"github.com/AgileCatalystDV/ai-threat-model/internal/plot4ai"
)

// Plot4AIFilter narrows a deck walk. Zero values leave the dimension
// unfiltered. Answers maps card IDs ("{category}-{index}") to
// elicitation answers: Yes, No, or Maybe.
type Plot4AIFilter struct {
	LifecyclePhase string
	Category       string
	AIType         string
	Answers        map[string]string
}

// ElicitationQuestion is one card's yes/no/maybe prompt plus enough
// context for an interactive session to present it.
type ElicitationQuestion struct {
	ID          string   `json:"id"`
	Question    string   `json:"question"`
	Label       string   `json:"label"`
	ThreatIf    string   `json:"threatif"`
	Categories  []string `json:"categories,omitempty"`
	Phases      []string `json:"phases,omitempty"`
	Explanation string   `json:"explanation,omitempty"`
}

// Plot4AIPlugin walks the PLOT4AI card deck instead of matching
// patterns. Cards carry no severity, so findings leave it unset for
// the user to triage. It shares the llm-app system type with the LLM
// plugin and is dispatched by framework instead.
type Plot4AIPlugin struct {
	deck     *plot4ai.Deck
	patterns []catalog.ThreatPattern
}

// NewPlot4AIPlugin wraps a loaded deck. A nil deck is allowed and
// degrades to an empty catalog and zero findings.
func NewPlot4AIPlugin(deck *plot4ai.Deck) *Plot4AIPlugin {
	p := &Plot4AIPlugin{deck: deck}
	if deck != nil {
		p.patterns = plot4ai.ConvertDeck(deck)
	}
	return p
}

// SystemType returns the system type this plugin handles. PLOT4AI
// applies to all AI system kinds; llm-app is its nominal home.
func (p *Plot4AIPlugin) SystemType() model.SystemType {
	return model.SystemLLMApp
}

// SupportedFrameworks returns the frameworks this plugin supports.
func (p *Plot4AIPlugin) SupportedFrameworks() []model.Framework {
	return []model.Framework{model.FrameworkPLOT4AI}
}

// DetectThreats walks the whole deck with no filters: every card
// becomes a finding. Callers wanting the elicitation workflow use
// DetectThreatsFiltered.
func (p *Plot4AIPlugin) DetectThreats(system *model.SystemModel) []model.Threat {
	return p.DetectThreatsFiltered(system, Plot4AIFilter{})
}

// DetectThreatsFiltered walks the deck applying phase, category, and
// AI-type filters. When an answer exists for a card, the card becomes
// a finding only if the answer is "maybe" or matches the card's
// threatif polarity. Cards without answers are included: show
// everything and let the human prune.
func (p *Plot4AIPlugin) DetectThreatsFiltered(_ *model.SystemModel, filter Plot4AIFilter) []model.Threat {
	if p.deck == nil {
		return nil
	}

	var threats []model.Threat
	p.walkCards(filter, func(card plot4ai.Card, categoryID, cardIndex int) {
		cardID := plot4ai.CardID(categoryID, cardIndex)
		if answer, ok := filter.Answers[cardID]; ok {
			answer = strings.ToLower(answer)
			if answer != "maybe" && answer != strings.ToLower(card.ThreatIf) {
				return
			}
		}
		threats = append(threats, cardThreat(card, categoryID, cardIndex))
	})

	return threats
}

// ElicitationQuestions lists the deck's questions under the same
// filters used for detection, for interactive sessions.
func (p *Plot4AIPlugin) ElicitationQuestions(filter Plot4AIFilter) []ElicitationQuestion {
	if p.deck == nil {
		return nil
	}

	var questions []ElicitationQuestion
	p.walkCards(filter, func(card plot4ai.Card, categoryID, cardIndex int) {
		questions = append(questions, ElicitationQuestion{
			ID:          plot4ai.CardID(categoryID, cardIndex),
			Question:    card.Question,
			Label:       card.Label,
			ThreatIf:    card.ThreatIf,
			Categories:  card.Categories,
			Phases:      card.Phases,
			Explanation: card.Explanation,
		})
	})

	return questions
}

// walkCards visits every card surviving the filters, in deck order.
func (p *Plot4AIPlugin) walkCards(filter Plot4AIFilter, visit func(card plot4ai.Card, categoryID, cardIndex int)) {
	for _, group := range p.deck.Categories {
		for i, card := range group.Cards {
			if filter.LifecyclePhase != "" && !card.HasPhase(filter.LifecyclePhase) {
				continue
			}
			if filter.Category != "" && !card.HasCategory(filter.Category) {
				continue
			}
			if filter.AIType != "" && !card.HasAIType(filter.AIType) {
				continue
			}
			visit(card, group.ID, i)
		}
	}
}

// cardThreat converts a card directly into a finding. The threat ID is
// deterministic, derived from the card's deck position.
func cardThreat(card plot4ai.Card, categoryID, cardIndex int) model.Threat {
	threatID := plot4ai.PatternID(categoryID, cardIndex)

	var mitigations []model.Mitigation
	for i, rec := range plot4ai.Recommendations(card) {
		mitigations = append(mitigations, model.Mitigation{
			ID:          fmt.Sprintf("%s-mit-%d", threatID, i),
			Description: rec,
			Status:      model.StatusProposed,
			Priority:    "medium",
		})
	}

	var vectors []string
	for _, cat := range card.Categories {
		vectors = append(vectors, "Category: "+cat)
	}

	primaryPhase := ""
	if len(card.Phases) > 0 {
		primaryPhase = card.Phases[0]
	}

	return model.Threat{
		ID:                  threatID,
		Category:            card.Label,
		Framework:           model.FrameworkPLOT4AI,
		Title:               card.Label,
		Description:         card.Explanation,
		AttackVectors:       vectors,
		DetectionPatterns:   []string{card.Explanation, "Elicitation: " + card.Question},
		Mitigations:         mitigations,
		References:          plot4ai.ParseReferences(card),
		LifecyclePhase:      primaryPhase,
		ElicitationQuestion: card.Question,
		Plot4AICardID:       plot4ai.CardID(categoryID, cardIndex),
	}
}

// ComponentTypes returns the component types typical for AI systems.
func (p *Plot4AIPlugin) ComponentTypes() []model.ComponentType {
	return []model.ComponentType{
		model.TypeLLM,
		model.TypeAgent,
		model.TypeTool,
		model.TypeMemory,
		model.TypeDatabase,
		model.TypeAPIEndpoint,
	}
}

// ValidateComponent applies the baseline checks; PLOT4AI has no
// type-specific expectations.
func (p *Plot4AIPlugin) ValidateComponent(component model.Component) ValidationResult {
	errors := []string{}
	warnings := []string{}

	if component.ID == "" {
		errors = append(errors, "component ID is required")
	}
	if component.Name == "" {
		errors = append(errors, "component name is required")
	}

	return ValidationResult{Valid: len(errors) == 0, Errors: errors, Warnings: warnings}
}

// ThreatPatterns returns the deck converted to pattern form.
func (p *Plot4AIPlugin) ThreatPatterns(framework model.Framework) []catalog.ThreatPattern {
	if framework != "" && framework != model.FrameworkPLOT4AI {
		return nil
	}
	return p.patterns
}
