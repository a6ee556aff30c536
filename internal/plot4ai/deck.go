// Package plot4ai models the PLOT4AI card deck (Practical Library Of
// Threats 4 Artificial Intelligence): 138 threat cards across 8
// categories and 6 lifecycle phases.
//
// Source: https://plot4.ai/ (CC-BY-SA-4.0, Isabel Barberá)
package plot4ai

// Lifecycle phases.
const (
	PhaseDesign  = "Design"
	PhaseInput   = "Input"
	PhaseModel   = "Model"
	PhaseOutput  = "Output"
	PhaseDeploy  = "Deploy"
	PhaseMonitor = "Monitor"
)

// Card is a single PLOT4AI threat card. ThreatIf records the
// elicitation-answer polarity: the answer ("Yes" or "No") under which
// the card represents a threat.
type Card struct {
	Question       string   `json:"question" yaml:"question"`
	ThreatIf       string   `json:"threatif" yaml:"threatif"`
	Label          string   `json:"label" yaml:"label"`
	Explanation    string   `json:"explanation" yaml:"explanation"`
	Recommendation string   `json:"recommendation" yaml:"recommendation"`
	Categories     []string `json:"categories,omitempty" yaml:"categories,omitempty"`
	Phases         []string `json:"phases,omitempty" yaml:"phases,omitempty"`
	AITypes        []string `json:"aitypes,omitempty" yaml:"aitypes,omitempty"`
	Roles          []string `json:"roles,omitempty" yaml:"roles,omitempty"`
	Sources        string   `json:"sources,omitempty" yaml:"sources,omitempty"`
	QR             string   `json:"qr,omitempty" yaml:"qr,omitempty"`
}

// HasPhase reports whether the card applies to a lifecycle phase.
func (c Card) HasPhase(phase string) bool {
	return contains(c.Phases, phase)
}

// HasCategory reports whether the card belongs to a category.
func (c Card) HasCategory(category string) bool {
	return contains(c.Categories, category)
}

// HasAIType reports whether the card applies to an AI type
// (Traditional or Generative).
func (c Card) HasAIType(aitype string) bool {
	return contains(c.AITypes, aitype)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// CategoryGroup is one deck category with its cards. Card identity
// within the deck is "{group id}-{card index}".
type CategoryGroup struct {
	Category string `json:"category" yaml:"category"`
	ID       int    `json:"id" yaml:"id"`
	Colour   string `json:"colour,omitempty" yaml:"colour,omitempty"`
	Cards    []Card `json:"cards" yaml:"cards"`
}

// Deck is the complete PLOT4AI deck.
type Deck struct {
	Categories []CategoryGroup `json:"categories" yaml:"categories"`
}

// AllCards returns every card in deck order.
func (d *Deck) AllCards() []Card {
	var cards []Card
	for _, g := range d.Categories {
		cards = append(cards, g.Cards...)
	}
	return cards
}

// CardsByCategory returns the cards of a named category group.
func (d *Deck) CardsByCategory(category string) []Card {
	for _, g := range d.Categories {
		if g.Category == category {
			return g.Cards
		}
	}
	return nil
}

// CardsByPhase returns the cards applicable to a lifecycle phase.
func (d *Deck) CardsByPhase(phase string) []Card {
	var cards []Card
	for _, c := range d.AllCards() {
		if c.HasPhase(phase) {
			cards = append(cards, c)
		}
	}
	return cards
}

// CardsByAIType returns the cards applicable to an AI type.
func (d *Deck) CardsByAIType(aitype string) []Card {
	var cards []Card
	for _, c := range d.AllCards() {
		if c.HasAIType(aitype) {
			cards = append(cards, c)
		}
	}
	return cards
}

// CardCount returns the number of cards in the deck.
func (d *Deck) CardCount() int {
	n := 0
	for _, g := range d.Categories {
		n += len(g.Cards)
	}
	return n
}
