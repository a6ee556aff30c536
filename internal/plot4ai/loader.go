package plot4ai

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadDeck reads a deck from a local JSON file, typically a cached
// copy of the published PLOT4AI library. Remote downloading lives
// outside the core.
func LoadDeck(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck: %w", err)
	}

	var deck Deck
	if err := json.Unmarshal(data, &deck); err != nil {
		// The published library is a bare array of category groups.
		var groups []CategoryGroup
		if arrErr := json.Unmarshal(data, &groups); arrErr != nil {
			return nil, fmt.Errorf("failed to parse deck: %w", err)
		}
		deck.Categories = groups
	}

	if len(deck.Categories) == 0 {
		return nil, fmt.Errorf("deck %s contains no categories", path)
	}

	return &deck, nil
}
