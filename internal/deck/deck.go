package deck

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/nao1215/typediff/internal/model"
)

// Deck is a set of cards loaded from one file.
type Deck struct {
	// Path is the file the deck was read from.
	Path string `yaml:"-"`

	// Language applies to cards that do not name one.
	Language string `yaml:"language,omitempty"`

	// Combining applies to cards that do not set it.
	Combining *bool `yaml:"combining,omitempty"`

	// Cards are in file order.
	Cards []model.Card `yaml:"cards"`
}

// Load reads and validates the deck at path.
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is supplied by the user on purpose
	if err != nil {
		return nil, fmt.Errorf("failed to read deck %s: %w", path, err)
	}
	d, err := Parse(data, filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("deck %s: %w", path, err)
	}
	d.Path = path
	return d, nil
}

// Parse decodes a deck. name is used to build ids for cards without one.
func Parse(data []byte, name string) (*Deck, error) {
	var d Deck
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse deck: %w", err)
	}
	if len(d.Cards) == 0 {
		return nil, ErrNoCards
	}

	seen := make(map[string]int, len(d.Cards))
	for i := range d.Cards {
		card := &d.Cards[i]
		if card.ID == "" {
			card.ID = fmt.Sprintf("%s#%d", name, i+1)
		}
		if first, ok := seen[card.ID]; ok {
			return nil, fmt.Errorf("%w: %q (cards %d and %d)", ErrDuplicateCardID, card.ID, first+1, i+1)
		}
		seen[card.ID] = i

		if card.Language == "" {
			card.Language = d.Language
		}
		if card.Combining == nil {
			card.Combining = d.Combining
		}
	}
	return &d, nil
}

// LoadAll discovers the deck files matching patterns and loads them.
func LoadAll(patterns []string) ([]*Deck, error) {
	paths, err := Discover(patterns)
	if err != nil {
		return nil, err
	}
	decks := make([]*Deck, 0, len(paths))
	for _, path := range paths {
		d, err := Load(path)
		if err != nil {
			return nil, err
		}
		decks = append(decks, d)
	}
	return decks, nil
}

// Cards returns the cards of all decks in order.
func Cards(decks []*Deck) []model.Card {
	var cards []model.Card
	for _, d := range decks {
		cards = append(cards, d.Cards...)
	}
	return cards
}
