package deck

import "errors"

var (
	// ErrNoCards is returned when a deck file contains no cards.
	ErrNoCards = errors.New("deck contains no cards")

	// ErrNoDecks is returned when no deck file matches the given patterns.
	ErrNoDecks = errors.New("no deck files found")

	// ErrDuplicateCardID is returned when two cards of a deck share an id.
	ErrDuplicateCardID = errors.New("duplicate card id")
)
