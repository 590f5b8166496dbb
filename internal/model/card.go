package model

// Card is one flashcard answer to grade.
type Card struct {
	// ID identifies the card in reports. The deck loader fills it in when
	// the deck leaves it empty.
	ID string `json:"id" yaml:"id,omitempty"`

	// Expected is the reference answer, usually copied from a card field.
	// It may contain markup.
	Expected string `json:"expected" yaml:"expected"`

	// Typed is what the learner entered.
	Typed string `json:"typed" yaml:"typed"`

	// Language is the programming language name or alias. Empty means the
	// grader's default applies.
	Language string `json:"language,omitempty" yaml:"language,omitempty"`

	// Combining overrides the grader's combining setting for this card.
	Combining *bool `json:"combining,omitempty" yaml:"combining,omitempty"`
}

// Submission is the pair of texts prepared before comparison.
type Submission struct {
	Expected string
	Typed    string
}

// NewSubmission returns the submission for card.
func NewSubmission(card Card) *Submission {
	return &Submission{
		Expected: card.Expected,
		Typed:    card.Typed,
	}
}
