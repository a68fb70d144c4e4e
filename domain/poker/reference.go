package poker

import (
	"fmt"

	"github.com/paulhankin/poker"
)

// Std converts the Card to its github.com/paulhankin/poker representation,
// where the Ace is rank 1 and the King rank 13.
func (c Card) Std() (poker.Card, error) {
	var zero poker.Card
	if !c.Valid() {
		return zero, fmt.Errorf("%w: face down card", ErrInvalidCard)
	}
	rank := poker.Rank(c.Rank() + 2)
	if c.Rank() == Ace {
		rank = 1
	}
	card, err := poker.MakeCard(poker.Suit(c.suit), rank)
	if err != nil {
		return zero, fmt.Errorf("invalid card %s: %w", c.ShortName(), err)
	}
	return card, nil
}

func (h *Hand) stdCards() ([]poker.Card, error) {
	out := make([]poker.Card, len(h.cards))
	for i, c := range h.cards {
		sc, err := c.Std()
		if err != nil {
			return nil, err
		}
		out[i] = sc
	}
	return out, nil
}

// ReferenceScore scores a five or seven card hand with the table based
// evaluator of github.com/paulhankin/poker. Higher scores are stronger. The
// score only looks at the best five cards, so unlike HandValue it ignores a
// suit and any kicker beyond the fifth card.
func (h *Hand) ReferenceScore() (int16, error) {
	cards, err := h.stdCards()
	if err != nil {
		return 0, err
	}
	switch len(cards) {
	case 5:
		return poker.Eval5((*[5]poker.Card)(cards)), nil
	case 7:
		return poker.Eval7((*[7]poker.Card)(cards)), nil
	}
	return 0, fmt.Errorf("cannot score a hand of %d cards", len(cards))
}

// Describe returns a text description of the best five cards of a five or
// seven card hand.
func (h *Hand) Describe() (string, error) {
	if h.Size() != 5 && h.Size() != 7 {
		return "", fmt.Errorf("cannot describe a hand of %d cards", h.Size())
	}
	cards, err := h.stdCards()
	if err != nil {
		return "", err
	}
	return poker.Describe(cards)
}
