package poker

import (
	"github.com/luca-patrignani/handrank/domain/deck"
)

// PokerDeck wraps a generic deck of card indices and provides poker-specific
// card handling. It converts between Card values and the canonical indices
// the underlying deck stores, and is the Supply hands take their cards from.
type PokerDeck struct {
	*deck.Deck
}

// NewPokerDeck creates a full 52 card deck. Options are passed to deck.New.
func NewPokerDeck(opts ...deck.Option) PokerDeck {
	return PokerDeck{Deck: deck.New(opts...)}
}

// Take removes c from the deck. It fails if c was already dealt or taken.
func (d PokerDeck) Take(c Card) error {
	if !c.Valid() {
		return ErrInvalidCard
	}
	return d.Deck.Take(c.Index())
}

// DealCard deals the top card of the deck.
func (d PokerDeck) DealCard() (Card, error) {
	i, err := d.Deck.Deal()
	if err != nil {
		return Card{}, err
	}
	return CardFromIndex(i)
}

// DealHand deals n cards into a new hand.
func (d PokerDeck) DealHand(n int) (*Hand, error) {
	idx, err := d.Deck.DealN(n)
	if err != nil {
		return nil, err
	}
	in := make(Batch, len(idx))
	for i, c := range idx {
		in[i] = Index(c)
	}
	return NewHand(in...)
}
