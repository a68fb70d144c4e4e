package poker

import (
	"errors"
	"fmt"
)

// Supply is a source of cards shared between hands, typically a PokerDeck.
// Take removes the card from the supply or returns an error if it cannot.
type Supply interface {
	Take(c Card) error
}

// Hand is an append-only set of cards together with the counts and rank
// masks the category detectors read. The zero Hand is empty and ready to use.
//
// A Hand is not safe for concurrent use.
type Hand struct {
	cards          []Card
	suitCounts     [NumSuits]int
	rankCounts     [NumRanks]int
	rankBitsBySuit [NumSuits]uint16 // bit r set iff the hand holds rank r in that suit
	allRankBits    uint16           // bit r set iff the hand holds rank r in any suit
}

// NewHand creates a hand holding the given cards, with no supply.
func NewHand(inputs ...Input) (*Hand, error) {
	h := &Hand{}
	return h, h.Add(nil, inputs...)
}

// Add resolves the inputs into cards and records each of them. If supply is
// not nil every card is taken from it before being recorded.
//
// Add is not atomic: an invalid, duplicate or unavailable card is skipped and
// reported, while the other cards of the same call are still recorded. The
// returned error joins one error per rejected item; test it with errors.Is
// against ErrInvalidCard, ErrDuplicateCard and ErrCardUnavailable.
func (h *Hand) Add(supply Supply, inputs ...Input) error {
	cards, errs := Batch(inputs).resolve()
	for _, c := range cards {
		if err := h.add(supply, c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (h *Hand) add(supply Supply, c Card) error {
	if h.Contains(c) {
		return fmt.Errorf("%w: %s", ErrDuplicateCard, c.ShortName())
	}
	if supply != nil {
		if err := supply.Take(c); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrCardUnavailable, c.ShortName(), err)
		}
	}
	h.cards = append(h.cards, c)
	h.suitCounts[c.suit]++
	h.rankCounts[c.Rank()]++
	h.rankBitsBySuit[c.suit] |= 1 << c.Rank()
	h.allRankBits |= 1 << c.Rank()
	return nil
}

// Merge adds all the cards of other to h without involving any supply.
// Merging a nil hand adds nothing.
func (h *Hand) Merge(other *Hand) error {
	if other == nil {
		return nil
	}
	in := make(Batch, len(other.cards))
	for i, c := range other.cards {
		in[i] = c
	}
	return h.Add(nil, in...)
}

// Size returns the number of cards in the hand.
func (h *Hand) Size() int {
	return len(h.cards)
}

// Cards returns a copy of the cards in insertion order.
func (h *Hand) Cards() []Card {
	return append([]Card(nil), h.cards...)
}

// Contains reports whether the hand already holds c.
func (h *Hand) Contains(c Card) bool {
	if !c.Valid() {
		return false
	}
	return h.rankBitsBySuit[c.suit]&(1<<c.Rank()) != 0
}

// SuitCount returns the number of cards of suit s.
func (h *Hand) SuitCount(s Suit) int {
	return h.suitCounts[s]
}

// RankCount returns the number of cards of rank r.
func (h *Hand) RankCount(r Rank) int {
	return h.rankCounts[r]
}

// SuitRanks returns the rank mask of suit s: bit r is set iff the hand holds
// the card of rank r in that suit.
func (h *Hand) SuitRanks(s Suit) uint16 {
	return h.rankBitsBySuit[s]
}

// Ranks returns the rank mask of the whole hand regardless of suit.
func (h *Hand) Ranks() uint16 {
	return h.allRankBits
}

func (h *Hand) String() string {
	s := ""
	for i, c := range h.cards {
		if i > 0 {
			s += " "
		}
		s += c.String()
	}
	return s
}
