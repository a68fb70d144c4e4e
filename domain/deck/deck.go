package deck

import (
	"crypto/cipher"
	"errors"
	"fmt"
	"slices"
	"sync"

	"go.dedis.ch/kyber/v4/suites"
)

// Size is the number of cards in a full deck.
const Size = 52

var (
	ErrAlreadyTaken = errors.New("card already taken")
	ErrEmpty        = errors.New("deck is empty")
	ErrInvalidState = errors.New("invalid deck state")
)

var suite suites.Suite = suites.MustFind("Ed25519")

// Deck is the supply of undealt cards, identified by their canonical index
// (0-51). Cards leave the deck when dealt or taken and only come back on
// Reset or Restore.
//
// A Deck is safe for concurrent use, so several hands may take cards from
// the same deck. The zero Deck is empty until Reset or Restore fills it, and
// shuffles with the suite random stream.
type Deck struct {
	mu     sync.Mutex
	cards  []int // undealt cards, next card to deal last
	stream cipher.Stream
}

// Option configures a Deck created by New.
type Option func(*Deck) *Deck

// New creates a full, unshuffled deck.
func New(opts ...Option) *Deck {
	d := &Deck{cards: fullDeck(), stream: suite.RandomStream()}
	for _, opt := range opts {
		d = opt(d)
	}
	return d
}

// WithStream makes Shuffle draw its randomness from stream. A seeded
// suite XOF gives a reproducible order.
func WithStream(stream cipher.Stream) Option {
	return func(d *Deck) *Deck {
		d.stream = stream
		return d
	}
}

// WithSeed makes Shuffle reproducible by reading from the suite XOF seeded
// with seed.
func WithSeed(seed []byte) Option {
	return WithStream(suite.XOF(seed))
}

func fullDeck() []int {
	cards := make([]int, Size)
	for i := range cards {
		cards[i] = Size - 1 - i
	}
	return cards
}

// Len returns the number of cards left.
func (d *Deck) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.cards)
}

// Contains reports whether card is still in the deck.
func (d *Deck) Contains(card int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Contains(d.cards, card)
}

// Take removes a specific card from the deck.
func (d *Deck) Take(card int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if card < 0 || card >= Size {
		return fmt.Errorf("card %d out of range", card)
	}
	i := slices.Index(d.cards, card)
	if i < 0 {
		return fmt.Errorf("%w: %d", ErrAlreadyTaken, card)
	}
	d.cards = slices.Delete(d.cards, i, i+1)
	return nil
}

// Deal removes and returns the top card.
func (d *Deck) Deal() (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.cards) == 0 {
		return 0, ErrEmpty
	}
	c := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return c, nil
}

// DealN deals n cards at once. Nothing is dealt if fewer than n are left.
func (d *Deck) DealN(n int) ([]int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if n > len(d.cards) {
		return nil, fmt.Errorf("%w: %d cards requested, %d left", ErrEmpty, n, len(d.cards))
	}
	out := make([]int, n)
	for i := range out {
		out[i] = d.cards[len(d.cards)-1-i]
	}
	d.cards = d.cards[:len(d.cards)-n]
	return out, nil
}

// Reset puts every card back in its initial order.
func (d *Deck) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cards = fullDeck()
}

// State returns the undealt cards in dealing order, next card first.
func (d *Deck) State() []int {
	d.mu.Lock()
	defer d.mu.Unlock()
	state := slices.Clone(d.cards)
	slices.Reverse(state)
	return state
}

// Restore replaces the content of the deck with a state previously returned
// by State. The state must hold distinct cards in range.
func (d *Deck) Restore(state []int) error {
	seen := [Size]bool{}
	for _, c := range state {
		if c < 0 || c >= Size || seen[c] {
			return fmt.Errorf("%w: card %d", ErrInvalidState, c)
		}
		seen[c] = true
	}
	cards := slices.Clone(state)
	slices.Reverse(cards)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.cards = cards
	return nil
}
