package poker

import (
	"errors"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/handrank/domain/deck"
)

func mustHand(t *testing.T, cards string) *Hand {
	t.Helper()
	h, err := NewHand(Packed(cards))
	require.NoError(t, err)
	return h
}

func TestHandAdd(t *testing.T) {
	x := &Hand{}
	baseDeck := NewPokerDeck()

	// indices
	require.NoError(t, x.Add(baseDeck, Index(2), Index(3), Index(4), Index(5)))
	assert.Equal(t, 4, x.Size())

	// illegal cards are not added
	err := x.Add(baseDeck, Index(-1), Index(55), ShortName("q"), nil)
	assert.ErrorIs(t, err, ErrInvalidCard)
	assert.Equal(t, 4, x.Size())

	// a card value
	baseDeck.Reset()
	as, err := ParseCard("As")
	require.NoError(t, err)
	require.NoError(t, x.Add(baseDeck, as))
	assert.Equal(t, 5, x.Size())

	// short names
	baseDeck.Reset()
	y := &Hand{}
	require.NoError(t, y.Add(baseDeck, ShortName("Ah"), ShortName("As"), ShortName("5d")))
	assert.Equal(t, 3, y.Size())

	// duplicates are rejected
	err = y.Add(baseDeck, ShortName("Ah"))
	assert.ErrorIs(t, err, ErrDuplicateCard)
	assert.Equal(t, 3, y.Size())

	// packed string
	baseDeck.Reset()
	y = &Hand{}
	require.NoError(t, y.Add(baseDeck, Packed("AhAdAs2d")))
	assert.Equal(t, 4, y.Size())

	// a card cannot be taken twice from the same deck
	z := &Hand{}
	err = z.Add(baseDeck, Packed("AhAdAs2d5d"))
	assert.ErrorIs(t, err, ErrCardUnavailable)
	assert.ErrorIs(t, err, deck.ErrAlreadyTaken)
	assert.Equal(t, 1, z.Size())
	assert.Equal(t, "5d", z.Cards()[0].ShortName())
}

func TestHandAddPartialBatch(t *testing.T) {
	h := mustHand(t, "Kd")
	err := h.Add(nil, Batch{ShortName("Ah"), Index(99), ShortName("Kd"), Packed("2c3"), ShortName("zz")})

	assert.Equal(t, []string{"Kd", "Ah", "2c"}, shortNames(h.Cards()))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCard)
	assert.ErrorIs(t, err, ErrDuplicateCard)

	var joined interface{ Unwrap() []error }
	require.True(t, errors.As(err, &joined))
	assert.Len(t, joined.Unwrap(), 3)
}

func TestHandPackedIgnoresTrailingChar(t *testing.T) {
	h := mustHand(t, "AhKhQ")
	assert.Equal(t, 2, h.Size())
}

func TestHandRejectedSupplyLeavesHandUnchanged(t *testing.T) {
	d := NewPokerDeck()
	ah, _ := ParseCard("Ah")
	require.NoError(t, d.Take(ah))

	h := &Hand{}
	err := h.Add(d, ah)
	assert.ErrorIs(t, err, ErrCardUnavailable)
	assert.Equal(t, 0, h.Size())
	assert.Equal(t, 0, h.SuitCount(Heart))
	assert.Equal(t, 0, h.RankCount(Ace))
	assert.Zero(t, h.SuitRanks(Heart))
	assert.Zero(t, h.Ranks())
}

func TestHandDuplicateDoesNotTakeFromSupply(t *testing.T) {
	d := NewPokerDeck()
	h := &Hand{}
	require.NoError(t, h.Add(d, ShortName("Ah")))
	require.Equal(t, deck.Size-1, d.Len())

	assert.ErrorIs(t, h.Add(d, ShortName("Ah")), ErrDuplicateCard)
	assert.Equal(t, deck.Size-1, d.Len())
}

func TestHandMerge(t *testing.T) {
	a := mustHand(t, "AhKh")
	b := mustHand(t, "KhQhJh")

	err := a.Merge(b)
	assert.ErrorIs(t, err, ErrDuplicateCard)
	assert.Equal(t, []string{"Ah", "Kh", "Qh", "Jh"}, shortNames(a.Cards()))
	assert.Equal(t, 3, b.Size())

	require.NoError(t, a.Merge(nil))
	assert.Equal(t, 4, a.Size())
}

func TestHandDerivedFields(t *testing.T) {
	h := mustHand(t, "AhAd5d5s9c")

	assert.Equal(t, 1, h.SuitCount(Heart))
	assert.Equal(t, 2, h.SuitCount(Diamond))
	assert.Equal(t, 1, h.SuitCount(Spade))
	assert.Equal(t, 1, h.SuitCount(Club))
	assert.Equal(t, 2, h.RankCount(Ace))
	assert.Equal(t, 2, h.RankCount(Five))
	assert.Equal(t, 1, h.RankCount(Nine))
	assert.Equal(t, uint16(1<<Ace|1<<Five), h.SuitRanks(Diamond))
	assert.Equal(t, uint16(1<<Ace|1<<Five|1<<Nine), h.Ranks())
}

func TestHandInvariants(t *testing.T) {
	d := NewPokerDeck(deck.WithSeed([]byte("invariants")))
	require.NoError(t, d.Shuffle())

	h := &Hand{}
	for d.Len() > 0 {
		c, err := d.DealCard()
		require.NoError(t, err)
		require.NoError(t, h.Add(nil, c))

		total := 0
		for r := Two; r <= Ace; r++ {
			n := 0
			for s := Club; s <= Spade; s++ {
				if h.SuitRanks(s)&(1<<r) != 0 {
					n++
				}
			}
			require.Equal(t, n, h.RankCount(r))
			require.Equal(t, h.RankCount(r) > 0, h.Ranks()&(1<<r) != 0)
			total += n
		}
		suits := 0
		for s := Club; s <= Spade; s++ {
			require.Equal(t, bits.OnesCount16(h.SuitRanks(s)), h.SuitCount(s))
			suits += h.SuitCount(s)
		}
		require.Equal(t, h.Size(), total)
		require.Equal(t, h.Size(), suits)
	}
	assert.Equal(t, NumCards, h.Size())
}

func shortNames(cards []Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.ShortName()
	}
	return out
}
