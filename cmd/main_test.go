package main

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/handrank/domain/deck"
	"github.com/luca-patrignani/handrank/domain/poker"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestParseHandsShareTheDeck(t *testing.T) {
	d := poker.NewPokerDeck()
	hands := parseHands(discard(), d, []string{"AhKh", "AhQs", "zz2c"})
	require.Len(t, hands, 3)
	assert.Equal(t, 2, hands[0].Size())
	assert.Equal(t, 1, hands[1].Size())
	assert.Equal(t, 1, hands[2].Size())
	assert.Equal(t, deck.Size-4, d.Len())
}

func TestDealHands(t *testing.T) {
	d := poker.NewPokerDeck(deck.WithSeed([]byte("cli")))
	hands, err := dealHands(d, players, handSize)
	require.NoError(t, err)
	require.Len(t, hands, players)
	seen := map[poker.Card]bool{}
	for _, h := range hands {
		assert.Equal(t, handSize, h.Size())
		for _, c := range h.Cards() {
			assert.False(t, seen[c], c.ShortName())
			seen[c] = true
		}
	}
	assert.Equal(t, deck.Size-players*handSize, d.Len())

	_, err = dealHands(d, 10, handSize)
	assert.ErrorIs(t, err, deck.ErrEmpty)
}

func TestEvaluate(t *testing.T) {
	d := poker.NewPokerDeck()
	hands := parseHands(discard(), d, []string{"2c2d7h9sJd", "AhKhQhJhTh", "3c3d", "AsKsQsJsTs8s2h"})
	require.Equal(t, 7, hands[3].Size())
	results := evaluate(discard(), hands)
	require.Len(t, results, 4)
	assert.False(t, results[0].winner)
	assert.False(t, results[1].winner)
	assert.True(t, results[3].winner)
	assert.Equal(t, poker.StraightFlush, results[3].key.Category())
	assert.NotEmpty(t, results[0].description)
	assert.NotEmpty(t, results[3].description)
	assert.Empty(t, results[2].description)
}

func TestRender(t *testing.T) {
	d := poker.NewPokerDeck()
	hands := parseHands(discard(), d, []string{"KdKhKsAdAh", "2c3d"})
	results := evaluate(discard(), hands)

	table, err := renderTable(results)
	require.NoError(t, err)
	table = pterm.RemoveColorFromString(table)
	assert.True(t, strings.Contains(table, "full house, Kings over Aces"), table)

	box := pterm.RemoveColorFromString(winnerBox(results))
	assert.Contains(t, box, "Hand 1 wins with full house")
	assert.NotContains(t, box, "Hand 2")

	assert.Contains(t, winnerBox(nil), "No hands")
}
