package main

import (
	"log/slog"

	"github.com/luca-patrignani/handrank/domain/poker"
)

type result struct {
	hand        *poker.Hand
	key         poker.RankKey
	description string
	winner      bool
}

// parseHands builds one hand per packed argument, taking every card from d.
// A card already held by an earlier hand is logged and left out.
func parseHands(logger *slog.Logger, d poker.PokerDeck, args []string) []*poker.Hand {
	hands := make([]*poker.Hand, 0, len(args))
	for i, arg := range args {
		h := &poker.Hand{}
		if err := h.Add(d, poker.Packed(arg)); err != nil {
			logger.Warn("some cards were rejected", "hand", i+1, "input", arg, "error", err)
		}
		hands = append(hands, h)
	}
	return hands
}

// dealHands shuffles d and deals n hands of size cards each.
func dealHands(d poker.PokerDeck, n int, size int) ([]*poker.Hand, error) {
	if err := d.Shuffle(); err != nil {
		return nil, err
	}
	hands := make([]*poker.Hand, 0, n)
	for range n {
		h, err := d.DealHand(size)
		if err != nil {
			return nil, err
		}
		hands = append(hands, h)
	}
	return hands, nil
}

func evaluate(logger *slog.Logger, hands []*poker.Hand) []result {
	results := make([]result, len(hands))
	for i, h := range hands {
		results[i] = result{hand: h, key: h.HandValue()}
		if h.Size() != 5 && h.Size() != 7 {
			continue
		}
		desc, err := h.Describe()
		if err != nil {
			logger.Warn("no description", "hand", i+1, "error", err)
			continue
		}
		results[i].description = desc
	}
	for _, i := range poker.Best(hands...) {
		results[i].winner = true
	}
	return results
}
