package poker

import "math/bits"

// straights holds the rank mask of every straight, lowest first. The first
// entry is the wheel, A-2-3-4-5, with the Ace playing low. The straight at
// position i has rank Five+i as its high card.
var straights = [10]uint16{
	0b1_0000_0000_1111, // A2345
	0b0_0000_0001_1111, // 23456
	0b0_0000_0011_1110,
	0b0_0000_0111_1100,
	0b0_0000_1111_1000,
	0b0_0001_1111_0000,
	0b0_0011_1110_0000,
	0b0_0111_1100_0000,
	0b0_1111_1000_0000,
	0b1_1111_0000_0000, // TJQKA
}

// bestStraight returns the high rank of the strongest straight contained in
// mask. Straights are tried from the top so that a six or seven card run
// reports its highest straight.
func bestStraight(mask uint16) (Rank, bool) {
	for i := len(straights) - 1; i >= 0; i-- {
		if mask&straights[i] == straights[i] {
			return Five + Rank(i), true
		}
	}
	return 0, false
}

// topBits keeps only the n highest bits set in mask.
func topBits(mask uint16, n int) uint16 {
	var out uint16
	for r := int(Ace); r >= 0 && n > 0; r-- {
		if mask&(1<<r) != 0 {
			out |= 1 << r
			n--
		}
	}
	return out
}

// highestRank returns the highest rank whose bit is set in mask. mask must not be 0.
func highestRank[T uint16 | uint32](mask T) Rank {
	return Rank(bits.Len32(uint32(mask)) - 1)
}

// detector is one category test. It reports false when the hand does not
// hold that category.
type detector func(*Hand) (RankKey, bool)

// evalOrder lists the category tests from the strongest category down. The
// first test that matches decides the hand.
var evalOrder = []detector{
	(*Hand).StraightFlush,
	(*Hand).Quads,
	(*Hand).FullHouse,
	(*Hand).Flush,
	(*Hand).Straight,
	(*Hand).Trips,
	(*Hand).Pairs,
}

// HandValue returns the RankKey of the hand. An empty hand is a high card
// hand with every field 0.
func (h *Hand) HandValue() RankKey {
	for _, test := range evalOrder {
		if k, ok := test(h); ok {
			return k
		}
	}
	return newRankKey(HighCard, 0, 0, uint32(h.allRankBits))
}

// StraightFlush looks for five consecutive ranks of one suit.
//
// When only one suit holds a straight, that suit decides. When several do,
// which needs ten cards or more, StraightFlush does not stop at the first
// suit found scanning from Spade down: it keeps the highest straight and
// only falls back to the higher suit when the straights are equal. So
// 9s8s7s6s5s plus KhQhJhTh9h is a King high straight flush in hearts, and
// adding cards to a hand never lowers its key.
func (h *Hand) StraightFlush() (RankKey, bool) {
	best, found := RankKey{}, false
	for s := NumSuits - 1; s >= 0; s-- {
		if h.suitCounts[s] < 5 {
			continue
		}
		high, ok := bestStraight(h.rankBitsBySuit[s])
		if ok && (!found || uint32(high) > best.primary) {
			best, found = newRankKey(StraightFlush, uint32(high), uint32(s), 0), true
		}
	}
	return best, found
}

// Quads finds the highest rank held four times. The rank mask of the whole
// hand breaks ties.
func (h *Hand) Quads() (RankKey, bool) {
	for r := NumRanks - 1; r >= 0; r-- {
		if h.rankCounts[r] >= 4 {
			return newRankKey(Quads, uint32(r), 0, uint32(h.allRankBits)), true
		}
	}
	return RankKey{}, false
}

// FullHouse takes the highest rank held exactly three times, then the highest
// other rank held at least twice. A second triple counts as the pair.
func (h *Hand) FullHouse() (RankKey, bool) {
	trip := -1
	for r := NumRanks - 1; r >= 0; r-- {
		if h.rankCounts[r] == 3 {
			trip = r
			break
		}
	}
	if trip < 0 {
		return RankKey{}, false
	}
	for r := NumRanks - 1; r >= 0; r-- {
		if r != trip && h.rankCounts[r] > 1 {
			return newRankKey(FullHouse, uint32(trip), uint32(r), 0), true
		}
	}
	return RankKey{}, false
}

// Flush keeps the five highest cards of a suit holding more than four cards.
// As with StraightFlush, when two suits qualify the stronger five cards win
// instead of the first suit scanned, and equal cards go to the higher suit.
func (h *Hand) Flush() (RankKey, bool) {
	best, found := RankKey{}, false
	for s := NumSuits - 1; s >= 0; s-- {
		if h.suitCounts[s] <= 4 {
			continue
		}
		top5 := topBits(h.rankBitsBySuit[s], 5)
		if !found || uint32(top5) > best.secondary {
			best, found = newRankKey(Flush, uint32(highestRank(top5)), uint32(top5), uint32(s)), true
		}
	}
	return best, found
}

// Straight reports the highest run of five ranks in any suits. The Ace plays
// low in A-2-3-4-5.
func (h *Hand) Straight() (RankKey, bool) {
	if high, ok := bestStraight(h.allRankBits); ok {
		return newRankKey(Straight, uint32(high), 0, 0), true
	}
	return RankKey{}, false
}

// Trips finds the highest rank held at least three times.
func (h *Hand) Trips() (RankKey, bool) {
	for r := NumRanks - 1; r >= 0; r-- {
		if h.rankCounts[r] > 2 {
			return newRankKey(Trips, uint32(r), 0, uint32(h.allRankBits)), true
		}
	}
	return RankKey{}, false
}

// Pairs reports two pair as soon as a second paired rank is found scanning
// down from the Ace, or one pair if only one rank is paired.
func (h *Hand) Pairs() (RankKey, bool) {
	first := -1
	for r := NumRanks - 1; r >= 0; r-- {
		if h.rankCounts[r] < 2 {
			continue
		}
		if first >= 0 {
			return newRankKey(TwoPair, uint32(first), uint32(r), uint32(h.allRankBits)), true
		}
		first = r
	}
	if first < 0 {
		return RankKey{}, false
	}
	return newRankKey(Pair, uint32(first), 0, uint32(h.allRankBits)), true
}

// Kicker returns the highest rank in the hand other than exclude.
//
// Parameters:
//   - exclude: the rank to skip, usually the rank already scored
//
// Returns the rank and true, or false if the hand holds no other rank.
func (h *Hand) Kicker(exclude Rank) (Rank, bool) {
	for r := NumRanks - 1; r >= 0; r-- {
		if h.rankCounts[r] > 0 && Rank(r) != exclude {
			return Rank(r), true
		}
	}
	return 0, false
}
