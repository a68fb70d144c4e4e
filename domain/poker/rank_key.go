package poker

import (
	"cmp"
	"fmt"
)

// Category is a poker hand class. Larger values are stronger.
type Category uint8

// Hand categories, weakest first.
const (
	HighCard Category = iota
	Pair
	TwoPair
	Trips
	Straight
	Flush
	FullHouse
	Quads
	StraightFlush
)

var categoryNames = []string{
	"high card", "pair", "two pair", "three of a kind", "straight",
	"flush", "full house", "four of a kind", "straight flush",
}

// String returns the category name, e.g. "full house".
func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "unknown"
}

// RankKey is the comparable result of evaluating a hand: the category and
// three category specific tie-break fields, compared in that order.
//
//	category       primary        secondary       tertiary
//	StraightFlush  high rank      suit            0
//	Quads          quad rank      0               rank mask
//	FullHouse      trip rank      pair rank       0
//	Flush          top rank       top 5 mask      suit
//	Straight       high rank      0               0
//	Trips          trip rank      0               rank mask
//	TwoPair        high pair      low pair        rank mask
//	Pair           pair rank      0               rank mask
//	HighCard       0              0               rank mask
//
// A rank mask has bit r set for every rank r present, so comparing two masks
// as integers compares the kickers from the highest down.
type RankKey struct {
	category  Category
	primary   uint32
	secondary uint32
	tertiary  uint32
}

func newRankKey(c Category, primary, secondary, tertiary uint32) RankKey {
	return RankKey{category: c, primary: primary, secondary: secondary, tertiary: tertiary}
}

// Category returns the hand category.
func (k RankKey) Category() Category { return k.category }

// Primary returns the first tie-break field. See the RankKey table.
func (k RankKey) Primary() uint32 { return k.primary }

// Secondary returns the second tie-break field.
func (k RankKey) Secondary() uint32 { return k.secondary }

// Tertiary returns the last tie-break field.
func (k RankKey) Tertiary() uint32 { return k.tertiary }

// Compare orders two keys by category, then primary, secondary and tertiary.
//
// Parameters:
//   - other: the key to compare against
//
// Returns -1 if k is weaker than other, 0 if they tie and +1 if k is stronger.
func (k RankKey) Compare(other RankKey) int {
	if c := cmp.Compare(k.category, other.category); c != 0 {
		return c
	}
	if c := cmp.Compare(k.primary, other.primary); c != 0 {
		return c
	}
	if c := cmp.Compare(k.secondary, other.secondary); c != 0 {
		return c
	}
	return cmp.Compare(k.tertiary, other.tertiary)
}

// Less reports whether k is weaker than other.
func (k RankKey) Less(other RankKey) bool {
	return k.Compare(other) < 0
}

// Equal reports whether k and other tie.
func (k RankKey) Equal(other RankKey) bool {
	return k == other
}

// String describes the key, e.g. "full house, Kings over Aces".
func (k RankKey) String() string {
	switch k.category {
	case StraightFlush, Flush, Straight:
		return fmt.Sprintf("%s, %s high", k.category, Rank(k.primary))
	case Quads, Trips, Pair:
		return fmt.Sprintf("%s, %s", k.category, plural(Rank(k.primary)))
	case FullHouse, TwoPair:
		return fmt.Sprintf("%s, %s over %s", k.category, plural(Rank(k.primary)), plural(Rank(k.secondary)))
	}
	if k.tertiary == 0 {
		return k.category.String()
	}
	return fmt.Sprintf("%s, %s", k.category, highestRank(k.tertiary))
}

func plural(r Rank) string {
	if r == Six {
		return "Sixes"
	}
	return r.String() + "s"
}

// CompareHands evaluates both hands and compares their keys.
func CompareHands(a, b *Hand) int {
	return a.HandValue().Compare(b.HandValue())
}

// Best returns the indices of the strongest hands. More than one index is
// returned when hands tie. Nil hands are skipped, and Best returns nil when
// no hand is left.
func Best(hands ...*Hand) []int {
	var winners []int
	var best RankKey
	for i, h := range hands {
		if h == nil {
			continue
		}
		k := h.HandValue()
		switch {
		case winners == nil || k.Compare(best) > 0:
			best = k
			winners = []int{i}
		case k.Equal(best):
			winners = append(winners, i)
		}
	}
	return winners
}
