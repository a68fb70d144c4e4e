package poker

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// Rank is the face value of a card, Two (0) through Ace (12).
type Rank uint8

// Card ranks, lowest to highest.
const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Suit is one of the four card suits (0-3).
type Suit uint8

// Card suits
const (
	Club    Suit = iota // ♣ (black)
	Diamond             // ♦ (red)
	Heart               // ♥ (red)
	Spade               // ♠ (black)
)

// Deck dimensions.
const (
	NumRanks = 13                  // ranks per suit
	NumSuits = 4                   // suits per deck
	NumCards = NumRanks * NumSuits // canonical indices run 0 to NumCards-1
)

// FaceDown is the display character for hidden cards
const (
	FaceDown = "▓"
)

const (
	rankChars = "23456789TJQKA"
	suitChars = "cdhs"
)

var rankNames = [NumRanks]string{
	"Two", "Three", "Four", "Five", "Six", "Seven", "Eight",
	"Nine", "Ten", "Jack", "Queen", "King", "Ace",
}

var suitNames = [NumSuits]string{"Clubs", "Diamonds", "Hearts", "Spades"}

// String returns the rank name, e.g. "Queen".
func (r Rank) String() string {
	if r >= NumRanks {
		return "?"
	}
	return rankNames[r]
}

// String returns the plural suit name, e.g. "Hearts".
func (s Suit) String() string {
	if s >= NumSuits {
		return "?"
	}
	return suitNames[s]
}

// Card represents a playing card with suit and rank.
// The zero Card is face down and not valid.
type Card struct {
	suit uint8 // 0-3: clubs, diamonds, hearts, spades
	face uint8 // rank+1, 0 = face down
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - suit: Club, Diamond, Heart or Spade
//   - rank: Two through Ace
//
// Returns the Card or an error if suit or rank is invalid.
func NewCard(suit Suit, rank Rank) (Card, error) {
	if suit >= NumSuits || rank >= NumRanks {
		return Card{}, fmt.Errorf("%w: suit %d, rank %d", ErrInvalidCard, suit, rank)
	}
	return Card{suit: uint8(suit), face: uint8(rank) + 1}, nil
}

// CardFromIndex converts a canonical index (0-51) to a Card. Indices run
// suit-major: 0-12 are the clubs Two through Ace, 13-25 the diamonds,
// 26-38 the hearts and 39-51 the spades.
func CardFromIndex(index int) (Card, error) {
	if index < 0 || index >= NumCards {
		return Card{}, fmt.Errorf("%w: index %d out of range", ErrInvalidCard, index)
	}
	return NewCard(Suit(index/NumRanks), Rank(index%NumRanks))
}

// ParseCard parses a two character short name such as "Ah" or "tc".
func ParseCard(name string) (Card, error) {
	if len(name) != 2 {
		return Card{}, fmt.Errorf("%w: short name %q", ErrInvalidCard, name)
	}
	r := strings.IndexByte(rankChars, upper(name[0]))
	s := strings.IndexByte(suitChars, lower(name[1]))
	if r < 0 || s < 0 {
		return Card{}, fmt.Errorf("%w: short name %q", ErrInvalidCard, name)
	}
	return NewCard(Suit(s), Rank(r))
}

// ParseRankName parses a long rank name. "Deuce" is accepted for Two.
func ParseRankName(name string) (Rank, error) {
	if strings.EqualFold(name, "deuce") {
		return Two, nil
	}
	for i, n := range rankNames {
		if strings.EqualFold(name, n) {
			return Rank(i), nil
		}
	}
	return 0, fmt.Errorf("%w: rank name %q", ErrInvalidCard, name)
}

// ParseSuitName parses a long suit name, singular or plural.
func ParseSuitName(name string) (Suit, error) {
	for i, n := range suitNames {
		if strings.EqualFold(name, n) || strings.EqualFold(name, n[:len(n)-1]) {
			return Suit(i), nil
		}
	}
	return 0, fmt.Errorf("%w: suit name %q", ErrInvalidCard, name)
}

// Valid reports whether c is a real card rather than the face down zero value.
func (c Card) Valid() bool {
	return c.face > 0 && c.face <= NumRanks && c.suit < NumSuits
}

// Suit returns the suit of the Card.
func (c Card) Suit() Suit {
	return Suit(c.suit)
}

// Rank returns the rank of the Card. It is meaningless for an invalid Card.
func (c Card) Rank() Rank {
	return Rank(c.face - 1)
}

// Index returns the canonical index (0-51) of the Card, or -1 if it is not valid.
func (c Card) Index() int {
	if !c.Valid() {
		return -1
	}
	return int(c.suit)*NumRanks + int(c.face-1)
}

// ShortName returns the two character name, e.g. "Ah".
func (c Card) ShortName() string {
	if !c.Valid() {
		return "??"
	}
	return string([]byte{rankChars[c.face-1], suitChars[c.suit]})
}

// LongName returns e.g. "Ace of Hearts".
func (c Card) LongName() string {
	if !c.Valid() {
		return "face down"
	}
	return c.Rank().String() + " of " + c.Suit().String()
}

// String returns a human-readable representation of the Card using suit symbols
// (♣, ♦, ♥, ♠) and rank characters (2-9, T, J, Q, K, A).
func (c Card) String() string {
	if !c.Valid() {
		return FaceDown
	}
	var suit string
	switch c.Suit() {
	case Club:
		suit = pterm.Black("♣")
	case Diamond:
		suit = pterm.LightRed("♦")
	case Heart:
		suit = pterm.LightRed("♥")
	case Spade:
		suit = pterm.Black("♠")
	}
	return string(rankChars[c.face-1]) + suit
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}
