// Package poker ranks poker hands of any size into a standard category and a
// totally ordered key.
//
// # Core Types
//
// Card: An immutable playing card with a rank (Two to Ace), a suit and a
// canonical index from 0 to 51.
//
// Hand: An append-only set of cards. Each Add keeps per-rank and per-suit
// counts and 13 bit rank masks in step with the cards.
//
// RankKey: The result of evaluating a hand. Keys compare by category, then by
// three category specific tie-break fields.
//
// PokerDeck: A shared card supply. Hands take their cards from it so that no
// card is dealt twice.
//
// # Hand Evaluation
//
// HandValue runs the category tests from straight flush down to pairs and
// returns the first match, falling back to high card. Kickers are folded
// into a rank mask, so comparing two keys never needs the cards again.
package poker
