package poker

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCard is returned for a malformed short name, an out of range
	// index or an unrecognized input.
	ErrInvalidCard = errors.New("invalid card")
	// ErrDuplicateCard is returned when the card is already in the hand.
	ErrDuplicateCard = errors.New("duplicate card")
	// ErrCardUnavailable is returned when the card supply refuses the card.
	ErrCardUnavailable = errors.New("card unavailable")
)

// Input is anything a Hand accepts: a Card, an Index, a ShortName, a Packed
// string of short names, or a Batch mixing all of them.
type Input interface {
	resolve() ([]Card, []error)
}

// Index is a canonical card index in [0, 52).
type Index int

// ShortName is a two character card name such as "Ah".
type ShortName string

// Packed is a run of concatenated short names such as "AhKd2c". It is read in
// two character chunks and a trailing single character is ignored.
type Packed string

// Batch is a sequence of inputs resolved in order.
type Batch []Input

func (c Card) resolve() ([]Card, []error) {
	if !c.Valid() {
		return nil, []error{fmt.Errorf("%w: face down card", ErrInvalidCard)}
	}
	return []Card{c}, nil
}

func (i Index) resolve() ([]Card, []error) {
	c, err := CardFromIndex(int(i))
	if err != nil {
		return nil, []error{err}
	}
	return []Card{c}, nil
}

func (n ShortName) resolve() ([]Card, []error) {
	c, err := ParseCard(string(n))
	if err != nil {
		return nil, []error{err}
	}
	return []Card{c}, nil
}

func (p Packed) resolve() ([]Card, []error) {
	var cards []Card
	var errs []error
	for s := string(p); len(s) > 1; s = s[2:] {
		c, err := ParseCard(s[:2])
		if err != nil {
			errs = append(errs, err)
			continue
		}
		cards = append(cards, c)
	}
	return cards, errs
}

func (b Batch) resolve() ([]Card, []error) {
	var cards []Card
	var errs []error
	for _, in := range b {
		c, e := resolve(in)
		cards = append(cards, c...)
		errs = append(errs, e...)
	}
	return cards, errs
}

func resolve(in Input) ([]Card, []error) {
	if in == nil {
		return nil, []error{fmt.Errorf("%w: nil input", ErrInvalidCard)}
	}
	return in.resolve()
}
