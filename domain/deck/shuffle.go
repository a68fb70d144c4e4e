package deck

import "encoding/binary"

// Shuffle shuffles the cards left in the deck with a Fisher-Yates shuffle
// reading its randomness from the deck stream.
func (d *Deck) Shuffle() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stream == nil {
		d.stream = suite.RandomStream()
	}
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.uniform(uint32(i + 1))
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
	return nil
}

// uniform returns a number in [0, n) without modulo bias.
func (d *Deck) uniform(n uint32) uint32 {
	limit := ^uint32(0) - ^uint32(0)%n
	var buf [4]byte
	for {
		clear(buf[:])
		d.stream.XORKeyStream(buf[:], buf[:])
		v := binary.BigEndian.Uint32(buf[:])
		if v < limit {
			return v % n
		}
	}
}
