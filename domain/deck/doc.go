// Package deck implements a 52 card supply addressed by canonical card
// index. Cards can be dealt from the top, taken by index, and the remaining
// order can be saved with State and loaded back with Restore.
//
// Shuffling reads from a kyber cipher stream: the Ed25519 suite random
// stream by default, or a seeded XOF for reproducible deals.
package deck
