// bitboard.go defines the Bitboard type and the primitive operations
// (population count, scan, byteswap, directional shifts) the rest of the
// package is built on.

package chess

import "math/bits"

// Bitboard is a set of squares, one bit per square, bit i = square i.
type Bitboard uint64

// Has reports whether sq is a member of bb.
func (bb Bitboard) Has(sq Square) bool {
	return bb&sq.Bitboard() != 0
}

// Count returns the number of set bits.
func (bb Bitboard) Count() int {
	return bits.OnesCount64(uint64(bb))
}

// LSB returns the least-significant set square. bb must be nonzero.
func (bb Bitboard) LSB() Square {
	return Square(bits.TrailingZeros64(uint64(bb)))
}

// Pop removes and returns the least-significant set square.
func (bb *Bitboard) Pop() Square {
	sq := bb.LSB()
	*bb &= *bb - 1
	return sq
}

// Empty reports whether the bitboard has no set squares.
func (bb Bitboard) Empty() bool {
	return bb == 0
}

// Bswap reverses the byte order of bb. This is the byte-level mirror that
// the Hyperbola-Quintessence algorithm in attack.go uses in place of a full
// bit reversal: it flips ranks (byte granularity) while leaving the bit
// order within each byte (file order within the byte's rank) untouched.
func Bswap(bb Bitboard) Bitboard {
	return Bitboard(bits.ReverseBytes64(uint64(bb)))
}

// North shifts every bit one rank towards rank 8.
func (bb Bitboard) North() Bitboard { return bb << 8 }

// South shifts every bit one rank towards rank 1.
func (bb Bitboard) South() Bitboard { return bb >> 8 }

// East shifts every bit one file towards file h, excluding wraparound.
func (bb Bitboard) East() Bitboard { return (bb &^ BbFileH) << 1 }

// West shifts every bit one file towards file a, excluding wraparound.
func (bb Bitboard) West() Bitboard { return (bb &^ BbFileA) >> 1 }

// Forward shifts towards the far rank for color c (north for white, south
// for black).
func (bb Bitboard) Forward(c Color) Bitboard {
	if c == ColorWhite {
		return bb.North()
	}
	return bb.South()
}

// Backward shifts towards the near rank for color c.
func (bb Bitboard) Backward(c Color) Bitboard {
	if c == ColorWhite {
		return bb.South()
	}
	return bb.North()
}

// squareBbTable holds the singleton bitboard of every square, indexed by
// Square. Nothing in the package reads it; Square.Bitboard computes 1<<sq
// directly.
var squareBbTable [numSquares]Bitboard

func init() {
	for sq := SquareMinValue; sq <= SquareMaxValue; sq++ {
		squareBbTable[sq] = sq.Bitboard()
	}
}
