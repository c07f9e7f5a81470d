// square.go defines board squares and the bitboard partitions (files,
// ranks, diagonals, antidiagonals) that the attack geometry in attack.go
// is built from.

package chess

import "fmt"

// Square identifies one of the 64 board squares. index = file + 8*rank,
// file a..h = 0..7, rank 1..8 = 0..7.
type Square uint8

// Set of possible board squares, generated in a1..h1, a2..h2, ... order.
const (
	SquareA1 = Square(iota)
	SquareB1
	SquareC1
	SquareD1
	SquareE1
	SquareF1
	SquareG1
	SquareH1
	SquareA2
	SquareB2
	SquareC2
	SquareD2
	SquareE2
	SquareF2
	SquareG2
	SquareH2
	SquareA3
	SquareB3
	SquareC3
	SquareD3
	SquareE3
	SquareF3
	SquareG3
	SquareH3
	SquareA4
	SquareB4
	SquareC4
	SquareD4
	SquareE4
	SquareF4
	SquareG4
	SquareH4
	SquareA5
	SquareB5
	SquareC5
	SquareD5
	SquareE5
	SquareF5
	SquareG5
	SquareH5
	SquareA6
	SquareB6
	SquareC6
	SquareD6
	SquareE6
	SquareF6
	SquareG6
	SquareH6
	SquareA7
	SquareB7
	SquareC7
	SquareD7
	SquareE7
	SquareF7
	SquareG7
	SquareH7
	SquareA8
	SquareB8
	SquareC8
	SquareD8
	SquareE8
	SquareF8
	SquareG8
	SquareH8

	numSquares     = int(iota)
	SquareMinValue = SquareA1
	SquareMaxValue = SquareH8
)

// RankFile returns the square at rank r (0..7), file f (0..7).
func RankFile(r, f int) Square {
	return Square(r*8 + f)
}

// SquareFromString parses a square from standard chess notation, e.g. "e4".
func SquareFromString(s string) (Square, error) {
	if len(s) != 2 {
		return SquareA1, fmt.Errorf("chess: invalid square %q", s)
	}
	f, r := -1, -1
	if 'a' <= s[0] && s[0] <= 'h' {
		f = int(s[0] - 'a')
	}
	if '1' <= s[1] && s[1] <= '8' {
		r = int(s[1] - '1')
	}
	if f == -1 || r == -1 {
		return SquareA1, fmt.Errorf("chess: invalid square %q", s)
	}
	return RankFile(r, f), nil
}

// Bitboard returns the singleton bitboard with this square set.
func (sq Square) Bitboard() Bitboard {
	return 1 << uint(sq)
}

// Rank returns 0..7.
func (sq Square) Rank() int {
	return int(sq / 8)
}

// File returns 0..7.
func (sq Square) File() int {
	return int(sq % 8)
}

var squareNames = "a1b1c1d1e1f1g1h1a2b2c2d2e2f2g2h2a3b3c3d3e3f3g3h3a4b4c4d4e4f4g4h4a5b5c5d5e5f5g5h5a6b6c6d6e6f6g6h6a7b7c7d7e7f7g7h7a8b8c8d8e8f8g8h8"

func (sq Square) String() string {
	return squareNames[sq*2 : sq*2+2]
}

// files a..h as bitboards.
const (
	BbFileA Bitboard = 0x0101010101010101 << iota
	BbFileB
	BbFileC
	BbFileD
	BbFileE
	BbFileF
	BbFileG
	BbFileH
)

// ranks 1..8 as bitboards.
const (
	BbRank1 Bitboard = 0x00000000000000ff << (8 * iota)
	BbRank2
	BbRank3
	BbRank4
	BbRank5
	BbRank6
	BbRank7
	BbRank8
)

// FileBb returns the bitboard of file f (0..7).
func FileBb(f int) Bitboard {
	return BbFileA << uint(f)
}

// RankBb returns the bitboard of rank r (0..7).
func RankBb(r int) Bitboard {
	return BbRank1 << uint(8*r)
}

// filePartition[sq] is the file bitboard containing sq, per spec.md §4.1's
// "function mapping a square to the unique line through it".
var filePartition [numSquares]Bitboard

// rankPartition[sq] is the rank bitboard containing sq.
var rankPartition [numSquares]Bitboard

// a1h8Diagonals[sq] is the a1-h8-parallel diagonal bitboard containing sq.
var a1h8Diagonals [numSquares]Bitboard

// a8h1Antidiagonals[sq] is the a8-h1-parallel antidiagonal bitboard
// containing sq.
var a8h1Antidiagonals [numSquares]Bitboard

// BbA1H8Diagonal is the main diagonal, a1|b2|c3|...|h8.
const BbA1H8Diagonal Bitboard = 0x8040201008040201

// BbA8H1Antidiagonal is the main antidiagonal, a8|b7|c6|...|h1.
const BbA8H1Antidiagonal Bitboard = 0x0102040810204080

func init() {
	for sq := SquareMinValue; sq <= SquareMaxValue; sq++ {
		filePartition[sq] = FileBb(sq.File())
		rankPartition[sq] = RankBb(sq.Rank())
		a1h8Diagonals[sq] = diagonalBySquare(sq, true)
		a8h1Antidiagonals[sq] = diagonalBySquare(sq, false)
	}
}

// diagonalBySquare walks outward from sq along the requested diagonal
// direction and ORs in every square it passes through, including sq.
func diagonalBySquare(sq Square, a1h8 bool) Bitboard {
	r, f := sq.Rank(), sq.File()
	df := 1
	if !a1h8 {
		df = -1
	}
	bb := Bitboard(0)
	for rr, ff := r, f; rr >= 0 && rr < 8 && ff >= 0 && ff < 8; rr, ff = rr+1, ff+df {
		bb |= RankFile(rr, ff).Bitboard()
	}
	for rr, ff := r-1, f-df; rr >= 0 && rr < 8 && ff >= 0 && ff < 8; rr, ff = rr-1, ff-df {
		bb |= RankFile(rr, ff).Bitboard()
	}
	return bb
}

// FileOf returns the file bitboard through sq.
func FileOf(sq Square) Bitboard { return filePartition[sq] }

// RankOf returns the rank bitboard through sq.
func RankOf(sq Square) Bitboard { return rankPartition[sq] }

// DiagonalOf returns the a1h8-parallel diagonal bitboard through sq.
func DiagonalOf(sq Square) Bitboard { return a1h8Diagonals[sq] }

// AntidiagonalOf returns the a8h1-parallel antidiagonal bitboard through sq.
func AntidiagonalOf(sq Square) Bitboard { return a8h1Antidiagonals[sq] }
