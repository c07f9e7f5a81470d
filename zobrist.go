// zobrist.go builds the random feature tables used to maintain an
// incremental Zobrist hash on State, following the same
// math/rand.New(rand.NewSource(...)) style the teacher's attack.go uses
// for its own (unrelated) magic-number search.

package chess

import "math/rand"

const zobristSeed = 0x5A6E1357

var (
	zobristPiece    [ColorArraySize][FigureArraySize][numSquares]uint64
	zobristColor    uint64
	zobristCastle   [AnyCastle + 1]uint64
	zobristEnPassant [8]uint64
)

func init() {
	rnd := rand.New(rand.NewSource(zobristSeed))
	for c := ColorMinValue; c <= ColorMaxValue; c++ {
		for f := FigureMinValue; f <= FigureMaxValue; f++ {
			for sq := SquareMinValue; sq <= SquareMaxValue; sq++ {
				zobristPiece[c][f][sq] = rnd.Uint64()
			}
		}
	}
	zobristColor = rnd.Uint64()
	for i := range zobristCastle {
		zobristCastle[i] = rnd.Uint64()
	}
	for i := range zobristEnPassant {
		zobristEnPassant[i] = rnd.Uint64()
	}
}

func zobristPieceKey(p Piece, sq Square) uint64 {
	return zobristPiece[p.Color()][p.Figure()][sq]
}
