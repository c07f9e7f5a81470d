// move.go implements the move taxonomy and packed representation
// described by moves.cpp/move.cpp in the original engine: a move is its
// type, its origin square and its destination square, packed into a
// single machine word.

package chess

import "fmt"

// MoveType distinguishes the thirteen kinds of move the generator can
// produce. The kind tells whether a move captures, double-pushes, castles
// or promotes (and to which figure); it does not name the moving piece or
// mark en passant, so MakeMove also reads those from the board.
type MoveType uint8

const (
	NormalMove MoveType = iota
	DoublePushMove
	CastleKingsideMove
	CastleQueensideMove
	CaptureMove
	PromotionKnightMove
	PromotionBishopMove
	PromotionRookMove
	PromotionQueenMove
	CapturingPromotionKnightMove
	CapturingPromotionBishopMove
	CapturingPromotionRookMove
	CapturingPromotionQueenMove

	numMoveTypes = int(iota)
	invalidMoveType MoveType = 15
)

var moveTypeNames = [numMoveTypes]string{
	"normal",
	"double_push",
	"castle_kingside",
	"castle_queenside",
	"capture",
	"promotion_knight",
	"promotion_bishop",
	"promotion_rook",
	"promotion_queen",
	"capturing_promotion_knight",
	"capturing_promotion_bishop",
	"capturing_promotion_rook",
	"capturing_promotion_queen",
}

func (mt MoveType) String() string {
	if int(mt) < numMoveTypes {
		return moveTypeNames[mt]
	}
	return "invalid"
}

// promotionFigureByType maps a promotion move type to the figure the pawn
// becomes. Non-promotion types map to NoFigure.
var promotionFigureByType = map[MoveType]Figure{
	PromotionKnightMove:           Knight,
	PromotionBishopMove:           Bishop,
	PromotionRookMove:             Rook,
	PromotionQueenMove:            Queen,
	CapturingPromotionKnightMove:  Knight,
	CapturingPromotionBishopMove:  Bishop,
	CapturingPromotionRookMove:    Rook,
	CapturingPromotionQueenMove:   Queen,
}

// Move packs a MoveType (4 bits), a from-square (6 bits) and a to-square
// (6 bits) into 16 bits, matching the bit layout of the original engine's
// Move class (nbits_type=4, nbits_from=6, nbits_to=6).
type Move uint16

const (
	moveToShift   = 0
	moveFromShift = 6
	moveTypeShift = 12

	moveSquareMask = 0x3f
	moveTypeMask   = 0xf
)

// NoMove carries the unused move type 15 (with from and to both a1), so
// it is never produced by the generator and can be used as a "no move
// available" sentinel. It is not the zero Move, which decodes as a
// normal move a1->a1.
const NoMove Move = Move(invalidMoveType) << moveTypeShift

// NewMove packs mt, from and to into a Move.
func NewMove(mt MoveType, from, to Square) Move {
	return Move(mt&moveTypeMask)<<moveTypeShift |
		Move(from&moveSquareMask)<<moveFromShift |
		Move(to&moveSquareMask)<<moveToShift
}

// Type returns the move's kind.
func (m Move) Type() MoveType {
	return MoveType(m>>moveTypeShift) & moveTypeMask
}

// From returns the move's origin square.
func (m Move) From() Square {
	return Square(m>>moveFromShift) & moveSquareMask
}

// To returns the move's destination square.
func (m Move) To() Square {
	return Square(m>>moveToShift) & moveSquareMask
}

// IsCapture reports whether the move removes an enemy piece from its
// destination square (en passant is handled separately by the mover,
// since its capture square differs from To()).
func (m Move) IsCapture() bool {
	switch m.Type() {
	case CaptureMove,
		CapturingPromotionKnightMove, CapturingPromotionBishopMove,
		CapturingPromotionRookMove, CapturingPromotionQueenMove:
		return true
	default:
		return false
	}
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	_, ok := promotionFigureByType[m.Type()]
	return ok
}

// PromotionFigure returns the figure a pawn promotes to, or NoFigure if
// the move is not a promotion.
func (m Move) PromotionFigure() Figure {
	return promotionFigureByType[m.Type()]
}

// IsCastle reports whether the move is a castling move.
func (m Move) IsCastle() bool {
	return m.Type() == CastleKingsideMove || m.Type() == CastleQueensideMove
}

// IsDoublePush reports whether the move is a pawn double push (the only
// move kind that creates an en-passant target square).
func (m Move) IsDoublePush() bool {
	return m.Type() == DoublePushMove
}

func (m Move) String() string {
	if m == NoMove {
		return "Move(none)"
	}
	return fmt.Sprintf("Move(%s->%s; %s)", m.From(), m.To(), m.Type())
}

// GoString supports %#v formatting in test failure output.
func (m Move) GoString() string {
	return m.String()
}

// UCI renders the move in coordinate notation (e.g. "e2e4", "e7e8q"),
// matching the subset of UCI the ambient ParseCoordinateMove accepts.
func (m Move) UCI() string {
	s := m.From().String() + m.To().String()
	if f := m.PromotionFigure(); f != NoFigure {
		s += string(f.String()[0] + 'a' - 'A')
	}
	return s
}
