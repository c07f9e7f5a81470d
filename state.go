// state.go implements the board state: piece placement, side to move,
// castling rights, en-passant target, and the make/unmake machinery that
// keeps them (and the Zobrist hash) consistent. It follows the teacher's
// position.go push/pop-undo-stack idiom, generalized from zurichess's
// combined ByFigure/ByColor arrays to the board[color][figure] layout
// this engine's move taxonomy expects.

package chess

import "fmt"

// NoEnPassantSquare marks the absence of an en-passant target, one past
// the last valid Square.
const NoEnPassantSquare Square = 64

// Undo captures everything UnmakeMove needs to reverse a move, without
// recomputing it from board state (which a capture onto a square the
// piece that just occupied it vacated would make ambiguous).
type Undo struct {
	move             Move
	movingPiece      Piece
	captured         Piece
	capturedSquare   Square
	prevCastle       Castle
	prevEnPassant    Square
	prevHash         uint64
	prevHalfmove     int
	prevTheirAttacks Bitboard
}

// State is a complete chess position: piece placement, side to move,
// castling rights and en-passant target, plus bookkeeping (halfmove
// clock, fullmove number, Zobrist hash) and the undo stack MakeMove
// pushes to and UnmakeMove pops from.
type State struct {
	Board [ColorArraySize][FigureArraySize]Bitboard

	us            Color
	castling      Castle
	enPassant     Square
	halfmoveClock int
	fullmoveNum   int
	hash          uint64

	// theirAttacks caches AttacksBy(side that just moved), computed once
	// per MakeMove (UnmakeMove restores the saved value from Undo) rather
	// than recomputed while building the current side's move list
	// (castling needs to know which squares the side that just moved is
	// attacking; ordinary king moves do not consult it).
	theirAttacks Bitboard

	history []Undo
}

// NewState returns the standard initial position.
func NewState() *State {
	s, err := ParseFEN(StartFEN)
	if err != nil {
		panic(fmt.Sprintf("chess: start FEN failed to parse: %v", err))
	}
	return s
}

// Clone returns an independent copy of s. The undo history is copied too,
// so the clone can still UnmakeMove back past the point it was cloned at.
func (s *State) Clone() *State {
	c := *s
	c.history = append([]Undo(nil), s.history...)
	return &c
}

// SideToMove returns the color to move.
func (s *State) SideToMove() Color { return s.us }

// Castling returns the current castling rights.
func (s *State) Castling() Castle { return s.castling }

// EnPassant returns the current en-passant target square, or
// NoEnPassantSquare if none.
func (s *State) EnPassant() Square { return s.enPassant }

// Hash returns the Zobrist hash of the position.
func (s *State) Hash() uint64 { return s.hash }

// HalfmoveClock returns the number of halfmoves since the last capture or
// pawn move.
func (s *State) HalfmoveClock() int { return s.halfmoveClock }

// FullmoveNumber returns the current fullmove counter, starting at 1.
func (s *State) FullmoveNumber() int { return s.fullmoveNum }

// Get returns the piece on sq, or NoPiece.
func (s *State) Get(sq Square) Piece {
	bb := sq.Bitboard()
	for c := ColorMinValue; c <= ColorMaxValue; c++ {
		for f := FigureMinValue; f <= FigureMaxValue; f++ {
			if s.Board[c][f]&bb != 0 {
				return ColorFigure(c, f)
			}
		}
	}
	return NoPiece
}

// OccupancyOf returns every square occupied by a piece of color c.
func (s *State) OccupancyOf(c Color) Bitboard {
	var bb Bitboard
	for f := FigureMinValue; f <= FigureMaxValue; f++ {
		bb |= s.Board[c][f]
	}
	return bb
}

// Occupancy returns every occupied square.
func (s *State) Occupancy() Bitboard {
	return s.OccupancyOf(ColorWhite) | s.OccupancyOf(ColorBlack)
}

// AttacksBy returns the union of attack sets of every piece of color c,
// given the current occupancy. Per moves::all_attacks in the original
// engine, this includes attacks on c's own pieces.
func (s *State) AttacksBy(c Color) Bitboard {
	occ := s.Occupancy()
	var bb Bitboard
	for f := FigureMinValue; f <= FigureMaxValue; f++ {
		pieces := s.Board[c][f]
		for pieces != 0 {
			sq := pieces.Pop()
			bb |= AttacksFrom(f, c, sq, occ)
		}
	}
	return bb
}

// TheirKingAttacked reports whether the side to move is currently
// attacking the opposing king. It is a fresh computation, not the
// theirAttacks cache: it is meaningful only right after a move that may
// have walked a king into (or left it in) check, which is exactly when
// the generator must restrict the side to move to capturing that king.
func (s *State) TheirKingAttacked() bool {
	them := s.us.Opposite()
	kingBB := s.Board[them][King]
	if kingBB == 0 {
		return false
	}
	return s.AttacksBy(s.us)&kingBB != 0
}

// Winner returns the color that has captured the opposing king, or
// NoColor if both kings remain on the board.
func (s *State) Winner() Color {
	if s.Board[ColorWhite][King] == 0 {
		return ColorBlack
	}
	if s.Board[ColorBlack][King] == 0 {
		return ColorWhite
	}
	return NoColor
}

func (s *State) put(sq Square, p Piece) {
	s.Board[p.Color()][p.Figure()] |= sq.Bitboard()
	s.hash ^= zobristPieceKey(p, sq)
}

func (s *State) remove(sq Square) Piece {
	p := s.Get(sq)
	if p != NoPiece {
		s.Board[p.Color()][p.Figure()] &^= sq.Bitboard()
		s.hash ^= zobristPieceKey(p, sq)
	}
	return p
}

// MakeMove applies m, which must be in the move list GenerateMoves
// returns for s, and pushes an Undo record so UnmakeMove can reverse it.
func (s *State) MakeMove(m Move) {
	mover := s.us
	from, to := m.From(), m.To()
	piece := s.Get(from)

	undo := Undo{
		move:             m,
		movingPiece:      piece,
		prevCastle:       s.castling,
		prevEnPassant:    s.enPassant,
		prevHash:         s.hash,
		prevHalfmove:     s.halfmoveClock,
		prevTheirAttacks: s.theirAttacks,
	}

	// The en-passant capture square must be read off the pre-move
	// en-passant target before anything below overwrites it — reading it
	// late was the source of regression2 (R1) in the original engine.
	captureSquare := to
	if piece.Figure() == Pawn && to == s.enPassant && s.enPassant != NoEnPassantSquare {
		captureSquare = RankFile(from.Rank(), to.File())
	}

	if m.IsCapture() {
		undo.captured = s.remove(captureSquare)
		undo.capturedSquare = captureSquare
	}

	s.remove(from)
	if promo := m.PromotionFigure(); promo != NoFigure {
		s.put(to, ColorFigure(mover, promo))
	} else {
		s.put(to, piece)
	}

	if m.IsCastle() {
		s.moveCastlingRook(mover, m.Type(), true)
	}

	s.hash ^= zobristCastle[s.castling]
	s.updateCastlingRights(from, to)
	s.hash ^= zobristCastle[s.castling]

	if s.enPassant != NoEnPassantSquare {
		s.hash ^= zobristEnPassant[s.enPassant.File()]
	}
	if m.IsDoublePush() {
		s.enPassant = RankFile((from.Rank()+to.Rank())/2, from.File())
	} else {
		s.enPassant = NoEnPassantSquare
	}
	if s.enPassant != NoEnPassantSquare {
		s.hash ^= zobristEnPassant[s.enPassant.File()]
	}

	if piece.Figure() == Pawn || m.IsCapture() {
		s.halfmoveClock = 0
	} else {
		s.halfmoveClock++
	}
	if mover == ColorBlack {
		s.fullmoveNum++
	}

	s.us = mover.Opposite()
	s.hash ^= zobristColor
	s.theirAttacks = s.AttacksBy(s.us.Opposite())

	s.history = append(s.history, undo)
}

// UnmakeMove reverses the last move applied by MakeMove. It panics if
// there is no move to unmake, which would be a programming error in the
// caller (typically the move-generation tree walker).
func (s *State) UnmakeMove() {
	n := len(s.history)
	if n == 0 {
		panic("chess: UnmakeMove called with empty history")
	}
	undo := s.history[n-1]
	s.history = s.history[:n-1]
	m := undo.move

	s.us = s.us.Opposite()
	mover := s.us

	s.remove(m.To())
	s.put(m.From(), undo.movingPiece)

	if m.IsCastle() {
		s.moveCastlingRook(mover, m.Type(), false)
	}
	if m.IsCapture() {
		s.put(undo.capturedSquare, undo.captured)
	}

	s.castling = undo.prevCastle
	s.enPassant = undo.prevEnPassant
	s.halfmoveClock = undo.prevHalfmove
	s.theirAttacks = undo.prevTheirAttacks
	s.hash = undo.prevHash
	if mover == ColorBlack {
		s.fullmoveNum--
	}
}

// moveCastlingRook relocates the castling rook alongside the king move
// MakeMove/UnmakeMove already applied to the king itself. forward selects
// the home-to-castled direction (true) or its reverse (false).
func (s *State) moveCastlingRook(mover Color, mt MoveType, forward bool) {
	rank := 0
	castledFile := 5
	right := WhiteOO
	if mt == CastleQueensideMove {
		castledFile = 3
		right = WhiteOOO
	}
	if mover == ColorBlack {
		rank = 7
		if mt == CastleKingsideMove {
			right = BlackOO
		} else {
			right = BlackOOO
		}
	}
	home, castled := CastlingRook(right), RankFile(rank, castledFile)
	if forward {
		s.put(castled, s.remove(home))
	} else {
		s.put(home, s.remove(castled))
	}
}

// updateCastlingRights drops whichever rights a move to/from home squares
// invalidates: a king or rook leaving its home square drops its own
// side's corresponding right(s); a capture landing on a rook's home
// square drops that right too, regardless of which piece makes the
// capture (regression3 / R2 in the original test suite).
func (s *State) updateCastlingRights(from, to Square) {
	for _, sq := range [2]Square{from, to} {
		switch sq {
		case SquareE1:
			s.castling &^= WhiteOO | WhiteOOO
		case SquareE8:
			s.castling &^= BlackOO | BlackOOO
		case SquareA1:
			s.castling &^= WhiteOOO
		case SquareH1:
			s.castling &^= WhiteOO
		case SquareA8:
			s.castling &^= BlackOOO
		case SquareH8:
			s.castling &^= BlackOO
		}
	}
}

// RequireConsistent checks a set of structural invariants and returns an
// *InvariantError describing the first one violated, or nil. It is meant
// to run in tests and in debug builds of callers, not on every move.
func (s *State) RequireConsistent() error {
	var seen Bitboard
	for c := ColorMinValue; c <= ColorMaxValue; c++ {
		for f := FigureMinValue; f <= FigureMaxValue; f++ {
			bb := s.Board[c][f]
			if bb&seen != 0 {
				return invariantErrorf("square occupied by more than one piece (color=%v figure=%v)", c, f)
			}
			seen |= bb
		}
	}
	if s.Board[ColorWhite][King].Count() > 1 {
		return invariantErrorf("white has more than one king")
	}
	if s.Board[ColorBlack][King].Count() > 1 {
		return invariantErrorf("black has more than one king")
	}
	if s.castling&WhiteOO != 0 && (s.Get(SquareE1) != ColorFigure(ColorWhite, King) || s.Get(SquareH1) != ColorFigure(ColorWhite, Rook)) {
		return invariantErrorf("WhiteOO castling right without king/rook on home squares")
	}
	if s.castling&WhiteOOO != 0 && (s.Get(SquareE1) != ColorFigure(ColorWhite, King) || s.Get(SquareA1) != ColorFigure(ColorWhite, Rook)) {
		return invariantErrorf("WhiteOOO castling right without king/rook on home squares")
	}
	if s.castling&BlackOO != 0 && (s.Get(SquareE8) != ColorFigure(ColorBlack, King) || s.Get(SquareH8) != ColorFigure(ColorBlack, Rook)) {
		return invariantErrorf("BlackOO castling right without king/rook on home squares")
	}
	if s.castling&BlackOOO != 0 && (s.Get(SquareE8) != ColorFigure(ColorBlack, King) || s.Get(SquareA8) != ColorFigure(ColorBlack, Rook)) {
		return invariantErrorf("BlackOOO castling right without king/rook on home squares")
	}
	if s.enPassant != NoEnPassantSquare {
		r := s.enPassant.Rank()
		if r != 2 && r != 5 {
			return invariantErrorf("en-passant square %v is not on rank 3 or rank 6", s.enPassant)
		}
	}
	if s.halfmoveClock < 0 {
		return invariantErrorf("negative halfmove clock")
	}
	if s.us != ColorWhite && s.us != ColorBlack {
		return invariantErrorf("side to move is not a real color")
	}
	if want := s.AttacksBy(s.us.Opposite()); s.theirAttacks != want {
		return invariantErrorf("theirAttacks cache %#x does not match recomputed attacks %#x", uint64(s.theirAttacks), uint64(want))
	}
	return nil
}
