// piece.go defines Color, Figure and the packed Piece type.

package chess

// Color is white or black, or NoColor for an empty square.
type Color uint8

const (
	NoColor Color = iota
	ColorWhite
	ColorBlack

	ColorArraySize = int(iota)
	ColorMinValue  = ColorWhite
	ColorMaxValue  = ColorBlack
)

// Opposite returns the other color. NoColor maps to NoColor.
func (c Color) Opposite() Color {
	// ColorWhite=1, ColorBlack=2: 3-c swaps them, and leaves NoColor(0)
	// mapped to 3, which callers must never rely on; guard explicitly.
	if c == NoColor {
		return NoColor
	}
	return 3 - c
}

func (c Color) String() string {
	switch c {
	case ColorWhite:
		return "white"
	case ColorBlack:
		return "black"
	default:
		return "none"
	}
}

// Figure is a piece kind, independent of color.
type Figure uint8

const (
	NoFigure Figure = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King

	FigureArraySize = int(iota)
	FigureMinValue  = Pawn
	FigureMaxValue  = King
)

var figureSymbols = [FigureArraySize]byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}

func (f Figure) String() string {
	return string(figureSymbols[f])
}

// Piece packs a Color and a Figure into one byte: bit 3 is the color (0
// white, 1 black), bits 0-2 the figure. NoPiece is the zero value.
type Piece uint8

const NoPiece Piece = 0

// ColorFigure builds a Piece from its parts.
func ColorFigure(c Color, f Figure) Piece {
	if c == NoColor || f == NoFigure {
		return NoPiece
	}
	colorBit := Piece(0)
	if c == ColorBlack {
		colorBit = 1
	}
	return Piece(f) | colorBit<<3
}

// Color returns the piece's color, or NoColor if the piece is NoPiece.
func (p Piece) Color() Color {
	if p == NoPiece {
		return NoColor
	}
	if p&(1<<3) != 0 {
		return ColorBlack
	}
	return ColorWhite
}

// Figure returns the piece's figure, or NoFigure if the piece is NoPiece.
func (p Piece) Figure() Figure {
	return Figure(p &^ (1 << 3))
}

func (p Piece) String() string {
	if p == NoPiece {
		return "."
	}
	s := p.Figure().String()
	if p.Color() == ColorBlack {
		return string(s[0] + 'a' - 'A')
	}
	return s
}

// Castle is a bitmask of the four castling rights.
type Castle uint8

const (
	WhiteOO Castle = 1 << iota
	WhiteOOO
	BlackOO
	BlackOOO

	NoCastle  Castle = 0
	AnyCastle        = WhiteOO | WhiteOOO | BlackOO | BlackOOO
)

// CastlingRook returns the rook's home square for the given single
// castling right. c must have exactly one bit set.
func CastlingRook(c Castle) Square {
	switch c {
	case WhiteOO:
		return SquareH1
	case WhiteOOO:
		return SquareA1
	case BlackOO:
		return SquareH8
	case BlackOOO:
		return SquareA8
	default:
		return SquareA1
	}
}

func (c Castle) String() string {
	if c == NoCastle {
		return "-"
	}
	s := ""
	if c&WhiteOO != 0 {
		s += "K"
	}
	if c&WhiteOOO != 0 {
		s += "Q"
	}
	if c&BlackOO != 0 {
		s += "k"
	}
	if c&BlackOOO != 0 {
		s += "q"
	}
	return s
}
