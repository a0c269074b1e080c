//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package types

// PieceType is the colorless piece class. Ultima/Baroque Chess gives every
// class a distinct capture mechanism instead of a shared displacement rule.
type PieceType uint8

const (
	PtEmpty      PieceType = 0
	Stradler     PieceType = 1
	Coordinator  PieceType = 2
	Springer     PieceType = 3
	Chameleon    PieceType = 4
	Retractor    PieceType = 5
	Immobilizer  PieceType = 6
	King         PieceType = 7
	PtLength               = 8
)

// IsValid reports whether pt is one of the seven playable piece types.
// PtEmpty is not a piece but is a valid zero value for an unset capture slot.
func (pt PieceType) IsValid() bool {
	return pt <= King
}

// pieceTypeSymbols are the FEN letters for White pieces, indexed by PieceType.
var pieceTypeSymbols = [PtLength]byte{'.', 'P', 'R', 'N', 'B', 'Q', 'U', 'K'}

// Char returns the uppercase (White) FEN letter for pt.
func (pt PieceType) Char() byte {
	if !pt.IsValid() {
		return '-'
	}
	return pieceTypeSymbols[pt]
}

func (pt PieceType) String() string {
	switch pt {
	case PtEmpty:
		return "Empty"
	case Stradler:
		return "Stradler"
	case Coordinator:
		return "Coordinator"
	case Springer:
		return "Springer"
	case Chameleon:
		return "Chameleon"
	case Retractor:
		return "Retractor"
	case Immobilizer:
		return "Immobilizer"
	case King:
		return "King"
	default:
		return "N/A"
	}
}

// Piece is a colored piece: Color|PieceType, in 0..15, used directly to
// index the Position's 16-entry bitboard array (the mailbox is indexed by
// square and holds only the colourless PieceType).
type Piece uint8

const (
	PieceNone Piece = 0
	PieceLength     = 16
)

// MakePiece composes a Piece from a color and piece type.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(c) | Piece(pt)
}

// ColorOf returns the color encoded in p.
func (p Piece) ColorOf() Color {
	if p >= 8 {
		return Black
	}
	return White
}

// TypeOf returns the piece type encoded in p, stripping the color bit.
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 0x7)
}

// pieceSymbols mirrors the source's PIECE_SYMBOLS: White uppercase in 0..7,
// Black lowercase in 8..15, with index 0 and 8 unused (Color|Empty == 0 or 8).
var pieceSymbols = [PieceLength]byte{
	'.', 'P', 'R', 'N', 'B', 'Q', 'U', 'K',
	'.', 'p', 'r', 'n', 'b', 'q', 'u', 'k',
}

// Char returns the FEN letter for p ('.' if p is not an occupied square).
func (p Piece) Char() byte {
	return pieceSymbols[p]
}

func (p Piece) String() string {
	return string(p.Char())
}
