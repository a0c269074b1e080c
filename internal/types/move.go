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

// Move packs a from/to/piece move plus up to four captured piece types and
// four single-bit chameleon/coordinator flags into a single 32-bit word.
// The move is reversible without an undo stack: every side effect unmake
// needs to reverse is recoverable from the encoding itself.
//
//  BITMAP 32-bit
//  3 2 2 2 2 2 2 2 2 1 1 1 1 1 1 1 1 1 1
//  0 9 8 7 6 5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0
//  ---------------------------------------------------------------
//  c8|c7|c6|c5|  c4  |  c3  |  c2  |  c1  |  piece |    to    |  from
type Move uint32

const (
	// MoveNone is the zero value: no move.
	MoveNone Move = 0

	fromMask  Move = 0x3f
	toShift        = 6
	toMask    Move = 0xfc0
	pieceShift     = 12
	pieceMask Move = 0x7000
	c1Shift        = 15
	c1Mask    Move = 0x38000
	c2Shift        = 18
	c2Mask    Move = 0x1c0000
	c3Shift        = 21
	c3Mask    Move = 0xe00000
	c4Shift        = 24
	c4Mask    Move = 0x7000000
	c5Bit     Move = 1 << 27
	c6Bit     Move = 1 << 28
	c7Bit     Move = 1 << 29
	c8Bit     Move = 1 << 30
)

// CreateMove returns an encoded Move for a piece of type pt moving from
// from to to, with no captures set yet.
func CreateMove(from, to Square, pt PieceType) Move {
	return Move(from) | Move(to)<<toShift | Move(pt)<<pieceShift
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & fromMask)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m & toMask) >> toShift)
}

// Piece returns the type of piece that moved.
func (m Move) Piece() PieceType {
	return PieceType((m & pieceMask) >> pieceShift)
}

// C1 returns the piece type captured in the move's primary capture slot.
func (m Move) C1() PieceType {
	return PieceType((m & c1Mask) >> c1Shift)
}

// SetC1 sets the move's primary capture slot.
func (m *Move) SetC1(pt PieceType) {
	*m |= Move(pt) << c1Shift
}

// C2 returns the piece type captured in the move's second capture slot.
func (m Move) C2() PieceType {
	return PieceType((m & c2Mask) >> c2Shift)
}

// SetC2 sets the move's second capture slot.
func (m *Move) SetC2(pt PieceType) {
	*m |= Move(pt) << c2Shift
}

// C3 returns the piece type captured in the move's third capture slot.
func (m Move) C3() PieceType {
	return PieceType((m & c3Mask) >> c3Shift)
}

// SetC3 sets the move's third capture slot.
func (m *Move) SetC3(pt PieceType) {
	*m |= Move(pt) << c3Shift
}

// C4 returns the piece type captured in the move's fourth capture slot.
func (m Move) C4() PieceType {
	return PieceType((m & c4Mask) >> c4Shift)
}

// SetC4 sets the move's fourth capture slot.
func (m *Move) SetC4(pt PieceType) {
	*m |= Move(pt) << c4Shift
}

// C5..C8 are single-bit flags recording a chameleon-coordinator capture of
// the enemy king (when set on a coordinator move) or of the enemy
// coordinator (when set on a king move).
func (m Move) C5() bool { return m&c5Bit != 0 }
func (m Move) C6() bool { return m&c6Bit != 0 }
func (m Move) C7() bool { return m&c7Bit != 0 }
func (m Move) C8() bool { return m&c8Bit != 0 }

// SetC5..SetC8 set the corresponding chameleon-coordinator flag.
func (m *Move) SetC5() { *m |= c5Bit }
func (m *Move) SetC6() { *m |= c6Bit }
func (m *Move) SetC7() { *m |= c7Bit }
func (m *Move) SetC8() { *m |= c8Bit }

// IsValid reports whether m is not the zero move.
func (m Move) IsValid() bool {
	return m != MoveNone
}

// IsCapture reports whether m captures anything: any of bits 15..30
// (the C1-C4 capture slots and the C5-C8 chameleon-coordinator flags)
// non-zero.
func (m Move) IsCapture() bool {
	return m.C1() != PtEmpty || m.C2() != PtEmpty || m.C3() != PtEmpty || m.C4() != PtEmpty ||
		m.C5() || m.C6() || m.C7() || m.C8()
}

func (m Move) String() string {
	if m == MoveNone {
		return "no move"
	}
	return m.From().String() + m.To().String()
}
