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

// Package position holds the Ultima board state and the make/unmake logic
// that mutates it. Move generation lives in the sibling movegen package,
// which consumes Position only through its exported accessors.
package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fkopp/ultimago/internal/assert"
	. "github.com/fkopp/ultimago/internal/types"
)

// StartFen is the canonical Ultima/Baroque Chess starting position.
const StartFen = "unbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNU w 0 1"

// ReadFenError reports a malformed FEN string: an unrecognised piece letter,
// a missing field, or an unparsable integer.
type ReadFenError struct {
	Reason string
}

func (e *ReadFenError) Error() string {
	return fmt.Sprintf("position: invalid FEN: %s", e.Reason)
}

// Position is the complete, mutable state of one Ultima game: a colourless
// mailbox, the 16 per-color/per-piece-type occupancy bitboards, side to
// move and the two FEN move counters.
type Position struct {
	board     [64]PieceType
	bitboards [16]Bitboard
	toPlay    Color
	halfmoves uint32
	fullmoves uint32

	// zobristHash is reserved for incremental hashing; the core never reads
	// or updates it. See DESIGN.md.
	zobristHash uint64
}

// NewPosition returns the canonical Ultima starting position.
func NewPosition() *Position {
	pos, err := FromFEN(StartFen)
	if err != nil {
		panic(err)
	}
	return pos
}

// FromFEN parses fen into a Position. fen must be the whitespace-separated
// quadruple "<ranks> <stm> <halfmoves> <fullmoves>"; there is no
// castling/en-passant field. A literal "-" fullmoves field is accepted and
// treated as 0.
func FromFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) != 4 {
		return nil, &ReadFenError{Reason: fmt.Sprintf("expected 4 fields, got %d", len(fields))}
	}

	pos := &Position{}
	if err := pos.setupRanks(fields[0]); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "w":
		pos.toPlay = White
	case "b":
		pos.toPlay = Black
	default:
		return nil, &ReadFenError{Reason: "side to move must be 'w' or 'b'"}
	}

	half, err := strconv.ParseUint(fields[2], 10, 32)
	if err != nil {
		return nil, &ReadFenError{Reason: "halfmoves: " + err.Error()}
	}
	pos.halfmoves = uint32(half)

	if fields[3] == "-" {
		pos.fullmoves = 0
	} else {
		full, err := strconv.ParseUint(fields[3], 10, 32)
		if err != nil {
			return nil, &ReadFenError{Reason: "fullmoves: " + err.Error()}
		}
		pos.fullmoves = uint32(full)
	}

	return pos, nil
}

func (p *Position) setupRanks(ranks string) error {
	rank := 7
	file := 0
	for _, r := range ranks {
		switch {
		case r == '/':
			rank--
			file = 0
			if rank < 0 {
				return &ReadFenError{Reason: "too many ranks"}
			}
		case r >= '1' && r <= '8':
			file += int(r - '0')
		default:
			pt, color, err := pieceFromChar(byte(r))
			if err != nil {
				return err
			}
			if file > 7 || rank < 0 {
				return &ReadFenError{Reason: "rank overflow"}
			}
			sq := SquareOf(File(file), Rank(rank))
			p.placePiece(color, pt, sq)
			file++
		}
	}
	return nil
}

func pieceFromChar(ch byte) (PieceType, Color, error) {
	color := White
	if ch >= 'a' && ch <= 'z' {
		color = Black
	}
	switch ch | 0x20 {
	case 'p':
		return Stradler, color, nil
	case 'r':
		return Coordinator, color, nil
	case 'n':
		return Springer, color, nil
	case 'b':
		return Chameleon, color, nil
	case 'q':
		return Retractor, color, nil
	case 'u':
		return Immobilizer, color, nil
	case 'k':
		return King, color, nil
	default:
		return PtEmpty, White, &ReadFenError{Reason: fmt.Sprintf("unrecognised piece letter %q", string(ch))}
	}
}

func (p *Position) placePiece(c Color, pt PieceType, sq Square) {
	p.board[sq] = pt
	p.bitboards[MakePiece(c, pt)].PushSquare(sq)
	p.bitboards[Piece(c)].PushSquare(sq)
}

func (p *Position) removePiece(c Color, pt PieceType, sq Square) {
	p.board[sq] = PtEmpty
	p.bitboards[MakePiece(c, pt)].PopSquare(sq)
	p.bitboards[Piece(c)].PopSquare(sq)
}

// ToPlay returns the side to move.
func (p *Position) ToPlay() Color { return p.toPlay }

// Halfmoves returns the halfmove counter.
func (p *Position) Halfmoves() uint32 { return p.halfmoves }

// Fullmoves returns the fullmove counter (parsed from FEN, not maintained
// by MakeMove/UnmakeMove; see DESIGN.md).
func (p *Position) Fullmoves() uint32 { return p.fullmoves }

// PieceAt returns the colourless piece type standing on sq, PtEmpty if none.
func (p *Position) PieceAt(sq Square) PieceType { return p.board[sq] }

// PiecesBb returns the bitboard of pieces of type pt belonging to c.
func (p *Position) PiecesBb(c Color, pt PieceType) Bitboard { return p.bitboards[MakePiece(c, pt)] }

// OccupiedBy returns the occupancy bitboard of c.
func (p *Position) OccupiedBy(c Color) Bitboard { return p.bitboards[Piece(c)] }

// OccupiedAll returns the union of both colors' occupancy.
func (p *Position) OccupiedAll() Bitboard { return p.OccupiedBy(White) | p.OccupiedBy(Black) }

// KingSquare returns c's king square, or SqNone if c has none on the board.
func (p *Position) KingSquare(c Color) Square {
	kings := p.PiecesBb(c, King)
	if kings.IsEmpty() {
		return SqNone
	}
	return kings.Lsb()
}

// MakeMove applies m in place: removes every piece named by m's capture
// slots (deterministically re-deriving each capture square from the same
// geometry that produced it during generation), relocates the mover, flips
// the side to move and advances the halfmove counter.
func (p *Position) MakeMove(m Move) {
	from, to, pt := m.From(), m.To(), m.Piece()
	mover := p.toPlay
	enemy := mover.Flip()

	p.applyCaptures(m, mover, enemy, to)

	togglePieceSquares(&p.bitboards[MakePiece(mover, pt)], from, to)
	togglePieceSquares(&p.bitboards[Piece(mover)], from, to)
	p.board[to] = pt
	p.board[from] = PtEmpty

	p.toPlay = enemy
	p.halfmoves++

	if assert.DEBUG {
		p.checkInvariants()
	}
}

// UnmakeMove reverses m: the exact mirror of MakeMove. The side to move is
// flipped back to the mover first so that friendly-geometry lookups (king
// and chameleon squares) see the same state MakeMove saw.
func (p *Position) UnmakeMove(m Move) {
	from, to, pt := m.From(), m.To(), m.Piece()
	mover := p.toPlay.Flip()
	enemy := mover.Flip()
	p.toPlay = mover
	p.halfmoves--

	togglePieceSquares(&p.bitboards[MakePiece(mover, pt)], from, to)
	togglePieceSquares(&p.bitboards[Piece(mover)], from, to)
	p.board[from] = pt
	p.board[to] = PtEmpty

	p.applyCaptures(m, mover, enemy, to)

	if assert.DEBUG {
		p.checkInvariants()
	}
}

// togglePieceSquares XORs the from/to bits of a moved piece's bitboard; the
// same mask applied twice (make, then unmake) is its own inverse.
func togglePieceSquares(bb *Bitboard, from, to Square) {
	*bb ^= from.Bb() | to.Bb()
}

// applyCaptures places or removes (the call is self-inverse: invoked once
// from each direction against opposite board states) every piece named by
// m's capture slots, recomputing each slot's square from the same geometry
// §4.F specifies for the moving piece's class.
func (p *Position) applyCaptures(m Move, mover, enemy Color, to Square) {
	toggle := func(pt PieceType, sq Square) {
		if pt == PtEmpty || sq == SqNone {
			return
		}
		if p.board[sq] == PtEmpty {
			p.placePiece(enemy, pt, sq)
		} else {
			p.removePiece(enemy, pt, sq)
		}
	}

	switch m.Piece() {
	case Stradler:
		dirs := [4]Direction{North, East, South, West}
		slots := [4]PieceType{m.C1(), m.C2(), m.C3(), m.C4()}
		for i, d := range dirs {
			toggle(slots[i], to.To(d))
		}

	case Coordinator:
		kingSq := p.KingSquare(mover)
		corners := DeathSquares(to, kingSq)
		toggle(m.C1(), corners[0])
		toggle(m.C2(), corners[1])
		p.applyChameleonCoordinatorFlags(m, mover, to, King, toggle)

	case Springer:
		toggle(m.C1(), SpringerVictim(m.From(), to))

	case Retractor:
		from := m.From()
		for _, d := range Directions {
			if from.To(d) == to {
				toggle(m.C1(), from.To(opposite(d)))
				break
			}
		}

	case King:
		toggle(m.C1(), to)
		if coordSq := p.coordinatorSquareExcluding(mover, to); coordSq != SqNone {
			corners := DeathSquares(to, coordSq)
			toggle(m.C2(), corners[0])
			toggle(m.C3(), corners[1])
		}
		p.applyChameleonCoordinatorFlags(m, mover, to, Coordinator, toggle)

	case Immobilizer, Chameleon:
		// Neither class ever sets a capture slot: the immobilizer never
		// captures, and a chameleon's own move never does either (see
		// §9 / DESIGN.md).
	}
}

// applyChameleonCoordinatorFlags toggles c5..c8 against the two death
// squares each of the mover's (up to two) chameleons forms with to,
// targeting the enemy piece of type target.
func (p *Position) applyChameleonCoordinatorFlags(m Move, mover Color, to Square, target PieceType, toggle func(PieceType, Square)) {
	flags := [4]bool{m.C5(), m.C6(), m.C7(), m.C8()}
	idx := 0
	for cb := p.PiecesBb(mover, Chameleon); !cb.IsEmpty() && idx < 2; idx++ {
		chSq := cb.PopLsb()
		corners := DeathSquares(to, chSq)
		if flags[idx*2] {
			toggle(target, corners[0])
		}
		if flags[idx*2+1] {
			toggle(target, corners[1])
		}
	}
}

// coordinatorSquareExcluding returns c's coordinator square, ignoring one
// that happens to sit on skip (guards a false positive when the king's
// displacement capture just landed on what had been the enemy's square;
// a friendly coordinator can never actually occupy skip here, but the
// check keeps the lookup honest if that ever changes).
func (p *Position) coordinatorSquareExcluding(c Color, skip Square) Square {
	coords := p.PiecesBb(c, Coordinator)
	if coords.IsEmpty() {
		return SqNone
	}
	sq := coords.Lsb()
	if sq == skip {
		return SqNone
	}
	return sq
}

// opposite returns the direction facing back the way d came from.
func opposite(d Direction) Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	case Northeast:
		return Southwest
	case Southwest:
		return Northeast
	case Southeast:
		return Northwest
	case Northwest:
		return Southeast
	default:
		panic("position: invalid direction")
	}
}

// checkInvariants debug-asserts the §3 data-model invariants. Compiled out
// of release builds.
func (p *Position) checkInvariants() {
	for sq := SqA1; sq < SqNone; sq++ {
		found := PtEmpty
		hits := 0
		for c := White; ; c = c.Flip() {
			for pt := Stradler; pt <= King; pt++ {
				if p.bitboards[MakePiece(c, pt)].Has(sq) {
					found = pt
					hits++
				}
			}
			if c == Black {
				break
			}
		}
		assert.Assert(hits <= 1, "position: square %s claimed by more than one piece bitboard", sq)
		assert.Assert(p.board[sq] == found, "position: mailbox/bitboard mismatch at %s", sq)
	}
	for c := White; ; c = c.Flip() {
		var union Bitboard
		for pt := Stradler; pt <= King; pt++ {
			union |= p.bitboards[MakePiece(c, pt)]
		}
		assert.Assert(union == p.OccupiedBy(c), "position: %s occupancy does not equal union of piece bitboards", c)
		assert.Assert(p.PiecesBb(c, King).PopCount() <= 1, "position: %s has more than one king", c)
		assert.Assert(p.PiecesBb(c, Coordinator).PopCount() <= 1, "position: %s has more than one coordinator", c)
		assert.Assert(p.PiecesBb(c, Immobilizer).PopCount() <= 1, "position: %s has more than one immobilizer", c)
		assert.Assert(p.PiecesBb(c, Retractor).PopCount() <= 1, "position: %s has more than one retractor", c)
		if c == Black {
			break
		}
	}
}

// StringBoard renders the board as an 8x8 grid, rank 8 at the top, in the
// source's own "A B C D..." header style.
func (p *Position) StringBoard() string {
	var b strings.Builder
	b.WriteString("  A B C D E F G H \n")
	for rank := 7; rank >= 0; rank-- {
		b.WriteString(" -----------------\n")
		b.WriteString(strconv.Itoa(rank + 1))
		for file := 0; file < 8; file++ {
			sq := SquareOf(File(file), Rank(rank))
			b.WriteByte('|')
			pt := p.board[sq]
			if pt == PtEmpty {
				b.WriteByte('.')
				continue
			}
			c := White
			if p.OccupiedBy(Black).Has(sq) {
				c = Black
			}
			b.WriteByte(MakePiece(c, pt).Char())
		}
		b.WriteByte('|')
		b.WriteString(strconv.Itoa(rank + 1))
		b.WriteByte('\n')
	}
	b.WriteString(" -----------------\n")
	b.WriteString("  A B C D E F G H \n")
	return b.String()
}

// StringFen renders the position back into FEN form.
func (p *Position) StringFen() string {
	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := SquareOf(File(file), Rank(rank))
			pt := p.board[sq]
			if pt == PtEmpty {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			c := White
			if p.OccupiedBy(Black).Has(sq) {
				c = Black
			}
			b.WriteByte(MakePiece(c, pt).Char())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			b.WriteByte('/')
		}
	}
	stm := "w"
	if p.toPlay == Black {
		stm = "b"
	}
	return fmt.Sprintf("%s %s %d %d", b.String(), stm, p.halfmoves, p.fullmoves)
}

func (p *Position) String() string {
	return p.StringBoard()
}
