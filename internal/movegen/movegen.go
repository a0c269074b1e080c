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

// Package movegen generates pseudo-legal Ultima moves for a position and
// answers legality/attack questions about them. It depends on position but
// position never depends back on it: every function here takes a
// *position.Position and drives it only through its exported accessors.
package movegen

import (
	"github.com/fkopp/ultimago/internal/moveslice"
	"github.com/fkopp/ultimago/internal/position"
	. "github.com/fkopp/ultimago/internal/types"
)

// compassDirs are the four custodian directions in the move encoding's
// fixed c1..c4 slot order: N, E, S, W.
var compassDirs = [4]Direction{North, East, South, West}

// GenerateMoves returns every pseudo-legal move for the side to move in pos.
// "Pseudo-legal" means the move obeys each piece's own geometry and capture
// rules but may leave the mover's own king capturable; IsMoveLegal filters
// that out.
func GenerateMoves(pos *position.Position) *moveslice.MoveSlice {
	ml := moveslice.NewMoveSlice(moveslice.MaxMoves)

	us := pos.ToPlay()
	them := us.Flip()
	total := pos.OccupiedAll()
	ourKing := pos.KingSquare(us)

	immobilized := immobilizedSquares(pos, us, them)

	generateStradlerMoves(pos, ml, us, them, total, immobilized)
	generateCoordinatorMoves(pos, ml, us, total, ourKing, immobilized)
	generateSpringerMoves(pos, ml, us, them, total, immobilized)
	generateChameleonMoves(pos, ml, us, total, immobilized)
	generateRetractorMoves(pos, ml, us, them, total, immobilized)
	generateImmobilizerMoves(pos, ml, us, them, total, immobilized)
	generateKingMoves(pos, ml, us, them, ourKing, immobilized)

	return ml
}

// immobilizedSquares returns the squares holding a friendly piece disabled
// by an enemy immobilizer: every square one king-step from an enemy
// immobilizer, unless that immobilizer is itself disabled by an adjacent
// friendly chameleon. Every piece class is subject to this, including the
// King and the Immobilizer itself, per the blanket rule that every friendly
// piece standing on an immobilized square is removed from consideration
// before any per-class move generation runs.
func immobilizedSquares(pos *position.Position, us, them Color) Bitboard {
	enemyImmBb := pos.PiecesBb(them, Immobilizer)
	if enemyImmBb.IsEmpty() {
		return BbZero
	}
	immSq := enemyImmBb.Lsb()
	if !(KingMoveMask(immSq) & pos.PiecesBb(us, Chameleon)).IsEmpty() {
		return BbZero
	}
	return KingMoveMask(immSq)
}

func setCaptureSlot(m *Move, idx int, pt PieceType) {
	if pt == PtEmpty {
		return
	}
	switch idx {
	case 0:
		m.SetC1(pt)
	case 1:
		m.SetC2(pt)
	case 2:
		m.SetC3(pt)
	case 3:
		m.SetC4(pt)
	}
}

func setChameleonFlag(m *Move, idx int) {
	switch idx {
	case 0:
		m.SetC5()
	case 1:
		m.SetC6()
	case 2:
		m.SetC7()
	case 3:
		m.SetC8()
	}
}

// applyChameleonDeathSquareFlags walks the mover's chameleons (up to two, in
// bitboard order) and sets c5..c8 wherever the rectangle corner between to
// and that chameleon holds a piece matching targetBb.
func applyChameleonDeathSquareFlags(m *Move, pos *position.Position, mover Color, to Square, targetBb Bitboard) {
	idx := 0
	for cb := pos.PiecesBb(mover, Chameleon); !cb.IsEmpty() && idx < 2; idx++ {
		chSq := cb.PopLsb()
		corners := DeathSquares(to, chSq)
		if targetBb.Has(corners[0]) {
			setChameleonFlag(m, idx*2)
		}
		if targetBb.Has(corners[1]) {
			setChameleonFlag(m, idx*2+1)
		}
	}
}

// generateStradlerMoves implements the custodian-capture step. A stradler's
// own buddies trigger ordinary captures; a friendly chameleon standing in a
// buddy square also triggers a capture, but only of an enemy stradler.
func generateStradlerMoves(pos *position.Position, ml *moveslice.MoveSlice, us, them Color, total, immobilized Bitboard) {
	friendlyStradlers := pos.PiecesBb(us, Stradler)
	friendlyChameleons := pos.PiecesBb(us, Chameleon)
	enemy := pos.OccupiedBy(them)
	enemyStradlers := pos.PiecesBb(them, Stradler)

	for fromBb := friendlyStradlers &^ immobilized; !fromBb.IsEmpty(); {
		from := fromBb.PopLsb()
		destinations := OrthogonalMoves(from, total) &^ total
		for destBb := destinations; !destBb.IsEmpty(); {
			to := destBb.PopLsb()
			m := CreateMove(from, to, Stradler)

			direct := StradlerCaptures(to, friendlyStradlers) & enemy
			viaChameleon := StradlerCaptures(to, friendlyChameleons) & enemyStradlers
			allCaptures := direct | viaChameleon

			for i, d := range compassDirs {
				sq := to.To(d)
				if !allCaptures.Has(sq) {
					continue
				}
				setCaptureSlot(&m, i, pos.PieceAt(sq))
			}
			ml.PushBack(m)
		}
	}
}

// generateCoordinatorMoves implements the rectangle "death square" capture:
// the coordinator's own move pairs with the friendly king to catch an enemy
// on either rectangle corner, and separately each friendly chameleon pairs
// with the new coordinator square to flag an enemy king caught the same way.
func generateCoordinatorMoves(pos *position.Position, ml *moveslice.MoveSlice, us Color, total Bitboard, ourKing Square, immobilized Bitboard) {
	coordBb := pos.PiecesBb(us, Coordinator) &^ immobilized
	if coordBb.IsEmpty() {
		return
	}
	from := coordBb.Lsb()
	them := us.Flip()
	enemy := pos.OccupiedBy(them)
	enemyKingBb := pos.PiecesBb(them, King)

	destinations := (OrthogonalMoves(from, total) | DiagonalMoves(from, total)) &^ total
	for destBb := destinations; !destBb.IsEmpty(); {
		to := destBb.PopLsb()
		m := CreateMove(from, to, Coordinator)

		if ourKing != SqNone {
			corners := DeathSquares(to, ourKing)
			if enemy.Has(corners[0]) {
				m.SetC1(pos.PieceAt(corners[0]))
			}
			if enemy.Has(corners[1]) {
				m.SetC2(pos.PieceAt(corners[1]))
			}
		}
		applyChameleonDeathSquareFlags(&m, pos, us, to, enemyKingBb)

		ml.PushBack(m)
	}
}

// generateSpringerMoves implements the leap-over capture: a springer moves
// freely along a ray until the first piece; an enemy there can be leapt
// over onto the first empty square beyond it.
func generateSpringerMoves(pos *position.Position, ml *moveslice.MoveSlice, us, them Color, total, immobilized Bitboard) {
	enemy := pos.OccupiedBy(them)

	for fromBb := pos.PiecesBb(us, Springer) &^ immobilized; !fromBb.IsEmpty(); {
		from := fromBb.PopLsb()
		rays := OrthogonalMoves(from, total) | DiagonalMoves(from, total)

		for destBb := rays &^ total; !destBb.IsEmpty(); {
			to := destBb.PopLsb()
			ml.PushBack(CreateMove(from, to, Springer))
		}

		for victimBb := rays & enemy; !victimBb.IsEmpty(); {
			victim := victimBb.PopLsb()
			landing := SpringerLanding(from, victim)
			if landing == SqNone || total.Has(landing) {
				continue
			}
			m := CreateMove(from, landing, Springer)
			m.SetC1(pos.PieceAt(victim))
			ml.PushBack(m)
		}
	}
}

// generateChameleonMoves generates a chameleon's own destinations: it moves
// like a coordinator along every straight and diagonal ray. A chameleon's
// own move never sets a capture slot; it only contributes captures as a
// side effect of other pieces' moves (see DESIGN.md).
func generateChameleonMoves(pos *position.Position, ml *moveslice.MoveSlice, us Color, total, immobilized Bitboard) {
	for fromBb := pos.PiecesBb(us, Chameleon) &^ immobilized; !fromBb.IsEmpty(); {
		from := fromBb.PopLsb()
		destinations := (OrthogonalMoves(from, total) | DiagonalMoves(from, total)) &^ total
		for destBb := destinations; !destBb.IsEmpty(); {
			to := destBb.PopLsb()
			ml.PushBack(CreateMove(from, to, Chameleon))
		}
	}
}

// retractorCaptureSquare returns the square opposite to's direction of
// travel from from, i.e. the square a retractor moving from->to captures by
// stepping away from it. Mirrors the i^2 pairing the retractor geometry
// oracle uses.
func retractorCaptureSquare(from, to Square) Square {
	for i, d := range Directions {
		if from.To(d) == to {
			return from.To(Directions[i^2])
		}
	}
	return SqNone
}

// generateRetractorMoves implements capture-by-withdrawal: moving one
// king-step away from an adjacent enemy captures it.
func generateRetractorMoves(pos *position.Position, ml *moveslice.MoveSlice, us, them Color, total, immobilized Bitboard) {
	retractorBb := pos.PiecesBb(us, Retractor) &^ immobilized
	if retractorBb.IsEmpty() {
		return
	}
	from := retractorBb.Lsb()
	enemy := pos.OccupiedBy(them)

	destinations := (OrthogonalMoves(from, total) | DiagonalMoves(from, total)) &^ total
	captureDestinations := RetractorCaptures(from, enemy)

	for destBb := destinations; !destBb.IsEmpty(); {
		to := destBb.PopLsb()
		m := CreateMove(from, to, Retractor)
		if captureDestinations.Has(to) {
			if capSq := retractorCaptureSquare(from, to); capSq != SqNone {
				m.SetC1(pos.PieceAt(capSq))
			}
		}
		ml.PushBack(m)
	}
}

// generateImmobilizerMoves implements the immobilizer's own movement: it
// never captures, and it cannot move at all while an enemy chameleon stands
// next to it.
func generateImmobilizerMoves(pos *position.Position, ml *moveslice.MoveSlice, us, them Color, total, immobilized Bitboard) {
	immBb := pos.PiecesBb(us, Immobilizer) &^ immobilized
	if immBb.IsEmpty() {
		return
	}
	from := immBb.Lsb()
	if !(KingMoveMask(from) & pos.PiecesBb(them, Chameleon)).IsEmpty() {
		return
	}
	destinations := (OrthogonalMoves(from, total) | DiagonalMoves(from, total)) &^ total
	for destBb := destinations; !destBb.IsEmpty(); {
		to := destBb.PopLsb()
		ml.PushBack(CreateMove(from, to, Immobilizer))
	}
}

// generateKingMoves implements the king's own displacement capture plus the
// coordinator-geometry captures it shares with a friendly coordinator or a
// friendly chameleon mimicking one.
func generateKingMoves(pos *position.Position, ml *moveslice.MoveSlice, us, them Color, kingSq Square, immobilized Bitboard) {
	if kingSq == SqNone || immobilized.Has(kingSq) {
		return
	}
	destinations := KingMoveMask(kingSq) &^ pos.OccupiedBy(us)
	friendlyCoordBb := pos.PiecesBb(us, Coordinator)
	enemyCoordBb := pos.PiecesBb(them, Coordinator)
	enemy := pos.OccupiedBy(them)

	for destBb := destinations; !destBb.IsEmpty(); {
		to := destBb.PopLsb()
		m := CreateMove(kingSq, to, King)

		if enemy.Has(to) {
			m.SetC1(pos.PieceAt(to))
		}
		if !friendlyCoordBb.IsEmpty() {
			coordSq := friendlyCoordBb.Lsb()
			corners := DeathSquares(to, coordSq)
			if enemy.Has(corners[0]) {
				m.SetC2(pos.PieceAt(corners[0]))
			}
			if enemy.Has(corners[1]) {
				m.SetC3(pos.PieceAt(corners[1]))
			}
		}
		applyChameleonDeathSquareFlags(&m, pos, us, to, enemyCoordBb)

		ml.PushBack(m)
	}
}

// IsAttackingKing reports whether any pseudo-legal move of the side to move
// in pos would capture the opponent's king.
func IsAttackingKing(pos *position.Position) bool {
	them := pos.ToPlay().Flip()
	if pos.PiecesBb(them, King).IsEmpty() {
		return false
	}
	moves := GenerateMoves(pos)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		pos.MakeMove(m)
		stillThere := !pos.PiecesBb(them, King).IsEmpty()
		pos.UnmakeMove(m)
		if !stillThere {
			return true
		}
	}
	return false
}

// IsMoveLegal reports whether playing m leaves the mover's own king safe
// from immediate capture in reply.
func IsMoveLegal(pos *position.Position, m Move) bool {
	pos.MakeMove(m)
	legal := !IsAttackingKing(pos)
	pos.UnmakeMove(m)
	return legal
}

// IsCheckmate reports whether the side to move in pos has no legal move.
func IsCheckmate(pos *position.Position) bool {
	moves := GenerateMoves(pos)
	for i := 0; i < moves.Len(); i++ {
		if IsMoveLegal(pos, moves.At(i)) {
			return false
		}
	}
	return true
}
