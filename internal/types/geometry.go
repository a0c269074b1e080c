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

// dirOffsets are the square deltas for the eight compass directions in the
// fixed oracle order N, E, S, W, NE, SE, SW, NW.
var dirOffsets = [8]int8{8, 1, -8, -1, 9, -7, -9, 7}

// numSquaresToEdge[sq][dir] is the number of steps from sq to the board
// edge in direction dir, in oracle order.
var numSquaresToEdge [64][8]int8

// orthRelevantBlockers/diagRelevantBlockers are the magic-bitboard relevant
// blocker masks for the orthogonal and diagonal ray classes: every square
// strictly between sq and the edge along the four respective rays,
// excluding the edge square itself (a piece on the edge still blocks
// without needing its own bit in the mask).
var orthRelevantBlockers [64]Bitboard
var diagRelevantBlockers [64]Bitboard

// kingMoveMask[sq] holds the (up to 8) squares one king-step from sq; it
// doubles as the retractor magic's relevant-blocker mask, since a retractor
// capture can only ever be triggered by an occupied king-neighbour square.
var kingMoveMask [64]Bitboard

// relevantBuddies[sq] holds the squares exactly two orthogonal steps from
// sq (the stradler's "buddy" squares: a friendly piece on one of them lets
// a stradler arriving on sq capture the enemy on the square in between).
var relevantBuddies [64]Bitboard

func init() {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := rank*8 + file
			n := int8(7 - rank)
			e := int8(7 - file)
			s := int8(rank)
			w := int8(file)
			numSquaresToEdge[sq] = [8]int8{n, e, s, w, min8(n, e), min8(s, e), min8(s, w), min8(n, w)}
		}
	}
	for sq := 0; sq < 64; sq++ {
		var orth, diag, king, buddies Bitboard
		for i := 0; i < 4; i++ {
			toEdge := numSquaresToEdge[sq][i]
			offset := dirOffsets[i]
			for k := int8(1); k < toEdge; k++ {
				orth.PushSquare(Square(int8(sq) + offset*k))
			}
			if toEdge >= 1 {
				king.PushSquare(Square(int8(sq) + offset))
			}
			if toEdge >= 2 {
				buddies.PushSquare(Square(int8(sq) + 2*offset))
			}
		}
		for i := 4; i < 8; i++ {
			toEdge := numSquaresToEdge[sq][i]
			offset := dirOffsets[i]
			for k := int8(1); k < toEdge; k++ {
				diag.PushSquare(Square(int8(sq) + offset*k))
			}
			if toEdge >= 1 {
				king.PushSquare(Square(int8(sq) + offset))
			}
		}
		orthRelevantBlockers[sq] = orth
		diagRelevantBlockers[sq] = diag
		kingMoveMask[sq] = king
		relevantBuddies[sq] = buddies
	}
}

func min8(a, b int8) int8 {
	if a < b {
		return a
	}
	return b
}

// generateOrthogonalMoves is the reference oracle for rook-style sliding:
// it walks each of the four orthogonal rays from start until (and
// including) the first blocker.
func generateOrthogonalMoves(start Square, blockers Bitboard) Bitboard {
	var result Bitboard
	for i := 0; i < 4; i++ {
		offset := dirOffsets[i]
		toEdge := numSquaresToEdge[start][i]
		for j := int8(1); j <= toEdge; j++ {
			to := Square(int8(start) + offset*j)
			result.PushSquare(to)
			if blockers.Has(to) {
				break
			}
		}
	}
	return result
}

// generateDiagonalMoves is the bishop-style analogue of generateOrthogonalMoves.
func generateDiagonalMoves(start Square, blockers Bitboard) Bitboard {
	var result Bitboard
	for i := 4; i < 8; i++ {
		offset := dirOffsets[i]
		toEdge := numSquaresToEdge[start][i]
		for j := int8(1); j <= toEdge; j++ {
			to := Square(int8(start) + offset*j)
			result.PushSquare(to)
			if blockers.Has(to) {
				break
			}
		}
	}
	return result
}

// generateStradlerCaptures is the reference oracle for a stradler's custodian
// capture: the square adjacent to start in direction i is a capture target
// iff the buddy square two steps out in the same direction is occupied.
func generateStradlerCaptures(start Square, buddies Bitboard) Bitboard {
	var result Bitboard
	for i := 0; i < 4; i++ {
		offset := dirOffsets[i]
		toEdge := numSquaresToEdge[start][i]
		if toEdge >= 2 && buddies.Has(Square(int8(start)+2*offset)) {
			result.PushSquare(Square(int8(start) + offset))
		}
	}
	return result
}

// generateRetractorCaptures is the reference oracle for a retractor's
// capture-by-moving-away: the king-neighbour square in direction i is a
// capture target iff the opposite king-neighbour (index i^2, since the
// oracle direction order pairs N/S, E/W, NE/SW, SE/NW two apart) is
// occupied by the piece being captured.
func generateRetractorCaptures(start Square, neighbours Bitboard) Bitboard {
	var result Bitboard
	for i := 0; i < 8; i++ {
		toEdge := numSquaresToEdge[start][i]
		opposite := i ^ 2
		if toEdge >= 1 && numSquaresToEdge[start][opposite] >= 1 &&
			neighbours.Has(Square(int8(start)+dirOffsets[opposite])) {
			result.PushSquare(Square(int8(start) + dirOffsets[i]))
		}
	}
	return result
}

// springerCaptureLookup[from][victim] is the landing square a springer at
// from reaches when it leaps over an enemy at victim, or SqNone if from and
// victim do not lie on a common ray or the square beyond the board edge.
var springerCaptureLookup [64][64]Square

// springerVictimLookup[from][landing] is the inverse of springerCaptureLookup:
// the victim square a springer passed over to reach landing from from. Used
// by make/unmake to recover the captured square from the move's encoded
// (from, to) pair alone.
var springerVictimLookup [64][64]Square

// deathSquareLookup[to][king] holds the two coordinator "rectangle corner"
// squares for a piece at to and a friendly king at king.
var deathSquareLookup [64][64][2]Square

func init() {
	for from := SqA1; from < SqNone; from++ {
		for sq := SqA1; sq < SqNone; sq++ {
			springerCaptureLookup[from][sq] = SqNone
			springerVictimLookup[from][sq] = SqNone
		}
		for i := 0; i < 8; i++ {
			offset := dirOffsets[i]
			toEdge := numSquaresToEdge[from][i]
			for j := int8(1); j <= toEdge; j++ {
				victim := Square(int8(from) + offset*j)
				if j < toEdge {
					landing := Square(int8(from) + offset*(j+1))
					springerCaptureLookup[from][victim] = landing
					springerVictimLookup[from][landing] = victim
				} else {
					springerCaptureLookup[from][victim] = SqNone
				}
			}
		}
	}
	for to := SqA1; to < SqNone; to++ {
		for king := SqA1; king < SqNone; king++ {
			if to == king {
				deathSquareLookup[to][king] = [2]Square{SqNone, SqNone}
				continue
			}
			corner1 := SquareOf(to.FileOf(), king.RankOf())
			corner2 := SquareOf(king.FileOf(), to.RankOf())
			deathSquareLookup[to][king] = [2]Square{corner1, corner2}
		}
	}
}

// SpringerLanding returns the square a springer at from lands on after
// leaping over an enemy piece at victim, or SqNone if that is not a legal
// springer geometry.
func SpringerLanding(from, victim Square) Square {
	return springerCaptureLookup[from][victim]
}

// SpringerVictim returns the square a springer at from leapt over to reach
// landing, or SqNone if from and landing are not a legal springer leap.
func SpringerVictim(from, landing Square) Square {
	return springerVictimLookup[from][landing]
}

// DeathSquares returns the two coordinator rectangle-corner squares for a
// piece at to paired with a friendly king at king.
func DeathSquares(to, king Square) [2]Square {
	return deathSquareLookup[to][king]
}

// KingMoveMask returns the squares one king-step away from sq.
func KingMoveMask(sq Square) Bitboard {
	return kingMoveMask[sq]
}
