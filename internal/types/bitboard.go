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

import (
	"fmt"
	"strings"

	"github.com/fkopp/ultimago/internal/assert"
	"github.com/fkopp/ultimago/internal/util"
)

// Bitboard is a 64 bit unsigned int with one bit per board square, the
// fundamental set-of-squares representation the magic tables index into.
type Bitboard uint64

// Various constant bitboards.
const (
	BbZero Bitboard = Bitboard(0)
	BbAll  Bitboard = ^BbZero
	BbOne  Bitboard = Bitboard(1)
)

// bsfMagic and bsfTable implement a de Bruijn least-significant-bit scan.
// The multiplier and table are required verbatim by the move-generation
// spec this package implements rather than derived, so they must not be
// replaced by e.g. math/bits.TrailingZeros64 even though that would be
// functionally identical on every platform Go supports.
const bsfMagic uint64 = 0x07EF3AE369961512

var bsfTable = [64]int{
	63, 0, 47, 1, 56, 48, 27, 2,
	60, 57, 49, 41, 37, 28, 16, 3,
	61, 54, 58, 35, 52, 50, 42, 21,
	44, 38, 32, 29, 23, 17, 11, 4,
	62, 46, 55, 26, 59, 40, 36, 15,
	53, 34, 51, 20, 43, 31, 22, 10,
	45, 25, 39, 14, 33, 19, 30, 9,
	24, 13, 18, 8, 12, 7, 6, 5,
}

// IsEmpty reports whether b has no squares set.
func (b Bitboard) IsEmpty() bool {
	return b == BbZero
}

// Has tests if a square (bit) is set.
func (b Bitboard) Has(sq Square) bool {
	return b&sq.Bb() != 0
}

// PushSquare sets the corresponding bit of the bitboard for the square.
func (b *Bitboard) PushSquare(sq Square) {
	*b |= sq.Bb()
}

// PopSquare clears the corresponding bit of the bitboard for the square.
func (b *Bitboard) PopSquare(sq Square) {
	*b &^= sq.Bb()
}

// PopCount returns the number of one bits ("population count") in b.
func (b Bitboard) PopCount() int {
	n := 0
	for x := uint64(b); x != 0; x &= x - 1 {
		n++
	}
	return n
}

// Lsb returns the least significant set bit of b as a Square via the
// de Bruijn multiplication/shift-58 scan. Calling it on an empty bitboard
// is a caller error; in debug builds this is asserted, in release builds
// it returns SqH8.
func (b Bitboard) Lsb() Square {
	if assert.DEBUG {
		assert.Assert(b != 0, "types: Lsb() called on empty bitboard")
	}
	x := uint64(b)
	return Square(bsfTable[((x&-x)*bsfMagic)>>58])
}

// PopLsb returns the Lsb square and clears it from the bitboard.
func (b *Bitboard) PopLsb() Square {
	sq := b.Lsb()
	*b &= *b - 1
	return sq
}

func (b Bitboard) String() string {
	return fmt.Sprintf("%064b", uint64(b))
}

// StringBoard renders b as an 8x8 board, rank 8 at the top, 'X' for a set
// square and '.' otherwise.
func (b Bitboard) StringBoard() string {
	var os strings.Builder
	os.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			if b.Has(SquareOf(f, r)) {
				os.WriteString("| X ")
			} else {
				os.WriteString("|   ")
			}
		}
		os.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
		if r == Rank1 {
			break
		}
	}
	return os.String()
}

// FileDistance returns the absolute distance in files between two files.
func FileDistance(f1, f2 File) int {
	return util.Abs(int(f2) - int(f1))
}

// RankDistance returns the absolute distance in ranks between two ranks.
func RankDistance(r1, r2 Rank) int {
	return util.Abs(int(r2) - int(r1))
}

// SquareDistance returns the Chebyshev distance (max of file/rank distance)
// between two squares, used by the coordinator death-square geometry.
func SquareDistance(s1, s2 Square) int {
	if !s1.IsValid() || !s2.IsValid() || s1 == s2 {
		return 0
	}
	return squareDistance[s1][s2]
}

var squareDistance [SqLength][SqLength]int

// fileBb and rankBb back File.Bb() and Rank.Bb(), populated below.
var (
	fileBb [8]Bitboard
	rankBb [8]Bitboard
)

func init() {
	for f := FileA; f <= FileH; f++ {
		var bb Bitboard
		for r := Rank1; r <= Rank8; r++ {
			bb.PushSquare(SquareOf(f, r))
		}
		fileBb[f] = bb
	}
	for r := Rank1; r <= Rank8; r++ {
		var bb Bitboard
		for f := FileA; f <= FileH; f++ {
			bb.PushSquare(SquareOf(f, r))
		}
		rankBb[r] = bb
	}
	for s1 := SqA1; s1 < SqNone; s1++ {
		for s2 := SqA1; s2 < SqNone; s2++ {
			if s1 != s2 {
				squareDistance[s1][s2] = util.Max(
					FileDistance(s1.FileOf(), s2.FileOf()),
					RankDistance(s1.RankOf(), s2.RankOf()))
			}
		}
	}
}
