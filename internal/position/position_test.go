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

package position

import (
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/fkopp/ultimago/internal/types"
)

// make tests run in the projects root directory
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

func TestMain(m *testing.M) {
	os.Exit(m.Run())
}

func TestStartPosition(t *testing.T) {
	p := NewPosition()

	want := [16]Bitboard{
		0xFFFF, 0xFF00, 0x1, 0x42,
		0x24, 0x8, 0x80, 0x10,
		0xFFFF000000000000, 0xFF000000000000, 0x8000000000000000, 0x4200000000000000,
		0x2400000000000000, 0x800000000000000, 0x100000000000000, 0x1000000000000000,
	}
	for i, w := range want {
		assert.Equal(t, w, p.bitboards[i], "bitboard %d", i)
	}

	assert.Equal(t, White, p.ToPlay())
	assert.Equal(t, uint32(0), p.Halfmoves())
	assert.Equal(t, uint32(1), p.Fullmoves())
}

func TestFromFenRejectsExtraFields(t *testing.T) {
	_, err := FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	assert.Error(t, err)
}

func TestFromFenDashFullmovesIsZero(t *testing.T) {
	p, err := FromFEN("8/8/8/8/8/8/8/8 w 0 -")
	assert.NoError(t, err)
	assert.Equal(t, uint32(0), p.Fullmoves())
}

func TestFromFenRejectsBadPieceLetter(t *testing.T) {
	_, err := FromFEN("xxxxxxxx/8/8/8/8/8/8/8 w 0 1")
	assert.Error(t, err)
}

func TestStradlerCustodianCaptureMakeUnmake(t *testing.T) {
	// White stradler e2, black stradler f4, white buddy on g4: e2-e4 captures f4.
	p, err := FromFEN("8/8/8/8/5pP1/8/4P3/8 w 0 1")
	assert.NoError(t, err)

	before := *p
	m := CreateMove(SqE2, SqE4, Stradler)
	m.SetC2(Stradler) // east of e4 is f4

	p.MakeMove(m)
	assert.Equal(t, PtEmpty, p.PieceAt(SqF4))
	assert.Equal(t, Stradler, p.PieceAt(SqE4))
	assert.Equal(t, Black, p.ToPlay())

	p.UnmakeMove(m)
	assert.Equal(t, before, *p)
}

func TestKingDisplacementCaptureMakeUnmake(t *testing.T) {
	p, err := FromFEN("8/8/8/8/8/8/4p3/4K3 w 0 1")
	assert.NoError(t, err)

	before := *p
	m := CreateMove(SqE1, SqE2, King)
	m.SetC1(Stradler)

	p.MakeMove(m)
	assert.Equal(t, King, p.PieceAt(SqE2))
	assert.True(t, p.OccupiedBy(Black).IsEmpty())

	p.UnmakeMove(m)
	assert.Equal(t, before, *p)
}

func TestSpringerLeapCaptureMakeUnmake(t *testing.T) {
	// White springer a1, black stradler on c1; leaping east lands on d1.
	p, err := FromFEN("8/8/8/8/8/8/8/N1p5 w 0 1")
	assert.NoError(t, err)

	before := *p
	m := CreateMove(SqA1, SqD1, Springer)
	m.SetC1(Stradler)

	p.MakeMove(m)
	assert.Equal(t, PtEmpty, p.PieceAt(SqC1))
	assert.Equal(t, Springer, p.PieceAt(SqD1))

	p.UnmakeMove(m)
	assert.Equal(t, before, *p)
}

func TestStringFenRoundTrip(t *testing.T) {
	p := NewPosition()
	assert.Equal(t, StartFen, p.StringFen())
}
