/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fkopp/ultimago/internal/position"
)

// Depth-1 perft from the start position must equal the size of the legal
// move list generated directly: no side to move begins in immediate check
// (scenario S4), so pseudo-legal and legal move counts coincide at the
// root and depth-1 perft counts every one of them exactly once.
func TestPerftDepth1MatchesLegalMoveCount(t *testing.T) {
	pos := position.NewPosition()
	legal := 0
	for _, m := range *GenerateMoves(pos) {
		if IsMoveLegal(pos, m) {
			legal++
		}
	}

	var perft Perft
	perft.StartPerft(position.StartFen, 1)
	assert.Equal(t, uint64(legal), perft.Nodes)
	assert.Greater(t, legal, 0)
}

// Two independent depth-2 perft runs from the start position must agree
// and count at least one node.
func TestPerftDepth2IsDeterministic(t *testing.T) {
	var first, second Perft
	first.StartPerft(position.StartFen, 2)
	second.StartPerft(position.StartFen, 2)
	assert.Equal(t, first.Nodes, second.Nodes)
	assert.Greater(t, first.Nodes, uint64(0))
}

// Reversibility (§8 universal invariant 5): walking the perft tree and
// unwinding it again must leave the root position bit-identical.
func TestPerftLeavesPositionUnchanged(t *testing.T) {
	pos := position.NewPosition()
	before := *pos
	beforeFen := pos.StringFen()

	var perft Perft
	nodes := perft.CountLeaves(pos, 3)
	assert.Greater(t, nodes, uint64(0))

	// CountLeaves walks pos itself; every move it made must have been unmade.
	assert.Equal(t, beforeFen, pos.StringFen())
	assert.Equal(t, before, *pos)
}
