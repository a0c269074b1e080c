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

package movegen

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/fkopp/ultimago/internal/position"
	"github.com/fkopp/ultimago/internal/util"
)

var out = message.NewPrinter(language.English)

// Perft walks the full move tree to a fixed depth and counts leaves,
// exercising generation, make/unmake and legality together as a single
// bit-exact oracle against a known-good node count.
type Perft struct {
	Nodes            uint64
	CheckCounter     uint64
	CheckMateCounter uint64
	CaptureCounter   uint64
	stopFlag         util.Bool
}

// NewPerft creates a new empty Perft instance.
func NewPerft() *Perft {
	return &Perft{}
}

// Stop can be used when perft has been started in a goroutine to stop the
// currently running perft test.
func (perft *Perft) Stop() {
	perft.stopFlag.Store(true)
}

// StartPerftMulti iterates the given depth range, printing a report after
// each depth. If started in a goroutine it can be stopped via Stop().
func (perft *Perft) StartPerftMulti(fen string, startDepth, endDepth int) {
	perft.stopFlag.Store(false)
	for d := startDepth; d <= endDepth; d++ {
		if perft.stopFlag.Load() {
			out.Print("Perft multi depth stopped\n")
			return
		}
		perft.StartPerft(fen, d)
	}
}

// CountLeaves returns the perft leaf count at depth from pos without any
// printing, for callers (e.g. the JSON test-suite runner) that only want
// the number. depth 0 counts the root position itself, per the external
// JSON interface's definition of nodes[0].
func (perft *Perft) CountLeaves(pos *position.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	perft.resetCounter()
	return perft.miniMax(depth, pos)
}

// StartPerft runs a single-depth perft from fen and prints a report.
// If started in a goroutine it can be stopped via Stop().
func (perft *Perft) StartPerft(fen string, depth int) {
	perft.stopFlag.Store(false)
	if depth <= 0 {
		depth = 1
	}
	perft.resetCounter()

	pos, err := position.FromFEN(fen)
	if err != nil {
		out.Printf("Perft: invalid FEN %q: %v\n", fen, err)
		return
	}

	out.Printf("Performing PERFT Test for Depth %d\n", depth)
	out.Printf("FEN: %s\n", fen)
	out.Printf("-----------------------------------------\n")

	start := time.Now()
	result := perft.miniMax(depth, pos)
	elapsed := time.Since(start)

	if result == 0 && perft.stopFlag.Load() {
		out.Print("Perft stopped\n")
		return
	}
	perft.Nodes = result

	out.Printf("Time         : %s\n", elapsed)
	out.Printf("NPS          : %d nps\n", (perft.Nodes*uint64(time.Second.Nanoseconds()))/uint64(elapsed.Nanoseconds()+1))
	out.Printf("Results:\n")
	out.Printf("   Nodes     : %d\n", perft.Nodes)
	out.Printf("   Captures  : %d\n", perft.CaptureCounter)
	out.Printf("   Checks    : %d\n", perft.CheckCounter)
	out.Printf("   CheckMates: %d\n", perft.CheckMateCounter)
	out.Printf("-----------------------------------------\n")
	out.Printf("Finished PERFT Test for Depth %d\n\n", depth)
}

func (perft *Perft) miniMax(depth int, pos *position.Position) uint64 {
	totalNodes := uint64(0)
	moves := GenerateMoves(pos)

	for i := 0; i < moves.Len(); i++ {
		if perft.stopFlag.Load() {
			return 0
		}
		m := moves.At(i)

		if depth > 1 {
			pos.MakeMove(m)
			if !IsAttackingKing(pos) {
				totalNodes += perft.miniMax(depth-1, pos)
			}
			pos.UnmakeMove(m)
			continue
		}

		capture := m.IsCapture()
		pos.MakeMove(m)
		if !IsAttackingKing(pos) {
			totalNodes++
			if capture {
				perft.CaptureCounter++
			}
			if IsAttackingKing(pos) {
				perft.CheckCounter++
			}
			if IsCheckmate(pos) {
				perft.CheckMateCounter++
			}
		}
		pos.UnmakeMove(m)
	}
	return totalNodes
}

func (perft *Perft) resetCounter() {
	perft.Nodes = 0
	perft.CheckCounter = 0
	perft.CheckMateCounter = 0
	perft.CaptureCounter = 0
}
