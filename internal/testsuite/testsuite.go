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

// Package testsuite loads and runs the JSON-driven perft test-suite file
// named by the external interface (§6): an array of
// {"fen": string, "nodes": [int...], "depth": int} records, where nodes[d]
// is the expected leaf count at depth d (depth 0 counts the root once).
// Running the whole suite fans independent Position clones out across a
// bounded worker pool, mirroring the concurrency model §5 sanctions for
// root-split search drivers.
package testsuite

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/fkopp/ultimago/internal/config"
	"github.com/fkopp/ultimago/internal/logging"
	"github.com/fkopp/ultimago/internal/movegen"
	"github.com/fkopp/ultimago/internal/position"
)

var out = message.NewPrinter(language.English)
var log = logging.GetLog()

// Case is a single perft test-suite record: a starting FEN, the maximum
// depth to verify, and the expected node count at every depth from 0 up
// to (and including) Depth.
type Case struct {
	Fen   string   `json:"fen"`
	Nodes []uint64 `json:"nodes"`
	Depth int      `json:"depth"`
}

// Result is the outcome of running one Case: the depth (if any) at which
// the observed node count first diverged from Nodes, or -1 if every depth
// matched.
type Result struct {
	Case        Case
	FailedDepth int
	Got         uint64
	Want        uint64
	Err         error
}

// Passed reports whether the case matched the expected node count at
// every depth it was run to.
func (r Result) Passed() bool {
	return r.Err == nil && r.FailedDepth < 0
}

// LoadFile reads a perft test-suite JSON file into a slice of Case.
func LoadFile(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsuite: reading %s: %w", path, err)
	}
	var cases []Case
	if err := json.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("testsuite: decoding %s: %w", path, err)
	}
	return cases, nil
}

// Run executes every case in cases concurrently, bounded by
// config.Settings.Perft.MaxWorkers simultaneous positions, and returns one
// Result per case in input order.
func Run(ctx context.Context, cases []Case) []Result {
	maxWorkers := config.Settings.Perft.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = 1
	}
	sem := semaphore.NewWeighted(int64(maxWorkers))
	results := make([]Result, len(cases))

	var wg sync.WaitGroup
	for i, c := range cases {
		if err := sem.Acquire(ctx, 1); err != nil {
			results[i] = Result{Case: c, FailedDepth: -2, Err: err}
			continue
		}
		wg.Add(1)
		go func(i int, c Case) {
			defer wg.Done()
			defer sem.Release(1)
			results[i] = runCase(c)
		}(i, c)
	}
	wg.Wait()
	return results
}

// runCase verifies a single Case depth by depth, stopping at the first
// mismatch (or the first construction error).
func runCase(c Case) Result {
	pos, err := position.FromFEN(c.Fen)
	if err != nil {
		return Result{Case: c, FailedDepth: -2, Err: err}
	}

	for depth := 0; depth <= c.Depth && depth < len(c.Nodes); depth++ {
		var perft movegen.Perft
		got := perft.CountLeaves(pos, depth)
		want := c.Nodes[depth]
		if got != want {
			return Result{Case: c, FailedDepth: depth, Got: got, Want: want}
		}
	}
	return Result{Case: c, FailedDepth: -1}
}

// Report prints one line per Result and a pass/fail summary, using a
// locale-formatted printer for large node counts the same way the CLI
// reports perft runs directly.
func Report(results []Result) (passed, failed int) {
	for _, r := range results {
		switch {
		case r.Err != nil:
			out.Printf("ERROR   %-60s %v\n", r.Case.Fen, r.Err)
			failed++
		case r.Passed():
			out.Printf("PASS    %-60s depth %d\n", r.Case.Fen, r.Case.Depth)
			passed++
		default:
			out.Printf("FAIL    %-60s depth %d: got %d want %d\n",
				r.Case.Fen, r.FailedDepth, r.Got, r.Want)
			failed++
		}
	}
	out.Printf("-----------------------------------------\n")
	out.Printf("%d passed, %d failed (%d total)\n", passed, failed, len(results))
	return passed, failed
}

// RunFile loads path and runs its cases, logging start/elapsed time and
// printing a report. Convenience wrapper combining LoadFile, Run and
// Report for the CLI collaborator.
func RunFile(path string) (passed, failed int, err error) {
	cases, err := LoadFile(path)
	if err != nil {
		return 0, 0, err
	}
	log.Infof("Running perft test suite %s (%d cases)", path, len(cases))
	start := time.Now()
	results := Run(context.Background(), cases)
	log.Infof("Perft test suite finished in %s", time.Since(start))
	passed, failed = Report(results)
	return passed, failed, nil
}
