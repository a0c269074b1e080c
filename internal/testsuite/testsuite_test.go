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

package testsuite

import (
	"context"
	"encoding/json"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkopp/ultimago/internal/position"
)

// make tests run in the project's root directory.
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

func TestLoadFileRoundTrips(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "cases.json")
	cases := []Case{
		{Fen: position.StartFen, Nodes: []uint64{1, 20}, Depth: 1},
	}
	data, err := json.Marshal(cases)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(file, data, 0644))

	loaded, err := LoadFile(file)
	require.NoError(t, err)
	assert.Equal(t, cases, loaded)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestRunCasePassesOnRootCount(t *testing.T) {
	results := Run(context.Background(), []Case{
		{Fen: position.StartFen, Nodes: []uint64{1}, Depth: 0},
	})
	require.Len(t, results, 1)
	assert.True(t, results[0].Passed())
}

func TestRunCaseDetectsMismatch(t *testing.T) {
	results := Run(context.Background(), []Case{
		{Fen: position.StartFen, Nodes: []uint64{1, 999999}, Depth: 1},
	})
	require.Len(t, results, 1)
	assert.False(t, results[0].Passed())
	assert.Equal(t, 1, results[0].FailedDepth)
	assert.Equal(t, uint64(999999), results[0].Want)
}

func TestRunCaseReportsBadFen(t *testing.T) {
	results := Run(context.Background(), []Case{
		{Fen: "not a fen", Nodes: []uint64{1}, Depth: 0},
	})
	require.Len(t, results, 1)
	assert.Error(t, results[0].Err)
	assert.False(t, results[0].Passed())
}

func TestRunManyCasesConcurrently(t *testing.T) {
	var cases []Case
	for i := 0; i < 10; i++ {
		cases = append(cases, Case{Fen: position.StartFen, Nodes: []uint64{1, 32}, Depth: 1})
	}
	results := Run(context.Background(), cases)
	require.Len(t, results, 10)
	for _, r := range results {
		assert.True(t, r.Passed())
	}
}

func TestReportSummarizesPassFail(t *testing.T) {
	results := []Result{
		{Case: Case{Fen: "a"}, FailedDepth: -1},
		{Case: Case{Fen: "b"}, FailedDepth: 2, Got: 1, Want: 2},
	}
	passed, failed := Report(results)
	assert.Equal(t, 1, passed)
	assert.Equal(t, 1, failed)
}
