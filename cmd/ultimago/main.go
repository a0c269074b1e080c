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

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/fkopp/ultimago/internal/config"
	"github.com/fkopp/ultimago/internal/logging"
	"github.com/fkopp/ultimago/internal/movegen"
	"github.com/fkopp/ultimago/internal/moveslice"
	"github.com/fkopp/ultimago/internal/position"
	"github.com/fkopp/ultimago/internal/testsuite"
	"github.com/fkopp/ultimago/internal/types"
	"github.com/fkopp/ultimago/internal/version"
)

var out = message.NewPrinter(language.English)

// movesPerRow bounds how many "index:move" pairs the interactive loop
// prints per line before wrapping, the same layout the collaborator CLI
// this spec was distilled from uses.
const movesPerRow = 15

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	fen := flag.String("fen", position.StartFen, "FEN to start from")
	perft := flag.Int("perft", 0, "runs perft on -fen up to the given depth and prints a report per depth")
	testSuite := flag.String("testsuite", "", "path to a JSON perft test-suite file to run")
	maxWorkers := flag.Int("workers", 0, "max concurrent positions when running -testsuite (0 = use config default)")
	interactive := flag.Bool("play", false, "starts the interactive move-index play loop on -fen")
	cpuProfile := flag.Bool("profile", false, "enable CPU profiling for the duration of the run")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()
	if *maxWorkers > 0 {
		config.Settings.Perft.MaxWorkers = *maxWorkers
	}
	logging.GetLog()

	switch {
	case *perft > 0:
		var perftTest movegen.Perft
		perftTest.StartPerftMulti(*fen, 1, *perft)
	case *testSuite != "":
		_, failed, err := testsuite.RunFile(*testSuite)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if failed > 0 {
			os.Exit(1)
		}
	case *interactive:
		playLoop(*fen)
	default:
		playLoop(*fen)
	}
}

// playLoop is the interactive collaborator: it prints the position, lists
// every generated move with its index, and reads a line from stdin: "q"
// quits, "u" undoes the last move, and a decimal integer plays the move at
// that index in the just-printed list.
func playLoop(fen string) {
	pos, err := position.FromFEN(fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid FEN %q: %v\n", fen, err)
		os.Exit(1)
	}

	var history []types.Move
	scanner := bufio.NewScanner(os.Stdin)

	for {
		out.Println(pos.StringBoard())

		moves := movegen.GenerateMoves(pos)
		printMoveList(moves)

		out.Print("Select move by index: ")
		if !scanner.Scan() {
			return
		}
		trimmed := strings.TrimSpace(scanner.Text())

		switch {
		case trimmed == "q":
			return
		case trimmed == "u":
			if len(history) == 0 {
				continue
			}
			last := history[len(history)-1]
			history = history[:len(history)-1]
			pos.UnmakeMove(last)
			continue
		}

		idx, err := strconv.Atoi(trimmed)
		if err != nil || idx < 0 || idx >= moves.Len() {
			continue
		}
		m := moves.At(idx)
		pos.MakeMove(m)
		if config.Settings.CLI.KeepUndoHistory {
			history = append(history, m)
		}
	}
}

func printMoveList(moves *moveslice.MoveSlice) {
	for i := 0; i < moves.Len(); i++ {
		out.Printf("%d:%s ", i, moves.At(i))
		if (i+1)%movesPerRow == 0 {
			out.Println()
		}
	}
	out.Println()
}

func printVersionInfo() {
	out.Printf("ultimago %s\n", version.Version())
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	out.Printf("  Number of Goroutines: %d\n", runtime.NumGoroutine())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
