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

// Package config holds globally available configuration variables which
// are either set by defaults, read from a TOML config file, or set by
// command line options.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/fkopp/ultimago/internal/util"
)

// ConfFile holds the path to the used config file (relative to the
// working directory).
var ConfFile = "./config.toml"

// Settings is the global configuration read in from file.
var Settings conf

var initialized = false

type conf struct {
	Log   logConfiguration
	Perft perftConfiguration
	CLI   cliConfiguration
}

// logConfiguration controls the internal/logging backends.
type logConfiguration struct {
	LogLevel     int
	LogLevelName string
	TestLogLevel int
}

// perftConfiguration controls the concurrency bound of internal/testsuite's
// JSON-driven perft runner.
type perftConfiguration struct {
	MaxWorkers int
}

// cliConfiguration controls the interactive play-loop collaborator.
type cliConfiguration struct {
	KeepUndoHistory bool
}

func init() {
	Settings.Log.LogLevel = 4
	Settings.Log.LogLevelName = "INFO"
	Settings.Log.TestLogLevel = 5

	Settings.Perft.MaxWorkers = 4

	Settings.CLI.KeepUndoHistory = true
}

// Setup reads the TOML configuration file and overlays its settings onto
// the compiled-in defaults. A missing or malformed file is not fatal; it
// is reported to log.Println and the defaults stand.
func Setup() {
	if initialized {
		return
	}

	path, _ := util.ResolveFile(ConfFile)
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Println("Config file not found. Using defaults. (", err, ")")
	}

	initialized = true
}

// String prints out the current configuration settings and values using
// reflection to read fields and their values.
func (settings *conf) String() string {
	var c strings.Builder
	c.WriteString("Log Config:\n")
	writeFields(&c, &settings.Log)
	c.WriteString("\nPerft Config:\n")
	writeFields(&c, &settings.Perft)
	c.WriteString("\nCLI Config:\n")
	writeFields(&c, &settings.CLI)
	return c.String()
}

func writeFields(c *strings.Builder, v interface{}) {
	s := reflect.ValueOf(v).Elem()
	t := s.Type()
	for i := 0; i < s.NumField(); i++ {
		f := s.Field(i)
		c.WriteString(fmt.Sprintf("%-2d: %-22s %-6s = %v\n", i, t.Field(i).Name, f.Type(), f.Interface()))
	}
}
