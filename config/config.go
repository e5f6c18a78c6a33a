//
// Corvid - a chess engine core in GO
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
// Copyright (c) 2026 Corvid contributors
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

// Package config reads the engine's TOML configuration file and exposes the
// settings the rest of the module reads at startup: log levels, search
// resource budgets, and evaluator tuning. Trimmed to the knobs this engine
// actually consumes rather than the teacher's full tuning surface.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

var (
	// LogLevel is the general log level, set by default or by the config file.
	LogLevel = 2

	// SearchLogLevel is the search-trace log level.
	SearchLogLevel = 2

	// Settings is the global configuration read in from file.
	Settings conf

	initialized = false
)

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
	Eval   evalConfiguration
}

// Setup loads path (falling back to built-in defaults if it does not exist
// or fails to parse) and derives the exported LogLevel/SearchLogLevel
// values. Safe to call more than once; only the first call has effect.
func Setup(path string) {
	if initialized {
		return
	}
	if path == "" {
		path = "config/config.toml"
	}
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		fmt.Println("config: using built-in defaults:", err)
	}

	setupLogLvl()
	setupSearch()
	setupEval()

	initialized = true
}
