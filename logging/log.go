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

// Package logging is a thin helper over "github.com/op/go-logging" that
// hands every package a preconfigured, named leveled logger in one line
// instead of repeating backend/formatter boilerplate at every call site.
package logging

import (
	"log"
	"os"
	"sync"

	"github.com/op/go-logging"

	"github.com/corvidchess/corvid/config"
)

var standardFormat = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{shortpkg:-10.10s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)

var (
	mu      sync.Mutex
	loggers = map[string]*logging.Logger{}
)

// GetLog returns the named logger, creating and configuring it with a
// stdout backend at config.LogLevel on first use. Repeated calls with the
// same name return the same instance, matching op/go-logging's own
// singleton-per-module idiom.
func GetLog(name string) *logging.Logger {
	mu.Lock()
	defer mu.Unlock()
	if l, ok := loggers[name]; ok {
		return l
	}
	l := logging.MustGetLogger(name)
	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(config.LogLevel), "")
	l.SetBackend(leveled)
	loggers[name] = l
	return l
}

// GetSearchLog returns the "search" logger at config.SearchLogLevel, kept
// separate from GetLog("search") so search's far higher call volume can be
// silenced independently of the engine's general log level.
func GetSearchLog() *logging.Logger {
	mu.Lock()
	defer mu.Unlock()
	if l, ok := loggers["search-trace"]; ok {
		return l
	}
	l := logging.MustGetLogger("search")
	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(config.SearchLogLevel), "")
	l.SetBackend(leveled)
	loggers["search-trace"] = l
	return l
}
