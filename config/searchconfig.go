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

package config

// searchConfiguration holds the resource budgets negamax/quiescence/
// iterative-deepening read, per spec.md §4.I and §5. Pruning knobs the
// spec explicitly excludes as Non-goals (null-move, futility, LMR,
// aspiration windows) are deliberately absent rather than present-but-off.
type searchConfiguration struct {
	TTSizeMB        int
	MaxDepth        int
	QuiescenceDepth int
	UseTT           bool
}

func init() {
	Settings.Search.TTSizeMB = 64
	Settings.Search.MaxDepth = 64
	Settings.Search.QuiescenceDepth = 32
	Settings.Search.UseTT = true
}

func setupSearch() {
	if Settings.Search.TTSizeMB <= 0 {
		Settings.Search.TTSizeMB = 64
	}
	if Settings.Search.MaxDepth <= 0 {
		Settings.Search.MaxDepth = 64
	}
	if Settings.Search.QuiescenceDepth <= 0 {
		Settings.Search.QuiescenceDepth = 32
	}
}
