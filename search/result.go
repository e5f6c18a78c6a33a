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

package search

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/corvidchess/corvid/types"
)

var out = message.NewPrinter(language.German)

// ProgressInfo is emitted once per completed iterative-deepening depth, the
// progress record spec.md §4.I describes.
type ProgressInfo struct {
	Depth    int
	SelDepth int
	Score    types.Value
	// Mate is non-zero only for a forced mate: moves to mate, positive if
	// the side to move at the root delivers it.
	Mate    int
	Nodes   uint64
	Nps     uint64
	Elapsed time.Duration
	Pv      []types.Move
}

func (pi ProgressInfo) String() string {
	return out.Sprintf("depth %d seldepth %d score %d mate %d nodes %d nps %d time %d pv %s",
		pi.Depth, pi.SelDepth, pi.Score, pi.Mate, pi.Nodes, pi.Nps, pi.Elapsed.Milliseconds(), pvString(pi.Pv))
}

// Result is the final answer of one Search call: the move to play plus the
// last completed iteration's statistics.
type Result struct {
	BestMove  types.Move
	BestValue types.Value
	Depth     int
	Nodes     uint64
	Elapsed   time.Duration
	Pv        []types.Move
}

func (r Result) String() string {
	return out.Sprintf("bestmove %s value %d depth %d nodes %d time %d pv %s",
		r.BestMove.StringUci(), r.BestValue, r.Depth, r.Nodes, r.Elapsed.Milliseconds(), pvString(r.Pv))
}

func pvString(pv []types.Move) string {
	s := ""
	for i, m := range pv {
		if i > 0 {
			s += " "
		}
		s += m.StringUci()
	}
	return s
}
