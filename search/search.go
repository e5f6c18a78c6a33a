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

// Package search implements negamax alpha-beta search with quiescence and
// iterative deepening over package movegen's fully legal move lists, per
// spec.md §4.I. It deliberately drops the teacher's opening book, pondering,
// null-move pruning, late-move reduction/pruning and internal iterative
// deepening: spec.md's Non-goals exclude time-management heuristics beyond
// a wall-clock deadline, pondering and book/tablebase integration, and a
// single-threaded engine has no need for the teacher's semaphore-guarded
// concurrent-search-request machinery either.
package search

import (
	"context"
	"time"

	"github.com/op/go-logging"

	"github.com/corvidchess/corvid/config"
	"github.com/corvidchess/corvid/corviderr"
	myLogging "github.com/corvidchess/corvid/logging"
	"github.com/corvidchess/corvid/movelist"
	"github.com/corvidchess/corvid/position"
	"github.com/corvidchess/corvid/transpositiontable"
	"github.com/corvidchess/corvid/types"
)

// maxPly bounds the triangular PV table and the quiescence recursion depth
// added on top of a nominal search depth.
const maxPly = 128

// Search owns one engine's transposition table and evaluator and runs one
// search at a time. It is not safe for concurrent use by multiple
// goroutines; a UCI-style driver serializes "go"/"stop" commands onto it.
type Search struct {
	tt   *transpositiontable.TtTable
	eval evaluator

	log  *logging.Logger
	slog *logging.Logger

	limits    Limits
	startTime time.Time
	deadline  time.Time
	nodes     uint64
	selDepth  int
	ctx       context.Context

	pvTable [maxPly + 1][maxPly + 1]types.Move
	pvLen   [maxPly + 1]int
}

// evaluator is the subset of evaluator.Evaluator's API package search
// depends on, kept as an interface so tests can stub it.
type evaluator interface {
	Evaluate(p *position.Position) types.Value
}

// NewSearch builds a Search with its own transposition table sized per
// config and the given evaluator.
func NewSearch(eval evaluator) *Search {
	return &Search{
		tt:   transpositiontable.NewTtTable(config.Settings.Search.TTSizeMB),
		eval: eval,
		log:  myLogging.GetLog("search"),
		slog: myLogging.GetSearchLog(),
	}
}

// NewGame resets state that must not leak between games: the transposition
// table is keyed only by position hash, so stale entries from a previous
// game could otherwise produce wrong cutoffs.
func (s *Search) NewGame() {
	s.tt.Clear()
}

// Search runs iterative deepening from p until Limits or ctx cancellation
// stops it, calling onInfo after every completed depth; a root with no legal
// moves does not end the loop early. onInfo may be nil. The returned Result
// reflects the last fully completed iteration; ctx cancellation or deadline
// expiry during the first depth still returns a depth-1 Result, whose
// BestMove is MoveNone if no root move was searched before the stop.
func (s *Search) Search(ctx context.Context, p *position.Position, limits Limits, onInfo func(ProgressInfo)) Result {
	s.limits = limits
	s.nodes = 0
	s.selDepth = 0
	s.startTime = time.Now()
	s.ctx = ctx
	if limits.MoveTime > 0 {
		s.deadline = s.startTime.Add(limits.MoveTime)
	} else {
		s.deadline = time.Time{}
	}

	maxDepth := limits.Depth
	if maxDepth <= 0 || maxDepth > config.Settings.Search.MaxDepth {
		maxDepth = config.Settings.Search.MaxDepth
	}
	if maxDepth > maxPly {
		maxDepth = maxPly
	}

	var best Result
	for depth := 1; depth <= maxDepth; depth++ {
		s.pvLen[0] = 0
		value := s.negamax(p, depth, 0, -types.ValueInfinite, types.ValueInfinite)

		if s.stopped() && depth > 1 {
			break
		}

		pv := make([]types.Move, s.pvLen[0])
		copy(pv, s.pvTable[0][:s.pvLen[0]])

		var bestMove types.Move
		if len(pv) > 0 {
			bestMove = pv[0]
		}

		elapsed := time.Since(s.startTime)
		var nps uint64
		if elapsed > 0 {
			nps = uint64(float64(s.nodes) / elapsed.Seconds())
		}

		info := ProgressInfo{
			Depth:    depth,
			SelDepth: s.selDepth,
			Score:    value,
			Mate:     mateDistance(value),
			Nodes:    s.nodes,
			Nps:      nps,
			Elapsed:  elapsed,
			Pv:       pv,
		}
		s.slog.Debugf("%s", info)
		if onInfo != nil {
			onInfo(info)
		}

		best = Result{
			BestMove:  bestMove,
			BestValue: value,
			Depth:     depth,
			Nodes:     s.nodes,
			Elapsed:   elapsed,
			Pv:        pv,
		}

		if s.stopped() {
			break
		}
	}

	if s.ctx != nil && s.ctx.Err() != nil {
		s.slog.Debugf("%s: returning best move from last completed depth", corviderr.Cancelled)
	}
	s.log.Infof("%s", best)
	return best
}

// stopped reports whether the running search must unwind: the caller
// cancelled ctx, the wall-clock deadline passed, or the node budget ran out.
func (s *Search) stopped() bool {
	if s.ctx != nil && s.ctx.Err() != nil {
		return true
	}
	if !s.deadline.IsZero() && time.Now().After(s.deadline) {
		return true
	}
	if s.limits.Nodes > 0 && s.nodes >= s.limits.Nodes {
		return true
	}
	return false
}

// mateDistance converts a mate-range score into moves-to-mate, positive if
// the side to move at the root delivers the mate, or 0 for a non-mate score.
func mateDistance(value types.Value) int {
	switch {
	case value >= types.ValueMateThreshold:
		return (int(types.ValueMate-value) + 1) / 2
	case value <= -types.ValueMateThreshold:
		return -((int(types.ValueMate+value) + 1) / 2)
	default:
		return 0
	}
}

// toTT shifts a mate score from "plies from this node" to "plies from the
// root" before storing it, and fromTT reverses the shift on a TT hit -
// otherwise a mate score cached at one ply would read as a different mate
// distance when hit at another, per spec.md §4.I's mate-score convention.
func toTT(value types.Value, ply int) types.Value {
	switch {
	case value >= types.ValueMateThreshold:
		return value + types.Value(ply)
	case value <= -types.ValueMateThreshold:
		return value - types.Value(ply)
	default:
		return value
	}
}

func fromTT(value types.Value, ply int) types.Value {
	switch {
	case value >= types.ValueMateThreshold:
		return value - types.Value(ply)
	case value <= -types.ValueMateThreshold:
		return value + types.Value(ply)
	default:
		return value
	}
}

func orderMoves(ml *movelist.MoveList, ttMove types.Move) {
	if ttMove != types.MoveNone && ml.Contains(ttMove) {
		ml.MoveToFront(ttMove)
	}
}

// ClearHash discards all transposition table entries, for the UCI
// "Clear Hash" button option.
func (s *Search) ClearHash() {
	s.tt.Clear()
}

// ResizeHash replaces the transposition table with one sized sizeMB, for
// the UCI "Hash" spin option.
func (s *Search) ResizeHash(sizeMB int) {
	s.tt.Resize(sizeMB)
}

// Hashfull reports transposition table occupancy in permille, for the UCI
// "info hashfull" field.
func (s *Search) Hashfull() int {
	return s.tt.Hashfull()
}
