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

// Package evaluator scores a position for the search: material balance plus
// game-phase-interpolated piece-square values and a side-to-move tempo
// bonus. Deliberately minimal - spec.md treats evaluation quality as
// replaceable and out of scope for correctness, unlike move generation.
package evaluator

import (
	"github.com/op/go-logging"

	"github.com/corvidchess/corvid/config"
	myLogging "github.com/corvidchess/corvid/logging"
	"github.com/corvidchess/corvid/position"
	"github.com/corvidchess/corvid/types"
)

// Evaluator scores positions for use by package search.
type Evaluator struct {
	log *logging.Logger
}

// NewEvaluator creates a ready-to-use Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{log: myLogging.GetLog("eval")}
}

// Evaluate returns a centipawn score from the perspective of the side to
// move in p: positive favors the mover, per the negamax convention package
// search relies on.
func (e *Evaluator) Evaluate(p *position.Position) types.Value {
	gamePhase := gamePhase(p)

	value := material(p)
	if config.Settings.Eval.UsePieceSquares {
		value += positional(p, gamePhase)
	}

	if p.SideToMove() == types.Black {
		value = -value
	}

	if config.Settings.Eval.UseGamePhase {
		gamePhaseFactor := float64(gamePhase) / float64(types.GamePhaseMax)
		value += types.Value(float64(config.Settings.Eval.Tempo) * gamePhaseFactor)
	} else {
		value += types.Value(config.Settings.Eval.Tempo)
	}

	return value
}

// gamePhase sums the non-pawn, non-king material still on the board,
// clamped to types.GamePhaseMax, per the teacher's incremental formula
// computed here directly from bitboard popcounts instead of maintained
// incrementally on every DoMove/UndoMove.
func gamePhase(p *position.Position) int {
	phase := 0
	for _, c := range [2]types.Color{types.White, types.Black} {
		for pt := types.Knight; pt <= types.Queen; pt++ {
			phase += p.PiecesOf(c, pt).Count() * pt.GamePhaseValue()
		}
	}
	if phase > types.GamePhaseMax {
		phase = types.GamePhaseMax
	}
	return phase
}

// material returns White's material minus Black's, in centipawns.
func material(p *position.Position) types.Value {
	var value types.Value
	for pt := types.Pawn; pt < types.PtNone; pt++ {
		n := p.PiecesOf(types.White, pt).Count() - p.PiecesOf(types.Black, pt).Count()
		value += types.Value(n) * pt.ValueOf()
	}
	return value
}

// positional interpolates White's piece-square total minus Black's between
// the mid-game and end-game tables by gamePhase.
func positional(p *position.Position, gamePhase int) types.Value {
	var mid, end types.Value
	for pt := types.Pawn; pt < types.PtNone; pt++ {
		for _, c := range [2]types.Color{types.White, types.Black} {
			bb := p.PiecesOf(c, pt)
			sign := types.Value(1)
			if c == types.Black {
				sign = -1
			}
			for bb != 0 {
				sq := types.Square(bb.PopLsb())
				m, e := pstValues(c, pt, sq)
				mid += sign * m
				end += sign * e
			}
		}
	}
	return types.Value((int(mid)*gamePhase + int(end)*(types.GamePhaseMax-gamePhase)) / types.GamePhaseMax)
}
