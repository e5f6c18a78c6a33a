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
	"github.com/corvidchess/corvid/config"
	"github.com/corvidchess/corvid/movegen"
	"github.com/corvidchess/corvid/position"
	"github.com/corvidchess/corvid/types"
)

// negamax searches p to depth plies from the root's perspective (ply levels
// from the root), returning a score from the mover's point of view. Follows
// spec.md §4.I's eight steps: deadline check, leaf-to-quiescence handoff,
// repetition/50-move draw check, TT probe with depth/bound cutoffs, legal
// move generation, TT-move-first ordering, the alpha-beta move loop, and a
// TT store with the resulting bound.
func (s *Search) negamax(p *position.Position, depth, ply int, alpha, beta types.Value) types.Value {
	if s.stopped() {
		return types.ValueZero
	}
	if ply > s.selDepth {
		s.selDepth = ply
	}

	if depth <= 0 {
		return s.quiescence(p, ply, alpha, beta, 0)
	}

	if ply > 0 {
		if p.RepetitionCount() >= 2 || p.HalfmoveClock() >= 100 {
			return types.ValueDraw
		}
	}

	alphaOrig := alpha
	var ttMove types.Move
	if config.Settings.Search.UseTT {
		if e := s.tt.Probe(p.Zobrist()); e != nil {
			ttMove = e.Move
			if int(e.Depth) >= depth {
				value := fromTT(e.Value, ply)
				switch e.Bound {
				case types.BoundExact:
					return value
				case types.BoundLower:
					if value > alpha {
						alpha = value
					}
				case types.BoundUpper:
					if value < beta {
						beta = value
					}
				}
				if alpha >= beta {
					return value
				}
			}
		}
	}

	ml := movegen.Generate(p)
	if ml.Len() == 0 {
		if p.NumCheckers > 0 {
			return -types.ValueMate + types.Value(ply)
		}
		return types.ValueDraw
	}

	orderMoves(ml, ttMove)

	var bestMove types.Move
	bestValue := -types.ValueInfinite
	s.pvLen[ply] = 0

	for i := 0; i < ml.Len(); i++ {
		move := ml.At(i)

		p.DoMove(move)
		s.nodes++
		value := -s.negamax(p, depth-1, ply+1, -beta, -alpha)
		p.UndoMove()

		if value > bestValue {
			bestValue = value
			bestMove = move
			if value > alpha {
				alpha = value
				s.pvTable[ply][0] = move
				copy(s.pvTable[ply][1:], s.pvTable[ply+1][:s.pvLen[ply+1]])
				s.pvLen[ply] = s.pvLen[ply+1] + 1
			}
		}

		if s.stopped() {
			break
		}
		if alpha >= beta {
			break
		}
	}

	if config.Settings.Search.UseTT && !s.stopped() {
		bound := types.BoundExact
		switch {
		case bestValue <= alphaOrig:
			bound = types.BoundUpper
		case bestValue >= beta:
			bound = types.BoundLower
		}
		s.tt.Store(p.Zobrist(), bestMove, toTT(bestValue, ply), int8(depth), bound)
	}

	return bestValue
}

// quiescence extends the search along captures, promotions and (when in
// check) all legal replies past the nominal depth, to avoid the horizon
// effect misjudging a position mid-exchange. Stand-pat (the static
// evaluation) serves as a lower bound per spec.md §4.I's quiescence step.
func (s *Search) quiescence(p *position.Position, ply int, alpha, beta types.Value, qDepth int) types.Value {
	if s.stopped() {
		return types.ValueZero
	}
	if ply > s.selDepth {
		s.selDepth = ply
	}

	movegen.RefreshCheckInfo(p)
	inCheck := p.NumCheckers > 0

	best := -types.ValueInfinite
	if !inCheck {
		standPat := s.eval.Evaluate(p)
		if standPat >= beta {
			return standPat
		}
		if standPat > alpha {
			alpha = standPat
		}
		best = standPat
	}

	if qDepth >= config.Settings.Search.QuiescenceDepth {
		return best
	}

	ml := movegen.Generate(p)
	if ml.Len() == 0 {
		if inCheck {
			return -types.ValueMate + types.Value(ply)
		}
		return types.ValueDraw
	}

	for i := 0; i < ml.Len(); i++ {
		move := ml.At(i)
		if !inCheck && !move.IsCapture() && !move.IsPromotion() {
			continue
		}

		p.DoMove(move)
		s.nodes++
		value := -s.quiescence(p, ply+1, -beta, -alpha, qDepth+1)
		p.UndoMove()

		if value > best {
			best = value
			if value > alpha {
				alpha = value
			}
		}

		if s.stopped() {
			break
		}
		if alpha >= beta {
			break
		}
	}

	return best
}
