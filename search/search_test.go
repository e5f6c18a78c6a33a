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
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/corvid/notation"
	"github.com/corvidchess/corvid/position"
	"github.com/corvidchess/corvid/types"
)

type stubEvaluator struct{}

func (stubEvaluator) Evaluate(p *position.Position) types.Value {
	var v types.Value
	for pt := types.Pawn; pt < types.PtNone; pt++ {
		v += types.Value(p.PiecesOf(types.White, pt).Count()-p.PiecesOf(types.Black, pt).Count()) * pt.ValueOf()
	}
	if p.SideToMove() == types.Black {
		v = -v
	}
	return v
}

func TestSearchFindsMateInOne(t *testing.T) {
	// White to move: Ra1-a8 is a back-rank mate, the king boxed in by its
	// own pawns with no piece able to block or capture the rook.
	p, err := position.NewPositionFen("6k1/5ppp/8/8/8/8/8/R3K3 w - - 0 1")
	assert.NoError(t, err)

	s := NewSearch(stubEvaluator{})
	result := s.Search(context.Background(), p, Limits{Depth: 3}, nil)

	assert.Equal(t, types.SqA1, result.BestMove.From())
	assert.Equal(t, types.SqA8, result.BestMove.To())
	assert.True(t, result.BestValue.IsMateScore())
	assert.Equal(t, 1, mateDistance(result.BestValue))
}

func TestSearchRespectsDepthLimit(t *testing.T) {
	p := position.NewPosition()
	s := NewSearch(stubEvaluator{})
	result := s.Search(context.Background(), p, Limits{Depth: 2}, nil)
	assert.Equal(t, 2, result.Depth)
	assert.NotEqual(t, types.MoveNone, result.BestMove)
}

func TestSearchStopsOnCancelledContext(t *testing.T) {
	p := position.NewPosition()
	s := NewSearch(stubEvaluator{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	result := s.Search(ctx, p, Limits{Depth: 10}, nil)
	assert.Equal(t, 1, result.Depth)
}

func TestSearchRespectsMoveTimeDeadline(t *testing.T) {
	p := position.NewPosition()
	s := NewSearch(stubEvaluator{})
	start := time.Now()
	result := s.Search(context.Background(), p, Limits{MoveTime: 20 * time.Millisecond}, nil)
	assert.True(t, time.Since(start) < time.Second)
	assert.GreaterOrEqual(t, result.Depth, 1)
}

func TestSearchReportsProgressPerDepth(t *testing.T) {
	p := position.NewPosition()
	s := NewSearch(stubEvaluator{})
	var infos []ProgressInfo
	s.Search(context.Background(), p, Limits{Depth: 3}, func(pi ProgressInfo) {
		infos = append(infos, pi)
	})
	assert.Len(t, infos, 3)
	assert.Equal(t, 1, infos[0].Depth)
	assert.Equal(t, 3, infos[2].Depth)
}

func TestNegamaxReturnsDrawOnThirdOccurrence(t *testing.T) {
	p, err := position.NewPositionFen("7k/8/8/8/8/8/8/K7 w - - 0 1")
	assert.NoError(t, err)

	shuffle := []string{"a1a2", "h8h7", "a2a1", "h7h8"}
	playMoves := func() {
		for _, uci := range shuffle {
			m, err := notation.FromLAN(p, uci)
			assert.NoError(t, err)
			p.DoMove(m)
		}
	}
	playMoves()
	assert.Equal(t, 1, p.RepetitionCount(), "back to the start: this is the 2nd occurrence")
	playMoves()
	assert.Equal(t, 2, p.RepetitionCount(), "back to the start again: this is the 3rd occurrence")

	s := NewSearch(stubEvaluator{})
	value := s.negamax(p, 1, 1, -types.ValueInfinite, types.ValueInfinite)
	assert.Equal(t, types.ValueDraw, value)
}

func TestMateDistanceConversion(t *testing.T) {
	assert.Equal(t, 0, mateDistance(types.Value(100)))
	assert.Equal(t, 1, mateDistance(types.ValueMate-1))
	assert.Equal(t, -1, mateDistance(-types.ValueMate+1))
}
