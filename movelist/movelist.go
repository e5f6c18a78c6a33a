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

// Package movelist provides the bounded move container spec.md §3 requires:
// capacity 218, the proven maximum number of legal moves in any reachable
// chess position, backed by a fixed array rather than the teacher's growable
// deque so move generation never allocates.
package movelist

import (
	"strings"

	"github.com/corvidchess/corvid/corviderr"
	"github.com/corvidchess/corvid/types"
)

// MaxMoves is the proven maximum legal move count of any chess position.
const MaxMoves = 218

// MoveList is a fixed-capacity, stack-friendly sequence of moves.
type MoveList struct {
	moves [MaxMoves]types.Move
	len   int
}

// Len returns the number of moves currently stored.
func (ml *MoveList) Len() int { return ml.len }

// Add appends a move. Panics if the list is already at MaxMoves, which
// would indicate a generator bug since 218 is a proven upper bound.
func (ml *MoveList) Add(m types.Move) {
	if ml.len >= MaxMoves {
		panic(&corviderr.InternalInvariantViolation{Msg: "movelist: capacity exceeded, generator produced more than 218 moves"})
	}
	ml.moves[ml.len] = m
	ml.len++
}

// At returns the move at index i.
func (ml *MoveList) At(i int) types.Move { return ml.moves[i] }

// Set overwrites the move at index i, used by move-ordering passes.
func (ml *MoveList) Set(i int, m types.Move) { ml.moves[i] = m }

// Clear empties the list without releasing the backing array.
func (ml *MoveList) Clear() { ml.len = 0 }

// Contains reports whether m is present in the list.
func (ml *MoveList) Contains(m types.Move) bool {
	for i := 0; i < ml.len; i++ {
		if ml.moves[i] == m {
			return true
		}
	}
	return false
}

// MoveToFront moves the given move to index 0, shifting the rest back by
// one, used to place a TT/PV move first before search iterates the list.
func (ml *MoveList) MoveToFront(m types.Move) {
	for i := 0; i < ml.len; i++ {
		if ml.moves[i] == m {
			copy(ml.moves[1:i+1], ml.moves[0:i])
			ml.moves[0] = m
			return
		}
	}
}

// Swap exchanges the moves at i and j, used by sort.Interface callers doing
// simple selection-sort style move ordering.
func (ml *MoveList) Swap(i, j int) { ml.moves[i], ml.moves[j] = ml.moves[j], ml.moves[i] }

// String renders the list as a space-separated sequence of UCI move strings.
func (ml *MoveList) String() string {
	var sb strings.Builder
	for i := 0; i < ml.len; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(ml.moves[i].StringUci())
	}
	return sb.String()
}
