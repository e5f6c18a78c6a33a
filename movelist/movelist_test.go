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

package movelist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/corvid/types"
)

func e2e4() types.Move  { return types.NewMove(types.SqE2, types.SqE4, types.DoublePush) }
func g1f3() types.Move  { return types.NewMove(types.SqG1, types.SqF3, types.Normal) }
func b8c6() types.Move  { return types.NewMove(types.SqB8, types.SqC6, types.Normal) }
func a7a8q() types.Move { return types.NewPromotion(types.SqA7, types.SqA8, types.Queen) }

func TestAddAndLen(t *testing.T) {
	var ml MoveList
	assert.Equal(t, 0, ml.Len())
	ml.Add(e2e4())
	ml.Add(g1f3())
	ml.Add(b8c6())
	assert.Equal(t, 3, ml.Len())
	assert.Equal(t, e2e4(), ml.At(0))
	assert.Equal(t, g1f3(), ml.At(1))
	assert.Equal(t, b8c6(), ml.At(2))
}

func TestAddPastCapacityPanics(t *testing.T) {
	var ml MoveList
	for i := 0; i < MaxMoves; i++ {
		ml.Add(e2e4())
	}
	assert.Panics(t, func() { ml.Add(e2e4()) })
}

func TestSet(t *testing.T) {
	var ml MoveList
	ml.Add(e2e4())
	ml.Set(0, g1f3())
	assert.Equal(t, g1f3(), ml.At(0))
}

func TestClear(t *testing.T) {
	var ml MoveList
	ml.Add(e2e4())
	ml.Add(g1f3())
	ml.Clear()
	assert.Equal(t, 0, ml.Len())
}

func TestContains(t *testing.T) {
	var ml MoveList
	ml.Add(e2e4())
	ml.Add(g1f3())
	assert.True(t, ml.Contains(g1f3()))
	assert.False(t, ml.Contains(b8c6()))
}

func TestMoveToFront(t *testing.T) {
	var ml MoveList
	ml.Add(e2e4())
	ml.Add(g1f3())
	ml.Add(b8c6())
	ml.MoveToFront(b8c6())
	assert.Equal(t, b8c6(), ml.At(0))
	assert.Equal(t, e2e4(), ml.At(1))
	assert.Equal(t, g1f3(), ml.At(2))
	assert.Equal(t, 3, ml.Len())
}

func TestMoveToFrontNoop(t *testing.T) {
	var ml MoveList
	ml.Add(e2e4())
	ml.Add(g1f3())
	ml.MoveToFront(e2e4())
	assert.Equal(t, e2e4(), ml.At(0))
	assert.Equal(t, g1f3(), ml.At(1))
}

func TestSwap(t *testing.T) {
	var ml MoveList
	ml.Add(e2e4())
	ml.Add(g1f3())
	ml.Swap(0, 1)
	assert.Equal(t, g1f3(), ml.At(0))
	assert.Equal(t, e2e4(), ml.At(1))
}

func TestString(t *testing.T) {
	var ml MoveList
	ml.Add(e2e4())
	ml.Add(g1f3())
	ml.Add(a7a8q())
	assert.Equal(t, "e2e4 g1f3 a7a8q", ml.String())
}

func TestStringEmpty(t *testing.T) {
	var ml MoveList
	assert.Equal(t, "", ml.String())
}
