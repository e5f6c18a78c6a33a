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

package movegen

import "github.com/corvidchess/corvid/position"

// Perft enumerates the move tree to depth and returns the leaf count, used
// as the correctness oracle of spec.md §4.J and §8.
func Perft(p *position.Position, depth int) uint64 {
	if depth == 1 {
		return uint64(Generate(p).Len())
	}
	var nodes uint64
	ml := Generate(p)
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		p.DoMove(m)
		nodes += Perft(p, depth-1)
		p.UndoMove()
	}
	return nodes
}

// Divide runs one ply of perft and reports the subtree count per root move,
// the standard debugging aid for isolating which branch a perft mismatch
// comes from.
func Divide(p *position.Position, depth int) map[string]uint64 {
	result := make(map[string]uint64)
	ml := Generate(p)
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		p.DoMove(m)
		var n uint64
		if depth <= 1 {
			n = 1
		} else {
			n = Perft(p, depth-1)
		}
		p.UndoMove()
		result[m.StringUci()] = n
	}
	return result
}
