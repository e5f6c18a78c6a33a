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

package types

// Value is a centipawn score, positive favors White (or the side to move
// when returned from a negamax-style call).
type Value int16

const (
	ValueZero     Value = 0
	ValueDraw     Value = 0
	ValueInfinite Value = 15000
	ValueNone     Value = 16001

	// ValueMate is the score assigned at a mate-in-0 node. Search scores
	// nearer to ValueMate than ValueMateThreshold encode mate distance by
	// subtracting/adding the ply count, per spec's mate-score convention.
	ValueMate          Value = 14000
	ValueMateThreshold Value = ValueMate - 1000
)

// IsMateScore reports whether v encodes a forced mate in some number of plies.
func (v Value) IsMateScore() bool {
	abs := v
	if abs < 0 {
		abs = -abs
	}
	return abs >= ValueMateThreshold && abs <= ValueMate
}

// ValueType distinguishes the kind of bound a transposition table entry stores.
type ValueType int8

const (
	BoundNone  ValueType = 0
	BoundExact ValueType = 1
	BoundUpper ValueType = 2 // alpha bound: true value <= stored value
	BoundLower ValueType = 3 // beta bound: true value >= stored value
)

var valueTypeToString = [4]string{"None", "Exact", "Upper", "Lower"}

// String returns a human-readable bound-kind name.
func (vt ValueType) String() string {
	if vt < 0 || int(vt) >= len(valueTypeToString) {
		return "Invalid"
	}
	return valueTypeToString[vt]
}
