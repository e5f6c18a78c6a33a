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

package attacks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/corvid/bitboard"
	"github.com/corvidchess/corvid/types"
)

// bruteForceSlider recomputes the true attack set by walking rays one
// square at a time, independent of the magic tables, used as the oracle.
func bruteForceSlider(sq types.Square, occupied bitboard.Board, dirs []types.Direction) bitboard.Board {
	var attack bitboard.Board
	for _, d := range dirs {
		cur := sq
		for {
			next := cur.To(d)
			if !next.IsValid() {
				break
			}
			attack = attack.Set(int(next))
			if occupied.Has(int(next)) {
				break
			}
			cur = next
		}
	}
	return attack
}

var rookDirs = []types.Direction{types.North, types.South, types.East, types.West}
var bishopDirs = []types.Direction{types.Northeast, types.Northwest, types.Southeast, types.Southwest}

func TestRookMagicMatchesBruteForce(t *testing.T) {
	for sq := types.SqA1; sq <= types.SqH8; sq++ {
		m := &RookMagics[sq]
		var b bitboard.Board
		for {
			want := bruteForceSlider(sq, b, rookDirs)
			got := RookAt(sq, b)
			assert.Equal(t, want, got, "rook attacks mismatch at %s with occupancy %x", sq.String(), uint64(b))
			b = (b - m.Mask) & m.Mask
			if b == bitboard.Empty {
				break
			}
		}
	}
}

func TestBishopMagicMatchesBruteForce(t *testing.T) {
	for sq := types.SqA1; sq <= types.SqH8; sq++ {
		m := &BishopMagics[sq]
		var b bitboard.Board
		for {
			want := bruteForceSlider(sq, b, bishopDirs)
			got := BishopAt(sq, b)
			assert.Equal(t, want, got, "bishop attacks mismatch at %s with occupancy %x", sq.String(), uint64(b))
			b = (b - m.Mask) & m.Mask
			if b == bitboard.Empty {
				break
			}
		}
	}
}

func TestQueenAtIsUnionOfRookAndBishop(t *testing.T) {
	occ := bitboard.FromSquare(int(types.SqD4)) | bitboard.FromSquare(int(types.SqE5))
	want := RookAt(types.SqD4, occ) | BishopAt(types.SqD4, occ)
	assert.Equal(t, want, QueenAt(types.SqD4, occ))
}

func TestKnightAttacksCornerAndCenter(t *testing.T) {
	assert.Equal(t, 2, KnightAttacks[types.SqA1].Count())
	assert.Equal(t, 8, KnightAttacks[types.SqD4].Count())
}

func TestKingAttacksCornerAndCenter(t *testing.T) {
	assert.Equal(t, 3, KingAttacks[types.SqA1].Count())
	assert.Equal(t, 8, KingAttacks[types.SqD4].Count())
}

func TestPawnCaptures(t *testing.T) {
	white := PawnCaptures[types.White][types.SqE4]
	assert.True(t, white.Has(int(types.SqD5)))
	assert.True(t, white.Has(int(types.SqF5)))
	assert.Equal(t, 2, white.Count())

	black := PawnCaptures[types.Black][types.SqE4]
	assert.True(t, black.Has(int(types.SqD3)))
	assert.True(t, black.Has(int(types.SqF3)))
}
