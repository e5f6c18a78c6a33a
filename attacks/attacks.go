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
	"github.com/corvidchess/corvid/bitboard"
	"github.com/corvidchess/corvid/types"
)

// RookAt returns the rook attack set from sq given the full board occupancy.
func RookAt(sq types.Square, occupied bitboard.Board) bitboard.Board {
	m := &RookMagics[sq]
	return RookAttacks[m.Index(occupied)]
}

// BishopAt returns the bishop attack set from sq given the full board occupancy.
func BishopAt(sq types.Square, occupied bitboard.Board) bitboard.Board {
	m := &BishopMagics[sq]
	return BishopAttacks[m.Index(occupied)]
}

// QueenAt returns the queen attack set, the union of rook and bishop rays.
func QueenAt(sq types.Square, occupied bitboard.Board) bitboard.Board {
	return RookAt(sq, occupied) | BishopAt(sq, occupied)
}

// KnightAttacks, KingAttacks and PawnCaptures are precomputed per-square
// leaper tables; they need no occupancy since leapers never see through
// other pieces.
var (
	KnightAttacks [64]bitboard.Board
	KingAttacks   [64]bitboard.Board
	PawnCaptures  [2][64]bitboard.Board
)

var knightDeltas = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
var kingDeltas = [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
var whitePawnDeltas = [2][2]int{{1, 1}, {-1, 1}}
var blackPawnDeltas = [2][2]int{{1, -1}, {-1, -1}}

func init() {
	for sq := 0; sq < 64; sq++ {
		f := int(types.Square(sq).FileOf())
		r := int(types.Square(sq).RankOf())
		KnightAttacks[sq] = leaperAttacks(f, r, knightDeltas[:])
		KingAttacks[sq] = leaperAttacks(f, r, kingDeltas[:])
		PawnCaptures[types.White][sq] = leaperAttacks(f, r, whitePawnDeltas[:])
		PawnCaptures[types.Black][sq] = leaperAttacks(f, r, blackPawnDeltas[:])
	}
}

func leaperAttacks(f, r int, deltas [][2]int) bitboard.Board {
	var b bitboard.Board
	for _, d := range deltas {
		nf, nr := f+d[0], r+d[1]
		if nf < 0 || nf > 7 || nr < 0 || nr > 7 {
			continue
		}
		b = b.Set(nr*8 + nf)
	}
	return b
}
