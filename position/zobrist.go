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

package position

import (
	"github.com/corvidchess/corvid/corviderr"
	"github.com/corvidchess/corvid/types"
)

// Key is a Zobrist hash key. It needs all 64 bits for good distribution.
type Key uint64

// zobristTables holds one random key per piece-square pair, one per
// castling-rights combination (rather than one per individual right,
// since XOR-swapping a whole combination value is just as correct and
// needs only one table lookup instead of up to four), one per
// en-passant file, and one for side to move.
type zobristTables struct {
	pieces     [types.PieceLength][64]Key
	castling   [types.CastlingRightsLength]Key
	epFile     [8]Key
	sideToMove Key
}

var zobrist zobristTables

func init() {
	r := newRandom(1070372)
	for pc := types.Piece(0); pc < types.PieceLength; pc++ {
		for sq := 0; sq < 64; sq++ {
			zobrist.pieces[pc][sq] = Key(r.rand64())
		}
	}
	for cr := types.CastlingRights(0); cr < types.CastlingRightsLength; cr++ {
		zobrist.castling[cr] = Key(r.rand64())
	}
	for f := 0; f < 8; f++ {
		zobrist.epFile[f] = Key(r.rand64())
	}
	zobrist.sideToMove = Key(r.rand64())
}

// random is the xorshift64star generator used to seed the Zobrist tables,
// after Sebastiano Vigna's public-domain design (the same generator the
// magic-number search uses, seeded independently here).
type random struct {
	s uint64
}

func newRandom(seed uint64) random {
	if seed == 0 {
		panic(&corviderr.InternalInvariantViolation{Msg: "zobrist random seed must not be 0"})
	}
	return random{s: seed}
}

func (r *random) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}
