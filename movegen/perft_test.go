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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/position"
)

// perftTable is spec.md §8's standard-start perft oracle for depths 1-4.
// Depth 5 is checked by TestPerftDeep, which is skipped under -short; depth
// 6 is not run by this suite.
var perftTable = []struct {
	depth int
	nodes uint64
}{
	{1, 20},
	{2, 400},
	{3, 8902},
	{4, 197281},
}

func TestPerftStartingPosition(t *testing.T) {
	for _, tc := range perftTable {
		tc := tc
		t.Run("", func(t *testing.T) {
			p := position.NewPosition()
			got := Perft(p, tc.depth)
			assert.Equal(t, tc.nodes, got, "perft(%d)", tc.depth)
		})
	}
}

// depth1Fixtures are spec.md §8's depth-1 legal-move-count fixtures,
// covering castling, en passant, and pin/discovered-check edge cases.
var depth1Fixtures = []struct {
	fen   string
	nodes uint64
}{
	{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", 20},
	{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 48},
	{"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 14},
	{"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 6},
	{"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 44},
	{"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10", 46},
}

func TestDepth1LegalMoveCounts(t *testing.T) {
	for _, tc := range depth1Fixtures {
		tc := tc
		t.Run(tc.fen, func(t *testing.T) {
			p, err := position.NewPositionFen(tc.fen)
			require.NoError(t, err)
			ml := Generate(p)
			assert.Equal(t, int(tc.nodes), ml.Len())
		})
	}
}

func TestPerftDeep(t *testing.T) {
	if testing.Short() {
		t.Skip("perft depth 5 skipped in short mode")
	}
	p := position.NewPosition()
	assert.Equal(t, uint64(4865609), Perft(p, 5))
}
