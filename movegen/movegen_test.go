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
	"github.com/corvidchess/corvid/types"
)

func TestGenerateNoDuplicatesAndNoSelfCheck(t *testing.T) {
	fens := []string{
		position.StartFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}
	for _, fen := range fens {
		p, err := position.NewPositionFen(fen)
		require.NoError(t, err)
		ml := Generate(p)

		seen := make(map[types.Move]bool)
		for i := 0; i < ml.Len(); i++ {
			m := ml.At(i)
			assert.False(t, seen[m], "duplicate move %s", m.StringUci())
			seen[m] = true

			mover := p.SideToMove()
			p.DoMove(m)
			RefreshCheckInfo(p)
			assert.False(t, p.IsAttackedBy(p.KingSquare(mover), p.SideToMove(), p.OccupiedAll()),
				"move %s leaves %s's king in check", m.StringUci(), mover)
			p.UndoMove()
		}
	}
}

func TestCastlingThroughAttackIsIllegal(t *testing.T) {
	// Black bishop on h3 attacks f1 (h3-g2-f1 diagonal), the square the king
	// must cross, so kingside castling must be rejected.
	p, err := position.NewPositionFen("r3k2r/8/8/8/8/7b/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	ml := Generate(p)
	for i := 0; i < ml.Len(); i++ {
		assert.NotEqual(t, types.KingCastle, ml.At(i).Kind(), "kingside castle should be illegal, f1 attacked")
	}
}

func TestEnPassantHorizontalPinExcluded(t *testing.T) {
	// White king on a5, black rook on h5, and between them a white pawn on
	// c5 and a black pawn on d5 that just double-pushed from d7. The pawn on
	// c5 could capture en passant onto d6, but doing so would expose the king
	// on the same rank to the rook on h5 once both pawns vanish from the rank.
	p, err := position.NewPositionFen("4k3/8/8/K1Pp3r/8/8/8/8 w - d6 0 1")
	require.NoError(t, err)
	ml := Generate(p)
	for i := 0; i < ml.Len(); i++ {
		assert.NotEqual(t, types.EnPassant, ml.At(i).Kind(), "en passant should be illegal: exposes king on the rank")
	}
}

func TestCheckmateAndStalemateGameState(t *testing.T) {
	mate, err := position.NewPositionFen("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.NoError(t, err)
	Generate(mate)
	assert.Equal(t, position.BlackWin, mate.GameState)

	stalemate, err := position.NewPositionFen("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	Generate(stalemate)
	assert.Equal(t, position.Draw, stalemate.GameState)
}
