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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/corvid/movegen"
	"github.com/corvidchess/corvid/types"
)

var canonicalFens = []string{
	StartFen,
	"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
	"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
	"4k3/8/8/8/8/8/8/4K2R w K - 0 1",
	"8/P6k/8/8/8/8/7p/K7 w - - 0 1",
}

func TestFenRoundTrip(t *testing.T) {
	for _, fen := range canonicalFens {
		p, err := NewPositionFen(fen)
		assert.NoError(t, err)
		assert.Equal(t, fen, p.Fen())
	}
}

// assertConsistent walks every square and checks that the mailbox, the
// per-piece bitboards and the per-color bitboards all agree about what, if
// anything, occupies it.
func assertConsistent(t *testing.T, p *Position) {
	t.Helper()
	for sq := 0; sq < 64; sq++ {
		mb := p.mailbox[sq]
		for pc := types.Piece(0); pc < types.PieceLength; pc++ {
			want := p.pieces[pc].Has(sq)
			got := mb == pc
			assert.Equal(t, want, got, "square %d piece %s bitboard/mailbox disagree", sq, pc)
		}
		inWhite := p.colors[types.White].Has(sq)
		inBlack := p.colors[types.Black].Has(sq)
		if mb == types.PieceNone {
			assert.False(t, inWhite || inBlack, "square %d empty in mailbox but occupied in a color bitboard", sq)
			continue
		}
		switch mb.ColorOf() {
		case types.White:
			assert.True(t, inWhite, "square %d is white in mailbox but not in colors[White]", sq)
			assert.False(t, inBlack, "square %d is white in mailbox but also in colors[Black]", sq)
		case types.Black:
			assert.True(t, inBlack, "square %d is black in mailbox but not in colors[Black]", sq)
			assert.False(t, inWhite, "square %d is black in mailbox but also in colors[White]", sq)
		}
	}
}

// applyUci plays a legal move identified by its UCI string, failing the
// test if no legal move matches - the same legal-list match notation.FromLAN
// uses, inlined here to avoid position depending on its own client package.
func applyUci(t *testing.T, p *Position, uci string) {
	t.Helper()
	ml := movegen.Generate(p)
	for i := 0; i < ml.Len(); i++ {
		if m := ml.At(i); m.StringUci() == uci {
			p.DoMove(m)
			return
		}
	}
	t.Fatalf("%s is not a legal move in %s", uci, p.Fen())
}

func TestMakeUnmakeRoundTripsFenAndZobrist(t *testing.T) {
	// Covers a normal push, a capture, kingside castling, an en-passant
	// capture and a promotion, one at a time.
	cases := []struct {
		fen string
		uci string
	}{
		{StartFen, "e2e4"},
		{"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", "d7d5"},
		{"rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2", "e4d5"},
		{"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1g1"},
		{"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3", "e5d6"},
		{"8/P6k/8/8/8/8/7p/K7 w - - 0 1", "a7a8q"},
	}

	for _, c := range cases {
		p, err := NewPositionFen(c.fen)
		assert.NoError(t, err)

		beforeFen := p.Fen()
		beforeZobrist := p.Zobrist()

		applyUci(t, p, c.uci)
		assertConsistent(t, p)

		p.UndoMove()
		assertConsistent(t, p)
		assert.Equal(t, beforeFen, p.Fen())
		assert.Equal(t, beforeZobrist, p.Zobrist())
	}
}

func TestZobristIncrementalMatchesRecomputedFromScratch(t *testing.T) {
	p, err := NewPositionFen(StartFen)
	assert.NoError(t, err)

	moves := []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1b5", "a7a6"}
	for _, uci := range moves {
		applyUci(t, p, uci)

		fromScratch, err := NewPositionFen(p.Fen())
		assert.NoError(t, err)
		assert.Equal(t, fromScratch.Zobrist(), p.Zobrist())
	}
}

func TestRepetitionCountTracksVisits(t *testing.T) {
	p, err := NewPositionFen("7k/8/8/8/8/8/8/K7 w - - 0 1")
	assert.NoError(t, err)

	assert.Equal(t, 0, p.RepetitionCount(), "starting position has been seen once, no repeats yet")

	shuffle := []string{"a1a2", "h8h7", "a2a1", "h7h8"}
	for _, uci := range shuffle {
		applyUci(t, p, uci)
	}
	assert.Equal(t, 1, p.RepetitionCount(), "back to the start: this is the 2nd occurrence")

	for _, uci := range shuffle {
		applyUci(t, p, uci)
	}
	assert.Equal(t, 2, p.RepetitionCount(), "back to the start again: this is the 3rd occurrence")
}
