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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareFileRank(t *testing.T) {
	assert.Equal(t, FileE, SqE4.FileOf())
	assert.Equal(t, Rank4, SqE4.RankOf())
	assert.Equal(t, SqE4, SquareOf(FileE, Rank4))
	assert.True(t, SqA1.IsValid())
	assert.False(t, SqNone.IsValid())
}

func TestMakeSquare(t *testing.T) {
	assert.Equal(t, SqE4, MakeSquare("e4"))
	assert.Equal(t, SqA1, MakeSquare("a1"))
	assert.Equal(t, SqH8, MakeSquare("h8"))
	assert.Equal(t, SqNone, MakeSquare("z9"))
	assert.Equal(t, SqNone, MakeSquare("e"))
}

func TestSquareToDirectionEdges(t *testing.T) {
	assert.Equal(t, SqNone, SqA4.To(West))
	assert.Equal(t, SqNone, SqH4.To(East))
	assert.Equal(t, SqNone, SqA1.To(South))
	assert.Equal(t, SqNone, SqH8.To(North))
	assert.Equal(t, SqE5, SqE4.To(North))
}

func TestSquareString(t *testing.T) {
	assert.Equal(t, "e4", SqE4.String())
	assert.Equal(t, "-", SqNone.String())
}

func TestColorFlip(t *testing.T) {
	assert.Equal(t, Black, White.Flip())
	assert.Equal(t, White, Black.Flip())
	assert.Equal(t, "w", White.String())
	assert.Equal(t, "b", Black.String())
}

func TestColorPawnHelpers(t *testing.T) {
	assert.Equal(t, North, White.PawnPushDirection())
	assert.Equal(t, South, Black.PawnPushDirection())
	assert.Equal(t, Rank8, White.PromotionRank())
	assert.Equal(t, Rank1, Black.PromotionRank())
}

func TestMakePieceAndColorOf(t *testing.T) {
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt < PtNone; pt++ {
			p := MakePiece(c, pt)
			assert.Equal(t, c, p.ColorOf())
			assert.Equal(t, pt, p.TypeOf())
		}
	}
	assert.Equal(t, ColorNone, PieceNone.ColorOf())
	assert.Equal(t, PtNone, PieceNone.TypeOf())
}

func TestPieceOrdering(t *testing.T) {
	// spec's twelve-value ordering: indices 0-5 White, 6-11 Black.
	assert.Equal(t, WhitePawn, MakePiece(White, Pawn))
	assert.Equal(t, WhiteKing, MakePiece(White, King))
	assert.Equal(t, BlackPawn, MakePiece(Black, Pawn))
	assert.Equal(t, BlackKing, MakePiece(Black, King))
	assert.True(t, WhiteKing < BlackPawn)
}

func TestPieceFromChar(t *testing.T) {
	assert.Equal(t, WhitePawn, PieceFromChar("P"))
	assert.Equal(t, BlackKing, PieceFromChar("k"))
	assert.Equal(t, PieceNone, PieceFromChar("x"))
	assert.Equal(t, PieceNone, PieceFromChar(""))
}

func TestCastlingRights(t *testing.T) {
	var cr CastlingRights
	cr.Add(CastlingWhiteOO)
	assert.True(t, cr.Has(CastlingWhiteOO))
	assert.False(t, cr.Has(CastlingWhiteOOO))
	assert.Equal(t, "K", cr.String())
	cr.Add(CastlingBlack)
	assert.Equal(t, "Kkq", cr.String())
	cr.Remove(CastlingWhiteOO)
	assert.Equal(t, "kq", cr.String())
	var none CastlingRights
	assert.Equal(t, "-", none.String())
}

func TestKingsideQueensideFor(t *testing.T) {
	assert.Equal(t, CastlingWhiteOO, KingsideFor(White))
	assert.Equal(t, CastlingBlackOO, KingsideFor(Black))
	assert.Equal(t, CastlingWhiteOOO, QueensideFor(White))
	assert.Equal(t, CastlingBlackOOO, QueensideFor(Black))
}

func TestMovePackingRoundTrip(t *testing.T) {
	m := NewMove(SqE2, SqE4, DoublePush)
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())
	assert.Equal(t, DoublePush, m.Kind())
	assert.Equal(t, "e2e4", m.StringUci())
}

func TestMoveCaptureFlag(t *testing.T) {
	assert.True(t, NewMove(SqE4, SqD5, Capture).IsCapture())
	assert.True(t, NewMove(SqE5, SqD6, EnPassant).IsCapture())
	assert.False(t, NewMove(SqE2, SqE4, DoublePush).IsCapture())
}

func TestMovePromotion(t *testing.T) {
	m := NewPromotion(SqA7, SqA8, Queen)
	assert.True(t, m.IsPromotion())
	assert.False(t, m.IsCapture())
	assert.Equal(t, Queen, m.PromotionType())
	assert.Equal(t, "a7a8q", m.StringUci())

	mc := NewPromotionCapture(SqB7, SqA8, Knight)
	assert.True(t, mc.IsPromotion())
	assert.True(t, mc.IsCapture())
	assert.Equal(t, Knight, mc.PromotionType())
	assert.Equal(t, "b7a8n", mc.StringUci())
}

func TestMoveCastleKinds(t *testing.T) {
	k := NewMove(SqE1, SqG1, KingCastle)
	q := NewMove(SqE1, SqC1, QueenCastle)
	assert.True(t, k.IsCastle())
	assert.True(t, q.IsCastle())
	assert.False(t, k.IsCapture())
}

func TestMoveNoneIsZero(t *testing.T) {
	assert.Equal(t, Move(0), MoveNone)
	assert.Equal(t, "0000", MoveNone.StringUci())
}

func TestValueMateDistance(t *testing.T) {
	assert.True(t, ValueMate.IsMateScore())
	assert.False(t, ValueZero.IsMateScore())
	assert.True(t, (ValueMate - 3).IsMateScore())
	assert.True(t, (-ValueMate + 3).IsMateScore())
}
