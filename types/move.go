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
	"fmt"
	"strings"

	"github.com/corvidchess/corvid/corviderr"
)

// Move packs a chess move into 16 bits:
//  BITMAP 16-bit
//  |-kind -|-from -----|-to -------|
//  1 1 1 1 1 1 1 1 1 1 1 1 0 0 0 0 0
//  5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0
//  -----------------------------------
//                      1 1 1 1 1 1  to      bits 0-5
//          1 1 1 1 1 1              from    bits 6-11
//  1 1 1 1                          kind    bits 12-15
type Move uint16

// MoveNone is the zero value and never a legal move (a1a1 would otherwise
// collide with it, but a1a1 is never generated since from != to always).
const MoveNone Move = 0

// MoveKind distinguishes the 14 ways a move can affect the board beyond
// a plain piece relocation.
type MoveKind uint8

const (
	Normal            MoveKind = 0
	DoublePush        MoveKind = 1
	KingCastle        MoveKind = 2
	QueenCastle       MoveKind = 3
	Capture           MoveKind = 4
	EnPassant         MoveKind = 5
	KPromotion        MoveKind = 8
	BPromotion        MoveKind = 9
	RPromotion        MoveKind = 10
	QPromotion        MoveKind = 11
	KPromotionCapture MoveKind = 12
	BPromotionCapture MoveKind = 13
	RPromotionCapture MoveKind = 14
	QPromotionCapture MoveKind = 15
)

const (
	toShift   uint   = 0
	fromShift uint   = 6
	kindShift uint   = 12
	toMask    Move   = 0x3F
	fromMask  Move   = 0x3F << fromShift
	kindMask  Move   = 0xF << kindShift
)

// NewMove packs from, to and kind into a Move.
func NewMove(from, to Square, kind MoveKind) Move {
	return Move(from)<<fromShift | Move(to)<<toShift | Move(kind)<<kindShift
}

// From returns the origin square.
func (m Move) From() Square {
	return Square((m & fromMask) >> fromShift)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m & toMask) >> toShift)
}

// Kind returns the move kind.
func (m Move) Kind() MoveKind {
	return MoveKind((m & kindMask) >> kindShift)
}

// IsCapture reports whether the move removes a piece from the target
// square, including en passant (whose captured pawn is not on the target
// square itself, but the move still removes a piece from the board).
func (m Move) IsCapture() bool {
	k := m.Kind()
	return k == Capture || k == EnPassant ||
		k == KPromotionCapture || k == BPromotionCapture ||
		k == RPromotionCapture || k == QPromotionCapture
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Kind() >= KPromotion
}

// IsCastle reports whether the move is a king- or queen-side castle.
func (m Move) IsCastle() bool {
	k := m.Kind()
	return k == KingCastle || k == QueenCastle
}

// PromotionType returns the piece type a promotion move creates. Only
// meaningful when IsPromotion() is true.
func (m Move) PromotionType() PieceType {
	switch m.Kind() {
	case KPromotion, KPromotionCapture:
		return Knight
	case BPromotion, BPromotionCapture:
		return Bishop
	case RPromotion, RPromotionCapture:
		return Rook
	case QPromotion, QPromotionCapture:
		return Queen
	default:
		return PtNone
	}
}

// promotionKind maps a promotion piece type plus capture flag to its MoveKind.
func promotionKind(pt PieceType, capture bool) MoveKind {
	var base MoveKind
	switch pt {
	case Knight:
		base = KPromotion
	case Bishop:
		base = BPromotion
	case Rook:
		base = RPromotion
	case Queen:
		base = QPromotion
	default:
		panic(&corviderr.InternalInvariantViolation{Msg: fmt.Sprintf("invalid promotion piece type %d", pt)})
	}
	if capture {
		return base + (KPromotionCapture - KPromotion)
	}
	return base
}

// NewPromotion builds a non-capturing promotion move.
func NewPromotion(from, to Square, pt PieceType) Move {
	return NewMove(from, to, promotionKind(pt, false))
}

// NewPromotionCapture builds a capturing promotion move.
func NewPromotionCapture(from, to Square, pt PieceType) Move {
	return NewMove(from, to, promotionKind(pt, true))
}

var kindToString = [16]string{
	"normal", "double-push", "O-O", "O-O-O", "capture", "en-passant",
	"", "",
	"promotion(N)", "promotion(B)", "promotion(R)", "promotion(Q)",
	"promotion-capture(N)", "promotion-capture(B)", "promotion-capture(R)", "promotion-capture(Q)",
}

// String returns a short tag naming the move kind.
func (k MoveKind) String() string {
	return kindToString[k]
}

// StringUci renders the move as UCI long algebraic notation, e.g. "e2e4"
// or "a7a8q" for a queen promotion.
func (m Move) StringUci() string {
	if m == MoveNone {
		return "0000"
	}
	var sb strings.Builder
	sb.WriteString(m.From().String())
	sb.WriteString(m.To().String())
	if m.IsPromotion() {
		sb.WriteString(strings.ToLower(m.PromotionType().Char()))
	}
	return sb.String()
}

// String gives a debug representation including the move kind.
func (m Move) String() string {
	if m == MoveNone {
		return "Move{none}"
	}
	return fmt.Sprintf("Move{%s %s}", m.StringUci(), m.Kind().String())
}
