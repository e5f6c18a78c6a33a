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

// PieceType identifies the kind of a piece independent of color. The
// numbering matches Piece's mod-6 layout so TypeOf is a single mask/mod.
type PieceType uint8

const (
	Pawn       PieceType = 0
	Knight     PieceType = 1
	Bishop     PieceType = 2
	Rook       PieceType = 3
	Queen      PieceType = 4
	King       PieceType = 5
	PtNone     PieceType = 6
	PtLength             = PtNone
)

// IsValid checks if pt is one of the six real piece types.
func (pt PieceType) IsValid() bool {
	return pt < PtNone
}

// IsSlider reports whether the piece type slides along rays (bishop/rook/queen).
func (pt PieceType) IsSlider() bool {
	return pt == Bishop || pt == Rook || pt == Queen
}

var pieceTypeValue = [PtLength]Value{100, 320, 330, 500, 900, 2000}

// ValueOf returns the static material value of the piece type.
func (pt PieceType) ValueOf() Value {
	return pieceTypeValue[pt]
}

// GamePhaseMax is the game-phase value of the starting position's non-pawn,
// non-king material (4 knights + 4 bishops + 4 rooks*2 + 2 queens*4).
const GamePhaseMax = 24

var gamePhaseValue = [PtLength]int{0, 1, 1, 2, 4, 0}

// GamePhaseValue returns the weight this piece type contributes to the
// mid-game/end-game interpolation factor the evaluator uses.
func (pt PieceType) GamePhaseValue() int {
	return gamePhaseValue[pt]
}

var pieceTypeToString = [PtLength]string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

// String returns a human-readable name for the piece type.
func (pt PieceType) String() string {
	return pieceTypeToString[pt]
}

// Char returns the upper-case single-letter SAN label for the piece type.
// SAN omits this letter for pawns; callers building SAN strings special-case Pawn.
func (pt PieceType) Char() string {
	return string("PNBRQK"[pt])
}
