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

import "strings"

// Piece is one of the twelve colored pieces, or PieceNone. Pieces 0-5 are
// White's six piece types in PieceType order, 6-11 are Black's, so
// ColorOf and TypeOf are a single divide/mod rather than a bit test.
type Piece int8

const (
	WhitePawn   Piece = 0
	WhiteKnight Piece = 1
	WhiteBishop Piece = 2
	WhiteRook   Piece = 3
	WhiteQueen  Piece = 4
	WhiteKing   Piece = 5
	BlackPawn   Piece = 6
	BlackKnight Piece = 7
	BlackBishop Piece = 8
	BlackRook   Piece = 9
	BlackQueen  Piece = 10
	BlackKing   Piece = 11
	PieceNone   Piece = 12
	PieceLength Piece = 12
)

// MakePiece creates the piece given by color and piece type.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(int(c)*6 + int(pt))
}

// ColorOf returns the color of the given piece. Indices 0-5 are White,
// 6-11 are Black; any other value (PieceNone) reports ColorNone.
func (p Piece) ColorOf() Color {
	if p < 0 || p >= PieceLength {
		return ColorNone
	}
	return Color(p / 6)
}

// TypeOf returns the piece type of the given piece, or PtNone for PieceNone.
func (p Piece) TypeOf() PieceType {
	if p < 0 || p >= PieceLength {
		return PtNone
	}
	return PieceType(p % 6)
}

// ValueOf returns the static material value of the piece.
func (p Piece) ValueOf() Value {
	return p.TypeOf().ValueOf()
}

var pieceToString = [13]string{"P", "N", "B", "R", "Q", "K", "p", "n", "b", "r", "q", "k", "-"}

// String returns a single-character label, upper-case for White, lower for Black.
func (p Piece) String() string {
	if p < 0 || p > PieceLength {
		return "-"
	}
	return pieceToString[p]
}

// PieceFromChar returns the Piece named by a single FEN piece letter, or
// PieceNone if s does not name exactly one recognized letter.
func PieceFromChar(s string) Piece {
	if len(s) != 1 {
		return PieceNone
	}
	idx := strings.Index("PNBRQKpnbrqk", s)
	if idx == -1 {
		return PieceNone
	}
	return Piece(idx)
}

var pieceToUnicode = [13]string{"♙", "♘", "♗", "♖", "♕", "♔", "♟", "♞", "♝", "♜", "♛", "♚", "·"}

// UniChar returns a unicode glyph representation of the piece.
func (p Piece) UniChar() string {
	if p < 0 || p > PieceLength {
		return "·"
	}
	return pieceToUnicode[p]
}
