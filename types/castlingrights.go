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

// CastlingRights packs the four independent castling booleans {WK,WQ,BK,BQ}
// into one nibble.
type CastlingRights uint8

const (
	CastlingNone         CastlingRights = 0
	CastlingWhiteOO      CastlingRights = 1
	CastlingWhiteOOO     CastlingRights = CastlingWhiteOO << 1
	CastlingWhite        CastlingRights = CastlingWhiteOO | CastlingWhiteOOO
	CastlingBlackOO      CastlingRights = CastlingWhiteOO << 2
	CastlingBlackOOO     CastlingRights = CastlingBlackOO << 1
	CastlingBlack        CastlingRights = CastlingBlackOO | CastlingBlackOOO
	CastlingAny          CastlingRights = CastlingWhite | CastlingBlack
	CastlingRightsLength CastlingRights = 16
)

// Has reports whether cr holds at least one of the bits in rhs.
func (cr CastlingRights) Has(rhs CastlingRights) bool {
	return cr&rhs != 0
}

// Remove clears the bits of rhs from cr and returns the new value.
func (cr *CastlingRights) Remove(rhs CastlingRights) CastlingRights {
	*cr &^= rhs
	return *cr
}

// Add sets the bits of rhs on cr and returns the new value.
func (cr *CastlingRights) Add(rhs CastlingRights) CastlingRights {
	*cr |= rhs
	return *cr
}

// KingsideFor and QueensideFor return the single-right mask for a color,
// used to look up/revoke rights without a color-indexed switch at call sites.
func KingsideFor(c Color) CastlingRights {
	if c == White {
		return CastlingWhiteOO
	}
	return CastlingBlackOO
}

func QueensideFor(c Color) CastlingRights {
	if c == White {
		return CastlingWhiteOOO
	}
	return CastlingBlackOOO
}

// AllFor returns both rights for a color.
func AllFor(c Color) CastlingRights {
	if c == White {
		return CastlingWhite
	}
	return CastlingBlack
}

// String renders cr as a FEN castling field, e.g. "KQkq" or "-".
func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	var sb strings.Builder
	if cr&CastlingWhiteOO != 0 {
		sb.WriteString("K")
	}
	if cr&CastlingWhiteOOO != 0 {
		sb.WriteString("Q")
	}
	if cr&CastlingBlackOO != 0 {
		sb.WriteString("k")
	}
	if cr&CastlingBlackOOO != 0 {
		sb.WriteString("q")
	}
	return sb.String()
}
