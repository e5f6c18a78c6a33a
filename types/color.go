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

	"github.com/corvidchess/corvid/corviderr"
)

// Color identifies the side to move or the owner of a piece.
type Color uint8

const (
	White       Color = 0
	Black       Color = 1
	ColorNone   Color = 2
	ColorLength int   = 2
)

// Flip returns the opposite color.
func (c Color) Flip() Color {
	return c ^ 1
}

// IsValid checks whether c is White or Black.
func (c Color) IsValid() bool {
	return c < ColorNone
}

// String returns "w" or "b".
func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		panic(&corviderr.InternalInvariantViolation{Msg: fmt.Sprintf("invalid color %d", c)})
	}
}

var moveDirectionFactor = [2]int{1, -1}

// Direction returns +1 for White, -1 for Black, used for rank-distance math.
func (c Color) Direction() int {
	return moveDirectionFactor[c]
}

var pawnDir = [2]Direction{North, South}

// PawnPushDirection returns the direction a pawn of this color advances.
func (c Color) PawnPushDirection() Direction {
	return pawnDir[c]
}

var promotionRank = [2]Rank{Rank8, Rank1}

// PromotionRank returns the rank on which a pawn of this color promotes.
func (c Color) PromotionRank() Rank {
	return promotionRank[c]
}

var doublePushRank = [2]Rank{Rank2, Rank7}

// DoublePushOriginRank returns the rank a pawn of this color starts on,
// from which a double push is legal.
func (c Color) DoublePushOriginRank() Rank {
	return doublePushRank[c]
}

var doublePushTargetRank = [2]Rank{Rank4, Rank5}

// DoublePushTargetRank returns the rank a double push lands on for this color.
func (c Color) DoublePushTargetRank() Rank {
	return doublePushTargetRank[c]
}
