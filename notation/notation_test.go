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

package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/corvid/position"
)

func TestToLANIsUciString(t *testing.T) {
	p, err := position.NewPositionFen(position.StartFen)
	assert.NoError(t, err)
	m, err := FromLAN(p, "e2e4")
	assert.NoError(t, err)
	assert.Equal(t, "e2e4", ToLAN(m))
}

func TestFromLANRejectsIllegalMove(t *testing.T) {
	p, err := position.NewPositionFen(position.StartFen)
	assert.NoError(t, err)
	_, err = FromLAN(p, "e2e5")
	assert.Error(t, err)
}

func TestFromLANAcceptsPromotion(t *testing.T) {
	p, err := position.NewPositionFen("8/P6k/8/8/8/8/7p/K7 w - - 0 1")
	assert.NoError(t, err)
	m, err := FromLAN(p, "a7a8q")
	assert.NoError(t, err)
	assert.Equal(t, "a7a8q", ToLAN(m))
}

func TestToSANPawnPush(t *testing.T) {
	p, err := position.NewPositionFen(position.StartFen)
	assert.NoError(t, err)
	m, err := FromLAN(p, "e2e4")
	assert.NoError(t, err)
	assert.Equal(t, "e4", ToSAN(p, m))
}

func TestToSANKnightMove(t *testing.T) {
	p, err := position.NewPositionFen(position.StartFen)
	assert.NoError(t, err)
	m, err := FromLAN(p, "g1f3")
	assert.NoError(t, err)
	assert.Equal(t, "Nf3", ToSAN(p, m))
}

func TestToSANPawnCapture(t *testing.T) {
	// White pawn on e4 can capture a black pawn sitting on d5.
	p, err := position.NewPositionFen("rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2")
	assert.NoError(t, err)
	m, err := FromLAN(p, "e4d5")
	assert.NoError(t, err)
	assert.Equal(t, "exd5", ToSAN(p, m))
}

func TestToSANCastlingKingside(t *testing.T) {
	p, err := position.NewPositionFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	m, err := FromLAN(p, "e1g1")
	assert.NoError(t, err)
	assert.Equal(t, "O-O", ToSAN(p, m))
}

func TestToSANCastlingQueenside(t *testing.T) {
	p, err := position.NewPositionFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	m, err := FromLAN(p, "e1c1")
	assert.NoError(t, err)
	assert.Equal(t, "O-O-O", ToSAN(p, m))
}

func TestToSANFileDisambiguation(t *testing.T) {
	// Two white rooks, on a4 and h4, both able to reach d4 along the
	// otherwise empty fourth rank; the kings sit off that rank.
	p, err := position.NewPositionFen("4k3/8/8/8/R6R/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	m, err := FromLAN(p, "a4d4")
	assert.NoError(t, err)
	assert.Equal(t, "Rad4", ToSAN(p, m))
}

func TestToSANRankDisambiguation(t *testing.T) {
	// Two white rooks on a1 and a8, both able to reach a4 - same file,
	// so disambiguation must fall back to rank.
	p, err := position.NewPositionFen("R7/8/7k/8/8/8/8/R3K3 w - - 0 1")
	assert.NoError(t, err)
	m, err := FromLAN(p, "a1a4")
	assert.NoError(t, err)
	assert.Equal(t, "R1a4", ToSAN(p, m))
}

func TestToSANPromotion(t *testing.T) {
	p, err := position.NewPositionFen("8/P6k/8/8/8/8/7p/K7 w - - 0 1")
	assert.NoError(t, err)
	m, err := FromLAN(p, "a7a8q")
	assert.NoError(t, err)
	assert.Equal(t, "a8=Q", ToSAN(p, m))
}

func TestToSANCheckSuffix(t *testing.T) {
	p, err := position.NewPositionFen("7k/8/8/8/8/8/R7/6K1 w - - 0 1")
	assert.NoError(t, err)
	m, err := FromLAN(p, "a2a8")
	assert.NoError(t, err)
	assert.Equal(t, "Ra8+", ToSAN(p, m))
}

func TestToSANMateSuffix(t *testing.T) {
	// Back-rank mate: rook delivers mate along the 8th rank.
	p, err := position.NewPositionFen("6k1/8/6K1/8/8/8/8/R7 w - - 0 1")
	assert.NoError(t, err)
	m, err := FromLAN(p, "a1a8")
	assert.NoError(t, err)
	assert.Equal(t, "Ra8#", ToSAN(p, m))
}

func TestFromSANRoundTripsWithToSAN(t *testing.T) {
	p, err := position.NewPositionFen(position.StartFen)
	assert.NoError(t, err)
	m, err := FromLAN(p, "g1f3")
	assert.NoError(t, err)
	san := ToSAN(p, m)

	back, err := FromSAN(p, san)
	assert.NoError(t, err)
	assert.Equal(t, m, back)
}

func TestFromSANHandlesCastling(t *testing.T) {
	p, err := position.NewPositionFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	m, err := FromSAN(p, "O-O")
	assert.NoError(t, err)
	assert.Equal(t, "e1g1", ToLAN(m))
}

func TestFromSANHandlesDisambiguation(t *testing.T) {
	p, err := position.NewPositionFen("4k3/8/8/8/R6R/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	m, err := FromSAN(p, "Rad4")
	assert.NoError(t, err)
	assert.Equal(t, "a4d4", ToLAN(m))
}

func TestFromSANHandlesPromotion(t *testing.T) {
	p, err := position.NewPositionFen("8/P6k/8/8/8/8/7p/K7 w - - 0 1")
	assert.NoError(t, err)
	m, err := FromSAN(p, "a8=Q")
	assert.NoError(t, err)
	assert.Equal(t, "a7a8q", ToLAN(m))
}

func TestFromSANStripsCheckAndMateSuffix(t *testing.T) {
	p, err := position.NewPositionFen("7k/8/8/8/8/8/R7/6K1 w - - 0 1")
	assert.NoError(t, err)
	m, err := FromSAN(p, "Ra8+")
	assert.NoError(t, err)
	assert.Equal(t, "a2a8", ToLAN(m))
}

func TestFromSANRejectsIllegalMove(t *testing.T) {
	p, err := position.NewPositionFen(position.StartFen)
	assert.NoError(t, err)
	_, err = FromSAN(p, "Nf6")
	assert.Error(t, err)
}
