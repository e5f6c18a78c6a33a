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

// Package bitboard provides the 64-bit set primitives every other package
// builds on: one bit per square, square index = rank*8+file, rank 0 is
// White's first rank and file 0 is the a-file.
//
// Comparisons against zero always test population emptiness (Board == 0
// means "no squares set"), never numeric equality between two boards with
// distinct content.
package bitboard

import "math/bits"

// Board is a 64-bit set of squares, one bit per square index.
type Board uint64

// Empty and Universe are the two trivial boards.
const (
	Empty    Board = 0
	Universe Board = 0xFFFFFFFFFFFFFFFF
)

// File masks, file 0 = a-file.
const (
	FileA Board = 0x0101010101010101
	FileB Board = FileA << 1
	FileC Board = FileA << 2
	FileD Board = FileA << 3
	FileE Board = FileA << 4
	FileF Board = FileA << 5
	FileG Board = FileA << 6
	FileH Board = FileA << 7
)

// Rank masks, rank 0 = White's first rank.
const (
	Rank1 Board = 0xFF
	Rank2 Board = Rank1 << (8 * 1)
	Rank3 Board = Rank1 << (8 * 2)
	Rank4 Board = Rank1 << (8 * 3)
	Rank5 Board = Rank1 << (8 * 4)
	Rank6 Board = Rank1 << (8 * 5)
	Rank7 Board = Rank1 << (8 * 6)
	Rank8 Board = Rank1 << (8 * 7)
)

var Files = [8]Board{FileA, FileB, FileC, FileD, FileE, FileF, FileG, FileH}
var Ranks = [8]Board{Rank1, Rank2, Rank3, Rank4, Rank5, Rank6, Rank7, Rank8}

// FromSquare returns a board with only the given square index set.
func FromSquare(sq int) Board {
	return Board(1) << uint(sq)
}

// Has reports whether the given square is set.
func (b Board) Has(sq int) bool {
	return b&FromSquare(sq) != 0
}

// Set returns b with sq set.
func (b Board) Set(sq int) Board {
	return b | FromSquare(sq)
}

// Clear returns b with sq cleared.
func (b Board) Clear(sq int) Board {
	return b &^ FromSquare(sq)
}

// Count returns the population count of b.
func (b Board) Count() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the index of the least significant set bit, or 64 if b is empty.
func (b Board) Lsb() int {
	return bits.TrailingZeros64(uint64(b))
}

// PopLsb clears and returns the index of the least significant set bit.
// Behaviour is undefined if b is empty; callers must check Count()/emptiness
// first (the standard iteration idiom below always does).
func (b *Board) PopLsb() int {
	sq := b.Lsb()
	*b &= *b - 1
	return sq
}

// Direction is a signed square-index delta used for ray walks and shifts.
// Positive moves toward higher square indices (north/east), negative toward
// lower ones (south/west), matching spec's "s>0 left, s<0 right" shift
// convention translated to a square-delta convention.
type Direction int

const (
	North     Direction = 8
	South     Direction = -8
	East      Direction = 1
	West      Direction = -1
	NorthEast Direction = 9
	NorthWest Direction = 7
	SouthEast Direction = -7
	SouthWest Direction = -9
)

// ShiftByDirection shifts every set square of b by one step in the given
// direction, clearing squares that would wrap around a file edge. Grounded
// on the teacher's ShiftBitboard (pkg/types/bitboard.go).
func ShiftByDirection(b Board, d Direction) Board {
	switch d {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East:
		return (b &^ FileH) << 1
	case West:
		return (b &^ FileA) >> 1
	case NorthEast:
		return (b &^ FileH) << 9
	case NorthWest:
		return (b &^ FileA) << 7
	case SouthEast:
		return (b &^ FileH) >> 7
	case SouthWest:
		return (b &^ FileA) >> 9
	default:
		return 0
	}
}

// Squares is a precomputed table mapping a square to its singleton board.
var Squares [64]Board

// Between[from][to] is the set of squares strictly between from and to when
// they share a rank, file or diagonal; Empty otherwise. Used heavily by
// pin-ray and check-mask computation.
var Between [64][64]Board

// Line[from][to] is the full line (rank/file/diagonal) through from and to,
// extended to the board edges, or Empty if they do not share one.
var Line [64][64]Board

func init() {
	for sq := 0; sq < 64; sq++ {
		Squares[sq] = FromSquare(sq)
	}
	for from := 0; from < 64; from++ {
		for to := 0; to < 64; to++ {
			Between[from][to] = computeBetween(from, to)
			Line[from][to] = computeLine(from, to)
		}
	}
}

func fileOf(sq int) int { return sq % 8 }
func rankOf(sq int) int { return sq / 8 }

// rayDeltas are the eight single-step deltas used for ray walks, with
// their (df, dr) file/rank deltas for edge-of-board detection.
var rayDeltas = []struct {
	d      Direction
	df, dr int
}{
	{North, 0, 1}, {South, 0, -1}, {East, 1, 0}, {West, -1, 0},
	{NorthEast, 1, 1}, {NorthWest, -1, 1}, {SouthEast, 1, -1}, {SouthWest, -1, -1},
}

func computeBetween(from, to int) Board {
	if from == to {
		return Empty
	}
	ff, fr := fileOf(from), rankOf(from)
	tf, tr := fileOf(to), rankOf(to)
	df := sign(tf - ff)
	dr := sign(tr - fr)
	if df == 0 && dr == 0 {
		return Empty
	}
	// must be aligned on rank, file or diagonal
	if !(ff == tf || fr == tr || abs(tf-ff) == abs(tr-fr)) {
		return Empty
	}
	var b Board
	f, r := ff+df, fr+dr
	for f != tf || r != tr {
		if f < 0 || f > 7 || r < 0 || r > 7 {
			return Empty
		}
		b = b.Set(r*8 + f)
		f += df
		r += dr
	}
	return b
}

func computeLine(from, to int) Board {
	if from == to {
		return Empty
	}
	ff, fr := fileOf(from), rankOf(from)
	tf, tr := fileOf(to), rankOf(to)
	if !(ff == tf || fr == tr || abs(tf-ff) == abs(tr-fr)) {
		return Empty
	}
	df := sign(tf - ff)
	dr := sign(tr - fr)
	var b Board
	f, r := ff, fr
	for f >= 0 && f <= 7 && r >= 0 && r <= 7 {
		b = b.Set(r*8 + f)
		f -= df
		r -= dr
	}
	f, r = ff+df, fr+dr
	for f >= 0 && f <= 7 && r >= 0 && r <= 7 {
		b = b.Set(r*8 + f)
		f += df
		r += dr
	}
	return b
}

func sign(i int) int {
	switch {
	case i > 0:
		return 1
	case i < 0:
		return -1
	default:
		return 0
	}
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
