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

// Package attacks provides O(1) sliding- and leaper-piece attack lookups
// built on magic bitboards, plus the search that derives the magic
// numbers themselves ("fancy" magic bitboards, after Stockfish).
package attacks

import (
	"github.com/corvidchess/corvid/bitboard"
	"github.com/corvidchess/corvid/types"
)

// MagicEntry holds everything needed to index the shared attacks table
// for one square of one slider kind.
type MagicEntry struct {
	Mask   bitboard.Board
	Magic  uint64
	Shift  uint
	Offset int
	Size   int
}

// Index computes the table index for this entry given the full board
// occupancy: mask the relevant blockers, multiply by the magic, shift
// down to the index width, and add the square's region offset.
func (m *MagicEntry) Index(occupied bitboard.Board) int {
	occ := uint64(occupied) & uint64(m.Mask)
	return int((occ*m.Magic)>>m.Shift) + m.Offset
}

var (
	RookMagics    [64]MagicEntry
	BishopMagics  [64]MagicEntry
	RookAttacks   []bitboard.Board
	BishopAttacks []bitboard.Board
)

var rookDirections = [4]bitboard.Direction{bitboard.North, bitboard.South, bitboard.East, bitboard.West}
var bishopDirections = [4]bitboard.Direction{bitboard.NorthEast, bitboard.NorthWest, bitboard.SouthEast, bitboard.SouthWest}

// GenerateTables re-runs the magic search for both slider kinds and
// returns the resulting magic entries and flat attack tables - the same
// computation magic_runtime.go's init() performs at package load for a
// default build. Exported for cmd/magicgen, which runs this offline and
// writes the result out as a generated Go source file, per the
// requirement that the magic search is a separate build-time step
// rather than something every process repeats. The search is seeded
// deterministically (see seeds in generateMagics), so a fresh run here
// reproduces exactly what the default build's init() already holds.
func GenerateTables() (rookMagics [64]MagicEntry, rookAttacks []bitboard.Board, bishopMagics [64]MagicEntry, bishopAttacks []bitboard.Board) {
	rookAttacks = generateMagics(rookDirections, &rookMagics)
	bishopAttacks = generateMagics(bishopDirections, &bishopMagics)
	return
}

// relevantMask returns the squares a slider moving along directions could
// reach on an empty board, excluding the far board edge along each ray
// (edge squares can never block a ray further, so they are irrelevant to
// the occupancy hash).
func relevantMask(directions [4]bitboard.Direction, sq int) bitboard.Board {
	full := slidingAttack(directions, sq, bitboard.Empty)
	file := types.Square(sq).FileOf()
	rank := types.Square(sq).RankOf()
	edges := bitboard.Empty
	if rank != types.Rank1 {
		edges |= bitboard.Rank1
	}
	if rank != types.Rank8 {
		edges |= bitboard.Rank8
	}
	if file != types.FileA {
		edges |= bitboard.FileA
	}
	if file != types.FileH {
		edges |= bitboard.FileH
	}
	return full &^ edges
}

// slidingAttack walks every direction from sq until it hits an occupied
// square or runs off the board, recording every square visited including
// the blocker itself. Only used for table generation, never in the hot path.
func slidingAttack(directions [4]bitboard.Direction, sq int, occupied bitboard.Board) bitboard.Board {
	var attack bitboard.Board
	s := types.Square(sq)
	for _, d := range directions {
		cur := s
		for {
			next := cur.To(toTypesDirection(d))
			if !next.IsValid() {
				break
			}
			attack = attack.Set(int(next))
			if occupied.Has(int(next)) {
				break
			}
			cur = next
		}
	}
	return attack
}

func toTypesDirection(d bitboard.Direction) types.Direction {
	return types.Direction(d)
}

// generateMagics finds a working magic number for every square of one
// slider kind and builds the shared flat attacks table, per spec's
// Carry-Rippler subset enumeration plus sparse-random magic search. Each
// square gets the smallest table region that fits its actual relevant
// occupancy count (2^popcount(mask) subsets), following Stockfish's
// variable per-square shift rather than a single fixed index width.
func generateMagics(directions [4]bitboard.Direction, magics *[64]MagicEntry) []bitboard.Board {
	// 4096 = 2^12 covers the largest relevant-occupancy count either
	// slider kind can have (rook corners: 12 bits; bishop: 9 bits).
	var occupancy [4096]bitboard.Board
	var reference [4096]bitboard.Board
	var epoch [4096]int
	cnt := 0

	seeds := [8]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

	table := make([]bitboard.Board, 0, 64*4096)
	offset := 0

	for sq := 0; sq < 64; sq++ {
		m := &magics[sq]
		m.Mask = relevantMask(directions, sq)
		m.Shift = 64 - uint(m.Mask.Count())

		size := 0
		var b bitboard.Board
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(directions, sq, b)
			size++
			b = (b - m.Mask) & m.Mask
			if b == bitboard.Empty {
				break
			}
		}
		m.Size = size
		m.Offset = offset

		rng := newPrnG(seeds[types.Square(sq).RankOf()])
		attempt := make([]bitboard.Board, size)
		for {
			var magic uint64
			for {
				magic = rng.sparseRand()
				if popcount((uint64(m.Mask)*magic)>>56) >= 6 {
					continue
				}
				break
			}
			m.Magic = magic

			cnt++
			ok := true
			for i := 0; i < size; i++ {
				idx := int((uint64(occupancy[i]) * magic) >> m.Shift)
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					attempt[idx] = reference[i]
				} else if attempt[idx] != reference[i] {
					ok = false
					break
				}
			}
			if ok {
				break
			}
		}
		table = append(table, attempt...)
		offset += size
	}
	return table
}

func popcount(x uint64) int {
	n := 0
	for x != 0 {
		n++
		x &= x - 1
	}
	return n
}

// prnG is the xorshift64star pseudo-random generator used to draw magic
// candidates, after Sebastiano Vigna's public-domain design.
type prnG struct {
	s uint64
}

func newPrnG(seed uint64) *prnG {
	return &prnG{s: seed}
}

func (r *prnG) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// sparseRand draws a candidate with roughly 1/8th of its bits set;
// sparse magics are empirically found faster than dense ones.
func (r *prnG) sparseRand() uint64 {
	return r.rand64() & r.rand64() & r.rand64()
}
