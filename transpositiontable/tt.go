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

// Package transpositiontable implements the search's position cache:
// a power-of-two-sized, open-addressed array keyed by the low bits of the
// Zobrist hash, with depth-preferred replacement and exact-key-match
// probing, per spec.md §4.H. Not thread safe; Resize/Clear must not run
// concurrently with search.
package transpositiontable

import (
	"math"
	"unsafe"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/corvidchess/corvid/corviderr"
	"github.com/corvidchess/corvid/logging"
	"github.com/corvidchess/corvid/position"
	"github.com/corvidchess/corvid/types"
)

var out = message.NewPrinter(language.German)
var log = logging.GetLog("tt")

// TtEntrySize is the per-slot footprint in bytes.
const TtEntrySize = int(unsafe.Sizeof(TtEntry{}))

// MaxSizeInMB bounds the configurable table size.
const MaxSizeInMB = 65_536

// TtEntry is one transposition table slot. The value carried by a move in
// the teacher's engine is stored separately here since this module's
// 16-bit types.Move has no spare bits to pack a score into.
type TtEntry struct {
	Key   position.Key
	Move  types.Move
	Value types.Value
	Depth int8
	Bound types.ValueType
}

// TtTable is the transposition table.
type TtTable struct {
	data               []TtEntry
	sizeInByte         uint64
	hashKeyMask        uint64
	maxNumberOfEntries uint64
	numberOfEntries    uint64
	Stats              TtStats
}

// TtStats counts usage for UCI "info" reporting and diagnostics.
type TtStats struct {
	numberOfPuts       uint64
	numberOfCollisions uint64
	numberOfOverwrites uint64
	numberOfUpdates    uint64
	numberOfProbes     uint64
	numberOfHits       uint64
	numberOfMisses     uint64
}

// NewTtTable builds a table sized to the largest power of two entries that
// fit within sizeInMByte, per spec.md §4.H.
func NewTtTable(sizeInMByte int) *TtTable {
	tt := &TtTable{}
	tt.Resize(sizeInMByte)
	return tt
}

// Resize rebuilds the table for a new memory budget, discarding all entries.
func (tt *TtTable) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		log.Warningf("requested TT size %d MB reduced to max %d MB", sizeInMByte, MaxSizeInMB)
		sizeInMByte = MaxSizeInMB
	}
	if sizeInMByte < 0 {
		sizeInMByte = 0
	}

	sizeInByte := uint64(sizeInMByte) * 1024 * 1024
	var maxEntries uint64
	if sizeInByte >= uint64(TtEntrySize) {
		maxEntries = 1 << uint64(math.Floor(math.Log2(float64(sizeInByte)/float64(TtEntrySize))))
	}

	if maxEntries == 0 && sizeInMByte > 0 {
		rl := &corviderr.ResourceLimit{
			Msg:   "requested TT size too small to hold a single entry, table disabled",
			Fatal: false,
		}
		log.Warningf("%s", rl.Error())
	}

	tt.maxNumberOfEntries = maxEntries
	tt.hashKeyMask = 0
	if maxEntries > 0 {
		tt.hashKeyMask = maxEntries - 1
	}
	tt.sizeInByte = maxEntries * uint64(TtEntrySize)
	tt.data = make([]TtEntry, maxEntries)
	tt.numberOfEntries = 0
	tt.Stats = TtStats{}

	log.Infof(out.Sprintf("TT resized to %d MB, %d entries of %d bytes (requested %d MB)",
		tt.sizeInByte/(1024*1024), tt.maxNumberOfEntries, TtEntrySize, sizeInMByte))
}

func (tt *TtTable) hash(key position.Key) uint64 {
	return uint64(key) & tt.hashKeyMask
}

// Probe returns the entry for key, or nil on a miss (empty slot or a
// different position's hash occupying the slot), per spec.md §4.H's
// "simple always-replace-collision-rejection" probe semantics.
func (tt *TtTable) Probe(key position.Key) *TtEntry {
	if tt.maxNumberOfEntries == 0 {
		return nil
	}
	tt.Stats.numberOfProbes++
	e := &tt.data[tt.hash(key)]
	if e.Key != key || e.Key == 0 {
		tt.Stats.numberOfMisses++
		return nil
	}
	tt.Stats.numberOfHits++
	return e
}

// Store writes {key, move, value, depth, bound} into its slot, overwriting
// the existing occupant only if the slot is empty or depth is at least the
// stored entry's depth (depth-preferred replacement per spec.md §4.H).
func (tt *TtTable) Store(key position.Key, move types.Move, value types.Value, depth int8, bound types.ValueType) {
	if tt.maxNumberOfEntries == 0 {
		return
	}
	tt.Stats.numberOfPuts++
	e := &tt.data[tt.hash(key)]

	if e.Key == 0 {
		tt.numberOfEntries++
	} else if e.Key != key {
		tt.Stats.numberOfCollisions++
		if depth < e.Depth {
			return
		}
		tt.Stats.numberOfOverwrites++
	} else {
		tt.Stats.numberOfUpdates++
		if depth < e.Depth {
			return
		}
	}

	e.Key = key
	e.Move = move
	e.Value = value
	e.Depth = depth
	e.Bound = bound
}

// Clear empties every slot without reallocating.
func (tt *TtTable) Clear() {
	for i := range tt.data {
		tt.data[i] = TtEntry{}
	}
	tt.numberOfEntries = 0
	tt.Stats = TtStats{}
}

// Hashfull reports table occupancy in permille, as UCI's "info hashfull".
func (tt *TtTable) Hashfull() int {
	if tt.maxNumberOfEntries == 0 {
		return 0
	}
	return int((1000 * tt.numberOfEntries) / tt.maxNumberOfEntries)
}

// Len returns the number of occupied slots.
func (tt *TtTable) Len() uint64 { return tt.numberOfEntries }

// String renders size and usage statistics for UCI/debug output.
func (tt *TtTable) String() string {
	return out.Sprintf("TT: %d MB, %d entries (%d/1000 full), puts %d updates %d collisions %d overwrites %d probes %d hits %d misses %d",
		tt.sizeInByte/(1024*1024), tt.maxNumberOfEntries, tt.Hashfull(),
		tt.Stats.numberOfPuts, tt.Stats.numberOfUpdates, tt.Stats.numberOfCollisions, tt.Stats.numberOfOverwrites,
		tt.Stats.numberOfProbes, tt.Stats.numberOfHits, tt.Stats.numberOfMisses)
}
