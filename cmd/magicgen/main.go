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

// Command magicgen runs the offline magic-number search in package
// attacks and writes the result as a generated Go source file: two
// MagicEntry tables and their flat attack blobs, ready to be compiled in
// as static data instead of re-searched by every process that imports
// attacks.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/corvidchess/corvid/attacks"
	"github.com/corvidchess/corvid/bitboard"
)

func main() {
	out := flag.String("out", "attacks/magic_tables_gen.go", "output path for the generated tables source file")
	flag.Parse()

	rookMagics, rookAttacks, bishopMagics, bishopAttacks := attacks.GenerateTables()

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("magicgen: %v", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	writeFile(w, rookMagics, rookAttacks, bishopMagics, bishopAttacks)
	if err := w.Flush(); err != nil {
		log.Fatalf("magicgen: %v", err)
	}
}

// writeFile emits a file built only under the magicgen_tables tag (see
// attacks/magic_runtime.go for the complementary !magicgen_tables file):
// the generated literals load at package init instead of re-running the
// magic search, once a build opts in with `-tags magicgen_tables`.
func writeFile(w *bufio.Writer, rookMagics [64]attacks.MagicEntry, rookAttacks []bitboard.Board, bishopMagics [64]attacks.MagicEntry, bishopAttacks []bitboard.Board) {
	fmt.Fprint(w, "// Code generated by cmd/magicgen. DO NOT EDIT.\n\n")
	fmt.Fprint(w, "//go:build magicgen_tables\n\n")
	fmt.Fprint(w, "package attacks\n\n")
	fmt.Fprint(w, "import \"github.com/corvidchess/corvid/bitboard\"\n\n")

	writeMagicTable(w, "generatedRookMagics", rookMagics)
	writeMagicTable(w, "generatedBishopMagics", bishopMagics)
	writeAttackTable(w, "generatedRookAttacks", rookAttacks)
	writeAttackTable(w, "generatedBishopAttacks", bishopAttacks)

	fmt.Fprint(w, "func init() {\n")
	fmt.Fprint(w, "\tRookMagics = generatedRookMagics\n")
	fmt.Fprint(w, "\tBishopMagics = generatedBishopMagics\n")
	fmt.Fprint(w, "\tRookAttacks = generatedRookAttacks\n")
	fmt.Fprint(w, "\tBishopAttacks = generatedBishopAttacks\n")
	fmt.Fprint(w, "}\n")
}

func writeMagicTable(w *bufio.Writer, name string, entries [64]attacks.MagicEntry) {
	fmt.Fprintf(w, "var %s = [64]MagicEntry{\n", name)
	for _, e := range entries {
		fmt.Fprintf(w, "\t{Mask: bitboard.Board(0x%x), Magic: 0x%x, Shift: %d, Offset: %d, Size: %d},\n",
			uint64(e.Mask), e.Magic, e.Shift, e.Offset, e.Size)
	}
	fmt.Fprint(w, "}\n\n")
}

func writeAttackTable(w *bufio.Writer, name string, table []bitboard.Board) {
	fmt.Fprintf(w, "var %s = []bitboard.Board{\n", name)
	for i, b := range table {
		if i%8 == 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprintf(w, "0x%x, ", uint64(b))
		if i%8 == 7 {
			fmt.Fprint(w, "\n")
		}
	}
	if len(table)%8 != 0 {
		fmt.Fprint(w, "\n")
	}
	fmt.Fprint(w, "}\n")
}
