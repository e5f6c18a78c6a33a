//go:build !magicgen_tables

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

// This file backs RookMagics/BishopMagics/RookAttacks/BishopAttacks with a
// fresh magic search at package load, for any build that has not opted
// into the magicgen_tables build tag. Once cmd/magicgen has been run and
// its output committed as attacks/magic_tables_gen.go, building with
// `-tags magicgen_tables` excludes this file and loads the precomputed
// literals from the generated file instead - the same source toggles
// between "regenerate at startup" and "compile-time constants" depending
// on which file the build tag selects.
package attacks

func init() {
	RookAttacks = generateMagics(rookDirections, &RookMagics)
	BishopAttacks = generateMagics(bishopDirections, &BishopMagics)
}
