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

// Package notation converts between types.Move and the two textual move
// formats spec.md §6 names: UCI long algebraic ("e7e8q") and standard
// algebraic ("exd8=Q+"). FEN itself lives on Position (Fen/NewPositionFen)
// since it round-trips the whole board, not a single move.
package notation

import (
	"fmt"

	"github.com/corvidchess/corvid/corviderr"
	"github.com/corvidchess/corvid/movegen"
	"github.com/corvidchess/corvid/movelist"
	"github.com/corvidchess/corvid/position"
	"github.com/corvidchess/corvid/types"
)

// ToLAN renders m in UCI long algebraic notation.
func ToLAN(m types.Move) string {
	return m.StringUci()
}

// FromLAN looks up s among p's legal moves by their LAN string, the same
// approach the teacher's GetMoveFromUci takes (a regex match would accept
// a pseudo-legal or outright malformed move; matching the legal list
// cannot). Returns an error if s names no legal move.
func FromLAN(p *position.Position, s string) (types.Move, error) {
	ml := movegen.Generate(p)
	for i := 0; i < ml.Len(); i++ {
		if m := ml.At(i); m.StringUci() == s {
			return m, nil
		}
	}
	return types.MoveNone, &corviderr.IllegalInput{Input: s}
}

// ToSAN renders m in standard algebraic notation, including a trailing "+"
// or "#" for check/checkmate. p must be the position m is played from; p is
// left unchanged on return (the check/mate probe plays and unplays m).
func ToSAN(p *position.Position, m types.Move) string {
	if m.Kind() == types.KingCastle {
		return appendSuffix(p, m, "O-O")
	}
	if m.Kind() == types.QueenCastle {
		return appendSuffix(p, m, "O-O-O")
	}

	pt := p.PieceAt(m.From()).TypeOf()
	san := ""
	if pt == types.Pawn {
		if m.IsCapture() {
			san = m.From().FileOf().String()
		}
	} else {
		san = disambiguatedPrefix(p, m, pt)
	}
	if m.IsCapture() {
		san += "x"
	}
	san += m.To().String()
	if m.IsPromotion() {
		san += "=" + m.PromotionType().Char()
	}
	return appendSuffix(p, m, san)
}

// disambiguatedPrefix returns the piece letter plus whatever of
// file/rank/full-square is needed to distinguish m from any other legal
// move of the same piece type landing on the same square, per the
// standard SAN disambiguation order: file, then rank, then both. Callers
// handle pawns separately; pawn disambiguation never uses a piece letter.
func disambiguatedPrefix(p *position.Position, m types.Move, pt types.PieceType) string {
	letter := pt.Char()

	ml := movegen.Generate(p)
	sameFile, sameRank := false, false
	ambiguous := false
	for i := 0; i < ml.Len(); i++ {
		other := ml.At(i)
		if other == m || other.To() != m.To() {
			continue
		}
		if p.PieceAt(other.From()).TypeOf() != pt {
			continue
		}
		ambiguous = true
		if other.From().FileOf() == m.From().FileOf() {
			sameFile = true
		}
		if other.From().RankOf() == m.From().RankOf() {
			sameRank = true
		}
	}
	if !ambiguous {
		return letter
	}
	switch {
	case !sameFile:
		return letter + m.From().FileOf().String()
	case !sameRank:
		return letter + m.From().RankOf().String()
	default:
		return letter + m.From().String()
	}
}

// appendSuffix plays m on p to see whether it delivers check or checkmate,
// then unplays it so p is left exactly as the caller passed it in.
func appendSuffix(p *position.Position, m types.Move, san string) string {
	p.DoMove(m)
	ml := movegen.Generate(p)
	inCheck := p.NumCheckers > 0
	mate := inCheck && ml.Len() == 0
	p.UndoMove()

	switch {
	case mate:
		return san + "#"
	case inCheck:
		return san + "+"
	default:
		return san
	}
}

// FromSAN matches s (with or without a trailing check/mate annotation)
// against p's legal moves. Grounded on the teacher's GetMoveFromSan: parse
// the SAN components, then walk the legal move list looking for the one
// whose piece type, destination and disambiguator all agree.
func FromSAN(p *position.Position, s string) (types.Move, error) {
	s = stripSuffix(s)

	ml := movegen.Generate(p)

	if s == "O-O" {
		return findCastle(ml, types.KingCastle, s)
	}
	if s == "O-O-O" {
		return findCastle(ml, types.QueenCastle, s)
	}

	pieceLetter, disambFile, disambRank, dest, promo, err := parseSAN(s)
	if err != nil {
		return types.MoveNone, err
	}

	var found types.Move
	matches := 0
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		if m.To().String() != dest {
			continue
		}
		pt := p.PieceAt(m.From()).TypeOf()
		if pieceLetter == "" {
			if pt != types.Pawn {
				continue
			}
		} else if pt.Char() != pieceLetter {
			continue
		}
		if disambFile != "" && m.From().FileOf().String() != disambFile {
			continue
		}
		if disambRank != "" && m.From().RankOf().String() != disambRank {
			continue
		}
		if promo != "" {
			if !m.IsPromotion() || m.PromotionType().Char() != promo {
				continue
			}
		} else if m.IsPromotion() {
			continue
		}
		found = m
		matches++
	}

	switch matches {
	case 0:
		return types.MoveNone, &corviderr.IllegalInput{Input: s}
	case 1:
		return found, nil
	default:
		return types.MoveNone, &corviderr.IllegalInput{Input: s, Reason: fmt.Sprintf("ambiguous, %d matches", matches)}
	}
}

func findCastle(ml *movelist.MoveList, kind types.MoveKind, s string) (types.Move, error) {
	for i := 0; i < ml.Len(); i++ {
		if m := ml.At(i); m.Kind() == kind {
			return m, nil
		}
	}
	return types.MoveNone, &corviderr.IllegalInput{Input: s}
}

func stripSuffix(s string) string {
	for len(s) > 0 {
		last := s[len(s)-1]
		if last == '+' || last == '#' || last == '!' || last == '?' {
			s = s[:len(s)-1]
			continue
		}
		break
	}
	return s
}

// parseSAN splits a non-castling SAN move (without its check/mate suffix)
// into piece letter, file/rank disambiguator, destination square and
// promotion letter. Only the minimal grammar FromSAN needs: no support for
// SAN's optional capture "x" marker beyond skipping it, since capture-ness
// is implied by the destination square matching an enemy-occupied square
// in the legal move list already.
func parseSAN(s string) (pieceLetter, disambFile, disambRank, dest, promo string, err error) {
	if i := indexByte(s, '='); i >= 0 {
		if i+1 >= len(s) {
			return "", "", "", "", "", &corviderr.ParseError{Kind: corviderr.ErrNotation, Msg: fmt.Sprintf("%q has malformed promotion", s)}
		}
		promo = string(s[i+1])
		s = s[:i]
	}

	if len(s) > 0 && isPieceLetter(s[0]) {
		pieceLetter = string(s[0])
		s = s[1:]
	}

	if i := indexByte(s, 'x'); i >= 0 {
		s = s[:i] + s[i+1:]
	}

	if len(s) < 2 {
		return "", "", "", "", "", &corviderr.ParseError{Kind: corviderr.ErrNotation, Msg: fmt.Sprintf("%q is too short", s)}
	}
	dest = s[len(s)-2:]
	disamb := s[:len(s)-2]
	for _, c := range disamb {
		switch {
		case c >= 'a' && c <= 'h':
			disambFile = string(c)
		case c >= '1' && c <= '8':
			disambRank = string(c)
		default:
			return "", "", "", "", "", &corviderr.ParseError{Kind: corviderr.ErrNotation, Msg: fmt.Sprintf("%q has invalid disambiguator", s)}
		}
	}
	return pieceLetter, disambFile, disambRank, dest, promo, nil
}

func isPieceLetter(c byte) bool {
	switch c {
	case 'N', 'B', 'R', 'Q', 'K':
		return true
	default:
		return false
	}
}

func indexByte(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}
