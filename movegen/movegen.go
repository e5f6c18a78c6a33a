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

// Package movegen generates fully legal moves for a position. It refreshes
// the position's checker/pin scratch fields with a superpiece-from-king
// query (§4.G), then filters pseudo-legal candidates against the pin rays
// and the check-evasion mask instead of the slower make/test-check/unmake
// approach, except for en passant whose horizontal-pin edge case is still
// verified by playing the move and testing the resulting check state.
package movegen

import (
	"github.com/corvidchess/corvid/attacks"
	"github.com/corvidchess/corvid/bitboard"
	"github.com/corvidchess/corvid/movelist"
	"github.com/corvidchess/corvid/position"
	"github.com/corvidchess/corvid/types"
)

// RefreshCheckInfo recomputes Checkers, NumCheckers, Pinned and PinRays for
// the side to move, per spec.md §4.G. Must run before Generate relies on
// those fields; Generate calls it itself.
func RefreshCheckInfo(p *position.Position) {
	us := p.SideToMove()
	them := us.Flip()
	kingSq := p.KingSquare(us)
	occAll := p.OccupiedAll()
	ownOcc := p.Occupied(us)

	checkers := attacks.PawnCaptures[us][kingSq] & p.PiecesOf(them, types.Pawn)
	checkers |= attacks.KnightAttacks[kingSq] & p.PiecesOf(them, types.Knight)

	enemyBishops := p.PiecesOf(them, types.Bishop) | p.PiecesOf(them, types.Queen)
	enemyRooks := p.PiecesOf(them, types.Rook) | p.PiecesOf(them, types.Queen)

	checkers |= attacks.BishopAt(kingSq, occAll) & enemyBishops
	checkers |= attacks.RookAt(kingSq, occAll) & enemyRooks

	var pinned bitboard.Board
	var pinRays [64]bitboard.Board

	scanPins := func(xray, sliderBB bitboard.Board) {
		candidates := xray & sliderBB
		for candidates != 0 {
			sq := types.Square(candidates.PopLsb())
			between := bitboard.Between[kingSq][sq]
			blockers := between & occAll
			if blockers.Count() == 1 && blockers&ownOcc != 0 {
				blockerSq := types.Square(blockers.Lsb())
				pinned = pinned.Set(int(blockerSq))
				pinRays[blockerSq] = between.Set(int(sq))
			}
		}
	}
	scanPins(attacks.BishopAt(kingSq, occAll&^ownOcc), enemyBishops)
	scanPins(attacks.RookAt(kingSq, occAll&^ownOcc), enemyRooks)

	p.Checkers = checkers
	p.NumCheckers = checkers.Count()
	p.Pinned = pinned
	p.PinRays = pinRays
}

// Generate returns every legal move in p's current position, and as a side
// effect updates p.GameState (checkmate/stalemate/50-move draw/in-progress).
func Generate(p *position.Position) *movelist.MoveList {
	RefreshCheckInfo(p)
	ml := &movelist.MoveList{}

	us := p.SideToMove()
	them := us.Flip()
	occAll := p.OccupiedAll()
	ownOcc := p.Occupied(us)
	enemyOcc := p.Occupied(them)
	kingSq := p.KingSquare(us)

	evasionMask := bitboard.Universe
	if p.NumCheckers == 1 {
		checkerSq := types.Square(p.Checkers.Lsb())
		evasionMask = bitboard.Between[kingSq][checkerSq].Set(int(checkerSq))
	}

	if p.NumCheckers < 2 {
		generatePawnMoves(p, ml, us, them, occAll, enemyOcc, evasionMask)
		generateLeaperMoves(p, ml, us, types.Knight, &attacks.KnightAttacks, ownOcc, enemyOcc, evasionMask)
		generateSliderMoves(p, ml, us, types.Bishop, ownOcc, occAll, enemyOcc, evasionMask)
		generateSliderMoves(p, ml, us, types.Rook, ownOcc, occAll, enemyOcc, evasionMask)
		generateSliderMoves(p, ml, us, types.Queen, ownOcc, occAll, enemyOcc, evasionMask)
		generateCastles(p, ml, us, occAll)
	}
	generateKingMoves(p, ml, us, them, ownOcc, occAll)

	updateGameState(p, ml)
	return ml
}

func legalNonKingDestination(p *position.Position, from, to types.Square, evasionMask bitboard.Board) bool {
	if p.Pinned.Has(int(from)) && !p.PinRays[from].Has(int(to)) {
		return false
	}
	if p.NumCheckers == 1 && !evasionMask.Has(int(to)) {
		return false
	}
	return true
}

func addQuietOrCapture(ml *movelist.MoveList, from, to types.Square, enemyOcc bitboard.Board) {
	if enemyOcc.Has(int(to)) {
		ml.Add(types.NewMove(from, to, types.Capture))
	} else {
		ml.Add(types.NewMove(from, to, types.Normal))
	}
}

func addPromotions(ml *movelist.MoveList, from, to types.Square, capture bool) {
	for _, pt := range [4]types.PieceType{types.Queen, types.Rook, types.Bishop, types.Knight} {
		if capture {
			ml.Add(types.NewPromotionCapture(from, to, pt))
		} else {
			ml.Add(types.NewPromotion(from, to, pt))
		}
	}
}

func generatePawnMoves(p *position.Position, ml *movelist.MoveList, us, them types.Color, occAll, enemyOcc bitboard.Board, evasionMask bitboard.Board) {
	pawns := p.PiecesOf(us, types.Pawn)
	pushDir := us.PawnPushDirection()
	promoRank := us.PromotionRank()
	originRank := us.DoublePushOriginRank()
	targetRank := us.DoublePushTargetRank()

	for bb := pawns; bb != 0; {
		from := types.Square(bb.PopLsb())

		if to := from.To(pushDir); to.IsValid() && !occAll.Has(int(to)) {
			if legalNonKingDestination(p, from, to, evasionMask) {
				if to.RankOf() == promoRank {
					addPromotions(ml, from, to, false)
				} else {
					ml.Add(types.NewMove(from, to, types.Normal))
				}
			}
			if from.RankOf() == originRank {
				if to2 := to.To(pushDir); to2.IsValid() && to2.RankOf() == targetRank && !occAll.Has(int(to2)) {
					if legalNonKingDestination(p, from, to2, evasionMask) {
						ml.Add(types.NewMove(from, to2, types.DoublePush))
					}
				}
			}
		}

		captures := attacks.PawnCaptures[us][from] & enemyOcc
		for captures != 0 {
			to := types.Square(captures.PopLsb())
			if !legalNonKingDestination(p, from, to, evasionMask) {
				continue
			}
			if to.RankOf() == promoRank {
				addPromotions(ml, from, to, true)
			} else {
				ml.Add(types.NewMove(from, to, types.Capture))
			}
		}
	}

	if ep := p.EnPassant(); ep.IsValid() {
		origins := attacks.PawnCaptures[them][ep] & pawns
		for origins != 0 {
			from := types.Square(origins.PopLsb())
			m := types.NewMove(from, ep, types.EnPassant)
			if enPassantLegal(p, m) {
				ml.Add(m)
			}
		}
	}
}

// enPassantLegal plays m and tests whether the mover's own king ends up in
// check, catching the horizontal-pin edge case (two pawns abreast, a rook
// or queen on the rank behind) in one shot, per spec.md §4.G.
func enPassantLegal(p *position.Position, m types.Move) bool {
	mover := p.SideToMove()
	p.DoMove(m)
	kingSq := p.KingSquare(mover)
	legal := !p.IsAttackedBy(kingSq, p.SideToMove(), p.OccupiedAll())
	p.UndoMove()
	return legal
}

func generateLeaperMoves(p *position.Position, ml *movelist.MoveList, us types.Color, pt types.PieceType, table *[64]bitboard.Board, ownOcc, enemyOcc, evasionMask bitboard.Board) {
	bb := p.PiecesOf(us, pt)
	for bb != 0 {
		from := types.Square(bb.PopLsb())
		targets := table[from] &^ ownOcc
		for targets != 0 {
			to := types.Square(targets.PopLsb())
			if !legalNonKingDestination(p, from, to, evasionMask) {
				continue
			}
			addQuietOrCapture(ml, from, to, enemyOcc)
		}
	}
}

func generateSliderMoves(p *position.Position, ml *movelist.MoveList, us types.Color, pt types.PieceType, ownOcc, occAll, enemyOcc, evasionMask bitboard.Board) {
	bb := p.PiecesOf(us, pt)
	for bb != 0 {
		from := types.Square(bb.PopLsb())
		var targets bitboard.Board
		switch pt {
		case types.Bishop:
			targets = attacks.BishopAt(from, occAll)
		case types.Rook:
			targets = attacks.RookAt(from, occAll)
		default:
			targets = attacks.QueenAt(from, occAll)
		}
		targets &^= ownOcc
		for targets != 0 {
			to := types.Square(targets.PopLsb())
			if !legalNonKingDestination(p, from, to, evasionMask) {
				continue
			}
			addQuietOrCapture(ml, from, to, enemyOcc)
		}
	}
}

func generateKingMoves(p *position.Position, ml *movelist.MoveList, us, them types.Color, ownOcc, occAll bitboard.Board) {
	from := p.KingSquare(us)
	occWithoutKing := occAll.Clear(int(from))
	targets := attacks.KingAttacks[from] &^ ownOcc
	for targets != 0 {
		to := types.Square(targets.PopLsb())
		if p.IsAttackedBy(to, them, occWithoutKing) {
			continue
		}
		addQuietOrCapture(ml, from, to, p.Occupied(them))
	}
}

func generateCastles(p *position.Position, ml *movelist.MoveList, us types.Color, occAll bitboard.Board) {
	if p.NumCheckers != 0 {
		return
	}
	them := us.Flip()
	kingSq := p.KingSquare(us)

	if p.Castling().Has(types.KingsideFor(us)) {
		empty, path := kingsideSquares(us)
		if occAll&empty == 0 && allUnattacked(p, path, them, occAll) {
			ml.Add(types.NewMove(kingSq, kingsideTarget(us), types.KingCastle))
		}
	}
	if p.Castling().Has(types.QueensideFor(us)) {
		empty, path := queensideSquares(us)
		if occAll&empty == 0 && allUnattacked(p, path, them, occAll) {
			ml.Add(types.NewMove(kingSq, queensideTarget(us), types.QueenCastle))
		}
	}
}

// kingsideSquares returns the squares that must be empty and the squares
// (including origin and destination) the king must not be attacked on.
func kingsideSquares(c types.Color) (empty bitboard.Board, kingPath [3]types.Square) {
	if c == types.White {
		return bitboard.Squares[types.SqF1] | bitboard.Squares[types.SqG1],
			[3]types.Square{types.SqE1, types.SqF1, types.SqG1}
	}
	return bitboard.Squares[types.SqF8] | bitboard.Squares[types.SqG8],
		[3]types.Square{types.SqE8, types.SqF8, types.SqG8}
}

// queensideSquares: the b-file square must be empty but need not be
// unattacked, per spec.md §4.G.
func queensideSquares(c types.Color) (empty bitboard.Board, kingPath [3]types.Square) {
	if c == types.White {
		return bitboard.Squares[types.SqB1] | bitboard.Squares[types.SqC1] | bitboard.Squares[types.SqD1],
			[3]types.Square{types.SqE1, types.SqD1, types.SqC1}
	}
	return bitboard.Squares[types.SqB8] | bitboard.Squares[types.SqC8] | bitboard.Squares[types.SqD8],
		[3]types.Square{types.SqE8, types.SqD8, types.SqC8}
}

func kingsideTarget(c types.Color) types.Square {
	if c == types.White {
		return types.SqG1
	}
	return types.SqG8
}

func queensideTarget(c types.Color) types.Square {
	if c == types.White {
		return types.SqC1
	}
	return types.SqC8
}

func allUnattacked(p *position.Position, squares [3]types.Square, by types.Color, occ bitboard.Board) bool {
	for _, sq := range squares {
		if p.IsAttackedBy(sq, by, occ) {
			return false
		}
	}
	return true
}

func updateGameState(p *position.Position, ml *movelist.MoveList) {
	if ml.Len() == 0 {
		if p.NumCheckers > 0 {
			if p.SideToMove() == types.White {
				p.GameState = position.BlackWin
			} else {
				p.GameState = position.WhiteWin
			}
		} else {
			p.GameState = position.Draw
		}
		return
	}
	if p.HalfmoveClock() >= 100 {
		p.GameState = position.Draw
		return
	}
	p.GameState = position.InProgress
}
