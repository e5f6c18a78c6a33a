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

// Package position holds the board representation: piece bitboards, a
// mailbox, rights/clocks, an incrementally maintained Zobrist hash, and the
// undo history that make/unmake operate on. Move generation lives in
// package movegen; this package only owns the data and the apply/revert
// primitives spec.md §4.F describes as "Make / Unmake".
package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/corvidchess/corvid/attacks"
	"github.com/corvidchess/corvid/bitboard"
	"github.com/corvidchess/corvid/corviderr"
	"github.com/corvidchess/corvid/types"
)

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// historyCapacity bounds the undo stack. 1024 plies (512 full moves) covers
// any legal game under standard rules per spec.md §5's resource policy.
const historyCapacity = 1024

// GameState classifies the position once legal moves have been generated.
type GameState int

const (
	InProgress GameState = iota
	WhiteWin
	BlackWin
	Draw
)

func (s GameState) String() string {
	switch s {
	case InProgress:
		return "InProgress"
	case WhiteWin:
		return "WhiteWin"
	case BlackWin:
		return "BlackWin"
	case Draw:
		return "Draw"
	default:
		return "Unknown"
	}
}

// undoState is the immutable snapshot pushed onto history before each
// DoMove, sufficient to invert both the board delta and the incidental
// state (rights, en-passant, clocks, hash) on UndoMove.
type undoState struct {
	move           types.Move
	captured       types.Piece
	castling       types.CastlingRights
	epSquare       types.Square
	halfmoveClock  int
	fullmoveNumber int
	zobrist        Key
}

// Position is the exclusive owner of the piece bitboards, mailbox, history
// stack and Zobrist hash described in spec.md §3. The Checkers/NumCheckers/
// Pinned/PinRays/GameState scratch fields are populated by package movegen
// at the start of each legal-move-generation call; Position itself never
// writes them.
type Position struct {
	pieces [types.PieceLength]bitboard.Board
	colors [2]bitboard.Board
	mailbox [64]types.Piece

	sideToMove     types.Color
	castling       types.CastlingRights
	epSquare       types.Square
	halfmoveClock  int
	fullmoveNumber int
	zobrist        Key

	hashHistory [100]Key
	history     []undoState

	// Search-scratch fields, refreshed by movegen.RefreshCheckInfo.
	Checkers    bitboard.Board
	NumCheckers int
	Pinned      bitboard.Board
	PinRays     [64]bitboard.Board
	GameState   GameState
}

// NewPosition returns the standard chess starting position.
func NewPosition() *Position {
	p, err := NewPositionFen(StartFen)
	if err != nil {
		panic(&corviderr.InternalInvariantViolation{Msg: fmt.Sprintf("start FEN failed to parse: %v", err)})
	}
	return p
}

// NewPositionFen parses fen into a Position. Missing trailing fields default
// to "- - 0 1" per spec.md §4.E.
func NewPositionFen(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 1 {
		return nil, &corviderr.ParseError{Kind: corviderr.ErrFormat, Msg: "empty FEN"}
	}
	for len(fields) < 6 {
		defaults := []string{"w", "-", "-", "0", "1"}
		fields = append(fields, defaults[len(fields)-1])
	}

	p := &Position{
		epSquare: types.SqNone,
		history:  make([]undoState, 0, historyCapacity),
	}
	for i := range p.mailbox {
		p.mailbox[i] = types.PieceNone
	}

	if err := p.parsePiecePlacement(fields[0]); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "w":
		p.sideToMove = types.White
	case "b":
		p.sideToMove = types.Black
	default:
		return nil, &corviderr.ParseError{Kind: corviderr.ErrColor, Msg: "active color must be 'w' or 'b', got " + fields[1]}
	}

	cr, err := parseCastling(fields[2])
	if err != nil {
		return nil, err
	}
	p.castling = cr

	if fields[3] != "-" {
		sq := types.MakeSquare(fields[3])
		if !sq.IsValid() {
			return nil, &corviderr.ParseError{Kind: corviderr.ErrEnPassant, Msg: "invalid en-passant target " + fields[3]}
		}
		p.epSquare = sq
	}

	hm, err := strconv.Atoi(fields[4])
	if err != nil || hm < 0 {
		return nil, &corviderr.ParseError{Kind: corviderr.ErrHalfmove, Msg: "invalid halfmove clock " + fields[4]}
	}
	p.halfmoveClock = hm

	fm, err := strconv.Atoi(fields[5])
	if err != nil || fm < 1 {
		return nil, &corviderr.ParseError{Kind: corviderr.ErrFullmove, Msg: "invalid fullmove number " + fields[5]}
	}
	p.fullmoveNumber = fm

	p.recomputeZobrist()
	return p, nil
}

func (p *Position) parsePiecePlacement(field string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return &corviderr.ParseError{Kind: corviderr.ErrPiecePlacement, Msg: "expected 8 ranks separated by '/', got " + strconv.Itoa(len(ranks))}
	}
	for i, rankStr := range ranks {
		rank := types.Rank(7 - i)
		file := types.FileA
		for _, c := range rankStr {
			if c >= '1' && c <= '8' {
				file += types.File(c - '0')
				continue
			}
			pc := types.PieceFromChar(string(c))
			if pc == types.PieceNone {
				return &corviderr.ParseError{Kind: corviderr.ErrPiecePlacement, Msg: "unrecognized piece letter " + string(c)}
			}
			if !file.IsValid() {
				return &corviderr.ParseError{Kind: corviderr.ErrPiecePlacement, Msg: "rank " + strconv.Itoa(8-i) + " overflows 8 files"}
			}
			p.putPieceRaw(pc, types.SquareOf(file, rank))
			file++
		}
		if file != types.FileNone {
			return &corviderr.ParseError{Kind: corviderr.ErrPiecePlacement, Msg: "rank " + strconv.Itoa(8-i) + " does not sum to 8 files"}
		}
	}
	return nil
}

func parseCastling(field string) (types.CastlingRights, error) {
	if field == "-" {
		return types.CastlingNone, nil
	}
	var cr types.CastlingRights
	for _, c := range field {
		switch c {
		case 'K':
			cr |= types.CastlingWhiteOO
		case 'Q':
			cr |= types.CastlingWhiteOOO
		case 'k':
			cr |= types.CastlingBlackOO
		case 'q':
			cr |= types.CastlingBlackOOO
		default:
			return 0, &corviderr.ParseError{Kind: corviderr.ErrCastling, Msg: "invalid castling character " + string(c)}
		}
	}
	return cr, nil
}

// recomputeZobrist rebuilds the hash from scratch per spec.md §4.E invariant
// 3 (the XOR-fold of piece-square, castling, en-passant and side-to-move
// keys). Used only at construction and by tests that cross-check the
// incrementally maintained hash.
func (p *Position) recomputeZobrist() {
	var z Key
	for sq := 0; sq < 64; sq++ {
		if pc := p.mailbox[sq]; pc != types.PieceNone {
			z ^= zobrist.pieces[pc][sq]
		}
	}
	z ^= zobrist.castling[p.castling]
	if p.epSquare.IsValid() {
		z ^= zobrist.epFile[p.epSquare.FileOf()]
	}
	if p.sideToMove == types.Black {
		z ^= zobrist.sideToMove
	}
	p.zobrist = z
}

// Fen serializes the position back to the standard six-field FEN string.
func (p *Position) Fen() string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		empty := 0
		for f := 0; f < 8; f++ {
			sq := types.SquareOf(types.File(f), types.Rank(r))
			pc := p.mailbox[sq]
			if pc == types.PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(p.sideToMove.String())
	sb.WriteByte(' ')
	sb.WriteString(p.castling.String())
	sb.WriteByte(' ')
	if p.epSquare.IsValid() {
		sb.WriteString(p.epSquare.String())
	} else {
		sb.WriteByte('-')
	}
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.fullmoveNumber))
	return sb.String()
}

// --- raw board mutators: pieces/colors/mailbox only, no hash maintenance ---

func (p *Position) putPieceRaw(pc types.Piece, sq types.Square) {
	p.pieces[pc] = p.pieces[pc].Set(int(sq))
	p.colors[pc.ColorOf()] = p.colors[pc.ColorOf()].Set(int(sq))
	p.mailbox[sq] = pc
}

func (p *Position) removePieceRaw(sq types.Square) types.Piece {
	pc := p.mailbox[sq]
	p.pieces[pc] = p.pieces[pc].Clear(int(sq))
	p.colors[pc.ColorOf()] = p.colors[pc.ColorOf()].Clear(int(sq))
	p.mailbox[sq] = types.PieceNone
	return pc
}

func (p *Position) movePieceRaw(from, to types.Square) {
	p.putPieceRaw(p.removePieceRaw(from), to)
}

// --- hash-maintaining mutators, used only from DoMove ---

func (p *Position) putPiece(pc types.Piece, sq types.Square) {
	p.putPieceRaw(pc, sq)
	p.zobrist ^= zobrist.pieces[pc][sq]
}

func (p *Position) removePiece(sq types.Square) types.Piece {
	pc := p.mailbox[sq]
	p.zobrist ^= zobrist.pieces[pc][sq]
	p.removePieceRaw(sq)
	return pc
}

func (p *Position) movePiece(from, to types.Square) {
	p.putPiece(p.removePiece(from), to)
}

func (p *Position) setCastling(cr types.CastlingRights) {
	if cr == p.castling {
		return
	}
	p.zobrist ^= zobrist.castling[p.castling]
	p.castling = cr
	p.zobrist ^= zobrist.castling[p.castling]
}

// castleRookSquares returns the rook's home and crossed-to squares for a
// castle of the given color and side.
func castleRookSquares(c types.Color, kingside bool) (from, to types.Square) {
	if c == types.White {
		if kingside {
			return types.SqH1, types.SqF1
		}
		return types.SqA1, types.SqD1
	}
	if kingside {
		return types.SqH8, types.SqF8
	}
	return types.SqA8, types.SqD8
}

func rookHome(c types.Color, kingside bool) types.Square {
	from, _ := castleRookSquares(c, kingside)
	return from
}

// DoMove applies m, snapshotting the pre-move state onto the history stack
// and maintaining every derived field incrementally per spec.md §4.F.
func (p *Position) DoMove(m types.Move) {
	if len(p.history) >= historyCapacity {
		panic(&corviderr.ResourceLimit{
			Msg:   "history stack overflow, game exceeds the configured ply capacity",
			Fatal: true,
		})
	}

	from, to := m.From(), m.To()
	us := p.sideToMove
	them := us.Flip()
	moving := p.mailbox[from]

	p.history = append(p.history, undoState{
		move: m, castling: p.castling, epSquare: p.epSquare,
		halfmoveClock: p.halfmoveClock, fullmoveNumber: p.fullmoveNumber,
		zobrist: p.zobrist,
	})
	p.hashHistory[p.halfmoveClock%100] = p.zobrist

	if p.epSquare.IsValid() {
		p.zobrist ^= zobrist.epFile[p.epSquare.FileOf()]
		p.epSquare = types.SqNone
	}

	captured := types.PieceNone
	switch m.Kind() {
	case types.Normal, types.DoublePush:
		p.movePiece(from, to)
	case types.Capture:
		captured = p.removePiece(to)
		p.movePiece(from, to)
	case types.KingCastle:
		p.movePiece(from, to)
		rf, rt := castleRookSquares(us, true)
		p.movePiece(rf, rt)
	case types.QueenCastle:
		p.movePiece(from, to)
		rf, rt := castleRookSquares(us, false)
		p.movePiece(rf, rt)
	case types.EnPassant:
		p.movePiece(from, to)
		capSq := types.SquareOf(to.FileOf(), from.RankOf())
		captured = p.removePiece(capSq)
	default: // one of the eight promotion kinds
		if m.IsCapture() {
			captured = p.removePiece(to)
		}
		p.removePiece(from)
		p.putPiece(types.MakePiece(us, m.PromotionType()), to)
	}
	p.history[len(p.history)-1].captured = captured

	if m.Kind() == types.DoublePush {
		p.epSquare = from.To(us.PawnPushDirection())
		p.zobrist ^= zobrist.epFile[p.epSquare.FileOf()]
	}

	if moving.TypeOf() == types.King {
		p.setCastling(p.castling &^ types.AllFor(us))
	} else if moving.TypeOf() == types.Rook {
		if from == rookHome(us, true) {
			p.setCastling(p.castling &^ types.KingsideFor(us))
		} else if from == rookHome(us, false) {
			p.setCastling(p.castling &^ types.QueensideFor(us))
		}
	}
	if to == rookHome(them, true) {
		p.setCastling(p.castling &^ types.KingsideFor(them))
	} else if to == rookHome(them, false) {
		p.setCastling(p.castling &^ types.QueensideFor(them))
	}

	if moving.TypeOf() == types.Pawn || m.IsCapture() {
		p.halfmoveClock = 0
	} else {
		p.halfmoveClock++
	}

	p.zobrist ^= zobrist.sideToMove
	p.sideToMove = them
	if us == types.Black {
		p.fullmoveNumber++
	}
}

// UndoMove reverts the most recent DoMove, restoring the Position to
// exactly the state it had before that move, bitwise on the hash.
func (p *Position) UndoMove() {
	n := len(p.history) - 1
	h := p.history[n]
	p.history = p.history[:n]

	them := p.sideToMove
	us := them.Flip()
	p.sideToMove = us
	p.castling = h.castling
	p.epSquare = h.epSquare
	p.halfmoveClock = h.halfmoveClock
	p.fullmoveNumber = h.fullmoveNumber
	p.zobrist = h.zobrist

	m := h.move
	from, to := m.From(), m.To()
	switch m.Kind() {
	case types.Normal, types.DoublePush:
		p.movePieceRaw(to, from)
	case types.Capture:
		p.movePieceRaw(to, from)
		p.putPieceRaw(h.captured, to)
	case types.KingCastle:
		p.movePieceRaw(to, from)
		rf, rt := castleRookSquares(us, true)
		p.movePieceRaw(rt, rf)
	case types.QueenCastle:
		p.movePieceRaw(to, from)
		rf, rt := castleRookSquares(us, false)
		p.movePieceRaw(rt, rf)
	case types.EnPassant:
		p.movePieceRaw(to, from)
		capSq := types.SquareOf(to.FileOf(), from.RankOf())
		p.putPieceRaw(h.captured, capSq)
	default: // promotion
		p.removePieceRaw(to)
		if m.IsCapture() {
			p.putPieceRaw(h.captured, to)
		}
		p.putPieceRaw(types.MakePiece(us, types.Pawn), from)
	}
}

// AttacksTo returns every piece of either color attacking sq given a custom
// occupancy (callers pass an occupancy with the king removed to emulate
// x-ray attacks through the king's own square, per spec.md §4.G).
func (p *Position) AttacksTo(sq types.Square, occ bitboard.Board) bitboard.Board {
	var attackers bitboard.Board
	attackers |= attacks.PawnCaptures[types.Black][sq] & p.pieces[types.WhitePawn]
	attackers |= attacks.PawnCaptures[types.White][sq] & p.pieces[types.BlackPawn]
	attackers |= attacks.KnightAttacks[sq] & (p.pieces[types.WhiteKnight] | p.pieces[types.BlackKnight])
	attackers |= attacks.KingAttacks[sq] & (p.pieces[types.WhiteKing] | p.pieces[types.BlackKing])
	bishopsQueens := p.pieces[types.WhiteBishop] | p.pieces[types.BlackBishop] | p.pieces[types.WhiteQueen] | p.pieces[types.BlackQueen]
	rooksQueens := p.pieces[types.WhiteRook] | p.pieces[types.BlackRook] | p.pieces[types.WhiteQueen] | p.pieces[types.BlackQueen]
	attackers |= attacks.BishopAt(sq, occ) & bishopsQueens
	attackers |= attacks.RookAt(sq, occ) & rooksQueens
	return attackers
}

// IsAttackedBy reports whether sq is attacked by a piece of color by, given
// occupancy occ.
func (p *Position) IsAttackedBy(sq types.Square, by types.Color, occ bitboard.Board) bool {
	return p.AttacksTo(sq, occ)&p.colors[by] != 0
}

// RepetitionCount counts occurrences of the current hash within the
// current 50-move window's hash history ring (indices 0..halfmoveClock),
// per spec.md §9's "ring indexed by halfmove clock mod 100" design.
func (p *Position) RepetitionCount() int {
	n := 0
	limit := p.halfmoveClock
	if limit > 99 {
		limit = 99
	}
	for i := 0; i <= limit; i++ {
		if p.hashHistory[i] == p.zobrist {
			n++
		}
	}
	return n
}

// --- accessors ---

func (p *Position) SideToMove() types.Color          { return p.sideToMove }
func (p *Position) Castling() types.CastlingRights   { return p.castling }
func (p *Position) EnPassant() types.Square          { return p.epSquare }
func (p *Position) HalfmoveClock() int               { return p.halfmoveClock }
func (p *Position) FullmoveNumber() int              { return p.fullmoveNumber }
func (p *Position) Zobrist() Key                     { return p.zobrist }
func (p *Position) PieceAt(sq types.Square) types.Piece { return p.mailbox[sq] }
func (p *Position) Pieces(pc types.Piece) bitboard.Board { return p.pieces[pc] }
func (p *Position) PiecesOf(c types.Color, pt types.PieceType) bitboard.Board {
	return p.pieces[types.MakePiece(c, pt)]
}
func (p *Position) Occupied(c types.Color) bitboard.Board { return p.colors[c] }
func (p *Position) OccupiedAll() bitboard.Board           { return p.colors[types.White] | p.colors[types.Black] }
func (p *Position) KingSquare(c types.Color) types.Square {
	return types.Square(p.pieces[types.MakePiece(c, types.King)].Lsb())
}
func (p *Position) Ply() int { return len(p.history) }

// LastMove returns the most recently applied move, or MoveNone if none.
func (p *Position) LastMove() types.Move {
	if len(p.history) == 0 {
		return types.MoveNone
	}
	return p.history[len(p.history)-1].move
}
