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

// Package corviderr holds the five error kinds spec.md §7 names, as
// concrete Go types instead of the teacher's generic errors.New/panic(string)
// calls: ParseError, IllegalInput and ResourceLimit are ordinary errors a
// caller can inspect and retry against; InternalInvariantViolation is
// panicked, never returned; Cancelled is a sentinel that search logs when a
// run ends on a cancelled context, never surfaced to a UCI caller as a
// failure.
package corviderr

import (
	"errors"
	"fmt"
)

// ParseErrorKind categorizes which field of a parsed FEN/LAN/SAN string
// failed, so a caller can report the offending field kind rather than a
// bare message.
type ParseErrorKind int

const (
	ErrFormat ParseErrorKind = iota
	ErrPiecePlacement
	ErrColor
	ErrCastling
	ErrEnPassant
	ErrHalfmove
	ErrFullmove
	ErrNotation
)

func (k ParseErrorKind) String() string {
	switch k {
	case ErrFormat:
		return "format"
	case ErrPiecePlacement:
		return "piece"
	case ErrColor:
		return "color"
	case ErrCastling:
		return "castling"
	case ErrEnPassant:
		return "en-passant"
	case ErrHalfmove:
		return "halfmove"
	case ErrFullmove:
		return "fullmove"
	case ErrNotation:
		return "notation"
	default:
		return "unknown"
	}
}

// ParseError reports a malformed FEN/LAN/SAN field. It never panics; the
// caller owns retry/report policy.
type ParseError struct {
	Kind ParseErrorKind
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error (%s): %s", e.Kind, e.Msg)
}

// IllegalInput reports a syntactically well-formed move that is not legal
// in the position it was checked against, or that matches more than one
// legal move (Reason distinguishes the two; empty means "not legal"). The
// board is never mutated before this is returned.
type IllegalInput struct {
	Input  string
	Reason string
}

func (e *IllegalInput) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("illegal move %q: %s", e.Input, e.Reason)
	}
	return fmt.Sprintf("illegal move %q", e.Input)
}

// InternalInvariantViolation marks a condition that must never occur if
// the rest of the engine is correct: a make/unmake mismatch, a
// transposition table hash collision with inconsistent state, a magic
// search that failed to find a working multiplier, or a value outside a
// type's documented domain reaching code that assumes it is valid. Always
// panicked, never returned - fatal by design.
type InternalInvariantViolation struct {
	Msg string
}

func (e *InternalInvariantViolation) Error() string {
	return "internal invariant violation: " + e.Msg
}

// ResourceLimit reports a configured resource budget that was exceeded or
// could not be honored. Fatal is true for conditions that must abort (a
// history stack overflow); false for conditions the caller degrades
// gracefully from (a transposition table too small to hold one entry runs
// with the table disabled instead of failing).
type ResourceLimit struct {
	Msg   string
	Fatal bool
}

func (e *ResourceLimit) Error() string {
	return "resource limit: " + e.Msg
}

// Cancelled is the sentinel a search writes to its log when it returns
// with its context's Err() set. It is never returned to a UCI
// caller as a failure: cancellation surfaces as "the best move from the
// last completed iteration," a normal control-flow outcome.
var Cancelled = errors.New("search cancelled")
