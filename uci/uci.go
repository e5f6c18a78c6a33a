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

// Package uci drives the engine from the UCI protocol's text commands, per
// spec.md §4's driver surface: "uci", "isready", "ucinewgame", "position",
// "go", "stop" and "quit". Trimmed from the teacher's handler to the verbs
// this engine actually answers - no pondering, no opening book options, no
// perft/testsuite/nps debug commands, since those live outside spec.md.
package uci

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/corvidchess/corvid/evaluator"
	"github.com/corvidchess/corvid/logging"
	"github.com/corvidchess/corvid/notation"
	"github.com/corvidchess/corvid/position"
	"github.com/corvidchess/corvid/search"
)

const engineName = "Corvid"
const engineAuthor = "Corvid contributors"

var out = message.NewPrinter(language.German)
var log = logging.GetLog("uci")

// Handler reads UCI commands from InIo and writes responses to OutIo,
// driving one search.Search and the position it currently owns. Not safe
// for concurrent use: the UCI protocol itself is a single command stream.
type Handler struct {
	InIo  *bufio.Scanner
	OutIo *bufio.Writer

	pos    *position.Position
	search *search.Search

	searching bool
	cancel    context.CancelFunc
	done      chan struct{}
}

// NewHandler builds a Handler reading stdin and writing stdout, with a
// fresh starting position and search.
func NewHandler() *Handler {
	p, _ := position.NewPositionFen(position.StartFen)
	return &Handler{
		InIo:   bufio.NewScanner(os.Stdin),
		OutIo:  bufio.NewWriter(os.Stdout),
		pos:    p,
		search: search.NewSearch(evaluator.NewEvaluator()),
	}
}

// Loop reads and dispatches commands until "quit" or end of input.
func (h *Handler) Loop() {
	for h.InIo.Scan() {
		if h.handle(h.InIo.Text()) {
			return
		}
	}
}

// Command runs a single command line and returns everything it wrote to
// OutIo, for tests and scripted drivers.
func (h *Handler) Command(cmd string) string {
	saved := h.OutIo
	buf := new(bytes.Buffer)
	h.OutIo = bufio.NewWriter(buf)
	h.handle(cmd)
	_ = h.OutIo.Flush()
	h.OutIo = saved
	return buf.String()
}

var whitespace = regexp.MustCompile(`\s+`)

func (h *Handler) handle(cmd string) (quit bool) {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return false
	}
	tokens := whitespace.Split(cmd, -1)
	switch tokens[0] {
	case "quit":
		h.stop()
		return true
	case "uci":
		h.uci()
	case "setoption":
		h.setOption(tokens)
	case "isready":
		h.send("readyok")
	case "ucinewgame":
		h.newGame()
	case "position":
		h.position(tokens)
	case "go":
		h.goSearch(tokens)
	case "stop":
		h.stop()
	default:
		log.Warningf("unknown command: %s", cmd)
	}
	return false
}

func (h *Handler) uci() {
	h.send(out.Sprintf("id name %s", engineName))
	h.send(out.Sprintf("id author %s", engineAuthor))
	for _, s := range optionStrings() {
		h.send(s)
	}
	h.send("uciok")
}

func (h *Handler) setOption(tokens []string) {
	if len(tokens) < 3 || tokens[1] != "name" {
		h.sendInfoString("setoption malformed")
		return
	}
	i := 2
	var name strings.Builder
	for i < len(tokens) && tokens[i] != "value" {
		if name.Len() > 0 {
			name.WriteByte(' ')
		}
		name.WriteString(tokens[i])
		i++
	}
	value := ""
	if i < len(tokens)-1 && tokens[i] == "value" {
		value = strings.Join(tokens[i+1:], " ")
	}
	applyOption(h, name.String(), value)
}

func (h *Handler) newGame() {
	h.stop()
	p, _ := position.NewPositionFen(position.StartFen)
	h.pos = p
	h.search.NewGame()
}

func (h *Handler) position(tokens []string) {
	if len(tokens) < 2 {
		h.sendInfoString("position malformed")
		return
	}
	fen := position.StartFen
	i := 1
	switch tokens[i] {
	case "startpos":
		i++
	case "fen":
		i++
		var fenb strings.Builder
		for i < len(tokens) && tokens[i] != "moves" {
			if fenb.Len() > 0 {
				fenb.WriteByte(' ')
			}
			fenb.WriteString(tokens[i])
			i++
		}
		fen = fenb.String()
	default:
		h.sendInfoString("position malformed: expected startpos or fen")
		return
	}

	p, err := position.NewPositionFen(fen)
	if err != nil {
		h.sendInfoString(out.Sprintf("position malformed fen %q: %v", fen, err))
		return
	}
	h.pos = p

	if i < len(tokens) && tokens[i] == "moves" {
		i++
		for ; i < len(tokens); i++ {
			if !h.applyUciMove(tokens[i]) {
				h.sendInfoString(out.Sprintf("position malformed: illegal move %s", tokens[i]))
				return
			}
		}
	}
}

// applyUciMove looks up token among the position's legal moves via the
// notation package and plays it if found.
func (h *Handler) applyUciMove(token string) bool {
	m, err := notation.FromLAN(h.pos, token)
	if err != nil {
		return false
	}
	h.pos.DoMove(m)
	return true
}

func (h *Handler) goSearch(tokens []string) {
	h.stop()

	limits := search.Limits{}
	i := 1
	for i < len(tokens) {
		switch tokens[i] {
		case "depth":
			i++
			if i < len(tokens) {
				limits.Depth, _ = strconv.Atoi(tokens[i])
				i++
			}
		case "nodes":
			i++
			if i < len(tokens) {
				n, _ := strconv.ParseUint(tokens[i], 10, 64)
				limits.Nodes = n
				i++
			}
		case "movetime":
			i++
			if i < len(tokens) {
				ms, _ := strconv.ParseInt(tokens[i], 10, 64)
				limits.MoveTime = time.Duration(ms) * time.Millisecond
				i++
			}
		case "infinite", "ponder":
			// accepted but not interpreted: spec.md's Non-goals exclude
			// pondering and open-ended clock-based search.
			i++
		case "wtime", "btime", "winc", "binc", "movestogo", "mate":
			// single-value clock fields, accepted but not interpreted:
			// spec.md's Non-goals exclude time-management heuristics
			// beyond a wall-clock deadline.
			i += 2
		default:
			i++
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	h.cancel = cancel
	h.searching = true
	done := make(chan struct{})
	h.done = done

	go func() {
		defer close(done)
		result := h.search.Search(ctx, h.pos, limits, func(pi search.ProgressInfo) {
			h.send(pi.String())
		})
		h.send(result.String())
	}()
}

func (h *Handler) stop() {
	if !h.searching {
		return
	}
	h.cancel()
	<-h.done
	h.searching = false
}

func (h *Handler) sendInfoString(s string) {
	log.Warning(s)
	h.send(out.Sprintf("info string %s", s))
}

func (h *Handler) send(s string) {
	_, _ = h.OutIo.WriteString(s + "\n")
	_ = h.OutIo.Flush()
}
