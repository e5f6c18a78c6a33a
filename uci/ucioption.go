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

package uci

import (
	"strconv"
	"strings"

	"github.com/corvidchess/corvid/config"
)

// uciOption is one entry of the "option name ... type ..." lines sent in
// response to "uci", plus the handler "setoption" invokes when the UI
// changes it. Trimmed to the three knobs this engine actually exposes -
// hash size, hash on/off and clear hash - the teacher's opening-book
// options have no home since this engine does not integrate a book.
type uciOption struct {
	name         string
	kind         string
	defaultValue string
	min          string
	max          string
	handler      func(h *Handler, value string)
}

var options = []*uciOption{
	{
		name: "Hash", kind: "spin",
		defaultValue: "64", min: "1", max: "4096",
		handler: func(h *Handler, value string) {
			mb, err := strconv.Atoi(value)
			if err != nil {
				return
			}
			config.Settings.Search.TTSizeMB = mb
			h.search.ResizeHash(mb)
		},
	},
	{
		name: "Use_Hash", kind: "check",
		defaultValue: "true",
		handler: func(h *Handler, value string) {
			v, err := strconv.ParseBool(value)
			if err != nil {
				return
			}
			config.Settings.Search.UseTT = v
		},
	},
	{
		name: "Clear Hash", kind: "button",
		handler: func(h *Handler, value string) {
			h.search.ClearHash()
		},
	},
}

func optionStrings() []string {
	lines := make([]string, 0, len(options))
	for _, o := range options {
		lines = append(lines, o.String())
	}
	return lines
}

func (o *uciOption) String() string {
	var b strings.Builder
	b.WriteString("option name ")
	b.WriteString(o.name)
	b.WriteString(" type ")
	b.WriteString(o.kind)
	switch o.kind {
	case "check", "string":
		b.WriteString(" default ")
		b.WriteString(o.defaultValue)
	case "spin":
		b.WriteString(" default ")
		b.WriteString(o.defaultValue)
		b.WriteString(" min ")
		b.WriteString(o.min)
		b.WriteString(" max ")
		b.WriteString(o.max)
	}
	return b.String()
}

func applyOption(h *Handler, name, value string) {
	for _, o := range options {
		if o.name == name {
			o.handler(h, value)
			return
		}
	}
	h.sendInfoString("no such option: " + name)
}
