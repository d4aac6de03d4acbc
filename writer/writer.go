// Copyright © 2025 Texelcon contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: writer/writer.go
// Summary: io.Writer that interprets escape sequences against the adapter.
// Usage: Wrap stdout with NewWriter; legacy consoles get interpretation,
//        everything else passes through untouched.
// Notes: Printable text is batched between sequences so each styled run
//        costs one attribute bracket, not one per rune.

// Package writer makes ANSI-producing output work on legacy consoles by
// interpreting escape sequences into adapter calls.
package writer

import (
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/framegrace/texelcon/console"
	"github.com/framegrace/texelcon/parser"
)

// NewWriter wraps w with escape sequence handling where needed. Output that
// is not a terminal, or a terminal with native VT support, passes through
// unchanged; only a true legacy console gets the interpreting writer.
func NewWriter(w io.Writer) io.Writer {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return w
	}
	return newPlatformWriter(f)
}

// Writer drives a legacy console adapter from an ANSI escape stream.
type Writer struct {
	term    *console.Term
	parser  *parser.Parser
	pending strings.Builder
	style   console.Style
	saved   console.Coord
	hasSave bool
	err     error
}

// NewLegacyWriter builds an interpreting writer over an existing adapter.
func NewLegacyWriter(t *console.Term) *Writer {
	w := &Writer{term: t}
	w.parser = parser.New(w)
	return w
}

// Write decodes p and issues the corresponding console operations. The
// first operation failure is sticky and returned for this and every later
// write.
func (w *Writer) Write(p []byte) (int, error) {
	w.parser.Parse(p)
	w.flush()
	if w.err != nil {
		return 0, w.err
	}
	return len(p), nil
}

func (w *Writer) setErr(err error) {
	if err != nil && w.err == nil {
		w.err = err
	}
}

// flush writes any batched printable text under the current style.
func (w *Writer) flush() {
	if w.pending.Len() == 0 {
		return
	}
	text := w.pending.String()
	w.pending.Reset()
	if w.style.IsZero() {
		w.setErr(w.term.WriteText(text))
		return
	}
	w.setErr(w.term.WriteStyled(text, w.style))
}

// Print implements parser.Handler.
func (w *Writer) Print(r rune) {
	w.pending.WriteRune(r)
}

// Execute implements parser.Handler. The console host interprets these
// controls natively in processed-output mode, so they are forwarded as
// text.
func (w *Writer) Execute(b byte) {
	switch b {
	case '\n', '\r', '\t', '\b', 0x07:
		w.flush()
		w.setErr(w.term.WriteText(string(rune(b))))
	default:
		// Other C0 controls have no legacy equivalent.
	}
}

// CSI implements parser.Handler.
func (w *Writer) CSI(command byte, params []int, private bool) {
	w.flush()
	if private {
		w.privateCSI(command, params)
		return
	}

	param := func(i, def int) int {
		if i < len(params) && params[i] != 0 {
			return params[i]
		}
		return def
	}

	switch command {
	case 'A':
		w.repeat(param(0, 1), w.term.MoveCursorUp)
	case 'B':
		w.repeat(param(0, 1), w.term.MoveCursorDown)
	case 'C':
		w.repeat(param(0, 1), w.term.MoveCursorForward)
	case 'D':
		w.repeat(param(0, 1), w.term.MoveCursorBackward)
	case 'E':
		w.repeat(param(0, 1), w.term.MoveCursorDown)
		w.setErr(w.term.MoveCursorToColumn(0))
	case 'F':
		w.repeat(param(0, 1), w.term.MoveCursorUp)
		w.setErr(w.term.MoveCursorToColumn(0))
	case 'G':
		w.setErr(w.term.MoveCursorToColumn(param(0, 1) - 1))
	case 'H', 'f':
		w.setErr(w.term.MoveCursorTo(console.Coord{Row: param(0, 1) - 1, Col: param(1, 1) - 1}))
	case 'd':
		w.moveToRow(param(0, 1) - 1)
	case 'J':
		if param(0, 0) == 2 {
			w.setErr(w.term.EraseScreen())
		} else {
			log.Printf("writer: ignoring erase in display mode %d", param(0, 0))
		}
	case 'K':
		switch param(0, 0) {
		case 0:
			w.setErr(w.term.EraseEndOfLine())
		case 1:
			w.setErr(w.term.EraseStartOfLine())
		case 2:
			w.setErr(w.term.EraseLine())
		}
	case 'm':
		w.style = applySGR(w.style, params)
	case 's':
		pos, err := w.term.CursorPosition()
		if err != nil {
			w.setErr(err)
			return
		}
		w.saved, w.hasSave = pos, true
	case 'u':
		if w.hasSave {
			w.setErr(w.term.MoveCursorTo(w.saved))
		}
	default:
		log.Printf("writer: ignoring CSI %c", command)
	}
}

func (w *Writer) privateCSI(command byte, params []int) {
	if len(params) == 0 || params[0] != 25 {
		return
	}
	switch command {
	case 'h':
		w.setErr(w.term.ShowCursor())
	case 'l':
		w.setErr(w.term.HideCursor())
	}
}

// OSC implements parser.Handler.
func (w *Writer) OSC(command, payload string) {
	if command != "0" && command != "2" {
		return
	}
	w.flush()
	w.setErr(w.term.SetTitle(payload))
}

// repeat issues a single-step move n times so that wrap semantics at line
// boundaries hold for counted moves.
func (w *Writer) repeat(n int, move func() error) {
	for i := 0; i < n; i++ {
		if err := move(); err != nil {
			w.setErr(err)
			return
		}
	}
}

func (w *Writer) moveToRow(row int) {
	pos, err := w.term.CursorPosition()
	if err != nil {
		w.setErr(err)
		return
	}
	w.setErr(w.term.MoveCursorTo(console.Coord{Row: row, Col: pos.Col}))
}
