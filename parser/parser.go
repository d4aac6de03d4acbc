// Copyright © 2025 Texelcon contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/parser.go
// Summary: Escape sequence state machine feeding a Handler.
// Usage: Consumed by the writer package to decode VT sequences.
// Notes: Keeps parsing concerns isolated from console dispatch. Unknown
//        or malformed sequences are consumed and dropped, never emitted.

// Package parser decodes a VT escape sequence byte stream into handler
// callbacks.
package parser

import (
	"strings"
	"unicode/utf8"
)

type state int

const (
	stateGround state = iota
	stateEscape
	stateCSI
	stateOSC
	stateOSCEsc
	stateCharset
)

// Handler receives decoded terminal actions.
type Handler interface {
	// Print handles a single printable rune.
	Print(r rune)
	// Execute handles a C0 control byte (BEL, BS, HT, LF, CR, ...).
	Execute(b byte)
	// CSI handles a complete control sequence. private is set for
	// sequences introduced with '?'.
	CSI(command byte, params []int, private bool)
	// OSC handles an operating system command, split at the first ';'.
	OSC(command, payload string)
}

// Parser decodes a byte stream into Handler calls. Input may be split at
// arbitrary byte boundaries across Parse calls, including mid-sequence
// and mid-rune.
type Parser struct {
	state        state
	handler      Handler
	params       []int
	currentParam int
	private      bool
	oscBuffer    []byte
	runeBuffer   []byte
}

// New creates a parser dispatching to the given handler.
func New(h Handler) *Parser {
	return &Parser{
		handler:   h,
		params:    make([]int, 0, 16),
		oscBuffer: make([]byte, 0, 128),
	}
}

// Parse consumes a chunk of the input stream.
func (p *Parser) Parse(data []byte) {
	for i := 0; i < len(data); i++ {
		b := data[i]

		switch p.state {
		case stateGround:
			switch {
			case len(p.runeBuffer) > 0:
				// Continuation of a rune split across Parse calls.
				if b&0xC0 != 0x80 {
					// Not a continuation byte: drop the broken prefix
					// and reprocess b from scratch.
					p.runeBuffer = p.runeBuffer[:0]
					i--
					continue
				}
				p.runeBuffer = append(p.runeBuffer, b)
				if utf8.FullRune(p.runeBuffer) || len(p.runeBuffer) >= utf8.UTFMax {
					r, _ := utf8.DecodeRune(p.runeBuffer)
					p.handler.Print(r)
					p.runeBuffer = p.runeBuffer[:0]
				}
			case b == 0x1b:
				p.state = stateEscape
			case b < ' ':
				p.handler.Execute(b)
			case b < utf8.RuneSelf:
				p.handler.Print(rune(b))
			default:
				// Start of a multi-byte rune, possibly split across chunks.
				if utf8.FullRune(data[i:]) {
					r, size := utf8.DecodeRune(data[i:])
					p.handler.Print(r)
					i += size - 1
				} else {
					p.runeBuffer = append(p.runeBuffer, b)
				}
			}
		case stateEscape:
			switch b {
			case '[':
				p.state = stateCSI
				p.params = p.params[:0]
				p.currentParam = 0
				p.private = false
			case ']':
				p.state = stateOSC
				p.oscBuffer = p.oscBuffer[:0]
			case '(', ')':
				p.state = stateCharset
			default:
				p.state = stateGround
			}
		case stateCSI:
			switch {
			case b >= '0' && b <= '9':
				p.currentParam = p.currentParam*10 + int(b-'0')
			case b == ';':
				p.params = append(p.params, p.currentParam)
				p.currentParam = 0
			case b == '?':
				p.private = true
			case b >= '@' && b <= '~':
				p.params = append(p.params, p.currentParam)
				p.handler.CSI(b, p.params, p.private)
				p.state = stateGround
			}
			// Other intermediate bytes are skipped.
		case stateOSC:
			switch b {
			case 0x07:
				p.dispatchOSC()
				p.state = stateGround
			case 0x1b:
				p.state = stateOSCEsc
			default:
				p.oscBuffer = append(p.oscBuffer, b)
			}
		case stateOSCEsc:
			// ESC \ is the ST terminator; anything else aborts the OSC.
			if b == '\\' {
				p.dispatchOSC()
			}
			p.state = stateGround
		case stateCharset:
			p.state = stateGround
		}
	}
}

func (p *Parser) dispatchOSC() {
	command, payload, ok := strings.Cut(string(p.oscBuffer), ";")
	if !ok {
		return
	}
	p.handler.OSC(command, payload)
}
