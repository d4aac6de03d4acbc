// Copyright © 2025 Texelcon contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: console/erase.go
// Summary: Erase operations - line segments and full screen.
// Usage: Part of the legacy console adapter.
// Notes: Every erase pairs a space fill with an attribute fill over the
//        same run; the legacy surface keeps the two planes separate.

package console

// EraseLine blanks the entire row under the cursor.
func (t *Term) EraseLine() error {
	info, err := t.api.ScreenBufferInfo()
	if err != nil {
		return err
	}
	start := Coord{Row: info.CursorPosition.Row, Col: 0}
	return t.fill(start, info.Size.Col)
}

// EraseEndOfLine blanks from the cursor to the end of the row.
func (t *Term) EraseEndOfLine() error {
	info, err := t.api.ScreenBufferInfo()
	if err != nil {
		return err
	}
	return t.fill(info.CursorPosition, info.Size.Col-info.CursorPosition.Col)
}

// EraseStartOfLine blanks from the start of the row up to the cursor.
func (t *Term) EraseStartOfLine() error {
	info, err := t.api.ScreenBufferInfo()
	if err != nil {
		return err
	}
	start := Coord{Row: info.CursorPosition.Row, Col: 0}
	return t.fill(start, info.CursorPosition.Col)
}

// EraseScreen blanks the whole buffer.
func (t *Term) EraseScreen() error {
	info, err := t.api.ScreenBufferInfo()
	if err != nil {
		return err
	}
	return t.fill(Coord{}, info.Size.Col*info.Size.Row)
}

// fill blanks length cells starting at start on both the character and the
// attribute plane.
func (t *Term) fill(start Coord, length int) error {
	if _, err := t.api.FillCharacter(' ', length, start); err != nil {
		return err
	}
	_, err := t.api.FillAttributes(t.defaultAttr, length, start)
	return err
}
