// Copyright © 2025 Texelcon contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: console/cursor.go
// Summary: Cursor movement and visibility operations.
// Usage: Part of the legacy console adapter.
// Notes: Out-of-bounds targets are discarded without an OS call; relative
//        moves wrap at line boundaries like their escape-code equivalents.

package console

// MoveCursorTo positions the cursor at an absolute cell. Targets outside
// the screen buffer are silently discarded - no positioning call is issued.
func (t *Term) MoveCursorTo(pos Coord) error {
	if pos.Row < 0 || pos.Col < 0 {
		return nil
	}
	size, err := t.ScreenSize()
	if err != nil {
		return err
	}
	if pos.Row >= size.Row || pos.Col >= size.Col {
		return nil
	}
	return t.api.SetCursorPosition(pos)
}

// MoveCursorUp moves the cursor one row up in the same column.
func (t *Term) MoveCursorUp() error {
	cur, err := t.CursorPosition()
	if err != nil {
		return err
	}
	return t.MoveCursorTo(Coord{Row: cur.Row - 1, Col: cur.Col})
}

// MoveCursorDown moves the cursor one row down in the same column.
func (t *Term) MoveCursorDown() error {
	cur, err := t.CursorPosition()
	if err != nil {
		return err
	}
	return t.MoveCursorTo(Coord{Row: cur.Row + 1, Col: cur.Col})
}

// MoveCursorForward moves the cursor one column right, wrapping past the
// last column onto the start of the next row.
func (t *Term) MoveCursorForward() error {
	info, err := t.api.ScreenBufferInfo()
	if err != nil {
		return err
	}
	cur := info.CursorPosition
	if cur.Col == info.Size.Col-1 {
		return t.MoveCursorTo(Coord{Row: cur.Row + 1, Col: 0})
	}
	return t.MoveCursorTo(Coord{Row: cur.Row, Col: cur.Col + 1})
}

// MoveCursorBackward moves the cursor one column left, wrapping before
// column zero onto the end of the previous row.
func (t *Term) MoveCursorBackward() error {
	info, err := t.api.ScreenBufferInfo()
	if err != nil {
		return err
	}
	cur := info.CursorPosition
	if cur.Col == 0 {
		return t.MoveCursorTo(Coord{Row: cur.Row - 1, Col: info.Size.Col - 1})
	}
	return t.MoveCursorTo(Coord{Row: cur.Row, Col: cur.Col - 1})
}

// MoveCursorToColumn moves the cursor to a column in the current row.
func (t *Term) MoveCursorToColumn(col int) error {
	cur, err := t.CursorPosition()
	if err != nil {
		return err
	}
	return t.MoveCursorTo(Coord{Row: cur.Row, Col: col})
}

// ShowCursor makes the cursor glyph visible.
func (t *Term) ShowCursor() error {
	return t.api.SetCursorInfo(CursorInfo{Size: cursorSize, Visible: true})
}

// HideCursor hides the cursor glyph.
func (t *Term) HideCursor() error {
	return t.api.SetCursorInfo(CursorInfo{Size: cursorSize, Visible: false})
}
