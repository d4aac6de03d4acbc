// Copyright © 2025 Texelcon contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: console/api.go
// Summary: OS console API seam abstracted behind an interface.
// Usage: The real implementation binds kernel32; tests install a recorder.
// Notes: Call signatures mirror the native surface, including the
//        column-first coordinate ordering handled by Coord.Native.

package console

import "errors"

var (
	// ErrNoConsole is returned when no legacy console is available,
	// including all non-Windows builds.
	ErrNoConsole = errors.New("console: no legacy console available")

	// ErrTitleTooLong is returned by SetTitle for titles at or above the
	// native length limit.
	ErrTitleTooLong = errors.New("console: title must be shorter than 254 characters")
)

// Coord identifies a screen cell. The public API is row-major; the native
// console surface is column-first, so every boundary crossing goes through
// Native.
type Coord struct {
	Row int
	Col int
}

// NativeCoord is the column-first pair the OS calls expect.
type NativeCoord struct {
	X int16
	Y int16
}

// Native converts a Coord to the OS field ordering.
func (c Coord) Native() NativeCoord {
	return NativeCoord{X: int16(c.Col), Y: int16(c.Row)}
}

// ScreenBufferInfo is the result of querying the active screen buffer.
type ScreenBufferInfo struct {
	CursorPosition Coord
	Size           Coord // Size.Col is the width, Size.Row the height
	Attributes     Attr
}

// CursorInfo controls the rendered cursor glyph.
type CursorInfo struct {
	Size    uint32 // percentage of the cell filled by the cursor
	Visible bool
}

// API is the native console surface the adapter issues calls against.
type API interface {
	// ScreenBufferInfo queries cursor position, buffer size, and the
	// current attribute word.
	ScreenBufferInfo() (ScreenBufferInfo, error)

	// SetCursorPosition moves the cursor to an absolute cell.
	SetCursorPosition(pos Coord) error

	// SetCursorInfo updates cursor visibility and size.
	SetCursorInfo(info CursorInfo) error

	// SetTextAttributes changes the attribute applied to subsequent writes.
	SetTextAttributes(attr Attr) error

	// FillCharacter writes ch into length cells starting at start and
	// returns the number of cells written.
	FillCharacter(ch rune, length int, start Coord) (int, error)

	// FillAttributes writes attr into length cells starting at start and
	// returns the number of cells written.
	FillAttributes(attr Attr, length int, start Coord) (int, error)

	// SetTitle sets the console window title.
	SetTitle(title string) error
}
