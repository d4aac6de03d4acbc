// Copyright © 2025 Texelcon contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: console/cursor_test.go
// Summary: Tests for cursor movement, wrapping, bounds, and visibility.
// Usage: Executed during `go test` to guard against regressions.
// Notes: Wrap semantics follow the escape-code equivalents; out-of-bounds
//        targets must never reach the OS.

package console

import "testing"

func TestMoveCursorTo(t *testing.T) {
	h := NewTestHarness(t, testWidth, testHeight, testAttrs)
	if err := h.Term.MoveCursorTo(Coord{Row: 4, Col: 5}); err != nil {
		t.Fatalf("MoveCursorTo: %v", err)
	}
	h.AssertCalls(t, []Call{{Name: "SetCursorPosition", Pos: Coord{Row: 4, Col: 5}}})
}

func TestMoveCursorToOutOfBounds(t *testing.T) {
	tests := []struct {
		name string
		pos  Coord
	}{
		{"negative row", Coord{Row: -1, Col: 4}},
		{"negative col", Coord{Row: 10, Col: -4}},
		{"both negative", Coord{Row: -2, Col: -2}},
		{"row at height", Coord{Row: testHeight, Col: 0}},
		{"row past height", Coord{Row: testHeight + 5, Col: 3}},
		{"col at width", Coord{Row: 0, Col: testWidth}},
		{"col past width", Coord{Row: 3, Col: testWidth + 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewTestHarness(t, testWidth, testHeight, testAttrs)
			if err := h.Term.MoveCursorTo(tt.pos); err != nil {
				t.Fatalf("MoveCursorTo: %v", err)
			}
			h.AssertNoCalls(t)
		})
	}
}

func TestRelativeMoves(t *testing.T) {
	tests := []struct {
		name     string
		cursor   Coord
		move     func(*Term) error
		expected Coord
	}{
		{
			name:     "up",
			cursor:   Coord{Row: 2, Col: 1},
			move:     (*Term).MoveCursorUp,
			expected: Coord{Row: 1, Col: 1},
		},
		{
			name:     "down",
			cursor:   Coord{Row: 2, Col: 1},
			move:     (*Term).MoveCursorDown,
			expected: Coord{Row: 3, Col: 1},
		},
		{
			name:     "forward",
			cursor:   Coord{Row: 2, Col: 1},
			move:     (*Term).MoveCursorForward,
			expected: Coord{Row: 2, Col: 2},
		},
		{
			name:     "forward wraps at last column",
			cursor:   Coord{Row: 2, Col: testWidth - 1},
			move:     (*Term).MoveCursorForward,
			expected: Coord{Row: 3, Col: 0},
		},
		{
			name:     "backward",
			cursor:   Coord{Row: 2, Col: 1},
			move:     (*Term).MoveCursorBackward,
			expected: Coord{Row: 2, Col: 0},
		},
		{
			name:     "backward wraps at column zero",
			cursor:   Coord{Row: 2, Col: 0},
			move:     (*Term).MoveCursorBackward,
			expected: Coord{Row: 1, Col: testWidth - 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewTestHarness(t, testWidth, testHeight, testAttrs)
			h.SetCursor(tt.cursor.Row, tt.cursor.Col)
			if err := tt.move(h.Term); err != nil {
				t.Fatalf("move: %v", err)
			}
			h.AssertCalls(t, []Call{{Name: "SetCursorPosition", Pos: tt.expected}})
		})
	}
}

func TestRelativeMoveOffScreenIsDiscarded(t *testing.T) {
	// Moving up from the top row would target row -1; no call is issued.
	h := NewTestHarness(t, testWidth, testHeight, testAttrs)
	h.SetCursor(0, 5)
	if err := h.Term.MoveCursorUp(); err != nil {
		t.Fatalf("MoveCursorUp: %v", err)
	}
	h.AssertNoCalls(t)

	// Backward wrap from the origin targets row -1 as well.
	h = NewTestHarness(t, testWidth, testHeight, testAttrs)
	h.SetCursor(0, 0)
	if err := h.Term.MoveCursorBackward(); err != nil {
		t.Fatalf("MoveCursorBackward: %v", err)
	}
	h.AssertNoCalls(t)
}

func TestMoveCursorToColumn(t *testing.T) {
	h := NewTestHarness(t, testWidth, testHeight, testAttrs)
	h.SetCursor(2, 1)
	if err := h.Term.MoveCursorToColumn(5); err != nil {
		t.Fatalf("MoveCursorToColumn: %v", err)
	}
	h.AssertCalls(t, []Call{{Name: "SetCursorPosition", Pos: Coord{Row: 2, Col: 5}}})
}

func TestCursorVisibility(t *testing.T) {
	h := NewTestHarness(t, testWidth, testHeight, testAttrs)
	if err := h.Term.HideCursor(); err != nil {
		t.Fatalf("HideCursor: %v", err)
	}
	if err := h.Term.ShowCursor(); err != nil {
		t.Fatalf("ShowCursor: %v", err)
	}
	h.AssertCalls(t, []Call{
		{Name: "SetCursorInfo", Cursor: CursorInfo{Size: 100, Visible: false}},
		{Name: "SetCursorInfo", Cursor: CursorInfo{Size: 100, Visible: true}},
	})
}
