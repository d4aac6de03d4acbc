// Copyright © 2025 Texelcon contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: console/erase_test.go
// Summary: Tests for erase geometry and paired character/attribute fills.
// Usage: Executed during `go test` to guard against regressions.

package console

import "testing"

func TestEraseOperations(t *testing.T) {
	cursor := Coord{Row: 2, Col: 1}
	tests := []struct {
		name   string
		erase  func(*Term) error
		start  Coord
		length int
	}{
		{
			name:   "full line",
			erase:  (*Term).EraseLine,
			start:  Coord{Row: cursor.Row, Col: 0},
			length: testWidth,
		},
		{
			name:   "to end of line",
			erase:  (*Term).EraseEndOfLine,
			start:  cursor,
			length: testWidth - cursor.Col,
		},
		{
			name:   "to start of line",
			erase:  (*Term).EraseStartOfLine,
			start:  Coord{Row: cursor.Row, Col: 0},
			length: cursor.Col,
		},
		{
			name:   "whole screen",
			erase:  (*Term).EraseScreen,
			start:  Coord{},
			length: testWidth * testHeight,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewTestHarness(t, testWidth, testHeight, testAttrs)
			h.SetCursor(cursor.Row, cursor.Col)
			if err := tt.erase(h.Term); err != nil {
				t.Fatalf("erase: %v", err)
			}
			// One space fill and one attribute fill, identical geometry.
			h.AssertCalls(t, []Call{
				{Name: "FillCharacter", Ch: ' ', Length: tt.length, Pos: tt.start},
				{Name: "FillAttributes", Attr: testAttrs, Length: tt.length, Pos: tt.start},
			})
		})
	}
}

func TestEraseEndOfLineAtRightEdge(t *testing.T) {
	h := NewTestHarness(t, testWidth, testHeight, testAttrs)
	h.SetCursor(2, testWidth-1)
	if err := h.Term.EraseEndOfLine(); err != nil {
		t.Fatalf("EraseEndOfLine: %v", err)
	}
	h.AssertCalls(t, []Call{
		{Name: "FillCharacter", Ch: ' ', Length: 1, Pos: Coord{Row: 2, Col: testWidth - 1}},
		{Name: "FillAttributes", Attr: testAttrs, Length: 1, Pos: Coord{Row: 2, Col: testWidth - 1}},
	})
}

func TestEraseStartOfLineAtColumnZero(t *testing.T) {
	h := NewTestHarness(t, testWidth, testHeight, testAttrs)
	h.SetCursor(2, 0)
	if err := h.Term.EraseStartOfLine(); err != nil {
		t.Fatalf("EraseStartOfLine: %v", err)
	}
	h.AssertCalls(t, []Call{
		{Name: "FillCharacter", Ch: ' ', Length: 0, Pos: Coord{Row: 2, Col: 0}},
		{Name: "FillAttributes", Attr: testAttrs, Length: 0, Pos: Coord{Row: 2, Col: 0}},
	})
}
