// Copyright © 2025 Texelcon contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: console/testharness.go
// Summary: Recording fake of the native console API plus a test harness.
// Usage: Used by console and writer tests to verify issued OS calls.
// Notes: Queries are not recorded; only mutating calls are interesting.

package console

import (
	"bytes"
	"testing"
)

// Call is one mutating call recorded by the fake API.
type Call struct {
	Name   string // "SetCursorPosition", "FillCharacter", ...
	Pos    Coord
	Attr   Attr
	Ch     rune
	Length int
	Title  string
	Cursor CursorInfo
}

// RecorderAPI implements API against in-memory state, recording every
// mutating call in order.
type RecorderAPI struct {
	Info  ScreenBufferInfo
	Calls []Call
	Err   error // injected into every call when set
}

func (r *RecorderAPI) ScreenBufferInfo() (ScreenBufferInfo, error) {
	if r.Err != nil {
		return ScreenBufferInfo{}, r.Err
	}
	return r.Info, nil
}

func (r *RecorderAPI) SetCursorPosition(pos Coord) error {
	if r.Err != nil {
		return r.Err
	}
	r.Calls = append(r.Calls, Call{Name: "SetCursorPosition", Pos: pos})
	r.Info.CursorPosition = pos
	return nil
}

func (r *RecorderAPI) SetCursorInfo(info CursorInfo) error {
	if r.Err != nil {
		return r.Err
	}
	r.Calls = append(r.Calls, Call{Name: "SetCursorInfo", Cursor: info})
	return nil
}

func (r *RecorderAPI) SetTextAttributes(attr Attr) error {
	if r.Err != nil {
		return r.Err
	}
	r.Calls = append(r.Calls, Call{Name: "SetTextAttributes", Attr: attr})
	return nil
}

func (r *RecorderAPI) FillCharacter(ch rune, length int, start Coord) (int, error) {
	if r.Err != nil {
		return 0, r.Err
	}
	r.Calls = append(r.Calls, Call{Name: "FillCharacter", Ch: ch, Length: length, Pos: start})
	return length, nil
}

func (r *RecorderAPI) FillAttributes(attr Attr, length int, start Coord) (int, error) {
	if r.Err != nil {
		return 0, r.Err
	}
	r.Calls = append(r.Calls, Call{Name: "FillAttributes", Attr: attr, Length: length, Pos: start})
	return length, nil
}

func (r *RecorderAPI) SetTitle(title string) error {
	if r.Err != nil {
		return r.Err
	}
	r.Calls = append(r.Calls, Call{Name: "SetTitle", Title: title})
	return nil
}

// Named returns the recorded calls with the given name, in order.
func (r *RecorderAPI) Named(name string) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// TestHarness wires a Term to a RecorderAPI and an output buffer.
type TestHarness struct {
	Term *Term
	Rec  *RecorderAPI
	Out  *bytes.Buffer
}

// NewTestHarness builds a Term over a recorder with the given screen size
// and default attributes, cursor at the origin.
func NewTestHarness(t *testing.T, width, height int, attrs Attr) *TestHarness {
	t.Helper()
	rec := &RecorderAPI{Info: ScreenBufferInfo{
		Size:       Coord{Row: height, Col: width},
		Attributes: attrs,
	}}
	out := &bytes.Buffer{}
	term, err := New(WithAPI(rec), WithFile(out))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return &TestHarness{Term: term, Rec: rec, Out: out}
}

// SetCursor places the fake cursor for subsequent queries.
func (h *TestHarness) SetCursor(row, col int) {
	h.Rec.Info.CursorPosition = Coord{Row: row, Col: col}
}

// AssertCalls fails unless the recorder holds exactly the expected calls.
func (h *TestHarness) AssertCalls(t *testing.T, expected []Call) {
	t.Helper()
	if len(h.Rec.Calls) != len(expected) {
		t.Fatalf("recorded %d calls, expected %d: %+v", len(h.Rec.Calls), len(expected), h.Rec.Calls)
	}
	for i, want := range expected {
		if h.Rec.Calls[i] != want {
			t.Fatalf("call %d: got %+v, want %+v", i, h.Rec.Calls[i], want)
		}
	}
}

// AssertNoCalls fails if any mutating call was recorded.
func (h *TestHarness) AssertNoCalls(t *testing.T) {
	t.Helper()
	if len(h.Rec.Calls) != 0 {
		t.Fatalf("expected no calls, recorded %+v", h.Rec.Calls)
	}
}
