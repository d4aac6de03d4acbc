// Copyright © 2025 Texelcon contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: console/console.go
// Summary: Legacy console adapter core - construction, queries, writes.
// Usage: Entry point for issuing terminal operations on legacy consoles.
// Notes: Cursor position and screen size are queried per operation, never
//        cached; the console is process-wide shared state.

// Package console translates semantic terminal operations into legacy
// Windows console API calls for environments without native escape-code
// support.
package console

import (
	"fmt"
	"io"
	"os"
)

// maxTitleLength is the length at which SetTitle rejects a title. The
// native call buffer is fixed, so over-length titles fail fast here rather
// than being truncated by the OS.
const maxTitleLength = 254

// cursorSize is the cell fill percentage applied whenever visibility
// changes. The legacy API forces a size on every visibility update.
const cursorSize = 100

// Term translates semantic terminal operations into calls against a legacy
// console API. It holds the attribute word observed at construction so that
// styled writes and erases can restore it.
type Term struct {
	api         API
	file        io.Writer
	defaultAttr Attr
}

// Option configures a Term during construction.
type Option func(*Term)

// WithAPI replaces the native console binding, primarily for tests.
func WithAPI(api API) Option {
	return func(t *Term) { t.api = api }
}

// WithFile redirects plain text output away from stdout.
func WithFile(f io.Writer) Option {
	return func(t *Term) { t.file = f }
}

// New acquires the console and captures the current text attributes as the
// restore target for styled writes.
func New(opts ...Option) (*Term, error) {
	t := &Term{file: os.Stdout}
	for _, opt := range opts {
		opt(t)
	}
	if t.api == nil {
		f, ok := t.file.(*os.File)
		if !ok {
			return nil, ErrNoConsole
		}
		api, err := newWin32API(f)
		if err != nil {
			return nil, err
		}
		t.api = api
	}
	info, err := t.api.ScreenBufferInfo()
	if err != nil {
		return nil, fmt.Errorf("console: querying screen buffer: %w", err)
	}
	t.defaultAttr = info.Attributes
	return t, nil
}

// DefaultAttributes returns the attribute word captured at construction.
func (t *Term) DefaultAttributes() Attr {
	return t.defaultAttr
}

// CursorPosition queries the current cursor cell.
func (t *Term) CursorPosition() (Coord, error) {
	info, err := t.api.ScreenBufferInfo()
	if err != nil {
		return Coord{}, err
	}
	return info.CursorPosition, nil
}

// ScreenSize queries the screen buffer dimensions.
func (t *Term) ScreenSize() (Coord, error) {
	info, err := t.api.ScreenBufferInfo()
	if err != nil {
		return Coord{}, err
	}
	return info.Size, nil
}

// WriteText writes unstyled text at the cursor.
func (t *Term) WriteText(text string) error {
	_, err := io.WriteString(t.file, text)
	return err
}

// WriteStyled writes text under the composed style attribute and restores
// the default attribute afterwards. The restore runs even when the text
// write fails, so a partial write never leaks its attribute into later
// output.
func (t *Term) WriteStyled(text string, style Style) (err error) {
	if err := t.api.SetTextAttributes(style.compose(t.defaultAttr)); err != nil {
		return err
	}
	defer func() {
		if restoreErr := t.api.SetTextAttributes(t.defaultAttr); restoreErr != nil && err == nil {
			err = restoreErr
		}
	}()
	return t.WriteText(text)
}

// SetTitle sets the console window title. Titles of maxTitleLength or more
// characters are rejected before any OS call.
func (t *Term) SetTitle(title string) error {
	if len([]rune(title)) >= maxTitleLength {
		return ErrTitleTooLong
	}
	return t.api.SetTitle(title)
}
