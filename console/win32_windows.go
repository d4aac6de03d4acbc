// Copyright © 2025 Texelcon contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: console/win32_windows.go
// Summary: kernel32 bindings behind the API interface.
// Usage: Selected on Windows builds; everything else uses the stub.
// Notes: Calls not wrapped by x/sys/windows go through lazy procs; COORD
//        arguments pass by value packed into a single machine word.

//go:build windows

package console

import (
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procSetConsoleCursorPosition    = kernel32.NewProc("SetConsoleCursorPosition")
	procSetConsoleCursorInfo        = kernel32.NewProc("SetConsoleCursorInfo")
	procSetConsoleTextAttribute     = kernel32.NewProc("SetConsoleTextAttribute")
	procSetConsoleTitleW            = kernel32.NewProc("SetConsoleTitleW")
	procFillConsoleOutputCharacterW = kernel32.NewProc("FillConsoleOutputCharacterW")
	procFillConsoleOutputAttribute  = kernel32.NewProc("FillConsoleOutputAttribute")
)

type consoleCursorInfo struct {
	size    uint32
	visible int32
}

// win32API issues real console calls against a single output handle.
type win32API struct {
	handle windows.Handle
}

// newWin32API binds the console attached to f.
func newWin32API(f *os.File) (API, error) {
	h := windows.Handle(f.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return nil, ErrNoConsole
	}
	return &win32API{handle: h}, nil
}

func (a *win32API) ScreenBufferInfo() (ScreenBufferInfo, error) {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(a.handle, &info); err != nil {
		return ScreenBufferInfo{}, err
	}
	return ScreenBufferInfo{
		CursorPosition: Coord{Row: int(info.CursorPosition.Y), Col: int(info.CursorPosition.X)},
		Size:           Coord{Row: int(info.Size.Y), Col: int(info.Size.X)},
		Attributes:     Attr(info.Attributes),
	}, nil
}

func (a *win32API) SetCursorPosition(pos Coord) error {
	r1, _, err := procSetConsoleCursorPosition.Call(uintptr(a.handle), packCoord(pos))
	if r1 == 0 {
		return err
	}
	return nil
}

func (a *win32API) SetCursorInfo(info CursorInfo) error {
	ci := consoleCursorInfo{size: info.Size}
	if info.Visible {
		ci.visible = 1
	}
	r1, _, err := procSetConsoleCursorInfo.Call(uintptr(a.handle), uintptr(unsafe.Pointer(&ci)))
	if r1 == 0 {
		return err
	}
	return nil
}

func (a *win32API) SetTextAttributes(attr Attr) error {
	r1, _, err := procSetConsoleTextAttribute.Call(uintptr(a.handle), uintptr(uint16(attr)))
	if r1 == 0 {
		return err
	}
	return nil
}

func (a *win32API) FillCharacter(ch rune, length int, start Coord) (int, error) {
	var written uint32
	r1, _, err := procFillConsoleOutputCharacterW.Call(
		uintptr(a.handle),
		uintptr(uint16(ch)),
		uintptr(uint32(length)),
		packCoord(start),
		uintptr(unsafe.Pointer(&written)),
	)
	if r1 == 0 {
		return 0, err
	}
	return int(written), nil
}

func (a *win32API) FillAttributes(attr Attr, length int, start Coord) (int, error) {
	var written uint32
	r1, _, err := procFillConsoleOutputAttribute.Call(
		uintptr(a.handle),
		uintptr(uint16(attr)),
		uintptr(uint32(length)),
		packCoord(start),
		uintptr(unsafe.Pointer(&written)),
	)
	if r1 == 0 {
		return 0, err
	}
	return int(written), nil
}

func (a *win32API) SetTitle(title string) error {
	p, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return err
	}
	r1, _, callErr := procSetConsoleTitleW.Call(uintptr(unsafe.Pointer(p)))
	if r1 == 0 {
		return callErr
	}
	return nil
}

// packCoord packs a COORD into the single dword the native calls take by
// value: Y in the high word, X in the low word.
func packCoord(c Coord) uintptr {
	n := c.Native()
	return uintptr(uint32(uint16(n.Y))<<16 | uint32(uint16(n.X)))
}

// EnableVirtualTerminal switches the console attached to f into native VT
// processing. On consoles that predate VT support the mode change fails and
// callers should fall back to the legacy adapter.
func EnableVirtualTerminal(f *os.File) error {
	h := windows.Handle(f.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return ErrNoConsole
	}
	return windows.SetConsoleMode(h, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING)
}
