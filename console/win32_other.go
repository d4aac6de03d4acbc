// Copyright © 2025 Texelcon contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: console/win32_other.go
// Summary: Non-Windows stub for the native console binding.

//go:build !windows

package console

import "os"

// newWin32API always fails off Windows; tests install a fake through
// WithAPI instead.
func newWin32API(_ *os.File) (API, error) {
	return nil, ErrNoConsole
}

// EnableVirtualTerminal is a no-op failure off Windows, where escape
// sequences are interpreted natively by the terminal.
func EnableVirtualTerminal(_ *os.File) error {
	return ErrNoConsole
}
