// Copyright © 2025 Texelcon contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: writer/platform_windows.go
// Summary: Windows writer selection - native VT when available, legacy
//          interpretation otherwise.

//go:build windows

package writer

import (
	"io"
	"os"

	"github.com/framegrace/texelcon/console"
)

func newPlatformWriter(f *os.File) io.Writer {
	if console.EnableVirtualTerminal(f) == nil {
		return f
	}
	t, err := console.New(console.WithFile(f))
	if err != nil {
		return f
	}
	return NewLegacyWriter(t)
}
