// Copyright © 2025 Texelcon contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: writer/platform_other.go
// Summary: Non-Windows writer selection - always passthrough.

//go:build !windows

package writer

import (
	"io"
	"os"
)

func newPlatformWriter(f *os.File) io.Writer {
	return f
}
