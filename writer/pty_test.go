// Copyright © 2025 Texelcon contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: writer/pty_test.go
// Summary: Verifies terminal detection and passthrough against a real pty.
// Usage: Executed during `go test` on unix hosts.
// Notes: Escape bytes must reach the terminal untouched on platforms with
//        native VT interpretation.

//go:build !windows

package writer

import (
	"io"
	"os"
	"testing"

	"github.com/creack/pty"
	"golang.org/x/term"
)

func TestNewWriterPassthroughOnPty(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	if !term.IsTerminal(int(tty.Fd())) {
		t.Fatalf("pty slave not detected as a terminal")
	}

	w := NewWriter(tty)
	if f, ok := w.(*os.File); !ok || f != tty {
		t.Fatalf("expected passthrough writer on a VT-capable terminal")
	}

	// No newline in the payload: OPOST would rewrite it on the way out.
	payload := "\x1b[31mred\x1b[0m"
	if _, err := w.Write([]byte(payload)); err != nil {
		t.Fatalf("Write: %v", err)
	}

	buf := make([]byte, len(payload))
	if _, err := io.ReadFull(ptmx, buf); err != nil {
		t.Fatalf("ReadFull: %v", err)
	}
	if string(buf) != payload {
		t.Fatalf("escape bytes were altered: %q", buf)
	}
}
