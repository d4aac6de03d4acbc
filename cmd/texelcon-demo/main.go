// Copyright © 2025 Texelcon contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelcon-demo/main.go
// Summary: Highlights a source file and renders it through the writer.
// Usage: texelcon-demo [-style name] [-lexer name] <file>
// Notes: Exercises the whole stack - on a legacy console the SGR output
//        is interpreted call by call, elsewhere it passes through.

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/go-enry/go-enry/v2"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/framegrace/texelcon/writer"
)

var (
	styleName = flag.String("style", "monokai", "chroma style name")
	lexerName = flag.String("lexer", "", "force a lexer instead of detecting the language")
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatalf("usage: texelcon-demo [flags] <file>")
	}
	path := flag.Arg(0)
	src, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("texelcon-demo: %v", err)
	}

	out := writer.NewWriter(os.Stdout)
	printHeader(out, path)

	style := styles.Get(*styleName)
	if style == nil {
		style = styles.Fallback
	}
	lexer := pickLexer(path, src)
	iterator, err := lexer.Tokenise(nil, string(src))
	if err != nil {
		log.Fatalf("texelcon-demo: tokenising %s: %v", path, err)
	}
	// 16-color output: everything a legacy console can actually show.
	formatter := formatters.Get("terminal16")
	if formatter == nil {
		formatter = formatters.Fallback
	}
	if err := formatter.Format(out, style, iterator); err != nil {
		log.Fatalf("texelcon-demo: %v", err)
	}
}

// pickLexer resolves a lexer from the -lexer flag, enry's language
// detection, or the file name, in that order.
func pickLexer(path string, src []byte) chroma.Lexer {
	if *lexerName != "" {
		if l := lexers.Get(*lexerName); l != nil {
			return chroma.Coalesce(l)
		}
		log.Printf("texelcon-demo: unknown lexer %q, detecting instead", *lexerName)
	}
	if lang := enry.GetLanguage(filepath.Base(path), src); lang != "" {
		if l := lexers.Get(lang); l != nil {
			return chroma.Coalesce(l)
		}
	}
	if l := lexers.Match(filepath.Base(path)); l != nil {
		return chroma.Coalesce(l)
	}
	return chroma.Coalesce(lexers.Fallback)
}

// printHeader renders a reverse-video title bar sized to the terminal and
// mirrors the file name into the window title.
func printHeader(out io.Writer, path string) {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}
	title := runewidth.Truncate(filepath.Base(path), width, "…")
	tw := runewidth.StringWidth(title)
	left := (width - tw) / 2
	right := width - tw - left
	fmt.Fprintf(out, "\x1b]0;texelcon-demo %s\x07", title)
	fmt.Fprintf(out, "\x1b[7m%s%s%s\x1b[0m\r\n", strings.Repeat(" ", left), title, strings.Repeat(" ", right))
}
