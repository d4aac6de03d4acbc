// Copyright © 2025 Texelcon contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: console/style.go
// Summary: Color and attribute model shared by the adapter and the writer.
// Usage: Styles are composed into legacy attribute words before OS calls.
// Notes: Keeps styling concerns isolated from the syscall boundary.

package console

// Attribute is a bitset of text attributes carried by a Style.
type Attribute uint16

const (
	AttrBold Attribute = 1 << iota
	AttrDim
	AttrUnderline
	AttrReverse
)

// String returns a human-readable representation of the attribute flags.
func (a Attribute) String() string {
	if a == 0 {
		return "none"
	}
	var parts []string
	if a&AttrBold != 0 {
		parts = append(parts, "bold")
	}
	if a&AttrDim != 0 {
		parts = append(parts, "dim")
	}
	if a&AttrUnderline != 0 {
		parts = append(parts, "underline")
	}
	if a&AttrReverse != 0 {
		parts = append(parts, "reverse")
	}
	if len(parts) == 0 {
		return "unknown"
	}
	result := parts[0]
	for i := 1; i < len(parts); i++ {
		result += "|" + parts[i]
	}
	return result
}

// ColorMode defines the type of color stored.
type ColorMode int

const (
	ColorModeDefault  ColorMode = iota // Default terminal color
	ColorModeStandard                  // The basic 16 ANSI colors
	ColorMode256                       // 256-color palette
	ColorModeRGB                       // 24-bit "true" color
)

// Color represents a color in potentially different modes.
type Color struct {
	Mode    ColorMode
	Value   uint8 // Holds the color code for Standard (0-15) and 256-mode (0-255)
	R, G, B uint8 // Holds the values for RGB mode
}

// Style describes how a run of text should be rendered. The zero value is
// the terminal default and writes without any attribute changes.
type Style struct {
	FG    Color
	BG    Color
	Attrs Attribute
}

// IsZero reports whether the style carries no color or attribute at all.
func (s Style) IsZero() bool {
	return s.FG.Mode == ColorModeDefault && s.BG.Mode == ColorModeDefault && s.Attrs == 0
}
