// Copyright © 2025 Texelcon contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: console/attr.go
// Summary: Legacy attribute word layout and Style composition.
// Usage: Attr values travel over the OS boundary; Styles never do.
// Notes: The legacy word orders color bits BGR, the reverse of ANSI.

package console

// Attr is a packed legacy console attribute word: the low nibble holds the
// foreground color, the next nibble the background.
type Attr uint16

const (
	FgBlue      Attr = 0x0001
	FgGreen     Attr = 0x0002
	FgRed       Attr = 0x0004
	FgIntensity Attr = 0x0008
	BgBlue      Attr = 0x0010
	BgGreen     Attr = 0x0020
	BgRed       Attr = 0x0040
	BgIntensity Attr = 0x0080

	fgMask Attr = 0x000F
	bgMask Attr = 0x00F0
)

// ansiToLegacy reorders the basic ANSI color indices (RGB bit order) into
// legacy console color bits (BGR bit order).
var ansiToLegacy = [8]Attr{
	0,                       // black
	FgRed,                   // red
	FgGreen,                 // green
	FgRed | FgGreen,         // yellow
	FgBlue,                  // blue
	FgRed | FgBlue,          // magenta
	FgGreen | FgBlue,        // cyan
	FgRed | FgGreen | FgBlue, // white
}

// legacyPalette holds the nominal RGB values of the 16 legacy console
// colors, indexed by legacy color bits (including the intensity bit).
// Used to downgrade 256-color and true-color values.
var legacyPalette = [16][3]uint8{
	{0, 0, 0}, {0, 0, 128}, {0, 128, 0}, {0, 128, 128},
	{128, 0, 0}, {128, 0, 128}, {128, 128, 0}, {192, 192, 192},
	{128, 128, 128}, {0, 0, 255}, {0, 255, 0}, {0, 255, 255},
	{255, 0, 0}, {255, 0, 255}, {255, 255, 0}, {255, 255, 255},
}

// compose builds the attribute word for a style, taking unset foreground or
// background colors from the given default word.
func (s Style) compose(def Attr) Attr {
	fg := def & fgMask
	if s.FG.Mode != ColorModeDefault {
		fg = legacyColor(s.FG)
	}
	bg := def & bgMask
	if s.BG.Mode != ColorModeDefault {
		bg = legacyColor(s.BG) << 4
	}
	if s.Attrs&AttrBold != 0 {
		fg |= FgIntensity
	}
	if s.Attrs&AttrDim != 0 {
		fg &^= FgIntensity
	}
	if s.Attrs&AttrReverse != 0 {
		fg, bg = (bg>>4)&fgMask, (fg<<4)&bgMask
	}
	// Underline has no legacy representation and is dropped.
	return fg | bg
}

// legacyColor downgrades a color to 4 legacy foreground bits.
func legacyColor(c Color) Attr {
	switch c.Mode {
	case ColorModeStandard:
		idx := c.Value & 0x0F
		bits := ansiToLegacy[idx&0x07]
		if idx >= 8 {
			bits |= FgIntensity
		}
		return bits
	case ColorMode256:
		r, g, b := palette256RGB(c.Value)
		return nearestLegacy(r, g, b)
	case ColorModeRGB:
		return nearestLegacy(c.R, c.G, c.B)
	}
	return 0
}

// palette256RGB expands a 256-color palette index to RGB.
func palette256RGB(v uint8) (uint8, uint8, uint8) {
	switch {
	case v < 16:
		p := legacyColorRGB(v)
		return p[0], p[1], p[2]
	case v < 232:
		// 6x6x6 color cube
		n := v - 16
		steps := [6]uint8{0, 95, 135, 175, 215, 255}
		return steps[n/36], steps[(n/6)%6], steps[n%6]
	default:
		// grayscale ramp
		gray := 8 + 10*(v-232)
		return gray, gray, gray
	}
}

// legacyColorRGB returns the palette entry for an ANSI index 0-15, converting
// from ANSI ordering to the BGR-indexed table.
func legacyColorRGB(ansi uint8) [3]uint8 {
	bits := ansiToLegacy[ansi&0x07]
	if ansi >= 8 {
		bits |= FgIntensity
	}
	return legacyPalette[bits]
}

// nearestLegacy picks the legacy color with the smallest squared RGB
// distance to the requested color.
func nearestLegacy(r, g, b uint8) Attr {
	best, bestDist := 0, int64(1)<<62
	for i, p := range legacyPalette {
		dr := int64(r) - int64(p[0])
		dg := int64(g) - int64(p[1])
		db := int64(b) - int64(p[2])
		d := dr*dr + dg*dg + db*db
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return Attr(best)
}
