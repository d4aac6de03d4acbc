// Copyright © 2025 Texelcon contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: writer/sgr.go
// Summary: SGR parameter decoding into console styles.
// Usage: Part of the interpreting writer.

package writer

import "github.com/framegrace/texelcon/console"

// applySGR folds one SGR parameter list into a style. Extended color
// introducers (38/48) consume their sub-parameters.
func applySGR(s console.Style, params []int) console.Style {
	if len(params) == 0 {
		return console.Style{}
	}
	for i := 0; i < len(params); i++ {
		p := params[i]
		switch {
		case p == 0:
			s = console.Style{}
		case p == 1:
			s.Attrs |= console.AttrBold
			s.Attrs &^= console.AttrDim
		case p == 2:
			s.Attrs |= console.AttrDim
			s.Attrs &^= console.AttrBold
		case p == 4:
			s.Attrs |= console.AttrUnderline
		case p == 7:
			s.Attrs |= console.AttrReverse
		case p == 22:
			s.Attrs &^= console.AttrBold | console.AttrDim
		case p == 24:
			s.Attrs &^= console.AttrUnderline
		case p == 27:
			s.Attrs &^= console.AttrReverse
		case p >= 30 && p <= 37:
			s.FG = console.Color{Mode: console.ColorModeStandard, Value: uint8(p - 30)}
		case p == 39:
			s.FG = console.Color{}
		case p >= 40 && p <= 47:
			s.BG = console.Color{Mode: console.ColorModeStandard, Value: uint8(p - 40)}
		case p == 49:
			s.BG = console.Color{}
		case p >= 90 && p <= 97:
			s.FG = console.Color{Mode: console.ColorModeStandard, Value: uint8(p - 90 + 8)}
		case p >= 100 && p <= 107:
			s.BG = console.Color{Mode: console.ColorModeStandard, Value: uint8(p - 100 + 8)}
		case p == 38:
			var c console.Color
			c, i = extendedColor(params, i)
			if c.Mode != console.ColorModeDefault {
				s.FG = c
			}
		case p == 48:
			var c console.Color
			c, i = extendedColor(params, i)
			if c.Mode != console.ColorModeDefault {
				s.BG = c
			}
		}
	}
	return s
}

// extendedColor decodes the 5;n and 2;r;g;b forms following a 38 or 48
// introducer. Returns the new index positioned on the last consumed param.
func extendedColor(params []int, i int) (console.Color, int) {
	if i+2 < len(params) && params[i+1] == 5 {
		return console.Color{Mode: console.ColorMode256, Value: uint8(params[i+2])}, i + 2
	}
	if i+4 < len(params) && params[i+1] == 2 {
		return console.Color{
			Mode: console.ColorModeRGB,
			R:    uint8(params[i+2]),
			G:    uint8(params[i+3]),
			B:    uint8(params[i+4]),
		}, i + 4
	}
	return console.Color{}, i
}
