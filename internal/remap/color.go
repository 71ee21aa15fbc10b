package remap

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an opaque RGB swatch color.
type Color struct {
	R, G, B uint8
}

// NeutralGray is shown for slots whose color cannot be decoded.
var NeutralGray = Color{R: 128, G: 128, B: 128}

// ParseColor decodes a "#RRGGBB" string. The leading '#' is optional and
// digits past the sixth (an alpha channel) are ignored. Empty or malformed
// input yields NeutralGray.
func ParseColor(hex string) Color {
	h := strings.TrimPrefix(hex, "#")
	if len(h) < 6 {
		return NeutralGray
	}

	val, err := strconv.ParseUint(h[:6], 16, 32)
	if err != nil {
		return NeutralGray
	}

	return Color{
		R: uint8(val >> 16),
		G: uint8(val >> 8),
		B: uint8(val),
	}
}

// Hex renders the color as "#RRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
