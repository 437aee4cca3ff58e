package common

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseHexColor accepts "#rrggbb", "#rrggbbaa" and the same without '#' or
// with a "0x" prefix.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "#"), "0x")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color format: %q", s)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(hex[start:start+2], 16, 8)
		return uint8(v), err
	}

	var out [4]uint8
	out[3] = 255
	for i := 0; i < len(hex)/2; i++ {
		v, err := parse(i * 2)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		out[i] = v
	}
	return color.RGBA{R: out[0], G: out[1], B: out[2], A: out[3]}, nil
}
