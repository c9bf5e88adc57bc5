package core

import "math"

// Color is the foreground color of a screen cell, stored as an
// xterm-256 palette index. Zero means the terminal default.
type Color uint8

// Palette indexes for game elements. Piece colors follow the
// conventional bright palette: cyan I, blue J, orange L, yellow O,
// green S, magenta T, red Z.
const (
	ColorDefault Color = 0
	ColorCyan    Color = 51
	ColorBlue    Color = 33
	ColorOrange  Color = 202
	ColorYellow  Color = 226
	ColorGreen   Color = 40
	ColorMagenta Color = 165
	ColorRed     Color = 196
	ColorWhite   Color = 15
	ColorGray    Color = 240
)

// SpectrumColor maps a position in a cycle of the given length onto a
// rainbow sweep, quantized into the xterm-256 color cube. The hue runs
// up over the first half of the cycle and back down over the second, so
// tiling the sweep around a closed path is seamless.
func SpectrumColor(index, steps int) Color {
	half := float64(steps) / 2
	i := float64(((index % steps) + steps) % steps)

	var hue float64
	if i <= half {
		hue = i / half * 360
	} else {
		hue = (float64(steps) - 1 - i) / half * 360
	}

	r, g, b := hsvToRGB(math.Mod(hue, 360), 1, 1)
	return cubeColor(r, g, b)
}

func hsvToRGB(h, s, v float64) (uint8, uint8, uint8) {
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r1, g1, b1 float64
	switch int(h / 60) {
	case 0:
		r1, g1, b1 = c, x, 0
	case 1:
		r1, g1, b1 = x, c, 0
	case 2:
		r1, g1, b1 = 0, c, x
	case 3:
		r1, g1, b1 = 0, x, c
	case 4:
		r1, g1, b1 = x, 0, c
	case 5:
		r1, g1, b1 = c, 0, x
	}

	return uint8(math.Round((r1 + m) * 255)),
		uint8(math.Round((g1 + m) * 255)),
		uint8(math.Round((b1 + m) * 255))
}

// cubeColor quantizes an RGB triple into the 6x6x6 xterm color cube.
func cubeColor(r, g, b uint8) Color {
	scale := func(v uint8) int { return (int(v)*5 + 127) / 255 }
	return Color(16 + 36*scale(r) + 6*scale(g) + scale(b))
}
